package world

// This file contains the physical stacking laws. They are pure predicates
// over object attributes; the state model consults them when deciding
// whether a drop is legal.

// Supports reports whether an object with attributes top may rest directly
// on an object with attributes bottom. The floor is not an Object; dropping
// onto an empty stack is always legal and never reaches this predicate.
func Supports(bottom, top Object) bool {
	// Balls roll away from under anything.
	if bottom.Form == FormBall {
		return false
	}
	// Small objects cannot support large ones.
	if bottom.Size == SizeSmall && top.Size == SizeLarge {
		return false
	}
	// A ball rests on the floor or inside a box, nowhere else.
	if top.Form == FormBall && bottom.Form != FormBox {
		return false
	}
	// Boxes cannot contain pyramids, planks or boxes of the same size.
	if bottom.Form == FormBox && bottom.Size == top.Size {
		switch top.Form {
		case FormPyramid, FormPlank, FormBox:
			return false
		}
	}
	if top.Form == FormBox {
		// Small boxes cannot be supported by small bricks or pyramids.
		if top.Size == SizeSmall && bottom.Size == SizeSmall &&
			(bottom.Form == FormBrick || bottom.Form == FormPyramid) {
			return false
		}
		// Large boxes cannot be supported by large pyramids.
		if top.Size == SizeLarge && bottom.Form == FormPyramid {
			return false
		}
	}
	return true
}
