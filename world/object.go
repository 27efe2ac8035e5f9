package world

import "fmt"

// Form is the physical shape of an object.
type Form uint8

const (
	FormBrick Form = iota
	FormPlank
	FormBall
	FormPyramid
	FormBox
	FormTable
)

var formNames = map[Form]string{
	FormBrick:   "brick",
	FormPlank:   "plank",
	FormBall:    "ball",
	FormPyramid: "pyramid",
	FormBox:     "box",
	FormTable:   "table",
}

func (f Form) String() string {
	return formNames[f]
}

// ParseForm converts a form name into a Form.
func ParseForm(name string) (Form, error) {
	for f, n := range formNames {
		if n == name {
			return f, nil
		}
	}
	return 0, fmt.Errorf("unknown form %q", name)
}

// Size is the physical size of an object. There are only two.
type Size uint8

const (
	SizeSmall Size = iota
	SizeLarge
)

func (s Size) String() string {
	if s == SizeSmall {
		return "small"
	}
	return "large"
}

// ParseSize converts a size name into a Size.
func ParseSize(name string) (Size, error) {
	switch name {
	case "small":
		return SizeSmall, nil
	case "large":
		return SizeLarge, nil
	}
	return 0, fmt.Errorf("unknown size %q", name)
}

// Object holds the physical attributes of a block-world object. The
// attributes never change over the lifetime of a world; only positions do.
type Object struct {
	Form  Form
	Size  Size
	Color string
}

func (o Object) String() string {
	return fmt.Sprintf("%v %v %v", o.Size, o.Color, o.Form)
}
