package world

// This file contains some sample worlds, used solely for testing.

// sampleObjects is the attribute table shared by the sample worlds.
func sampleObjects() map[string]Object {
	return map[string]Object{
		"a": {FormBrick, SizeLarge, "green"},
		"b": {FormBrick, SizeSmall, "white"},
		"c": {FormPlank, SizeLarge, "red"},
		"d": {FormPlank, SizeSmall, "green"},
		"e": {FormBall, SizeLarge, "white"},
		"f": {FormBall, SizeSmall, "black"},
		"g": {FormTable, SizeLarge, "blue"},
		"h": {FormTable, SizeSmall, "red"},
		"i": {FormPyramid, SizeLarge, "yellow"},
		"j": {FormPyramid, SizeSmall, "red"},
		"k": {FormBox, SizeLarge, "yellow"},
		"l": {FormBox, SizeLarge, "red"},
		"m": {FormBox, SizeSmall, "blue"},
	}
}

// SmallWorld is the canonical five-stack sample world.
func SmallWorld() *State {
	return &State{
		Arm:     0,
		Holding: "",
		Stacks: [][]string{
			{"e"},
			{"g", "l"},
			{},
			{"k", "m", "f"},
			{},
		},
		Objects: sampleObjects(),
	}
}

// MediumWorld spreads the same objects over ten columns. Handy when a test
// needs longer arm travel or more drop targets.
func MediumWorld() *State {
	return &State{
		Arm:     0,
		Holding: "",
		Stacks: [][]string{
			{"e"},
			{},
			{"a", "b"},
			{},
			{"g", "l"},
			{"c", "d"},
			{},
			{"k", "m", "f"},
			{"h", "j"},
			{"i"},
		},
		Objects: sampleObjects(),
	}
}
