package world

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// The YAML world format is the human-editable fixture format consumed by
// the CLI and by tests:
//
//	arm: 0
//	holding: ""
//	stacks:
//	  - [e]
//	  - [g, l]
//	objects:
//	  e: {form: ball, size: large, color: white}
//	  ...

type yamlObject struct {
	Form  string `yaml:"form"`
	Size  string `yaml:"size"`
	Color string `yaml:"color"`
}

type yamlWorld struct {
	Arm     int                   `yaml:"arm"`
	Holding string                `yaml:"holding"`
	Stacks  [][]string            `yaml:"stacks"`
	Objects map[string]yamlObject `yaml:"objects"`
}

// FromYAML parses a world snapshot from its YAML description and validates
// the placement invariant.
func FromYAML(data []byte) (*State, error) {
	var yw yamlWorld
	if err := yaml.Unmarshal(data, &yw); err != nil {
		return nil, fmt.Errorf("parsing world yaml: %w", err)
	}
	objects := make(map[string]Object, len(yw.Objects))
	for id, yo := range yw.Objects {
		form, err := ParseForm(yo.Form)
		if err != nil {
			return nil, fmt.Errorf("object %q: %w", id, err)
		}
		size, err := ParseSize(yo.Size)
		if err != nil {
			return nil, fmt.Errorf("object %q: %w", id, err)
		}
		objects[id] = Object{Form: form, Size: size, Color: yo.Color}
	}
	s := &State{
		Arm:     yw.Arm,
		Holding: yw.Holding,
		Stacks:  yw.Stacks,
		Objects: objects,
	}
	if s.Stacks == nil {
		s.Stacks = [][]string{}
	}
	for i, st := range s.Stacks {
		if st == nil {
			s.Stacks[i] = []string{}
		}
	}
	if err := s.Validate(); err != nil {
		return nil, err
	}
	return s, nil
}

// LoadFile reads and parses a YAML world file.
func LoadFile(path string) (*State, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return FromYAML(data)
}
