package logic

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// YAML goal fixtures are a list of clauses, each a list of literals:
//
//	- - relation: ontop
//	    args: [a, b]
//	  - relation: beside
//	    args: [c, floor]
//
// Literals are positive unless they carry "negated: true".

type yamlLiteral struct {
	Relation string   `yaml:"relation"`
	Args     []string `yaml:"args"`
	Negated  bool     `yaml:"negated"`
}

// UnmarshalYAML decodes a literal, defaulting to positive polarity.
func (l *Literal) UnmarshalYAML(value *yaml.Node) error {
	var yl yamlLiteral
	if err := value.Decode(&yl); err != nil {
		return err
	}
	l.Polarity = !yl.Negated
	l.Relation = Relation(yl.Relation)
	l.Args = yl.Args
	return nil
}

// FromYAML parses a DNF formula from its YAML description. Structural
// validation happens later, against a world, in Validate.
func FromYAML(data []byte) (Formula, error) {
	var f Formula
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parsing goal yaml: %w", err)
	}
	return f, nil
}

// LoadFile reads and parses a YAML goal file.
func LoadFile(path string) (Formula, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return FromYAML(data)
}
