// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package argv

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// ArgSpec is the inspectable description of one declared argument.
type ArgSpec struct {
	Name        string `yaml:"name"`
	Kind        string `yaml:"kind"`
	Type        string `yaml:"type"`
	Short       string `yaml:"short,omitempty"`
	Description string `yaml:"description"`
	Default     string `yaml:"default,omitempty"`
}

// SchemaSpec is the inspectable description of a registered schema.
type SchemaSpec struct {
	Program     string    `yaml:"program"`
	Description string    `yaml:"description,omitempty"`
	Arguments   []ArgSpec `yaml:"arguments"`
}

// Spec returns the description of the schema, registering it first if needed.
func (s *Schema) Spec() (SchemaSpec, error) {
	if !s.registered {
		if err := s.Register(); err != nil {
			return SchemaSpec{}, err
		}
	}
	spec := SchemaSpec{Program: s.Program, Description: s.Description}
	for _, sl := range s.slots {
		a := sl.arg
		as := ArgSpec{
			Name:        a.Name,
			Kind:        a.Kind.String(),
			Type:        a.Type.String(),
			Short:       a.Short,
			Description: a.Description,
		}
		if a.Kind != KindRequired && a.Kind != KindList {
			as.Default = formatValue(a.Default)
		}
		spec.Arguments = append(spec.Arguments, as)
	}
	return spec, nil
}

// Describe renders the schema as YAML.
func (s *Schema) Describe() ([]byte, error) {
	spec, err := s.Spec()
	if err != nil {
		return nil, err
	}
	out, err := yaml.Marshal(spec)
	if err != nil {
		return nil, fmt.Errorf("failed to encode schema for %s: %w", s.Program, err)
	}
	return out, nil
}

// DescribeTerminator returns a Terminator that prints the schema as YAML.
func DescribeTerminator(short string) *Argument {
	return DerivedTerminator("print the argument schema as YAML", func(s *Schema) string {
		out, err := s.Describe()
		if err != nil {
			return err.Error()
		}
		return string(out)
	}, short)
}
