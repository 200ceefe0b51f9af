// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package argv

import "slices"

// Schema is the declared, classified set of arguments of one application.
// A Schema is not safe for concurrent use; build one per invocation.
type Schema struct {
	// Program is the name shown in usage lines.
	Program string
	// Description is printed below the usage line.
	Description string
	// Info is an optional free-text block appended to the help text.
	Info string
	// UsageWhenEmpty terminates with the usage line when no tokens are given.
	UsageWhenEmpty bool

	slots []slot

	registered  bool
	byName      map[string]*Argument
	required    []string
	defaults    []string
	switches    []string
	flags       []string // includes terminators
	terminators []string
	list        string
}

type slot struct {
	name string
	arg  *Argument
}

// NewSchema returns a schema that already carries the help Terminator
// (-h, --help).
func NewSchema(program, description string) *Schema {
	s := &Schema{Program: program, Description: description}
	s.Declare("help", DerivedTerminator("show this message", (*Schema).Help, "h"))
	return s
}

// Declare adds an argument under the given slot name. The slot name becomes the
// argument's name unless one was set with WithName. Arguments keep their
// declaration order.
func (s *Schema) Declare(name string, a *Argument) *Schema {
	s.slots = append(s.slots, slot{name: name, arg: a})
	s.registered = false
	return s
}

// Register classifies the declared arguments and validates the schema. It may
// be called any number of times; each call rebuilds the classification from the
// declarations. Parse calls it when needed.
func (s *Schema) Register() error {
	s.registered = false
	s.byName = make(map[string]*Argument, len(s.slots))
	s.required, s.defaults, s.switches, s.flags, s.terminators = nil, nil, nil, nil, nil
	s.list = ""

	var lists []string
	for _, sl := range s.slots {
		a := sl.arg
		if a == nil {
			return schemaErrorf(s.Program, sl.name, "`%s` was declared without an argument", sl.name)
		}
		if a.Name == "" {
			a.Name = sl.name
		}
		switch a.Kind {
		case KindRequired:
			s.required = append(s.required, a.Name)
		case KindDefault:
			s.defaults = append(s.defaults, a.Name)
		case KindSwitch:
			s.switches = append(s.switches, a.Name)
		case KindFlag:
			s.flags = append(s.flags, a.Name)
		case KindTerminator:
			s.flags = append(s.flags, a.Name)
			s.terminators = append(s.terminators, a.Name)
		case KindList:
			lists = append(lists, a.Name)
		default:
			return schemaErrorf(s.Program, a.Name, "Untracked argument kind for `%s`: %v is not implemented.", a.Name, a.Kind)
		}
	}

	if len(s.slots) == 0 {
		return schemaErrorf(s.Program, "", "There were no arguments declared for %s! This program can never run!", s.Program)
	}
	if len(lists) > 1 {
		return schemaErrorf(s.Program, lists[1], "There can only be one List argument! Having more than one List is an ill-defined application.")
	}
	if len(lists) == 1 {
		s.list = lists[0]
	}

	for _, sl := range s.slots {
		a := sl.arg
		if a.Kind == KindFlag {
			if _, ok := a.Default.(bool); !ok {
				return schemaErrorf(s.Program, a.Name, "The Flag `%s` must have a boolean default, got %T.", a.Name, a.Default)
			}
		}
		if a.Type == Invalid && (a.Kind == KindRequired || a.Kind == KindList) {
			return schemaErrorf(s.Program, a.Name, "`%s` was declared with an unsupported type.", a.Name)
		}
		if a.Type == Invalid {
			return schemaErrorf(s.Program, a.Name, "`%s` has a default of unsupported type %T.", a.Name, a.Default)
		}
	}

	for _, sl := range s.slots {
		a := sl.arg
		if a.Short != "" && len([]rune(a.Short)) != 1 {
			return schemaErrorf(s.Program, a.Name, "For `%s`: the short form name should be a single character in length!", a.Name)
		}
	}

	shorts := make(map[string]string)
	for _, sl := range s.slots {
		a := sl.arg
		if a.Name == "" {
			return schemaErrorf(s.Program, "", "An argument of kind %v was declared without a name.", a.Kind)
		}
		if _, dup := s.byName[a.Name]; dup {
			return schemaErrorf(s.Program, a.Name, "There is a name clash among the arguments of %s: `%s`!", s.Program, a.Name)
		}
		s.byName[a.Name] = a
		if a.Short == "" || !a.Kind.isOption() {
			continue
		}
		if other, dup := shorts[a.Short]; dup {
			return schemaErrorf(s.Program, a.Name, "There is a name clash among the arguments of %s: `%s` and `%s` share -%s!", s.Program, other, a.Name, a.Short)
		}
		shorts[a.Short] = a.Name
	}

	s.registered = true
	return nil
}

// Lookup returns the argument registered under name.
func (s *Schema) Lookup(name string) (*Argument, bool) {
	a, ok := s.byName[name]
	return a, ok
}

// Arguments returns the declared arguments in declaration order.
func (s *Schema) Arguments() []*Argument {
	out := make([]*Argument, 0, len(s.slots))
	for _, sl := range s.slots {
		out = append(out, sl.arg)
	}
	return out
}

func (s *Schema) RequiredNames() []string   { return slices.Clone(s.required) }
func (s *Schema) DefaultNames() []string    { return slices.Clone(s.defaults) }
func (s *Schema) SwitchNames() []string     { return slices.Clone(s.switches) }
func (s *Schema) FlagNames() []string       { return slices.Clone(s.flags) }
func (s *Schema) TerminatorNames() []string { return slices.Clone(s.terminators) }

// ListName returns the name of the List argument, or "" when none is declared.
func (s *Schema) ListName() string { return s.list }

func (s *Schema) reset() {
	for _, sl := range s.slots {
		sl.arg.reset()
	}
}
