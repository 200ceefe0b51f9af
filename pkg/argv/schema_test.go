// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package argv

import (
	"errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func helloSchema() *Schema {
	s := NewSchema("hello", "Say hello.")
	s.Declare("user", List("user names", String))
	s.Declare("computer", Switch("name of the computer", "Lisa", "c").WithName("computer-name"))
	s.Declare("message", Switch("the greeting", "how are you?", "m"))
	s.Declare("verbose", Flag("show output", false, "v"))
	s.Declare("version", Terminator("show version information", "hello (1.0.1)", "V"))
	return s
}

type buckets struct {
	Required    []string
	Defaults    []string
	Switches    []string
	Flags       []string
	Terminators []string
	List        string
}

func classify(s *Schema) buckets {
	return buckets{
		Required:    s.RequiredNames(),
		Defaults:    s.DefaultNames(),
		Switches:    s.SwitchNames(),
		Flags:       s.FlagNames(),
		Terminators: s.TerminatorNames(),
		List:        s.ListName(),
	}
}

func TestRegisterClassifies(t *testing.T) {
	s := helloSchema()
	if err := s.Register(); err != nil {
		t.Fatalf("Register() error = %v", err)
	}
	want := buckets{
		Switches:    []string{"computer-name", "message"},
		Flags:       []string{"help", "verbose", "version"},
		Terminators: []string{"help", "version"},
		List:        "user",
	}
	if diff := cmp.Diff(want, classify(s)); diff != "" {
		t.Errorf("classification mismatch (-want +got):\n%s", diff)
	}
	if _, ok := s.Lookup("computer"); ok {
		t.Error("Lookup(computer) found an argument; the explicit name should replace the slot name")
	}
	if a, ok := s.Lookup("computer-name"); !ok || a.Short != "c" {
		t.Errorf("Lookup(computer-name) = %+v, %v", a, ok)
	}
}

func TestRegisterIsIdempotent(t *testing.T) {
	s := NewSchema("calc", "")
	s.Declare("a", Required("LHS", Float))
	s.Declare("b", Required("RHS", Float))
	s.Declare("precision", Default("digits", 2))
	s.Declare("verbose", Flag("show output", false, "v"))

	if err := s.Register(); err != nil {
		t.Fatalf("first Register() error = %v", err)
	}
	first := classify(s)
	if err := s.Register(); err != nil {
		t.Fatalf("second Register() error = %v", err)
	}
	if diff := cmp.Diff(first, classify(s)); diff != "" {
		t.Errorf("classification changed between Register calls (-first +second):\n%s", diff)
	}
	if diff := cmp.Diff([]string{"a", "b"}, first.Required); diff != "" {
		t.Errorf("Required order mismatch (-want +got):\n%s", diff)
	}
}

func TestRegisterErrors(t *testing.T) {
	tests := []struct {
		name    string
		build   func() *Schema
		wantArg string
		wantMsg string
	}{
		{
			name: "no arguments",
			build: func() *Schema {
				return &Schema{Program: "empty"}
			},
			wantMsg: "can never run",
		},
		{
			name: "unknown kind",
			build: func() *Schema {
				return NewSchema("p", "").Declare("odd", &Argument{Kind: Kind(42), Type: String})
			},
			wantArg: "odd",
			wantMsg: "not implemented",
		},
		{
			name: "nil argument",
			build: func() *Schema {
				return NewSchema("p", "").Declare("missing", nil)
			},
			wantArg: "missing",
			wantMsg: "without an argument",
		},
		{
			name: "two lists",
			build: func() *Schema {
				return NewSchema("p", "").
					Declare("xs", List("first", String)).
					Declare("ys", List("second", String))
			},
			wantArg: "ys",
			wantMsg: "only be one List",
		},
		{
			name: "flag with non-bool default",
			build: func() *Schema {
				return NewSchema("p", "").Declare("verbose", Flag("show output", "yes", "v"))
			},
			wantArg: "verbose",
			wantMsg: "boolean default",
		},
		{
			name: "unsupported default type",
			build: func() *Schema {
				return NewSchema("p", "").Declare("ratio", Default("ratio", float32(0.5)))
			},
			wantArg: "ratio",
			wantMsg: "unsupported type",
		},
		{
			name: "unsupported required type",
			build: func() *Schema {
				return NewSchema("p", "").Declare("x", Required("x", Invalid))
			},
			wantArg: "x",
			wantMsg: "unsupported type",
		},
		{
			name: "long short name",
			build: func() *Schema {
				return NewSchema("p", "").Declare("verbose", Flag("show output", false, "vv"))
			},
			wantArg: "verbose",
			wantMsg: "single character",
		},
		{
			name: "slot name clash",
			build: func() *Schema {
				return NewSchema("p", "").
					Declare("a", Required("first", String)).
					Declare("a", Default("second", "x"))
			},
			wantArg: "a",
			wantMsg: "name clash",
		},
		{
			name: "explicit name clash",
			build: func() *Schema {
				return NewSchema("p", "").
					Declare("a", Required("first", String)).
					Declare("b", Default("second", "x").WithName("a"))
			},
			wantArg: "a",
			wantMsg: "name clash",
		},
		{
			name: "clash with help",
			build: func() *Schema {
				return NewSchema("p", "").Declare("help", Flag("custom help", false, ""))
			},
			wantArg: "help",
			wantMsg: "name clash",
		},
		{
			name: "short name clash",
			build: func() *Schema {
				return NewSchema("p", "").
					Declare("verbose", Flag("show output", false, "v")).
					Declare("version", Terminator("show version", "1.0", "v"))
			},
			wantArg: "version",
			wantMsg: "share -v",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := tt.build()
			err := s.Register()
			var se *SchemaError
			if !errors.As(err, &se) {
				t.Fatalf("Register() error = %v, want *SchemaError", err)
			}
			if se.Arg != tt.wantArg {
				t.Errorf("SchemaError.Arg = %q, want %q", se.Arg, tt.wantArg)
			}
			if !strings.Contains(se.Error(), tt.wantMsg) {
				t.Errorf("SchemaError = %q, want it to contain %q", se.Error(), tt.wantMsg)
			}

			// Schema errors surface before any token is read.
			res := s.Parse([]string{"--no-such-flag"})
			if res.Outcome != Failed || !errors.As(res.Err, &se) {
				t.Errorf("Parse() = %v (%v), want Failed with *SchemaError", res.Outcome, res.Err)
			}
		})
	}
}

func TestRegisterCheckOrder(t *testing.T) {
	// Two lists and a bad flag default: the List violation is reported first.
	s := NewSchema("p", "").
		Declare("verbose", Flag("show output", 1, "v")).
		Declare("xs", List("first", String)).
		Declare("ys", List("second", String))
	err := s.Register()
	if err == nil || !strings.Contains(err.Error(), "only be one List") {
		t.Errorf("Register() error = %v, want the multiple List violation", err)
	}
}

func TestArgumentsKeepDeclarationOrder(t *testing.T) {
	s := helloSchema()
	var names []string
	for _, a := range s.Arguments() {
		names = append(names, a.Description)
	}
	want := []string{
		"show this message",
		"user names",
		"name of the computer",
		"the greeting",
		"show output",
		"show version information",
	}
	if diff := cmp.Diff(want, names); diff != "" {
		t.Errorf("Arguments() mismatch (-want +got):\n%s", diff)
	}
}
