// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cli

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/yeetrun/argv/pkg/argv"
)

func addSchema() *argv.Schema {
	return argv.NewSchema("add", "Add two numbers.").
		Declare("a", argv.Required("LHS operand", argv.Float)).
		Declare("b", argv.Required("RHS operand", argv.Float)).
		Declare("version", argv.Terminator("show version information", "add (1.0.0)", "V"))
}

func TestCommandRunsMain(t *testing.T) {
	var out bytes.Buffer
	var got float64
	cmd := &Command{
		Schema: addSchema(),
		Args:   []string{"1.5", "2"},
		Out:    &out,
		Main: func(_ context.Context, v argv.Values) error {
			got = v.Float("a") + v.Float("b")
			return nil
		},
	}
	code, err := cmd.Execute(context.Background())
	if err != nil {
		t.Fatalf("Execute failed: %v", err)
	}
	if code != ExitOK {
		t.Errorf("code = %d, want %d", code, ExitOK)
	}
	if got != 3.5 {
		t.Errorf("a + b = %v, want 3.5", got)
	}
	if out.Len() != 0 {
		t.Errorf("unexpected output %q", out.String())
	}
}

func TestCommandTerminatorSkipsMain(t *testing.T) {
	for _, args := range [][]string{{"-V"}, {"--version"}, {"1", "--version", "2", "3", "4"}} {
		var out bytes.Buffer
		calls := 0
		cmd := &Command{
			Schema: addSchema(),
			Args:   args,
			Out:    &out,
			Main: func(context.Context, argv.Values) error {
				calls++
				return nil
			},
		}
		code, err := cmd.Execute(context.Background())
		if err != nil || code != ExitOK {
			t.Errorf("Execute(%q) = %d, %v; want %d, nil", args, code, err, ExitOK)
		}
		if calls != 0 {
			t.Errorf("Execute(%q) invoked main %d times", args, calls)
		}
		if out.String() != "add (1.0.0)\n" {
			t.Errorf("Execute(%q) output = %q", args, out.String())
		}
	}
}

func TestCommandHelp(t *testing.T) {
	var out bytes.Buffer
	cmd := &Command{
		Schema: addSchema(),
		Args:   []string{"-h"},
		Out:    &out,
		Main:   func(context.Context, argv.Values) error { return nil },
	}
	if code, _ := cmd.Execute(context.Background()); code != ExitOK {
		t.Fatalf("code = %d, want %d", code, ExitOK)
	}
	if !strings.HasPrefix(out.String(), "usage: add a b [-h | --help false] [-V | --version false]\n") {
		t.Errorf("help output = %q", out.String())
	}
	if !strings.Contains(out.String(), "LHS operand (required).") {
		t.Errorf("help output is missing the `a` line: %q", out.String())
	}
}

func TestCommandParseFailure(t *testing.T) {
	const want = "Insufficient arguments given: `b` have not been provided."

	var out bytes.Buffer
	calls := 0
	cmd := &Command{
		Schema: addSchema(),
		Args:   []string{"1"},
		Out:    &out,
		Main: func(context.Context, argv.Values) error {
			calls++
			return nil
		},
	}
	code, err := cmd.Execute(context.Background())
	if err != nil {
		t.Fatalf("Execute returned %v, want the error printed", err)
	}
	if code != ExitFailure {
		t.Errorf("code = %d, want %d", code, ExitFailure)
	}
	if out.String() != want+"\n" {
		t.Errorf("output = %q, want %q", out.String(), want+"\n")
	}
	if calls != 0 {
		t.Errorf("main invoked %d times", calls)
	}

	out.Reset()
	cmd.SurfaceErrors = true
	code, err = cmd.Execute(context.Background())
	if code != ExitFailure {
		t.Errorf("code = %d, want %d", code, ExitFailure)
	}
	var pe *argv.ParseError
	if !errors.As(err, &pe) || pe.Msg != want {
		t.Errorf("err = %v, want ParseError %q", err, want)
	}
	if out.Len() != 0 {
		t.Errorf("surfaced error was also printed: %q", out.String())
	}
}

func TestCommandSchemaFailure(t *testing.T) {
	var out bytes.Buffer
	s := argv.NewSchema("bad", "").Declare("v", argv.Flag("verbose", "yes", "v"))
	cmd := &Command{Schema: s, Out: &out, SurfaceErrors: true, Main: func(context.Context, argv.Values) error { return nil }}
	code, err := cmd.Execute(context.Background())
	var se *argv.SchemaError
	if code != ExitFailure || !errors.As(err, &se) {
		t.Errorf("Execute = %d, %v; want %d and a SchemaError", code, err, ExitFailure)
	}

	cmd = &Command{Schema: addSchema(), Args: []string{"1", "2"}, Out: &out, SurfaceErrors: true}
	if _, err := cmd.Execute(context.Background()); !errors.As(err, &se) {
		t.Errorf("missing main: err = %v, want a SchemaError", err)
	}
}

func TestCommandMainErrors(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		wantCode int
		wantOut  string
	}{
		{"exit error", &ExitError{Code: 3, Message: "division by zero"}, 3, "division by zero\n"},
		{"silent exit error", &ExitError{Code: 4}, 4, ""},
		{"plain error", errors.New("boom"), ExitFailure, "boom\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var out bytes.Buffer
			cmd := &Command{
				Schema: addSchema(),
				Args:   []string{"1", "2"},
				Out:    &out,
				Main:   func(context.Context, argv.Values) error { return tt.err },
			}
			code, err := cmd.Execute(context.Background())
			if err != nil {
				t.Fatalf("Execute returned %v", err)
			}
			if code != tt.wantCode {
				t.Errorf("code = %d, want %d", code, tt.wantCode)
			}
			if out.String() != tt.wantOut {
				t.Errorf("output = %q, want %q", out.String(), tt.wantOut)
			}
		})
	}
}
