// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cli

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"maps"
	"slices"
	"strings"

	"github.com/yeetrun/argv/pkg/argv"
	"github.com/yeetrun/argv/pkg/tui"
)

// Constructor builds a subcommand from the tokens that follow its name.
type Constructor func(args []string) *Command

// Multi dispatches to one of several named subcommands. Its own arguments are
// limited to Terminators such as --help and --version.
type Multi struct {
	Program     string
	Description string
	// Info is appended to the help text.
	Info        string
	Subcommands map[string]Constructor
	// Args are the raw tokens without the program name.
	Args []string

	Out           io.Writer
	Logger        *slog.Logger
	SurfaceErrors bool

	schema     *argv.Schema
	registered bool
}

// NewMulti returns a dispatcher that already carries the help Terminator
// (-h, --help).
func NewMulti(program, description string, args []string) *Multi {
	m := &Multi{
		Program:     program,
		Description: description,
		Subcommands: make(map[string]Constructor),
		Args:        args,
	}
	m.schema = &argv.Schema{Program: program}
	m.schema.Declare("help", argv.DerivedTerminator("show this message", func(*argv.Schema) string {
		return m.Help()
	}, "h"))
	return m
}

// Declare adds a Terminator to the dispatcher. Other kinds are rejected when
// the dispatcher runs.
func (m *Multi) Declare(name string, a *argv.Argument) *Multi {
	m.schema.Declare(name, a)
	m.registered = false
	return m
}

// Add registers a subcommand under name.
func (m *Multi) Add(name string, ctor Constructor) *Multi {
	m.Subcommands[name] = ctor
	return m
}

func (m *Multi) register() error {
	if m.registered {
		return nil
	}
	m.schema.Program = m.Program
	for _, a := range m.schema.Arguments() {
		if a != nil && a.Kind != argv.KindTerminator {
			return &argv.SchemaError{
				Program: m.Program,
				Arg:     a.Name,
				Msg:     "Only Terminator arguments are allowed in a multi-command application. Anything else is ill-defined!",
			}
		}
	}
	if err := m.schema.Register(); err != nil {
		return err
	}
	m.registered = true
	return nil
}

// Usage lists the subcommands, sorted and aligned, followed by the description.
func (m *Multi) Usage() string {
	names := slices.Sorted(maps.Keys(m.Subcommands))
	longest := 0
	for _, name := range names {
		longest = max(longest, len(name))
	}

	lead := "usage: " + m.Program
	var b strings.Builder
	if len(names) == 0 {
		b.WriteString(lead + "\n")
	}
	for i, name := range names {
		if i == 0 {
			b.WriteString(lead)
		} else {
			b.WriteString(strings.Repeat(" ", len(lead)))
		}
		fmt.Fprintf(&b, " %s%s...\n", name, strings.Repeat(" ", longest-len(name)+2))
	}
	if m.Description != "" {
		fmt.Fprintf(&b, "\n%s\n", m.Description)
	}
	return b.String()
}

// Help returns the usage followed by one line per Terminator and the Info block.
func (m *Multi) Help() string {
	if err := m.register(); err != nil {
		return m.Usage()
	}
	names := m.schema.TerminatorNames()
	width := 0
	for _, name := range names {
		width = max(width, len(name))
	}
	width += 10

	var b strings.Builder
	b.WriteString(m.Usage())
	b.WriteString("\n")
	for _, name := range names {
		a, _ := m.schema.Lookup(name)
		b.WriteString(a.Help(width))
	}
	if m.Info != "" {
		fmt.Fprintf(&b, "\n%s\n", m.Info)
	}
	return b.String()
}

// Execute resolves the first token and runs the matching subcommand. It returns
// ExitUnknownSubcommand, without constructing anything, when the name is not
// registered.
func (m *Multi) Execute(ctx context.Context) (int, error) {
	log := loggerOr(m.Logger)
	out := writerOr(m.Out)
	p := tui.NewPrinter(out)

	if err := m.register(); err != nil {
		return m.fail(p, err)
	}
	if len(m.Args) == 0 {
		p.Message(m.Usage())
		return ExitOK, nil
	}

	first := m.Args[0]
	if strings.HasPrefix(first, "-") {
		res := m.schema.Parse(m.Args[:1])
		log.Debug("argv: option parsed", "program", m.Program, "token", first, "outcome", res.Outcome.String())
		switch res.Outcome {
		case argv.Terminated:
			p.Message(res.Message)
			return ExitOK, nil
		case argv.Failed:
			return m.fail(p, res.Err)
		}
	}

	ctor, ok := m.Subcommands[first]
	if !ok {
		log.Debug("argv: unknown subcommand", "program", m.Program, "name", first)
		p.Failure(fmt.Sprintf("`%s` is not an available subcommand!", first))
		return ExitUnknownSubcommand, nil
	}
	log.Debug("argv: dispatching", "program", m.Program, "subcommand", first)

	cmd := ctor(m.Args[1:])
	if cmd == nil {
		return m.fail(p, &argv.SchemaError{Program: m.Program, Arg: first, Msg: fmt.Sprintf("subcommand `%s` has no constructor result", first)})
	}
	if cmd.Schema != nil && cmd.Schema.Program == "" {
		cmd.Schema.Program = m.Program + " " + first
	}
	if cmd.Args == nil {
		cmd.Args = m.Args[1:]
	}
	cmd.SurfaceErrors = false
	if cmd.Out == nil {
		cmd.Out = out
	}
	if cmd.Logger == nil {
		cmd.Logger = log
	}
	return cmd.Execute(ctx)
}

func (m *Multi) fail(p tui.Printer, err error) (int, error) {
	if m.SurfaceErrors {
		return ExitFailure, err
	}
	p.Failure(err.Error())
	return ExitFailure, nil
}
