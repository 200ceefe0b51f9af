// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package cli runs applications declared with package argv, either as a single
// command or as a set of subcommands.
package cli

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"os"

	"github.com/yeetrun/argv/pkg/argv"
	"github.com/yeetrun/argv/pkg/tui"
)

// Main is the entry point of a command. It receives the parsed values and runs
// only when parsing finished without a Terminator or an error.
type Main func(ctx context.Context, v argv.Values) error

// Command is the single-command dispatcher.
type Command struct {
	Schema *argv.Schema
	// Args are the raw tokens without the program name.
	Args []string
	Main Main

	// Out receives the single emitted message. Defaults to os.Stdout.
	Out    io.Writer
	Logger *slog.Logger
	// SurfaceErrors returns parse, schema and entry point errors to the caller
	// instead of printing them.
	SurfaceErrors bool
}

// Execute parses the arguments and runs the entry point. Terminators print
// their message and return ExitOK; failures print the message and return
// ExitFailure.
func (c *Command) Execute(ctx context.Context) (int, error) {
	log := loggerOr(c.Logger)
	p := tui.NewPrinter(writerOr(c.Out))

	if c.Schema == nil {
		return c.fail(p, &argv.SchemaError{Msg: "command has no schema"})
	}
	res := c.Schema.Parse(c.Args)
	log.Debug("argv: parse finished", "program", c.Schema.Program, "outcome", res.Outcome.String())

	switch res.Outcome {
	case argv.Terminated:
		p.Message(res.Message)
		return ExitOK, nil
	case argv.Failed:
		return c.fail(p, res.Err)
	}

	if c.Main == nil {
		return c.fail(p, &argv.SchemaError{Program: c.Schema.Program, Msg: "*main* must be defined for " + c.Schema.Program})
	}
	err := c.Main(ctx, res.Values)
	if err == nil {
		return ExitOK, nil
	}
	var ee *ExitError
	if errors.As(err, &ee) {
		log.Debug("argv: entry point exited", "program", c.Schema.Program, "code", ee.Code)
		if ee.Message != "" {
			p.Message(ee.Message)
		}
		return ee.Code, nil
	}
	return c.fail(p, err)
}

func (c *Command) fail(p tui.Printer, err error) (int, error) {
	if c.SurfaceErrors {
		return ExitFailure, err
	}
	p.Failure(err.Error())
	return ExitFailure, nil
}

func writerOr(w io.Writer) io.Writer {
	if w == nil {
		return os.Stdout
	}
	return w
}

func loggerOr(l *slog.Logger) *slog.Logger {
	if l == nil {
		return slog.New(slog.DiscardHandler)
	}
	return l
}
