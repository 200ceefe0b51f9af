// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command calc is a small calculator built on the multi-subcommand dispatcher.
package main

import (
	"context"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/fatih/color"
	"github.com/shayne/yargs"
	"github.com/yeetrun/argv/pkg/argv"
	"github.com/yeetrun/argv/pkg/cli"
)

const version = "1.0.0"

type globalFlagsParsed struct {
	NoColor bool `flag:"no-color" help:"Disable colored output"`
}

// parseGlobalFlags strips flags that apply to every subcommand before the
// remaining tokens reach the dispatcher.
func parseGlobalFlags(args []string) (globalFlagsParsed, []string, error) {
	result, err := yargs.ParseKnownFlags[globalFlagsParsed](args, yargs.KnownFlagsOptions{})
	if err != nil {
		return globalFlagsParsed{}, nil, err
	}
	return result.Flags, result.RemainingArgs, nil
}

type operator func(a, b float64) (float64, error)

var operators = map[string]operator{
	"add": func(a, b float64) (float64, error) { return a + b, nil },
	"sub": func(a, b float64) (float64, error) { return a - b, nil },
	"mul": func(a, b float64) (float64, error) { return a * b, nil },
	"div": func(a, b float64) (float64, error) {
		if b == 0 {
			return 0, &cli.ExitError{Code: cli.ExitFailure, Message: "division by zero"}
		}
		return a / b, nil
	},
}

func newOperator(out io.Writer, op operator) cli.Constructor {
	return func(args []string) *cli.Command {
		s := argv.NewSchema("", "").
			Declare("a", argv.Required("LHS operand", argv.Float)).
			Declare("b", argv.Required("RHS operand", argv.Float))
		s.UsageWhenEmpty = true
		return &cli.Command{
			Schema: s,
			Args:   args,
			Out:    out,
			Main: func(_ context.Context, v argv.Values) error {
				r, err := op(v.Float("a"), v.Float("b"))
				if err != nil {
					return err
				}
				fmt.Fprintf(out, "result: %v\n", r)
				return nil
			},
		}
	}
}

func newCalc(out io.Writer, args []string) *cli.Multi {
	m := cli.NewMulti("calc",
		"A simple calculator. Pass the -h | --help flag for more information,\n"+
			"or one of the subcommands likewise.",
		args)
	m.Out = out
	m.Declare("version", cli.Version("calc", version))
	for name, op := range operators {
		m.Add(name, newOperator(out, op))
	}
	return m
}

func run(ctx context.Context, out io.Writer, args []string) (int, error) {
	flags, rest, err := parseGlobalFlags(args)
	if err != nil {
		return cli.ExitFailure, err
	}
	if flags.NoColor {
		color.NoColor = true
	}
	return newCalc(out, rest).Execute(ctx)
}

func main() {
	code, err := run(context.Background(), os.Stdout, os.Args[1:])
	if err != nil {
		log.Fatal(err)
	}
	os.Exit(code)
}
