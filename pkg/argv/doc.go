// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package argv provides a schema-driven command-line argument parser.
//
// An application declares typed argument slots on a Schema and then parses the
// raw command-line tokens against it:
//   - Required: positional argument with no default; must be supplied
//   - Default: positional argument with a default value; optional
//   - Switch: named option that consumes the following token as its value
//   - Flag: named boolean option, presence-toggled, short-stackable (-abc)
//   - List: variadic positional argument that binds every leftover token
//   - Terminator: a flag that aborts parsing and surfaces an information string
//
// # Basic Usage
//
//	s := argv.NewSchema("calc", "Add two numbers.")
//	s.Declare("a", argv.Required("LHS operand", argv.Float))
//	s.Declare("b", argv.Required("RHS operand", argv.Float))
//	s.Declare("verbose", argv.Flag("show output", false, "v"))
//
//	res := s.Parse(os.Args[1:])
//	switch res.Outcome {
//	case argv.Terminated:
//	    fmt.Print(res.Message) // -h, --help or another terminator
//	case argv.Failed:
//	    fmt.Println(res.Message)
//	case argv.Done:
//	    fmt.Println(res.Values.Float("a") + res.Values.Float("b"))
//	}
//
// # Token Grammar
//
//   - -x: single short flag or switch
//   - -xyz: stacked short flags (switches cannot be stacked)
//   - --name: long flag or switch
//   - switches consume the immediately following token as their value
//   - every other token is a positional candidate
//
// Positionals are bound in a fixed order: Required slots in declaration order,
// then Default slots in declaration order, then the List takes the rest.
//
// Every schema carries an implicit help Terminator (-h, --help) whose message is
// the text produced by Schema.Help.
package argv
