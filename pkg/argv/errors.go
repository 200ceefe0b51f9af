// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package argv

import "fmt"

// SchemaError is returned when a schema declaration is invalid. It indicates a
// programming error in the declaring application rather than bad user input.
type SchemaError struct {
	Program string // The program whose schema is invalid
	Arg     string // The offending argument name (if any)
	Msg     string
}

func (e *SchemaError) Error() string {
	return e.Msg
}

// ParseError is returned when the command-line tokens do not satisfy the schema.
type ParseError struct {
	Token string // The offending token or argument name (if any)
	Msg   string // User-facing message
	Err   error  // Underlying cause, e.g. a *TypeCoercionError
}

func (e *ParseError) Error() string {
	return e.Msg
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// TypeCoercionError is returned when a raw value cannot be converted to the
// declared type of an argument.
type TypeCoercionError struct {
	Arg   string // The argument name
	Type  Type   // The declared type
	Value any    // The value that was provided
	Err   error  // Conversion error (if any)
}

func (e *TypeCoercionError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("`%s` expected a value of type %s but got %q: %v", e.Arg, e.Type, fmt.Sprint(e.Value), e.Err)
	}
	return fmt.Sprintf("`%s` expected a value of type %s but got %q", e.Arg, e.Type, fmt.Sprint(e.Value))
}

func (e *TypeCoercionError) Unwrap() error {
	return e.Err
}

func schemaErrorf(program, arg, format string, args ...any) *SchemaError {
	return &SchemaError{Program: program, Arg: arg, Msg: fmt.Sprintf(format, args...)}
}

func parseErrorf(token, format string, args ...any) *ParseError {
	return &ParseError{Token: token, Msg: fmt.Sprintf(format, args...)}
}
