// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package argv

import (
	"fmt"
	"reflect"
	"strings"
	"time"
)

// Kind discriminates the argument variants.
type Kind int

const (
	KindRequired Kind = iota + 1
	KindDefault
	KindSwitch
	KindFlag
	KindList
	KindTerminator
)

func (k Kind) String() string {
	switch k {
	case KindRequired:
		return "required"
	case KindDefault:
		return "default"
	case KindSwitch:
		return "switch"
	case KindFlag:
		return "flag"
	case KindList:
		return "list"
	case KindTerminator:
		return "terminator"
	}
	return fmt.Sprintf("kind(%d)", int(k))
}

// isOption reports whether arguments of this kind are named on the command line.
func (k Kind) isOption() bool {
	return k == KindSwitch || k == KindFlag || k == KindTerminator
}

// Argument is a single declared argument slot. Use the constructors (Required,
// Default, Switch, Flag, List, Terminator) rather than building one by hand.
type Argument struct {
	Kind        Kind
	Description string
	// Type is the declared value type. For List it is the element type.
	Type Type
	// Short is the optional single-character name for options.
	Short string
	// Name is assigned from the declaration slot when empty.
	Name    string
	Default any

	// Info is the message surfaced when a Terminator is given. InfoFunc, when
	// set, takes precedence and derives the message from the schema.
	Info     string
	InfoFunc func(*Schema) string

	Value any
	Given bool
}

// Required declares a positional argument with no default.
func Required(description string, t Type) *Argument {
	return &Argument{Kind: KindRequired, Description: description, Type: t}
}

// Default declares an optional positional argument. Its type is the type of def.
func Default(description string, def any) *Argument {
	return &Argument{Kind: KindDefault, Description: description, Type: TypeOf(def), Default: def, Value: def}
}

// Switch declares an option that takes the next token as its value. short may
// be empty.
func Switch(description string, def any, short string) *Argument {
	return &Argument{Kind: KindSwitch, Description: description, Type: TypeOf(def), Default: def, Value: def, Short: short}
}

// Flag declares a boolean option. def must be a bool; anything else is rejected
// when the schema is registered.
func Flag(description string, def any, short string) *Argument {
	return &Argument{Kind: KindFlag, Description: description, Type: TypeOf(def), Default: def, Value: def, Short: short}
}

// List declares the variadic positional argument of elements of type t.
func List(description string, t Type) *Argument {
	def := t.zeroSlice()
	return &Argument{Kind: KindList, Description: description, Type: t, Default: def, Value: def}
}

// Terminator declares a flag that stops parsing and surfaces info instead of
// running the application (e.g. --version).
func Terminator(description, info, short string) *Argument {
	return &Argument{Kind: KindTerminator, Description: description, Type: Bool, Default: false, Value: false, Short: short, Info: info}
}

// DerivedTerminator is a Terminator whose message is computed from the
// registered schema when it fires.
func DerivedTerminator(description string, info func(*Schema) string, short string) *Argument {
	a := Terminator(description, "", short)
	a.InfoFunc = info
	return a
}

// WithName overrides the name that would otherwise come from the declaration slot.
func (a *Argument) WithName(name string) *Argument {
	a.Name = name
	return a
}

// Set coerces raw into the declared type and stores it as the current value.
func (a *Argument) Set(raw any) error {
	switch a.Kind {
	case KindFlag, KindTerminator:
		return a.setFlag(raw)
	case KindList:
		return a.setList(raw)
	}
	v, err := a.Type.Coerce(raw)
	if err != nil {
		return &TypeCoercionError{Arg: a.Name, Type: a.Type, Value: raw, Err: err}
	}
	a.Value = v
	return nil
}

func (a *Argument) setFlag(raw any) error {
	switch v := raw.(type) {
	case bool:
		a.Value = v
	case string:
		switch strings.TrimSpace(v) {
		case "0":
			a.Value = false
		case "1":
			a.Value = true
		default:
			return &TypeCoercionError{Arg: a.Name, Type: Bool, Value: raw, Err: fmt.Errorf("flag `%s` can only take '0' or '1'", a.Name)}
		}
	default:
		// Anything else follows truthiness.
		a.Value = truthy(raw)
	}
	return nil
}

func (a *Argument) setList(raw any) error {
	tokens, ok := raw.([]string)
	if !ok {
		return &TypeCoercionError{Arg: a.Name, Type: a.Type, Value: raw, Err: errUnsupported}
	}
	out := reflect.ValueOf(a.Type.zeroSlice())
	for _, tok := range tokens {
		v, err := a.Type.Coerce(tok)
		if err != nil {
			return &TypeCoercionError{Arg: a.Name, Type: a.Type, Value: tok, Err: err}
		}
		out = reflect.Append(out, reflect.ValueOf(v))
	}
	a.Value = out.Interface()
	return nil
}

func truthy(v any) bool {
	if v == nil {
		return false
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Bool:
		return rv.Bool()
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return rv.Int() != 0
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return rv.Uint() != 0
	case reflect.Float32, reflect.Float64:
		return rv.Float() != 0
	case reflect.String, reflect.Slice, reflect.Map, reflect.Array:
		return rv.Len() != 0
	case reflect.Ptr, reflect.Interface:
		return !rv.IsNil()
	}
	return true
}

// reset restores the pre-parse state.
func (a *Argument) reset() {
	a.Value = a.Default
	a.Given = false
}

// Help returns the formatted help line for the argument. width is the column at
// which descriptions start.
func (a *Argument) Help(width int) string {
	switch a.Kind {
	case KindRequired:
		return fmt.Sprintf(" %s%s%s (required).\n", a.Name, pad(width-len(a.Name)), a.Description)
	case KindDefault:
		return fmt.Sprintf(" %s%s%s (default: %s).\n", a.Name, pad(width-len(a.Name)), a.Description, formatValue(a.Default))
	case KindList:
		return fmt.Sprintf(" %s...%s%s (required).\n", a.Name, pad(width-len(a.Name)-3), a.Description)
	}
	if a.Short == "" {
		return fmt.Sprintf(" --%s%s%s (default: %s).\n", a.Name, pad(width-len(a.Name)-2), a.Description, formatValue(a.Default))
	}
	return fmt.Sprintf(" -%s, --%s%s%s (default: %s).\n", a.Short, a.Name, pad(width-len(a.Name)-6), a.Description, formatValue(a.Default))
}

func pad(n int) string {
	return strings.Repeat(" ", max(n, 1))
}

func formatValue(v any) string {
	switch v := v.(type) {
	case nil:
		return ""
	case time.Duration:
		return v.String()
	}
	return fmt.Sprint(v)
}
