// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package argv

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"time"
)

// Type is the declared value type of an argument.
type Type int

const (
	// Invalid marks a default value whose Go type is not supported.
	Invalid Type = iota
	String
	Int
	Float
	Bool
	Duration
)

var errUnsupported = errors.New("unsupported conversion")

func (t Type) String() string {
	switch t {
	case String:
		return "string"
	case Int:
		return "int"
	case Float:
		return "float"
	case Bool:
		return "bool"
	case Duration:
		return "duration"
	}
	return "invalid"
}

// TypeOf returns the declared type for a default value. It returns Invalid for
// Go types the parser cannot coerce into.
func TypeOf(v any) Type {
	switch v.(type) {
	case string:
		return String
	case int:
		return Int
	case float64:
		return Float
	case bool:
		return Bool
	case time.Duration:
		return Duration
	}
	return Invalid
}

// Coerce converts v into the Go representation of t. Values that already have
// the target representation are returned unchanged, so Coerce is stable under
// re-coercion.
func (t Type) Coerce(v any) (any, error) {
	if TypeOf(v) == t && t != Invalid {
		return v, nil
	}
	if s, ok := v.(string); ok {
		return t.parse(s)
	}
	switch t {
	case String:
		return fmt.Sprint(v), nil
	case Float:
		if n, ok := v.(int); ok {
			return float64(n), nil
		}
	case Int:
		if f, ok := v.(float64); ok && f == math.Trunc(f) && f >= math.MinInt && f < math.MaxInt {
			return int(f), nil
		}
	}
	return nil, errUnsupported
}

func (t Type) parse(s string) (any, error) {
	switch t {
	case String:
		return s, nil
	case Int:
		n, err := strconv.Atoi(s)
		if err != nil {
			return nil, err
		}
		return n, nil
	case Float:
		f, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return nil, err
		}
		return f, nil
	case Bool:
		b, err := strconv.ParseBool(s)
		if err != nil {
			return nil, err
		}
		return b, nil
	case Duration:
		d, err := time.ParseDuration(s)
		if err != nil {
			return nil, err
		}
		return d, nil
	}
	return nil, errUnsupported
}

// zeroSlice returns the empty typed slice used as a List's default value.
func (t Type) zeroSlice() any {
	switch t {
	case Int:
		return []int{}
	case Float:
		return []float64{}
	case Bool:
		return []bool{}
	case Duration:
		return []time.Duration{}
	}
	return []string{}
}
