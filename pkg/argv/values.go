// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package argv

import (
	"slices"
	"time"
)

// Values maps argument names to their parsed values. Getters return the zero
// value when the name is unknown or holds a different type.
type Values struct {
	vals  map[string]any
	given map[string]bool
}

func (s *Schema) values() Values {
	v := Values{
		vals:  make(map[string]any, len(s.slots)),
		given: make(map[string]bool, len(s.slots)),
	}
	for _, sl := range s.slots {
		v.vals[sl.arg.Name] = sl.arg.Value
		v.given[sl.arg.Name] = sl.arg.Given
	}
	return v
}

// Get returns the raw value stored under name.
func (v Values) Get(name string) (any, bool) {
	val, ok := v.vals[name]
	return val, ok
}

// Given reports whether the argument was supplied on the command line.
func (v Values) Given(name string) bool {
	return v.given[name]
}

// Names returns the argument names in sorted order.
func (v Values) Names() []string {
	names := make([]string, 0, len(v.vals))
	for name := range v.vals {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

func (v Values) String(name string) string             { return get[string](v, name) }
func (v Values) Int(name string) int                   { return get[int](v, name) }
func (v Values) Float(name string) float64             { return get[float64](v, name) }
func (v Values) Bool(name string) bool                 { return get[bool](v, name) }
func (v Values) Duration(name string) time.Duration    { return get[time.Duration](v, name) }
func (v Values) Strings(name string) []string          { return get[[]string](v, name) }
func (v Values) Ints(name string) []int                { return get[[]int](v, name) }
func (v Values) Floats(name string) []float64          { return get[[]float64](v, name) }
func (v Values) Durations(name string) []time.Duration { return get[[]time.Duration](v, name) }

func get[T any](v Values, name string) T {
	val, _ := v.vals[name].(T)
	return val
}
