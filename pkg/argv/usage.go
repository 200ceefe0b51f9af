// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package argv

import (
	"fmt"
	"strings"
)

// helpPadding is added to the longest argument name to get the description column.
const helpPadding = 10

// ensureRegistered registers a schema that has not been registered yet. An
// invalid schema renders as the bare program line.
func (s *Schema) ensureRegistered() {
	if s.registered {
		return
	}
	if err := s.Register(); err != nil {
		s.required, s.defaults, s.switches, s.flags, s.terminators = nil, nil, nil, nil, nil
		s.list = ""
	}
}

// Usage returns the one-line usage statement followed by the description.
func (s *Schema) Usage() string {
	s.ensureRegistered()
	var b strings.Builder
	b.WriteString("usage: ")
	b.WriteString(s.Program)

	for _, name := range s.required {
		fmt.Fprintf(&b, " %s", name)
	}
	for _, name := range s.defaults {
		fmt.Fprintf(&b, " [%s %s]", name, formatValue(s.byName[name].Default))
	}
	if s.list != "" {
		fmt.Fprintf(&b, " %[1]s1 [%[1]s2 ...]", s.list)
	}
	for _, name := range append(s.SwitchNames(), s.flags...) {
		a := s.byName[name]
		if a.Short != "" {
			fmt.Fprintf(&b, " [-%s | --%s %s]", a.Short, name, formatValue(a.Default))
		} else {
			fmt.Fprintf(&b, " [--%s %s]", name, formatValue(a.Default))
		}
	}
	b.WriteString("\n")

	if s.Description != "" {
		b.WriteString("\n")
		b.WriteString(s.Description)
		b.WriteString("\n\n")
	}
	return b.String()
}

// Help returns the usage statement followed by one line per argument:
// positionals first, then switches and flags, then the Info block.
func (s *Schema) Help() string {
	s.ensureRegistered()
	width := 0
	for name := range s.byName {
		width = max(width, len(name))
	}
	width += helpPadding

	var b strings.Builder
	b.WriteString(s.Usage())

	for _, name := range s.required {
		b.WriteString(s.byName[name].Help(width))
	}
	for _, name := range s.defaults {
		b.WriteString(s.byName[name].Help(width))
	}
	if s.list != "" {
		b.WriteString(s.byName[s.list].Help(width))
	}

	b.WriteString("\n")

	for _, name := range s.switches {
		b.WriteString(s.byName[name].Help(width))
	}
	for _, name := range s.flags {
		b.WriteString(s.byName[name].Help(width))
	}

	if s.Info != "" {
		fmt.Fprintf(&b, "\n%s\n", s.Info)
	}
	return b.String()
}
