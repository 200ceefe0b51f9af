// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package argv

import (
	"errors"
	"fmt"
	"maps"
	"slices"
	"strings"
)

// Outcome is the terminal state of a parse.
type Outcome int

const (
	// Done means every argument was assigned and the application should run.
	Done Outcome = iota
	// Terminated means a Terminator (e.g. --help) was given. Not an error.
	Terminated
	// Failed means the tokens or the schema were invalid.
	Failed
)

func (o Outcome) String() string {
	switch o {
	case Done:
		return "done"
	case Terminated:
		return "terminated"
	case Failed:
		return "failed"
	}
	return fmt.Sprintf("outcome(%d)", int(o))
}

// Result is the outcome of Schema.Parse.
type Result struct {
	Outcome Outcome
	// Values holds the assigned values when Outcome is Done.
	Values Values
	// Message is the text to display for Terminated and Failed outcomes.
	Message string
	// Err is a *SchemaError or *ParseError when Outcome is Failed.
	Err error
}

func failed(err error) Result {
	return Result{Outcome: Failed, Message: err.Error(), Err: err}
}

// Parse resolves the raw tokens (without the program name) against the schema.
// The schema is registered first if needed, and every argument is reset to its
// default before scanning.
func (s *Schema) Parse(args []string) Result {
	if !s.registered {
		if err := s.Register(); err != nil {
			return failed(err)
		}
	}
	s.reset()

	if len(args) == 0 && s.UsageWhenEmpty {
		return Result{Outcome: Terminated, Message: s.Usage()}
	}

	p := &parser{
		schema:  s,
		args:    args,
		free:    make(map[int]string),
		pending: make(map[int]string),
	}
	if err := p.scan(); err != nil {
		return failed(err)
	}
	if msg, ok := p.terminated(); ok {
		return Result{Outcome: Terminated, Message: msg}
	}
	if err := p.assign(); err != nil {
		return failed(err)
	}
	return Result{Outcome: Done, Values: s.values()}
}

// parser is the transient working state of one Parse call.
type parser struct {
	schema *Schema
	args   []string
	// free maps token index to positional candidates. Entries are removed as
	// switches consume them.
	free map[int]string
	// pending maps a switch token index to the switch name awaiting a value.
	pending map[int]string
}

func (p *parser) scan() error {
	for i, tok := range p.args {
		if !strings.HasPrefix(tok, "-") {
			p.free[i] = tok
			continue
		}
		if len(tok) < 2 {
			return parseErrorf(tok, "'-' is not a recognized flag or switch!")
		}
		if err := p.interpret(i, tok[1:]); err != nil {
			return err
		}
	}
	return nil
}

func (p *parser) interpret(index int, option string) error {
	if option[0] == '-' {
		if len(option) < 2 {
			return parseErrorf("--", "'--' is not a recognized flag or switch!")
		}
		return p.longForm(index, option[1:])
	}
	return p.shortForm(index, option)
}

func (p *parser) longForm(index int, name string) error {
	a, ok := p.schema.byName[name]
	if !ok {
		return parseErrorf("--"+name, "--%s does not name a flag or switch!", name)
	}
	switch a.Kind {
	case KindFlag, KindTerminator:
		return p.toggle(a)
	case KindSwitch:
		return p.await(index, a)
	}
	return parseErrorf("--"+name, "--%s does not name a flag or switch!", name)
}

func (p *parser) shortForm(index int, option string) error {
	chars := []rune(option)
	if len(chars) > 1 {
		for _, c := range chars {
			a := p.byShort(string(c), KindFlag, KindTerminator)
			if a == nil {
				return parseErrorf("-"+string(c), "`%c` does not name a flag!", c)
			}
			if err := p.toggle(a); err != nil {
				return err
			}
		}
		return nil
	}
	if a := p.byShort(option, KindFlag, KindTerminator); a != nil {
		return p.toggle(a)
	}
	if a := p.byShort(option, KindSwitch); a != nil {
		return p.await(index, a)
	}
	return parseErrorf("-"+option, "`%s` does not name a flag or switch!", option)
}

// byShort returns the first argument of one of the given kinds whose short name
// is short, in declaration order.
func (p *parser) byShort(short string, kinds ...Kind) *Argument {
	for _, sl := range p.schema.slots {
		if sl.arg.Short == short && slices.Contains(kinds, sl.arg.Kind) {
			return sl.arg
		}
	}
	return nil
}

func (p *parser) toggle(a *Argument) error {
	if a.Given {
		return parseErrorf(a.Name, "The `%s` flag was already given!", a.Name)
	}
	if err := a.Set(true); err != nil {
		return err
	}
	a.Given = true
	return nil
}

func (p *parser) await(index int, a *Argument) error {
	if a.Given {
		return parseErrorf(a.Name, "The `%s` switch was already given!", a.Name)
	}
	p.pending[index] = a.Name
	a.Given = true
	return nil
}

// terminated returns the message of the first given Terminator in declaration
// order.
func (p *parser) terminated() (string, bool) {
	for _, name := range p.schema.terminators {
		a := p.schema.byName[name]
		if !a.Given {
			continue
		}
		if a.InfoFunc != nil {
			return a.InfoFunc(p.schema), true
		}
		return a.Info, true
	}
	return "", false
}

func (p *parser) assign() error {
	s := p.schema

	for _, i := range slices.Sorted(maps.Keys(p.pending)) {
		name := p.pending[i]
		tok, ok := p.free[i+1]
		if !ok {
			if i+1 >= len(p.args) {
				return parseErrorf(name, "--%s expected a free argument to follow but there were none left!", name)
			}
			return parseErrorf(name, "--%s expected a free argument to follow but found `%s` instead!", name, p.args[i+1])
		}
		if err := set(s.byName[name], tok); err != nil {
			return err
		}
		delete(p.free, i+1)
	}

	remaining := make([]string, 0, len(p.free))
	for _, i := range slices.Sorted(maps.Keys(p.free)) {
		remaining = append(remaining, p.free[i])
	}

	if len(remaining) < len(s.required) {
		missing := make([]string, 0, len(s.required)-len(remaining))
		for _, name := range s.required[len(remaining):] {
			missing = append(missing, "`"+name+"`")
		}
		return parseErrorf(s.required[len(remaining)], "Insufficient arguments given: %s have not been provided.", strings.Join(missing, ", "))
	}

	for _, name := range s.required {
		if err := set(s.byName[name], remaining[0]); err != nil {
			return err
		}
		remaining = remaining[1:]
	}

	if len(remaining) > len(s.defaults) && s.list == "" {
		return parseErrorf("", "Too many arguments given! Only %d default arguments available but %d given.", len(s.defaults), len(remaining))
	}

	for _, name := range s.defaults {
		if len(remaining) == 0 {
			break
		}
		if err := set(s.byName[name], remaining[0]); err != nil {
			return err
		}
		remaining = remaining[1:]
	}

	switch {
	case len(remaining) == 0 && s.list == "":
		return nil
	case len(remaining) > 0 && s.list == "":
		return parseErrorf(remaining[0], "There were %d too many arguments!", len(remaining))
	case len(remaining) == 0:
		return parseErrorf(s.list, "Expected at least one argument for `%s`!", s.list)
	}
	return set(s.byName[s.list], remaining)
}

// set assigns a value during parsing, converting coercion failures into a
// ParseError.
func set(a *Argument, raw any) error {
	err := a.Set(raw)
	if err == nil {
		a.Given = true
		return nil
	}
	var te *TypeCoercionError
	if errors.As(err, &te) {
		return &ParseError{Token: a.Name, Msg: te.Error(), Err: err}
	}
	return err
}
