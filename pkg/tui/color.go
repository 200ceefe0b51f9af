// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package tui

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fatih/color"
	"golang.org/x/term"
)

var isTerminalFn = term.IsTerminal

// Colorizer wraps text in terminal colors when Enabled.
type Colorizer struct {
	Enabled bool
}

// NewColorizer returns a Colorizer that is enabled only when w is a terminal
// and color has not been disabled globally (NO_COLOR, color.NoColor).
func NewColorizer(w io.Writer) Colorizer {
	f, ok := w.(*os.File)
	if !ok || color.NoColor {
		return Colorizer{}
	}
	if !isTerminalFn(int(f.Fd())) {
		return Colorizer{}
	}
	return Colorizer{Enabled: true}
}

func (c Colorizer) Wrap(attr color.Attribute, text string) string {
	if !c.Enabled {
		return text
	}
	col := color.New(attr)
	col.EnableColor()
	return col.Sprint(text)
}

// Printer writes the single message a dispatcher emits.
type Printer struct {
	W     io.Writer
	Color Colorizer
}

func NewPrinter(w io.Writer) Printer {
	return Printer{W: w, Color: NewColorizer(w)}
}

// Message prints msg, adding a trailing newline when missing.
func (p Printer) Message(msg string) {
	fmt.Fprint(p.W, withNewline(msg))
}

// Failure prints msg in red.
func (p Printer) Failure(msg string) {
	fmt.Fprint(p.W, p.Color.Wrap(color.FgRed, strings.TrimSuffix(msg, "\n"))+"\n")
}

func withNewline(s string) string {
	if strings.HasSuffix(s, "\n") {
		return s
	}
	return s + "\n"
}
