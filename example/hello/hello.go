// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command hello is a "hello, world!" style program built on the single-command
// dispatcher.
package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/yeetrun/argv/pkg/argv"
	"github.com/yeetrun/argv/pkg/cli"
)

const (
	version   = "1.0.1"
	copyright = "hello (" + version + ")\n" +
		"Copyright (c) 2025 AUTHORS. All rights reserved.\n" +
		"Use of this source code is governed by a BSD-style license.\n" +
		"This is free software; see the source for copyright conditions. There is NO\n" +
		"warranty; not even for MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE."
)

func newSchema() *argv.Schema {
	s := argv.NewSchema("hello",
		"A simple `hello, world!` style application.\n"+
			"Pass the -h | --help flag for more information.")
	s.Info = "Report bugs to: https://github.com/yeetrun/argv/issues"
	s.UsageWhenEmpty = true
	s.Declare("user", argv.List("user names", argv.String)).
		Declare("computer", argv.Switch("name of the computer", "Lisa", "c").WithName("computer-name")).
		Declare("message", argv.Switch("the greeting", "how are you?", "m")).
		Declare("verbose", argv.Flag("show output", false, "v")).
		Declare("version", cli.Version("hello", version)).
		Declare("copyright", argv.Terminator("show copyright information", copyright, "C")).
		Declare("describe", argv.DescribeTerminator("D"))
	return s
}

// greeting joins the users the way one would say them out loud.
func greeting(from string, users []string, message string) string {
	var names string
	switch len(users) {
	case 0:
	case 1:
		names = users[0]
	case 2:
		names = users[0] + " and " + users[1]
	default:
		names = strings.Join(users[:len(users)-1], ", ") + " and " + users[len(users)-1]
	}
	return fmt.Sprintf("Incoming message from %s: 'Greetings: %s; %s'", from, names, message)
}

func newCommand(out io.Writer, args []string) *cli.Command {
	return &cli.Command{
		Schema: newSchema(),
		Args:   args,
		Out:    out,
		Main: func(_ context.Context, v argv.Values) error {
			if v.Bool("verbose") {
				fmt.Fprintln(out, greeting(v.String("computer-name"), v.Strings("user"), v.String("message")))
			}
			return nil
		},
	}
}

func main() {
	code, _ := newCommand(os.Stdout, os.Args[1:]).Execute(context.Background())
	os.Exit(code)
}
