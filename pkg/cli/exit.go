// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cli

// Process exit codes returned by the dispatchers.
const (
	ExitOK                = 0
	ExitFailure           = 1
	ExitUnknownSubcommand = 2
)

// ExitError lets an entry point choose the exit code. Message, when set, is
// printed as the command's output.
type ExitError struct {
	Code    int
	Message string
}

func (e *ExitError) Error() string {
	return e.Message
}
