// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cli

import (
	"fmt"

	"github.com/Masterminds/semver/v3"
	"github.com/yeetrun/argv/pkg/argv"
)

// Version returns a --version (-V) Terminator that prints "program (version)".
// It panics if version is not a valid semantic version.
func Version(program, version string) *argv.Argument {
	v, err := semver.NewVersion(version)
	if err != nil {
		panic(fmt.Sprintf("cli: invalid version %q for %s: %v", version, program, err))
	}
	return argv.Terminator("show version information", fmt.Sprintf("%s (%s)", program, v), "V")
}
