// SPDX-License-Identifier: MIT

// Command matcalc evaluates small dense-matrix expressions from the shell.
//
// Operands are either inline literals ("1,2;3,4": commas between values,
// semicolons between rows) or YAML documents referenced as @path:
//
//	rows: [[1, 2], [3, 4]]
//
// Examples:
//
//	matcalc det "1,2;3,4"
//	matcalc inv @a.yaml
//	matcalc mul @a.yaml "1;0"
package main

import (
	"os"

	"github.com/katalvlaran/lvmatrix/cmd/matcalc/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
