// SPDX-License-Identifier: MIT

// Command homog evaluates exact homogeneous-coordinate algebra over the
// matrices and vectors of a YAML scene file.
//
//	homog -f scene.yaml det sample
//	homog -f scene.yaml transform move p
//	homog -f scene.yaml --expand minor sample 0 1
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
