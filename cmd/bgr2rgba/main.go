// Command bgr2rgba converts a generated 4K BGR test pattern to RGBA in
// parallel and reports whether the result verifies.
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newRootCmd(os.Stdout).Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
