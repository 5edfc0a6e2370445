// Command strata renders, hit-tests and benchmarks the demo widget scene.
package main

import (
	"fmt"
	"os"

	"github.com/go-strata/strata/cmd/strata/cmd"
)

func main() {
	if err := cmd.Execute(os.Args[1:]); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
