// Command chronosolve is chronosolve's command-line entry point: a thin
// outer layer over solver.Solve and config.Load, grounded on the
// AleutianFOSS example repo's cmd/aleutian layout (one cobra.Command per
// file, a package-level rootCmd, flags bound to package vars in init).
package main

import (
	"fmt"
	"os"

	"github.com/temporalgraph/chronosolve/cmd/chronosolve/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}
