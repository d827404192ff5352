// Command depscan extracts dependency declarations from Gemfile, Podfile,
// *.gemspec, and *.podspec sources.
package main

import (
	"fmt"
	"os"

	"github.com/depsuite/depscan/cmd/depscan/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
