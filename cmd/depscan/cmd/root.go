package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var (
	// Version is set by build flags.
	Version   = "0.1.0-dev"
	GitCommit = "unknown"
)

var rootCmd = &cobra.Command{
	Use:   "depscan",
	Short: "Extract dependency declarations from Ruby-style manifests",
	Long: `depscan reads Gemfile, Podfile, *.gemspec, and *.podspec sources and
extracts the dependency declarations they contain, without evaluating
them as Ruby: names, version constraints, git/path pins, require flags,
and group/platform membership.

It never shells out to ruby or bundler. The dialect it understands is a
deliberate subset of Ruby syntax, not the full language.`,
	Version: Version,
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.SetVersionTemplate(fmt.Sprintf(`{{with .Name}}{{printf "%%s " .}}{{end}}{{printf "version %%s" .Version}}
Commit: %s
`, GitCommit))

	rootCmd.PersistentFlags().Int("max-tokens", 0, "override the tokenizer's token-count safety cap (0 = default)")
	rootCmd.PersistentFlags().Int("max-nesting", 0, "override the parser's block-nesting safety cap (0 = default)")
}
