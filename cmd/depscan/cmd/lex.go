package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/depsuite/depscan/pkg/manifest"
	"github.com/depsuite/depscan/pkg/token"
	"github.com/spf13/cobra"
)

var showPos bool

var lexCmd = &cobra.Command{
	Use:   "lex [file]",
	Short: "Tokenize a manifest source and print the resulting tokens",
	Long: `Tokenize a Gemfile/Podfile/gemspec/podspec and print the token
stream. Useful for debugging the tokenizer on a source that the parser is
silently discarding lines from.

If no file is provided, reads from stdin.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runLex,
}

func init() {
	rootCmd.AddCommand(lexCmd)
	lexCmd.Flags().BoolVar(&showPos, "show-pos", false, "show token positions (line:column)")
}

func runLex(cmd *cobra.Command, args []string) error {
	input, err := readInput(args)
	if err != nil {
		return err
	}

	opts := manifestOptionsFromFlags(cmd)
	toks, err := manifest.Tokenize(input, opts...)
	if err != nil {
		return fmt.Errorf("lex: %w", err)
	}

	for _, t := range toks {
		printToken(t)
		if t.Kind == token.EOF {
			break
		}
	}
	return nil
}

func printToken(t token.Token) {
	output := fmt.Sprintf("[%-10s] %q", t.Kind, t.Text)
	if showPos {
		output += fmt.Sprintf(" @%d:%d", t.Line, t.Column)
	}
	fmt.Println(output)
}

func readInput(args []string) (string, error) {
	if len(args) == 1 {
		data, err := os.ReadFile(args[0])
		if err != nil {
			return "", fmt.Errorf("reading %s: %w", args[0], err)
		}
		return string(data), nil
	}
	data, err := io.ReadAll(os.Stdin)
	if err != nil {
		return "", fmt.Errorf("reading stdin: %w", err)
	}
	return string(data), nil
}

func manifestOptionsFromFlags(cmd *cobra.Command) []manifest.Option {
	var opts []manifest.Option
	if n, _ := cmd.Flags().GetInt("max-tokens"); n > 0 {
		opts = append(opts, manifest.WithMaxTokens(n))
	}
	if n, _ := cmd.Flags().GetInt("max-nesting"); n > 0 {
		opts = append(opts, manifest.WithMaxNestingDepth(n))
	}
	return opts
}
