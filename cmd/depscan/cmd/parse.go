package cmd

import (
	"encoding/json"
	"fmt"

	"github.com/depsuite/depscan/pkg/manifest"
	"github.com/goccy/go-yaml"
	"github.com/spf13/cobra"
	"github.com/tidwall/gjson"
	"github.com/tidwall/sjson"
)

var (
	outputFormat string
	queryPath    string
	setExprs     []string
)

var parseCmd = &cobra.Command{
	Use:   "parse [file]",
	Short: "Parse a manifest source and print its dependency declarations",
	Long: `Parse a Gemfile/Podfile/gemspec/podspec and print the extracted
ParseOutput: the package's own name/version (when declared by a spec
constructor) and its runtime/development dependency groups.

If no file is provided, reads from stdin.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runParse,
}

func init() {
	rootCmd.AddCommand(parseCmd)
	parseCmd.Flags().StringVar(&outputFormat, "format", "json", "output format: json or yaml")
	parseCmd.Flags().StringVar(&queryPath, "query", "", "print only the gjson path matched within the JSON output")
	parseCmd.Flags().StringArrayVar(&setExprs, "set", nil, "patch the JSON output before printing, as path=value (repeatable)")
}

func runParse(cmd *cobra.Command, args []string) error {
	input, err := readInput(args)
	if err != nil {
		return err
	}

	out, err := manifest.Parse(input, manifestOptionsFromFlags(cmd)...)
	if err != nil {
		return fmt.Errorf("parse: %w", err)
	}

	doc, err := json.Marshal(out)
	if err != nil {
		return fmt.Errorf("encoding result: %w", err)
	}

	for _, expr := range setExprs {
		path, value, ok := splitSetExpr(expr)
		if !ok {
			return fmt.Errorf("--set %q: expected path=value", expr)
		}
		doc, err = sjson.SetBytes(doc, path, value)
		if err != nil {
			return fmt.Errorf("--set %q: %w", expr, err)
		}
	}

	if queryPath != "" {
		result := gjson.GetBytes(doc, queryPath)
		fmt.Println(result.String())
		return nil
	}

	switch outputFormat {
	case "json":
		var pretty map[string]any
		if err := json.Unmarshal(doc, &pretty); err != nil {
			return fmt.Errorf("re-decoding patched result: %w", err)
		}
		encoded, err := json.MarshalIndent(pretty, "", "  ")
		if err != nil {
			return fmt.Errorf("encoding result: %w", err)
		}
		fmt.Println(string(encoded))

	case "yaml":
		var generic any
		if err := json.Unmarshal(doc, &generic); err != nil {
			return fmt.Errorf("re-decoding patched result: %w", err)
		}
		encoded, err := yaml.Marshal(generic)
		if err != nil {
			return fmt.Errorf("encoding result as yaml: %w", err)
		}
		fmt.Print(string(encoded))

	default:
		return fmt.Errorf("unknown --format %q: want json or yaml", outputFormat)
	}

	return nil
}

func splitSetExpr(expr string) (path, value string, ok bool) {
	for i := 0; i < len(expr); i++ {
		if expr[i] == '=' {
			return expr[:i], expr[i+1:], true
		}
	}
	return "", "", false
}
