package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	wetwire "github.com/lex00/wetwire-l1-go"
	"github.com/lex00/wetwire-l1-go/internal/validation"
)

func newLintCmd(opts *rootOptions) *cobra.Command {
	var (
		outputFormat string
		ignore       []string
	)

	cmd := &cobra.Command{
		Use:   "lint <template>",
		Short: "Run cfn-lint rules on a template",
		Long: `Lint runs the cfn-lint rule set over a JSON or YAML template.
Warnings and informational findings do not fail the command.

Examples:
    wetwire-l1 lint template.json
    wetwire-l1 lint template.yaml --ignore W3005 --ignore I`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			result, err := validation.LintFile(args[0], validation.Options{Ignore: ignore})
			if err != nil {
				return err
			}
			return outputLintResult(cmd.OutOrStdout(), *result, opts.format(cmd, outputFormat))
		},
	}

	cmd.Flags().StringVarP(&outputFormat, "format", "f", "text", "Output format: text or json")
	cmd.Flags().StringSliceVar(&ignore, "ignore", nil, "Rule IDs or ID prefixes to ignore")

	return cmd
}

func outputLintResult(w io.Writer, result wetwire.LintResult, format string) error {
	switch format {
	case "json":
		if err := printJSON(w, result); err != nil {
			return err
		}

	case "text":
		total := len(result.Errors) + len(result.Warnings) + len(result.Info)
		if total == 0 {
			fmt.Fprintln(w, "No issues found.")
			return nil
		}
		for _, msg := range result.Errors {
			fmt.Fprintf(w, "  ERROR: %s\n", msg)
		}
		for _, msg := range result.Warnings {
			fmt.Fprintf(w, "  WARNING: %s\n", msg)
		}
		for _, msg := range result.Info {
			fmt.Fprintf(w, "  INFO: %s\n", msg)
		}
		fmt.Fprintf(w, "\n%d error(s), %d warning(s), %d info\n", len(result.Errors), len(result.Warnings), len(result.Info))

	default:
		return fmt.Errorf("unknown format: %s", format)
	}

	if !result.Success {
		return errFailed
	}
	return nil
}
