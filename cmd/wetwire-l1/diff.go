package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	wetwire "github.com/lex00/wetwire-l1-go"
	"github.com/lex00/wetwire-l1-go/internal/differ"
)

func newDiffCmd(opts *rootOptions) *cobra.Command {
	var (
		outputFormat string
		ignoreOrder  bool
		exitCode     bool
	)

	cmd := &cobra.Command{
		Use:   "diff <before> <after>",
		Short: "Compare the resources of two templates",
		Long: `Diff reports resources added, removed and modified between two
JSON or YAML templates. Property changes are listed by path.

Examples:
    wetwire-l1 diff old.json new.json
    wetwire-l1 diff old.yaml new.yaml --ignore-order --format json`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			result, err := differ.CompareFiles(args[0], args[1], differ.Options{IgnoreOrder: ignoreOrder})
			if err != nil {
				return err
			}
			out := wetwire.DiffResult{Success: true, Diff: result.Diff, Summary: result.Summary}
			if err := outputDiffResult(cmd.OutOrStdout(), out, opts.format(cmd, outputFormat)); err != nil {
				return err
			}
			if exitCode && !result.Empty() {
				return errFailed
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&outputFormat, "format", "f", "text", "Output format: text or json")
	cmd.Flags().BoolVar(&ignoreOrder, "ignore-order", false, "Ignore list element order")
	cmd.Flags().BoolVar(&exitCode, "exit-code", false, "Exit with status 1 when the templates differ")

	return cmd
}

func outputDiffResult(w io.Writer, result wetwire.DiffResult, format string) error {
	switch format {
	case "json":
		return printJSON(w, result)

	case "text":
		if result.Summary.Total == 0 {
			fmt.Fprintln(w, "No differences.")
			return nil
		}
		for _, e := range result.Diff.Added {
			fmt.Fprintf(w, "+ %s (%s)\n", e.Resource, e.Type)
		}
		for _, e := range result.Diff.Removed {
			fmt.Fprintf(w, "- %s (%s)\n", e.Resource, e.Type)
		}
		for _, e := range result.Diff.Modified {
			fmt.Fprintf(w, "~ %s (%s)\n", e.Resource, e.Type)
			for _, c := range e.Changes {
				fmt.Fprintf(w, "    %s\n", c)
			}
		}
		fmt.Fprintf(w, "\n%d added, %d removed, %d modified\n", result.Summary.Added, result.Summary.Removed, result.Summary.Modified)
		return nil

	default:
		return fmt.Errorf("unknown format: %s", format)
	}
}
