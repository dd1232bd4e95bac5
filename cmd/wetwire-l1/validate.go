package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	wetwire "github.com/lex00/wetwire-l1-go"
	"github.com/lex00/wetwire-l1-go/internal/schema"
	"github.com/lex00/wetwire-l1-go/internal/template"
)

func newValidateCmd(opts *rootOptions) *cobra.Command {
	var (
		outputFormat string
		strict       bool
	)

	cmd := &cobra.Command{
		Use:   "validate <template>",
		Short: "Validate a template against the resource registry",
		Long: `Validate checks a JSON or YAML template offline.

Checks performed:
  - Required properties, including those of nested property types
  - Unknown properties (warnings, errors with --strict)
  - Ref, Fn::GetAtt and Fn::Sub targets, DependsOn and Condition names
  - Resource types outside the registry are reported as warnings

Examples:
    wetwire-l1 validate template.json
    wetwire-l1 validate template.yaml --strict --format json`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			result, err := runValidate(args[0], schema.Options{Strict: strict})
			if err != nil {
				return err
			}
			return outputValidateResult(cmd.OutOrStdout(), result, opts.format(cmd, outputFormat))
		},
	}

	cmd.Flags().StringVarP(&outputFormat, "format", "f", "text", "Output format: text or json")
	cmd.Flags().BoolVar(&strict, "strict", false, "Treat unknown properties as errors")

	return cmd
}

func runValidate(path string, opts schema.Options) (wetwire.ValidateResult, error) {
	tmpl, err := template.Load(path)
	if err != nil {
		return wetwire.ValidateResult{}, err
	}

	checked := schema.ValidateTemplate(tmpl, opts)
	result := wetwire.ValidateResult{
		Success:   checked.Valid,
		Resources: len(tmpl.Resources),
	}
	for _, e := range checked.Errors {
		result.Errors = append(result.Errors, e.Error())
	}
	for _, w := range checked.Warnings {
		result.Warnings = append(result.Warnings, w.Error())
	}
	return result, nil
}

func outputValidateResult(w io.Writer, result wetwire.ValidateResult, format string) error {
	switch format {
	case "json":
		if err := printJSON(w, result); err != nil {
			return err
		}

	case "text":
		if result.Success {
			fmt.Fprintf(w, "Validation passed: %d resources OK\n", result.Resources)
		} else {
			fmt.Fprintln(w, "Validation FAILED:")
		}
		for _, msg := range result.Errors {
			fmt.Fprintf(w, "  ERROR: %s\n", msg)
		}
		for _, msg := range result.Warnings {
			fmt.Fprintf(w, "  WARNING: %s\n", msg)
		}

	default:
		return fmt.Errorf("unknown format: %s", format)
	}

	if !result.Success {
		return errFailed
	}
	return nil
}
