package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/lex00/wetwire-l1-go/internal/importer"
	"github.com/lex00/wetwire-l1-go/internal/logging"
)

func newImportCmd(_ *rootOptions) *cobra.Command {
	var (
		output string
		pkg    string
		name   string
	)

	cmd := &cobra.Command{
		Use:   "import <template>",
		Short: "Generate Go code from an existing template",
		Long: `Import converts a DataBrew, MediaPackage or Lambda layer template into a Go
file whose Build function recreates it with the stack package.

Properties missing from the resource schema are dropped with a warning.

Examples:
    wetwire-l1 import media.yaml -o infra/media.go
    wetwire-l1 import template.json --package media --name live`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			result, err := importer.GenerateFile(args[0], importer.Options{Package: pkg, Name: name})
			if err != nil {
				return err
			}
			for _, w := range result.Warnings {
				fmt.Fprintf(cmd.ErrOrStderr(), "warning: %s\n", w)
			}

			if output == "" {
				_, err := cmd.OutOrStdout().Write(result.Source)
				return err
			}
			if dir := filepath.Dir(output); dir != "." {
				if err := os.MkdirAll(dir, 0755); err != nil {
					return fmt.Errorf("creating %s: %w", dir, err)
				}
			}
			if err := os.WriteFile(output, result.Source, 0644); err != nil {
				return fmt.Errorf("writing %s: %w", output, err)
			}
			logging.GetLogger(cmd.Context()).Info("imported template",
				zap.String("path", output),
				zap.Int("resources", result.Resources),
				zap.Int("warnings", len(result.Warnings)),
			)
			fmt.Fprintf(cmd.OutOrStdout(), "Imported %d resources to %s\n", result.Resources, output)
			return nil
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "Output file (default: stdout)")
	cmd.Flags().StringVar(&pkg, "package", "infra", "Package name of the generated file")
	cmd.Flags().StringVar(&name, "name", "", "Stack name (default: template file name)")

	return cmd
}
