package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/lex00/wetwire-l1-go/internal/graph"
	"github.com/lex00/wetwire-l1-go/internal/logging"
	"github.com/lex00/wetwire-l1-go/internal/template"
)

func newGraphCmd(_ *rootOptions) *cobra.Command {
	var (
		graphFormat string
		output      string
		params      bool
		cluster     bool
	)

	cmd := &cobra.Command{
		Use:   "graph <template>",
		Short: "Render the resource dependency graph",
		Long: `Graph renders Ref, Fn::GetAtt, Fn::Sub and DependsOn edges between the
resources of a template. GetAtt edges are blue, DependsOn-only edges dashed.

Examples:
    wetwire-l1 graph template.json | dot -Tpng -o graph.png
    wetwire-l1 graph template.yaml --graph-format mermaid --cluster`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			format, err := graph.ParseFormat(graphFormat)
			if err != nil {
				return err
			}
			tmpl, err := template.Load(args[0])
			if err != nil {
				return err
			}

			gen := &graph.Generator{Format: format, IncludeParameters: params, ClusterByService: cluster}
			if output == "" {
				return gen.Generate(tmpl, cmd.OutOrStdout())
			}

			f, err := os.Create(output)
			if err != nil {
				return fmt.Errorf("creating %s: %w", output, err)
			}
			defer f.Close()
			if err := gen.Generate(tmpl, f); err != nil {
				return err
			}
			logging.GetLogger(cmd.Context()).Info("wrote graph", zap.String("path", output), zap.String("format", string(format)))
			return nil
		},
	}

	cmd.Flags().StringVarP(&graphFormat, "graph-format", "g", "dot", "Graph format: dot or mermaid")
	cmd.Flags().StringVarP(&output, "output", "o", "", "Output file (default: stdout)")
	cmd.Flags().BoolVar(&params, "params", false, "Include parameter nodes")
	cmd.Flags().BoolVar(&cluster, "cluster", false, "Group resources by service")

	return cmd
}
