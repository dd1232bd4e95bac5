package main

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	wetwire "github.com/lex00/wetwire-l1-go"
	"github.com/lex00/wetwire-l1-go/resources"
)

func newListCmd(opts *rootOptions) *cobra.Command {
	var (
		outputFormat string
		service      string
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List supported resource types",
		Long: `List shows every resource type with Go bindings, its required
properties and its GetAtt attributes.

Examples:
    wetwire-l1 list
    wetwire-l1 list --service MediaPackage --format json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return outputListResult(cmd.OutOrStdout(), buildList(service), opts.format(cmd, outputFormat))
		},
	}

	cmd.Flags().StringVarP(&outputFormat, "format", "f", "text", "Output format: text or json")
	cmd.Flags().StringVar(&service, "service", "", "Only list one service, e.g. DataBrew")

	return cmd
}

func buildList(service string) wetwire.ListResult {
	result := wetwire.ListResult{Resources: []wetwire.ListResource{}}
	for _, cfType := range resources.Types() {
		if service != "" && !strings.EqualFold(strings.Split(cfType, "::")[1], service) {
			continue
		}
		s, _ := resources.Lookup(cfType)
		result.Resources = append(result.Resources, wetwire.ListResource{
			Type:       cfType,
			GoType:     s.GoType,
			Required:   s.Required,
			Attributes: s.Attributes,
		})
	}
	return result
}

func outputListResult(w io.Writer, result wetwire.ListResult, format string) error {
	switch format {
	case "json":
		return printJSON(w, result)

	case "text":
		if len(result.Resources) == 0 {
			fmt.Fprintln(w, "No resource types found.")
			return nil
		}
		tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
		fmt.Fprintln(tw, "TYPE\tGO TYPE\tREQUIRED\tATTRIBUTES")
		for _, r := range result.Resources {
			fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n", r.Type, r.GoType, orDash(r.Required), orDash(r.Attributes))
		}
		return tw.Flush()

	default:
		return fmt.Errorf("unknown format: %s", format)
	}
}

func orDash(values []string) string {
	if len(values) == 0 {
		return "-"
	}
	return strings.Join(values, ",")
}
