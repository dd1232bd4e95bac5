// Command wetwire-l1 inspects and checks CloudFormation templates built with
// the DataBrew and MediaPackage bindings, and packages the kubectl layer.
//
// Usage:
//
//	wetwire-l1 validate template.json    Check against the resource registry
//	wetwire-l1 lint template.json        Run cfn-lint rules
//	wetwire-l1 diff old.json new.json    Compare two templates
//	wetwire-l1 graph template.json       Render the dependency graph
//	wetwire-l1 list                      List supported resource types
//	wetwire-l1 layer bundle ...          Build the kubectl/helm layer
//	wetwire-l1 version                   Show version
package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/lex00/wetwire-l1-go/internal/config"
	"github.com/lex00/wetwire-l1-go/internal/logging"
)

// errFailed signals a check that already reported its findings.
var errFailed = errors.New("checks failed")

// rootOptions carries global flags and the loaded config to subcommands.
type rootOptions struct {
	verbose    bool
	logFormat  string
	color      string
	configPath string

	cfg     config.Config
	cleanup func()
}

func main() {
	opts := &rootOptions{}
	err := newRootCmd(opts).Execute()
	// PersistentPostRun is skipped when a command fails.
	opts.close()
	if err != nil {
		if !errors.Is(err, errFailed) {
			fmt.Fprintln(os.Stderr, err)
		}
		os.Exit(1)
	}
}

func newRootCmd(opts *rootOptions) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "wetwire-l1",
		Short: "Check CloudFormation templates for DataBrew and MediaPackage",
		Long: `wetwire-l1 works with CloudFormation templates synthesized from the
DataBrew and MediaPackage Go bindings.

Declare resources as Go values and synthesize them with the stack package:

    stk := stack.New("media")
    stk.Add("LiveChannel", &mediapackage.Channel{Id: "live"})
    stk.WriteFile("template.json")

Then check the result:

    wetwire-l1 validate template.json`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return opts.setup(cmd)
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			opts.close()
		},
	}

	rootCmd.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "Enable debug logging")
	rootCmd.PersistentFlags().StringVar(&opts.logFormat, "log-format", "console", "Log encoding: console or json")
	rootCmd.PersistentFlags().StringVar(&opts.color, "color", "auto", "Colored log output: auto, always or never")
	rootCmd.PersistentFlags().StringVar(&opts.configPath, "config", "", "Config file (default ./"+config.DefaultFile+" if present)")

	rootCmd.AddCommand(
		newValidateCmd(opts),
		newLintCmd(opts),
		newDiffCmd(opts),
		newGraphCmd(opts),
		newImportCmd(opts),
		newListCmd(opts),
		newLayerCmd(opts),
		newWatchCmd(opts),
		newVersionCmd(),
	)

	return rootCmd
}

// setup installs the logger, also storing it in the command context, and
// loads the config file.
func (o *rootOptions) setup(cmd *cobra.Command) error {
	switch o.color {
	case "", "auto", "always", "on", "never", "off":
	default:
		return fmt.Errorf("invalid --color %q: must be auto, always or never", o.color)
	}
	logger, cleanup, err := logging.Setup(logging.LogOpts{
		Verbose:  o.verbose,
		Color:    o.color,
		Encoding: o.logFormat,
	})
	if err != nil {
		return err
	}
	o.cleanup = cleanup
	cmd.SetContext(logging.WithLogger(cmd.Context(), logger))

	cfg, err := config.Load(o.configPath)
	if err != nil {
		return err
	}
	o.cfg = cfg
	if cfg.Source != "" {
		logger.Debug("loaded config", zap.String("path", cfg.Source))
	}
	return nil
}

// close flushes the logger and restores the previous globals. It is safe
// to call more than once.
func (o *rootOptions) close() {
	if o.cleanup != nil {
		o.cleanup()
		o.cleanup = nil
	}
}

// format returns the --format flag when given, else the configured default.
func (o *rootOptions) format(cmd *cobra.Command, flag string) string {
	if cmd.Flags().Changed("format") {
		return flag
	}
	return o.cfg.Format
}

// stringOr returns the flag value when it was set on the command line,
// else fallback.
func stringOr(cmd *cobra.Command, name, flag, fallback string) string {
	if cmd.Flags().Changed(name) || fallback == "" {
		return flag
	}
	return fallback
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "wetwire-l1 %s\n", getVersion())
		},
	}
}

func printJSON(w io.Writer, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(w, string(data))
	return err
}
