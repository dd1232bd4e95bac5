package main

import (
	"context"
	"fmt"
	"io"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/lex00/wetwire-l1-go/internal/logging"
	"github.com/lex00/wetwire-l1-go/internal/schema"
	"github.com/lex00/wetwire-l1-go/internal/validation"
)

func newWatchCmd(_ *rootOptions) *cobra.Command {
	var (
		noLint   bool
		strict   bool
		debounce time.Duration
	)

	cmd := &cobra.Command{
		Use:   "watch <template>...",
		Short: "Re-validate templates whenever they change",
		Long: `Watch re-runs validate (and lint, unless --no-lint) each time one of the
given template files is written. Rapid successive writes are debounced.

Examples:
    wetwire-l1 watch template.json
    wetwire-l1 watch dist/*.yaml --no-lint --debounce 1s`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			out := cmd.OutOrStdout()
			check := func(path string) {
				runWatchCheck(out, path, !noLint, schema.Options{Strict: strict})
			}

			for _, path := range args {
				check(path)
			}
			fmt.Fprintln(out, "\nWatching for changes... (Ctrl+C to stop)")
			return watchFiles(ctx, args, debounce, check)
		},
	}

	cmd.Flags().BoolVar(&noLint, "no-lint", false, "Only validate, skip cfn-lint")
	cmd.Flags().BoolVar(&strict, "strict", false, "Treat unknown properties as errors")
	cmd.Flags().DurationVar(&debounce, "debounce", 500*time.Millisecond, "Debounce duration for rapid changes")

	return cmd
}

// watchFiles calls onChange with the path of each changed file until ctx
// is done. Parent directories are watched so editors that replace files
// on save are handled.
func watchFiles(ctx context.Context, paths []string, debounce time.Duration, onChange func(string)) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("creating watcher: %w", err)
	}
	defer func() {
		_ = watcher.Close()
	}()

	targets := make(map[string]string, len(paths))
	dirs := make(map[string]bool)
	for _, p := range paths {
		abs, err := filepath.Abs(p)
		if err != nil {
			return err
		}
		targets[abs] = p
		dir := filepath.Dir(abs)
		if !dirs[dir] {
			if err := watcher.Add(dir); err != nil {
				return fmt.Errorf("watching %s: %w", dir, err)
			}
			dirs[dir] = true
		}
	}

	timers := make(map[string]*time.Timer)
	changed := make(chan string, len(paths))

	for {
		select {
		case <-ctx.Done():
			for _, t := range timers {
				t.Stop()
			}
			return nil

		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			abs, err := filepath.Abs(event.Name)
			if err != nil {
				continue
			}
			path, watched := targets[abs]
			if !watched || event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
				continue
			}
			if t := timers[abs]; t != nil {
				t.Stop()
			}
			timers[abs] = time.AfterFunc(debounce, func() {
				select {
				case changed <- path:
				default:
				}
			})

		case path := <-changed:
			onChange(path)

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			logging.GetLogger(ctx).Warn("watch error", zap.Error(err))
		}
	}
}

func runWatchCheck(w io.Writer, path string, lint bool, opts schema.Options) {
	fmt.Fprintf(w, "\n[%s] %s\n", time.Now().Format("15:04:05"), path)

	result, err := runValidate(path, opts)
	if err != nil {
		fmt.Fprintf(w, "  ERROR: %v\n", err)
		return
	}
	_ = outputValidateResult(w, result, "text")

	if !lint {
		return
	}
	lintResult, err := validation.LintFile(path, validation.Options{})
	if err != nil {
		fmt.Fprintf(w, "  lint: %v\n", err)
		return
	}
	_ = outputLintResult(w, *lintResult, "text")
}
