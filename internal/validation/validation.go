// Package validation runs cfn-lint-go over CloudFormation templates.
package validation

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/lex00/cfn-lint-go/pkg/lint"
	"go.uber.org/zap"

	wetwire "github.com/lex00/wetwire-l1-go"
	"github.com/lex00/wetwire-l1-go/internal/template"
)

// Options configures a lint run.
type Options struct {
	// Ignore lists rule IDs or ID prefixes to drop, e.g. "W3005" or "I".
	Ignore []string
}

// LintFile runs cfn-lint-go on the template at path.
func LintFile(path string, opts Options) (*wetwire.LintResult, error) {
	if _, err := os.Stat(path); err != nil {
		return nil, fmt.Errorf("template not found: %w", err)
	}

	matches, err := lint.New(lint.Options{}).LintFile(path)
	if err != nil {
		return nil, fmt.Errorf("linting %s: %w", path, err)
	}
	zap.L().Debug("cfn-lint finished", zap.String("path", path), zap.Int("matches", len(matches)))

	return classify(matches, opts), nil
}

// LintTemplate writes t to a temporary file and lints it.
func LintTemplate(t *wetwire.Template, opts Options) (*wetwire.LintResult, error) {
	data, err := template.ToJSON(t)
	if err != nil {
		return nil, err
	}

	dir, err := os.MkdirTemp("", "wetwire-l1-lint")
	if err != nil {
		return nil, fmt.Errorf("creating temp dir: %w", err)
	}
	defer os.RemoveAll(dir)

	path := filepath.Join(dir, "template.json")
	if err := os.WriteFile(path, data, 0644); err != nil {
		return nil, fmt.Errorf("writing template: %w", err)
	}
	return LintFile(path, opts)
}

func classify(matches []lint.Match, opts Options) *wetwire.LintResult {
	result := &wetwire.LintResult{}
	for _, match := range matches {
		if ignored(match.Rule.ID, opts.Ignore) {
			continue
		}
		formatted := formatMatch(match)
		switch match.Level {
		case "Error":
			result.Errors = append(result.Errors, formatted)
		case "Warning":
			result.Warnings = append(result.Warnings, formatted)
		default:
			result.Info = append(result.Info, formatted)
		}
	}
	// Warnings are acceptable.
	result.Success = len(result.Errors) == 0
	return result
}

func ignored(id string, prefixes []string) bool {
	for _, p := range prefixes {
		if p != "" && strings.HasPrefix(id, p) {
			return true
		}
	}
	return false
}

// formatMatch renders a match as "ID: message (at path) [line N]".
func formatMatch(match lint.Match) string {
	var b strings.Builder
	b.WriteString(match.Rule.ID)
	b.WriteString(": ")
	b.WriteString(match.Message)

	if len(match.Location.Path) > 0 {
		parts := make([]string, len(match.Location.Path))
		for i, p := range match.Location.Path {
			parts[i] = fmt.Sprintf("%v", p)
		}
		fmt.Fprintf(&b, " (at %s)", strings.Join(parts, "/"))
	}
	if line := match.Location.Start.LineNumber; line > 0 {
		fmt.Fprintf(&b, " [line %d]", line)
	}
	return b.String()
}
