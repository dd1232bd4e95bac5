// Package differ provides semantic comparison of CloudFormation templates.
package differ

import (
	"encoding/json"
	"fmt"
	"reflect"
	"sort"
	"strings"

	wetwire "github.com/lex00/wetwire-l1-go"
	"github.com/lex00/wetwire-l1-go/internal/template"
)

// Options configures the differ.
type Options struct {
	// IgnoreOrder treats lists as unordered (e.g. Tags, Rules).
	IgnoreOrder bool
}

// Result contains the difference between two templates.
type Result struct {
	Diff    wetwire.TemplateDiff
	Summary wetwire.DiffSummary
}

// Empty reports whether the templates are equivalent.
func (r *Result) Empty() bool {
	return r.Summary.Total == 0
}

// Compare compares the resources of two templates.
func Compare(before, after *wetwire.Template, opts Options) *Result {
	result := &Result{}

	for name, def := range after.Resources {
		if _, exists := before.Resources[name]; !exists {
			result.Diff.Added = append(result.Diff.Added, wetwire.DiffEntry{Resource: name, Type: def.Type})
		}
	}

	for name, old := range before.Resources {
		def, exists := after.Resources[name]
		if !exists {
			result.Diff.Removed = append(result.Diff.Removed, wetwire.DiffEntry{Resource: name, Type: old.Type})
			continue
		}
		if changes := compareResources(old, def, opts); len(changes) > 0 {
			result.Diff.Modified = append(result.Diff.Modified, wetwire.DiffEntry{
				Resource: name,
				Type:     def.Type,
				Changes:  changes,
			})
		}
	}

	sortEntries(result.Diff.Added)
	sortEntries(result.Diff.Removed)
	sortEntries(result.Diff.Modified)

	result.Summary = wetwire.DiffSummary{
		Added:    len(result.Diff.Added),
		Removed:  len(result.Diff.Removed),
		Modified: len(result.Diff.Modified),
	}
	result.Summary.Total = result.Summary.Added + result.Summary.Removed + result.Summary.Modified

	return result
}

// CompareFiles loads two JSON or YAML templates and compares them.
func CompareFiles(before, after string, opts Options) (*Result, error) {
	t1, err := template.Load(before)
	if err != nil {
		return nil, fmt.Errorf("loading %s: %w", before, err)
	}
	t2, err := template.Load(after)
	if err != nil {
		return nil, fmt.Errorf("loading %s: %w", after, err)
	}
	return Compare(t1, t2, opts), nil
}

func compareResources(before, after wetwire.ResourceDef, opts Options) []string {
	var changes []string

	if before.Type != after.Type {
		changes = append(changes, fmt.Sprintf("Type changed: %s -> %s", before.Type, after.Type))
	}

	changes = append(changes, compareProperties("", before.Properties, after.Properties, opts)...)

	if !equalStringSlices(sortedCopy(before.DependsOn), sortedCopy(after.DependsOn)) {
		changes = append(changes, "DependsOn changed")
	}
	for _, attr := range []struct{ name, before, after string }{
		{"Condition", before.Condition, after.Condition},
		{"DeletionPolicy", before.DeletionPolicy, after.DeletionPolicy},
		{"UpdateReplacePolicy", before.UpdateReplacePolicy, after.UpdateReplacePolicy},
	} {
		if attr.before != attr.after {
			changes = append(changes, fmt.Sprintf("%s changed: %q -> %q", attr.name, attr.before, attr.after))
		}
	}
	if !reflect.DeepEqual(before.Metadata, after.Metadata) && (len(before.Metadata) > 0 || len(after.Metadata) > 0) {
		changes = append(changes, "Metadata changed")
	}

	return changes
}

// compareProperties compares property maps, descending into nested
// property types so changes are reported at their full path.
func compareProperties(prefix string, before, after map[string]any, opts Options) []string {
	var changes []string

	for key, val2 := range after {
		path := join(prefix, key)
		val1, exists := before[key]
		if !exists {
			changes = append(changes, path+" added")
			continue
		}

		m1, ok1 := asProperties(val1)
		m2, ok2 := asProperties(val2)
		if ok1 && ok2 {
			changes = append(changes, compareProperties(path, m1, m2, opts)...)
			continue
		}

		if !deepEqual(val1, val2, opts) {
			changes = append(changes, path+" modified")
		}
	}

	for key := range before {
		if _, exists := after[key]; !exists {
			changes = append(changes, join(prefix, key)+" removed")
		}
	}

	sort.Strings(changes)
	return changes
}

// asProperties returns v as a nested property map. Intrinsic function
// objects are compared as whole values.
func asProperties(v any) (map[string]any, bool) {
	m, ok := v.(map[string]any)
	if !ok {
		return nil, false
	}
	if len(m) == 1 {
		for k := range m {
			if k == "Ref" || k == "Condition" || strings.HasPrefix(k, "Fn::") {
				return nil, false
			}
		}
	}
	return m, true
}

func join(prefix, key string) string {
	if prefix == "" {
		return key
	}
	return prefix + "." + key
}

func deepEqual(a, b any, opts Options) bool {
	if opts.IgnoreOrder {
		a = normalizeValue(a)
		b = normalizeValue(b)
	}
	return reflect.DeepEqual(a, b)
}

// normalizeValue sorts every list by the JSON encoding of its elements.
func normalizeValue(v any) any {
	switch val := v.(type) {
	case []any:
		result := make([]any, len(val))
		keys := make([]string, len(val))
		for i, item := range val {
			result[i] = normalizeValue(item)
		}
		for i := range result {
			data, _ := json.Marshal(result[i])
			keys[i] = string(data)
		}
		sort.Sort(byKey{keys: keys, values: result})
		return result
	case map[string]any:
		result := make(map[string]any, len(val))
		for k, item := range val {
			result[k] = normalizeValue(item)
		}
		return result
	default:
		return v
	}
}

type byKey struct {
	keys   []string
	values []any
}

func (s byKey) Len() int           { return len(s.keys) }
func (s byKey) Less(i, j int) bool { return s.keys[i] < s.keys[j] }
func (s byKey) Swap(i, j int) {
	s.keys[i], s.keys[j] = s.keys[j], s.keys[i]
	s.values[i], s.values[j] = s.values[j], s.values[i]
}

func sortedCopy(values []string) []string {
	out := append([]string(nil), values...)
	sort.Strings(out)
	return out
}

func equalStringSlices(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func sortEntries(entries []wetwire.DiffEntry) {
	sort.Slice(entries, func(i, j int) bool {
		return entries[i].Resource < entries[j].Resource
	})
}
