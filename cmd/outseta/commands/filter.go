package commands

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"
	"github.com/fivetwenty-io/outseta-client/internal/constants"
)

// itemFilter is a compiled --filter expression. Items are exposed to the
// expression through their JSON field names, for example
// `Name startsWith "Acme"` or `daysSince(Created) < 30`.
type itemFilter struct {
	program *vm.Program
	source  string
}

func filterHelpers() map[string]interface{} {
	return map[string]interface{}{
		"daysSince": func(value interface{}) int {
			t, ok := parseFilterTime(value)
			if !ok {
				return -1
			}

			return int(time.Since(t).Hours() / 24)
		},
		"containsFold": func(str, substr string) bool {
			return strings.Contains(strings.ToLower(str), strings.ToLower(substr))
		},
	}
}

// compileFilter compiles expression, returning nil for a blank expression.
func compileFilter(expression string) (*itemFilter, error) {
	if strings.TrimSpace(expression) == "" {
		return nil, nil //nolint:nilnil // no filter is a valid result
	}

	program, err := expr.Compile(expression,
		expr.Env(filterHelpers()),
		expr.AllowUndefinedVariables(),
		expr.AsBool(),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to compile filter expression: %w", err)
	}

	return &itemFilter{program: program, source: expression}, nil
}

// match evaluates the filter against item.
func (f *itemFilter) match(item interface{}) (bool, error) {
	env, err := filterEnv(item)
	if err != nil {
		return false, err
	}

	result, err := expr.Run(f.program, env)
	if err != nil {
		return false, fmt.Errorf("failed to evaluate filter %q: %w", f.source, err)
	}

	matched, ok := result.(bool)
	if !ok {
		return false, constants.ErrFilterNotBool
	}

	return matched, nil
}

// applyFilter keeps the items filter matches. A nil filter keeps everything.
func applyFilter[T any](filter *itemFilter, items []T) ([]T, error) {
	if filter == nil {
		return items, nil
	}

	kept := make([]T, 0, len(items))

	for _, item := range items {
		matched, err := filter.match(item)
		if err != nil {
			return nil, err
		}

		if matched {
			kept = append(kept, item)
		}
	}

	return kept, nil
}

func filterEnv(item interface{}) (map[string]interface{}, error) {
	data, err := json.Marshal(item)
	if err != nil {
		return nil, fmt.Errorf("preparing filter input: %w", err)
	}

	env := make(map[string]interface{})

	err = json.Unmarshal(data, &env)
	if err != nil {
		return nil, fmt.Errorf("preparing filter input: %w", err)
	}

	for name, helper := range filterHelpers() {
		env[name] = helper
	}

	return env, nil
}

func parseFilterTime(value interface{}) (time.Time, bool) {
	text, ok := value.(string)
	if !ok {
		return time.Time{}, false
	}

	for _, layout := range []string{"2006-01-02T15:04:05", time.RFC3339Nano, dateFormat} {
		if t, err := time.Parse(layout, text); err == nil {
			return t, true
		}
	}

	return time.Time{}, false
}
