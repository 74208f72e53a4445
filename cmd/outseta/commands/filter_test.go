package commands

import (
	"testing"
	"time"

	"github.com/fivetwenty-io/outseta-client/pkg/outseta"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCompileFilterBlank(t *testing.T) {
	t.Parallel()

	filter, err := compileFilter("   ")
	require.NoError(t, err)
	assert.Nil(t, filter)

	items := []int{1, 2, 3}
	kept, err := applyFilter(filter, items)
	require.NoError(t, err)
	assert.Equal(t, items, kept)
}

func TestCompileFilterErrors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		expression string
	}{
		{name: "syntax error", expression: `Name ==`},
		{name: "not boolean", expression: `"text"`},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			t.Parallel()

			filter, err := compileFilter(testCase.expression)
			require.Error(t, err)
			assert.Nil(t, filter)
			assert.Contains(t, err.Error(), "failed to compile filter expression")
		})
	}
}

//nolint:funlen // Test functions can be longer for comprehensive testing
func TestApplyFilter(t *testing.T) {
	t.Parallel()

	recent := outseta.NewTimestamp(time.Now().Add(-48 * time.Hour))
	old := outseta.NewTimestamp(time.Now().Add(-400 * 24 * time.Hour))

	accounts := []outseta.Account{
		{Entity: outseta.Entity{UID: "a1", Created: recent}, Name: "Acme Corp", AccountStage: outseta.Ptr(outseta.AccountStageSubscribing)},
		{Entity: outseta.Entity{UID: "a2", Created: old}, Name: "Globex", AccountStage: outseta.Ptr(outseta.AccountStageExpired)},
		{Entity: outseta.Entity{UID: "a3"}, Name: "acme labs"},
	}

	tests := []struct {
		name       string
		expression string
		want       []string
	}{
		{name: "equality", expression: `Name == "Globex"`, want: []string{"a2"}},
		{name: "prefix", expression: `Name startsWith "Acme"`, want: []string{"a1"}},
		{name: "case-insensitive contains", expression: `containsFold(Name, "ACME")`, want: []string{"a1", "a3"}},
		{name: "numeric enum", expression: `AccountStage == 5`, want: []string{"a2"}},
		{name: "missing field", expression: `AccountStage == nil`, want: []string{"a3"}},
		{name: "recent records", expression: `Created != nil && daysSince(Created) < 30`, want: []string{"a1"}},
		{name: "no match", expression: `Name == "Initech"`, want: []string{}},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			t.Parallel()

			filter, err := compileFilter(testCase.expression)
			require.NoError(t, err)

			kept, err := applyFilter(filter, accounts)
			require.NoError(t, err)

			uids := make([]string, 0, len(kept))
			for _, account := range kept {
				uids = append(uids, account.UID)
			}

			assert.Equal(t, testCase.want, uids)
		})
	}
}

func TestParseFilterTime(t *testing.T) {
	t.Parallel()

	parsed, ok := parseFilterTime("2024-07-04T10:30:00")
	require.True(t, ok)
	assert.Equal(t, 2024, parsed.Year())

	_, ok = parseFilterTime("2024-07-04")
	assert.True(t, ok)

	_, ok = parseFilterTime(42)
	assert.False(t, ok)

	_, ok = parseFilterTime("yesterday")
	assert.False(t, ok)
}
