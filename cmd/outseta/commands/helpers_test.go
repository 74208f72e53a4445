package commands

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/fivetwenty-io/outseta-client/internal/constants"
	"github.com/fivetwenty-io/outseta-client/pkg/outseta"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEnumLabel(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		value interface{ String() string }
		want  string
	}{
		{name: "single word", value: outseta.AccountStageTrialing, want: "Trialing"},
		{name: "camel case", value: outseta.AccountStageTrialExpired, want: "Trial Expired"},
		{name: "long name", value: outseta.ActivityTypePersonEmailBounce, want: "Person Email Bounce"},
		{name: "unknown value", value: outseta.EntityType(42), want: "42"},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, testCase.want, enumLabel(testCase.value))
		})
	}
}

func TestEnumValue(t *testing.T) {
	t.Parallel()

	assert.Equal(t, constants.NotAvailable, enumValue[outseta.AccountStage](nil))

	stage := outseta.AccountStagePastDue
	assert.Equal(t, "Past Due", enumValue(&stage))
}

func TestParseEnum(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		value   string
		want    outseta.AccountStage
		wantErr bool
	}{
		{name: "exact name", value: "Trialing", want: outseta.AccountStageTrialing},
		{name: "lower case", value: "subscribing", want: outseta.AccountStageSubscribing},
		{name: "dashed", value: "trial-expired", want: outseta.AccountStageTrialExpired},
		{name: "underscored", value: "PAST_DUE", want: outseta.AccountStagePastDue},
		{name: "number", value: "5", want: outseta.AccountStageExpired},
		{name: "unknown", value: "archived", wantErr: true},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			t.Parallel()

			got, err := parseEnum("stage", testCase.value, accountStages...)
			if testCase.wantErr {
				require.Error(t, err)
				assert.ErrorIs(t, err, constants.ErrInvalidEnumName)
				assert.Contains(t, err.Error(), "--stage")

				return
			}

			require.NoError(t, err)
			assert.Equal(t, testCase.want, got)
		})
	}
}

func TestFormatters(t *testing.T) {
	t.Parallel()

	assert.Equal(t, constants.NotAvailable, formatInt(nil))
	assert.Equal(t, "7", formatInt(outseta.Ptr(7)))
	assert.Equal(t, constants.NotAvailable, formatFloat(nil))
	assert.Equal(t, "19.50", formatFloat(outseta.Ptr(19.5)))
	assert.Equal(t, "true", formatBool(outseta.Ptr(true)))
	assert.Equal(t, constants.NotAvailable, formatTimestamp(nil))
	assert.Equal(t, constants.NotAvailable, orNA(""))
	assert.Equal(t, "x", orNA("x"))
}

func TestMaskSecret(t *testing.T) {
	t.Parallel()

	assert.Empty(t, maskSecret(""))
	assert.Equal(t, constants.MaskedSecret, maskSecret("abc"))
	assert.Equal(t, "abcd"+constants.MaskedSecret, maskSecret("abcdefgh"))
}

// pagedAccounts serves total accounts in pages and records requested pages.
type pagedAccounts struct {
	total     int
	requested []int
	failAt    int
}

func (p *pagedAccounts) list(_ context.Context, page *outseta.PageRequest) (*outseta.ItemPage[outseta.Account], error) {
	number, _ := page.PageNum()
	size, _ := page.Size()

	p.requested = append(p.requested, number)

	if p.failAt > 0 && number == p.failAt {
		return nil, errors.New("boom")
	}

	start := number * size
	items := make([]outseta.Account, 0, size)

	for i := start; i < start+size && i < p.total; i++ {
		items = append(items, outseta.Account{Name: "account"})
	}

	return &outseta.ItemPage[outseta.Account]{
		Metadata: outseta.Metadata{Limit: size, Offset: start, Total: p.total},
		Items:    items,
	}, nil
}

func firstPage(t *testing.T, size int) *outseta.PageRequest {
	t.Helper()

	page, err := outseta.NewPageRequest().Page(0).PageSize(size).Build()
	require.NoError(t, err)

	return page
}

func TestCollectPages(t *testing.T) {
	t.Parallel()

	t.Run("single page without all", func(t *testing.T) {
		t.Parallel()

		source := &pagedAccounts{total: 12}

		items, metadata, err := collectPages(context.Background(), source.list, firstPage(t, 5), false)
		require.NoError(t, err)
		assert.Len(t, items, 5)
		assert.Equal(t, 12, metadata.Total)
		assert.Equal(t, []int{0}, source.requested)
	})

	t.Run("all pages", func(t *testing.T) {
		t.Parallel()

		source := &pagedAccounts{total: 12}

		items, _, err := collectPages(context.Background(), source.list, firstPage(t, 5), true)
		require.NoError(t, err)
		assert.Len(t, items, 12)
		assert.Equal(t, []int{0, 1, 2}, source.requested)
	})

	t.Run("empty result", func(t *testing.T) {
		t.Parallel()

		source := &pagedAccounts{total: 0}

		items, _, err := collectPages(context.Background(), source.list, firstPage(t, 5), true)
		require.NoError(t, err)
		assert.Empty(t, items)
		assert.Equal(t, []int{0}, source.requested)
	})

	t.Run("later page fails", func(t *testing.T) {
		t.Parallel()

		source := &pagedAccounts{total: 12, failAt: 1}

		_, _, err := collectPages(context.Background(), source.list, firstPage(t, 5), true)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "page 2")
	})
}

func TestListFlagsRequest(t *testing.T) {
	t.Parallel()

	flags := &listFlags{page: 2, pageSize: 10, orderBy: "Name", desc: true}

	request, err := flags.request(func(builder *outseta.PageRequestBuilder) {
		builder.AccountStage(outseta.AccountStageExpired)
	})
	require.NoError(t, err)

	params := outseta.PageParams(request)
	assert.Equal(t, "20", params["offset"])
	assert.Equal(t, "10", params["limit"])
	assert.Equal(t, "Name DESC", params["orderBy"])
	assert.Equal(t, "5", params["AccountStage"])
}

func setOutput(t *testing.T, format string) {
	t.Helper()

	viper.Set("output", format)
	t.Cleanup(func() { viper.Set("output", "") })
}

func TestRenderItems(t *testing.T) { //nolint:paralleltest // mutates viper state
	columns := []column[outseta.Account]{
		{Header: "UID", Value: func(a outseta.Account) string { return a.UID }},
		{Header: "Name", Value: func(a outseta.Account) string { return a.Name }},
	}
	items := []outseta.Account{{Entity: outseta.Entity{UID: "acc-1"}, Name: "Acme"}}

	setOutput(t, "table")

	var table bytes.Buffer

	require.NoError(t, renderItems(&table, items, columns, outseta.Metadata{Total: 3}, false))
	assert.Contains(t, table.String(), "Acme")
	assert.Contains(t, table.String(), "Showing 1 of 3")

	var empty bytes.Buffer

	require.NoError(t, renderItems(&empty, nil, columns, outseta.Metadata{}, false))
	assert.Equal(t, "No results found\n", empty.String())

	setOutput(t, "json")

	var jsonOut bytes.Buffer

	require.NoError(t, renderItems(&jsonOut, items, columns, outseta.Metadata{Total: 3}, false))
	assert.JSONEq(t, `[{"Uid":"acc-1","Name":"Acme"}]`, jsonOut.String())

	setOutput(t, "yaml")

	var yamlOut bytes.Buffer

	require.NoError(t, renderItems(&yamlOut, items, columns, outseta.Metadata{Total: 3}, false))
	assert.Contains(t, yamlOut.String(), "name: Acme")

	setOutput(t, "xml")

	err := renderItems(&bytes.Buffer{}, items, columns, outseta.Metadata{}, false)
	assert.ErrorIs(t, err, constants.ErrInvalidFormat)
}

func TestRenderDetails(t *testing.T) { //nolint:paralleltest // mutates viper state
	setOutput(t, "")

	account := &outseta.Account{
		Entity:       outseta.Entity{UID: "acc-1"},
		Name:         "Acme",
		AccountStage: outseta.Ptr(outseta.AccountStageTrialExpired),
	}

	var out bytes.Buffer

	require.NoError(t, renderDetails(&out, account, accountRows))
	assert.Contains(t, out.String(), "Trial Expired")
	assert.Contains(t, out.String(), "acc-1")
}
