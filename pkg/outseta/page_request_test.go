package outseta_test

import (
	"testing"

	"github.com/fivetwenty-io/outseta-client/pkg/outseta"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

//nolint:funlen // Test functions can be longer for comprehensive testing
func TestPageRequest_BuildParams(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		build    func() *outseta.PageRequestBuilder
		expected outseta.Params
	}{
		{
			name: "page and size",
			build: func() *outseta.PageRequestBuilder {
				return outseta.NewPageRequest().Page(0).PageSize(1)
			},
			expected: outseta.Params{"offset": "0", "limit": "1"},
		},
		{
			name: "page and size multiply into offset",
			build: func() *outseta.PageRequestBuilder {
				return outseta.NewPageRequest().Page(3).PageSize(25)
			},
			expected: outseta.Params{"offset": "75", "limit": "25"},
		},
		{
			name: "size only",
			build: func() *outseta.PageRequestBuilder {
				return outseta.NewPageRequest().PageSize(1)
			},
			expected: outseta.Params{"limit": "1"},
		},
		{
			name: "page only",
			build: func() *outseta.PageRequestBuilder {
				return outseta.NewPageRequest().Page(0)
			},
			expected: outseta.Params{"offset": "0"},
		},
		{
			name:     "nothing set",
			build:    outseta.NewPageRequest,
			expected: outseta.Params{},
		},
		{
			name: "order by defaults to ascending",
			build: func() *outseta.PageRequestBuilder {
				return outseta.NewPageRequest().OrderBy("Created")
			},
			expected: outseta.Params{"orderBy": "Created ASC"},
		},
		{
			name: "order by descending",
			build: func() *outseta.PageRequestBuilder {
				return outseta.NewPageRequest().OrderBy("Name").Sort(outseta.SortDesc)
			},
			expected: outseta.Params{"orderBy": "Name DESC"},
		},
		{
			name: "custom and filter params",
			build: func() *outseta.PageRequestBuilder {
				return outseta.NewPageRequest().
					Param("fields", "*").
					AccountStage(outseta.AccountStageSubscribing).
					ActivityType(outseta.ActivityTypeCustom)
			},
			expected: outseta.Params{"fields": "*", "AccountStage": "3", "ActivityType": "10"},
		},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			t.Parallel()

			request, err := testCase.build().Build()
			require.NoError(t, err)
			assert.Equal(t, testCase.expected, request.BuildParams())
		})
	}
}

func TestPageRequest_BuildValidation(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		builder *outseta.PageRequestBuilder
	}{
		{name: "negative page", builder: outseta.NewPageRequest().Page(-1)},
		{name: "zero size", builder: outseta.NewPageRequest().PageSize(0)},
		{name: "size above maximum", builder: outseta.NewPageRequest().PageSize(outseta.MaxPageSize + 1)},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			t.Parallel()

			request, err := testCase.builder.Build()
			require.Error(t, err)
			assert.Nil(t, request)
			assert.ErrorIs(t, err, outseta.ErrPageBuild)
		})
	}

	request, err := outseta.NewPageRequest().PageSize(outseta.MaxPageSize).Build()
	require.NoError(t, err)

	size, ok := request.Size()
	assert.True(t, ok)
	assert.Equal(t, outseta.MaxPageSize, size)
}

func TestPageRequest_NextPageRequest(t *testing.T) {
	t.Parallel()

	t.Run("advances a set page", func(t *testing.T) {
		t.Parallel()

		request, err := outseta.NewPageRequest().Page(2).PageSize(10).Param("q", "x").Build()
		require.NoError(t, err)

		next := request.NextPageRequest()

		page, ok := next.PageNum()
		assert.True(t, ok)
		assert.Equal(t, 3, page)
		assert.Equal(t, outseta.Params{"offset": "30", "limit": "10", "q": "x"}, next.BuildParams())

		original, _ := request.PageNum()
		assert.Equal(t, 2, original)
	})

	t.Run("unset page becomes the second page", func(t *testing.T) {
		t.Parallel()

		request, err := outseta.NewPageRequest().PageSize(5).Build()
		require.NoError(t, err)

		page, ok := request.NextPageRequest().PageNum()
		assert.True(t, ok)
		assert.Equal(t, 1, page)
	})

	t.Run("params are not shared", func(t *testing.T) {
		t.Parallel()

		request, err := outseta.NewPageRequest().Param("a", "1").Build()
		require.NoError(t, err)

		params := request.NextPageRequest().BuildParams()
		params["a"] = "changed"

		assert.Equal(t, "1", request.BuildParams()["a"])
	})
}

func TestPageRequestBuilder_ZeroValue(t *testing.T) {
	t.Parallel()

	var builder outseta.PageRequestBuilder

	request, err := builder.Param("q", "x").AccountStage(outseta.AccountStageTrialing).Build()
	require.NoError(t, err)
	assert.Equal(t, outseta.Params{"q": "x", "AccountStage": "2"}, request.BuildParams())
}

func TestPageParams_Nil(t *testing.T) {
	t.Parallel()

	assert.Equal(t, outseta.Params{}, outseta.PageParams(nil))
}

func TestParams_Clone(t *testing.T) {
	t.Parallel()

	var empty outseta.Params

	assert.NotNil(t, empty.Clone())

	original := outseta.Params{"k": "v"}
	clone := original.Clone()
	clone["k"] = "other"

	assert.Equal(t, "v", original["k"])
}
