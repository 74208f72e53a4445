package client

import (
	"context"
	"sync"
	"testing"

	"github.com/fivetwenty-io/outseta-client/pkg/outseta"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	testBaseURL   = "https://test.outseta.com/api/v1"
	testAuthValue = "Outseta key:secret"
	testPage      = `{"metadata":{"limit":10,"offset":10,"total":12},"items":[{"Uid":"a"},{"Uid":"b"}]}`
)

// recordedRequest is one call captured by fakeRequestMaker.
type recordedRequest struct {
	Method  string
	URL     string
	Params  outseta.Params
	Body    string
	Headers map[string]string
}

// fakeRequestMaker records every call and answers with a canned response.
type fakeRequestMaker struct {
	mu       sync.Mutex
	requests []recordedRequest
	response string
	err      error
}

func (f *fakeRequestMaker) record(method, url string, params outseta.Params, body string, headers map[string]string) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.requests = append(f.requests, recordedRequest{
		Method:  method,
		URL:     url,
		Params:  params,
		Body:    body,
		Headers: headers,
	})

	if f.err != nil {
		return "", f.err
	}

	return f.response, nil
}

func (f *fakeRequestMaker) Get(_ context.Context, url string, params outseta.Params, headers map[string]string) (string, error) {
	return f.record("GET", url, params, "", headers)
}

func (f *fakeRequestMaker) Post(_ context.Context, url string, params outseta.Params, body string, headers map[string]string) (string, error) {
	return f.record("POST", url, params, body, headers)
}

func (f *fakeRequestMaker) Put(_ context.Context, url string, params outseta.Params, body string, headers map[string]string) (string, error) {
	return f.record("PUT", url, params, body, headers)
}

func (f *fakeRequestMaker) Delete(_ context.Context, url string, params outseta.Params, headers map[string]string) (string, error) {
	return f.record("DELETE", url, params, "", headers)
}

func (f *fakeRequestMaker) calls() []recordedRequest {
	f.mu.Lock()
	defer f.mu.Unlock()

	return append([]recordedRequest(nil), f.requests...)
}

// only returns the single recorded call, failing the test otherwise.
func (f *fakeRequestMaker) only(t *testing.T) recordedRequest {
	t.Helper()

	calls := f.calls()
	require.Len(t, calls, 1)

	return calls[0]
}

// countingParser wraps the JSON parser and counts calls in each direction.
type countingParser struct {
	inner        *outseta.JSONParser
	serializes   int
	deserializes int
}

func newCountingParser() *countingParser {
	return &countingParser{inner: outseta.NewJSONParser()}
}

func (p *countingParser) ObjectToJSONString(v any) (string, error) {
	p.serializes++

	return p.inner.ObjectToJSONString(v)
}

func (p *countingParser) JSONStringToObject(data string, v any) error {
	p.deserializes++

	return p.inner.JSONStringToObject(data, v)
}

func testConfiguration(maker outseta.RequestMaker, parser outseta.Parser) Configuration {
	return Configuration{
		BaseURL:      testBaseURL,
		Headers:      map[string]string{"Authorization": testAuthValue},
		Parser:       parser,
		RequestMaker: maker,
	}
}

// newTestClient builds a client that answers every call with response.
func newTestClient(response string) (*Client, *fakeRequestMaker) {
	maker := &fakeRequestMaker{response: response}

	return New(testConfiguration(maker, outseta.NewJSONParser())), maker
}

// TestGetOperation describes a get-by-id call and the request it must issue.
type TestGetOperation struct {
	Name         string
	ID           string
	ExpectedPath string
	Response     string
	WantErr      bool
	ErrKind      outseta.ErrorKind
}

// TestListOperation describes a list call and the path it must request.
type TestListOperation struct {
	Name         string
	ExpectedPath string
}

// TestDeleteOperation describes a delete-by-id call and the request it must issue.
type TestDeleteOperation struct {
	Name         string
	ID           string
	ExpectedPath string
	WantErr      bool
}

// RunGetTests runs a series of get operation tests.
func RunGetTests[T any](
	t *testing.T,
	tests []TestGetOperation,
	getFunc func(*Client) func(context.Context, string) (*T, error),
) {
	t.Helper()

	for _, testCase := range tests {
		t.Run(testCase.Name, func(t *testing.T) {
			t.Parallel()

			client, maker := newTestClient(testCase.Response)

			result, err := getFunc(client)(context.Background(), testCase.ID)

			if testCase.WantErr {
				require.Error(t, err)
				assert.Equal(t, testCase.ErrKind, outseta.KindOf(err))
				assert.Nil(t, result)

				if testCase.ErrKind == outseta.KindInvalidArgument {
					assert.Empty(t, maker.calls())
				}

				return
			}

			require.NoError(t, err)
			require.NotNil(t, result)

			call := maker.only(t)
			assert.Equal(t, "GET", call.Method)
			assert.Equal(t, testBaseURL+testCase.ExpectedPath, call.URL)
			assert.Empty(t, call.Params)
			assert.Equal(t, testAuthValue, call.Headers["Authorization"])
		})
	}
}

// RunListTests runs a series of list operation tests with page 1 of size 10.
func RunListTests[T any](
	t *testing.T,
	tests []TestListOperation,
	listFunc func(*Client) func(context.Context, *outseta.PageRequest) (*outseta.ItemPage[T], error),
) {
	t.Helper()

	for _, testCase := range tests {
		t.Run(testCase.Name, func(t *testing.T) {
			t.Parallel()

			client, maker := newTestClient(testPage)

			page, err := outseta.NewPageRequest().Page(1).PageSize(10).Build()
			require.NoError(t, err)

			result, err := listFunc(client)(context.Background(), page)
			require.NoError(t, err)
			require.NotNil(t, result)
			assert.Len(t, result.Items, 2)
			assert.Equal(t, 12, result.Metadata.Total)

			call := maker.only(t)
			assert.Equal(t, "GET", call.Method)
			assert.Equal(t, testBaseURL+testCase.ExpectedPath, call.URL)
			assert.Equal(t, outseta.Params{"offset": "10", "limit": "10"}, call.Params)
		})
	}
}

// RunDeleteTests runs a series of delete operation tests.
func RunDeleteTests(
	t *testing.T,
	tests []TestDeleteOperation,
	deleteFunc func(*Client) func(context.Context, string) error,
) {
	t.Helper()

	for _, testCase := range tests {
		t.Run(testCase.Name, func(t *testing.T) {
			t.Parallel()

			client, maker := newTestClient("")

			err := deleteFunc(client)(context.Background(), testCase.ID)

			if testCase.WantErr {
				require.Error(t, err)
				assert.True(t, outseta.IsInvalidArgument(err))
				assert.Empty(t, maker.calls())

				return
			}

			require.NoError(t, err)

			call := maker.only(t)
			assert.Equal(t, "DELETE", call.Method)
			assert.Equal(t, testBaseURL+testCase.ExpectedPath, call.URL)
		})
	}
}
