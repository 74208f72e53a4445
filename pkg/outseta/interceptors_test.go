package outseta_test

import (
	"context"
	"errors"
	"testing"

	"github.com/fivetwenty-io/outseta-client/pkg/outseta"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingLogger struct {
	messages []string
}

func (l *recordingLogger) Debug(msg string, fields map[string]interface{}) {
	l.messages = append(l.messages, "debug:"+msg)
}

func (l *recordingLogger) Info(msg string, fields map[string]interface{}) {
	l.messages = append(l.messages, "info:"+msg)
}

func (l *recordingLogger) Warn(msg string, fields map[string]interface{}) {
	l.messages = append(l.messages, "warn:"+msg)
}

func (l *recordingLogger) Error(msg string, fields map[string]interface{}) {
	l.messages = append(l.messages, "error:"+msg)
}

func TestInterceptorChain_RequestInterceptors(t *testing.T) {
	t.Parallel()

	chain := outseta.NewInterceptorChain()
	ctx := context.Background()

	var executionOrder []string

	chain.AddRequestInterceptor(func(ctx context.Context, req *outseta.Request) error {
		executionOrder = append(executionOrder, "first")

		return nil
	})

	chain.AddRequestInterceptor(func(ctx context.Context, req *outseta.Request) error {
		executionOrder = append(executionOrder, "second")

		return nil
	})

	err := chain.ExecuteRequestInterceptors(ctx, &outseta.Request{Method: "GET", URL: "/crm/people"})
	require.NoError(t, err)

	assert.Equal(t, []string{"first", "second"}, executionOrder)
	assert.False(t, chain.Empty())
}

func TestInterceptorChain_StopsOnError(t *testing.T) {
	t.Parallel()

	chain := outseta.NewInterceptorChain()
	called := false

	chain.AddRequestInterceptor(func(ctx context.Context, req *outseta.Request) error {
		return errors.New("blocked")
	})

	chain.AddRequestInterceptor(func(ctx context.Context, req *outseta.Request) error {
		called = true

		return nil
	})

	err := chain.ExecuteRequestInterceptors(context.Background(), &outseta.Request{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "request interceptor failed: blocked")
	assert.False(t, called)
}

func TestInterceptorChain_Nil(t *testing.T) {
	t.Parallel()

	var chain *outseta.InterceptorChain

	assert.True(t, chain.Empty())
	require.NoError(t, chain.ExecuteRequestInterceptors(context.Background(), &outseta.Request{}))
	require.NoError(t, chain.ExecuteResponseInterceptors(context.Background(), &outseta.Request{}, &outseta.Response{}))
}

func TestHeaderInterceptor(t *testing.T) {
	t.Parallel()

	interceptor := outseta.HeaderInterceptor(map[string]string{"X-Custom-Header": "custom-value"})
	req := &outseta.Request{Method: "GET"}

	err := interceptor(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, "custom-value", req.Headers["X-Custom-Header"])
}

func TestRequestIDInterceptor(t *testing.T) {
	t.Parallel()

	interceptor := outseta.RequestIDInterceptor()

	req := &outseta.Request{}
	require.NoError(t, interceptor(context.Background(), req))

	_, err := uuid.Parse(req.Headers[outseta.RequestIDHeader])
	require.NoError(t, err)

	preset := &outseta.Request{Headers: map[string]string{outseta.RequestIDHeader: "fixed"}}
	require.NoError(t, interceptor(context.Background(), preset))
	assert.Equal(t, "fixed", preset.Headers[outseta.RequestIDHeader])
}

func TestLoggingInterceptors(t *testing.T) {
	t.Parallel()

	logger := &recordingLogger{}
	req := &outseta.Request{Method: "GET", URL: "https://example.outseta.com/api/v1/billing/plans"}

	require.NoError(t, outseta.LoggingInterceptor(logger)(context.Background(), req))
	require.NoError(t, outseta.LoggingResponseInterceptor(logger)(context.Background(), req, &outseta.Response{StatusCode: 200}))
	require.NoError(t, outseta.LoggingResponseInterceptor(logger)(context.Background(), req,
		&outseta.Response{StatusCode: 500, Error: errors.New("boom")}))

	assert.Equal(t, []string{
		"debug:Outseta request",
		"debug:Outseta response",
		"error:Outseta response error",
	}, logger.messages)
}

func TestMetricsInterceptors(t *testing.T) {
	t.Parallel()

	collector := outseta.NewMetricsCollector()
	changes := 0

	collector.SetOnChange(func(endpoint string, metrics outseta.Metrics) {
		changes++
	})

	chain := outseta.NewInterceptorChain()
	chain.AddRequestInterceptor(outseta.MetricsRequestInterceptor())
	chain.AddResponseInterceptor(outseta.MetricsResponseInterceptor(collector))

	ctx := context.Background()

	for _, status := range []int{200, 404} {
		req := &outseta.Request{Method: "GET", URL: "/crm/deals"}
		require.NoError(t, chain.ExecuteRequestInterceptors(ctx, req))
		require.NoError(t, chain.ExecuteResponseInterceptors(ctx, req, &outseta.Response{StatusCode: status}))
	}

	metrics, ok := collector.GetMetrics("GET /crm/deals")
	require.True(t, ok)
	assert.Equal(t, int64(2), metrics.TotalRequests)
	assert.Equal(t, int64(1), metrics.TotalErrors)
	assert.Equal(t, 2, changes)

	_, ok = collector.GetMetrics("POST /crm/deals")
	assert.False(t, ok)
}
