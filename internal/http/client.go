// Package http implements the request makers that carry API calls over HTTP.
package http

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"maps"
	"net"
	"net/http"
	"net/url"
	"slices"
	"strings"

	"github.com/fivetwenty-io/outseta-client/internal/constants"
	"github.com/fivetwenty-io/outseta-client/internal/logging"
	"github.com/fivetwenty-io/outseta-client/pkg/outseta"
	"github.com/hashicorp/go-cleanhttp"
	"github.com/hashicorp/go-retryablehttp"
)

// exchanger sends one prepared request.
type exchanger interface {
	exchange(ctx context.Context, method, target string, body []byte, headers map[string]string) (*http.Response, error)
}

// Client is an outseta.RequestMaker. Each call is a single attempt.
type Client struct {
	kind         outseta.RequestMakerType
	transport    exchanger
	logger       outseta.Logger
	debug        bool
	userAgent    string
	interceptors *outseta.InterceptorChain
	httpClient   *http.Client
}

var _ outseta.RequestMaker = (*Client)(nil)

// Option configures a Client.
type Option func(*Client)

// WithLogger sets the logger.
func WithLogger(logger outseta.Logger) Option {
	return func(c *Client) {
		c.logger = logger
	}
}

// WithDebug enables request and response logging.
func WithDebug(debug bool) Option {
	return func(c *Client) {
		c.debug = debug
	}
}

// WithUserAgent sets the User-Agent header sent when the caller sets none.
func WithUserAgent(userAgent string) Option {
	return func(c *Client) {
		c.userAgent = userAgent
	}
}

// WithInterceptors runs chain around every exchange.
func WithInterceptors(chain *outseta.InterceptorChain) Option {
	return func(c *Client) {
		c.interceptors = chain
	}
}

// WithHTTPClient replaces the underlying *http.Client.
func WithHTTPClient(httpClient *http.Client) Option {
	return func(c *Client) {
		c.httpClient = httpClient
	}
}

// NewRequestMaker creates the built-in request maker named by kind.
func NewRequestMaker(kind outseta.RequestMakerType, opts ...Option) (*Client, error) {
	switch kind {
	case outseta.RequestMakerHTTPClient:
		return NewClient(opts...), nil
	case outseta.RequestMakerDefault:
		return NewDefaultClient(opts...), nil
	default:
		return nil, &outseta.Error{
			Kind:    outseta.KindInvalidRequestMaker,
			Message: "a request maker of this type does not exist: " + string(kind),
		}
	}
}

// NewClient creates the HTTP_CLIENT request maker. It is backed by a
// retryablehttp client pinned to a single attempt so that hooks and leveled
// logging are available without any retry behavior.
func NewClient(opts ...Option) *Client {
	client := newClient(outseta.RequestMakerHTTPClient, opts)

	retryClient := retryablehttp.NewClient()
	retryClient.RetryMax = 0
	retryClient.CheckRetry = noRetry
	retryClient.ErrorHandler = retryablehttp.PassthroughErrorHandler
	retryClient.Logger = nil

	if client.httpClient != nil {
		retryClient.HTTPClient = client.httpClient
	}

	if client.debug && client.logger != nil {
		retryClient.Logger = logging.NewLeveledAdapter(client.logger)
	}

	client.transport = &retryTransport{client: retryClient}

	return client
}

// NewDefaultClient creates the DEFAULT request maker on a plain
// non-pooled *http.Client.
func NewDefaultClient(opts ...Option) *Client {
	client := newClient(outseta.RequestMakerDefault, opts)

	httpClient := client.httpClient
	if httpClient == nil {
		httpClient = cleanhttp.DefaultClient()
	}

	client.transport = &plainTransport{client: httpClient}

	return client
}

func newClient(kind outseta.RequestMakerType, opts []Option) *Client {
	client := &Client{
		kind:      kind,
		userAgent: constants.DefaultUserAgent,
		logger:    logging.Nop{},
	}

	for _, opt := range opts {
		opt(client)
	}

	if client.logger == nil {
		client.logger = logging.Nop{}
	}

	return client
}

// Kind returns the request maker type.
func (c *Client) Kind() outseta.RequestMakerType {
	return c.kind
}

// Get implements outseta.RequestMaker.
func (c *Client) Get(ctx context.Context, target string, params outseta.Params, headers map[string]string) (string, error) {
	return c.do(ctx, http.MethodGet, target, params, "", headers)
}

// Post implements outseta.RequestMaker.
func (c *Client) Post(ctx context.Context, target string, params outseta.Params, body string, headers map[string]string) (string, error) {
	return c.do(ctx, http.MethodPost, target, params, body, headers)
}

// Put implements outseta.RequestMaker.
func (c *Client) Put(ctx context.Context, target string, params outseta.Params, body string, headers map[string]string) (string, error) {
	return c.do(ctx, http.MethodPut, target, params, body, headers)
}

// Delete implements outseta.RequestMaker.
func (c *Client) Delete(ctx context.Context, target string, params outseta.Params, headers map[string]string) (string, error) {
	return c.do(ctx, http.MethodDelete, target, params, "", headers)
}

func (c *Client) do(ctx context.Context, method, target string, params outseta.Params, body string, headers map[string]string) (string, error) {
	if ctx == nil {
		ctx = context.Background()
	}

	fullURL, err := buildURL(target, params)
	if err != nil {
		return "", &outseta.Error{
			Kind:    outseta.KindInvalidURL,
			Message: "malformed request URL",
			URL:     target,
			Params:  params.Clone(),
			Headers: maps.Clone(headers),
			Payload: body,
			Cause:   err,
		}
	}

	req := &outseta.Request{
		Method:  method,
		URL:     fullURL,
		Headers: c.requestHeaders(headers, body),
		Body:    body,
	}

	err = c.interceptors.ExecuteRequestInterceptors(ctx, req)
	if err != nil {
		return "", c.failure(outseta.KindUnknown, req, params, 0, "", err)
	}

	if c.debug {
		c.logger.Debug("HTTP Request", map[string]interface{}{
			"method":  req.Method,
			"url":     req.URL,
			"headers": maskHeaders(req.Headers),
		})
	}

	resp, err := c.transport.exchange(ctx, req.Method, req.URL, []byte(req.Body), req.Headers)
	if err != nil {
		kind := classifyTransportError(ctx, err)
		outErr := c.failure(kind, req, params, 0, "", err)
		c.runResponseInterceptors(ctx, req, &outseta.Response{Error: outErr})

		return "", outErr
	}

	defer func() { _ = resp.Body.Close() }()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		outErr := c.failure(outseta.KindUnknown, req, params, resp.StatusCode, "", fmt.Errorf("reading response body: %w", err))
		c.runResponseInterceptors(ctx, req, &outseta.Response{StatusCode: resp.StatusCode, Error: outErr})

		return "", outErr
	}

	if c.debug {
		c.logger.Debug("HTTP Response", map[string]interface{}{
			"status_code": resp.StatusCode,
			"url":         req.URL,
		})
	}

	var outErr error

	kind, ok := classifyStatus(resp.StatusCode)
	if !ok {
		outErr = c.failure(kind, req, params, resp.StatusCode, string(respBody), nil)
	}

	response := &outseta.Response{StatusCode: resp.StatusCode, Body: string(respBody), Error: outErr}

	err = c.interceptors.ExecuteResponseInterceptors(ctx, req, response)
	if err != nil && outErr == nil {
		return "", c.failure(outseta.KindUnknown, req, params, resp.StatusCode, string(respBody), err)
	}

	if outErr != nil {
		return "", outErr
	}

	return string(respBody), nil
}

func (c *Client) runResponseInterceptors(ctx context.Context, req *outseta.Request, resp *outseta.Response) {
	err := c.interceptors.ExecuteResponseInterceptors(ctx, req, resp)
	if err != nil {
		c.logger.Warn("response interceptor failed", map[string]interface{}{"error": err.Error()})
	}
}

func (c *Client) requestHeaders(headers map[string]string, body string) map[string]string {
	out := make(map[string]string, len(headers)+3)
	out[constants.HeaderAccept] = constants.ContentTypeJSON

	if body != "" {
		out[constants.HeaderContentType] = constants.ContentTypeJSON
	}

	if c.userAgent != "" {
		out[constants.HeaderUserAgent] = c.userAgent
	}

	maps.Copy(out, headers)

	return out
}

func (c *Client) failure(kind outseta.ErrorKind, req *outseta.Request, params outseta.Params, status int, body string, cause error) *outseta.Error {
	message := "request failed"

	switch kind {
	case outseta.KindBadRequest:
		message = "request rejected by server"
	case outseta.KindFailed:
		message = "server error"
	case outseta.KindInvalidURL:
		message = "URL could not be reached"
	case outseta.KindUnknown:
		if status != 0 {
			message = "unexpected response status"
		}
	}

	return &outseta.Error{
		Kind:         kind,
		Message:      message,
		URL:          req.URL,
		Params:       params.Clone(),
		Headers:      maps.Clone(req.Headers),
		Payload:      req.Body,
		StatusCode:   status,
		ResponseBody: body,
		Cause:        cause,
	}
}

// ValidateURL parses target and requires an http or https scheme and a host.
func ValidateURL(target string) (*url.URL, error) {
	parsed, err := url.Parse(target)
	if err != nil {
		return nil, fmt.Errorf("parsing URL: %w", err)
	}

	if parsed.Scheme != "http" && parsed.Scheme != "https" {
		return nil, fmt.Errorf("%w: %q", errUnsupportedScheme, parsed.Scheme)
	}

	if parsed.Host == "" {
		return nil, errMissingHost
	}

	return parsed, nil
}

// buildURL validates target and appends params as a sorted query string.
func buildURL(target string, params outseta.Params) (string, error) {
	parsed, err := ValidateURL(target)
	if err != nil {
		return "", err
	}

	if len(params) == 0 {
		return parsed.String(), nil
	}

	query := parsed.Query()

	for _, key := range slices.Sorted(maps.Keys(params)) {
		query.Set(key, params[key])
	}

	parsed.RawQuery = query.Encode()

	return parsed.String(), nil
}

var (
	errUnsupportedScheme = errors.New("unsupported URL scheme")
	errMissingHost       = errors.New("URL has no host")
)

// classifyStatus maps a status code to an error kind. ok is true for 2xx.
func classifyStatus(status int) (outseta.ErrorKind, bool) {
	switch {
	case status >= 200 && status < 300:
		return outseta.KindUnknown, true
	case status >= 400 && status < 500:
		return outseta.KindBadRequest, false
	case status >= 500 && status < 600:
		return outseta.KindFailed, false
	default:
		return outseta.KindUnknown, false
	}
}

// classifyTransportError reports unreachable hosts as InvalidURL.
func classifyTransportError(ctx context.Context, err error) outseta.ErrorKind {
	if ctx.Err() != nil {
		return outseta.KindUnknown
	}

	var dnsErr *net.DNSError
	if errors.As(err, &dnsErr) {
		return outseta.KindInvalidURL
	}

	var opErr *net.OpError
	if errors.As(err, &opErr) && opErr.Op == "dial" {
		return outseta.KindInvalidURL
	}

	return outseta.KindUnknown
}

func maskHeaders(headers map[string]string) map[string]string {
	masked := maps.Clone(headers)

	if value, ok := masked[constants.HeaderAuthorization]; ok {
		masked[constants.HeaderAuthorization] = maskSecret(value)
	}

	return masked
}

func maskSecret(value string) string {
	scheme, _, found := strings.Cut(value, " ")
	if found {
		return scheme + " " + constants.MaskedSecret
	}

	return constants.MaskedSecret
}

func noRetry(ctx context.Context, resp *http.Response, err error) (bool, error) {
	return false, nil
}

type retryTransport struct {
	client *retryablehttp.Client
}

func (t *retryTransport) exchange(ctx context.Context, method, target string, body []byte, headers map[string]string) (*http.Response, error) {
	var payload interface{}
	if len(body) > 0 {
		payload = body
	}

	req, err := retryablehttp.NewRequestWithContext(ctx, method, target, payload)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}

	for key, value := range headers {
		req.Header.Set(key, value)
	}

	resp, err := t.client.Do(req)
	if err != nil {
		if resp != nil && resp.Body != nil {
			_ = resp.Body.Close()
		}

		return nil, err
	}

	return resp, nil
}

type plainTransport struct {
	client *http.Client
}

func (t *plainTransport) exchange(ctx context.Context, method, target string, body []byte, headers map[string]string) (*http.Response, error) {
	var reader io.Reader
	if len(body) > 0 {
		reader = bytes.NewReader(body)
	}

	req, err := http.NewRequestWithContext(ctx, method, target, reader)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}

	for key, value := range headers {
		req.Header.Set(key, value)
	}

	resp, err := t.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("sending request: %w", err)
	}

	return resp, nil
}
