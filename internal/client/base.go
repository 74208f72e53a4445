package client

import (
	"context"
	"maps"
	"net/url"
	"strings"

	"github.com/fivetwenty-io/outseta-client/internal/logging"
	"github.com/fivetwenty-io/outseta-client/pkg/outseta"
)

// Configuration is the validated state shared by every endpoint client.
type Configuration struct {
	BaseURL      string
	Headers      map[string]string
	Parser       outseta.Parser
	RequestMaker outseta.RequestMaker
	Logger       outseta.Logger
}

// Base holds a Configuration and performs requests relative to its base URL.
// Header mutation through Update and Replace is not
// synchronized; callers must not mutate headers while requests are in flight.
type Base struct {
	baseURL      string
	headers      map[string]string
	parser       outseta.Parser
	requestMaker outseta.RequestMaker
	logger       outseta.Logger
}

var _ outseta.HeaderMutator = (*Base)(nil)

// NewBase copies config into a new Base.
func NewBase(config Configuration) *Base {
	logger := config.Logger
	if logger == nil {
		logger = logging.Nop{}
	}

	headers := maps.Clone(config.Headers)
	if headers == nil {
		headers = make(map[string]string)
	}

	return &Base{
		baseURL:      strings.TrimRight(config.BaseURL, "/"),
		headers:      headers,
		parser:       config.Parser,
		requestMaker: config.RequestMaker,
		logger:       logger,
	}
}

// BaseURL returns the URL every path is appended to.
func (b *Base) BaseURL() string {
	return b.baseURL
}

// Parser returns the configured parser.
func (b *Base) Parser() outseta.Parser {
	return b.parser
}

// Snapshot returns a copy of the current headers.
func (b *Base) Snapshot() map[string]string {
	return maps.Clone(b.headers)
}

// Update merges headers into the current set.
func (b *Base) Update(headers map[string]string) {
	maps.Copy(b.headers, headers)
}

// Replace swaps the current header set for a copy of headers.
func (b *Base) Replace(headers map[string]string) {
	replacement := maps.Clone(headers)
	if replacement == nil {
		replacement = make(map[string]string)
	}

	b.headers = replacement
}

// Get performs a GET against baseURL+path.
func (b *Base) Get(ctx context.Context, path string, params outseta.Params) (string, error) {
	return b.requestMaker.Get(ctx, b.url(path), params, b.Snapshot())
}

// Post performs a POST against baseURL+path.
func (b *Base) Post(ctx context.Context, path string, params outseta.Params, body string) (string, error) {
	return b.requestMaker.Post(ctx, b.url(path), params, body, b.Snapshot())
}

// Put performs a PUT against baseURL+path.
func (b *Base) Put(ctx context.Context, path string, params outseta.Params, body string) (string, error) {
	return b.requestMaker.Put(ctx, b.url(path), params, body, b.Snapshot())
}

// Delete performs a DELETE against baseURL+path.
func (b *Base) Delete(ctx context.Context, path string, params outseta.Params) (string, error) {
	return b.requestMaker.Delete(ctx, b.url(path), params, b.Snapshot())
}

func (b *Base) url(path string) string {
	b.logger.Debug("Outseta call", map[string]interface{}{"path": path})

	return b.baseURL + path
}

// requireID fails with an invalid argument error when value is blank.
func requireID(name, value string) error {
	if strings.TrimSpace(value) == "" {
		return outseta.InvalidArgument(name)
	}

	return nil
}

// requireValue fails with an invalid argument error when value is nil.
func requireValue[T any](name string, value *T) error {
	if value == nil {
		return &outseta.Error{Kind: outseta.KindInvalidArgument, Message: name + " must not be nil"}
	}

	return nil
}

// segment escapes a caller-supplied path segment.
func segment(value string) string {
	return url.PathEscape(value)
}

// getObject fetches path and decodes the body into a T.
func getObject[T any](ctx context.Context, b *Base, path string, params outseta.Params) (*T, error) {
	body, err := b.Get(ctx, path, params)
	if err != nil {
		return nil, err
	}

	var result T

	err = b.parser.JSONStringToObject(body, &result)
	if err != nil {
		return nil, err
	}

	return &result, nil
}

// getPage fetches one page of a list endpoint.
func getPage[T any](ctx context.Context, b *Base, path string, page *outseta.PageRequest) (*outseta.ItemPage[T], error) {
	body, err := b.Get(ctx, path, outseta.PageParams(page))
	if err != nil {
		return nil, err
	}

	return outseta.JSONStringToPage[T](b.parser, body)
}

type sendFunc func(ctx context.Context, path string, params outseta.Params, body string) (string, error)

// encode serializes payload, or returns an empty body for a nil payload.
func encode(b *Base, payload any) (string, error) {
	if payload == nil {
		return "", nil
	}

	return b.parser.ObjectToJSONString(payload)
}

// sendObject serializes payload, sends it with send and decodes a T.
func sendObject[T any](ctx context.Context, b *Base, send sendFunc, path string, params outseta.Params, payload any) (*T, error) {
	requestBody, err := encode(b, payload)
	if err != nil {
		return nil, err
	}

	body, err := send(ctx, path, params, requestBody)
	if err != nil {
		return nil, err
	}

	var result T

	err = b.parser.JSONStringToObject(body, &result)
	if err != nil {
		return nil, err
	}

	return &result, nil
}

// sendVoid serializes payload and sends it with send, discarding the response.
func sendVoid(ctx context.Context, b *Base, send sendFunc, path string, params outseta.Params, payload any) error {
	requestBody, err := encode(b, payload)
	if err != nil {
		return err
	}

	_, err = send(ctx, path, params, requestBody)

	return err
}
