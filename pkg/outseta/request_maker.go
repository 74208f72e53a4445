package outseta

import (
	"context"
	"strings"
)

// RequestMaker performs a single HTTP exchange and returns the response body
// of any 2xx outcome. Every other outcome is reported as an *Error.
type RequestMaker interface {
	Get(ctx context.Context, url string, params Params, headers map[string]string) (string, error)
	Post(ctx context.Context, url string, params Params, body string, headers map[string]string) (string, error)
	Put(ctx context.Context, url string, params Params, body string, headers map[string]string) (string, error)
	Delete(ctx context.Context, url string, params Params, headers map[string]string) (string, error)
}

// RequestMakerType names a built-in RequestMaker implementation.
type RequestMakerType string

// Built-in request makers.
const (
	RequestMakerHTTPClient RequestMakerType = "HTTP_CLIENT"
	RequestMakerDefault    RequestMakerType = "DEFAULT"
)

// ParseRequestMakerType resolves a request maker name case-insensitively.
func ParseRequestMakerType(name string) (RequestMakerType, error) {
	switch RequestMakerType(strings.ToUpper(strings.TrimSpace(name))) {
	case RequestMakerHTTPClient:
		return RequestMakerHTTPClient, nil
	case RequestMakerDefault:
		return RequestMakerDefault, nil
	default:
		return "", &Error{
			Kind:    KindInvalidRequestMaker,
			Message: "a request maker of this type does not exist: " + name,
		}
	}
}
