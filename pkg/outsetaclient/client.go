package outsetaclient

import (
	"github.com/fivetwenty-io/outseta-client/pkg/outseta"
)

// Option adjusts a Builder before a convenience constructor builds it.
type Option func(*Builder)

// WithLogger sets the client logger.
func WithLogger(logger outseta.Logger) Option {
	return func(b *Builder) {
		b.Logger(logger)
	}
}

// WithDebug logs every exchange at debug level.
func WithDebug(debug bool) Option {
	return func(b *Builder) {
		b.Debug(debug)
	}
}

// WithHeaders adds headers sent with every request.
func WithHeaders(headers map[string]string) Option {
	return func(b *Builder) {
		b.Headers(headers)
	}
}

// WithRequestMakerType selects a built-in request maker.
func WithRequestMakerType(makerType outseta.RequestMakerType) Option {
	return func(b *Builder) {
		b.RequestMakerType(makerType)
	}
}

// WithInterceptors runs chain around every exchange.
func WithInterceptors(chain *outseta.InterceptorChain) Option {
	return func(b *Builder) {
		b.Interceptors(chain)
	}
}

// NewWithAPIKey creates a client authenticated with an "apikey:secret" pair.
func NewWithAPIKey(baseURL, key string, opts ...Option) (outseta.Client, error) {
	return newBuilder(baseURL, opts).APIKey(key).Build()
}

// NewWithAccessKey creates a client authenticated with a user access token.
func NewWithAccessKey(baseURL, token string, opts ...Option) (outseta.Client, error) {
	return newBuilder(baseURL, opts).AccessKey(token).Build()
}

// NewProfile creates a profile client for the owner of token.
func NewProfile(baseURL, token string, opts ...Option) (outseta.ProfileClient, error) {
	return newBuilder(baseURL, opts).AccessKey(token).BuildProfile()
}

func newBuilder(baseURL string, opts []Option) *Builder {
	builder := NewBuilder(baseURL).DefaultParser().DefaultRequestMaker()

	for _, opt := range opts {
		opt(builder)
	}

	return builder
}
