package outsetaclient

import (
	"maps"
	"reflect"
	"strings"

	"github.com/fivetwenty-io/outseta-client/internal/client"
	"github.com/fivetwenty-io/outseta-client/internal/constants"
	internalhttp "github.com/fivetwenty-io/outseta-client/internal/http"
	"github.com/fivetwenty-io/outseta-client/pkg/outseta"
)

// Builder accumulates client configuration. Setters may be called in any
// order; the last call for a setting wins.
type Builder struct {
	baseURL       string
	authorization string
	headers       map[string]string
	parser        outseta.Parser
	requestMaker  outseta.RequestMaker
	makerType     outseta.RequestMakerType
	logger        outseta.Logger
	debug         bool
	userAgent     string
	interceptors  *outseta.InterceptorChain
	headersErr    error
	makerErr      error
}

// NewBuilder starts a builder for the API rooted at baseURL, for example
// "https://example.outseta.com/api/v1".
func NewBuilder(baseURL string) *Builder {
	return &Builder{
		baseURL: baseURL,
		headers: make(map[string]string),
	}
}

// APIKey authenticates with an "apikey:secret" pair. A value that already
// carries a scheme is sent as given.
func (b *Builder) APIKey(key string) *Builder {
	b.authorization = authorizationValue(constants.APIKeyScheme, key)

	return b
}

// AccessKey authenticates with a user access token.
func (b *Builder) AccessKey(token string) *Builder {
	b.authorization = authorizationValue(constants.AccessKeyScheme, token)

	return b
}

// Headers merges extra headers into every request. They take precedence over
// the Authorization value set by APIKey or AccessKey.
func (b *Builder) Headers(headers map[string]string) *Builder {
	if headers == nil {
		b.headersErr = outseta.NewError(outseta.KindClientBuild, "headers must not be nil")

		return b
	}

	b.headersErr = nil
	maps.Copy(b.headers, headers)

	return b
}

// RequestMaker sets the request maker instance.
func (b *Builder) RequestMaker(requestMaker outseta.RequestMaker) *Builder {
	b.requestMaker = requestMaker
	b.makerType = ""
	b.makerErr = nil

	return b
}

// RequestMakerType selects a built-in request maker.
func (b *Builder) RequestMakerType(makerType outseta.RequestMakerType) *Builder {
	parsed, err := outseta.ParseRequestMakerType(string(makerType))
	if err != nil {
		b.makerErr = err

		return b
	}

	b.makerType = parsed
	b.requestMaker = nil
	b.makerErr = nil

	return b
}

// RequestMakerName selects a built-in request maker by name, ignoring case.
func (b *Builder) RequestMakerName(name string) *Builder {
	return b.RequestMakerType(outseta.RequestMakerType(name))
}

// DefaultRequestMaker selects the HTTP_CLIENT request maker.
func (b *Builder) DefaultRequestMaker() *Builder {
	return b.RequestMakerType(outseta.RequestMakerHTTPClient)
}

// Parser sets the parser.
func (b *Builder) Parser(parser outseta.Parser) *Builder {
	b.parser = parser

	return b
}

// DefaultParser selects the JSON parser.
func (b *Builder) DefaultParser() *Builder {
	return b.Parser(outseta.NewJSONParser())
}

// Logger sets the logger used by the client and by a built-in request maker.
func (b *Builder) Logger(logger outseta.Logger) *Builder {
	b.logger = logger

	return b
}

// Debug makes a built-in request maker log every exchange.
func (b *Builder) Debug(debug bool) *Builder {
	b.debug = debug

	return b
}

// UserAgent overrides the User-Agent of a built-in request maker.
func (b *Builder) UserAgent(userAgent string) *Builder {
	b.userAgent = userAgent

	return b
}

// Interceptors runs chain around every exchange of a built-in request maker.
func (b *Builder) Interceptors(chain *outseta.InterceptorChain) *Builder {
	b.interceptors = chain

	return b
}

// Build validates the configuration and creates a client.
func (b *Builder) Build() (outseta.Client, error) {
	config, err := b.configuration()
	if err != nil {
		return nil, err
	}

	return client.New(config), nil
}

// BuildProfile creates a profile client. It requires an access key.
func (b *Builder) BuildProfile() (outseta.ProfileClient, error) {
	config, err := b.configuration()
	if err != nil {
		return nil, err
	}

	if !hasScheme(config.Headers[constants.HeaderAuthorization], constants.AccessKeyScheme) {
		return nil, outseta.NewError(outseta.KindClientBuild, "profile clients require an access key")
	}

	return client.NewProfile(config), nil
}

// configuration checks every required setting and returns a copy of the
// builder state. A rejected setter fails the build until a later call for the
// same setting succeeds.
func (b *Builder) configuration() (client.Configuration, error) {
	if b.headersErr != nil {
		return client.Configuration{}, b.headersErr
	}

	if b.makerErr != nil {
		return client.Configuration{}, b.makerErr
	}

	headers := make(map[string]string, len(b.headers)+1)
	if b.authorization != "" {
		headers[constants.HeaderAuthorization] = b.authorization
	}

	maps.Copy(headers, b.headers)

	baseURL := strings.TrimSpace(b.baseURL)

	switch {
	case baseURL == "":
		return client.Configuration{}, missing("base URL")
	case strings.TrimSpace(headers[constants.HeaderAuthorization]) == "":
		return client.Configuration{}, missing("authorization")
	case isNil(b.parser):
		return client.Configuration{}, missing("parser")
	case isNil(b.requestMaker) && b.makerType == "":
		return client.Configuration{}, missing("request maker")
	}

	_, err := internalhttp.ValidateURL(baseURL)
	if err != nil {
		return client.Configuration{}, &outseta.Error{
			Kind:    outseta.KindClientBuild,
			Message: "base URL is malformed",
			URL:     baseURL,
			Cause:   err,
		}
	}

	requestMaker := b.requestMaker
	if b.makerType != "" {
		built, err := internalhttp.NewRequestMaker(b.makerType, b.requestMakerOptions()...)
		if err != nil {
			return client.Configuration{}, err
		}

		requestMaker = built
	}

	return client.Configuration{
		BaseURL:      baseURL,
		Headers:      headers,
		Parser:       b.parser,
		RequestMaker: requestMaker,
		Logger:       b.logger,
	}, nil
}

func (b *Builder) requestMakerOptions() []internalhttp.Option {
	opts := []internalhttp.Option{internalhttp.WithDebug(b.debug)}

	if b.logger != nil {
		opts = append(opts, internalhttp.WithLogger(b.logger))
	}

	if b.userAgent != "" {
		opts = append(opts, internalhttp.WithUserAgent(b.userAgent))
	}

	if b.interceptors != nil {
		opts = append(opts, internalhttp.WithInterceptors(b.interceptors))
	}

	return opts
}

func missing(field string) *outseta.Error {
	return outseta.NewError(outseta.KindClientBuild, field+" is required")
}

// authorizationValue prefixes credential with scheme unless it already
// starts with a known scheme. A blank credential yields no value.
func authorizationValue(scheme, credential string) string {
	credential = strings.TrimSpace(credential)
	if credential == "" {
		return ""
	}

	if hasScheme(credential, constants.APIKeyScheme) || hasScheme(credential, constants.AccessKeyScheme) {
		return credential
	}

	return scheme + " " + credential
}

func hasScheme(value, scheme string) bool {
	prefix := scheme + " "

	return len(value) > len(prefix) && strings.EqualFold(value[:len(prefix)], prefix)
}

// isNil reports whether v is nil or an interface holding a nil pointer.
func isNil(v any) bool {
	if v == nil {
		return true
	}

	value := reflect.ValueOf(v)

	switch value.Kind() {
	case reflect.Ptr, reflect.Map, reflect.Func, reflect.Chan, reflect.Slice, reflect.Interface:
		return value.IsNil()
	default:
		return false
	}
}
