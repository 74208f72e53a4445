package commands

import (
	"io"
	"os"
	"sync"
	"time"

	"github.com/fivetwenty-io/outseta-client/internal/auth"
	"github.com/fivetwenty-io/outseta-client/internal/constants"
	"github.com/fivetwenty-io/outseta-client/internal/logging"
	"github.com/fivetwenty-io/outseta-client/pkg/outseta"
	"github.com/fivetwenty-io/outseta-client/pkg/outsetaclient"
	"github.com/rs/zerolog"
	"github.com/spf13/viper"
	"golang.org/x/term"
)

var (
	loggerMu  sync.Mutex
	cliLogger outseta.Logger = logging.Nop{}
)

// SetupLogger builds the CLI logger from --log-level and --log-format.
// Colour is only used when out is a terminal.
func SetupLogger(out io.Writer) zerolog.Logger {
	level := viper.GetString("log_level")
	if level == "" && viper.GetBool("verbose") {
		level = "debug"
	}

	if level == "" {
		level = "warn"
	}

	return logging.New(logging.Options{
		Level:   level,
		Format:  viper.GetString("log_format"),
		NoColor: !isTerminal(out),
		Output:  out,
	})
}

// InitLogger installs the logger every command uses.
func InitLogger() {
	logger := SetupLogger(os.Stderr)

	loggerMu.Lock()
	defer loggerMu.Unlock()

	cliLogger = logging.NewAdapter(logger)
}

func currentLogger() outseta.Logger {
	loggerMu.Lock()
	defer loggerMu.Unlock()

	return cliLogger
}

func isTerminal(out io.Writer) bool {
	file, ok := out.(*os.File)
	if !ok {
		return false
	}

	return term.IsTerminal(int(file.Fd()))
}

// newBuilder prepares a builder from the resolved configuration. chain may
// carry extra interceptors; logging and request ID interceptors are added to it.
func newBuilder(config *Config, chain *outseta.InterceptorChain) *outsetaclient.Builder {
	logger := currentLogger()

	if chain == nil {
		chain = outseta.NewInterceptorChain()
	}

	if viper.GetBool("request_id") {
		chain.AddRequestInterceptor(outseta.RequestIDInterceptor())
	}

	chain.AddRequestInterceptor(outseta.LoggingInterceptor(logger))
	chain.AddResponseInterceptor(outseta.LoggingResponseInterceptor(logger))

	builder := outsetaclient.NewBuilder(config.BaseURL).
		DefaultParser().
		Logger(logger).
		Debug(viper.GetBool("verbose")).
		Interceptors(chain)

	if config.RequestMaker != "" {
		builder.RequestMakerName(config.RequestMaker)
	} else {
		builder.DefaultRequestMaker()
	}

	return builder
}

// CreateClient builds an API client. An API key is preferred over an access
// key when both are configured.
func CreateClient() (outseta.Client, error) {
	return createClientWithInterceptors(nil)
}

func createClientWithInterceptors(chain *outseta.InterceptorChain) (outseta.Client, error) {
	config := loadConfig()

	if config.BaseURL == "" {
		return nil, constants.ErrNoBaseURL
	}

	builder := newBuilder(config, chain)

	switch {
	case config.APIKey != "":
		builder.APIKey(config.APIKey)
	case config.AccessKey != "":
		warnIfExpired(config)
		builder.AccessKey(config.AccessKey)
	default:
		return nil, constants.ErrNoCredentials
	}

	return builder.Build()
}

// CreateAPIKeyClient builds a client that must authenticate with an API key.
func CreateAPIKeyClient() (outseta.Client, error) {
	config := loadConfig()

	if config.BaseURL == "" {
		return nil, constants.ErrNoBaseURL
	}

	if config.APIKey == "" {
		return nil, constants.ErrNoCredentials
	}

	return newBuilder(config, nil).APIKey(config.APIKey).Build()
}

// CreateProfileClient builds a profile client from the stored access key.
func CreateProfileClient() (outseta.ProfileClient, error) {
	config := loadConfig()

	if config.BaseURL == "" {
		return nil, constants.ErrNoBaseURL
	}

	if config.AccessKey == "" {
		return nil, constants.ErrNoAccessKey
	}

	warnIfExpired(config)

	return newBuilder(config, nil).AccessKey(config.AccessKey).BuildProfile()
}

// warnIfExpired logs when the stored access key is past its expiry.
func warnIfExpired(config *Config) {
	expiresAt := config.accessKeyExpiry()
	if auth.Expired(expiresAt, time.Now()) {
		currentLogger().Warn("stored access key has expired, run 'outseta login'", map[string]interface{}{
			"expired_at": expiresAt.Format(time.RFC3339),
		})
	}
}
