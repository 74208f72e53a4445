package constants

// File and directory permissions.
const (
	// ConfigDirPerm is the permission for configuration directories.
	ConfigDirPerm = 0750

	// ConfigFilePerm is the permission for configuration files.
	ConfigFilePerm = 0600
)

// HTTP headers and media types.
const (
	// HeaderAuthorization carries the API key or access token.
	HeaderAuthorization = "Authorization"

	// HeaderContentType is the request body media type header.
	HeaderContentType = "Content-Type"

	// HeaderAccept is the accepted response media type header.
	HeaderAccept = "Accept"

	// HeaderUserAgent identifies the client.
	HeaderUserAgent = "User-Agent"

	// ContentTypeJSON is the media type for every request body.
	ContentTypeJSON = "application/json"

	// DefaultUserAgent is sent when no other user agent is configured.
	DefaultUserAgent = "outseta-go-client/1.0"
)

// Authorization schemes.
const (
	// APIKeyScheme prefixes server-to-server API keys.
	APIKeyScheme = "Outseta"

	// AccessKeyScheme prefixes user access tokens.
	AccessKeyScheme = "bearer"
)

// Concurrency limits.
const (
	// DefaultConcurrencyLimit limits concurrent API calls made by the CLI.
	DefaultConcurrencyLimit = 4
)

// Pagination and display limits.
const (
	// DefaultPageSize is the page size the CLI requests when none is given.
	DefaultPageSize = 25

	// MaxAllPages bounds how many pages --all will follow.
	MaxAllPages = 1000
)

// UI and display constants.
const (
	// NotAvailable is used when information is not available.
	NotAvailable = "N/A"

	// None is used when no value is present.
	None = "none"

	// MaskedSecret is used to hide sensitive information.
	MaskedSecret = "***"

	// SecretVisibleChars is how many leading characters of a secret stay visible.
	SecretVisibleChars = 4
)

// Format constants.
const (
	// FormatTable for table output format.
	FormatTable = "table"

	// FormatJSON for JSON output format.
	FormatJSON = "json"

	// FormatYAML for YAML output format.
	FormatYAML = "yaml"
)

// CLI configuration.
const (
	// EnvPrefix is the prefix for environment variable overrides.
	EnvPrefix = "OUTSETA"

	// ConfigDirName is the directory under the user home holding the config file.
	ConfigDirName = ".outseta"

	// ConfigFileName is the config file base name, without extension.
	ConfigFileName = "config"

	// ConfigFileType is the config file format.
	ConfigFileType = "yml"
)
