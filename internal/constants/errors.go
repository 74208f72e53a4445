package constants

import "errors"

// Configuration errors.
var (
	ErrNoBaseURL       = errors.New("no base URL configured, use 'outseta config set base-url <url>' or --base-url")
	ErrNoCredentials   = errors.New("no API key or access key configured, use 'outseta login' or --api-key")
	ErrNoAccessKey     = errors.New("no access key configured, use 'outseta login' to obtain one")
	ErrUnknownConfig   = errors.New("unknown configuration key")
	ErrInvalidFormat   = errors.New("invalid output format, expected table, json or yaml")
	ErrEmptyPassword   = errors.New("password must not be empty")
	ErrFilterNotBool   = errors.New("filter expression must evaluate to a boolean")
	ErrInvalidEnumName = errors.New("unknown value")
)

// Required field errors.
var (
	ErrNameRequired     = errors.New("--name flag is required")
	ErrUsernameRequired = errors.New("username is required")
	ErrEmailRequired    = errors.New("--email flag is required")
	ErrSubjectRequired  = errors.New("--subject flag is required")
	ErrTitleRequired    = errors.New("--title flag is required")
)
