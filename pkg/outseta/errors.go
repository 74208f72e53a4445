package outseta

import (
	"errors"
	"fmt"
	"strings"
)

// ErrorKind classifies every failure the client can report.
type ErrorKind int

// Error kinds.
const (
	KindUnknown ErrorKind = iota
	KindInvalidArgument
	KindInvalidURL
	KindBadRequest
	KindFailed
	KindParse
	KindClientBuild
	KindInvalidRequestMaker
	KindPageBuild
)

var kindNames = map[ErrorKind]string{
	KindUnknown:             "unknown",
	KindInvalidArgument:     "invalid argument",
	KindInvalidURL:          "invalid URL",
	KindBadRequest:          "bad request",
	KindFailed:              "request failed",
	KindParse:               "parse error",
	KindClientBuild:         "client build error",
	KindInvalidRequestMaker: "invalid request maker",
	KindPageBuild:           "page build error",
}

// String returns the human readable name of the kind.
func (k ErrorKind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}

	return fmt.Sprintf("ErrorKind(%d)", int(k))
}

// Sentinel errors matched by errors.Is against any *Error of the same kind.
var (
	ErrUnknown             = &Error{Kind: KindUnknown}
	ErrInvalidArgument     = &Error{Kind: KindInvalidArgument}
	ErrInvalidURL          = &Error{Kind: KindInvalidURL}
	ErrBadRequest          = &Error{Kind: KindBadRequest}
	ErrFailed              = &Error{Kind: KindFailed}
	ErrParse               = &Error{Kind: KindParse}
	ErrClientBuild         = &Error{Kind: KindClientBuild}
	ErrInvalidRequestMaker = &Error{Kind: KindInvalidRequestMaker}
	ErrPageBuild           = &Error{Kind: KindPageBuild}
)

// Error carries the kind of a failure and, for HTTP failures, the request and
// response details that produced it.
type Error struct {
	Kind    ErrorKind
	Message string

	URL          string
	Params       Params
	Headers      map[string]string
	Payload      string
	StatusCode   int
	ResponseBody string

	Cause error
}

// Error implements the error interface.
func (e *Error) Error() string {
	var builder strings.Builder

	builder.WriteString("outseta: ")
	builder.WriteString(e.Kind.String())

	if e.Message != "" {
		builder.WriteString(": ")
		builder.WriteString(e.Message)
	}

	if e.StatusCode != 0 {
		fmt.Fprintf(&builder, " (status %d)", e.StatusCode)
	}

	if e.URL != "" {
		fmt.Fprintf(&builder, " [%s]", e.URL)
	}

	if e.Cause != nil {
		builder.WriteString(": ")
		builder.WriteString(e.Cause.Error())
	}

	return builder.String()
}

// Unwrap returns the underlying cause.
func (e *Error) Unwrap() error {
	return e.Cause
}

// Is reports whether target is an *Error of the same kind.
func (e *Error) Is(target error) bool {
	var other *Error
	if !errors.As(target, &other) {
		return false
	}

	return other.Kind == e.Kind
}

// NewError creates an error of the given kind.
func NewError(kind ErrorKind, message string) *Error {
	return &Error{Kind: kind, Message: message}
}

// InvalidArgument reports a missing or invalid caller-supplied value.
func InvalidArgument(name string) *Error {
	return &Error{Kind: KindInvalidArgument, Message: name + " must not be empty"}
}

// ParseError wraps a serialization failure.
func ParseError(message string, cause error) *Error {
	return &Error{Kind: KindParse, Message: message, Cause: cause}
}

// KindOf returns the kind of err, or KindUnknown when err is not an *Error.
func KindOf(err error) ErrorKind {
	var outsetaErr *Error
	if errors.As(err, &outsetaErr) {
		return outsetaErr.Kind
	}

	return KindUnknown
}

// IsInvalidArgument checks if the error is an invalid argument error.
func IsInvalidArgument(err error) bool {
	return errors.Is(err, ErrInvalidArgument)
}

// IsInvalidURL checks if the error is an invalid URL error.
func IsInvalidURL(err error) bool {
	return errors.Is(err, ErrInvalidURL)
}

// IsBadRequest checks if the error came from a 4xx response.
func IsBadRequest(err error) bool {
	return errors.Is(err, ErrBadRequest)
}

// IsFailed checks if the error came from a 5xx response.
func IsFailed(err error) bool {
	return errors.Is(err, ErrFailed)
}

// IsParse checks if the error is a parse error.
func IsParse(err error) bool {
	return errors.Is(err, ErrParse)
}

// IsNotFound checks if the error is a 404 response.
func IsNotFound(err error) bool {
	var outsetaErr *Error
	if errors.As(err, &outsetaErr) {
		return outsetaErr.Kind == KindBadRequest && outsetaErr.StatusCode == 404
	}

	return false
}
