package errors

import (
	"errors"
	"fmt"
)

// ErrorCode represents a unique error code for stable testing
type ErrorCode string

// Error codes for different error categories
const (
	// General errors
	ErrUnknown      ErrorCode = "UNKNOWN"
	ErrInternal     ErrorCode = "INTERNAL"
	ErrInvalidInput ErrorCode = "INVALID_INPUT"

	// Configuration errors
	ErrConfigLoad    ErrorCode = "CONFIG_LOAD"
	ErrConfigParse   ErrorCode = "CONFIG_PARSE"
	ErrConfigInvalid ErrorCode = "CONFIG_INVALID"

	// URL errors
	ErrURLParse       ErrorCode = "URL_PARSE"
	ErrURLNotAbsolute ErrorCode = "URL_NOT_ABSOLUTE"
	ErrURLBase        ErrorCode = "URL_BASE"
	ErrURLNoPath      ErrorCode = "URL_NO_PATH"

	// Path errors
	ErrPathEncoding ErrorCode = "PATH_ENCODING"
	ErrPathNotDir   ErrorCode = "PATH_NOT_DIR"
	ErrFileExists   ErrorCode = "FILE_EXISTS"
	ErrFileWrite    ErrorCode = "FILE_WRITE"

	// External tool errors
	ErrToolNotFound ErrorCode = "TOOL_NOT_FOUND"
	ErrToolExec     ErrorCode = "TOOL_EXEC"
	ErrToolOutput   ErrorCode = "TOOL_OUTPUT"
)

// Kind groups error codes into the categories reported to users.
type Kind int

const (
	KindUnknown Kind = iota
	KindConfig
	KindURL
	KindPath
	KindExternalTool
)

// String returns the name of the kind
func (k Kind) String() string {
	switch k {
	case KindConfig:
		return "ConfigError"
	case KindURL:
		return "UrlError"
	case KindPath:
		return "PathError"
	case KindExternalTool:
		return "ExternalToolError"
	default:
		return "UnknownError"
	}
}

var codeKinds = map[ErrorCode]Kind{
	ErrConfigLoad:     KindConfig,
	ErrConfigParse:    KindConfig,
	ErrConfigInvalid:  KindConfig,
	ErrURLParse:       KindURL,
	ErrURLNotAbsolute: KindURL,
	ErrURLBase:        KindURL,
	ErrURLNoPath:      KindURL,
	ErrPathEncoding:   KindPath,
	ErrPathNotDir:     KindPath,
	ErrFileExists:     KindPath,
	ErrFileWrite:      KindPath,
	ErrToolNotFound:   KindExternalTool,
	ErrToolExec:       KindExternalTool,
	ErrToolOutput:     KindExternalTool,
}

// ManifestError represents a structured error with code and details
type ManifestError struct {
	Code    ErrorCode
	Message string
	Details map[string]interface{}
	Wrapped error
}

// Error implements the error interface
func (e *ManifestError) Error() string {
	if e.Wrapped != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Wrapped)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap implements the errors.Unwrap interface
func (e *ManifestError) Unwrap() error {
	return e.Wrapped
}

// Is implements errors.Is interface
func (e *ManifestError) Is(target error) bool {
	var targetErr *ManifestError
	if errors.As(target, &targetErr) {
		return e.Code == targetErr.Code
	}
	return false
}

// Kind returns the category of the error code
func (e *ManifestError) Kind() Kind {
	return codeKinds[e.Code]
}

// New creates a new ManifestError with the given code and message
func New(code ErrorCode, message string) *ManifestError {
	return &ManifestError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
	}
}

// Newf creates a new ManifestError with a formatted message
func Newf(code ErrorCode, format string, args ...interface{}) *ManifestError {
	return &ManifestError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
	}
}

// Wrap wraps an existing error with a ManifestError
func Wrap(err error, code ErrorCode, message string) *ManifestError {
	if err == nil {
		return nil
	}
	return &ManifestError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// Wrapf wraps an existing error with a formatted message
func Wrapf(err error, code ErrorCode, format string, args ...interface{}) *ManifestError {
	if err == nil {
		return nil
	}
	return &ManifestError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// WithDetail adds a detail to the error
func (e *ManifestError) WithDetail(key string, value interface{}) *ManifestError {
	if e.Details == nil {
		e.Details = make(map[string]interface{})
	}
	e.Details[key] = value
	return e
}

// IsErrorCode checks if an error has a specific error code
func IsErrorCode(err error, code ErrorCode) bool {
	var mErr *ManifestError
	if errors.As(err, &mErr) {
		return mErr.Code == code
	}
	return false
}

// GetErrorCode returns the error code from an error, or ErrUnknown if not a ManifestError
func GetErrorCode(err error) ErrorCode {
	var mErr *ManifestError
	if errors.As(err, &mErr) {
		return mErr.Code
	}
	return ErrUnknown
}

// KindOf returns the category of the outermost ManifestError in the chain
func KindOf(err error) Kind {
	var mErr *ManifestError
	if errors.As(err, &mErr) {
		return mErr.Kind()
	}
	return KindUnknown
}

// GetErrorDetails returns the details from an error, or nil if not a ManifestError
func GetErrorDetails(err error) map[string]interface{} {
	var mErr *ManifestError
	if errors.As(err, &mErr) {
		return mErr.Details
	}
	return nil
}
