package errors

import (
	"errors"
	"fmt"
)

// Error codes surfaced to callers.
const (
	CodeSchemaParse      = "SCHEMA_PARSE"
	CodeRecordParse      = "RECORD_PARSE"
	CodeInvalidRecord    = "INVALID_RECORD"
	CodeUnknownField     = "UNKNOWN_FIELD"
	CodeUnsupportedField = "UNSUPPORTED_FIELD"
	CodeMissingOption    = "MISSING_OPTION"
	CodeConfigInvalid    = "CONFIG_INVALID"
	CodeIO               = "IO"
	CodeInternal         = "INTERNAL_ERROR"
)

// Sentinels for errors.Is. Any AppError with the same code matches.
var (
	ErrSchemaParse      = New(CodeSchemaParse, "malformed schema document")
	ErrRecordParse      = New(CodeRecordParse, "malformed record")
	ErrInvalidRecord    = New(CodeInvalidRecord, "invalid record")
	ErrUnknownField     = New(CodeUnknownField, "unknown field")
	ErrUnsupportedField = New(CodeUnsupportedField, "unsupported field")
	ErrMissingOption    = New(CodeMissingOption, "missing option")
	ErrConfigInvalid    = New(CodeConfigInvalid, "invalid configuration")
)

// AppError is a coded error carrying an optional cause.
type AppError struct {
	Code    string
	Message string
	Cause   error
}

func (e *AppError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Cause
}

// Is reports whether target is an AppError with the same code.
func (e *AppError) Is(target error) bool {
	var t *AppError
	if !errors.As(target, &t) {
		return false
	}
	return t.Code == e.Code
}

// New creates a new AppError.
func New(code, message string) *AppError {
	return &AppError{Code: code, Message: message}
}

// Newf creates a new AppError with a formatted message.
func Newf(code, format string, args ...any) *AppError {
	return New(code, fmt.Sprintf(format, args...))
}

// Wrap wraps err with a message, keeping the code of an inner AppError.
func Wrap(err error, message string) error {
	if err == nil {
		return nil
	}
	var appErr *AppError
	if errors.As(err, &appErr) {
		return &AppError{Code: appErr.Code, Message: message, Cause: err}
	}
	return &AppError{Code: CodeInternal, Message: message, Cause: err}
}

// Wrapf wraps err with a formatted message.
func Wrapf(err error, format string, args ...any) error {
	if err == nil {
		return nil
	}
	return Wrap(err, fmt.Sprintf(format, args...))
}

// WithCode wraps err under the given code.
func WithCode(code string, err error) error {
	if err == nil {
		return nil
	}
	return &AppError{Code: code, Message: err.Error(), Cause: err}
}

// GetCode returns the code of the outermost AppError in the chain, or "UNKNOWN".
func GetCode(err error) string {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Code
	}
	return "UNKNOWN"
}

// InvalidRecordError reports a semantic violation in one input row.
type InvalidRecordError struct {
	Field string
	Value string
	// Row is 1-based and counts the header row.
	Row int
}

func (e *InvalidRecordError) Error() string {
	return fmt.Sprintf("invalid record at row %d: %s=%q", e.Row, e.Field, e.Value)
}

func (e *InvalidRecordError) Is(target error) bool {
	return target == ErrInvalidRecord
}

// Common constructors

func SchemaParse(format string, args ...any) *AppError {
	return Newf(CodeSchemaParse, format, args...)
}

func RecordParse(format string, args ...any) *AppError {
	return Newf(CodeRecordParse, format, args...)
}

func UnknownField(name string) *AppError {
	return Newf(CodeUnknownField, "unknown field: %s", name)
}

func UnsupportedField(name, reason string) *AppError {
	return Newf(CodeUnsupportedField, "unsupported field %s: %s", name, reason)
}

func MissingOption(category, value string) *AppError {
	return Newf(CodeMissingOption, "no option %q in category %q", value, category)
}

func ConfigInvalid(format string, args ...any) *AppError {
	return Newf(CodeConfigInvalid, format, args...)
}
