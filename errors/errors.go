// Package errors provides the typed failures raised by the library: a small
// set of codes, an AppError carrying code, message, details and cause, and
// chain helpers built on the standard errors package.
package errors

import (
	"encoding/json"
	"errors"
	"log/slog"
)

// AsType is a generic error type assertion.
// Returns the error as type T and true if the error chain contains type T.
func AsType[T error](err error) (T, bool) {
	var target T
	if errors.As(err, &target) {
		return target, true
	}
	return target, false
}

// Must panics if err is not nil, otherwise returns value.
func Must[T any](value T, err error) T {
	if err != nil {
		panic(err)
	}
	return value
}

// ErrorCode represents library error categories.
type ErrorCode string

// Error codes.
const (
	// Argument shape errors raised by the optics validators.
	ErrCodeIncorrectArgs ErrorCode = "INCORRECT_ARGS"

	// Extraction from an empty or failed container.
	ErrCodeIllegalExtraction ErrorCode = "ILLEGAL_EXTRACTION"

	// Caller requested conversion of a failure into an error.
	ErrCodeExplicitFailure ErrorCode = "EXPLICIT_FAILURE"

	// A panic or error captured by TryCatch.
	ErrCodeCaught ErrorCode = "CAUGHT"

	// Tuple construction: nil members, wrong arity or member kinds.
	ErrCodeNullValue    ErrorCode = "NULL_VALUE"
	ErrCodeTypeMismatch ErrorCode = "TYPE_MISMATCH"

	// Document decoding and configuration.
	ErrCodeDecode ErrorCode = "DECODE_ERROR"
	ErrCodeConfig ErrorCode = "CONFIG_ERROR"
)

// Fixed messages.
const (
	MsgIncorrectArgs  = "Incorrect arguments were passed"
	MsgNothingExtract = "Can't extract the value of a Nothing."
	MsgLeftExtract    = "Can't extract the value of a Left."
	MsgNullTuple      = "Tuples may not have any null values"
	MsgTupleArity     = "Tuple arity does not match its prototype"
)

// Sentinels for errors.Is. AppError.Is matches by code, so any error built
// with the same code satisfies errors.Is against these.
var (
	ErrIncorrectArgs     = &AppError{Code: ErrCodeIncorrectArgs, Message: MsgIncorrectArgs}
	ErrIllegalExtraction = &AppError{Code: ErrCodeIllegalExtraction}
	ErrExplicitFailure   = &AppError{Code: ErrCodeExplicitFailure}
	ErrCaught            = &AppError{Code: ErrCodeCaught}
)

// AppError is the standard library error type.
type AppError struct {
	Code    ErrorCode      `json:"code"`
	Message string         `json:"message"`
	Details map[string]any `json:"details,omitempty"`
	cause   error
}

// Error returns the message, followed by the cause when there is one.
func (e *AppError) Error() string {
	if e.cause != nil {
		if e.Message == "" {
			return e.cause.Error()
		}
		return e.Message + ": " + e.cause.Error()
	}
	return e.Message
}

// Unwrap returns the underlying cause for errors.Is/As.
func (e *AppError) Unwrap() error {
	return e.cause
}

// WithCause sets the underlying cause.
func (e *AppError) WithCause(cause error) *AppError {
	e.cause = cause
	return e
}

// WithDetail adds a detail to the error.
func (e *AppError) WithDetail(key string, value any) *AppError {
	if e.Details == nil {
		e.Details = make(map[string]any)
	}
	e.Details[key] = value
	return e
}

// Is checks if the error matches a target error code.
func (e *AppError) Is(target error) bool {
	if t, ok := target.(*AppError); ok {
		return e.Code == t.Code
	}
	return errors.Is(e.cause, target)
}

// As implements errors.As for type assertion.
func (e *AppError) As(target any) bool {
	if t, ok := target.(**AppError); ok {
		*t = e
		return true
	}
	return false
}

// LogValue implements slog.LogValuer.
func (e *AppError) LogValue() slog.Value {
	attrs := []slog.Attr{
		slog.String("code", string(e.Code)),
		slog.String("message", e.Message),
	}
	if len(e.Details) > 0 {
		attrs = append(attrs, slog.Any("details", e.Details))
	}
	if e.cause != nil {
		attrs = append(attrs, slog.String("cause", e.cause.Error()))
	}
	return slog.GroupValue(attrs...)
}

// MarshalJSON implements json.Marshaler.
func (e *AppError) MarshalJSON() ([]byte, error) {
	type Alias AppError
	aux := &struct {
		*Alias
		Cause string `json:"cause,omitempty"`
	}{Alias: (*Alias)(e)}
	if e.cause != nil {
		aux.Cause = e.cause.Error()
	}
	return json.Marshal(aux)
}
