package errors

import "fmt"

// New creates a new AppError with the given code and message.
func New(code ErrorCode, message string) *AppError {
	return &AppError{
		Code:    code,
		Message: message,
	}
}

// IncorrectArgs creates an argument shape error with the fixed message.
func IncorrectArgs() *AppError {
	return New(ErrCodeIncorrectArgs, MsgIncorrectArgs)
}

// IllegalExtraction creates an extraction error.
func IllegalExtraction(message string) *AppError {
	return New(ErrCodeIllegalExtraction, message)
}

// ExplicitFailure creates an error whose message is the caller's text verbatim.
func ExplicitFailure(message string) *AppError {
	return New(ErrCodeExplicitFailure, message)
}

// Caught converts a recovered panic value or a returned error into an AppError.
// Errors are kept as the cause so errors.Is/As still reach them.
func Caught(recovered any) *AppError {
	switch v := recovered.(type) {
	case error:
		return New(ErrCodeCaught, "").WithCause(v)
	default:
		return New(ErrCodeCaught, fmt.Sprint(v)).WithDetail("panic", v)
	}
}

// NullValue creates an error for a nil where a value is required.
func NullValue(message string) *AppError {
	return New(ErrCodeNullValue, message)
}

// TypeMismatch creates an error for a value of the wrong shape.
func TypeMismatch(message string) *AppError {
	return New(ErrCodeTypeMismatch, message)
}

// KindMismatch reports a value of kind found where expected was required.
func KindMismatch(expected, found string) *AppError {
	return TypeMismatch(fmt.Sprintf("Type mismatch. Expected [%s] but found [%s]", expected, found)).
		WithDetail("expected", expected).
		WithDetail("found", found)
}

// Decode creates a document decoding error.
func Decode(format string, cause error) *AppError {
	return New(ErrCodeDecode, "failed to decode "+format).WithCause(cause)
}

// Config creates a configuration error.
func Config(message string) *AppError {
	return New(ErrCodeConfig, message)
}
