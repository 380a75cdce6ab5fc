package errors

import (
	"errors"
	"fmt"
)

// Wrap prefixes err with message. The code and details of the first AppError
// in err's chain carry over; any other error is wrapped as CAUGHT.
// Wrap(nil, ...) is nil.
func Wrap(err error, message string) *AppError {
	if err == nil {
		return nil
	}
	wrapped := New(ErrCodeCaught, message).WithCause(err)
	if inner, ok := AsType[*AppError](err); ok {
		wrapped.Code = inner.Code
		for key, value := range inner.Details {
			wrapped.WithDetail(key, value)
		}
	}
	return wrapped
}

// Wrapf is Wrap with a formatted message.
func Wrapf(err error, format string, args ...any) *AppError {
	return Wrap(err, fmt.Sprintf(format, args...))
}

// Is reports whether err matches target. AppError targets match by code.
func Is(err, target error) bool {
	return errors.Is(err, target)
}

// GetCode returns the code of the first AppError in err's chain, or "".
func GetCode(err error) ErrorCode {
	if appErr, ok := AsType[*AppError](err); ok {
		return appErr.Code
	}
	return ""
}

// IsCode reports whether err carries code.
func IsCode(err error, code ErrorCode) bool {
	return err != nil && GetCode(err) == code
}
