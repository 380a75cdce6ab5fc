package functional

import (
	"fmt"

	"github.com/authcorp/libs/go/fantasy/data"
	"github.com/authcorp/libs/go/fantasy/errors"
)

// Either represents a value of one of two possible types.
// By convention, Left carries failure information and Right success values.
// The container never inspects what a Left holds.
type Either[L, R any] struct {
	left    L
	right   R
	isRight bool
}

// Left creates an Either with a left value.
func Left[L, R any](value L) Either[L, R] {
	return Either[L, R]{left: value, isRight: false}
}

// Right creates an Either with a right value.
func Right[L, R any](value R) Either[L, R] {
	return Either[L, R]{right: value, isRight: true}
}

// EitherOf is an alias for Right.
func EitherOf[L, R any](value R) Either[L, R] {
	return Right[L](value)
}

// EitherFromNullable returns Right(value) unless value is nil, in which case
// it returns a Left holding the zero L. With L = any that Left holds nil and
// prints as Either.Left(<nil>); a concrete L prints its zero value instead.
func EitherFromNullable[L, R any](value R) Either[L, R] {
	if data.IsNil(value) {
		var zero L
		return Left[L, R](zero)
	}
	return Right[L](value)
}

// TryCatch runs fn and lifts its outcome: a returned error or a panic
// becomes a Left, a normal return a Right. Errors are kept as they are;
// panics are wrapped in a CAUGHT *errors.AppError.
func TryCatch[R any](fn func() (R, error)) (result Either[error, R]) {
	defer func() {
		if r := recover(); r != nil {
			result = Left[error, R](errors.Caught(r))
		}
	}()

	value, err := fn()
	if err != nil {
		return Left[error, R](err)
	}
	return Right[error](value)
}

// TryCatchFunc is TryCatch for computations that only fail by panicking.
func TryCatchFunc[R any](fn func() R) Either[error, R] {
	return TryCatch(func() (R, error) {
		return fn(), nil
	})
}

// IsLeft returns true if Either contains a left value.
func (e Either[L, R]) IsLeft() bool {
	return !e.isRight
}

// IsRight returns true if Either contains a right value.
func (e Either[L, R]) IsRight() bool {
	return e.isRight
}

// GetValue returns whichever value the Either holds.
func (e Either[L, R]) GetValue() any {
	if e.isRight {
		return e.right
	}
	return e.left
}

// LeftValue returns the left value or panics.
func (e Either[L, R]) LeftValue() L {
	if e.isRight {
		panic(errors.IllegalExtraction("called LeftValue on Right"))
	}
	return e.left
}

// Get returns the right value. It panics with an ILLEGAL_EXTRACTION
// *errors.AppError on Left.
func (e Either[L, R]) Get() R {
	v, err := e.TryGet()
	if err != nil {
		panic(err)
	}
	return v
}

// TryGet returns the right value, or an ILLEGAL_EXTRACTION error.
func (e Either[L, R]) TryGet() (R, error) {
	if !e.isRight {
		var zero R
		return zero, errors.IllegalExtraction(errors.MsgLeftExtract)
	}
	return e.right, nil
}

// GetOrElse returns the right value or elseValue.
func (e Either[L, R]) GetOrElse(elseValue R) R {
	if e.isRight {
		return e.right
	}
	return elseValue
}

// GetOrElseThrow returns the right value, or on Left an EXPLICIT_FAILURE
// error whose text is message verbatim.
func (e Either[L, R]) GetOrElseThrow(message string) (R, error) {
	if !e.isRight {
		var zero R
		return zero, errors.ExplicitFailure(message)
	}
	return e.right, nil
}

// OrElse leaves a Right unchanged and hands a Left's value to fn, which is
// the only way out of a Left.
func (e Either[L, R]) OrElse(fn func(L) Either[L, R]) Either[L, R] {
	if e.isRight {
		return e
	}
	return fn(e.left)
}

// Map applies fn to a Right. The result stays Right even when it is nil.
func (e Either[L, R]) Map(fn func(R) R) Either[L, R] {
	if !e.isRight {
		return e
	}
	return Right[L](fn(e.right))
}

// Filter keeps a Right whose value satisfies predicate; a failing or nil
// value becomes a Left holding the zero L. Left is returned unchanged.
func (e Either[L, R]) Filter(predicate func(R) bool) Either[L, R] {
	if !e.isRight {
		return e
	}
	if predicate(e.right) {
		return EitherFromNullable[L](e.right)
	}
	var zero L
	return Left[L, R](zero)
}

// Chain applies fn to a Right and returns its result as is.
func (e Either[L, R]) Chain(fn func(R) Either[L, R]) Either[L, R] {
	if !e.isRight {
		return e
	}
	return fn(e.right)
}

// Swap exchanges left and right values.
func (e Either[L, R]) Swap() Either[R, L] {
	if e.isRight {
		return Left[R, L](e.right)
	}
	return Right[R](e.left)
}

// String renders Either.Right(value) or Either.Left(value).
func (e Either[L, R]) String() string {
	if e.isRight {
		return fmt.Sprintf("Either.Right(%v)", e.right)
	}
	return fmt.Sprintf("Either.Left(%v)", e.left)
}

// Inspect is an alias for String.
func (e Either[L, R]) Inspect() string {
	return e.String()
}

// MapEither applies a type changing function to the right value.
func MapEither[L, R, U any](e Either[L, R], fn func(R) U) Either[L, U] {
	if e.isRight {
		return Right[L](fn(e.right))
	}
	return Left[L, U](e.left)
}

// MapEitherLeft applies a function to the left value.
func MapEitherLeft[L, R, U any](e Either[L, R], fn func(L) U) Either[U, R] {
	if !e.isRight {
		return Left[U, R](fn(e.left))
	}
	return Right[U](e.right)
}

// ChainEither applies a function that returns an Either.
func ChainEither[L, R, U any](e Either[L, R], fn func(R) Either[L, U]) Either[L, U] {
	if e.isRight {
		return fn(e.right)
	}
	return Left[L, U](e.left)
}

// MatchEither executes one of two functions and returns the result.
func MatchEither[L, R, U any](e Either[L, R], onLeft func(L) U, onRight func(R) U) U {
	if e.isRight {
		return onRight(e.right)
	}
	return onLeft(e.left)
}
