package functional

import (
	"github.com/samber/mo"
)

// Conversions to and from github.com/samber/mo, for callers that already
// speak its Option, Result and Either types. Only the active value survives
// the trip: the value a Nothing remembers is dropped.

// MaybeToOption converts a Maybe to an mo.Option.
func MaybeToOption[T any](m Maybe[T]) mo.Option[T] {
	if m.just {
		return mo.Some(m.value)
	}
	return mo.None[T]()
}

// OptionToMaybe converts an mo.Option to a Maybe.
func OptionToMaybe[T any](o mo.Option[T]) Maybe[T] {
	if v, ok := o.Get(); ok {
		return Just(v)
	}
	return None[T]()
}

// EitherToResult converts an error-carrying Either to an mo.Result.
func EitherToResult[R any](e Either[error, R]) mo.Result[R] {
	if e.isRight {
		return mo.Ok(e.right)
	}
	return mo.Err[R](e.left)
}

// ResultToEither converts an mo.Result to an error-carrying Either.
func ResultToEither[R any](r mo.Result[R]) Either[error, R] {
	v, err := r.Get()
	if err != nil {
		return Left[error, R](err)
	}
	return Right[error](v)
}

// EitherToMo converts an Either to an mo.Either.
func EitherToMo[L, R any](e Either[L, R]) mo.Either[L, R] {
	if e.isRight {
		return mo.Right[L](e.right)
	}
	return mo.Left[L, R](e.left)
}

// EitherFromMo converts an mo.Either to an Either.
func EitherFromMo[L, R any](e mo.Either[L, R]) Either[L, R] {
	if r, ok := e.Right(); ok {
		return Right[L](r)
	}
	l, _ := e.Left()
	return Left[L, R](l)
}
