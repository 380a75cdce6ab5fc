package functional

import (
	"fmt"

	"github.com/authcorp/libs/go/fantasy/data"
	"github.com/authcorp/libs/go/fantasy/errors"
)

// Maybe represents a value that may be absent. Unlike a plain option, a
// Nothing still stores whatever it was built with (see GetValue), and
// mapping a Just to a nil result demotes it to Nothing.
type Maybe[T any] struct {
	value T
	just  bool
}

// Just creates a Maybe holding value, even when value is nil.
func Just[T any](value T) Maybe[T] {
	return Maybe[T]{value: value, just: true}
}

// Nothing creates an empty Maybe that remembers value for diagnostics.
func Nothing[T any](value T) Maybe[T] {
	return Maybe[T]{value: value}
}

// None creates an empty Maybe holding the zero value.
func None[T any]() Maybe[T] {
	return Maybe[T]{}
}

// Of is an alias for Just.
func Of[T any](value T) Maybe[T] {
	return Just(value)
}

// FromNullable returns Just(value) unless value is nil, in which case it
// returns Nothing(value). Zero values that are not nil (0, "", false) are Just.
func FromNullable[T any](value T) Maybe[T] {
	if data.IsNil(value) {
		return Nothing(value)
	}
	return Just(value)
}

// IsJust returns true if the Maybe holds a value.
func (m Maybe[T]) IsJust() bool {
	return m.just
}

// IsNothing returns true if the Maybe is empty.
func (m Maybe[T]) IsNothing() bool {
	return !m.just
}

// GetValue returns the stored value whatever the variant.
func (m Maybe[T]) GetValue() T {
	return m.value
}

// Get returns the value of a Just. It panics with an ILLEGAL_EXTRACTION
// *errors.AppError on Nothing; use TryGet or GetOrElse when emptiness is expected.
func (m Maybe[T]) Get() T {
	v, err := m.TryGet()
	if err != nil {
		panic(err)
	}
	return v
}

// TryGet returns the value of a Just, or an ILLEGAL_EXTRACTION error.
func (m Maybe[T]) TryGet() (T, error) {
	if !m.just {
		var zero T
		return zero, errors.IllegalExtraction(errors.MsgNothingExtract)
	}
	return m.value, nil
}

// GetOrElse returns the value of a Just or elseValue.
func (m Maybe[T]) GetOrElse(elseValue T) T {
	if m.just {
		return m.value
	}
	return elseValue
}

// Map applies fn to a Just and re-checks the result with FromNullable.
// Nothing is returned unchanged without calling fn.
func (m Maybe[T]) Map(fn func(T) T) Maybe[T] {
	if !m.just {
		return m
	}
	return FromNullable(fn(m.value))
}

// Filter keeps a Just whose value satisfies predicate; otherwise Nothing.
func (m Maybe[T]) Filter(predicate func(T) bool) Maybe[T] {
	if !m.just {
		return m
	}
	if predicate(m.value) {
		return FromNullable(m.value)
	}
	return None[T]()
}

// Chain applies fn to a Just and returns its result as is.
func (m Maybe[T]) Chain(fn func(T) Maybe[T]) Maybe[T] {
	if !m.just {
		return m
	}
	return fn(m.value)
}

// String renders Maybe.Just(value) or Maybe.Nothing().
func (m Maybe[T]) String() string {
	if m.just {
		return fmt.Sprintf("Maybe.Just(%v)", m.value)
	}
	return "Maybe.Nothing()"
}

// Inspect is an alias for String.
func (m Maybe[T]) Inspect() string {
	return m.String()
}

// MapMaybe applies a type changing transformation to a Maybe.
// A Nothing maps to a Nothing holding the zero U.
func MapMaybe[T, U any](m Maybe[T], fn func(T) U) Maybe[U] {
	if !m.just {
		return None[U]()
	}
	return FromNullable(fn(m.value))
}

// ChainMaybe applies a function that returns a Maybe.
func ChainMaybe[T, U any](m Maybe[T], fn func(T) Maybe[U]) Maybe[U] {
	if !m.just {
		return None[U]()
	}
	return fn(m.value)
}

// MatchMaybe executes one of two functions and returns the result.
func MatchMaybe[T, U any](m Maybe[T], onJust func(T) U, onNothing func() U) U {
	if m.just {
		return onJust(m.value)
	}
	return onNothing()
}
