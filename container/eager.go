package container

import "fmt"

func render(k Kind, value any) string {
	return fmt.Sprintf("%s(%v)", k, value)
}

// Functor wraps a value and supports map, tap, fold and get.
type Functor[T any] struct {
	value T
}

// NewFunctor wraps value.
func NewFunctor[T any](value T) Functor[T] {
	return Functor[T]{value: value}
}

// Kind returns KindFunctor.
func (Functor[T]) Kind() Kind { return KindFunctor }

// Get returns the wrapped value.
func (c Functor[T]) Get() T { return c.value }

// Map returns a new Functor holding fn applied to the value.
func (c Functor[T]) Map(fn func(T) T) Functor[T] { return NewFunctor(fn(c.value)) }

// Tap calls fn with the value and returns a new Functor over the same value.
func (c Functor[T]) Tap(fn func(T)) Functor[T] {
	fn(c.value)
	return NewFunctor(c.value)
}

func (c Functor[T]) String() string  { return render(KindFunctor, c.value) }
func (c Functor[T]) Inspect() string { return c.String() }

// Apply is a Functor whose value can be applied to an argument.
type Apply[T any] struct {
	value T
}

// NewApply wraps fn.
func NewApply[T any](fn T) Apply[T] {
	return Apply[T]{value: fn}
}

// Kind returns KindApply.
func (Apply[T]) Kind() Kind { return KindApply }

func (Apply[T]) applier() {}

// Get returns the wrapped value.
func (c Apply[T]) Get() T { return c.value }

// Map returns a new Apply holding fn applied to the value.
func (c Apply[T]) Map(fn func(T) T) Apply[T] { return NewApply(fn(c.value)) }

// Tap calls fn with the value and returns a new Apply over the same value.
func (c Apply[T]) Tap(fn func(T)) Apply[T] {
	fn(c.value)
	return NewApply(c.value)
}

func (c Apply[T]) String() string  { return render(KindApply, c.value) }
func (c Apply[T]) Inspect() string { return c.String() }

// Applicative is an Apply with a pure constructor (ApplicativeOf).
type Applicative[T any] struct {
	value T
}

// NewApplicative wraps fn.
func NewApplicative[T any](fn T) Applicative[T] {
	return Applicative[T]{value: fn}
}

// ApplicativeOf lifts a plain value.
func ApplicativeOf[T any](value T) Applicative[T] {
	return NewApplicative(value)
}

// Kind returns KindApplicative.
func (Applicative[T]) Kind() Kind { return KindApplicative }

func (Applicative[T]) applier() {}

// Get returns the wrapped value.
func (c Applicative[T]) Get() T { return c.value }

// Map returns a new Applicative holding fn applied to the value.
func (c Applicative[T]) Map(fn func(T) T) Applicative[T] { return NewApplicative(fn(c.value)) }

// Tap calls fn with the value and returns a new Applicative over the same value.
func (c Applicative[T]) Tap(fn func(T)) Applicative[T] {
	fn(c.value)
	return NewApplicative(c.value)
}

func (c Applicative[T]) String() string  { return render(KindApplicative, c.value) }
func (c Applicative[T]) Inspect() string { return c.String() }

// Monad adds chain, join and apChain to the Apply capabilities.
type Monad[T any] struct {
	value T
}

// NewMonad wraps value.
func NewMonad[T any](value T) Monad[T] {
	return Monad[T]{value: value}
}

// MonadOf is an alias for NewMonad.
func MonadOf[T any](value T) Monad[T] {
	return NewMonad(value)
}

// Kind returns KindMonad.
func (Monad[T]) Kind() Kind { return KindMonad }

func (Monad[T]) applier() {}

// Get returns the wrapped value.
func (c Monad[T]) Get() T { return c.value }

// Join returns the wrapped value, unwrapping one level when the value is
// itself a container.
func (c Monad[T]) Join() T { return c.value }

// Map returns a new Monad holding fn applied to the value.
func (c Monad[T]) Map(fn func(T) T) Monad[T] { return NewMonad(fn(c.value)) }

// Tap calls fn with the value and returns a new Monad over the same value.
func (c Monad[T]) Tap(fn func(T)) Monad[T] {
	fn(c.value)
	return NewMonad(c.value)
}

// Chain returns fn(value) without re-wrapping it.
func (c Monad[T]) Chain(fn func(T) Monad[T]) Monad[T] { return fn(c.value) }

func (c Monad[T]) String() string  { return render(KindMonad, c.value) }
func (c Monad[T]) Inspect() string { return c.String() }
