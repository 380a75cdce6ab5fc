package functional

import "github.com/samber/lo"

// Predicate tests a single value.
type Predicate[T any] func(T) bool

// And holds when every predicate holds. And() always holds.
func And[T any](predicates ...Predicate[T]) Predicate[T] {
	return func(value T) bool {
		return lo.EveryBy(predicates, func(p Predicate[T]) bool { return p(value) })
	}
}

// Or holds when at least one predicate holds. Or() never holds.
func Or[T any](predicates ...Predicate[T]) Predicate[T] {
	return func(value T) bool {
		return lo.SomeBy(predicates, func(p Predicate[T]) bool { return p(value) })
	}
}

// Not holds when every predicate fails.
func Not[T any](predicates ...Predicate[T]) Predicate[T] {
	return func(value T) bool {
		return lo.NoneBy(predicates, func(p Predicate[T]) bool { return p(value) })
	}
}

// NotOr is the negation of Or.
func NotOr[T any](predicates ...Predicate[T]) Predicate[T] {
	or := Or(predicates...)
	return func(value T) bool { return !or(value) }
}
