package container

import "sync"

// Lazy wraps a producer. LazyMap queues transformations without running
// anything; LazyFold runs the producer and every queued step once, in order.
// Each fold runs the chain again unless the container was memoized.
type Lazy[T any] struct {
	producer func() T
}

// NewLazy wraps producer.
func NewLazy[T any](producer func() T) Lazy[T] {
	return Lazy[T]{producer: producer}
}

// Kind returns KindLazyFunctor.
func (Lazy[T]) Kind() Kind { return KindLazyFunctor }

// LazyMap queues a same-type transformation.
func (l Lazy[T]) LazyMap(fn func(T) T) Lazy[T] {
	return LazyMap(l, fn)
}

// LazyFold evaluates the chain and passes the result to fn.
func (l Lazy[T]) LazyFold(fn func(T) T) T {
	return fn(l.run())
}

// run evaluates the producer. A zero Lazy produces the zero T.
func (l Lazy[T]) run() T {
	if l.producer == nil {
		var zero T
		return zero
	}
	return l.producer()
}

// Memoize returns a Lazy whose chain runs at most once, on the first fold.
// It is safe for concurrent folds.
func (l Lazy[T]) Memoize() Lazy[T] {
	var (
		once  sync.Once
		value T
	)
	return NewLazy(func() T {
		once.Do(func() { value = l.run() })
		return value
	})
}

// LazyMap queues a type changing transformation.
func LazyMap[T, U any](l Lazy[T], fn func(T) U) Lazy[U] {
	return NewLazy(func() U { return fn(l.run()) })
}

// LazyFold evaluates the chain and passes the result to fn.
func LazyFold[T, U any](l Lazy[T], fn func(T) U) U {
	return fn(l.run())
}
