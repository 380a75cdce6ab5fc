package functional

import (
	"sync"
	"sync/atomic"

	"github.com/authcorp/libs/go/fantasy/data"
)

// Identity returns value unchanged. It is the function the identity laws of
// the container package are stated against.
func Identity[T any](value T) T {
	return value
}

// Const returns a function that ignores its argument and yields value.
func Const[T, U any](value T) func(U) T {
	return func(U) T { return value }
}

// Compose combines fns right to left: Compose(f, g)(x) == f(g(x)).
// Compose() is Identity.
func Compose[T any](fns ...func(T) T) func(T) T {
	return func(value T) T {
		for i := len(fns) - 1; i >= 0; i-- {
			value = fns[i](value)
		}
		return value
	}
}

// Compose2 is Compose for two functions whose types differ.
func Compose2[A, B, C any](f func(B) C, g func(A) B) func(A) C {
	return func(a A) C { return f(g(a)) }
}

// Pipe threads value through fns left to right.
func Pipe[T any](value T, fns ...func(T) T) T {
	for _, fn := range fns {
		value = fn(value)
	}
	return value
}

// Tap runs effect on the value and returns the value itself.
func Tap[T any](effect func(T)) func(T) T {
	return func(value T) T {
		effect(value)
		return value
	}
}

// Flip swaps the arguments of a binary function.
func Flip[A, B, C any](fn func(A, B) C) func(B, A) C {
	return func(b B, a A) C { return fn(a, b) }
}

// Curry2 turns a binary function into a chain of unary ones.
func Curry2[A, B, C any](fn func(A, B) C) func(A) func(B) C {
	return func(a A) func(B) C {
		return func(b B) C { return fn(a, b) }
	}
}

// Curry3 turns a ternary function into a chain of unary ones.
func Curry3[A, B, C, D any](fn func(A, B, C) D) func(A) func(B) func(C) D {
	return func(a A) func(B) func(C) D {
		return func(b B) func(C) D {
			return func(c C) D { return fn(a, b, c) }
		}
	}
}

// Uncurry2 reverses Curry2.
func Uncurry2[A, B, C any](fn func(A) func(B) C) func(A, B) C {
	return func(a A, b B) C { return fn(a)(b) }
}

// Thrush applies the function it is given to x: Thrush(x)(f) == f(x).
func Thrush[T, R any](x T) func(func(T) R) R {
	return func(fn func(T) R) R { return fn(x) }
}

// Duplication feeds the same argument to both levels of a curried function.
func Duplication[T, R any](fn func(T) func(T) R) func(T) R {
	return func(x T) R { return fn(x)(x) }
}

// Fork runs left and right on the same input and combines their results
// with join.
func Fork[T, A, B, R any](join func(A, B) R, left func(T) A, right func(T) B) func(T) R {
	return func(value T) R { return join(left(value), right(value)) }
}

// Seq returns a function running every fn, in order, against one value.
func Seq[T any](fns ...func(T)) func(T) {
	return func(value T) {
		for _, fn := range fns {
			fn(value)
		}
	}
}

// Alt returns primary's result when it is truthy and fallback's otherwise.
func Alt[T, R any](primary, fallback func(T) R) func(T) R {
	return func(value T) R {
		if result := primary(value); data.Truthy(result) {
			return result
		}
		return fallback(value)
	}
}

// Partial fixes the first argument of a binary function.
func Partial[A, B, R any](fn func(A, B) R, a A) func(B) R {
	return func(b B) R { return fn(a, b) }
}

// Partial3 fixes the first two arguments of a ternary function.
func Partial3[A, B, C, R any](fn func(A, B, C) R, a A, b B) func(C) R {
	return func(c C) R { return fn(a, b, c) }
}

// Unary narrows a variadic function to exactly one argument.
func Unary[A, R any](fn func(...A) R) func(A) R {
	return func(a A) R { return fn(a) }
}

// Memoize caches fn's result per argument. The cache is safe for
// concurrent use; fn is not called under the lock, so it may recurse
// through the memoized function.
func Memoize[K comparable, V any](fn func(K) V) func(K) V {
	var (
		mu    sync.Mutex
		cache = make(map[K]V)
	)
	return func(key K) V {
		mu.Lock()
		value, ok := cache[key]
		mu.Unlock()
		if ok {
			return value
		}
		value = fn(key)
		mu.Lock()
		cache[key] = value
		mu.Unlock()
		return value
	}
}

// Once returns a function that calls fn on its first invocation only.
// Later calls return the zero R.
func Once[R any](fn func() R) func() R {
	var once sync.Once
	return func() R {
		var result R
		once.Do(func() { result = fn() })
		return result
	}
}

// After returns a function that calls fn from its count-th invocation on.
// Earlier calls return the zero R and false.
func After[R any](count int, fn func() R) func() (R, bool) {
	var calls atomic.Int64
	return func() (R, bool) {
		if calls.Add(1) < int64(count) {
			var zero R
			return zero, false
		}
		return fn(), true
	}
}
