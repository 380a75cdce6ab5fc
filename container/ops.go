package container

// Fold returns fn applied to the value of any eager container.
func Fold[T, U any](c Getter[T], fn func(T) U) U {
	return fn(c.Get())
}

// MapFunctor applies a type changing function.
func MapFunctor[T, U any](c Functor[T], fn func(T) U) Functor[U] {
	return NewFunctor(fn(c.value))
}

// MapApply applies a type changing function.
func MapApply[T, U any](c Apply[T], fn func(T) U) Apply[U] {
	return NewApply(fn(c.value))
}

// MapApplicative applies a type changing function.
func MapApplicative[T, U any](c Applicative[T], fn func(T) U) Applicative[U] {
	return NewApplicative(fn(c.value))
}

// MapMonad applies a type changing function.
func MapMonad[T, U any](c Monad[T], fn func(T) U) Monad[U] {
	return NewMonad(fn(c.value))
}

// ApplyAp calls the wrapped function with x and wraps the result.
func ApplyAp[A, B any](c Apply[func(A) B], x A) Apply[B] {
	return NewApply(c.value(x))
}

// ApplyApGet is ApplyAp followed by Get.
func ApplyApGet[A, B any](c Apply[func(A) B], x A) B {
	return c.value(x)
}

// ApplicativeAp calls the wrapped function with x and wraps the result.
func ApplicativeAp[A, B any](c Applicative[func(A) B], x A) Applicative[B] {
	return NewApplicative(c.value(x))
}

// ApplicativeApGet is ApplicativeAp followed by Get.
func ApplicativeApGet[A, B any](c Applicative[func(A) B], x A) B {
	return c.value(x)
}

// MonadAp calls the wrapped function with x and wraps the result.
func MonadAp[A, B any](c Monad[func(A) B], x A) Monad[B] {
	return NewMonad(c.value(x))
}

// MonadApGet is MonadAp followed by Get.
func MonadApGet[A, B any](c Monad[func(A) B], x A) B {
	return c.value(x)
}

// MonadApChain calls the wrapped function with other.Join() and wraps the result.
func MonadApChain[A, B any](c Monad[func(A) B], other Joiner[A]) Monad[B] {
	return NewMonad(c.value(other.Join()))
}

// ChainMonad binds a type changing, container producing function.
func ChainMonad[T, U any](c Monad[T], fn func(T) Monad[U]) Monad[U] {
	return fn(c.value)
}
