package container

// Kinded is implemented by every container.
type Kinded interface {
	Kind() Kind
}

// Getter extracts the wrapped value.
type Getter[T any] interface {
	Get() T
}

// Mapper applies a same-type transformation, returning a new container C.
type Mapper[T, C any] interface {
	Map(fn func(T) T) C
}

// Tapper runs a side effect and returns a new container over the same value.
type Tapper[T, C any] interface {
	Tap(fn func(T)) C
}

// Joiner unwraps one level.
type Joiner[T any] interface {
	Join() T
}

// Chainer binds a container-producing function.
type Chainer[T, C any] interface {
	Chain(fn func(T) C) C
}

// Inspector renders "<Kind>(<value>)".
type Inspector interface {
	String() string
	Inspect() string
}

// Applier marks containers whose value may be applied to an argument with
// the package level Ap functions.
type Applier interface {
	Kinded
	applier()
}

var (
	_ Mapper[int, Functor[int]]     = Functor[int]{}
	_ Tapper[int, Functor[int]]     = Functor[int]{}
	_ Getter[int]                   = Functor[int]{}
	_ Inspector                     = Functor[int]{}
	_ Mapper[int, Apply[int]]       = Apply[int]{}
	_ Tapper[int, Apply[int]]       = Apply[int]{}
	_ Applier                       = Apply[int]{}
	_ Mapper[int, Applicative[int]] = Applicative[int]{}
	_ Applier                       = Applicative[int]{}
	_ Mapper[int, Monad[int]]       = Monad[int]{}
	_ Chainer[int, Monad[int]]      = Monad[int]{}
	_ Joiner[int]                   = Monad[int]{}
	_ Applier                       = Monad[int]{}
	_ Inspector                     = Monad[int]{}
	_ Kinded                        = Lazy[int]{}
)
