package optics

import (
	"github.com/authcorp/libs/go/fantasy/data"
	"github.com/authcorp/libs/go/fantasy/functional"
)

// Prism focuses on one variant of a sum type, such as the object case of a
// loosely typed document value.
type Prism[S, A any] struct {
	GetOption  func(S) functional.Maybe[A]
	ReverseGet func(A) S
}

// NewPrism creates a Prism.
func NewPrism[S, A any](getOption func(S) functional.Maybe[A], reverseGet func(A) S) Prism[S, A] {
	return Prism[S, A]{GetOption: getOption, ReverseGet: reverseGet}
}

// Modify applies fn when the prism matches and returns source otherwise.
func (p Prism[S, A]) Modify(source S, fn func(A) A) S {
	opt := p.GetOption(source)
	if opt.IsNothing() {
		return source
	}
	return p.ReverseGet(fn(opt.Get()))
}

// ComposePrism focuses inner through outer.
func ComposePrism[S, A, B any](outer Prism[S, A], inner Prism[A, B]) Prism[S, B] {
	return Prism[S, B]{
		GetOption: func(s S) functional.Maybe[B] {
			return functional.ChainMaybe(outer.GetOption(s), inner.GetOption)
		},
		ReverseGet: func(b B) S {
			return outer.ReverseGet(inner.ReverseGet(b))
		},
	}
}

// ObjectPrism matches document values that are objects.
func ObjectPrism() Prism[any, data.Object] {
	return NewPrism(
		func(v any) functional.Maybe[data.Object] {
			if !data.IsObject(v) {
				return functional.None[data.Object]()
			}
			return functional.Just(data.CloneTree(v).(data.Object))
		},
		func(o data.Object) any { return o },
	)
}

// ArrayPrism matches document values that are arrays.
func ArrayPrism() Prism[any, data.Array] {
	return NewPrism(
		func(v any) functional.Maybe[data.Array] {
			if !data.IsArray(v) {
				return functional.None[data.Array]()
			}
			return functional.Just(data.CloneTree(v).(data.Array))
		},
		func(a data.Array) any { return a },
	)
}

// JustPrism matches the Just case of a Maybe.
func JustPrism[T any]() Prism[functional.Maybe[T], T] {
	return NewPrism(
		func(m functional.Maybe[T]) functional.Maybe[T] { return m },
		functional.Just[T],
	)
}
