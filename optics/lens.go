package optics

import (
	"strconv"
	"strings"

	"github.com/authcorp/libs/go/fantasy/data"
	"github.com/authcorp/libs/go/fantasy/functional"
)

// Lens focuses on one part A of a structure S.
// Set must return a new S; it never mutates its argument.
type Lens[S, A any] struct {
	Get func(S) A
	Set func(S, A) S
}

// NewLens creates a Lens.
func NewLens[S, A any](get func(S) A, set func(S, A) S) Lens[S, A] {
	return Lens[S, A]{Get: get, Set: set}
}

// Modify replaces the focused value with f applied to it.
func (l Lens[S, A]) Modify(s S, f func(A) A) S {
	return l.Set(s, f(l.Get(s)))
}

// Compose focuses inner through outer.
func Compose[S, A, B any](outer Lens[S, A], inner Lens[A, B]) Lens[S, B] {
	return Lens[S, B]{
		Get: func(s S) B {
			return inner.Get(outer.Get(s))
		},
		Set: func(s S, b B) S {
			return outer.Set(s, inner.Set(outer.Get(s), b))
		},
	}
}

// Identity focuses on the whole structure.
func Identity[S any]() Lens[S, S] {
	return Lens[S, S]{
		Get: func(s S) S { return s },
		Set: func(_ S, s S) S { return s },
	}
}

// KeyLens focuses on one key of an object. Get returns a copy of the value
// and Set goes through Assoc; a nil object is treated as empty.
func KeyLens(name string) Lens[data.Object, any] {
	return Lens[data.Object, any]{
		Get: func(o data.Object) any {
			return data.CloneTree(o[name])
		},
		Set: func(o data.Object, v any) data.Object {
			if o == nil {
				o = data.Object{}
			}
			out, _ := Assoc(name, v, o)
			return out
		},
	}
}

// PathLens focuses on a nested location of any document. Set goes through
// AssocPath; a source that is not an object or array is replaced the same
// way AssocPath replaces mismatched intermediate slots.
func PathLens(segments ...any) (Lens[any, any], error) {
	path, err := normalizePath(segments)
	if err != nil {
		return Lens[any, any]{}, err
	}

	return Lens[any, any]{
		Get: func(s any) any {
			return Path(path, s)
		},
		Set: func(s any, v any) any {
			if len(path) == 0 {
				return v
			}
			switch {
			case isIndex(path[0]) && !data.IsArray(s):
				s = data.Array{}
			case !isIndex(path[0]) && !data.IsObject(s):
				s = data.Object{}
			}
			out, _ := AssocPath(path, v, s)
			return out
		},
	}, nil
}

// ParsePath splits a dotted path such as "items.0.name" into segments.
// Segments made only of digits become indexes; "" yields an empty path.
func ParsePath(path string) []any {
	if path == "" {
		return []any{}
	}
	parts := strings.Split(path, ".")
	segments := make([]any, len(parts))
	for i, part := range parts {
		if n, err := strconv.Atoi(part); err == nil && n >= 0 && !strings.HasPrefix(part, "+") {
			segments[i] = n
			continue
		}
		segments[i] = part
	}
	return segments
}

// Optional is a lens whose focus may be absent.
type Optional[S, A any] struct {
	GetOption func(S) functional.Maybe[A]
	Set       func(S, A) S
}

// NewOptional creates an Optional.
func NewOptional[S, A any](getOption func(S) functional.Maybe[A], set func(S, A) S) Optional[S, A] {
	return Optional[S, A]{GetOption: getOption, Set: set}
}

// Modify applies f when the focus is present and returns s otherwise.
func (o Optional[S, A]) Modify(s S, f func(A) A) S {
	opt := o.GetOption(s)
	if opt.IsJust() {
		return o.Set(s, f(opt.Get()))
	}
	return s
}

// LensToOptional widens a Lens to an Optional that is always present.
func LensToOptional[S, A any](l Lens[S, A]) Optional[S, A] {
	return Optional[S, A]{
		GetOption: func(s S) functional.Maybe[A] {
			return functional.Just(l.Get(s))
		},
		Set: l.Set,
	}
}

// At focuses on an object key that may be missing. Set on a missing key
// adds it.
func At(name string) Optional[data.Object, any] {
	return Optional[data.Object, any]{
		GetOption: func(o data.Object) functional.Maybe[any] {
			if v, ok := o[name]; ok {
				return functional.Just(data.CloneTree(v))
			}
			return functional.None[any]()
		},
		Set: KeyLens(name).Set,
	}
}

// Index focuses on an array element. Set outside the array returns it unchanged.
func Index(i int) Optional[data.Array, any] {
	return Optional[data.Array, any]{
		GetOption: func(a data.Array) functional.Maybe[any] {
			if i >= 0 && i < len(a) {
				return functional.Just(data.CloneTree(a[i]))
			}
			return functional.None[any]()
		},
		Set: func(a data.Array, v any) data.Array {
			if i < 0 || i >= len(a) {
				return a
			}
			out := data.CloneTree(a).(data.Array)
			out[i] = v
			return out
		},
	}
}
