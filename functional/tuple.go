package functional

import (
	"fmt"
	"strings"

	"github.com/samber/lo"

	"github.com/authcorp/libs/go/fantasy/data"
	"github.com/authcorp/libs/go/fantasy/errors"
)

// Pair holds two values of possibly different types.
type Pair[A, B any] struct {
	First  A
	Second B
}

// NewPair creates a Pair.
func NewPair[A, B any](first A, second B) Pair[A, B] {
	return Pair[A, B]{First: first, Second: second}
}

// Unpack returns both members.
func (p Pair[A, B]) Unpack() (A, B) { return p.First, p.Second }

// Swap exchanges the members.
func (p Pair[A, B]) Swap() Pair[B, A] { return NewPair(p.Second, p.First) }

// Tuple widens the pair to an untyped Tuple.
func (p Pair[A, B]) Tuple() Tuple { return NewTuple(p.First, p.Second) }

// String renders "(first, second)".
func (p Pair[A, B]) String() string { return p.Tuple().String() }

// Triple holds three values of possibly different types.
type Triple[A, B, C any] struct {
	First  A
	Second B
	Third  C
}

// NewTriple creates a Triple.
func NewTriple[A, B, C any](first A, second B, third C) Triple[A, B, C] {
	return Triple[A, B, C]{First: first, Second: second, Third: third}
}

// Unpack returns all three members.
func (t Triple[A, B, C]) Unpack() (A, B, C) { return t.First, t.Second, t.Third }

// Tuple widens the triple to an untyped Tuple.
func (t Triple[A, B, C]) Tuple() Tuple { return NewTuple(t.First, t.Second, t.Third) }

// String renders "(first, second, third)".
func (t Triple[A, B, C]) String() string { return t.Tuple().String() }

// Tuple is a fixed sequence of untyped members.
type Tuple struct {
	values data.Array
}

// NewTuple creates a Tuple over a copy of values.
func NewTuple(values ...any) Tuple {
	return Tuple{values: append(data.Array(nil), values...)}
}

// Len returns the number of members.
func (t Tuple) Len() int { return len(t.values) }

// GetAll returns a copy of the members in order.
func (t Tuple) GetAll() data.Array {
	return append(data.Array(nil), t.values...)
}

// Get returns the member at index, or nil when there is none.
func (t Tuple) Get(index int) any {
	if index < 0 || index >= len(t.values) {
		return nil
	}
	return t.values[index]
}

// Unpack calls fn with every member as an argument.
func (t Tuple) Unpack(fn func(values ...any)) {
	fn(t.GetAll()...)
}

// String renders the members as "(a, b, c)".
func (t Tuple) String() string {
	parts := lo.Map(t.values, func(v any, _ int) string { return fmt.Sprint(v) })
	return "(" + strings.Join(parts, ", ") + ")"
}

// Inspect is an alias for String.
func (t Tuple) Inspect() string { return t.String() }

// TupleBuilder creates tuples whose arity and member kinds are fixed.
type TupleBuilder struct {
	kinds []data.Kind
}

// SafeTupleOf returns a builder for tuples with one member per kind.
//
//	pair := functional.SafeTupleOf(data.KindString, data.KindString)
//	name, err := pair.New("Barkley", "Rosser")
func SafeTupleOf(kinds ...data.Kind) TupleBuilder {
	return TupleBuilder{kinds: append([]data.Kind(nil), kinds...)}
}

// Arity returns the number of members built tuples have.
func (b TupleBuilder) Arity() int { return len(b.kinds) }

// New checks values and builds the tuple. A nil member fails with
// NULL_VALUE; a wrong count or member kind fails with TYPE_MISMATCH.
func (b TupleBuilder) New(values ...any) (Tuple, error) {
	if lo.SomeBy(values, data.IsNil) {
		return Tuple{}, errors.NullValue(errors.MsgNullTuple)
	}
	if len(values) != len(b.kinds) {
		return Tuple{}, errors.TypeMismatch(errors.MsgTupleArity).
			WithDetail("expected", len(b.kinds)).
			WithDetail("found", len(values))
	}
	for i, v := range values {
		if found := data.KindOf(v); found != b.kinds[i] {
			return Tuple{}, errors.KindMismatch(b.kinds[i].String(), found.String()).WithDetail("index", i)
		}
	}
	return NewTuple(values...), nil
}
