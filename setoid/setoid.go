// Package setoid decorates values with a caller supplied equality.
package setoid

import (
	"reflect"

	"github.com/authcorp/libs/go/fantasy/data"
)

// Setoid is implemented by values that carry their own equality.
type Setoid[S any] interface {
	Equals(other S) bool
}

// Value is a deep copy of a wrapped value together with the equality it was
// wrapped with. Equals always compares the value as it was at wrap time.
type Value[T any] struct {
	clone    T
	original T
	eq       func(a, b T) bool
}

var _ Setoid[Value[int]] = Value[int]{}

// ToSetoid returns a constructor that wraps values with eq.
//
//	byID := setoid.ToSetoid(func(a, b Person) bool { return a.ID == b.ID })
//	byID(p1).Equals(byID(p2))
func ToSetoid[T any](eq func(a, b T) bool) func(T) Value[T] {
	return func(x T) Value[T] {
		return Value[T]{clone: data.DeepClone(x), original: x, eq: eq}
	}
}

// Value returns the wrapped copy.
func (v Value[T]) Value() T {
	return v.clone
}

// Equals reports eq(original, other.Value()). A zero Value, which has no
// equality attached, equals nothing.
func (v Value[T]) Equals(other Value[T]) bool {
	if v.eq == nil {
		return false
	}
	return v.eq(v.original, other.clone)
}

var boolType = reflect.TypeOf(true)

// IsSetoid reports whether obj looks like a setoid: it is a struct (or a
// pointer to one) with an exported Equals method taking one argument and
// returning bool, obj.Equals(obj) is true and obj.Equals of the zero value
// of the parameter type is false. An Equals that panics disqualifies obj.
func IsSetoid(obj any) bool {
	if data.IsNil(obj) {
		return false
	}

	rv := reflect.ValueOf(obj)
	self := []reflect.Value{rv}
	switch {
	case rv.Kind() == reflect.Struct:
		ptr := reflect.New(rv.Type())
		ptr.Elem().Set(rv)
		self = append(self, ptr)
	case rv.Kind() == reflect.Pointer && rv.Elem().Kind() == reflect.Struct:
		self = append(self, rv.Elem())
	default:
		return false
	}

	for _, recv := range self {
		method := recv.MethodByName("Equals")
		if !method.IsValid() {
			continue
		}
		mt := method.Type()
		if mt.NumIn() != 1 || mt.IsVariadic() || mt.NumOut() != 1 || mt.Out(0) != boolType {
			return false
		}
		param := mt.In(0)
		for _, arg := range self {
			if arg.Type().AssignableTo(param) {
				return callEquals(method, arg) && !callEquals(method, reflect.Zero(param))
			}
		}
		return false
	}
	return false
}

func callEquals(method, arg reflect.Value) (ok bool) {
	defer func() {
		if recover() != nil {
			ok = false
		}
	}()
	return method.Call([]reflect.Value{arg})[0].Bool()
}
