package data

import (
	"reflect"
	"time"

	"github.com/samber/lo"
)

// DeepEquals compares two values structurally. Primitives compare by value
// (numbers numerically, so int 1 equals float64 1); objects compare by key
// set and recursively by value; arrays by length and element-wise. A
// primitive never equals a non-primitive.
func DeepEquals(first, second any) bool {
	firstPrimitive, secondPrimitive := IsPrimitive(first), IsPrimitive(second)
	if firstPrimitive && secondPrimitive {
		return primitiveEquals(first, second)
	}
	if firstPrimitive || secondPrimitive {
		return false
	}

	firstKind, secondKind := KindOf(first), KindOf(second)
	if firstKind != secondKind {
		return false
	}

	switch firstKind {
	case KindObject:
		a, b := asObject(first), asObject(second)
		if len(a) != len(b) {
			return false
		}
		return lo.EveryBy(lo.Keys(a), func(key string) bool {
			other, ok := b[key]
			return ok && DeepEquals(a[key], other)
		})
	case KindArray:
		a, b := reflect.ValueOf(first), reflect.ValueOf(second)
		if a.Len() != b.Len() {
			return false
		}
		for i := 0; i < a.Len(); i++ {
			if !DeepEquals(a.Index(i).Interface(), b.Index(i).Interface()) {
				return false
			}
		}
		return true
	case KindDate:
		return first.(time.Time).Equal(second.(time.Time))
	case KindPointer:
		return first == second || DeepEquals(reflect.ValueOf(first).Elem().Interface(), reflect.ValueOf(second).Elem().Interface())
	case KindFunction:
		return false
	default:
		return reflect.DeepEqual(first, second)
	}
}

func primitiveEquals(first, second any) bool {
	if IsNil(first) || IsNil(second) {
		return IsNil(first) && IsNil(second)
	}
	if IsNumber(first) && IsNumber(second) {
		a, ai := ToInt(first)
		b, bi := ToInt(second)
		if ai && bi {
			return a == b
		}
		fa, _ := toFloat(first)
		fb, _ := toFloat(second)
		return fa == fb
	}
	if KindOf(first) != KindOf(second) {
		return false
	}
	if IsString(first) {
		return reflect.ValueOf(first).String() == reflect.ValueOf(second).String()
	}
	return reflect.ValueOf(first).Bool() == reflect.ValueOf(second).Bool()
}

func asObject(v any) Object {
	if o, ok := v.(Object); ok {
		return o
	}
	rv := reflect.ValueOf(v)
	out := make(Object, rv.Len())
	iter := rv.MapRange()
	for iter.Next() {
		out[iter.Key().String()] = iter.Value().Interface()
	}
	return out
}
