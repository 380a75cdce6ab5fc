// Package data classifies loosely typed values and provides the structural
// helpers (clone, equality, chained lookup) the rest of the library builds on.
//
// Documents are trees of Object and Array values, which is the shape
// encoding/json and yaml.v3 produce when decoding into an empty interface.
package data

import (
	"math"
	"reflect"
	"regexp"
	"time"
)

// Object is a plain string-keyed document node.
type Object = map[string]any

// Array is an ordered document node.
type Array = []any

// Kind is the closed set of value categories used for branching.
type Kind int

const (
	// KindNil covers untyped nil and nil pointers, maps, slices, funcs, chans and interfaces.
	KindNil Kind = iota
	// KindNumber covers every integer, unsigned and float kind.
	KindNumber
	// KindBoolean is bool.
	KindBoolean
	// KindString is string.
	KindString
	// KindArray covers slices and arrays.
	KindArray
	// KindObject covers maps keyed by string.
	KindObject
	// KindDate is time.Time.
	KindDate
	// KindRegExp is *regexp.Regexp.
	KindRegExp
	// KindFunction is any func value.
	KindFunction
	// KindStruct is any other struct.
	KindStruct
	// KindPointer is any other non-nil pointer.
	KindPointer
	// KindOther is everything else (chans, complex numbers, non-string-keyed maps).
	KindOther
)

// String returns the lower-case kind name.
func (k Kind) String() string {
	switch k {
	case KindNil:
		return "nil"
	case KindNumber:
		return "number"
	case KindBoolean:
		return "boolean"
	case KindString:
		return "string"
	case KindArray:
		return "array"
	case KindObject:
		return "object"
	case KindDate:
		return "date"
	case KindRegExp:
		return "regexp"
	case KindFunction:
		return "function"
	case KindStruct:
		return "struct"
	case KindPointer:
		return "pointer"
	default:
		return "other"
	}
}

var (
	timeType   = reflect.TypeOf(time.Time{})
	regexpType = reflect.TypeOf((*regexp.Regexp)(nil))
)

// KindOf classifies v.
func KindOf(v any) Kind {
	if IsNil(v) {
		return KindNil
	}
	switch v.(type) {
	case Object:
		return KindObject
	case Array:
		return KindArray
	case string:
		return KindString
	case bool:
		return KindBoolean
	}

	rv := reflect.ValueOf(v)
	switch rv.Type() {
	case timeType:
		return KindDate
	case regexpType:
		return KindRegExp
	}

	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr,
		reflect.Float32, reflect.Float64:
		return KindNumber
	case reflect.Bool:
		return KindBoolean
	case reflect.String:
		return KindString
	case reflect.Slice, reflect.Array:
		return KindArray
	case reflect.Map:
		if rv.Type().Key().Kind() == reflect.String {
			return KindObject
		}
		return KindOther
	case reflect.Func:
		return KindFunction
	case reflect.Struct:
		return KindStruct
	case reflect.Pointer:
		return KindPointer
	default:
		return KindOther
	}
}

// IsNil reports whether v is nil or a nil reference value.
func IsNil(v any) bool {
	if v == nil {
		return true
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan, reflect.Interface, reflect.UnsafePointer:
		return rv.IsNil()
	}
	return false
}

// IsNumber reports whether v is any numeric kind.
func IsNumber(v any) bool { return KindOf(v) == KindNumber }

// IsBoolean reports whether v is a bool.
func IsBoolean(v any) bool { return KindOf(v) == KindBoolean }

// IsString reports whether v is a string.
func IsString(v any) bool { return KindOf(v) == KindString }

// IsArray reports whether v is a non-nil slice or an array.
func IsArray(v any) bool { return KindOf(v) == KindArray }

// IsObject reports whether v is a non-nil string-keyed map.
func IsObject(v any) bool { return KindOf(v) == KindObject }

// IsFunction reports whether v is a non-nil func.
func IsFunction(v any) bool { return KindOf(v) == KindFunction }

// IsDate reports whether v is a time.Time.
func IsDate(v any) bool { return KindOf(v) == KindDate }

// IsRegExp reports whether v is a compiled regular expression.
func IsRegExp(v any) bool { return KindOf(v) == KindRegExp }

// IsPrimitive reports whether v is nil, a number, a boolean or a string.
func IsPrimitive(v any) bool {
	switch KindOf(v) {
	case KindNil, KindNumber, KindBoolean, KindString:
		return true
	}
	return false
}

// IsNaN reports whether v is a floating point NaN.
func IsNaN(v any) bool {
	f, ok := toFloat(v)
	return ok && math.IsNaN(f)
}

// IsNegativeZero reports whether v is a floating point -0.
func IsNegativeZero(v any) bool {
	f, ok := toFloat(v)
	return ok && f == 0 && math.Signbit(f)
}

// Truthy applies JavaScript truthiness: nil, false, 0, NaN and "" are falsy,
// every other value (including empty objects and arrays) is truthy.
func Truthy(v any) bool {
	switch KindOf(v) {
	case KindNil:
		return false
	case KindBoolean:
		return reflect.ValueOf(v).Bool()
	case KindString:
		return reflect.ValueOf(v).Len() > 0
	case KindNumber:
		f, _ := toFloat(v)
		return f != 0 && !math.IsNaN(f)
	}
	return true
}

// ToInt converts an integer-valued number to int.
func ToInt(v any) (int, bool) {
	if !IsNumber(v) {
		return 0, false
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return int(rv.Int()), true
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		u := rv.Uint()
		if u > math.MaxInt {
			return 0, false
		}
		return int(u), true
	default:
		f := rv.Float()
		if f != math.Trunc(f) || math.IsInf(f, 0) || f > math.MaxInt || f < math.MinInt {
			return 0, false
		}
		return int(f), true
	}
}

func toFloat(v any) (float64, bool) {
	if !IsNumber(v) {
		return 0, false
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return float64(rv.Int()), true
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return float64(rv.Uint()), true
	default:
		return rv.Float(), true
	}
}
