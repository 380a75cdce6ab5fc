package data

import (
	"slices"

	"github.com/samber/lo"
)

// CloneObject returns a shallow copy of obj.
func CloneObject(obj Object) Object {
	return lo.Assign(obj)
}

// Pick returns a new Object holding only the listed keys that obj has.
func Pick(obj Object, keys ...string) Object {
	return lo.PickByKeys(obj, keys)
}

// Omit returns a new Object without the listed keys.
func Omit(obj Object, keys ...string) Object {
	return lo.OmitByKeys(obj, keys)
}

// SafeGetOr is SafeGet with a fallback used whenever the result is falsy.
func SafeGetOr(obj any, orValue any, keys ...any) any {
	if value := SafeGet(obj, keys...); Truthy(value) {
		return value
	}
	return orValue
}

// GetWithKeys fixes the key chain of SafeGet and waits for the object.
func GetWithKeys(keys ...any) func(obj any) any {
	return func(obj any) any { return SafeGet(obj, keys...) }
}

// GetWithObject fixes the object of SafeGet and waits for the key chain.
func GetWithObject(obj any) func(keys ...any) any {
	return func(keys ...any) any { return SafeGet(obj, keys...) }
}

// ConformsTo reports whether every predicate in model holds for the value
// obj has under the same key. Missing keys are read as nil.
func ConformsTo(obj any, model map[string]func(any) bool) bool {
	return lo.EveryBy(lo.Keys(model), func(key string) bool {
		return model[key](SafeGet(obj, key))
	})
}

// Project maps every entry of obj for which keep holds through fn, in key
// order. A nil keep keeps every entry.
func Project[R any](obj Object, fn func(key string, value any) R, keep func(key string, value any) bool) []R {
	keys := lo.Keys(obj)
	slices.Sort(keys)
	if keep != nil {
		keys = lo.Filter(keys, func(key string, _ int) bool { return keep(key, obj[key]) })
	}
	return lo.Map(keys, func(key string, _ int) R { return fn(key, obj[key]) })
}
