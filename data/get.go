package data

import (
	"reflect"
)

// SafeGet walks keys through obj without panicking. A string key selects a
// map entry or an exported struct field, an integer key selects a slice or
// array element. Pointers are followed. The walk stops early, returning the
// current value, as soon as an intermediate value is falsy (see Truthy);
// missing keys and mismatched shapes read as nil. With no keys there is
// nothing to select and the result is nil.
func SafeGet(obj any, keys ...any) any {
	if len(keys) == 0 {
		return nil
	}
	val := lookup(obj, keys[0])
	if len(keys) > 1 && Truthy(val) {
		return SafeGet(val, keys[1:]...)
	}
	return val
}

func lookup(obj any, key any) any {
	if IsNil(obj) {
		return nil
	}

	switch o := obj.(type) {
	case Object:
		if k, ok := key.(string); ok {
			return o[k]
		}
		return nil
	case Array:
		if i, ok := ToInt(key); ok && i >= 0 && i < len(o) {
			return o[i]
		}
		return nil
	}

	rv := reflect.ValueOf(obj)
	for rv.Kind() == reflect.Pointer {
		if rv.IsNil() {
			return nil
		}
		rv = rv.Elem()
	}

	switch rv.Kind() {
	case reflect.Map:
		k, ok := key.(string)
		if !ok || rv.Type().Key().Kind() != reflect.String {
			return nil
		}
		v := rv.MapIndex(reflect.ValueOf(k).Convert(rv.Type().Key()))
		if !v.IsValid() {
			return nil
		}
		return v.Interface()
	case reflect.Slice, reflect.Array:
		i, ok := ToInt(key)
		if !ok || i < 0 || i >= rv.Len() {
			return nil
		}
		return rv.Index(i).Interface()
	case reflect.Struct:
		name, ok := key.(string)
		if !ok {
			return nil
		}
		field, found := rv.Type().FieldByName(name)
		if !found || !field.IsExported() {
			return nil
		}
		v, err := rv.FieldByIndexErr(field.Index)
		if err != nil {
			return nil
		}
		return v.Interface()
	}
	return nil
}
