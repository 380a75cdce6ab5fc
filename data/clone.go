package data

import (
	"reflect"
)

// DeepClone returns a recursive copy of x with the same static type.
// Pointers, maps, slices, arrays, interfaces and exported struct fields are
// copied; unexported struct fields, funcs and chans are shared.
// Reference cycles are preserved in the copy rather than followed forever.
func DeepClone[T any](x T) T {
	c := cloner{seen: make(map[visit]reflect.Value)}
	src := reflect.ValueOf(&x).Elem()
	out := c.clone(src)
	if out.Kind() == reflect.Interface && out.IsNil() {
		var zero T
		return zero
	}
	return out.Interface().(T)
}

// CloneTree copies a document tree, normalizing every string-keyed map to
// Object and every slice or array to Array. Other values go through
// DeepClone. Nil references come back as untyped nil.
func CloneTree(v any) any {
	switch t := v.(type) {
	case nil:
		return nil
	case Object:
		if t == nil {
			return nil
		}
		out := make(Object, len(t))
		for k, e := range t {
			out[k] = CloneTree(e)
		}
		return out
	case Array:
		if t == nil {
			return nil
		}
		out := make(Array, len(t))
		for i, e := range t {
			out[i] = CloneTree(e)
		}
		return out
	}

	if IsNil(v) {
		return nil
	}

	rv := reflect.ValueOf(v)
	switch KindOf(v) {
	case KindObject:
		out := make(Object, rv.Len())
		iter := rv.MapRange()
		for iter.Next() {
			out[iter.Key().String()] = CloneTree(iter.Value().Interface())
		}
		return out
	case KindArray:
		out := make(Array, rv.Len())
		for i := range out {
			out[i] = CloneTree(rv.Index(i).Interface())
		}
		return out
	}
	return DeepClone(v)
}

type visit struct {
	ptr uintptr
	typ reflect.Type
}

type cloner struct {
	seen map[visit]reflect.Value
}

func (c *cloner) clone(v reflect.Value) reflect.Value {
	switch v.Kind() {
	case reflect.Pointer:
		if v.IsNil() {
			return v
		}
		key := visit{ptr: v.Pointer(), typ: v.Type()}
		if done, ok := c.seen[key]; ok {
			return done
		}
		out := reflect.New(v.Type().Elem())
		c.seen[key] = out
		out.Elem().Set(c.clone(v.Elem()))
		return out

	case reflect.Interface:
		if v.IsNil() {
			return v
		}
		out := reflect.New(v.Type()).Elem()
		out.Set(c.clone(v.Elem()))
		return out

	case reflect.Map:
		if v.IsNil() {
			return v
		}
		key := visit{ptr: v.Pointer(), typ: v.Type()}
		if done, ok := c.seen[key]; ok {
			return done
		}
		out := reflect.MakeMapWithSize(v.Type(), v.Len())
		c.seen[key] = out
		iter := v.MapRange()
		for iter.Next() {
			out.SetMapIndex(c.clone(iter.Key()), c.clone(iter.Value()))
		}
		return out

	case reflect.Slice:
		if v.IsNil() {
			return v
		}
		out := reflect.MakeSlice(v.Type(), v.Len(), v.Len())
		for i := 0; i < v.Len(); i++ {
			out.Index(i).Set(c.clone(v.Index(i)))
		}
		return out

	case reflect.Array:
		out := reflect.New(v.Type()).Elem()
		for i := 0; i < v.Len(); i++ {
			out.Index(i).Set(c.clone(v.Index(i)))
		}
		return out

	case reflect.Struct:
		out := reflect.New(v.Type()).Elem()
		out.Set(v)
		for i := 0; i < v.NumField(); i++ {
			field := out.Field(i)
			if !field.CanSet() {
				continue
			}
			field.Set(c.clone(v.Field(i)))
		}
		return out

	default:
		return v
	}
}
