// Package optics reads and updates nested documents without mutating them.
//
// The path functions (Prop, Assoc, AssocPath, Path, ...) operate on trees of
// data.Object and data.Array and always work on a deep copy of their source.
// Lens, Optional and Prism are typed accessors that compose.
package optics

import (
	"reflect"
	"strconv"

	"github.com/samber/lo"

	"github.com/authcorp/libs/go/fantasy/data"
	"github.com/authcorp/libs/go/fantasy/errors"
)

// Prop returns a copy of source[name]. source must be an object.
func Prop(name string, source any) (any, error) {
	if !data.IsObject(source) {
		return nil, errors.IncorrectArgs()
	}
	return data.CloneTree(data.SafeGet(source, name)), nil
}

// LensIndex returns a copy of source[index]. source must be an array; an
// index outside it reads as nil.
func LensIndex(index int, source any) (any, error) {
	if !data.IsArray(source) {
		return nil, errors.IncorrectArgs()
	}
	return data.CloneTree(data.SafeGet(source, index)), nil
}

// LensProp returns a getter for the name property of an object.
func LensProp(name string) func(source any) (any, error) {
	return func(source any) (any, error) {
		return Prop(name, source)
	}
}

// Assoc returns a copy of source with name set to value. value itself is
// stored as is.
func Assoc(name string, value any, source any) (data.Object, error) {
	if !data.IsObject(source) {
		return nil, errors.IncorrectArgs()
	}
	out := data.CloneTree(source).(data.Object)
	out[name] = value
	return out, nil
}

// AssocPath returns a copy of source with value stored at path. Missing or
// mismatched intermediate slots are replaced with an empty array when the
// following segment is an index, or an empty object when it is a key.
// Assigning past the end of an array grows it, padding with nil.
//
// Segments must be strings or non-negative integers and source must be an
// object or an array. An empty path returns an unchanged copy.
func AssocPath(path []any, value any, source any) (any, error) {
	if !data.IsObject(source) && !data.IsArray(source) {
		return nil, errors.IncorrectArgs()
	}
	segments, err := normalizePath(path)
	if err != nil {
		return nil, err
	}

	root := data.CloneTree(source)
	if len(segments) == 0 {
		return root, nil
	}
	return setIn(root, segments, value)
}

// Path returns a copy of the value at path, or nil.
func Path(path []any, source any) any {
	return data.CloneTree(data.SafeGet(source, path...))
}

// PathOr returns the value at path, or fallback when that value is falsy
// (nil, false, 0, NaN or ""), so a legitimate 0 found at path is replaced too.
func PathOr(path []any, source any, fallback any) any {
	if v := Path(path, source); data.Truthy(v) {
		return v
	}
	return fallback
}

// PathEq reports whether the value at path deeply equals value.
func PathEq(path []any, source any, value any) bool {
	return data.DeepEquals(data.SafeGet(source, path...), value)
}

// PathSatisfies applies fn to the value at path.
func PathSatisfies(path []any, source any, fn func(any) bool) bool {
	return fn(Path(path, source))
}

// normalizePath turns every segment into a string key or an int index.
func normalizePath(path []any) ([]any, error) {
	invalid := false
	segments := lo.Map(path, func(segment any, _ int) any {
		if data.IsString(segment) {
			return reflect.ValueOf(segment).String()
		}
		i, ok := data.ToInt(segment)
		if !ok || i < 0 {
			invalid = true
		}
		return i
	})
	if invalid {
		return nil, errors.IncorrectArgs()
	}
	return segments, nil
}

func isIndex(segment any) bool {
	_, ok := segment.(int)
	return ok
}

func setIn(node any, path []any, value any) (any, error) {
	segment := path[0]
	if len(path) == 1 {
		return assign(node, segment, value)
	}

	child := childAt(node, segment)
	switch next := path[1]; {
	case isIndex(next) && !data.IsArray(child):
		child = data.Array{}
	case !isIndex(next) && !data.IsObject(child):
		child = data.Object{}
	}

	child, err := setIn(child, path[1:], value)
	if err != nil {
		return nil, err
	}
	return assign(node, segment, child)
}

// childAt reads the slot assign would write for segment.
func childAt(node any, segment any) any {
	switch n := node.(type) {
	case data.Object:
		if i, ok := segment.(int); ok {
			return n[strconv.Itoa(i)]
		}
		return n[segment.(string)]
	case data.Array:
		i, ok := segment.(int)
		if !ok {
			parsed, err := strconv.Atoi(segment.(string))
			if err != nil {
				return nil
			}
			i = parsed
		}
		if i >= 0 && i < len(n) {
			return n[i]
		}
	}
	return nil
}

// assign stores value under a normalized segment in node, which is an
// Object or Array produced by CloneTree or synthesized by setIn.
func assign(node any, segment any, value any) (any, error) {
	switch n := node.(type) {
	case data.Object:
		switch s := segment.(type) {
		case string:
			n[s] = value
		case int:
			n[strconv.Itoa(s)] = value
		}
		return n, nil
	case data.Array:
		i, ok := segment.(int)
		if !ok {
			parsed, err := strconv.Atoi(segment.(string))
			if err != nil || parsed < 0 {
				return nil, errors.IncorrectArgs()
			}
			i = parsed
		}
		if i >= len(n) {
			n = append(n, make(data.Array, i-len(n)+1)...)
		}
		n[i] = value
		return n, nil
	}
	return nil, errors.IncorrectArgs()
}
