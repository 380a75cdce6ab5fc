package data_test

import (
	"strings"
	"testing"

	"github.com/authcorp/libs/go/fantasy/data"
	"github.com/stretchr/testify/assert"
)

func TestPickAndOmit(t *testing.T) {
	source := data.Object{"a": 1, "b": 2, "c": 3}

	assert.Equal(t, data.Object{"a": 1, "c": 3}, data.Pick(source, "a", "c", "missing"))
	assert.Equal(t, data.Object{"b": 2}, data.Omit(source, "a", "c"))
	assert.Equal(t, data.Object{}, data.Pick(nil, "a"))
	assert.Len(t, source, 3)

	clone := data.CloneObject(source)
	clone["a"] = 10
	assert.Equal(t, 1, source["a"])
}

func TestSafeGetOr(t *testing.T) {
	doc := data.Object{"a": data.Object{"count": 0, "name": "x"}}

	assert.Equal(t, "x", data.SafeGetOr(doc, "fallback", "a", "name"))
	assert.Equal(t, "fallback", data.SafeGetOr(doc, "fallback", "a", "count"))
	assert.Equal(t, "fallback", data.SafeGetOr(doc, "fallback", "missing", "deeper"))

	assert.Equal(t, "x", data.GetWithKeys("a", "name")(doc))
	assert.Equal(t, 0, data.GetWithObject(doc)("a", "count"))
}

func TestConformsTo(t *testing.T) {
	given := data.Object{"b": 1, "a": "Hello"}

	assert.True(t, data.ConformsTo(given, map[string]func(any) bool{
		"b": func(v any) bool { return data.DeepEquals(v, 1) },
		"a": func(v any) bool { return v == "Hello" },
	}))
	assert.False(t, data.ConformsTo(given, map[string]func(any) bool{
		"b": func(v any) bool { return data.DeepEquals(v, 1) },
		"a": func(v any) bool { return v == "NOT-Hello" },
	}))
	assert.True(t, data.ConformsTo(given, nil))
}

func TestProject(t *testing.T) {
	obj := data.Object{"b": 2, "a": 1, "skip": 0}

	pairs := data.Project(obj, func(k string, v any) string {
		return k + "=" + strings.Repeat("*", v.(int))
	}, func(k string, _ any) bool { return k != "skip" })
	assert.Equal(t, []string{"a=*", "b=**"}, pairs)

	assert.Len(t, data.Project(obj, func(k string, _ any) string { return k }, nil), 3)
}
