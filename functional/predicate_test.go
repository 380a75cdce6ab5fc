package functional_test

import (
	"testing"

	"github.com/authcorp/libs/go/fantasy/data"
	"github.com/authcorp/libs/go/fantasy/functional"
	"github.com/stretchr/testify/assert"
	"pgregory.net/rapid"
)

func TestPredicateCombinators(t *testing.T) {
	var even functional.Predicate[int] = func(x int) bool { return x%2 == 0 }
	var positive functional.Predicate[int] = func(x int) bool { return x > 0 }

	cases := []struct {
		name  string
		pred  functional.Predicate[int]
		value int
		want  bool
	}{
		{"and holds", functional.And(even, positive), 4, true},
		{"and fails", functional.And(even, positive), -4, false},
		{"or holds", functional.Or(even, positive), 3, true},
		{"or fails", functional.Or(even, positive), -3, false},
		{"not holds", functional.Not(even, positive), -3, true},
		{"not fails", functional.Not(even, positive), 3, false},
		{"notOr holds", functional.NotOr(even, positive), -3, true},
		{"notOr fails", functional.NotOr(even, positive), -4, false},
		{"empty and", functional.And[int](), 1, true},
		{"empty or", functional.Or[int](), 1, false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, tc.pred(tc.value))
		})
	}

	isText := functional.And[any](data.IsString, data.Truthy)
	assert.True(t, isText("x"))
	assert.False(t, isText(""))
}

func TestNotOrIsNotOfOr(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		a := rapid.IntRange(-10, 10).Draw(t, "a")
		b := rapid.IntRange(-10, 10).Draw(t, "b")
		x := rapid.IntRange(-20, 20).Draw(t, "x")

		var above functional.Predicate[int] = func(v int) bool { return v > a }
		var below functional.Predicate[int] = func(v int) bool { return v < b }

		if functional.NotOr(above, below)(x) != functional.Not(above, below)(x) {
			t.Fatalf("NotOr and Not disagree for x=%d a=%d b=%d", x, a, b)
		}
		if functional.NotOr(above, below)(x) == functional.Or(above, below)(x) {
			t.Fatalf("NotOr equals Or for x=%d a=%d b=%d", x, a, b)
		}
	})
}
