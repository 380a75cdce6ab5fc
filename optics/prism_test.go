package optics_test

import (
	"testing"

	"github.com/authcorp/libs/go/fantasy/data"
	"github.com/authcorp/libs/go/fantasy/functional"
	"github.com/authcorp/libs/go/fantasy/optics"
	"github.com/stretchr/testify/assert"
)

func TestDocumentPrisms(t *testing.T) {
	objects := optics.ObjectPrism()

	assert.True(t, objects.GetOption(data.Object{"a": 1}).IsJust())
	assert.True(t, objects.GetOption(data.Array{}).IsNothing())
	assert.True(t, objects.GetOption(nil).IsNothing())

	tagged := objects.Modify(data.Object{"a": 1}, func(o data.Object) data.Object {
		o["tagged"] = true
		return o
	})
	assert.Equal(t, data.Object{"a": 1, "tagged": true}, tagged)
	assert.Equal(t, "text", objects.Modify("text", func(o data.Object) data.Object { return nil }))

	arrays := optics.ArrayPrism()
	assert.Equal(t, data.Array{1, 2}, arrays.GetOption([]int{1, 2}).Get())
	assert.True(t, arrays.GetOption(data.Object{}).IsNothing())
}

func TestComposePrism(t *testing.T) {
	inner := optics.ComposePrism(optics.JustPrism[any](), optics.ObjectPrism())

	assert.True(t, inner.GetOption(functional.Just[any](data.Object{})).IsJust())
	assert.True(t, inner.GetOption(functional.Just[any]("x")).IsNothing())
	assert.True(t, inner.GetOption(functional.None[any]()).IsNothing())

	wrapped := inner.ReverseGet(data.Object{"k": "v"})
	assert.True(t, wrapped.IsJust())
	assert.Equal(t, data.Object{"k": "v"}, wrapped.Get())
}
