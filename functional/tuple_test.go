package functional_test

import (
	"testing"

	"github.com/authcorp/libs/go/fantasy/data"
	"github.com/authcorp/libs/go/fantasy/errors"
	"github.com/authcorp/libs/go/fantasy/functional"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTuple(t *testing.T) {
	name := functional.NewTuple("Barkley", "Rosser")

	assert.Equal(t, data.Array{"Barkley", "Rosser"}, name.GetAll())
	assert.Equal(t, "Barkley", name.Get(0))
	assert.Equal(t, "Rosser", name.Get(1))
	assert.Nil(t, name.Get(2))
	assert.Equal(t, 2, name.Len())
	assert.Equal(t, "(Barkley, Rosser)", name.String())
	assert.Equal(t, name.String(), name.Inspect())

	var first, last any
	name.Unpack(func(values ...any) { first, last = values[0], values[1] })
	assert.Equal(t, "Barkley", first)
	assert.Equal(t, "Rosser", last)

	all := name.GetAll()
	all[0] = "changed"
	assert.Equal(t, "Barkley", name.Get(0))
}

func TestPairAndTriple(t *testing.T) {
	pair := functional.NewPair("port", 8080)
	key, port := pair.Unpack()
	assert.Equal(t, "port", key)
	assert.Equal(t, 8080, port)
	assert.Equal(t, functional.NewPair(8080, "port"), pair.Swap())
	assert.Equal(t, "(port, 8080)", pair.String())

	triple := functional.NewTriple(1, "a", true)
	n, s, b := triple.Unpack()
	assert.Equal(t, 1, n)
	assert.Equal(t, "a", s)
	assert.True(t, b)
	assert.Equal(t, "(1, a, true)", triple.String())
}

func TestSafeTupleBuilder(t *testing.T) {
	stringPair := functional.SafeTupleOf(data.KindString, data.KindString)
	assert.Equal(t, 2, stringPair.Arity())

	t.Run("builds checked tuples", func(t *testing.T) {
		name, err := stringPair.New("Barkley", "Rosser")
		require.NoError(t, err)
		assert.Equal(t, "(Barkley, Rosser)", name.String())
	})

	t.Run("rejects nil members", func(t *testing.T) {
		_, err := stringPair.New("Barkley", nil)
		require.Error(t, err)
		assert.True(t, errors.IsCode(err, errors.ErrCodeNullValue))
		assert.Equal(t, "Tuples may not have any null values", err.Error())
	})

	t.Run("rejects wrong arity", func(t *testing.T) {
		_, err := stringPair.New("Barkley")
		require.Error(t, err)
		assert.True(t, errors.IsCode(err, errors.ErrCodeTypeMismatch))
		assert.Equal(t, "Tuple arity does not match its prototype", err.Error())
	})

	t.Run("rejects wrong kinds", func(t *testing.T) {
		_, err := stringPair.New("Barkley", 7)
		require.Error(t, err)
		assert.True(t, errors.IsCode(err, errors.ErrCodeTypeMismatch))
		assert.Equal(t, "Type mismatch. Expected [string] but found [number]", err.Error())
	})
}
