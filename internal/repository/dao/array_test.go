package dao

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIntArrayValue(t *testing.T) {
	t.Run("nil stays null", func(t *testing.T) {
		var a IntArray

		value, err := a.Value()

		require.NoError(t, err)
		assert.Nil(t, value)
	})

	t.Run("empty array", func(t *testing.T) {
		value, err := IntArray{}.Value()

		require.NoError(t, err)
		assert.Equal(t, "{}", value)
	})

	t.Run("values joined", func(t *testing.T) {
		value, err := IntArray{4, 5, -3}.Value()

		require.NoError(t, err)
		assert.Equal(t, "{4,5,-3}", value)
	})
}

func TestIntArrayScan(t *testing.T) {
	t.Run("null stays nil", func(t *testing.T) {
		a := IntArray{1}

		require.NoError(t, a.Scan(nil))
		assert.Nil(t, a)
	})

	t.Run("string source", func(t *testing.T) {
		var a IntArray

		require.NoError(t, a.Scan("{4,5,3}"))
		assert.Equal(t, IntArray{4, 5, 3}, a)
	})

	t.Run("byte source", func(t *testing.T) {
		var a IntArray

		require.NoError(t, a.Scan([]byte("{1, 2}")))
		assert.Equal(t, IntArray{1, 2}, a)
	})

	t.Run("empty array", func(t *testing.T) {
		var a IntArray

		require.NoError(t, a.Scan("{}"))
		require.NotNil(t, a)
		assert.Empty(t, a)
	})

	t.Run("bad element", func(t *testing.T) {
		var a IntArray
		assert.Error(t, a.Scan("{1,x}"))
	})

	t.Run("unsupported source type", func(t *testing.T) {
		var a IntArray
		assert.Error(t, a.Scan(42))
	})
}

func TestIntArrayRoundTrip(t *testing.T) {
	original := IntArray{5, 4, 4, 5, 3, 4, 6, 4, 5}

	value, err := original.Value()
	require.NoError(t, err)

	var scanned IntArray
	require.NoError(t, scanned.Scan(value))
	assert.Equal(t, original, scanned)
}
