package validator_test

import (
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/fieldrules/pkg/validator"
)

type role string

func TestString(t *testing.T) {
	t.Run("passes strings and named string types", func(t *testing.T) {
		for _, v := range []any{"", "abc", role("admin")} {
			got, err := validator.String(v, "name")
			require.NoError(t, err)
			assert.Equal(t, v, got)
		}
	})

	t.Run("fails for non-strings", func(t *testing.T) {
		for _, v := range []any{nil, 123, true, []string{"a"}, []byte("abc")} {
			_, err := validator.String(v, "name")
			assert.EqualError(t, err, "name: expected a string", "value %#v", v)
		}
	})
}

func TestNumber(t *testing.T) {
	t.Run("passes numeric kinds", func(t *testing.T) {
		for _, v := range []any{0, -3, int8(1), uint64(7), float32(1.5), 2.5, math.Inf(1)} {
			got, err := validator.Number(v, "age")
			require.NoError(t, err, "value %#v", v)
			assert.Equal(t, v, got)
		}
	})

	t.Run("fails for NaN and non-numbers", func(t *testing.T) {
		for _, v := range []any{math.NaN(), "42", nil, true} {
			_, err := validator.Number(v, "age")
			assert.EqualError(t, err, "age: expected a number", "value %#v", v)
		}
	})
}

func TestInt(t *testing.T) {
	t.Run("passes integers and integral floats", func(t *testing.T) {
		for _, v := range []any{0, -10, uint(3), 4.0, float32(-2)} {
			_, err := validator.Int(v, "cnt")
			require.NoError(t, err, "value %#v", v)
		}
	})

	t.Run("fails for fractions, non-finite and non-numbers", func(t *testing.T) {
		for _, v := range []any{1.5, math.NaN(), math.Inf(-1), "1", nil} {
			_, err := validator.Int(v, "cnt")
			assert.EqualError(t, err, "cnt: expected an integer", "value %#v", v)
		}
	})
}

func TestBoolean(t *testing.T) {
	_, err := validator.Boolean(false, "flag")
	require.NoError(t, err)

	_, err = validator.Boolean("true", "flag")
	assert.EqualError(t, err, "flag: expected a boolean")

	_, err = validator.Boolean(nil, "flag")
	assert.EqualError(t, err, "flag: expected a boolean")
}

func TestArray(t *testing.T) {
	t.Run("passes slices and arrays", func(t *testing.T) {
		for _, v := range []any{[]int{1, 2}, []any{}, [2]string{"a", "b"}} {
			_, err := validator.Array(v, "list")
			require.NoError(t, err, "value %#v", v)
		}
	})

	t.Run("fails for maps, nil slices and scalars", func(t *testing.T) {
		var nilSlice []int
		for _, v := range []any{map[string]any{}, nilSlice, nil, "abc"} {
			_, err := validator.Array(v, "list")
			assert.EqualError(t, err, "list: expected an array", "value %#v", v)
		}
	})
}

func TestObject(t *testing.T) {
	type point struct{ X, Y int }

	t.Run("passes maps, structs and pointers to them", func(t *testing.T) {
		for _, v := range []any{map[string]any{"x": 1}, point{}, &point{X: 1}, []int{1}} {
			_, err := validator.Object(v, "obj")
			require.NoError(t, err, "value %#v", v)
		}
	})

	t.Run("fails for null and scalars", func(t *testing.T) {
		var nilMap map[string]any
		var nilPoint *point
		for _, v := range []any{nil, nilMap, nilPoint, 1, "x", true} {
			_, err := validator.Object(v, "obj")
			assert.EqualError(t, err, "obj: expected an object", "value %#v", v)
		}
	})
}

func TestNotNull(t *testing.T) {
	for _, v := range []any{0, "", false, map[string]any{}} {
		_, err := validator.NotNull(v, "notNull")
		require.NoError(t, err, "value %#v", v)
	}

	_, err := validator.NotNull(nil, "notNull")
	assert.EqualError(t, err, "notNull: expected non-null")
}

func TestDate(t *testing.T) {
	now := time.Now()

	t.Run("passes time values and pointers", func(t *testing.T) {
		got, err := validator.Date(now, "date")
		require.NoError(t, err)
		assert.Equal(t, now, got)

		_, err = validator.Date(&now, "date")
		require.NoError(t, err)
	})

	t.Run("fails for zero time and strings", func(t *testing.T) {
		var nilTime *time.Time
		for _, v := range []any{time.Time{}, "2025-01-01", nilTime, nil} {
			_, err := validator.Date(v, "date")
			assert.EqualError(t, err, "date: expected a date", "value %#v", v)
		}
	})
}
