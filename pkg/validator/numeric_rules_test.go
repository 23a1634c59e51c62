package validator_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/fieldrules/pkg/validator"
)

func TestPositive(t *testing.T) {
	t.Run("passes values above zero", func(t *testing.T) {
		for _, v := range []any{5, 0.1, uint8(1)} {
			_, err := validator.Positive(v, "pos")
			require.NoError(t, err, "value %#v", v)
		}
	})

	t.Run("fails for zero and negatives", func(t *testing.T) {
		for _, v := range []any{0, -1, -0.5} {
			_, err := validator.Positive(v, "pos")
			assert.EqualError(t, err, "pos: expected a positive number", "value %#v", v)
		}
	})

	t.Run("propagates number failure", func(t *testing.T) {
		_, err := validator.Positive("5", "pos")
		assert.EqualError(t, err, "pos: expected a number")
	})
}

func TestNegative(t *testing.T) {
	_, err := validator.Negative(-3, "neg")
	require.NoError(t, err)

	_, err = validator.Negative(0, "neg")
	assert.EqualError(t, err, "neg: expected a negative number")

	_, err = validator.Negative(1, "neg")
	assert.EqualError(t, err, "neg: expected a negative number")

	_, err = validator.Negative(nil, "neg")
	assert.EqualError(t, err, "neg: expected a number")
}

func TestMin(t *testing.T) {
	rule := validator.Min(10)

	t.Run("accepts the bound and above", func(t *testing.T) {
		for _, v := range []any{10, 10.0, 11, uint(100)} {
			_, err := rule(v, "minVal")
			require.NoError(t, err, "value %#v", v)
		}
	})

	t.Run("rejects below the bound", func(t *testing.T) {
		for _, v := range []any{9, 9.99, -10} {
			_, err := rule(v, "minVal")
			assert.EqualError(t, err, "minVal: value must be greater than 10", "value %#v", v)
		}
	})

	t.Run("propagates number failure", func(t *testing.T) {
		_, err := rule("10", "minVal")
		assert.EqualError(t, err, "minVal: expected a number")
	})

	t.Run("formats fractional bounds", func(t *testing.T) {
		_, err := validator.Min(0.5)(0.25, "ratio")
		assert.EqualError(t, err, "ratio: value must be greater than 0.5")
	})
}

func TestMax(t *testing.T) {
	rule := validator.Max(20)

	_, err := rule(20, "maxVal")
	require.NoError(t, err)

	_, err = rule(-5, "maxVal")
	require.NoError(t, err)

	_, err = rule(25, "maxVal")
	assert.EqualError(t, err, "maxVal: value must be less than 20")

	_, err = rule(false, "maxVal")
	assert.EqualError(t, err, "maxVal: expected a number")
}

func TestMinMax_LargeIntegers(t *testing.T) {
	const bound = int64(1<<53 + 1)

	t.Run("min compares int64 exactly", func(t *testing.T) {
		_, err := validator.Min(bound)(int64(1<<53), "n")
		assert.EqualError(t, err, "n: value must be greater than 9007199254740993")

		_, err = validator.Min(bound)(bound, "n")
		assert.NoError(t, err)
	})

	t.Run("max compares int64 exactly", func(t *testing.T) {
		_, err := validator.Max(int64(1 << 53))(bound, "n")
		assert.EqualError(t, err, "n: value must be less than 9007199254740992")
	})

	t.Run("max uint64 bound", func(t *testing.T) {
		_, err := validator.Max(uint64(math.MaxUint64))(uint64(math.MaxUint64), "n")
		assert.NoError(t, err)

		_, err = validator.Max(uint64(math.MaxUint64 - 1))(uint64(math.MaxUint64), "n")
		assert.Error(t, err)
	})

	t.Run("mixed signedness", func(t *testing.T) {
		_, err := validator.Min(uint64(0))(int64(-1), "n")
		assert.Error(t, err)

		_, err = validator.Min(int64(-1))(uint64(math.MaxUint64), "n")
		assert.NoError(t, err)

		_, err = validator.Max(int64(-1))(uint64(0), "n")
		assert.Error(t, err)

		_, err = validator.Max(uint64(math.MaxUint64))(int64(math.MaxInt64), "n")
		assert.NoError(t, err)
	})

	t.Run("float operand uses float comparison", func(t *testing.T) {
		_, err := validator.Min(10)(9.5, "n")
		assert.Error(t, err)

		_, err = validator.Max(10.5)(10, "n")
		assert.NoError(t, err)
	})
}
