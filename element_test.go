package dataframe

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseElement(t *testing.T) {
	t.Run("Int64", func(t *testing.T) {
		tests := []struct {
			in   string
			want int64
		}{
			{"42", 42},
			{"-7", -7},
			{" 3 ", 3},
			{"1.9", 1},
			{"1e3", 1000},
			{"", 0},
			{"abc", 0},
		}
		for _, tt := range tests {
			assert.Equal(t, tt.want, ParseElement[int64](tt.in), tt.in)
		}
	})

	t.Run("Unsigned", func(t *testing.T) {
		assert.Equal(t, uint8(0), ParseElement[uint8]("-1"))
		assert.Equal(t, uint32(0), ParseElement[uint32]("-2.5"))
		assert.Equal(t, uint64(math.MaxUint64), ParseElement[uint64]("18446744073709551615"))
	})

	t.Run("OutOfRange", func(t *testing.T) {
		assert.Equal(t, int8(127), ParseElement[int8]("127"))
		assert.Equal(t, int8(-128), ParseElement[int8]("-128"))
		assert.Equal(t, int8(0), ParseElement[int8]("300"))
		assert.Equal(t, int8(0), ParseElement[int8]("-129"))
		assert.Equal(t, int32(0), ParseElement[int32]("3000000000"))
		assert.Equal(t, int32(math.MinInt32), ParseElement[int32]("-2147483648"))
		assert.Equal(t, uint8(255), ParseElement[uint8]("255"))
		assert.Equal(t, uint8(0), ParseElement[uint8]("256"))
		assert.Equal(t, uint16(0), ParseElement[uint16]("70000"))
		assert.Equal(t, int64(0), ParseElement[int64]("9223372036854775808"))
		assert.Equal(t, int64(0), ParseElement[int64]("99999999999999999999"))
	})

	t.Run("FloatTextForIntegers", func(t *testing.T) {
		assert.Equal(t, int8(100), ParseElement[int8]("100.7"))
		assert.Equal(t, int8(0), ParseElement[int8]("200.5"))
		assert.Equal(t, int32(0), ParseElement[int32]("3e9"))
		assert.Equal(t, int64(0), ParseElement[int64]("1e30"))
		assert.Equal(t, uint8(0), ParseElement[uint8]("1e3"))
		assert.Equal(t, uint64(0), ParseElement[uint64]("2e19"))
		for _, s := range []string{"NaN", "Inf", "-Inf"} {
			assert.Equal(t, int32(0), ParseElement[int32](s), s)
			assert.Equal(t, uint32(0), ParseElement[uint32](s), s)
		}
	})

	t.Run("Float", func(t *testing.T) {
		assert.Equal(t, 2.5, ParseElement[float64]("2.5"))
		assert.Equal(t, -3.0, ParseElement[float64]("-3"))
		assert.Equal(t, float32(0.5), ParseElement[float32]("0.5"))
		assert.Equal(t, 0.0, ParseElement[float64]("x1"))
	})
}

func TestFormatElement(t *testing.T) {
	assert.Equal(t, "2.5", FormatElement(2.5))
	assert.Equal(t, "3", FormatElement(3.0))
	assert.Equal(t, "1e+21", FormatElement(1e21))
	assert.Equal(t, "0.1", FormatElement(float32(0.1)))
	assert.Equal(t, "-3", FormatElement(-3))
	assert.Equal(t, "255", FormatElement(uint8(255)))
	assert.Equal(t, "18446744073709551615", FormatElement(uint64(math.MaxUint64)))
}

func TestElementTextRoundTrip(t *testing.T) {
	for _, v := range []float64{0, -1.25, 3.141592653589793, 1e-9, 123456789} {
		assert.Equal(t, v, ParseElement[float64](FormatElement(v)))
	}
	for _, v := range []float32{0.1, -7.5, 16777216} {
		assert.Equal(t, v, ParseElement[float32](FormatElement(v)))
	}
}
