package dataframe

import (
	"math"
	"strconv"
	"strings"
)

// Element is the set of types a Table can hold. A table is homogeneous: every
// column of a Table[T] stores T.
type Element interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 |
		~float32 | ~float64
}

func isFloat[T Element]() bool {
	half := 0.5
	return T(half) != 0
}

func isUnsigned[T Element]() bool {
	var v T
	v--
	return v > 0
}

func is32Bit[T Element]() bool {
	// float32 loses the low bit of 2^24+1, float64 does not.
	x := float64(1<<24 + 1)
	return float64(T(x)) != x
}

// ParseElement parses a CSV field as T.
//
// Decimal integers are tried first, then floating point text. Text that is not
// a number yields the zero value, as does negative text for unsigned types.
// For integer types, a value outside the range of T is also zero, and so are
// NaN and infinities.
func ParseElement[T Element](s string) T {
	var zero T
	s = strings.TrimSpace(s)
	if s == "" {
		return zero
	}
	if i, err := strconv.ParseInt(s, 10, 64); err == nil {
		return fromInt64[T](i)
	}
	if u, err := strconv.ParseUint(s, 10, 64); err == nil {
		return fromUint64[T](u)
	}
	if f, err := strconv.ParseFloat(s, 64); err == nil {
		return fromFloat64[T](f)
	}
	return zero
}

func fromInt64[T Element](i int64) T {
	v := T(i)
	switch {
	case isFloat[T]():
		return v
	case isUnsigned[T]():
		if i < 0 || uint64(v) != uint64(i) {
			return 0
		}
	case int64(v) != i:
		return 0
	}
	return v
}

func fromUint64[T Element](u uint64) T {
	v := T(u)
	if isFloat[T]() {
		return v
	}
	// A signed T sees the top bit as a sign and goes negative.
	if v < 0 || uint64(v) != u {
		return 0
	}
	return v
}

// 2^63 and 2^64, the exclusive upper bounds of int64 and uint64.
const (
	twoTo63 = 9223372036854775808.0
	twoTo64 = 18446744073709551616.0
)

func fromFloat64[T Element](f float64) T {
	switch {
	case isFloat[T]():
		return T(f)
	case math.IsNaN(f) || math.IsInf(f, 0):
		return 0
	case isUnsigned[T]():
		if f < 0 || f >= twoTo64 {
			return 0
		}
		return fromUint64[T](uint64(f))
	default:
		if f < -twoTo63 || f >= twoTo63 {
			return 0
		}
		return fromInt64[T](int64(f))
	}
}

// FormatElement returns the text form of v used by the CSV writer.
// Floats use the shortest representation that parses back to the same value.
func FormatElement[T Element](v T) string {
	switch {
	case isFloat[T]():
		if is32Bit[T]() {
			return strconv.FormatFloat(float64(v), 'g', -1, 32)
		}
		return strconv.FormatFloat(float64(v), 'g', -1, 64)
	case isUnsigned[T]():
		return strconv.FormatUint(uint64(v), 10)
	default:
		return strconv.FormatInt(int64(v), 10)
	}
}
