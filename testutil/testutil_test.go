package testutil

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIntRows(t *testing.T) {
	rng := NewRNG(4711)

	rows := rng.IntRows(8, 3, 10)

	assert.Len(t, rows, 8)
	for _, row := range rows {
		assert.Len(t, row, 3)
		for _, v := range row {
			assert.GreaterOrEqual(t, v, int64(0))
			assert.Less(t, v, int64(10))
		}
	}
}

func TestRNGReset(t *testing.T) {
	rng := NewRNG(4711)
	first := rng.IntRows(4, 4, 1000)

	rng.Reset()
	assert.Equal(t, first, rng.IntRows(4, 4, 1000))
	assert.Equal(t, int64(4711), rng.Seed())
}

func TestFloatRows(t *testing.T) {
	rng := NewRNG(1)

	rows := rng.FloatRows(5, 2, 10)

	assert.Len(t, rows, 5)
	for _, row := range rows {
		for _, v := range row {
			assert.GreaterOrEqual(t, v, -10.0)
			assert.Less(t, v, 10.0)
		}
	}
}

func TestCSV(t *testing.T) {
	assert.Equal(t, []string{"c0", "c1"}, Names(2))
	assert.Equal(t, "c0;c1\n1;2\n3;4\n", CSV(Names(2), [][]int64{{1, 2}, {3, 4}}, ';'))
	assert.Equal(t, "a\n0.5\n", CSV([]string{"a"}, [][]float64{{0.5}}, ','))
}

func TestTranspose(t *testing.T) {
	assert.Nil(t, Transpose[int64](nil))
	assert.Equal(t, [][]int64{{1, 3}, {2, 4}}, Transpose([][]int64{{1, 2}, {3, 4}}))
}
