package dataframe

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConcatRows(t *testing.T) {
	a := newXY(t, []int{1, 2})
	b := New[int]("p", "q")
	require.NoError(t, b.AppendRow([]int{3, 4}))
	require.NoError(t, b.AppendRow([]int{5, 6}))

	require.NoError(t, a.ConcatRows(b))
	assert.Equal(t, 3, a.RowCount())
	assert.Equal(t, []string{"x", "y"}, a.Names())
	y, err := a.Column("y")
	require.NoError(t, err)
	assert.Equal(t, []int{2, 4, 6}, y.Values())

	t.Run("WidthMismatch", func(t *testing.T) {
		err := a.ConcatRows(New[int]("only"))
		assert.ErrorIs(t, err, ErrInvalidArgument)
		assert.Equal(t, 3, a.RowCount())
	})

	t.Run("Self", func(t *testing.T) {
		s := newXY(t, []int{1, 2}, []int{3, 4})
		require.NoError(t, s.ConcatRows(s))
		x, err := s.Column("x")
		require.NoError(t, err)
		assert.Equal(t, []int{1, 3, 1, 3}, x.Values())
	})
}

func TestConcatColumns(t *testing.T) {
	t.Run("Collision", func(t *testing.T) {
		a := New[int]("a")
		require.NoError(t, a.AppendRow([]int{1}))
		b := New[int]("a")
		require.NoError(t, b.AppendRow([]int{2}))

		require.NoError(t, a.ConcatColumns(b))
		assert.Equal(t, []string{"a", "a_r"}, a.Names())

		require.NoError(t, a.ConcatColumns(b))
		assert.Equal(t, []string{"a", "a_r", "a_r_r"}, a.Names())

		col, err := a.Column("a_r_r")
		require.NoError(t, err)
		assert.Equal(t, []int{2}, col.Values())
	})

	t.Run("Copies", func(t *testing.T) {
		a := newXY(t, []int{1, 2})
		b := New[int]("z")
		require.NoError(t, b.AppendRow([]int{3}))

		require.NoError(t, a.ConcatColumns(b))
		bz, err := b.Column("z")
		require.NoError(t, err)
		require.NoError(t, bz.Set(0, 100))

		az, err := a.Column("z")
		require.NoError(t, err)
		assert.Equal(t, []int{3}, az.Values())
	})

	t.Run("LengthMismatch", func(t *testing.T) {
		a := newXY(t, []int{1, 2})
		b := newXY(t)
		err := a.ConcatColumns(b)
		assert.ErrorIs(t, err, ErrInvalidArgument)
		assert.Equal(t, 2, a.ColumnCount())
	})

	t.Run("Self", func(t *testing.T) {
		a := newXY(t, []int{1, 2})
		require.NoError(t, a.ConcatColumns(a))
		assert.Equal(t, []string{"x", "y", "x_r", "y_r"}, a.Names())
	})

	t.Run("ShapeLaw", func(t *testing.T) {
		a := newXY(t, []int{1, 2}, []int{3, 4})
		b := New[int]("u", "v", "w")
		require.NoError(t, b.AppendRow([]int{1, 2, 3}))
		require.NoError(t, b.AppendRow([]int{4, 5, 6}))

		require.NoError(t, a.ConcatColumns(b))
		assert.Equal(t, 5, a.ColumnCount())
		assert.Equal(t, 2, a.RowCount())
	})
}

func TestAdd(t *testing.T) {
	a := newXY(t, []int{1, 2})
	b := New[int]("p", "q")
	require.NoError(t, b.AppendRow([]int{3, 4}))

	sum, err := Add(a, b)
	require.NoError(t, err)
	assert.Equal(t, []string{"x", "y"}, sum.Names())
	assert.Equal(t, 2, sum.RowCount())
	assert.Equal(t, 1, a.RowCount())
	assert.Equal(t, 1, b.RowCount())

	_, err = Add(a, New[int]())
	assert.ErrorIs(t, err, ErrInvalidArgument)
	_, err = Add(New[int](), a)
	assert.ErrorIs(t, err, ErrInvalidArgument)
	_, err = Add(a, New[int]("only"))
	assert.ErrorIs(t, err, ErrInvalidArgument)
}

func TestConcat(t *testing.T) {
	_, err := Concat[int]()
	assert.ErrorIs(t, err, ErrInvalidArgument)

	a := newXY(t, []int{1, 2})
	single, err := Concat(a)
	require.NoError(t, err)
	require.NoError(t, single.AppendRow([]int{0, 0}))
	assert.Equal(t, 1, a.RowCount())

	all, err := Concat(a, a, a)
	require.NoError(t, err)
	assert.Equal(t, 3, all.RowCount())

	_, err = Concat(a, New[int]("only"))
	assert.ErrorIs(t, err, ErrInvalidArgument)
}
