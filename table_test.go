package dataframe

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	tbl := New[int]("a", "b", "c")

	assert.Equal(t, 3, tbl.ColumnCount())
	assert.Equal(t, 0, tbl.RowCount())
	assert.False(t, tbl.IsEmpty())
	assert.Equal(t, []string{"a", "b", "c"}, tbl.Names())
	assert.True(t, tbl.Contains("b"))
	assert.False(t, tbl.Contains("z"))

	pos, ok := tbl.Position("c")
	assert.True(t, ok)
	assert.Equal(t, 2, pos)

	assert.True(t, New[int]().IsEmpty())
}

func TestNewSized(t *testing.T) {
	tbl, err := NewSized[float64](2, 3)
	require.NoError(t, err)

	assert.Equal(t, []string{"0", "1"}, tbl.Names())
	assert.Equal(t, 3, tbl.RowCount())
	col, err := tbl.Column("1")
	require.NoError(t, err)
	assert.Equal(t, []float64{0, 0, 0}, col.Values())

	_, err = NewSized[float64](-1, 0)
	assert.ErrorIs(t, err, ErrInvalidArgument)
	_, err = NewSized[float64](1, -1)
	assert.ErrorIs(t, err, ErrInvalidArgument)
}

func TestColumnLookup(t *testing.T) {
	tbl := New[int]("a")
	require.NoError(t, tbl.AppendRow([]int{1}))

	t.Run("Missing", func(t *testing.T) {
		_, err := tbl.Column("z")
		assert.ErrorIs(t, err, ErrColumnNotFound)
		assert.Equal(t, 1, tbl.ColumnCount())
	})

	t.Run("GetOrInsert", func(t *testing.T) {
		col := tbl.ColumnOrInsert("z")
		assert.Equal(t, []int{0}, col.Values())
		assert.Equal(t, []string{"a", "z"}, tbl.Names())

		again := tbl.ColumnOrInsert("z")
		assert.Same(t, col, again)
		assert.Equal(t, 2, tbl.ColumnCount())
	})

	t.Run("At", func(t *testing.T) {
		col, err := tbl.ColumnAt(0)
		require.NoError(t, err)
		assert.Equal(t, []int{1}, col.Values())

		_, err = tbl.ColumnAt(5)
		assert.ErrorIs(t, err, ErrOutOfRange)
		var ie *IndexOutOfRangeError
		require.True(t, errors.As(err, &ie))
		assert.Equal(t, 5, ie.Index)
		assert.Equal(t, 2, ie.Len)
	})
}

func TestColumnWriteThrough(t *testing.T) {
	tbl := New[int]("a")
	require.NoError(t, tbl.AppendRow([]int{1}))
	require.NoError(t, tbl.AppendRow([]int{2}))

	col, err := tbl.Column("a")
	require.NoError(t, err)
	require.NoError(t, col.Set(1, 20))
	assert.ErrorIs(t, col.Set(2, 0), ErrOutOfRange)
	assert.ErrorIs(t, col.Assign([]int{1}), ErrInvalidArgument)

	row, err := tbl.Row(1)
	require.NoError(t, err)
	v, err := row.At(0)
	require.NoError(t, err)
	assert.Equal(t, 20, v)

	// Values is a copy.
	vals := col.Values()
	vals[0] = 99
	got, err := col.At(0)
	require.NoError(t, err)
	assert.Equal(t, 1, got)
}

func TestInsertColumn(t *testing.T) {
	tbl := New[int]("a")
	require.NoError(t, tbl.AppendRow([]int{1}))
	require.NoError(t, tbl.AppendRow([]int{2}))

	t.Run("Zeroed", func(t *testing.T) {
		tbl.InsertColumn("b")
		col, err := tbl.Column("b")
		require.NoError(t, err)
		assert.Equal(t, []int{0, 0}, col.Values())
	})

	t.Run("Duplicate", func(t *testing.T) {
		tbl.InsertColumn("a")
		assert.Equal(t, []string{"a", "b", "a"}, tbl.Names())
		pos, ok := tbl.Position("a")
		require.True(t, ok)
		assert.Equal(t, 0, pos)
	})

	t.Run("Data", func(t *testing.T) {
		require.NoError(t, tbl.InsertColumnData("c", []int{5, 6}))
		col, err := tbl.Column("c")
		require.NoError(t, err)
		assert.Equal(t, []int{5, 6}, col.Values())
	})

	t.Run("DataOverwrites", func(t *testing.T) {
		width := tbl.ColumnCount()
		require.NoError(t, tbl.InsertColumnData("c", []int{7, 8}))
		assert.Equal(t, width, tbl.ColumnCount())
		col, err := tbl.Column("c")
		require.NoError(t, err)
		assert.Equal(t, []int{7, 8}, col.Values())
	})

	t.Run("DataLengthMismatch", func(t *testing.T) {
		err := tbl.InsertColumnData("d", []int{1})
		require.ErrorIs(t, err, ErrInvalidArgument)
		var se *ShapeMismatchError
		require.True(t, errors.As(err, &se))
		assert.Equal(t, 2, se.Expected)
		assert.Equal(t, 1, se.Actual)
		assert.False(t, tbl.Contains("d"))
	})

	t.Run("DataIsCopied", func(t *testing.T) {
		data := []int{1, 1}
		require.NoError(t, tbl.InsertColumnData("e", data))
		data[0] = 100
		col, err := tbl.Column("e")
		require.NoError(t, err)
		assert.Equal(t, []int{1, 1}, col.Values())
	})
}

func TestRemoveColumn(t *testing.T) {
	tbl := New[int]("a", "b", "a", "c")

	require.NoError(t, tbl.RemoveColumn("a"))
	assert.Equal(t, []string{"b", "a", "c"}, tbl.Names())

	for i, name := range tbl.Names() {
		pos, ok := tbl.Position(name)
		require.True(t, ok)
		assert.Equal(t, i, pos, name)
	}

	err := tbl.RemoveColumn("zz")
	assert.ErrorIs(t, err, ErrColumnNotFound)
	assert.Equal(t, 3, tbl.ColumnCount())

	require.NoError(t, tbl.RemoveColumn("c"))
	assert.Equal(t, 2, tbl.ColumnCount())
	assert.ErrorIs(t, tbl.RemoveColumn("c"), ErrColumnNotFound)
	assert.Equal(t, 2, tbl.ColumnCount())
	assert.Equal(t, []string{"b", "a"}, tbl.Names())

	require.NoError(t, tbl.RemoveColumn("b"))
	require.NoError(t, tbl.RemoveColumn("a"))
	assert.True(t, tbl.IsEmpty())
}

func TestClone(t *testing.T) {
	tbl := New[int]("a", "b")
	require.NoError(t, tbl.AppendRow([]int{1, 2}))

	c := tbl.Clone()
	require.NoError(t, c.AppendRow([]int{3, 4}))
	require.NoError(t, c.RemoveColumn("a"))

	assert.Equal(t, 1, tbl.RowCount())
	assert.Equal(t, []string{"a", "b"}, tbl.Names())
	assert.True(t, tbl.Contains("a"))
	assert.Equal(t, []string{"b"}, c.Names())
}

func TestRowCountInvariant(t *testing.T) {
	tbl := New[float64]("x", "y")
	for i := range 5 {
		require.NoError(t, tbl.AppendRow([]float64{float64(i), float64(-i)}))
	}
	tbl.InsertColumn("z")
	require.NoError(t, tbl.RemoveRow(2))
	tbl.ColumnOrInsert("w")

	for i := range tbl.ColumnCount() {
		col, err := tbl.ColumnAt(i)
		require.NoError(t, err)
		assert.Equal(t, tbl.RowCount(), col.Len())
	}
}
