package dataframe

import (
	"fmt"
	"slices"
	"strconv"
)

// Table is an in-memory, column-major table of named columns that all hold
// the element type T and share one row count.
//
// A Table is not safe for concurrent use.
type Table[T Element] struct {
	names   []string
	columns []*Column[T]
	index   nameIndex
	length  int

	// generation is bumped by every structural mutation so that outstanding
	// RowViews can detect that they are stale.
	generation uint64
}

// New creates a table with the given column names and zero rows.
// An empty name list yields an empty table.
func New[T Element](names ...string) *Table[T] {
	t := &Table[T]{
		names:   slices.Clone(names),
		columns: make([]*Column[T], len(names)),
		index:   buildIndex(names),
	}
	for i := range t.columns {
		t.columns[i] = NewColumn[T](0)
	}
	return t
}

// NewSized creates a table of width columns named "0".."width-1", each
// holding length zero values.
func NewSized[T Element](width, length int) (*Table[T], error) {
	if width < 0 || length < 0 {
		return nil, fmt.Errorf("%w: width %d, length %d", ErrInvalidArgument, width, length)
	}
	names := make([]string, width)
	for i := range names {
		names[i] = strconv.Itoa(i)
	}
	t := New[T](names...)
	for _, c := range t.columns {
		c.values = make([]T, length)
	}
	t.length = length
	return t, nil
}

// Clone returns a deep copy of the table.
func (t *Table[T]) Clone() *Table[T] {
	c := &Table[T]{
		names:   slices.Clone(t.names),
		columns: make([]*Column[T], len(t.columns)),
		index:   t.index.clone(),
		length:  t.length,
	}
	for i, col := range t.columns {
		c.columns[i] = col.clone()
	}
	return c
}

// RowCount returns the number of rows.
func (t *Table[T]) RowCount() int { return t.length }

// ColumnCount returns the number of columns.
func (t *Table[T]) ColumnCount() int { return len(t.columns) }

// IsEmpty reports whether the table has no columns.
func (t *Table[T]) IsEmpty() bool { return len(t.columns) == 0 }

// Names returns a copy of the column names in storage order.
func (t *Table[T]) Names() []string { return slices.Clone(t.names) }

// Contains reports whether a column with the given name exists.
func (t *Table[T]) Contains(name string) bool {
	_, ok := t.index.lookup(name)
	return ok
}

// Position returns the storage position of the named column.
func (t *Table[T]) Position(name string) (int, bool) {
	return t.index.lookup(name)
}

// Column returns the named column. It never creates a column; see
// ColumnOrInsert for the get-or-insert variant.
func (t *Table[T]) Column(name string) (*Column[T], error) {
	pos, ok := t.index.lookup(name)
	if !ok {
		return nil, columnNotFound(name)
	}
	return t.columns[pos], nil
}

// ColumnOrInsert returns the named column, appending a zero-valued column of
// the current row count first if no column has that name.
func (t *Table[T]) ColumnOrInsert(name string) *Column[T] {
	if pos, ok := t.index.lookup(name); ok {
		return t.columns[pos]
	}
	t.InsertColumn(name)
	return t.columns[len(t.columns)-1]
}

// ColumnAt returns the column at storage position i.
func (t *Table[T]) ColumnAt(i int) (*Column[T], error) {
	if err := checkIndex(i, len(t.columns)); err != nil {
		return nil, err
	}
	return t.columns[i], nil
}

// InsertColumn appends a zero-valued column with the current row count.
//
// If name is already taken the column is still appended, but lookups by name
// keep resolving to the first column carrying it.
func (t *Table[T]) InsertColumn(name string) {
	t.appendColumn(name, NewColumn[T](t.length))
}

// InsertColumnData stores a copy of data under name. A new name appends a
// column; an existing name overwrites that column element-wise. data must have
// exactly RowCount elements.
func (t *Table[T]) InsertColumnData(name string, data []T) error {
	if len(data) != t.length {
		return &ShapeMismatchError{Op: "insert column", Expected: t.length, Actual: len(data)}
	}
	if pos, ok := t.index.lookup(name); ok {
		return t.columns[pos].Assign(data)
	}
	t.appendColumn(name, ColumnOf(data))
	return nil
}

// RemoveColumn removes the named column. It returns ErrColumnNotFound and
// leaves the table untouched if there is no such column.
func (t *Table[T]) RemoveColumn(name string) error {
	pos, ok := t.index.lookup(name)
	if !ok {
		return columnNotFound(name)
	}
	t.names = slices.Delete(t.names, pos, pos+1)
	t.columns = slices.Delete(t.columns, pos, pos+1)
	t.index.remove(name, pos, t.names)
	t.generation++
	return nil
}

func (t *Table[T]) appendColumn(name string, c *Column[T]) {
	t.index.add(name, len(t.columns))
	t.names = append(t.names, name)
	t.columns = append(t.columns, c)
	t.generation++
}
