package dataframe

import "fmt"

// collisionSuffix is appended to an incoming column name that is already
// taken during horizontal concatenation.
const collisionSuffix = "_r"

// ConcatRows appends the rows of other below the rows of t, column by
// position. Both tables must have the same width; on mismatch t is left
// untouched.
func (t *Table[T]) ConcatRows(other *Table[T]) error {
	if len(other.columns) != len(t.columns) {
		return &ShapeMismatchError{Op: "concat rows", Expected: len(t.columns), Actual: len(other.columns)}
	}
	n := other.length
	for i, c := range t.columns {
		c.appendAll(other.columns[i].values[:n])
	}
	t.length += n
	t.generation++
	return nil
}

// ConcatColumns appends copies of the columns of other to the right of t.
// Both tables must have the same row count. A name that already exists in t
// is suffixed with "_r" until it is unique.
func (t *Table[T]) ConcatColumns(other *Table[T]) error {
	if other.length != t.length {
		return &ShapeMismatchError{Op: "concat columns", Expected: t.length, Actual: other.length}
	}
	names := other.Names()
	cols := make([]*Column[T], len(other.columns))
	for i, c := range other.columns {
		cols[i] = c.clone()
	}
	for i, name := range names {
		for t.Contains(name) {
			name += collisionSuffix
		}
		t.appendColumn(name, cols[i])
	}
	return nil
}

// Add returns a new table holding the rows of a followed by the rows of b,
// under the column names of a. Both tables must be non-empty and of equal
// width.
func Add[T Element](a, b *Table[T]) (*Table[T], error) {
	if a.IsEmpty() || b.IsEmpty() {
		return nil, fmt.Errorf("%w: cannot add empty tables", ErrInvalidArgument)
	}
	if a.ColumnCount() != b.ColumnCount() {
		return nil, &ShapeMismatchError{Op: "add", Expected: a.ColumnCount(), Actual: b.ColumnCount()}
	}
	out := New[T](a.names...)
	if err := out.ConcatRows(a); err != nil {
		return nil, err
	}
	if err := out.ConcatRows(b); err != nil {
		return nil, err
	}
	return out, nil
}

// Concat stacks tables vertically with Add semantics. A single table is
// returned as a deep copy.
func Concat[T Element](tables ...*Table[T]) (*Table[T], error) {
	if len(tables) == 0 {
		return nil, fmt.Errorf("%w: no tables to concatenate", ErrInvalidArgument)
	}
	out := tables[0].Clone()
	for _, next := range tables[1:] {
		if out.IsEmpty() || next.IsEmpty() {
			return nil, fmt.Errorf("%w: cannot add empty tables", ErrInvalidArgument)
		}
		if err := out.ConcatRows(next); err != nil {
			return nil, err
		}
	}
	return out, nil
}
