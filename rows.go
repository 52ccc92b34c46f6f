package dataframe

import "iter"

// AppendRow appends one row. values must hold exactly one value per column,
// in storage order.
func (t *Table[T]) AppendRow(values []T) error {
	if len(values) != len(t.columns) {
		return &ShapeMismatchError{Op: "append row", Expected: len(t.columns), Actual: len(values)}
	}
	for i, c := range t.columns {
		c.append(values[i])
	}
	t.length++
	t.generation++
	return nil
}

// RemoveRow removes the row at pos from every column.
func (t *Table[T]) RemoveRow(pos int) error {
	if err := checkIndex(pos, t.length); err != nil {
		return err
	}
	for _, c := range t.columns {
		c.eraseAt(pos)
	}
	t.length--
	t.generation++
	return nil
}

// Row returns a view of the row at pos. The view reads and writes the table
// in place and becomes stale on the next structural mutation.
func (t *Table[T]) Row(pos int) (*RowView[T], error) {
	if err := checkIndex(pos, t.length); err != nil {
		return nil, err
	}
	return &RowView[T]{table: t, pos: pos, generation: t.generation}, nil
}

// Rows iterates over all rows in order. Mutating the table structure while
// iterating stops the iteration.
func (t *Table[T]) Rows() iter.Seq2[int, *RowView[T]] {
	return func(yield func(int, *RowView[T]) bool) {
		gen := t.generation
		for pos := 0; pos < t.length && gen == t.generation; pos++ {
			if !yield(pos, &RowView[T]{table: t, pos: pos, generation: gen}) {
				return
			}
		}
	}
}
