package dataframe

import "fmt"

// RowView addresses one row across all columns of a table.
//
// It borrows the table: every method first checks that the table has not been
// structurally mutated since the view was created and returns ErrStaleRow
// otherwise. Writes go straight to the column storage.
type RowView[T Element] struct {
	table      *Table[T]
	pos        int
	generation uint64
}

// Position returns the row position the view addresses.
func (r *RowView[T]) Position() int { return r.pos }

// Len returns the number of cells in the row, i.e. the table width.
func (r *RowView[T]) Len() int { return len(r.table.columns) }

func (r *RowView[T]) check() error {
	if r.generation != r.table.generation {
		return fmt.Errorf("%w: row %d", ErrStaleRow, r.pos)
	}
	return nil
}

// At returns the value in column position i.
func (r *RowView[T]) At(i int) (T, error) {
	var zero T
	if err := r.check(); err != nil {
		return zero, err
	}
	if err := checkIndex(i, len(r.table.columns)); err != nil {
		return zero, err
	}
	return r.table.columns[i].values[r.pos], nil
}

// Set overwrites the value in column position i.
func (r *RowView[T]) Set(i int, v T) error {
	if err := r.check(); err != nil {
		return err
	}
	if err := checkIndex(i, len(r.table.columns)); err != nil {
		return err
	}
	r.table.columns[i].values[r.pos] = v
	return nil
}

// Values returns a copy of the row.
func (r *RowView[T]) Values() ([]T, error) {
	if err := r.check(); err != nil {
		return nil, err
	}
	out := make([]T, len(r.table.columns))
	for i, c := range r.table.columns {
		out[i] = c.values[r.pos]
	}
	return out, nil
}

// Assign writes values into the row, one per column in storage order.
func (r *RowView[T]) Assign(values []T) error {
	if err := r.check(); err != nil {
		return err
	}
	if len(values) != len(r.table.columns) {
		return &ShapeMismatchError{Op: "row assign", Expected: len(r.table.columns), Actual: len(values)}
	}
	for i, c := range r.table.columns {
		c.values[r.pos] = values[i]
	}
	return nil
}
