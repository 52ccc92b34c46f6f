package dataframe

import "slices"

// Column is the storage behind one named column of a Table.
//
// A *Column obtained from a Table aliases the table's storage: Set and Assign
// write through. The length of a column is owned by its table and only changes
// through structural table operations.
type Column[T Element] struct {
	values []T
}

// NewColumn returns a column of n zero values.
func NewColumn[T Element](n int) *Column[T] {
	if n < 0 {
		n = 0
	}
	return &Column[T]{values: make([]T, n)}
}

// ColumnOf returns a column holding a copy of values.
func ColumnOf[T Element](values []T) *Column[T] {
	return &Column[T]{values: slices.Clone(values)}
}

// Len returns the number of elements.
func (c *Column[T]) Len() int {
	return len(c.values)
}

// At returns the element at position i.
func (c *Column[T]) At(i int) (T, error) {
	if err := checkIndex(i, len(c.values)); err != nil {
		var zero T
		return zero, err
	}
	return c.values[i], nil
}

// Set overwrites the element at position i.
func (c *Column[T]) Set(i int, v T) error {
	if err := checkIndex(i, len(c.values)); err != nil {
		return err
	}
	c.values[i] = v
	return nil
}

// Values returns a copy of the column contents.
func (c *Column[T]) Values() []T {
	return slices.Clone(c.values)
}

// Assign replaces the contents element-wise. values must have the same
// length as the column.
func (c *Column[T]) Assign(values []T) error {
	if len(values) != len(c.values) {
		return &ShapeMismatchError{Op: "column assign", Expected: len(c.values), Actual: len(values)}
	}
	copy(c.values, values)
	return nil
}

func (c *Column[T]) append(v T) {
	c.values = append(c.values, v)
}

func (c *Column[T]) appendAll(values []T) {
	c.values = append(c.values, values...)
}

func (c *Column[T]) eraseAt(i int) {
	c.values = slices.Delete(c.values, i, i+1)
}

func (c *Column[T]) clone() *Column[T] {
	return &Column[T]{values: slices.Clone(c.values)}
}
