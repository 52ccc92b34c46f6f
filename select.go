package dataframe

import (
	"fmt"
	"math"

	"github.com/RoaringBitmap/roaring/v2"
	"github.com/bits-and-blooms/bitset"
)

// Where returns the positions of the rows whose value in the named column
// satisfies pred. Unlike ColumnOrInsert it never creates the column.
func (t *Table[T]) Where(name string, pred func(T) bool) (*roaring.Bitmap, error) {
	c, err := t.Column(name)
	if err != nil {
		return nil, err
	}
	if uint64(t.length) > math.MaxUint32 {
		return nil, fmt.Errorf("%w: %d rows exceed bitmap range", ErrInvalidArgument, t.length)
	}
	rows := roaring.New()
	for i, v := range c.values {
		if pred(v) {
			rows.Add(uint32(i))
		}
	}
	return rows, nil
}

// Take returns a new table holding the selected rows in ascending position
// order under the same column names.
func (t *Table[T]) Take(rows *roaring.Bitmap) (*Table[T], error) {
	if err := t.checkSelection(rows); err != nil {
		return nil, err
	}
	if rows == nil {
		rows = roaring.New()
	}
	out := New[T](t.names...)
	positions := rows.ToArray()
	for i, c := range t.columns {
		dst := out.columns[i]
		dst.values = make([]T, 0, len(positions))
		for _, p := range positions {
			dst.values = append(dst.values, c.values[p])
		}
	}
	out.length = len(positions)
	return out, nil
}

// RemoveRows removes all selected rows at once.
func (t *Table[T]) RemoveRows(rows *roaring.Bitmap) error {
	if err := t.checkSelection(rows); err != nil {
		return err
	}
	if rows == nil || rows.IsEmpty() {
		return nil
	}
	// Dense membership for the compaction pass.
	drop := bitset.New(uint(t.length))
	it := rows.Iterator()
	for it.HasNext() {
		drop.Set(uint(it.Next()))
	}
	for _, c := range t.columns {
		kept := c.values[:0]
		for i, v := range c.values {
			if !drop.Test(uint(i)) {
				kept = append(kept, v)
			}
		}
		clear(c.values[len(kept):])
		c.values = kept
	}
	t.length -= int(rows.GetCardinality())
	t.generation++
	return nil
}

func (t *Table[T]) checkSelection(rows *roaring.Bitmap) error {
	if rows == nil || rows.IsEmpty() {
		return nil
	}
	if maxPos := int(rows.Maximum()); maxPos >= t.length {
		return &IndexOutOfRangeError{Index: maxPos, Len: t.length}
	}
	return nil
}
