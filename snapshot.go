package dataframe

import (
	"fmt"

	"github.com/hupe1980/dataframe/codec"
)

// snapshot is the column-major document written by EncodeSnapshot.
type snapshot[T Element] struct {
	Codec   string   `json:"codec"`
	Columns []string `json:"columns"`
	Data    [][]T    `json:"data"`
}

// EncodeSnapshot serializes the table with c (codec.Default if nil).
// Unlike CSV, a snapshot keeps exact column names, duplicates included, and
// the row count of zero-width tables is not preserved.
func EncodeSnapshot[T Element](t *Table[T], c codec.Codec) ([]byte, error) {
	if c == nil {
		c = codec.Default
	}
	s := snapshot[T]{
		Codec:   c.Name(),
		Columns: t.names,
		Data:    make([][]T, len(t.columns)),
	}
	for i, col := range t.columns {
		s.Data[i] = col.values
	}
	b, err := c.Marshal(s)
	if err != nil {
		return nil, fmt.Errorf("encode snapshot with %s: %w", c.Name(), err)
	}
	return b, nil
}

// DecodeSnapshot rebuilds a table from data produced by EncodeSnapshot with a
// codec of the same name.
func DecodeSnapshot[T Element](data []byte, c codec.Codec) (*Table[T], error) {
	if c == nil {
		c = codec.Default
	}
	var s snapshot[T]
	if err := c.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("%w: decode snapshot with %s: %w", ErrInvalidArgument, c.Name(), err)
	}
	if s.Codec != c.Name() {
		return nil, fmt.Errorf("%w: snapshot written with codec %q, decoding with %q", ErrInvalidArgument, s.Codec, c.Name())
	}
	if len(s.Data) != len(s.Columns) {
		return nil, &ShapeMismatchError{Op: "decode snapshot", Expected: len(s.Columns), Actual: len(s.Data)}
	}

	t := New[T](s.Columns...)
	for i, values := range s.Data {
		if i > 0 && len(values) != t.length {
			return nil, &ShapeMismatchError{Op: "decode snapshot", Expected: t.length, Actual: len(values)}
		}
		t.columns[i].values = values
		t.length = len(values)
	}
	return t, nil
}
