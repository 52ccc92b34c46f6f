package dataframe

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// Print writes a human-readable, tab-separated dump of the table: its width
// and length, the column names, then every row.
func (t *Table[T]) Print(w io.Writer) error {
	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, "width : %d\n", len(t.columns))
	fmt.Fprintf(bw, "length : %d\n", t.length)
	for _, name := range t.names {
		bw.WriteString(name)
		bw.WriteByte('\t')
	}
	bw.WriteByte('\n')
	for r := 0; r < t.length; r++ {
		for _, c := range t.columns {
			bw.WriteString(FormatElement(c.values[r]))
			bw.WriteByte('\t')
		}
		bw.WriteByte('\n')
	}
	return bw.Flush()
}

// String implements fmt.Stringer using Print.
func (t *Table[T]) String() string {
	var sb strings.Builder
	_ = t.Print(&sb)
	return sb.String()
}
