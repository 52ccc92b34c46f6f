package dataframe

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"
)

// ReadCSV parses delimited text into a new table.
//
// The first line holds the column names. Every following line becomes one
// row if it splits into exactly ColumnCount fields; other lines are skipped.
// Fields are parsed with ParseElement, so malformed numbers become zero.
// There is no quoting: a delimiter always separates fields.
func ReadCSV[T Element](r io.Reader, optFns ...Option) (*Table[T], error) {
	o, err := applyOptions(optFns)
	if err != nil {
		return nil, err
	}
	return readCSV[T](r, o)
}

func readCSV[T Element](r io.Reader, o options) (*Table[T], error) {
	start := time.Now()
	t, skipped, err := decodeCSV[T](r, o)

	var rows, columns int
	if err == nil {
		rows, columns = t.RowCount(), t.ColumnCount()
	}
	o.logger.LogImport(rows, columns, skipped, err)
	o.metricsCollector.RecordImport(rows, skipped, time.Since(start), err)
	if err != nil {
		return nil, err
	}
	return t, nil
}

func decodeCSV[T Element](r io.Reader, o options) (*Table[T], int, error) {
	br := bufio.NewReader(r)

	var (
		t       *Table[T]
		row     []T
		skipped int
		lineNo  int
	)
	for {
		line, err := br.ReadString('\n')
		if err != nil && !errors.Is(err, io.EOF) {
			return nil, skipped, fmt.Errorf("read csv line %d: %w", lineNo+1, err)
		}
		if len(line) > 0 {
			lineNo++
			line = strings.TrimSuffix(strings.TrimSuffix(line, "\n"), "\r")

			if t == nil {
				t = New[T](splitLine(line, o.delimiter, 1)...)
				row = make([]T, t.ColumnCount())
			} else {
				fields := splitLine(line, o.delimiter, t.ColumnCount())
				if len(fields) == 0 || len(fields) != t.ColumnCount() {
					o.logger.LogSkippedLine(lineNo, len(fields), t.ColumnCount())
					skipped++
				} else {
					for i, f := range fields {
						row[i] = ParseElement[T](f)
					}
					// Cannot fail: the field count equals the width.
					_ = t.AppendRow(row)
				}
			}
		}
		if err != nil {
			break
		}
	}
	if t == nil {
		t = New[T]()
	}
	return t, skipped, nil
}

// splitLine splits line at every occurrence of delim. The text after the last
// delimiter is the final field, so "a,b," has three fields.
//
// A line without any delimiter has no fields, except in a single-column
// table (width 1) where the whole non-empty line is the one field. The header
// is split with width 1 so that single-column files round-trip.
func splitLine(line string, delim rune, width int) []string {
	if line == "" {
		return nil
	}
	if !strings.ContainsRune(line, delim) {
		if width == 1 {
			return []string{line}
		}
		return nil
	}
	return strings.Split(line, string(delim))
}

// WriteCSV writes the table as delimited text: a header line of column names
// followed by one line per row, each terminated by '\n'.
func WriteCSV[T Element](w io.Writer, t *Table[T], optFns ...Option) error {
	o, err := applyOptions(optFns)
	if err != nil {
		return err
	}
	return writeCSV(w, t, o)
}

func writeCSV[T Element](w io.Writer, t *Table[T], o options) error {
	start := time.Now()
	err := encodeCSV(w, t, o.delimiter)
	o.logger.LogExport(t.RowCount(), err)
	o.metricsCollector.RecordExport(t.RowCount(), time.Since(start), err)
	return err
}

func encodeCSV[T Element](w io.Writer, t *Table[T], delim rune) error {
	bw := bufio.NewWriter(w)
	sep := string(delim)

	bw.WriteString(strings.Join(t.names, sep))
	bw.WriteByte('\n')
	if len(t.columns) > 0 {
		for r := 0; r < t.length; r++ {
			for i, c := range t.columns {
				if i > 0 {
					bw.WriteString(sep)
				}
				bw.WriteString(FormatElement(c.values[r]))
			}
			bw.WriteByte('\n')
		}
	}
	if err := bw.Flush(); err != nil {
		return fmt.Errorf("write csv: %w", err)
	}
	return nil
}
