// Package dataframe provides an in-memory, typed, column-major table.
//
// A Table[T] holds named columns that all store the same numeric element type
// T and share one row count. Columns are looked up by name through a name
// index, rows are addressed through RowView handles that write straight into
// the column storage.
//
// # Quick Start
//
//	t := dataframe.New[float64]("x", "y")
//	_ = t.AppendRow([]float64{1, 2})
//	_ = t.AppendRow([]float64{3, 4})
//
//	row, _ := t.Row(1)
//	_ = row.Set(0, 30)
//
//	col, _ := t.Column("y")
//	fmt.Println(col.Values()) // [2 4]
//
// # Concatenation
//
// ConcatRows stacks a table of equal width below another, ConcatColumns places
// a table of equal length to the right. Incoming names that collide are
// suffixed with "_r" until unique. Add and Concat build new tables:
//
//	sum, err := dataframe.Add(a, b)
//
// # CSV
//
// ReadCSV and WriteCSV speak a plain delimited format: a header line of column
// names followed by one line per row. There is no quoting; a line whose field
// count differs from the header is skipped on import.
//
//	t, err := dataframe.ReadCSVFile[int64]("data.csv.gz", dataframe.WithDelimiter(';'))
//	err = dataframe.WriteCSVFile("out.csv", t)
//
// Files and blobs ending in .gz, .zst or .lz4 are compressed transparently.
//
// # Row Views
//
// A RowView borrows its table. Any structural mutation (adding or removing
// rows or columns, concatenation) invalidates outstanding views; using one
// afterwards returns ErrStaleRow instead of touching the wrong row.
//
// # Blob Stores
//
// Save, Load, LoadAll and LoadConcat move tables through a blobstore.BlobStore:
// a local directory, memory, S3 or MinIO.
//
//	store, _ := blobstore.NewLocalStore("./tables")
//	err := dataframe.Save(ctx, store, "sales.csv.zst", t)
//	all, err := dataframe.LoadConcat[float64](ctx, store, []string{"q1.csv", "q2.csv"})
//
// # Errors
//
// All fallible operations return an error matching one of ErrInvalidArgument,
// ErrOutOfRange, ErrColumnNotFound or ErrStaleRow via errors.Is. Shape and
// bounds failures also carry a *ShapeMismatchError or *IndexOutOfRangeError.
package dataframe
