package dataframe

import (
	"errors"
	"fmt"

	"github.com/hupe1980/dataframe/internal/compress"
	"github.com/hupe1980/dataframe/internal/fs"
)

// ReadCSVFile imports a table from the file at path. Files ending in .gz,
// .zst or .lz4 are decompressed transparently unless WithCompression says
// otherwise.
//
// A missing or unreadable file yields an error wrapping ErrInvalidArgument;
// no partial table is returned.
func ReadCSVFile[T Element](path string, optFns ...Option) (*Table[T], error) {
	o, err := applyOptions(optFns)
	if err != nil {
		return nil, err
	}
	o.logger = o.logger.WithSource(path)

	f, err := fs.Open(o.fs, path)
	if err != nil {
		err = fmt.Errorf("%w: %s is invalid: %w", ErrInvalidArgument, path, err)
		o.logger.LogImport(0, 0, 0, err)
		return nil, err
	}
	defer f.Close()

	r, err := compress.NewReader(f, o.compressionFor(path))
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrInvalidArgument, path, err)
	}
	defer r.Close()

	return readCSV[T](r, o)
}

// WriteCSVFile exports the table to path, truncating any existing file.
// The file is compressed according to its extension unless WithCompression
// says otherwise.
func WriteCSVFile[T Element](path string, t *Table[T], optFns ...Option) (err error) {
	o, err := applyOptions(optFns)
	if err != nil {
		return err
	}
	o.logger = o.logger.WithSource(path)

	f, err := fs.Create(o.fs, path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil {
			err = errors.Join(err, fmt.Errorf("close %s: %w", path, cerr))
		}
	}()

	w, err := compress.NewWriter(f, o.compressionFor(path))
	if err != nil {
		return err
	}
	if err := writeCSV(w, t, o); err != nil {
		_ = w.Close()
		return err
	}
	if err := w.Close(); err != nil {
		return fmt.Errorf("flush %s: %w", path, err)
	}
	return f.Sync()
}
