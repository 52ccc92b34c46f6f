package dataframe

import (
	"bytes"
	"context"
	"fmt"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/hupe1980/dataframe/blobstore"
	"github.com/hupe1980/dataframe/internal/compress"
)

// Save exports the table as CSV and writes it to store under name.
// The blob is compressed according to the name extension unless
// WithCompression says otherwise.
func Save[T Element](ctx context.Context, store blobstore.BlobStore, name string, t *Table[T], optFns ...Option) error {
	o, err := applyOptions(optFns)
	if err != nil {
		return err
	}
	o.logger = o.logger.WithSource(name)

	var buf bytes.Buffer
	w, err := compress.NewWriter(&buf, o.compressionFor(name))
	if err != nil {
		return err
	}
	if err := writeCSV(w, t, o); err != nil {
		_ = w.Close()
		return err
	}
	if err := w.Close(); err != nil {
		return fmt.Errorf("flush %s: %w", name, err)
	}

	err = store.Put(ctx, name, buf.Bytes())
	o.logger.LogStore(ctx, "save", name, err)
	if err != nil {
		return fmt.Errorf("save %s: %w", name, err)
	}
	return nil
}

// Load reads the named blob from store and imports it as CSV.
// A missing blob yields an error matching blobstore.ErrNotFound.
func Load[T Element](ctx context.Context, store blobstore.BlobStore, name string, optFns ...Option) (*Table[T], error) {
	o, err := applyOptions(optFns)
	if err != nil {
		return nil, err
	}
	return load[T](ctx, store, name, o)
}

func load[T Element](ctx context.Context, store blobstore.BlobStore, name string, o options) (t *Table[T], err error) {
	start := time.Now()
	o.logger = o.logger.WithSource(name)
	defer func() {
		o.logger.LogStore(ctx, "load", name, err)
		o.metricsCollector.RecordLoad(name, time.Since(start), err)
	}()

	data, err := blobstore.ReadAll(ctx, store, name)
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", name, err)
	}
	r, err := compress.NewReader(bytes.NewReader(data), o.compressionFor(name))
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrInvalidArgument, name, err)
	}
	defer r.Close()

	return readCSV[T](r, o)
}

// LoadAll loads the named blobs concurrently, at most WithConcurrency at a
// time. The result keeps the order of names. The first failure cancels the
// remaining loads.
func LoadAll[T Element](ctx context.Context, store blobstore.BlobStore, names []string, optFns ...Option) ([]*Table[T], error) {
	o, err := applyOptions(optFns)
	if err != nil {
		return nil, err
	}

	tables := make([]*Table[T], len(names))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(o.concurrency)

	for i, name := range names {
		g.Go(func() error {
			t, err := load[T](gctx, store, name, o)
			if err != nil {
				return err
			}
			tables[i] = t
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return tables, nil
}

// LoadConcat loads the named blobs and stacks them vertically in the order
// given. All blobs must have the same width.
func LoadConcat[T Element](ctx context.Context, store blobstore.BlobStore, names []string, optFns ...Option) (*Table[T], error) {
	tables, err := LoadAll[T](ctx, store, names, optFns...)
	if err != nil {
		return nil, err
	}
	return Concat(tables...)
}
