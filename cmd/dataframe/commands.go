package main

import (
	"context"
	"fmt"
	"io"

	"github.com/hupe1980/dataframe"
)

// ShowCmd prints a table.
type ShowCmd struct {
	Table string `arg:"" help:"CSV file, or blob name with --root."`
}

func (c *ShowCmd) Run(ctx context.Context, g *Globals, out io.Writer) error {
	t, err := g.load(ctx, c.Table)
	if err != nil {
		return err
	}
	return t.Print(out)
}

// InfoCmd prints the shape and column names of a table.
type InfoCmd struct {
	Table string `arg:"" help:"CSV file, or blob name with --root."`
}

func (c *InfoCmd) Run(ctx context.Context, g *Globals, out io.Writer) error {
	t, err := g.load(ctx, c.Table)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintf(out, "rows: %d\ncolumns: %d\n", t.RowCount(), t.ColumnCount())
	if err != nil {
		return err
	}
	for i, name := range t.Names() {
		if _, err := fmt.Fprintf(out, "  %d\t%s\n", i, name); err != nil {
			return err
		}
	}
	return nil
}

// ConcatCmd concatenates tables.
type ConcatCmd struct {
	Tables     []string `arg:"" help:"Tables to concatenate, in order."`
	Horizontal bool     `help:"Place tables side by side instead of stacking them."`
	Output     string   `short:"o" help:"Output file, or blob name with --root. Defaults to stdout."`
}

func (c *ConcatCmd) Run(ctx context.Context, g *Globals, out io.Writer) error {
	var (
		result *dataframe.Table[float64]
		err    error
	)
	if c.Horizontal {
		result, err = c.side(ctx, g)
	} else {
		result, err = c.stack(ctx, g)
	}
	if err != nil {
		return err
	}
	return g.save(ctx, c.Output, result, out)
}

func (c *ConcatCmd) stack(ctx context.Context, g *Globals) (*dataframe.Table[float64], error) {
	store, err := g.store()
	if err != nil {
		return nil, err
	}
	if store != nil {
		opts, err := g.options()
		if err != nil {
			return nil, err
		}
		return dataframe.LoadConcat[float64](ctx, store, c.Tables, opts...)
	}

	tables := make([]*dataframe.Table[float64], 0, len(c.Tables))
	for _, name := range c.Tables {
		t, err := g.load(ctx, name)
		if err != nil {
			return nil, err
		}
		tables = append(tables, t)
	}
	return dataframe.Concat(tables...)
}

func (c *ConcatCmd) side(ctx context.Context, g *Globals) (*dataframe.Table[float64], error) {
	result := dataframe.New[float64]()
	for i, name := range c.Tables {
		t, err := g.load(ctx, name)
		if err != nil {
			return nil, err
		}
		if i == 0 {
			result = t
			continue
		}
		if err := result.ConcatColumns(t); err != nil {
			return nil, fmt.Errorf("%s: %w", name, err)
		}
	}
	return result, nil
}

// ConvertCmd rewrites a table with another delimiter or compression.
type ConvertCmd struct {
	Input        string `arg:"" help:"Source table."`
	Output       string `arg:"" help:"Destination table."`
	OutDelimiter string `name:"out-delimiter" help:"Field separator for the output. Defaults to --delimiter."`
	Compression  string `enum:"auto,none,gzip,zstd,lz4" default:"auto" help:"Output compression (${enum}); auto picks it from the extension."`
}

func (c *ConvertCmd) Run(ctx context.Context, g *Globals, out io.Writer) error {
	t, err := g.load(ctx, c.Input)
	if err != nil {
		return err
	}

	var extra []dataframe.Option
	if c.OutDelimiter != "" {
		d, err := (&Globals{Delimiter: c.OutDelimiter}).delimiter()
		if err != nil {
			return err
		}
		extra = append(extra, dataframe.WithDelimiter(d))
	}
	if c.Compression != "auto" {
		comp, err := dataframe.ParseCompression(c.Compression)
		if err != nil {
			return err
		}
		extra = append(extra, dataframe.WithCompression(comp))
	}
	return g.save(ctx, c.Output, t, out, extra...)
}
