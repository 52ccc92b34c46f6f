// Command dataframe inspects, concatenates and converts delimited tables.
package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"unicode/utf8"

	"github.com/alecthomas/kong"

	"github.com/hupe1980/dataframe"
	"github.com/hupe1980/dataframe/blobstore"
)

// Globals are flags shared by all commands.
type Globals struct {
	Delimiter string `short:"d" default:"," help:"Field separator (a single character)."`
	Root      string `help:"Treat table arguments as blob names in this local store directory." type:"path"`
	LogLevel  string `name:"log-level" enum:"debug,info,warn,error" default:"warn" help:"Log level (${enum})."`
	LogJSON   bool   `name:"log-json" help:"Emit logs as JSON."`
}

// CLI defines the command-line interface for dataframe.
type CLI struct {
	Globals

	Show    ShowCmd    `cmd:"" help:"Print a table."`
	Info    InfoCmd    `cmd:"" help:"Print the shape and column names of a table."`
	Concat  ConcatCmd  `cmd:"" help:"Concatenate tables vertically or horizontally."`
	Convert ConvertCmd `cmd:"" help:"Rewrite a table with another delimiter or compression."`
}

func (g *Globals) delimiter() (rune, error) {
	d, size := utf8.DecodeRuneInString(g.Delimiter)
	if size == 0 || size != len(g.Delimiter) {
		return 0, fmt.Errorf("%w: delimiter must be a single character, got %q", dataframe.ErrInvalidArgument, g.Delimiter)
	}
	return d, nil
}

func (g *Globals) logger() *dataframe.Logger {
	var level slog.Level
	if err := level.UnmarshalText([]byte(g.LogLevel)); err != nil {
		level = slog.LevelWarn
	}
	if g.LogJSON {
		return dataframe.NewJSONLogger(level)
	}
	return dataframe.NewTextLogger(level)
}

func (g *Globals) options(extra ...dataframe.Option) ([]dataframe.Option, error) {
	d, err := g.delimiter()
	if err != nil {
		return nil, err
	}
	opts := []dataframe.Option{
		dataframe.WithDelimiter(d),
		dataframe.WithLogger(g.logger()),
	}
	return append(opts, extra...), nil
}

func (g *Globals) store() (blobstore.BlobStore, error) {
	if g.Root == "" {
		return nil, nil
	}
	return blobstore.NewLocalStore(g.Root), nil
}

// load reads one table from a file or, with --root, from the local store.
func (g *Globals) load(ctx context.Context, name string) (*dataframe.Table[float64], error) {
	opts, err := g.options()
	if err != nil {
		return nil, err
	}
	store, err := g.store()
	if err != nil {
		return nil, err
	}
	if store != nil {
		return dataframe.Load[float64](ctx, store, name, opts...)
	}
	return dataframe.ReadCSVFile[float64](name, opts...)
}

// save writes a table to a file, to the local store with --root, or to out
// when name is empty.
func (g *Globals) save(ctx context.Context, name string, t *dataframe.Table[float64], out io.Writer, extra ...dataframe.Option) error {
	opts, err := g.options(extra...)
	if err != nil {
		return err
	}
	if name == "" {
		return dataframe.WriteCSV(out, t, opts...)
	}
	store, err := g.store()
	if err != nil {
		return err
	}
	if store != nil {
		return dataframe.Save(ctx, store, name, t, opts...)
	}
	return dataframe.WriteCSVFile(name, t, opts...)
}

func main() {
	var cli CLI
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	kctx := kong.Parse(&cli,
		kong.Name("dataframe"),
		kong.Description("Inspect, concatenate and convert delimited numeric tables."),
		kong.UsageOnError(),
		kong.Bind(&cli.Globals),
		kong.BindTo(ctx, (*context.Context)(nil)),
		kong.BindTo(io.Writer(os.Stdout), (*io.Writer)(nil)),
	)
	err := kctx.Run()
	kctx.FatalIfErrorf(err)
}
