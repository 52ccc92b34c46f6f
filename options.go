package dataframe

import (
	"fmt"

	"github.com/hupe1980/dataframe/internal/compress"
	"github.com/hupe1980/dataframe/internal/fs"
)

// Compression selects the stream codec used for files and blobs.
type Compression = compress.Type

// Supported compression codecs. CompressionAuto picks the codec from the file
// or blob name extension (.gz, .zst, .lz4).
const (
	CompressionAuto Compression = 255
	CompressionNone             = compress.None
	CompressionGzip             = compress.Gzip
	CompressionZstd             = compress.Zstd
	CompressionLZ4              = compress.LZ4
)

// ParseCompression maps "auto", "none", "gzip", "zstd" or "lz4" to a
// Compression.
func ParseCompression(name string) (Compression, error) {
	if name == "auto" {
		return CompressionAuto, nil
	}
	c, err := compress.Parse(name)
	if err != nil {
		return CompressionNone, fmt.Errorf("%w: %w", ErrInvalidArgument, err)
	}
	return c, nil
}

// DefaultDelimiter is the field separator used when none is configured.
const DefaultDelimiter = ','

type options struct {
	delimiter        rune
	logger           *Logger
	metricsCollector MetricsCollector
	compression      Compression
	concurrency      int
	fs               fs.FileSystem
}

func defaultOptions() options {
	return options{
		delimiter:        DefaultDelimiter,
		logger:           NoopLogger(),
		metricsCollector: NoopMetricsCollector{},
		compression:      CompressionAuto,
		concurrency:      4,
		fs:               fs.Default,
	}
}

func applyOptions(optFns []Option) (options, error) {
	o := defaultOptions()
	for _, fn := range optFns {
		fn(&o)
	}
	switch o.delimiter {
	case 0, '\n', '\r':
		return o, fmt.Errorf("%w: delimiter %q", ErrInvalidArgument, o.delimiter)
	}
	return o, nil
}

func (o options) compressionFor(name string) Compression {
	if o.compression == CompressionAuto {
		return compress.FromPath(name)
	}
	return o.compression
}

// Option configures CSV import/export and store operations.
type Option func(*options)

// WithDelimiter sets the single-character field separator. The default is ','.
func WithDelimiter(d rune) Option {
	return func(o *options) {
		o.delimiter = d
	}
}

// WithLogger configures the logger. If nil is passed, logging is disabled.
func WithLogger(l *Logger) Option {
	return func(o *options) {
		if l == nil {
			l = NoopLogger()
		}
		o.logger = l
	}
}

// WithMetricsCollector configures a metrics collector.
// Pass nil to disable metrics collection.
//
// Example:
//
//	metrics := &dataframe.BasicMetricsCollector{}
//	t, err := dataframe.ReadCSVFile[float64]("data.csv", dataframe.WithMetricsCollector(metrics))
//	fmt.Println(metrics.ImportSkipped.Load())
func WithMetricsCollector(m MetricsCollector) Option {
	return func(o *options) {
		if m == nil {
			m = NoopMetricsCollector{}
		}
		o.metricsCollector = m
	}
}

// WithCompression forces a compression codec for file and blob I/O instead of
// picking it from the name extension.
func WithCompression(c Compression) Option {
	return func(o *options) {
		o.compression = c
	}
}

// WithConcurrency bounds the number of tables LoadAll fetches at once.
// Values below 1 are treated as 1.
func WithConcurrency(n int) Option {
	return func(o *options) {
		if n < 1 {
			n = 1
		}
		o.concurrency = n
	}
}

func withFileSystem(fsys fs.FileSystem) Option {
	return func(o *options) {
		o.fs = fsys
	}
}
