package dataframe

import (
	"sync/atomic"
	"time"
)

// MetricsCollector defines an interface for collecting codec and store
// metrics. Implement it to forward counters to a monitoring system.
type MetricsCollector interface {
	// RecordImport is called after each CSV import. rows is the number of
	// rows appended, skipped the number of data lines dropped.
	RecordImport(rows, skipped int, duration time.Duration, err error)

	// RecordExport is called after each CSV export.
	RecordExport(rows int, duration time.Duration, err error)

	// RecordLoad is called after a table was loaded from a blob store.
	RecordLoad(name string, duration time.Duration, err error)
}

// NoopMetricsCollector is a no-op implementation of MetricsCollector.
type NoopMetricsCollector struct{}

func (NoopMetricsCollector) RecordImport(int, int, time.Duration, error) {}
func (NoopMetricsCollector) RecordExport(int, time.Duration, error)      {}
func (NoopMetricsCollector) RecordLoad(string, time.Duration, error)     {}

// BasicMetricsCollector provides simple in-memory metrics collection.
// It is safe for concurrent use.
type BasicMetricsCollector struct {
	ImportCount      atomic.Int64
	ImportErrors     atomic.Int64
	ImportRows       atomic.Int64
	ImportSkipped    atomic.Int64
	ImportTotalNanos atomic.Int64
	ExportCount      atomic.Int64
	ExportErrors     atomic.Int64
	ExportRows       atomic.Int64
	LoadCount        atomic.Int64
	LoadErrors       atomic.Int64
}

// RecordImport implements MetricsCollector.
func (b *BasicMetricsCollector) RecordImport(rows, skipped int, duration time.Duration, err error) {
	b.ImportCount.Add(1)
	b.ImportTotalNanos.Add(duration.Nanoseconds())
	if err != nil {
		b.ImportErrors.Add(1)
		return
	}
	b.ImportRows.Add(int64(rows))
	b.ImportSkipped.Add(int64(skipped))
}

// RecordExport implements MetricsCollector.
func (b *BasicMetricsCollector) RecordExport(rows int, _ time.Duration, err error) {
	b.ExportCount.Add(1)
	if err != nil {
		b.ExportErrors.Add(1)
		return
	}
	b.ExportRows.Add(int64(rows))
}

// RecordLoad implements MetricsCollector.
func (b *BasicMetricsCollector) RecordLoad(_ string, _ time.Duration, err error) {
	b.LoadCount.Add(1)
	if err != nil {
		b.LoadErrors.Add(1)
	}
}
