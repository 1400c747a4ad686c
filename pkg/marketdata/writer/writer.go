package writer

import (
	"time"

	"github.com/uplight-dev/alpaca-history/internal/types"
)

// Stats summarizes the rows a writer has persisted.
type Stats struct {
	Records   int64
	FirstTime time.Time
	LastTime  time.Time
}

// RecordWriter persists historical records to a destination.
type RecordWriter interface {
	// Initialize sets up the writer, potentially creating tables or files.
	Initialize() error
	// Write persists a single historical record.
	Write(record types.Record) error
	// Finalize completes the writing process and reports what was written.
	Finalize() (outputPath string, stats Stats, err error)
	// Close releases any resources held by the writer.
	Close() error
	// GetOutputPath returns the configured output file path.
	GetOutputPath() string
}
