// Package datasource loads historical price bars from CSV or Parquet
// files through an embedded DuckDB instance.
package datasource

import (
	"time"

	"github.com/moznion/go-optional"

	"github.com/abk234/trading-advisor/internal/types"
)

// DataSource provides ordered historical price bars for analysis.
type DataSource interface {
	// Initialize points the source at a data file. The format is
	// derived from the file extension.
	Initialize(path string) error
	// Count returns the number of bars within the optional time range.
	Count(start optional.Option[time.Time], end optional.Option[time.Time]) (int, error)
	// ReadAll returns the bars within the optional time range in
	// ascending time order.
	ReadAll(start optional.Option[time.Time], end optional.Option[time.Time]) ([]types.PriceBar, error)
	// Close releases the underlying database.
	Close() error
}
