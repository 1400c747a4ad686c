package writer

import (
	"database/sql"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	_ "github.com/marcboeker/go-duckdb"

	"github.com/uplight-dev/alpaca-history/internal/types"
)

// DuckDBWriter stages records in an in-memory DuckDB table and exports them
// to a Parquet file on Finalize.
type DuckDBWriter struct {
	db         *sql.DB
	tx         *sql.Tx
	stmt       *sql.Stmt
	outputPath string
}

// NewDuckDBWriter creates a DuckDB-backed writer targeting the given Parquet
// file path.
func NewDuckDBWriter(outputPath string) RecordWriter {
	return &DuckDBWriter{
		outputPath: outputPath,
	}
}

// Initialize opens the in-memory database, creates the staging table, begins
// a transaction, and prepares the insert statement.
func (w *DuckDBWriter) Initialize() (err error) {
	w.db, err = sql.Open("duckdb", ":memory:")
	if err != nil {
		return fmt.Errorf("failed to open DuckDB connection: %w", err)
	}

	// One staging table covers both ticks and bars; the columns a record
	// kind does not use stay NULL.
	_, err = w.db.Exec(`
		CREATE TABLE IF NOT EXISTS history_records (
			id TEXT,
			symbol TEXT,
			security_type TEXT,
			tick_type TEXT,
			time TIMESTAMP,
			period_ms BIGINT,
			open DOUBLE,
			high DOUBLE,
			low DOUBLE,
			close DOUBLE,
			volume DOUBLE,
			price DOUBLE,
			size DOUBLE,
			exchange TEXT,
			condition TEXT,
			bid_price DOUBLE,
			bid_size DOUBLE,
			ask_price DOUBLE,
			ask_size DOUBLE
		)
	`)
	if err != nil {
		w.db.Close()

		return fmt.Errorf("failed to create table: %w", err)
	}

	w.tx, err = w.db.Begin()
	if err != nil {
		w.db.Close()

		return fmt.Errorf("failed to begin transaction: %w", err)
	}

	w.stmt, err = w.tx.Prepare(`
		INSERT INTO history_records (
			id, symbol, security_type, tick_type, time, period_ms,
			open, high, low, close, volume,
			price, size, exchange, condition,
			bid_price, bid_size, ask_price, ask_size
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`)
	if err != nil {
		w.tx.Rollback()
		w.db.Close()

		return fmt.Errorf("failed to prepare statement: %w", err)
	}

	return nil
}

// Write persists a single record inside the staging transaction.
func (w *DuckDBWriter) Write(record types.Record) error {
	if w.stmt == nil {
		return fmt.Errorf("writer not initialized or statement is nil")
	}

	id := uuid.New().String()
	symbol := record.RecordSymbol()

	var err error

	switch r := record.(type) {
	case types.Bar:
		_, err = w.stmt.Exec(
			id, symbol.String(), string(symbol.SecurityType), string(types.TickTypeTrade),
			r.Time, r.Period.Milliseconds(),
			r.Open, r.High, r.Low, r.Close, r.Volume,
			nil, nil, nil, nil,
			nil, nil, nil, nil,
		)
	case types.Tick:
		_, err = w.stmt.Exec(
			id, symbol.String(), string(symbol.SecurityType), string(r.TickType),
			r.Time, nil,
			nil, nil, nil, nil, nil,
			r.Price, r.Size, r.Exchange, r.Condition,
			r.BidPrice, r.BidSize, r.AskPrice, r.AskSize,
		)
	default:
		return fmt.Errorf("unsupported record type %T", record)
	}

	if err != nil {
		return fmt.Errorf("failed to insert record: %w", err)
	}

	return nil
}

// Finalize commits the staging transaction, exports the rows to Parquet, and
// reports write statistics.
func (w *DuckDBWriter) Finalize() (string, Stats, error) {
	if w.tx == nil {
		return "", Stats{}, fmt.Errorf("writer not initialized or transaction is nil")
	}

	if err := w.tx.Commit(); err != nil {
		w.tx.Rollback()

		return "", Stats{}, fmt.Errorf("failed to commit transaction: %w", err)
	}

	w.tx = nil

	stats, err := w.stats()
	if err != nil {
		return "", Stats{}, err
	}

	if _, err := w.db.Exec(fmt.Sprintf(`COPY history_records TO '%s' (FORMAT PARQUET)`, w.outputPath)); err != nil {
		return "", Stats{}, fmt.Errorf("failed to export to Parquet: %w", err)
	}

	return w.outputPath, stats, nil
}

// stats summarizes the committed rows.
func (w *DuckDBWriter) stats() (Stats, error) {
	query, args, err := sq.
		Select("COUNT(*)", "MIN(time)", "MAX(time)").
		From("history_records").
		ToSql()
	if err != nil {
		return Stats{}, fmt.Errorf("failed to build stats query: %w", err)
	}

	var (
		stats Stats
		first sql.NullTime
		last  sql.NullTime
	)

	if err := w.db.QueryRow(query, args...).Scan(&stats.Records, &first, &last); err != nil {
		return Stats{}, fmt.Errorf("failed to query stats: %w", err)
	}

	if first.Valid {
		stats.FirstTime = first.Time
	}

	if last.Valid {
		stats.LastTime = last.Time
	}

	return stats, nil
}

// Close releases the prepared statement, any open transaction, and the
// database connection.
func (w *DuckDBWriter) Close() error {
	var closeErrors []error

	if w.stmt != nil {
		if err := w.stmt.Close(); err != nil {
			closeErrors = append(closeErrors, fmt.Errorf("failed to close statement: %w", err))
		}

		w.stmt = nil
	}

	if w.tx != nil {
		// Finalize was not called or failed; discard the staged rows.
		w.tx.Rollback()
		w.tx = nil
	}

	if w.db != nil {
		if err := w.db.Close(); err != nil {
			closeErrors = append(closeErrors, fmt.Errorf("failed to close db connection: %w", err))
		}

		w.db = nil
	}

	if len(closeErrors) > 0 {
		errMsg := "errors occurred during close:"
		for _, e := range closeErrors {
			errMsg += fmt.Sprintf("\n- %v", e)
		}

		return fmt.Errorf("%s", errMsg)
	}

	return nil
}

// GetOutputPath returns the configured output file path.
func (w *DuckDBWriter) GetOutputPath() string {
	return w.outputPath
}
