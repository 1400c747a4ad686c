// Package marketdata downloads historical market data into Parquet files.
// It wires the history engine to a record writer and is the surface the
// download command builds on.
package marketdata

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/uplight-dev/alpaca-history/internal/alpaca"
	"github.com/uplight-dev/alpaca-history/internal/calendar"
	"github.com/uplight-dev/alpaca-history/internal/events"
	"github.com/uplight-dev/alpaca-history/internal/history"
	"github.com/uplight-dev/alpaca-history/internal/logger"
	"github.com/uplight-dev/alpaca-history/internal/symbols"
	"github.com/uplight-dev/alpaca-history/internal/types"
	"github.com/uplight-dev/alpaca-history/pkg/marketdata/writer"
)

// WriterType defines the type of record writer.
type WriterType string

const (
	WriterDuckDB WriterType = "duckdb"
)

// OnDownloadProgress is called after each persisted record with the running
// total.
type OnDownloadProgress func(written int64)

// ClientConfig holds the configuration for the market data client.
type ClientConfig struct {
	APIKey     string     `validate:"required"`
	APISecret  string     `validate:"required"`
	BaseURL    string     `validate:"omitempty,url"`
	WriterType WriterType `validate:"required,oneof=duckdb"`
	DataPath   string     `validate:"required"`
}

// DownloadParams holds the parameters for a historical data download.
// Option tickers use the OCC form (e.g. AAPL240621C00190000), crypto
// tickers the BASE/QUOTE pair form.
type DownloadParams struct {
	Ticker               string             `validate:"required"`
	SecurityType         types.SecurityType `validate:"required,oneof=equity option crypto"`
	TickType             types.TickType     `validate:"required,oneof=trade quote open_interest"`
	Resolution           types.Resolution   `validate:"required,oneof=tick second minute hour daily"`
	Start                time.Time          `validate:"required"`
	End                  time.Time          `validate:"required,gtfield=Start"`
	IncludeExtendedHours bool
}

// Client downloads historical data and stores it using a record writer.
type Client struct {
	history    *history.Provider
	mapper     *symbols.Mapper
	config     ClientConfig
	validate   *validator.Validate
	logger     *logger.Logger
	onProgress OnDownloadProgress
}

// NewClient creates a market data client with the given configuration.
// Warnings emitted by the history engine are delivered to the sink.
func NewClient(config ClientConfig, sink events.Sink, l *logger.Logger, onProgress OnDownloadProgress) (*Client, error) {
	validate := validator.New()
	if err := validate.Struct(config); err != nil {
		return nil, fmt.Errorf("invalid client configuration: %w", err)
	}

	mapper := symbols.NewMapper()
	dataClient := alpaca.NewHTTPClient(config.BaseURL, config.APIKey, config.APISecret, l)

	return &Client{
		history:    history.NewProvider(dataClient, mapper, sink, l),
		mapper:     mapper,
		config:     config,
		validate:   validate,
		logger:     l,
		onProgress: onProgress,
	}, nil
}

// Download fetches the requested history and writes it to a Parquet file.
// The context cancels the remote pagination between pages.
func (c *Client) Download(ctx context.Context, params DownloadParams) error {
	if err := c.validate.Struct(params); err != nil {
		return fmt.Errorf("invalid download parameters: %w", err)
	}

	symbol, err := c.mapper.FromProviderSymbol(params.Ticker, params.SecurityType)
	if err != nil {
		return fmt.Errorf("invalid ticker %q: %w", params.Ticker, err)
	}

	request, err := c.historyRequest(symbol, params)
	if err != nil {
		return err
	}

	recordWriter, err := c.setupWriter(params)
	if err != nil {
		return fmt.Errorf("failed to setup writer: %w", err)
	}

	defer func() {
		if err := recordWriter.Close(); err != nil {
			c.logger.Warn("failed to close writer", zap.Error(err))
		}
	}()

	records := c.history.GetHistory(ctx, request)
	if records == nil {
		c.logger.Info("no history available for request",
			zap.String("ticker", params.Ticker),
			zap.String("tick_type", string(params.TickType)),
			zap.String("resolution", string(params.Resolution)))

		return nil
	}

	var written int64

	for record, err := range records {
		if err != nil {
			return fmt.Errorf("download failed: %w", err)
		}

		if err := recordWriter.Write(record); err != nil {
			return fmt.Errorf("failed to persist record: %w", err)
		}

		written++
		if c.onProgress != nil {
			c.onProgress(written)
		}
	}

	outputPath, stats, err := recordWriter.Finalize()
	if err != nil {
		return fmt.Errorf("failed to finalize writer: %w", err)
	}

	c.logger.Info("download complete",
		zap.String("output", outputPath),
		zap.Int64("records", stats.Records),
		zap.Time("first", stats.FirstTime),
		zap.Time("last", stats.LastTime))

	return nil
}

// historyRequest builds the engine request, attaching the exchange calendar
// and time zone for the asset class.
func (c *Client) historyRequest(symbol types.Symbol, params DownloadParams) (types.HistoryRequest, error) {
	request := types.HistoryRequest{
		Symbol:               symbol,
		TickType:             params.TickType,
		Resolution:           params.Resolution,
		Start:                params.Start.UTC(),
		End:                  params.End.UTC(),
		IncludeExtendedHours: params.IncludeExtendedHours,
	}

	switch params.SecurityType {
	case types.SecurityTypeCrypto:
		request.Calendar = calendar.NewCryptoCalendar()
	default:
		equityCalendar, err := calendar.NewEquityCalendar()
		if err != nil {
			return types.HistoryRequest{}, fmt.Errorf("failed to load exchange calendar: %w", err)
		}

		request.Calendar = equityCalendar
		request.ExchangeTimeZone = equityCalendar.Location()
	}

	return request, nil
}

// setupWriter initializes the record writer based on configuration.
func (c *Client) setupWriter(params DownloadParams) (writer.RecordWriter, error) {
	switch c.config.WriterType {
	case WriterDuckDB:
		// Filename: TICKER_START_END_RESOLUTION_TICKTYPE.parquet
		outputFileName := fmt.Sprintf("%s_%s_%s_%s_%s.parquet",
			sanitizeTicker(params.Ticker),
			params.Start.Format("2006-01-02"),
			params.End.Format("2006-01-02"),
			params.Resolution,
			params.TickType)
		outputPath := filepath.Join(c.config.DataPath, outputFileName)

		if _, err := os.Stat(c.config.DataPath); os.IsNotExist(err) {
			os.MkdirAll(c.config.DataPath, 0755)
		}

		duckdbWriter := writer.NewDuckDBWriter(outputPath)
		if err := duckdbWriter.Initialize(); err != nil {
			return nil, fmt.Errorf("failed to initialize DuckDB writer at %s: %w", outputPath, err)
		}

		return duckdbWriter, nil
	default:
		return nil, fmt.Errorf("unsupported writer type: %s", c.config.WriterType)
	}
}

// sanitizeTicker makes a ticker safe to embed in a filename.
func sanitizeTicker(ticker string) string {
	out := make([]rune, 0, len(ticker))

	for _, r := range ticker {
		if r == '/' {
			r = '-'
		}

		out = append(out, r)
	}

	return string(out)
}
