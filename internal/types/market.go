package types

import "time"

// TickType identifies the kind of market data a record carries.
type TickType string

const (
	TickTypeTrade        TickType = "trade"
	TickTypeQuote        TickType = "quote"
	TickTypeOpenInterest TickType = "open_interest"
)

// Resolution is the requested width of a historical record.
type Resolution string

const (
	ResolutionTick   Resolution = "tick"
	ResolutionSecond Resolution = "second"
	ResolutionMinute Resolution = "minute"
	ResolutionHour   Resolution = "hour"
	ResolutionDaily  Resolution = "daily"
)

// Duration returns the fixed width of a single record at this resolution.
// Tick resolution has no width and returns zero.
func (r Resolution) Duration() time.Duration {
	switch r {
	case ResolutionSecond:
		return time.Second
	case ResolutionMinute:
		return time.Minute
	case ResolutionHour:
		return time.Hour
	case ResolutionDaily:
		return 24 * time.Hour
	case ResolutionTick:
		return 0
	default:
		return 0
	}
}

// Record is a single historical data point, either a Tick or a Bar.
type Record interface {
	// RecordSymbol is the instrument the record belongs to.
	RecordSymbol() Symbol
	// RecordTime is the start time of the record in exchange time.
	RecordTime() time.Time
	// RecordEndTime is the end of the interval the record covers.
	// For ticks this equals RecordTime.
	RecordEndTime() time.Time
}

// Tick is a single trade or quote record.
// Trade ticks populate Price, Size, Exchange and Condition; quote ticks
// populate the bid and ask fields.
type Tick struct {
	Symbol   Symbol
	Time     time.Time
	TickType TickType

	// Trade fields
	Price     float64
	Size      float64
	Exchange  string
	Condition string

	// Quote fields
	BidPrice float64
	BidSize  float64
	AskPrice float64
	AskSize  float64
}

// RecordSymbol implements Record.
func (t Tick) RecordSymbol() Symbol { return t.Symbol }

// RecordTime implements Record.
func (t Tick) RecordTime() time.Time { return t.Time }

// RecordEndTime implements Record.
func (t Tick) RecordEndTime() time.Time { return t.Time }

// Bar is a fixed-width OHLCV record. Time marks the start of the interval
// and Period its exact width.
type Bar struct {
	Symbol Symbol
	Time   time.Time
	Period time.Duration
	Open   float64
	High   float64
	Low    float64
	Close  float64
	Volume float64
}

// RecordSymbol implements Record.
func (b Bar) RecordSymbol() Symbol { return b.Symbol }

// RecordTime implements Record.
func (b Bar) RecordTime() time.Time { return b.Time }

// RecordEndTime implements Record.
func (b Bar) RecordEndTime() time.Time { return b.Time.Add(b.Period) }
