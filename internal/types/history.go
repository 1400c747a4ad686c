package types

import "time"

// ExchangeCalendar answers whether an interval falls inside tradable hours.
// Implementations live in internal/calendar.
type ExchangeCalendar interface {
	// IsOpen reports whether the interval [start, end) lies within the
	// exchange session. When extendedHours is true the pre- and post-market
	// sessions count as open.
	IsOpen(start time.Time, end time.Time, extendedHours bool) bool
}

// HistoryRequest describes a single historical data query.
// The request is immutable for the duration of one GetHistory call; the
// engine clones it into provider-native request shapes and never writes
// back into it.
type HistoryRequest struct {
	// Symbol is the instrument to query.
	Symbol Symbol
	// TickType is the kind of data requested.
	TickType TickType
	// Resolution is the requested record width.
	Resolution Resolution
	// Start is the inclusive UTC start of the query window.
	Start time.Time
	// End is the exclusive UTC end of the query window.
	End time.Time
	// Calendar is the exchange calendar used to filter the results.
	Calendar ExchangeCalendar
	// ExchangeTimeZone is the time zone record timestamps are converted to.
	ExchangeTimeZone *time.Location
	// IncludeExtendedHours widens the calendar filter to the extended session.
	IncludeExtendedHours bool
}
