// Package calendar provides exchange trading-hours calendars used to filter
// historical records down to tradable intervals.
package calendar

import (
	"time"

	"github.com/uplight-dev/alpaca-history/pkg/errors"
)

// SessionCalendar implements types.ExchangeCalendar for exchanges with a
// fixed daily session. A zero session (alwaysOpen) models 24/7 markets.
type SessionCalendar struct {
	location   *time.Location
	alwaysOpen bool

	// Offsets from local midnight.
	regularOpen   time.Duration
	regularClose  time.Duration
	extendedOpen  time.Duration
	extendedClose time.Duration
}

// NewEquityCalendar creates the US equity/option session calendar:
// regular session 09:30-16:00 ET, extended 04:00-20:00 ET, closed weekends.
func NewEquityCalendar() (*SessionCalendar, error) {
	location, err := time.LoadLocation("America/New_York")
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidConfiguration, "failed to load exchange time zone", err)
	}

	return &SessionCalendar{
		location:      location,
		alwaysOpen:    false,
		regularOpen:   9*time.Hour + 30*time.Minute,
		regularClose:  16 * time.Hour,
		extendedOpen:  4 * time.Hour,
		extendedClose: 20 * time.Hour,
	}, nil
}

// NewCryptoCalendar creates an always-open calendar for 24/7 markets.
func NewCryptoCalendar() *SessionCalendar {
	return &SessionCalendar{
		location:   time.UTC,
		alwaysOpen: true,
	}
}

// Location returns the exchange time zone.
func (c *SessionCalendar) Location() *time.Location {
	return c.location
}

// IsOpen reports whether the interval [start, end) overlaps any open session
// time. A zero-length interval is treated as an instant.
func (c *SessionCalendar) IsOpen(start time.Time, end time.Time, extendedHours bool) bool {
	if c.alwaysOpen {
		return true
	}

	if end.Before(start) {
		return false
	}

	openOffset := c.regularOpen
	closeOffset := c.regularClose

	if extendedHours {
		openOffset = c.extendedOpen
		closeOffset = c.extendedClose
	}

	start = start.In(c.location)
	end = end.In(c.location)

	// Walk the days the interval touches and test each session window.
	day := time.Date(start.Year(), start.Month(), start.Day(), 0, 0, 0, 0, c.location)
	for !day.After(end) {
		if weekday := day.Weekday(); weekday != time.Saturday && weekday != time.Sunday {
			sessionStart := day.Add(openOffset)
			sessionEnd := day.Add(closeOffset)

			if start.Equal(end) {
				// Instant: open when the session contains it.
				if !start.Before(sessionStart) && start.Before(sessionEnd) {
					return true
				}
			} else if start.Before(sessionEnd) && end.After(sessionStart) {
				return true
			}
		}

		day = day.AddDate(0, 0, 1)
	}

	return false
}
