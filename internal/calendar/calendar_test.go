package calendar

import (
	"testing"
	"time"

	"github.com/stretchr/testify/suite"
)

type CalendarTestSuite struct {
	suite.Suite
	equity *SessionCalendar
	crypto *SessionCalendar
}

func TestCalendarSuite(t *testing.T) {
	suite.Run(t, new(CalendarTestSuite))
}

func (suite *CalendarTestSuite) SetupSuite() {
	equity, err := NewEquityCalendar()
	suite.Require().NoError(err)
	suite.equity = equity
	suite.crypto = NewCryptoCalendar()
}

// newYork builds a timestamp in the exchange time zone.
func (suite *CalendarTestSuite) newYork(year int, month time.Month, day, hour, minute int) time.Time {
	return time.Date(year, month, day, hour, minute, 0, 0, suite.equity.Location())
}

func (suite *CalendarTestSuite) TestRegularSessionBar() {
	// Wednesday 2024-06-12, one minute bar at 09:30 ET
	start := suite.newYork(2024, 6, 12, 9, 30)
	suite.True(suite.equity.IsOpen(start, start.Add(time.Minute), false))
}

func (suite *CalendarTestSuite) TestPreMarketBarRegularHours() {
	// 08:00 ET is outside the regular session
	start := suite.newYork(2024, 6, 12, 8, 0)
	suite.False(suite.equity.IsOpen(start, start.Add(time.Minute), false))
}

func (suite *CalendarTestSuite) TestPreMarketBarExtendedHours() {
	start := suite.newYork(2024, 6, 12, 8, 0)
	suite.True(suite.equity.IsOpen(start, start.Add(time.Minute), true))
}

func (suite *CalendarTestSuite) TestAfterHoursBar() {
	start := suite.newYork(2024, 6, 12, 17, 0)
	suite.False(suite.equity.IsOpen(start, start.Add(time.Minute), false))
	suite.True(suite.equity.IsOpen(start, start.Add(time.Minute), true))
}

func (suite *CalendarTestSuite) TestWeekendClosed() {
	// Saturday 2024-06-15
	start := suite.newYork(2024, 6, 15, 10, 0)
	suite.False(suite.equity.IsOpen(start, start.Add(time.Minute), false))
	suite.False(suite.equity.IsOpen(start, start.Add(time.Minute), true))
}

func (suite *CalendarTestSuite) TestDailyBarOverlapsSession() {
	// A daily bar spanning a full trading day overlaps the session
	start := suite.newYork(2024, 6, 12, 0, 0)
	suite.True(suite.equity.IsOpen(start, start.Add(24*time.Hour), false))
}

func (suite *CalendarTestSuite) TestWeekendDailyBarClosed() {
	start := suite.newYork(2024, 6, 15, 0, 0)
	suite.False(suite.equity.IsOpen(start, start.Add(24*time.Hour), false))
}

func (suite *CalendarTestSuite) TestInstantTick() {
	inSession := suite.newYork(2024, 6, 12, 12, 0)
	suite.True(suite.equity.IsOpen(inSession, inSession, false))

	atClose := suite.newYork(2024, 6, 12, 16, 0)
	suite.False(suite.equity.IsOpen(atClose, atClose, false))
}

func (suite *CalendarTestSuite) TestInvertedIntervalClosed() {
	start := suite.newYork(2024, 6, 12, 10, 0)
	suite.False(suite.equity.IsOpen(start, start.Add(-time.Minute), false))
}

func (suite *CalendarTestSuite) TestCryptoAlwaysOpen() {
	sunday := time.Date(2024, 6, 16, 3, 0, 0, 0, time.UTC)
	suite.True(suite.crypto.IsOpen(sunday, sunday.Add(time.Minute), false))
	suite.True(suite.crypto.IsOpen(sunday, sunday.Add(time.Minute), true))
}
