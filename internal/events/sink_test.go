package events

import (
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/uplight-dev/alpaca-history/internal/logger"
)

type SinkTestSuite struct {
	suite.Suite
}

func TestSinkSuite(t *testing.T) {
	suite.Run(t, new(SinkTestSuite))
}

func (suite *SinkTestSuite) TestLogSinkDoesNotPanic() {
	sink := NewLogSink(logger.NewNopLogger())

	sink.Notify(SeverityInfo, "TestCode", "info message")
	sink.Notify(SeverityWarning, "TestCode", "warning message")
	sink.Notify(SeverityError, "TestCode", "error message")
	sink.Notify(Severity("other"), "TestCode", "fallback message")
}

func (suite *SinkTestSuite) TestRecorderRemembersNotifications() {
	recorder := NewRecorder()
	recorder.Notify(SeverityWarning, "InvalidTimeRange", "start must precede end")
	recorder.Notify(SeverityWarning, "InvalidTickType", "unsupported tick type")
	recorder.Notify(SeverityWarning, "InvalidTickType", "unsupported tick type")

	notifications := recorder.Notifications()
	suite.Len(notifications, 3)
	suite.Equal("InvalidTimeRange", notifications[0].Code)
	suite.Equal(SeverityWarning, notifications[0].Severity)

	suite.Equal(1, recorder.CountByCode("InvalidTimeRange"))
	suite.Equal(2, recorder.CountByCode("InvalidTickType"))
	suite.Equal(0, recorder.CountByCode("Unknown"))
}

func (suite *SinkTestSuite) TestRecorderReturnsCopy() {
	recorder := NewRecorder()
	recorder.Notify(SeverityInfo, "A", "first")

	first := recorder.Notifications()
	recorder.Notify(SeverityInfo, "B", "second")

	suite.Len(first, 1)
	suite.Len(recorder.Notifications(), 2)
}
