// Package events carries fire-and-forget notifications from the history
// engine to the hosting system. The interface is intentionally small so
// components can depend on it without importing concrete implementations.
package events

import (
	"sync"

	"go.uber.org/zap"

	"github.com/uplight-dev/alpaca-history/internal/logger"
)

// Severity classifies a notification.
type Severity string

const (
	SeverityInfo    Severity = "info"
	SeverityWarning Severity = "warning"
	SeverityError   Severity = "error"
)

// Sink receives notifications. Implementations must be safe for
// fire-and-forget use: Notify never returns an error and must not block
// the caller for long.
type Sink interface {
	Notify(severity Severity, code string, message string)
}

// LogSink forwards notifications to the process logger.
type LogSink struct {
	logger *logger.Logger
}

// NewLogSink creates a Sink backed by the given logger.
func NewLogSink(l *logger.Logger) *LogSink {
	return &LogSink{logger: l}
}

// Notify implements Sink.
func (s *LogSink) Notify(severity Severity, code string, message string) {
	fields := []zap.Field{
		zap.String("code", code),
	}

	switch severity {
	case SeverityError:
		s.logger.Error(message, fields...)
	case SeverityWarning:
		s.logger.Warn(message, fields...)
	case SeverityInfo:
		s.logger.Info(message, fields...)
	default:
		s.logger.Info(message, fields...)
	}
}

// Notification is a single recorded notification.
type Notification struct {
	Severity Severity
	Code     string
	Message  string
}

// Recorder is a Sink that remembers everything it receives. Used in tests
// to assert on warning behavior.
type Recorder struct {
	mu            sync.Mutex
	notifications []Notification
}

// NewRecorder creates an empty Recorder.
func NewRecorder() *Recorder {
	return &Recorder{}
}

// Notify implements Sink.
func (r *Recorder) Notify(severity Severity, code string, message string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.notifications = append(r.notifications, Notification{
		Severity: severity,
		Code:     code,
		Message:  message,
	})
}

// Notifications returns a copy of everything received so far.
func (r *Recorder) Notifications() []Notification {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]Notification, len(r.notifications))
	copy(out, r.notifications)

	return out
}

// CountByCode returns how many notifications carried the given code.
func (r *Recorder) CountByCode(code string) int {
	r.mu.Lock()
	defer r.mu.Unlock()

	count := 0

	for _, n := range r.notifications {
		if n.Code == code {
			count++
		}
	}

	return count
}
