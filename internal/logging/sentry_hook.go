package logging

import (
	"errors"
	"fmt"
	"time"

	"github.com/getsentry/sentry-go"
	"github.com/sirupsen/logrus"
)

// SentryHook forwards logrus entries of the configured levels to sentry.
type SentryHook struct {
	levels  []logrus.Level
	hub     *sentry.Hub
	timeout time.Duration
}

func NewSentryHook(levels []logrus.Level) *SentryHook {
	return NewSentryHookWithHub(levels, sentry.CurrentHub())
}

func NewSentryHookWithHub(levels []logrus.Level, hub *sentry.Hub) *SentryHook {
	return &SentryHook{
		levels:  levels,
		hub:     hub,
		timeout: 2 * time.Second,
	}
}

func (h *SentryHook) Levels() []logrus.Level {
	return h.levels
}

func (h *SentryHook) Fire(entry *logrus.Entry) error {
	hub := h.hub.Clone()
	hub.WithScope(func(scope *sentry.Scope) {
		scope.SetLevel(sentryLevel(entry.Level))
		for k, v := range entry.Data {
			if k == logrus.ErrorKey {
				continue
			}
			scope.SetExtra(k, v)
		}

		if err, ok := entry.Data[logrus.ErrorKey].(error); ok && err != nil {
			hub.CaptureException(fmt.Errorf("%s: %w", entry.Message, err))
			return
		}
		hub.CaptureException(errors.New(entry.Message))
	})

	// fatal and panic terminate the process right after the hook
	if entry.Level <= logrus.FatalLevel {
		hub.Flush(h.timeout)
	}
	return nil
}

func sentryLevel(level logrus.Level) sentry.Level {
	switch level {
	case logrus.PanicLevel, logrus.FatalLevel:
		return sentry.LevelFatal
	case logrus.ErrorLevel:
		return sentry.LevelError
	case logrus.WarnLevel:
		return sentry.LevelWarning
	case logrus.InfoLevel:
		return sentry.LevelInfo
	default:
		return sentry.LevelDebug
	}
}
