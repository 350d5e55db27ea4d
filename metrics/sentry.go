package metrics

import (
	"context"
	"fmt"
	"time"

	"github.com/getsentry/sentry-go"
)

// Init configures the Sentry client. An empty dsn leaves reporting off and
// returns metrics that record nothing.
func Init(dsn, release string) (*SentryMetrics, error) {
	if dsn == "" {
		return &SentryMetrics{}, nil
	}
	err := sentry.Init(sentry.ClientOptions{
		Dsn:              dsn,
		Release:          release,
		TracesSampleRate: 1.0,
	})
	if err != nil {
		return nil, fmt.Errorf("sentry init: %w", err)
	}
	return NewSentryMetrics(), nil
}

// SentryMetrics records spans and errors to Sentry
type SentryMetrics struct {
	enabled bool
}

func NewSentryMetrics() *SentryMetrics {
	return &SentryMetrics{enabled: true}
}

func (m *SentryMetrics) Enabled() bool {
	return m != nil && m.enabled
}

// Flush waits for buffered events to be sent.
func (m *SentryMetrics) Flush(timeout time.Duration) {
	if !m.Enabled() {
		return
	}
	sentry.Flush(timeout)
}

// StartTransaction starts a transaction for an incoming request. The
// returned function finishes it.
func (m *SentryMetrics) StartTransaction(ctx context.Context, name string) (context.Context, func()) {
	if !m.Enabled() {
		return ctx, func() {}
	}
	transaction := sentry.StartTransaction(ctx, name)
	return transaction.Context(), transaction.Finish
}

// RecordParse records the parsing of a chord line or a sheet.
func (m *SentryMetrics) RecordParse(ctx context.Context, kind string, lines int, duration time.Duration, err error) {
	if !m.Enabled() {
		return
	}

	span := sentry.StartSpan(ctx, "chordmark.parse")
	defer span.Finish()

	span.SetTag("kind", kind)
	span.SetTag("success", fmt.Sprintf("%t", err == nil))
	span.SetData("lines", lines)
	span.SetData("duration_ms", duration.Milliseconds())

	if err == nil {
		span.Status = sentry.SpanStatusOK
	} else {
		span.Status = sentry.SpanStatusInvalidArgument
	}
	span.Description = fmt.Sprintf("Parse %s: %d lines", kind, lines)
}

// CaptureError reports an unexpected failure.
func (m *SentryMetrics) CaptureError(err error) {
	if !m.Enabled() || err == nil {
		return
	}
	sentry.CaptureException(err)
}
