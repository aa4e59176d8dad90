package llm

import (
	"context"
	"fmt"
	"os"
	"time"
)

// RequestEvent is one recorded backend request.
type RequestEvent struct {
	Purpose      string
	Model        string
	InputTokens  int
	OutputTokens int
	LatencyMs    int64
	Success      bool
	ErrorMessage string
}

// RequestLog receives a RequestEvent for every Generate call. The history
// store implements this; a nil log disables recording.
type RequestLog interface {
	AppendRequestEvent(ctx context.Context, ev RequestEvent) error
}

// LoggingProvider is a decorator that records every backend request.
type LoggingProvider struct {
	inner Provider
	log   RequestLog
}

// WithLogging wraps a Provider with request recording.
func WithLogging(p Provider, log RequestLog) Provider {
	return &LoggingProvider{inner: p, log: log}
}

func (l *LoggingProvider) Generate(ctx context.Context, req Request) (*Response, error) {
	start := time.Now()

	resp, err := l.inner.Generate(ctx, req)

	if l.log == nil {
		return resp, err
	}

	ev := RequestEvent{
		Purpose:   PurposeFrom(ctx),
		Model:     l.inner.ModelID(),
		LatencyMs: time.Since(start).Milliseconds(),
		Success:   err == nil,
	}
	if resp != nil {
		ev.InputTokens = resp.Usage.InputTokens
		ev.OutputTokens = resp.Usage.OutputTokens
		ev.Model = resp.Model
	}
	if err != nil {
		ev.ErrorMessage = err.Error()
	}

	// Record the event but don't fail the request if recording fails.
	if logErr := l.log.AppendRequestEvent(ctx, ev); logErr != nil {
		fmt.Fprintf(os.Stderr, "warning: failed to record model request: %v\n", logErr)
	}

	return resp, err
}

func (l *LoggingProvider) ModelID() string {
	return l.inner.ModelID()
}
