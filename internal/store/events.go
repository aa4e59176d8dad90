package store

import (
	"context"
	"fmt"
	"time"

	"github.com/vedantvaibhav/Lumus/internal/llm"
)

// RequestEvent is one recorded model call.
type RequestEvent struct {
	ID           int64     `json:"id"`
	CreatedAt    time.Time `json:"created_at"`
	Purpose      string    `json:"purpose"`
	Model        string    `json:"model"`
	InputTokens  int       `json:"input_tokens"`
	OutputTokens int       `json:"output_tokens"`
	LatencyMs    int64     `json:"latency_ms"`
	Success      bool      `json:"success"`
	Error        string    `json:"error,omitempty"`
}

// AppendRequestEvent implements llm.RequestLog.
func (s *Store) AppendRequestEvent(ctx context.Context, ev llm.RequestEvent) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO llm_events (created_at, purpose, model, input_tokens, output_tokens, latency_ms, success, error)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		time.Now().UTC(), ev.Purpose, ev.Model, ev.InputTokens, ev.OutputTokens,
		ev.LatencyMs, ev.Success, ev.ErrorMessage)
	if err != nil {
		return fmt.Errorf("insert request event: %w", err)
	}
	return nil
}

// ListRequestEvents returns the most recent model calls, newest first.
func (s *Store) ListRequestEvents(ctx context.Context, limit int) ([]RequestEvent, error) {
	if limit <= 0 {
		limit = 50
	}
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, created_at, purpose, model, input_tokens, output_tokens, latency_ms, success, error
		 FROM llm_events ORDER BY id DESC LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("query request events: %w", err)
	}
	defer rows.Close()

	var out []RequestEvent
	for rows.Next() {
		var ev RequestEvent
		if err := rows.Scan(&ev.ID, &ev.CreatedAt, &ev.Purpose, &ev.Model, &ev.InputTokens,
			&ev.OutputTokens, &ev.LatencyMs, &ev.Success, &ev.Error); err != nil {
			return nil, fmt.Errorf("scan event row: %w", err)
		}
		out = append(out, ev)
	}
	return out, rows.Err()
}
