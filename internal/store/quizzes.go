package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/vedantvaibhav/Lumus/internal/quiz"
)

// ErrQuizNotFound is returned by GetQuiz for unknown IDs.
var ErrQuizNotFound = errors.New("quiz not found")

// QuizSummary is one row of the history listing.
type QuizSummary struct {
	ID             string    `json:"id"`
	Title          string    `json:"title"`
	Source         string    `json:"source"`
	SourceKind     string    `json:"source_kind"`
	TotalQuestions int       `json:"total_questions"`
	CreatedAt      time.Time `json:"created_at"`
}

// SaveQuiz stores a generated quiz and returns its new ID. The full quiz
// is kept as a JSON document; the indexed columns exist for listing.
func (s *Store) SaveQuiz(ctx context.Context, q *quiz.Quiz, kind quiz.SourceKind) (string, error) {
	data, err := json.Marshal(q)
	if err != nil {
		return "", fmt.Errorf("marshal quiz: %w", err)
	}

	id := uuid.NewString()
	_, err = s.db.ExecContext(ctx,
		`INSERT INTO quizzes (id, title, source, source_kind, total_questions, data, created_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		id, q.Title, q.Source, string(kind), q.TotalQuestions, string(data), time.Now().UTC())
	if err != nil {
		return "", fmt.Errorf("insert quiz: %w", err)
	}
	return id, nil
}

// GetQuiz loads a stored quiz by ID.
func (s *Store) GetQuiz(ctx context.Context, id string) (*quiz.Quiz, error) {
	var data string
	err := s.db.QueryRowContext(ctx,
		`SELECT data FROM quizzes WHERE id = ?`, id).Scan(&data)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrQuizNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("query quiz: %w", err)
	}

	var q quiz.Quiz
	if err := json.Unmarshal([]byte(data), &q); err != nil {
		return nil, fmt.Errorf("unmarshal quiz %s: %w", id, err)
	}
	return &q, nil
}

// ListQuizzes returns the most recent quizzes, newest first.
func (s *Store) ListQuizzes(ctx context.Context, limit int) ([]QuizSummary, error) {
	if limit <= 0 {
		limit = 20
	}
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, title, source, source_kind, total_questions, created_at
		 FROM quizzes ORDER BY created_at DESC LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("query quizzes: %w", err)
	}
	defer rows.Close()

	var out []QuizSummary
	for rows.Next() {
		var row QuizSummary
		if err := rows.Scan(&row.ID, &row.Title, &row.Source, &row.SourceKind, &row.TotalQuestions, &row.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan quiz row: %w", err)
		}
		out = append(out, row)
	}
	return out, rows.Err()
}
