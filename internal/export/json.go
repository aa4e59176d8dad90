package export

import (
	"encoding/json"
	"io"
	"time"

	"github.com/vedantvaibhav/Lumus/internal/quiz"
)

// jsonDocument mirrors the quiz with a generation timestamp added.
type jsonDocument struct {
	Title                  string                      `json:"title"`
	Source                 string                      `json:"source"`
	TotalQuestions         int                         `json:"total_questions"`
	DifficultyDistribution map[quiz.Difficulty]int     `json:"difficulty_distribution"`
	Topics                 []string                    `json:"topics"`
	GeneratedAt            string                      `json:"generated_at"`
	Questions              []quiz.Question             `json:"questions"`
}

// WriteJSON writes the quiz as an indented JSON document.
func WriteJSON(w io.Writer, q *quiz.Quiz) error {
	doc := jsonDocument{
		Title:                  q.Title,
		Source:                 q.Source,
		TotalQuestions:         q.TotalQuestions,
		DifficultyDistribution: q.DifficultyDistribution,
		Topics:                 q.Topics,
		GeneratedAt:            time.Now().Format(time.RFC3339),
		Questions:              q.Questions,
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	return enc.Encode(doc)
}
