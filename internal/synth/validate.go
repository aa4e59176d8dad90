package synth

import (
	"encoding/json"
	"fmt"
	"slices"
	"strings"

	"github.com/vedantvaibhav/Lumus/internal/quiz"
)

// stripFences removes a markdown code fence some models wrap JSON in.
func stripFences(raw []byte) []byte {
	text := strings.TrimSpace(string(raw))
	if !strings.HasPrefix(text, "```") {
		return raw
	}
	text = strings.TrimPrefix(text, "```json")
	text = strings.TrimPrefix(text, "```")
	text = strings.TrimSuffix(strings.TrimSpace(text), "```")
	return []byte(strings.TrimSpace(text))
}

// parseQuestion decodes one question from the model and enforces the
// question contract. allowed restricts the accepted question types.
func parseQuestion(raw json.RawMessage, allowed []quiz.QuestionType) (quiz.Question, error) {
	var q quiz.Question
	if err := json.Unmarshal(raw, &q); err != nil {
		return quiz.Question{}, fmt.Errorf("decode question: %w", err)
	}
	if err := checkQuestion(q, allowed); err != nil {
		return quiz.Question{}, err
	}
	return q, nil
}

func checkQuestion(q quiz.Question, allowed []quiz.QuestionType) error {
	if q.Question == "" {
		return fmt.Errorf("missing question text")
	}
	if q.Answer == "" {
		return fmt.Errorf("missing answer")
	}
	if !q.Type.Valid() {
		return fmt.Errorf("unknown question type %q", q.Type)
	}
	if len(allowed) > 0 && !slices.Contains(allowed, q.Type) {
		return fmt.Errorf("question type %q not requested", q.Type)
	}
	if !q.Difficulty.Valid() {
		return fmt.Errorf("unknown difficulty %q", q.Difficulty)
	}

	if q.Type == quiz.TypeMultipleChoice {
		if len(q.Options) != quiz.MultipleChoiceOptions {
			return fmt.Errorf("multiple-choice needs %d options, got %d",
				quiz.MultipleChoiceOptions, len(q.Options))
		}
		if !slices.Contains(q.Options, q.Answer) {
			return fmt.Errorf("answer %q is not among the options", q.Answer)
		}
	} else if len(q.Options) > 0 {
		return fmt.Errorf("%s question must not carry options", q.Type)
	}
	return nil
}
