package quiz

import "fmt"

// SourceKind identifies where quiz source content comes from.
type SourceKind string

const (
	SourceURL  SourceKind = "url"
	SourcePDF  SourceKind = "pdf"
	SourceText SourceKind = "text"
	SourceFile SourceKind = "file"
)

// Valid reports whether k is a known source kind.
func (k SourceKind) Valid() bool {
	switch k {
	case SourceURL, SourcePDF, SourceText, SourceFile:
		return true
	}
	return false
}

const (
	// MinQuestions and MaxQuestions bound the requested question count.
	MinQuestions = 1
	MaxQuestions = 50

	// DefaultQuestions is used when a request leaves the count unset.
	DefaultQuestions = 10
)

// GenerationRequest describes one quiz-generation run. A request is
// independent and stateless; nothing survives past its GenerationResult.
type GenerationRequest struct {
	// Source is the content locator: a URL, a file path, or literal text.
	Source string `json:"source"`

	// SourceKind may be left empty, in which case the reader infers it
	// from the locator.
	SourceKind SourceKind `json:"source_type,omitempty"`

	NumQuestions int `json:"num_questions"`

	// DifficultyPreference biases generation toward one level. Optional.
	DifficultyPreference Difficulty `json:"difficulty_preference,omitempty"`

	// Topics focuses generation on specific subject areas. Optional.
	Topics []string `json:"topics,omitempty"`

	// QuestionTypes restricts the generated types. When empty the
	// synthesizer uses its default mix.
	QuestionTypes []QuestionType `json:"question_types,omitempty"`
}

// Normalize fills defaults and validates the request in place.
func (r *GenerationRequest) Normalize() error {
	if r.Source == "" {
		return fmt.Errorf("source is required")
	}
	if r.NumQuestions == 0 {
		r.NumQuestions = DefaultQuestions
	}
	if r.NumQuestions < MinQuestions || r.NumQuestions > MaxQuestions {
		return fmt.Errorf("num_questions must be between %d and %d, got %d",
			MinQuestions, MaxQuestions, r.NumQuestions)
	}
	if r.SourceKind != "" && !r.SourceKind.Valid() {
		return fmt.Errorf("unknown source type: %q", r.SourceKind)
	}
	if r.DifficultyPreference != "" && !r.DifficultyPreference.Valid() {
		return fmt.Errorf("unknown difficulty: %q", r.DifficultyPreference)
	}
	for _, t := range r.QuestionTypes {
		if !t.Valid() {
			return fmt.Errorf("unknown question type: %q", t)
		}
	}
	return nil
}
