package quiz

// QuestionType classifies how a question is answered.
type QuestionType string

const (
	TypeMultipleChoice QuestionType = "multiple-choice"
	TypeShortAnswer    QuestionType = "short"
	TypeTrueFalse      QuestionType = "true-false"
)

// ValidTypes lists every accepted question type.
var ValidTypes = []QuestionType{TypeMultipleChoice, TypeShortAnswer, TypeTrueFalse}

// Valid reports whether t is one of the accepted question types.
func (t QuestionType) Valid() bool {
	switch t {
	case TypeMultipleChoice, TypeShortAnswer, TypeTrueFalse:
		return true
	}
	return false
}

// Difficulty is the assessed difficulty of a question.
type Difficulty string

const (
	DifficultyEasy   Difficulty = "easy"
	DifficultyMedium Difficulty = "medium"
	DifficultyHard   Difficulty = "hard"
)

// Difficulties lists every difficulty bucket in display order.
var Difficulties = []Difficulty{DifficultyEasy, DifficultyMedium, DifficultyHard}

// Valid reports whether d is one of the accepted difficulty levels.
func (d Difficulty) Valid() bool {
	switch d {
	case DifficultyEasy, DifficultyMedium, DifficultyHard:
		return true
	}
	return false
}

// MultipleChoiceOptions is the exact number of options a multiple-choice
// question carries.
const MultipleChoiceOptions = 4

// Question is a single generated quiz question. Questions are built by the
// synthesizer from a validated model response and not modified afterwards.
type Question struct {
	// Question is the prompt text shown to the learner.
	Question string `json:"question"`

	// Answer is the canonical correct answer. For multiple-choice it equals
	// one of Options; for true-false it is "True" or "False".
	Answer string `json:"answer"`

	Type       QuestionType `json:"type"`
	Difficulty Difficulty   `json:"difficulty"`

	// Options holds exactly 4 choices for multiple-choice questions and is
	// empty for every other type.
	Options []string `json:"options,omitempty"`

	// Explanation is a short account of why Answer is correct.
	Explanation string `json:"explanation,omitempty"`

	// Topic is the concept this question covers, when the model reported one.
	Topic string `json:"topic,omitempty"`
}

// Quiz is a titled, ordered set of questions with derived statistics.
//
// TotalQuestions and DifficultyDistribution are derived from Questions.
// Call Recompute after any change to the question list; nothing else may
// write those fields.
type Quiz struct {
	Title     string     `json:"title"`
	Source    string     `json:"source"`
	Questions []Question `json:"questions"`

	TotalQuestions         int                `json:"total_questions"`
	DifficultyDistribution map[Difficulty]int `json:"difficulty_distribution"`

	// Topics covers at most 5 subject areas touched by the quiz.
	Topics []string `json:"topics"`
}

// Recompute rebuilds the derived fields from the current question list.
// The distribution is zero-filled so every bucket is always present.
func (q *Quiz) Recompute() {
	q.TotalQuestions = len(q.Questions)

	dist := map[Difficulty]int{
		DifficultyEasy:   0,
		DifficultyMedium: 0,
		DifficultyHard:   0,
	}
	for _, question := range q.Questions {
		dist[question.Difficulty]++
	}
	q.DifficultyDistribution = dist
}
