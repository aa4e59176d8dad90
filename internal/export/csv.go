package export

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/vedantvaibhav/Lumus/internal/quiz"
)

var csvHeader = []string{
	"Question Number", "Question", "Answer", "Type", "Difficulty",
	"Options", "Explanation", "Topic",
}

// WriteCSV writes one row per question. Options are pipe-joined into a
// single column so the file round-trips through spreadsheet tools.
func WriteCSV(w io.Writer, q *quiz.Quiz) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(csvHeader); err != nil {
		return fmt.Errorf("write csv header: %w", err)
	}
	for i, question := range q.Questions {
		row := []string{
			strconv.Itoa(i + 1),
			question.Question,
			question.Answer,
			string(question.Type),
			string(question.Difficulty),
			strings.Join(question.Options, " | "),
			question.Explanation,
			question.Topic,
		}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("write csv row %d: %w", i+1, err)
		}
	}
	cw.Flush()
	return cw.Error()
}

// WriteAnki writes the quiz as Anki-importable flashcards. The back of a
// multiple-choice card lists the options so the card stays self-contained.
func WriteAnki(w io.Writer, q *quiz.Quiz) error {
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"Front", "Back", "Tags"}); err != nil {
		return fmt.Errorf("write anki header: %w", err)
	}
	for i, question := range q.Questions {
		if err := cw.Write([]string{question.Question, ankiBack(question), ankiTags(question)}); err != nil {
			return fmt.Errorf("write anki row %d: %w", i+1, err)
		}
	}
	cw.Flush()
	return cw.Error()
}

func ankiBack(q quiz.Question) string {
	var b strings.Builder
	if q.Type == quiz.TypeMultipleChoice && len(q.Options) > 0 {
		fmt.Fprintf(&b, "Answer: %s\n\nOptions:\n", q.Answer)
		for i, option := range q.Options {
			fmt.Fprintf(&b, "%d. %s\n", i+1, option)
		}
	} else {
		fmt.Fprintf(&b, "Answer: %s", q.Answer)
	}
	if q.Explanation != "" {
		fmt.Fprintf(&b, "\n\nExplanation: %s", q.Explanation)
	}
	return b.String()
}

func ankiTags(q quiz.Question) string {
	tags := "quiz " + string(q.Difficulty)
	if q.Topic != "" {
		tags += " " + strings.ReplaceAll(q.Topic, " ", "_")
	}
	return tags
}
