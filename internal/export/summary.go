package export

import (
	"fmt"
	"io"
	"strings"

	"github.com/vedantvaibhav/Lumus/internal/quiz"
)

// WriteSummary prints a human-readable rendition of the quiz, used by the
// CLI when no export format is requested.
func WriteSummary(w io.Writer, q *quiz.Quiz) {
	rule := strings.Repeat("=", 60)

	fmt.Fprintf(w, "\n%s\n", rule)
	fmt.Fprintf(w, "QUIZ SUMMARY: %s\n", q.Title)
	fmt.Fprintf(w, "%s\n", rule)
	fmt.Fprintf(w, "Source: %s\n", q.Source)
	fmt.Fprintf(w, "Total Questions: %d\n", q.TotalQuestions)
	fmt.Fprintf(w, "Topics: %s\n", strings.Join(q.Topics, ", "))
	fmt.Fprintln(w, "Difficulty Distribution:")
	for _, d := range quiz.Difficulties {
		fmt.Fprintf(w, "  - %s: %d questions\n", d, q.DifficultyDistribution[d])
	}
	fmt.Fprintf(w, "%s\n\n", rule)

	for i, question := range q.Questions {
		fmt.Fprintf(w, "Question %d (%s):\n", i+1, strings.ToUpper(string(question.Difficulty)))
		fmt.Fprintf(w, "Q: %s\n", question.Question)

		if len(question.Options) > 0 {
			fmt.Fprintln(w, "Options:")
			for j, option := range question.Options {
				marker := " "
				if option == question.Answer {
					marker = "*"
				}
				fmt.Fprintf(w, "  %s %c. %s\n", marker, 'A'+j, option)
			}
		} else {
			fmt.Fprintf(w, "A: %s\n", question.Answer)
		}

		if question.Explanation != "" {
			fmt.Fprintf(w, "Explanation: %s\n", question.Explanation)
		}
		if question.Topic != "" {
			fmt.Fprintf(w, "Topic: %s\n", question.Topic)
		}
		fmt.Fprintf(w, "%s\n", strings.Repeat("-", 40))
	}
}
