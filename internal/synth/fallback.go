package synth

import (
	"fmt"

	"github.com/vedantvaibhav/Lumus/internal/quiz"
)

// FallbackQuiz is the deterministic quiz served when no reference material
// could be gathered for a topic. It is intentionally generic.
func FallbackQuiz(topic string) *quiz.Quiz {
	q := &quiz.Quiz{
		Title:  topic + " Quiz",
		Source: topic,
		Topics: []string{topic},
		Questions: []quiz.Question{
			{
				Question: fmt.Sprintf("What is %s?", topic),
				Type:     quiz.TypeMultipleChoice,
				Options: []string{
					fmt.Sprintf("A field related to %s", topic),
					"A type of technology",
					"A historical event",
					"A scientific concept",
				},
				Answer:      fmt.Sprintf("A field related to %s", topic),
				Explanation: fmt.Sprintf("This is a general question about %s.", topic),
				Difficulty:  quiz.DifficultyEasy,
				Topic:       topic,
			},
			{
				Question:    fmt.Sprintf("True or False: %s is an important subject.", topic),
				Type:        quiz.TypeTrueFalse,
				Answer:      "True",
				Explanation: fmt.Sprintf("%s is indeed an important subject worth studying.", topic),
				Difficulty:  quiz.DifficultyEasy,
				Topic:       topic,
			},
			{
				Question: fmt.Sprintf("Which best describes %s?", topic),
				Type:     quiz.TypeMultipleChoice,
				Options: []string{
					"A complex subject",
					"A simple concept",
					"A practical skill",
					"An abstract idea",
				},
				Answer:      "A complex subject",
				Explanation: fmt.Sprintf("%s typically involves multiple aspects and concepts.", topic),
				Difficulty:  quiz.DifficultyMedium,
				Topic:       topic,
			},
			{
				Question:    fmt.Sprintf("True or False: %s requires specialized knowledge.", topic),
				Type:        quiz.TypeTrueFalse,
				Answer:      "True",
				Explanation: "Most topics require some level of specialized knowledge to understand fully.",
				Difficulty:  quiz.DifficultyEasy,
				Topic:       topic,
			},
			{
				Question: fmt.Sprintf("What is the main focus of %s?", topic),
				Type:     quiz.TypeMultipleChoice,
				Options: []string{
					"Understanding core concepts",
					"Memorizing facts",
					"Practical application",
					"All of the above",
				},
				Answer:      "All of the above",
				Explanation: fmt.Sprintf("%s typically involves understanding, memorization, and application.", topic),
				Difficulty:  quiz.DifficultyMedium,
				Topic:       topic,
			},
		},
	}
	q.Recompute()
	return q
}
