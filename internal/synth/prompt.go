package synth

import (
	"fmt"
	"strings"

	"github.com/vedantvaibhav/Lumus/internal/quiz"
)

const baseSystemPrompt = `You are an expert educational quiz generator with advanced pedagogical knowledge. Your task is to create high-quality quiz questions that test understanding, critical thinking, and knowledge retention.

STRICT QUALITY GUIDELINES:
1. Questions MUST be clear, unambiguous, and educationally valuable
2. Focus on IMPORTANT concepts, key facts, and critical information that students should know
3. AVOID trivial details, obscure facts, or overly specific information
4. Create questions that test UNDERSTANDING and APPLICATION, not just memorization
5. Ensure answers are accurate, well-explained, and educational
6. Make questions challenging but fair - they should make students think
7. Include questions that test different cognitive levels (knowledge, comprehension, application, analysis)
8. Each question should have clear learning objectives

Question Types:
- multiple-choice: Provide 4 options with ONE clearly correct answer and 3 plausible distractors
- short: Open-ended questions requiring brief but thoughtful answers
- true-false: Simple true/false statements that test understanding of key concepts

Difficulty Levels:
- easy: Basic facts, definitions, and fundamental concepts
- medium: Application of concepts, understanding relationships, problem-solving
- hard: Analysis, synthesis, critical thinking, and complex reasoning

QUALITY STANDARDS:
- Each question should teach something valuable
- Explanations should be educational and help students learn
- Avoid questions that are too easy or too obscure
- Ensure questions are relevant to the topic and content provided
- Make questions engaging and thought-provoking`

func systemPrompt(types []quiz.QuestionType, req *quiz.GenerationRequest) string {
	var b strings.Builder
	b.WriteString(baseSystemPrompt)

	names := make([]string, len(types))
	for i, t := range types {
		names[i] = string(t)
	}
	fmt.Fprintf(&b, "\n\nOnly generate questions of these types: %s", strings.Join(names, ", "))

	if req.DifficultyPreference != "" {
		fmt.Fprintf(&b, "\n\nPreferred difficulty level: %s", req.DifficultyPreference)
	}
	if len(req.Topics) > 0 {
		fmt.Fprintf(&b, "\n\nFocus on these topics: %s", strings.Join(req.Topics, ", "))
	}
	return b.String()
}

func batchPrompt(text string, size int) string {
	return fmt.Sprintf(`Generate %d quiz questions from the following text:

%s

Focus on the most important concepts and key information. Make sure questions are:
- Clear and unambiguous
- Educational and meaningful
- Appropriate for the difficulty level
- Cover different aspects of the content

Return the questions as a JSON object with a "questions" array. Each question has:
"question", "answer", "type" ("multiple-choice", "short" or "true-false"),
"difficulty" ("easy", "medium" or "hard"),
"options" (exactly 4, only for multiple-choice),
"explanation" and "topic".`, size, text)
}

func titlePrompt(text string) string {
	return fmt.Sprintf(`Based on the following text content, generate a concise and descriptive title for a quiz:

%s...

The title should be:
- Clear and descriptive
- 5-10 words maximum
- Professional and educational
- Related to the main topic

Return only the title, no additional text.`, text)
}

func topicsPrompt(text string) string {
	return fmt.Sprintf(`Extract the main topics or subject areas from this text. Return 3-5 key topics:

%s...

Return topics as a simple list, one per line.`, text)
}
