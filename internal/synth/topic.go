package synth

import (
	"context"
	"encoding/json"
	"fmt"

	"go.uber.org/zap"

	"github.com/vedantvaibhav/Lumus/internal/llm"
	"github.com/vedantvaibhav/Lumus/internal/quiz"
)

const (
	topicQuizTokens      = 6000
	topicQuizTemperature = 0.4
)

// topicQuestionTypes restricts topic quizzes to selectable answers; short
// answers make no sense without source text to grade against.
var topicQuestionTypes = []quiz.QuestionType{quiz.TypeMultipleChoice, quiz.TypeTrueFalse}

// TopicSynthesizer builds a quiz from a bare topic name: it gathers public
// reference material about the topic, then shapes it into questions in a
// single model call. When neither gathering nor generation produces
// anything it falls back to a deterministic templated quiz.
type TopicSynthesizer struct {
	provider llm.Provider
	gatherer *Gatherer
	log      *zap.Logger
}

// NewTopicSynthesizer wires a TopicSynthesizer. A nil gatherer gets the
// default public-endpoint one.
func NewTopicSynthesizer(provider llm.Provider, gatherer *Gatherer, log *zap.Logger) *TopicSynthesizer {
	if log == nil {
		log = zap.NewNop()
	}
	if gatherer == nil {
		gatherer = NewGatherer(log)
	}
	return &TopicSynthesizer{provider: provider, gatherer: gatherer, log: log}
}

// Synthesize generates a quiz about the topic. It never fails outright:
// every error path degrades to the templated fallback quiz.
func (t *TopicSynthesizer) Synthesize(ctx context.Context, topic string, numQuestions int) *quiz.Quiz {
	if numQuestions <= 0 {
		numQuestions = quiz.DefaultQuestions
	}

	data := t.gatherer.Gather(ctx, topic)
	if data == nil {
		t.log.Warn("no reference material found, using fallback quiz", zap.String("topic", topic))
		return FallbackQuiz(topic)
	}
	t.log.Info("gathered topic material",
		zap.String("topic", topic),
		zap.Int("sources", len(data.Sources)),
		zap.Int("chars", len(data.Content)))

	q, err := t.generate(ctx, data, numQuestions)
	if err != nil {
		t.log.Warn("topic quiz generation failed, using fallback quiz",
			zap.String("topic", topic), zap.Error(err))
		return FallbackQuiz(topic)
	}
	return q
}

func (t *TopicSynthesizer) generate(ctx context.Context, data *TopicData, numQuestions int) (*quiz.Quiz, error) {
	resp, err := t.provider.Generate(llm.WithPurpose(ctx, "topic-quiz"), llm.Request{
		Prompt:      topicQuizPrompt(data, numQuestions),
		Schema:      questionBatchSchema(),
		MaxTokens:   topicQuizTokens,
		Temperature: topicQuizTemperature,
	})
	if err != nil {
		return nil, err
	}

	var envelope struct {
		Title     string            `json:"title"`
		Questions []json.RawMessage `json:"questions"`
	}
	if err := json.Unmarshal(stripFences(resp.Content), &envelope); err != nil {
		return nil, fmt.Errorf("parse topic quiz: %w", err)
	}

	var questions []quiz.Question
	for _, raw := range envelope.Questions {
		parsed, err := parseQuestion(raw, topicQuestionTypes)
		if err != nil {
			t.log.Debug("dropping invalid question", zap.Error(err))
			continue
		}
		questions = append(questions, parsed)
	}
	if len(questions) == 0 {
		return nil, ErrNoQuestions
	}
	if len(questions) > numQuestions {
		questions = questions[:numQuestions]
	}

	title := sanitizeTitle(envelope.Title)
	if title == "" {
		title = data.Topic + " Quiz"
	}
	q := &quiz.Quiz{
		Title:     title,
		Source:    data.Topic,
		Questions: questions,
		Topics:    []string{data.Topic},
	}
	q.Recompute()
	return q, nil
}

func topicQuizPrompt(data *TopicData, numQuestions int) string {
	return fmt.Sprintf(`You are an expert educational quiz generator with advanced pedagogical knowledge. Create a high-quality quiz about "%s" using the following information:

%s

STRICT QUALITY REQUIREMENTS:
1. Generate exactly %d questions
2. Use ONLY multiple-choice (4 options) and true-false questions
3. NO short answer questions that require typing
4. Mix question types: 60%% multiple-choice, 40%% true-false
5. Include easy, medium, and hard questions with proper distribution
6. Each question must have a clear, educational explanation
7. Questions MUST test understanding, not just memorization
8. Focus on IMPORTANT concepts and key information
9. Make questions challenging but fair - they should make students think
10. Avoid trivial details or overly specific information
11. Each question should teach something valuable

Return a JSON object with "title" and a "questions" array. Each question has
"question", "answer", "type" ("multiple-choice" or "true-false"),
"difficulty" ("easy", "medium" or "hard"),
"options" (exactly 4, only for multiple-choice) and "explanation".

Make sure all questions are relevant to the topic and based on the provided information.`,
		data.Topic, data.Content, numQuestions)
}
