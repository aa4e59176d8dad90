// Package synth turns cleaned source text into quizzes by prompting a
// generation backend in batches and validating what comes back.
package synth

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/vedantvaibhav/Lumus/internal/llm"
	"github.com/vedantvaibhav/Lumus/internal/quiz"
)

// ErrNoQuestions is returned when every batch came back empty.
var ErrNoQuestions = errors.New("model produced no usable questions")

// Config bounds the synthesis loop. Zero values take the defaults.
type Config struct {
	// MaxSourceChars hard-truncates the source before prompting.
	MaxSourceChars int

	// BatchSize is the maximum questions requested per model call.
	BatchSize int

	// MaxEmptyBatches aborts the loop after this many consecutive
	// batches that yielded no valid questions.
	MaxEmptyBatches int

	BatchTokens      int
	BatchTemperature float64

	TitleTokens      int
	TitleTemperature float64

	TopicTokens      int
	TopicTemperature float64
}

// DefaultConfig returns the tuning used in production.
func DefaultConfig() Config {
	return Config{
		MaxSourceChars:   25000,
		BatchSize:        5,
		MaxEmptyBatches:  3,
		BatchTokens:      4000,
		BatchTemperature: 0.4,
		TitleTokens:      50,
		TitleTemperature: 0.5,
		TopicTokens:      200,
		TopicTemperature: 0.3,
	}
}

func (c *Config) applyDefaults() {
	d := DefaultConfig()
	if c.MaxSourceChars <= 0 {
		c.MaxSourceChars = d.MaxSourceChars
	}
	if c.BatchSize <= 0 {
		c.BatchSize = d.BatchSize
	}
	if c.MaxEmptyBatches <= 0 {
		c.MaxEmptyBatches = d.MaxEmptyBatches
	}
	if c.BatchTokens <= 0 {
		c.BatchTokens = d.BatchTokens
	}
	if c.BatchTemperature == 0 {
		c.BatchTemperature = d.BatchTemperature
	}
	if c.TitleTokens <= 0 {
		c.TitleTokens = d.TitleTokens
	}
	if c.TitleTemperature == 0 {
		c.TitleTemperature = d.TitleTemperature
	}
	if c.TopicTokens <= 0 {
		c.TopicTokens = d.TopicTokens
	}
	if c.TopicTemperature == 0 {
		c.TopicTemperature = d.TopicTemperature
	}
}

// Synthesizer generates quizzes from already-cleaned text.
type Synthesizer struct {
	provider llm.Provider
	cfg      Config
	log      *zap.Logger
}

// New returns a Synthesizer backed by the given provider.
func New(provider llm.Provider, cfg Config, log *zap.Logger) *Synthesizer {
	cfg.applyDefaults()
	if log == nil {
		log = zap.NewNop()
	}
	return &Synthesizer{provider: provider, cfg: cfg, log: log}
}

// Synthesize builds a quiz from text according to the request. The request
// must already be normalized. Individual malformed questions and failed
// batches are tolerated; only a run producing zero questions is an error.
func (s *Synthesizer) Synthesize(ctx context.Context, text string, req *quiz.GenerationRequest) (*quiz.Quiz, error) {
	text = truncate(text, s.cfg.MaxSourceChars)

	questions, err := s.generateQuestions(ctx, text, req)
	if err != nil {
		return nil, err
	}

	q := &quiz.Quiz{
		Title:     s.generateTitle(ctx, text, req),
		Source:    req.Source,
		Questions: questions,
		Topics:    s.extractTopics(ctx, text, questions),
	}
	q.Recompute()
	return q, nil
}

func (s *Synthesizer) generateQuestions(ctx context.Context, text string, req *quiz.GenerationRequest) ([]quiz.Question, error) {
	types := req.QuestionTypes
	if len(types) == 0 {
		types = []quiz.QuestionType{quiz.TypeMultipleChoice, quiz.TypeShortAnswer}
	}

	var questions []quiz.Question
	emptyStreak := 0

	for len(questions) < req.NumQuestions {
		size := req.NumQuestions - len(questions)
		if size > s.cfg.BatchSize {
			size = s.cfg.BatchSize
		}

		batch, err := s.generateBatch(ctx, text, size, types, req)
		if err != nil {
			if ctx.Err() != nil {
				return nil, ctx.Err()
			}
			s.log.Warn("question batch failed", zap.Error(err))
			batch = nil
		}

		if len(batch) == 0 {
			emptyStreak++
			if emptyStreak >= s.cfg.MaxEmptyBatches {
				s.log.Warn("aborting after consecutive empty batches",
					zap.Int("empty_batches", emptyStreak),
					zap.Int("accumulated", len(questions)))
				break
			}
			continue
		}
		emptyStreak = 0
		questions = append(questions, batch...)
	}

	if len(questions) == 0 {
		return nil, ErrNoQuestions
	}
	if len(questions) > req.NumQuestions {
		questions = questions[:req.NumQuestions]
	}
	return questions, nil
}

func (s *Synthesizer) generateBatch(ctx context.Context, text string, size int, types []quiz.QuestionType, req *quiz.GenerationRequest) ([]quiz.Question, error) {
	resp, err := s.provider.Generate(llm.WithPurpose(ctx, "question-batch"), llm.Request{
		System:      systemPrompt(types, req),
		Prompt:      batchPrompt(text, size),
		Schema:      questionBatchSchema(),
		MaxTokens:   s.cfg.BatchTokens,
		Temperature: s.cfg.BatchTemperature,
	})
	if err != nil {
		return nil, err
	}

	var envelope struct {
		Questions []json.RawMessage `json:"questions"`
	}
	if err := json.Unmarshal(stripFences(resp.Content), &envelope); err != nil {
		return nil, fmt.Errorf("parse question batch: %w", err)
	}

	var out []quiz.Question
	for _, raw := range envelope.Questions {
		q, err := parseQuestion(raw, types)
		if err != nil {
			s.log.Debug("dropping invalid question", zap.Error(err))
			continue
		}
		out = append(out, q)
	}
	return out, nil
}

func truncate(text string, max int) string {
	if len(text) <= max {
		return text
	}
	return head(text, max) + "..."
}
