// Package orchestrator coordinates the reader, the synthesizer and the
// history store into one quiz-generation pipeline.
package orchestrator

import (
	"context"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/vedantvaibhav/Lumus/internal/quiz"
	"github.com/vedantvaibhav/Lumus/internal/reader"
)

// minContentChars is the smallest normalized source worth quizzing on.
const minContentChars = 50

const errInsufficientContent = "Insufficient content to generate meaningful quiz questions"

// Synthesizer is the slice of synth.Synthesizer the orchestrator needs.
type Synthesizer interface {
	Synthesize(ctx context.Context, text string, req *quiz.GenerationRequest) (*quiz.Quiz, error)
}

// History persists successful runs. Optional.
type History interface {
	SaveQuiz(ctx context.Context, q *quiz.Quiz, kind quiz.SourceKind) (string, error)
}

// Orchestrator runs the full source-to-quiz pipeline.
type Orchestrator struct {
	reader  *reader.Reader
	synth   Synthesizer
	history History
	log     *zap.Logger
}

// New wires an Orchestrator. history may be nil to skip persistence.
func New(r *reader.Reader, s Synthesizer, history History, log *zap.Logger) *Orchestrator {
	if log == nil {
		log = zap.NewNop()
	}
	return &Orchestrator{reader: r, synth: s, history: history, log: log}
}

// GenerateQuiz reads the source, synthesizes a quiz and records it. It
// always returns a result rather than an error: failures are folded into
// the result so callers serialize one shape.
func (o *Orchestrator) GenerateQuiz(ctx context.Context, req quiz.GenerationRequest) quiz.GenerationResult {
	start := time.Now()

	if err := req.Normalize(); err != nil {
		return quiz.Failure(err.Error(), time.Since(start), nil)
	}
	if req.SourceKind == "" {
		req.SourceKind = reader.DetectKind(req.Source)
	}

	o.log.Info("reading source",
		zap.String("source_type", string(req.SourceKind)))

	content, err := o.reader.Read(req.Source, req.SourceKind)
	if err != nil {
		return quiz.Failure(fmt.Sprintf("Failed to read source: %s", err),
			time.Since(start), nil)
	}

	if len(strings.TrimSpace(content.Text)) < minContentChars {
		return quiz.Failure(errInsufficientContent, time.Since(start), content.Provenance)
	}

	o.log.Info("generating questions",
		zap.Int("content_chars", len(content.Text)),
		zap.Int("num_questions", req.NumQuestions))

	q, err := o.synthesize(ctx, content.Text, &req)
	if err != nil {
		return quiz.Failure(fmt.Sprintf("Failed to generate quiz: %s", err),
			time.Since(start), content.Provenance)
	}

	if o.history != nil {
		if id, err := o.history.SaveQuiz(ctx, q, req.SourceKind); err != nil {
			o.log.Warn("saving quiz failed", zap.Error(err))
		} else {
			o.log.Debug("quiz saved", zap.String("id", id))
		}
	}

	elapsed := time.Since(start)
	o.log.Info("quiz generated",
		zap.String("title", q.Title),
		zap.Int("questions", q.TotalQuestions),
		zap.Duration("elapsed", elapsed))

	return quiz.Successful(q, elapsed, content.Provenance)
}

// synthesize shields the pipeline from panics in the synthesis path so a
// single bad run cannot take down a server handler.
func (o *Orchestrator) synthesize(ctx context.Context, text string, req *quiz.GenerationRequest) (q *quiz.Quiz, err error) {
	defer func() {
		if r := recover(); r != nil {
			o.log.Error("synthesis panicked", zap.Any("panic", r))
			q, err = nil, fmt.Errorf("unexpected error: %v", r)
		}
	}()
	return o.synth.Synthesize(ctx, text, req)
}
