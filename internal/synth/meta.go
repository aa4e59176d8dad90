package synth

import (
	"context"
	"fmt"
	"strings"
	"unicode/utf8"

	"go.uber.org/zap"

	"github.com/vedantvaibhav/Lumus/internal/llm"
	"github.com/vedantvaibhav/Lumus/internal/quiz"
)

const (
	titleSampleChars = 500
	topicSampleChars = 1000
	maxTopics        = 5
)

// generateTitle asks for a short quiz title over the opening of the text.
// Any failure falls back to a generic title naming the source kind.
func (s *Synthesizer) generateTitle(ctx context.Context, text string, req *quiz.GenerationRequest) string {
	resp, err := s.provider.Generate(llm.WithPurpose(ctx, "quiz-title"), llm.Request{
		Prompt:      titlePrompt(head(text, titleSampleChars)),
		MaxTokens:   s.cfg.TitleTokens,
		Temperature: s.cfg.TitleTemperature,
	})
	if err != nil {
		s.log.Debug("title generation failed", zap.Error(err))
		return fallbackTitle(req.SourceKind)
	}
	if title := sanitizeTitle(resp.Text()); title != "" {
		return title
	}
	return fallbackTitle(req.SourceKind)
}

func fallbackTitle(kind quiz.SourceKind) string {
	return fmt.Sprintf("Quiz on %s Content", kind)
}

// sanitizeTitle collapses the completion to one clean line.
func sanitizeTitle(title string) string {
	title = strings.TrimSpace(title)
	if i := strings.IndexByte(title, '\n'); i >= 0 {
		title = title[:i]
	}
	title = strings.Trim(title, `"'`)
	title = strings.TrimSuffix(title, "...")
	return strings.TrimSpace(title)
}

// extractTopics collects the topic tags of the generated questions. When
// the questions carry none it asks the model, and failing that settles on
// a generic label. At most maxTopics are kept.
func (s *Synthesizer) extractTopics(ctx context.Context, text string, questions []quiz.Question) []string {
	seen := make(map[string]struct{})
	var topics []string
	for _, q := range questions {
		if q.Topic == "" {
			continue
		}
		if _, ok := seen[q.Topic]; ok {
			continue
		}
		seen[q.Topic] = struct{}{}
		topics = append(topics, q.Topic)
	}

	if len(topics) == 0 {
		topics = s.askTopics(ctx, text)
	}
	if len(topics) == 0 {
		topics = []string{"General Knowledge"}
	}
	if len(topics) > maxTopics {
		topics = topics[:maxTopics]
	}
	return topics
}

func (s *Synthesizer) askTopics(ctx context.Context, text string) []string {
	resp, err := s.provider.Generate(llm.WithPurpose(ctx, "topic-extract"), llm.Request{
		Prompt:      topicsPrompt(head(text, topicSampleChars)),
		MaxTokens:   s.cfg.TopicTokens,
		Temperature: s.cfg.TopicTemperature,
	})
	if err != nil {
		s.log.Debug("topic extraction failed", zap.Error(err))
		return nil
	}

	var topics []string
	for _, line := range strings.Split(resp.Text(), "\n") {
		line = strings.TrimSpace(strings.TrimLeft(line, "-*• \t"))
		if line != "" {
			topics = append(topics, line)
		}
	}
	return topics
}

// head returns the leading n bytes of text, backing up so the cut never
// splits a UTF-8 sequence.
func head(text string, n int) string {
	if len(text) <= n {
		return text
	}
	for n > 0 && !utf8.RuneStart(text[n]) {
		n--
	}
	return text[:n]
}
