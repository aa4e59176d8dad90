package store

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vedantvaibhav/Lumus/internal/llm"
	"github.com/vedantvaibhav/Lumus/internal/quiz"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })
	return s
}

func sampleQuiz() *quiz.Quiz {
	q := &quiz.Quiz{
		Title:  "Photosynthesis Quiz",
		Source: "text input",
		Questions: []quiz.Question{
			{
				Question:   "What gas do plants absorb?",
				Answer:     "Carbon dioxide",
				Type:       quiz.TypeShortAnswer,
				Difficulty: quiz.DifficultyEasy,
				Topic:      "Biology",
			},
			{
				Question:   "Photosynthesis occurs in the mitochondria.",
				Answer:     "False",
				Type:       quiz.TypeTrueFalse,
				Difficulty: quiz.DifficultyMedium,
				Topic:      "Biology",
			},
		},
		Topics: []string{"Biology"},
	}
	q.Recompute()
	return q
}

func TestSaveAndGetQuiz(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	id, err := s.SaveQuiz(ctx, sampleQuiz(), quiz.SourceText)
	require.NoError(t, err)
	require.NotEmpty(t, id)

	got, err := s.GetQuiz(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, "Photosynthesis Quiz", got.Title)
	assert.Len(t, got.Questions, 2)
	assert.Equal(t, 2, got.TotalQuestions)
	assert.Equal(t, 1, got.DifficultyDistribution[quiz.DifficultyEasy])
}

func TestGetQuiz_NotFound(t *testing.T) {
	s := openTestStore(t)

	_, err := s.GetQuiz(context.Background(), "no-such-id")
	assert.ErrorIs(t, err, ErrQuizNotFound)
}

func TestListQuizzes(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		_, err := s.SaveQuiz(ctx, sampleQuiz(), quiz.SourceText)
		require.NoError(t, err)
	}

	list, err := s.ListQuizzes(ctx, 2)
	require.NoError(t, err)
	assert.Len(t, list, 2)
	assert.Equal(t, "Photosynthesis Quiz", list[0].Title)
	assert.Equal(t, 2, list[0].TotalQuestions)
}

func TestAppendAndListRequestEvents(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	require.NoError(t, s.AppendRequestEvent(ctx, llm.RequestEvent{
		Purpose:      "question-batch",
		Model:        "gemini-2.5-flash",
		InputTokens:  1200,
		OutputTokens: 800,
		LatencyMs:    950,
		Success:      true,
	}))
	require.NoError(t, s.AppendRequestEvent(ctx, llm.RequestEvent{
		Purpose:      "quiz-title",
		Model:        "gemini-2.5-flash",
		Success:      false,
		ErrorMessage: "rate limited",
	}))

	events, err := s.ListRequestEvents(ctx, 10)
	require.NoError(t, err)
	require.Len(t, events, 2)

	// Newest first.
	assert.Equal(t, "quiz-title", events[0].Purpose)
	assert.False(t, events[0].Success)
	assert.Equal(t, "rate limited", events[0].Error)
	assert.Equal(t, "question-batch", events[1].Purpose)
	assert.Equal(t, 1200, events[1].InputTokens)
}
