package synth

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vedantvaibhav/Lumus/internal/llm"
	"github.com/vedantvaibhav/Lumus/internal/quiz"
)

// batchJSON builds a valid question-batch envelope with n short questions.
func batchJSON(t *testing.T, n int) json.RawMessage {
	t.Helper()
	items := make([]map[string]any, n)
	for i := range items {
		items[i] = map[string]any{
			"question":    fmt.Sprintf("What is concept %d?", i),
			"answer":      fmt.Sprintf("Answer %d", i),
			"type":        "short",
			"difficulty":  "medium",
			"explanation": "Because.",
			"topic":       "Biology",
		}
	}
	raw, err := json.Marshal(map[string]any{"questions": items})
	require.NoError(t, err)
	return raw
}

func newTestSynthesizer(responses ...llm.MockResponse) (*Synthesizer, *llm.MockProvider) {
	mock := llm.NewMockProvider(responses...)
	return New(mock, Config{}, nil), mock
}

func testRequest(n int) *quiz.GenerationRequest {
	return &quiz.GenerationRequest{
		Source:       "some text",
		SourceKind:   quiz.SourceText,
		NumQuestions: n,
	}
}

func TestSynthesize_BatchesRequests(t *testing.T) {
	s, mock := newTestSynthesizer(
		llm.MockResponse{Content: batchJSON(t, 5)},
		llm.MockResponse{Content: batchJSON(t, 2)},
		llm.MockResponse{Content: json.RawMessage(`Key Concepts in Biology`)},
	)

	q, err := s.Synthesize(context.Background(), "Cells are the basic unit of life.", testRequest(7))
	require.NoError(t, err)

	assert.Len(t, q.Questions, 7)
	assert.Equal(t, 7, q.TotalQuestions)
	assert.Equal(t, "Key Concepts in Biology", q.Title)
	assert.Equal(t, []string{"Biology"}, q.Topics)

	// Two question batches plus one title call; topics came from the
	// question tags so no extra call was made.
	require.Equal(t, 3, mock.CallCount())
	assert.Contains(t, mock.Calls[0].Prompt, "Generate 5 quiz questions")
	assert.Contains(t, mock.Calls[1].Prompt, "Generate 2 quiz questions")
}

func TestSynthesize_TruncatesOverfullBatches(t *testing.T) {
	// Backend ignores the requested size and returns five per batch; the
	// surplus from the second batch is discarded.
	s, _ := newTestSynthesizer(
		llm.MockResponse{Content: batchJSON(t, 5)},
		llm.MockResponse{Content: batchJSON(t, 5)},
		llm.MockResponse{Content: json.RawMessage(`Title`)},
	)

	q, err := s.Synthesize(context.Background(), "text", testRequest(7))
	require.NoError(t, err)
	assert.Len(t, q.Questions, 7)
	assert.Equal(t, 7, q.TotalQuestions)
}

func TestSynthesize_DropsInvalidQuestions(t *testing.T) {
	// One well-formed item and three broken ones in a single batch.
	batch := `{"questions": [
		{"question": "Valid?", "answer": "Yes", "type": "short", "difficulty": "easy"},
		{"question": "No answer", "type": "short", "difficulty": "easy"},
		{"question": "Bad MC", "answer": "X", "type": "multiple-choice", "difficulty": "easy", "options": ["A", "B"]},
		{"question": "Bad difficulty", "answer": "Y", "type": "short", "difficulty": "impossible"}
	]}`
	s, _ := newTestSynthesizer(
		llm.MockResponse{Content: json.RawMessage(batch)},
		llm.MockResponse{Content: json.RawMessage(`Title`)},
	)

	q, err := s.Synthesize(context.Background(), "text", testRequest(1))
	require.NoError(t, err)
	require.Len(t, q.Questions, 1)
	assert.Equal(t, "Valid?", q.Questions[0].Question)
}

func TestSynthesize_RejectsAnswerOutsideOptions(t *testing.T) {
	batch := `{"questions": [
		{"question": "Pick one", "answer": "E", "type": "multiple-choice", "difficulty": "easy", "options": ["A", "B", "C", "D"]}
	]}`
	s, _ := newTestSynthesizer(llm.MockResponse{Content: json.RawMessage(batch)})

	_, err := s.Synthesize(context.Background(), "text", testRequest(1))
	assert.ErrorIs(t, err, ErrNoQuestions)
}

func TestSynthesize_StopsAfterConsecutiveEmptyBatches(t *testing.T) {
	s, mock := newTestSynthesizer(
		llm.MockResponse{Content: json.RawMessage(`{"questions": []}`)},
		llm.MockResponse{Content: json.RawMessage(`not even json`)},
		llm.MockResponse{Content: json.RawMessage(`{"questions": []}`)},
	)

	_, err := s.Synthesize(context.Background(), "text", testRequest(10))
	assert.ErrorIs(t, err, ErrNoQuestions)
	assert.Equal(t, 3, mock.CallCount())
}

func TestSynthesize_EmptyStreakResets(t *testing.T) {
	s, _ := newTestSynthesizer(
		llm.MockResponse{Content: json.RawMessage(`{"questions": []}`)},
		llm.MockResponse{Content: json.RawMessage(`{"questions": []}`)},
		llm.MockResponse{Content: batchJSON(t, 2)},
		llm.MockResponse{Content: json.RawMessage(`{"questions": []}`)},
		llm.MockResponse{Content: json.RawMessage(`{"questions": []}`)},
		llm.MockResponse{Content: json.RawMessage(`{"questions": []}`)},
		llm.MockResponse{Content: json.RawMessage(`Title`)},
	)

	// The streak resets on the productive batch, so the loop survives two
	// empties twice and still returns what it accumulated.
	q, err := s.Synthesize(context.Background(), "text", testRequest(10))
	require.NoError(t, err)
	assert.Len(t, q.Questions, 2)
}

func TestSynthesize_TitleFallback(t *testing.T) {
	s, _ := newTestSynthesizer(
		llm.MockResponse{Content: batchJSON(t, 1)},
		llm.MockResponse{Err: &llm.ErrRateLimit{}},
	)

	q, err := s.Synthesize(context.Background(), "text", testRequest(1))
	require.NoError(t, err)
	assert.Equal(t, "Quiz on text Content", q.Title)
}

func TestSynthesize_TitleFallbackWhenSanitizedEmpty(t *testing.T) {
	// A completion that sanitizes away entirely is as useless as a failed
	// call and takes the same fallback.
	s, _ := newTestSynthesizer(
		llm.MockResponse{Content: batchJSON(t, 1)},
		llm.MockResponse{Content: json.RawMessage(`..."`)},
	)

	q, err := s.Synthesize(context.Background(), "text", testRequest(1))
	require.NoError(t, err)
	assert.Equal(t, "Quiz on text Content", q.Title)
}

func TestSynthesize_TopicsFallbackToModel(t *testing.T) {
	batch := `{"questions": [
		{"question": "Q", "answer": "A", "type": "short", "difficulty": "easy"}
	]}`
	s, _ := newTestSynthesizer(
		llm.MockResponse{Content: json.RawMessage(batch)},
		llm.MockResponse{Content: json.RawMessage(`A Title`)},
		llm.MockResponse{Content: json.RawMessage("- Photosynthesis\n- Cell Biology\n\n- Energy")},
	)

	q, err := s.Synthesize(context.Background(), "text", testRequest(1))
	require.NoError(t, err)
	assert.Equal(t, []string{"Photosynthesis", "Cell Biology", "Energy"}, q.Topics)
}

func TestSynthesize_TopicsGenericFallback(t *testing.T) {
	batch := `{"questions": [
		{"question": "Q", "answer": "A", "type": "short", "difficulty": "easy"}
	]}`
	s, _ := newTestSynthesizer(
		llm.MockResponse{Content: json.RawMessage(batch)},
		llm.MockResponse{Content: json.RawMessage(`A Title`)},
		llm.MockResponse{Err: &llm.ErrProviderUnavailable{}},
	)

	q, err := s.Synthesize(context.Background(), "text", testRequest(1))
	require.NoError(t, err)
	assert.Equal(t, []string{"General Knowledge"}, q.Topics)
}

func TestSynthesize_DistributionZeroFilled(t *testing.T) {
	s, _ := newTestSynthesizer(
		llm.MockResponse{Content: batchJSON(t, 2)},
		llm.MockResponse{Content: json.RawMessage(`Title`)},
	)

	q, err := s.Synthesize(context.Background(), "text", testRequest(2))
	require.NoError(t, err)
	assert.Equal(t, 0, q.DifficultyDistribution[quiz.DifficultyEasy])
	assert.Equal(t, 2, q.DifficultyDistribution[quiz.DifficultyMedium])
	assert.Equal(t, 0, q.DifficultyDistribution[quiz.DifficultyHard])
}

func TestSynthesize_TruncatesSource(t *testing.T) {
	long := strings.Repeat("a", 30000)
	s, mock := newTestSynthesizer(
		llm.MockResponse{Content: batchJSON(t, 1)},
		llm.MockResponse{Content: json.RawMessage(`Title`)},
	)

	_, err := s.Synthesize(context.Background(), long, testRequest(1))
	require.NoError(t, err)
	assert.NotContains(t, mock.Calls[0].Prompt, strings.Repeat("a", 25001))
	assert.Contains(t, mock.Calls[0].Prompt, strings.Repeat("a", 25000)+"...")
}

func TestSynthesize_TruncationRespectsRuneBoundaries(t *testing.T) {
	// Three-byte runes against the 25000 and 500 byte limits: both fall
	// mid-rune, and the cut must back up rather than emit broken UTF-8.
	long := strings.Repeat("界", 10000)
	s, mock := newTestSynthesizer(
		llm.MockResponse{Content: batchJSON(t, 1)},
		llm.MockResponse{Content: json.RawMessage(`Title`)},
	)

	_, err := s.Synthesize(context.Background(), long, testRequest(1))
	require.NoError(t, err)
	assert.True(t, utf8.ValidString(mock.Calls[0].Prompt))
	assert.True(t, utf8.ValidString(mock.Calls[1].Prompt))
}

func TestSanitizeTitle(t *testing.T) {
	assert.Equal(t, "Ocean Currents", sanitizeTitle("\"Ocean Currents\"\n"))
	assert.Equal(t, "Ocean Currents", sanitizeTitle("Ocean Currents...\nSecond line"))
	assert.Equal(t, "", sanitizeTitle("  "))
}

func TestStripFences(t *testing.T) {
	fenced := "```json\n{\"questions\": []}\n```"
	assert.JSONEq(t, `{"questions": []}`, string(stripFences([]byte(fenced))))
	assert.Equal(t, `{"a":1}`, string(stripFences([]byte(`{"a":1}`))))
}
