package export

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vedantvaibhav/Lumus/internal/quiz"
)

func sampleQuiz() *quiz.Quiz {
	q := &quiz.Quiz{
		Title:  "Photosynthesis Basics",
		Source: "https://example.com/photosynthesis",
		Topics: []string{"Biology", "Plants"},
		Questions: []quiz.Question{
			{
				Question:    "What pigment absorbs light?",
				Answer:      "Chlorophyll",
				Type:        quiz.TypeMultipleChoice,
				Difficulty:  quiz.DifficultyEasy,
				Options:     []string{"Chlorophyll", "Keratin", "Melanin", "Hemoglobin"},
				Explanation: "Chlorophyll absorbs light energy.",
				Topic:       "Plant Biology",
			},
			{
				Question:   "Name the gas released by photosynthesis.",
				Answer:     "Oxygen",
				Type:       quiz.TypeShortAnswer,
				Difficulty: quiz.DifficultyMedium,
			},
		},
	}
	q.Recompute()
	return q
}

func TestParseFormat(t *testing.T) {
	f, err := ParseFormat(" JSON ")
	require.NoError(t, err)
	assert.Equal(t, FormatJSON, f)

	_, err = ParseFormat("xml")
	assert.Error(t, err)
}

func TestFormatExt(t *testing.T) {
	assert.Equal(t, ".json", FormatJSON.Ext())
	assert.Equal(t, ".csv", FormatCSV.Ext())
	assert.Equal(t, ".csv", FormatAnki.Ext())
	assert.Equal(t, ".html", FormatHTML.Ext())
}

func TestWriteJSON(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteJSON(&buf, sampleQuiz()))

	var doc map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &doc))

	assert.Equal(t, "Photosynthesis Basics", doc["title"])
	assert.Equal(t, float64(2), doc["total_questions"])
	assert.NotEmpty(t, doc["generated_at"])

	questions, ok := doc["questions"].([]any)
	require.True(t, ok)
	require.Len(t, questions, 2)

	first := questions[0].(map[string]any)
	assert.Equal(t, "multiple-choice", first["type"])
	assert.Len(t, first["options"], 4)

	// Short answers carry no options key at all.
	second := questions[1].(map[string]any)
	_, hasOptions := second["options"]
	assert.False(t, hasOptions)
}

func TestWriteCSV(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteCSV(&buf, sampleQuiz()))

	rows, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)
	require.Len(t, rows, 3)

	assert.Equal(t, csvHeader, rows[0])
	assert.Equal(t, "1", rows[1][0])
	assert.Equal(t, "Chlorophyll | Keratin | Melanin | Hemoglobin", rows[1][5])
	assert.Equal(t, "easy", rows[1][4])
	assert.Equal(t, "", rows[2][5])
	assert.Equal(t, "", rows[2][7])
}

func TestWriteAnki(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteAnki(&buf, sampleQuiz()))

	rows, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)
	require.Len(t, rows, 3)

	assert.Equal(t, []string{"Front", "Back", "Tags"}, rows[0])
	assert.Equal(t, "What pigment absorbs light?", rows[1][0])
	assert.Contains(t, rows[1][1], "Answer: Chlorophyll")
	assert.Contains(t, rows[1][1], "Options:\n1. Chlorophyll")
	assert.Contains(t, rows[1][1], "Explanation: Chlorophyll absorbs light energy.")
	assert.Equal(t, "quiz easy Plant_Biology", rows[1][2])

	assert.Equal(t, "Answer: Oxygen", rows[2][1])
	assert.Equal(t, "quiz medium", rows[2][2])
}

func TestWriteHTML(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteHTML(&buf, sampleQuiz()))
	page := buf.String()

	assert.Contains(t, page, "<title>Photosynthesis Basics</title>")
	assert.Contains(t, page, "Question 1")
	assert.Contains(t, page, `class="option answer">A. Chlorophyll</div>`)
	assert.Contains(t, page, `class="option">B. Keratin</div>`)
	assert.Contains(t, page, "Answer: Oxygen")
	assert.Contains(t, page, `<span class="difficulty easy">EASY</span>`)
}

func TestWriteHTML_EscapesContent(t *testing.T) {
	q := sampleQuiz()
	q.Questions[1].Question = "Is <script>alert(1)</script> dangerous?"

	var buf bytes.Buffer
	require.NoError(t, WriteHTML(&buf, q))
	assert.NotContains(t, buf.String(), "<script>alert(1)</script>")
	assert.Contains(t, buf.String(), "&lt;script&gt;")
}

func TestWrite_Dispatch(t *testing.T) {
	for _, f := range Formats {
		var buf bytes.Buffer
		require.NoError(t, Write(&buf, sampleQuiz(), f))
		assert.NotZero(t, buf.Len(), string(f))
	}
}

func TestWriteSummary(t *testing.T) {
	var buf bytes.Buffer
	WriteSummary(&buf, sampleQuiz())
	out := buf.String()

	assert.Contains(t, out, "QUIZ SUMMARY: Photosynthesis Basics")
	assert.Contains(t, out, "Topics: Biology, Plants")
	assert.Contains(t, out, "- easy: 1 questions")
	assert.Contains(t, out, "* A. Chlorophyll")
	assert.True(t, strings.Contains(out, "Question 2 (MEDIUM):"))
}
