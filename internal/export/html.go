package export

import (
	"fmt"
	"html/template"
	"io"
	"strings"
	"time"

	"github.com/vedantvaibhav/Lumus/internal/quiz"
)

// WriteHTML renders the quiz as a self-contained printable page with the
// answers highlighted.
func WriteHTML(w io.Writer, q *quiz.Quiz) error {
	data := struct {
		*quiz.Quiz
		GeneratedAt string
	}{q, time.Now().Format("2006-01-02 15:04:05")}

	if err := quizPage.Execute(w, data); err != nil {
		return fmt.Errorf("render html: %w", err)
	}
	return nil
}

var quizPage = template.Must(template.New("quiz").Funcs(template.FuncMap{
	"inc":    func(i int) int { return i + 1 },
	"letter": func(i int) string { return string(rune('A' + i)) },
	"upper":  func(s quiz.Difficulty) string { return strings.ToUpper(string(s)) },
}).Parse(`<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="UTF-8">
<meta name="viewport" content="width=device-width, initial-scale=1.0">
<title>{{.Title}}</title>
<style>
body { font-family: 'Segoe UI', Tahoma, Geneva, Verdana, sans-serif; max-width: 800px; margin: 0 auto; padding: 20px; background-color: #f5f5f5; }
.quiz-container { background: white; padding: 30px; border-radius: 10px; box-shadow: 0 2px 10px rgba(0,0,0,0.1); }
.quiz-header { text-align: center; margin-bottom: 30px; border-bottom: 2px solid #007bff; padding-bottom: 20px; }
.quiz-title { color: #333; margin: 0; font-size: 2em; }
.quiz-meta { color: #666; margin-top: 10px; }
.question { margin-bottom: 30px; padding: 20px; border: 1px solid #ddd; border-radius: 8px; background: #fafafa; }
.question-number { font-weight: bold; color: #007bff; margin-bottom: 10px; }
.question-text { font-size: 1.1em; margin-bottom: 15px; line-height: 1.5; }
.options { margin: 15px 0; }
.option { margin: 8px 0; padding: 8px; background: white; border-radius: 4px; border-left: 3px solid #007bff; }
.answer { background: #d4edda; border-left-color: #28a745; font-weight: bold; }
.explanation { margin-top: 15px; padding: 10px; background: #e7f3ff; border-radius: 4px; font-style: italic; }
.difficulty { display: inline-block; padding: 4px 8px; border-radius: 12px; font-size: 0.8em; font-weight: bold; margin-left: 10px; }
.difficulty.easy { background: #d4edda; color: #155724; }
.difficulty.medium { background: #fff3cd; color: #856404; }
.difficulty.hard { background: #f8d7da; color: #721c24; }
.topic { color: #666; font-size: 0.9em; margin-top: 5px; }
</style>
</head>
<body>
<div class="quiz-container">
<div class="quiz-header">
<h1 class="quiz-title">{{.Title}}</h1>
<div class="quiz-meta">
<p>Source: {{.Source}}</p>
<p>Total Questions: {{.TotalQuestions}}</p>
<p>Generated: {{.GeneratedAt}}</p>
</div>
</div>
{{range $i, $q := .Questions}}
<div class="question">
<div class="question-number">Question {{inc $i}}<span class="difficulty {{$q.Difficulty}}">{{upper $q.Difficulty}}</span></div>
<div class="question-text">{{$q.Question}}</div>
{{if $q.Options}}<div class="options">
{{range $j, $opt := $q.Options}}<div class="option{{if eq $opt $q.Answer}} answer{{end}}">{{letter $j}}. {{$opt}}</div>
{{end}}</div>
{{else}}<div class="option answer">Answer: {{$q.Answer}}</div>
{{end}}{{if $q.Explanation}}<div class="explanation">Explanation: {{$q.Explanation}}</div>
{{end}}{{if $q.Topic}}<div class="topic">Topic: {{$q.Topic}}</div>
{{end}}</div>
{{end}}
</div>
</body>
</html>
`))
