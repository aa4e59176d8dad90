package reader

import (
	"io"
	"os"
	"strings"

	"github.com/ledongthuc/pdf"
	"go.uber.org/zap"

	"github.com/vedantvaibhav/Lumus/internal/quiz"
)

func (r *Reader) readPDF(path string) (*Result, error) {
	if _, err := os.Stat(path); err != nil {
		return nil, &ErrUnreadablePDF{Path: path, Err: err}
	}

	text, err := extractPDFByRow(path)
	if err != nil || strings.TrimSpace(text) == "" {
		// Layout-aware extraction fails on some generators; fall back to
		// the plain text stream.
		r.log.Debug("row extraction failed, trying plain text", zap.String("path", path), zap.Error(err))
		text, err = extractPDFPlainText(path)
		if err != nil {
			return nil, &ErrUnreadablePDF{Path: path, Err: err}
		}
	}

	cleaned := Normalize(text)
	title := stem(path)
	return &Result{
		Text: cleaned,
		Metadata: Metadata{
			Title:         title,
			ContentLength: len(cleaned),
			Sentences:     ExtractSentences(cleaned),
		},
		Provenance: map[string]string{
			"type":      string(quiz.SourcePDF),
			"file_path": path,
			"title":     title,
		},
	}, nil
}

// extractPDFByRow walks the document page by page, reading positioned text
// rows. Preserves reading order better than the raw content stream.
func extractPDFByRow(path string) (string, error) {
	f, doc, err := pdf.Open(path)
	if err != nil {
		return "", err
	}
	defer f.Close()

	var b strings.Builder
	for i := 1; i <= doc.NumPage(); i++ {
		page := doc.Page(i)
		if page.V.IsNull() {
			continue
		}
		rows, err := page.GetTextByRow()
		if err != nil {
			return "", err
		}
		for _, row := range rows {
			for _, word := range row.Content {
				b.WriteString(word.S)
				b.WriteString(" ")
			}
		}
		b.WriteString("\n")
	}
	return b.String(), nil
}

func extractPDFPlainText(path string) (string, error) {
	f, doc, err := pdf.Open(path)
	if err != nil {
		return "", err
	}
	defer f.Close()

	plain, err := doc.GetPlainText()
	if err != nil {
		return "", err
	}
	var b strings.Builder
	if _, err := io.Copy(&b, plain); err != nil {
		return "", err
	}
	return b.String(), nil
}
