// Package export serializes quizzes into shareable formats: JSON, CSV,
// HTML and Anki-importable flashcards.
package export

import (
	"fmt"
	"io"
	"strings"

	"github.com/vedantvaibhav/Lumus/internal/quiz"
)

// Format names a supported export format.
type Format string

const (
	FormatJSON Format = "json"
	FormatCSV  Format = "csv"
	FormatHTML Format = "html"
	FormatAnki Format = "anki"
)

// Formats lists every supported format.
var Formats = []Format{FormatJSON, FormatCSV, FormatHTML, FormatAnki}

// ParseFormat resolves a user-supplied format name.
func ParseFormat(name string) (Format, error) {
	f := Format(strings.ToLower(strings.TrimSpace(name)))
	switch f {
	case FormatJSON, FormatCSV, FormatHTML, FormatAnki:
		return f, nil
	}
	return "", fmt.Errorf("unknown export format %q (supported: json, csv, html, anki)", name)
}

// Ext returns the file extension for the format, dot included.
func (f Format) Ext() string {
	switch f {
	case FormatAnki:
		return ".csv"
	default:
		return "." + string(f)
	}
}

// Write serializes the quiz in the given format.
func Write(w io.Writer, q *quiz.Quiz, f Format) error {
	switch f {
	case FormatJSON:
		return WriteJSON(w, q)
	case FormatCSV:
		return WriteCSV(w, q)
	case FormatHTML:
		return WriteHTML(w, q)
	case FormatAnki:
		return WriteAnki(w, q)
	default:
		return fmt.Errorf("unknown export format %q", f)
	}
}
