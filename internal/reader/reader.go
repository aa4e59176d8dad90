package reader

import (
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/vedantvaibhav/Lumus/internal/quiz"
)

// fetchTimeout bounds every network fetch.
const fetchTimeout = 30 * time.Second

// userAgent is a realistic browser identity; several sites refuse the
// Go default.
const userAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36"

// Metadata describes the content itself: title, length, candidate sentences.
type Metadata struct {
	Title         string
	ContentLength int
	Sentences     []string
}

// Result is a successful read: normalized text plus provenance.
type Result struct {
	// Text is the cleaned, normalized content.
	Text string

	Metadata Metadata

	// Provenance identifies the source independent of content: type,
	// origin, title. Returned verbatim in the generation result.
	Provenance map[string]string
}

// Reader retrieves raw content from a source locator and normalizes it.
// It owns all network and file I/O in the pipeline.
type Reader struct {
	client *http.Client
	log    *zap.Logger
}

// New creates a Reader with a bounded-timeout HTTP client.
func New(log *zap.Logger) *Reader {
	if log == nil {
		log = zap.NewNop()
	}
	return &Reader{
		client: &http.Client{Timeout: fetchTimeout},
		log:    log,
	}
}

// Read retrieves content for the locator according to kind, normalizes it,
// and attaches provenance. The returned error is one of the typed errors in
// this package wrapped as needed.
func (r *Reader) Read(locator string, kind quiz.SourceKind) (*Result, error) {
	switch kind {
	case quiz.SourceText:
		return r.readText(locator), nil
	case quiz.SourceFile:
		return r.readFile(locator)
	case quiz.SourceURL:
		return r.readURL(locator)
	case quiz.SourcePDF:
		return r.readPDF(locator)
	default:
		return nil, fmt.Errorf("unsupported source type: %q", kind)
	}
}

// DetectKind infers the source kind from the locator. The inference is
// advisory; callers may override it with an explicit kind.
func DetectKind(locator string) quiz.SourceKind {
	if strings.HasPrefix(locator, "http://") || strings.HasPrefix(locator, "https://") {
		return quiz.SourceURL
	}
	if strings.HasSuffix(strings.ToLower(locator), ".pdf") {
		return quiz.SourcePDF
	}
	if info, err := os.Stat(locator); err == nil && !info.IsDir() {
		return quiz.SourceFile
	}
	return quiz.SourceText
}

func (r *Reader) readText(text string) *Result {
	cleaned := Normalize(text)
	return &Result{
		Text: cleaned,
		Metadata: Metadata{
			Title:         "Text Input",
			ContentLength: len(cleaned),
			Sentences:     ExtractSentences(cleaned),
		},
		Provenance: map[string]string{
			"type":  string(quiz.SourceText),
			"title": "Text Input",
		},
	}
}

func (r *Reader) readFile(path string) (*Result, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, &ErrNotFound{Path: path, Err: err}
		}
		return nil, fmt.Errorf("read file %s: %w", path, err)
	}

	cleaned := Normalize(string(data))
	title := stem(path)
	return &Result{
		Text: cleaned,
		Metadata: Metadata{
			Title:         title,
			ContentLength: len(cleaned),
			Sentences:     ExtractSentences(cleaned),
		},
		Provenance: map[string]string{
			"type":      string(quiz.SourceFile),
			"file_path": path,
			"title":     title,
		},
	}, nil
}

// stem returns the file name without its extension.
func stem(path string) string {
	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}
