package reader

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/vedantvaibhav/Lumus/internal/quiz"
)

func TestRead_Text(t *testing.T) {
	r := New(nil)
	res, err := r.Read("The water cycle [1] describes how water moves.", quiz.SourceText)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if strings.Contains(res.Text, "[1]") {
		t.Errorf("text not normalized: %q", res.Text)
	}
	if res.Provenance["type"] != "text" {
		t.Errorf("provenance type = %q, want text", res.Provenance["type"])
	}
	if res.Metadata.ContentLength != len(res.Text) {
		t.Errorf("content length %d != len(text) %d", res.Metadata.ContentLength, len(res.Text))
	}
}

func TestRead_File(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "notes.txt")
	content := "Glaciers store about two thirds of the planets fresh water."
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	r := New(nil)
	res, err := r.Read(path, quiz.SourceFile)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.Metadata.Title != "notes" {
		t.Errorf("title = %q, want notes", res.Metadata.Title)
	}
	if !strings.Contains(res.Text, "Glaciers") {
		t.Errorf("content missing: %q", res.Text)
	}
}

func TestRead_FileNotFound(t *testing.T) {
	r := New(nil)
	_, err := r.Read(filepath.Join(t.TempDir(), "missing.txt"), quiz.SourceFile)

	var notFound *ErrNotFound
	if !errors.As(err, &notFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestRead_URL(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		if req.Header.Get("User-Agent") == "" || strings.HasPrefix(req.Header.Get("User-Agent"), "Go-http-client") {
			t.Error("expected a browser-like User-Agent header")
		}
		w.Write([]byte(`<html><head><title> Ocean Currents </title></head>
			<body>
			<script>var junk = "should not appear";</script>
			<nav>site navigation chrome</nav>
			<main><p>Ocean currents move heat around the globe and shape climate.</p></main>
			</body></html>`))
	}))
	defer ts.Close()

	r := New(nil)
	res, err := r.Read(ts.URL, quiz.SourceURL)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.Metadata.Title != "Ocean Currents" {
		t.Errorf("title = %q, want Ocean Currents", res.Metadata.Title)
	}
	if strings.Contains(res.Text, "junk") {
		t.Errorf("script content leaked: %q", res.Text)
	}
	if strings.Contains(res.Text, "navigation") {
		t.Errorf("content outside <main> leaked: %q", res.Text)
	}
	if !strings.Contains(res.Text, "Ocean currents move heat") {
		t.Errorf("main content missing: %q", res.Text)
	}
	if res.Provenance["url"] != ts.URL {
		t.Errorf("provenance url = %q, want %q", res.Provenance["url"], ts.URL)
	}
}

func TestRead_URLWholeDocumentFallback(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Write([]byte(`<html><body><p>No primary content element on this page at all.</p></body></html>`))
	}))
	defer ts.Close()

	r := New(nil)
	res, err := r.Read(ts.URL, quiz.SourceURL)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(res.Text, "No primary content element") {
		t.Errorf("body fallback missing: %q", res.Text)
	}
	if res.Metadata.Title != "Untitled" {
		t.Errorf("title = %q, want Untitled", res.Metadata.Title)
	}
}

func TestRead_URLServerError(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	}))
	defer ts.Close()

	r := New(nil)
	_, err := r.Read(ts.URL, quiz.SourceURL)

	var fetchErr *ErrFetch
	if !errors.As(err, &fetchErr) {
		t.Fatalf("expected ErrFetch, got %v", err)
	}
	if fetchErr.StatusCode != http.StatusInternalServerError {
		t.Errorf("status = %d, want 500", fetchErr.StatusCode)
	}
}

func TestRead_PDFMissing(t *testing.T) {
	r := New(nil)
	_, err := r.Read(filepath.Join(t.TempDir(), "missing.pdf"), quiz.SourcePDF)

	var pdfErr *ErrUnreadablePDF
	if !errors.As(err, &pdfErr) {
		t.Fatalf("expected ErrUnreadablePDF, got %v", err)
	}
}

func TestDetectKind(t *testing.T) {
	dir := t.TempDir()
	existing := filepath.Join(dir, "notes.txt")
	if err := os.WriteFile(existing, []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		locator string
		want    quiz.SourceKind
	}{
		{"https://example.com/page", quiz.SourceURL},
		{"http://example.com", quiz.SourceURL},
		{"lecture.pdf", quiz.SourcePDF},
		{"Notes/SLIDES.PDF", quiz.SourcePDF},
		{existing, quiz.SourceFile},
		{"just some literal text to quiz on", quiz.SourceText},
	}
	for _, tt := range tests {
		if got := DetectKind(tt.locator); got != tt.want {
			t.Errorf("DetectKind(%q) = %q, want %q", tt.locator, got, tt.want)
		}
	}
}
