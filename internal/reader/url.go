package reader

import (
	"net/http"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"go.uber.org/zap"

	"github.com/vedantvaibhav/Lumus/internal/quiz"
)

// contentSelectors name the elements preferred over whole-document text,
// tried in order.
var contentSelectors = []string{"main", "article", "div.content"}

func (r *Reader) readURL(url string) (*Result, error) {
	req, err := http.NewRequest(http.MethodGet, url, nil)
	if err != nil {
		return nil, &ErrFetch{URL: url, Err: err}
	}
	req.Header.Set("User-Agent", userAgent)

	resp, err := r.client.Do(req)
	if err != nil {
		return nil, &ErrFetch{URL: url, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, &ErrFetch{URL: url, StatusCode: resp.StatusCode}
	}

	doc, err := goquery.NewDocumentFromReader(resp.Body)
	if err != nil {
		return nil, &ErrFetch{URL: url, Err: err}
	}

	doc.Find("script, style").Remove()

	text := extractMainText(doc)
	cleaned := Normalize(text)

	title := strings.TrimSpace(doc.Find("title").First().Text())
	if title == "" {
		title = "Untitled"
	}

	r.log.Debug("fetched URL",
		zap.String("url", url),
		zap.String("title", title),
		zap.Int("content_length", len(cleaned)))

	return &Result{
		Text: cleaned,
		Metadata: Metadata{
			Title:         title,
			ContentLength: len(cleaned),
			Sentences:     ExtractSentences(cleaned),
		},
		Provenance: map[string]string{
			"type":  string(quiz.SourceURL),
			"url":   url,
			"title": title,
		},
	}, nil
}

// extractMainText prefers a primary-content element over the whole document.
func extractMainText(doc *goquery.Document) string {
	for _, sel := range contentSelectors {
		if node := doc.Find(sel).First(); node.Length() > 0 {
			return node.Text()
		}
	}
	return doc.Text()
}
