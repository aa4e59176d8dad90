package synth

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"go.uber.org/zap"
)

const (
	defaultWikipediaBase  = "https://en.wikipedia.org/api/rest_v1"
	defaultDuckDuckGoBase = "https://api.duckduckgo.com"

	gatherTimeout   = 10 * time.Second
	gatherUserAgent = "Mozilla/5.0 (Macintosh; Intel Mac OS X 10_15_7) AppleWebKit/537.36"

	maxRelatedTopics = 3
)

// TopicSource is one labeled chunk of gathered reference material.
type TopicSource struct {
	Name    string `json:"name"`
	Title   string `json:"title"`
	Summary string `json:"summary"`
	URL     string `json:"url,omitempty"`
}

// TopicData is everything the gatherer found about a topic.
type TopicData struct {
	Topic   string        `json:"topic"`
	Content string        `json:"content"`
	Sources []TopicSource `json:"sources"`
}

// Gatherer pulls reference material about a topic from public endpoints:
// the Wikipedia page summary API and the DuckDuckGo instant-answer API.
// Base URLs are configurable so tests can point at a local server.
type Gatherer struct {
	WikipediaBase  string
	DuckDuckGoBase string

	client *http.Client
	log    *zap.Logger
}

// NewGatherer returns a Gatherer against the public endpoints.
func NewGatherer(log *zap.Logger) *Gatherer {
	if log == nil {
		log = zap.NewNop()
	}
	return &Gatherer{
		WikipediaBase:  defaultWikipediaBase,
		DuckDuckGoBase: defaultDuckDuckGoBase,
		client:         &http.Client{Timeout: gatherTimeout},
		log:            log,
	}
}

// Gather queries every source and concatenates whatever answered. It
// returns nil when no source had anything to say.
func (g *Gatherer) Gather(ctx context.Context, topic string) *TopicData {
	var sources []TopicSource

	if s, err := g.wikipedia(ctx, topic); err != nil {
		g.log.Debug("wikipedia lookup failed", zap.String("topic", topic), zap.Error(err))
	} else if s != nil {
		sources = append(sources, *s)
	}

	if s, err := g.duckDuckGo(ctx, topic); err != nil {
		g.log.Debug("duckduckgo lookup failed", zap.String("topic", topic), zap.Error(err))
	} else if s != nil {
		sources = append(sources, *s)
	}

	if len(sources) == 0 {
		return nil
	}

	parts := make([]string, len(sources))
	for i, s := range sources {
		parts[i] = fmt.Sprintf("Source: %s\n%s", s.Name, s.Summary)
	}
	return &TopicData{
		Topic:   topic,
		Content: strings.Join(parts, "\n\n"),
		Sources: sources,
	}
}

func (g *Gatherer) wikipedia(ctx context.Context, topic string) (*TopicSource, error) {
	endpoint := g.WikipediaBase + "/page/summary/" + url.PathEscape(strings.ReplaceAll(topic, " ", "_"))

	var body struct {
		Title       string `json:"title"`
		Extract     string `json:"extract"`
		ContentURLs struct {
			Desktop struct {
				Page string `json:"page"`
			} `json:"desktop"`
		} `json:"content_urls"`
	}
	if err := g.getJSON(ctx, endpoint, &body); err != nil {
		return nil, err
	}
	if body.Extract == "" {
		return nil, nil
	}
	return &TopicSource{
		Name:    "Wikipedia",
		Title:   body.Title,
		Summary: body.Extract,
		URL:     body.ContentURLs.Desktop.Page,
	}, nil
}

func (g *Gatherer) duckDuckGo(ctx context.Context, topic string) (*TopicSource, error) {
	params := url.Values{
		"q":             {topic},
		"format":        {"json"},
		"no_html":       {"1"},
		"skip_disambig": {"1"},
	}
	endpoint := g.DuckDuckGoBase + "/?" + params.Encode()

	var body struct {
		Abstract      string `json:"Abstract"`
		AbstractText  string `json:"AbstractText"`
		AbstractURL   string `json:"AbstractURL"`
		RelatedTopics []struct {
			Text string `json:"Text"`
		} `json:"RelatedTopics"`
	}
	if err := g.getJSON(ctx, endpoint, &body); err != nil {
		return nil, err
	}

	content := body.Abstract
	if content == "" {
		content = body.AbstractText
	}
	related := body.RelatedTopics
	if len(related) > maxRelatedTopics {
		related = related[:maxRelatedTopics]
	}
	for _, r := range related {
		if r.Text != "" {
			content += "\n\n" + r.Text
		}
	}
	content = strings.TrimSpace(content)
	if content == "" {
		return nil, nil
	}
	return &TopicSource{
		Name:    "DuckDuckGo",
		Title:   topic,
		Summary: content,
		URL:     body.AbstractURL,
	}, nil
}

func (g *Gatherer) getJSON(ctx context.Context, endpoint string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return err
	}
	req.Header.Set("User-Agent", gatherUserAgent)

	resp, err := g.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("%s: unexpected status %d", endpoint, resp.StatusCode)
	}
	return json.NewDecoder(resp.Body).Decode(out)
}
