package reader

import (
	"regexp"
	"strings"
)

var (
	whitespaceRE  = regexp.MustCompile(`\s+`)
	bracketRE     = regexp.MustCompile(`\[.*?\]`)
	parenRE       = regexp.MustCompile(`\(.*?\)`)
	// Letters and digits in any script survive; \w alone is ASCII-only in
	// Go and would strip accented and non-Latin text wholesale.
	punctuationRE = regexp.MustCompile(`[^\p{L}\p{N}_\s.,!?;:\-()]`)
	pageNumberRE  = regexp.MustCompile(`Page \d+`)
	trailingNumRE = regexp.MustCompile(`(?:\s*\d+)+\s*$`)
	sentenceRE    = regexp.MustCompile(`[.!?]+`)
)

// minSentenceLength filters out fragments too short to carry meaning.
const minSentenceLength = 20

// Normalize strips noise from raw extracted text: citation-style bracketed
// and parenthetical asides, page-number artifacts, trailing digit runs,
// characters outside a conservative punctuation set, and excess whitespace.
//
// Normalize is pure and idempotent. Empty or whitespace-only input yields
// an empty string.
func Normalize(raw string) string {
	text := whitespaceRE.ReplaceAllString(raw, " ")

	// Bracketed and parenthetical spans are treated as asides, not content.
	// These run before the punctuation pass, which drops stray brackets.
	text = bracketRE.ReplaceAllString(text, "")
	text = parenRE.ReplaceAllString(text, "")

	text = punctuationRE.ReplaceAllString(text, "")

	// Page artifacts from PDF and web extraction.
	text = pageNumberRE.ReplaceAllString(text, "")
	text = trailingNumRE.ReplaceAllString(text, "")

	// Removals leave double spaces behind; collapse again so the output is
	// stable under repeated normalization.
	text = whitespaceRE.ReplaceAllString(text, " ")
	return strings.TrimSpace(text)
}

// ExtractSentences splits normalized text on sentence-terminal punctuation
// and keeps fragments long enough to be meaningful. Used for source
// metadata only, never fed back into generation.
func ExtractSentences(text string) []string {
	parts := sentenceRE.Split(text, -1)
	sentences := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if len(p) > minSentenceLength {
			sentences = append(sentences, p)
		}
	}
	return sentences
}
