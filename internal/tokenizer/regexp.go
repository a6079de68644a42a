package tokenizer

import (
	"regexp"
	"strings"

	"textsum/internal/domain"
)

var _ domain.Tokenizer = (*Regexp)(nil)

// Regexp splits sentences on runs of terminal punctuation followed by
// whitespace or end of text. Trailing text without a terminator is kept.
type Regexp struct {
	boundary *regexp.Regexp
}

// NewRegexp creates a rule-based sentence splitter.
func NewRegexp() *Regexp {
	return &Regexp{
		boundary: regexp.MustCompile(`[.!?]+["'’”)\]]*(?:\s+|$)`),
	}
}

// Name returns the identifier of this tokenizer implementation.
func (r *Regexp) Name() string { return TypeRegexp }

// Split returns the non-empty sentences of text in document order.
func (r *Regexp) Split(text string) ([]domain.Sentence, error) {
	var out []domain.Sentence
	start := 0
	for _, loc := range r.boundary.FindAllStringIndex(text, -1) {
		if sent, ok := buildSentence(strings.TrimSpace(text[start:loc[1]])); ok {
			out = append(out, sent)
		}
		start = loc[1]
	}
	if sent, ok := buildSentence(strings.TrimSpace(text[start:])); ok {
		out = append(out, sent)
	}
	return out, nil
}
