// Package summarizer ranks sentences by normalized term frequency and
// returns the top fraction of them as an extractive summary.
package summarizer

import (
	"sort"
	"strings"

	"textsum/internal/domain"
)

const (
	// DefaultFraction is the share of sentences kept when none is configured.
	DefaultFraction = 0.3

	// NoTextMessage is returned for empty input.
	NoTextMessage = "No text to summarize."

	// TooShortMessage is returned when no sentence survives selection.
	TooShortMessage = "Could not generate a summary. The text might be too short."
)

var _ domain.Summarizer = (*FrequencySummarizer)(nil)

// ScoredSentence pairs a sentence with its position in the document and its
// accumulated frequency score.
type ScoredSentence struct {
	Index    int
	Score    float64
	Sentence domain.Sentence
}

// FrequencySummarizer ranks sentences by the sum of their token weights.
type FrequencySummarizer struct {
	tokenizer domain.Tokenizer
}

// NewFrequencySummarizer creates a frequency-based sentence ranker summarizer
// on top of a shared tokenizer.
func NewFrequencySummarizer(tokenizer domain.Tokenizer) *FrequencySummarizer {
	return &FrequencySummarizer{tokenizer: tokenizer}
}

// Summarize returns the highest scoring floor(n*fraction) sentences joined by
// a single space. Sentences come out in descending score order, not document
// order. The only error is one returned by the tokenizer.
func (s *FrequencySummarizer) Summarize(text string, fraction float64) (string, error) {
	if text == "" {
		return NoTextMessage, nil
	}
	sentences, err := s.tokenizer.Split(text)
	if err != nil {
		return "", err
	}

	weights := NormalizeFrequencies(CountFrequencies(sentences))
	ranked := RankSentences(ScoreSentences(sentences, weights))
	selected := ranked[:SelectionCount(len(sentences), fraction)]

	parts := make([]string, 0, len(selected))
	for _, sc := range selected {
		parts = append(parts, sc.Sentence.Text())
	}
	if summary := strings.Join(parts, " "); summary != "" {
		return summary, nil
	}
	return TooShortMessage, nil
}

// CountFrequencies counts every non-punctuation token by its normalized text.
func CountFrequencies(sentences []domain.Sentence) map[string]int {
	counts := make(map[string]int)
	for _, sent := range sentences {
		for i := 0; i < sent.Len(); i++ {
			tok := sent.Token(i)
			if tok.IsPunct() {
				continue
			}
			counts[tok.Norm()]++
		}
	}
	return counts
}

// NormalizeFrequencies divides each count by the largest one, so the most
// frequent terms weigh exactly 1.
func NormalizeFrequencies(counts map[string]int) map[string]float64 {
	maxCount := 0
	for _, c := range counts {
		if c > maxCount {
			maxCount = c
		}
	}
	if maxCount == 0 {
		maxCount = 1
	}
	weights := make(map[string]float64, len(counts))
	for term, c := range counts {
		weights[term] = float64(c) / float64(maxCount)
	}
	return weights
}

// ScoreSentences sums the weight of every token found in weights. Sentences
// with no weighted tokens score 0 and are kept.
func ScoreSentences(sentences []domain.Sentence, weights map[string]float64) []ScoredSentence {
	scored := make([]ScoredSentence, len(sentences))
	for i, sent := range sentences {
		score := 0.0
		for j := 0; j < sent.Len(); j++ {
			if w, ok := weights[sent.Token(j).Norm()]; ok {
				score += w
			}
		}
		scored[i] = ScoredSentence{Index: i, Score: score, Sentence: sent}
	}
	return scored
}

// RankSentences returns a copy sorted by score, highest first. Equal scores
// keep document order.
func RankSentences(scored []ScoredSentence) []ScoredSentence {
	ranked := make([]ScoredSentence, len(scored))
	copy(ranked, scored)
	sort.SliceStable(ranked, func(i, j int) bool { return ranked[i].Score > ranked[j].Score })
	return ranked
}

// SelectionCount returns floor(total*fraction) clamped to [0, total].
// Fraction is not validated.
func SelectionCount(total int, fraction float64) int {
	want := float64(total) * fraction
	// NaN fails every comparison and lands here too.
	if !(want >= 1) {
		return 0
	}
	if want >= float64(total) {
		return total
	}
	return int(want)
}
