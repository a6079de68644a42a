package summarizer

import (
	"errors"
	"math"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"textsum/internal/domain"
	"textsum/internal/tokenizer"
)

type failingTokenizer struct{ err error }

func (f failingTokenizer) Name() string { return "failing" }

func (f failingTokenizer) Split(string) ([]domain.Sentence, error) { return nil, f.err }

func newSummarizer() *FrequencySummarizer {
	return NewFrequencySummarizer(tokenizer.NewRegexp())
}

func split(t *testing.T, text string) []domain.Sentence {
	t.Helper()
	sents, err := tokenizer.NewRegexp().Split(text)
	require.NoError(t, err)
	return sents
}

const tenSentences = "Go is fast. Go is simple. Rust is fast. Cats sleep. " +
	"Go compiles quickly and Go runs fast. Dogs bark. Birds sing. Fish swim. " +
	"Go is fun. Trees grow."

func TestSummarize(t *testing.T) {
	tests := []struct {
		name     string
		text     string
		fraction float64
		want     string
	}{
		{
			name:     "empty text",
			text:     "",
			fraction: DefaultFraction,
			want:     NoTextMessage,
		},
		{
			name:     "three sentences floor to zero",
			text:     "Dogs are great. Cats are great too. Birds can fly.",
			fraction: DefaultFraction,
			want:     TooShortMessage,
		},
		{
			name:     "ten sentences keep three by score",
			text:     tenSentences,
			fraction: DefaultFraction,
			want:     "Go compiles quickly and Go runs fast. Go is fast. Go is simple.",
		},
		{
			name:     "output follows score not document order",
			text:     "Cats nap. Go is go. Go go go.",
			fraction: 0.67,
			want:     "Go go go. Go is go.",
		},
		{
			name:     "ties keep document order",
			text:     "Alpha beta. Gamma delta. Epsilon zeta. Eta theta.",
			fraction: 0.5,
			want:     "Alpha beta. Gamma delta.",
		},
		{
			name:     "identical sentences are selected independently",
			text:     "Go go. Cats. Go go.",
			fraction: 1,
			want:     "Go go. Go go. Cats.",
		},
		{
			name:     "fraction above one selects everything",
			text:     "Cats nap. Go is go. Go go go.",
			fraction: 2,
			want:     "Go go go. Go is go. Cats nap.",
		},
		{
			name:     "negative fraction selects nothing",
			text:     tenSentences,
			fraction: -0.5,
			want:     TooShortMessage,
		},
		{
			name:     "NaN fraction selects nothing",
			text:     tenSentences,
			fraction: math.NaN(),
			want:     TooShortMessage,
		},
		{
			name:     "punctuation only",
			text:     "!!! ... ?",
			fraction: DefaultFraction,
			want:     TooShortMessage,
		},
		{
			name:     "whitespace only",
			text:     "  \n\t ",
			fraction: DefaultFraction,
			want:     TooShortMessage,
		},
	}

	s := newSummarizer()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := s.Summarize(tt.text, tt.fraction)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestSummarize_PunctuationSentencesStayEligible(t *testing.T) {
	got, err := newSummarizer().Summarize("Go go. !!! Cats.", 1)
	require.NoError(t, err)
	assert.Equal(t, "Go go. Cats. !!!", got)
}

func TestSummarize_SelectedCountMatchesFraction(t *testing.T) {
	s := newSummarizer()
	for _, fraction := range []float64{0.1, 0.3, 0.5, 0.75, 1} {
		got, err := s.Summarize(tenSentences, fraction)
		require.NoError(t, err)
		want := SelectionCount(10, fraction)
		if want == 0 {
			assert.Equal(t, TooShortMessage, got)
			continue
		}
		assert.Len(t, split(t, got), want, "fraction %v", fraction)
	}
}

func TestSummarize_Deterministic(t *testing.T) {
	s := newSummarizer()
	first, err := s.Summarize(tenSentences, 0.5)
	require.NoError(t, err)
	for i := 0; i < 20; i++ {
		again, err := s.Summarize(tenSentences, 0.5)
		require.NoError(t, err)
		assert.Equal(t, first, again)
	}
}

func TestSummarize_TokenizerErrorPropagates(t *testing.T) {
	boom := errors.New("model not loaded")
	s := NewFrequencySummarizer(failingTokenizer{err: boom})

	got, err := s.Summarize("Some text.", DefaultFraction)
	assert.ErrorIs(t, err, boom)
	assert.Empty(t, got)

	// Empty input never reaches the tokenizer.
	got, err = s.Summarize("", DefaultFraction)
	require.NoError(t, err)
	assert.Equal(t, NoTextMessage, got)
}

func TestCountFrequencies(t *testing.T) {
	counts := CountFrequencies(split(t, "The cat. THE dog, the end!"))
	assert.Equal(t, map[string]int{"the": 3, "cat": 1, "dog": 1, "end": 1}, counts)
}

func TestCountFrequencies_MultiCharacterSymbolsAreWords(t *testing.T) {
	counts := CountFrequencies(split(t, "Wait... really -- yes?! Ok..."))
	assert.Equal(t, map[string]int{"wait": 1, "...": 2, "really": 1, "--": 1, "yes": 1, "ok": 1}, counts)
}

func TestScoreSentences_EllipsisWeighsLoneDotDoesNot(t *testing.T) {
	sents := split(t, "Go... Go.")
	require.Len(t, sents, 2)

	scored := ScoreSentences(sents, NormalizeFrequencies(CountFrequencies(sents)))
	assert.InDelta(t, 1.5, scored[0].Score, 1e-9)
	assert.InDelta(t, 1.0, scored[1].Score, 1e-9)
}

func TestCountFrequencies_OrderIndependent(t *testing.T) {
	mk := func(words ...string) domain.Sentence {
		tokens := make([]domain.Token, len(words))
		for i, w := range words {
			tokens[i] = domain.NewToken(w, strings.ToLower(w))
		}
		return domain.NewSentence(strings.Join(words, " "), tokens)
	}
	a := []domain.Sentence{mk("a", "b", "a", "."), mk("c", "b")}
	b := []domain.Sentence{mk(".", "a", "a", "b"), mk("b", "c")}
	assert.Equal(t, CountFrequencies(a), CountFrequencies(b))
}

func TestNormalizeFrequencies(t *testing.T) {
	weights := NormalizeFrequencies(map[string]int{"go": 4, "is": 2, "fun": 1})
	assert.Equal(t, 1.0, weights["go"])
	assert.Equal(t, 0.5, weights["is"])
	assert.Equal(t, 0.25, weights["fun"])

	maxWeight := 0.0
	for _, w := range NormalizeFrequencies(CountFrequencies(split(t, tenSentences))) {
		assert.Greater(t, w, 0.0)
		assert.LessOrEqual(t, w, 1.0)
		maxWeight = math.Max(maxWeight, w)
	}
	assert.Equal(t, 1.0, maxWeight)

	assert.Empty(t, NormalizeFrequencies(map[string]int{}))
}

func TestScoreSentences(t *testing.T) {
	sents := split(t, "Go is go. ?! Cats.")
	scored := ScoreSentences(sents, map[string]float64{"go": 1, "is": 0.5})

	require.Len(t, scored, 3)
	assert.Equal(t, 0, scored[0].Index)
	assert.InDelta(t, 2.5, scored[0].Score, 1e-9)
	assert.Equal(t, 0.0, scored[1].Score)
	assert.Equal(t, 0.0, scored[2].Score)
	assert.Equal(t, "Cats.", scored[2].Sentence.Text())
}

func TestRankSentences(t *testing.T) {
	in := []ScoredSentence{
		{Index: 0, Score: 1},
		{Index: 1, Score: 3},
		{Index: 2, Score: 1},
		{Index: 3, Score: 2},
	}
	ranked := RankSentences(in)

	idx := make([]int, len(ranked))
	for i, r := range ranked {
		idx[i] = r.Index
	}
	assert.Equal(t, []int{1, 3, 0, 2}, idx)
	assert.Equal(t, 0, in[0].Index, "input must not be reordered")
}

func TestSelectionCount(t *testing.T) {
	tests := []struct {
		total    int
		fraction float64
		want     int
	}{
		{3, 0.3, 0},
		{10, 0.3, 3},
		{7, 0.5, 3},
		{10, 1, 10},
		{10, 1.5, 10},
		{10, -0.5, 0},
		{0, 0.3, 0},
		{10, math.NaN(), 0},
		{10, math.Inf(1), 10},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, SelectionCount(tt.total, tt.fraction), "SelectionCount(%d, %v)", tt.total, tt.fraction)
	}
}
