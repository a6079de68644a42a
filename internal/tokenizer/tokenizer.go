// Package tokenizer turns raw text into sentences of case-folded tokens.
package tokenizer

import (
	"fmt"
	"regexp"

	"golang.org/x/text/cases"

	"textsum/internal/domain"
)

// Names accepted by New and the tokenizer.type config key.
const (
	// TypePunkt selects the pretrained English Punkt sentence splitter.
	TypePunkt = "punkt"
	// TypeRegexp selects the rule-based splitter.
	TypeRegexp = "regexp"
)

// wordPattern matches words (with inner apostrophes), numbers with
// decimal/thousand separators, ellipses and dash runs as one token, or any
// single non-space symbol.
var wordPattern = regexp.MustCompile(`\p{L}[\p{L}\p{M}\p{N}]*(?:['’][\p{L}\p{M}\p{N}]+)*|\p{N}+(?:[.,]\p{N}+)*|\.{2,}|-{2,}|…|[^\s\p{L}\p{N}]`)

// New builds the tokenizer registered under name. An empty name selects punkt.
func New(name string) (domain.Tokenizer, error) {
	switch name {
	case TypePunkt, "":
		return NewPunkt()
	case TypeRegexp:
		return NewRegexp(), nil
	default:
		return nil, fmt.Errorf("unknown tokenizer: %s", name)
	}
}

// words splits one sentence into tokens. A fresh Caser is used per call
// since casers carry state.
func words(text string) []domain.Token {
	raw := wordPattern.FindAllString(text, -1)
	if len(raw) == 0 {
		return nil
	}
	fold := cases.Fold()
	tokens := make([]domain.Token, 0, len(raw))
	for _, w := range raw {
		tokens = append(tokens, domain.NewToken(w, fold.String(w)))
	}
	return tokens
}

func buildSentence(text string) (domain.Sentence, bool) {
	tokens := words(text)
	if len(tokens) == 0 {
		return domain.Sentence{}, false
	}
	return domain.NewSentence(text, tokens), true
}
