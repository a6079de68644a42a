package domain

import (
	"strings"
	"unicode/utf8"
)

// punctuation is the ASCII punctuation set. Only single-character tokens
// are ever matched against it.
const punctuation = "!\"#$%&'()*+,-./:;<=>?@[\\]^_`{|}~"

// IsPunctuation reports whether s is exactly one punctuation character.
func IsPunctuation(s string) bool {
	if utf8.RuneCountInString(s) != 1 {
		return false
	}
	r, _ := utf8.DecodeRuneInString(s)
	return strings.ContainsRune(punctuation, r)
}

// Token is a single word or symbol produced by a Tokenizer.
type Token struct {
	text  string
	norm  string
	punct bool
}

// NewToken builds a token from its verbatim text and normalized (case-folded) form.
func NewToken(text, norm string) Token {
	return Token{text: text, norm: norm, punct: IsPunctuation(norm)}
}

// Text returns the token as it appeared in the source.
func (t Token) Text() string { return t.text }

// Norm returns the case-folded form used for frequency counting.
func (t Token) Norm() string { return t.norm }

// IsPunct reports whether the token is a punctuation mark.
func (t Token) IsPunct() bool { return t.punct }

// Sentence is an ordered token sequence plus the verbatim span it came from.
type Sentence struct {
	text   string
	tokens []Token
}

// NewSentence copies tokens so the sentence cannot be changed afterwards.
func NewSentence(text string, tokens []Token) Sentence {
	own := make([]Token, len(tokens))
	copy(own, tokens)
	return Sentence{text: text, tokens: own}
}

// Text returns the verbatim sentence text.
func (s Sentence) Text() string { return s.text }

// Len returns the number of tokens in the sentence.
func (s Sentence) Len() int { return len(s.tokens) }

// Token returns the i-th token.
func (s Sentence) Token(i int) Token { return s.tokens[i] }

// Tokens returns a copy of the sentence tokens.
func (s Sentence) Tokens() []Token {
	out := make([]Token, len(s.tokens))
	copy(out, s.tokens)
	return out
}
