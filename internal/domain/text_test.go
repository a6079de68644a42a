package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsPunctuation(t *testing.T) {
	tests := []struct {
		in   string
		want bool
	}{
		{".", true},
		{",", true},
		{"!", true},
		{"~", true},
		{"\\", true},
		{"'", true},
		{"a", false},
		{"", false},
		{"...", false},
		{"()", false},
		{"—", false},
		{"«", false},
		{" ", false},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, IsPunctuation(tt.in), "IsPunctuation(%q)", tt.in)
	}
}

func TestNewToken(t *testing.T) {
	tok := NewToken("Dogs", "dogs")
	assert.Equal(t, "Dogs", tok.Text())
	assert.Equal(t, "dogs", tok.Norm())
	assert.False(t, tok.IsPunct())

	assert.True(t, NewToken("?", "?").IsPunct())
}

func TestNewSentence_CopiesTokens(t *testing.T) {
	tokens := []Token{NewToken("Hi", "hi"), NewToken(".", ".")}
	s := NewSentence("Hi.", tokens)

	tokens[0] = NewToken("Bye", "bye")
	assert.Equal(t, "hi", s.Token(0).Norm())

	out := s.Tokens()
	out[1] = NewToken("x", "x")
	assert.True(t, s.Token(1).IsPunct())
	assert.Equal(t, 2, s.Len())
	assert.Equal(t, "Hi.", s.Text())
}
