package tokenizer

import (
	"fmt"
	"strings"

	"github.com/neurosnap/sentences"
	"github.com/neurosnap/sentences/english"

	"textsum/internal/domain"
)

var _ domain.Tokenizer = (*Punkt)(nil)

// Punkt detects sentence boundaries with the pretrained English Punkt model.
// Loading the model is the expensive part, so build one and share it.
type Punkt struct {
	model *sentences.DefaultSentenceTokenizer
}

// NewPunkt loads the English model.
func NewPunkt() (*Punkt, error) {
	model, err := english.NewSentenceTokenizer(nil)
	if err != nil {
		return nil, fmt.Errorf("load punkt english model: %w", err)
	}
	return &Punkt{model: model}, nil
}

// Name returns the identifier of this tokenizer implementation.
func (p *Punkt) Name() string { return TypePunkt }

// Split returns the non-empty sentences of text in document order.
func (p *Punkt) Split(text string) ([]domain.Sentence, error) {
	if strings.TrimSpace(text) == "" {
		return nil, nil
	}
	var out []domain.Sentence
	for _, s := range p.model.Tokenize(text) {
		if sent, ok := buildSentence(strings.TrimSpace(s.Text)); ok {
			out = append(out, sent)
		}
	}
	return out, nil
}
