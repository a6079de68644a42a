package domain

// Document represents a single text file loaded into the system.
type Document struct {
	Path    string
	Content string
}

// Tokenizer splits raw text into ordered sentences of ordered tokens.
// Implementations are built once and may be shared between calls.
type Tokenizer interface {
	Name() string
	Split(text string) ([]Sentence, error)
}

// Summarizer produces an extractive summary covering roughly fraction of
// the sentences in text.
type Summarizer interface {
	Summarize(text string, fraction float64) (string, error)
}
