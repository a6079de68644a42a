package service

import (
	"time"

	"github.com/sirupsen/logrus"

	"textsum/internal/document"
	"textsum/internal/domain"
)

// SummaryService ties document loading to a summarizer.
type SummaryService struct {
	summarizer domain.Summarizer
	fraction   float64
	log        logrus.FieldLogger
}

// NewSummaryService returns a service that summarizes with fraction unless a
// call supplies its own.
func NewSummaryService(summarizer domain.Summarizer, fraction float64, log logrus.FieldLogger) *SummaryService {
	return &SummaryService{summarizer: summarizer, fraction: fraction, log: log}
}

// Fraction returns the share of sentences kept by default.
func (s *SummaryService) Fraction() float64 { return s.fraction }

// SummarizeFile loads path and summarizes it with the default fraction.
func (s *SummaryService) SummarizeFile(path string) (string, error) {
	return s.SummarizeFileWith(path, s.fraction)
}

// SummarizeFileWith loads path and summarizes it with fraction. Load errors
// are returned before the summarizer is called.
func (s *SummaryService) SummarizeFileWith(path string, fraction float64) (string, error) {
	doc, err := document.Load(path)
	if err != nil {
		return "", err
	}
	s.log.WithFields(logrus.Fields{"path": doc.Path, "bytes": len(doc.Content)}).Debug("document loaded")
	return s.SummarizeTextWith(doc.Content, fraction)
}

// SummarizeText summarizes text with the default fraction.
func (s *SummaryService) SummarizeText(text string) (string, error) {
	return s.SummarizeTextWith(text, s.fraction)
}

// SummarizeTextWith summarizes text with fraction.
func (s *SummaryService) SummarizeTextWith(text string, fraction float64) (string, error) {
	start := time.Now()
	summary, err := s.summarizer.Summarize(text, fraction)
	if err != nil {
		s.log.WithError(err).Error("summarization failed")
		return "", err
	}
	s.log.WithFields(logrus.Fields{
		"fraction": fraction,
		"chars":    len(summary),
		"took":     time.Since(start),
	}).Debug("summary ready")
	return summary, nil
}
