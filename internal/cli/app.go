package cli

import (
	"errors"
	"fmt"
	"io"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"textsum/internal/config"
	"textsum/internal/document"
	"textsum/internal/domain"
	"textsum/internal/logger"
	"textsum/internal/service"
	"textsum/internal/summarizer"
	"textsum/internal/tokenizer"
)

const (
	bannerTop    = "--- Original File Summary ---"
	bannerBottom = "---------------------------"
)

// options holds the flags shared by every command.
type options struct {
	configPath string
	envFile    string
	fraction   float64
	tokenizer  string
	verbose    bool
}

// app is the assembled set of components for one invocation.
type app struct {
	cfg     *config.AppConfig
	log     *logrus.Logger
	closer  io.Closer
	service *service.SummaryService
}

func (a *app) Close() error { return a.closer.Close() }

// setup loads configuration, applies flag overrides and builds the pipeline.
// The tokenizer is created once here and shared by every summarization.
func (o *options) setup(cmd *cobra.Command) (*app, error) {
	if o.envFile != "" {
		if err := config.LoadDotEnv(o.envFile); err != nil {
			return nil, fmt.Errorf("load env file: %w", err)
		}
	} else if err := config.LoadDotEnv(); err != nil {
		return nil, fmt.Errorf("load .env: %w", err)
	}

	var cfg *config.AppConfig
	var err error
	if o.configPath == "" {
		cfg, _, err = config.LoadDefault()
	} else {
		cfg, err = config.Load(o.configPath)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	flags := cmd.Flags()
	if flags.Changed("fraction") {
		cfg.Summarizer.Fraction = o.fraction
	}
	if flags.Changed("tokenizer") {
		cfg.Tokenizer.Type = o.tokenizer
	}

	log, closer, err := logger.New(cfg.Log, o.verbose)
	if err != nil {
		return nil, err
	}

	tok, err := tokenizer.New(cfg.Tokenizer.Type)
	if err != nil {
		closer.Close()
		return nil, err
	}

	var sum domain.Summarizer
	switch cfg.Summarizer.Type {
	case "frequency", "":
		sum = summarizer.NewFrequencySummarizer(tok)
	default:
		closer.Close()
		return nil, fmt.Errorf("unknown summarizer: %s", cfg.Summarizer.Type)
	}

	log.WithFields(logrus.Fields{
		"tokenizer": tok.Name(),
		"fraction":  cfg.Summarizer.Fraction,
	}).Debug("pipeline ready")

	return &app{
		cfg:     cfg,
		log:     log,
		closer:  closer,
		service: service.NewSummaryService(sum, cfg.Summarizer.Fraction, log),
	}, nil
}

// userMessage turns a load or summarize failure into the one-line message
// shown to the user.
func userMessage(path string, err error) error {
	switch {
	case errors.Is(err, document.ErrNotFound):
		return fmt.Errorf("Error: The file at '%s' does not exist.", path)
	case errors.Is(err, document.ErrUnsupportedType):
		return errors.New("Error: This tool only supports .txt files.")
	default:
		return fmt.Errorf("An error occurred while reading or summarizing the file: %v", err)
	}
}

// printSummary writes the summary between banners to stdout.
func printSummary(cmd *cobra.Command, summary string) {
	fmt.Fprintf(cmd.OutOrStdout(), "\n%s\n%s\n%s\n\n", bannerTop, summary, bannerBottom)
}
