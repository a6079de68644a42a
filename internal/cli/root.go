// Package cli wires the textsum commands.
package cli

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"textsum/internal/summarizer"
	"textsum/internal/tui"
)

// runProgram starts the interactive viewer. Tests replace it.
var runProgram = func(m tea.Model) error {
	_, err := tea.NewProgram(m, tea.WithAltScreen()).Run()
	return err
}

// NewRootCmd builds the command tree. Each call returns fresh flag state.
func NewRootCmd() *cobra.Command {
	o := &options{}
	var interactive bool

	root := &cobra.Command{
		Use:   "textsum [file.txt]",
		Short: "Summarize a text file",
		Long: `Summarize a plain-text file by ranking its sentences on word frequency.

The most frequent words weigh the most; every sentence is scored by the
weights of its words and the top fraction of sentences is printed, highest
score first.`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := o.setup(cmd)
			if err != nil {
				return err
			}
			defer a.Close()

			path := args[0]
			summary, err := a.service.SummarizeFile(path)
			if err != nil {
				a.log.WithError(err).WithField("path", path).Debug("summarize failed")
				return userMessage(path, err)
			}
			if interactive {
				m := tui.New(a.service, path, a.service.Fraction(), a.cfg.TUI.FractionStep, summary)
				return runProgram(m)
			}
			printSummary(cmd, summary)
			return nil
		},
	}

	pf := root.PersistentFlags()
	pf.StringVar(&o.configPath, "config", "", "path to YAML config file (default ./config.yaml or ~/.config/textsum/config.yaml)")
	pf.StringVar(&o.envFile, "env-file", "", "load environment variables from this file instead of ./.env")
	pf.Float64VarP(&o.fraction, "fraction", "f", summarizer.DefaultFraction, "share of sentences to keep")
	pf.StringVar(&o.tokenizer, "tokenizer", "", "sentence splitter: punkt or regexp")
	pf.BoolVarP(&o.verbose, "verbose", "v", false, "enable debug logging")
	root.Flags().BoolVarP(&interactive, "interactive", "i", false, "open the summary in an interactive viewer")

	root.AddCommand(newWatchCmd(o))
	root.AddCommand(newVersionCmd())
	return root
}

// Execute runs the root command with ctx.
func Execute(ctx context.Context) error {
	return NewRootCmd().ExecuteContext(ctx)
}
