package cli

import (
	"context"

	"github.com/spf13/cobra"

	"textsum/internal/watcher"
)

func newWatchCmd(o *options) *cobra.Command {
	return &cobra.Command{
		Use:   "watch [file.txt]",
		Short: "Re-summarize a file every time it changes",
		Long: `Prints the summary of a file, then prints it again each time the file
is saved. Stops on interrupt.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := o.setup(cmd)
			if err != nil {
				return err
			}
			defer a.Close()

			path := args[0]
			ctx, cancel := context.WithCancel(cmd.Context())
			defer cancel()

			// The watch is registered before the first read of the file.
			w, err := watcher.New(path, watcher.DefaultDebounce, a.log)
			if err != nil {
				return err
			}
			changes, err := w.Watch(ctx)
			if err != nil {
				return err
			}

			summary, err := a.service.SummarizeFile(path)
			if err != nil {
				return userMessage(path, err)
			}
			printSummary(cmd, summary)
			a.log.WithField("path", w.Path()).Info("watching for changes")

			for change := range changes {
				if change.Type == watcher.ChangeRemoved {
					a.log.WithField("path", change.Path).Warn("file removed, waiting for it to come back")
					continue
				}
				summary, err := a.service.SummarizeFile(path)
				if err != nil {
					cmd.PrintErrln(userMessage(path, err))
					continue
				}
				printSummary(cmd, summary)
			}
			return nil
		},
	}
}
