package cli

import (
	"github.com/spf13/cobra"
)

// version is set at build time with -ldflags "-X textsum/internal/cli.version=...".
var version = "dev"

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version number",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			cmd.Printf("textsum version %s\n", version)
		},
	}
}
