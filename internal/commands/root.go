package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ofx-dev/lloyds2ofx/internal/buildinfo"
)

// NewRootCommand creates the root CLI command with all subcommands registered.
func NewRootCommand() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:     "lloyds2ofx",
		Short:   "Convert Lloyds Bank CSV exports to normalized statement data",
		Version: fmt.Sprintf("%s (commit: %s, built: %s)", buildinfo.Version, buildinfo.Commit, buildinfo.Date),
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		SilenceUsage: true,
	}

	rootCmd.AddCommand(newConvertCommand())
	rootCmd.AddCommand(newBatchCommand())
	rootCmd.AddCommand(newFormatsCommand())

	return rootCmd
}
