package commands

import (
	"github.com/spf13/cobra"

	"github.com/ofx-dev/lloyds2ofx/internal/importer"
)

func newFormatsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "formats",
		Short: "List supported input formats",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			for _, name := range importer.DefaultRegistry("").Formats() {
				cmd.Println(name)
			}
			return nil
		},
	}
}
