package commands

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/ofx-dev/lloyds2ofx/internal/export"
	"github.com/ofx-dev/lloyds2ofx/internal/importer"
)

func newBatchCommand() *cobra.Command {
	var format string
	var currency string

	cmd := &cobra.Command{
		Use:   "batch [directory]",
		Short: "Convert every CSV in <dir>/import, writing results to <dir>/export",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			root := "."
			if len(args) > 0 {
				root = args[0]
			}
			return runBatch(cmd, root, format, resolveCurrency(currency))
		},
	}

	cmd.Flags().StringVar(&format, "format", "lloyds", "input format")
	cmd.Flags().StringVar(&currency, "currency", "", "currency code (default from lloyds2ofx.yaml, else GBP)")

	return cmd
}

func runBatch(cmd *cobra.Command, root, format, currency string) error {
	p := importer.DefaultRegistry(currency).Get(format)
	if p == nil {
		return fmt.Errorf("unknown format %q", format)
	}

	files, err := importer.Scan(root)
	if err != nil {
		return err
	}
	if len(files) == 0 {
		cmd.Println("nothing to convert")
		return nil
	}

	outDir := filepath.Join(root, "export")
	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return fmt.Errorf("creating export dir: %w", err)
	}

	for _, file := range files {
		if err := convertFile(p, file.Path, filepath.Join(outDir, file.Name)); err != nil {
			return fmt.Errorf("%s: %w", file.Name, err)
		}
		if err := importer.MarkProcessed(root, file.Name); err != nil {
			return err
		}
		cmd.Printf("converted %s\n", file.Name)
	}
	return nil
}

func convertFile(p importer.Parser, src, dst string) error {
	f, err := os.Open(src)
	if err != nil {
		return fmt.Errorf("opening: %w", err)
	}
	defer f.Close()

	st, err := p.Parse(f)
	if err != nil {
		return err
	}

	out, err := os.Create(dst)
	if err != nil {
		return fmt.Errorf("creating %s: %w", dst, err)
	}
	defer out.Close()

	if err := export.WriteStatement(out, st); err != nil {
		return fmt.Errorf("writing %s: %w", dst, err)
	}
	return nil
}
