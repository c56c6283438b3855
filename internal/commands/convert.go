package commands

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/ofx-dev/lloyds2ofx/internal/config"
	"github.com/ofx-dev/lloyds2ofx/internal/export"
	"github.com/ofx-dev/lloyds2ofx/internal/importer"
)

func newConvertCommand() *cobra.Command {
	var format string
	var currency string
	var out string

	cmd := &cobra.Command{
		Use:   "convert <statement.csv>",
		Short: "Convert one bank CSV export to normalized statement CSV",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runConvert(cmd, args[0], format, resolveCurrency(currency), out)
		},
	}

	cmd.Flags().StringVar(&format, "format", "lloyds", "input format")
	cmd.Flags().StringVar(&currency, "currency", "", "currency code (default from "+config.FileName+", else GBP)")
	cmd.Flags().StringVarP(&out, "out", "o", "", "output file (default stdout)")

	return cmd
}

func runConvert(cmd *cobra.Command, path, format, currency, out string) error {
	p := importer.DefaultRegistry(currency).Get(format)
	if p == nil {
		return fmt.Errorf("unknown format %q", format)
	}

	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("opening %s: %w", path, err)
	}
	defer f.Close()

	st, err := p.Parse(f)
	if err != nil {
		return fmt.Errorf("parsing %s: %w", path, err)
	}

	var w io.Writer = cmd.OutOrStdout()
	if out != "" {
		of, err := os.Create(out)
		if err != nil {
			return fmt.Errorf("creating %s: %w", out, err)
		}
		defer of.Close()
		w = of
	}

	if err := export.WriteStatement(w, st); err != nil {
		return fmt.Errorf("writing output: %w", err)
	}

	cmd.PrintErrln(export.Summary(st))
	return nil
}

// resolveCurrency picks the currency for a run: the flag wins, then the
// config file in the working directory, then GBP.
func resolveCurrency(flag string) string {
	if flag != "" {
		return flag
	}
	if cfg, err := config.Load(config.FileName); err == nil && cfg.Currency != "" {
		return cfg.Currency
	}
	return config.Default().Currency
}
