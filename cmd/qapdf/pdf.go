package main

import (
	"fmt"
	"time"

	"github.com/arran4/qapdf"
	"github.com/spf13/cobra"
)

var pdfFlags struct {
	title  string
	output string
	seed   uint64
}

func init() {
	pdfCmd.Flags().StringVar(&pdfFlags.title, "title", "", "document title (default from the file)")
	pdfCmd.Flags().StringVarP(&pdfFlags.output, "output", "o", "", "output PDF path (default <output dir>/<title>_<timestamp>.pdf)")
	pdfCmd.Flags().String("scheme", "", "colour scheme")
	pdfCmd.Flags().Uint64Var(&pdfFlags.seed, "seed", 0, "seed for quote selection (0 picks one)")
	rootCmd.AddCommand(pdfCmd)
}

var pdfCmd = &cobra.Command{
	Use:   "pdf <questions file>",
	Short: "Render a JSON, YAML or Markdown question file to PDF",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		flagOverride(cmd, "scheme", &cfg.ColorScheme)
		set, err := qapdf.LoadQuestions(args[0], cfg.JSONDir)
		if err != nil {
			return err
		}
		title := pdfFlags.title
		if title == "" {
			title = set.Title
		}
		if title == "" {
			title = qapdf.DefaultTitle(args[0])
		}
		path, err := renderPDF(set.Questions, title, pdfFlags.output, pdfFlags.seed)
		if err != nil {
			return err
		}
		fmt.Println(styles.Success.Render("PDF written:"), styles.Path.Render(path))
		return nil
	},
}

// renderPDF writes questions using the loaded configuration.
func renderPDF(qs []qapdf.Question, title, output string, seed uint64) (string, error) {
	if output == "" {
		output = qapdf.OutputFilename(title, cfg.OutputDir, time.Now())
	}
	opts := cfg.RenderOptions(title)
	opts.Seed = seed
	opts.Logger = &log
	log.Info().Str("title", title).Int("questions", len(qs)).Str("scheme", opts.Scheme).Msg("creating pdf")
	return qapdf.CreatePDF(qs, output, opts)
}
