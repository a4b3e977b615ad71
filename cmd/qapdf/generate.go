package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/arran4/qapdf"
	"github.com/arran4/qapdf/generate"
	"github.com/spf13/cobra"
)

var genFlags struct {
	output string
	pdf    bool
	title  string
}

func init() {
	generateCmd.Flags().IntP("count", "n", 0, "number of questions (default from config)")
	generateCmd.Flags().Int("batch-size", 0, "questions per request (default from config)")
	generateCmd.Flags().StringVarP(&genFlags.output, "output", "o", "", "output JSON path (default <json dir>/<topic>_questions.json)")
	generateCmd.Flags().BoolVar(&genFlags.pdf, "pdf", false, "also render the questions to PDF")
	generateCmd.Flags().StringVar(&genFlags.title, "title", "", "PDF title (default the topic)")
	generateCmd.Flags().String("scheme", "", "colour scheme for --pdf")
	rootCmd.AddCommand(generateCmd)
}

var generateCmd = &cobra.Command{
	Use:   "generate <topic>",
	Short: "Generate questions about a topic with the configured model",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		flagOverride(cmd, "count", &cfg.QuestionCount)
		flagOverride(cmd, "batch-size", &cfg.BatchSize)
		flagOverride(cmd, "scheme", &cfg.ColorScheme)
		if err := cfg.Validate(true); err != nil {
			return err
		}
		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
		defer stop()

		p, err := newProvider(ctx)
		if err != nil {
			return err
		}
		g := generate.NewGenerator(p, cfg.BatchSize, log)
		g.Limiter = limiterFor(cfg.APIType)

		topic := args[0]
		qs, err := g.Generate(ctx, topic, cfg.QuestionCount)
		if err != nil {
			return err
		}
		out := genFlags.output
		if out == "" {
			out = generate.OutputPath(cfg.JSONDir, topic)
		}
		if err := qapdf.SaveQuestions(out, qs); err != nil {
			return err
		}
		fmt.Println(styles.Success.Render(fmt.Sprintf("Saved %d questions:", len(qs))), styles.Path.Render(out))

		if !genFlags.pdf {
			return nil
		}
		title := genFlags.title
		if title == "" {
			title = qapdf.DefaultTitle(out)
		}
		path, err := renderPDF(qs, title, "", 0)
		if err != nil {
			return err
		}
		fmt.Println(styles.Success.Render("PDF written:"), styles.Path.Render(path))
		return nil
	},
}

func newProvider(ctx context.Context) (generate.Provider, error) {
	p, err := generate.NewProvider(cfg.Provider())
	if err != nil {
		return nil, err
	}
	if o, ok := p.(*generate.Ollama); ok {
		if err := o.Ping(ctx); err != nil {
			return nil, err
		}
	}
	log.Debug().Str("provider", p.Name()).Msg("provider ready")
	return p, nil
}

func limiterFor(apiType string) *generate.Limiter {
	if apiType == "ollama" {
		return generate.NewLimiter(generate.OllamaLimits)
	}
	return generate.NewLimiter(generate.OpenAILimits)
}
