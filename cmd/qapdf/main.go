// Command qapdf generates interview question sets and renders them to PDF.
package main

import (
	"errors"
	"os"
	"time"

	"github.com/arran4/qapdf/internal/config"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

var (
	configPath string
	debug      bool

	v   = config.New()
	log zerolog.Logger
	cfg *config.Config
)

var rootCmd = &cobra.Command{
	Use:           "qapdf",
	Short:         "Generate interview questions and render them as PDF",
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		level := zerolog.InfoLevel
		if debug {
			level = zerolog.DebugLevel
		}
		log = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.Kitchen}).
			Level(level).With().Timestamp().Logger()
		var err error
		cfg, err = config.Load(v, configPath)
		if err != nil {
			return err
		}
		return cfg.Validate(false)
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "config file (default ./qapdf.yaml if present)")
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "enable debug logging")
}

// flagOverride replaces a configured value with a flag the user set.
func flagOverride[T int | string](cmd *cobra.Command, name string, dst *T) {
	if !cmd.Flags().Changed(name) {
		return
	}
	var val any
	var err error
	switch any(*dst).(type) {
	case int:
		val, err = cmd.Flags().GetInt(name)
	case string:
		val, err = cmd.Flags().GetString(name)
	}
	if err == nil {
		*dst = val.(T)
	}
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fatal(err)
	}
}

func fatal(err error) {
	var msg string
	switch {
	case errors.Is(err, config.ErrInvalid):
		msg = "configuration problem"
	default:
		msg = "failed"
	}
	os.Stderr.WriteString(styles.Error.Render("error: "+msg) + " " + err.Error() + "\n")
	os.Exit(1)
}
