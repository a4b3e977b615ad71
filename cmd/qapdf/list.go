package main

import (
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"sort"
	"strings"

	"github.com/arran4/qapdf"
	"github.com/arran4/qapdf/theme"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(listCmd, schemesCmd)
}

var questionExts = map[string]bool{".json": true, ".yaml": true, ".yml": true, ".md": true, ".markdown": true}

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List question files in the JSON directory",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		entries, err := os.ReadDir(cfg.JSONDir)
		if err != nil {
			if os.IsNotExist(err) {
				fmt.Println(styles.Muted.Render("no question files in " + cfg.JSONDir))
				return nil
			}
			return err
		}
		var names []string
		for _, e := range entries {
			if !e.IsDir() && questionExts[strings.ToLower(filepath.Ext(e.Name()))] {
				names = append(names, e.Name())
			}
		}
		sort.Strings(names)
		fmt.Println(styles.Title.Render("Question files in " + cfg.JSONDir))
		for _, n := range names {
			path := filepath.Join(cfg.JSONDir, n)
			set, err := qapdf.LoadQuestions(path)
			if err != nil {
				log.Warn().Err(err).Str("file", path).Msg("skipping")
				continue
			}
			fmt.Printf("  %-40s %s\n", n, styles.Muted.Render(fmt.Sprintf("%d questions", len(set.Questions))))
		}
		return nil
	},
}

var schemesCmd = &cobra.Command{
	Use:   "schemes",
	Short: "List the available colour schemes",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		r := theme.NewResolver(cfg.RenderOptions("").Schemes, log)
		names := theme.Names()
		var extra []string
		for k := range cfg.Schemes {
			if k = strings.ToLower(k); !slices.Contains(names, k) {
				extra = append(extra, k)
			}
		}
		sort.Strings(extra)
		names = append(names, extra...)
		for _, n := range names {
			t := r.Resolve(n)
			kind := "light"
			if t.Dark {
				kind = "dark"
			}
			line := fmt.Sprintf("  %-8s %s%s%s%s %s", n, swatch(t.Primary), swatch(t.Secondary), swatch(t.Accent), swatch(t.Background), styles.Muted.Render(kind))
			if n == cfg.ColorScheme {
				line += " " + styles.Success.Render("(default)")
			}
			fmt.Println(line)
		}
		return nil
	},
}
