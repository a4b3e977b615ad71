package main

import (
	"fmt"
	"path/filepath"

	"github.com/arran4/qapdf"
	"github.com/spf13/cobra"
)

var sampleFlags struct {
	output string
	pdf    bool
}

func init() {
	sampleCmd.Flags().StringVarP(&sampleFlags.output, "output", "o", "", "output JSON path (default <json dir>/sample_questions.json)")
	sampleCmd.Flags().BoolVar(&sampleFlags.pdf, "pdf", true, "also render the sample to PDF")
	rootCmd.AddCommand(sampleCmd)
}

var sampleQuestions = []qapdf.Question{
	{
		Question: "What does the `yield` keyword do in Python?",
		Answer: "It turns a function into a generator. Each `yield` hands a value to the caller and suspends the function until the next value is requested.\n\n" +
			"```python\ndef countdown(n):\n    while n > 0:\n        yield n  # pause here\n        n -= 1\n\nfor i in countdown(3):\n    print(f\"{i}...\")\n```",
	},
	{
		Question: "How do you declare a typed property in PHP 8?",
		Answer: "Put the type before the property name. Constructor promotion declares and assigns in one step:\n\n" +
			"```php\n<?php\nclass User {\n    public function __construct(\n        private string $name,\n        private ?int $age = null,\n    ) {}\n}\n```\n\nAccessing an uninitialised typed property throws an `Error`.",
	},
	{
		Question: "What is the difference between a list and a tuple?",
		Answer: "A `list` is mutable and a `tuple` is not. Tuples can be dictionary keys when all their items are hashable.",
	},
	{
		Question: "How does Go report errors?",
		Answer: "Functions return an `error` value as their last result:\n\n```go\nf, err := os.Open(name)\nif err != nil {\n\treturn fmt.Errorf(\"open config: %w\", err)\n}\ndefer f.Close()\n```",
	},
}

var sampleCmd = &cobra.Command{
	Use:   "sample",
	Short: "Write a sample question set and render it",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		out := sampleFlags.output
		if out == "" {
			out = filepath.Join(cfg.JSONDir, "sample_questions.json")
		}
		if err := qapdf.SaveQuestions(out, sampleQuestions); err != nil {
			return err
		}
		fmt.Println(styles.Success.Render("Sample written:"), styles.Path.Render(out))
		if !sampleFlags.pdf {
			return nil
		}
		path, err := renderPDF(sampleQuestions, "Sample", "", 0)
		if err != nil {
			return err
		}
		fmt.Println(styles.Success.Render("PDF written:"), styles.Path.Render(path))
		return nil
	},
}
