package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vedantvaibhav/Lumus/internal/llm"
	"github.com/vedantvaibhav/Lumus/internal/synth"
)

var topicCmd = &cobra.Command{
	Use:   "topic <name>",
	Short: "Generate a quiz about a topic using public reference material",
	Long: "Gathers material about the topic from Wikipedia and DuckDuckGo and\n" +
		"synthesizes a multiple-choice / true-false quiz from it. Falls back to\n" +
		"a generic quiz when nothing can be gathered.",
	Example: `  lumus topic "Photosynthesis"
  lumus topic "Machine Learning" --count 15 --export json -o ml.json`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		count, _ := cmd.Flags().GetInt("count")
		exportName, _ := cmd.Flags().GetString("export")
		outPath, _ := cmd.Flags().GetString("output")

		cfg, log, err := loadApp()
		if err != nil {
			return err
		}
		defer log.Sync()

		llmCfg, err := cfg.LLM()
		if err != nil {
			return err
		}

		ctx := context.Background()
		provider, err := llm.NewProvider(ctx, llmCfg, nil)
		if err != nil {
			return fmt.Errorf("init model provider: %w", err)
		}

		ts := synth.NewTopicSynthesizer(provider, nil, log)
		q := ts.Synthesize(ctx, args[0], count)

		return writeQuiz(q, exportName, outPath)
	},
}

func init() {
	topicCmd.Flags().IntP("count", "n", 10, "Number of questions to generate")
	topicCmd.Flags().StringP("export", "e", "", "Export format: json, csv, html or anki")
	topicCmd.Flags().StringP("output", "o", "", "Output file for the exported quiz (default stdout)")
}
