package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vedantvaibhav/Lumus/internal/export"
	"github.com/vedantvaibhav/Lumus/internal/llm"
	"github.com/vedantvaibhav/Lumus/internal/orchestrator"
	"github.com/vedantvaibhav/Lumus/internal/quiz"
	"github.com/vedantvaibhav/Lumus/internal/reader"
	"github.com/vedantvaibhav/Lumus/internal/store"
	"github.com/vedantvaibhav/Lumus/internal/synth"
)

var generateCmd = &cobra.Command{
	Use:   "generate <source>",
	Short: "Generate a quiz from a URL, PDF, file or raw text",
	Example: `  lumus generate https://en.wikipedia.org/wiki/Photosynthesis
  lumus generate notes.pdf --count 15 --difficulty medium
  lumus generate "The mitochondria is the powerhouse of the cell..." --export anki -o cards.csv`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		count, _ := cmd.Flags().GetInt("count")
		kind, _ := cmd.Flags().GetString("kind")
		difficulty, _ := cmd.Flags().GetString("difficulty")
		types, _ := cmd.Flags().GetStringSlice("types")
		topics, _ := cmd.Flags().GetStringSlice("topics")
		exportName, _ := cmd.Flags().GetString("export")
		outPath, _ := cmd.Flags().GetString("output")
		save, _ := cmd.Flags().GetBool("save")

		cfg, log, err := loadApp()
		if err != nil {
			return err
		}
		defer log.Sync()

		req := quiz.GenerationRequest{
			Source:               args[0],
			SourceKind:           quiz.SourceKind(kind),
			NumQuestions:         count,
			DifficultyPreference: quiz.Difficulty(difficulty),
			Topics:               topics,
		}
		for _, t := range types {
			req.QuestionTypes = append(req.QuestionTypes, quiz.QuestionType(t))
		}
		if err := req.Normalize(); err != nil {
			return err
		}

		ctx := context.Background()

		llmCfg, err := cfg.LLM()
		if err != nil {
			return err
		}

		var history *store.Store
		if save && cfg.SaveHistory {
			dbPath, err := resolveDBPath(cmd, cfg)
			if err != nil {
				return fmt.Errorf("resolve database path: %w", err)
			}
			history, err = store.Open(dbPath)
			if err != nil {
				return fmt.Errorf("open database: %w", err)
			}
			defer history.Close()
		}

		var requestLog llm.RequestLog
		if history != nil {
			requestLog = history
		}
		provider, err := llm.NewProvider(ctx, llmCfg, requestLog)
		if err != nil {
			return fmt.Errorf("init model provider: %w", err)
		}

		o := orchestrator.New(
			reader.New(log),
			synth.New(provider, synth.DefaultConfig(), log),
			historyOrNil(history),
			log,
		)

		result := o.GenerateQuiz(ctx, req)
		if !result.Success {
			return fmt.Errorf("%s (after %.1fs)", result.Error, result.ElapsedSeconds)
		}

		fmt.Printf("Generated %d questions in %.1fs\n",
			result.Quiz.TotalQuestions, result.ElapsedSeconds)

		return writeQuiz(result.Quiz, exportName, outPath)
	},
}

// historyOrNil keeps a nil *store.Store from becoming a non-nil interface.
func historyOrNil(s *store.Store) orchestrator.History {
	if s == nil {
		return nil
	}
	return s
}

// writeQuiz prints the quiz summary, or serializes it when an export
// format was requested.
func writeQuiz(q *quiz.Quiz, formatName, outPath string) error {
	if formatName == "" {
		export.WriteSummary(os.Stdout, q)
		return nil
	}

	format, err := export.ParseFormat(formatName)
	if err != nil {
		return err
	}

	out := os.Stdout
	if outPath != "" {
		f, err := os.Create(outPath)
		if err != nil {
			return fmt.Errorf("create %s: %w", outPath, err)
		}
		defer f.Close()
		out = f
	}
	if err := export.Write(out, q, format); err != nil {
		return err
	}
	if outPath != "" {
		fmt.Printf("Exported quiz to %s\n", outPath)
	}
	return nil
}

func init() {
	generateCmd.Flags().IntP("count", "n", quiz.DefaultQuestions, "Number of questions to generate")
	generateCmd.Flags().StringP("kind", "k", "", "Source kind: url, pdf, file or text (detected when omitted)")
	generateCmd.Flags().StringP("difficulty", "d", "", "Preferred difficulty: easy, medium or hard")
	generateCmd.Flags().StringSliceP("types", "t", nil, "Question types: multiple-choice, short, true-false")
	generateCmd.Flags().StringSlice("topics", nil, "Topics to focus the questions on")
	generateCmd.Flags().StringP("export", "e", "", "Export format: json, csv, html or anki")
	generateCmd.Flags().StringP("output", "o", "", "Output file for the exported quiz (default stdout)")
	generateCmd.Flags().Bool("save", true, "Save the generated quiz to history")
}
