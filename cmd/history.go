package cmd

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/vedantvaibhav/Lumus/internal/store"
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "List previously generated quizzes",
	RunE: func(cmd *cobra.Command, args []string) error {
		limit, _ := cmd.Flags().GetInt("limit")

		s, err := openHistory(cmd)
		if err != nil {
			return err
		}
		defer s.Close()

		quizzes, err := s.ListQuizzes(context.Background(), limit)
		if err != nil {
			return fmt.Errorf("list quizzes: %w", err)
		}
		if len(quizzes) == 0 {
			fmt.Println("No quizzes generated yet.")
			return nil
		}

		fmt.Printf("%-36s  %-19s  %-5s  %-6s  %s\n",
			"ID", "Created", "Count", "Kind", "Title")
		fmt.Println(strings.Repeat("─", 100))
		for _, q := range quizzes {
			title := q.Title
			if len(title) > 40 {
				title = title[:40]
			}
			fmt.Printf("%-36s  %-19s  %-5d  %-6s  %s\n",
				q.ID,
				q.CreatedAt.Local().Format("2006-01-02 15:04:05"),
				q.TotalQuestions,
				q.SourceKind,
				title,
			)
		}
		return nil
	},
}

var historyShowCmd = &cobra.Command{
	Use:   "show <id>",
	Short: "Show a stored quiz",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		exportName, _ := cmd.Flags().GetString("export")
		outPath, _ := cmd.Flags().GetString("output")

		s, err := openHistory(cmd)
		if err != nil {
			return err
		}
		defer s.Close()

		q, err := s.GetQuiz(context.Background(), args[0])
		if err != nil {
			return err
		}
		return writeQuiz(q, exportName, outPath)
	},
}

func openHistory(cmd *cobra.Command) (*store.Store, error) {
	cfg, _, err := loadApp()
	if err != nil {
		return nil, err
	}
	dbPath, err := resolveDBPath(cmd, cfg)
	if err != nil {
		return nil, fmt.Errorf("resolve database path: %w", err)
	}
	s, err := store.Open(dbPath)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	return s, nil
}

func init() {
	historyCmd.Flags().IntP("limit", "n", 20, "Number of quizzes to show")
	historyShowCmd.Flags().StringP("export", "e", "", "Export format: json, csv, html or anki")
	historyShowCmd.Flags().StringP("output", "o", "", "Output file for the exported quiz (default stdout)")
	historyCmd.AddCommand(historyShowCmd)
}
