package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/studybuddy-ai/studybuddy/internal/quiz"
	"github.com/studybuddy-ai/studybuddy/internal/quizgen"
	"github.com/studybuddy-ai/studybuddy/internal/store"
)

var resultsCmd = &cobra.Command{
	Use:   "results",
	Short: "Inspect stored quiz results",
}

var resultsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List recent quiz results",
	RunE: func(cmd *cobra.Command, args []string) error {
		limit, _ := cmd.Flags().GetInt("limit")

		s, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer s.Close()

		results, err := s.ResultRepo().ListQuizResults(cmd.Context(), limit)
		if err != nil {
			return fmt.Errorf("list results: %w", err)
		}
		if len(results) == 0 {
			fmt.Println("No quiz results found.")
			return nil
		}

		fmt.Printf("%-36s  %-19s  %-20s  %-10s  %-8s  %s\n",
			"ID", "Timestamp", "Topic", "Type", "Score", "Percent")
		fmt.Println(strings.Repeat("─", 110))

		for _, r := range results {
			topic := r.Topic
			if len(topic) > 20 {
				topic = topic[:20]
			}
			fmt.Printf("%-36s  %-19s  %-20s  %-10s  %2d/%-5d  %.0f%%\n",
				r.ID,
				r.Timestamp.Local().Format("2006-01-02 15:04:05"),
				topic,
				r.QuestionType,
				r.Correct, r.Total,
				r.Percent(),
			)
		}
		return nil
	},
}

var resultsViewCmd = &cobra.Command{
	Use:   "view <id>",
	Short: "View one quiz result with its questions",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer s.Close()

		result, items, err := s.ResultRepo().GetQuizResult(cmd.Context(), args[0])
		if err != nil {
			return fmt.Errorf("get result: %w", err)
		}
		if result == nil {
			return fmt.Errorf("quiz result %q not found", args[0])
		}

		fmt.Printf("Topic:      %s\n", result.Topic)
		fmt.Printf("Type:       %s\n", result.QuestionType)
		fmt.Printf("Difficulty: %s\n", result.Difficulty)
		fmt.Printf("Taken:      %s\n", result.Timestamp.Local().Format("2006-01-02 15:04:05"))
		fmt.Printf("Score:      %d/%d (%.0f%%)\n", result.Correct, result.Total, result.Percent())
		fmt.Println()

		for _, item := range items {
			mark := "✓"
			if !item.IsCorrect {
				mark = "✗"
			}
			fmt.Printf("%s %d. %s\n", mark, item.Position, item.Question)
			if !item.IsCorrect {
				fmt.Printf("    you: %s · answer: %s\n", item.UserAnswer, item.CorrectAnswer)
			}
		}
		return nil
	},
}

var resultsExportCmd = &cobra.Command{
	Use:   "export <id>",
	Short: "Export one quiz result as CSV",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		dir, _ := cmd.Flags().GetString("out")

		s, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer s.Close()

		result, items, err := s.ResultRepo().GetQuizResult(cmd.Context(), args[0])
		if err != nil {
			return fmt.Errorf("get result: %w", err)
		}
		if result == nil {
			return fmt.Errorf("quiz result %q not found", args[0])
		}

		path, err := quiz.SaveCSV(dir, toQuizResults(items))
		if err != nil {
			return err
		}
		fmt.Println("Exported to", path)
		return nil
	},
}

// toQuizResults rebuilds graded results from stored rows for CSV export.
func toQuizResults(items []store.QuizResultItem) []quiz.Result {
	results := make([]quiz.Result, 0, len(items))
	for _, item := range items {
		var q quiz.Question
		if item.QuestionType == string(quizgen.TypeMCQ) {
			q = quiz.Question{Type: quizgen.TypeMCQ, MCQ: &quizgen.MCQQuestion{
				Question:      item.Question,
				Options:       item.Options,
				CorrectAnswer: item.CorrectAnswer,
			}}
		} else {
			q = quiz.Question{Type: quizgen.TypeFillBlank, FillBlank: &quizgen.FillBlankQuestion{
				Question: item.Question,
				Answer:   item.CorrectAnswer,
			}}
		}
		results = append(results, quiz.Result{
			Position:      item.Position,
			Question:      q,
			UserAnswer:    item.UserAnswer,
			CorrectAnswer: item.CorrectAnswer,
			Correct:       item.IsCorrect,
		})
	}
	return results
}

func init() {
	resultsListCmd.Flags().IntP("limit", "n", 20, "Number of results to show")
	resultsExportCmd.Flags().StringP("out", "o", ".", "Directory to write the CSV to")

	resultsCmd.AddCommand(resultsListCmd)
	resultsCmd.AddCommand(resultsViewCmd)
	resultsCmd.AddCommand(resultsExportCmd)
}
