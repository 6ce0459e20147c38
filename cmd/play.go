package cmd

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/studybuddy-ai/studybuddy/internal/llm"
	"github.com/studybuddy-ai/studybuddy/internal/quiz"
	"github.com/studybuddy-ai/studybuddy/internal/quizgen"
	"github.com/studybuddy-ai/studybuddy/internal/store"
	"github.com/studybuddy-ai/studybuddy/internal/tui"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Take an interactive quiz in the terminal",
	RunE: func(cmd *cobra.Command, args []string) error {
		topic, _ := cmd.Flags().GetString("topic")
		difficulty, _ := cmd.Flags().GetString("difficulty")
		qtype, _ := cmd.Flags().GetString("type")
		count, _ := cmd.Flags().GetInt("count")
		csvDir, _ := cmd.Flags().GetString("csv")

		if topic == "" {
			return fmt.Errorf("--topic is required")
		}

		ctx := cmd.Context()

		s, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer s.Close()

		provider, err := llm.NewProviderFromEnv(ctx, s.EventRepo())
		if err != nil {
			return fmt.Errorf("configure LLM provider: %w", err)
		}

		gen := quizgen.New(provider, slog.Default(), quizgen.DefaultConfig())

		fmt.Printf("Generating %d question(s) on %q...\n", count, topic)
		q, err := quiz.Build(ctx, gen, quiz.Params{
			Topic:      topic,
			Type:       quizgen.QuestionType(qtype),
			Difficulty: quizgen.Difficulty(difficulty),
			Count:      count,
		})
		if err != nil {
			return err
		}

		results, summary, err := tui.Run(q)
		if err != nil {
			return err
		}
		if results == nil {
			fmt.Println("Quiz aborted.")
			return nil
		}

		fmt.Printf("Score: %d/%d (%.0f%%)\n", summary.Correct, summary.Total, summary.Percent())

		if err := saveResult(cmd, s, q, results, summary); err != nil {
			fmt.Fprintln(os.Stderr, "warning: could not save result:", err)
		}

		if csvDir != "" {
			path, err := quiz.SaveCSV(csvDir, results)
			if err != nil {
				return err
			}
			fmt.Println("Results exported to", path)
		}
		return nil
	},
}

// saveResult persists a graded quiz to the store.
func saveResult(cmd *cobra.Command, s *store.Store, q *quiz.Quiz, results []quiz.Result, summary quiz.Summary) error {
	header := store.QuizResult{
		ID:           q.ID,
		Topic:        q.Topic,
		QuestionType: string(q.Type),
		Difficulty:   string(q.Difficulty),
		Total:        summary.Total,
		Correct:      summary.Correct,
	}

	items := make([]store.QuizResultItem, 0, len(results))
	for _, r := range results {
		item := store.QuizResultItem{
			Position:      r.Position,
			QuestionType:  string(r.Question.Type),
			Question:      r.Question.Text(),
			UserAnswer:    r.UserAnswer,
			CorrectAnswer: r.CorrectAnswer,
			IsCorrect:     r.Correct,
		}
		if r.Question.MCQ != nil {
			item.Options = r.Question.MCQ.Options
		}
		items = append(items, item)
	}

	return s.ResultRepo().SaveQuizResult(cmd.Context(), header, items)
}

func init() {
	playCmd.Flags().StringP("topic", "t", "", "Study topic to be quizzed on")
	playCmd.Flags().StringP("difficulty", "d", "medium", "Question difficulty (easy, medium, hard)")
	playCmd.Flags().String("type", "mcq", "Question type (mcq, fill_blank)")
	playCmd.Flags().IntP("count", "n", 5, "Number of questions")
	playCmd.Flags().String("csv", "", "Directory to export the results CSV to")
}
