package cmd

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/studybuddy-ai/studybuddy/internal/llm"
	"github.com/studybuddy-ai/studybuddy/internal/quizgen"
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate quiz questions and print them",
	RunE: func(cmd *cobra.Command, args []string) error {
		topic, _ := cmd.Flags().GetString("topic")
		difficulty, _ := cmd.Flags().GetString("difficulty")
		qtype, _ := cmd.Flags().GetString("type")
		count, _ := cmd.Flags().GetInt("count")
		showAnswers, _ := cmd.Flags().GetBool("show-answers")
		asJSON, _ := cmd.Flags().GetBool("json")

		if topic == "" {
			return fmt.Errorf("--topic is required")
		}
		if qtype != string(quizgen.TypeMCQ) && qtype != string(quizgen.TypeFillBlank) {
			return fmt.Errorf("invalid --type %q (want mcq or fill_blank)", qtype)
		}
		if count < 1 {
			count = 1
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
		diff := quizgen.Difficulty(difficulty)

		type output struct {
			Type          string   `json:"type"`
			Question      string   `json:"question"`
			Options       []string `json:"options,omitempty"`
			CorrectAnswer string   `json:"correct_answer"`
		}
		var generated []output

		for i := 0; i < count; i++ {
			switch quizgen.QuestionType(qtype) {
			case quizgen.TypeMCQ:
				q, err := gen.GenerateMCQ(ctx, topic, diff)
				if err != nil {
					return err
				}
				generated = append(generated, output{
					Type: qtype, Question: q.Question,
					Options: q.Options, CorrectAnswer: q.CorrectAnswer,
				})
			case quizgen.TypeFillBlank:
				q, err := gen.GenerateFillBlank(ctx, topic, diff)
				if err != nil {
					return err
				}
				generated = append(generated, output{
					Type: qtype, Question: q.Question, CorrectAnswer: q.Answer,
				})
			}
		}

		if asJSON {
			enc := json.NewEncoder(os.Stdout)
			enc.SetIndent("", "  ")
			return enc.Encode(generated)
		}

		labels := []string{"A", "B", "C", "D"}
		for i, q := range generated {
			fmt.Printf("%d. %s\n", i+1, q.Question)
			for j, opt := range q.Options {
				fmt.Printf("   %s) %s\n", labels[j], opt)
			}
			if showAnswers {
				fmt.Printf("   %s %s\n", strings.Repeat("─", 3), q.CorrectAnswer)
			}
			fmt.Println()
		}
		return nil
	},
}

func init() {
	generateCmd.Flags().StringP("topic", "t", "", "Study topic to generate questions for")
	generateCmd.Flags().StringP("difficulty", "d", "medium", "Question difficulty (easy, medium, hard)")
	generateCmd.Flags().String("type", "mcq", "Question type (mcq, fill_blank)")
	generateCmd.Flags().IntP("count", "n", 5, "Number of questions")
	generateCmd.Flags().Bool("show-answers", false, "Print the correct answer under each question")
	generateCmd.Flags().Bool("json", false, "Output questions as JSON")
}
