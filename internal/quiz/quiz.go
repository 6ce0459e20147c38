// Package quiz assembles generated questions into a playable quiz,
// records the user's answers and grades them.
package quiz

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/studybuddy-ai/studybuddy/internal/quizgen"
)

// Params describes the quiz to build.
type Params struct {
	Topic      string
	Type       quizgen.QuestionType
	Difficulty quizgen.Difficulty
	Count      int
}

// Question is one quiz entry. Exactly one of MCQ / FillBlank is set,
// matching Type.
type Question struct {
	Type      quizgen.QuestionType
	MCQ       *quizgen.MCQQuestion
	FillBlank *quizgen.FillBlankQuestion
}

// Text returns the question prompt shown to the user.
func (q Question) Text() string {
	if q.MCQ != nil {
		return q.MCQ.Question
	}
	return q.FillBlank.Question
}

// CorrectAnswer returns the expected answer.
func (q Question) CorrectAnswer() string {
	if q.MCQ != nil {
		return q.MCQ.CorrectAnswer
	}
	return q.FillBlank.Answer
}

// Quiz holds an ordered set of questions and the user's answers.
type Quiz struct {
	ID         string
	Topic      string
	Type       quizgen.QuestionType
	Difficulty quizgen.Difficulty
	StartedAt  time.Time

	Questions []Question
	answers   []string
	answered  []bool
}

// Result is one graded question.
type Result struct {
	Position      int
	Question      Question
	UserAnswer    string
	CorrectAnswer string
	Correct       bool
}

// Summary is the overall score of a graded quiz.
type Summary struct {
	Total   int
	Correct int
}

// Percent returns the score as a percentage.
func (s Summary) Percent() float64 {
	if s.Total == 0 {
		return 0
	}
	return float64(s.Correct) / float64(s.Total) * 100
}

// Generator produces questions for a quiz. *quizgen.Generator satisfies it.
type Generator interface {
	GenerateMCQ(ctx context.Context, topic string, difficulty quizgen.Difficulty) (*quizgen.MCQQuestion, error)
	GenerateFillBlank(ctx context.Context, topic string, difficulty quizgen.Difficulty) (*quizgen.FillBlankQuestion, error)
}

// Build generates params.Count questions sequentially and returns the
// assembled quiz. It stops at the first generation failure.
func Build(ctx context.Context, gen Generator, params Params) (*Quiz, error) {
	if params.Topic == "" {
		return nil, fmt.Errorf("quiz: topic is required")
	}
	if params.Count <= 0 {
		params.Count = 1
	}
	if params.Type == "" {
		params.Type = quizgen.TypeMCQ
	}

	q := &Quiz{
		ID:         uuid.NewString(),
		Topic:      params.Topic,
		Type:       params.Type,
		Difficulty: params.Difficulty,
		StartedAt:  time.Now(),
	}

	for i := 0; i < params.Count; i++ {
		var question Question
		switch params.Type {
		case quizgen.TypeMCQ:
			mcq, err := gen.GenerateMCQ(ctx, params.Topic, params.Difficulty)
			if err != nil {
				return nil, fmt.Errorf("quiz: question %d: %w", i+1, err)
			}
			question = Question{Type: quizgen.TypeMCQ, MCQ: mcq}
		case quizgen.TypeFillBlank:
			fb, err := gen.GenerateFillBlank(ctx, params.Topic, params.Difficulty)
			if err != nil {
				return nil, fmt.Errorf("quiz: question %d: %w", i+1, err)
			}
			question = Question{Type: quizgen.TypeFillBlank, FillBlank: fb}
		default:
			return nil, fmt.Errorf("quiz: unknown question type %q", params.Type)
		}
		q.Questions = append(q.Questions, question)
	}

	q.answers = make([]string, len(q.Questions))
	q.answered = make([]bool, len(q.Questions))
	return q, nil
}

// Answer records the user's response to question i (0-based).
func (q *Quiz) Answer(i int, text string) error {
	if i < 0 || i >= len(q.Questions) {
		return fmt.Errorf("quiz: question index %d out of range", i)
	}
	q.answers[i] = text
	q.answered[i] = true
	return nil
}

// Answered reports whether every question has a recorded answer.
func (q *Quiz) Answered() bool {
	for _, a := range q.answered {
		if !a {
			return false
		}
	}
	return len(q.answered) > 0
}

// Evaluate grades the quiz. Unanswered questions count as wrong.
func (q *Quiz) Evaluate() ([]Result, Summary) {
	results := make([]Result, 0, len(q.Questions))
	summary := Summary{Total: len(q.Questions)}

	for i, question := range q.Questions {
		user := q.answers[i]
		correct := grade(question, user)
		if correct {
			summary.Correct++
		}
		results = append(results, Result{
			Position:      i + 1,
			Question:      question,
			UserAnswer:    user,
			CorrectAnswer: question.CorrectAnswer(),
			Correct:       correct,
		})
	}
	return results, summary
}

// grade compares the user's answer with the expected one. MCQ answers
// must match exactly since they are picked from the option list;
// typed fill-blank answers are compared case-insensitively after
// trimming whitespace.
func grade(q Question, user string) bool {
	if q.Type == quizgen.TypeMCQ {
		return user == q.MCQ.CorrectAnswer
	}
	return strings.EqualFold(strings.TrimSpace(user), strings.TrimSpace(q.FillBlank.Answer))
}
