package quizgen

import (
	"fmt"
	"slices"
	"strings"
)

// Difficulty is a free-form difficulty label passed through to the
// prompt. The conventional values are easy, medium and hard.
type Difficulty string

const (
	DifficultyEasy   Difficulty = "easy"
	DifficultyMedium Difficulty = "medium"
	DifficultyHard   Difficulty = "hard"
)

// orDefault substitutes medium for an empty difficulty.
func (d Difficulty) orDefault() Difficulty {
	if d == "" {
		return DifficultyMedium
	}
	return d
}

// QuestionType discriminates the two generated question shapes.
type QuestionType string

const (
	TypeMCQ       QuestionType = "mcq"
	TypeFillBlank QuestionType = "fill_blank"
)

// BlankMarker is the literal placeholder a fill-in-the-blank question
// must contain.
const BlankMarker = "_____"

// MCQQuestion is a multiple-choice question with exactly four options,
// one of which is the correct answer.
type MCQQuestion struct {
	Question      string   `json:"question"`
	Options       []string `json:"options"`
	CorrectAnswer string   `json:"correct_answer"`
}

// Validate checks the MCQ shape invariant: exactly 4 options and the
// correct answer present among them.
func (q *MCQQuestion) Validate() error {
	if len(q.Options) != 4 {
		return &ValidationError{
			Reason: fmt.Sprintf("expected 4 options, got %d", len(q.Options)),
		}
	}
	if !slices.Contains(q.Options, q.CorrectAnswer) {
		return &ValidationError{
			Reason: fmt.Sprintf("correct answer %q not found in options", q.CorrectAnswer),
		}
	}
	return nil
}

// FillBlankQuestion is a question whose text contains a blank to be
// completed by the answer.
type FillBlankQuestion struct {
	Question string `json:"question"`
	Answer   string `json:"answer"`
}

// Validate checks the fill-blank shape invariant: the blank marker must
// appear in the question text. Presence is sufficient; multiple
// occurrences are accepted.
func (q *FillBlankQuestion) Validate() error {
	if !strings.Contains(q.Question, BlankMarker) {
		return &ValidationError{
			Reason: fmt.Sprintf("question text does not contain the blank marker %q", BlankMarker),
		}
	}
	return nil
}
