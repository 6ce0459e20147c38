package quiz

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/studybuddy-ai/studybuddy/internal/quizgen"
)

type stubGenerator struct {
	mcqs   []*quizgen.MCQQuestion
	fills  []*quizgen.FillBlankQuestion
	err    error
	failAt int // 1-based call at which err is returned; 0 means never
	calls  int
}

func (s *stubGenerator) GenerateMCQ(_ context.Context, _ string, _ quizgen.Difficulty) (*quizgen.MCQQuestion, error) {
	s.calls++
	if s.failAt > 0 && s.calls >= s.failAt {
		return nil, s.err
	}
	q := s.mcqs[(s.calls-1)%len(s.mcqs)]
	return q, nil
}

func (s *stubGenerator) GenerateFillBlank(_ context.Context, _ string, _ quizgen.Difficulty) (*quizgen.FillBlankQuestion, error) {
	s.calls++
	if s.failAt > 0 && s.calls >= s.failAt {
		return nil, s.err
	}
	return s.fills[(s.calls-1)%len(s.fills)], nil
}

func sampleMCQ() *quizgen.MCQQuestion {
	return &quizgen.MCQQuestion{
		Question:      "Which planet is known as the Red Planet?",
		Options:       []string{"Venus", "Mars", "Jupiter", "Saturn"},
		CorrectAnswer: "Mars",
	}
}

func TestBuildMCQQuiz(t *testing.T) {
	gen := &stubGenerator{mcqs: []*quizgen.MCQQuestion{sampleMCQ()}}

	q, err := Build(context.Background(), gen, Params{
		Topic: "Astronomy", Type: quizgen.TypeMCQ, Difficulty: "easy", Count: 3,
	})
	require.NoError(t, err)

	assert.Len(t, q.Questions, 3)
	assert.Equal(t, 3, gen.calls)
	assert.NotEmpty(t, q.ID)
	assert.Equal(t, "Astronomy", q.Topic)
	assert.Equal(t, "Which planet is known as the Red Planet?", q.Questions[0].Text())
}

func TestBuildFailFast(t *testing.T) {
	gen := &stubGenerator{
		mcqs:   []*quizgen.MCQQuestion{sampleMCQ()},
		err:    errors.New("provider down"),
		failAt: 2,
	}

	q, err := Build(context.Background(), gen, Params{
		Topic: "Astronomy", Type: quizgen.TypeMCQ, Count: 5,
	})
	require.Error(t, err)
	assert.Nil(t, q)
	assert.Equal(t, 2, gen.calls, "should stop at the first failure")
	assert.Contains(t, err.Error(), "question 2")
}

func TestBuildRequiresTopic(t *testing.T) {
	_, err := Build(context.Background(), &stubGenerator{}, Params{Count: 1})
	assert.Error(t, err)
}

func TestBuildDefaults(t *testing.T) {
	gen := &stubGenerator{mcqs: []*quizgen.MCQQuestion{sampleMCQ()}}

	q, err := Build(context.Background(), gen, Params{Topic: "Astronomy"})
	require.NoError(t, err)
	assert.Len(t, q.Questions, 1)
	assert.Equal(t, quizgen.TypeMCQ, q.Type)
}

func TestEvaluateMCQ(t *testing.T) {
	gen := &stubGenerator{mcqs: []*quizgen.MCQQuestion{sampleMCQ()}}
	q, err := Build(context.Background(), gen, Params{Topic: "Astronomy", Count: 2})
	require.NoError(t, err)

	require.NoError(t, q.Answer(0, "Mars"))
	require.NoError(t, q.Answer(1, "Venus"))
	assert.True(t, q.Answered())

	results, summary := q.Evaluate()
	require.Len(t, results, 2)
	assert.True(t, results[0].Correct)
	assert.False(t, results[1].Correct)
	assert.Equal(t, Summary{Total: 2, Correct: 1}, summary)
	assert.InDelta(t, 50.0, summary.Percent(), 0.001)
}

func TestEvaluateMCQExactMatchOnly(t *testing.T) {
	gen := &stubGenerator{mcqs: []*quizgen.MCQQuestion{sampleMCQ()}}
	q, err := Build(context.Background(), gen, Params{Topic: "Astronomy", Count: 1})
	require.NoError(t, err)

	// Option answers are picked from the list, so no normalization.
	require.NoError(t, q.Answer(0, "mars"))
	results, _ := q.Evaluate()
	assert.False(t, results[0].Correct)
}

func TestEvaluateFillBlankNormalization(t *testing.T) {
	gen := &stubGenerator{fills: []*quizgen.FillBlankQuestion{{
		Question: "The chemical symbol for gold is _____.",
		Answer:   "Au",
	}}}

	tests := []struct {
		name   string
		answer string
		want   bool
	}{
		{"exact", "Au", true},
		{"lowercase", "au", true},
		{"padded", "  AU  ", true},
		{"wrong", "Ag", false},
		{"empty", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			q, err := Build(context.Background(), gen, Params{
				Topic: "Chemistry", Type: quizgen.TypeFillBlank, Count: 1,
			})
			require.NoError(t, err)

			require.NoError(t, q.Answer(0, tt.answer))
			results, _ := q.Evaluate()
			assert.Equal(t, tt.want, results[0].Correct)
		})
	}
}

func TestEvaluateUnansweredCountsWrong(t *testing.T) {
	gen := &stubGenerator{mcqs: []*quizgen.MCQQuestion{sampleMCQ()}}
	q, err := Build(context.Background(), gen, Params{Topic: "Astronomy", Count: 2})
	require.NoError(t, err)

	require.NoError(t, q.Answer(0, "Mars"))
	assert.False(t, q.Answered())

	_, summary := q.Evaluate()
	assert.Equal(t, 1, summary.Correct)
}

func TestAnswerOutOfRange(t *testing.T) {
	gen := &stubGenerator{mcqs: []*quizgen.MCQQuestion{sampleMCQ()}}
	q, err := Build(context.Background(), gen, Params{Topic: "Astronomy", Count: 1})
	require.NoError(t, err)

	assert.Error(t, q.Answer(-1, "x"))
	assert.Error(t, q.Answer(1, "x"))
}

func TestWriteCSV(t *testing.T) {
	results := []Result{
		{
			Position:      1,
			Question:      Question{Type: quizgen.TypeMCQ, MCQ: sampleMCQ()},
			UserAnswer:    "Mars",
			CorrectAnswer: "Mars",
			Correct:       true,
		},
		{
			Position: 2,
			Question: Question{Type: quizgen.TypeFillBlank, FillBlank: &quizgen.FillBlankQuestion{
				Question: "Water is H2_____.", Answer: "O",
			}},
			UserAnswer:    "H",
			CorrectAnswer: "O",
			Correct:       false,
		},
	}

	var buf strings.Builder
	require.NoError(t, WriteCSV(&buf, results))

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, "number,question,your_answer,correct_answer,correct", lines[0])
	assert.Contains(t, lines[1], "true")
	assert.Contains(t, lines[2], "false")
}

func TestSaveCSVFilename(t *testing.T) {
	dir := t.TempDir()

	path, err := SaveCSV(dir, []Result{{
		Position:      1,
		Question:      Question{Type: quizgen.TypeMCQ, MCQ: sampleMCQ()},
		UserAnswer:    "Mars",
		CorrectAnswer: "Mars",
		Correct:       true,
	}})
	require.NoError(t, err)

	assert.Regexp(t, `^quiz_results_\d{8}_\d{6}\.csv$`, filepath.Base(path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "Mars")
}
