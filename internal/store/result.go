package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"
)

// QuizResult is the stored header row for one completed quiz.
type QuizResult struct {
	ID           string
	Timestamp    time.Time
	Topic        string
	QuestionType string
	Difficulty   string
	Total        int
	Correct      int
}

// Percent returns the score as a percentage.
func (r QuizResult) Percent() float64 {
	if r.Total == 0 {
		return 0
	}
	return float64(r.Correct) / float64(r.Total) * 100
}

// QuizResultItem is one graded question within a stored quiz.
type QuizResultItem struct {
	Position      int
	QuestionType  string
	Question      string
	Options       []string
	UserAnswer    string
	CorrectAnswer string
	IsCorrect     bool
}

// ResultRepo persists completed quizzes.
type ResultRepo interface {
	// SaveQuizResult stores the header and all graded items atomically.
	SaveQuizResult(ctx context.Context, result QuizResult, items []QuizResultItem) error

	// ListQuizResults returns recent quiz headers, newest first.
	ListQuizResults(ctx context.Context, limit int) ([]QuizResult, error)

	// GetQuizResult returns one quiz with its items, or (nil, nil, nil)
	// if not found.
	GetQuizResult(ctx context.Context, id string) (*QuizResult, []QuizResultItem, error)
}

type resultRepo struct {
	db *sql.DB
}

// optionsSep joins MCQ options into a single column. The separator
// cannot appear in model output because option text is single-line.
const optionsSep = "\x1f"

func (r *resultRepo) SaveQuizResult(ctx context.Context, result QuizResult, items []QuizResultItem) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	_, err = tx.ExecContext(ctx, `
		INSERT INTO quiz_results (id, topic, question_type, difficulty, total, correct)
		VALUES (?, ?, ?, ?, ?, ?)`,
		result.ID, result.Topic, result.QuestionType, result.Difficulty,
		result.Total, result.Correct,
	)
	if err != nil {
		return fmt.Errorf("insert quiz result: %w", err)
	}

	for _, item := range items {
		_, err = tx.ExecContext(ctx, `
			INSERT INTO quiz_result_items
				(result_id, position, question_type, question, options,
				 user_answer, correct_answer, is_correct)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
			result.ID, item.Position, item.QuestionType, item.Question,
			strings.Join(item.Options, optionsSep),
			item.UserAnswer, item.CorrectAnswer, item.IsCorrect,
		)
		if err != nil {
			return fmt.Errorf("insert quiz item %d: %w", item.Position, err)
		}
	}

	return tx.Commit()
}

func (r *resultRepo) ListQuizResults(ctx context.Context, limit int) ([]QuizResult, error) {
	if limit <= 0 {
		limit = 20
	}

	rows, err := r.db.QueryContext(ctx, `
		SELECT id, created_at, topic, question_type, difficulty, total, correct
		FROM quiz_results ORDER BY created_at DESC, id DESC LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("list quiz results: %w", err)
	}
	defer rows.Close()

	var results []QuizResult
	for rows.Next() {
		var res QuizResult
		if err := rows.Scan(&res.ID, &res.Timestamp, &res.Topic, &res.QuestionType,
			&res.Difficulty, &res.Total, &res.Correct); err != nil {
			return nil, fmt.Errorf("scan quiz result: %w", err)
		}
		results = append(results, res)
	}
	return results, rows.Err()
}

func (r *resultRepo) GetQuizResult(ctx context.Context, id string) (*QuizResult, []QuizResultItem, error) {
	var res QuizResult
	err := r.db.QueryRowContext(ctx, `
		SELECT id, created_at, topic, question_type, difficulty, total, correct
		FROM quiz_results WHERE id = ?`, id).
		Scan(&res.ID, &res.Timestamp, &res.Topic, &res.QuestionType,
			&res.Difficulty, &res.Total, &res.Correct)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil, nil
	}
	if err != nil {
		return nil, nil, fmt.Errorf("get quiz result: %w", err)
	}

	rows, err := r.db.QueryContext(ctx, `
		SELECT position, question_type, question, options,
		       user_answer, correct_answer, is_correct
		FROM quiz_result_items WHERE result_id = ? ORDER BY position`, id)
	if err != nil {
		return nil, nil, fmt.Errorf("get quiz items: %w", err)
	}
	defer rows.Close()

	var items []QuizResultItem
	for rows.Next() {
		var item QuizResultItem
		var opts string
		if err := rows.Scan(&item.Position, &item.QuestionType, &item.Question,
			&opts, &item.UserAnswer, &item.CorrectAnswer, &item.IsCorrect); err != nil {
			return nil, nil, fmt.Errorf("scan quiz item: %w", err)
		}
		if opts != "" {
			item.Options = strings.Split(opts, optionsSep)
		}
		items = append(items, item)
	}
	return &res, items, rows.Err()
}
