package quiz

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"time"
)

// WriteCSV writes the graded results as CSV.
func WriteCSV(w io.Writer, results []Result) error {
	cw := csv.NewWriter(w)

	if err := cw.Write([]string{"number", "question", "your_answer", "correct_answer", "correct"}); err != nil {
		return fmt.Errorf("write csv header: %w", err)
	}
	for _, r := range results {
		record := []string{
			strconv.Itoa(r.Position),
			r.Question.Text(),
			r.UserAnswer,
			r.CorrectAnswer,
			strconv.FormatBool(r.Correct),
		}
		if err := cw.Write(record); err != nil {
			return fmt.Errorf("write csv row %d: %w", r.Position, err)
		}
	}

	cw.Flush()
	return cw.Error()
}

// SaveCSV writes the results to dir as quiz_results_YYYYMMDD_HHMMSS.csv
// and returns the created path.
func SaveCSV(dir string, results []Result) (string, error) {
	name := fmt.Sprintf("quiz_results_%s.csv", time.Now().Format("20060102_150405"))
	path := filepath.Join(dir, name)

	f, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("create %s: %w", path, err)
	}
	defer f.Close()

	if err := WriteCSV(f, results); err != nil {
		return "", err
	}
	if err := f.Close(); err != nil {
		return "", fmt.Errorf("close %s: %w", path, err)
	}
	return path, nil
}
