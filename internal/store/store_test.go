package store

import (
	"context"
	"testing"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open("file::memory:?cache=shared")
	if err != nil {
		t.Fatalf("open test store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestOpenClose(t *testing.T) {
	s := openTestStore(t)
	if s.DB() == nil {
		t.Fatal("expected non-nil db handle")
	}
}

func TestPragmasApplied(t *testing.T) {
	s := openTestStore(t)
	db := s.DB()

	tests := []struct {
		pragma string
		want   string
	}{
		// WAL mode falls back to "memory" for in-memory databases,
		// so journal_mode is only meaningful on file-backed DBs.
		{"foreign_keys", "1"},
		{"synchronous", "1"}, // NORMAL = 1
	}

	for _, tt := range tests {
		var got string
		err := db.QueryRow("PRAGMA " + tt.pragma).Scan(&got)
		if err != nil {
			t.Errorf("PRAGMA %s: %v", tt.pragma, err)
			continue
		}
		if got != tt.want {
			t.Errorf("PRAGMA %s = %q, want %q", tt.pragma, got, tt.want)
		}
	}
}

func TestEventRepo_AppendAndQuery(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	events, err := repo.QueryLLMEvents(ctx, QueryOpts{})
	if err != nil {
		t.Fatalf("query empty: %v", err)
	}
	if len(events) != 0 {
		t.Fatalf("expected no events, got %d", len(events))
	}

	err = repo.AppendLLMRequest(ctx, LLMEventData{
		Provider:     "llama-3.1-8b-instant",
		Model:        "llama-3.1-8b-instant",
		Purpose:      "mcq-gen",
		InputTokens:  120,
		OutputTokens: 80,
		LatencyMs:    450,
		CostUSD:      0.0000124,
		Success:      true,
		RequestBody:  "[system]\nprompt",
		ResponseBody: `{"question":"Q?"}`,
	})
	if err != nil {
		t.Fatalf("append: %v", err)
	}
	err = repo.AppendLLMRequest(ctx, LLMEventData{
		Provider:     "llama-3.1-8b-instant",
		Model:        "llama-3.1-8b-instant",
		Purpose:      "fill-blank-gen",
		Success:      false,
		ErrorMessage: "rate limited",
	})
	if err != nil {
		t.Fatalf("append: %v", err)
	}

	events, err = repo.QueryLLMEvents(ctx, QueryOpts{})
	if err != nil {
		t.Fatalf("query: %v", err)
	}
	if len(events) != 2 {
		t.Fatalf("expected 2 events, got %d", len(events))
	}
	// Newest first.
	if events[0].Purpose != "fill-blank-gen" {
		t.Errorf("expected newest event first, got purpose %q", events[0].Purpose)
	}
	if events[0].Success {
		t.Error("expected second event to be a failure")
	}
	if events[1].InputTokens != 120 {
		t.Errorf("input tokens = %d, want 120", events[1].InputTokens)
	}
}

func TestEventRepo_PurposeFilter(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	for _, purpose := range []string{"mcq-gen", "mcq-gen", "fill-blank-gen"} {
		if err := repo.AppendLLMRequest(ctx, LLMEventData{
			Provider: "mock", Model: "mock", Purpose: purpose, Success: true,
		}); err != nil {
			t.Fatalf("append: %v", err)
		}
	}

	events, err := repo.QueryLLMEvents(ctx, QueryOpts{Purpose: "mcq-gen"})
	if err != nil {
		t.Fatalf("query: %v", err)
	}
	if len(events) != 2 {
		t.Fatalf("expected 2 mcq-gen events, got %d", len(events))
	}
}

func TestEventRepo_GetByID(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	if err := repo.AppendLLMRequest(ctx, LLMEventData{
		Provider: "mock", Model: "mock", Purpose: "mcq-gen",
		Success: true, RequestBody: "full request", ResponseBody: "full response",
	}); err != nil {
		t.Fatalf("append: %v", err)
	}

	events, err := repo.QueryLLMEvents(ctx, QueryOpts{})
	if err != nil || len(events) != 1 {
		t.Fatalf("query: %v (%d events)", err, len(events))
	}

	e, err := repo.GetLLMEvent(ctx, events[0].ID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if e == nil {
		t.Fatal("expected event")
	}
	if e.RequestBody != "full request" || e.ResponseBody != "full response" {
		t.Errorf("bodies not round-tripped: %q / %q", e.RequestBody, e.ResponseBody)
	}

	missing, err := repo.GetLLMEvent(ctx, 99999)
	if err != nil {
		t.Fatalf("get missing: %v", err)
	}
	if missing != nil {
		t.Error("expected nil for missing event")
	}
}

func TestEventRepo_UsageAggregation(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	events := []LLMEventData{
		{Model: "llama-3.1-8b-instant", Purpose: "mcq-gen", InputTokens: 100, OutputTokens: 50, LatencyMs: 200, CostUSD: 0.001, Success: true},
		{Model: "llama-3.1-8b-instant", Purpose: "mcq-gen", InputTokens: 100, OutputTokens: 50, LatencyMs: 400, CostUSD: 0.001, Success: true},
		{Model: "gpt-4o-mini", Purpose: "fill-blank-gen", InputTokens: 80, OutputTokens: 40, LatencyMs: 300, CostUSD: 0.002, Success: true},
	}
	for _, e := range events {
		e.Provider = "test"
		if err := repo.AppendLLMRequest(ctx, e); err != nil {
			t.Fatalf("append: %v", err)
		}
	}

	byPurpose, err := repo.LLMUsageByPurpose(ctx)
	if err != nil {
		t.Fatalf("usage by purpose: %v", err)
	}
	if len(byPurpose) != 2 {
		t.Fatalf("expected 2 purpose rows, got %d", len(byPurpose))
	}
	// Rows ordered by purpose: fill-blank-gen then mcq-gen.
	mcq := byPurpose[1]
	if mcq.Purpose != "mcq-gen" || mcq.Calls != 2 || mcq.InputTokens != 200 {
		t.Errorf("mcq-gen usage = %+v", mcq)
	}
	if mcq.AvgLatencyMs != 300 {
		t.Errorf("avg latency = %d, want 300", mcq.AvgLatencyMs)
	}

	byModel, err := repo.LLMUsageByModel(ctx)
	if err != nil {
		t.Fatalf("usage by model: %v", err)
	}
	if len(byModel) != 2 {
		t.Fatalf("expected 2 model rows, got %d", len(byModel))
	}
}

func TestResultRepo_SaveAndLoad(t *testing.T) {
	s := openTestStore(t)
	repo := s.ResultRepo()
	ctx := context.Background()

	result := QuizResult{
		ID:           "8d6f9a3e-0000-0000-0000-000000000001",
		Topic:        "World War II",
		QuestionType: "mcq",
		Difficulty:   "easy",
		Total:        2,
		Correct:      1,
	}
	items := []QuizResultItem{
		{
			Position:      1,
			QuestionType:  "mcq",
			Question:      "Which country invaded Poland in 1939?",
			Options:       []string{"Germany", "France", "Italy", "Spain"},
			UserAnswer:    "Germany",
			CorrectAnswer: "Germany",
			IsCorrect:     true,
		},
		{
			Position:      2,
			QuestionType:  "mcq",
			Question:      "In which year did the war end?",
			Options:       []string{"1943", "1944", "1945", "1946"},
			UserAnswer:    "1944",
			CorrectAnswer: "1945",
			IsCorrect:     false,
		},
	}

	if err := repo.SaveQuizResult(ctx, result, items); err != nil {
		t.Fatalf("save: %v", err)
	}

	got, gotItems, err := repo.GetQuizResult(ctx, result.ID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got == nil {
		t.Fatal("expected result")
	}
	if got.Correct != 1 || got.Total != 2 {
		t.Errorf("score = %d/%d, want 1/2", got.Correct, got.Total)
	}
	if got.Percent() != 50 {
		t.Errorf("percent = %v, want 50", got.Percent())
	}
	if len(gotItems) != 2 {
		t.Fatalf("expected 2 items, got %d", len(gotItems))
	}
	if len(gotItems[0].Options) != 4 {
		t.Errorf("options not round-tripped: %v", gotItems[0].Options)
	}
	if gotItems[1].IsCorrect {
		t.Error("expected item 2 to be incorrect")
	}
}

func TestResultRepo_ListNewestFirst(t *testing.T) {
	s := openTestStore(t)
	repo := s.ResultRepo()
	ctx := context.Background()

	for i, id := range []string{"id-a", "id-b", "id-c"} {
		if err := repo.SaveQuizResult(ctx, QuizResult{
			ID: id, Topic: "t", QuestionType: "mcq", Difficulty: "medium",
			Total: i + 1, Correct: i,
		}, nil); err != nil {
			t.Fatalf("save %s: %v", id, err)
		}
	}

	results, err := repo.ListQuizResults(ctx, 2)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(results) != 2 {
		t.Fatalf("expected 2 results, got %d", len(results))
	}
	if results[0].ID != "id-c" {
		t.Errorf("expected newest first, got %q", results[0].ID)
	}
}

func TestResultRepo_GetMissing(t *testing.T) {
	s := openTestStore(t)

	res, items, err := s.ResultRepo().GetQuizResult(context.Background(), "nope")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if res != nil || items != nil {
		t.Error("expected nil result for missing quiz")
	}
}
