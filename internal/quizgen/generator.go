package quizgen

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/studybuddy-ai/studybuddy/internal/llm"
)

// Generator produces validated quiz questions by prompting an LLM and
// retrying on invocation or parse failures. It owns its provider and
// logger handles for its lifetime; neither is mutated after New.
type Generator struct {
	provider llm.Provider
	logger   *slog.Logger
	cfg      Config
}

// New creates a Generator. A nil logger falls back to slog.Default().
func New(provider llm.Provider, logger *slog.Logger, cfg Config) *Generator {
	if logger == nil {
		logger = slog.Default()
	}
	return &Generator{
		provider: provider,
		logger:   logger.With("component", "question-generator"),
		cfg:      cfg,
	}
}

// GenerateMCQ produces a multiple-choice question for the topic. An
// empty difficulty defaults to medium.
func (g *Generator) GenerateMCQ(ctx context.Context, topic string, difficulty Difficulty) (*MCQQuestion, error) {
	difficulty = difficulty.orDefault()
	ctx = llm.WithPurpose(ctx, "mcq-gen")

	req := g.buildRequest(mcqSystemPrompt, MCQSchema, topic, difficulty)

	q, attempts, err := retryAndParse[MCQQuestion](g, ctx, req, topic, difficulty)
	if err != nil {
		return nil, err
	}

	if verr := q.Validate(); verr != nil {
		g.logger.Error("generated MCQ rejected",
			"topic", topic, "error", verr)
		return nil, &GenerationError{Attempts: attempts, Err: verr}
	}

	g.logger.Info("generated valid MCQ question", "topic", topic)
	return q, nil
}

// GenerateFillBlank produces a fill-in-the-blank question for the topic.
// An empty difficulty defaults to medium.
func (g *Generator) GenerateFillBlank(ctx context.Context, topic string, difficulty Difficulty) (*FillBlankQuestion, error) {
	difficulty = difficulty.orDefault()
	ctx = llm.WithPurpose(ctx, "fill-blank-gen")

	req := g.buildRequest(fillBlankSystemPrompt, FillBlankSchema, topic, difficulty)

	q, attempts, err := retryAndParse[FillBlankQuestion](g, ctx, req, topic, difficulty)
	if err != nil {
		return nil, err
	}

	if verr := q.Validate(); verr != nil {
		g.logger.Error("generated fill-blank question rejected",
			"topic", topic, "error", verr)
		return nil, &GenerationError{Attempts: attempts, Err: verr}
	}

	g.logger.Info("generated valid fill-blank question", "topic", topic)
	return q, nil
}

func (g *Generator) buildRequest(system string, schema *llm.Schema, topic string, difficulty Difficulty) llm.Request {
	return llm.Request{
		System: system,
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: buildUserMessage(topic, difficulty)},
		},
		Schema:      schema,
		MaxTokens:   g.cfg.MaxTokens,
		Temperature: g.cfg.Temperature,
	}
}

// retryAndParse runs the bounded generate-and-parse loop shared by both
// question shapes. Attempts are strictly sequential with no delay; the
// first response that decodes wins. When every attempt fails, the last
// error comes back wrapped in a GenerationError with the attempt count.
func retryAndParse[T any](g *Generator, ctx context.Context, req llm.Request, topic string, difficulty Difficulty) (*T, int, error) {
	maxRetries := g.cfg.MaxRetries
	if maxRetries < 1 {
		maxRetries = 1
	}

	var lastErr error
	for attempt := 1; attempt <= maxRetries; attempt++ {
		g.logger.Info("generating question",
			"attempt", attempt, "topic", topic, "difficulty", difficulty)

		resp, err := g.provider.Generate(ctx, req)
		if err != nil {
			lastErr = err
			g.logger.Error("generation attempt failed",
				"attempt", attempt, "error", err)
			if ctx.Err() != nil {
				return nil, attempt, &GenerationError{Attempts: attempt, Err: lastErr}
			}
			continue
		}

		var out T
		if err := json.Unmarshal(resp.Content, &out); err != nil {
			lastErr = fmt.Errorf("parse response: %w", err)
			g.logger.Error("generation attempt failed",
				"attempt", attempt, "error", lastErr)
			continue
		}

		g.logger.Info("parsed question", "attempt", attempt)
		return &out, attempt, nil
	}

	return nil, maxRetries, &GenerationError{Attempts: maxRetries, Err: lastErr}
}
