package quizgen

import "github.com/studybuddy-ai/studybuddy/internal/llm"

// MCQSchema is the JSON schema for multiple-choice question responses.
var MCQSchema = &llm.Schema{
	Name:        "mcq-question",
	Description: "A multiple-choice quiz question with 4 options and one correct answer",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"question": map[string]any{
				"type":        "string",
				"description": "The question text",
			},
			"options": map[string]any{
				"type":        "array",
				"items":       map[string]any{"type": "string"},
				"minItems":    4,
				"maxItems":    4,
				"description": "Exactly 4 possible answers, plain text, no numbering",
			},
			"correct_answer": map[string]any{
				"type":        "string",
				"description": "The correct answer, repeated verbatim from options",
			},
		},
		"required":             []any{"question", "options", "correct_answer"},
		"additionalProperties": false,
	},
}

// FillBlankSchema is the JSON schema for fill-in-the-blank responses.
var FillBlankSchema = &llm.Schema{
	Name:        "fill-blank-question",
	Description: "A fill-in-the-blank quiz question with its answer",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"question": map[string]any{
				"type":        "string",
				"description": "The question text containing '_____' where the answer belongs",
			},
			"answer": map[string]any{
				"type":        "string",
				"description": "The word or phrase that correctly fills the blank",
			},
		},
		"required":             []any{"question", "answer"},
		"additionalProperties": false,
	},
}
