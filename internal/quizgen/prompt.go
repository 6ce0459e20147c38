package quizgen

import (
	"fmt"
	"strings"
)

const mcqSystemPrompt = `You are a quiz author creating multiple-choice study questions.

Rules:
- Generate a single multiple-choice question about the given topic at the given difficulty.
- The question must be clear, self-contained, and factually correct.
- Provide exactly 4 options. Exactly one of them is correct.
- The correct_answer field must repeat the correct option verbatim, character for character.
- Distractors should be plausible for the topic, not obviously wrong or joke answers.
- Do not number or letter the options; plain option text only.
- Keep the question text under two sentences.`

const fillBlankSystemPrompt = `You are a quiz author creating fill-in-the-blank study questions.

Rules:
- Generate a single fill-in-the-blank question about the given topic at the given difficulty.
- The question text must contain the placeholder "_____" (five underscores) exactly once where the answer belongs.
- The answer must be the single word or short phrase that correctly completes the blank.
- The completed sentence must be factually correct and self-contained.
- Keep the question text under two sentences.`

// buildUserMessage formats the per-request prompt from topic and difficulty.
func buildUserMessage(topic string, difficulty Difficulty) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Topic: %s\n", strings.TrimSpace(topic))
	fmt.Fprintf(&b, "Difficulty: %s\n", difficulty)
	return b.String()
}
