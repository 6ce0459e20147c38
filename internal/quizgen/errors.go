package quizgen

import "fmt"

// GenerationError is the terminal failure returned by the generator:
// either every attempt failed, or the parsed question violated its
// shape invariant. It carries the attempt count and the original cause.
type GenerationError struct {
	Attempts int
	Err      error
}

func (e *GenerationError) Error() string {
	return fmt.Sprintf("question generation failed after %d attempt(s): %v", e.Attempts, e.Err)
}

func (e *GenerationError) Unwrap() error { return e.Err }

// ValidationError describes a shape-invariant violation found after a
// response parsed successfully.
type ValidationError struct {
	Reason string
}

func (e *ValidationError) Error() string {
	return "invalid question structure: " + e.Reason
}
