package quizgen

// Config controls the question generator.
type Config struct {
	// MaxRetries is the attempt cap for the generate-and-parse loop.
	// Each attempt is one LLM invocation plus one parse.
	MaxRetries int

	// MaxTokens caps the length of each LLM response.
	MaxTokens int

	// Temperature controls output randomness. Quiz generation runs hot
	// so repeated calls on the same topic produce varied questions.
	Temperature float64
}

// DefaultConfig returns the standard generator configuration.
func DefaultConfig() Config {
	return Config{
		MaxRetries:  3,
		MaxTokens:   512,
		Temperature: 0.9,
	}
}
