package content

// Config holds generation settings per operation class.
type Config struct {
	// ListMaxTokens bounds subtopic and lesson list generation.
	ListMaxTokens int
	// BodyMaxTokens bounds lesson body generation.
	BodyMaxTokens int
	// QuizMaxTokens bounds quiz generation.
	QuizMaxTokens int
	// ImageMaxTokens bounds image lookup responses.
	ImageMaxTokens int
	Temperature    float64
}

// DefaultConfig returns sensible defaults for content generation.
func DefaultConfig() Config {
	return Config{
		ListMaxTokens:  1024,
		BodyMaxTokens:  4096,
		QuizMaxTokens:  2048,
		ImageMaxTokens: 512,
		Temperature:    0.7,
	}
}
