// Package quiz holds the quiz data model and the ephemeral per-attempt
// session. A quiz is generated fresh for every attempt and never persisted;
// only the submitted score outlives the session.
package quiz

// Shape of every generated quiz.
const (
	NumQuestions = 5
	NumOptions   = 4
)

// PassScore is the minimum score counted as a pass for badge display.
const PassScore = 3

// Option is one answer choice, labeled with a stable per-question ID
// ("a" through "d").
type Option struct {
	ID   string `json:"id"`
	Text string `json:"text"`
}

// Question is one quiz question with exactly NumOptions options and one
// designated correct option.
type Question struct {
	ID              int      `json:"id"`
	Text            string   `json:"text"`
	Options         []Option `json:"options"`
	CorrectOptionID string   `json:"correctOptionId"`
}

// Quiz is one generated set of NumQuestions questions.
type Quiz struct {
	Questions []Question `json:"questions"`
}
