package quiz

import "testing"

func testQuiz() Quiz {
	questions := make([]Question, NumQuestions)
	for i := range questions {
		questions[i] = Question{
			ID:   i + 1,
			Text: "Question",
			Options: []Option{
				{ID: "a", Text: "A"},
				{ID: "b", Text: "B"},
				{ID: "c", Text: "C"},
				{ID: "d", Text: "D"},
			},
			CorrectOptionID: "b",
		}
	}
	return Quiz{Questions: questions}
}

func TestSubmitGatedOnCompleteness(t *testing.T) {
	s := NewSession(testQuiz())

	if s.CanSubmit() {
		t.Error("empty session should not be submittable")
	}
	if _, ok := s.Submit(); ok {
		t.Error("submit should be refused with unanswered questions")
	}

	for i := 1; i <= NumQuestions-1; i++ {
		s.Select(i, "a")
	}
	if s.CanSubmit() {
		t.Error("session with one unanswered question should not be submittable")
	}

	s.Select(NumQuestions, "a")
	if !s.CanSubmit() {
		t.Error("fully answered session should be submittable")
	}
}

func TestScoreCountsExactMatches(t *testing.T) {
	s := NewSession(testQuiz())

	// Three correct, two wrong.
	s.Select(1, "b")
	s.Select(2, "b")
	s.Select(3, "b")
	s.Select(4, "a")
	s.Select(5, "c")

	score, ok := s.Submit()
	if !ok {
		t.Fatal("submit refused")
	}
	if score != 3 {
		t.Errorf("score = %d, want 3", score)
	}
	if s.Score() != 3 || !s.Submitted() {
		t.Errorf("session = score %d submitted %v", s.Score(), s.Submitted())
	}
}

func TestPerfectScore(t *testing.T) {
	s := NewSession(testQuiz())
	for i := 1; i <= NumQuestions; i++ {
		s.Select(i, "b")
	}
	score, ok := s.Submit()
	if !ok || score != NumQuestions {
		t.Errorf("score = %d ok = %v, want %d true", score, ok, NumQuestions)
	}
}

func TestReselectBeforeSubmit(t *testing.T) {
	s := NewSession(testQuiz())
	for i := 1; i <= NumQuestions; i++ {
		s.Select(i, "a")
	}
	// Changing answers before submit is accepted.
	for i := 1; i <= NumQuestions; i++ {
		s.Select(i, "b")
	}
	score, ok := s.Submit()
	if !ok || score != NumQuestions {
		t.Errorf("score = %d ok = %v, want %d true", score, ok, NumQuestions)
	}
}

func TestAnswersFrozenAfterSubmit(t *testing.T) {
	s := NewSession(testQuiz())
	for i := 1; i <= NumQuestions; i++ {
		s.Select(i, "b")
	}
	if _, ok := s.Submit(); !ok {
		t.Fatal("submit refused")
	}

	s.Select(1, "a")
	if got, _ := s.Answer(1); got != "b" {
		t.Errorf("answer changed after submit: %q", got)
	}

	if _, ok := s.Submit(); ok {
		t.Error("second submit should be refused")
	}
	if s.Score() != NumQuestions {
		t.Errorf("score changed after second submit: %d", s.Score())
	}
}

func TestSelectIgnoresUnknownIDs(t *testing.T) {
	s := NewSession(testQuiz())

	s.Select(99, "a")
	if _, ok := s.Answer(99); ok {
		t.Error("unknown question recorded")
	}

	s.Select(1, "z")
	if _, ok := s.Answer(1); ok {
		t.Error("unknown option recorded")
	}
}

func TestPassed(t *testing.T) {
	tests := []struct {
		score int
		want  bool
	}{
		{0, false},
		{2, false},
		{3, true},
		{5, true},
	}
	for _, tt := range tests {
		if got := Passed(tt.score); got != tt.want {
			t.Errorf("Passed(%d) = %v, want %v", tt.score, got, tt.want)
		}
	}
}
