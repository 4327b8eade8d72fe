package quiz

// Session is the in-progress state of one quiz attempt. It is reset by
// constructing a new Session for every generation; there is no reuse across
// attempts. After Submit the answers are frozen.
type Session struct {
	quiz      Quiz
	answers   map[int]string
	submitted bool
	score     int
}

// NewSession starts an empty, unsubmitted attempt at the given quiz.
func NewSession(q Quiz) *Session {
	return &Session{
		quiz:    q,
		answers: make(map[int]string, len(q.Questions)),
	}
}

// Quiz returns the quiz being attempted.
func (s *Session) Quiz() Quiz {
	return s.quiz
}

// Select records an answer for a question. Re-selecting before submission
// overwrites; any selection after submission is ignored. Unknown question
// or option IDs are ignored.
func (s *Session) Select(questionID int, optionID string) {
	if s.submitted {
		return
	}
	for _, q := range s.quiz.Questions {
		if q.ID != questionID {
			continue
		}
		for _, opt := range q.Options {
			if opt.ID == optionID {
				s.answers[questionID] = optionID
				return
			}
		}
		return
	}
}

// Answer returns the selected option for a question, if any.
func (s *Session) Answer(questionID int) (string, bool) {
	id, ok := s.answers[questionID]
	return id, ok
}

// CanSubmit reports whether every question has a selected answer and the
// session has not been submitted yet.
func (s *Session) CanSubmit() bool {
	return !s.submitted && len(s.answers) == len(s.quiz.Questions)
}

// Submit scores the attempt and freezes it. Returns false without scoring
// if any question is unanswered or the session was already submitted.
func (s *Session) Submit() (int, bool) {
	if !s.CanSubmit() {
		return 0, false
	}
	score := 0
	for _, q := range s.quiz.Questions {
		if s.answers[q.ID] == q.CorrectOptionID {
			score++
		}
	}
	s.score = score
	s.submitted = true
	return score, true
}

// Submitted reports whether the attempt has been scored.
func (s *Session) Submitted() bool {
	return s.submitted
}

// Score returns the submitted score. Zero until submission.
func (s *Session) Score() int {
	return s.score
}

// Passed reports whether a score counts as a pass for badge display.
func Passed(score int) bool {
	return score >= PassScore
}
