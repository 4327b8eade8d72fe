package nav

import "testing"

func TestInitialStateIsDashboard(t *testing.T) {
	var s State
	if s.Step != StepDashboard {
		t.Errorf("zero state step = %v, want dashboard", s.Step)
	}
}

func TestCreateCourseFlow(t *testing.T) {
	var s State

	s = Reduce(s, StartInput{})
	if s.Step != StepInput {
		t.Fatalf("step = %v, want input", s.Step)
	}

	s = Reduce(s, CreateStarted{})
	if !s.Loading || s.LoadingMessage == "" {
		t.Fatalf("expected loading state, got %+v", s)
	}

	s = Reduce(s, CreateReady{CourseID: "c1"})
	if s.Step != StepSubtopics {
		t.Errorf("step = %v, want subtopics", s.Step)
	}
	if s.ActiveCourseID != "c1" {
		t.Errorf("activeCourseID = %q, want c1", s.ActiveCourseID)
	}
	if s.Loading || s.Error != "" {
		t.Errorf("expected clean state, got %+v", s)
	}
}

func TestCreateFailureStaysOnInput(t *testing.T) {
	s := State{Step: StepInput}
	s = Reduce(s, CreateStarted{})
	s = Reduce(s, CreateFailed{})

	if s.Step != StepInput {
		t.Errorf("step = %v, want input", s.Step)
	}
	if s.Loading {
		t.Error("loading should be cleared on failure")
	}
	if s.Error == "" {
		t.Error("expected a fixed error message")
	}

	// Retrying clears the error.
	s = Reduce(s, CreateStarted{})
	if s.Error != "" {
		t.Error("error should clear when a new attempt starts")
	}
}

func TestResumeCourse(t *testing.T) {
	s := State{Step: StepDashboard}
	s = Reduce(s, ResumeCourse{CourseID: "c9"})

	if s.Step != StepSubtopics || s.ActiveCourseID != "c9" {
		t.Errorf("state = %+v", s)
	}
	if s.SelectedSubtopic != "" || s.SelectedLesson != "" {
		t.Error("selections should be cleared on resume")
	}
}

func TestSelectSubtopicCacheHitSkipsLoading(t *testing.T) {
	s := State{Step: StepSubtopics, ActiveCourseID: "c1"}
	s = Reduce(s, SelectSubtopic{Subtopic: "Stars", Cached: true})

	if s.Step != StepLessons {
		t.Errorf("step = %v, want lessons", s.Step)
	}
	if s.Loading {
		t.Error("cache hit should not enter loading")
	}
	if s.SelectedSubtopic != "Stars" {
		t.Errorf("selectedSubtopic = %q", s.SelectedSubtopic)
	}
}

func TestSelectSubtopicCacheMissFetches(t *testing.T) {
	s := State{Step: StepSubtopics, ActiveCourseID: "c1"}
	s = Reduce(s, SelectSubtopic{Subtopic: "Stars"})

	if !s.Loading || s.Step != StepSubtopics {
		t.Fatalf("expected loading on subtopics, got %+v", s)
	}

	s = Reduce(s, LessonsReady{Subtopic: "Stars"})
	if s.Step != StepLessons || s.Loading {
		t.Errorf("state = %+v", s)
	}
}

func TestStaleLessonsResultDiscarded(t *testing.T) {
	s := State{Step: StepSubtopics, ActiveCourseID: "c1"}
	s = Reduce(s, SelectSubtopic{Subtopic: "Stars"})

	// Learner bails to the dashboard while the fetch is in flight.
	s = Reduce(s, GoToDashboard{})
	if s.Step != StepDashboard {
		t.Fatalf("step = %v, want dashboard", s.Step)
	}

	// The late result must not drag the learner back.
	got := Reduce(s, LessonsReady{Subtopic: "Stars"})
	if got != s {
		t.Errorf("stale result changed state: %+v", got)
	}
}

func TestMismatchedSelectionResultDiscarded(t *testing.T) {
	s := State{
		Step:             StepSubtopics,
		ActiveCourseID:   "c1",
		SelectedSubtopic: "Planets",
		Loading:          true,
	}

	got := Reduce(s, LessonsReady{Subtopic: "Stars"})
	if got.Step != StepSubtopics {
		t.Errorf("result for a different subtopic advanced the step: %+v", got)
	}
}

func TestTriggersIgnoredWhileLoading(t *testing.T) {
	s := State{Step: StepSubtopics, ActiveCourseID: "c1"}
	s = Reduce(s, SelectSubtopic{Subtopic: "Stars"})

	got := Reduce(s, SelectSubtopic{Subtopic: "Planets"})
	if got != s {
		t.Errorf("second trigger while loading changed state: %+v", got)
	}

	got = Reduce(s, GoBack{})
	if got != s {
		t.Errorf("go back while loading changed state: %+v", got)
	}
}

func TestSelectLessonFromContentView(t *testing.T) {
	// Next/previous lesson re-runs selection in place from the content view.
	s := State{
		Step:             StepContent,
		ActiveCourseID:   "c1",
		SelectedSubtopic: "Stars",
		SelectedLesson:   "L1",
	}

	s = Reduce(s, SelectLesson{Lesson: "L2"})
	if !s.Loading || s.SelectedLesson != "L2" || s.Step != StepContent {
		t.Fatalf("state = %+v", s)
	}

	s = Reduce(s, ContentReady{Lesson: "L2"})
	if s.Step != StepContent || s.Loading {
		t.Errorf("state = %+v", s)
	}
}

func TestQuizFlow(t *testing.T) {
	s := State{
		Step:             StepContent,
		ActiveCourseID:   "c1",
		SelectedSubtopic: "Stars",
		SelectedLesson:   "L1",
	}

	s = Reduce(s, StartQuiz{})
	if !s.Loading {
		t.Fatal("expected loading for quiz generation")
	}

	s = Reduce(s, QuizReady{Lesson: "L1"})
	if s.Step != StepQuiz || s.Loading {
		t.Errorf("state = %+v", s)
	}

	s = Reduce(s, GoBack{})
	if s.Step != StepContent {
		t.Errorf("back from quiz: step = %v, want content", s.Step)
	}
}

func TestQuizFailureStaysOnContent(t *testing.T) {
	s := State{Step: StepContent, ActiveCourseID: "c1", SelectedLesson: "L1"}
	s = Reduce(s, StartQuiz{})
	s = Reduce(s, QuizFailed{Lesson: "L1"})

	if s.Step != StepContent {
		t.Errorf("step = %v, want content", s.Step)
	}
	if s.Error != ErrorMessage(OpQuiz) {
		t.Errorf("error = %q", s.Error)
	}
}

func TestGoBackChain(t *testing.T) {
	s := State{
		Step:             StepContent,
		ActiveCourseID:   "c1",
		SelectedSubtopic: "Stars",
		SelectedLesson:   "L1",
	}

	s = Reduce(s, GoBack{})
	if s.Step != StepLessons || s.SelectedLesson != "" {
		t.Errorf("back from content: %+v", s)
	}

	s = Reduce(s, GoBack{})
	if s.Step != StepSubtopics || s.SelectedSubtopic != "" {
		t.Errorf("back from lessons: %+v", s)
	}

	s = Reduce(s, GoBack{})
	if s.Step != StepDashboard || s.ActiveCourseID != "" {
		t.Errorf("back from subtopics: %+v", s)
	}
}

func TestGoToDashboardClearsEverything(t *testing.T) {
	s := State{
		Step:             StepQuiz,
		ActiveCourseID:   "c1",
		SelectedSubtopic: "Stars",
		SelectedLesson:   "L1",
		Error:            "boom",
	}

	s = Reduce(s, GoToDashboard{})
	if s != (State{Step: StepDashboard}) {
		t.Errorf("state = %+v, want zero dashboard state", s)
	}
}

func TestCourseDeleted(t *testing.T) {
	active := State{
		Step:             StepLessons,
		ActiveCourseID:   "c1",
		SelectedSubtopic: "Stars",
	}

	got := Reduce(active, CourseDeleted{CourseID: "c1"})
	if got != (State{Step: StepDashboard}) {
		t.Errorf("deleting active course: %+v", got)
	}

	got = Reduce(active, CourseDeleted{CourseID: "other"})
	if got != active {
		t.Errorf("deleting non-active course changed navigation: %+v", got)
	}
}

func TestFixedMessagesPerOperation(t *testing.T) {
	ops := []Op{OpSubtopics, OpLessons, OpContent, OpQuiz}
	seen := map[string]bool{}
	for _, op := range ops {
		msg := ErrorMessage(op)
		if msg == "" {
			t.Errorf("op %d has empty error message", op)
		}
		if seen[msg] {
			t.Errorf("op %d shares an error message with another op", op)
		}
		seen[msg] = true
		if LoadingMessage(op) == "" {
			t.Errorf("op %d has empty loading message", op)
		}
	}
}
