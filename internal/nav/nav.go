// Package nav is the navigation state machine for the learning flow. It is
// a pure reducer: the controller owns a State value, feeds it Events, and
// renders the result. Fetching, caching, and persistence live elsewhere;
// the reducer only decides what is on screen.
package nav

// Step identifies the active screen of the learning flow.
type Step int

const (
	StepDashboard Step = iota
	StepInput
	StepSubtopics
	StepLessons
	StepContent
	StepQuiz
)

func (s Step) String() string {
	switch s {
	case StepDashboard:
		return "dashboard"
	case StepInput:
		return "input"
	case StepSubtopics:
		return "subtopics"
	case StepLessons:
		return "lessons"
	case StepContent:
		return "content"
	case StepQuiz:
		return "quiz"
	default:
		return "unknown"
	}
}

// Op labels the fetch operation a loading or error state belongs to.
type Op int

const (
	OpSubtopics Op = iota
	OpLessons
	OpContent
	OpQuiz
)

// LoadingMessage is the progress text shown while an operation is in flight.
func LoadingMessage(op Op) string {
	switch op {
	case OpSubtopics:
		return "Generating subtopics..."
	case OpLessons:
		return "Generating lessons..."
	case OpContent:
		return "Writing your lesson..."
	case OpQuiz:
		return "Preparing your quiz..."
	default:
		return "Loading..."
	}
}

// ErrorMessage is the fixed user-facing message for a failed operation.
func ErrorMessage(op Op) string {
	switch op {
	case OpSubtopics:
		return "Could not generate subtopics. Please try again."
	case OpLessons:
		return "Could not generate lessons. Please try again."
	case OpContent:
		return "Could not load the lesson content. Please try again."
	case OpQuiz:
		return "Could not generate the quiz. Please try again."
	default:
		return "Something went wrong. Please try again."
	}
}

// State is the whole navigation state. It is a value; Reduce returns a new
// one and never mutates its input.
type State struct {
	Step             Step
	ActiveCourseID   string
	SelectedSubtopic string
	SelectedLesson   string
	Loading          bool
	LoadingMessage   string
	Error            string
}

// Event is a navigation trigger or a fetch lifecycle notification.
//
// Lifecycle events carry the selection they were initiated for so the
// reducer can discard results that arrive after the learner has moved on.
type Event interface{ isNavEvent() }

type (
	// StartInput opens the new-course form from the dashboard.
	StartInput struct{}

	// ResumeCourse opens an existing course from the dashboard.
	ResumeCourse struct{ CourseID string }

	// CreateStarted begins the blocking subtopic generation for a new course.
	CreateStarted struct{}

	// CreateReady lands the newly created course on the subtopic list.
	CreateReady struct{ CourseID string }

	// CreateFailed reports subtopic generation failure.
	CreateFailed struct{}

	// SelectSubtopic picks a subtopic. Cached tells the reducer whether the
	// lesson list is already in the course store; a miss enters loading and
	// the controller starts the fetch.
	SelectSubtopic struct {
		Subtopic string
		Cached   bool
	}

	// LessonsReady reports the lesson list fetch finished for Subtopic.
	LessonsReady struct{ Subtopic string }

	// LessonsFailed reports the lesson list fetch failed for Subtopic.
	LessonsFailed struct{ Subtopic string }

	// SelectLesson picks a lesson, from the lesson list or laterally from
	// the content view (next/previous lesson).
	SelectLesson struct {
		Lesson string
		Cached bool
	}

	// ContentReady reports the body/image fetch finished for Lesson.
	ContentReady struct{ Lesson string }

	// ContentFailed reports the body/image fetch failed for Lesson.
	ContentFailed struct{ Lesson string }

	// StartQuiz begins quiz generation from the content view.
	StartQuiz struct{}

	// QuizReady reports quiz generation finished for Lesson.
	QuizReady struct{ Lesson string }

	// QuizFailed reports quiz generation failed for Lesson.
	QuizFailed struct{ Lesson string }

	// GoBack steps one screen backwards.
	GoBack struct{}

	// GoToDashboard returns home from anywhere and clears all selections.
	GoToDashboard struct{}

	// CourseDeleted reports a course was removed; navigation resets only
	// if it was the active one.
	CourseDeleted struct{ CourseID string }
)

func (StartInput) isNavEvent()     {}
func (ResumeCourse) isNavEvent()   {}
func (CreateStarted) isNavEvent()  {}
func (CreateReady) isNavEvent()    {}
func (CreateFailed) isNavEvent()   {}
func (SelectSubtopic) isNavEvent() {}
func (LessonsReady) isNavEvent()   {}
func (LessonsFailed) isNavEvent()  {}
func (SelectLesson) isNavEvent()   {}
func (ContentReady) isNavEvent()   {}
func (ContentFailed) isNavEvent()  {}
func (StartQuiz) isNavEvent()      {}
func (QuizReady) isNavEvent()      {}
func (QuizFailed) isNavEvent()     {}
func (GoBack) isNavEvent()         {}
func (GoToDashboard) isNavEvent()  {}
func (CourseDeleted) isNavEvent()  {}

// Reduce applies one event to the state. Unknown or out-of-place events
// leave the state unchanged; at most one fetch is outstanding at a time, so
// triggering events are ignored while Loading is set.
func Reduce(s State, e Event) State {
	// Lifecycle and deletion events are always processed; everything else
	// is blocked while a fetch is in flight.
	switch e.(type) {
	case CreateReady, CreateFailed, LessonsReady, LessonsFailed,
		ContentReady, ContentFailed, QuizReady, QuizFailed, CourseDeleted:
	default:
		if s.Loading {
			return s
		}
	}

	switch ev := e.(type) {
	case StartInput:
		if s.Step != StepDashboard {
			return s
		}
		s.Step = StepInput
		s.Error = ""
		return s

	case ResumeCourse:
		if s.Step != StepDashboard {
			return s
		}
		s.Step = StepSubtopics
		s.ActiveCourseID = ev.CourseID
		s.SelectedSubtopic = ""
		s.SelectedLesson = ""
		s.Error = ""
		return s

	case CreateStarted:
		if s.Step != StepInput {
			return s
		}
		return enterLoading(s, OpSubtopics)

	case CreateReady:
		if !s.Loading || s.Step != StepInput {
			return s
		}
		s.Step = StepSubtopics
		s.ActiveCourseID = ev.CourseID
		s.SelectedSubtopic = ""
		s.SelectedLesson = ""
		return clearLoading(s)

	case CreateFailed:
		if !s.Loading || s.Step != StepInput {
			return s
		}
		return failLoading(s, OpSubtopics)

	case SelectSubtopic:
		if s.Step != StepSubtopics {
			return s
		}
		s.SelectedSubtopic = ev.Subtopic
		s.SelectedLesson = ""
		if ev.Cached {
			s.Step = StepLessons
			s.Error = ""
			return s
		}
		return enterLoading(s, OpLessons)

	case LessonsReady:
		if stale := !s.Loading || s.Step != StepSubtopics || s.SelectedSubtopic != ev.Subtopic; stale {
			return s
		}
		s.Step = StepLessons
		return clearLoading(s)

	case LessonsFailed:
		if stale := !s.Loading || s.Step != StepSubtopics || s.SelectedSubtopic != ev.Subtopic; stale {
			return s
		}
		return failLoading(s, OpLessons)

	case SelectLesson:
		if s.Step != StepLessons && s.Step != StepContent {
			return s
		}
		s.SelectedLesson = ev.Lesson
		if ev.Cached {
			s.Step = StepContent
			s.Error = ""
			return s
		}
		return enterLoading(s, OpContent)

	case ContentReady:
		if stale := !s.Loading || s.SelectedLesson != ev.Lesson ||
			(s.Step != StepLessons && s.Step != StepContent); stale {
			return s
		}
		s.Step = StepContent
		return clearLoading(s)

	case ContentFailed:
		if stale := !s.Loading || s.SelectedLesson != ev.Lesson ||
			(s.Step != StepLessons && s.Step != StepContent); stale {
			return s
		}
		return failLoading(s, OpContent)

	case StartQuiz:
		if s.Step != StepContent {
			return s
		}
		return enterLoading(s, OpQuiz)

	case QuizReady:
		if stale := !s.Loading || s.Step != StepContent || s.SelectedLesson != ev.Lesson; stale {
			return s
		}
		s.Step = StepQuiz
		return clearLoading(s)

	case QuizFailed:
		if stale := !s.Loading || s.Step != StepContent || s.SelectedLesson != ev.Lesson; stale {
			return s
		}
		return failLoading(s, OpQuiz)

	case GoBack:
		return goBack(s)

	case GoToDashboard:
		return State{Step: StepDashboard}

	case CourseDeleted:
		if s.ActiveCourseID != ev.CourseID {
			return s
		}
		return State{Step: StepDashboard}
	}

	return s
}

func goBack(s State) State {
	s.Error = ""
	switch s.Step {
	case StepInput:
		s.Step = StepDashboard
	case StepSubtopics:
		s.Step = StepDashboard
		s.ActiveCourseID = ""
	case StepLessons:
		s.Step = StepSubtopics
		s.SelectedSubtopic = ""
	case StepContent:
		s.Step = StepLessons
		s.SelectedLesson = ""
	case StepQuiz:
		s.Step = StepContent
	}
	return s
}

func enterLoading(s State, op Op) State {
	s.Loading = true
	s.LoadingMessage = LoadingMessage(op)
	s.Error = ""
	return s
}

func clearLoading(s State) State {
	s.Loading = false
	s.LoadingMessage = ""
	s.Error = ""
	return s
}

func failLoading(s State, op Op) State {
	s.Loading = false
	s.LoadingMessage = ""
	s.Error = ErrorMessage(op)
	return s
}
