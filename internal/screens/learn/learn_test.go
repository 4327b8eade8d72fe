package learn

import (
	"context"
	"encoding/json"
	"fmt"
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/jcmontoya/omnilearn/internal/content"
	"github.com/jcmontoya/omnilearn/internal/course"
	"github.com/jcmontoya/omnilearn/internal/llm"
	"github.com/jcmontoya/omnilearn/internal/nav"
	"github.com/jcmontoya/omnilearn/internal/quiz"
	"github.com/jcmontoya/omnilearn/internal/store"
)

// memBlobs is an in-memory course.BlobStore.
type memBlobs struct {
	payloads [][]byte
}

func (m *memBlobs) SaveBlob(_ context.Context, payload []byte) error {
	m.payloads = append(m.payloads, payload)
	return nil
}

func (m *memBlobs) LatestBlob(context.Context) ([]byte, error) {
	if len(m.payloads) == 0 {
		return nil, nil
	}
	return m.payloads[len(m.payloads)-1], nil
}

func (m *memBlobs) Prune(context.Context, int) error { return nil }

// eventRecorder is a store.EventRepo stub that records quiz submissions.
type eventRecorder struct {
	quizResults []store.QuizResultData
}

func (e *eventRecorder) AppendLLMRequest(context.Context, store.LLMRequestEventData) error {
	return nil
}

func (e *eventRecorder) QueryLLMEvents(context.Context, store.QueryOpts) ([]store.LLMEvent, error) {
	return nil, nil
}

func (e *eventRecorder) GetLLMEvent(context.Context, int) (*store.LLMEvent, error) {
	return nil, nil
}

func (e *eventRecorder) LLMUsageByPurpose(context.Context) ([]store.PurposeUsage, error) {
	return nil, nil
}

func (e *eventRecorder) LLMUsageByModel(context.Context) ([]store.ModelUsage, error) {
	return nil, nil
}

func (e *eventRecorder) AppendQuizResult(_ context.Context, data store.QuizResultData) error {
	e.quizResults = append(e.quizResults, data)
	return nil
}

func (e *eventRecorder) QuizHistory(context.Context, string) ([]store.QuizResult, error) {
	return nil, nil
}

func titlesJSON(titles ...string) json.RawMessage {
	b, _ := json.Marshal(map[string]any{"titles": titles})
	return b
}

func quizJSON() json.RawMessage {
	questions := make([]map[string]any, quiz.NumQuestions)
	for i := range questions {
		questions[i] = map[string]any{
			"id":   i + 1,
			"text": fmt.Sprintf("Question %d", i+1),
			"options": []map[string]any{
				{"id": "a", "text": "Option A"},
				{"id": "b", "text": "Option B"},
				{"id": "c", "text": "Option C"},
				{"id": "d", "text": "Option D"},
			},
			"correctOptionId": "b",
		}
	}
	b, _ := json.Marshal(map[string]any{"questions": questions})
	return b
}

func newTestScreen(t *testing.T, mock *llm.MockProvider) (*LearnScreen, *course.Library, *eventRecorder) {
	t.Helper()
	lib := course.NewLibrary(&memBlobs{})
	if err := lib.Load(context.Background()); err != nil {
		t.Fatalf("load: %v", err)
	}
	events := &eventRecorder{}
	svc := content.NewService(mock, content.DefaultConfig())
	return New(lib, svc, events), lib, events
}

// drive feeds a message and, if the update produced a command, runs it and
// feeds the resulting message back once.
func drive(t *testing.T, s *LearnScreen, msg tea.Msg) {
	t.Helper()
	_, cmd := s.Update(msg)
	if cmd == nil {
		return
	}
	if next := cmd(); next != nil {
		s.Update(next)
	}
}

func key(k string) tea.Msg {
	if len(k) == 1 {
		r := rune(k[0])
		return tea.KeyPressMsg{Code: r, Text: string(r)}
	}
	switch k {
	case "enter":
		return tea.KeyPressMsg{Code: tea.KeyEnter}
	case "esc":
		return tea.KeyPressMsg{Code: tea.KeyEscape}
	default:
		return tea.KeyPressMsg{Code: tea.KeySpace}
	}
}

// createCourse drives the new-course form through subtopic generation.
func createCourse(t *testing.T, s *LearnScreen) {
	t.Helper()
	drive(t, s, pickNewCourseMsg{})
	if s.st.Step != nav.StepInput {
		t.Fatalf("step = %v, want input", s.st.Step)
	}
	s.topicInput.Model.SetValue("Cell Biology")
	s.subInput.Model.SetValue("3")
	s.lessonInput.Model.SetValue("2")
	s.focusIndex = fieldCreate
	drive(t, s, key("enter"))
}

func TestCreateCourseFlow(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{
		Content: titlesJSON("The Cell", "Organelles", "Cell Division"),
	})
	s, lib, _ := newTestScreen(t, mock)

	createCourse(t, s)

	if s.st.Step != nav.StepSubtopics {
		t.Fatalf("step = %v, want subtopics", s.st.Step)
	}
	courses := lib.Courses()
	if len(courses) != 1 {
		t.Fatalf("courses = %d, want 1", len(courses))
	}
	c := courses[0]
	if c.Topic != "Cell Biology" || c.Difficulty != course.DifficultyBasic {
		t.Errorf("course = %+v", c)
	}
	if c.SubtopicCount != 3 || c.LessonCount != 2 {
		t.Errorf("counts = %d/%d, want 3/2", c.SubtopicCount, c.LessonCount)
	}
	if len(c.Subtopics) != 3 || c.Subtopics[0] != "The Cell" {
		t.Errorf("subtopics = %v", c.Subtopics)
	}
	if s.st.ActiveCourseID != c.ID {
		t.Error("active course not set")
	}
}

func TestCreateFailureStaysOnForm(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{
		Err: &llm.ErrProviderUnavailable{},
	})
	s, lib, _ := newTestScreen(t, mock)

	createCourse(t, s)

	if s.st.Step != nav.StepInput {
		t.Fatalf("step = %v, want input", s.st.Step)
	}
	if s.st.Error == "" {
		t.Error("expected an error message after failed creation")
	}
	if len(lib.Courses()) != 0 {
		t.Error("no course should exist after failed creation")
	}

	// Retry with a working provider succeeds and clears the error.
	mock.AddResponse(llm.MockResponse{Content: titlesJSON("A", "B", "C")})
	s.focusIndex = fieldCreate
	drive(t, s, key("enter"))
	if s.st.Step != nav.StepSubtopics {
		t.Fatalf("step = %v, want subtopics after retry", s.st.Step)
	}
	if s.st.Error != "" {
		t.Errorf("error = %q, want cleared", s.st.Error)
	}
}

func TestSubtopicMissGeneratesAndCaches(t *testing.T) {
	mock := llm.NewMockProvider(
		llm.MockResponse{Content: titlesJSON("The Cell", "Organelles", "Cell Division")},
		llm.MockResponse{Content: titlesJSON("What is a Cell", "Cell Types")},
	)
	s, lib, _ := newTestScreen(t, mock)
	createCourse(t, s)

	drive(t, s, pickSubtopicMsg{Name: "The Cell"})

	if s.st.Step != nav.StepLessons {
		t.Fatalf("step = %v, want lessons", s.st.Step)
	}
	c := lib.Courses()[0]
	lessons, ok := c.Lessons("The Cell")
	if !ok || len(lessons) != 2 {
		t.Fatalf("lessons = %v cached=%v", lessons, ok)
	}

	// A second visit is a cache hit: no extra provider call.
	calls := mock.CallCount()
	drive(t, s, key("esc"))
	drive(t, s, pickSubtopicMsg{Name: "The Cell"})
	if s.st.Step != nav.StepLessons {
		t.Fatalf("step = %v, want lessons on revisit", s.st.Step)
	}
	if mock.CallCount() != calls {
		t.Errorf("calls = %d, want %d (cache hit)", mock.CallCount(), calls)
	}
}

func openLesson(t *testing.T, s *LearnScreen, mock *llm.MockProvider) {
	t.Helper()
	mock.AddResponse(llm.MockResponse{Content: titlesJSON("What is a Cell", "Cell Types")})
	drive(t, s, pickSubtopicMsg{Name: "The Cell"})

	mock.AddResponse(llm.MockResponse{Content: json.RawMessage(`{"content":"# What is a Cell\nCells are the basic unit of life."}`)})
	mock.AddResponse(llm.MockResponse{Content: json.RawMessage(`{"found":true,"image":{"url":"https://example.com/cell.jpg","title":"A cell","author":"Someone","sourceUrl":"https://example.com","license":"CC BY"}}`)})
	drive(t, s, pickLessonMsg{Name: "What is a Cell"})
}

func TestLessonOpenCachesContentAndImage(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{
		Content: titlesJSON("The Cell", "Organelles", "Cell Division"),
	})
	s, lib, _ := newTestScreen(t, mock)
	createCourse(t, s)
	openLesson(t, s, mock)

	if s.st.Step != nav.StepContent {
		t.Fatalf("step = %v, want content", s.st.Step)
	}
	c := lib.Courses()[0]
	if _, ok := c.Content("What is a Cell"); !ok {
		t.Error("lesson body not cached")
	}
	img, ok := c.Image("What is a Cell")
	if !ok || img.URL != "https://example.com/cell.jpg" {
		t.Errorf("image = %+v cached=%v", img, ok)
	}

	// Revisiting is fully cached.
	calls := mock.CallCount()
	drive(t, s, key("esc"))
	drive(t, s, pickLessonMsg{Name: "What is a Cell"})
	if mock.CallCount() != calls {
		t.Errorf("calls = %d, want %d (cache hit)", mock.CallCount(), calls)
	}
}

func TestImageFailureStillOpensLesson(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{
		Content: titlesJSON("The Cell", "Organelles", "Cell Division"),
	})
	s, lib, _ := newTestScreen(t, mock)
	createCourse(t, s)

	mock.AddResponse(llm.MockResponse{Content: titlesJSON("What is a Cell", "Cell Types")})
	drive(t, s, pickSubtopicMsg{Name: "The Cell"})

	mock.AddResponse(llm.MockResponse{Content: json.RawMessage(`{"content":"Body."}`)})
	mock.AddResponse(llm.MockResponse{Err: &llm.ErrProviderUnavailable{}})
	drive(t, s, pickLessonMsg{Name: "What is a Cell"})

	if s.st.Step != nav.StepContent {
		t.Fatalf("step = %v, want content despite image failure", s.st.Step)
	}
	c := lib.Courses()[0]
	if _, ok := c.Content("What is a Cell"); !ok {
		t.Error("lesson body should be cached")
	}
	if _, ok := c.Image("What is a Cell"); ok {
		t.Error("no image should be cached")
	}

	// The failed lookup is not retried on revisit within this run.
	calls := mock.CallCount()
	drive(t, s, key("esc"))
	drive(t, s, pickLessonMsg{Name: "What is a Cell"})
	if s.st.Step != nav.StepContent {
		t.Fatalf("step = %v, want content on revisit", s.st.Step)
	}
	if mock.CallCount() != calls {
		t.Errorf("calls = %d, want %d", mock.CallCount(), calls)
	}
}

func TestQuizFlowRecordsScore(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{
		Content: titlesJSON("The Cell", "Organelles", "Cell Division"),
	})
	s, lib, events := newTestScreen(t, mock)
	createCourse(t, s)
	openLesson(t, s, mock)

	mock.AddResponse(llm.MockResponse{Content: quizJSON()})
	drive(t, s, key("q"))
	if s.st.Step != nav.StepQuiz {
		t.Fatalf("step = %v, want quiz", s.st.Step)
	}
	if s.session == nil || len(s.choices) != quiz.NumQuestions {
		t.Fatal("quiz session not initialized")
	}

	// Submit before answering everything is refused.
	drive(t, s, key("s"))
	if s.session.Submitted() {
		t.Fatal("submit should be gated on answering all questions")
	}

	// Answer every question with option b (the correct one).
	for i := 0; i < quiz.NumQuestions; i++ {
		drive(t, s, key("b"))
	}
	drive(t, s, key("s"))

	if !s.session.Submitted() {
		t.Fatal("quiz should be submitted")
	}
	if s.session.Score() != quiz.NumQuestions {
		t.Errorf("score = %d, want %d", s.session.Score(), quiz.NumQuestions)
	}

	c := lib.Courses()[0]
	if got := c.CompletedQuizzes["What is a Cell"]; got != quiz.NumQuestions {
		t.Errorf("recorded score = %d, want %d", got, quiz.NumQuestions)
	}
	if len(events.quizResults) != 1 {
		t.Fatalf("quiz events = %d, want 1", len(events.quizResults))
	}
	res := events.quizResults[0]
	if res.Lesson != "What is a Cell" || res.Score != quiz.NumQuestions || res.Total != quiz.NumQuestions {
		t.Errorf("quiz event = %+v", res)
	}

	// Answers are frozen after submission.
	drive(t, s, key("a"))
	if got, _ := s.session.Answer(1); got != "b" {
		t.Errorf("answer changed after submit: %q", got)
	}

	// Enter returns to the lesson.
	drive(t, s, key("enter"))
	if s.st.Step != nav.StepContent {
		t.Errorf("step = %v, want content after quiz", s.st.Step)
	}
}

func TestAbandonedQuizRecordsNothing(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{
		Content: titlesJSON("The Cell", "Organelles", "Cell Division"),
	})
	s, lib, events := newTestScreen(t, mock)
	createCourse(t, s)
	openLesson(t, s, mock)

	mock.AddResponse(llm.MockResponse{Content: quizJSON()})
	drive(t, s, key("q"))
	drive(t, s, key("b"))
	drive(t, s, key("esc"))

	if s.st.Step != nav.StepContent {
		t.Fatalf("step = %v, want content", s.st.Step)
	}
	c := lib.Courses()[0]
	if len(c.CompletedQuizzes) != 0 {
		t.Error("abandoned quiz should record no score")
	}
	if len(events.quizResults) != 0 {
		t.Error("abandoned quiz should append no event")
	}
}

func TestDeleteCourseWithConfirmation(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{
		Content: titlesJSON("A", "B", "C"),
	})
	s, lib, _ := newTestScreen(t, mock)
	createCourse(t, s)

	// Back to the dashboard; highlight the course row.
	drive(t, s, key("esc"))
	if s.st.Step != nav.StepDashboard {
		t.Fatalf("step = %v, want dashboard", s.st.Step)
	}
	s.menu.Selected = 1

	drive(t, s, key("d"))
	if s.confirmDelete == "" {
		t.Fatal("expected delete confirmation")
	}

	// N cancels.
	drive(t, s, key("n"))
	if s.confirmDelete != "" || len(lib.Courses()) != 1 {
		t.Fatal("cancel should keep the course")
	}

	// Y deletes.
	drive(t, s, key("d"))
	drive(t, s, key("y"))
	if len(lib.Courses()) != 0 {
		t.Error("course should be deleted")
	}
	if s.st.Step != nav.StepDashboard {
		t.Errorf("step = %v, want dashboard", s.st.Step)
	}
}

func TestResumeCourse(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{
		Content: titlesJSON("A", "B", "C"),
	})
	s, lib, _ := newTestScreen(t, mock)
	createCourse(t, s)
	id := lib.Courses()[0].ID

	drive(t, s, key("esc"))
	drive(t, s, pickCourseMsg{ID: id})
	if s.st.Step != nav.StepSubtopics || s.st.ActiveCourseID != id {
		t.Errorf("state = %+v, want subtopics of %s", s.st, id)
	}
}

func TestKeysIgnoredWhileLoading(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{
		Content: titlesJSON("A", "B", "C"),
	})
	s, _, _ := newTestScreen(t, mock)
	createCourse(t, s)

	// Start a lesson fetch but do not deliver the result yet.
	mock.AddResponse(llm.MockResponse{Content: titlesJSON("L1", "L2")})
	_, cmd := s.Update(pickSubtopicMsg{Name: "A"})
	if cmd == nil || !s.st.Loading {
		t.Fatal("expected an in-flight fetch")
	}

	// Keys are ignored mid-fetch.
	s.Update(key("esc"))
	if s.st.Step != nav.StepSubtopics || !s.st.Loading {
		t.Error("esc should be ignored while loading")
	}

	// The result lands normally afterwards.
	s.Update(cmd())
	if s.st.Step != nav.StepLessons {
		t.Errorf("step = %v, want lessons", s.st.Step)
	}
}

func TestStaleResultDiscardedAfterDeletion(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{
		Content: titlesJSON("A", "B", "C"),
	})
	s, lib, _ := newTestScreen(t, mock)
	createCourse(t, s)
	id := lib.Courses()[0].ID

	mock.AddResponse(llm.MockResponse{Content: titlesJSON("L1", "L2")})
	_, cmd := s.Update(pickSubtopicMsg{Name: "A"})
	if !s.st.Loading {
		t.Fatal("expected an in-flight fetch")
	}

	// The active course is removed while the fetch is in flight; deletion
	// is the one event processed even mid-fetch.
	_ = lib.Delete(context.Background(), id)
	s.dispatch(nav.CourseDeleted{CourseID: id})
	if s.st.Step != nav.StepDashboard {
		t.Fatalf("step = %v, want dashboard after deletion", s.st.Step)
	}

	// The late result is discarded instead of resurrecting the flow.
	s.Update(cmd())
	if s.st.Step != nav.StepDashboard {
		t.Errorf("step = %v, stale result should be discarded", s.st.Step)
	}
	if s.st.Loading {
		t.Error("loading flag should not survive deletion")
	}
}

func TestNextLessonFromContent(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{
		Content: titlesJSON("The Cell", "Organelles", "Cell Division"),
	})
	s, _, _ := newTestScreen(t, mock)
	createCourse(t, s)
	openLesson(t, s, mock)

	mock.AddResponse(llm.MockResponse{Content: json.RawMessage(`{"content":"Second lesson body."}`)})
	mock.AddResponse(llm.MockResponse{Content: json.RawMessage(`{"found":false}`)})
	drive(t, s, key("n"))

	if s.st.Step != nav.StepContent {
		t.Fatalf("step = %v, want content", s.st.Step)
	}
	if s.st.SelectedLesson != "Cell Types" {
		t.Errorf("lesson = %q, want Cell Types", s.st.SelectedLesson)
	}

	// No further lesson; n at the end is a no-op.
	drive(t, s, key("n"))
	if s.st.SelectedLesson != "Cell Types" {
		t.Errorf("lesson = %q, should stay on last", s.st.SelectedLesson)
	}
}
