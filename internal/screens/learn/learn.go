// Package learn is the single screen hosting the whole learning flow:
// dashboard, course creation, subtopic and lesson lists, lesson content,
// and quizzes. Navigation decisions are delegated to the nav reducer; this
// screen owns the side effects around it (generation, caching, events).
package learn

import (
	"context"
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"

	"github.com/jcmontoya/omnilearn/internal/content"
	"github.com/jcmontoya/omnilearn/internal/course"
	"github.com/jcmontoya/omnilearn/internal/nav"
	"github.com/jcmontoya/omnilearn/internal/quiz"
	"github.com/jcmontoya/omnilearn/internal/screen"
	"github.com/jcmontoya/omnilearn/internal/store"
	"github.com/jcmontoya/omnilearn/internal/ui/components"
	"github.com/jcmontoya/omnilearn/internal/ui/layout"
)

// formField indexes into the new-course form focus order.
const (
	fieldTopic = iota
	fieldSubtopicCount
	fieldLessonCount
	fieldDifficulty
	fieldCreate
	fieldCount
)

// LearnScreen implements screen.Screen for the learning flow.
type LearnScreen struct {
	lib    *course.Library
	svc    *content.Service
	events store.EventRepo

	st nav.State

	menu       components.Menu
	subMenu    components.Menu
	lessonMenu components.Menu

	// new-course form
	topicInput  components.TextInput
	subInput    components.TextInput
	lessonInput components.TextInput
	diffIndex   int
	focusIndex  int
	formErr     string

	// content view scroll offset
	scroll int

	// quiz state
	session *quiz.Session
	choices []components.MultiChoice
	qCursor int

	// course id pending delete confirmation on the dashboard
	confirmDelete string

	// lessons whose image lookup already came back empty this run, so a
	// revisit does not retry it
	noImage map[string]bool
}

var _ screen.Screen = (*LearnScreen)(nil)
var _ screen.KeyHintProvider = (*LearnScreen)(nil)
var _ screen.ContextProvider = (*LearnScreen)(nil)

// New creates the learning screen over a loaded course library.
func New(lib *course.Library, svc *content.Service, events store.EventRepo) *LearnScreen {
	s := &LearnScreen{
		lib:     lib,
		svc:     svc,
		events:  events,
		noImage: make(map[string]bool),
	}
	s.rebuildDashboardMenu()
	return s
}

func (s *LearnScreen) Init() tea.Cmd {
	return nil
}

func (s *LearnScreen) Title() string {
	switch s.st.Step {
	case nav.StepInput:
		return "New Course"
	case nav.StepSubtopics:
		return "Subtopics"
	case nav.StepLessons:
		return s.st.SelectedSubtopic
	case nav.StepContent:
		return s.st.SelectedLesson
	case nav.StepQuiz:
		return "Quiz"
	default:
		return "Dashboard"
	}
}

// HeaderContext names the active course in the header.
func (s *LearnScreen) HeaderContext() string {
	c, ok := s.lib.Get(s.st.ActiveCourseID)
	if !ok {
		return ""
	}
	return fmt.Sprintf("%s · %s  ", c.Topic, c.Difficulty)
}

func (s *LearnScreen) KeyHints() []layout.KeyHint {
	if s.st.Loading {
		return []layout.KeyHint{{Key: "Ctrl+C", Description: "Quit"}}
	}
	switch s.st.Step {
	case nav.StepDashboard:
		if s.confirmDelete != "" {
			return []layout.KeyHint{
				{Key: "Y", Description: "Delete course"},
				{Key: "N", Description: "Keep it"},
			}
		}
		return []layout.KeyHint{
			{Key: "↑↓", Description: "Navigate"},
			{Key: "Enter", Description: "Open"},
			{Key: "D", Description: "Delete"},
			{Key: "Ctrl+C", Description: "Quit"},
		}
	case nav.StepInput:
		return []layout.KeyHint{
			{Key: "Tab", Description: "Next field"},
			{Key: "Enter", Description: "Create"},
			{Key: "Esc", Description: "Back"},
		}
	case nav.StepContent:
		return []layout.KeyHint{
			{Key: "↑↓", Description: "Scroll"},
			{Key: "N/P", Description: "Next/prev lesson"},
			{Key: "Q", Description: "Take quiz"},
			{Key: "Esc", Description: "Back"},
		}
	case nav.StepQuiz:
		if s.session != nil && s.session.Submitted() {
			return []layout.KeyHint{
				{Key: "←→", Description: "Review questions"},
				{Key: "Enter", Description: "Back to lesson"},
			}
		}
		return []layout.KeyHint{
			{Key: "↑↓", Description: "Choose"},
			{Key: "Enter", Description: "Answer"},
			{Key: "S", Description: "Submit"},
			{Key: "Esc", Description: "Abandon"},
		}
	default:
		return []layout.KeyHint{
			{Key: "↑↓", Description: "Navigate"},
			{Key: "Enter", Description: "Open"},
			{Key: "Esc", Description: "Back"},
		}
	}
}

// dispatch runs one navigation event through the reducer and refreshes the
// per-step widgets when the step changed.
func (s *LearnScreen) dispatch(e nav.Event) {
	prev := s.st
	s.st = nav.Reduce(prev, e)
	if s.st.Step != prev.Step || s.st.ActiveCourseID != prev.ActiveCourseID ||
		s.st.SelectedSubtopic != prev.SelectedSubtopic || s.st.SelectedLesson != prev.SelectedLesson {
		s.enterStep()
	}
}

// enterStep resets the widgets belonging to the step just entered.
func (s *LearnScreen) enterStep() {
	switch s.st.Step {
	case nav.StepDashboard:
		s.confirmDelete = ""
		s.session = nil
		s.choices = nil
		s.rebuildDashboardMenu()
	case nav.StepInput:
		s.resetForm()
	case nav.StepSubtopics:
		s.rebuildSubtopicMenu()
	case nav.StepLessons:
		s.rebuildLessonMenu()
	case nav.StepContent:
		s.scroll = 0
	case nav.StepQuiz:
		s.qCursor = 0
	}
}

func (s *LearnScreen) resetForm() {
	s.topicInput = components.NewTextInput("What do you want to learn?", false, 64)
	s.subInput = components.NewTextInput(fmt.Sprintf("%d", course.DefaultCount), true, 2)
	s.lessonInput = components.NewTextInput(fmt.Sprintf("%d", course.DefaultCount), true, 2)
	s.diffIndex = 0
	s.focusIndex = fieldTopic
	s.formErr = ""
}

func (s *LearnScreen) rebuildDashboardMenu() {
	items := []components.MenuItem{
		{Label: "Start a new course", Action: func() tea.Cmd {
			return func() tea.Msg { return pickNewCourseMsg{} }
		}},
	}
	for _, c := range s.lib.Courses() {
		id := c.ID
		label := fmt.Sprintf("%-36s %3d%%  %s", truncate(c.Topic, 36), int(c.Progress()*100), c.Difficulty)
		items = append(items, components.MenuItem{Label: label, Action: func() tea.Cmd {
			return func() tea.Msg { return pickCourseMsg{ID: id} }
		}})
	}
	s.menu = components.NewMenu(items)
}

func (s *LearnScreen) rebuildSubtopicMenu() {
	c, ok := s.lib.Get(s.st.ActiveCourseID)
	if !ok {
		s.subMenu = components.NewMenu(nil)
		return
	}
	items := make([]components.MenuItem, 0, len(c.Subtopics))
	for _, sub := range c.Subtopics {
		name := sub
		label := name
		if lessons, cached := c.Lessons(name); cached {
			done := 0
			for _, l := range lessons {
				if _, ok := c.CompletedQuizzes[l]; ok {
					done++
				}
			}
			label = fmt.Sprintf("%-44s %d/%d", truncate(name, 44), done, len(lessons))
		}
		items = append(items, components.MenuItem{Label: label, Action: func() tea.Cmd {
			return func() tea.Msg { return pickSubtopicMsg{Name: name} }
		}})
	}
	s.subMenu = components.NewMenu(items)
}

func (s *LearnScreen) rebuildLessonMenu() {
	c, ok := s.lib.Get(s.st.ActiveCourseID)
	if !ok {
		s.lessonMenu = components.NewMenu(nil)
		return
	}
	lessons, _ := c.Lessons(s.st.SelectedSubtopic)
	items := make([]components.MenuItem, 0, len(lessons))
	for _, l := range lessons {
		name := l
		label := name
		if score, ok := c.CompletedQuizzes[name]; ok {
			label = fmt.Sprintf("%-42s %d/%d", truncate(name, 42), score, quiz.NumQuestions)
		}
		items = append(items, components.MenuItem{Label: label, Action: func() tea.Cmd {
			return func() tea.Msg { return pickLessonMsg{Name: name} }
		}})
	}
	s.lessonMenu = components.NewMenu(items)
}

func (s *LearnScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case pickNewCourseMsg:
		s.dispatch(nav.StartInput{})
		return s, s.topicInput.Init()

	case pickCourseMsg:
		s.dispatch(nav.ResumeCourse{CourseID: msg.ID})
		return s, nil

	case pickSubtopicMsg:
		return s.selectSubtopic(msg.Name)

	case pickLessonMsg:
		return s.selectLesson(msg.Name)

	case subtopicsFetchedMsg:
		return s.handleSubtopicsFetched(msg)

	case lessonsFetchedMsg:
		return s.handleLessonsFetched(msg)

	case contentFetchedMsg:
		return s.handleContentFetched(msg)

	case quizFetchedMsg:
		return s.handleQuizFetched(msg)

	case tea.KeyMsg:
		return s.handleKey(msg)
	}

	// Forward remaining messages (cursor blink) to the focused form input.
	if s.st.Step == nav.StepInput && !s.st.Loading {
		return s, s.updateFocusedInput(msg)
	}

	return s, nil
}

func (s *LearnScreen) updateFocusedInput(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	switch s.focusIndex {
	case fieldTopic:
		s.topicInput, cmd = s.topicInput.Update(msg)
	case fieldSubtopicCount:
		s.subInput, cmd = s.subInput.Update(msg)
	case fieldLessonCount:
		s.lessonInput, cmd = s.lessonInput.Update(msg)
	}
	return cmd
}

func (s *LearnScreen) handleKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	if s.st.Loading {
		// At most one generation is in flight; input waits for it.
		return s, nil
	}

	key := msg.String()

	switch s.st.Step {
	case nav.StepDashboard:
		return s.handleDashboardKey(msg, key)
	case nav.StepInput:
		return s.handleInputKey(msg, key)
	case nav.StepSubtopics:
		if key == "esc" {
			s.dispatch(nav.GoBack{})
			return s, nil
		}
		var cmd tea.Cmd
		s.subMenu, cmd = s.subMenu.Update(msg)
		return s, cmd
	case nav.StepLessons:
		if key == "esc" {
			s.dispatch(nav.GoBack{})
			return s, nil
		}
		var cmd tea.Cmd
		s.lessonMenu, cmd = s.lessonMenu.Update(msg)
		return s, cmd
	case nav.StepContent:
		return s.handleContentKey(key)
	case nav.StepQuiz:
		return s.handleQuizKey(msg, key)
	}

	return s, nil
}

func (s *LearnScreen) handleDashboardKey(msg tea.KeyMsg, key string) (screen.Screen, tea.Cmd) {
	// Delete confirmation dialog.
	if s.confirmDelete != "" {
		switch key {
		case "y", "Y":
			id := s.confirmDelete
			s.confirmDelete = ""
			_ = s.lib.Delete(context.Background(), id)
			s.dispatch(nav.CourseDeleted{CourseID: id})
			s.rebuildDashboardMenu()
		case "n", "N", "esc":
			s.confirmDelete = ""
		}
		return s, nil
	}

	if key == "d" || key == "D" {
		// Menu row 0 is "start a new course"; the rest map to courses.
		idx := s.menu.Selected - 1
		courses := s.lib.Courses()
		if idx >= 0 && idx < len(courses) {
			s.confirmDelete = courses[idx].ID
		}
		return s, nil
	}

	var cmd tea.Cmd
	s.menu, cmd = s.menu.Update(msg)
	return s, cmd
}

func (s *LearnScreen) handleInputKey(msg tea.KeyMsg, key string) (screen.Screen, tea.Cmd) {
	switch key {
	case "esc":
		s.dispatch(nav.GoBack{})
		return s, nil
	case "tab", "down":
		s.focusIndex = (s.focusIndex + 1) % fieldCount
		return s, nil
	case "shift+tab", "up":
		s.focusIndex = (s.focusIndex + fieldCount - 1) % fieldCount
		return s, nil
	case "left":
		if s.focusIndex == fieldDifficulty && s.diffIndex > 0 {
			s.diffIndex--
			return s, nil
		}
	case "right":
		if s.focusIndex == fieldDifficulty && s.diffIndex < len(course.Difficulties)-1 {
			s.diffIndex++
			return s, nil
		}
	case "enter":
		if s.focusIndex == fieldCreate {
			return s.submitForm()
		}
		s.focusIndex++
		return s, nil
	}

	return s, s.updateFocusedInput(msg)
}

func (s *LearnScreen) handleContentKey(key string) (screen.Screen, tea.Cmd) {
	switch key {
	case "esc":
		s.dispatch(nav.GoBack{})
	case "up", "k":
		if s.scroll > 0 {
			s.scroll--
		}
	case "down", "j":
		s.scroll++
	case "pgup":
		s.scroll -= 10
		if s.scroll < 0 {
			s.scroll = 0
		}
	case "pgdown":
		s.scroll += 10
	case "q", "Q":
		return s.startQuiz()
	case "n", "right":
		return s.stepLesson(1)
	case "p", "left":
		return s.stepLesson(-1)
	}
	return s, nil
}

func (s *LearnScreen) handleQuizKey(msg tea.KeyMsg, key string) (screen.Screen, tea.Cmd) {
	if s.session == nil {
		s.dispatch(nav.GoBack{})
		return s, nil
	}

	if s.session.Submitted() {
		switch key {
		case "enter", "esc":
			s.dispatch(nav.GoBack{})
		case "left", "p":
			if s.qCursor > 0 {
				s.qCursor--
			}
		case "right", "n":
			if s.qCursor < len(s.choices)-1 {
				s.qCursor++
			}
		}
		return s, nil
	}

	switch key {
	case "esc":
		// Abandoning an unsubmitted quiz records nothing.
		s.dispatch(nav.GoBack{})
		return s, nil
	case "left":
		if s.qCursor > 0 {
			s.qCursor--
		}
		return s, nil
	case "right":
		if s.qCursor < len(s.choices)-1 {
			s.qCursor++
		}
		return s, nil
	case "s", "S":
		if s.session.CanSubmit() {
			s.submitQuiz()
		}
		return s, nil
	case "a", "b", "c", "d":
		s.chooseOption(int(key[0] - 'a'))
		return s, nil
	case "1", "2", "3", "4":
		s.chooseOption(int(key[0] - '1'))
		return s, nil
	}

	// Arrow keys and enter go to the current question's selector.
	if s.qCursor < len(s.choices) {
		before := s.choices[s.qCursor].Chosen
		s.choices[s.qCursor], _ = s.choices[s.qCursor].Update(msg)
		if after := s.choices[s.qCursor].Chosen; after != before {
			s.commitAnswer(after)
		}
	}
	return s, nil
}

// chooseOption commits an option on the current question by index.
func (s *LearnScreen) chooseOption(i int) {
	if s.qCursor >= len(s.choices) {
		return
	}
	s.choices[s.qCursor].Choose(i)
	s.commitAnswer(i)
}

// commitAnswer mirrors a committed choice into the quiz session and moves
// to the next unanswered question.
func (s *LearnScreen) commitAnswer(optIndex int) {
	questions := s.session.Quiz().Questions
	if s.qCursor >= len(questions) {
		return
	}
	q := questions[s.qCursor]
	if optIndex < 0 || optIndex >= len(q.Options) {
		return
	}
	s.session.Select(q.ID, q.Options[optIndex].ID)

	for i := 1; i <= len(s.choices); i++ {
		next := (s.qCursor + i) % len(s.choices)
		if !s.choices[next].Answered() {
			s.qCursor = next
			return
		}
	}
}

// submitQuiz scores the attempt, persists the result, and reveals answers.
func (s *LearnScreen) submitQuiz() {
	score, ok := s.session.Submit()
	if !ok {
		return
	}
	for i := range s.choices {
		s.choices[i].Reveal()
	}
	s.qCursor = 0

	ctx := context.Background()
	id, lesson := s.st.ActiveCourseID, s.st.SelectedLesson
	topic := ""
	if c, ok := s.lib.Get(id); ok {
		topic = c.Topic
	}
	_ = s.lib.Update(ctx, id, func(c *course.Course) {
		c.CompletedQuizzes[lesson] = score
	})
	_ = s.events.AppendQuizResult(ctx, store.QuizResultData{
		CourseID: id,
		Topic:    topic,
		Subtopic: s.st.SelectedSubtopic,
		Lesson:   lesson,
		Score:    score,
		Total:    quiz.NumQuestions,
	})
}

// submitForm validates the new-course form and starts subtopic generation.
func (s *LearnScreen) submitForm() (screen.Screen, tea.Cmd) {
	topic := strings.TrimSpace(s.topicInput.Value())
	if topic == "" {
		s.formErr = "Please enter a topic."
		s.focusIndex = fieldTopic
		return s, nil
	}

	subCount := course.DefaultCount
	if n, err := s.subInput.NumericValue(); err == nil {
		subCount = n
	}
	lessonCount := course.DefaultCount
	if n, err := s.lessonInput.NumericValue(); err == nil {
		lessonCount = n
	}
	subCount = course.ClampCount(subCount)
	lessonCount = course.ClampCount(lessonCount)
	diff := course.Difficulties[s.diffIndex]

	s.formErr = ""
	s.dispatch(nav.CreateStarted{})
	if !s.st.Loading {
		return s, nil
	}

	return s, func() tea.Msg {
		subs, err := s.svc.GenerateSubtopics(context.Background(), topic, diff, subCount)
		if err != nil {
			return subtopicsFetchedMsg{Err: err}
		}
		return subtopicsFetchedMsg{
			Topic:         topic,
			Difficulty:    diff,
			SubtopicCount: subCount,
			LessonCount:   lessonCount,
			Subtopics:     subs,
		}
	}
}

func (s *LearnScreen) handleSubtopicsFetched(msg subtopicsFetchedMsg) (screen.Screen, tea.Cmd) {
	if msg.Err != nil {
		s.dispatch(nav.CreateFailed{})
		return s, nil
	}
	id, _ := s.lib.Create(context.Background(), msg.Topic, msg.Difficulty, msg.SubtopicCount, msg.LessonCount, msg.Subtopics)
	s.dispatch(nav.CreateReady{CourseID: id})
	return s, nil
}

// selectSubtopic opens a subtopic, generating its lesson list on a cache
// miss.
func (s *LearnScreen) selectSubtopic(name string) (screen.Screen, tea.Cmd) {
	c, ok := s.lib.Get(s.st.ActiveCourseID)
	if !ok {
		return s, nil
	}
	_, cached := c.Lessons(name)
	s.dispatch(nav.SelectSubtopic{Subtopic: name, Cached: cached})
	if cached || !s.st.Loading {
		return s, nil
	}

	id, topic, diff, count := c.ID, c.Topic, c.Difficulty, c.LessonCount
	return s, func() tea.Msg {
		lessons, err := s.svc.GenerateLessons(context.Background(), topic, name, diff, count)
		if err != nil {
			return lessonsFetchedMsg{CourseID: id, Subtopic: name, Err: err}
		}
		return lessonsFetchedMsg{CourseID: id, Subtopic: name, Lessons: lessons}
	}
}

func (s *LearnScreen) handleLessonsFetched(msg lessonsFetchedMsg) (screen.Screen, tea.Cmd) {
	if msg.Err != nil {
		s.dispatch(nav.LessonsFailed{Subtopic: msg.Subtopic})
		return s, nil
	}
	// The cache fill sticks even if the learner has navigated away.
	_ = s.lib.Update(context.Background(), msg.CourseID, func(c *course.Course) {
		c.LessonsCache[msg.Subtopic] = msg.Lessons
	})
	s.dispatch(nav.LessonsReady{Subtopic: msg.Subtopic})
	return s, nil
}

// selectLesson opens a lesson, generating body and image on a cache miss.
// A cached body with an unresolved image refetches only the image.
func (s *LearnScreen) selectLesson(name string) (screen.Screen, tea.Cmd) {
	c, ok := s.lib.Get(s.st.ActiveCourseID)
	if !ok {
		return s, nil
	}
	_, haveBody := c.Content(name)
	_, haveImage := c.Image(name)
	if !haveImage && s.noImage[c.ID+"\x00"+name] {
		haveImage = true
	}

	cached := haveBody && haveImage
	s.dispatch(nav.SelectLesson{Lesson: name, Cached: cached})
	if cached || !s.st.Loading {
		return s, nil
	}

	id, topic, subtopic, diff := c.ID, c.Topic, s.st.SelectedSubtopic, c.Difficulty
	return s, func() tea.Msg {
		ctx := context.Background()
		var body string
		if !haveBody {
			var err error
			body, err = s.svc.GenerateLessonContent(ctx, topic, subtopic, name, diff)
			if err != nil {
				return contentFetchedMsg{CourseID: id, Lesson: name, Err: err}
			}
		}
		// An image failure downgrades to "no image"; the lesson still opens.
		img, err := s.svc.FindLessonImage(ctx, topic, name)
		if err != nil {
			img = nil
		}
		return contentFetchedMsg{CourseID: id, Lesson: name, Body: body, HaveBody: !haveBody, Image: img}
	}
}

func (s *LearnScreen) handleContentFetched(msg contentFetchedMsg) (screen.Screen, tea.Cmd) {
	if msg.Err != nil {
		s.dispatch(nav.ContentFailed{Lesson: msg.Lesson})
		return s, nil
	}
	if msg.HaveBody || msg.Image != nil {
		_ = s.lib.Update(context.Background(), msg.CourseID, func(c *course.Course) {
			if msg.HaveBody {
				c.ContentCache[msg.Lesson] = msg.Body
			}
			if msg.Image != nil {
				c.ImageCache[msg.Lesson] = *msg.Image
			}
		})
	}
	if msg.Image == nil {
		s.noImage[msg.CourseID+"\x00"+msg.Lesson] = true
	}
	s.dispatch(nav.ContentReady{Lesson: msg.Lesson})
	return s, nil
}

// stepLesson moves to the adjacent lesson in the current subtopic.
func (s *LearnScreen) stepLesson(delta int) (screen.Screen, tea.Cmd) {
	c, ok := s.lib.Get(s.st.ActiveCourseID)
	if !ok {
		return s, nil
	}
	lessons, ok := c.Lessons(s.st.SelectedSubtopic)
	if !ok {
		return s, nil
	}
	for i, l := range lessons {
		if l == s.st.SelectedLesson {
			next := i + delta
			if next < 0 || next >= len(lessons) {
				return s, nil
			}
			return s.selectLesson(lessons[next])
		}
	}
	return s, nil
}

// startQuiz generates a fresh quiz from the cached lesson body. Quizzes are
// never cached; every attempt gets new questions.
func (s *LearnScreen) startQuiz() (screen.Screen, tea.Cmd) {
	c, ok := s.lib.Get(s.st.ActiveCourseID)
	if !ok {
		return s, nil
	}
	lesson := s.st.SelectedLesson
	body, ok := c.Content(lesson)
	if !ok {
		return s, nil
	}
	s.dispatch(nav.StartQuiz{})
	if !s.st.Loading {
		return s, nil
	}

	id := c.ID
	return s, func() tea.Msg {
		q, err := s.svc.GenerateQuiz(context.Background(), body)
		if err != nil {
			return quizFetchedMsg{CourseID: id, Lesson: lesson, Err: err}
		}
		return quizFetchedMsg{CourseID: id, Lesson: lesson, Quiz: q}
	}
}

func (s *LearnScreen) handleQuizFetched(msg quizFetchedMsg) (screen.Screen, tea.Cmd) {
	if msg.Err != nil {
		s.dispatch(nav.QuizFailed{Lesson: msg.Lesson})
		return s, nil
	}
	prev := s.st.Step
	s.dispatch(nav.QuizReady{Lesson: msg.Lesson})
	if s.st.Step == nav.StepQuiz && prev != nav.StepQuiz {
		s.session = quiz.NewSession(msg.Quiz)
		s.choices = buildChoices(msg.Quiz)
		s.qCursor = 0
	}
	return s, nil
}

// buildChoices creates one selector per quiz question.
func buildChoices(q quiz.Quiz) []components.MultiChoice {
	choices := make([]components.MultiChoice, 0, len(q.Questions))
	for _, question := range q.Questions {
		opts := make([]string, 0, len(question.Options))
		correct := 0
		for i, opt := range question.Options {
			opts = append(opts, opt.Text)
			if opt.ID == question.CorrectOptionID {
				correct = i
			}
		}
		choices = append(choices, components.NewMultiChoice(question.Text, opts, correct))
	}
	return choices
}

func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	if max <= 1 {
		return s[:max]
	}
	return s[:max-1] + "…"
}
