package learn

import (
	"github.com/jcmontoya/omnilearn/internal/course"
	"github.com/jcmontoya/omnilearn/internal/quiz"
)

// pickNewCourseMsg is emitted by the dashboard menu to open the course form.
type pickNewCourseMsg struct{}

// pickCourseMsg is emitted by the dashboard menu to resume a course.
type pickCourseMsg struct {
	ID string
}

// pickSubtopicMsg is emitted by the subtopic menu.
type pickSubtopicMsg struct {
	Name string
}

// pickLessonMsg is emitted by the lesson menu.
type pickLessonMsg struct {
	Name string
}

// subtopicsFetchedMsg is sent when subtopic generation for a new course
// finishes. The course is only created once this arrives without error.
type subtopicsFetchedMsg struct {
	Topic         string
	Difficulty    course.Difficulty
	SubtopicCount int
	LessonCount   int
	Subtopics     []string
	Err           error
}

// lessonsFetchedMsg is sent when the lesson list for a subtopic has been
// generated.
type lessonsFetchedMsg struct {
	CourseID string
	Subtopic string
	Lessons  []string
	Err      error
}

// contentFetchedMsg carries a generated lesson body and its optional image.
// HaveBody is false when only the image lookup ran because the body was
// already cached.
type contentFetchedMsg struct {
	CourseID string
	Lesson   string
	Body     string
	HaveBody bool
	Image    *course.LessonImage
	Err      error
}

// quizFetchedMsg is sent when quiz generation for a lesson finishes.
type quizFetchedMsg struct {
	CourseID string
	Lesson   string
	Quiz     quiz.Quiz
	Err      error
}
