// Package course holds the learner's course collection: the data model,
// the legacy-payload migration applied on load, and the Library that keeps
// the in-memory collection in sync with durable storage.
package course

import "time"

// Difficulty is the fixed difficulty level chosen at course creation.
type Difficulty string

const (
	DifficultyBasic  Difficulty = "Basic"
	DifficultyMedium Difficulty = "Medium"
	DifficultyHigh   Difficulty = "High"
)

// Difficulties lists all levels in menu order.
var Difficulties = []Difficulty{DifficultyBasic, DifficultyMedium, DifficultyHigh}

// Count limits for subtopics and lessons per subtopic.
const (
	MinCount     = 1
	MaxCount     = 20
	DefaultCount = 10
)

// ClampCount forces a requested subtopic or lesson count into [MinCount, MaxCount].
func ClampCount(n int) int {
	if n < MinCount {
		return MinCount
	}
	if n > MaxCount {
		return MaxCount
	}
	return n
}

// LessonImage is one illustrative image reference for a lesson, with
// attribution fields for display.
type LessonImage struct {
	URL       string `json:"url"`
	Title     string `json:"title"`
	Author    string `json:"author"`
	SourceURL string `json:"sourceUrl"`
	License   string `json:"license"`
}

// Course is one learner-initiated topic of study. Subtopics are generated
// once at creation; lessons, lesson bodies, and images fill their caches on
// first access and are never invalidated. JSON field names match the legacy
// persisted layout so old payloads decode without translation.
type Course struct {
	ID            string     `json:"id"`
	Topic         string     `json:"topic"`
	Difficulty    Difficulty `json:"difficulty"`
	SubtopicCount int        `json:"subtopicCount"`
	LessonCount   int        `json:"lessonCount"`
	// CreatedAt is Unix milliseconds, as the legacy client stored it.
	CreatedAt        int64                  `json:"createdAt"`
	Subtopics        []string               `json:"subtopics"`
	LessonsCache     map[string][]string    `json:"lessonsCache"`
	ContentCache     map[string]string      `json:"contentCache"`
	ImageCache       map[string]LessonImage `json:"imageCache"`
	CompletedQuizzes map[string]int         `json:"completedQuizzes"`
}

// Lessons returns the cached lesson list for a subtopic. A present but
// empty list counts as a miss so a failed generation can be retried.
func (c *Course) Lessons(subtopic string) ([]string, bool) {
	lessons := c.LessonsCache[subtopic]
	if len(lessons) == 0 {
		return nil, false
	}
	return lessons, true
}

// Content returns the cached body text for a lesson.
func (c *Course) Content(lesson string) (string, bool) {
	body, ok := c.ContentCache[lesson]
	return body, ok
}

// Image returns the cached image record for a lesson.
func (c *Course) Image(lesson string) (LessonImage, bool) {
	img, ok := c.ImageCache[lesson]
	return img, ok
}

// TotalLessons is the expected lesson count across the whole course,
// used for progress display.
func (c *Course) TotalLessons() int {
	return c.SubtopicCount * c.LessonCount
}

// Progress is the fraction of expected lessons with a submitted quiz,
// in [0, 1].
func (c *Course) Progress() float64 {
	total := c.TotalLessons()
	if total == 0 {
		return 0
	}
	p := float64(len(c.CompletedQuizzes)) / float64(total)
	if p > 1 {
		return 1
	}
	return p
}

// Age reports how long ago the course was created.
func (c *Course) Age() time.Duration {
	return time.Since(time.UnixMilli(c.CreatedAt))
}
