package course

import (
	"reflect"
	"testing"
)

func TestDecodeCoursesDropsLegacyImageEntries(t *testing.T) {
	payload := []byte(`[{
		"id": "c1",
		"topic": "Astronomy",
		"difficulty": "Basic",
		"subtopicCount": 3,
		"lessonCount": 2,
		"createdAt": 1700000000000,
		"subtopics": ["Stars"],
		"lessonsCache": {},
		"contentCache": {},
		"imageCache": {
			"Old Lesson": "https://example.com/legacy.jpg",
			"Partial": {"url": "https://example.com/p.jpg"},
			"Good": {"url": "https://example.com/g.jpg", "title": "G", "author": "A", "sourceUrl": "https://example.com", "license": "CC"}
		},
		"completedQuizzes": {}
	}]`)

	courses, err := DecodeCourses(payload)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(courses) != 1 {
		t.Fatalf("courses = %d, want 1", len(courses))
	}

	ic := courses[0].ImageCache
	if _, ok := ic["Old Lesson"]; ok {
		t.Error("legacy string entry should be dropped")
	}
	if _, ok := ic["Partial"]; ok {
		t.Error("entry missing sourceUrl should be dropped")
	}
	img, ok := ic["Good"]
	if !ok {
		t.Fatal("well-formed entry should survive")
	}
	if img.URL != "https://example.com/g.jpg" || img.SourceURL != "https://example.com" {
		t.Errorf("image = %+v", img)
	}
}

func TestDecodeCoursesBackfillsCounts(t *testing.T) {
	payload := []byte(`[{"id": "c1", "topic": "History", "difficulty": "Medium", "createdAt": 1}]`)

	courses, err := DecodeCourses(payload)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	c := courses[0]
	if c.SubtopicCount != DefaultCount {
		t.Errorf("subtopicCount = %d, want %d", c.SubtopicCount, DefaultCount)
	}
	if c.LessonCount != DefaultCount {
		t.Errorf("lessonCount = %d, want %d", c.LessonCount, DefaultCount)
	}
	// Caches must come back usable even when absent from the payload.
	if c.LessonsCache == nil || c.ContentCache == nil || c.ImageCache == nil || c.CompletedQuizzes == nil {
		t.Error("expected non-nil caches after migration")
	}
}

func TestDecodeCoursesIdempotent(t *testing.T) {
	payload := []byte(`[{
		"id": "c1", "topic": "Physics", "difficulty": "High",
		"createdAt": 5,
		"imageCache": {"L": "legacy-string"}
	}]`)

	once, err := DecodeCourses(payload)
	if err != nil {
		t.Fatalf("first decode: %v", err)
	}
	reencoded, err := EncodeCourses(once)
	if err != nil {
		t.Fatalf("encode: %v", err)
	}
	twice, err := DecodeCourses(reencoded)
	if err != nil {
		t.Fatalf("second decode: %v", err)
	}
	if !reflect.DeepEqual(once, twice) {
		t.Errorf("migration not idempotent:\nonce:  %+v\ntwice: %+v", once, twice)
	}
}

func TestDecodeCoursesRejectsGarbage(t *testing.T) {
	if _, err := DecodeCourses([]byte(`not json`)); err == nil {
		t.Error("expected error for unparseable payload")
	}
}

func TestClampCount(t *testing.T) {
	tests := []struct {
		in   int
		want int
	}{
		{0, 1},
		{-5, 1},
		{1, 1},
		{10, 10},
		{20, 20},
		{21, 20},
		{999, 20},
	}
	for _, tt := range tests {
		if got := ClampCount(tt.in); got != tt.want {
			t.Errorf("ClampCount(%d) = %d, want %d", tt.in, got, tt.want)
		}
	}
}

func TestCourseLessonsEmptyListIsMiss(t *testing.T) {
	c := Course{LessonsCache: map[string][]string{
		"Filled": {"A", "B"},
		"Empty":  {},
	}}

	if _, ok := c.Lessons("Filled"); !ok {
		t.Error("non-empty list should be a hit")
	}
	// A present but empty list must behave like a miss so a generation
	// that returned nothing can be retried.
	if _, ok := c.Lessons("Empty"); ok {
		t.Error("empty list should be a miss")
	}
	if _, ok := c.Lessons("Absent"); ok {
		t.Error("absent key should be a miss")
	}
}

func TestCourseProgress(t *testing.T) {
	c := Course{
		SubtopicCount: 2,
		LessonCount:   5,
		CompletedQuizzes: map[string]int{
			"L1": 4,
			"L2": 2,
		},
	}
	if got := c.Progress(); got != 0.2 {
		t.Errorf("progress = %v, want 0.2", got)
	}

	empty := Course{}
	if got := empty.Progress(); got != 0 {
		t.Errorf("progress of zero-count course = %v, want 0", got)
	}
}
