package course

import (
	"encoding/json"
	"fmt"
)

// rawCourse mirrors Course but keeps image-cache entries undecoded so
// legacy-shaped values can be inspected before adoption. An older client
// stored bare URL strings in imageCache; those entries must be dropped,
// not fail the whole load.
type rawCourse struct {
	ID               string                     `json:"id"`
	Topic            string                     `json:"topic"`
	Difficulty       Difficulty                 `json:"difficulty"`
	SubtopicCount    int                        `json:"subtopicCount"`
	LessonCount      int                        `json:"lessonCount"`
	CreatedAt        int64                      `json:"createdAt"`
	Subtopics        []string                   `json:"subtopics"`
	LessonsCache     map[string][]string        `json:"lessonsCache"`
	ContentCache     map[string]string          `json:"contentCache"`
	ImageCache       map[string]json.RawMessage `json:"imageCache"`
	CompletedQuizzes map[string]int             `json:"completedQuizzes"`
}

// DecodeCourses parses a persisted collection payload and migrates every
// record into the current schema. The migration is pure and idempotent:
//
//   - image-cache entries that are not objects carrying at least url and
//     sourceUrl are dropped silently (treated as a cache miss)
//   - missing subtopicCount/lessonCount are backfilled with the default 10
//
// A payload that fails to parse is an error for the caller to log; it is
// never fatal to the app.
func DecodeCourses(payload []byte) ([]Course, error) {
	var raw []rawCourse
	if err := json.Unmarshal(payload, &raw); err != nil {
		return nil, fmt.Errorf("parse course collection: %w", err)
	}

	courses := make([]Course, 0, len(raw))
	for _, rc := range raw {
		courses = append(courses, migrate(rc))
	}
	return courses, nil
}

// EncodeCourses serializes the collection for storage.
func EncodeCourses(courses []Course) ([]byte, error) {
	payload, err := json.Marshal(courses)
	if err != nil {
		return nil, fmt.Errorf("encode course collection: %w", err)
	}
	return payload, nil
}

func migrate(rc rawCourse) Course {
	c := Course{
		ID:               rc.ID,
		Topic:            rc.Topic,
		Difficulty:       rc.Difficulty,
		SubtopicCount:    rc.SubtopicCount,
		LessonCount:      rc.LessonCount,
		CreatedAt:        rc.CreatedAt,
		Subtopics:        rc.Subtopics,
		LessonsCache:     rc.LessonsCache,
		ContentCache:     rc.ContentCache,
		ImageCache:       make(map[string]LessonImage, len(rc.ImageCache)),
		CompletedQuizzes: rc.CompletedQuizzes,
	}

	if c.SubtopicCount <= 0 {
		c.SubtopicCount = DefaultCount
	}
	if c.LessonCount <= 0 {
		c.LessonCount = DefaultCount
	}

	for lesson, entry := range rc.ImageCache {
		img, ok := decodeImage(entry)
		if !ok {
			continue
		}
		c.ImageCache[lesson] = img
	}

	if c.LessonsCache == nil {
		c.LessonsCache = map[string][]string{}
	}
	if c.ContentCache == nil {
		c.ContentCache = map[string]string{}
	}
	if c.CompletedQuizzes == nil {
		c.CompletedQuizzes = map[string]int{}
	}
	return c
}

// decodeImage accepts only well-formed image records: a JSON object with
// non-empty url and sourceUrl.
func decodeImage(entry json.RawMessage) (LessonImage, bool) {
	var img LessonImage
	if err := json.Unmarshal(entry, &img); err != nil {
		return LessonImage{}, false
	}
	if img.URL == "" || img.SourceURL == "" {
		return LessonImage{}, false
	}
	return img, true
}
