package course

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/google/uuid"
)

// keepRevisions is how many collection snapshots to retain in storage as a
// recovery margin. Only the newest is ever read.
const keepRevisions = 5

// BlobStore is the durable home of the serialized collection. Satisfied by
// store.CourseLibraryRepo.
type BlobStore interface {
	SaveBlob(ctx context.Context, payload []byte) error
	LatestBlob(ctx context.Context) ([]byte, error)
	Prune(ctx context.Context, keep int) error
}

// Library owns the in-memory course collection and writes a full snapshot
// to the BlobStore after every mutation. There is exactly one writer, so no
// locking is needed; all access happens on the UI goroutine.
type Library struct {
	blobs   BlobStore
	courses []Course
}

// NewLibrary creates an empty Library. Call Load before use.
func NewLibrary(blobs BlobStore) *Library {
	return &Library{blobs: blobs}
}

// Load reads the newest persisted collection and migrates it. A missing or
// unparseable payload yields an empty collection; parse failures are logged
// to stderr and never fatal, so the learner simply starts with zero courses.
// A storage read failure is returned for the caller to handle the same way.
func (l *Library) Load(ctx context.Context) error {
	payload, err := l.blobs.LatestBlob(ctx)
	if err != nil {
		return fmt.Errorf("read course collection: %w", err)
	}
	if payload == nil {
		l.courses = nil
		return nil
	}

	courses, err := DecodeCourses(payload)
	if err != nil {
		fmt.Fprintln(os.Stderr, "omnilearn: discarding unreadable course data:", err)
		l.courses = nil
		return nil
	}
	l.courses = courses
	return nil
}

// Courses returns the collection ordered as stored (creation order).
func (l *Library) Courses() []Course {
	return l.courses
}

// Get returns the course with the given id.
func (l *Library) Get(id string) (*Course, bool) {
	for i := range l.courses {
		if l.courses[i].ID == id {
			return &l.courses[i], true
		}
	}
	return nil, false
}

// Create allocates a new Course with empty caches and the subtopics already
// produced by the content provider, appends it, and persists. Counts are
// clamped into [1, 20]. Returns the new course id.
func (l *Library) Create(ctx context.Context, topic string, difficulty Difficulty, subtopicCount, lessonCount int, subtopics []string) (string, error) {
	c := Course{
		ID:               uuid.NewString(),
		Topic:            topic,
		Difficulty:       difficulty,
		SubtopicCount:    ClampCount(subtopicCount),
		LessonCount:      ClampCount(lessonCount),
		CreatedAt:        time.Now().UnixMilli(),
		Subtopics:        subtopics,
		LessonsCache:     map[string][]string{},
		ContentCache:     map[string]string{},
		ImageCache:       map[string]LessonImage{},
		CompletedQuizzes: map[string]int{},
	}
	l.courses = append(l.courses, c)
	return c.ID, l.persist(ctx)
}

// Delete removes the course with that id. No-op if absent.
func (l *Library) Delete(ctx context.Context, id string) error {
	for i := range l.courses {
		if l.courses[i].ID == id {
			l.courses = append(l.courses[:i], l.courses[i+1:]...)
			return l.persist(ctx)
		}
	}
	return nil
}

// Update applies a mutator to the one course matching id, leaving all
// others untouched, then persists. Every cache fill and quiz score goes
// through here. No-op if the id is unknown.
func (l *Library) Update(ctx context.Context, id string, fn func(*Course)) error {
	for i := range l.courses {
		if l.courses[i].ID == id {
			fn(&l.courses[i])
			return l.persist(ctx)
		}
	}
	return nil
}

// persist writes a full snapshot of the collection and prunes old revisions.
func (l *Library) persist(ctx context.Context) error {
	payload, err := EncodeCourses(l.courses)
	if err != nil {
		return err
	}
	if err := l.blobs.SaveBlob(ctx, payload); err != nil {
		return fmt.Errorf("persist course collection: %w", err)
	}
	if err := l.blobs.Prune(ctx, keepRevisions); err != nil {
		return fmt.Errorf("prune course collection: %w", err)
	}
	return nil
}
