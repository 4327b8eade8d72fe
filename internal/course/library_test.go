package course

import (
	"context"
	"reflect"
	"testing"
)

// memBlobs is an in-memory BlobStore for tests.
type memBlobs struct {
	blobs   [][]byte
	saveErr error
}

func (m *memBlobs) SaveBlob(_ context.Context, payload []byte) error {
	if m.saveErr != nil {
		return m.saveErr
	}
	m.blobs = append(m.blobs, payload)
	return nil
}

func (m *memBlobs) LatestBlob(context.Context) ([]byte, error) {
	if len(m.blobs) == 0 {
		return nil, nil
	}
	return m.blobs[len(m.blobs)-1], nil
}

func (m *memBlobs) Prune(_ context.Context, keep int) error {
	if len(m.blobs) > keep {
		m.blobs = m.blobs[len(m.blobs)-keep:]
	}
	return nil
}

func TestLibraryLoadEmpty(t *testing.T) {
	l := NewLibrary(&memBlobs{})
	if err := l.Load(context.Background()); err != nil {
		t.Fatalf("load: %v", err)
	}
	if len(l.Courses()) != 0 {
		t.Errorf("courses = %d, want 0", len(l.Courses()))
	}
}

func TestLibraryLoadCorruptPayloadYieldsEmpty(t *testing.T) {
	blobs := &memBlobs{blobs: [][]byte{[]byte("{{{ corrupt")}}
	l := NewLibrary(blobs)
	if err := l.Load(context.Background()); err != nil {
		t.Fatalf("load should not fail on corrupt payload: %v", err)
	}
	if len(l.Courses()) != 0 {
		t.Errorf("courses = %d, want 0", len(l.Courses()))
	}
}

func TestLibraryCreateClampsAndPersists(t *testing.T) {
	blobs := &memBlobs{}
	l := NewLibrary(blobs)
	ctx := context.Background()

	id, err := l.Create(ctx, "Cell Biology", DifficultyBasic, 0, 999, []string{"Cells", "Organelles", "Division"})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if id == "" {
		t.Fatal("expected non-empty id")
	}

	c, ok := l.Get(id)
	if !ok {
		t.Fatal("created course not found")
	}
	if c.SubtopicCount != 1 {
		t.Errorf("subtopicCount = %d, want 1", c.SubtopicCount)
	}
	if c.LessonCount != 20 {
		t.Errorf("lessonCount = %d, want 20", c.LessonCount)
	}
	if len(c.Subtopics) != 3 {
		t.Errorf("subtopics = %d, want 3", len(c.Subtopics))
	}
	if len(blobs.blobs) != 1 {
		t.Errorf("persisted snapshots = %d, want 1", len(blobs.blobs))
	}

	// Reload from storage must round-trip the course.
	l2 := NewLibrary(blobs)
	if err := l2.Load(ctx); err != nil {
		t.Fatalf("reload: %v", err)
	}
	c2, ok := l2.Get(id)
	if !ok {
		t.Fatal("course lost on reload")
	}
	if !reflect.DeepEqual(*c, *c2) {
		t.Errorf("round-trip mismatch:\nbefore: %+v\nafter:  %+v", *c, *c2)
	}
}

func TestLibraryCreateUniqueIDs(t *testing.T) {
	l := NewLibrary(&memBlobs{})
	ctx := context.Background()

	seen := map[string]bool{}
	for i := 0; i < 10; i++ {
		id, err := l.Create(ctx, "T", DifficultyMedium, 5, 5, nil)
		if err != nil {
			t.Fatalf("create %d: %v", i, err)
		}
		if seen[id] {
			t.Fatalf("duplicate id %q", id)
		}
		seen[id] = true
	}
}

func TestLibraryDelete(t *testing.T) {
	blobs := &memBlobs{}
	l := NewLibrary(blobs)
	ctx := context.Background()

	id1, _ := l.Create(ctx, "A", DifficultyBasic, 3, 3, nil)
	id2, _ := l.Create(ctx, "B", DifficultyBasic, 3, 3, nil)

	if err := l.Delete(ctx, id1); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if _, ok := l.Get(id1); ok {
		t.Error("deleted course still present")
	}
	if _, ok := l.Get(id2); !ok {
		t.Error("unrelated course removed")
	}

	saves := len(blobs.blobs)
	if err := l.Delete(ctx, "missing"); err != nil {
		t.Fatalf("delete missing: %v", err)
	}
	if len(blobs.blobs) != saves {
		t.Error("deleting a missing course should not persist")
	}
}

func TestLibraryUpdateTouchesOnlyTarget(t *testing.T) {
	l := NewLibrary(&memBlobs{})
	ctx := context.Background()

	id1, _ := l.Create(ctx, "A", DifficultyBasic, 3, 3, []string{"S1"})
	id2, _ := l.Create(ctx, "B", DifficultyBasic, 3, 3, []string{"S1"})

	err := l.Update(ctx, id1, func(c *Course) {
		c.LessonsCache["S1"] = []string{"L1", "L2"}
	})
	if err != nil {
		t.Fatalf("update: %v", err)
	}

	c1, _ := l.Get(id1)
	if len(c1.LessonsCache["S1"]) != 2 {
		t.Error("target course not updated")
	}
	c2, _ := l.Get(id2)
	if len(c2.LessonsCache["S1"]) != 0 {
		t.Error("other course mutated")
	}
}

func TestLibraryUpdateCacheFillIdempotent(t *testing.T) {
	l := NewLibrary(&memBlobs{})
	ctx := context.Background()

	id, _ := l.Create(ctx, "A", DifficultyBasic, 3, 3, []string{"S1"})
	fill := func(c *Course) {
		c.LessonsCache["S1"] = []string{"L1", "L2"}
	}

	if err := l.Update(ctx, id, fill); err != nil {
		t.Fatalf("first fill: %v", err)
	}
	after1, _ := l.Get(id)
	snapshot := *after1

	if err := l.Update(ctx, id, fill); err != nil {
		t.Fatalf("second fill: %v", err)
	}
	after2, _ := l.Get(id)
	if !reflect.DeepEqual(snapshot.LessonsCache, after2.LessonsCache) {
		t.Errorf("cache fill not overwrite-stable: %+v vs %+v", snapshot.LessonsCache, after2.LessonsCache)
	}
}

func TestLibraryPrunesOldRevisions(t *testing.T) {
	blobs := &memBlobs{}
	l := NewLibrary(blobs)
	ctx := context.Background()

	id, _ := l.Create(ctx, "A", DifficultyBasic, 3, 3, []string{"S1"})
	for i := 0; i < 10; i++ {
		err := l.Update(ctx, id, func(c *Course) {
			c.ContentCache["L"] = "body"
		})
		if err != nil {
			t.Fatalf("update %d: %v", i, err)
		}
	}

	if len(blobs.blobs) > keepRevisions {
		t.Errorf("stored revisions = %d, want <= %d", len(blobs.blobs), keepRevisions)
	}
}
