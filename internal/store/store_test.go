package store

import (
	"bytes"
	"context"
	"fmt"
	"testing"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open("file::memory:?cache=shared")
	if err != nil {
		t.Fatalf("open test store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestOpenClose(t *testing.T) {
	s := openTestStore(t)
	if s.Client() == nil {
		t.Fatal("expected non-nil ent client")
	}
}

func TestPragmasApplied(t *testing.T) {
	s := openTestStore(t)
	db := s.DB()

	tests := []struct {
		pragma string
		want   string
	}{
		// WAL mode falls back to "memory" for in-memory databases,
		// so we skip journal_mode here. It is tested with file-based DBs.
		{"foreign_keys", "1"},
		{"synchronous", "1"}, // NORMAL = 1
	}

	for _, tt := range tests {
		var got string
		err := db.QueryRow("PRAGMA " + tt.pragma).Scan(&got)
		if err != nil {
			t.Errorf("PRAGMA %s: %v", tt.pragma, err)
			continue
		}
		if got != tt.want {
			t.Errorf("PRAGMA %s = %q, want %q", tt.pragma, got, tt.want)
		}
	}
}

func TestLibrarySaveAndLatest(t *testing.T) {
	s := openTestStore(t)
	repo := s.LibraryRepo()
	ctx := context.Background()

	// No collection yet.
	blob, err := repo.LatestBlob(ctx)
	if err != nil {
		t.Fatalf("latest (empty): %v", err)
	}
	if blob != nil {
		t.Fatal("expected nil blob when none exist")
	}

	payload := []byte(`{"courses":[],"activeCourseId":null}`)
	if err := repo.SaveBlob(ctx, payload); err != nil {
		t.Fatalf("save: %v", err)
	}

	blob, err = repo.LatestBlob(ctx)
	if err != nil {
		t.Fatalf("latest: %v", err)
	}
	if !bytes.Equal(blob, payload) {
		t.Errorf("blob = %s, want %s", blob, payload)
	}
}

func TestLibraryLatestReturnsNewest(t *testing.T) {
	s := openTestStore(t)
	repo := s.LibraryRepo()
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		payload := []byte(fmt.Sprintf(`{"rev":%d}`, i+1))
		if err := repo.SaveBlob(ctx, payload); err != nil {
			t.Fatalf("save %d: %v", i, err)
		}
	}

	blob, err := repo.LatestBlob(ctx)
	if err != nil {
		t.Fatalf("latest: %v", err)
	}
	if want := `{"rev":3}`; string(blob) != want {
		t.Errorf("blob = %s, want %s", blob, want)
	}
}

func TestLibraryPrune(t *testing.T) {
	s := openTestStore(t)
	repo := s.LibraryRepo()
	ctx := context.Background()

	for i := 0; i < 7; i++ {
		payload := []byte(fmt.Sprintf(`{"rev":%d}`, i+1))
		if err := repo.SaveBlob(ctx, payload); err != nil {
			t.Fatalf("save %d: %v", i, err)
		}
	}

	// Prune to keep 5.
	if err := repo.Prune(ctx, 5); err != nil {
		t.Fatalf("prune: %v", err)
	}

	count, err := s.Client().CourseLibrary.Query().Count(ctx)
	if err != nil {
		t.Fatalf("count: %v", err)
	}
	if count != 5 {
		t.Errorf("remaining rows = %d, want 5", count)
	}

	// Latest should still be the newest payload.
	blob, err := repo.LatestBlob(ctx)
	if err != nil {
		t.Fatalf("latest: %v", err)
	}
	if want := `{"rev":7}`; string(blob) != want {
		t.Errorf("blob = %s, want %s", blob, want)
	}
}

func TestLibraryPruneWithFewerThanKeep(t *testing.T) {
	s := openTestStore(t)
	repo := s.LibraryRepo()
	ctx := context.Background()

	for i := 0; i < 2; i++ {
		if err := repo.SaveBlob(ctx, []byte(`{}`)); err != nil {
			t.Fatalf("save %d: %v", i, err)
		}
	}

	// Prune with keep=5 should be a no-op.
	if err := repo.Prune(ctx, 5); err != nil {
		t.Fatalf("prune: %v", err)
	}

	count, err := s.Client().CourseLibrary.Query().Count(ctx)
	if err != nil {
		t.Fatalf("count: %v", err)
	}
	if count != 2 {
		t.Errorf("remaining rows = %d, want 2", count)
	}
}

func TestLibraryDeleteAll(t *testing.T) {
	s := openTestStore(t)
	repo := s.LibraryRepo()
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		if err := repo.SaveBlob(ctx, []byte(`{}`)); err != nil {
			t.Fatalf("save %d: %v", i, err)
		}
	}

	if err := repo.DeleteAll(ctx); err != nil {
		t.Fatalf("delete all: %v", err)
	}

	blob, err := repo.LatestBlob(ctx)
	if err != nil {
		t.Fatalf("latest: %v", err)
	}
	if blob != nil {
		t.Errorf("expected nil blob after delete all, got %s", blob)
	}
}

func TestSequenceCounter(t *testing.T) {
	s := openTestStore(t)
	db := s.DB()
	ctx := context.Background()

	sc, err := newSequenceCounter(db)
	if err != nil {
		t.Fatalf("new sequence counter: %v", err)
	}

	var seqs []int64
	for i := 0; i < 5; i++ {
		seq, err := sc.Next(ctx)
		if err != nil {
			t.Fatalf("next %d: %v", i, err)
		}
		seqs = append(seqs, seq)
	}

	// Should be monotonically increasing starting from 1.
	for i, seq := range seqs {
		expected := int64(i + 1)
		if seq != expected {
			t.Errorf("seq[%d] = %d, want %d", i, seq, expected)
		}
	}
}

func TestAppendAndQueryLLMEvents(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	for i, purpose := range []string{"subtopics", "lessons", "quiz"} {
		err := repo.AppendLLMRequest(ctx, LLMRequestEventData{
			Provider:     "mock",
			Model:        "mock-model",
			Purpose:      purpose,
			InputTokens:  100 * (i + 1),
			OutputTokens: 50 * (i + 1),
			LatencyMs:    int64(10 * (i + 1)),
			Success:      true,
		})
		if err != nil {
			t.Fatalf("append %d: %v", i, err)
		}
	}

	events, err := repo.QueryLLMEvents(ctx, QueryOpts{})
	if err != nil {
		t.Fatalf("query: %v", err)
	}
	if len(events) != 3 {
		t.Fatalf("events = %d, want 3", len(events))
	}
	// Newest first.
	if events[0].Purpose != "quiz" {
		t.Errorf("events[0].Purpose = %q, want quiz", events[0].Purpose)
	}

	filtered, err := repo.QueryLLMEvents(ctx, QueryOpts{Purpose: "lessons"})
	if err != nil {
		t.Fatalf("query filtered: %v", err)
	}
	if len(filtered) != 1 || filtered[0].Purpose != "lessons" {
		t.Errorf("filtered = %+v, want one lessons event", filtered)
	}

	got, err := repo.GetLLMEvent(ctx, events[0].ID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got == nil || got.Purpose != "quiz" {
		t.Errorf("get = %+v, want quiz event", got)
	}

	missing, err := repo.GetLLMEvent(ctx, 99999)
	if err != nil {
		t.Fatalf("get missing: %v", err)
	}
	if missing != nil {
		t.Errorf("expected nil for missing event, got %+v", missing)
	}
}

func TestLLMUsageByPurpose(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	for i := 0; i < 2; i++ {
		err := repo.AppendLLMRequest(ctx, LLMRequestEventData{
			Provider:     "mock",
			Model:        "mock-model",
			Purpose:      "content",
			InputTokens:  100,
			OutputTokens: 40,
			LatencyMs:    20,
			Success:      true,
		})
		if err != nil {
			t.Fatalf("append %d: %v", i, err)
		}
	}

	stats, err := repo.LLMUsageByPurpose(ctx)
	if err != nil {
		t.Fatalf("usage: %v", err)
	}
	if len(stats) != 1 {
		t.Fatalf("stats = %d rows, want 1", len(stats))
	}
	st := stats[0]
	if st.Purpose != "content" || st.Calls != 2 || st.InputTokens != 200 || st.OutputTokens != 80 {
		t.Errorf("stats = %+v", st)
	}
}

func TestQuizHistory(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	for i, score := range []int{2, 4} {
		err := repo.AppendQuizResult(ctx, QuizResultData{
			CourseID: "c1",
			Topic:    "Astronomy",
			Subtopic: "The Solar System",
			Lesson:   "The Inner Planets",
			Score:    score,
			Total:    5,
		})
		if err != nil {
			t.Fatalf("append %d: %v", i, err)
		}
	}
	// A submission for a different course must not leak in.
	err := repo.AppendQuizResult(ctx, QuizResultData{
		CourseID: "c2", Topic: "Biology", Subtopic: "Cells", Lesson: "Mitosis", Score: 5, Total: 5,
	})
	if err != nil {
		t.Fatalf("append other course: %v", err)
	}

	history, err := repo.QuizHistory(ctx, "c1")
	if err != nil {
		t.Fatalf("history: %v", err)
	}
	if len(history) != 2 {
		t.Fatalf("history = %d entries, want 2", len(history))
	}
	// Oldest first.
	if history[0].Score != 2 || history[1].Score != 4 {
		t.Errorf("history scores = %d,%d, want 2,4", history[0].Score, history[1].Score)
	}
}

func TestAutoMigrationCreatesTables(t *testing.T) {
	s := openTestStore(t)
	db := s.DB()

	for _, table := range []string{"course_libraries", "llm_request_events", "quiz_events"} {
		var name string
		err := db.QueryRow(
			"SELECT name FROM sqlite_master WHERE type='table' AND name=?", table,
		).Scan(&name)
		if err != nil {
			t.Fatalf("query sqlite_master for %s: %v", table, err)
		}
		if name != table {
			t.Errorf("table name = %q, want %q", name, table)
		}
	}
}
