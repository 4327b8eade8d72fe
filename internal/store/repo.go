package store

import (
	"context"
	"time"
)

// QueryOpts configures event queries with filtering and pagination.
type QueryOpts struct {
	Limit   int       // max results (0 = unlimited)
	After   int64     // sequence > After
	Before  int64     // sequence < Before
	From    time.Time // timestamp >= From
	To      time.Time // timestamp <= To
	Purpose string    // exact purpose match ("" = any)
}

// CourseLibraryRepo persists the course collection as a single JSON document.
// The collection is read whole at startup and written whole after every
// mutation. Older rows are retained briefly as a recovery margin and pruned.
type CourseLibraryRepo interface {
	// SaveBlob stores a new serialized collection.
	SaveBlob(ctx context.Context, payload []byte) error

	// LatestBlob returns the most recent collection, or nil if none exist.
	LatestBlob(ctx context.Context) ([]byte, error)

	// Prune deletes all but the N most recent rows.
	Prune(ctx context.Context, keep int) error

	// DeleteAll removes every stored collection row.
	DeleteAll(ctx context.Context) error
}

// LLMRequestEventData captures the data for a single LLM request event.
type LLMRequestEventData struct {
	Provider     string
	Model        string
	Purpose      string
	InputTokens  int
	OutputTokens int
	LatencyMs    int64
	Success      bool
	ErrorMessage string
	RequestBody  string
	ResponseBody string
}

// LLMEvent is a recorded LLM request event as returned by queries.
type LLMEvent struct {
	ID           int
	Sequence     int64
	Timestamp    time.Time
	Provider     string
	Model        string
	Purpose      string
	InputTokens  int
	OutputTokens int
	LatencyMs    int64
	Success      bool
	ErrorMessage string
	RequestBody  string
	ResponseBody string
}

// PurposeUsage aggregates LLM usage per purpose label.
type PurposeUsage struct {
	Purpose      string
	Calls        int
	InputTokens  int
	OutputTokens int
	AvgLatencyMs int64
}

// ModelUsage aggregates LLM usage per model ID.
type ModelUsage struct {
	Model        string
	Calls        int
	InputTokens  int
	OutputTokens int
	AvgLatencyMs int64
}

// QuizResultData captures one quiz submission.
type QuizResultData struct {
	CourseID string
	Topic    string
	Subtopic string
	Lesson   string
	Score    int
	Total    int
}

// QuizResult is a recorded quiz submission as returned by queries.
type QuizResult struct {
	Sequence  int64
	Timestamp time.Time
	CourseID  string
	Topic     string
	Subtopic  string
	Lesson    string
	Score     int
	Total     int
}

// EventRepo provides append and query access to domain events.
type EventRepo interface {
	// AppendLLMRequest records an LLM API call event.
	AppendLLMRequest(ctx context.Context, data LLMRequestEventData) error

	// QueryLLMEvents returns LLM events, newest first.
	QueryLLMEvents(ctx context.Context, opts QueryOpts) ([]LLMEvent, error)

	// GetLLMEvent returns one event by row ID, or nil if absent.
	GetLLMEvent(ctx context.Context, id int) (*LLMEvent, error)

	// LLMUsageByPurpose aggregates token usage per purpose label.
	LLMUsageByPurpose(ctx context.Context) ([]PurposeUsage, error)

	// LLMUsageByModel aggregates token usage per model ID.
	LLMUsageByModel(ctx context.Context) ([]ModelUsage, error)

	// AppendQuizResult records a quiz submission event.
	AppendQuizResult(ctx context.Context, data QuizResultData) error

	// QuizHistory returns all quiz submissions for a course, oldest first.
	QuizHistory(ctx context.Context, courseID string) ([]QuizResult, error)
}
