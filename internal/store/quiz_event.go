package store

import (
	"context"
	"fmt"

	"github.com/jcmontoya/omnilearn/ent"
	"github.com/jcmontoya/omnilearn/ent/quizevent"
)

func (r *eventRepo) AppendQuizResult(ctx context.Context, data QuizResultData) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	_, err = r.client.QuizEvent.Create().
		SetSequence(seqNum).
		SetCourseID(data.CourseID).
		SetTopic(data.Topic).
		SetSubtopic(data.Subtopic).
		SetLesson(data.Lesson).
		SetScore(data.Score).
		SetTotal(data.Total).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("save quiz event: %w", err)
	}

	return nil
}

func (r *eventRepo) QuizHistory(ctx context.Context, courseID string) ([]QuizResult, error) {
	rows, err := r.client.QuizEvent.Query().
		Where(quizevent.CourseIDEQ(courseID)).
		Order(ent.Asc(quizevent.FieldSequence)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query quiz history: %w", err)
	}

	results := make([]QuizResult, 0, len(rows))
	for _, row := range rows {
		results = append(results, QuizResult{
			Sequence:  row.Sequence,
			Timestamp: row.Timestamp,
			CourseID:  row.CourseID,
			Topic:     row.Topic,
			Subtopic:  row.Subtopic,
			Lesson:    row.Lesson,
			Score:     row.Score,
			Total:     row.Total,
		})
	}
	return results, nil
}
