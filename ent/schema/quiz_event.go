package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// QuizEvent records a submitted quiz: which lesson it covered and the score.
// The course store only keeps the latest score per lesson, so these events
// are the full submission history.
type QuizEvent struct {
	ent.Schema
}

func (QuizEvent) Mixin() []ent.Mixin {
	return []ent.Mixin{EventMixin{}}
}

func (QuizEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("course_id").
			Comment("Course the quiz belongs to"),
		field.String("topic").
			Comment("Course topic at submission time"),
		field.String("subtopic"),
		field.String("lesson"),
		field.Int("score").
			Comment("Correct answers"),
		field.Int("total").
			Comment("Questions in the quiz"),
	}
}

func (QuizEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("course_id"),
	}
}
