package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// CourseLibrary holds the entire serialized course collection as one JSON
// blob. The app reads the newest row at startup and writes a fresh row after
// every mutation, pruning older rows. Whole-collection writes keep the
// on-disk layout identical to the legacy single-key format so old payloads
// migrate without a schema translation.
type CourseLibrary struct {
	ent.Schema
}

func (CourseLibrary) Fields() []ent.Field {
	return []ent.Field{
		field.Bytes("payload").
			Comment("JSON document: courses plus active course ID"),
		field.Time("saved_at").
			Default(time.Now).
			Immutable(),
	}
}

func (CourseLibrary) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("saved_at"),
	}
}
