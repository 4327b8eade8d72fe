// Code generated by ent, DO NOT EDIT.

package courselibrary

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/jcmontoya/omnilearn/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.CourseLibrary {
	return predicate.CourseLibrary(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.CourseLibrary {
	return predicate.CourseLibrary(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.CourseLibrary {
	return predicate.CourseLibrary(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.CourseLibrary {
	return predicate.CourseLibrary(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.CourseLibrary {
	return predicate.CourseLibrary(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.CourseLibrary {
	return predicate.CourseLibrary(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.CourseLibrary {
	return predicate.CourseLibrary(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.CourseLibrary {
	return predicate.CourseLibrary(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.CourseLibrary {
	return predicate.CourseLibrary(sql.FieldLTE(FieldID, id))
}

// Payload applies equality check predicate on the "payload" field. It's identical to PayloadEQ.
func Payload(v []byte) predicate.CourseLibrary {
	return predicate.CourseLibrary(sql.FieldEQ(FieldPayload, v))
}

// SavedAt applies equality check predicate on the "saved_at" field. It's identical to SavedAtEQ.
func SavedAt(v time.Time) predicate.CourseLibrary {
	return predicate.CourseLibrary(sql.FieldEQ(FieldSavedAt, v))
}

// PayloadEQ applies the EQ predicate on the "payload" field.
func PayloadEQ(v []byte) predicate.CourseLibrary {
	return predicate.CourseLibrary(sql.FieldEQ(FieldPayload, v))
}

// PayloadNEQ applies the NEQ predicate on the "payload" field.
func PayloadNEQ(v []byte) predicate.CourseLibrary {
	return predicate.CourseLibrary(sql.FieldNEQ(FieldPayload, v))
}

// PayloadIn applies the In predicate on the "payload" field.
func PayloadIn(vs ...[]byte) predicate.CourseLibrary {
	return predicate.CourseLibrary(sql.FieldIn(FieldPayload, vs...))
}

// PayloadNotIn applies the NotIn predicate on the "payload" field.
func PayloadNotIn(vs ...[]byte) predicate.CourseLibrary {
	return predicate.CourseLibrary(sql.FieldNotIn(FieldPayload, vs...))
}

// PayloadGT applies the GT predicate on the "payload" field.
func PayloadGT(v []byte) predicate.CourseLibrary {
	return predicate.CourseLibrary(sql.FieldGT(FieldPayload, v))
}

// PayloadGTE applies the GTE predicate on the "payload" field.
func PayloadGTE(v []byte) predicate.CourseLibrary {
	return predicate.CourseLibrary(sql.FieldGTE(FieldPayload, v))
}

// PayloadLT applies the LT predicate on the "payload" field.
func PayloadLT(v []byte) predicate.CourseLibrary {
	return predicate.CourseLibrary(sql.FieldLT(FieldPayload, v))
}

// PayloadLTE applies the LTE predicate on the "payload" field.
func PayloadLTE(v []byte) predicate.CourseLibrary {
	return predicate.CourseLibrary(sql.FieldLTE(FieldPayload, v))
}

// SavedAtEQ applies the EQ predicate on the "saved_at" field.
func SavedAtEQ(v time.Time) predicate.CourseLibrary {
	return predicate.CourseLibrary(sql.FieldEQ(FieldSavedAt, v))
}

// SavedAtNEQ applies the NEQ predicate on the "saved_at" field.
func SavedAtNEQ(v time.Time) predicate.CourseLibrary {
	return predicate.CourseLibrary(sql.FieldNEQ(FieldSavedAt, v))
}

// SavedAtIn applies the In predicate on the "saved_at" field.
func SavedAtIn(vs ...time.Time) predicate.CourseLibrary {
	return predicate.CourseLibrary(sql.FieldIn(FieldSavedAt, vs...))
}

// SavedAtNotIn applies the NotIn predicate on the "saved_at" field.
func SavedAtNotIn(vs ...time.Time) predicate.CourseLibrary {
	return predicate.CourseLibrary(sql.FieldNotIn(FieldSavedAt, vs...))
}

// SavedAtGT applies the GT predicate on the "saved_at" field.
func SavedAtGT(v time.Time) predicate.CourseLibrary {
	return predicate.CourseLibrary(sql.FieldGT(FieldSavedAt, v))
}

// SavedAtGTE applies the GTE predicate on the "saved_at" field.
func SavedAtGTE(v time.Time) predicate.CourseLibrary {
	return predicate.CourseLibrary(sql.FieldGTE(FieldSavedAt, v))
}

// SavedAtLT applies the LT predicate on the "saved_at" field.
func SavedAtLT(v time.Time) predicate.CourseLibrary {
	return predicate.CourseLibrary(sql.FieldLT(FieldSavedAt, v))
}

// SavedAtLTE applies the LTE predicate on the "saved_at" field.
func SavedAtLTE(v time.Time) predicate.CourseLibrary {
	return predicate.CourseLibrary(sql.FieldLTE(FieldSavedAt, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.CourseLibrary) predicate.CourseLibrary {
	return predicate.CourseLibrary(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.CourseLibrary) predicate.CourseLibrary {
	return predicate.CourseLibrary(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.CourseLibrary) predicate.CourseLibrary {
	return predicate.CourseLibrary(sql.NotPredicates(p))
}
