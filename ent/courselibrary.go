// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/jcmontoya/omnilearn/ent/courselibrary"
)

// CourseLibrary is the model entity for the CourseLibrary schema.
type CourseLibrary struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// JSON document: courses plus active course ID
	Payload []byte `json:"payload,omitempty"`
	// SavedAt holds the value of the "saved_at" field.
	SavedAt      time.Time `json:"saved_at,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*CourseLibrary) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case courselibrary.FieldPayload:
			values[i] = new([]byte)
		case courselibrary.FieldID:
			values[i] = new(sql.NullInt64)
		case courselibrary.FieldSavedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the CourseLibrary fields.
func (_m *CourseLibrary) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case courselibrary.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case courselibrary.FieldPayload:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field payload", values[i])
			} else if value != nil {
				_m.Payload = *value
			}
		case courselibrary.FieldSavedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field saved_at", values[i])
			} else if value.Valid {
				_m.SavedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the CourseLibrary.
// This includes values selected through modifiers, order, etc.
func (_m *CourseLibrary) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this CourseLibrary.
// Note that you need to call CourseLibrary.Unwrap() before calling this method if this CourseLibrary
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *CourseLibrary) Update() *CourseLibraryUpdateOne {
	return NewCourseLibraryClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the CourseLibrary entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *CourseLibrary) Unwrap() *CourseLibrary {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: CourseLibrary is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *CourseLibrary) String() string {
	var builder strings.Builder
	builder.WriteString("CourseLibrary(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("payload=")
	builder.WriteString(fmt.Sprintf("%v", _m.Payload))
	builder.WriteString(", ")
	builder.WriteString("saved_at=")
	builder.WriteString(_m.SavedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// CourseLibraries is a parsable slice of CourseLibrary.
type CourseLibraries []*CourseLibrary
