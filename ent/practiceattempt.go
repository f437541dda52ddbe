// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/plaroindia/Pearl/ent/practiceattempt"
)

// PracticeAttempt is the model entity for the PracticeAttempt schema.
type PracticeAttempt struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// Monotonically increasing global sequence number
	Sequence int64 `json:"sequence,omitempty"`
	// UTC wall-clock time of the event
	Timestamp time.Time `json:"timestamp,omitempty"`
	// UserID holds the value of the "user_id" field.
	UserID string `json:"user_id,omitempty"`
	// Skill holds the value of the "skill" field.
	Skill string `json:"skill,omitempty"`
	// Topic holds the value of the "topic" field.
	Topic string `json:"topic,omitempty"`
	// Percentage score 0-100
	Score float64 `json:"score,omitempty"`
	// CorrectCount holds the value of the "correct_count" field.
	CorrectCount int `json:"correct_count,omitempty"`
	// TotalQuestions holds the value of the "total_questions" field.
	TotalQuestions int `json:"total_questions,omitempty"`
	// TimeTakenSecs holds the value of the "time_taken_secs" field.
	TimeTakenSecs int `json:"time_taken_secs,omitempty"`
	selectValues  sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*PracticeAttempt) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case practiceattempt.FieldScore:
			values[i] = new(sql.NullFloat64)
		case practiceattempt.FieldID, practiceattempt.FieldSequence, practiceattempt.FieldCorrectCount, practiceattempt.FieldTotalQuestions, practiceattempt.FieldTimeTakenSecs:
			values[i] = new(sql.NullInt64)
		case practiceattempt.FieldUserID, practiceattempt.FieldSkill, practiceattempt.FieldTopic:
			values[i] = new(sql.NullString)
		case practiceattempt.FieldTimestamp:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the PracticeAttempt fields.
func (_m *PracticeAttempt) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case practiceattempt.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case practiceattempt.FieldSequence:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field sequence", values[i])
			} else if value.Valid {
				_m.Sequence = value.Int64
			}
		case practiceattempt.FieldTimestamp:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field timestamp", values[i])
			} else if value.Valid {
				_m.Timestamp = value.Time
			}
		case practiceattempt.FieldUserID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field user_id", values[i])
			} else if value.Valid {
				_m.UserID = value.String
			}
		case practiceattempt.FieldSkill:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field skill", values[i])
			} else if value.Valid {
				_m.Skill = value.String
			}
		case practiceattempt.FieldTopic:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field topic", values[i])
			} else if value.Valid {
				_m.Topic = value.String
			}
		case practiceattempt.FieldScore:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field score", values[i])
			} else if value.Valid {
				_m.Score = value.Float64
			}
		case practiceattempt.FieldCorrectCount:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field correct_count", values[i])
			} else if value.Valid {
				_m.CorrectCount = int(value.Int64)
			}
		case practiceattempt.FieldTotalQuestions:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field total_questions", values[i])
			} else if value.Valid {
				_m.TotalQuestions = int(value.Int64)
			}
		case practiceattempt.FieldTimeTakenSecs:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field time_taken_secs", values[i])
			} else if value.Valid {
				_m.TimeTakenSecs = int(value.Int64)
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the PracticeAttempt.
// This includes values selected through modifiers, order, etc.
func (_m *PracticeAttempt) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this PracticeAttempt.
// Note that you need to call PracticeAttempt.Unwrap() before calling this method if this PracticeAttempt
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *PracticeAttempt) Update() *PracticeAttemptUpdateOne {
	return NewPracticeAttemptClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the PracticeAttempt entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *PracticeAttempt) Unwrap() *PracticeAttempt {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: PracticeAttempt is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *PracticeAttempt) String() string {
	var builder strings.Builder
	builder.WriteString("PracticeAttempt(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("sequence=")
	builder.WriteString(fmt.Sprintf("%v", _m.Sequence))
	builder.WriteString(", ")
	builder.WriteString("timestamp=")
	builder.WriteString(_m.Timestamp.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("user_id=")
	builder.WriteString(_m.UserID)
	builder.WriteString(", ")
	builder.WriteString("skill=")
	builder.WriteString(_m.Skill)
	builder.WriteString(", ")
	builder.WriteString("topic=")
	builder.WriteString(_m.Topic)
	builder.WriteString(", ")
	builder.WriteString("score=")
	builder.WriteString(fmt.Sprintf("%v", _m.Score))
	builder.WriteString(", ")
	builder.WriteString("correct_count=")
	builder.WriteString(fmt.Sprintf("%v", _m.CorrectCount))
	builder.WriteString(", ")
	builder.WriteString("total_questions=")
	builder.WriteString(fmt.Sprintf("%v", _m.TotalQuestions))
	builder.WriteString(", ")
	builder.WriteString("time_taken_secs=")
	builder.WriteString(fmt.Sprintf("%v", _m.TimeTakenSecs))
	builder.WriteByte(')')
	return builder.String()
}

// PracticeAttempts is a parsable slice of PracticeAttempt.
type PracticeAttempts []*PracticeAttempt
