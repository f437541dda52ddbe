// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/plaroindia/Pearl/ent/checkpointresult"
)

// CheckpointResult is the model entity for the CheckpointResult schema.
type CheckpointResult struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// Monotonically increasing global sequence number
	Sequence int64 `json:"sequence,omitempty"`
	// UTC wall-clock time of the event
	Timestamp time.Time `json:"timestamp,omitempty"`
	// SessionID holds the value of the "session_id" field.
	SessionID string `json:"session_id,omitempty"`
	// UserID holds the value of the "user_id" field.
	UserID string `json:"user_id,omitempty"`
	// Skill holds the value of the "skill" field.
	Skill string `json:"skill,omitempty"`
	// ModuleID holds the value of the "module_id" field.
	ModuleID int `json:"module_id,omitempty"`
	// Percentage score 0-100
	Score float64 `json:"score,omitempty"`
	// Passed holds the value of the "passed" field.
	Passed bool `json:"passed,omitempty"`
	// CorrectCount holds the value of the "correct_count" field.
	CorrectCount int `json:"correct_count,omitempty"`
	// TotalQuestions holds the value of the "total_questions" field.
	TotalQuestions int `json:"total_questions,omitempty"`
	// Submitted answer indices, one per question
	Answers      []int `json:"answers,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*CheckpointResult) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case checkpointresult.FieldAnswers:
			values[i] = new([]byte)
		case checkpointresult.FieldPassed:
			values[i] = new(sql.NullBool)
		case checkpointresult.FieldScore:
			values[i] = new(sql.NullFloat64)
		case checkpointresult.FieldID, checkpointresult.FieldSequence, checkpointresult.FieldModuleID, checkpointresult.FieldCorrectCount, checkpointresult.FieldTotalQuestions:
			values[i] = new(sql.NullInt64)
		case checkpointresult.FieldSessionID, checkpointresult.FieldUserID, checkpointresult.FieldSkill:
			values[i] = new(sql.NullString)
		case checkpointresult.FieldTimestamp:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the CheckpointResult fields.
func (_m *CheckpointResult) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case checkpointresult.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case checkpointresult.FieldSequence:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field sequence", values[i])
			} else if value.Valid {
				_m.Sequence = value.Int64
			}
		case checkpointresult.FieldTimestamp:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field timestamp", values[i])
			} else if value.Valid {
				_m.Timestamp = value.Time
			}
		case checkpointresult.FieldSessionID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field session_id", values[i])
			} else if value.Valid {
				_m.SessionID = value.String
			}
		case checkpointresult.FieldUserID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field user_id", values[i])
			} else if value.Valid {
				_m.UserID = value.String
			}
		case checkpointresult.FieldSkill:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field skill", values[i])
			} else if value.Valid {
				_m.Skill = value.String
			}
		case checkpointresult.FieldModuleID:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field module_id", values[i])
			} else if value.Valid {
				_m.ModuleID = int(value.Int64)
			}
		case checkpointresult.FieldScore:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field score", values[i])
			} else if value.Valid {
				_m.Score = value.Float64
			}
		case checkpointresult.FieldPassed:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field passed", values[i])
			} else if value.Valid {
				_m.Passed = value.Bool
			}
		case checkpointresult.FieldCorrectCount:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field correct_count", values[i])
			} else if value.Valid {
				_m.CorrectCount = int(value.Int64)
			}
		case checkpointresult.FieldTotalQuestions:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field total_questions", values[i])
			} else if value.Valid {
				_m.TotalQuestions = int(value.Int64)
			}
		case checkpointresult.FieldAnswers:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field answers", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Answers); err != nil {
					return fmt.Errorf("unmarshal field answers: %w", err)
				}
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the CheckpointResult.
// This includes values selected through modifiers, order, etc.
func (_m *CheckpointResult) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this CheckpointResult.
// Note that you need to call CheckpointResult.Unwrap() before calling this method if this CheckpointResult
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *CheckpointResult) Update() *CheckpointResultUpdateOne {
	return NewCheckpointResultClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the CheckpointResult entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *CheckpointResult) Unwrap() *CheckpointResult {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: CheckpointResult is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *CheckpointResult) String() string {
	var builder strings.Builder
	builder.WriteString("CheckpointResult(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("sequence=")
	builder.WriteString(fmt.Sprintf("%v", _m.Sequence))
	builder.WriteString(", ")
	builder.WriteString("timestamp=")
	builder.WriteString(_m.Timestamp.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("session_id=")
	builder.WriteString(_m.SessionID)
	builder.WriteString(", ")
	builder.WriteString("user_id=")
	builder.WriteString(_m.UserID)
	builder.WriteString(", ")
	builder.WriteString("skill=")
	builder.WriteString(_m.Skill)
	builder.WriteString(", ")
	builder.WriteString("module_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.ModuleID))
	builder.WriteString(", ")
	builder.WriteString("score=")
	builder.WriteString(fmt.Sprintf("%v", _m.Score))
	builder.WriteString(", ")
	builder.WriteString("passed=")
	builder.WriteString(fmt.Sprintf("%v", _m.Passed))
	builder.WriteString(", ")
	builder.WriteString("correct_count=")
	builder.WriteString(fmt.Sprintf("%v", _m.CorrectCount))
	builder.WriteString(", ")
	builder.WriteString("total_questions=")
	builder.WriteString(fmt.Sprintf("%v", _m.TotalQuestions))
	builder.WriteString(", ")
	builder.WriteString("answers=")
	builder.WriteString(fmt.Sprintf("%v", _m.Answers))
	builder.WriteByte(')')
	return builder.String()
}

// CheckpointResults is a parsable slice of CheckpointResult.
type CheckpointResults []*CheckpointResult
