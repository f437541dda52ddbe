// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/plaroindia/Pearl/ent/skillprofile"
)

// SkillProfile is the model entity for the SkillProfile schema.
type SkillProfile struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// UserID holds the value of the "user_id" field.
	UserID string `json:"user_id,omitempty"`
	// SkillName holds the value of the "skill_name" field.
	SkillName string `json:"skill_name,omitempty"`
	// Proficiency estimate in [0,1]; monotonically non-decreasing
	Confidence float64 `json:"confidence,omitempty"`
	// Count of evidence events by kind
	Evidence map[string]int `json:"evidence,omitempty"`
	// PracticeCount holds the value of the "practice_count" field.
	PracticeCount int `json:"practice_count,omitempty"`
	// LastPracticedAt holds the value of the "last_practiced_at" field.
	LastPracticedAt *time.Time `json:"last_practiced_at,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt    time.Time `json:"updated_at,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*SkillProfile) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case skillprofile.FieldEvidence:
			values[i] = new([]byte)
		case skillprofile.FieldConfidence:
			values[i] = new(sql.NullFloat64)
		case skillprofile.FieldID, skillprofile.FieldPracticeCount:
			values[i] = new(sql.NullInt64)
		case skillprofile.FieldUserID, skillprofile.FieldSkillName:
			values[i] = new(sql.NullString)
		case skillprofile.FieldLastPracticedAt, skillprofile.FieldCreatedAt, skillprofile.FieldUpdatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the SkillProfile fields.
func (_m *SkillProfile) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case skillprofile.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case skillprofile.FieldUserID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field user_id", values[i])
			} else if value.Valid {
				_m.UserID = value.String
			}
		case skillprofile.FieldSkillName:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field skill_name", values[i])
			} else if value.Valid {
				_m.SkillName = value.String
			}
		case skillprofile.FieldConfidence:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field confidence", values[i])
			} else if value.Valid {
				_m.Confidence = value.Float64
			}
		case skillprofile.FieldEvidence:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field evidence", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Evidence); err != nil {
					return fmt.Errorf("unmarshal field evidence: %w", err)
				}
			}
		case skillprofile.FieldPracticeCount:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field practice_count", values[i])
			} else if value.Valid {
				_m.PracticeCount = int(value.Int64)
			}
		case skillprofile.FieldLastPracticedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field last_practiced_at", values[i])
			} else if value.Valid {
				_m.LastPracticedAt = new(time.Time)
				*_m.LastPracticedAt = value.Time
			}
		case skillprofile.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case skillprofile.FieldUpdatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field updated_at", values[i])
			} else if value.Valid {
				_m.UpdatedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the SkillProfile.
// This includes values selected through modifiers, order, etc.
func (_m *SkillProfile) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this SkillProfile.
// Note that you need to call SkillProfile.Unwrap() before calling this method if this SkillProfile
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *SkillProfile) Update() *SkillProfileUpdateOne {
	return NewSkillProfileClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the SkillProfile entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *SkillProfile) Unwrap() *SkillProfile {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: SkillProfile is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *SkillProfile) String() string {
	var builder strings.Builder
	builder.WriteString("SkillProfile(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("user_id=")
	builder.WriteString(_m.UserID)
	builder.WriteString(", ")
	builder.WriteString("skill_name=")
	builder.WriteString(_m.SkillName)
	builder.WriteString(", ")
	builder.WriteString("confidence=")
	builder.WriteString(fmt.Sprintf("%v", _m.Confidence))
	builder.WriteString(", ")
	builder.WriteString("evidence=")
	builder.WriteString(fmt.Sprintf("%v", _m.Evidence))
	builder.WriteString(", ")
	builder.WriteString("practice_count=")
	builder.WriteString(fmt.Sprintf("%v", _m.PracticeCount))
	builder.WriteString(", ")
	if v := _m.LastPracticedAt; v != nil {
		builder.WriteString("last_practiced_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(_m.UpdatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// SkillProfiles is a parsable slice of SkillProfile.
type SkillProfiles []*SkillProfile
