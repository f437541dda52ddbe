// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/plaroindia/Pearl/ent/learningpath"
	"github.com/plaroindia/Pearl/ent/schema"
)

// LearningPath is the model entity for the LearningPath schema.
type LearningPath struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// SessionID holds the value of the "session_id" field.
	SessionID string `json:"session_id,omitempty"`
	// UserID holds the value of the "user_id" field.
	UserID string `json:"user_id,omitempty"`
	// Skill holds the value of the "skill" field.
	Skill string `json:"skill,omitempty"`
	// beginner, intermediate, or advanced; derived from confidence at creation
	Difficulty string `json:"difficulty,omitempty"`
	// TotalModules holds the value of the "total_modules" field.
	TotalModules int `json:"total_modules,omitempty"`
	// 1-indexed pointer to the active module; monotonically increasing
	CurrentModule int `json:"current_module,omitempty"`
	// Completed holds the value of the "completed" field.
	Completed bool `json:"completed,omitempty"`
	// Modules holds the value of the "modules" field.
	Modules []schema.ModuleDoc `json:"modules,omitempty"`
	// Optimistic concurrency token; bumped on every write
	Version int `json:"version,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt    time.Time `json:"updated_at,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*LearningPath) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case learningpath.FieldModules:
			values[i] = new([]byte)
		case learningpath.FieldCompleted:
			values[i] = new(sql.NullBool)
		case learningpath.FieldID, learningpath.FieldTotalModules, learningpath.FieldCurrentModule, learningpath.FieldVersion:
			values[i] = new(sql.NullInt64)
		case learningpath.FieldSessionID, learningpath.FieldUserID, learningpath.FieldSkill, learningpath.FieldDifficulty:
			values[i] = new(sql.NullString)
		case learningpath.FieldCreatedAt, learningpath.FieldUpdatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the LearningPath fields.
func (_m *LearningPath) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case learningpath.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case learningpath.FieldSessionID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field session_id", values[i])
			} else if value.Valid {
				_m.SessionID = value.String
			}
		case learningpath.FieldUserID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field user_id", values[i])
			} else if value.Valid {
				_m.UserID = value.String
			}
		case learningpath.FieldSkill:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field skill", values[i])
			} else if value.Valid {
				_m.Skill = value.String
			}
		case learningpath.FieldDifficulty:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field difficulty", values[i])
			} else if value.Valid {
				_m.Difficulty = value.String
			}
		case learningpath.FieldTotalModules:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field total_modules", values[i])
			} else if value.Valid {
				_m.TotalModules = int(value.Int64)
			}
		case learningpath.FieldCurrentModule:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field current_module", values[i])
			} else if value.Valid {
				_m.CurrentModule = int(value.Int64)
			}
		case learningpath.FieldCompleted:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field completed", values[i])
			} else if value.Valid {
				_m.Completed = value.Bool
			}
		case learningpath.FieldModules:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field modules", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Modules); err != nil {
					return fmt.Errorf("unmarshal field modules: %w", err)
				}
			}
		case learningpath.FieldVersion:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field version", values[i])
			} else if value.Valid {
				_m.Version = int(value.Int64)
			}
		case learningpath.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case learningpath.FieldUpdatedAt:
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

// Value returns the ent.Value that was dynamically selected and assigned to the LearningPath.
// This includes values selected through modifiers, order, etc.
func (_m *LearningPath) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this LearningPath.
// Note that you need to call LearningPath.Unwrap() before calling this method if this LearningPath
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *LearningPath) Update() *LearningPathUpdateOne {
	return NewLearningPathClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the LearningPath entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *LearningPath) Unwrap() *LearningPath {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: LearningPath is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *LearningPath) String() string {
	var builder strings.Builder
	builder.WriteString("LearningPath(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("session_id=")
	builder.WriteString(_m.SessionID)
	builder.WriteString(", ")
	builder.WriteString("user_id=")
	builder.WriteString(_m.UserID)
	builder.WriteString(", ")
	builder.WriteString("skill=")
	builder.WriteString(_m.Skill)
	builder.WriteString(", ")
	builder.WriteString("difficulty=")
	builder.WriteString(_m.Difficulty)
	builder.WriteString(", ")
	builder.WriteString("total_modules=")
	builder.WriteString(fmt.Sprintf("%v", _m.TotalModules))
	builder.WriteString(", ")
	builder.WriteString("current_module=")
	builder.WriteString(fmt.Sprintf("%v", _m.CurrentModule))
	builder.WriteString(", ")
	builder.WriteString("completed=")
	builder.WriteString(fmt.Sprintf("%v", _m.Completed))
	builder.WriteString(", ")
	builder.WriteString("modules=")
	builder.WriteString(fmt.Sprintf("%v", _m.Modules))
	builder.WriteString(", ")
	builder.WriteString("version=")
	builder.WriteString(fmt.Sprintf("%v", _m.Version))
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(_m.UpdatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// LearningPaths is a parsable slice of LearningPath.
type LearningPaths []*LearningPath
