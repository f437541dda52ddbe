package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// LearningPath stores one skill's curriculum for a session as a single
// document: the ordered modules with their nested actions. Mutations go
// through a compare-and-swap on the version column so that two concurrent
// writers cannot silently lose an update.
type LearningPath struct {
	ent.Schema
}

// QuestionDoc is the serialized form of a checkpoint question.
type QuestionDoc struct {
	Question     string   `json:"question"`
	Options      []string `json:"options"`
	CorrectIndex int      `json:"correct_index"`
	Explanation  string   `json:"explanation"`
}

// ActionDoc is the serialized form of a learning action slot.
type ActionDoc struct {
	Type          string        `json:"type"`
	Title         string        `json:"title"`
	Description   string        `json:"description"`
	Platform      string        `json:"platform,omitempty"`
	URL           string        `json:"url,omitempty"`
	DurationMins  int           `json:"duration_minutes,omitempty"`
	Completed     bool          `json:"completed"`
	Questions     []QuestionDoc `json:"questions,omitempty"`
	PassThreshold float64       `json:"pass_threshold,omitempty"`
}

// ModuleDoc is the serialized form of a module and its four action slots.
type ModuleDoc struct {
	ModuleID           int         `json:"module_id"`
	Name               string      `json:"name"`
	Description        string      `json:"description"`
	LearningObjectives []string    `json:"learning_objectives"`
	CompletionCriteria string      `json:"completion_criteria"`
	EstimatedHours     int         `json:"estimated_hours"`
	Status             string      `json:"status"`
	Actions            []ActionDoc `json:"actions"`
}

func (LearningPath) Fields() []ent.Field {
	return []ent.Field{
		field.String("session_id").
			NotEmpty().
			Immutable(),
		field.String("user_id").
			NotEmpty().
			Immutable(),
		field.String("skill").
			NotEmpty().
			Immutable(),
		field.String("difficulty").
			Comment("beginner, intermediate, or advanced; derived from confidence at creation"),
		field.Int("total_modules"),
		field.Int("current_module").
			Default(1).
			Comment("1-indexed pointer to the active module; monotonically increasing"),
		field.Bool("completed").
			Default(false),
		field.JSON("modules", []ModuleDoc{}),
		field.Int("version").
			Default(1).
			Comment("Optimistic concurrency token; bumped on every write"),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now),
	}
}

func (LearningPath) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("session_id", "skill").Unique(),
		index.Fields("user_id"),
	}
}
