package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Session groups the learning paths created for a single career goal.
type Session struct {
	ent.Schema
}

func (Session) Fields() []ent.Field {
	return []ent.Field{
		field.String("session_id").
			Unique().
			NotEmpty().
			Immutable().
			Comment("UUID identifying this learning session"),
		field.String("user_id").
			NotEmpty(),
		field.Text("goal").
			Comment("Raw career goal text the session was started with"),
		field.JSON("skills", []string{}).
			Comment("Skills extracted from the goal, in priority order"),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

func (Session) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("user_id"),
	}
}
