package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// SkillProfile is the per-(user, skill) confidence record. It is created on
// the first evidence event, accretes additively, and is never deleted.
type SkillProfile struct {
	ent.Schema
}

func (SkillProfile) Fields() []ent.Field {
	return []ent.Field{
		field.String("user_id").
			NotEmpty().
			Immutable(),
		field.String("skill_name").
			NotEmpty().
			Immutable(),
		field.Float("confidence").
			Default(0).
			Comment("Proficiency estimate in [0,1]; monotonically non-decreasing"),
		field.JSON("evidence", map[string]int{}).
			Comment("Count of evidence events by kind"),
		field.Int("practice_count").
			Default(0),
		field.Time("last_practiced_at").
			Optional().
			Nillable(),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now),
	}
}

func (SkillProfile) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("user_id", "skill_name").Unique(),
	}
}
