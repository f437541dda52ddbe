package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// PracticeAttempt is the append-only record of one scored practice set.
type PracticeAttempt struct {
	ent.Schema
}

func (PracticeAttempt) Mixin() []ent.Mixin {
	return []ent.Mixin{EventMixin{}}
}

func (PracticeAttempt) Fields() []ent.Field {
	return []ent.Field{
		field.String("user_id").
			NotEmpty(),
		field.String("skill").
			NotEmpty(),
		field.String("topic").
			Default(""),
		field.Float("score").
			Comment("Percentage score 0-100"),
		field.Int("correct_count"),
		field.Int("total_questions"),
		field.Int("time_taken_secs").
			Default(0),
	}
}

func (PracticeAttempt) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("user_id", "skill"),
	}
}
