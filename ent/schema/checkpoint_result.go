package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// CheckpointResult is the append-only record of one checkpoint submission.
type CheckpointResult struct {
	ent.Schema
}

func (CheckpointResult) Mixin() []ent.Mixin {
	return []ent.Mixin{EventMixin{}}
}

func (CheckpointResult) Fields() []ent.Field {
	return []ent.Field{
		field.String("session_id").
			NotEmpty(),
		field.String("user_id").
			NotEmpty(),
		field.String("skill").
			NotEmpty(),
		field.Int("module_id"),
		field.Float("score").
			Comment("Percentage score 0-100"),
		field.Bool("passed"),
		field.Int("correct_count"),
		field.Int("total_questions"),
		field.JSON("answers", []int{}).
			Comment("Submitted answer indices, one per question"),
	}
}

func (CheckpointResult) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("user_id", "skill"),
		index.Fields("session_id"),
	}
}
