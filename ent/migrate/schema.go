// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// CheckpointResultsColumns holds the columns for the "checkpoint_results" table.
	CheckpointResultsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "sequence", Type: field.TypeInt64, Unique: true},
		{Name: "timestamp", Type: field.TypeTime},
		{Name: "session_id", Type: field.TypeString},
		{Name: "user_id", Type: field.TypeString},
		{Name: "skill", Type: field.TypeString},
		{Name: "module_id", Type: field.TypeInt},
		{Name: "score", Type: field.TypeFloat64},
		{Name: "passed", Type: field.TypeBool},
		{Name: "correct_count", Type: field.TypeInt},
		{Name: "total_questions", Type: field.TypeInt},
		{Name: "answers", Type: field.TypeJSON},
	}
	// CheckpointResultsTable holds the schema information for the "checkpoint_results" table.
	CheckpointResultsTable = &schema.Table{
		Name:       "checkpoint_results",
		Columns:    CheckpointResultsColumns,
		PrimaryKey: []*schema.Column{CheckpointResultsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "checkpointresult_sequence",
				Unique:  false,
				Columns: []*schema.Column{CheckpointResultsColumns[1]},
			},
			{
				Name:    "checkpointresult_timestamp",
				Unique:  false,
				Columns: []*schema.Column{CheckpointResultsColumns[2]},
			},
			{
				Name:    "checkpointresult_user_id_skill",
				Unique:  false,
				Columns: []*schema.Column{CheckpointResultsColumns[4], CheckpointResultsColumns[5]},
			},
			{
				Name:    "checkpointresult_session_id",
				Unique:  false,
				Columns: []*schema.Column{CheckpointResultsColumns[3]},
			},
		},
	}
	// LlmRequestEventsColumns holds the columns for the "llm_request_events" table.
	LlmRequestEventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "sequence", Type: field.TypeInt64, Unique: true},
		{Name: "timestamp", Type: field.TypeTime},
		{Name: "provider", Type: field.TypeString},
		{Name: "model", Type: field.TypeString},
		{Name: "purpose", Type: field.TypeString},
		{Name: "input_tokens", Type: field.TypeInt, Default: 0},
		{Name: "output_tokens", Type: field.TypeInt, Default: 0},
		{Name: "latency_ms", Type: field.TypeInt64, Default: 0},
		{Name: "success", Type: field.TypeBool},
		{Name: "error_message", Type: field.TypeString, Default: ""},
	}
	// LlmRequestEventsTable holds the schema information for the "llm_request_events" table.
	LlmRequestEventsTable = &schema.Table{
		Name:       "llm_request_events",
		Columns:    LlmRequestEventsColumns,
		PrimaryKey: []*schema.Column{LlmRequestEventsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "llmrequestevent_sequence",
				Unique:  false,
				Columns: []*schema.Column{LlmRequestEventsColumns[1]},
			},
			{
				Name:    "llmrequestevent_timestamp",
				Unique:  false,
				Columns: []*schema.Column{LlmRequestEventsColumns[2]},
			},
			{
				Name:    "llmrequestevent_provider",
				Unique:  false,
				Columns: []*schema.Column{LlmRequestEventsColumns[3]},
			},
			{
				Name:    "llmrequestevent_purpose",
				Unique:  false,
				Columns: []*schema.Column{LlmRequestEventsColumns[5]},
			},
			{
				Name:    "llmrequestevent_success",
				Unique:  false,
				Columns: []*schema.Column{LlmRequestEventsColumns[9]},
			},
		},
	}
	// LearningPathsColumns holds the columns for the "learning_paths" table.
	LearningPathsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "session_id", Type: field.TypeString},
		{Name: "user_id", Type: field.TypeString},
		{Name: "skill", Type: field.TypeString},
		{Name: "difficulty", Type: field.TypeString},
		{Name: "total_modules", Type: field.TypeInt},
		{Name: "current_module", Type: field.TypeInt, Default: 1},
		{Name: "completed", Type: field.TypeBool, Default: false},
		{Name: "modules", Type: field.TypeJSON},
		{Name: "version", Type: field.TypeInt, Default: 1},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// LearningPathsTable holds the schema information for the "learning_paths" table.
	LearningPathsTable = &schema.Table{
		Name:       "learning_paths",
		Columns:    LearningPathsColumns,
		PrimaryKey: []*schema.Column{LearningPathsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "learningpath_session_id_skill",
				Unique:  true,
				Columns: []*schema.Column{LearningPathsColumns[1], LearningPathsColumns[3]},
			},
			{
				Name:    "learningpath_user_id",
				Unique:  false,
				Columns: []*schema.Column{LearningPathsColumns[2]},
			},
		},
	}
	// PracticeAttemptsColumns holds the columns for the "practice_attempts" table.
	PracticeAttemptsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "sequence", Type: field.TypeInt64, Unique: true},
		{Name: "timestamp", Type: field.TypeTime},
		{Name: "user_id", Type: field.TypeString},
		{Name: "skill", Type: field.TypeString},
		{Name: "topic", Type: field.TypeString, Default: ""},
		{Name: "score", Type: field.TypeFloat64},
		{Name: "correct_count", Type: field.TypeInt},
		{Name: "total_questions", Type: field.TypeInt},
		{Name: "time_taken_secs", Type: field.TypeInt, Default: 0},
	}
	// PracticeAttemptsTable holds the schema information for the "practice_attempts" table.
	PracticeAttemptsTable = &schema.Table{
		Name:       "practice_attempts",
		Columns:    PracticeAttemptsColumns,
		PrimaryKey: []*schema.Column{PracticeAttemptsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "practiceattempt_sequence",
				Unique:  false,
				Columns: []*schema.Column{PracticeAttemptsColumns[1]},
			},
			{
				Name:    "practiceattempt_timestamp",
				Unique:  false,
				Columns: []*schema.Column{PracticeAttemptsColumns[2]},
			},
			{
				Name:    "practiceattempt_user_id_skill",
				Unique:  false,
				Columns: []*schema.Column{PracticeAttemptsColumns[3], PracticeAttemptsColumns[4]},
			},
		},
	}
	// SessionsColumns holds the columns for the "sessions" table.
	SessionsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "session_id", Type: field.TypeString, Unique: true},
		{Name: "user_id", Type: field.TypeString},
		{Name: "goal", Type: field.TypeString, Size: 2147483647},
		{Name: "skills", Type: field.TypeJSON},
		{Name: "created_at", Type: field.TypeTime},
	}
	// SessionsTable holds the schema information for the "sessions" table.
	SessionsTable = &schema.Table{
		Name:       "sessions",
		Columns:    SessionsColumns,
		PrimaryKey: []*schema.Column{SessionsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "session_user_id",
				Unique:  false,
				Columns: []*schema.Column{SessionsColumns[2]},
			},
		},
	}
	// SkillProfilesColumns holds the columns for the "skill_profiles" table.
	SkillProfilesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "user_id", Type: field.TypeString},
		{Name: "skill_name", Type: field.TypeString},
		{Name: "confidence", Type: field.TypeFloat64, Default: 0},
		{Name: "evidence", Type: field.TypeJSON},
		{Name: "practice_count", Type: field.TypeInt, Default: 0},
		{Name: "last_practiced_at", Type: field.TypeTime, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// SkillProfilesTable holds the schema information for the "skill_profiles" table.
	SkillProfilesTable = &schema.Table{
		Name:       "skill_profiles",
		Columns:    SkillProfilesColumns,
		PrimaryKey: []*schema.Column{SkillProfilesColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "skillprofile_user_id_skill_name",
				Unique:  true,
				Columns: []*schema.Column{SkillProfilesColumns[1], SkillProfilesColumns[2]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		CheckpointResultsTable,
		LlmRequestEventsTable,
		LearningPathsTable,
		PracticeAttemptsTable,
		SessionsTable,
		SkillProfilesTable,
	}
)

func init() {
}
