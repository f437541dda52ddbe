// Code generated by ent, DO NOT EDIT.

package checkpointresult

import (
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the checkpointresult type in the database.
	Label = "checkpoint_result"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldSequence holds the string denoting the sequence field in the database.
	FieldSequence = "sequence"
	// FieldTimestamp holds the string denoting the timestamp field in the database.
	FieldTimestamp = "timestamp"
	// FieldSessionID holds the string denoting the session_id field in the database.
	FieldSessionID = "session_id"
	// FieldUserID holds the string denoting the user_id field in the database.
	FieldUserID = "user_id"
	// FieldSkill holds the string denoting the skill field in the database.
	FieldSkill = "skill"
	// FieldModuleID holds the string denoting the module_id field in the database.
	FieldModuleID = "module_id"
	// FieldScore holds the string denoting the score field in the database.
	FieldScore = "score"
	// FieldPassed holds the string denoting the passed field in the database.
	FieldPassed = "passed"
	// FieldCorrectCount holds the string denoting the correct_count field in the database.
	FieldCorrectCount = "correct_count"
	// FieldTotalQuestions holds the string denoting the total_questions field in the database.
	FieldTotalQuestions = "total_questions"
	// FieldAnswers holds the string denoting the answers field in the database.
	FieldAnswers = "answers"
	// Table holds the table name of the checkpointresult in the database.
	Table = "checkpoint_results"
)

// Columns holds all SQL columns for checkpointresult fields.
var Columns = []string{
	FieldID,
	FieldSequence,
	FieldTimestamp,
	FieldSessionID,
	FieldUserID,
	FieldSkill,
	FieldModuleID,
	FieldScore,
	FieldPassed,
	FieldCorrectCount,
	FieldTotalQuestions,
	FieldAnswers,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// DefaultTimestamp holds the default value on creation for the "timestamp" field.
	DefaultTimestamp func() time.Time
	// SessionIDValidator is a validator for the "session_id" field. It is called by the builders before save.
	SessionIDValidator func(string) error
	// UserIDValidator is a validator for the "user_id" field. It is called by the builders before save.
	UserIDValidator func(string) error
	// SkillValidator is a validator for the "skill" field. It is called by the builders before save.
	SkillValidator func(string) error
)

// OrderOption defines the ordering options for the CheckpointResult queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// BySequence orders the results by the sequence field.
func BySequence(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSequence, opts...).ToFunc()
}

// ByTimestamp orders the results by the timestamp field.
func ByTimestamp(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTimestamp, opts...).ToFunc()
}

// BySessionID orders the results by the session_id field.
func BySessionID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSessionID, opts...).ToFunc()
}

// ByUserID orders the results by the user_id field.
func ByUserID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUserID, opts...).ToFunc()
}

// BySkill orders the results by the skill field.
func BySkill(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSkill, opts...).ToFunc()
}

// ByModuleID orders the results by the module_id field.
func ByModuleID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldModuleID, opts...).ToFunc()
}

// ByScore orders the results by the score field.
func ByScore(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldScore, opts...).ToFunc()
}

// ByPassed orders the results by the passed field.
func ByPassed(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPassed, opts...).ToFunc()
}

// ByCorrectCount orders the results by the correct_count field.
func ByCorrectCount(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCorrectCount, opts...).ToFunc()
}

// ByTotalQuestions orders the results by the total_questions field.
func ByTotalQuestions(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTotalQuestions, opts...).ToFunc()
}
