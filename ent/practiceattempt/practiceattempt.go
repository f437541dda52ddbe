// Code generated by ent, DO NOT EDIT.

package practiceattempt

import (
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the practiceattempt type in the database.
	Label = "practice_attempt"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldSequence holds the string denoting the sequence field in the database.
	FieldSequence = "sequence"
	// FieldTimestamp holds the string denoting the timestamp field in the database.
	FieldTimestamp = "timestamp"
	// FieldUserID holds the string denoting the user_id field in the database.
	FieldUserID = "user_id"
	// FieldSkill holds the string denoting the skill field in the database.
	FieldSkill = "skill"
	// FieldTopic holds the string denoting the topic field in the database.
	FieldTopic = "topic"
	// FieldScore holds the string denoting the score field in the database.
	FieldScore = "score"
	// FieldCorrectCount holds the string denoting the correct_count field in the database.
	FieldCorrectCount = "correct_count"
	// FieldTotalQuestions holds the string denoting the total_questions field in the database.
	FieldTotalQuestions = "total_questions"
	// FieldTimeTakenSecs holds the string denoting the time_taken_secs field in the database.
	FieldTimeTakenSecs = "time_taken_secs"
	// Table holds the table name of the practiceattempt in the database.
	Table = "practice_attempts"
)

// Columns holds all SQL columns for practiceattempt fields.
var Columns = []string{
	FieldID,
	FieldSequence,
	FieldTimestamp,
	FieldUserID,
	FieldSkill,
	FieldTopic,
	FieldScore,
	FieldCorrectCount,
	FieldTotalQuestions,
	FieldTimeTakenSecs,
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
	// UserIDValidator is a validator for the "user_id" field. It is called by the builders before save.
	UserIDValidator func(string) error
	// SkillValidator is a validator for the "skill" field. It is called by the builders before save.
	SkillValidator func(string) error
	// DefaultTopic holds the default value on creation for the "topic" field.
	DefaultTopic string
	// DefaultTimeTakenSecs holds the default value on creation for the "time_taken_secs" field.
	DefaultTimeTakenSecs int
)

// OrderOption defines the ordering options for the PracticeAttempt queries.
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

// ByUserID orders the results by the user_id field.
func ByUserID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUserID, opts...).ToFunc()
}

// BySkill orders the results by the skill field.
func BySkill(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSkill, opts...).ToFunc()
}

// ByTopic orders the results by the topic field.
func ByTopic(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTopic, opts...).ToFunc()
}

// ByScore orders the results by the score field.
func ByScore(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldScore, opts...).ToFunc()
}

// ByCorrectCount orders the results by the correct_count field.
func ByCorrectCount(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCorrectCount, opts...).ToFunc()
}

// ByTotalQuestions orders the results by the total_questions field.
func ByTotalQuestions(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTotalQuestions, opts...).ToFunc()
}

// ByTimeTakenSecs orders the results by the time_taken_secs field.
func ByTimeTakenSecs(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTimeTakenSecs, opts...).ToFunc()
}
