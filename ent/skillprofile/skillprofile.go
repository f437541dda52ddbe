// Code generated by ent, DO NOT EDIT.

package skillprofile

import (
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the skillprofile type in the database.
	Label = "skill_profile"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldUserID holds the string denoting the user_id field in the database.
	FieldUserID = "user_id"
	// FieldSkillName holds the string denoting the skill_name field in the database.
	FieldSkillName = "skill_name"
	// FieldConfidence holds the string denoting the confidence field in the database.
	FieldConfidence = "confidence"
	// FieldEvidence holds the string denoting the evidence field in the database.
	FieldEvidence = "evidence"
	// FieldPracticeCount holds the string denoting the practice_count field in the database.
	FieldPracticeCount = "practice_count"
	// FieldLastPracticedAt holds the string denoting the last_practiced_at field in the database.
	FieldLastPracticedAt = "last_practiced_at"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldUpdatedAt holds the string denoting the updated_at field in the database.
	FieldUpdatedAt = "updated_at"
	// Table holds the table name of the skillprofile in the database.
	Table = "skill_profiles"
)

// Columns holds all SQL columns for skillprofile fields.
var Columns = []string{
	FieldID,
	FieldUserID,
	FieldSkillName,
	FieldConfidence,
	FieldEvidence,
	FieldPracticeCount,
	FieldLastPracticedAt,
	FieldCreatedAt,
	FieldUpdatedAt,
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
	// UserIDValidator is a validator for the "user_id" field. It is called by the builders before save.
	UserIDValidator func(string) error
	// SkillNameValidator is a validator for the "skill_name" field. It is called by the builders before save.
	SkillNameValidator func(string) error
	// DefaultConfidence holds the default value on creation for the "confidence" field.
	DefaultConfidence float64
	// DefaultPracticeCount holds the default value on creation for the "practice_count" field.
	DefaultPracticeCount int
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
	// DefaultUpdatedAt holds the default value on creation for the "updated_at" field.
	DefaultUpdatedAt func() time.Time
	// UpdateDefaultUpdatedAt holds the default value on update for the "updated_at" field.
	UpdateDefaultUpdatedAt func() time.Time
)

// OrderOption defines the ordering options for the SkillProfile queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByUserID orders the results by the user_id field.
func ByUserID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUserID, opts...).ToFunc()
}

// BySkillName orders the results by the skill_name field.
func BySkillName(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSkillName, opts...).ToFunc()
}

// ByConfidence orders the results by the confidence field.
func ByConfidence(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldConfidence, opts...).ToFunc()
}

// ByPracticeCount orders the results by the practice_count field.
func ByPracticeCount(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPracticeCount, opts...).ToFunc()
}

// ByLastPracticedAt orders the results by the last_practiced_at field.
func ByLastPracticedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLastPracticedAt, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByUpdatedAt orders the results by the updated_at field.
func ByUpdatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUpdatedAt, opts...).ToFunc()
}
