// Code generated by ent, DO NOT EDIT.

package skillprofile

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/plaroindia/Pearl/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.SkillProfile {
	return predicate.SkillProfile(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.SkillProfile {
	return predicate.SkillProfile(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.SkillProfile {
	return predicate.SkillProfile(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.SkillProfile {
	return predicate.SkillProfile(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.SkillProfile {
	return predicate.SkillProfile(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.SkillProfile {
	return predicate.SkillProfile(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.SkillProfile {
	return predicate.SkillProfile(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.SkillProfile {
	return predicate.SkillProfile(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.SkillProfile {
	return predicate.SkillProfile(sql.FieldLTE(FieldID, id))
}

// UserID applies equality check predicate on the "user_id" field. It's identical to UserIDEQ.
func UserID(v string) predicate.SkillProfile {
	return predicate.SkillProfile(sql.FieldEQ(FieldUserID, v))
}

// SkillName applies equality check predicate on the "skill_name" field. It's identical to SkillNameEQ.
func SkillName(v string) predicate.SkillProfile {
	return predicate.SkillProfile(sql.FieldEQ(FieldSkillName, v))
}

// Confidence applies equality check predicate on the "confidence" field. It's identical to ConfidenceEQ.
func Confidence(v float64) predicate.SkillProfile {
	return predicate.SkillProfile(sql.FieldEQ(FieldConfidence, v))
}

// PracticeCount applies equality check predicate on the "practice_count" field. It's identical to PracticeCountEQ.
func PracticeCount(v int) predicate.SkillProfile {
	return predicate.SkillProfile(sql.FieldEQ(FieldPracticeCount, v))
}

// LastPracticedAt applies equality check predicate on the "last_practiced_at" field. It's identical to LastPracticedAtEQ.
func LastPracticedAt(v time.Time) predicate.SkillProfile {
	return predicate.SkillProfile(sql.FieldEQ(FieldLastPracticedAt, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.SkillProfile {
	return predicate.SkillProfile(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.SkillProfile {
	return predicate.SkillProfile(sql.FieldEQ(FieldUpdatedAt, v))
}

// UserIDEQ applies the EQ predicate on the "user_id" field.
func UserIDEQ(v string) predicate.SkillProfile {
	return predicate.SkillProfile(sql.FieldEQ(FieldUserID, v))
}

// UserIDNEQ applies the NEQ predicate on the "user_id" field.
func UserIDNEQ(v string) predicate.SkillProfile {
	return predicate.SkillProfile(sql.FieldNEQ(FieldUserID, v))
}

// UserIDIn applies the In predicate on the "user_id" field.
func UserIDIn(vs ...string) predicate.SkillProfile {
	return predicate.SkillProfile(sql.FieldIn(FieldUserID, vs...))
}

// UserIDNotIn applies the NotIn predicate on the "user_id" field.
func UserIDNotIn(vs ...string) predicate.SkillProfile {
	return predicate.SkillProfile(sql.FieldNotIn(FieldUserID, vs...))
}

// UserIDGT applies the GT predicate on the "user_id" field.
func UserIDGT(v string) predicate.SkillProfile {
	return predicate.SkillProfile(sql.FieldGT(FieldUserID, v))
}

// UserIDGTE applies the GTE predicate on the "user_id" field.
func UserIDGTE(v string) predicate.SkillProfile {
	return predicate.SkillProfile(sql.FieldGTE(FieldUserID, v))
}

// UserIDLT applies the LT predicate on the "user_id" field.
func UserIDLT(v string) predicate.SkillProfile {
	return predicate.SkillProfile(sql.FieldLT(FieldUserID, v))
}

// UserIDLTE applies the LTE predicate on the "user_id" field.
func UserIDLTE(v string) predicate.SkillProfile {
	return predicate.SkillProfile(sql.FieldLTE(FieldUserID, v))
}

// UserIDContains applies the Contains predicate on the "user_id" field.
func UserIDContains(v string) predicate.SkillProfile {
	return predicate.SkillProfile(sql.FieldContains(FieldUserID, v))
}

// UserIDHasPrefix applies the HasPrefix predicate on the "user_id" field.
func UserIDHasPrefix(v string) predicate.SkillProfile {
	return predicate.SkillProfile(sql.FieldHasPrefix(FieldUserID, v))
}

// UserIDHasSuffix applies the HasSuffix predicate on the "user_id" field.
func UserIDHasSuffix(v string) predicate.SkillProfile {
	return predicate.SkillProfile(sql.FieldHasSuffix(FieldUserID, v))
}

// UserIDEqualFold applies the EqualFold predicate on the "user_id" field.
func UserIDEqualFold(v string) predicate.SkillProfile {
	return predicate.SkillProfile(sql.FieldEqualFold(FieldUserID, v))
}

// UserIDContainsFold applies the ContainsFold predicate on the "user_id" field.
func UserIDContainsFold(v string) predicate.SkillProfile {
	return predicate.SkillProfile(sql.FieldContainsFold(FieldUserID, v))
}

// SkillNameEQ applies the EQ predicate on the "skill_name" field.
func SkillNameEQ(v string) predicate.SkillProfile {
	return predicate.SkillProfile(sql.FieldEQ(FieldSkillName, v))
}

// SkillNameNEQ applies the NEQ predicate on the "skill_name" field.
func SkillNameNEQ(v string) predicate.SkillProfile {
	return predicate.SkillProfile(sql.FieldNEQ(FieldSkillName, v))
}

// SkillNameIn applies the In predicate on the "skill_name" field.
func SkillNameIn(vs ...string) predicate.SkillProfile {
	return predicate.SkillProfile(sql.FieldIn(FieldSkillName, vs...))
}

// SkillNameNotIn applies the NotIn predicate on the "skill_name" field.
func SkillNameNotIn(vs ...string) predicate.SkillProfile {
	return predicate.SkillProfile(sql.FieldNotIn(FieldSkillName, vs...))
}

// SkillNameGT applies the GT predicate on the "skill_name" field.
func SkillNameGT(v string) predicate.SkillProfile {
	return predicate.SkillProfile(sql.FieldGT(FieldSkillName, v))
}

// SkillNameGTE applies the GTE predicate on the "skill_name" field.
func SkillNameGTE(v string) predicate.SkillProfile {
	return predicate.SkillProfile(sql.FieldGTE(FieldSkillName, v))
}

// SkillNameLT applies the LT predicate on the "skill_name" field.
func SkillNameLT(v string) predicate.SkillProfile {
	return predicate.SkillProfile(sql.FieldLT(FieldSkillName, v))
}

// SkillNameLTE applies the LTE predicate on the "skill_name" field.
func SkillNameLTE(v string) predicate.SkillProfile {
	return predicate.SkillProfile(sql.FieldLTE(FieldSkillName, v))
}

// SkillNameContains applies the Contains predicate on the "skill_name" field.
func SkillNameContains(v string) predicate.SkillProfile {
	return predicate.SkillProfile(sql.FieldContains(FieldSkillName, v))
}

// SkillNameHasPrefix applies the HasPrefix predicate on the "skill_name" field.
func SkillNameHasPrefix(v string) predicate.SkillProfile {
	return predicate.SkillProfile(sql.FieldHasPrefix(FieldSkillName, v))
}

// SkillNameHasSuffix applies the HasSuffix predicate on the "skill_name" field.
func SkillNameHasSuffix(v string) predicate.SkillProfile {
	return predicate.SkillProfile(sql.FieldHasSuffix(FieldSkillName, v))
}

// SkillNameEqualFold applies the EqualFold predicate on the "skill_name" field.
func SkillNameEqualFold(v string) predicate.SkillProfile {
	return predicate.SkillProfile(sql.FieldEqualFold(FieldSkillName, v))
}

// SkillNameContainsFold applies the ContainsFold predicate on the "skill_name" field.
func SkillNameContainsFold(v string) predicate.SkillProfile {
	return predicate.SkillProfile(sql.FieldContainsFold(FieldSkillName, v))
}

// ConfidenceEQ applies the EQ predicate on the "confidence" field.
func ConfidenceEQ(v float64) predicate.SkillProfile {
	return predicate.SkillProfile(sql.FieldEQ(FieldConfidence, v))
}

// ConfidenceNEQ applies the NEQ predicate on the "confidence" field.
func ConfidenceNEQ(v float64) predicate.SkillProfile {
	return predicate.SkillProfile(sql.FieldNEQ(FieldConfidence, v))
}

// ConfidenceIn applies the In predicate on the "confidence" field.
func ConfidenceIn(vs ...float64) predicate.SkillProfile {
	return predicate.SkillProfile(sql.FieldIn(FieldConfidence, vs...))
}

// ConfidenceNotIn applies the NotIn predicate on the "confidence" field.
func ConfidenceNotIn(vs ...float64) predicate.SkillProfile {
	return predicate.SkillProfile(sql.FieldNotIn(FieldConfidence, vs...))
}

// ConfidenceGT applies the GT predicate on the "confidence" field.
func ConfidenceGT(v float64) predicate.SkillProfile {
	return predicate.SkillProfile(sql.FieldGT(FieldConfidence, v))
}

// ConfidenceGTE applies the GTE predicate on the "confidence" field.
func ConfidenceGTE(v float64) predicate.SkillProfile {
	return predicate.SkillProfile(sql.FieldGTE(FieldConfidence, v))
}

// ConfidenceLT applies the LT predicate on the "confidence" field.
func ConfidenceLT(v float64) predicate.SkillProfile {
	return predicate.SkillProfile(sql.FieldLT(FieldConfidence, v))
}

// ConfidenceLTE applies the LTE predicate on the "confidence" field.
func ConfidenceLTE(v float64) predicate.SkillProfile {
	return predicate.SkillProfile(sql.FieldLTE(FieldConfidence, v))
}

// PracticeCountEQ applies the EQ predicate on the "practice_count" field.
func PracticeCountEQ(v int) predicate.SkillProfile {
	return predicate.SkillProfile(sql.FieldEQ(FieldPracticeCount, v))
}

// PracticeCountNEQ applies the NEQ predicate on the "practice_count" field.
func PracticeCountNEQ(v int) predicate.SkillProfile {
	return predicate.SkillProfile(sql.FieldNEQ(FieldPracticeCount, v))
}

// PracticeCountIn applies the In predicate on the "practice_count" field.
func PracticeCountIn(vs ...int) predicate.SkillProfile {
	return predicate.SkillProfile(sql.FieldIn(FieldPracticeCount, vs...))
}

// PracticeCountNotIn applies the NotIn predicate on the "practice_count" field.
func PracticeCountNotIn(vs ...int) predicate.SkillProfile {
	return predicate.SkillProfile(sql.FieldNotIn(FieldPracticeCount, vs...))
}

// PracticeCountGT applies the GT predicate on the "practice_count" field.
func PracticeCountGT(v int) predicate.SkillProfile {
	return predicate.SkillProfile(sql.FieldGT(FieldPracticeCount, v))
}

// PracticeCountGTE applies the GTE predicate on the "practice_count" field.
func PracticeCountGTE(v int) predicate.SkillProfile {
	return predicate.SkillProfile(sql.FieldGTE(FieldPracticeCount, v))
}

// PracticeCountLT applies the LT predicate on the "practice_count" field.
func PracticeCountLT(v int) predicate.SkillProfile {
	return predicate.SkillProfile(sql.FieldLT(FieldPracticeCount, v))
}

// PracticeCountLTE applies the LTE predicate on the "practice_count" field.
func PracticeCountLTE(v int) predicate.SkillProfile {
	return predicate.SkillProfile(sql.FieldLTE(FieldPracticeCount, v))
}

// LastPracticedAtEQ applies the EQ predicate on the "last_practiced_at" field.
func LastPracticedAtEQ(v time.Time) predicate.SkillProfile {
	return predicate.SkillProfile(sql.FieldEQ(FieldLastPracticedAt, v))
}

// LastPracticedAtNEQ applies the NEQ predicate on the "last_practiced_at" field.
func LastPracticedAtNEQ(v time.Time) predicate.SkillProfile {
	return predicate.SkillProfile(sql.FieldNEQ(FieldLastPracticedAt, v))
}

// LastPracticedAtIn applies the In predicate on the "last_practiced_at" field.
func LastPracticedAtIn(vs ...time.Time) predicate.SkillProfile {
	return predicate.SkillProfile(sql.FieldIn(FieldLastPracticedAt, vs...))
}

// LastPracticedAtNotIn applies the NotIn predicate on the "last_practiced_at" field.
func LastPracticedAtNotIn(vs ...time.Time) predicate.SkillProfile {
	return predicate.SkillProfile(sql.FieldNotIn(FieldLastPracticedAt, vs...))
}

// LastPracticedAtGT applies the GT predicate on the "last_practiced_at" field.
func LastPracticedAtGT(v time.Time) predicate.SkillProfile {
	return predicate.SkillProfile(sql.FieldGT(FieldLastPracticedAt, v))
}

// LastPracticedAtGTE applies the GTE predicate on the "last_practiced_at" field.
func LastPracticedAtGTE(v time.Time) predicate.SkillProfile {
	return predicate.SkillProfile(sql.FieldGTE(FieldLastPracticedAt, v))
}

// LastPracticedAtLT applies the LT predicate on the "last_practiced_at" field.
func LastPracticedAtLT(v time.Time) predicate.SkillProfile {
	return predicate.SkillProfile(sql.FieldLT(FieldLastPracticedAt, v))
}

// LastPracticedAtLTE applies the LTE predicate on the "last_practiced_at" field.
func LastPracticedAtLTE(v time.Time) predicate.SkillProfile {
	return predicate.SkillProfile(sql.FieldLTE(FieldLastPracticedAt, v))
}

// LastPracticedAtIsNil applies the IsNil predicate on the "last_practiced_at" field.
func LastPracticedAtIsNil() predicate.SkillProfile {
	return predicate.SkillProfile(sql.FieldIsNull(FieldLastPracticedAt))
}

// LastPracticedAtNotNil applies the NotNil predicate on the "last_practiced_at" field.
func LastPracticedAtNotNil() predicate.SkillProfile {
	return predicate.SkillProfile(sql.FieldNotNull(FieldLastPracticedAt))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.SkillProfile {
	return predicate.SkillProfile(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.SkillProfile {
	return predicate.SkillProfile(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.SkillProfile {
	return predicate.SkillProfile(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.SkillProfile {
	return predicate.SkillProfile(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.SkillProfile {
	return predicate.SkillProfile(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.SkillProfile {
	return predicate.SkillProfile(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.SkillProfile {
	return predicate.SkillProfile(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.SkillProfile {
	return predicate.SkillProfile(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.SkillProfile {
	return predicate.SkillProfile(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.SkillProfile {
	return predicate.SkillProfile(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.SkillProfile {
	return predicate.SkillProfile(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.SkillProfile {
	return predicate.SkillProfile(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.SkillProfile {
	return predicate.SkillProfile(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.SkillProfile {
	return predicate.SkillProfile(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.SkillProfile {
	return predicate.SkillProfile(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.SkillProfile {
	return predicate.SkillProfile(sql.FieldLTE(FieldUpdatedAt, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.SkillProfile) predicate.SkillProfile {
	return predicate.SkillProfile(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.SkillProfile) predicate.SkillProfile {
	return predicate.SkillProfile(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.SkillProfile) predicate.SkillProfile {
	return predicate.SkillProfile(sql.NotPredicates(p))
}
