// Code generated by ent, DO NOT EDIT.

package learningpath

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/plaroindia/Pearl/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.LearningPath {
	return predicate.LearningPath(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.LearningPath {
	return predicate.LearningPath(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.LearningPath {
	return predicate.LearningPath(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.LearningPath {
	return predicate.LearningPath(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.LearningPath {
	return predicate.LearningPath(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.LearningPath {
	return predicate.LearningPath(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.LearningPath {
	return predicate.LearningPath(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.LearningPath {
	return predicate.LearningPath(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.LearningPath {
	return predicate.LearningPath(sql.FieldLTE(FieldID, id))
}

// SessionID applies equality check predicate on the "session_id" field. It's identical to SessionIDEQ.
func SessionID(v string) predicate.LearningPath {
	return predicate.LearningPath(sql.FieldEQ(FieldSessionID, v))
}

// UserID applies equality check predicate on the "user_id" field. It's identical to UserIDEQ.
func UserID(v string) predicate.LearningPath {
	return predicate.LearningPath(sql.FieldEQ(FieldUserID, v))
}

// Skill applies equality check predicate on the "skill" field. It's identical to SkillEQ.
func Skill(v string) predicate.LearningPath {
	return predicate.LearningPath(sql.FieldEQ(FieldSkill, v))
}

// Difficulty applies equality check predicate on the "difficulty" field. It's identical to DifficultyEQ.
func Difficulty(v string) predicate.LearningPath {
	return predicate.LearningPath(sql.FieldEQ(FieldDifficulty, v))
}

// TotalModules applies equality check predicate on the "total_modules" field. It's identical to TotalModulesEQ.
func TotalModules(v int) predicate.LearningPath {
	return predicate.LearningPath(sql.FieldEQ(FieldTotalModules, v))
}

// CurrentModule applies equality check predicate on the "current_module" field. It's identical to CurrentModuleEQ.
func CurrentModule(v int) predicate.LearningPath {
	return predicate.LearningPath(sql.FieldEQ(FieldCurrentModule, v))
}

// Completed applies equality check predicate on the "completed" field. It's identical to CompletedEQ.
func Completed(v bool) predicate.LearningPath {
	return predicate.LearningPath(sql.FieldEQ(FieldCompleted, v))
}

// Version applies equality check predicate on the "version" field. It's identical to VersionEQ.
func Version(v int) predicate.LearningPath {
	return predicate.LearningPath(sql.FieldEQ(FieldVersion, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.LearningPath {
	return predicate.LearningPath(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.LearningPath {
	return predicate.LearningPath(sql.FieldEQ(FieldUpdatedAt, v))
}

// SessionIDEQ applies the EQ predicate on the "session_id" field.
func SessionIDEQ(v string) predicate.LearningPath {
	return predicate.LearningPath(sql.FieldEQ(FieldSessionID, v))
}

// SessionIDNEQ applies the NEQ predicate on the "session_id" field.
func SessionIDNEQ(v string) predicate.LearningPath {
	return predicate.LearningPath(sql.FieldNEQ(FieldSessionID, v))
}

// SessionIDIn applies the In predicate on the "session_id" field.
func SessionIDIn(vs ...string) predicate.LearningPath {
	return predicate.LearningPath(sql.FieldIn(FieldSessionID, vs...))
}

// SessionIDNotIn applies the NotIn predicate on the "session_id" field.
func SessionIDNotIn(vs ...string) predicate.LearningPath {
	return predicate.LearningPath(sql.FieldNotIn(FieldSessionID, vs...))
}

// SessionIDGT applies the GT predicate on the "session_id" field.
func SessionIDGT(v string) predicate.LearningPath {
	return predicate.LearningPath(sql.FieldGT(FieldSessionID, v))
}

// SessionIDGTE applies the GTE predicate on the "session_id" field.
func SessionIDGTE(v string) predicate.LearningPath {
	return predicate.LearningPath(sql.FieldGTE(FieldSessionID, v))
}

// SessionIDLT applies the LT predicate on the "session_id" field.
func SessionIDLT(v string) predicate.LearningPath {
	return predicate.LearningPath(sql.FieldLT(FieldSessionID, v))
}

// SessionIDLTE applies the LTE predicate on the "session_id" field.
func SessionIDLTE(v string) predicate.LearningPath {
	return predicate.LearningPath(sql.FieldLTE(FieldSessionID, v))
}

// SessionIDContains applies the Contains predicate on the "session_id" field.
func SessionIDContains(v string) predicate.LearningPath {
	return predicate.LearningPath(sql.FieldContains(FieldSessionID, v))
}

// SessionIDHasPrefix applies the HasPrefix predicate on the "session_id" field.
func SessionIDHasPrefix(v string) predicate.LearningPath {
	return predicate.LearningPath(sql.FieldHasPrefix(FieldSessionID, v))
}

// SessionIDHasSuffix applies the HasSuffix predicate on the "session_id" field.
func SessionIDHasSuffix(v string) predicate.LearningPath {
	return predicate.LearningPath(sql.FieldHasSuffix(FieldSessionID, v))
}

// SessionIDEqualFold applies the EqualFold predicate on the "session_id" field.
func SessionIDEqualFold(v string) predicate.LearningPath {
	return predicate.LearningPath(sql.FieldEqualFold(FieldSessionID, v))
}

// SessionIDContainsFold applies the ContainsFold predicate on the "session_id" field.
func SessionIDContainsFold(v string) predicate.LearningPath {
	return predicate.LearningPath(sql.FieldContainsFold(FieldSessionID, v))
}

// UserIDEQ applies the EQ predicate on the "user_id" field.
func UserIDEQ(v string) predicate.LearningPath {
	return predicate.LearningPath(sql.FieldEQ(FieldUserID, v))
}

// UserIDNEQ applies the NEQ predicate on the "user_id" field.
func UserIDNEQ(v string) predicate.LearningPath {
	return predicate.LearningPath(sql.FieldNEQ(FieldUserID, v))
}

// UserIDIn applies the In predicate on the "user_id" field.
func UserIDIn(vs ...string) predicate.LearningPath {
	return predicate.LearningPath(sql.FieldIn(FieldUserID, vs...))
}

// UserIDNotIn applies the NotIn predicate on the "user_id" field.
func UserIDNotIn(vs ...string) predicate.LearningPath {
	return predicate.LearningPath(sql.FieldNotIn(FieldUserID, vs...))
}

// UserIDGT applies the GT predicate on the "user_id" field.
func UserIDGT(v string) predicate.LearningPath {
	return predicate.LearningPath(sql.FieldGT(FieldUserID, v))
}

// UserIDGTE applies the GTE predicate on the "user_id" field.
func UserIDGTE(v string) predicate.LearningPath {
	return predicate.LearningPath(sql.FieldGTE(FieldUserID, v))
}

// UserIDLT applies the LT predicate on the "user_id" field.
func UserIDLT(v string) predicate.LearningPath {
	return predicate.LearningPath(sql.FieldLT(FieldUserID, v))
}

// UserIDLTE applies the LTE predicate on the "user_id" field.
func UserIDLTE(v string) predicate.LearningPath {
	return predicate.LearningPath(sql.FieldLTE(FieldUserID, v))
}

// UserIDContains applies the Contains predicate on the "user_id" field.
func UserIDContains(v string) predicate.LearningPath {
	return predicate.LearningPath(sql.FieldContains(FieldUserID, v))
}

// UserIDHasPrefix applies the HasPrefix predicate on the "user_id" field.
func UserIDHasPrefix(v string) predicate.LearningPath {
	return predicate.LearningPath(sql.FieldHasPrefix(FieldUserID, v))
}

// UserIDHasSuffix applies the HasSuffix predicate on the "user_id" field.
func UserIDHasSuffix(v string) predicate.LearningPath {
	return predicate.LearningPath(sql.FieldHasSuffix(FieldUserID, v))
}

// UserIDEqualFold applies the EqualFold predicate on the "user_id" field.
func UserIDEqualFold(v string) predicate.LearningPath {
	return predicate.LearningPath(sql.FieldEqualFold(FieldUserID, v))
}

// UserIDContainsFold applies the ContainsFold predicate on the "user_id" field.
func UserIDContainsFold(v string) predicate.LearningPath {
	return predicate.LearningPath(sql.FieldContainsFold(FieldUserID, v))
}

// SkillEQ applies the EQ predicate on the "skill" field.
func SkillEQ(v string) predicate.LearningPath {
	return predicate.LearningPath(sql.FieldEQ(FieldSkill, v))
}

// SkillNEQ applies the NEQ predicate on the "skill" field.
func SkillNEQ(v string) predicate.LearningPath {
	return predicate.LearningPath(sql.FieldNEQ(FieldSkill, v))
}

// SkillIn applies the In predicate on the "skill" field.
func SkillIn(vs ...string) predicate.LearningPath {
	return predicate.LearningPath(sql.FieldIn(FieldSkill, vs...))
}

// SkillNotIn applies the NotIn predicate on the "skill" field.
func SkillNotIn(vs ...string) predicate.LearningPath {
	return predicate.LearningPath(sql.FieldNotIn(FieldSkill, vs...))
}

// SkillGT applies the GT predicate on the "skill" field.
func SkillGT(v string) predicate.LearningPath {
	return predicate.LearningPath(sql.FieldGT(FieldSkill, v))
}

// SkillGTE applies the GTE predicate on the "skill" field.
func SkillGTE(v string) predicate.LearningPath {
	return predicate.LearningPath(sql.FieldGTE(FieldSkill, v))
}

// SkillLT applies the LT predicate on the "skill" field.
func SkillLT(v string) predicate.LearningPath {
	return predicate.LearningPath(sql.FieldLT(FieldSkill, v))
}

// SkillLTE applies the LTE predicate on the "skill" field.
func SkillLTE(v string) predicate.LearningPath {
	return predicate.LearningPath(sql.FieldLTE(FieldSkill, v))
}

// SkillContains applies the Contains predicate on the "skill" field.
func SkillContains(v string) predicate.LearningPath {
	return predicate.LearningPath(sql.FieldContains(FieldSkill, v))
}

// SkillHasPrefix applies the HasPrefix predicate on the "skill" field.
func SkillHasPrefix(v string) predicate.LearningPath {
	return predicate.LearningPath(sql.FieldHasPrefix(FieldSkill, v))
}

// SkillHasSuffix applies the HasSuffix predicate on the "skill" field.
func SkillHasSuffix(v string) predicate.LearningPath {
	return predicate.LearningPath(sql.FieldHasSuffix(FieldSkill, v))
}

// SkillEqualFold applies the EqualFold predicate on the "skill" field.
func SkillEqualFold(v string) predicate.LearningPath {
	return predicate.LearningPath(sql.FieldEqualFold(FieldSkill, v))
}

// SkillContainsFold applies the ContainsFold predicate on the "skill" field.
func SkillContainsFold(v string) predicate.LearningPath {
	return predicate.LearningPath(sql.FieldContainsFold(FieldSkill, v))
}

// DifficultyEQ applies the EQ predicate on the "difficulty" field.
func DifficultyEQ(v string) predicate.LearningPath {
	return predicate.LearningPath(sql.FieldEQ(FieldDifficulty, v))
}

// DifficultyNEQ applies the NEQ predicate on the "difficulty" field.
func DifficultyNEQ(v string) predicate.LearningPath {
	return predicate.LearningPath(sql.FieldNEQ(FieldDifficulty, v))
}

// DifficultyIn applies the In predicate on the "difficulty" field.
func DifficultyIn(vs ...string) predicate.LearningPath {
	return predicate.LearningPath(sql.FieldIn(FieldDifficulty, vs...))
}

// DifficultyNotIn applies the NotIn predicate on the "difficulty" field.
func DifficultyNotIn(vs ...string) predicate.LearningPath {
	return predicate.LearningPath(sql.FieldNotIn(FieldDifficulty, vs...))
}

// DifficultyGT applies the GT predicate on the "difficulty" field.
func DifficultyGT(v string) predicate.LearningPath {
	return predicate.LearningPath(sql.FieldGT(FieldDifficulty, v))
}

// DifficultyGTE applies the GTE predicate on the "difficulty" field.
func DifficultyGTE(v string) predicate.LearningPath {
	return predicate.LearningPath(sql.FieldGTE(FieldDifficulty, v))
}

// DifficultyLT applies the LT predicate on the "difficulty" field.
func DifficultyLT(v string) predicate.LearningPath {
	return predicate.LearningPath(sql.FieldLT(FieldDifficulty, v))
}

// DifficultyLTE applies the LTE predicate on the "difficulty" field.
func DifficultyLTE(v string) predicate.LearningPath {
	return predicate.LearningPath(sql.FieldLTE(FieldDifficulty, v))
}

// DifficultyContains applies the Contains predicate on the "difficulty" field.
func DifficultyContains(v string) predicate.LearningPath {
	return predicate.LearningPath(sql.FieldContains(FieldDifficulty, v))
}

// DifficultyHasPrefix applies the HasPrefix predicate on the "difficulty" field.
func DifficultyHasPrefix(v string) predicate.LearningPath {
	return predicate.LearningPath(sql.FieldHasPrefix(FieldDifficulty, v))
}

// DifficultyHasSuffix applies the HasSuffix predicate on the "difficulty" field.
func DifficultyHasSuffix(v string) predicate.LearningPath {
	return predicate.LearningPath(sql.FieldHasSuffix(FieldDifficulty, v))
}

// DifficultyEqualFold applies the EqualFold predicate on the "difficulty" field.
func DifficultyEqualFold(v string) predicate.LearningPath {
	return predicate.LearningPath(sql.FieldEqualFold(FieldDifficulty, v))
}

// DifficultyContainsFold applies the ContainsFold predicate on the "difficulty" field.
func DifficultyContainsFold(v string) predicate.LearningPath {
	return predicate.LearningPath(sql.FieldContainsFold(FieldDifficulty, v))
}

// TotalModulesEQ applies the EQ predicate on the "total_modules" field.
func TotalModulesEQ(v int) predicate.LearningPath {
	return predicate.LearningPath(sql.FieldEQ(FieldTotalModules, v))
}

// TotalModulesNEQ applies the NEQ predicate on the "total_modules" field.
func TotalModulesNEQ(v int) predicate.LearningPath {
	return predicate.LearningPath(sql.FieldNEQ(FieldTotalModules, v))
}

// TotalModulesIn applies the In predicate on the "total_modules" field.
func TotalModulesIn(vs ...int) predicate.LearningPath {
	return predicate.LearningPath(sql.FieldIn(FieldTotalModules, vs...))
}

// TotalModulesNotIn applies the NotIn predicate on the "total_modules" field.
func TotalModulesNotIn(vs ...int) predicate.LearningPath {
	return predicate.LearningPath(sql.FieldNotIn(FieldTotalModules, vs...))
}

// TotalModulesGT applies the GT predicate on the "total_modules" field.
func TotalModulesGT(v int) predicate.LearningPath {
	return predicate.LearningPath(sql.FieldGT(FieldTotalModules, v))
}

// TotalModulesGTE applies the GTE predicate on the "total_modules" field.
func TotalModulesGTE(v int) predicate.LearningPath {
	return predicate.LearningPath(sql.FieldGTE(FieldTotalModules, v))
}

// TotalModulesLT applies the LT predicate on the "total_modules" field.
func TotalModulesLT(v int) predicate.LearningPath {
	return predicate.LearningPath(sql.FieldLT(FieldTotalModules, v))
}

// TotalModulesLTE applies the LTE predicate on the "total_modules" field.
func TotalModulesLTE(v int) predicate.LearningPath {
	return predicate.LearningPath(sql.FieldLTE(FieldTotalModules, v))
}

// CurrentModuleEQ applies the EQ predicate on the "current_module" field.
func CurrentModuleEQ(v int) predicate.LearningPath {
	return predicate.LearningPath(sql.FieldEQ(FieldCurrentModule, v))
}

// CurrentModuleNEQ applies the NEQ predicate on the "current_module" field.
func CurrentModuleNEQ(v int) predicate.LearningPath {
	return predicate.LearningPath(sql.FieldNEQ(FieldCurrentModule, v))
}

// CurrentModuleIn applies the In predicate on the "current_module" field.
func CurrentModuleIn(vs ...int) predicate.LearningPath {
	return predicate.LearningPath(sql.FieldIn(FieldCurrentModule, vs...))
}

// CurrentModuleNotIn applies the NotIn predicate on the "current_module" field.
func CurrentModuleNotIn(vs ...int) predicate.LearningPath {
	return predicate.LearningPath(sql.FieldNotIn(FieldCurrentModule, vs...))
}

// CurrentModuleGT applies the GT predicate on the "current_module" field.
func CurrentModuleGT(v int) predicate.LearningPath {
	return predicate.LearningPath(sql.FieldGT(FieldCurrentModule, v))
}

// CurrentModuleGTE applies the GTE predicate on the "current_module" field.
func CurrentModuleGTE(v int) predicate.LearningPath {
	return predicate.LearningPath(sql.FieldGTE(FieldCurrentModule, v))
}

// CurrentModuleLT applies the LT predicate on the "current_module" field.
func CurrentModuleLT(v int) predicate.LearningPath {
	return predicate.LearningPath(sql.FieldLT(FieldCurrentModule, v))
}

// CurrentModuleLTE applies the LTE predicate on the "current_module" field.
func CurrentModuleLTE(v int) predicate.LearningPath {
	return predicate.LearningPath(sql.FieldLTE(FieldCurrentModule, v))
}

// CompletedEQ applies the EQ predicate on the "completed" field.
func CompletedEQ(v bool) predicate.LearningPath {
	return predicate.LearningPath(sql.FieldEQ(FieldCompleted, v))
}

// CompletedNEQ applies the NEQ predicate on the "completed" field.
func CompletedNEQ(v bool) predicate.LearningPath {
	return predicate.LearningPath(sql.FieldNEQ(FieldCompleted, v))
}

// VersionEQ applies the EQ predicate on the "version" field.
func VersionEQ(v int) predicate.LearningPath {
	return predicate.LearningPath(sql.FieldEQ(FieldVersion, v))
}

// VersionNEQ applies the NEQ predicate on the "version" field.
func VersionNEQ(v int) predicate.LearningPath {
	return predicate.LearningPath(sql.FieldNEQ(FieldVersion, v))
}

// VersionIn applies the In predicate on the "version" field.
func VersionIn(vs ...int) predicate.LearningPath {
	return predicate.LearningPath(sql.FieldIn(FieldVersion, vs...))
}

// VersionNotIn applies the NotIn predicate on the "version" field.
func VersionNotIn(vs ...int) predicate.LearningPath {
	return predicate.LearningPath(sql.FieldNotIn(FieldVersion, vs...))
}

// VersionGT applies the GT predicate on the "version" field.
func VersionGT(v int) predicate.LearningPath {
	return predicate.LearningPath(sql.FieldGT(FieldVersion, v))
}

// VersionGTE applies the GTE predicate on the "version" field.
func VersionGTE(v int) predicate.LearningPath {
	return predicate.LearningPath(sql.FieldGTE(FieldVersion, v))
}

// VersionLT applies the LT predicate on the "version" field.
func VersionLT(v int) predicate.LearningPath {
	return predicate.LearningPath(sql.FieldLT(FieldVersion, v))
}

// VersionLTE applies the LTE predicate on the "version" field.
func VersionLTE(v int) predicate.LearningPath {
	return predicate.LearningPath(sql.FieldLTE(FieldVersion, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.LearningPath {
	return predicate.LearningPath(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.LearningPath {
	return predicate.LearningPath(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.LearningPath {
	return predicate.LearningPath(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.LearningPath {
	return predicate.LearningPath(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.LearningPath {
	return predicate.LearningPath(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.LearningPath {
	return predicate.LearningPath(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.LearningPath {
	return predicate.LearningPath(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.LearningPath {
	return predicate.LearningPath(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.LearningPath {
	return predicate.LearningPath(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.LearningPath {
	return predicate.LearningPath(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.LearningPath {
	return predicate.LearningPath(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.LearningPath {
	return predicate.LearningPath(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.LearningPath {
	return predicate.LearningPath(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.LearningPath {
	return predicate.LearningPath(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.LearningPath {
	return predicate.LearningPath(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.LearningPath {
	return predicate.LearningPath(sql.FieldLTE(FieldUpdatedAt, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.LearningPath) predicate.LearningPath {
	return predicate.LearningPath(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.LearningPath) predicate.LearningPath {
	return predicate.LearningPath(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.LearningPath) predicate.LearningPath {
	return predicate.LearningPath(sql.NotPredicates(p))
}
