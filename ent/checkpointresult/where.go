// Code generated by ent, DO NOT EDIT.

package checkpointresult

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/plaroindia/Pearl/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.CheckpointResult {
	return predicate.CheckpointResult(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.CheckpointResult {
	return predicate.CheckpointResult(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.CheckpointResult {
	return predicate.CheckpointResult(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.CheckpointResult {
	return predicate.CheckpointResult(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.CheckpointResult {
	return predicate.CheckpointResult(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.CheckpointResult {
	return predicate.CheckpointResult(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.CheckpointResult {
	return predicate.CheckpointResult(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.CheckpointResult {
	return predicate.CheckpointResult(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.CheckpointResult {
	return predicate.CheckpointResult(sql.FieldLTE(FieldID, id))
}

// Sequence applies equality check predicate on the "sequence" field. It's identical to SequenceEQ.
func Sequence(v int64) predicate.CheckpointResult {
	return predicate.CheckpointResult(sql.FieldEQ(FieldSequence, v))
}

// Timestamp applies equality check predicate on the "timestamp" field. It's identical to TimestampEQ.
func Timestamp(v time.Time) predicate.CheckpointResult {
	return predicate.CheckpointResult(sql.FieldEQ(FieldTimestamp, v))
}

// SessionID applies equality check predicate on the "session_id" field. It's identical to SessionIDEQ.
func SessionID(v string) predicate.CheckpointResult {
	return predicate.CheckpointResult(sql.FieldEQ(FieldSessionID, v))
}

// UserID applies equality check predicate on the "user_id" field. It's identical to UserIDEQ.
func UserID(v string) predicate.CheckpointResult {
	return predicate.CheckpointResult(sql.FieldEQ(FieldUserID, v))
}

// Skill applies equality check predicate on the "skill" field. It's identical to SkillEQ.
func Skill(v string) predicate.CheckpointResult {
	return predicate.CheckpointResult(sql.FieldEQ(FieldSkill, v))
}

// ModuleID applies equality check predicate on the "module_id" field. It's identical to ModuleIDEQ.
func ModuleID(v int) predicate.CheckpointResult {
	return predicate.CheckpointResult(sql.FieldEQ(FieldModuleID, v))
}

// Score applies equality check predicate on the "score" field. It's identical to ScoreEQ.
func Score(v float64) predicate.CheckpointResult {
	return predicate.CheckpointResult(sql.FieldEQ(FieldScore, v))
}

// Passed applies equality check predicate on the "passed" field. It's identical to PassedEQ.
func Passed(v bool) predicate.CheckpointResult {
	return predicate.CheckpointResult(sql.FieldEQ(FieldPassed, v))
}

// CorrectCount applies equality check predicate on the "correct_count" field. It's identical to CorrectCountEQ.
func CorrectCount(v int) predicate.CheckpointResult {
	return predicate.CheckpointResult(sql.FieldEQ(FieldCorrectCount, v))
}

// TotalQuestions applies equality check predicate on the "total_questions" field. It's identical to TotalQuestionsEQ.
func TotalQuestions(v int) predicate.CheckpointResult {
	return predicate.CheckpointResult(sql.FieldEQ(FieldTotalQuestions, v))
}

// SequenceEQ applies the EQ predicate on the "sequence" field.
func SequenceEQ(v int64) predicate.CheckpointResult {
	return predicate.CheckpointResult(sql.FieldEQ(FieldSequence, v))
}

// SequenceNEQ applies the NEQ predicate on the "sequence" field.
func SequenceNEQ(v int64) predicate.CheckpointResult {
	return predicate.CheckpointResult(sql.FieldNEQ(FieldSequence, v))
}

// SequenceIn applies the In predicate on the "sequence" field.
func SequenceIn(vs ...int64) predicate.CheckpointResult {
	return predicate.CheckpointResult(sql.FieldIn(FieldSequence, vs...))
}

// SequenceNotIn applies the NotIn predicate on the "sequence" field.
func SequenceNotIn(vs ...int64) predicate.CheckpointResult {
	return predicate.CheckpointResult(sql.FieldNotIn(FieldSequence, vs...))
}

// SequenceGT applies the GT predicate on the "sequence" field.
func SequenceGT(v int64) predicate.CheckpointResult {
	return predicate.CheckpointResult(sql.FieldGT(FieldSequence, v))
}

// SequenceGTE applies the GTE predicate on the "sequence" field.
func SequenceGTE(v int64) predicate.CheckpointResult {
	return predicate.CheckpointResult(sql.FieldGTE(FieldSequence, v))
}

// SequenceLT applies the LT predicate on the "sequence" field.
func SequenceLT(v int64) predicate.CheckpointResult {
	return predicate.CheckpointResult(sql.FieldLT(FieldSequence, v))
}

// SequenceLTE applies the LTE predicate on the "sequence" field.
func SequenceLTE(v int64) predicate.CheckpointResult {
	return predicate.CheckpointResult(sql.FieldLTE(FieldSequence, v))
}

// TimestampEQ applies the EQ predicate on the "timestamp" field.
func TimestampEQ(v time.Time) predicate.CheckpointResult {
	return predicate.CheckpointResult(sql.FieldEQ(FieldTimestamp, v))
}

// TimestampNEQ applies the NEQ predicate on the "timestamp" field.
func TimestampNEQ(v time.Time) predicate.CheckpointResult {
	return predicate.CheckpointResult(sql.FieldNEQ(FieldTimestamp, v))
}

// TimestampIn applies the In predicate on the "timestamp" field.
func TimestampIn(vs ...time.Time) predicate.CheckpointResult {
	return predicate.CheckpointResult(sql.FieldIn(FieldTimestamp, vs...))
}

// TimestampNotIn applies the NotIn predicate on the "timestamp" field.
func TimestampNotIn(vs ...time.Time) predicate.CheckpointResult {
	return predicate.CheckpointResult(sql.FieldNotIn(FieldTimestamp, vs...))
}

// TimestampGT applies the GT predicate on the "timestamp" field.
func TimestampGT(v time.Time) predicate.CheckpointResult {
	return predicate.CheckpointResult(sql.FieldGT(FieldTimestamp, v))
}

// TimestampGTE applies the GTE predicate on the "timestamp" field.
func TimestampGTE(v time.Time) predicate.CheckpointResult {
	return predicate.CheckpointResult(sql.FieldGTE(FieldTimestamp, v))
}

// TimestampLT applies the LT predicate on the "timestamp" field.
func TimestampLT(v time.Time) predicate.CheckpointResult {
	return predicate.CheckpointResult(sql.FieldLT(FieldTimestamp, v))
}

// TimestampLTE applies the LTE predicate on the "timestamp" field.
func TimestampLTE(v time.Time) predicate.CheckpointResult {
	return predicate.CheckpointResult(sql.FieldLTE(FieldTimestamp, v))
}

// SessionIDEQ applies the EQ predicate on the "session_id" field.
func SessionIDEQ(v string) predicate.CheckpointResult {
	return predicate.CheckpointResult(sql.FieldEQ(FieldSessionID, v))
}

// SessionIDNEQ applies the NEQ predicate on the "session_id" field.
func SessionIDNEQ(v string) predicate.CheckpointResult {
	return predicate.CheckpointResult(sql.FieldNEQ(FieldSessionID, v))
}

// SessionIDIn applies the In predicate on the "session_id" field.
func SessionIDIn(vs ...string) predicate.CheckpointResult {
	return predicate.CheckpointResult(sql.FieldIn(FieldSessionID, vs...))
}

// SessionIDNotIn applies the NotIn predicate on the "session_id" field.
func SessionIDNotIn(vs ...string) predicate.CheckpointResult {
	return predicate.CheckpointResult(sql.FieldNotIn(FieldSessionID, vs...))
}

// SessionIDGT applies the GT predicate on the "session_id" field.
func SessionIDGT(v string) predicate.CheckpointResult {
	return predicate.CheckpointResult(sql.FieldGT(FieldSessionID, v))
}

// SessionIDGTE applies the GTE predicate on the "session_id" field.
func SessionIDGTE(v string) predicate.CheckpointResult {
	return predicate.CheckpointResult(sql.FieldGTE(FieldSessionID, v))
}

// SessionIDLT applies the LT predicate on the "session_id" field.
func SessionIDLT(v string) predicate.CheckpointResult {
	return predicate.CheckpointResult(sql.FieldLT(FieldSessionID, v))
}

// SessionIDLTE applies the LTE predicate on the "session_id" field.
func SessionIDLTE(v string) predicate.CheckpointResult {
	return predicate.CheckpointResult(sql.FieldLTE(FieldSessionID, v))
}

// SessionIDContains applies the Contains predicate on the "session_id" field.
func SessionIDContains(v string) predicate.CheckpointResult {
	return predicate.CheckpointResult(sql.FieldContains(FieldSessionID, v))
}

// SessionIDHasPrefix applies the HasPrefix predicate on the "session_id" field.
func SessionIDHasPrefix(v string) predicate.CheckpointResult {
	return predicate.CheckpointResult(sql.FieldHasPrefix(FieldSessionID, v))
}

// SessionIDHasSuffix applies the HasSuffix predicate on the "session_id" field.
func SessionIDHasSuffix(v string) predicate.CheckpointResult {
	return predicate.CheckpointResult(sql.FieldHasSuffix(FieldSessionID, v))
}

// SessionIDEqualFold applies the EqualFold predicate on the "session_id" field.
func SessionIDEqualFold(v string) predicate.CheckpointResult {
	return predicate.CheckpointResult(sql.FieldEqualFold(FieldSessionID, v))
}

// SessionIDContainsFold applies the ContainsFold predicate on the "session_id" field.
func SessionIDContainsFold(v string) predicate.CheckpointResult {
	return predicate.CheckpointResult(sql.FieldContainsFold(FieldSessionID, v))
}

// UserIDEQ applies the EQ predicate on the "user_id" field.
func UserIDEQ(v string) predicate.CheckpointResult {
	return predicate.CheckpointResult(sql.FieldEQ(FieldUserID, v))
}

// UserIDNEQ applies the NEQ predicate on the "user_id" field.
func UserIDNEQ(v string) predicate.CheckpointResult {
	return predicate.CheckpointResult(sql.FieldNEQ(FieldUserID, v))
}

// UserIDIn applies the In predicate on the "user_id" field.
func UserIDIn(vs ...string) predicate.CheckpointResult {
	return predicate.CheckpointResult(sql.FieldIn(FieldUserID, vs...))
}

// UserIDNotIn applies the NotIn predicate on the "user_id" field.
func UserIDNotIn(vs ...string) predicate.CheckpointResult {
	return predicate.CheckpointResult(sql.FieldNotIn(FieldUserID, vs...))
}

// UserIDGT applies the GT predicate on the "user_id" field.
func UserIDGT(v string) predicate.CheckpointResult {
	return predicate.CheckpointResult(sql.FieldGT(FieldUserID, v))
}

// UserIDGTE applies the GTE predicate on the "user_id" field.
func UserIDGTE(v string) predicate.CheckpointResult {
	return predicate.CheckpointResult(sql.FieldGTE(FieldUserID, v))
}

// UserIDLT applies the LT predicate on the "user_id" field.
func UserIDLT(v string) predicate.CheckpointResult {
	return predicate.CheckpointResult(sql.FieldLT(FieldUserID, v))
}

// UserIDLTE applies the LTE predicate on the "user_id" field.
func UserIDLTE(v string) predicate.CheckpointResult {
	return predicate.CheckpointResult(sql.FieldLTE(FieldUserID, v))
}

// UserIDContains applies the Contains predicate on the "user_id" field.
func UserIDContains(v string) predicate.CheckpointResult {
	return predicate.CheckpointResult(sql.FieldContains(FieldUserID, v))
}

// UserIDHasPrefix applies the HasPrefix predicate on the "user_id" field.
func UserIDHasPrefix(v string) predicate.CheckpointResult {
	return predicate.CheckpointResult(sql.FieldHasPrefix(FieldUserID, v))
}

// UserIDHasSuffix applies the HasSuffix predicate on the "user_id" field.
func UserIDHasSuffix(v string) predicate.CheckpointResult {
	return predicate.CheckpointResult(sql.FieldHasSuffix(FieldUserID, v))
}

// UserIDEqualFold applies the EqualFold predicate on the "user_id" field.
func UserIDEqualFold(v string) predicate.CheckpointResult {
	return predicate.CheckpointResult(sql.FieldEqualFold(FieldUserID, v))
}

// UserIDContainsFold applies the ContainsFold predicate on the "user_id" field.
func UserIDContainsFold(v string) predicate.CheckpointResult {
	return predicate.CheckpointResult(sql.FieldContainsFold(FieldUserID, v))
}

// SkillEQ applies the EQ predicate on the "skill" field.
func SkillEQ(v string) predicate.CheckpointResult {
	return predicate.CheckpointResult(sql.FieldEQ(FieldSkill, v))
}

// SkillNEQ applies the NEQ predicate on the "skill" field.
func SkillNEQ(v string) predicate.CheckpointResult {
	return predicate.CheckpointResult(sql.FieldNEQ(FieldSkill, v))
}

// SkillIn applies the In predicate on the "skill" field.
func SkillIn(vs ...string) predicate.CheckpointResult {
	return predicate.CheckpointResult(sql.FieldIn(FieldSkill, vs...))
}

// SkillNotIn applies the NotIn predicate on the "skill" field.
func SkillNotIn(vs ...string) predicate.CheckpointResult {
	return predicate.CheckpointResult(sql.FieldNotIn(FieldSkill, vs...))
}

// SkillGT applies the GT predicate on the "skill" field.
func SkillGT(v string) predicate.CheckpointResult {
	return predicate.CheckpointResult(sql.FieldGT(FieldSkill, v))
}

// SkillGTE applies the GTE predicate on the "skill" field.
func SkillGTE(v string) predicate.CheckpointResult {
	return predicate.CheckpointResult(sql.FieldGTE(FieldSkill, v))
}

// SkillLT applies the LT predicate on the "skill" field.
func SkillLT(v string) predicate.CheckpointResult {
	return predicate.CheckpointResult(sql.FieldLT(FieldSkill, v))
}

// SkillLTE applies the LTE predicate on the "skill" field.
func SkillLTE(v string) predicate.CheckpointResult {
	return predicate.CheckpointResult(sql.FieldLTE(FieldSkill, v))
}

// SkillContains applies the Contains predicate on the "skill" field.
func SkillContains(v string) predicate.CheckpointResult {
	return predicate.CheckpointResult(sql.FieldContains(FieldSkill, v))
}

// SkillHasPrefix applies the HasPrefix predicate on the "skill" field.
func SkillHasPrefix(v string) predicate.CheckpointResult {
	return predicate.CheckpointResult(sql.FieldHasPrefix(FieldSkill, v))
}

// SkillHasSuffix applies the HasSuffix predicate on the "skill" field.
func SkillHasSuffix(v string) predicate.CheckpointResult {
	return predicate.CheckpointResult(sql.FieldHasSuffix(FieldSkill, v))
}

// SkillEqualFold applies the EqualFold predicate on the "skill" field.
func SkillEqualFold(v string) predicate.CheckpointResult {
	return predicate.CheckpointResult(sql.FieldEqualFold(FieldSkill, v))
}

// SkillContainsFold applies the ContainsFold predicate on the "skill" field.
func SkillContainsFold(v string) predicate.CheckpointResult {
	return predicate.CheckpointResult(sql.FieldContainsFold(FieldSkill, v))
}

// ModuleIDEQ applies the EQ predicate on the "module_id" field.
func ModuleIDEQ(v int) predicate.CheckpointResult {
	return predicate.CheckpointResult(sql.FieldEQ(FieldModuleID, v))
}

// ModuleIDNEQ applies the NEQ predicate on the "module_id" field.
func ModuleIDNEQ(v int) predicate.CheckpointResult {
	return predicate.CheckpointResult(sql.FieldNEQ(FieldModuleID, v))
}

// ModuleIDIn applies the In predicate on the "module_id" field.
func ModuleIDIn(vs ...int) predicate.CheckpointResult {
	return predicate.CheckpointResult(sql.FieldIn(FieldModuleID, vs...))
}

// ModuleIDNotIn applies the NotIn predicate on the "module_id" field.
func ModuleIDNotIn(vs ...int) predicate.CheckpointResult {
	return predicate.CheckpointResult(sql.FieldNotIn(FieldModuleID, vs...))
}

// ModuleIDGT applies the GT predicate on the "module_id" field.
func ModuleIDGT(v int) predicate.CheckpointResult {
	return predicate.CheckpointResult(sql.FieldGT(FieldModuleID, v))
}

// ModuleIDGTE applies the GTE predicate on the "module_id" field.
func ModuleIDGTE(v int) predicate.CheckpointResult {
	return predicate.CheckpointResult(sql.FieldGTE(FieldModuleID, v))
}

// ModuleIDLT applies the LT predicate on the "module_id" field.
func ModuleIDLT(v int) predicate.CheckpointResult {
	return predicate.CheckpointResult(sql.FieldLT(FieldModuleID, v))
}

// ModuleIDLTE applies the LTE predicate on the "module_id" field.
func ModuleIDLTE(v int) predicate.CheckpointResult {
	return predicate.CheckpointResult(sql.FieldLTE(FieldModuleID, v))
}

// ScoreEQ applies the EQ predicate on the "score" field.
func ScoreEQ(v float64) predicate.CheckpointResult {
	return predicate.CheckpointResult(sql.FieldEQ(FieldScore, v))
}

// ScoreNEQ applies the NEQ predicate on the "score" field.
func ScoreNEQ(v float64) predicate.CheckpointResult {
	return predicate.CheckpointResult(sql.FieldNEQ(FieldScore, v))
}

// ScoreIn applies the In predicate on the "score" field.
func ScoreIn(vs ...float64) predicate.CheckpointResult {
	return predicate.CheckpointResult(sql.FieldIn(FieldScore, vs...))
}

// ScoreNotIn applies the NotIn predicate on the "score" field.
func ScoreNotIn(vs ...float64) predicate.CheckpointResult {
	return predicate.CheckpointResult(sql.FieldNotIn(FieldScore, vs...))
}

// ScoreGT applies the GT predicate on the "score" field.
func ScoreGT(v float64) predicate.CheckpointResult {
	return predicate.CheckpointResult(sql.FieldGT(FieldScore, v))
}

// ScoreGTE applies the GTE predicate on the "score" field.
func ScoreGTE(v float64) predicate.CheckpointResult {
	return predicate.CheckpointResult(sql.FieldGTE(FieldScore, v))
}

// ScoreLT applies the LT predicate on the "score" field.
func ScoreLT(v float64) predicate.CheckpointResult {
	return predicate.CheckpointResult(sql.FieldLT(FieldScore, v))
}

// ScoreLTE applies the LTE predicate on the "score" field.
func ScoreLTE(v float64) predicate.CheckpointResult {
	return predicate.CheckpointResult(sql.FieldLTE(FieldScore, v))
}

// PassedEQ applies the EQ predicate on the "passed" field.
func PassedEQ(v bool) predicate.CheckpointResult {
	return predicate.CheckpointResult(sql.FieldEQ(FieldPassed, v))
}

// PassedNEQ applies the NEQ predicate on the "passed" field.
func PassedNEQ(v bool) predicate.CheckpointResult {
	return predicate.CheckpointResult(sql.FieldNEQ(FieldPassed, v))
}

// CorrectCountEQ applies the EQ predicate on the "correct_count" field.
func CorrectCountEQ(v int) predicate.CheckpointResult {
	return predicate.CheckpointResult(sql.FieldEQ(FieldCorrectCount, v))
}

// CorrectCountNEQ applies the NEQ predicate on the "correct_count" field.
func CorrectCountNEQ(v int) predicate.CheckpointResult {
	return predicate.CheckpointResult(sql.FieldNEQ(FieldCorrectCount, v))
}

// CorrectCountIn applies the In predicate on the "correct_count" field.
func CorrectCountIn(vs ...int) predicate.CheckpointResult {
	return predicate.CheckpointResult(sql.FieldIn(FieldCorrectCount, vs...))
}

// CorrectCountNotIn applies the NotIn predicate on the "correct_count" field.
func CorrectCountNotIn(vs ...int) predicate.CheckpointResult {
	return predicate.CheckpointResult(sql.FieldNotIn(FieldCorrectCount, vs...))
}

// CorrectCountGT applies the GT predicate on the "correct_count" field.
func CorrectCountGT(v int) predicate.CheckpointResult {
	return predicate.CheckpointResult(sql.FieldGT(FieldCorrectCount, v))
}

// CorrectCountGTE applies the GTE predicate on the "correct_count" field.
func CorrectCountGTE(v int) predicate.CheckpointResult {
	return predicate.CheckpointResult(sql.FieldGTE(FieldCorrectCount, v))
}

// CorrectCountLT applies the LT predicate on the "correct_count" field.
func CorrectCountLT(v int) predicate.CheckpointResult {
	return predicate.CheckpointResult(sql.FieldLT(FieldCorrectCount, v))
}

// CorrectCountLTE applies the LTE predicate on the "correct_count" field.
func CorrectCountLTE(v int) predicate.CheckpointResult {
	return predicate.CheckpointResult(sql.FieldLTE(FieldCorrectCount, v))
}

// TotalQuestionsEQ applies the EQ predicate on the "total_questions" field.
func TotalQuestionsEQ(v int) predicate.CheckpointResult {
	return predicate.CheckpointResult(sql.FieldEQ(FieldTotalQuestions, v))
}

// TotalQuestionsNEQ applies the NEQ predicate on the "total_questions" field.
func TotalQuestionsNEQ(v int) predicate.CheckpointResult {
	return predicate.CheckpointResult(sql.FieldNEQ(FieldTotalQuestions, v))
}

// TotalQuestionsIn applies the In predicate on the "total_questions" field.
func TotalQuestionsIn(vs ...int) predicate.CheckpointResult {
	return predicate.CheckpointResult(sql.FieldIn(FieldTotalQuestions, vs...))
}

// TotalQuestionsNotIn applies the NotIn predicate on the "total_questions" field.
func TotalQuestionsNotIn(vs ...int) predicate.CheckpointResult {
	return predicate.CheckpointResult(sql.FieldNotIn(FieldTotalQuestions, vs...))
}

// TotalQuestionsGT applies the GT predicate on the "total_questions" field.
func TotalQuestionsGT(v int) predicate.CheckpointResult {
	return predicate.CheckpointResult(sql.FieldGT(FieldTotalQuestions, v))
}

// TotalQuestionsGTE applies the GTE predicate on the "total_questions" field.
func TotalQuestionsGTE(v int) predicate.CheckpointResult {
	return predicate.CheckpointResult(sql.FieldGTE(FieldTotalQuestions, v))
}

// TotalQuestionsLT applies the LT predicate on the "total_questions" field.
func TotalQuestionsLT(v int) predicate.CheckpointResult {
	return predicate.CheckpointResult(sql.FieldLT(FieldTotalQuestions, v))
}

// TotalQuestionsLTE applies the LTE predicate on the "total_questions" field.
func TotalQuestionsLTE(v int) predicate.CheckpointResult {
	return predicate.CheckpointResult(sql.FieldLTE(FieldTotalQuestions, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.CheckpointResult) predicate.CheckpointResult {
	return predicate.CheckpointResult(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.CheckpointResult) predicate.CheckpointResult {
	return predicate.CheckpointResult(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.CheckpointResult) predicate.CheckpointResult {
	return predicate.CheckpointResult(sql.NotPredicates(p))
}
