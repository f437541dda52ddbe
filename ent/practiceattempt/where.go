// Code generated by ent, DO NOT EDIT.

package practiceattempt

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/plaroindia/Pearl/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.PracticeAttempt {
	return predicate.PracticeAttempt(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.PracticeAttempt {
	return predicate.PracticeAttempt(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.PracticeAttempt {
	return predicate.PracticeAttempt(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.PracticeAttempt {
	return predicate.PracticeAttempt(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.PracticeAttempt {
	return predicate.PracticeAttempt(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.PracticeAttempt {
	return predicate.PracticeAttempt(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.PracticeAttempt {
	return predicate.PracticeAttempt(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.PracticeAttempt {
	return predicate.PracticeAttempt(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.PracticeAttempt {
	return predicate.PracticeAttempt(sql.FieldLTE(FieldID, id))
}

// Sequence applies equality check predicate on the "sequence" field. It's identical to SequenceEQ.
func Sequence(v int64) predicate.PracticeAttempt {
	return predicate.PracticeAttempt(sql.FieldEQ(FieldSequence, v))
}

// Timestamp applies equality check predicate on the "timestamp" field. It's identical to TimestampEQ.
func Timestamp(v time.Time) predicate.PracticeAttempt {
	return predicate.PracticeAttempt(sql.FieldEQ(FieldTimestamp, v))
}

// UserID applies equality check predicate on the "user_id" field. It's identical to UserIDEQ.
func UserID(v string) predicate.PracticeAttempt {
	return predicate.PracticeAttempt(sql.FieldEQ(FieldUserID, v))
}

// Skill applies equality check predicate on the "skill" field. It's identical to SkillEQ.
func Skill(v string) predicate.PracticeAttempt {
	return predicate.PracticeAttempt(sql.FieldEQ(FieldSkill, v))
}

// Topic applies equality check predicate on the "topic" field. It's identical to TopicEQ.
func Topic(v string) predicate.PracticeAttempt {
	return predicate.PracticeAttempt(sql.FieldEQ(FieldTopic, v))
}

// Score applies equality check predicate on the "score" field. It's identical to ScoreEQ.
func Score(v float64) predicate.PracticeAttempt {
	return predicate.PracticeAttempt(sql.FieldEQ(FieldScore, v))
}

// CorrectCount applies equality check predicate on the "correct_count" field. It's identical to CorrectCountEQ.
func CorrectCount(v int) predicate.PracticeAttempt {
	return predicate.PracticeAttempt(sql.FieldEQ(FieldCorrectCount, v))
}

// TotalQuestions applies equality check predicate on the "total_questions" field. It's identical to TotalQuestionsEQ.
func TotalQuestions(v int) predicate.PracticeAttempt {
	return predicate.PracticeAttempt(sql.FieldEQ(FieldTotalQuestions, v))
}

// TimeTakenSecs applies equality check predicate on the "time_taken_secs" field. It's identical to TimeTakenSecsEQ.
func TimeTakenSecs(v int) predicate.PracticeAttempt {
	return predicate.PracticeAttempt(sql.FieldEQ(FieldTimeTakenSecs, v))
}

// SequenceEQ applies the EQ predicate on the "sequence" field.
func SequenceEQ(v int64) predicate.PracticeAttempt {
	return predicate.PracticeAttempt(sql.FieldEQ(FieldSequence, v))
}

// SequenceNEQ applies the NEQ predicate on the "sequence" field.
func SequenceNEQ(v int64) predicate.PracticeAttempt {
	return predicate.PracticeAttempt(sql.FieldNEQ(FieldSequence, v))
}

// SequenceIn applies the In predicate on the "sequence" field.
func SequenceIn(vs ...int64) predicate.PracticeAttempt {
	return predicate.PracticeAttempt(sql.FieldIn(FieldSequence, vs...))
}

// SequenceNotIn applies the NotIn predicate on the "sequence" field.
func SequenceNotIn(vs ...int64) predicate.PracticeAttempt {
	return predicate.PracticeAttempt(sql.FieldNotIn(FieldSequence, vs...))
}

// SequenceGT applies the GT predicate on the "sequence" field.
func SequenceGT(v int64) predicate.PracticeAttempt {
	return predicate.PracticeAttempt(sql.FieldGT(FieldSequence, v))
}

// SequenceGTE applies the GTE predicate on the "sequence" field.
func SequenceGTE(v int64) predicate.PracticeAttempt {
	return predicate.PracticeAttempt(sql.FieldGTE(FieldSequence, v))
}

// SequenceLT applies the LT predicate on the "sequence" field.
func SequenceLT(v int64) predicate.PracticeAttempt {
	return predicate.PracticeAttempt(sql.FieldLT(FieldSequence, v))
}

// SequenceLTE applies the LTE predicate on the "sequence" field.
func SequenceLTE(v int64) predicate.PracticeAttempt {
	return predicate.PracticeAttempt(sql.FieldLTE(FieldSequence, v))
}

// TimestampEQ applies the EQ predicate on the "timestamp" field.
func TimestampEQ(v time.Time) predicate.PracticeAttempt {
	return predicate.PracticeAttempt(sql.FieldEQ(FieldTimestamp, v))
}

// TimestampNEQ applies the NEQ predicate on the "timestamp" field.
func TimestampNEQ(v time.Time) predicate.PracticeAttempt {
	return predicate.PracticeAttempt(sql.FieldNEQ(FieldTimestamp, v))
}

// TimestampIn applies the In predicate on the "timestamp" field.
func TimestampIn(vs ...time.Time) predicate.PracticeAttempt {
	return predicate.PracticeAttempt(sql.FieldIn(FieldTimestamp, vs...))
}

// TimestampNotIn applies the NotIn predicate on the "timestamp" field.
func TimestampNotIn(vs ...time.Time) predicate.PracticeAttempt {
	return predicate.PracticeAttempt(sql.FieldNotIn(FieldTimestamp, vs...))
}

// TimestampGT applies the GT predicate on the "timestamp" field.
func TimestampGT(v time.Time) predicate.PracticeAttempt {
	return predicate.PracticeAttempt(sql.FieldGT(FieldTimestamp, v))
}

// TimestampGTE applies the GTE predicate on the "timestamp" field.
func TimestampGTE(v time.Time) predicate.PracticeAttempt {
	return predicate.PracticeAttempt(sql.FieldGTE(FieldTimestamp, v))
}

// TimestampLT applies the LT predicate on the "timestamp" field.
func TimestampLT(v time.Time) predicate.PracticeAttempt {
	return predicate.PracticeAttempt(sql.FieldLT(FieldTimestamp, v))
}

// TimestampLTE applies the LTE predicate on the "timestamp" field.
func TimestampLTE(v time.Time) predicate.PracticeAttempt {
	return predicate.PracticeAttempt(sql.FieldLTE(FieldTimestamp, v))
}

// UserIDEQ applies the EQ predicate on the "user_id" field.
func UserIDEQ(v string) predicate.PracticeAttempt {
	return predicate.PracticeAttempt(sql.FieldEQ(FieldUserID, v))
}

// UserIDNEQ applies the NEQ predicate on the "user_id" field.
func UserIDNEQ(v string) predicate.PracticeAttempt {
	return predicate.PracticeAttempt(sql.FieldNEQ(FieldUserID, v))
}

// UserIDIn applies the In predicate on the "user_id" field.
func UserIDIn(vs ...string) predicate.PracticeAttempt {
	return predicate.PracticeAttempt(sql.FieldIn(FieldUserID, vs...))
}

// UserIDNotIn applies the NotIn predicate on the "user_id" field.
func UserIDNotIn(vs ...string) predicate.PracticeAttempt {
	return predicate.PracticeAttempt(sql.FieldNotIn(FieldUserID, vs...))
}

// UserIDGT applies the GT predicate on the "user_id" field.
func UserIDGT(v string) predicate.PracticeAttempt {
	return predicate.PracticeAttempt(sql.FieldGT(FieldUserID, v))
}

// UserIDGTE applies the GTE predicate on the "user_id" field.
func UserIDGTE(v string) predicate.PracticeAttempt {
	return predicate.PracticeAttempt(sql.FieldGTE(FieldUserID, v))
}

// UserIDLT applies the LT predicate on the "user_id" field.
func UserIDLT(v string) predicate.PracticeAttempt {
	return predicate.PracticeAttempt(sql.FieldLT(FieldUserID, v))
}

// UserIDLTE applies the LTE predicate on the "user_id" field.
func UserIDLTE(v string) predicate.PracticeAttempt {
	return predicate.PracticeAttempt(sql.FieldLTE(FieldUserID, v))
}

// UserIDContains applies the Contains predicate on the "user_id" field.
func UserIDContains(v string) predicate.PracticeAttempt {
	return predicate.PracticeAttempt(sql.FieldContains(FieldUserID, v))
}

// UserIDHasPrefix applies the HasPrefix predicate on the "user_id" field.
func UserIDHasPrefix(v string) predicate.PracticeAttempt {
	return predicate.PracticeAttempt(sql.FieldHasPrefix(FieldUserID, v))
}

// UserIDHasSuffix applies the HasSuffix predicate on the "user_id" field.
func UserIDHasSuffix(v string) predicate.PracticeAttempt {
	return predicate.PracticeAttempt(sql.FieldHasSuffix(FieldUserID, v))
}

// UserIDEqualFold applies the EqualFold predicate on the "user_id" field.
func UserIDEqualFold(v string) predicate.PracticeAttempt {
	return predicate.PracticeAttempt(sql.FieldEqualFold(FieldUserID, v))
}

// UserIDContainsFold applies the ContainsFold predicate on the "user_id" field.
func UserIDContainsFold(v string) predicate.PracticeAttempt {
	return predicate.PracticeAttempt(sql.FieldContainsFold(FieldUserID, v))
}

// SkillEQ applies the EQ predicate on the "skill" field.
func SkillEQ(v string) predicate.PracticeAttempt {
	return predicate.PracticeAttempt(sql.FieldEQ(FieldSkill, v))
}

// SkillNEQ applies the NEQ predicate on the "skill" field.
func SkillNEQ(v string) predicate.PracticeAttempt {
	return predicate.PracticeAttempt(sql.FieldNEQ(FieldSkill, v))
}

// SkillIn applies the In predicate on the "skill" field.
func SkillIn(vs ...string) predicate.PracticeAttempt {
	return predicate.PracticeAttempt(sql.FieldIn(FieldSkill, vs...))
}

// SkillNotIn applies the NotIn predicate on the "skill" field.
func SkillNotIn(vs ...string) predicate.PracticeAttempt {
	return predicate.PracticeAttempt(sql.FieldNotIn(FieldSkill, vs...))
}

// SkillGT applies the GT predicate on the "skill" field.
func SkillGT(v string) predicate.PracticeAttempt {
	return predicate.PracticeAttempt(sql.FieldGT(FieldSkill, v))
}

// SkillGTE applies the GTE predicate on the "skill" field.
func SkillGTE(v string) predicate.PracticeAttempt {
	return predicate.PracticeAttempt(sql.FieldGTE(FieldSkill, v))
}

// SkillLT applies the LT predicate on the "skill" field.
func SkillLT(v string) predicate.PracticeAttempt {
	return predicate.PracticeAttempt(sql.FieldLT(FieldSkill, v))
}

// SkillLTE applies the LTE predicate on the "skill" field.
func SkillLTE(v string) predicate.PracticeAttempt {
	return predicate.PracticeAttempt(sql.FieldLTE(FieldSkill, v))
}

// SkillContains applies the Contains predicate on the "skill" field.
func SkillContains(v string) predicate.PracticeAttempt {
	return predicate.PracticeAttempt(sql.FieldContains(FieldSkill, v))
}

// SkillHasPrefix applies the HasPrefix predicate on the "skill" field.
func SkillHasPrefix(v string) predicate.PracticeAttempt {
	return predicate.PracticeAttempt(sql.FieldHasPrefix(FieldSkill, v))
}

// SkillHasSuffix applies the HasSuffix predicate on the "skill" field.
func SkillHasSuffix(v string) predicate.PracticeAttempt {
	return predicate.PracticeAttempt(sql.FieldHasSuffix(FieldSkill, v))
}

// SkillEqualFold applies the EqualFold predicate on the "skill" field.
func SkillEqualFold(v string) predicate.PracticeAttempt {
	return predicate.PracticeAttempt(sql.FieldEqualFold(FieldSkill, v))
}

// SkillContainsFold applies the ContainsFold predicate on the "skill" field.
func SkillContainsFold(v string) predicate.PracticeAttempt {
	return predicate.PracticeAttempt(sql.FieldContainsFold(FieldSkill, v))
}

// TopicEQ applies the EQ predicate on the "topic" field.
func TopicEQ(v string) predicate.PracticeAttempt {
	return predicate.PracticeAttempt(sql.FieldEQ(FieldTopic, v))
}

// TopicNEQ applies the NEQ predicate on the "topic" field.
func TopicNEQ(v string) predicate.PracticeAttempt {
	return predicate.PracticeAttempt(sql.FieldNEQ(FieldTopic, v))
}

// TopicIn applies the In predicate on the "topic" field.
func TopicIn(vs ...string) predicate.PracticeAttempt {
	return predicate.PracticeAttempt(sql.FieldIn(FieldTopic, vs...))
}

// TopicNotIn applies the NotIn predicate on the "topic" field.
func TopicNotIn(vs ...string) predicate.PracticeAttempt {
	return predicate.PracticeAttempt(sql.FieldNotIn(FieldTopic, vs...))
}

// TopicGT applies the GT predicate on the "topic" field.
func TopicGT(v string) predicate.PracticeAttempt {
	return predicate.PracticeAttempt(sql.FieldGT(FieldTopic, v))
}

// TopicGTE applies the GTE predicate on the "topic" field.
func TopicGTE(v string) predicate.PracticeAttempt {
	return predicate.PracticeAttempt(sql.FieldGTE(FieldTopic, v))
}

// TopicLT applies the LT predicate on the "topic" field.
func TopicLT(v string) predicate.PracticeAttempt {
	return predicate.PracticeAttempt(sql.FieldLT(FieldTopic, v))
}

// TopicLTE applies the LTE predicate on the "topic" field.
func TopicLTE(v string) predicate.PracticeAttempt {
	return predicate.PracticeAttempt(sql.FieldLTE(FieldTopic, v))
}

// TopicContains applies the Contains predicate on the "topic" field.
func TopicContains(v string) predicate.PracticeAttempt {
	return predicate.PracticeAttempt(sql.FieldContains(FieldTopic, v))
}

// TopicHasPrefix applies the HasPrefix predicate on the "topic" field.
func TopicHasPrefix(v string) predicate.PracticeAttempt {
	return predicate.PracticeAttempt(sql.FieldHasPrefix(FieldTopic, v))
}

// TopicHasSuffix applies the HasSuffix predicate on the "topic" field.
func TopicHasSuffix(v string) predicate.PracticeAttempt {
	return predicate.PracticeAttempt(sql.FieldHasSuffix(FieldTopic, v))
}

// TopicEqualFold applies the EqualFold predicate on the "topic" field.
func TopicEqualFold(v string) predicate.PracticeAttempt {
	return predicate.PracticeAttempt(sql.FieldEqualFold(FieldTopic, v))
}

// TopicContainsFold applies the ContainsFold predicate on the "topic" field.
func TopicContainsFold(v string) predicate.PracticeAttempt {
	return predicate.PracticeAttempt(sql.FieldContainsFold(FieldTopic, v))
}

// ScoreEQ applies the EQ predicate on the "score" field.
func ScoreEQ(v float64) predicate.PracticeAttempt {
	return predicate.PracticeAttempt(sql.FieldEQ(FieldScore, v))
}

// ScoreNEQ applies the NEQ predicate on the "score" field.
func ScoreNEQ(v float64) predicate.PracticeAttempt {
	return predicate.PracticeAttempt(sql.FieldNEQ(FieldScore, v))
}

// ScoreIn applies the In predicate on the "score" field.
func ScoreIn(vs ...float64) predicate.PracticeAttempt {
	return predicate.PracticeAttempt(sql.FieldIn(FieldScore, vs...))
}

// ScoreNotIn applies the NotIn predicate on the "score" field.
func ScoreNotIn(vs ...float64) predicate.PracticeAttempt {
	return predicate.PracticeAttempt(sql.FieldNotIn(FieldScore, vs...))
}

// ScoreGT applies the GT predicate on the "score" field.
func ScoreGT(v float64) predicate.PracticeAttempt {
	return predicate.PracticeAttempt(sql.FieldGT(FieldScore, v))
}

// ScoreGTE applies the GTE predicate on the "score" field.
func ScoreGTE(v float64) predicate.PracticeAttempt {
	return predicate.PracticeAttempt(sql.FieldGTE(FieldScore, v))
}

// ScoreLT applies the LT predicate on the "score" field.
func ScoreLT(v float64) predicate.PracticeAttempt {
	return predicate.PracticeAttempt(sql.FieldLT(FieldScore, v))
}

// ScoreLTE applies the LTE predicate on the "score" field.
func ScoreLTE(v float64) predicate.PracticeAttempt {
	return predicate.PracticeAttempt(sql.FieldLTE(FieldScore, v))
}

// CorrectCountEQ applies the EQ predicate on the "correct_count" field.
func CorrectCountEQ(v int) predicate.PracticeAttempt {
	return predicate.PracticeAttempt(sql.FieldEQ(FieldCorrectCount, v))
}

// CorrectCountNEQ applies the NEQ predicate on the "correct_count" field.
func CorrectCountNEQ(v int) predicate.PracticeAttempt {
	return predicate.PracticeAttempt(sql.FieldNEQ(FieldCorrectCount, v))
}

// CorrectCountIn applies the In predicate on the "correct_count" field.
func CorrectCountIn(vs ...int) predicate.PracticeAttempt {
	return predicate.PracticeAttempt(sql.FieldIn(FieldCorrectCount, vs...))
}

// CorrectCountNotIn applies the NotIn predicate on the "correct_count" field.
func CorrectCountNotIn(vs ...int) predicate.PracticeAttempt {
	return predicate.PracticeAttempt(sql.FieldNotIn(FieldCorrectCount, vs...))
}

// CorrectCountGT applies the GT predicate on the "correct_count" field.
func CorrectCountGT(v int) predicate.PracticeAttempt {
	return predicate.PracticeAttempt(sql.FieldGT(FieldCorrectCount, v))
}

// CorrectCountGTE applies the GTE predicate on the "correct_count" field.
func CorrectCountGTE(v int) predicate.PracticeAttempt {
	return predicate.PracticeAttempt(sql.FieldGTE(FieldCorrectCount, v))
}

// CorrectCountLT applies the LT predicate on the "correct_count" field.
func CorrectCountLT(v int) predicate.PracticeAttempt {
	return predicate.PracticeAttempt(sql.FieldLT(FieldCorrectCount, v))
}

// CorrectCountLTE applies the LTE predicate on the "correct_count" field.
func CorrectCountLTE(v int) predicate.PracticeAttempt {
	return predicate.PracticeAttempt(sql.FieldLTE(FieldCorrectCount, v))
}

// TotalQuestionsEQ applies the EQ predicate on the "total_questions" field.
func TotalQuestionsEQ(v int) predicate.PracticeAttempt {
	return predicate.PracticeAttempt(sql.FieldEQ(FieldTotalQuestions, v))
}

// TotalQuestionsNEQ applies the NEQ predicate on the "total_questions" field.
func TotalQuestionsNEQ(v int) predicate.PracticeAttempt {
	return predicate.PracticeAttempt(sql.FieldNEQ(FieldTotalQuestions, v))
}

// TotalQuestionsIn applies the In predicate on the "total_questions" field.
func TotalQuestionsIn(vs ...int) predicate.PracticeAttempt {
	return predicate.PracticeAttempt(sql.FieldIn(FieldTotalQuestions, vs...))
}

// TotalQuestionsNotIn applies the NotIn predicate on the "total_questions" field.
func TotalQuestionsNotIn(vs ...int) predicate.PracticeAttempt {
	return predicate.PracticeAttempt(sql.FieldNotIn(FieldTotalQuestions, vs...))
}

// TotalQuestionsGT applies the GT predicate on the "total_questions" field.
func TotalQuestionsGT(v int) predicate.PracticeAttempt {
	return predicate.PracticeAttempt(sql.FieldGT(FieldTotalQuestions, v))
}

// TotalQuestionsGTE applies the GTE predicate on the "total_questions" field.
func TotalQuestionsGTE(v int) predicate.PracticeAttempt {
	return predicate.PracticeAttempt(sql.FieldGTE(FieldTotalQuestions, v))
}

// TotalQuestionsLT applies the LT predicate on the "total_questions" field.
func TotalQuestionsLT(v int) predicate.PracticeAttempt {
	return predicate.PracticeAttempt(sql.FieldLT(FieldTotalQuestions, v))
}

// TotalQuestionsLTE applies the LTE predicate on the "total_questions" field.
func TotalQuestionsLTE(v int) predicate.PracticeAttempt {
	return predicate.PracticeAttempt(sql.FieldLTE(FieldTotalQuestions, v))
}

// TimeTakenSecsEQ applies the EQ predicate on the "time_taken_secs" field.
func TimeTakenSecsEQ(v int) predicate.PracticeAttempt {
	return predicate.PracticeAttempt(sql.FieldEQ(FieldTimeTakenSecs, v))
}

// TimeTakenSecsNEQ applies the NEQ predicate on the "time_taken_secs" field.
func TimeTakenSecsNEQ(v int) predicate.PracticeAttempt {
	return predicate.PracticeAttempt(sql.FieldNEQ(FieldTimeTakenSecs, v))
}

// TimeTakenSecsIn applies the In predicate on the "time_taken_secs" field.
func TimeTakenSecsIn(vs ...int) predicate.PracticeAttempt {
	return predicate.PracticeAttempt(sql.FieldIn(FieldTimeTakenSecs, vs...))
}

// TimeTakenSecsNotIn applies the NotIn predicate on the "time_taken_secs" field.
func TimeTakenSecsNotIn(vs ...int) predicate.PracticeAttempt {
	return predicate.PracticeAttempt(sql.FieldNotIn(FieldTimeTakenSecs, vs...))
}

// TimeTakenSecsGT applies the GT predicate on the "time_taken_secs" field.
func TimeTakenSecsGT(v int) predicate.PracticeAttempt {
	return predicate.PracticeAttempt(sql.FieldGT(FieldTimeTakenSecs, v))
}

// TimeTakenSecsGTE applies the GTE predicate on the "time_taken_secs" field.
func TimeTakenSecsGTE(v int) predicate.PracticeAttempt {
	return predicate.PracticeAttempt(sql.FieldGTE(FieldTimeTakenSecs, v))
}

// TimeTakenSecsLT applies the LT predicate on the "time_taken_secs" field.
func TimeTakenSecsLT(v int) predicate.PracticeAttempt {
	return predicate.PracticeAttempt(sql.FieldLT(FieldTimeTakenSecs, v))
}

// TimeTakenSecsLTE applies the LTE predicate on the "time_taken_secs" field.
func TimeTakenSecsLTE(v int) predicate.PracticeAttempt {
	return predicate.PracticeAttempt(sql.FieldLTE(FieldTimeTakenSecs, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.PracticeAttempt) predicate.PracticeAttempt {
	return predicate.PracticeAttempt(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.PracticeAttempt) predicate.PracticeAttempt {
	return predicate.PracticeAttempt(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.PracticeAttempt) predicate.PracticeAttempt {
	return predicate.PracticeAttempt(sql.NotPredicates(p))
}
