// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/plaroindia/Pearl/ent/checkpointresult"
	"github.com/plaroindia/Pearl/ent/learningpath"
	"github.com/plaroindia/Pearl/ent/llmrequestevent"
	"github.com/plaroindia/Pearl/ent/practiceattempt"
	"github.com/plaroindia/Pearl/ent/schema"
	"github.com/plaroindia/Pearl/ent/session"
	"github.com/plaroindia/Pearl/ent/skillprofile"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	checkpointresultMixin := schema.CheckpointResult{}.Mixin()
	checkpointresultMixinFields0 := checkpointresultMixin[0].Fields()
	_ = checkpointresultMixinFields0
	checkpointresultFields := schema.CheckpointResult{}.Fields()
	_ = checkpointresultFields
	// checkpointresultDescTimestamp is the schema descriptor for timestamp field.
	checkpointresultDescTimestamp := checkpointresultMixinFields0[1].Descriptor()
	// checkpointresult.DefaultTimestamp holds the default value on creation for the timestamp field.
	checkpointresult.DefaultTimestamp = checkpointresultDescTimestamp.Default.(func() time.Time)
	// checkpointresultDescSessionID is the schema descriptor for session_id field.
	checkpointresultDescSessionID := checkpointresultFields[0].Descriptor()
	// checkpointresult.SessionIDValidator is a validator for the "session_id" field. It is called by the builders before save.
	checkpointresult.SessionIDValidator = checkpointresultDescSessionID.Validators[0].(func(string) error)
	// checkpointresultDescUserID is the schema descriptor for user_id field.
	checkpointresultDescUserID := checkpointresultFields[1].Descriptor()
	// checkpointresult.UserIDValidator is a validator for the "user_id" field. It is called by the builders before save.
	checkpointresult.UserIDValidator = checkpointresultDescUserID.Validators[0].(func(string) error)
	// checkpointresultDescSkill is the schema descriptor for skill field.
	checkpointresultDescSkill := checkpointresultFields[2].Descriptor()
	// checkpointresult.SkillValidator is a validator for the "skill" field. It is called by the builders before save.
	checkpointresult.SkillValidator = checkpointresultDescSkill.Validators[0].(func(string) error)
	llmrequesteventMixin := schema.LLMRequestEvent{}.Mixin()
	llmrequesteventMixinFields0 := llmrequesteventMixin[0].Fields()
	_ = llmrequesteventMixinFields0
	llmrequesteventFields := schema.LLMRequestEvent{}.Fields()
	_ = llmrequesteventFields
	// llmrequesteventDescTimestamp is the schema descriptor for timestamp field.
	llmrequesteventDescTimestamp := llmrequesteventMixinFields0[1].Descriptor()
	// llmrequestevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	llmrequestevent.DefaultTimestamp = llmrequesteventDescTimestamp.Default.(func() time.Time)
	// llmrequesteventDescInputTokens is the schema descriptor for input_tokens field.
	llmrequesteventDescInputTokens := llmrequesteventFields[3].Descriptor()
	// llmrequestevent.DefaultInputTokens holds the default value on creation for the input_tokens field.
	llmrequestevent.DefaultInputTokens = llmrequesteventDescInputTokens.Default.(int)
	// llmrequesteventDescOutputTokens is the schema descriptor for output_tokens field.
	llmrequesteventDescOutputTokens := llmrequesteventFields[4].Descriptor()
	// llmrequestevent.DefaultOutputTokens holds the default value on creation for the output_tokens field.
	llmrequestevent.DefaultOutputTokens = llmrequesteventDescOutputTokens.Default.(int)
	// llmrequesteventDescLatencyMs is the schema descriptor for latency_ms field.
	llmrequesteventDescLatencyMs := llmrequesteventFields[5].Descriptor()
	// llmrequestevent.DefaultLatencyMs holds the default value on creation for the latency_ms field.
	llmrequestevent.DefaultLatencyMs = llmrequesteventDescLatencyMs.Default.(int64)
	// llmrequesteventDescErrorMessage is the schema descriptor for error_message field.
	llmrequesteventDescErrorMessage := llmrequesteventFields[7].Descriptor()
	// llmrequestevent.DefaultErrorMessage holds the default value on creation for the error_message field.
	llmrequestevent.DefaultErrorMessage = llmrequesteventDescErrorMessage.Default.(string)
	learningpathFields := schema.LearningPath{}.Fields()
	_ = learningpathFields
	// learningpathDescSessionID is the schema descriptor for session_id field.
	learningpathDescSessionID := learningpathFields[0].Descriptor()
	// learningpath.SessionIDValidator is a validator for the "session_id" field. It is called by the builders before save.
	learningpath.SessionIDValidator = learningpathDescSessionID.Validators[0].(func(string) error)
	// learningpathDescUserID is the schema descriptor for user_id field.
	learningpathDescUserID := learningpathFields[1].Descriptor()
	// learningpath.UserIDValidator is a validator for the "user_id" field. It is called by the builders before save.
	learningpath.UserIDValidator = learningpathDescUserID.Validators[0].(func(string) error)
	// learningpathDescSkill is the schema descriptor for skill field.
	learningpathDescSkill := learningpathFields[2].Descriptor()
	// learningpath.SkillValidator is a validator for the "skill" field. It is called by the builders before save.
	learningpath.SkillValidator = learningpathDescSkill.Validators[0].(func(string) error)
	// learningpathDescCurrentModule is the schema descriptor for current_module field.
	learningpathDescCurrentModule := learningpathFields[5].Descriptor()
	// learningpath.DefaultCurrentModule holds the default value on creation for the current_module field.
	learningpath.DefaultCurrentModule = learningpathDescCurrentModule.Default.(int)
	// learningpathDescCompleted is the schema descriptor for completed field.
	learningpathDescCompleted := learningpathFields[6].Descriptor()
	// learningpath.DefaultCompleted holds the default value on creation for the completed field.
	learningpath.DefaultCompleted = learningpathDescCompleted.Default.(bool)
	// learningpathDescVersion is the schema descriptor for version field.
	learningpathDescVersion := learningpathFields[8].Descriptor()
	// learningpath.DefaultVersion holds the default value on creation for the version field.
	learningpath.DefaultVersion = learningpathDescVersion.Default.(int)
	// learningpathDescCreatedAt is the schema descriptor for created_at field.
	learningpathDescCreatedAt := learningpathFields[9].Descriptor()
	// learningpath.DefaultCreatedAt holds the default value on creation for the created_at field.
	learningpath.DefaultCreatedAt = learningpathDescCreatedAt.Default.(func() time.Time)
	// learningpathDescUpdatedAt is the schema descriptor for updated_at field.
	learningpathDescUpdatedAt := learningpathFields[10].Descriptor()
	// learningpath.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	learningpath.DefaultUpdatedAt = learningpathDescUpdatedAt.Default.(func() time.Time)
	// learningpath.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	learningpath.UpdateDefaultUpdatedAt = learningpathDescUpdatedAt.UpdateDefault.(func() time.Time)
	practiceattemptMixin := schema.PracticeAttempt{}.Mixin()
	practiceattemptMixinFields0 := practiceattemptMixin[0].Fields()
	_ = practiceattemptMixinFields0
	practiceattemptFields := schema.PracticeAttempt{}.Fields()
	_ = practiceattemptFields
	// practiceattemptDescTimestamp is the schema descriptor for timestamp field.
	practiceattemptDescTimestamp := practiceattemptMixinFields0[1].Descriptor()
	// practiceattempt.DefaultTimestamp holds the default value on creation for the timestamp field.
	practiceattempt.DefaultTimestamp = practiceattemptDescTimestamp.Default.(func() time.Time)
	// practiceattemptDescUserID is the schema descriptor for user_id field.
	practiceattemptDescUserID := practiceattemptFields[0].Descriptor()
	// practiceattempt.UserIDValidator is a validator for the "user_id" field. It is called by the builders before save.
	practiceattempt.UserIDValidator = practiceattemptDescUserID.Validators[0].(func(string) error)
	// practiceattemptDescSkill is the schema descriptor for skill field.
	practiceattemptDescSkill := practiceattemptFields[1].Descriptor()
	// practiceattempt.SkillValidator is a validator for the "skill" field. It is called by the builders before save.
	practiceattempt.SkillValidator = practiceattemptDescSkill.Validators[0].(func(string) error)
	// practiceattemptDescTopic is the schema descriptor for topic field.
	practiceattemptDescTopic := practiceattemptFields[2].Descriptor()
	// practiceattempt.DefaultTopic holds the default value on creation for the topic field.
	practiceattempt.DefaultTopic = practiceattemptDescTopic.Default.(string)
	// practiceattemptDescTimeTakenSecs is the schema descriptor for time_taken_secs field.
	practiceattemptDescTimeTakenSecs := practiceattemptFields[6].Descriptor()
	// practiceattempt.DefaultTimeTakenSecs holds the default value on creation for the time_taken_secs field.
	practiceattempt.DefaultTimeTakenSecs = practiceattemptDescTimeTakenSecs.Default.(int)
	sessionFields := schema.Session{}.Fields()
	_ = sessionFields
	// sessionDescSessionID is the schema descriptor for session_id field.
	sessionDescSessionID := sessionFields[0].Descriptor()
	// session.SessionIDValidator is a validator for the "session_id" field. It is called by the builders before save.
	session.SessionIDValidator = sessionDescSessionID.Validators[0].(func(string) error)
	// sessionDescUserID is the schema descriptor for user_id field.
	sessionDescUserID := sessionFields[1].Descriptor()
	// session.UserIDValidator is a validator for the "user_id" field. It is called by the builders before save.
	session.UserIDValidator = sessionDescUserID.Validators[0].(func(string) error)
	// sessionDescCreatedAt is the schema descriptor for created_at field.
	sessionDescCreatedAt := sessionFields[4].Descriptor()
	// session.DefaultCreatedAt holds the default value on creation for the created_at field.
	session.DefaultCreatedAt = sessionDescCreatedAt.Default.(func() time.Time)
	skillprofileFields := schema.SkillProfile{}.Fields()
	_ = skillprofileFields
	// skillprofileDescUserID is the schema descriptor for user_id field.
	skillprofileDescUserID := skillprofileFields[0].Descriptor()
	// skillprofile.UserIDValidator is a validator for the "user_id" field. It is called by the builders before save.
	skillprofile.UserIDValidator = skillprofileDescUserID.Validators[0].(func(string) error)
	// skillprofileDescSkillName is the schema descriptor for skill_name field.
	skillprofileDescSkillName := skillprofileFields[1].Descriptor()
	// skillprofile.SkillNameValidator is a validator for the "skill_name" field. It is called by the builders before save.
	skillprofile.SkillNameValidator = skillprofileDescSkillName.Validators[0].(func(string) error)
	// skillprofileDescConfidence is the schema descriptor for confidence field.
	skillprofileDescConfidence := skillprofileFields[2].Descriptor()
	// skillprofile.DefaultConfidence holds the default value on creation for the confidence field.
	skillprofile.DefaultConfidence = skillprofileDescConfidence.Default.(float64)
	// skillprofileDescPracticeCount is the schema descriptor for practice_count field.
	skillprofileDescPracticeCount := skillprofileFields[4].Descriptor()
	// skillprofile.DefaultPracticeCount holds the default value on creation for the practice_count field.
	skillprofile.DefaultPracticeCount = skillprofileDescPracticeCount.Default.(int)
	// skillprofileDescCreatedAt is the schema descriptor for created_at field.
	skillprofileDescCreatedAt := skillprofileFields[6].Descriptor()
	// skillprofile.DefaultCreatedAt holds the default value on creation for the created_at field.
	skillprofile.DefaultCreatedAt = skillprofileDescCreatedAt.Default.(func() time.Time)
	// skillprofileDescUpdatedAt is the schema descriptor for updated_at field.
	skillprofileDescUpdatedAt := skillprofileFields[7].Descriptor()
	// skillprofile.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	skillprofile.DefaultUpdatedAt = skillprofileDescUpdatedAt.Default.(func() time.Time)
	// skillprofile.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	skillprofile.UpdateDefaultUpdatedAt = skillprofileDescUpdatedAt.UpdateDefault.(func() time.Time)
}
