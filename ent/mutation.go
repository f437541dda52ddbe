// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/plaroindia/Pearl/ent/checkpointresult"
	"github.com/plaroindia/Pearl/ent/learningpath"
	"github.com/plaroindia/Pearl/ent/llmrequestevent"
	"github.com/plaroindia/Pearl/ent/practiceattempt"
	"github.com/plaroindia/Pearl/ent/predicate"
	"github.com/plaroindia/Pearl/ent/schema"
	"github.com/plaroindia/Pearl/ent/session"
	"github.com/plaroindia/Pearl/ent/skillprofile"
)

const (
	// Operation types.
	OpCreate    = ent.OpCreate
	OpDelete    = ent.OpDelete
	OpDeleteOne = ent.OpDeleteOne
	OpUpdate    = ent.OpUpdate
	OpUpdateOne = ent.OpUpdateOne

	// Node types.
	TypeCheckpointResult = "CheckpointResult"
	TypeLLMRequestEvent  = "LLMRequestEvent"
	TypeLearningPath     = "LearningPath"
	TypePracticeAttempt  = "PracticeAttempt"
	TypeSession          = "Session"
	TypeSkillProfile     = "SkillProfile"
)

// CheckpointResultMutation represents an operation that mutates the CheckpointResult nodes in the graph.
type CheckpointResultMutation struct {
	config
	op                 Op
	typ                string
	id                 *int
	sequence           *int64
	addsequence        *int64
	timestamp          *time.Time
	session_id         *string
	user_id            *string
	skill              *string
	module_id          *int
	addmodule_id       *int
	score              *float64
	addscore           *float64
	passed             *bool
	correct_count      *int
	addcorrect_count   *int
	total_questions    *int
	addtotal_questions *int
	answers            *[]int
	appendanswers      []int
	clearedFields      map[string]struct{}
	done               bool
	oldValue           func(context.Context) (*CheckpointResult, error)
	predicates         []predicate.CheckpointResult
}

var _ ent.Mutation = (*CheckpointResultMutation)(nil)

// checkpointresultOption allows management of the mutation configuration using functional options.
type checkpointresultOption func(*CheckpointResultMutation)

// newCheckpointResultMutation creates new mutation for the CheckpointResult entity.
func newCheckpointResultMutation(c config, op Op, opts ...checkpointresultOption) *CheckpointResultMutation {
	m := &CheckpointResultMutation{
		config:        c,
		op:            op,
		typ:           TypeCheckpointResult,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withCheckpointResultID sets the ID field of the mutation.
func withCheckpointResultID(id int) checkpointresultOption {
	return func(m *CheckpointResultMutation) {
		var (
			err   error
			once  sync.Once
			value *CheckpointResult
		)
		m.oldValue = func(ctx context.Context) (*CheckpointResult, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().CheckpointResult.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withCheckpointResult sets the old CheckpointResult of the mutation.
func withCheckpointResult(node *CheckpointResult) checkpointresultOption {
	return func(m *CheckpointResultMutation) {
		m.oldValue = func(context.Context) (*CheckpointResult, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m CheckpointResultMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m CheckpointResultMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *CheckpointResultMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *CheckpointResultMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().CheckpointResult.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetSequence sets the "sequence" field.
func (m *CheckpointResultMutation) SetSequence(i int64) {
	m.sequence = &i
	m.addsequence = nil
}

// Sequence returns the value of the "sequence" field in the mutation.
func (m *CheckpointResultMutation) Sequence() (r int64, exists bool) {
	v := m.sequence
	if v == nil {
		return
	}
	return *v, true
}

// OldSequence returns the old "sequence" field's value of the CheckpointResult entity.
// If the CheckpointResult object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CheckpointResultMutation) OldSequence(ctx context.Context) (v int64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSequence is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSequence requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSequence: %w", err)
	}
	return oldValue.Sequence, nil
}

// AddSequence adds i to the "sequence" field.
func (m *CheckpointResultMutation) AddSequence(i int64) {
	if m.addsequence != nil {
		*m.addsequence += i
	} else {
		m.addsequence = &i
	}
}

// AddedSequence returns the value that was added to the "sequence" field in this mutation.
func (m *CheckpointResultMutation) AddedSequence() (r int64, exists bool) {
	v := m.addsequence
	if v == nil {
		return
	}
	return *v, true
}

// ResetSequence resets all changes to the "sequence" field.
func (m *CheckpointResultMutation) ResetSequence() {
	m.sequence = nil
	m.addsequence = nil
}

// SetTimestamp sets the "timestamp" field.
func (m *CheckpointResultMutation) SetTimestamp(t time.Time) {
	m.timestamp = &t
}

// Timestamp returns the value of the "timestamp" field in the mutation.
func (m *CheckpointResultMutation) Timestamp() (r time.Time, exists bool) {
	v := m.timestamp
	if v == nil {
		return
	}
	return *v, true
}

// OldTimestamp returns the old "timestamp" field's value of the CheckpointResult entity.
// If the CheckpointResult object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CheckpointResultMutation) OldTimestamp(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTimestamp is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTimestamp requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTimestamp: %w", err)
	}
	return oldValue.Timestamp, nil
}

// ResetTimestamp resets all changes to the "timestamp" field.
func (m *CheckpointResultMutation) ResetTimestamp() {
	m.timestamp = nil
}

// SetSessionID sets the "session_id" field.
func (m *CheckpointResultMutation) SetSessionID(s string) {
	m.session_id = &s
}

// SessionID returns the value of the "session_id" field in the mutation.
func (m *CheckpointResultMutation) SessionID() (r string, exists bool) {
	v := m.session_id
	if v == nil {
		return
	}
	return *v, true
}

// OldSessionID returns the old "session_id" field's value of the CheckpointResult entity.
// If the CheckpointResult object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CheckpointResultMutation) OldSessionID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSessionID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSessionID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSessionID: %w", err)
	}
	return oldValue.SessionID, nil
}

// ResetSessionID resets all changes to the "session_id" field.
func (m *CheckpointResultMutation) ResetSessionID() {
	m.session_id = nil
}

// SetUserID sets the "user_id" field.
func (m *CheckpointResultMutation) SetUserID(s string) {
	m.user_id = &s
}

// UserID returns the value of the "user_id" field in the mutation.
func (m *CheckpointResultMutation) UserID() (r string, exists bool) {
	v := m.user_id
	if v == nil {
		return
	}
	return *v, true
}

// OldUserID returns the old "user_id" field's value of the CheckpointResult entity.
// If the CheckpointResult object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CheckpointResultMutation) OldUserID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUserID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUserID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUserID: %w", err)
	}
	return oldValue.UserID, nil
}

// ResetUserID resets all changes to the "user_id" field.
func (m *CheckpointResultMutation) ResetUserID() {
	m.user_id = nil
}

// SetSkill sets the "skill" field.
func (m *CheckpointResultMutation) SetSkill(s string) {
	m.skill = &s
}

// Skill returns the value of the "skill" field in the mutation.
func (m *CheckpointResultMutation) Skill() (r string, exists bool) {
	v := m.skill
	if v == nil {
		return
	}
	return *v, true
}

// OldSkill returns the old "skill" field's value of the CheckpointResult entity.
// If the CheckpointResult object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CheckpointResultMutation) OldSkill(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSkill is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSkill requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSkill: %w", err)
	}
	return oldValue.Skill, nil
}

// ResetSkill resets all changes to the "skill" field.
func (m *CheckpointResultMutation) ResetSkill() {
	m.skill = nil
}

// SetModuleID sets the "module_id" field.
func (m *CheckpointResultMutation) SetModuleID(i int) {
	m.module_id = &i
	m.addmodule_id = nil
}

// ModuleID returns the value of the "module_id" field in the mutation.
func (m *CheckpointResultMutation) ModuleID() (r int, exists bool) {
	v := m.module_id
	if v == nil {
		return
	}
	return *v, true
}

// OldModuleID returns the old "module_id" field's value of the CheckpointResult entity.
// If the CheckpointResult object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CheckpointResultMutation) OldModuleID(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldModuleID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldModuleID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldModuleID: %w", err)
	}
	return oldValue.ModuleID, nil
}

// AddModuleID adds i to the "module_id" field.
func (m *CheckpointResultMutation) AddModuleID(i int) {
	if m.addmodule_id != nil {
		*m.addmodule_id += i
	} else {
		m.addmodule_id = &i
	}
}

// AddedModuleID returns the value that was added to the "module_id" field in this mutation.
func (m *CheckpointResultMutation) AddedModuleID() (r int, exists bool) {
	v := m.addmodule_id
	if v == nil {
		return
	}
	return *v, true
}

// ResetModuleID resets all changes to the "module_id" field.
func (m *CheckpointResultMutation) ResetModuleID() {
	m.module_id = nil
	m.addmodule_id = nil
}

// SetScore sets the "score" field.
func (m *CheckpointResultMutation) SetScore(f float64) {
	m.score = &f
	m.addscore = nil
}

// Score returns the value of the "score" field in the mutation.
func (m *CheckpointResultMutation) Score() (r float64, exists bool) {
	v := m.score
	if v == nil {
		return
	}
	return *v, true
}

// OldScore returns the old "score" field's value of the CheckpointResult entity.
// If the CheckpointResult object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CheckpointResultMutation) OldScore(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldScore is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldScore requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldScore: %w", err)
	}
	return oldValue.Score, nil
}

// AddScore adds f to the "score" field.
func (m *CheckpointResultMutation) AddScore(f float64) {
	if m.addscore != nil {
		*m.addscore += f
	} else {
		m.addscore = &f
	}
}

// AddedScore returns the value that was added to the "score" field in this mutation.
func (m *CheckpointResultMutation) AddedScore() (r float64, exists bool) {
	v := m.addscore
	if v == nil {
		return
	}
	return *v, true
}

// ResetScore resets all changes to the "score" field.
func (m *CheckpointResultMutation) ResetScore() {
	m.score = nil
	m.addscore = nil
}

// SetPassed sets the "passed" field.
func (m *CheckpointResultMutation) SetPassed(b bool) {
	m.passed = &b
}

// Passed returns the value of the "passed" field in the mutation.
func (m *CheckpointResultMutation) Passed() (r bool, exists bool) {
	v := m.passed
	if v == nil {
		return
	}
	return *v, true
}

// OldPassed returns the old "passed" field's value of the CheckpointResult entity.
// If the CheckpointResult object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CheckpointResultMutation) OldPassed(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPassed is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPassed requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPassed: %w", err)
	}
	return oldValue.Passed, nil
}

// ResetPassed resets all changes to the "passed" field.
func (m *CheckpointResultMutation) ResetPassed() {
	m.passed = nil
}

// SetCorrectCount sets the "correct_count" field.
func (m *CheckpointResultMutation) SetCorrectCount(i int) {
	m.correct_count = &i
	m.addcorrect_count = nil
}

// CorrectCount returns the value of the "correct_count" field in the mutation.
func (m *CheckpointResultMutation) CorrectCount() (r int, exists bool) {
	v := m.correct_count
	if v == nil {
		return
	}
	return *v, true
}

// OldCorrectCount returns the old "correct_count" field's value of the CheckpointResult entity.
// If the CheckpointResult object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CheckpointResultMutation) OldCorrectCount(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCorrectCount is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCorrectCount requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCorrectCount: %w", err)
	}
	return oldValue.CorrectCount, nil
}

// AddCorrectCount adds i to the "correct_count" field.
func (m *CheckpointResultMutation) AddCorrectCount(i int) {
	if m.addcorrect_count != nil {
		*m.addcorrect_count += i
	} else {
		m.addcorrect_count = &i
	}
}

// AddedCorrectCount returns the value that was added to the "correct_count" field in this mutation.
func (m *CheckpointResultMutation) AddedCorrectCount() (r int, exists bool) {
	v := m.addcorrect_count
	if v == nil {
		return
	}
	return *v, true
}

// ResetCorrectCount resets all changes to the "correct_count" field.
func (m *CheckpointResultMutation) ResetCorrectCount() {
	m.correct_count = nil
	m.addcorrect_count = nil
}

// SetTotalQuestions sets the "total_questions" field.
func (m *CheckpointResultMutation) SetTotalQuestions(i int) {
	m.total_questions = &i
	m.addtotal_questions = nil
}

// TotalQuestions returns the value of the "total_questions" field in the mutation.
func (m *CheckpointResultMutation) TotalQuestions() (r int, exists bool) {
	v := m.total_questions
	if v == nil {
		return
	}
	return *v, true
}

// OldTotalQuestions returns the old "total_questions" field's value of the CheckpointResult entity.
// If the CheckpointResult object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CheckpointResultMutation) OldTotalQuestions(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTotalQuestions is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTotalQuestions requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTotalQuestions: %w", err)
	}
	return oldValue.TotalQuestions, nil
}

// AddTotalQuestions adds i to the "total_questions" field.
func (m *CheckpointResultMutation) AddTotalQuestions(i int) {
	if m.addtotal_questions != nil {
		*m.addtotal_questions += i
	} else {
		m.addtotal_questions = &i
	}
}

// AddedTotalQuestions returns the value that was added to the "total_questions" field in this mutation.
func (m *CheckpointResultMutation) AddedTotalQuestions() (r int, exists bool) {
	v := m.addtotal_questions
	if v == nil {
		return
	}
	return *v, true
}

// ResetTotalQuestions resets all changes to the "total_questions" field.
func (m *CheckpointResultMutation) ResetTotalQuestions() {
	m.total_questions = nil
	m.addtotal_questions = nil
}

// SetAnswers sets the "answers" field.
func (m *CheckpointResultMutation) SetAnswers(i []int) {
	m.answers = &i
	m.appendanswers = nil
}

// Answers returns the value of the "answers" field in the mutation.
func (m *CheckpointResultMutation) Answers() (r []int, exists bool) {
	v := m.answers
	if v == nil {
		return
	}
	return *v, true
}

// OldAnswers returns the old "answers" field's value of the CheckpointResult entity.
// If the CheckpointResult object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CheckpointResultMutation) OldAnswers(ctx context.Context) (v []int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAnswers is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAnswers requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAnswers: %w", err)
	}
	return oldValue.Answers, nil
}

// AppendAnswers adds i to the "answers" field.
func (m *CheckpointResultMutation) AppendAnswers(i []int) {
	m.appendanswers = append(m.appendanswers, i...)
}

// AppendedAnswers returns the list of values that were appended to the "answers" field in this mutation.
func (m *CheckpointResultMutation) AppendedAnswers() ([]int, bool) {
	if len(m.appendanswers) == 0 {
		return nil, false
	}
	return m.appendanswers, true
}

// ResetAnswers resets all changes to the "answers" field.
func (m *CheckpointResultMutation) ResetAnswers() {
	m.answers = nil
	m.appendanswers = nil
}

// Where appends a list predicates to the CheckpointResultMutation builder.
func (m *CheckpointResultMutation) Where(ps ...predicate.CheckpointResult) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the CheckpointResultMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *CheckpointResultMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.CheckpointResult, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *CheckpointResultMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *CheckpointResultMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (CheckpointResult).
func (m *CheckpointResultMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *CheckpointResultMutation) Fields() []string {
	fields := make([]string, 0, 11)
	if m.sequence != nil {
		fields = append(fields, checkpointresult.FieldSequence)
	}
	if m.timestamp != nil {
		fields = append(fields, checkpointresult.FieldTimestamp)
	}
	if m.session_id != nil {
		fields = append(fields, checkpointresult.FieldSessionID)
	}
	if m.user_id != nil {
		fields = append(fields, checkpointresult.FieldUserID)
	}
	if m.skill != nil {
		fields = append(fields, checkpointresult.FieldSkill)
	}
	if m.module_id != nil {
		fields = append(fields, checkpointresult.FieldModuleID)
	}
	if m.score != nil {
		fields = append(fields, checkpointresult.FieldScore)
	}
	if m.passed != nil {
		fields = append(fields, checkpointresult.FieldPassed)
	}
	if m.correct_count != nil {
		fields = append(fields, checkpointresult.FieldCorrectCount)
	}
	if m.total_questions != nil {
		fields = append(fields, checkpointresult.FieldTotalQuestions)
	}
	if m.answers != nil {
		fields = append(fields, checkpointresult.FieldAnswers)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *CheckpointResultMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case checkpointresult.FieldSequence:
		return m.Sequence()
	case checkpointresult.FieldTimestamp:
		return m.Timestamp()
	case checkpointresult.FieldSessionID:
		return m.SessionID()
	case checkpointresult.FieldUserID:
		return m.UserID()
	case checkpointresult.FieldSkill:
		return m.Skill()
	case checkpointresult.FieldModuleID:
		return m.ModuleID()
	case checkpointresult.FieldScore:
		return m.Score()
	case checkpointresult.FieldPassed:
		return m.Passed()
	case checkpointresult.FieldCorrectCount:
		return m.CorrectCount()
	case checkpointresult.FieldTotalQuestions:
		return m.TotalQuestions()
	case checkpointresult.FieldAnswers:
		return m.Answers()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *CheckpointResultMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case checkpointresult.FieldSequence:
		return m.OldSequence(ctx)
	case checkpointresult.FieldTimestamp:
		return m.OldTimestamp(ctx)
	case checkpointresult.FieldSessionID:
		return m.OldSessionID(ctx)
	case checkpointresult.FieldUserID:
		return m.OldUserID(ctx)
	case checkpointresult.FieldSkill:
		return m.OldSkill(ctx)
	case checkpointresult.FieldModuleID:
		return m.OldModuleID(ctx)
	case checkpointresult.FieldScore:
		return m.OldScore(ctx)
	case checkpointresult.FieldPassed:
		return m.OldPassed(ctx)
	case checkpointresult.FieldCorrectCount:
		return m.OldCorrectCount(ctx)
	case checkpointresult.FieldTotalQuestions:
		return m.OldTotalQuestions(ctx)
	case checkpointresult.FieldAnswers:
		return m.OldAnswers(ctx)
	}
	return nil, fmt.Errorf("unknown CheckpointResult field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *CheckpointResultMutation) SetField(name string, value ent.Value) error {
	switch name {
	case checkpointresult.FieldSequence:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSequence(v)
		return nil
	case checkpointresult.FieldTimestamp:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTimestamp(v)
		return nil
	case checkpointresult.FieldSessionID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSessionID(v)
		return nil
	case checkpointresult.FieldUserID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUserID(v)
		return nil
	case checkpointresult.FieldSkill:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSkill(v)
		return nil
	case checkpointresult.FieldModuleID:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetModuleID(v)
		return nil
	case checkpointresult.FieldScore:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetScore(v)
		return nil
	case checkpointresult.FieldPassed:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPassed(v)
		return nil
	case checkpointresult.FieldCorrectCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCorrectCount(v)
		return nil
	case checkpointresult.FieldTotalQuestions:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTotalQuestions(v)
		return nil
	case checkpointresult.FieldAnswers:
		v, ok := value.([]int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAnswers(v)
		return nil
	}
	return fmt.Errorf("unknown CheckpointResult field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *CheckpointResultMutation) AddedFields() []string {
	var fields []string
	if m.addsequence != nil {
		fields = append(fields, checkpointresult.FieldSequence)
	}
	if m.addmodule_id != nil {
		fields = append(fields, checkpointresult.FieldModuleID)
	}
	if m.addscore != nil {
		fields = append(fields, checkpointresult.FieldScore)
	}
	if m.addcorrect_count != nil {
		fields = append(fields, checkpointresult.FieldCorrectCount)
	}
	if m.addtotal_questions != nil {
		fields = append(fields, checkpointresult.FieldTotalQuestions)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *CheckpointResultMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case checkpointresult.FieldSequence:
		return m.AddedSequence()
	case checkpointresult.FieldModuleID:
		return m.AddedModuleID()
	case checkpointresult.FieldScore:
		return m.AddedScore()
	case checkpointresult.FieldCorrectCount:
		return m.AddedCorrectCount()
	case checkpointresult.FieldTotalQuestions:
		return m.AddedTotalQuestions()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *CheckpointResultMutation) AddField(name string, value ent.Value) error {
	switch name {
	case checkpointresult.FieldSequence:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddSequence(v)
		return nil
	case checkpointresult.FieldModuleID:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddModuleID(v)
		return nil
	case checkpointresult.FieldScore:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddScore(v)
		return nil
	case checkpointresult.FieldCorrectCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddCorrectCount(v)
		return nil
	case checkpointresult.FieldTotalQuestions:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddTotalQuestions(v)
		return nil
	}
	return fmt.Errorf("unknown CheckpointResult numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *CheckpointResultMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *CheckpointResultMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *CheckpointResultMutation) ClearField(name string) error {
	return fmt.Errorf("unknown CheckpointResult nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *CheckpointResultMutation) ResetField(name string) error {
	switch name {
	case checkpointresult.FieldSequence:
		m.ResetSequence()
		return nil
	case checkpointresult.FieldTimestamp:
		m.ResetTimestamp()
		return nil
	case checkpointresult.FieldSessionID:
		m.ResetSessionID()
		return nil
	case checkpointresult.FieldUserID:
		m.ResetUserID()
		return nil
	case checkpointresult.FieldSkill:
		m.ResetSkill()
		return nil
	case checkpointresult.FieldModuleID:
		m.ResetModuleID()
		return nil
	case checkpointresult.FieldScore:
		m.ResetScore()
		return nil
	case checkpointresult.FieldPassed:
		m.ResetPassed()
		return nil
	case checkpointresult.FieldCorrectCount:
		m.ResetCorrectCount()
		return nil
	case checkpointresult.FieldTotalQuestions:
		m.ResetTotalQuestions()
		return nil
	case checkpointresult.FieldAnswers:
		m.ResetAnswers()
		return nil
	}
	return fmt.Errorf("unknown CheckpointResult field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *CheckpointResultMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *CheckpointResultMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *CheckpointResultMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *CheckpointResultMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *CheckpointResultMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *CheckpointResultMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *CheckpointResultMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown CheckpointResult unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *CheckpointResultMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown CheckpointResult edge %s", name)
}

// LLMRequestEventMutation represents an operation that mutates the LLMRequestEvent nodes in the graph.
type LLMRequestEventMutation struct {
	config
	op               Op
	typ              string
	id               *int
	sequence         *int64
	addsequence      *int64
	timestamp        *time.Time
	provider         *string
	model            *string
	purpose          *string
	input_tokens     *int
	addinput_tokens  *int
	output_tokens    *int
	addoutput_tokens *int
	latency_ms       *int64
	addlatency_ms    *int64
	success          *bool
	error_message    *string
	clearedFields    map[string]struct{}
	done             bool
	oldValue         func(context.Context) (*LLMRequestEvent, error)
	predicates       []predicate.LLMRequestEvent
}

var _ ent.Mutation = (*LLMRequestEventMutation)(nil)

// llmrequesteventOption allows management of the mutation configuration using functional options.
type llmrequesteventOption func(*LLMRequestEventMutation)

// newLLMRequestEventMutation creates new mutation for the LLMRequestEvent entity.
func newLLMRequestEventMutation(c config, op Op, opts ...llmrequesteventOption) *LLMRequestEventMutation {
	m := &LLMRequestEventMutation{
		config:        c,
		op:            op,
		typ:           TypeLLMRequestEvent,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withLLMRequestEventID sets the ID field of the mutation.
func withLLMRequestEventID(id int) llmrequesteventOption {
	return func(m *LLMRequestEventMutation) {
		var (
			err   error
			once  sync.Once
			value *LLMRequestEvent
		)
		m.oldValue = func(ctx context.Context) (*LLMRequestEvent, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().LLMRequestEvent.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withLLMRequestEvent sets the old LLMRequestEvent of the mutation.
func withLLMRequestEvent(node *LLMRequestEvent) llmrequesteventOption {
	return func(m *LLMRequestEventMutation) {
		m.oldValue = func(context.Context) (*LLMRequestEvent, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m LLMRequestEventMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m LLMRequestEventMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *LLMRequestEventMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *LLMRequestEventMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().LLMRequestEvent.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetSequence sets the "sequence" field.
func (m *LLMRequestEventMutation) SetSequence(i int64) {
	m.sequence = &i
	m.addsequence = nil
}

// Sequence returns the value of the "sequence" field in the mutation.
func (m *LLMRequestEventMutation) Sequence() (r int64, exists bool) {
	v := m.sequence
	if v == nil {
		return
	}
	return *v, true
}

// OldSequence returns the old "sequence" field's value of the LLMRequestEvent entity.
// If the LLMRequestEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LLMRequestEventMutation) OldSequence(ctx context.Context) (v int64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSequence is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSequence requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSequence: %w", err)
	}
	return oldValue.Sequence, nil
}

// AddSequence adds i to the "sequence" field.
func (m *LLMRequestEventMutation) AddSequence(i int64) {
	if m.addsequence != nil {
		*m.addsequence += i
	} else {
		m.addsequence = &i
	}
}

// AddedSequence returns the value that was added to the "sequence" field in this mutation.
func (m *LLMRequestEventMutation) AddedSequence() (r int64, exists bool) {
	v := m.addsequence
	if v == nil {
		return
	}
	return *v, true
}

// ResetSequence resets all changes to the "sequence" field.
func (m *LLMRequestEventMutation) ResetSequence() {
	m.sequence = nil
	m.addsequence = nil
}

// SetTimestamp sets the "timestamp" field.
func (m *LLMRequestEventMutation) SetTimestamp(t time.Time) {
	m.timestamp = &t
}

// Timestamp returns the value of the "timestamp" field in the mutation.
func (m *LLMRequestEventMutation) Timestamp() (r time.Time, exists bool) {
	v := m.timestamp
	if v == nil {
		return
	}
	return *v, true
}

// OldTimestamp returns the old "timestamp" field's value of the LLMRequestEvent entity.
// If the LLMRequestEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LLMRequestEventMutation) OldTimestamp(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTimestamp is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTimestamp requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTimestamp: %w", err)
	}
	return oldValue.Timestamp, nil
}

// ResetTimestamp resets all changes to the "timestamp" field.
func (m *LLMRequestEventMutation) ResetTimestamp() {
	m.timestamp = nil
}

// SetProvider sets the "provider" field.
func (m *LLMRequestEventMutation) SetProvider(s string) {
	m.provider = &s
}

// Provider returns the value of the "provider" field in the mutation.
func (m *LLMRequestEventMutation) Provider() (r string, exists bool) {
	v := m.provider
	if v == nil {
		return
	}
	return *v, true
}

// OldProvider returns the old "provider" field's value of the LLMRequestEvent entity.
// If the LLMRequestEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LLMRequestEventMutation) OldProvider(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldProvider is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldProvider requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldProvider: %w", err)
	}
	return oldValue.Provider, nil
}

// ResetProvider resets all changes to the "provider" field.
func (m *LLMRequestEventMutation) ResetProvider() {
	m.provider = nil
}

// SetModel sets the "model" field.
func (m *LLMRequestEventMutation) SetModel(s string) {
	m.model = &s
}

// Model returns the value of the "model" field in the mutation.
func (m *LLMRequestEventMutation) Model() (r string, exists bool) {
	v := m.model
	if v == nil {
		return
	}
	return *v, true
}

// OldModel returns the old "model" field's value of the LLMRequestEvent entity.
// If the LLMRequestEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LLMRequestEventMutation) OldModel(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldModel is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldModel requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldModel: %w", err)
	}
	return oldValue.Model, nil
}

// ResetModel resets all changes to the "model" field.
func (m *LLMRequestEventMutation) ResetModel() {
	m.model = nil
}

// SetPurpose sets the "purpose" field.
func (m *LLMRequestEventMutation) SetPurpose(s string) {
	m.purpose = &s
}

// Purpose returns the value of the "purpose" field in the mutation.
func (m *LLMRequestEventMutation) Purpose() (r string, exists bool) {
	v := m.purpose
	if v == nil {
		return
	}
	return *v, true
}

// OldPurpose returns the old "purpose" field's value of the LLMRequestEvent entity.
// If the LLMRequestEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LLMRequestEventMutation) OldPurpose(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPurpose is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPurpose requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPurpose: %w", err)
	}
	return oldValue.Purpose, nil
}

// ResetPurpose resets all changes to the "purpose" field.
func (m *LLMRequestEventMutation) ResetPurpose() {
	m.purpose = nil
}

// SetInputTokens sets the "input_tokens" field.
func (m *LLMRequestEventMutation) SetInputTokens(i int) {
	m.input_tokens = &i
	m.addinput_tokens = nil
}

// InputTokens returns the value of the "input_tokens" field in the mutation.
func (m *LLMRequestEventMutation) InputTokens() (r int, exists bool) {
	v := m.input_tokens
	if v == nil {
		return
	}
	return *v, true
}

// OldInputTokens returns the old "input_tokens" field's value of the LLMRequestEvent entity.
// If the LLMRequestEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LLMRequestEventMutation) OldInputTokens(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldInputTokens is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldInputTokens requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldInputTokens: %w", err)
	}
	return oldValue.InputTokens, nil
}

// AddInputTokens adds i to the "input_tokens" field.
func (m *LLMRequestEventMutation) AddInputTokens(i int) {
	if m.addinput_tokens != nil {
		*m.addinput_tokens += i
	} else {
		m.addinput_tokens = &i
	}
}

// AddedInputTokens returns the value that was added to the "input_tokens" field in this mutation.
func (m *LLMRequestEventMutation) AddedInputTokens() (r int, exists bool) {
	v := m.addinput_tokens
	if v == nil {
		return
	}
	return *v, true
}

// ResetInputTokens resets all changes to the "input_tokens" field.
func (m *LLMRequestEventMutation) ResetInputTokens() {
	m.input_tokens = nil
	m.addinput_tokens = nil
}

// SetOutputTokens sets the "output_tokens" field.
func (m *LLMRequestEventMutation) SetOutputTokens(i int) {
	m.output_tokens = &i
	m.addoutput_tokens = nil
}

// OutputTokens returns the value of the "output_tokens" field in the mutation.
func (m *LLMRequestEventMutation) OutputTokens() (r int, exists bool) {
	v := m.output_tokens
	if v == nil {
		return
	}
	return *v, true
}

// OldOutputTokens returns the old "output_tokens" field's value of the LLMRequestEvent entity.
// If the LLMRequestEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LLMRequestEventMutation) OldOutputTokens(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldOutputTokens is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldOutputTokens requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldOutputTokens: %w", err)
	}
	return oldValue.OutputTokens, nil
}

// AddOutputTokens adds i to the "output_tokens" field.
func (m *LLMRequestEventMutation) AddOutputTokens(i int) {
	if m.addoutput_tokens != nil {
		*m.addoutput_tokens += i
	} else {
		m.addoutput_tokens = &i
	}
}

// AddedOutputTokens returns the value that was added to the "output_tokens" field in this mutation.
func (m *LLMRequestEventMutation) AddedOutputTokens() (r int, exists bool) {
	v := m.addoutput_tokens
	if v == nil {
		return
	}
	return *v, true
}

// ResetOutputTokens resets all changes to the "output_tokens" field.
func (m *LLMRequestEventMutation) ResetOutputTokens() {
	m.output_tokens = nil
	m.addoutput_tokens = nil
}

// SetLatencyMs sets the "latency_ms" field.
func (m *LLMRequestEventMutation) SetLatencyMs(i int64) {
	m.latency_ms = &i
	m.addlatency_ms = nil
}

// LatencyMs returns the value of the "latency_ms" field in the mutation.
func (m *LLMRequestEventMutation) LatencyMs() (r int64, exists bool) {
	v := m.latency_ms
	if v == nil {
		return
	}
	return *v, true
}

// OldLatencyMs returns the old "latency_ms" field's value of the LLMRequestEvent entity.
// If the LLMRequestEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LLMRequestEventMutation) OldLatencyMs(ctx context.Context) (v int64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLatencyMs is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLatencyMs requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLatencyMs: %w", err)
	}
	return oldValue.LatencyMs, nil
}

// AddLatencyMs adds i to the "latency_ms" field.
func (m *LLMRequestEventMutation) AddLatencyMs(i int64) {
	if m.addlatency_ms != nil {
		*m.addlatency_ms += i
	} else {
		m.addlatency_ms = &i
	}
}

// AddedLatencyMs returns the value that was added to the "latency_ms" field in this mutation.
func (m *LLMRequestEventMutation) AddedLatencyMs() (r int64, exists bool) {
	v := m.addlatency_ms
	if v == nil {
		return
	}
	return *v, true
}

// ResetLatencyMs resets all changes to the "latency_ms" field.
func (m *LLMRequestEventMutation) ResetLatencyMs() {
	m.latency_ms = nil
	m.addlatency_ms = nil
}

// SetSuccess sets the "success" field.
func (m *LLMRequestEventMutation) SetSuccess(b bool) {
	m.success = &b
}

// Success returns the value of the "success" field in the mutation.
func (m *LLMRequestEventMutation) Success() (r bool, exists bool) {
	v := m.success
	if v == nil {
		return
	}
	return *v, true
}

// OldSuccess returns the old "success" field's value of the LLMRequestEvent entity.
// If the LLMRequestEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LLMRequestEventMutation) OldSuccess(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSuccess is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSuccess requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSuccess: %w", err)
	}
	return oldValue.Success, nil
}

// ResetSuccess resets all changes to the "success" field.
func (m *LLMRequestEventMutation) ResetSuccess() {
	m.success = nil
}

// SetErrorMessage sets the "error_message" field.
func (m *LLMRequestEventMutation) SetErrorMessage(s string) {
	m.error_message = &s
}

// ErrorMessage returns the value of the "error_message" field in the mutation.
func (m *LLMRequestEventMutation) ErrorMessage() (r string, exists bool) {
	v := m.error_message
	if v == nil {
		return
	}
	return *v, true
}

// OldErrorMessage returns the old "error_message" field's value of the LLMRequestEvent entity.
// If the LLMRequestEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LLMRequestEventMutation) OldErrorMessage(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldErrorMessage is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldErrorMessage requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldErrorMessage: %w", err)
	}
	return oldValue.ErrorMessage, nil
}

// ResetErrorMessage resets all changes to the "error_message" field.
func (m *LLMRequestEventMutation) ResetErrorMessage() {
	m.error_message = nil
}

// Where appends a list predicates to the LLMRequestEventMutation builder.
func (m *LLMRequestEventMutation) Where(ps ...predicate.LLMRequestEvent) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the LLMRequestEventMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *LLMRequestEventMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.LLMRequestEvent, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *LLMRequestEventMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *LLMRequestEventMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (LLMRequestEvent).
func (m *LLMRequestEventMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *LLMRequestEventMutation) Fields() []string {
	fields := make([]string, 0, 10)
	if m.sequence != nil {
		fields = append(fields, llmrequestevent.FieldSequence)
	}
	if m.timestamp != nil {
		fields = append(fields, llmrequestevent.FieldTimestamp)
	}
	if m.provider != nil {
		fields = append(fields, llmrequestevent.FieldProvider)
	}
	if m.model != nil {
		fields = append(fields, llmrequestevent.FieldModel)
	}
	if m.purpose != nil {
		fields = append(fields, llmrequestevent.FieldPurpose)
	}
	if m.input_tokens != nil {
		fields = append(fields, llmrequestevent.FieldInputTokens)
	}
	if m.output_tokens != nil {
		fields = append(fields, llmrequestevent.FieldOutputTokens)
	}
	if m.latency_ms != nil {
		fields = append(fields, llmrequestevent.FieldLatencyMs)
	}
	if m.success != nil {
		fields = append(fields, llmrequestevent.FieldSuccess)
	}
	if m.error_message != nil {
		fields = append(fields, llmrequestevent.FieldErrorMessage)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *LLMRequestEventMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case llmrequestevent.FieldSequence:
		return m.Sequence()
	case llmrequestevent.FieldTimestamp:
		return m.Timestamp()
	case llmrequestevent.FieldProvider:
		return m.Provider()
	case llmrequestevent.FieldModel:
		return m.Model()
	case llmrequestevent.FieldPurpose:
		return m.Purpose()
	case llmrequestevent.FieldInputTokens:
		return m.InputTokens()
	case llmrequestevent.FieldOutputTokens:
		return m.OutputTokens()
	case llmrequestevent.FieldLatencyMs:
		return m.LatencyMs()
	case llmrequestevent.FieldSuccess:
		return m.Success()
	case llmrequestevent.FieldErrorMessage:
		return m.ErrorMessage()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *LLMRequestEventMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case llmrequestevent.FieldSequence:
		return m.OldSequence(ctx)
	case llmrequestevent.FieldTimestamp:
		return m.OldTimestamp(ctx)
	case llmrequestevent.FieldProvider:
		return m.OldProvider(ctx)
	case llmrequestevent.FieldModel:
		return m.OldModel(ctx)
	case llmrequestevent.FieldPurpose:
		return m.OldPurpose(ctx)
	case llmrequestevent.FieldInputTokens:
		return m.OldInputTokens(ctx)
	case llmrequestevent.FieldOutputTokens:
		return m.OldOutputTokens(ctx)
	case llmrequestevent.FieldLatencyMs:
		return m.OldLatencyMs(ctx)
	case llmrequestevent.FieldSuccess:
		return m.OldSuccess(ctx)
	case llmrequestevent.FieldErrorMessage:
		return m.OldErrorMessage(ctx)
	}
	return nil, fmt.Errorf("unknown LLMRequestEvent field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *LLMRequestEventMutation) SetField(name string, value ent.Value) error {
	switch name {
	case llmrequestevent.FieldSequence:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSequence(v)
		return nil
	case llmrequestevent.FieldTimestamp:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTimestamp(v)
		return nil
	case llmrequestevent.FieldProvider:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetProvider(v)
		return nil
	case llmrequestevent.FieldModel:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetModel(v)
		return nil
	case llmrequestevent.FieldPurpose:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPurpose(v)
		return nil
	case llmrequestevent.FieldInputTokens:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetInputTokens(v)
		return nil
	case llmrequestevent.FieldOutputTokens:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetOutputTokens(v)
		return nil
	case llmrequestevent.FieldLatencyMs:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLatencyMs(v)
		return nil
	case llmrequestevent.FieldSuccess:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSuccess(v)
		return nil
	case llmrequestevent.FieldErrorMessage:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetErrorMessage(v)
		return nil
	}
	return fmt.Errorf("unknown LLMRequestEvent field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *LLMRequestEventMutation) AddedFields() []string {
	var fields []string
	if m.addsequence != nil {
		fields = append(fields, llmrequestevent.FieldSequence)
	}
	if m.addinput_tokens != nil {
		fields = append(fields, llmrequestevent.FieldInputTokens)
	}
	if m.addoutput_tokens != nil {
		fields = append(fields, llmrequestevent.FieldOutputTokens)
	}
	if m.addlatency_ms != nil {
		fields = append(fields, llmrequestevent.FieldLatencyMs)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *LLMRequestEventMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case llmrequestevent.FieldSequence:
		return m.AddedSequence()
	case llmrequestevent.FieldInputTokens:
		return m.AddedInputTokens()
	case llmrequestevent.FieldOutputTokens:
		return m.AddedOutputTokens()
	case llmrequestevent.FieldLatencyMs:
		return m.AddedLatencyMs()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *LLMRequestEventMutation) AddField(name string, value ent.Value) error {
	switch name {
	case llmrequestevent.FieldSequence:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddSequence(v)
		return nil
	case llmrequestevent.FieldInputTokens:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddInputTokens(v)
		return nil
	case llmrequestevent.FieldOutputTokens:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddOutputTokens(v)
		return nil
	case llmrequestevent.FieldLatencyMs:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddLatencyMs(v)
		return nil
	}
	return fmt.Errorf("unknown LLMRequestEvent numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *LLMRequestEventMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *LLMRequestEventMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *LLMRequestEventMutation) ClearField(name string) error {
	return fmt.Errorf("unknown LLMRequestEvent nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *LLMRequestEventMutation) ResetField(name string) error {
	switch name {
	case llmrequestevent.FieldSequence:
		m.ResetSequence()
		return nil
	case llmrequestevent.FieldTimestamp:
		m.ResetTimestamp()
		return nil
	case llmrequestevent.FieldProvider:
		m.ResetProvider()
		return nil
	case llmrequestevent.FieldModel:
		m.ResetModel()
		return nil
	case llmrequestevent.FieldPurpose:
		m.ResetPurpose()
		return nil
	case llmrequestevent.FieldInputTokens:
		m.ResetInputTokens()
		return nil
	case llmrequestevent.FieldOutputTokens:
		m.ResetOutputTokens()
		return nil
	case llmrequestevent.FieldLatencyMs:
		m.ResetLatencyMs()
		return nil
	case llmrequestevent.FieldSuccess:
		m.ResetSuccess()
		return nil
	case llmrequestevent.FieldErrorMessage:
		m.ResetErrorMessage()
		return nil
	}
	return fmt.Errorf("unknown LLMRequestEvent field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *LLMRequestEventMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *LLMRequestEventMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *LLMRequestEventMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *LLMRequestEventMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *LLMRequestEventMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *LLMRequestEventMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *LLMRequestEventMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown LLMRequestEvent unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *LLMRequestEventMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown LLMRequestEvent edge %s", name)
}

// LearningPathMutation represents an operation that mutates the LearningPath nodes in the graph.
type LearningPathMutation struct {
	config
	op                Op
	typ               string
	id                *int
	session_id        *string
	user_id           *string
	skill             *string
	difficulty        *string
	total_modules     *int
	addtotal_modules  *int
	current_module    *int
	addcurrent_module *int
	completed         *bool
	modules           *[]schema.ModuleDoc
	appendmodules     []schema.ModuleDoc
	version           *int
	addversion        *int
	created_at        *time.Time
	updated_at        *time.Time
	clearedFields     map[string]struct{}
	done              bool
	oldValue          func(context.Context) (*LearningPath, error)
	predicates        []predicate.LearningPath
}

var _ ent.Mutation = (*LearningPathMutation)(nil)

// learningpathOption allows management of the mutation configuration using functional options.
type learningpathOption func(*LearningPathMutation)

// newLearningPathMutation creates new mutation for the LearningPath entity.
func newLearningPathMutation(c config, op Op, opts ...learningpathOption) *LearningPathMutation {
	m := &LearningPathMutation{
		config:        c,
		op:            op,
		typ:           TypeLearningPath,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withLearningPathID sets the ID field of the mutation.
func withLearningPathID(id int) learningpathOption {
	return func(m *LearningPathMutation) {
		var (
			err   error
			once  sync.Once
			value *LearningPath
		)
		m.oldValue = func(ctx context.Context) (*LearningPath, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().LearningPath.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withLearningPath sets the old LearningPath of the mutation.
func withLearningPath(node *LearningPath) learningpathOption {
	return func(m *LearningPathMutation) {
		m.oldValue = func(context.Context) (*LearningPath, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m LearningPathMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m LearningPathMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *LearningPathMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *LearningPathMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().LearningPath.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetSessionID sets the "session_id" field.
func (m *LearningPathMutation) SetSessionID(s string) {
	m.session_id = &s
}

// SessionID returns the value of the "session_id" field in the mutation.
func (m *LearningPathMutation) SessionID() (r string, exists bool) {
	v := m.session_id
	if v == nil {
		return
	}
	return *v, true
}

// OldSessionID returns the old "session_id" field's value of the LearningPath entity.
// If the LearningPath object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LearningPathMutation) OldSessionID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSessionID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSessionID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSessionID: %w", err)
	}
	return oldValue.SessionID, nil
}

// ResetSessionID resets all changes to the "session_id" field.
func (m *LearningPathMutation) ResetSessionID() {
	m.session_id = nil
}

// SetUserID sets the "user_id" field.
func (m *LearningPathMutation) SetUserID(s string) {
	m.user_id = &s
}

// UserID returns the value of the "user_id" field in the mutation.
func (m *LearningPathMutation) UserID() (r string, exists bool) {
	v := m.user_id
	if v == nil {
		return
	}
	return *v, true
}

// OldUserID returns the old "user_id" field's value of the LearningPath entity.
// If the LearningPath object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LearningPathMutation) OldUserID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUserID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUserID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUserID: %w", err)
	}
	return oldValue.UserID, nil
}

// ResetUserID resets all changes to the "user_id" field.
func (m *LearningPathMutation) ResetUserID() {
	m.user_id = nil
}

// SetSkill sets the "skill" field.
func (m *LearningPathMutation) SetSkill(s string) {
	m.skill = &s
}

// Skill returns the value of the "skill" field in the mutation.
func (m *LearningPathMutation) Skill() (r string, exists bool) {
	v := m.skill
	if v == nil {
		return
	}
	return *v, true
}

// OldSkill returns the old "skill" field's value of the LearningPath entity.
// If the LearningPath object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LearningPathMutation) OldSkill(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSkill is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSkill requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSkill: %w", err)
	}
	return oldValue.Skill, nil
}

// ResetSkill resets all changes to the "skill" field.
func (m *LearningPathMutation) ResetSkill() {
	m.skill = nil
}

// SetDifficulty sets the "difficulty" field.
func (m *LearningPathMutation) SetDifficulty(s string) {
	m.difficulty = &s
}

// Difficulty returns the value of the "difficulty" field in the mutation.
func (m *LearningPathMutation) Difficulty() (r string, exists bool) {
	v := m.difficulty
	if v == nil {
		return
	}
	return *v, true
}

// OldDifficulty returns the old "difficulty" field's value of the LearningPath entity.
// If the LearningPath object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LearningPathMutation) OldDifficulty(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDifficulty is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDifficulty requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDifficulty: %w", err)
	}
	return oldValue.Difficulty, nil
}

// ResetDifficulty resets all changes to the "difficulty" field.
func (m *LearningPathMutation) ResetDifficulty() {
	m.difficulty = nil
}

// SetTotalModules sets the "total_modules" field.
func (m *LearningPathMutation) SetTotalModules(i int) {
	m.total_modules = &i
	m.addtotal_modules = nil
}

// TotalModules returns the value of the "total_modules" field in the mutation.
func (m *LearningPathMutation) TotalModules() (r int, exists bool) {
	v := m.total_modules
	if v == nil {
		return
	}
	return *v, true
}

// OldTotalModules returns the old "total_modules" field's value of the LearningPath entity.
// If the LearningPath object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LearningPathMutation) OldTotalModules(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTotalModules is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTotalModules requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTotalModules: %w", err)
	}
	return oldValue.TotalModules, nil
}

// AddTotalModules adds i to the "total_modules" field.
func (m *LearningPathMutation) AddTotalModules(i int) {
	if m.addtotal_modules != nil {
		*m.addtotal_modules += i
	} else {
		m.addtotal_modules = &i
	}
}

// AddedTotalModules returns the value that was added to the "total_modules" field in this mutation.
func (m *LearningPathMutation) AddedTotalModules() (r int, exists bool) {
	v := m.addtotal_modules
	if v == nil {
		return
	}
	return *v, true
}

// ResetTotalModules resets all changes to the "total_modules" field.
func (m *LearningPathMutation) ResetTotalModules() {
	m.total_modules = nil
	m.addtotal_modules = nil
}

// SetCurrentModule sets the "current_module" field.
func (m *LearningPathMutation) SetCurrentModule(i int) {
	m.current_module = &i
	m.addcurrent_module = nil
}

// CurrentModule returns the value of the "current_module" field in the mutation.
func (m *LearningPathMutation) CurrentModule() (r int, exists bool) {
	v := m.current_module
	if v == nil {
		return
	}
	return *v, true
}

// OldCurrentModule returns the old "current_module" field's value of the LearningPath entity.
// If the LearningPath object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LearningPathMutation) OldCurrentModule(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCurrentModule is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCurrentModule requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCurrentModule: %w", err)
	}
	return oldValue.CurrentModule, nil
}

// AddCurrentModule adds i to the "current_module" field.
func (m *LearningPathMutation) AddCurrentModule(i int) {
	if m.addcurrent_module != nil {
		*m.addcurrent_module += i
	} else {
		m.addcurrent_module = &i
	}
}

// AddedCurrentModule returns the value that was added to the "current_module" field in this mutation.
func (m *LearningPathMutation) AddedCurrentModule() (r int, exists bool) {
	v := m.addcurrent_module
	if v == nil {
		return
	}
	return *v, true
}

// ResetCurrentModule resets all changes to the "current_module" field.
func (m *LearningPathMutation) ResetCurrentModule() {
	m.current_module = nil
	m.addcurrent_module = nil
}

// SetCompleted sets the "completed" field.
func (m *LearningPathMutation) SetCompleted(b bool) {
	m.completed = &b
}

// Completed returns the value of the "completed" field in the mutation.
func (m *LearningPathMutation) Completed() (r bool, exists bool) {
	v := m.completed
	if v == nil {
		return
	}
	return *v, true
}

// OldCompleted returns the old "completed" field's value of the LearningPath entity.
// If the LearningPath object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LearningPathMutation) OldCompleted(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCompleted is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCompleted requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCompleted: %w", err)
	}
	return oldValue.Completed, nil
}

// ResetCompleted resets all changes to the "completed" field.
func (m *LearningPathMutation) ResetCompleted() {
	m.completed = nil
}

// SetModules sets the "modules" field.
func (m *LearningPathMutation) SetModules(sd []schema.ModuleDoc) {
	m.modules = &sd
	m.appendmodules = nil
}

// Modules returns the value of the "modules" field in the mutation.
func (m *LearningPathMutation) Modules() (r []schema.ModuleDoc, exists bool) {
	v := m.modules
	if v == nil {
		return
	}
	return *v, true
}

// OldModules returns the old "modules" field's value of the LearningPath entity.
// If the LearningPath object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LearningPathMutation) OldModules(ctx context.Context) (v []schema.ModuleDoc, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldModules is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldModules requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldModules: %w", err)
	}
	return oldValue.Modules, nil
}

// AppendModules adds sd to the "modules" field.
func (m *LearningPathMutation) AppendModules(sd []schema.ModuleDoc) {
	m.appendmodules = append(m.appendmodules, sd...)
}

// AppendedModules returns the list of values that were appended to the "modules" field in this mutation.
func (m *LearningPathMutation) AppendedModules() ([]schema.ModuleDoc, bool) {
	if len(m.appendmodules) == 0 {
		return nil, false
	}
	return m.appendmodules, true
}

// ResetModules resets all changes to the "modules" field.
func (m *LearningPathMutation) ResetModules() {
	m.modules = nil
	m.appendmodules = nil
}

// SetVersion sets the "version" field.
func (m *LearningPathMutation) SetVersion(i int) {
	m.version = &i
	m.addversion = nil
}

// Version returns the value of the "version" field in the mutation.
func (m *LearningPathMutation) Version() (r int, exists bool) {
	v := m.version
	if v == nil {
		return
	}
	return *v, true
}

// OldVersion returns the old "version" field's value of the LearningPath entity.
// If the LearningPath object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LearningPathMutation) OldVersion(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldVersion is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldVersion requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldVersion: %w", err)
	}
	return oldValue.Version, nil
}

// AddVersion adds i to the "version" field.
func (m *LearningPathMutation) AddVersion(i int) {
	if m.addversion != nil {
		*m.addversion += i
	} else {
		m.addversion = &i
	}
}

// AddedVersion returns the value that was added to the "version" field in this mutation.
func (m *LearningPathMutation) AddedVersion() (r int, exists bool) {
	v := m.addversion
	if v == nil {
		return
	}
	return *v, true
}

// ResetVersion resets all changes to the "version" field.
func (m *LearningPathMutation) ResetVersion() {
	m.version = nil
	m.addversion = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *LearningPathMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *LearningPathMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the LearningPath entity.
// If the LearningPath object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LearningPathMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *LearningPathMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *LearningPathMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *LearningPathMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the LearningPath entity.
// If the LearningPath object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LearningPathMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *LearningPathMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// Where appends a list predicates to the LearningPathMutation builder.
func (m *LearningPathMutation) Where(ps ...predicate.LearningPath) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the LearningPathMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *LearningPathMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.LearningPath, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *LearningPathMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *LearningPathMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (LearningPath).
func (m *LearningPathMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *LearningPathMutation) Fields() []string {
	fields := make([]string, 0, 11)
	if m.session_id != nil {
		fields = append(fields, learningpath.FieldSessionID)
	}
	if m.user_id != nil {
		fields = append(fields, learningpath.FieldUserID)
	}
	if m.skill != nil {
		fields = append(fields, learningpath.FieldSkill)
	}
	if m.difficulty != nil {
		fields = append(fields, learningpath.FieldDifficulty)
	}
	if m.total_modules != nil {
		fields = append(fields, learningpath.FieldTotalModules)
	}
	if m.current_module != nil {
		fields = append(fields, learningpath.FieldCurrentModule)
	}
	if m.completed != nil {
		fields = append(fields, learningpath.FieldCompleted)
	}
	if m.modules != nil {
		fields = append(fields, learningpath.FieldModules)
	}
	if m.version != nil {
		fields = append(fields, learningpath.FieldVersion)
	}
	if m.created_at != nil {
		fields = append(fields, learningpath.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, learningpath.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *LearningPathMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case learningpath.FieldSessionID:
		return m.SessionID()
	case learningpath.FieldUserID:
		return m.UserID()
	case learningpath.FieldSkill:
		return m.Skill()
	case learningpath.FieldDifficulty:
		return m.Difficulty()
	case learningpath.FieldTotalModules:
		return m.TotalModules()
	case learningpath.FieldCurrentModule:
		return m.CurrentModule()
	case learningpath.FieldCompleted:
		return m.Completed()
	case learningpath.FieldModules:
		return m.Modules()
	case learningpath.FieldVersion:
		return m.Version()
	case learningpath.FieldCreatedAt:
		return m.CreatedAt()
	case learningpath.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *LearningPathMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case learningpath.FieldSessionID:
		return m.OldSessionID(ctx)
	case learningpath.FieldUserID:
		return m.OldUserID(ctx)
	case learningpath.FieldSkill:
		return m.OldSkill(ctx)
	case learningpath.FieldDifficulty:
		return m.OldDifficulty(ctx)
	case learningpath.FieldTotalModules:
		return m.OldTotalModules(ctx)
	case learningpath.FieldCurrentModule:
		return m.OldCurrentModule(ctx)
	case learningpath.FieldCompleted:
		return m.OldCompleted(ctx)
	case learningpath.FieldModules:
		return m.OldModules(ctx)
	case learningpath.FieldVersion:
		return m.OldVersion(ctx)
	case learningpath.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case learningpath.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown LearningPath field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *LearningPathMutation) SetField(name string, value ent.Value) error {
	switch name {
	case learningpath.FieldSessionID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSessionID(v)
		return nil
	case learningpath.FieldUserID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUserID(v)
		return nil
	case learningpath.FieldSkill:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSkill(v)
		return nil
	case learningpath.FieldDifficulty:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDifficulty(v)
		return nil
	case learningpath.FieldTotalModules:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTotalModules(v)
		return nil
	case learningpath.FieldCurrentModule:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCurrentModule(v)
		return nil
	case learningpath.FieldCompleted:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCompleted(v)
		return nil
	case learningpath.FieldModules:
		v, ok := value.([]schema.ModuleDoc)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetModules(v)
		return nil
	case learningpath.FieldVersion:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetVersion(v)
		return nil
	case learningpath.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case learningpath.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown LearningPath field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *LearningPathMutation) AddedFields() []string {
	var fields []string
	if m.addtotal_modules != nil {
		fields = append(fields, learningpath.FieldTotalModules)
	}
	if m.addcurrent_module != nil {
		fields = append(fields, learningpath.FieldCurrentModule)
	}
	if m.addversion != nil {
		fields = append(fields, learningpath.FieldVersion)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *LearningPathMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case learningpath.FieldTotalModules:
		return m.AddedTotalModules()
	case learningpath.FieldCurrentModule:
		return m.AddedCurrentModule()
	case learningpath.FieldVersion:
		return m.AddedVersion()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *LearningPathMutation) AddField(name string, value ent.Value) error {
	switch name {
	case learningpath.FieldTotalModules:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddTotalModules(v)
		return nil
	case learningpath.FieldCurrentModule:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddCurrentModule(v)
		return nil
	case learningpath.FieldVersion:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddVersion(v)
		return nil
	}
	return fmt.Errorf("unknown LearningPath numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *LearningPathMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *LearningPathMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *LearningPathMutation) ClearField(name string) error {
	return fmt.Errorf("unknown LearningPath nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *LearningPathMutation) ResetField(name string) error {
	switch name {
	case learningpath.FieldSessionID:
		m.ResetSessionID()
		return nil
	case learningpath.FieldUserID:
		m.ResetUserID()
		return nil
	case learningpath.FieldSkill:
		m.ResetSkill()
		return nil
	case learningpath.FieldDifficulty:
		m.ResetDifficulty()
		return nil
	case learningpath.FieldTotalModules:
		m.ResetTotalModules()
		return nil
	case learningpath.FieldCurrentModule:
		m.ResetCurrentModule()
		return nil
	case learningpath.FieldCompleted:
		m.ResetCompleted()
		return nil
	case learningpath.FieldModules:
		m.ResetModules()
		return nil
	case learningpath.FieldVersion:
		m.ResetVersion()
		return nil
	case learningpath.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case learningpath.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown LearningPath field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *LearningPathMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *LearningPathMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *LearningPathMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *LearningPathMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *LearningPathMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *LearningPathMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *LearningPathMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown LearningPath unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *LearningPathMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown LearningPath edge %s", name)
}

// PracticeAttemptMutation represents an operation that mutates the PracticeAttempt nodes in the graph.
type PracticeAttemptMutation struct {
	config
	op                 Op
	typ                string
	id                 *int
	sequence           *int64
	addsequence        *int64
	timestamp          *time.Time
	user_id            *string
	skill              *string
	topic              *string
	score              *float64
	addscore           *float64
	correct_count      *int
	addcorrect_count   *int
	total_questions    *int
	addtotal_questions *int
	time_taken_secs    *int
	addtime_taken_secs *int
	clearedFields      map[string]struct{}
	done               bool
	oldValue           func(context.Context) (*PracticeAttempt, error)
	predicates         []predicate.PracticeAttempt
}

var _ ent.Mutation = (*PracticeAttemptMutation)(nil)

// practiceattemptOption allows management of the mutation configuration using functional options.
type practiceattemptOption func(*PracticeAttemptMutation)

// newPracticeAttemptMutation creates new mutation for the PracticeAttempt entity.
func newPracticeAttemptMutation(c config, op Op, opts ...practiceattemptOption) *PracticeAttemptMutation {
	m := &PracticeAttemptMutation{
		config:        c,
		op:            op,
		typ:           TypePracticeAttempt,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withPracticeAttemptID sets the ID field of the mutation.
func withPracticeAttemptID(id int) practiceattemptOption {
	return func(m *PracticeAttemptMutation) {
		var (
			err   error
			once  sync.Once
			value *PracticeAttempt
		)
		m.oldValue = func(ctx context.Context) (*PracticeAttempt, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().PracticeAttempt.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withPracticeAttempt sets the old PracticeAttempt of the mutation.
func withPracticeAttempt(node *PracticeAttempt) practiceattemptOption {
	return func(m *PracticeAttemptMutation) {
		m.oldValue = func(context.Context) (*PracticeAttempt, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m PracticeAttemptMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m PracticeAttemptMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *PracticeAttemptMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *PracticeAttemptMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().PracticeAttempt.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetSequence sets the "sequence" field.
func (m *PracticeAttemptMutation) SetSequence(i int64) {
	m.sequence = &i
	m.addsequence = nil
}

// Sequence returns the value of the "sequence" field in the mutation.
func (m *PracticeAttemptMutation) Sequence() (r int64, exists bool) {
	v := m.sequence
	if v == nil {
		return
	}
	return *v, true
}

// OldSequence returns the old "sequence" field's value of the PracticeAttempt entity.
// If the PracticeAttempt object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PracticeAttemptMutation) OldSequence(ctx context.Context) (v int64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSequence is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSequence requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSequence: %w", err)
	}
	return oldValue.Sequence, nil
}

// AddSequence adds i to the "sequence" field.
func (m *PracticeAttemptMutation) AddSequence(i int64) {
	if m.addsequence != nil {
		*m.addsequence += i
	} else {
		m.addsequence = &i
	}
}

// AddedSequence returns the value that was added to the "sequence" field in this mutation.
func (m *PracticeAttemptMutation) AddedSequence() (r int64, exists bool) {
	v := m.addsequence
	if v == nil {
		return
	}
	return *v, true
}

// ResetSequence resets all changes to the "sequence" field.
func (m *PracticeAttemptMutation) ResetSequence() {
	m.sequence = nil
	m.addsequence = nil
}

// SetTimestamp sets the "timestamp" field.
func (m *PracticeAttemptMutation) SetTimestamp(t time.Time) {
	m.timestamp = &t
}

// Timestamp returns the value of the "timestamp" field in the mutation.
func (m *PracticeAttemptMutation) Timestamp() (r time.Time, exists bool) {
	v := m.timestamp
	if v == nil {
		return
	}
	return *v, true
}

// OldTimestamp returns the old "timestamp" field's value of the PracticeAttempt entity.
// If the PracticeAttempt object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PracticeAttemptMutation) OldTimestamp(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTimestamp is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTimestamp requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTimestamp: %w", err)
	}
	return oldValue.Timestamp, nil
}

// ResetTimestamp resets all changes to the "timestamp" field.
func (m *PracticeAttemptMutation) ResetTimestamp() {
	m.timestamp = nil
}

// SetUserID sets the "user_id" field.
func (m *PracticeAttemptMutation) SetUserID(s string) {
	m.user_id = &s
}

// UserID returns the value of the "user_id" field in the mutation.
func (m *PracticeAttemptMutation) UserID() (r string, exists bool) {
	v := m.user_id
	if v == nil {
		return
	}
	return *v, true
}

// OldUserID returns the old "user_id" field's value of the PracticeAttempt entity.
// If the PracticeAttempt object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PracticeAttemptMutation) OldUserID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUserID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUserID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUserID: %w", err)
	}
	return oldValue.UserID, nil
}

// ResetUserID resets all changes to the "user_id" field.
func (m *PracticeAttemptMutation) ResetUserID() {
	m.user_id = nil
}

// SetSkill sets the "skill" field.
func (m *PracticeAttemptMutation) SetSkill(s string) {
	m.skill = &s
}

// Skill returns the value of the "skill" field in the mutation.
func (m *PracticeAttemptMutation) Skill() (r string, exists bool) {
	v := m.skill
	if v == nil {
		return
	}
	return *v, true
}

// OldSkill returns the old "skill" field's value of the PracticeAttempt entity.
// If the PracticeAttempt object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PracticeAttemptMutation) OldSkill(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSkill is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSkill requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSkill: %w", err)
	}
	return oldValue.Skill, nil
}

// ResetSkill resets all changes to the "skill" field.
func (m *PracticeAttemptMutation) ResetSkill() {
	m.skill = nil
}

// SetTopic sets the "topic" field.
func (m *PracticeAttemptMutation) SetTopic(s string) {
	m.topic = &s
}

// Topic returns the value of the "topic" field in the mutation.
func (m *PracticeAttemptMutation) Topic() (r string, exists bool) {
	v := m.topic
	if v == nil {
		return
	}
	return *v, true
}

// OldTopic returns the old "topic" field's value of the PracticeAttempt entity.
// If the PracticeAttempt object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PracticeAttemptMutation) OldTopic(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTopic is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTopic requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTopic: %w", err)
	}
	return oldValue.Topic, nil
}

// ResetTopic resets all changes to the "topic" field.
func (m *PracticeAttemptMutation) ResetTopic() {
	m.topic = nil
}

// SetScore sets the "score" field.
func (m *PracticeAttemptMutation) SetScore(f float64) {
	m.score = &f
	m.addscore = nil
}

// Score returns the value of the "score" field in the mutation.
func (m *PracticeAttemptMutation) Score() (r float64, exists bool) {
	v := m.score
	if v == nil {
		return
	}
	return *v, true
}

// OldScore returns the old "score" field's value of the PracticeAttempt entity.
// If the PracticeAttempt object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PracticeAttemptMutation) OldScore(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldScore is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldScore requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldScore: %w", err)
	}
	return oldValue.Score, nil
}

// AddScore adds f to the "score" field.
func (m *PracticeAttemptMutation) AddScore(f float64) {
	if m.addscore != nil {
		*m.addscore += f
	} else {
		m.addscore = &f
	}
}

// AddedScore returns the value that was added to the "score" field in this mutation.
func (m *PracticeAttemptMutation) AddedScore() (r float64, exists bool) {
	v := m.addscore
	if v == nil {
		return
	}
	return *v, true
}

// ResetScore resets all changes to the "score" field.
func (m *PracticeAttemptMutation) ResetScore() {
	m.score = nil
	m.addscore = nil
}

// SetCorrectCount sets the "correct_count" field.
func (m *PracticeAttemptMutation) SetCorrectCount(i int) {
	m.correct_count = &i
	m.addcorrect_count = nil
}

// CorrectCount returns the value of the "correct_count" field in the mutation.
func (m *PracticeAttemptMutation) CorrectCount() (r int, exists bool) {
	v := m.correct_count
	if v == nil {
		return
	}
	return *v, true
}

// OldCorrectCount returns the old "correct_count" field's value of the PracticeAttempt entity.
// If the PracticeAttempt object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PracticeAttemptMutation) OldCorrectCount(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCorrectCount is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCorrectCount requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCorrectCount: %w", err)
	}
	return oldValue.CorrectCount, nil
}

// AddCorrectCount adds i to the "correct_count" field.
func (m *PracticeAttemptMutation) AddCorrectCount(i int) {
	if m.addcorrect_count != nil {
		*m.addcorrect_count += i
	} else {
		m.addcorrect_count = &i
	}
}

// AddedCorrectCount returns the value that was added to the "correct_count" field in this mutation.
func (m *PracticeAttemptMutation) AddedCorrectCount() (r int, exists bool) {
	v := m.addcorrect_count
	if v == nil {
		return
	}
	return *v, true
}

// ResetCorrectCount resets all changes to the "correct_count" field.
func (m *PracticeAttemptMutation) ResetCorrectCount() {
	m.correct_count = nil
	m.addcorrect_count = nil
}

// SetTotalQuestions sets the "total_questions" field.
func (m *PracticeAttemptMutation) SetTotalQuestions(i int) {
	m.total_questions = &i
	m.addtotal_questions = nil
}

// TotalQuestions returns the value of the "total_questions" field in the mutation.
func (m *PracticeAttemptMutation) TotalQuestions() (r int, exists bool) {
	v := m.total_questions
	if v == nil {
		return
	}
	return *v, true
}

// OldTotalQuestions returns the old "total_questions" field's value of the PracticeAttempt entity.
// If the PracticeAttempt object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PracticeAttemptMutation) OldTotalQuestions(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTotalQuestions is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTotalQuestions requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTotalQuestions: %w", err)
	}
	return oldValue.TotalQuestions, nil
}

// AddTotalQuestions adds i to the "total_questions" field.
func (m *PracticeAttemptMutation) AddTotalQuestions(i int) {
	if m.addtotal_questions != nil {
		*m.addtotal_questions += i
	} else {
		m.addtotal_questions = &i
	}
}

// AddedTotalQuestions returns the value that was added to the "total_questions" field in this mutation.
func (m *PracticeAttemptMutation) AddedTotalQuestions() (r int, exists bool) {
	v := m.addtotal_questions
	if v == nil {
		return
	}
	return *v, true
}

// ResetTotalQuestions resets all changes to the "total_questions" field.
func (m *PracticeAttemptMutation) ResetTotalQuestions() {
	m.total_questions = nil
	m.addtotal_questions = nil
}

// SetTimeTakenSecs sets the "time_taken_secs" field.
func (m *PracticeAttemptMutation) SetTimeTakenSecs(i int) {
	m.time_taken_secs = &i
	m.addtime_taken_secs = nil
}

// TimeTakenSecs returns the value of the "time_taken_secs" field in the mutation.
func (m *PracticeAttemptMutation) TimeTakenSecs() (r int, exists bool) {
	v := m.time_taken_secs
	if v == nil {
		return
	}
	return *v, true
}

// OldTimeTakenSecs returns the old "time_taken_secs" field's value of the PracticeAttempt entity.
// If the PracticeAttempt object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PracticeAttemptMutation) OldTimeTakenSecs(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTimeTakenSecs is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTimeTakenSecs requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTimeTakenSecs: %w", err)
	}
	return oldValue.TimeTakenSecs, nil
}

// AddTimeTakenSecs adds i to the "time_taken_secs" field.
func (m *PracticeAttemptMutation) AddTimeTakenSecs(i int) {
	if m.addtime_taken_secs != nil {
		*m.addtime_taken_secs += i
	} else {
		m.addtime_taken_secs = &i
	}
}

// AddedTimeTakenSecs returns the value that was added to the "time_taken_secs" field in this mutation.
func (m *PracticeAttemptMutation) AddedTimeTakenSecs() (r int, exists bool) {
	v := m.addtime_taken_secs
	if v == nil {
		return
	}
	return *v, true
}

// ResetTimeTakenSecs resets all changes to the "time_taken_secs" field.
func (m *PracticeAttemptMutation) ResetTimeTakenSecs() {
	m.time_taken_secs = nil
	m.addtime_taken_secs = nil
}

// Where appends a list predicates to the PracticeAttemptMutation builder.
func (m *PracticeAttemptMutation) Where(ps ...predicate.PracticeAttempt) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the PracticeAttemptMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *PracticeAttemptMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.PracticeAttempt, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *PracticeAttemptMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *PracticeAttemptMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (PracticeAttempt).
func (m *PracticeAttemptMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *PracticeAttemptMutation) Fields() []string {
	fields := make([]string, 0, 9)
	if m.sequence != nil {
		fields = append(fields, practiceattempt.FieldSequence)
	}
	if m.timestamp != nil {
		fields = append(fields, practiceattempt.FieldTimestamp)
	}
	if m.user_id != nil {
		fields = append(fields, practiceattempt.FieldUserID)
	}
	if m.skill != nil {
		fields = append(fields, practiceattempt.FieldSkill)
	}
	if m.topic != nil {
		fields = append(fields, practiceattempt.FieldTopic)
	}
	if m.score != nil {
		fields = append(fields, practiceattempt.FieldScore)
	}
	if m.correct_count != nil {
		fields = append(fields, practiceattempt.FieldCorrectCount)
	}
	if m.total_questions != nil {
		fields = append(fields, practiceattempt.FieldTotalQuestions)
	}
	if m.time_taken_secs != nil {
		fields = append(fields, practiceattempt.FieldTimeTakenSecs)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *PracticeAttemptMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case practiceattempt.FieldSequence:
		return m.Sequence()
	case practiceattempt.FieldTimestamp:
		return m.Timestamp()
	case practiceattempt.FieldUserID:
		return m.UserID()
	case practiceattempt.FieldSkill:
		return m.Skill()
	case practiceattempt.FieldTopic:
		return m.Topic()
	case practiceattempt.FieldScore:
		return m.Score()
	case practiceattempt.FieldCorrectCount:
		return m.CorrectCount()
	case practiceattempt.FieldTotalQuestions:
		return m.TotalQuestions()
	case practiceattempt.FieldTimeTakenSecs:
		return m.TimeTakenSecs()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *PracticeAttemptMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case practiceattempt.FieldSequence:
		return m.OldSequence(ctx)
	case practiceattempt.FieldTimestamp:
		return m.OldTimestamp(ctx)
	case practiceattempt.FieldUserID:
		return m.OldUserID(ctx)
	case practiceattempt.FieldSkill:
		return m.OldSkill(ctx)
	case practiceattempt.FieldTopic:
		return m.OldTopic(ctx)
	case practiceattempt.FieldScore:
		return m.OldScore(ctx)
	case practiceattempt.FieldCorrectCount:
		return m.OldCorrectCount(ctx)
	case practiceattempt.FieldTotalQuestions:
		return m.OldTotalQuestions(ctx)
	case practiceattempt.FieldTimeTakenSecs:
		return m.OldTimeTakenSecs(ctx)
	}
	return nil, fmt.Errorf("unknown PracticeAttempt field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *PracticeAttemptMutation) SetField(name string, value ent.Value) error {
	switch name {
	case practiceattempt.FieldSequence:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSequence(v)
		return nil
	case practiceattempt.FieldTimestamp:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTimestamp(v)
		return nil
	case practiceattempt.FieldUserID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUserID(v)
		return nil
	case practiceattempt.FieldSkill:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSkill(v)
		return nil
	case practiceattempt.FieldTopic:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTopic(v)
		return nil
	case practiceattempt.FieldScore:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetScore(v)
		return nil
	case practiceattempt.FieldCorrectCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCorrectCount(v)
		return nil
	case practiceattempt.FieldTotalQuestions:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTotalQuestions(v)
		return nil
	case practiceattempt.FieldTimeTakenSecs:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTimeTakenSecs(v)
		return nil
	}
	return fmt.Errorf("unknown PracticeAttempt field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *PracticeAttemptMutation) AddedFields() []string {
	var fields []string
	if m.addsequence != nil {
		fields = append(fields, practiceattempt.FieldSequence)
	}
	if m.addscore != nil {
		fields = append(fields, practiceattempt.FieldScore)
	}
	if m.addcorrect_count != nil {
		fields = append(fields, practiceattempt.FieldCorrectCount)
	}
	if m.addtotal_questions != nil {
		fields = append(fields, practiceattempt.FieldTotalQuestions)
	}
	if m.addtime_taken_secs != nil {
		fields = append(fields, practiceattempt.FieldTimeTakenSecs)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *PracticeAttemptMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case practiceattempt.FieldSequence:
		return m.AddedSequence()
	case practiceattempt.FieldScore:
		return m.AddedScore()
	case practiceattempt.FieldCorrectCount:
		return m.AddedCorrectCount()
	case practiceattempt.FieldTotalQuestions:
		return m.AddedTotalQuestions()
	case practiceattempt.FieldTimeTakenSecs:
		return m.AddedTimeTakenSecs()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *PracticeAttemptMutation) AddField(name string, value ent.Value) error {
	switch name {
	case practiceattempt.FieldSequence:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddSequence(v)
		return nil
	case practiceattempt.FieldScore:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddScore(v)
		return nil
	case practiceattempt.FieldCorrectCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddCorrectCount(v)
		return nil
	case practiceattempt.FieldTotalQuestions:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddTotalQuestions(v)
		return nil
	case practiceattempt.FieldTimeTakenSecs:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddTimeTakenSecs(v)
		return nil
	}
	return fmt.Errorf("unknown PracticeAttempt numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *PracticeAttemptMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *PracticeAttemptMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *PracticeAttemptMutation) ClearField(name string) error {
	return fmt.Errorf("unknown PracticeAttempt nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *PracticeAttemptMutation) ResetField(name string) error {
	switch name {
	case practiceattempt.FieldSequence:
		m.ResetSequence()
		return nil
	case practiceattempt.FieldTimestamp:
		m.ResetTimestamp()
		return nil
	case practiceattempt.FieldUserID:
		m.ResetUserID()
		return nil
	case practiceattempt.FieldSkill:
		m.ResetSkill()
		return nil
	case practiceattempt.FieldTopic:
		m.ResetTopic()
		return nil
	case practiceattempt.FieldScore:
		m.ResetScore()
		return nil
	case practiceattempt.FieldCorrectCount:
		m.ResetCorrectCount()
		return nil
	case practiceattempt.FieldTotalQuestions:
		m.ResetTotalQuestions()
		return nil
	case practiceattempt.FieldTimeTakenSecs:
		m.ResetTimeTakenSecs()
		return nil
	}
	return fmt.Errorf("unknown PracticeAttempt field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *PracticeAttemptMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *PracticeAttemptMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *PracticeAttemptMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *PracticeAttemptMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *PracticeAttemptMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *PracticeAttemptMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *PracticeAttemptMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown PracticeAttempt unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *PracticeAttemptMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown PracticeAttempt edge %s", name)
}

// SessionMutation represents an operation that mutates the Session nodes in the graph.
type SessionMutation struct {
	config
	op            Op
	typ           string
	id            *int
	session_id    *string
	user_id       *string
	goal          *string
	skills        *[]string
	appendskills  []string
	created_at    *time.Time
	clearedFields map[string]struct{}
	done          bool
	oldValue      func(context.Context) (*Session, error)
	predicates    []predicate.Session
}

var _ ent.Mutation = (*SessionMutation)(nil)

// sessionOption allows management of the mutation configuration using functional options.
type sessionOption func(*SessionMutation)

// newSessionMutation creates new mutation for the Session entity.
func newSessionMutation(c config, op Op, opts ...sessionOption) *SessionMutation {
	m := &SessionMutation{
		config:        c,
		op:            op,
		typ:           TypeSession,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withSessionID sets the ID field of the mutation.
func withSessionID(id int) sessionOption {
	return func(m *SessionMutation) {
		var (
			err   error
			once  sync.Once
			value *Session
		)
		m.oldValue = func(ctx context.Context) (*Session, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Session.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withSession sets the old Session of the mutation.
func withSession(node *Session) sessionOption {
	return func(m *SessionMutation) {
		m.oldValue = func(context.Context) (*Session, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m SessionMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m SessionMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *SessionMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *SessionMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Session.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetSessionID sets the "session_id" field.
func (m *SessionMutation) SetSessionID(s string) {
	m.session_id = &s
}

// SessionID returns the value of the "session_id" field in the mutation.
func (m *SessionMutation) SessionID() (r string, exists bool) {
	v := m.session_id
	if v == nil {
		return
	}
	return *v, true
}

// OldSessionID returns the old "session_id" field's value of the Session entity.
// If the Session object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SessionMutation) OldSessionID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSessionID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSessionID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSessionID: %w", err)
	}
	return oldValue.SessionID, nil
}

// ResetSessionID resets all changes to the "session_id" field.
func (m *SessionMutation) ResetSessionID() {
	m.session_id = nil
}

// SetUserID sets the "user_id" field.
func (m *SessionMutation) SetUserID(s string) {
	m.user_id = &s
}

// UserID returns the value of the "user_id" field in the mutation.
func (m *SessionMutation) UserID() (r string, exists bool) {
	v := m.user_id
	if v == nil {
		return
	}
	return *v, true
}

// OldUserID returns the old "user_id" field's value of the Session entity.
// If the Session object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SessionMutation) OldUserID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUserID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUserID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUserID: %w", err)
	}
	return oldValue.UserID, nil
}

// ResetUserID resets all changes to the "user_id" field.
func (m *SessionMutation) ResetUserID() {
	m.user_id = nil
}

// SetGoal sets the "goal" field.
func (m *SessionMutation) SetGoal(s string) {
	m.goal = &s
}

// Goal returns the value of the "goal" field in the mutation.
func (m *SessionMutation) Goal() (r string, exists bool) {
	v := m.goal
	if v == nil {
		return
	}
	return *v, true
}

// OldGoal returns the old "goal" field's value of the Session entity.
// If the Session object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SessionMutation) OldGoal(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldGoal is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldGoal requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldGoal: %w", err)
	}
	return oldValue.Goal, nil
}

// ResetGoal resets all changes to the "goal" field.
func (m *SessionMutation) ResetGoal() {
	m.goal = nil
}

// SetSkills sets the "skills" field.
func (m *SessionMutation) SetSkills(s []string) {
	m.skills = &s
	m.appendskills = nil
}

// Skills returns the value of the "skills" field in the mutation.
func (m *SessionMutation) Skills() (r []string, exists bool) {
	v := m.skills
	if v == nil {
		return
	}
	return *v, true
}

// OldSkills returns the old "skills" field's value of the Session entity.
// If the Session object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SessionMutation) OldSkills(ctx context.Context) (v []string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSkills is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSkills requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSkills: %w", err)
	}
	return oldValue.Skills, nil
}

// AppendSkills adds s to the "skills" field.
func (m *SessionMutation) AppendSkills(s []string) {
	m.appendskills = append(m.appendskills, s...)
}

// AppendedSkills returns the list of values that were appended to the "skills" field in this mutation.
func (m *SessionMutation) AppendedSkills() ([]string, bool) {
	if len(m.appendskills) == 0 {
		return nil, false
	}
	return m.appendskills, true
}

// ResetSkills resets all changes to the "skills" field.
func (m *SessionMutation) ResetSkills() {
	m.skills = nil
	m.appendskills = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *SessionMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *SessionMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Session entity.
// If the Session object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SessionMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *SessionMutation) ResetCreatedAt() {
	m.created_at = nil
}

// Where appends a list predicates to the SessionMutation builder.
func (m *SessionMutation) Where(ps ...predicate.Session) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the SessionMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *SessionMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Session, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *SessionMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *SessionMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Session).
func (m *SessionMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *SessionMutation) Fields() []string {
	fields := make([]string, 0, 5)
	if m.session_id != nil {
		fields = append(fields, session.FieldSessionID)
	}
	if m.user_id != nil {
		fields = append(fields, session.FieldUserID)
	}
	if m.goal != nil {
		fields = append(fields, session.FieldGoal)
	}
	if m.skills != nil {
		fields = append(fields, session.FieldSkills)
	}
	if m.created_at != nil {
		fields = append(fields, session.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *SessionMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case session.FieldSessionID:
		return m.SessionID()
	case session.FieldUserID:
		return m.UserID()
	case session.FieldGoal:
		return m.Goal()
	case session.FieldSkills:
		return m.Skills()
	case session.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *SessionMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case session.FieldSessionID:
		return m.OldSessionID(ctx)
	case session.FieldUserID:
		return m.OldUserID(ctx)
	case session.FieldGoal:
		return m.OldGoal(ctx)
	case session.FieldSkills:
		return m.OldSkills(ctx)
	case session.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Session field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *SessionMutation) SetField(name string, value ent.Value) error {
	switch name {
	case session.FieldSessionID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSessionID(v)
		return nil
	case session.FieldUserID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUserID(v)
		return nil
	case session.FieldGoal:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetGoal(v)
		return nil
	case session.FieldSkills:
		v, ok := value.([]string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSkills(v)
		return nil
	case session.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Session field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *SessionMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *SessionMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *SessionMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown Session numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *SessionMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *SessionMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *SessionMutation) ClearField(name string) error {
	return fmt.Errorf("unknown Session nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *SessionMutation) ResetField(name string) error {
	switch name {
	case session.FieldSessionID:
		m.ResetSessionID()
		return nil
	case session.FieldUserID:
		m.ResetUserID()
		return nil
	case session.FieldGoal:
		m.ResetGoal()
		return nil
	case session.FieldSkills:
		m.ResetSkills()
		return nil
	case session.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown Session field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *SessionMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *SessionMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *SessionMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *SessionMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *SessionMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *SessionMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *SessionMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown Session unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *SessionMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown Session edge %s", name)
}

// SkillProfileMutation represents an operation that mutates the SkillProfile nodes in the graph.
type SkillProfileMutation struct {
	config
	op                Op
	typ               string
	id                *int
	user_id           *string
	skill_name        *string
	confidence        *float64
	addconfidence     *float64
	evidence          *map[string]int
	practice_count    *int
	addpractice_count *int
	last_practiced_at *time.Time
	created_at        *time.Time
	updated_at        *time.Time
	clearedFields     map[string]struct{}
	done              bool
	oldValue          func(context.Context) (*SkillProfile, error)
	predicates        []predicate.SkillProfile
}

var _ ent.Mutation = (*SkillProfileMutation)(nil)

// skillprofileOption allows management of the mutation configuration using functional options.
type skillprofileOption func(*SkillProfileMutation)

// newSkillProfileMutation creates new mutation for the SkillProfile entity.
func newSkillProfileMutation(c config, op Op, opts ...skillprofileOption) *SkillProfileMutation {
	m := &SkillProfileMutation{
		config:        c,
		op:            op,
		typ:           TypeSkillProfile,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withSkillProfileID sets the ID field of the mutation.
func withSkillProfileID(id int) skillprofileOption {
	return func(m *SkillProfileMutation) {
		var (
			err   error
			once  sync.Once
			value *SkillProfile
		)
		m.oldValue = func(ctx context.Context) (*SkillProfile, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().SkillProfile.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withSkillProfile sets the old SkillProfile of the mutation.
func withSkillProfile(node *SkillProfile) skillprofileOption {
	return func(m *SkillProfileMutation) {
		m.oldValue = func(context.Context) (*SkillProfile, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m SkillProfileMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m SkillProfileMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *SkillProfileMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *SkillProfileMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().SkillProfile.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetUserID sets the "user_id" field.
func (m *SkillProfileMutation) SetUserID(s string) {
	m.user_id = &s
}

// UserID returns the value of the "user_id" field in the mutation.
func (m *SkillProfileMutation) UserID() (r string, exists bool) {
	v := m.user_id
	if v == nil {
		return
	}
	return *v, true
}

// OldUserID returns the old "user_id" field's value of the SkillProfile entity.
// If the SkillProfile object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SkillProfileMutation) OldUserID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUserID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUserID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUserID: %w", err)
	}
	return oldValue.UserID, nil
}

// ResetUserID resets all changes to the "user_id" field.
func (m *SkillProfileMutation) ResetUserID() {
	m.user_id = nil
}

// SetSkillName sets the "skill_name" field.
func (m *SkillProfileMutation) SetSkillName(s string) {
	m.skill_name = &s
}

// SkillName returns the value of the "skill_name" field in the mutation.
func (m *SkillProfileMutation) SkillName() (r string, exists bool) {
	v := m.skill_name
	if v == nil {
		return
	}
	return *v, true
}

// OldSkillName returns the old "skill_name" field's value of the SkillProfile entity.
// If the SkillProfile object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SkillProfileMutation) OldSkillName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSkillName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSkillName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSkillName: %w", err)
	}
	return oldValue.SkillName, nil
}

// ResetSkillName resets all changes to the "skill_name" field.
func (m *SkillProfileMutation) ResetSkillName() {
	m.skill_name = nil
}

// SetConfidence sets the "confidence" field.
func (m *SkillProfileMutation) SetConfidence(f float64) {
	m.confidence = &f
	m.addconfidence = nil
}

// Confidence returns the value of the "confidence" field in the mutation.
func (m *SkillProfileMutation) Confidence() (r float64, exists bool) {
	v := m.confidence
	if v == nil {
		return
	}
	return *v, true
}

// OldConfidence returns the old "confidence" field's value of the SkillProfile entity.
// If the SkillProfile object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SkillProfileMutation) OldConfidence(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldConfidence is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldConfidence requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldConfidence: %w", err)
	}
	return oldValue.Confidence, nil
}

// AddConfidence adds f to the "confidence" field.
func (m *SkillProfileMutation) AddConfidence(f float64) {
	if m.addconfidence != nil {
		*m.addconfidence += f
	} else {
		m.addconfidence = &f
	}
}

// AddedConfidence returns the value that was added to the "confidence" field in this mutation.
func (m *SkillProfileMutation) AddedConfidence() (r float64, exists bool) {
	v := m.addconfidence
	if v == nil {
		return
	}
	return *v, true
}

// ResetConfidence resets all changes to the "confidence" field.
func (m *SkillProfileMutation) ResetConfidence() {
	m.confidence = nil
	m.addconfidence = nil
}

// SetEvidence sets the "evidence" field.
func (m *SkillProfileMutation) SetEvidence(value map[string]int) {
	m.evidence = &value
}

// Evidence returns the value of the "evidence" field in the mutation.
func (m *SkillProfileMutation) Evidence() (r map[string]int, exists bool) {
	v := m.evidence
	if v == nil {
		return
	}
	return *v, true
}

// OldEvidence returns the old "evidence" field's value of the SkillProfile entity.
// If the SkillProfile object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SkillProfileMutation) OldEvidence(ctx context.Context) (v map[string]int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEvidence is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEvidence requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEvidence: %w", err)
	}
	return oldValue.Evidence, nil
}

// ResetEvidence resets all changes to the "evidence" field.
func (m *SkillProfileMutation) ResetEvidence() {
	m.evidence = nil
}

// SetPracticeCount sets the "practice_count" field.
func (m *SkillProfileMutation) SetPracticeCount(i int) {
	m.practice_count = &i
	m.addpractice_count = nil
}

// PracticeCount returns the value of the "practice_count" field in the mutation.
func (m *SkillProfileMutation) PracticeCount() (r int, exists bool) {
	v := m.practice_count
	if v == nil {
		return
	}
	return *v, true
}

// OldPracticeCount returns the old "practice_count" field's value of the SkillProfile entity.
// If the SkillProfile object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SkillProfileMutation) OldPracticeCount(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPracticeCount is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPracticeCount requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPracticeCount: %w", err)
	}
	return oldValue.PracticeCount, nil
}

// AddPracticeCount adds i to the "practice_count" field.
func (m *SkillProfileMutation) AddPracticeCount(i int) {
	if m.addpractice_count != nil {
		*m.addpractice_count += i
	} else {
		m.addpractice_count = &i
	}
}

// AddedPracticeCount returns the value that was added to the "practice_count" field in this mutation.
func (m *SkillProfileMutation) AddedPracticeCount() (r int, exists bool) {
	v := m.addpractice_count
	if v == nil {
		return
	}
	return *v, true
}

// ResetPracticeCount resets all changes to the "practice_count" field.
func (m *SkillProfileMutation) ResetPracticeCount() {
	m.practice_count = nil
	m.addpractice_count = nil
}

// SetLastPracticedAt sets the "last_practiced_at" field.
func (m *SkillProfileMutation) SetLastPracticedAt(t time.Time) {
	m.last_practiced_at = &t
}

// LastPracticedAt returns the value of the "last_practiced_at" field in the mutation.
func (m *SkillProfileMutation) LastPracticedAt() (r time.Time, exists bool) {
	v := m.last_practiced_at
	if v == nil {
		return
	}
	return *v, true
}

// OldLastPracticedAt returns the old "last_practiced_at" field's value of the SkillProfile entity.
// If the SkillProfile object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SkillProfileMutation) OldLastPracticedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLastPracticedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLastPracticedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLastPracticedAt: %w", err)
	}
	return oldValue.LastPracticedAt, nil
}

// ClearLastPracticedAt clears the value of the "last_practiced_at" field.
func (m *SkillProfileMutation) ClearLastPracticedAt() {
	m.last_practiced_at = nil
	m.clearedFields[skillprofile.FieldLastPracticedAt] = struct{}{}
}

// LastPracticedAtCleared returns if the "last_practiced_at" field was cleared in this mutation.
func (m *SkillProfileMutation) LastPracticedAtCleared() bool {
	_, ok := m.clearedFields[skillprofile.FieldLastPracticedAt]
	return ok
}

// ResetLastPracticedAt resets all changes to the "last_practiced_at" field.
func (m *SkillProfileMutation) ResetLastPracticedAt() {
	m.last_practiced_at = nil
	delete(m.clearedFields, skillprofile.FieldLastPracticedAt)
}

// SetCreatedAt sets the "created_at" field.
func (m *SkillProfileMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *SkillProfileMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the SkillProfile entity.
// If the SkillProfile object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SkillProfileMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *SkillProfileMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *SkillProfileMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *SkillProfileMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the SkillProfile entity.
// If the SkillProfile object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SkillProfileMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *SkillProfileMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// Where appends a list predicates to the SkillProfileMutation builder.
func (m *SkillProfileMutation) Where(ps ...predicate.SkillProfile) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the SkillProfileMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *SkillProfileMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.SkillProfile, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *SkillProfileMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *SkillProfileMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (SkillProfile).
func (m *SkillProfileMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *SkillProfileMutation) Fields() []string {
	fields := make([]string, 0, 8)
	if m.user_id != nil {
		fields = append(fields, skillprofile.FieldUserID)
	}
	if m.skill_name != nil {
		fields = append(fields, skillprofile.FieldSkillName)
	}
	if m.confidence != nil {
		fields = append(fields, skillprofile.FieldConfidence)
	}
	if m.evidence != nil {
		fields = append(fields, skillprofile.FieldEvidence)
	}
	if m.practice_count != nil {
		fields = append(fields, skillprofile.FieldPracticeCount)
	}
	if m.last_practiced_at != nil {
		fields = append(fields, skillprofile.FieldLastPracticedAt)
	}
	if m.created_at != nil {
		fields = append(fields, skillprofile.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, skillprofile.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *SkillProfileMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case skillprofile.FieldUserID:
		return m.UserID()
	case skillprofile.FieldSkillName:
		return m.SkillName()
	case skillprofile.FieldConfidence:
		return m.Confidence()
	case skillprofile.FieldEvidence:
		return m.Evidence()
	case skillprofile.FieldPracticeCount:
		return m.PracticeCount()
	case skillprofile.FieldLastPracticedAt:
		return m.LastPracticedAt()
	case skillprofile.FieldCreatedAt:
		return m.CreatedAt()
	case skillprofile.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *SkillProfileMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case skillprofile.FieldUserID:
		return m.OldUserID(ctx)
	case skillprofile.FieldSkillName:
		return m.OldSkillName(ctx)
	case skillprofile.FieldConfidence:
		return m.OldConfidence(ctx)
	case skillprofile.FieldEvidence:
		return m.OldEvidence(ctx)
	case skillprofile.FieldPracticeCount:
		return m.OldPracticeCount(ctx)
	case skillprofile.FieldLastPracticedAt:
		return m.OldLastPracticedAt(ctx)
	case skillprofile.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case skillprofile.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown SkillProfile field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *SkillProfileMutation) SetField(name string, value ent.Value) error {
	switch name {
	case skillprofile.FieldUserID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUserID(v)
		return nil
	case skillprofile.FieldSkillName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSkillName(v)
		return nil
	case skillprofile.FieldConfidence:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetConfidence(v)
		return nil
	case skillprofile.FieldEvidence:
		v, ok := value.(map[string]int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEvidence(v)
		return nil
	case skillprofile.FieldPracticeCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPracticeCount(v)
		return nil
	case skillprofile.FieldLastPracticedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLastPracticedAt(v)
		return nil
	case skillprofile.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case skillprofile.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown SkillProfile field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *SkillProfileMutation) AddedFields() []string {
	var fields []string
	if m.addconfidence != nil {
		fields = append(fields, skillprofile.FieldConfidence)
	}
	if m.addpractice_count != nil {
		fields = append(fields, skillprofile.FieldPracticeCount)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *SkillProfileMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case skillprofile.FieldConfidence:
		return m.AddedConfidence()
	case skillprofile.FieldPracticeCount:
		return m.AddedPracticeCount()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *SkillProfileMutation) AddField(name string, value ent.Value) error {
	switch name {
	case skillprofile.FieldConfidence:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddConfidence(v)
		return nil
	case skillprofile.FieldPracticeCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddPracticeCount(v)
		return nil
	}
	return fmt.Errorf("unknown SkillProfile numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *SkillProfileMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(skillprofile.FieldLastPracticedAt) {
		fields = append(fields, skillprofile.FieldLastPracticedAt)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *SkillProfileMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *SkillProfileMutation) ClearField(name string) error {
	switch name {
	case skillprofile.FieldLastPracticedAt:
		m.ClearLastPracticedAt()
		return nil
	}
	return fmt.Errorf("unknown SkillProfile nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *SkillProfileMutation) ResetField(name string) error {
	switch name {
	case skillprofile.FieldUserID:
		m.ResetUserID()
		return nil
	case skillprofile.FieldSkillName:
		m.ResetSkillName()
		return nil
	case skillprofile.FieldConfidence:
		m.ResetConfidence()
		return nil
	case skillprofile.FieldEvidence:
		m.ResetEvidence()
		return nil
	case skillprofile.FieldPracticeCount:
		m.ResetPracticeCount()
		return nil
	case skillprofile.FieldLastPracticedAt:
		m.ResetLastPracticedAt()
		return nil
	case skillprofile.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case skillprofile.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown SkillProfile field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *SkillProfileMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *SkillProfileMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *SkillProfileMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *SkillProfileMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *SkillProfileMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *SkillProfileMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *SkillProfileMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown SkillProfile unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *SkillProfileMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown SkillProfile edge %s", name)
}
