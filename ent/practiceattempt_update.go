// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/plaroindia/Pearl/ent/practiceattempt"
	"github.com/plaroindia/Pearl/ent/predicate"
)

// PracticeAttemptUpdate is the builder for updating PracticeAttempt entities.
type PracticeAttemptUpdate struct {
	config
	hooks    []Hook
	mutation *PracticeAttemptMutation
}

// Where appends a list predicates to the PracticeAttemptUpdate builder.
func (_u *PracticeAttemptUpdate) Where(ps ...predicate.PracticeAttempt) *PracticeAttemptUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetUserID sets the "user_id" field.
func (_u *PracticeAttemptUpdate) SetUserID(v string) *PracticeAttemptUpdate {
	_u.mutation.SetUserID(v)
	return _u
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (_u *PracticeAttemptUpdate) SetNillableUserID(v *string) *PracticeAttemptUpdate {
	if v != nil {
		_u.SetUserID(*v)
	}
	return _u
}

// SetSkill sets the "skill" field.
func (_u *PracticeAttemptUpdate) SetSkill(v string) *PracticeAttemptUpdate {
	_u.mutation.SetSkill(v)
	return _u
}

// SetNillableSkill sets the "skill" field if the given value is not nil.
func (_u *PracticeAttemptUpdate) SetNillableSkill(v *string) *PracticeAttemptUpdate {
	if v != nil {
		_u.SetSkill(*v)
	}
	return _u
}

// SetTopic sets the "topic" field.
func (_u *PracticeAttemptUpdate) SetTopic(v string) *PracticeAttemptUpdate {
	_u.mutation.SetTopic(v)
	return _u
}

// SetNillableTopic sets the "topic" field if the given value is not nil.
func (_u *PracticeAttemptUpdate) SetNillableTopic(v *string) *PracticeAttemptUpdate {
	if v != nil {
		_u.SetTopic(*v)
	}
	return _u
}

// SetScore sets the "score" field.
func (_u *PracticeAttemptUpdate) SetScore(v float64) *PracticeAttemptUpdate {
	_u.mutation.ResetScore()
	_u.mutation.SetScore(v)
	return _u
}

// SetNillableScore sets the "score" field if the given value is not nil.
func (_u *PracticeAttemptUpdate) SetNillableScore(v *float64) *PracticeAttemptUpdate {
	if v != nil {
		_u.SetScore(*v)
	}
	return _u
}

// AddScore adds value to the "score" field.
func (_u *PracticeAttemptUpdate) AddScore(v float64) *PracticeAttemptUpdate {
	_u.mutation.AddScore(v)
	return _u
}

// SetCorrectCount sets the "correct_count" field.
func (_u *PracticeAttemptUpdate) SetCorrectCount(v int) *PracticeAttemptUpdate {
	_u.mutation.ResetCorrectCount()
	_u.mutation.SetCorrectCount(v)
	return _u
}

// SetNillableCorrectCount sets the "correct_count" field if the given value is not nil.
func (_u *PracticeAttemptUpdate) SetNillableCorrectCount(v *int) *PracticeAttemptUpdate {
	if v != nil {
		_u.SetCorrectCount(*v)
	}
	return _u
}

// AddCorrectCount adds value to the "correct_count" field.
func (_u *PracticeAttemptUpdate) AddCorrectCount(v int) *PracticeAttemptUpdate {
	_u.mutation.AddCorrectCount(v)
	return _u
}

// SetTotalQuestions sets the "total_questions" field.
func (_u *PracticeAttemptUpdate) SetTotalQuestions(v int) *PracticeAttemptUpdate {
	_u.mutation.ResetTotalQuestions()
	_u.mutation.SetTotalQuestions(v)
	return _u
}

// SetNillableTotalQuestions sets the "total_questions" field if the given value is not nil.
func (_u *PracticeAttemptUpdate) SetNillableTotalQuestions(v *int) *PracticeAttemptUpdate {
	if v != nil {
		_u.SetTotalQuestions(*v)
	}
	return _u
}

// AddTotalQuestions adds value to the "total_questions" field.
func (_u *PracticeAttemptUpdate) AddTotalQuestions(v int) *PracticeAttemptUpdate {
	_u.mutation.AddTotalQuestions(v)
	return _u
}

// SetTimeTakenSecs sets the "time_taken_secs" field.
func (_u *PracticeAttemptUpdate) SetTimeTakenSecs(v int) *PracticeAttemptUpdate {
	_u.mutation.ResetTimeTakenSecs()
	_u.mutation.SetTimeTakenSecs(v)
	return _u
}

// SetNillableTimeTakenSecs sets the "time_taken_secs" field if the given value is not nil.
func (_u *PracticeAttemptUpdate) SetNillableTimeTakenSecs(v *int) *PracticeAttemptUpdate {
	if v != nil {
		_u.SetTimeTakenSecs(*v)
	}
	return _u
}

// AddTimeTakenSecs adds value to the "time_taken_secs" field.
func (_u *PracticeAttemptUpdate) AddTimeTakenSecs(v int) *PracticeAttemptUpdate {
	_u.mutation.AddTimeTakenSecs(v)
	return _u
}

// Mutation returns the PracticeAttemptMutation object of the builder.
func (_u *PracticeAttemptUpdate) Mutation() *PracticeAttemptMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *PracticeAttemptUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *PracticeAttemptUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *PracticeAttemptUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *PracticeAttemptUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *PracticeAttemptUpdate) check() error {
	if v, ok := _u.mutation.UserID(); ok {
		if err := practiceattempt.UserIDValidator(v); err != nil {
			return &ValidationError{Name: "user_id", err: fmt.Errorf(`ent: validator failed for field "PracticeAttempt.user_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Skill(); ok {
		if err := practiceattempt.SkillValidator(v); err != nil {
			return &ValidationError{Name: "skill", err: fmt.Errorf(`ent: validator failed for field "PracticeAttempt.skill": %w`, err)}
		}
	}
	return nil
}

func (_u *PracticeAttemptUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(practiceattempt.Table, practiceattempt.Columns, sqlgraph.NewFieldSpec(practiceattempt.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.UserID(); ok {
		_spec.SetField(practiceattempt.FieldUserID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Skill(); ok {
		_spec.SetField(practiceattempt.FieldSkill, field.TypeString, value)
	}
	if value, ok := _u.mutation.Topic(); ok {
		_spec.SetField(practiceattempt.FieldTopic, field.TypeString, value)
	}
	if value, ok := _u.mutation.Score(); ok {
		_spec.SetField(practiceattempt.FieldScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedScore(); ok {
		_spec.AddField(practiceattempt.FieldScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.CorrectCount(); ok {
		_spec.SetField(practiceattempt.FieldCorrectCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedCorrectCount(); ok {
		_spec.AddField(practiceattempt.FieldCorrectCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.TotalQuestions(); ok {
		_spec.SetField(practiceattempt.FieldTotalQuestions, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTotalQuestions(); ok {
		_spec.AddField(practiceattempt.FieldTotalQuestions, field.TypeInt, value)
	}
	if value, ok := _u.mutation.TimeTakenSecs(); ok {
		_spec.SetField(practiceattempt.FieldTimeTakenSecs, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTimeTakenSecs(); ok {
		_spec.AddField(practiceattempt.FieldTimeTakenSecs, field.TypeInt, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{practiceattempt.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// PracticeAttemptUpdateOne is the builder for updating a single PracticeAttempt entity.
type PracticeAttemptUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *PracticeAttemptMutation
}

// SetUserID sets the "user_id" field.
func (_u *PracticeAttemptUpdateOne) SetUserID(v string) *PracticeAttemptUpdateOne {
	_u.mutation.SetUserID(v)
	return _u
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (_u *PracticeAttemptUpdateOne) SetNillableUserID(v *string) *PracticeAttemptUpdateOne {
	if v != nil {
		_u.SetUserID(*v)
	}
	return _u
}

// SetSkill sets the "skill" field.
func (_u *PracticeAttemptUpdateOne) SetSkill(v string) *PracticeAttemptUpdateOne {
	_u.mutation.SetSkill(v)
	return _u
}

// SetNillableSkill sets the "skill" field if the given value is not nil.
func (_u *PracticeAttemptUpdateOne) SetNillableSkill(v *string) *PracticeAttemptUpdateOne {
	if v != nil {
		_u.SetSkill(*v)
	}
	return _u
}

// SetTopic sets the "topic" field.
func (_u *PracticeAttemptUpdateOne) SetTopic(v string) *PracticeAttemptUpdateOne {
	_u.mutation.SetTopic(v)
	return _u
}

// SetNillableTopic sets the "topic" field if the given value is not nil.
func (_u *PracticeAttemptUpdateOne) SetNillableTopic(v *string) *PracticeAttemptUpdateOne {
	if v != nil {
		_u.SetTopic(*v)
	}
	return _u
}

// SetScore sets the "score" field.
func (_u *PracticeAttemptUpdateOne) SetScore(v float64) *PracticeAttemptUpdateOne {
	_u.mutation.ResetScore()
	_u.mutation.SetScore(v)
	return _u
}

// SetNillableScore sets the "score" field if the given value is not nil.
func (_u *PracticeAttemptUpdateOne) SetNillableScore(v *float64) *PracticeAttemptUpdateOne {
	if v != nil {
		_u.SetScore(*v)
	}
	return _u
}

// AddScore adds value to the "score" field.
func (_u *PracticeAttemptUpdateOne) AddScore(v float64) *PracticeAttemptUpdateOne {
	_u.mutation.AddScore(v)
	return _u
}

// SetCorrectCount sets the "correct_count" field.
func (_u *PracticeAttemptUpdateOne) SetCorrectCount(v int) *PracticeAttemptUpdateOne {
	_u.mutation.ResetCorrectCount()
	_u.mutation.SetCorrectCount(v)
	return _u
}

// SetNillableCorrectCount sets the "correct_count" field if the given value is not nil.
func (_u *PracticeAttemptUpdateOne) SetNillableCorrectCount(v *int) *PracticeAttemptUpdateOne {
	if v != nil {
		_u.SetCorrectCount(*v)
	}
	return _u
}

// AddCorrectCount adds value to the "correct_count" field.
func (_u *PracticeAttemptUpdateOne) AddCorrectCount(v int) *PracticeAttemptUpdateOne {
	_u.mutation.AddCorrectCount(v)
	return _u
}

// SetTotalQuestions sets the "total_questions" field.
func (_u *PracticeAttemptUpdateOne) SetTotalQuestions(v int) *PracticeAttemptUpdateOne {
	_u.mutation.ResetTotalQuestions()
	_u.mutation.SetTotalQuestions(v)
	return _u
}

// SetNillableTotalQuestions sets the "total_questions" field if the given value is not nil.
func (_u *PracticeAttemptUpdateOne) SetNillableTotalQuestions(v *int) *PracticeAttemptUpdateOne {
	if v != nil {
		_u.SetTotalQuestions(*v)
	}
	return _u
}

// AddTotalQuestions adds value to the "total_questions" field.
func (_u *PracticeAttemptUpdateOne) AddTotalQuestions(v int) *PracticeAttemptUpdateOne {
	_u.mutation.AddTotalQuestions(v)
	return _u
}

// SetTimeTakenSecs sets the "time_taken_secs" field.
func (_u *PracticeAttemptUpdateOne) SetTimeTakenSecs(v int) *PracticeAttemptUpdateOne {
	_u.mutation.ResetTimeTakenSecs()
	_u.mutation.SetTimeTakenSecs(v)
	return _u
}

// SetNillableTimeTakenSecs sets the "time_taken_secs" field if the given value is not nil.
func (_u *PracticeAttemptUpdateOne) SetNillableTimeTakenSecs(v *int) *PracticeAttemptUpdateOne {
	if v != nil {
		_u.SetTimeTakenSecs(*v)
	}
	return _u
}

// AddTimeTakenSecs adds value to the "time_taken_secs" field.
func (_u *PracticeAttemptUpdateOne) AddTimeTakenSecs(v int) *PracticeAttemptUpdateOne {
	_u.mutation.AddTimeTakenSecs(v)
	return _u
}

// Mutation returns the PracticeAttemptMutation object of the builder.
func (_u *PracticeAttemptUpdateOne) Mutation() *PracticeAttemptMutation {
	return _u.mutation
}

// Where appends a list predicates to the PracticeAttemptUpdate builder.
func (_u *PracticeAttemptUpdateOne) Where(ps ...predicate.PracticeAttempt) *PracticeAttemptUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *PracticeAttemptUpdateOne) Select(field string, fields ...string) *PracticeAttemptUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated PracticeAttempt entity.
func (_u *PracticeAttemptUpdateOne) Save(ctx context.Context) (*PracticeAttempt, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *PracticeAttemptUpdateOne) SaveX(ctx context.Context) *PracticeAttempt {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *PracticeAttemptUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *PracticeAttemptUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *PracticeAttemptUpdateOne) check() error {
	if v, ok := _u.mutation.UserID(); ok {
		if err := practiceattempt.UserIDValidator(v); err != nil {
			return &ValidationError{Name: "user_id", err: fmt.Errorf(`ent: validator failed for field "PracticeAttempt.user_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Skill(); ok {
		if err := practiceattempt.SkillValidator(v); err != nil {
			return &ValidationError{Name: "skill", err: fmt.Errorf(`ent: validator failed for field "PracticeAttempt.skill": %w`, err)}
		}
	}
	return nil
}

func (_u *PracticeAttemptUpdateOne) sqlSave(ctx context.Context) (_node *PracticeAttempt, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(practiceattempt.Table, practiceattempt.Columns, sqlgraph.NewFieldSpec(practiceattempt.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "PracticeAttempt.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, practiceattempt.FieldID)
		for _, f := range fields {
			if !practiceattempt.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != practiceattempt.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.UserID(); ok {
		_spec.SetField(practiceattempt.FieldUserID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Skill(); ok {
		_spec.SetField(practiceattempt.FieldSkill, field.TypeString, value)
	}
	if value, ok := _u.mutation.Topic(); ok {
		_spec.SetField(practiceattempt.FieldTopic, field.TypeString, value)
	}
	if value, ok := _u.mutation.Score(); ok {
		_spec.SetField(practiceattempt.FieldScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedScore(); ok {
		_spec.AddField(practiceattempt.FieldScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.CorrectCount(); ok {
		_spec.SetField(practiceattempt.FieldCorrectCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedCorrectCount(); ok {
		_spec.AddField(practiceattempt.FieldCorrectCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.TotalQuestions(); ok {
		_spec.SetField(practiceattempt.FieldTotalQuestions, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTotalQuestions(); ok {
		_spec.AddField(practiceattempt.FieldTotalQuestions, field.TypeInt, value)
	}
	if value, ok := _u.mutation.TimeTakenSecs(); ok {
		_spec.SetField(practiceattempt.FieldTimeTakenSecs, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTimeTakenSecs(); ok {
		_spec.AddField(practiceattempt.FieldTimeTakenSecs, field.TypeInt, value)
	}
	_node = &PracticeAttempt{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{practiceattempt.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
