// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/dialect/sql/sqljson"
	"entgo.io/ent/schema/field"
	"github.com/plaroindia/Pearl/ent/checkpointresult"
	"github.com/plaroindia/Pearl/ent/predicate"
)

// CheckpointResultUpdate is the builder for updating CheckpointResult entities.
type CheckpointResultUpdate struct {
	config
	hooks    []Hook
	mutation *CheckpointResultMutation
}

// Where appends a list predicates to the CheckpointResultUpdate builder.
func (_u *CheckpointResultUpdate) Where(ps ...predicate.CheckpointResult) *CheckpointResultUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetSessionID sets the "session_id" field.
func (_u *CheckpointResultUpdate) SetSessionID(v string) *CheckpointResultUpdate {
	_u.mutation.SetSessionID(v)
	return _u
}

// SetNillableSessionID sets the "session_id" field if the given value is not nil.
func (_u *CheckpointResultUpdate) SetNillableSessionID(v *string) *CheckpointResultUpdate {
	if v != nil {
		_u.SetSessionID(*v)
	}
	return _u
}

// SetUserID sets the "user_id" field.
func (_u *CheckpointResultUpdate) SetUserID(v string) *CheckpointResultUpdate {
	_u.mutation.SetUserID(v)
	return _u
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (_u *CheckpointResultUpdate) SetNillableUserID(v *string) *CheckpointResultUpdate {
	if v != nil {
		_u.SetUserID(*v)
	}
	return _u
}

// SetSkill sets the "skill" field.
func (_u *CheckpointResultUpdate) SetSkill(v string) *CheckpointResultUpdate {
	_u.mutation.SetSkill(v)
	return _u
}

// SetNillableSkill sets the "skill" field if the given value is not nil.
func (_u *CheckpointResultUpdate) SetNillableSkill(v *string) *CheckpointResultUpdate {
	if v != nil {
		_u.SetSkill(*v)
	}
	return _u
}

// SetModuleID sets the "module_id" field.
func (_u *CheckpointResultUpdate) SetModuleID(v int) *CheckpointResultUpdate {
	_u.mutation.ResetModuleID()
	_u.mutation.SetModuleID(v)
	return _u
}

// SetNillableModuleID sets the "module_id" field if the given value is not nil.
func (_u *CheckpointResultUpdate) SetNillableModuleID(v *int) *CheckpointResultUpdate {
	if v != nil {
		_u.SetModuleID(*v)
	}
	return _u
}

// AddModuleID adds value to the "module_id" field.
func (_u *CheckpointResultUpdate) AddModuleID(v int) *CheckpointResultUpdate {
	_u.mutation.AddModuleID(v)
	return _u
}

// SetScore sets the "score" field.
func (_u *CheckpointResultUpdate) SetScore(v float64) *CheckpointResultUpdate {
	_u.mutation.ResetScore()
	_u.mutation.SetScore(v)
	return _u
}

// SetNillableScore sets the "score" field if the given value is not nil.
func (_u *CheckpointResultUpdate) SetNillableScore(v *float64) *CheckpointResultUpdate {
	if v != nil {
		_u.SetScore(*v)
	}
	return _u
}

// AddScore adds value to the "score" field.
func (_u *CheckpointResultUpdate) AddScore(v float64) *CheckpointResultUpdate {
	_u.mutation.AddScore(v)
	return _u
}

// SetPassed sets the "passed" field.
func (_u *CheckpointResultUpdate) SetPassed(v bool) *CheckpointResultUpdate {
	_u.mutation.SetPassed(v)
	return _u
}

// SetNillablePassed sets the "passed" field if the given value is not nil.
func (_u *CheckpointResultUpdate) SetNillablePassed(v *bool) *CheckpointResultUpdate {
	if v != nil {
		_u.SetPassed(*v)
	}
	return _u
}

// SetCorrectCount sets the "correct_count" field.
func (_u *CheckpointResultUpdate) SetCorrectCount(v int) *CheckpointResultUpdate {
	_u.mutation.ResetCorrectCount()
	_u.mutation.SetCorrectCount(v)
	return _u
}

// SetNillableCorrectCount sets the "correct_count" field if the given value is not nil.
func (_u *CheckpointResultUpdate) SetNillableCorrectCount(v *int) *CheckpointResultUpdate {
	if v != nil {
		_u.SetCorrectCount(*v)
	}
	return _u
}

// AddCorrectCount adds value to the "correct_count" field.
func (_u *CheckpointResultUpdate) AddCorrectCount(v int) *CheckpointResultUpdate {
	_u.mutation.AddCorrectCount(v)
	return _u
}

// SetTotalQuestions sets the "total_questions" field.
func (_u *CheckpointResultUpdate) SetTotalQuestions(v int) *CheckpointResultUpdate {
	_u.mutation.ResetTotalQuestions()
	_u.mutation.SetTotalQuestions(v)
	return _u
}

// SetNillableTotalQuestions sets the "total_questions" field if the given value is not nil.
func (_u *CheckpointResultUpdate) SetNillableTotalQuestions(v *int) *CheckpointResultUpdate {
	if v != nil {
		_u.SetTotalQuestions(*v)
	}
	return _u
}

// AddTotalQuestions adds value to the "total_questions" field.
func (_u *CheckpointResultUpdate) AddTotalQuestions(v int) *CheckpointResultUpdate {
	_u.mutation.AddTotalQuestions(v)
	return _u
}

// SetAnswers sets the "answers" field.
func (_u *CheckpointResultUpdate) SetAnswers(v []int) *CheckpointResultUpdate {
	_u.mutation.SetAnswers(v)
	return _u
}

// AppendAnswers appends value to the "answers" field.
func (_u *CheckpointResultUpdate) AppendAnswers(v []int) *CheckpointResultUpdate {
	_u.mutation.AppendAnswers(v)
	return _u
}

// Mutation returns the CheckpointResultMutation object of the builder.
func (_u *CheckpointResultUpdate) Mutation() *CheckpointResultMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *CheckpointResultUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *CheckpointResultUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *CheckpointResultUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *CheckpointResultUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *CheckpointResultUpdate) check() error {
	if v, ok := _u.mutation.SessionID(); ok {
		if err := checkpointresult.SessionIDValidator(v); err != nil {
			return &ValidationError{Name: "session_id", err: fmt.Errorf(`ent: validator failed for field "CheckpointResult.session_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.UserID(); ok {
		if err := checkpointresult.UserIDValidator(v); err != nil {
			return &ValidationError{Name: "user_id", err: fmt.Errorf(`ent: validator failed for field "CheckpointResult.user_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Skill(); ok {
		if err := checkpointresult.SkillValidator(v); err != nil {
			return &ValidationError{Name: "skill", err: fmt.Errorf(`ent: validator failed for field "CheckpointResult.skill": %w`, err)}
		}
	}
	return nil
}

func (_u *CheckpointResultUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(checkpointresult.Table, checkpointresult.Columns, sqlgraph.NewFieldSpec(checkpointresult.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.SessionID(); ok {
		_spec.SetField(checkpointresult.FieldSessionID, field.TypeString, value)
	}
	if value, ok := _u.mutation.UserID(); ok {
		_spec.SetField(checkpointresult.FieldUserID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Skill(); ok {
		_spec.SetField(checkpointresult.FieldSkill, field.TypeString, value)
	}
	if value, ok := _u.mutation.ModuleID(); ok {
		_spec.SetField(checkpointresult.FieldModuleID, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedModuleID(); ok {
		_spec.AddField(checkpointresult.FieldModuleID, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Score(); ok {
		_spec.SetField(checkpointresult.FieldScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedScore(); ok {
		_spec.AddField(checkpointresult.FieldScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.Passed(); ok {
		_spec.SetField(checkpointresult.FieldPassed, field.TypeBool, value)
	}
	if value, ok := _u.mutation.CorrectCount(); ok {
		_spec.SetField(checkpointresult.FieldCorrectCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedCorrectCount(); ok {
		_spec.AddField(checkpointresult.FieldCorrectCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.TotalQuestions(); ok {
		_spec.SetField(checkpointresult.FieldTotalQuestions, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTotalQuestions(); ok {
		_spec.AddField(checkpointresult.FieldTotalQuestions, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Answers(); ok {
		_spec.SetField(checkpointresult.FieldAnswers, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedAnswers(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, checkpointresult.FieldAnswers, value)
		})
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{checkpointresult.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// CheckpointResultUpdateOne is the builder for updating a single CheckpointResult entity.
type CheckpointResultUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *CheckpointResultMutation
}

// SetSessionID sets the "session_id" field.
func (_u *CheckpointResultUpdateOne) SetSessionID(v string) *CheckpointResultUpdateOne {
	_u.mutation.SetSessionID(v)
	return _u
}

// SetNillableSessionID sets the "session_id" field if the given value is not nil.
func (_u *CheckpointResultUpdateOne) SetNillableSessionID(v *string) *CheckpointResultUpdateOne {
	if v != nil {
		_u.SetSessionID(*v)
	}
	return _u
}

// SetUserID sets the "user_id" field.
func (_u *CheckpointResultUpdateOne) SetUserID(v string) *CheckpointResultUpdateOne {
	_u.mutation.SetUserID(v)
	return _u
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (_u *CheckpointResultUpdateOne) SetNillableUserID(v *string) *CheckpointResultUpdateOne {
	if v != nil {
		_u.SetUserID(*v)
	}
	return _u
}

// SetSkill sets the "skill" field.
func (_u *CheckpointResultUpdateOne) SetSkill(v string) *CheckpointResultUpdateOne {
	_u.mutation.SetSkill(v)
	return _u
}

// SetNillableSkill sets the "skill" field if the given value is not nil.
func (_u *CheckpointResultUpdateOne) SetNillableSkill(v *string) *CheckpointResultUpdateOne {
	if v != nil {
		_u.SetSkill(*v)
	}
	return _u
}

// SetModuleID sets the "module_id" field.
func (_u *CheckpointResultUpdateOne) SetModuleID(v int) *CheckpointResultUpdateOne {
	_u.mutation.ResetModuleID()
	_u.mutation.SetModuleID(v)
	return _u
}

// SetNillableModuleID sets the "module_id" field if the given value is not nil.
func (_u *CheckpointResultUpdateOne) SetNillableModuleID(v *int) *CheckpointResultUpdateOne {
	if v != nil {
		_u.SetModuleID(*v)
	}
	return _u
}

// AddModuleID adds value to the "module_id" field.
func (_u *CheckpointResultUpdateOne) AddModuleID(v int) *CheckpointResultUpdateOne {
	_u.mutation.AddModuleID(v)
	return _u
}

// SetScore sets the "score" field.
func (_u *CheckpointResultUpdateOne) SetScore(v float64) *CheckpointResultUpdateOne {
	_u.mutation.ResetScore()
	_u.mutation.SetScore(v)
	return _u
}

// SetNillableScore sets the "score" field if the given value is not nil.
func (_u *CheckpointResultUpdateOne) SetNillableScore(v *float64) *CheckpointResultUpdateOne {
	if v != nil {
		_u.SetScore(*v)
	}
	return _u
}

// AddScore adds value to the "score" field.
func (_u *CheckpointResultUpdateOne) AddScore(v float64) *CheckpointResultUpdateOne {
	_u.mutation.AddScore(v)
	return _u
}

// SetPassed sets the "passed" field.
func (_u *CheckpointResultUpdateOne) SetPassed(v bool) *CheckpointResultUpdateOne {
	_u.mutation.SetPassed(v)
	return _u
}

// SetNillablePassed sets the "passed" field if the given value is not nil.
func (_u *CheckpointResultUpdateOne) SetNillablePassed(v *bool) *CheckpointResultUpdateOne {
	if v != nil {
		_u.SetPassed(*v)
	}
	return _u
}

// SetCorrectCount sets the "correct_count" field.
func (_u *CheckpointResultUpdateOne) SetCorrectCount(v int) *CheckpointResultUpdateOne {
	_u.mutation.ResetCorrectCount()
	_u.mutation.SetCorrectCount(v)
	return _u
}

// SetNillableCorrectCount sets the "correct_count" field if the given value is not nil.
func (_u *CheckpointResultUpdateOne) SetNillableCorrectCount(v *int) *CheckpointResultUpdateOne {
	if v != nil {
		_u.SetCorrectCount(*v)
	}
	return _u
}

// AddCorrectCount adds value to the "correct_count" field.
func (_u *CheckpointResultUpdateOne) AddCorrectCount(v int) *CheckpointResultUpdateOne {
	_u.mutation.AddCorrectCount(v)
	return _u
}

// SetTotalQuestions sets the "total_questions" field.
func (_u *CheckpointResultUpdateOne) SetTotalQuestions(v int) *CheckpointResultUpdateOne {
	_u.mutation.ResetTotalQuestions()
	_u.mutation.SetTotalQuestions(v)
	return _u
}

// SetNillableTotalQuestions sets the "total_questions" field if the given value is not nil.
func (_u *CheckpointResultUpdateOne) SetNillableTotalQuestions(v *int) *CheckpointResultUpdateOne {
	if v != nil {
		_u.SetTotalQuestions(*v)
	}
	return _u
}

// AddTotalQuestions adds value to the "total_questions" field.
func (_u *CheckpointResultUpdateOne) AddTotalQuestions(v int) *CheckpointResultUpdateOne {
	_u.mutation.AddTotalQuestions(v)
	return _u
}

// SetAnswers sets the "answers" field.
func (_u *CheckpointResultUpdateOne) SetAnswers(v []int) *CheckpointResultUpdateOne {
	_u.mutation.SetAnswers(v)
	return _u
}

// AppendAnswers appends value to the "answers" field.
func (_u *CheckpointResultUpdateOne) AppendAnswers(v []int) *CheckpointResultUpdateOne {
	_u.mutation.AppendAnswers(v)
	return _u
}

// Mutation returns the CheckpointResultMutation object of the builder.
func (_u *CheckpointResultUpdateOne) Mutation() *CheckpointResultMutation {
	return _u.mutation
}

// Where appends a list predicates to the CheckpointResultUpdate builder.
func (_u *CheckpointResultUpdateOne) Where(ps ...predicate.CheckpointResult) *CheckpointResultUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *CheckpointResultUpdateOne) Select(field string, fields ...string) *CheckpointResultUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated CheckpointResult entity.
func (_u *CheckpointResultUpdateOne) Save(ctx context.Context) (*CheckpointResult, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *CheckpointResultUpdateOne) SaveX(ctx context.Context) *CheckpointResult {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *CheckpointResultUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *CheckpointResultUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *CheckpointResultUpdateOne) check() error {
	if v, ok := _u.mutation.SessionID(); ok {
		if err := checkpointresult.SessionIDValidator(v); err != nil {
			return &ValidationError{Name: "session_id", err: fmt.Errorf(`ent: validator failed for field "CheckpointResult.session_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.UserID(); ok {
		if err := checkpointresult.UserIDValidator(v); err != nil {
			return &ValidationError{Name: "user_id", err: fmt.Errorf(`ent: validator failed for field "CheckpointResult.user_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Skill(); ok {
		if err := checkpointresult.SkillValidator(v); err != nil {
			return &ValidationError{Name: "skill", err: fmt.Errorf(`ent: validator failed for field "CheckpointResult.skill": %w`, err)}
		}
	}
	return nil
}

func (_u *CheckpointResultUpdateOne) sqlSave(ctx context.Context) (_node *CheckpointResult, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(checkpointresult.Table, checkpointresult.Columns, sqlgraph.NewFieldSpec(checkpointresult.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "CheckpointResult.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, checkpointresult.FieldID)
		for _, f := range fields {
			if !checkpointresult.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != checkpointresult.FieldID {
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
	if value, ok := _u.mutation.SessionID(); ok {
		_spec.SetField(checkpointresult.FieldSessionID, field.TypeString, value)
	}
	if value, ok := _u.mutation.UserID(); ok {
		_spec.SetField(checkpointresult.FieldUserID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Skill(); ok {
		_spec.SetField(checkpointresult.FieldSkill, field.TypeString, value)
	}
	if value, ok := _u.mutation.ModuleID(); ok {
		_spec.SetField(checkpointresult.FieldModuleID, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedModuleID(); ok {
		_spec.AddField(checkpointresult.FieldModuleID, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Score(); ok {
		_spec.SetField(checkpointresult.FieldScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedScore(); ok {
		_spec.AddField(checkpointresult.FieldScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.Passed(); ok {
		_spec.SetField(checkpointresult.FieldPassed, field.TypeBool, value)
	}
	if value, ok := _u.mutation.CorrectCount(); ok {
		_spec.SetField(checkpointresult.FieldCorrectCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedCorrectCount(); ok {
		_spec.AddField(checkpointresult.FieldCorrectCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.TotalQuestions(); ok {
		_spec.SetField(checkpointresult.FieldTotalQuestions, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTotalQuestions(); ok {
		_spec.AddField(checkpointresult.FieldTotalQuestions, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Answers(); ok {
		_spec.SetField(checkpointresult.FieldAnswers, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedAnswers(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, checkpointresult.FieldAnswers, value)
		})
	}
	_node = &CheckpointResult{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{checkpointresult.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
