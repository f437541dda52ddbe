// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/plaroindia/Pearl/ent/checkpointresult"
)

// CheckpointResultCreate is the builder for creating a CheckpointResult entity.
type CheckpointResultCreate struct {
	config
	mutation *CheckpointResultMutation
	hooks    []Hook
}

// SetSequence sets the "sequence" field.
func (_c *CheckpointResultCreate) SetSequence(v int64) *CheckpointResultCreate {
	_c.mutation.SetSequence(v)
	return _c
}

// SetTimestamp sets the "timestamp" field.
func (_c *CheckpointResultCreate) SetTimestamp(v time.Time) *CheckpointResultCreate {
	_c.mutation.SetTimestamp(v)
	return _c
}

// SetNillableTimestamp sets the "timestamp" field if the given value is not nil.
func (_c *CheckpointResultCreate) SetNillableTimestamp(v *time.Time) *CheckpointResultCreate {
	if v != nil {
		_c.SetTimestamp(*v)
	}
	return _c
}

// SetSessionID sets the "session_id" field.
func (_c *CheckpointResultCreate) SetSessionID(v string) *CheckpointResultCreate {
	_c.mutation.SetSessionID(v)
	return _c
}

// SetUserID sets the "user_id" field.
func (_c *CheckpointResultCreate) SetUserID(v string) *CheckpointResultCreate {
	_c.mutation.SetUserID(v)
	return _c
}

// SetSkill sets the "skill" field.
func (_c *CheckpointResultCreate) SetSkill(v string) *CheckpointResultCreate {
	_c.mutation.SetSkill(v)
	return _c
}

// SetModuleID sets the "module_id" field.
func (_c *CheckpointResultCreate) SetModuleID(v int) *CheckpointResultCreate {
	_c.mutation.SetModuleID(v)
	return _c
}

// SetScore sets the "score" field.
func (_c *CheckpointResultCreate) SetScore(v float64) *CheckpointResultCreate {
	_c.mutation.SetScore(v)
	return _c
}

// SetPassed sets the "passed" field.
func (_c *CheckpointResultCreate) SetPassed(v bool) *CheckpointResultCreate {
	_c.mutation.SetPassed(v)
	return _c
}

// SetCorrectCount sets the "correct_count" field.
func (_c *CheckpointResultCreate) SetCorrectCount(v int) *CheckpointResultCreate {
	_c.mutation.SetCorrectCount(v)
	return _c
}

// SetTotalQuestions sets the "total_questions" field.
func (_c *CheckpointResultCreate) SetTotalQuestions(v int) *CheckpointResultCreate {
	_c.mutation.SetTotalQuestions(v)
	return _c
}

// SetAnswers sets the "answers" field.
func (_c *CheckpointResultCreate) SetAnswers(v []int) *CheckpointResultCreate {
	_c.mutation.SetAnswers(v)
	return _c
}

// Mutation returns the CheckpointResultMutation object of the builder.
func (_c *CheckpointResultCreate) Mutation() *CheckpointResultMutation {
	return _c.mutation
}

// Save creates the CheckpointResult in the database.
func (_c *CheckpointResultCreate) Save(ctx context.Context) (*CheckpointResult, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *CheckpointResultCreate) SaveX(ctx context.Context) *CheckpointResult {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *CheckpointResultCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *CheckpointResultCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *CheckpointResultCreate) defaults() {
	if _, ok := _c.mutation.Timestamp(); !ok {
		v := checkpointresult.DefaultTimestamp()
		_c.mutation.SetTimestamp(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *CheckpointResultCreate) check() error {
	if _, ok := _c.mutation.Sequence(); !ok {
		return &ValidationError{Name: "sequence", err: errors.New(`ent: missing required field "CheckpointResult.sequence"`)}
	}
	if _, ok := _c.mutation.Timestamp(); !ok {
		return &ValidationError{Name: "timestamp", err: errors.New(`ent: missing required field "CheckpointResult.timestamp"`)}
	}
	if _, ok := _c.mutation.SessionID(); !ok {
		return &ValidationError{Name: "session_id", err: errors.New(`ent: missing required field "CheckpointResult.session_id"`)}
	}
	if v, ok := _c.mutation.SessionID(); ok {
		if err := checkpointresult.SessionIDValidator(v); err != nil {
			return &ValidationError{Name: "session_id", err: fmt.Errorf(`ent: validator failed for field "CheckpointResult.session_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.UserID(); !ok {
		return &ValidationError{Name: "user_id", err: errors.New(`ent: missing required field "CheckpointResult.user_id"`)}
	}
	if v, ok := _c.mutation.UserID(); ok {
		if err := checkpointresult.UserIDValidator(v); err != nil {
			return &ValidationError{Name: "user_id", err: fmt.Errorf(`ent: validator failed for field "CheckpointResult.user_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Skill(); !ok {
		return &ValidationError{Name: "skill", err: errors.New(`ent: missing required field "CheckpointResult.skill"`)}
	}
	if v, ok := _c.mutation.Skill(); ok {
		if err := checkpointresult.SkillValidator(v); err != nil {
			return &ValidationError{Name: "skill", err: fmt.Errorf(`ent: validator failed for field "CheckpointResult.skill": %w`, err)}
		}
	}
	if _, ok := _c.mutation.ModuleID(); !ok {
		return &ValidationError{Name: "module_id", err: errors.New(`ent: missing required field "CheckpointResult.module_id"`)}
	}
	if _, ok := _c.mutation.Score(); !ok {
		return &ValidationError{Name: "score", err: errors.New(`ent: missing required field "CheckpointResult.score"`)}
	}
	if _, ok := _c.mutation.Passed(); !ok {
		return &ValidationError{Name: "passed", err: errors.New(`ent: missing required field "CheckpointResult.passed"`)}
	}
	if _, ok := _c.mutation.CorrectCount(); !ok {
		return &ValidationError{Name: "correct_count", err: errors.New(`ent: missing required field "CheckpointResult.correct_count"`)}
	}
	if _, ok := _c.mutation.TotalQuestions(); !ok {
		return &ValidationError{Name: "total_questions", err: errors.New(`ent: missing required field "CheckpointResult.total_questions"`)}
	}
	if _, ok := _c.mutation.Answers(); !ok {
		return &ValidationError{Name: "answers", err: errors.New(`ent: missing required field "CheckpointResult.answers"`)}
	}
	return nil
}

func (_c *CheckpointResultCreate) sqlSave(ctx context.Context) (*CheckpointResult, error) {
	if err := _c.check(); err != nil {
		return nil, err
	}
	_node, _spec := _c.createSpec()
	if err := sqlgraph.CreateNode(ctx, _c.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	id := _spec.ID.Value.(int64)
	_node.ID = int(id)
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *CheckpointResultCreate) createSpec() (*CheckpointResult, *sqlgraph.CreateSpec) {
	var (
		_node = &CheckpointResult{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(checkpointresult.Table, sqlgraph.NewFieldSpec(checkpointresult.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.Sequence(); ok {
		_spec.SetField(checkpointresult.FieldSequence, field.TypeInt64, value)
		_node.Sequence = value
	}
	if value, ok := _c.mutation.Timestamp(); ok {
		_spec.SetField(checkpointresult.FieldTimestamp, field.TypeTime, value)
		_node.Timestamp = value
	}
	if value, ok := _c.mutation.SessionID(); ok {
		_spec.SetField(checkpointresult.FieldSessionID, field.TypeString, value)
		_node.SessionID = value
	}
	if value, ok := _c.mutation.UserID(); ok {
		_spec.SetField(checkpointresult.FieldUserID, field.TypeString, value)
		_node.UserID = value
	}
	if value, ok := _c.mutation.Skill(); ok {
		_spec.SetField(checkpointresult.FieldSkill, field.TypeString, value)
		_node.Skill = value
	}
	if value, ok := _c.mutation.ModuleID(); ok {
		_spec.SetField(checkpointresult.FieldModuleID, field.TypeInt, value)
		_node.ModuleID = value
	}
	if value, ok := _c.mutation.Score(); ok {
		_spec.SetField(checkpointresult.FieldScore, field.TypeFloat64, value)
		_node.Score = value
	}
	if value, ok := _c.mutation.Passed(); ok {
		_spec.SetField(checkpointresult.FieldPassed, field.TypeBool, value)
		_node.Passed = value
	}
	if value, ok := _c.mutation.CorrectCount(); ok {
		_spec.SetField(checkpointresult.FieldCorrectCount, field.TypeInt, value)
		_node.CorrectCount = value
	}
	if value, ok := _c.mutation.TotalQuestions(); ok {
		_spec.SetField(checkpointresult.FieldTotalQuestions, field.TypeInt, value)
		_node.TotalQuestions = value
	}
	if value, ok := _c.mutation.Answers(); ok {
		_spec.SetField(checkpointresult.FieldAnswers, field.TypeJSON, value)
		_node.Answers = value
	}
	return _node, _spec
}

// CheckpointResultCreateBulk is the builder for creating many CheckpointResult entities in bulk.
type CheckpointResultCreateBulk struct {
	config
	err      error
	builders []*CheckpointResultCreate
}

// Save creates the CheckpointResult entities in the database.
func (_c *CheckpointResultCreateBulk) Save(ctx context.Context) ([]*CheckpointResult, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*CheckpointResult, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*CheckpointResultMutation)
				if !ok {
					return nil, fmt.Errorf("unexpected mutation type %T", m)
				}
				if err := builder.check(); err != nil {
					return nil, err
				}
				builder.mutation = mutation
				var err error
				nodes[i], specs[i] = builder.createSpec()
				if i < len(mutators)-1 {
					_, err = mutators[i+1].Mutate(root, _c.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, _c.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
				if specs[i].ID.Value != nil {
					id := specs[i].ID.Value.(int64)
					nodes[i].ID = int(id)
				}
				mutation.done = true
				return nodes[i], nil
			})
			for i := len(builder.hooks) - 1; i >= 0; i-- {
				mut = builder.hooks[i](mut)
			}
			mutators[i] = mut
		}(i, ctx)
	}
	if len(mutators) > 0 {
		if _, err := mutators[0].Mutate(ctx, _c.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (_c *CheckpointResultCreateBulk) SaveX(ctx context.Context) []*CheckpointResult {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *CheckpointResultCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *CheckpointResultCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
