// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/plaroindia/Pearl/ent/practiceattempt"
)

// PracticeAttemptCreate is the builder for creating a PracticeAttempt entity.
type PracticeAttemptCreate struct {
	config
	mutation *PracticeAttemptMutation
	hooks    []Hook
}

// SetSequence sets the "sequence" field.
func (_c *PracticeAttemptCreate) SetSequence(v int64) *PracticeAttemptCreate {
	_c.mutation.SetSequence(v)
	return _c
}

// SetTimestamp sets the "timestamp" field.
func (_c *PracticeAttemptCreate) SetTimestamp(v time.Time) *PracticeAttemptCreate {
	_c.mutation.SetTimestamp(v)
	return _c
}

// SetNillableTimestamp sets the "timestamp" field if the given value is not nil.
func (_c *PracticeAttemptCreate) SetNillableTimestamp(v *time.Time) *PracticeAttemptCreate {
	if v != nil {
		_c.SetTimestamp(*v)
	}
	return _c
}

// SetUserID sets the "user_id" field.
func (_c *PracticeAttemptCreate) SetUserID(v string) *PracticeAttemptCreate {
	_c.mutation.SetUserID(v)
	return _c
}

// SetSkill sets the "skill" field.
func (_c *PracticeAttemptCreate) SetSkill(v string) *PracticeAttemptCreate {
	_c.mutation.SetSkill(v)
	return _c
}

// SetTopic sets the "topic" field.
func (_c *PracticeAttemptCreate) SetTopic(v string) *PracticeAttemptCreate {
	_c.mutation.SetTopic(v)
	return _c
}

// SetNillableTopic sets the "topic" field if the given value is not nil.
func (_c *PracticeAttemptCreate) SetNillableTopic(v *string) *PracticeAttemptCreate {
	if v != nil {
		_c.SetTopic(*v)
	}
	return _c
}

// SetScore sets the "score" field.
func (_c *PracticeAttemptCreate) SetScore(v float64) *PracticeAttemptCreate {
	_c.mutation.SetScore(v)
	return _c
}

// SetCorrectCount sets the "correct_count" field.
func (_c *PracticeAttemptCreate) SetCorrectCount(v int) *PracticeAttemptCreate {
	_c.mutation.SetCorrectCount(v)
	return _c
}

// SetTotalQuestions sets the "total_questions" field.
func (_c *PracticeAttemptCreate) SetTotalQuestions(v int) *PracticeAttemptCreate {
	_c.mutation.SetTotalQuestions(v)
	return _c
}

// SetTimeTakenSecs sets the "time_taken_secs" field.
func (_c *PracticeAttemptCreate) SetTimeTakenSecs(v int) *PracticeAttemptCreate {
	_c.mutation.SetTimeTakenSecs(v)
	return _c
}

// SetNillableTimeTakenSecs sets the "time_taken_secs" field if the given value is not nil.
func (_c *PracticeAttemptCreate) SetNillableTimeTakenSecs(v *int) *PracticeAttemptCreate {
	if v != nil {
		_c.SetTimeTakenSecs(*v)
	}
	return _c
}

// Mutation returns the PracticeAttemptMutation object of the builder.
func (_c *PracticeAttemptCreate) Mutation() *PracticeAttemptMutation {
	return _c.mutation
}

// Save creates the PracticeAttempt in the database.
func (_c *PracticeAttemptCreate) Save(ctx context.Context) (*PracticeAttempt, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *PracticeAttemptCreate) SaveX(ctx context.Context) *PracticeAttempt {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *PracticeAttemptCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *PracticeAttemptCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *PracticeAttemptCreate) defaults() {
	if _, ok := _c.mutation.Timestamp(); !ok {
		v := practiceattempt.DefaultTimestamp()
		_c.mutation.SetTimestamp(v)
	}
	if _, ok := _c.mutation.Topic(); !ok {
		v := practiceattempt.DefaultTopic
		_c.mutation.SetTopic(v)
	}
	if _, ok := _c.mutation.TimeTakenSecs(); !ok {
		v := practiceattempt.DefaultTimeTakenSecs
		_c.mutation.SetTimeTakenSecs(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *PracticeAttemptCreate) check() error {
	if _, ok := _c.mutation.Sequence(); !ok {
		return &ValidationError{Name: "sequence", err: errors.New(`ent: missing required field "PracticeAttempt.sequence"`)}
	}
	if _, ok := _c.mutation.Timestamp(); !ok {
		return &ValidationError{Name: "timestamp", err: errors.New(`ent: missing required field "PracticeAttempt.timestamp"`)}
	}
	if _, ok := _c.mutation.UserID(); !ok {
		return &ValidationError{Name: "user_id", err: errors.New(`ent: missing required field "PracticeAttempt.user_id"`)}
	}
	if v, ok := _c.mutation.UserID(); ok {
		if err := practiceattempt.UserIDValidator(v); err != nil {
			return &ValidationError{Name: "user_id", err: fmt.Errorf(`ent: validator failed for field "PracticeAttempt.user_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Skill(); !ok {
		return &ValidationError{Name: "skill", err: errors.New(`ent: missing required field "PracticeAttempt.skill"`)}
	}
	if v, ok := _c.mutation.Skill(); ok {
		if err := practiceattempt.SkillValidator(v); err != nil {
			return &ValidationError{Name: "skill", err: fmt.Errorf(`ent: validator failed for field "PracticeAttempt.skill": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Topic(); !ok {
		return &ValidationError{Name: "topic", err: errors.New(`ent: missing required field "PracticeAttempt.topic"`)}
	}
	if _, ok := _c.mutation.Score(); !ok {
		return &ValidationError{Name: "score", err: errors.New(`ent: missing required field "PracticeAttempt.score"`)}
	}
	if _, ok := _c.mutation.CorrectCount(); !ok {
		return &ValidationError{Name: "correct_count", err: errors.New(`ent: missing required field "PracticeAttempt.correct_count"`)}
	}
	if _, ok := _c.mutation.TotalQuestions(); !ok {
		return &ValidationError{Name: "total_questions", err: errors.New(`ent: missing required field "PracticeAttempt.total_questions"`)}
	}
	if _, ok := _c.mutation.TimeTakenSecs(); !ok {
		return &ValidationError{Name: "time_taken_secs", err: errors.New(`ent: missing required field "PracticeAttempt.time_taken_secs"`)}
	}
	return nil
}

func (_c *PracticeAttemptCreate) sqlSave(ctx context.Context) (*PracticeAttempt, error) {
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

func (_c *PracticeAttemptCreate) createSpec() (*PracticeAttempt, *sqlgraph.CreateSpec) {
	var (
		_node = &PracticeAttempt{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(practiceattempt.Table, sqlgraph.NewFieldSpec(practiceattempt.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.Sequence(); ok {
		_spec.SetField(practiceattempt.FieldSequence, field.TypeInt64, value)
		_node.Sequence = value
	}
	if value, ok := _c.mutation.Timestamp(); ok {
		_spec.SetField(practiceattempt.FieldTimestamp, field.TypeTime, value)
		_node.Timestamp = value
	}
	if value, ok := _c.mutation.UserID(); ok {
		_spec.SetField(practiceattempt.FieldUserID, field.TypeString, value)
		_node.UserID = value
	}
	if value, ok := _c.mutation.Skill(); ok {
		_spec.SetField(practiceattempt.FieldSkill, field.TypeString, value)
		_node.Skill = value
	}
	if value, ok := _c.mutation.Topic(); ok {
		_spec.SetField(practiceattempt.FieldTopic, field.TypeString, value)
		_node.Topic = value
	}
	if value, ok := _c.mutation.Score(); ok {
		_spec.SetField(practiceattempt.FieldScore, field.TypeFloat64, value)
		_node.Score = value
	}
	if value, ok := _c.mutation.CorrectCount(); ok {
		_spec.SetField(practiceattempt.FieldCorrectCount, field.TypeInt, value)
		_node.CorrectCount = value
	}
	if value, ok := _c.mutation.TotalQuestions(); ok {
		_spec.SetField(practiceattempt.FieldTotalQuestions, field.TypeInt, value)
		_node.TotalQuestions = value
	}
	if value, ok := _c.mutation.TimeTakenSecs(); ok {
		_spec.SetField(practiceattempt.FieldTimeTakenSecs, field.TypeInt, value)
		_node.TimeTakenSecs = value
	}
	return _node, _spec
}

// PracticeAttemptCreateBulk is the builder for creating many PracticeAttempt entities in bulk.
type PracticeAttemptCreateBulk struct {
	config
	err      error
	builders []*PracticeAttemptCreate
}

// Save creates the PracticeAttempt entities in the database.
func (_c *PracticeAttemptCreateBulk) Save(ctx context.Context) ([]*PracticeAttempt, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*PracticeAttempt, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*PracticeAttemptMutation)
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
func (_c *PracticeAttemptCreateBulk) SaveX(ctx context.Context) []*PracticeAttempt {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *PracticeAttemptCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *PracticeAttemptCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
