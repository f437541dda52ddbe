// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/plaroindia/Pearl/ent/skillprofile"
)

// SkillProfileCreate is the builder for creating a SkillProfile entity.
type SkillProfileCreate struct {
	config
	mutation *SkillProfileMutation
	hooks    []Hook
}

// SetUserID sets the "user_id" field.
func (_c *SkillProfileCreate) SetUserID(v string) *SkillProfileCreate {
	_c.mutation.SetUserID(v)
	return _c
}

// SetSkillName sets the "skill_name" field.
func (_c *SkillProfileCreate) SetSkillName(v string) *SkillProfileCreate {
	_c.mutation.SetSkillName(v)
	return _c
}

// SetConfidence sets the "confidence" field.
func (_c *SkillProfileCreate) SetConfidence(v float64) *SkillProfileCreate {
	_c.mutation.SetConfidence(v)
	return _c
}

// SetNillableConfidence sets the "confidence" field if the given value is not nil.
func (_c *SkillProfileCreate) SetNillableConfidence(v *float64) *SkillProfileCreate {
	if v != nil {
		_c.SetConfidence(*v)
	}
	return _c
}

// SetEvidence sets the "evidence" field.
func (_c *SkillProfileCreate) SetEvidence(v map[string]int) *SkillProfileCreate {
	_c.mutation.SetEvidence(v)
	return _c
}

// SetPracticeCount sets the "practice_count" field.
func (_c *SkillProfileCreate) SetPracticeCount(v int) *SkillProfileCreate {
	_c.mutation.SetPracticeCount(v)
	return _c
}

// SetNillablePracticeCount sets the "practice_count" field if the given value is not nil.
func (_c *SkillProfileCreate) SetNillablePracticeCount(v *int) *SkillProfileCreate {
	if v != nil {
		_c.SetPracticeCount(*v)
	}
	return _c
}

// SetLastPracticedAt sets the "last_practiced_at" field.
func (_c *SkillProfileCreate) SetLastPracticedAt(v time.Time) *SkillProfileCreate {
	_c.mutation.SetLastPracticedAt(v)
	return _c
}

// SetNillableLastPracticedAt sets the "last_practiced_at" field if the given value is not nil.
func (_c *SkillProfileCreate) SetNillableLastPracticedAt(v *time.Time) *SkillProfileCreate {
	if v != nil {
		_c.SetLastPracticedAt(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *SkillProfileCreate) SetCreatedAt(v time.Time) *SkillProfileCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *SkillProfileCreate) SetNillableCreatedAt(v *time.Time) *SkillProfileCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *SkillProfileCreate) SetUpdatedAt(v time.Time) *SkillProfileCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *SkillProfileCreate) SetNillableUpdatedAt(v *time.Time) *SkillProfileCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// Mutation returns the SkillProfileMutation object of the builder.
func (_c *SkillProfileCreate) Mutation() *SkillProfileMutation {
	return _c.mutation
}

// Save creates the SkillProfile in the database.
func (_c *SkillProfileCreate) Save(ctx context.Context) (*SkillProfile, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *SkillProfileCreate) SaveX(ctx context.Context) *SkillProfile {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *SkillProfileCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *SkillProfileCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *SkillProfileCreate) defaults() {
	if _, ok := _c.mutation.Confidence(); !ok {
		v := skillprofile.DefaultConfidence
		_c.mutation.SetConfidence(v)
	}
	if _, ok := _c.mutation.PracticeCount(); !ok {
		v := skillprofile.DefaultPracticeCount
		_c.mutation.SetPracticeCount(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := skillprofile.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := skillprofile.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *SkillProfileCreate) check() error {
	if _, ok := _c.mutation.UserID(); !ok {
		return &ValidationError{Name: "user_id", err: errors.New(`ent: missing required field "SkillProfile.user_id"`)}
	}
	if v, ok := _c.mutation.UserID(); ok {
		if err := skillprofile.UserIDValidator(v); err != nil {
			return &ValidationError{Name: "user_id", err: fmt.Errorf(`ent: validator failed for field "SkillProfile.user_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.SkillName(); !ok {
		return &ValidationError{Name: "skill_name", err: errors.New(`ent: missing required field "SkillProfile.skill_name"`)}
	}
	if v, ok := _c.mutation.SkillName(); ok {
		if err := skillprofile.SkillNameValidator(v); err != nil {
			return &ValidationError{Name: "skill_name", err: fmt.Errorf(`ent: validator failed for field "SkillProfile.skill_name": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Confidence(); !ok {
		return &ValidationError{Name: "confidence", err: errors.New(`ent: missing required field "SkillProfile.confidence"`)}
	}
	if _, ok := _c.mutation.Evidence(); !ok {
		return &ValidationError{Name: "evidence", err: errors.New(`ent: missing required field "SkillProfile.evidence"`)}
	}
	if _, ok := _c.mutation.PracticeCount(); !ok {
		return &ValidationError{Name: "practice_count", err: errors.New(`ent: missing required field "SkillProfile.practice_count"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "SkillProfile.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "SkillProfile.updated_at"`)}
	}
	return nil
}

func (_c *SkillProfileCreate) sqlSave(ctx context.Context) (*SkillProfile, error) {
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

func (_c *SkillProfileCreate) createSpec() (*SkillProfile, *sqlgraph.CreateSpec) {
	var (
		_node = &SkillProfile{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(skillprofile.Table, sqlgraph.NewFieldSpec(skillprofile.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.UserID(); ok {
		_spec.SetField(skillprofile.FieldUserID, field.TypeString, value)
		_node.UserID = value
	}
	if value, ok := _c.mutation.SkillName(); ok {
		_spec.SetField(skillprofile.FieldSkillName, field.TypeString, value)
		_node.SkillName = value
	}
	if value, ok := _c.mutation.Confidence(); ok {
		_spec.SetField(skillprofile.FieldConfidence, field.TypeFloat64, value)
		_node.Confidence = value
	}
	if value, ok := _c.mutation.Evidence(); ok {
		_spec.SetField(skillprofile.FieldEvidence, field.TypeJSON, value)
		_node.Evidence = value
	}
	if value, ok := _c.mutation.PracticeCount(); ok {
		_spec.SetField(skillprofile.FieldPracticeCount, field.TypeInt, value)
		_node.PracticeCount = value
	}
	if value, ok := _c.mutation.LastPracticedAt(); ok {
		_spec.SetField(skillprofile.FieldLastPracticedAt, field.TypeTime, value)
		_node.LastPracticedAt = &value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(skillprofile.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(skillprofile.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	return _node, _spec
}

// SkillProfileCreateBulk is the builder for creating many SkillProfile entities in bulk.
type SkillProfileCreateBulk struct {
	config
	err      error
	builders []*SkillProfileCreate
}

// Save creates the SkillProfile entities in the database.
func (_c *SkillProfileCreateBulk) Save(ctx context.Context) ([]*SkillProfile, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*SkillProfile, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*SkillProfileMutation)
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
func (_c *SkillProfileCreateBulk) SaveX(ctx context.Context) []*SkillProfile {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *SkillProfileCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *SkillProfileCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
