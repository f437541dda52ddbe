// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/plaroindia/Pearl/ent/learningpath"
	"github.com/plaroindia/Pearl/ent/schema"
)

// LearningPathCreate is the builder for creating a LearningPath entity.
type LearningPathCreate struct {
	config
	mutation *LearningPathMutation
	hooks    []Hook
}

// SetSessionID sets the "session_id" field.
func (_c *LearningPathCreate) SetSessionID(v string) *LearningPathCreate {
	_c.mutation.SetSessionID(v)
	return _c
}

// SetUserID sets the "user_id" field.
func (_c *LearningPathCreate) SetUserID(v string) *LearningPathCreate {
	_c.mutation.SetUserID(v)
	return _c
}

// SetSkill sets the "skill" field.
func (_c *LearningPathCreate) SetSkill(v string) *LearningPathCreate {
	_c.mutation.SetSkill(v)
	return _c
}

// SetDifficulty sets the "difficulty" field.
func (_c *LearningPathCreate) SetDifficulty(v string) *LearningPathCreate {
	_c.mutation.SetDifficulty(v)
	return _c
}

// SetTotalModules sets the "total_modules" field.
func (_c *LearningPathCreate) SetTotalModules(v int) *LearningPathCreate {
	_c.mutation.SetTotalModules(v)
	return _c
}

// SetCurrentModule sets the "current_module" field.
func (_c *LearningPathCreate) SetCurrentModule(v int) *LearningPathCreate {
	_c.mutation.SetCurrentModule(v)
	return _c
}

// SetNillableCurrentModule sets the "current_module" field if the given value is not nil.
func (_c *LearningPathCreate) SetNillableCurrentModule(v *int) *LearningPathCreate {
	if v != nil {
		_c.SetCurrentModule(*v)
	}
	return _c
}

// SetCompleted sets the "completed" field.
func (_c *LearningPathCreate) SetCompleted(v bool) *LearningPathCreate {
	_c.mutation.SetCompleted(v)
	return _c
}

// SetNillableCompleted sets the "completed" field if the given value is not nil.
func (_c *LearningPathCreate) SetNillableCompleted(v *bool) *LearningPathCreate {
	if v != nil {
		_c.SetCompleted(*v)
	}
	return _c
}

// SetModules sets the "modules" field.
func (_c *LearningPathCreate) SetModules(v []schema.ModuleDoc) *LearningPathCreate {
	_c.mutation.SetModules(v)
	return _c
}

// SetVersion sets the "version" field.
func (_c *LearningPathCreate) SetVersion(v int) *LearningPathCreate {
	_c.mutation.SetVersion(v)
	return _c
}

// SetNillableVersion sets the "version" field if the given value is not nil.
func (_c *LearningPathCreate) SetNillableVersion(v *int) *LearningPathCreate {
	if v != nil {
		_c.SetVersion(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *LearningPathCreate) SetCreatedAt(v time.Time) *LearningPathCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *LearningPathCreate) SetNillableCreatedAt(v *time.Time) *LearningPathCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *LearningPathCreate) SetUpdatedAt(v time.Time) *LearningPathCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *LearningPathCreate) SetNillableUpdatedAt(v *time.Time) *LearningPathCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// Mutation returns the LearningPathMutation object of the builder.
func (_c *LearningPathCreate) Mutation() *LearningPathMutation {
	return _c.mutation
}

// Save creates the LearningPath in the database.
func (_c *LearningPathCreate) Save(ctx context.Context) (*LearningPath, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *LearningPathCreate) SaveX(ctx context.Context) *LearningPath {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *LearningPathCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *LearningPathCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *LearningPathCreate) defaults() {
	if _, ok := _c.mutation.CurrentModule(); !ok {
		v := learningpath.DefaultCurrentModule
		_c.mutation.SetCurrentModule(v)
	}
	if _, ok := _c.mutation.Completed(); !ok {
		v := learningpath.DefaultCompleted
		_c.mutation.SetCompleted(v)
	}
	if _, ok := _c.mutation.Version(); !ok {
		v := learningpath.DefaultVersion
		_c.mutation.SetVersion(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := learningpath.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := learningpath.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *LearningPathCreate) check() error {
	if _, ok := _c.mutation.SessionID(); !ok {
		return &ValidationError{Name: "session_id", err: errors.New(`ent: missing required field "LearningPath.session_id"`)}
	}
	if v, ok := _c.mutation.SessionID(); ok {
		if err := learningpath.SessionIDValidator(v); err != nil {
			return &ValidationError{Name: "session_id", err: fmt.Errorf(`ent: validator failed for field "LearningPath.session_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.UserID(); !ok {
		return &ValidationError{Name: "user_id", err: errors.New(`ent: missing required field "LearningPath.user_id"`)}
	}
	if v, ok := _c.mutation.UserID(); ok {
		if err := learningpath.UserIDValidator(v); err != nil {
			return &ValidationError{Name: "user_id", err: fmt.Errorf(`ent: validator failed for field "LearningPath.user_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Skill(); !ok {
		return &ValidationError{Name: "skill", err: errors.New(`ent: missing required field "LearningPath.skill"`)}
	}
	if v, ok := _c.mutation.Skill(); ok {
		if err := learningpath.SkillValidator(v); err != nil {
			return &ValidationError{Name: "skill", err: fmt.Errorf(`ent: validator failed for field "LearningPath.skill": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Difficulty(); !ok {
		return &ValidationError{Name: "difficulty", err: errors.New(`ent: missing required field "LearningPath.difficulty"`)}
	}
	if _, ok := _c.mutation.TotalModules(); !ok {
		return &ValidationError{Name: "total_modules", err: errors.New(`ent: missing required field "LearningPath.total_modules"`)}
	}
	if _, ok := _c.mutation.CurrentModule(); !ok {
		return &ValidationError{Name: "current_module", err: errors.New(`ent: missing required field "LearningPath.current_module"`)}
	}
	if _, ok := _c.mutation.Completed(); !ok {
		return &ValidationError{Name: "completed", err: errors.New(`ent: missing required field "LearningPath.completed"`)}
	}
	if _, ok := _c.mutation.Modules(); !ok {
		return &ValidationError{Name: "modules", err: errors.New(`ent: missing required field "LearningPath.modules"`)}
	}
	if _, ok := _c.mutation.Version(); !ok {
		return &ValidationError{Name: "version", err: errors.New(`ent: missing required field "LearningPath.version"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "LearningPath.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "LearningPath.updated_at"`)}
	}
	return nil
}

func (_c *LearningPathCreate) sqlSave(ctx context.Context) (*LearningPath, error) {
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

func (_c *LearningPathCreate) createSpec() (*LearningPath, *sqlgraph.CreateSpec) {
	var (
		_node = &LearningPath{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(learningpath.Table, sqlgraph.NewFieldSpec(learningpath.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.SessionID(); ok {
		_spec.SetField(learningpath.FieldSessionID, field.TypeString, value)
		_node.SessionID = value
	}
	if value, ok := _c.mutation.UserID(); ok {
		_spec.SetField(learningpath.FieldUserID, field.TypeString, value)
		_node.UserID = value
	}
	if value, ok := _c.mutation.Skill(); ok {
		_spec.SetField(learningpath.FieldSkill, field.TypeString, value)
		_node.Skill = value
	}
	if value, ok := _c.mutation.Difficulty(); ok {
		_spec.SetField(learningpath.FieldDifficulty, field.TypeString, value)
		_node.Difficulty = value
	}
	if value, ok := _c.mutation.TotalModules(); ok {
		_spec.SetField(learningpath.FieldTotalModules, field.TypeInt, value)
		_node.TotalModules = value
	}
	if value, ok := _c.mutation.CurrentModule(); ok {
		_spec.SetField(learningpath.FieldCurrentModule, field.TypeInt, value)
		_node.CurrentModule = value
	}
	if value, ok := _c.mutation.Completed(); ok {
		_spec.SetField(learningpath.FieldCompleted, field.TypeBool, value)
		_node.Completed = value
	}
	if value, ok := _c.mutation.Modules(); ok {
		_spec.SetField(learningpath.FieldModules, field.TypeJSON, value)
		_node.Modules = value
	}
	if value, ok := _c.mutation.Version(); ok {
		_spec.SetField(learningpath.FieldVersion, field.TypeInt, value)
		_node.Version = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(learningpath.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(learningpath.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	return _node, _spec
}

// LearningPathCreateBulk is the builder for creating many LearningPath entities in bulk.
type LearningPathCreateBulk struct {
	config
	err      error
	builders []*LearningPathCreate
}

// Save creates the LearningPath entities in the database.
func (_c *LearningPathCreateBulk) Save(ctx context.Context) ([]*LearningPath, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*LearningPath, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*LearningPathMutation)
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
func (_c *LearningPathCreateBulk) SaveX(ctx context.Context) []*LearningPath {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *LearningPathCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *LearningPathCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
