// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/dialect/sql/sqljson"
	"entgo.io/ent/schema/field"
	"github.com/plaroindia/Pearl/ent/learningpath"
	"github.com/plaroindia/Pearl/ent/predicate"
	"github.com/plaroindia/Pearl/ent/schema"
)

// LearningPathUpdate is the builder for updating LearningPath entities.
type LearningPathUpdate struct {
	config
	hooks    []Hook
	mutation *LearningPathMutation
}

// Where appends a list predicates to the LearningPathUpdate builder.
func (_u *LearningPathUpdate) Where(ps ...predicate.LearningPath) *LearningPathUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetDifficulty sets the "difficulty" field.
func (_u *LearningPathUpdate) SetDifficulty(v string) *LearningPathUpdate {
	_u.mutation.SetDifficulty(v)
	return _u
}

// SetNillableDifficulty sets the "difficulty" field if the given value is not nil.
func (_u *LearningPathUpdate) SetNillableDifficulty(v *string) *LearningPathUpdate {
	if v != nil {
		_u.SetDifficulty(*v)
	}
	return _u
}

// SetTotalModules sets the "total_modules" field.
func (_u *LearningPathUpdate) SetTotalModules(v int) *LearningPathUpdate {
	_u.mutation.ResetTotalModules()
	_u.mutation.SetTotalModules(v)
	return _u
}

// SetNillableTotalModules sets the "total_modules" field if the given value is not nil.
func (_u *LearningPathUpdate) SetNillableTotalModules(v *int) *LearningPathUpdate {
	if v != nil {
		_u.SetTotalModules(*v)
	}
	return _u
}

// AddTotalModules adds value to the "total_modules" field.
func (_u *LearningPathUpdate) AddTotalModules(v int) *LearningPathUpdate {
	_u.mutation.AddTotalModules(v)
	return _u
}

// SetCurrentModule sets the "current_module" field.
func (_u *LearningPathUpdate) SetCurrentModule(v int) *LearningPathUpdate {
	_u.mutation.ResetCurrentModule()
	_u.mutation.SetCurrentModule(v)
	return _u
}

// SetNillableCurrentModule sets the "current_module" field if the given value is not nil.
func (_u *LearningPathUpdate) SetNillableCurrentModule(v *int) *LearningPathUpdate {
	if v != nil {
		_u.SetCurrentModule(*v)
	}
	return _u
}

// AddCurrentModule adds value to the "current_module" field.
func (_u *LearningPathUpdate) AddCurrentModule(v int) *LearningPathUpdate {
	_u.mutation.AddCurrentModule(v)
	return _u
}

// SetCompleted sets the "completed" field.
func (_u *LearningPathUpdate) SetCompleted(v bool) *LearningPathUpdate {
	_u.mutation.SetCompleted(v)
	return _u
}

// SetNillableCompleted sets the "completed" field if the given value is not nil.
func (_u *LearningPathUpdate) SetNillableCompleted(v *bool) *LearningPathUpdate {
	if v != nil {
		_u.SetCompleted(*v)
	}
	return _u
}

// SetModules sets the "modules" field.
func (_u *LearningPathUpdate) SetModules(v []schema.ModuleDoc) *LearningPathUpdate {
	_u.mutation.SetModules(v)
	return _u
}

// AppendModules appends value to the "modules" field.
func (_u *LearningPathUpdate) AppendModules(v []schema.ModuleDoc) *LearningPathUpdate {
	_u.mutation.AppendModules(v)
	return _u
}

// SetVersion sets the "version" field.
func (_u *LearningPathUpdate) SetVersion(v int) *LearningPathUpdate {
	_u.mutation.ResetVersion()
	_u.mutation.SetVersion(v)
	return _u
}

// SetNillableVersion sets the "version" field if the given value is not nil.
func (_u *LearningPathUpdate) SetNillableVersion(v *int) *LearningPathUpdate {
	if v != nil {
		_u.SetVersion(*v)
	}
	return _u
}

// AddVersion adds value to the "version" field.
func (_u *LearningPathUpdate) AddVersion(v int) *LearningPathUpdate {
	_u.mutation.AddVersion(v)
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *LearningPathUpdate) SetUpdatedAt(v time.Time) *LearningPathUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the LearningPathMutation object of the builder.
func (_u *LearningPathUpdate) Mutation() *LearningPathMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *LearningPathUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *LearningPathUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *LearningPathUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *LearningPathUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *LearningPathUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := learningpath.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

func (_u *LearningPathUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	_spec := sqlgraph.NewUpdateSpec(learningpath.Table, learningpath.Columns, sqlgraph.NewFieldSpec(learningpath.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Difficulty(); ok {
		_spec.SetField(learningpath.FieldDifficulty, field.TypeString, value)
	}
	if value, ok := _u.mutation.TotalModules(); ok {
		_spec.SetField(learningpath.FieldTotalModules, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTotalModules(); ok {
		_spec.AddField(learningpath.FieldTotalModules, field.TypeInt, value)
	}
	if value, ok := _u.mutation.CurrentModule(); ok {
		_spec.SetField(learningpath.FieldCurrentModule, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedCurrentModule(); ok {
		_spec.AddField(learningpath.FieldCurrentModule, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Completed(); ok {
		_spec.SetField(learningpath.FieldCompleted, field.TypeBool, value)
	}
	if value, ok := _u.mutation.Modules(); ok {
		_spec.SetField(learningpath.FieldModules, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedModules(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, learningpath.FieldModules, value)
		})
	}
	if value, ok := _u.mutation.Version(); ok {
		_spec.SetField(learningpath.FieldVersion, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedVersion(); ok {
		_spec.AddField(learningpath.FieldVersion, field.TypeInt, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(learningpath.FieldUpdatedAt, field.TypeTime, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{learningpath.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// LearningPathUpdateOne is the builder for updating a single LearningPath entity.
type LearningPathUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *LearningPathMutation
}

// SetDifficulty sets the "difficulty" field.
func (_u *LearningPathUpdateOne) SetDifficulty(v string) *LearningPathUpdateOne {
	_u.mutation.SetDifficulty(v)
	return _u
}

// SetNillableDifficulty sets the "difficulty" field if the given value is not nil.
func (_u *LearningPathUpdateOne) SetNillableDifficulty(v *string) *LearningPathUpdateOne {
	if v != nil {
		_u.SetDifficulty(*v)
	}
	return _u
}

// SetTotalModules sets the "total_modules" field.
func (_u *LearningPathUpdateOne) SetTotalModules(v int) *LearningPathUpdateOne {
	_u.mutation.ResetTotalModules()
	_u.mutation.SetTotalModules(v)
	return _u
}

// SetNillableTotalModules sets the "total_modules" field if the given value is not nil.
func (_u *LearningPathUpdateOne) SetNillableTotalModules(v *int) *LearningPathUpdateOne {
	if v != nil {
		_u.SetTotalModules(*v)
	}
	return _u
}

// AddTotalModules adds value to the "total_modules" field.
func (_u *LearningPathUpdateOne) AddTotalModules(v int) *LearningPathUpdateOne {
	_u.mutation.AddTotalModules(v)
	return _u
}

// SetCurrentModule sets the "current_module" field.
func (_u *LearningPathUpdateOne) SetCurrentModule(v int) *LearningPathUpdateOne {
	_u.mutation.ResetCurrentModule()
	_u.mutation.SetCurrentModule(v)
	return _u
}

// SetNillableCurrentModule sets the "current_module" field if the given value is not nil.
func (_u *LearningPathUpdateOne) SetNillableCurrentModule(v *int) *LearningPathUpdateOne {
	if v != nil {
		_u.SetCurrentModule(*v)
	}
	return _u
}

// AddCurrentModule adds value to the "current_module" field.
func (_u *LearningPathUpdateOne) AddCurrentModule(v int) *LearningPathUpdateOne {
	_u.mutation.AddCurrentModule(v)
	return _u
}

// SetCompleted sets the "completed" field.
func (_u *LearningPathUpdateOne) SetCompleted(v bool) *LearningPathUpdateOne {
	_u.mutation.SetCompleted(v)
	return _u
}

// SetNillableCompleted sets the "completed" field if the given value is not nil.
func (_u *LearningPathUpdateOne) SetNillableCompleted(v *bool) *LearningPathUpdateOne {
	if v != nil {
		_u.SetCompleted(*v)
	}
	return _u
}

// SetModules sets the "modules" field.
func (_u *LearningPathUpdateOne) SetModules(v []schema.ModuleDoc) *LearningPathUpdateOne {
	_u.mutation.SetModules(v)
	return _u
}

// AppendModules appends value to the "modules" field.
func (_u *LearningPathUpdateOne) AppendModules(v []schema.ModuleDoc) *LearningPathUpdateOne {
	_u.mutation.AppendModules(v)
	return _u
}

// SetVersion sets the "version" field.
func (_u *LearningPathUpdateOne) SetVersion(v int) *LearningPathUpdateOne {
	_u.mutation.ResetVersion()
	_u.mutation.SetVersion(v)
	return _u
}

// SetNillableVersion sets the "version" field if the given value is not nil.
func (_u *LearningPathUpdateOne) SetNillableVersion(v *int) *LearningPathUpdateOne {
	if v != nil {
		_u.SetVersion(*v)
	}
	return _u
}

// AddVersion adds value to the "version" field.
func (_u *LearningPathUpdateOne) AddVersion(v int) *LearningPathUpdateOne {
	_u.mutation.AddVersion(v)
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *LearningPathUpdateOne) SetUpdatedAt(v time.Time) *LearningPathUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the LearningPathMutation object of the builder.
func (_u *LearningPathUpdateOne) Mutation() *LearningPathMutation {
	return _u.mutation
}

// Where appends a list predicates to the LearningPathUpdate builder.
func (_u *LearningPathUpdateOne) Where(ps ...predicate.LearningPath) *LearningPathUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *LearningPathUpdateOne) Select(field string, fields ...string) *LearningPathUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated LearningPath entity.
func (_u *LearningPathUpdateOne) Save(ctx context.Context) (*LearningPath, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *LearningPathUpdateOne) SaveX(ctx context.Context) *LearningPath {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *LearningPathUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *LearningPathUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *LearningPathUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := learningpath.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

func (_u *LearningPathUpdateOne) sqlSave(ctx context.Context) (_node *LearningPath, err error) {
	_spec := sqlgraph.NewUpdateSpec(learningpath.Table, learningpath.Columns, sqlgraph.NewFieldSpec(learningpath.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "LearningPath.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, learningpath.FieldID)
		for _, f := range fields {
			if !learningpath.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != learningpath.FieldID {
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
	if value, ok := _u.mutation.Difficulty(); ok {
		_spec.SetField(learningpath.FieldDifficulty, field.TypeString, value)
	}
	if value, ok := _u.mutation.TotalModules(); ok {
		_spec.SetField(learningpath.FieldTotalModules, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTotalModules(); ok {
		_spec.AddField(learningpath.FieldTotalModules, field.TypeInt, value)
	}
	if value, ok := _u.mutation.CurrentModule(); ok {
		_spec.SetField(learningpath.FieldCurrentModule, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedCurrentModule(); ok {
		_spec.AddField(learningpath.FieldCurrentModule, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Completed(); ok {
		_spec.SetField(learningpath.FieldCompleted, field.TypeBool, value)
	}
	if value, ok := _u.mutation.Modules(); ok {
		_spec.SetField(learningpath.FieldModules, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedModules(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, learningpath.FieldModules, value)
		})
	}
	if value, ok := _u.mutation.Version(); ok {
		_spec.SetField(learningpath.FieldVersion, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedVersion(); ok {
		_spec.AddField(learningpath.FieldVersion, field.TypeInt, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(learningpath.FieldUpdatedAt, field.TypeTime, value)
	}
	_node = &LearningPath{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{learningpath.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
