// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/plaroindia/Pearl/ent/predicate"
	"github.com/plaroindia/Pearl/ent/skillprofile"
)

// SkillProfileUpdate is the builder for updating SkillProfile entities.
type SkillProfileUpdate struct {
	config
	hooks    []Hook
	mutation *SkillProfileMutation
}

// Where appends a list predicates to the SkillProfileUpdate builder.
func (_u *SkillProfileUpdate) Where(ps ...predicate.SkillProfile) *SkillProfileUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetConfidence sets the "confidence" field.
func (_u *SkillProfileUpdate) SetConfidence(v float64) *SkillProfileUpdate {
	_u.mutation.ResetConfidence()
	_u.mutation.SetConfidence(v)
	return _u
}

// SetNillableConfidence sets the "confidence" field if the given value is not nil.
func (_u *SkillProfileUpdate) SetNillableConfidence(v *float64) *SkillProfileUpdate {
	if v != nil {
		_u.SetConfidence(*v)
	}
	return _u
}

// AddConfidence adds value to the "confidence" field.
func (_u *SkillProfileUpdate) AddConfidence(v float64) *SkillProfileUpdate {
	_u.mutation.AddConfidence(v)
	return _u
}

// SetEvidence sets the "evidence" field.
func (_u *SkillProfileUpdate) SetEvidence(v map[string]int) *SkillProfileUpdate {
	_u.mutation.SetEvidence(v)
	return _u
}

// SetPracticeCount sets the "practice_count" field.
func (_u *SkillProfileUpdate) SetPracticeCount(v int) *SkillProfileUpdate {
	_u.mutation.ResetPracticeCount()
	_u.mutation.SetPracticeCount(v)
	return _u
}

// SetNillablePracticeCount sets the "practice_count" field if the given value is not nil.
func (_u *SkillProfileUpdate) SetNillablePracticeCount(v *int) *SkillProfileUpdate {
	if v != nil {
		_u.SetPracticeCount(*v)
	}
	return _u
}

// AddPracticeCount adds value to the "practice_count" field.
func (_u *SkillProfileUpdate) AddPracticeCount(v int) *SkillProfileUpdate {
	_u.mutation.AddPracticeCount(v)
	return _u
}

// SetLastPracticedAt sets the "last_practiced_at" field.
func (_u *SkillProfileUpdate) SetLastPracticedAt(v time.Time) *SkillProfileUpdate {
	_u.mutation.SetLastPracticedAt(v)
	return _u
}

// SetNillableLastPracticedAt sets the "last_practiced_at" field if the given value is not nil.
func (_u *SkillProfileUpdate) SetNillableLastPracticedAt(v *time.Time) *SkillProfileUpdate {
	if v != nil {
		_u.SetLastPracticedAt(*v)
	}
	return _u
}

// ClearLastPracticedAt clears the value of the "last_practiced_at" field.
func (_u *SkillProfileUpdate) ClearLastPracticedAt() *SkillProfileUpdate {
	_u.mutation.ClearLastPracticedAt()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *SkillProfileUpdate) SetUpdatedAt(v time.Time) *SkillProfileUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the SkillProfileMutation object of the builder.
func (_u *SkillProfileUpdate) Mutation() *SkillProfileMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *SkillProfileUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *SkillProfileUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *SkillProfileUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *SkillProfileUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *SkillProfileUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := skillprofile.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

func (_u *SkillProfileUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	_spec := sqlgraph.NewUpdateSpec(skillprofile.Table, skillprofile.Columns, sqlgraph.NewFieldSpec(skillprofile.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Confidence(); ok {
		_spec.SetField(skillprofile.FieldConfidence, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedConfidence(); ok {
		_spec.AddField(skillprofile.FieldConfidence, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.Evidence(); ok {
		_spec.SetField(skillprofile.FieldEvidence, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.PracticeCount(); ok {
		_spec.SetField(skillprofile.FieldPracticeCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedPracticeCount(); ok {
		_spec.AddField(skillprofile.FieldPracticeCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.LastPracticedAt(); ok {
		_spec.SetField(skillprofile.FieldLastPracticedAt, field.TypeTime, value)
	}
	if _u.mutation.LastPracticedAtCleared() {
		_spec.ClearField(skillprofile.FieldLastPracticedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(skillprofile.FieldUpdatedAt, field.TypeTime, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{skillprofile.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// SkillProfileUpdateOne is the builder for updating a single SkillProfile entity.
type SkillProfileUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *SkillProfileMutation
}

// SetConfidence sets the "confidence" field.
func (_u *SkillProfileUpdateOne) SetConfidence(v float64) *SkillProfileUpdateOne {
	_u.mutation.ResetConfidence()
	_u.mutation.SetConfidence(v)
	return _u
}

// SetNillableConfidence sets the "confidence" field if the given value is not nil.
func (_u *SkillProfileUpdateOne) SetNillableConfidence(v *float64) *SkillProfileUpdateOne {
	if v != nil {
		_u.SetConfidence(*v)
	}
	return _u
}

// AddConfidence adds value to the "confidence" field.
func (_u *SkillProfileUpdateOne) AddConfidence(v float64) *SkillProfileUpdateOne {
	_u.mutation.AddConfidence(v)
	return _u
}

// SetEvidence sets the "evidence" field.
func (_u *SkillProfileUpdateOne) SetEvidence(v map[string]int) *SkillProfileUpdateOne {
	_u.mutation.SetEvidence(v)
	return _u
}

// SetPracticeCount sets the "practice_count" field.
func (_u *SkillProfileUpdateOne) SetPracticeCount(v int) *SkillProfileUpdateOne {
	_u.mutation.ResetPracticeCount()
	_u.mutation.SetPracticeCount(v)
	return _u
}

// SetNillablePracticeCount sets the "practice_count" field if the given value is not nil.
func (_u *SkillProfileUpdateOne) SetNillablePracticeCount(v *int) *SkillProfileUpdateOne {
	if v != nil {
		_u.SetPracticeCount(*v)
	}
	return _u
}

// AddPracticeCount adds value to the "practice_count" field.
func (_u *SkillProfileUpdateOne) AddPracticeCount(v int) *SkillProfileUpdateOne {
	_u.mutation.AddPracticeCount(v)
	return _u
}

// SetLastPracticedAt sets the "last_practiced_at" field.
func (_u *SkillProfileUpdateOne) SetLastPracticedAt(v time.Time) *SkillProfileUpdateOne {
	_u.mutation.SetLastPracticedAt(v)
	return _u
}

// SetNillableLastPracticedAt sets the "last_practiced_at" field if the given value is not nil.
func (_u *SkillProfileUpdateOne) SetNillableLastPracticedAt(v *time.Time) *SkillProfileUpdateOne {
	if v != nil {
		_u.SetLastPracticedAt(*v)
	}
	return _u
}

// ClearLastPracticedAt clears the value of the "last_practiced_at" field.
func (_u *SkillProfileUpdateOne) ClearLastPracticedAt() *SkillProfileUpdateOne {
	_u.mutation.ClearLastPracticedAt()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *SkillProfileUpdateOne) SetUpdatedAt(v time.Time) *SkillProfileUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the SkillProfileMutation object of the builder.
func (_u *SkillProfileUpdateOne) Mutation() *SkillProfileMutation {
	return _u.mutation
}

// Where appends a list predicates to the SkillProfileUpdate builder.
func (_u *SkillProfileUpdateOne) Where(ps ...predicate.SkillProfile) *SkillProfileUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *SkillProfileUpdateOne) Select(field string, fields ...string) *SkillProfileUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated SkillProfile entity.
func (_u *SkillProfileUpdateOne) Save(ctx context.Context) (*SkillProfile, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *SkillProfileUpdateOne) SaveX(ctx context.Context) *SkillProfile {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *SkillProfileUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *SkillProfileUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *SkillProfileUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := skillprofile.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

func (_u *SkillProfileUpdateOne) sqlSave(ctx context.Context) (_node *SkillProfile, err error) {
	_spec := sqlgraph.NewUpdateSpec(skillprofile.Table, skillprofile.Columns, sqlgraph.NewFieldSpec(skillprofile.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "SkillProfile.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, skillprofile.FieldID)
		for _, f := range fields {
			if !skillprofile.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != skillprofile.FieldID {
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
	if value, ok := _u.mutation.Confidence(); ok {
		_spec.SetField(skillprofile.FieldConfidence, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedConfidence(); ok {
		_spec.AddField(skillprofile.FieldConfidence, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.Evidence(); ok {
		_spec.SetField(skillprofile.FieldEvidence, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.PracticeCount(); ok {
		_spec.SetField(skillprofile.FieldPracticeCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedPracticeCount(); ok {
		_spec.AddField(skillprofile.FieldPracticeCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.LastPracticedAt(); ok {
		_spec.SetField(skillprofile.FieldLastPracticedAt, field.TypeTime, value)
	}
	if _u.mutation.LastPracticedAtCleared() {
		_spec.ClearField(skillprofile.FieldLastPracticedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(skillprofile.FieldUpdatedAt, field.TypeTime, value)
	}
	_node = &SkillProfile{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{skillprofile.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
