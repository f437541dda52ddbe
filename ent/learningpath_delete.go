// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/plaroindia/Pearl/ent/learningpath"
	"github.com/plaroindia/Pearl/ent/predicate"
)

// LearningPathDelete is the builder for deleting a LearningPath entity.
type LearningPathDelete struct {
	config
	hooks    []Hook
	mutation *LearningPathMutation
}

// Where appends a list predicates to the LearningPathDelete builder.
func (_d *LearningPathDelete) Where(ps ...predicate.LearningPath) *LearningPathDelete {
	_d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query and returns how many vertices were deleted.
func (_d *LearningPathDelete) Exec(ctx context.Context) (int, error) {
	return withHooks(ctx, _d.sqlExec, _d.mutation, _d.hooks)
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *LearningPathDelete) ExecX(ctx context.Context) int {
	n, err := _d.Exec(ctx)
	if err != nil {
		panic(err)
	}
	return n
}

func (_d *LearningPathDelete) sqlExec(ctx context.Context) (int, error) {
	_spec := sqlgraph.NewDeleteSpec(learningpath.Table, sqlgraph.NewFieldSpec(learningpath.FieldID, field.TypeInt))
	if ps := _d.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	affected, err := sqlgraph.DeleteNodes(ctx, _d.driver, _spec)
	if err != nil && sqlgraph.IsConstraintError(err) {
		err = &ConstraintError{msg: err.Error(), wrap: err}
	}
	_d.mutation.done = true
	return affected, err
}

// LearningPathDeleteOne is the builder for deleting a single LearningPath entity.
type LearningPathDeleteOne struct {
	_d *LearningPathDelete
}

// Where appends a list predicates to the LearningPathDelete builder.
func (_d *LearningPathDeleteOne) Where(ps ...predicate.LearningPath) *LearningPathDeleteOne {
	_d._d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query.
func (_d *LearningPathDeleteOne) Exec(ctx context.Context) error {
	n, err := _d._d.Exec(ctx)
	switch {
	case err != nil:
		return err
	case n == 0:
		return &NotFoundError{learningpath.Label}
	default:
		return nil
	}
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *LearningPathDeleteOne) ExecX(ctx context.Context) {
	if err := _d.Exec(ctx); err != nil {
		panic(err)
	}
}
