// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/plaroindia/Pearl/ent/practiceattempt"
	"github.com/plaroindia/Pearl/ent/predicate"
)

// PracticeAttemptDelete is the builder for deleting a PracticeAttempt entity.
type PracticeAttemptDelete struct {
	config
	hooks    []Hook
	mutation *PracticeAttemptMutation
}

// Where appends a list predicates to the PracticeAttemptDelete builder.
func (_d *PracticeAttemptDelete) Where(ps ...predicate.PracticeAttempt) *PracticeAttemptDelete {
	_d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query and returns how many vertices were deleted.
func (_d *PracticeAttemptDelete) Exec(ctx context.Context) (int, error) {
	return withHooks(ctx, _d.sqlExec, _d.mutation, _d.hooks)
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *PracticeAttemptDelete) ExecX(ctx context.Context) int {
	n, err := _d.Exec(ctx)
	if err != nil {
		panic(err)
	}
	return n
}

func (_d *PracticeAttemptDelete) sqlExec(ctx context.Context) (int, error) {
	_spec := sqlgraph.NewDeleteSpec(practiceattempt.Table, sqlgraph.NewFieldSpec(practiceattempt.FieldID, field.TypeInt))
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

// PracticeAttemptDeleteOne is the builder for deleting a single PracticeAttempt entity.
type PracticeAttemptDeleteOne struct {
	_d *PracticeAttemptDelete
}

// Where appends a list predicates to the PracticeAttemptDelete builder.
func (_d *PracticeAttemptDeleteOne) Where(ps ...predicate.PracticeAttempt) *PracticeAttemptDeleteOne {
	_d._d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query.
func (_d *PracticeAttemptDeleteOne) Exec(ctx context.Context) error {
	n, err := _d._d.Exec(ctx)
	switch {
	case err != nil:
		return err
	case n == 0:
		return &NotFoundError{practiceattempt.Label}
	default:
		return nil
	}
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *PracticeAttemptDeleteOne) ExecX(ctx context.Context) {
	if err := _d.Exec(ctx); err != nil {
		panic(err)
	}
}
