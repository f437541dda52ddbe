// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/plaroindia/Pearl/ent/checkpointresult"
	"github.com/plaroindia/Pearl/ent/predicate"
)

// CheckpointResultDelete is the builder for deleting a CheckpointResult entity.
type CheckpointResultDelete struct {
	config
	hooks    []Hook
	mutation *CheckpointResultMutation
}

// Where appends a list predicates to the CheckpointResultDelete builder.
func (_d *CheckpointResultDelete) Where(ps ...predicate.CheckpointResult) *CheckpointResultDelete {
	_d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query and returns how many vertices were deleted.
func (_d *CheckpointResultDelete) Exec(ctx context.Context) (int, error) {
	return withHooks(ctx, _d.sqlExec, _d.mutation, _d.hooks)
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *CheckpointResultDelete) ExecX(ctx context.Context) int {
	n, err := _d.Exec(ctx)
	if err != nil {
		panic(err)
	}
	return n
}

func (_d *CheckpointResultDelete) sqlExec(ctx context.Context) (int, error) {
	_spec := sqlgraph.NewDeleteSpec(checkpointresult.Table, sqlgraph.NewFieldSpec(checkpointresult.FieldID, field.TypeInt))
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

// CheckpointResultDeleteOne is the builder for deleting a single CheckpointResult entity.
type CheckpointResultDeleteOne struct {
	_d *CheckpointResultDelete
}

// Where appends a list predicates to the CheckpointResultDelete builder.
func (_d *CheckpointResultDeleteOne) Where(ps ...predicate.CheckpointResult) *CheckpointResultDeleteOne {
	_d._d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query.
func (_d *CheckpointResultDeleteOne) Exec(ctx context.Context) error {
	n, err := _d._d.Exec(ctx)
	switch {
	case err != nil:
		return err
	case n == 0:
		return &NotFoundError{checkpointresult.Label}
	default:
		return nil
	}
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *CheckpointResultDeleteOne) ExecX(ctx context.Context) {
	if err := _d.Exec(ctx); err != nil {
		panic(err)
	}
}
