// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/easypath-ai/easypath/ent/extractedvariable"
	"github.com/easypath-ai/easypath/ent/predicate"
)

// ExtractedVariableDelete is the builder for deleting a ExtractedVariable entity.
type ExtractedVariableDelete struct {
	config
	hooks    []Hook
	mutation *ExtractedVariableMutation
}

// Where appends a list predicates to the ExtractedVariableDelete builder.
func (_d *ExtractedVariableDelete) Where(ps ...predicate.ExtractedVariable) *ExtractedVariableDelete {
	_d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query and returns how many vertices were deleted.
func (_d *ExtractedVariableDelete) Exec(ctx context.Context) (int, error) {
	return withHooks(ctx, _d.sqlExec, _d.mutation, _d.hooks)
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *ExtractedVariableDelete) ExecX(ctx context.Context) int {
	n, err := _d.Exec(ctx)
	if err != nil {
		panic(err)
	}
	return n
}

func (_d *ExtractedVariableDelete) sqlExec(ctx context.Context) (int, error) {
	_spec := sqlgraph.NewDeleteSpec(extractedvariable.Table, sqlgraph.NewFieldSpec(extractedvariable.FieldID, field.TypeInt))
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

// ExtractedVariableDeleteOne is the builder for deleting a single ExtractedVariable entity.
type ExtractedVariableDeleteOne struct {
	_d *ExtractedVariableDelete
}

// Where appends a list predicates to the ExtractedVariableDelete builder.
func (_d *ExtractedVariableDeleteOne) Where(ps ...predicate.ExtractedVariable) *ExtractedVariableDeleteOne {
	_d._d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query.
func (_d *ExtractedVariableDeleteOne) Exec(ctx context.Context) error {
	n, err := _d._d.Exec(ctx)
	switch {
	case err != nil:
		return err
	case n == 0:
		return &NotFoundError{extractedvariable.Label}
	default:
		return nil
	}
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *ExtractedVariableDeleteOne) ExecX(ctx context.Context) {
	if err := _d.Exec(ctx); err != nil {
		panic(err)
	}
}
