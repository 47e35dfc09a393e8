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
	"github.com/codeready-toolchain/runsheet/ent/predicate"
	"github.com/codeready-toolchain/runsheet/ent/timelineitem"
)

// TimelineItemUpdate is the builder for updating TimelineItem entities.
type TimelineItemUpdate struct {
	config
	hooks    []Hook
	mutation *TimelineItemMutation
}

// Where appends a list predicates to the TimelineItemUpdate builder.
func (_u *TimelineItemUpdate) Where(ps ...predicate.TimelineItem) *TimelineItemUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetTitle sets the "title" field.
func (_u *TimelineItemUpdate) SetTitle(v string) *TimelineItemUpdate {
	_u.mutation.SetTitle(v)
	return _u
}

// SetNillableTitle sets the "title" field if the given value is not nil.
func (_u *TimelineItemUpdate) SetNillableTitle(v *string) *TimelineItemUpdate {
	if v != nil {
		_u.SetTitle(*v)
	}
	return _u
}

// SetDescription sets the "description" field.
func (_u *TimelineItemUpdate) SetDescription(v string) *TimelineItemUpdate {
	_u.mutation.SetDescription(v)
	return _u
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (_u *TimelineItemUpdate) SetNillableDescription(v *string) *TimelineItemUpdate {
	if v != nil {
		_u.SetDescription(*v)
	}
	return _u
}

// ClearDescription clears the value of the "description" field.
func (_u *TimelineItemUpdate) ClearDescription() *TimelineItemUpdate {
	_u.mutation.ClearDescription()
	return _u
}

// SetCategory sets the "category" field.
func (_u *TimelineItemUpdate) SetCategory(v timelineitem.Category) *TimelineItemUpdate {
	_u.mutation.SetCategory(v)
	return _u
}

// SetNillableCategory sets the "category" field if the given value is not nil.
func (_u *TimelineItemUpdate) SetNillableCategory(v *timelineitem.Category) *TimelineItemUpdate {
	if v != nil {
		_u.SetCategory(*v)
	}
	return _u
}

// SetStartTime sets the "start_time" field.
func (_u *TimelineItemUpdate) SetStartTime(v time.Time) *TimelineItemUpdate {
	_u.mutation.SetStartTime(v)
	return _u
}

// SetNillableStartTime sets the "start_time" field if the given value is not nil.
func (_u *TimelineItemUpdate) SetNillableStartTime(v *time.Time) *TimelineItemUpdate {
	if v != nil {
		_u.SetStartTime(*v)
	}
	return _u
}

// SetEndTime sets the "end_time" field.
func (_u *TimelineItemUpdate) SetEndTime(v time.Time) *TimelineItemUpdate {
	_u.mutation.SetEndTime(v)
	return _u
}

// SetNillableEndTime sets the "end_time" field if the given value is not nil.
func (_u *TimelineItemUpdate) SetNillableEndTime(v *time.Time) *TimelineItemUpdate {
	if v != nil {
		_u.SetEndTime(*v)
	}
	return _u
}

// ClearEndTime clears the value of the "end_time" field.
func (_u *TimelineItemUpdate) ClearEndTime() *TimelineItemUpdate {
	_u.mutation.ClearEndTime()
	return _u
}

// SetStatus sets the "status" field.
func (_u *TimelineItemUpdate) SetStatus(v timelineitem.Status) *TimelineItemUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *TimelineItemUpdate) SetNillableStatus(v *timelineitem.Status) *TimelineItemUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetOrderIndex sets the "order_index" field.
func (_u *TimelineItemUpdate) SetOrderIndex(v int) *TimelineItemUpdate {
	_u.mutation.ResetOrderIndex()
	_u.mutation.SetOrderIndex(v)
	return _u
}

// SetNillableOrderIndex sets the "order_index" field if the given value is not nil.
func (_u *TimelineItemUpdate) SetNillableOrderIndex(v *int) *TimelineItemUpdate {
	if v != nil {
		_u.SetOrderIndex(*v)
	}
	return _u
}

// AddOrderIndex adds value to the "order_index" field.
func (_u *TimelineItemUpdate) AddOrderIndex(v int) *TimelineItemUpdate {
	_u.mutation.AddOrderIndex(v)
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *TimelineItemUpdate) SetUpdatedAt(v time.Time) *TimelineItemUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the TimelineItemMutation object of the builder.
func (_u *TimelineItemUpdate) Mutation() *TimelineItemMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *TimelineItemUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *TimelineItemUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *TimelineItemUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *TimelineItemUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *TimelineItemUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := timelineitem.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *TimelineItemUpdate) check() error {
	if v, ok := _u.mutation.Title(); ok {
		if err := timelineitem.TitleValidator(v); err != nil {
			return &ValidationError{Name: "title", err: fmt.Errorf(`ent: validator failed for field "TimelineItem.title": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Category(); ok {
		if err := timelineitem.CategoryValidator(v); err != nil {
			return &ValidationError{Name: "category", err: fmt.Errorf(`ent: validator failed for field "TimelineItem.category": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := timelineitem.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "TimelineItem.status": %w`, err)}
		}
	}
	if _u.mutation.EventCleared() && len(_u.mutation.EventIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "TimelineItem.event"`)
	}
	return nil
}

func (_u *TimelineItemUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(timelineitem.Table, timelineitem.Columns, sqlgraph.NewFieldSpec(timelineitem.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Title(); ok {
		_spec.SetField(timelineitem.FieldTitle, field.TypeString, value)
	}
	if value, ok := _u.mutation.Description(); ok {
		_spec.SetField(timelineitem.FieldDescription, field.TypeString, value)
	}
	if _u.mutation.DescriptionCleared() {
		_spec.ClearField(timelineitem.FieldDescription, field.TypeString)
	}
	if value, ok := _u.mutation.Category(); ok {
		_spec.SetField(timelineitem.FieldCategory, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.StartTime(); ok {
		_spec.SetField(timelineitem.FieldStartTime, field.TypeTime, value)
	}
	if value, ok := _u.mutation.EndTime(); ok {
		_spec.SetField(timelineitem.FieldEndTime, field.TypeTime, value)
	}
	if _u.mutation.EndTimeCleared() {
		_spec.ClearField(timelineitem.FieldEndTime, field.TypeTime)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(timelineitem.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.OrderIndex(); ok {
		_spec.SetField(timelineitem.FieldOrderIndex, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedOrderIndex(); ok {
		_spec.AddField(timelineitem.FieldOrderIndex, field.TypeInt, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(timelineitem.FieldUpdatedAt, field.TypeTime, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{timelineitem.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// TimelineItemUpdateOne is the builder for updating a single TimelineItem entity.
type TimelineItemUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *TimelineItemMutation
}

// SetTitle sets the "title" field.
func (_u *TimelineItemUpdateOne) SetTitle(v string) *TimelineItemUpdateOne {
	_u.mutation.SetTitle(v)
	return _u
}

// SetNillableTitle sets the "title" field if the given value is not nil.
func (_u *TimelineItemUpdateOne) SetNillableTitle(v *string) *TimelineItemUpdateOne {
	if v != nil {
		_u.SetTitle(*v)
	}
	return _u
}

// SetDescription sets the "description" field.
func (_u *TimelineItemUpdateOne) SetDescription(v string) *TimelineItemUpdateOne {
	_u.mutation.SetDescription(v)
	return _u
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (_u *TimelineItemUpdateOne) SetNillableDescription(v *string) *TimelineItemUpdateOne {
	if v != nil {
		_u.SetDescription(*v)
	}
	return _u
}

// ClearDescription clears the value of the "description" field.
func (_u *TimelineItemUpdateOne) ClearDescription() *TimelineItemUpdateOne {
	_u.mutation.ClearDescription()
	return _u
}

// SetCategory sets the "category" field.
func (_u *TimelineItemUpdateOne) SetCategory(v timelineitem.Category) *TimelineItemUpdateOne {
	_u.mutation.SetCategory(v)
	return _u
}

// SetNillableCategory sets the "category" field if the given value is not nil.
func (_u *TimelineItemUpdateOne) SetNillableCategory(v *timelineitem.Category) *TimelineItemUpdateOne {
	if v != nil {
		_u.SetCategory(*v)
	}
	return _u
}

// SetStartTime sets the "start_time" field.
func (_u *TimelineItemUpdateOne) SetStartTime(v time.Time) *TimelineItemUpdateOne {
	_u.mutation.SetStartTime(v)
	return _u
}

// SetNillableStartTime sets the "start_time" field if the given value is not nil.
func (_u *TimelineItemUpdateOne) SetNillableStartTime(v *time.Time) *TimelineItemUpdateOne {
	if v != nil {
		_u.SetStartTime(*v)
	}
	return _u
}

// SetEndTime sets the "end_time" field.
func (_u *TimelineItemUpdateOne) SetEndTime(v time.Time) *TimelineItemUpdateOne {
	_u.mutation.SetEndTime(v)
	return _u
}

// SetNillableEndTime sets the "end_time" field if the given value is not nil.
func (_u *TimelineItemUpdateOne) SetNillableEndTime(v *time.Time) *TimelineItemUpdateOne {
	if v != nil {
		_u.SetEndTime(*v)
	}
	return _u
}

// ClearEndTime clears the value of the "end_time" field.
func (_u *TimelineItemUpdateOne) ClearEndTime() *TimelineItemUpdateOne {
	_u.mutation.ClearEndTime()
	return _u
}

// SetStatus sets the "status" field.
func (_u *TimelineItemUpdateOne) SetStatus(v timelineitem.Status) *TimelineItemUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *TimelineItemUpdateOne) SetNillableStatus(v *timelineitem.Status) *TimelineItemUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetOrderIndex sets the "order_index" field.
func (_u *TimelineItemUpdateOne) SetOrderIndex(v int) *TimelineItemUpdateOne {
	_u.mutation.ResetOrderIndex()
	_u.mutation.SetOrderIndex(v)
	return _u
}

// SetNillableOrderIndex sets the "order_index" field if the given value is not nil.
func (_u *TimelineItemUpdateOne) SetNillableOrderIndex(v *int) *TimelineItemUpdateOne {
	if v != nil {
		_u.SetOrderIndex(*v)
	}
	return _u
}

// AddOrderIndex adds value to the "order_index" field.
func (_u *TimelineItemUpdateOne) AddOrderIndex(v int) *TimelineItemUpdateOne {
	_u.mutation.AddOrderIndex(v)
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *TimelineItemUpdateOne) SetUpdatedAt(v time.Time) *TimelineItemUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the TimelineItemMutation object of the builder.
func (_u *TimelineItemUpdateOne) Mutation() *TimelineItemMutation {
	return _u.mutation
}

// Where appends a list predicates to the TimelineItemUpdate builder.
func (_u *TimelineItemUpdateOne) Where(ps ...predicate.TimelineItem) *TimelineItemUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *TimelineItemUpdateOne) Select(field string, fields ...string) *TimelineItemUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated TimelineItem entity.
func (_u *TimelineItemUpdateOne) Save(ctx context.Context) (*TimelineItem, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *TimelineItemUpdateOne) SaveX(ctx context.Context) *TimelineItem {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *TimelineItemUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *TimelineItemUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *TimelineItemUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := timelineitem.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *TimelineItemUpdateOne) check() error {
	if v, ok := _u.mutation.Title(); ok {
		if err := timelineitem.TitleValidator(v); err != nil {
			return &ValidationError{Name: "title", err: fmt.Errorf(`ent: validator failed for field "TimelineItem.title": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Category(); ok {
		if err := timelineitem.CategoryValidator(v); err != nil {
			return &ValidationError{Name: "category", err: fmt.Errorf(`ent: validator failed for field "TimelineItem.category": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := timelineitem.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "TimelineItem.status": %w`, err)}
		}
	}
	if _u.mutation.EventCleared() && len(_u.mutation.EventIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "TimelineItem.event"`)
	}
	return nil
}

func (_u *TimelineItemUpdateOne) sqlSave(ctx context.Context) (_node *TimelineItem, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(timelineitem.Table, timelineitem.Columns, sqlgraph.NewFieldSpec(timelineitem.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "TimelineItem.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, timelineitem.FieldID)
		for _, f := range fields {
			if !timelineitem.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != timelineitem.FieldID {
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
	if value, ok := _u.mutation.Title(); ok {
		_spec.SetField(timelineitem.FieldTitle, field.TypeString, value)
	}
	if value, ok := _u.mutation.Description(); ok {
		_spec.SetField(timelineitem.FieldDescription, field.TypeString, value)
	}
	if _u.mutation.DescriptionCleared() {
		_spec.ClearField(timelineitem.FieldDescription, field.TypeString)
	}
	if value, ok := _u.mutation.Category(); ok {
		_spec.SetField(timelineitem.FieldCategory, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.StartTime(); ok {
		_spec.SetField(timelineitem.FieldStartTime, field.TypeTime, value)
	}
	if value, ok := _u.mutation.EndTime(); ok {
		_spec.SetField(timelineitem.FieldEndTime, field.TypeTime, value)
	}
	if _u.mutation.EndTimeCleared() {
		_spec.ClearField(timelineitem.FieldEndTime, field.TypeTime)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(timelineitem.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.OrderIndex(); ok {
		_spec.SetField(timelineitem.FieldOrderIndex, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedOrderIndex(); ok {
		_spec.AddField(timelineitem.FieldOrderIndex, field.TypeInt, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(timelineitem.FieldUpdatedAt, field.TypeTime, value)
	}
	_node = &TimelineItem{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{timelineitem.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
