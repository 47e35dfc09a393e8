// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/codeready-toolchain/runsheet/ent/event"
	"github.com/codeready-toolchain/runsheet/ent/timelineitem"
)

// TimelineItemCreate is the builder for creating a TimelineItem entity.
type TimelineItemCreate struct {
	config
	mutation *TimelineItemMutation
	hooks    []Hook
}

// SetEventID sets the "event_id" field.
func (_c *TimelineItemCreate) SetEventID(v string) *TimelineItemCreate {
	_c.mutation.SetEventID(v)
	return _c
}

// SetTitle sets the "title" field.
func (_c *TimelineItemCreate) SetTitle(v string) *TimelineItemCreate {
	_c.mutation.SetTitle(v)
	return _c
}

// SetDescription sets the "description" field.
func (_c *TimelineItemCreate) SetDescription(v string) *TimelineItemCreate {
	_c.mutation.SetDescription(v)
	return _c
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (_c *TimelineItemCreate) SetNillableDescription(v *string) *TimelineItemCreate {
	if v != nil {
		_c.SetDescription(*v)
	}
	return _c
}

// SetCategory sets the "category" field.
func (_c *TimelineItemCreate) SetCategory(v timelineitem.Category) *TimelineItemCreate {
	_c.mutation.SetCategory(v)
	return _c
}

// SetNillableCategory sets the "category" field if the given value is not nil.
func (_c *TimelineItemCreate) SetNillableCategory(v *timelineitem.Category) *TimelineItemCreate {
	if v != nil {
		_c.SetCategory(*v)
	}
	return _c
}

// SetStartTime sets the "start_time" field.
func (_c *TimelineItemCreate) SetStartTime(v time.Time) *TimelineItemCreate {
	_c.mutation.SetStartTime(v)
	return _c
}

// SetEndTime sets the "end_time" field.
func (_c *TimelineItemCreate) SetEndTime(v time.Time) *TimelineItemCreate {
	_c.mutation.SetEndTime(v)
	return _c
}

// SetNillableEndTime sets the "end_time" field if the given value is not nil.
func (_c *TimelineItemCreate) SetNillableEndTime(v *time.Time) *TimelineItemCreate {
	if v != nil {
		_c.SetEndTime(*v)
	}
	return _c
}

// SetStatus sets the "status" field.
func (_c *TimelineItemCreate) SetStatus(v timelineitem.Status) *TimelineItemCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_c *TimelineItemCreate) SetNillableStatus(v *timelineitem.Status) *TimelineItemCreate {
	if v != nil {
		_c.SetStatus(*v)
	}
	return _c
}

// SetOrderIndex sets the "order_index" field.
func (_c *TimelineItemCreate) SetOrderIndex(v int) *TimelineItemCreate {
	_c.mutation.SetOrderIndex(v)
	return _c
}

// SetNillableOrderIndex sets the "order_index" field if the given value is not nil.
func (_c *TimelineItemCreate) SetNillableOrderIndex(v *int) *TimelineItemCreate {
	if v != nil {
		_c.SetOrderIndex(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *TimelineItemCreate) SetCreatedAt(v time.Time) *TimelineItemCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *TimelineItemCreate) SetNillableCreatedAt(v *time.Time) *TimelineItemCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *TimelineItemCreate) SetUpdatedAt(v time.Time) *TimelineItemCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *TimelineItemCreate) SetNillableUpdatedAt(v *time.Time) *TimelineItemCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *TimelineItemCreate) SetID(v string) *TimelineItemCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetEvent sets the "event" edge to the Event entity.
func (_c *TimelineItemCreate) SetEvent(v *Event) *TimelineItemCreate {
	return _c.SetEventID(v.ID)
}

// Mutation returns the TimelineItemMutation object of the builder.
func (_c *TimelineItemCreate) Mutation() *TimelineItemMutation {
	return _c.mutation
}

// Save creates the TimelineItem in the database.
func (_c *TimelineItemCreate) Save(ctx context.Context) (*TimelineItem, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *TimelineItemCreate) SaveX(ctx context.Context) *TimelineItem {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *TimelineItemCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *TimelineItemCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *TimelineItemCreate) defaults() {
	if _, ok := _c.mutation.Category(); !ok {
		v := timelineitem.DefaultCategory
		_c.mutation.SetCategory(v)
	}
	if _, ok := _c.mutation.Status(); !ok {
		v := timelineitem.DefaultStatus
		_c.mutation.SetStatus(v)
	}
	if _, ok := _c.mutation.OrderIndex(); !ok {
		v := timelineitem.DefaultOrderIndex
		_c.mutation.SetOrderIndex(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := timelineitem.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := timelineitem.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *TimelineItemCreate) check() error {
	if _, ok := _c.mutation.EventID(); !ok {
		return &ValidationError{Name: "event_id", err: errors.New(`ent: missing required field "TimelineItem.event_id"`)}
	}
	if _, ok := _c.mutation.Title(); !ok {
		return &ValidationError{Name: "title", err: errors.New(`ent: missing required field "TimelineItem.title"`)}
	}
	if v, ok := _c.mutation.Title(); ok {
		if err := timelineitem.TitleValidator(v); err != nil {
			return &ValidationError{Name: "title", err: fmt.Errorf(`ent: validator failed for field "TimelineItem.title": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Category(); !ok {
		return &ValidationError{Name: "category", err: errors.New(`ent: missing required field "TimelineItem.category"`)}
	}
	if v, ok := _c.mutation.Category(); ok {
		if err := timelineitem.CategoryValidator(v); err != nil {
			return &ValidationError{Name: "category", err: fmt.Errorf(`ent: validator failed for field "TimelineItem.category": %w`, err)}
		}
	}
	if _, ok := _c.mutation.StartTime(); !ok {
		return &ValidationError{Name: "start_time", err: errors.New(`ent: missing required field "TimelineItem.start_time"`)}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "TimelineItem.status"`)}
	}
	if v, ok := _c.mutation.Status(); ok {
		if err := timelineitem.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "TimelineItem.status": %w`, err)}
		}
	}
	if _, ok := _c.mutation.OrderIndex(); !ok {
		return &ValidationError{Name: "order_index", err: errors.New(`ent: missing required field "TimelineItem.order_index"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "TimelineItem.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "TimelineItem.updated_at"`)}
	}
	if len(_c.mutation.EventIDs()) == 0 {
		return &ValidationError{Name: "event", err: errors.New(`ent: missing required edge "TimelineItem.event"`)}
	}
	return nil
}

func (_c *TimelineItemCreate) sqlSave(ctx context.Context) (*TimelineItem, error) {
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
	if _spec.ID.Value != nil {
		if id, ok := _spec.ID.Value.(string); ok {
			_node.ID = id
		} else {
			return nil, fmt.Errorf("unexpected TimelineItem.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *TimelineItemCreate) createSpec() (*TimelineItem, *sqlgraph.CreateSpec) {
	var (
		_node = &TimelineItem{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(timelineitem.Table, sqlgraph.NewFieldSpec(timelineitem.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.Title(); ok {
		_spec.SetField(timelineitem.FieldTitle, field.TypeString, value)
		_node.Title = value
	}
	if value, ok := _c.mutation.Description(); ok {
		_spec.SetField(timelineitem.FieldDescription, field.TypeString, value)
		_node.Description = &value
	}
	if value, ok := _c.mutation.Category(); ok {
		_spec.SetField(timelineitem.FieldCategory, field.TypeEnum, value)
		_node.Category = value
	}
	if value, ok := _c.mutation.StartTime(); ok {
		_spec.SetField(timelineitem.FieldStartTime, field.TypeTime, value)
		_node.StartTime = value
	}
	if value, ok := _c.mutation.EndTime(); ok {
		_spec.SetField(timelineitem.FieldEndTime, field.TypeTime, value)
		_node.EndTime = &value
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(timelineitem.FieldStatus, field.TypeEnum, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.OrderIndex(); ok {
		_spec.SetField(timelineitem.FieldOrderIndex, field.TypeInt, value)
		_node.OrderIndex = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(timelineitem.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(timelineitem.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if nodes := _c.mutation.EventIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   timelineitem.EventTable,
			Columns: []string{timelineitem.EventColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(event.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.EventID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// TimelineItemCreateBulk is the builder for creating many TimelineItem entities in bulk.
type TimelineItemCreateBulk struct {
	config
	err      error
	builders []*TimelineItemCreate
}

// Save creates the TimelineItem entities in the database.
func (_c *TimelineItemCreateBulk) Save(ctx context.Context) ([]*TimelineItem, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*TimelineItem, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*TimelineItemMutation)
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
func (_c *TimelineItemCreateBulk) SaveX(ctx context.Context) []*TimelineItem {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *TimelineItemCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *TimelineItemCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
