// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/dibiaa/fms-tracker/gen/ent/jobrecord"
	"github.com/dibiaa/fms-tracker/gen/ent/steptask"
	"github.com/google/uuid"
)

// JobRecordCreate is the builder for creating a JobRecord entity.
type JobRecordCreate struct {
	config
	mutation *JobRecordMutation
	hooks    []Hook
}

// SetRowIndex sets the "row_index" field.
func (_c *JobRecordCreate) SetRowIndex(v int) *JobRecordCreate {
	_c.mutation.SetRowIndex(v)
	return _c
}

// SetSourceDate sets the "source_date" field.
func (_c *JobRecordCreate) SetSourceDate(v time.Time) *JobRecordCreate {
	_c.mutation.SetSourceDate(v)
	return _c
}

// SetNillableSourceDate sets the "source_date" field if the given value is not nil.
func (_c *JobRecordCreate) SetNillableSourceDate(v *time.Time) *JobRecordCreate {
	if v != nil {
		_c.SetSourceDate(*v)
	}
	return _c
}

// SetOtdType sets the "otd_type" field.
func (_c *JobRecordCreate) SetOtdType(v string) *JobRecordCreate {
	_c.mutation.SetOtdType(v)
	return _c
}

// SetNillableOtdType sets the "otd_type" field if the given value is not nil.
func (_c *JobRecordCreate) SetNillableOtdType(v *string) *JobRecordCreate {
	if v != nil {
		_c.SetOtdType(*v)
	}
	return _c
}

// SetJobNumber sets the "job_number" field.
func (_c *JobRecordCreate) SetJobNumber(v string) *JobRecordCreate {
	_c.mutation.SetJobNumber(v)
	return _c
}

// SetNillableJobNumber sets the "job_number" field if the given value is not nil.
func (_c *JobRecordCreate) SetNillableJobNumber(v *string) *JobRecordCreate {
	if v != nil {
		_c.SetJobNumber(*v)
	}
	return _c
}

// SetOrderBy sets the "order_by" field.
func (_c *JobRecordCreate) SetOrderBy(v string) *JobRecordCreate {
	_c.mutation.SetOrderBy(v)
	return _c
}

// SetNillableOrderBy sets the "order_by" field if the given value is not nil.
func (_c *JobRecordCreate) SetNillableOrderBy(v *string) *JobRecordCreate {
	if v != nil {
		_c.SetOrderBy(*v)
	}
	return _c
}

// SetCompanyName sets the "company_name" field.
func (_c *JobRecordCreate) SetCompanyName(v string) *JobRecordCreate {
	_c.mutation.SetCompanyName(v)
	return _c
}

// SetNillableCompanyName sets the "company_name" field if the given value is not nil.
func (_c *JobRecordCreate) SetNillableCompanyName(v *string) *JobRecordCreate {
	if v != nil {
		_c.SetCompanyName(*v)
	}
	return _c
}

// SetBoxType sets the "box_type" field.
func (_c *JobRecordCreate) SetBoxType(v string) *JobRecordCreate {
	_c.mutation.SetBoxType(v)
	return _c
}

// SetNillableBoxType sets the "box_type" field if the given value is not nil.
func (_c *JobRecordCreate) SetNillableBoxType(v *string) *JobRecordCreate {
	if v != nil {
		_c.SetBoxType(*v)
	}
	return _c
}

// SetBoxStyle sets the "box_style" field.
func (_c *JobRecordCreate) SetBoxStyle(v string) *JobRecordCreate {
	_c.mutation.SetBoxStyle(v)
	return _c
}

// SetNillableBoxStyle sets the "box_style" field if the given value is not nil.
func (_c *JobRecordCreate) SetNillableBoxStyle(v *string) *JobRecordCreate {
	if v != nil {
		_c.SetBoxStyle(*v)
	}
	return _c
}

// SetBoxColor sets the "box_color" field.
func (_c *JobRecordCreate) SetBoxColor(v string) *JobRecordCreate {
	_c.mutation.SetBoxColor(v)
	return _c
}

// SetNillableBoxColor sets the "box_color" field if the given value is not nil.
func (_c *JobRecordCreate) SetNillableBoxColor(v *string) *JobRecordCreate {
	if v != nil {
		_c.SetBoxColor(*v)
	}
	return _c
}

// SetPrintingType sets the "printing_type" field.
func (_c *JobRecordCreate) SetPrintingType(v string) *JobRecordCreate {
	_c.mutation.SetPrintingType(v)
	return _c
}

// SetNillablePrintingType sets the "printing_type" field if the given value is not nil.
func (_c *JobRecordCreate) SetNillablePrintingType(v *string) *JobRecordCreate {
	if v != nil {
		_c.SetPrintingType(*v)
	}
	return _c
}

// SetPrintingColor sets the "printing_color" field.
func (_c *JobRecordCreate) SetPrintingColor(v string) *JobRecordCreate {
	_c.mutation.SetPrintingColor(v)
	return _c
}

// SetNillablePrintingColor sets the "printing_color" field if the given value is not nil.
func (_c *JobRecordCreate) SetNillablePrintingColor(v *string) *JobRecordCreate {
	if v != nil {
		_c.SetPrintingColor(*v)
	}
	return _c
}

// SetSpecification sets the "specification" field.
func (_c *JobRecordCreate) SetSpecification(v string) *JobRecordCreate {
	_c.mutation.SetSpecification(v)
	return _c
}

// SetNillableSpecification sets the "specification" field if the given value is not nil.
func (_c *JobRecordCreate) SetNillableSpecification(v *string) *JobRecordCreate {
	if v != nil {
		_c.SetSpecification(*v)
	}
	return _c
}

// SetCity sets the "city" field.
func (_c *JobRecordCreate) SetCity(v string) *JobRecordCreate {
	_c.mutation.SetCity(v)
	return _c
}

// SetNillableCity sets the "city" field if the given value is not nil.
func (_c *JobRecordCreate) SetNillableCity(v *string) *JobRecordCreate {
	if v != nil {
		_c.SetCity(*v)
	}
	return _c
}

// SetQuantity sets the "quantity" field.
func (_c *JobRecordCreate) SetQuantity(v int) *JobRecordCreate {
	_c.mutation.SetQuantity(v)
	return _c
}

// SetNillableQuantity sets the "quantity" field if the given value is not nil.
func (_c *JobRecordCreate) SetNillableQuantity(v *int) *JobRecordCreate {
	if v != nil {
		_c.SetQuantity(*v)
	}
	return _c
}

// SetLeadTime sets the "lead_time" field.
func (_c *JobRecordCreate) SetLeadTime(v time.Time) *JobRecordCreate {
	_c.mutation.SetLeadTime(v)
	return _c
}

// SetNillableLeadTime sets the "lead_time" field if the given value is not nil.
func (_c *JobRecordCreate) SetNillableLeadTime(v *time.Time) *JobRecordCreate {
	if v != nil {
		_c.SetLeadTime(*v)
	}
	return _c
}

// SetRepeatNew sets the "repeat_new" field.
func (_c *JobRecordCreate) SetRepeatNew(v string) *JobRecordCreate {
	_c.mutation.SetRepeatNew(v)
	return _c
}

// SetNillableRepeatNew sets the "repeat_new" field if the given value is not nil.
func (_c *JobRecordCreate) SetNillableRepeatNew(v *string) *JobRecordCreate {
	if v != nil {
		_c.SetRepeatNew(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *JobRecordCreate) SetCreatedAt(v time.Time) *JobRecordCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *JobRecordCreate) SetNillableCreatedAt(v *time.Time) *JobRecordCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *JobRecordCreate) SetUpdatedAt(v time.Time) *JobRecordCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *JobRecordCreate) SetNillableUpdatedAt(v *time.Time) *JobRecordCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *JobRecordCreate) SetID(v uuid.UUID) *JobRecordCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *JobRecordCreate) SetNillableID(v *uuid.UUID) *JobRecordCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// AddTaskIDs adds the "tasks" edge to the StepTask entity by IDs.
func (_c *JobRecordCreate) AddTaskIDs(ids ...uuid.UUID) *JobRecordCreate {
	_c.mutation.AddTaskIDs(ids...)
	return _c
}

// AddTasks adds the "tasks" edges to the StepTask entity.
func (_c *JobRecordCreate) AddTasks(v ...*StepTask) *JobRecordCreate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddTaskIDs(ids...)
}

// Mutation returns the JobRecordMutation object of the builder.
func (_c *JobRecordCreate) Mutation() *JobRecordMutation {
	return _c.mutation
}

// Save creates the JobRecord in the database.
func (_c *JobRecordCreate) Save(ctx context.Context) (*JobRecord, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *JobRecordCreate) SaveX(ctx context.Context) *JobRecord {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *JobRecordCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *JobRecordCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *JobRecordCreate) defaults() {
	if _, ok := _c.mutation.OtdType(); !ok {
		v := jobrecord.DefaultOtdType
		_c.mutation.SetOtdType(v)
	}
	if _, ok := _c.mutation.JobNumber(); !ok {
		v := jobrecord.DefaultJobNumber
		_c.mutation.SetJobNumber(v)
	}
	if _, ok := _c.mutation.OrderBy(); !ok {
		v := jobrecord.DefaultOrderBy
		_c.mutation.SetOrderBy(v)
	}
	if _, ok := _c.mutation.CompanyName(); !ok {
		v := jobrecord.DefaultCompanyName
		_c.mutation.SetCompanyName(v)
	}
	if _, ok := _c.mutation.BoxType(); !ok {
		v := jobrecord.DefaultBoxType
		_c.mutation.SetBoxType(v)
	}
	if _, ok := _c.mutation.BoxStyle(); !ok {
		v := jobrecord.DefaultBoxStyle
		_c.mutation.SetBoxStyle(v)
	}
	if _, ok := _c.mutation.BoxColor(); !ok {
		v := jobrecord.DefaultBoxColor
		_c.mutation.SetBoxColor(v)
	}
	if _, ok := _c.mutation.PrintingType(); !ok {
		v := jobrecord.DefaultPrintingType
		_c.mutation.SetPrintingType(v)
	}
	if _, ok := _c.mutation.PrintingColor(); !ok {
		v := jobrecord.DefaultPrintingColor
		_c.mutation.SetPrintingColor(v)
	}
	if _, ok := _c.mutation.Specification(); !ok {
		v := jobrecord.DefaultSpecification
		_c.mutation.SetSpecification(v)
	}
	if _, ok := _c.mutation.City(); !ok {
		v := jobrecord.DefaultCity
		_c.mutation.SetCity(v)
	}
	if _, ok := _c.mutation.Quantity(); !ok {
		v := jobrecord.DefaultQuantity
		_c.mutation.SetQuantity(v)
	}
	if _, ok := _c.mutation.RepeatNew(); !ok {
		v := jobrecord.DefaultRepeatNew
		_c.mutation.SetRepeatNew(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := jobrecord.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := jobrecord.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := jobrecord.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *JobRecordCreate) check() error {
	if _, ok := _c.mutation.RowIndex(); !ok {
		return &ValidationError{Name: "row_index", err: errors.New(`ent: missing required field "JobRecord.row_index"`)}
	}
	if v, ok := _c.mutation.RowIndex(); ok {
		if err := jobrecord.RowIndexValidator(v); err != nil {
			return &ValidationError{Name: "row_index", err: fmt.Errorf(`ent: validator failed for field "JobRecord.row_index": %w`, err)}
		}
	}
	if _, ok := _c.mutation.OtdType(); !ok {
		return &ValidationError{Name: "otd_type", err: errors.New(`ent: missing required field "JobRecord.otd_type"`)}
	}
	if _, ok := _c.mutation.JobNumber(); !ok {
		return &ValidationError{Name: "job_number", err: errors.New(`ent: missing required field "JobRecord.job_number"`)}
	}
	if _, ok := _c.mutation.OrderBy(); !ok {
		return &ValidationError{Name: "order_by", err: errors.New(`ent: missing required field "JobRecord.order_by"`)}
	}
	if _, ok := _c.mutation.CompanyName(); !ok {
		return &ValidationError{Name: "company_name", err: errors.New(`ent: missing required field "JobRecord.company_name"`)}
	}
	if _, ok := _c.mutation.BoxType(); !ok {
		return &ValidationError{Name: "box_type", err: errors.New(`ent: missing required field "JobRecord.box_type"`)}
	}
	if _, ok := _c.mutation.BoxStyle(); !ok {
		return &ValidationError{Name: "box_style", err: errors.New(`ent: missing required field "JobRecord.box_style"`)}
	}
	if _, ok := _c.mutation.BoxColor(); !ok {
		return &ValidationError{Name: "box_color", err: errors.New(`ent: missing required field "JobRecord.box_color"`)}
	}
	if _, ok := _c.mutation.PrintingType(); !ok {
		return &ValidationError{Name: "printing_type", err: errors.New(`ent: missing required field "JobRecord.printing_type"`)}
	}
	if _, ok := _c.mutation.PrintingColor(); !ok {
		return &ValidationError{Name: "printing_color", err: errors.New(`ent: missing required field "JobRecord.printing_color"`)}
	}
	if _, ok := _c.mutation.Specification(); !ok {
		return &ValidationError{Name: "specification", err: errors.New(`ent: missing required field "JobRecord.specification"`)}
	}
	if _, ok := _c.mutation.City(); !ok {
		return &ValidationError{Name: "city", err: errors.New(`ent: missing required field "JobRecord.city"`)}
	}
	if _, ok := _c.mutation.Quantity(); !ok {
		return &ValidationError{Name: "quantity", err: errors.New(`ent: missing required field "JobRecord.quantity"`)}
	}
	if _, ok := _c.mutation.RepeatNew(); !ok {
		return &ValidationError{Name: "repeat_new", err: errors.New(`ent: missing required field "JobRecord.repeat_new"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "JobRecord.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "JobRecord.updated_at"`)}
	}
	return nil
}

func (_c *JobRecordCreate) sqlSave(ctx context.Context) (*JobRecord, error) {
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
		if id, ok := _spec.ID.Value.(*uuid.UUID); ok {
			_node.ID = *id
		} else if err := _node.ID.Scan(_spec.ID.Value); err != nil {
			return nil, err
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *JobRecordCreate) createSpec() (*JobRecord, *sqlgraph.CreateSpec) {
	var (
		_node = &JobRecord{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(jobrecord.Table, sqlgraph.NewFieldSpec(jobrecord.FieldID, field.TypeUUID))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.RowIndex(); ok {
		_spec.SetField(jobrecord.FieldRowIndex, field.TypeInt, value)
		_node.RowIndex = value
	}
	if value, ok := _c.mutation.SourceDate(); ok {
		_spec.SetField(jobrecord.FieldSourceDate, field.TypeTime, value)
		_node.SourceDate = &value
	}
	if value, ok := _c.mutation.OtdType(); ok {
		_spec.SetField(jobrecord.FieldOtdType, field.TypeString, value)
		_node.OtdType = value
	}
	if value, ok := _c.mutation.JobNumber(); ok {
		_spec.SetField(jobrecord.FieldJobNumber, field.TypeString, value)
		_node.JobNumber = value
	}
	if value, ok := _c.mutation.OrderBy(); ok {
		_spec.SetField(jobrecord.FieldOrderBy, field.TypeString, value)
		_node.OrderBy = value
	}
	if value, ok := _c.mutation.CompanyName(); ok {
		_spec.SetField(jobrecord.FieldCompanyName, field.TypeString, value)
		_node.CompanyName = value
	}
	if value, ok := _c.mutation.BoxType(); ok {
		_spec.SetField(jobrecord.FieldBoxType, field.TypeString, value)
		_node.BoxType = value
	}
	if value, ok := _c.mutation.BoxStyle(); ok {
		_spec.SetField(jobrecord.FieldBoxStyle, field.TypeString, value)
		_node.BoxStyle = value
	}
	if value, ok := _c.mutation.BoxColor(); ok {
		_spec.SetField(jobrecord.FieldBoxColor, field.TypeString, value)
		_node.BoxColor = value
	}
	if value, ok := _c.mutation.PrintingType(); ok {
		_spec.SetField(jobrecord.FieldPrintingType, field.TypeString, value)
		_node.PrintingType = value
	}
	if value, ok := _c.mutation.PrintingColor(); ok {
		_spec.SetField(jobrecord.FieldPrintingColor, field.TypeString, value)
		_node.PrintingColor = value
	}
	if value, ok := _c.mutation.Specification(); ok {
		_spec.SetField(jobrecord.FieldSpecification, field.TypeString, value)
		_node.Specification = value
	}
	if value, ok := _c.mutation.City(); ok {
		_spec.SetField(jobrecord.FieldCity, field.TypeString, value)
		_node.City = value
	}
	if value, ok := _c.mutation.Quantity(); ok {
		_spec.SetField(jobrecord.FieldQuantity, field.TypeInt, value)
		_node.Quantity = value
	}
	if value, ok := _c.mutation.LeadTime(); ok {
		_spec.SetField(jobrecord.FieldLeadTime, field.TypeTime, value)
		_node.LeadTime = &value
	}
	if value, ok := _c.mutation.RepeatNew(); ok {
		_spec.SetField(jobrecord.FieldRepeatNew, field.TypeString, value)
		_node.RepeatNew = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(jobrecord.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(jobrecord.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if nodes := _c.mutation.TasksIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   jobrecord.TasksTable,
			Columns: []string{jobrecord.TasksColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(steptask.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// JobRecordCreateBulk is the builder for creating many JobRecord entities in bulk.
type JobRecordCreateBulk struct {
	config
	err      error
	builders []*JobRecordCreate
}

// Save creates the JobRecord entities in the database.
func (_c *JobRecordCreateBulk) Save(ctx context.Context) ([]*JobRecord, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*JobRecord, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*JobRecordMutation)
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
func (_c *JobRecordCreateBulk) SaveX(ctx context.Context) []*JobRecord {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *JobRecordCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *JobRecordCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
