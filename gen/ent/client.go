// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"log"
	"reflect"

	"github.com/dibiaa/fms-tracker/gen/ent/migrate"
	"github.com/google/uuid"

	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/dibiaa/fms-tracker/gen/ent/checklisttask"
	"github.com/dibiaa/fms-tracker/gen/ent/delegationtask"
	"github.com/dibiaa/fms-tracker/gen/ent/employeeplan"
	"github.com/dibiaa/fms-tracker/gen/ent/holiday"
	"github.com/dibiaa/fms-tracker/gen/ent/jobrecord"
	"github.com/dibiaa/fms-tracker/gen/ent/stepconfig"
	"github.com/dibiaa/fms-tracker/gen/ent/steptask"
	"github.com/dibiaa/fms-tracker/gen/ent/taskcomment"
	"github.com/dibiaa/fms-tracker/gen/ent/user"
)

// Client is the client that holds all ent builders.
type Client struct {
	config
	// Schema is the client for creating, migrating and dropping schema.
	Schema *migrate.Schema
	// ChecklistTask is the client for interacting with the ChecklistTask builders.
	ChecklistTask *ChecklistTaskClient
	// DelegationTask is the client for interacting with the DelegationTask builders.
	DelegationTask *DelegationTaskClient
	// EmployeePlan is the client for interacting with the EmployeePlan builders.
	EmployeePlan *EmployeePlanClient
	// Holiday is the client for interacting with the Holiday builders.
	Holiday *HolidayClient
	// JobRecord is the client for interacting with the JobRecord builders.
	JobRecord *JobRecordClient
	// StepConfig is the client for interacting with the StepConfig builders.
	StepConfig *StepConfigClient
	// StepTask is the client for interacting with the StepTask builders.
	StepTask *StepTaskClient
	// TaskComment is the client for interacting with the TaskComment builders.
	TaskComment *TaskCommentClient
	// User is the client for interacting with the User builders.
	User *UserClient
}

// NewClient creates a new client configured with the given options.
func NewClient(opts ...Option) *Client {
	client := &Client{config: newConfig(opts...)}
	client.init()
	return client
}

func (c *Client) init() {
	c.Schema = migrate.NewSchema(c.driver)
	c.ChecklistTask = NewChecklistTaskClient(c.config)
	c.DelegationTask = NewDelegationTaskClient(c.config)
	c.EmployeePlan = NewEmployeePlanClient(c.config)
	c.Holiday = NewHolidayClient(c.config)
	c.JobRecord = NewJobRecordClient(c.config)
	c.StepConfig = NewStepConfigClient(c.config)
	c.StepTask = NewStepTaskClient(c.config)
	c.TaskComment = NewTaskCommentClient(c.config)
	c.User = NewUserClient(c.config)
}

type (
	// config is the configuration for the client and its builder.
	config struct {
		// driver used for executing database requests.
		driver dialect.Driver
		// debug enable a debug logging.
		debug bool
		// log used for logging on debug mode.
		log func(...any)
		// hooks to execute on mutations.
		hooks *hooks
		// interceptors to execute on queries.
		inters *inters
	}
	// Option function to configure the client.
	Option func(*config)
)

// newConfig creates a new config for the client.
func newConfig(opts ...Option) config {
	cfg := config{log: log.Println, hooks: &hooks{}, inters: &inters{}}
	cfg.options(opts...)
	return cfg
}

// options applies the options on the config object.
func (c *config) options(opts ...Option) {
	for _, opt := range opts {
		opt(c)
	}
	if c.debug {
		c.driver = dialect.Debug(c.driver, c.log)
	}
}

// Debug enables debug logging on the ent.Driver.
func Debug() Option {
	return func(c *config) {
		c.debug = true
	}
}

// Log sets the logging function for debug mode.
func Log(fn func(...any)) Option {
	return func(c *config) {
		c.log = fn
	}
}

// Driver configures the client driver.
func Driver(driver dialect.Driver) Option {
	return func(c *config) {
		c.driver = driver
	}
}

// Open opens a database/sql.DB specified by the driver name and
// the data source name, and returns a new client attached to it.
// Optional parameters can be added for configuring the client.
func Open(driverName, dataSourceName string, options ...Option) (*Client, error) {
	switch driverName {
	case dialect.MySQL, dialect.Postgres, dialect.SQLite:
		drv, err := sql.Open(driverName, dataSourceName)
		if err != nil {
			return nil, err
		}
		return NewClient(append(options, Driver(drv))...), nil
	default:
		return nil, fmt.Errorf("unsupported driver: %q", driverName)
	}
}

// ErrTxStarted is returned when trying to start a new transaction from a transactional client.
var ErrTxStarted = errors.New("ent: cannot start a transaction within a transaction")

// Tx returns a new transactional client. The provided context
// is used until the transaction is committed or rolled back.
func (c *Client) Tx(ctx context.Context) (*Tx, error) {
	if _, ok := c.driver.(*txDriver); ok {
		return nil, ErrTxStarted
	}
	tx, err := newTx(ctx, c.driver)
	if err != nil {
		return nil, fmt.Errorf("ent: starting a transaction: %w", err)
	}
	cfg := c.config
	cfg.driver = tx
	return &Tx{
		ctx:            ctx,
		config:         cfg,
		ChecklistTask:  NewChecklistTaskClient(cfg),
		DelegationTask: NewDelegationTaskClient(cfg),
		EmployeePlan:   NewEmployeePlanClient(cfg),
		Holiday:        NewHolidayClient(cfg),
		JobRecord:      NewJobRecordClient(cfg),
		StepConfig:     NewStepConfigClient(cfg),
		StepTask:       NewStepTaskClient(cfg),
		TaskComment:    NewTaskCommentClient(cfg),
		User:           NewUserClient(cfg),
	}, nil
}

// BeginTx returns a transactional client with specified options.
func (c *Client) BeginTx(ctx context.Context, opts *sql.TxOptions) (*Tx, error) {
	if _, ok := c.driver.(*txDriver); ok {
		return nil, errors.New("ent: cannot start a transaction within a transaction")
	}
	tx, err := c.driver.(interface {
		BeginTx(context.Context, *sql.TxOptions) (dialect.Tx, error)
	}).BeginTx(ctx, opts)
	if err != nil {
		return nil, fmt.Errorf("ent: starting a transaction: %w", err)
	}
	cfg := c.config
	cfg.driver = &txDriver{tx: tx, drv: c.driver}
	return &Tx{
		ctx:            ctx,
		config:         cfg,
		ChecklistTask:  NewChecklistTaskClient(cfg),
		DelegationTask: NewDelegationTaskClient(cfg),
		EmployeePlan:   NewEmployeePlanClient(cfg),
		Holiday:        NewHolidayClient(cfg),
		JobRecord:      NewJobRecordClient(cfg),
		StepConfig:     NewStepConfigClient(cfg),
		StepTask:       NewStepTaskClient(cfg),
		TaskComment:    NewTaskCommentClient(cfg),
		User:           NewUserClient(cfg),
	}, nil
}

// Debug returns a new debug-client. It's used to get verbose logging on specific operations.
//
//	client.Debug().
//		ChecklistTask.
//		Query().
//		Count(ctx)
func (c *Client) Debug() *Client {
	if c.debug {
		return c
	}
	cfg := c.config
	cfg.driver = dialect.Debug(c.driver, c.log)
	client := &Client{config: cfg}
	client.init()
	return client
}

// Close closes the database connection and prevents new queries from starting.
func (c *Client) Close() error {
	return c.driver.Close()
}

// Use adds the mutation hooks to all the entity clients.
// In order to add hooks to a specific client, call: `client.Node.Use(...)`.
func (c *Client) Use(hooks ...Hook) {
	for _, n := range []interface{ Use(...Hook) }{
		c.ChecklistTask, c.DelegationTask, c.EmployeePlan, c.Holiday, c.JobRecord,
		c.StepConfig, c.StepTask, c.TaskComment, c.User,
	} {
		n.Use(hooks...)
	}
}

// Intercept adds the query interceptors to all the entity clients.
// In order to add interceptors to a specific client, call: `client.Node.Intercept(...)`.
func (c *Client) Intercept(interceptors ...Interceptor) {
	for _, n := range []interface{ Intercept(...Interceptor) }{
		c.ChecklistTask, c.DelegationTask, c.EmployeePlan, c.Holiday, c.JobRecord,
		c.StepConfig, c.StepTask, c.TaskComment, c.User,
	} {
		n.Intercept(interceptors...)
	}
}

// Mutate implements the ent.Mutator interface.
func (c *Client) Mutate(ctx context.Context, m Mutation) (Value, error) {
	switch m := m.(type) {
	case *ChecklistTaskMutation:
		return c.ChecklistTask.mutate(ctx, m)
	case *DelegationTaskMutation:
		return c.DelegationTask.mutate(ctx, m)
	case *EmployeePlanMutation:
		return c.EmployeePlan.mutate(ctx, m)
	case *HolidayMutation:
		return c.Holiday.mutate(ctx, m)
	case *JobRecordMutation:
		return c.JobRecord.mutate(ctx, m)
	case *StepConfigMutation:
		return c.StepConfig.mutate(ctx, m)
	case *StepTaskMutation:
		return c.StepTask.mutate(ctx, m)
	case *TaskCommentMutation:
		return c.TaskComment.mutate(ctx, m)
	case *UserMutation:
		return c.User.mutate(ctx, m)
	default:
		return nil, fmt.Errorf("ent: unknown mutation type %T", m)
	}
}

// ChecklistTaskClient is a client for the ChecklistTask schema.
type ChecklistTaskClient struct {
	config
}

// NewChecklistTaskClient returns a client for the ChecklistTask from the given config.
func NewChecklistTaskClient(c config) *ChecklistTaskClient {
	return &ChecklistTaskClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `checklisttask.Hooks(f(g(h())))`.
func (c *ChecklistTaskClient) Use(hooks ...Hook) {
	c.hooks.ChecklistTask = append(c.hooks.ChecklistTask, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `checklisttask.Intercept(f(g(h())))`.
func (c *ChecklistTaskClient) Intercept(interceptors ...Interceptor) {
	c.inters.ChecklistTask = append(c.inters.ChecklistTask, interceptors...)
}

// Create returns a builder for creating a ChecklistTask entity.
func (c *ChecklistTaskClient) Create() *ChecklistTaskCreate {
	mutation := newChecklistTaskMutation(c.config, OpCreate)
	return &ChecklistTaskCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of ChecklistTask entities.
func (c *ChecklistTaskClient) CreateBulk(builders ...*ChecklistTaskCreate) *ChecklistTaskCreateBulk {
	return &ChecklistTaskCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *ChecklistTaskClient) MapCreateBulk(slice any, setFunc func(*ChecklistTaskCreate, int)) *ChecklistTaskCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &ChecklistTaskCreateBulk{err: fmt.Errorf("calling to ChecklistTaskClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*ChecklistTaskCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &ChecklistTaskCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for ChecklistTask.
func (c *ChecklistTaskClient) Update() *ChecklistTaskUpdate {
	mutation := newChecklistTaskMutation(c.config, OpUpdate)
	return &ChecklistTaskUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *ChecklistTaskClient) UpdateOne(_m *ChecklistTask) *ChecklistTaskUpdateOne {
	mutation := newChecklistTaskMutation(c.config, OpUpdateOne, withChecklistTask(_m))
	return &ChecklistTaskUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *ChecklistTaskClient) UpdateOneID(id uuid.UUID) *ChecklistTaskUpdateOne {
	mutation := newChecklistTaskMutation(c.config, OpUpdateOne, withChecklistTaskID(id))
	return &ChecklistTaskUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for ChecklistTask.
func (c *ChecklistTaskClient) Delete() *ChecklistTaskDelete {
	mutation := newChecklistTaskMutation(c.config, OpDelete)
	return &ChecklistTaskDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *ChecklistTaskClient) DeleteOne(_m *ChecklistTask) *ChecklistTaskDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *ChecklistTaskClient) DeleteOneID(id uuid.UUID) *ChecklistTaskDeleteOne {
	builder := c.Delete().Where(checklisttask.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &ChecklistTaskDeleteOne{builder}
}

// Query returns a query builder for ChecklistTask.
func (c *ChecklistTaskClient) Query() *ChecklistTaskQuery {
	return &ChecklistTaskQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeChecklistTask},
		inters: c.Interceptors(),
	}
}

// Get returns a ChecklistTask entity by its id.
func (c *ChecklistTaskClient) Get(ctx context.Context, id uuid.UUID) (*ChecklistTask, error) {
	return c.Query().Where(checklisttask.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *ChecklistTaskClient) GetX(ctx context.Context, id uuid.UUID) *ChecklistTask {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *ChecklistTaskClient) Hooks() []Hook {
	return c.hooks.ChecklistTask
}

// Interceptors returns the client interceptors.
func (c *ChecklistTaskClient) Interceptors() []Interceptor {
	return c.inters.ChecklistTask
}

func (c *ChecklistTaskClient) mutate(ctx context.Context, m *ChecklistTaskMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&ChecklistTaskCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&ChecklistTaskUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&ChecklistTaskUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&ChecklistTaskDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown ChecklistTask mutation op: %q", m.Op())
	}
}

// DelegationTaskClient is a client for the DelegationTask schema.
type DelegationTaskClient struct {
	config
}

// NewDelegationTaskClient returns a client for the DelegationTask from the given config.
func NewDelegationTaskClient(c config) *DelegationTaskClient {
	return &DelegationTaskClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `delegationtask.Hooks(f(g(h())))`.
func (c *DelegationTaskClient) Use(hooks ...Hook) {
	c.hooks.DelegationTask = append(c.hooks.DelegationTask, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `delegationtask.Intercept(f(g(h())))`.
func (c *DelegationTaskClient) Intercept(interceptors ...Interceptor) {
	c.inters.DelegationTask = append(c.inters.DelegationTask, interceptors...)
}

// Create returns a builder for creating a DelegationTask entity.
func (c *DelegationTaskClient) Create() *DelegationTaskCreate {
	mutation := newDelegationTaskMutation(c.config, OpCreate)
	return &DelegationTaskCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of DelegationTask entities.
func (c *DelegationTaskClient) CreateBulk(builders ...*DelegationTaskCreate) *DelegationTaskCreateBulk {
	return &DelegationTaskCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *DelegationTaskClient) MapCreateBulk(slice any, setFunc func(*DelegationTaskCreate, int)) *DelegationTaskCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &DelegationTaskCreateBulk{err: fmt.Errorf("calling to DelegationTaskClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*DelegationTaskCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &DelegationTaskCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for DelegationTask.
func (c *DelegationTaskClient) Update() *DelegationTaskUpdate {
	mutation := newDelegationTaskMutation(c.config, OpUpdate)
	return &DelegationTaskUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *DelegationTaskClient) UpdateOne(_m *DelegationTask) *DelegationTaskUpdateOne {
	mutation := newDelegationTaskMutation(c.config, OpUpdateOne, withDelegationTask(_m))
	return &DelegationTaskUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *DelegationTaskClient) UpdateOneID(id uuid.UUID) *DelegationTaskUpdateOne {
	mutation := newDelegationTaskMutation(c.config, OpUpdateOne, withDelegationTaskID(id))
	return &DelegationTaskUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for DelegationTask.
func (c *DelegationTaskClient) Delete() *DelegationTaskDelete {
	mutation := newDelegationTaskMutation(c.config, OpDelete)
	return &DelegationTaskDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *DelegationTaskClient) DeleteOne(_m *DelegationTask) *DelegationTaskDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *DelegationTaskClient) DeleteOneID(id uuid.UUID) *DelegationTaskDeleteOne {
	builder := c.Delete().Where(delegationtask.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &DelegationTaskDeleteOne{builder}
}

// Query returns a query builder for DelegationTask.
func (c *DelegationTaskClient) Query() *DelegationTaskQuery {
	return &DelegationTaskQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeDelegationTask},
		inters: c.Interceptors(),
	}
}

// Get returns a DelegationTask entity by its id.
func (c *DelegationTaskClient) Get(ctx context.Context, id uuid.UUID) (*DelegationTask, error) {
	return c.Query().Where(delegationtask.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *DelegationTaskClient) GetX(ctx context.Context, id uuid.UUID) *DelegationTask {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryComments queries the comments edge of a DelegationTask.
func (c *DelegationTaskClient) QueryComments(_m *DelegationTask) *TaskCommentQuery {
	query := (&TaskCommentClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(delegationtask.Table, delegationtask.FieldID, id),
			sqlgraph.To(taskcomment.Table, taskcomment.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, delegationtask.CommentsTable, delegationtask.CommentsColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *DelegationTaskClient) Hooks() []Hook {
	return c.hooks.DelegationTask
}

// Interceptors returns the client interceptors.
func (c *DelegationTaskClient) Interceptors() []Interceptor {
	return c.inters.DelegationTask
}

func (c *DelegationTaskClient) mutate(ctx context.Context, m *DelegationTaskMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&DelegationTaskCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&DelegationTaskUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&DelegationTaskUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&DelegationTaskDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown DelegationTask mutation op: %q", m.Op())
	}
}

// EmployeePlanClient is a client for the EmployeePlan schema.
type EmployeePlanClient struct {
	config
}

// NewEmployeePlanClient returns a client for the EmployeePlan from the given config.
func NewEmployeePlanClient(c config) *EmployeePlanClient {
	return &EmployeePlanClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `employeeplan.Hooks(f(g(h())))`.
func (c *EmployeePlanClient) Use(hooks ...Hook) {
	c.hooks.EmployeePlan = append(c.hooks.EmployeePlan, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `employeeplan.Intercept(f(g(h())))`.
func (c *EmployeePlanClient) Intercept(interceptors ...Interceptor) {
	c.inters.EmployeePlan = append(c.inters.EmployeePlan, interceptors...)
}

// Create returns a builder for creating a EmployeePlan entity.
func (c *EmployeePlanClient) Create() *EmployeePlanCreate {
	mutation := newEmployeePlanMutation(c.config, OpCreate)
	return &EmployeePlanCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of EmployeePlan entities.
func (c *EmployeePlanClient) CreateBulk(builders ...*EmployeePlanCreate) *EmployeePlanCreateBulk {
	return &EmployeePlanCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *EmployeePlanClient) MapCreateBulk(slice any, setFunc func(*EmployeePlanCreate, int)) *EmployeePlanCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &EmployeePlanCreateBulk{err: fmt.Errorf("calling to EmployeePlanClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*EmployeePlanCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &EmployeePlanCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for EmployeePlan.
func (c *EmployeePlanClient) Update() *EmployeePlanUpdate {
	mutation := newEmployeePlanMutation(c.config, OpUpdate)
	return &EmployeePlanUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *EmployeePlanClient) UpdateOne(_m *EmployeePlan) *EmployeePlanUpdateOne {
	mutation := newEmployeePlanMutation(c.config, OpUpdateOne, withEmployeePlan(_m))
	return &EmployeePlanUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *EmployeePlanClient) UpdateOneID(id uuid.UUID) *EmployeePlanUpdateOne {
	mutation := newEmployeePlanMutation(c.config, OpUpdateOne, withEmployeePlanID(id))
	return &EmployeePlanUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for EmployeePlan.
func (c *EmployeePlanClient) Delete() *EmployeePlanDelete {
	mutation := newEmployeePlanMutation(c.config, OpDelete)
	return &EmployeePlanDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *EmployeePlanClient) DeleteOne(_m *EmployeePlan) *EmployeePlanDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *EmployeePlanClient) DeleteOneID(id uuid.UUID) *EmployeePlanDeleteOne {
	builder := c.Delete().Where(employeeplan.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &EmployeePlanDeleteOne{builder}
}

// Query returns a query builder for EmployeePlan.
func (c *EmployeePlanClient) Query() *EmployeePlanQuery {
	return &EmployeePlanQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeEmployeePlan},
		inters: c.Interceptors(),
	}
}

// Get returns a EmployeePlan entity by its id.
func (c *EmployeePlanClient) Get(ctx context.Context, id uuid.UUID) (*EmployeePlan, error) {
	return c.Query().Where(employeeplan.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *EmployeePlanClient) GetX(ctx context.Context, id uuid.UUID) *EmployeePlan {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *EmployeePlanClient) Hooks() []Hook {
	return c.hooks.EmployeePlan
}

// Interceptors returns the client interceptors.
func (c *EmployeePlanClient) Interceptors() []Interceptor {
	return c.inters.EmployeePlan
}

func (c *EmployeePlanClient) mutate(ctx context.Context, m *EmployeePlanMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&EmployeePlanCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&EmployeePlanUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&EmployeePlanUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&EmployeePlanDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown EmployeePlan mutation op: %q", m.Op())
	}
}

// HolidayClient is a client for the Holiday schema.
type HolidayClient struct {
	config
}

// NewHolidayClient returns a client for the Holiday from the given config.
func NewHolidayClient(c config) *HolidayClient {
	return &HolidayClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `holiday.Hooks(f(g(h())))`.
func (c *HolidayClient) Use(hooks ...Hook) {
	c.hooks.Holiday = append(c.hooks.Holiday, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `holiday.Intercept(f(g(h())))`.
func (c *HolidayClient) Intercept(interceptors ...Interceptor) {
	c.inters.Holiday = append(c.inters.Holiday, interceptors...)
}

// Create returns a builder for creating a Holiday entity.
func (c *HolidayClient) Create() *HolidayCreate {
	mutation := newHolidayMutation(c.config, OpCreate)
	return &HolidayCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Holiday entities.
func (c *HolidayClient) CreateBulk(builders ...*HolidayCreate) *HolidayCreateBulk {
	return &HolidayCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *HolidayClient) MapCreateBulk(slice any, setFunc func(*HolidayCreate, int)) *HolidayCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &HolidayCreateBulk{err: fmt.Errorf("calling to HolidayClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*HolidayCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &HolidayCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Holiday.
func (c *HolidayClient) Update() *HolidayUpdate {
	mutation := newHolidayMutation(c.config, OpUpdate)
	return &HolidayUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *HolidayClient) UpdateOne(_m *Holiday) *HolidayUpdateOne {
	mutation := newHolidayMutation(c.config, OpUpdateOne, withHoliday(_m))
	return &HolidayUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *HolidayClient) UpdateOneID(id int) *HolidayUpdateOne {
	mutation := newHolidayMutation(c.config, OpUpdateOne, withHolidayID(id))
	return &HolidayUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Holiday.
func (c *HolidayClient) Delete() *HolidayDelete {
	mutation := newHolidayMutation(c.config, OpDelete)
	return &HolidayDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *HolidayClient) DeleteOne(_m *Holiday) *HolidayDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *HolidayClient) DeleteOneID(id int) *HolidayDeleteOne {
	builder := c.Delete().Where(holiday.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &HolidayDeleteOne{builder}
}

// Query returns a query builder for Holiday.
func (c *HolidayClient) Query() *HolidayQuery {
	return &HolidayQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeHoliday},
		inters: c.Interceptors(),
	}
}

// Get returns a Holiday entity by its id.
func (c *HolidayClient) Get(ctx context.Context, id int) (*Holiday, error) {
	return c.Query().Where(holiday.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *HolidayClient) GetX(ctx context.Context, id int) *Holiday {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *HolidayClient) Hooks() []Hook {
	return c.hooks.Holiday
}

// Interceptors returns the client interceptors.
func (c *HolidayClient) Interceptors() []Interceptor {
	return c.inters.Holiday
}

func (c *HolidayClient) mutate(ctx context.Context, m *HolidayMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&HolidayCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&HolidayUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&HolidayUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&HolidayDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown Holiday mutation op: %q", m.Op())
	}
}

// JobRecordClient is a client for the JobRecord schema.
type JobRecordClient struct {
	config
}

// NewJobRecordClient returns a client for the JobRecord from the given config.
func NewJobRecordClient(c config) *JobRecordClient {
	return &JobRecordClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `jobrecord.Hooks(f(g(h())))`.
func (c *JobRecordClient) Use(hooks ...Hook) {
	c.hooks.JobRecord = append(c.hooks.JobRecord, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `jobrecord.Intercept(f(g(h())))`.
func (c *JobRecordClient) Intercept(interceptors ...Interceptor) {
	c.inters.JobRecord = append(c.inters.JobRecord, interceptors...)
}

// Create returns a builder for creating a JobRecord entity.
func (c *JobRecordClient) Create() *JobRecordCreate {
	mutation := newJobRecordMutation(c.config, OpCreate)
	return &JobRecordCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of JobRecord entities.
func (c *JobRecordClient) CreateBulk(builders ...*JobRecordCreate) *JobRecordCreateBulk {
	return &JobRecordCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *JobRecordClient) MapCreateBulk(slice any, setFunc func(*JobRecordCreate, int)) *JobRecordCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &JobRecordCreateBulk{err: fmt.Errorf("calling to JobRecordClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*JobRecordCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &JobRecordCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for JobRecord.
func (c *JobRecordClient) Update() *JobRecordUpdate {
	mutation := newJobRecordMutation(c.config, OpUpdate)
	return &JobRecordUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *JobRecordClient) UpdateOne(_m *JobRecord) *JobRecordUpdateOne {
	mutation := newJobRecordMutation(c.config, OpUpdateOne, withJobRecord(_m))
	return &JobRecordUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *JobRecordClient) UpdateOneID(id uuid.UUID) *JobRecordUpdateOne {
	mutation := newJobRecordMutation(c.config, OpUpdateOne, withJobRecordID(id))
	return &JobRecordUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for JobRecord.
func (c *JobRecordClient) Delete() *JobRecordDelete {
	mutation := newJobRecordMutation(c.config, OpDelete)
	return &JobRecordDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *JobRecordClient) DeleteOne(_m *JobRecord) *JobRecordDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *JobRecordClient) DeleteOneID(id uuid.UUID) *JobRecordDeleteOne {
	builder := c.Delete().Where(jobrecord.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &JobRecordDeleteOne{builder}
}

// Query returns a query builder for JobRecord.
func (c *JobRecordClient) Query() *JobRecordQuery {
	return &JobRecordQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeJobRecord},
		inters: c.Interceptors(),
	}
}

// Get returns a JobRecord entity by its id.
func (c *JobRecordClient) Get(ctx context.Context, id uuid.UUID) (*JobRecord, error) {
	return c.Query().Where(jobrecord.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *JobRecordClient) GetX(ctx context.Context, id uuid.UUID) *JobRecord {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryTasks queries the tasks edge of a JobRecord.
func (c *JobRecordClient) QueryTasks(_m *JobRecord) *StepTaskQuery {
	query := (&StepTaskClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(jobrecord.Table, jobrecord.FieldID, id),
			sqlgraph.To(steptask.Table, steptask.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, jobrecord.TasksTable, jobrecord.TasksColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *JobRecordClient) Hooks() []Hook {
	return c.hooks.JobRecord
}

// Interceptors returns the client interceptors.
func (c *JobRecordClient) Interceptors() []Interceptor {
	return c.inters.JobRecord
}

func (c *JobRecordClient) mutate(ctx context.Context, m *JobRecordMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&JobRecordCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&JobRecordUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&JobRecordUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&JobRecordDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown JobRecord mutation op: %q", m.Op())
	}
}

// StepConfigClient is a client for the StepConfig schema.
type StepConfigClient struct {
	config
}

// NewStepConfigClient returns a client for the StepConfig from the given config.
func NewStepConfigClient(c config) *StepConfigClient {
	return &StepConfigClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `stepconfig.Hooks(f(g(h())))`.
func (c *StepConfigClient) Use(hooks ...Hook) {
	c.hooks.StepConfig = append(c.hooks.StepConfig, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `stepconfig.Intercept(f(g(h())))`.
func (c *StepConfigClient) Intercept(interceptors ...Interceptor) {
	c.inters.StepConfig = append(c.inters.StepConfig, interceptors...)
}

// Create returns a builder for creating a StepConfig entity.
func (c *StepConfigClient) Create() *StepConfigCreate {
	mutation := newStepConfigMutation(c.config, OpCreate)
	return &StepConfigCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of StepConfig entities.
func (c *StepConfigClient) CreateBulk(builders ...*StepConfigCreate) *StepConfigCreateBulk {
	return &StepConfigCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *StepConfigClient) MapCreateBulk(slice any, setFunc func(*StepConfigCreate, int)) *StepConfigCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &StepConfigCreateBulk{err: fmt.Errorf("calling to StepConfigClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*StepConfigCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &StepConfigCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for StepConfig.
func (c *StepConfigClient) Update() *StepConfigUpdate {
	mutation := newStepConfigMutation(c.config, OpUpdate)
	return &StepConfigUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *StepConfigClient) UpdateOne(_m *StepConfig) *StepConfigUpdateOne {
	mutation := newStepConfigMutation(c.config, OpUpdateOne, withStepConfig(_m))
	return &StepConfigUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *StepConfigClient) UpdateOneID(id int) *StepConfigUpdateOne {
	mutation := newStepConfigMutation(c.config, OpUpdateOne, withStepConfigID(id))
	return &StepConfigUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for StepConfig.
func (c *StepConfigClient) Delete() *StepConfigDelete {
	mutation := newStepConfigMutation(c.config, OpDelete)
	return &StepConfigDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *StepConfigClient) DeleteOne(_m *StepConfig) *StepConfigDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *StepConfigClient) DeleteOneID(id int) *StepConfigDeleteOne {
	builder := c.Delete().Where(stepconfig.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &StepConfigDeleteOne{builder}
}

// Query returns a query builder for StepConfig.
func (c *StepConfigClient) Query() *StepConfigQuery {
	return &StepConfigQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeStepConfig},
		inters: c.Interceptors(),
	}
}

// Get returns a StepConfig entity by its id.
func (c *StepConfigClient) Get(ctx context.Context, id int) (*StepConfig, error) {
	return c.Query().Where(stepconfig.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *StepConfigClient) GetX(ctx context.Context, id int) *StepConfig {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *StepConfigClient) Hooks() []Hook {
	return c.hooks.StepConfig
}

// Interceptors returns the client interceptors.
func (c *StepConfigClient) Interceptors() []Interceptor {
	return c.inters.StepConfig
}

func (c *StepConfigClient) mutate(ctx context.Context, m *StepConfigMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&StepConfigCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&StepConfigUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&StepConfigUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&StepConfigDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown StepConfig mutation op: %q", m.Op())
	}
}

// StepTaskClient is a client for the StepTask schema.
type StepTaskClient struct {
	config
}

// NewStepTaskClient returns a client for the StepTask from the given config.
func NewStepTaskClient(c config) *StepTaskClient {
	return &StepTaskClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `steptask.Hooks(f(g(h())))`.
func (c *StepTaskClient) Use(hooks ...Hook) {
	c.hooks.StepTask = append(c.hooks.StepTask, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `steptask.Intercept(f(g(h())))`.
func (c *StepTaskClient) Intercept(interceptors ...Interceptor) {
	c.inters.StepTask = append(c.inters.StepTask, interceptors...)
}

// Create returns a builder for creating a StepTask entity.
func (c *StepTaskClient) Create() *StepTaskCreate {
	mutation := newStepTaskMutation(c.config, OpCreate)
	return &StepTaskCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of StepTask entities.
func (c *StepTaskClient) CreateBulk(builders ...*StepTaskCreate) *StepTaskCreateBulk {
	return &StepTaskCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *StepTaskClient) MapCreateBulk(slice any, setFunc func(*StepTaskCreate, int)) *StepTaskCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &StepTaskCreateBulk{err: fmt.Errorf("calling to StepTaskClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*StepTaskCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &StepTaskCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for StepTask.
func (c *StepTaskClient) Update() *StepTaskUpdate {
	mutation := newStepTaskMutation(c.config, OpUpdate)
	return &StepTaskUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *StepTaskClient) UpdateOne(_m *StepTask) *StepTaskUpdateOne {
	mutation := newStepTaskMutation(c.config, OpUpdateOne, withStepTask(_m))
	return &StepTaskUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *StepTaskClient) UpdateOneID(id uuid.UUID) *StepTaskUpdateOne {
	mutation := newStepTaskMutation(c.config, OpUpdateOne, withStepTaskID(id))
	return &StepTaskUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for StepTask.
func (c *StepTaskClient) Delete() *StepTaskDelete {
	mutation := newStepTaskMutation(c.config, OpDelete)
	return &StepTaskDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *StepTaskClient) DeleteOne(_m *StepTask) *StepTaskDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *StepTaskClient) DeleteOneID(id uuid.UUID) *StepTaskDeleteOne {
	builder := c.Delete().Where(steptask.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &StepTaskDeleteOne{builder}
}

// Query returns a query builder for StepTask.
func (c *StepTaskClient) Query() *StepTaskQuery {
	return &StepTaskQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeStepTask},
		inters: c.Interceptors(),
	}
}

// Get returns a StepTask entity by its id.
func (c *StepTaskClient) Get(ctx context.Context, id uuid.UUID) (*StepTask, error) {
	return c.Query().Where(steptask.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *StepTaskClient) GetX(ctx context.Context, id uuid.UUID) *StepTask {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryJob queries the job edge of a StepTask.
func (c *StepTaskClient) QueryJob(_m *StepTask) *JobRecordQuery {
	query := (&JobRecordClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(steptask.Table, steptask.FieldID, id),
			sqlgraph.To(jobrecord.Table, jobrecord.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, steptask.JobTable, steptask.JobColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *StepTaskClient) Hooks() []Hook {
	return c.hooks.StepTask
}

// Interceptors returns the client interceptors.
func (c *StepTaskClient) Interceptors() []Interceptor {
	return c.inters.StepTask
}

func (c *StepTaskClient) mutate(ctx context.Context, m *StepTaskMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&StepTaskCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&StepTaskUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&StepTaskUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&StepTaskDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown StepTask mutation op: %q", m.Op())
	}
}

// TaskCommentClient is a client for the TaskComment schema.
type TaskCommentClient struct {
	config
}

// NewTaskCommentClient returns a client for the TaskComment from the given config.
func NewTaskCommentClient(c config) *TaskCommentClient {
	return &TaskCommentClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `taskcomment.Hooks(f(g(h())))`.
func (c *TaskCommentClient) Use(hooks ...Hook) {
	c.hooks.TaskComment = append(c.hooks.TaskComment, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `taskcomment.Intercept(f(g(h())))`.
func (c *TaskCommentClient) Intercept(interceptors ...Interceptor) {
	c.inters.TaskComment = append(c.inters.TaskComment, interceptors...)
}

// Create returns a builder for creating a TaskComment entity.
func (c *TaskCommentClient) Create() *TaskCommentCreate {
	mutation := newTaskCommentMutation(c.config, OpCreate)
	return &TaskCommentCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of TaskComment entities.
func (c *TaskCommentClient) CreateBulk(builders ...*TaskCommentCreate) *TaskCommentCreateBulk {
	return &TaskCommentCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *TaskCommentClient) MapCreateBulk(slice any, setFunc func(*TaskCommentCreate, int)) *TaskCommentCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &TaskCommentCreateBulk{err: fmt.Errorf("calling to TaskCommentClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*TaskCommentCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &TaskCommentCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for TaskComment.
func (c *TaskCommentClient) Update() *TaskCommentUpdate {
	mutation := newTaskCommentMutation(c.config, OpUpdate)
	return &TaskCommentUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *TaskCommentClient) UpdateOne(_m *TaskComment) *TaskCommentUpdateOne {
	mutation := newTaskCommentMutation(c.config, OpUpdateOne, withTaskComment(_m))
	return &TaskCommentUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *TaskCommentClient) UpdateOneID(id uuid.UUID) *TaskCommentUpdateOne {
	mutation := newTaskCommentMutation(c.config, OpUpdateOne, withTaskCommentID(id))
	return &TaskCommentUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for TaskComment.
func (c *TaskCommentClient) Delete() *TaskCommentDelete {
	mutation := newTaskCommentMutation(c.config, OpDelete)
	return &TaskCommentDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *TaskCommentClient) DeleteOne(_m *TaskComment) *TaskCommentDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *TaskCommentClient) DeleteOneID(id uuid.UUID) *TaskCommentDeleteOne {
	builder := c.Delete().Where(taskcomment.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &TaskCommentDeleteOne{builder}
}

// Query returns a query builder for TaskComment.
func (c *TaskCommentClient) Query() *TaskCommentQuery {
	return &TaskCommentQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeTaskComment},
		inters: c.Interceptors(),
	}
}

// Get returns a TaskComment entity by its id.
func (c *TaskCommentClient) Get(ctx context.Context, id uuid.UUID) (*TaskComment, error) {
	return c.Query().Where(taskcomment.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *TaskCommentClient) GetX(ctx context.Context, id uuid.UUID) *TaskComment {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryTask queries the task edge of a TaskComment.
func (c *TaskCommentClient) QueryTask(_m *TaskComment) *DelegationTaskQuery {
	query := (&DelegationTaskClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(taskcomment.Table, taskcomment.FieldID, id),
			sqlgraph.To(delegationtask.Table, delegationtask.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, taskcomment.TaskTable, taskcomment.TaskColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *TaskCommentClient) Hooks() []Hook {
	return c.hooks.TaskComment
}

// Interceptors returns the client interceptors.
func (c *TaskCommentClient) Interceptors() []Interceptor {
	return c.inters.TaskComment
}

func (c *TaskCommentClient) mutate(ctx context.Context, m *TaskCommentMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&TaskCommentCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&TaskCommentUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&TaskCommentUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&TaskCommentDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown TaskComment mutation op: %q", m.Op())
	}
}

// UserClient is a client for the User schema.
type UserClient struct {
	config
}

// NewUserClient returns a client for the User from the given config.
func NewUserClient(c config) *UserClient {
	return &UserClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `user.Hooks(f(g(h())))`.
func (c *UserClient) Use(hooks ...Hook) {
	c.hooks.User = append(c.hooks.User, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `user.Intercept(f(g(h())))`.
func (c *UserClient) Intercept(interceptors ...Interceptor) {
	c.inters.User = append(c.inters.User, interceptors...)
}

// Create returns a builder for creating a User entity.
func (c *UserClient) Create() *UserCreate {
	mutation := newUserMutation(c.config, OpCreate)
	return &UserCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of User entities.
func (c *UserClient) CreateBulk(builders ...*UserCreate) *UserCreateBulk {
	return &UserCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *UserClient) MapCreateBulk(slice any, setFunc func(*UserCreate, int)) *UserCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &UserCreateBulk{err: fmt.Errorf("calling to UserClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*UserCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &UserCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for User.
func (c *UserClient) Update() *UserUpdate {
	mutation := newUserMutation(c.config, OpUpdate)
	return &UserUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *UserClient) UpdateOne(_m *User) *UserUpdateOne {
	mutation := newUserMutation(c.config, OpUpdateOne, withUser(_m))
	return &UserUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *UserClient) UpdateOneID(id uuid.UUID) *UserUpdateOne {
	mutation := newUserMutation(c.config, OpUpdateOne, withUserID(id))
	return &UserUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for User.
func (c *UserClient) Delete() *UserDelete {
	mutation := newUserMutation(c.config, OpDelete)
	return &UserDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *UserClient) DeleteOne(_m *User) *UserDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *UserClient) DeleteOneID(id uuid.UUID) *UserDeleteOne {
	builder := c.Delete().Where(user.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &UserDeleteOne{builder}
}

// Query returns a query builder for User.
func (c *UserClient) Query() *UserQuery {
	return &UserQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeUser},
		inters: c.Interceptors(),
	}
}

// Get returns a User entity by its id.
func (c *UserClient) Get(ctx context.Context, id uuid.UUID) (*User, error) {
	return c.Query().Where(user.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *UserClient) GetX(ctx context.Context, id uuid.UUID) *User {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *UserClient) Hooks() []Hook {
	return c.hooks.User
}

// Interceptors returns the client interceptors.
func (c *UserClient) Interceptors() []Interceptor {
	return c.inters.User
}

func (c *UserClient) mutate(ctx context.Context, m *UserMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&UserCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&UserUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&UserUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&UserDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown User mutation op: %q", m.Op())
	}
}

// hooks and interceptors per client, for fast access.
type (
	hooks struct {
		ChecklistTask, DelegationTask, EmployeePlan, Holiday, JobRecord, StepConfig,
		StepTask, TaskComment, User []ent.Hook
	}
	inters struct {
		ChecklistTask, DelegationTask, EmployeePlan, Holiday, JobRecord, StepConfig,
		StepTask, TaskComment, User []ent.Interceptor
	}
)
