// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"log"
	"reflect"

	"github.com/plaroindia/Pearl/ent/migrate"

	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/sql"
	"github.com/plaroindia/Pearl/ent/checkpointresult"
	"github.com/plaroindia/Pearl/ent/learningpath"
	"github.com/plaroindia/Pearl/ent/llmrequestevent"
	"github.com/plaroindia/Pearl/ent/practiceattempt"
	"github.com/plaroindia/Pearl/ent/session"
	"github.com/plaroindia/Pearl/ent/skillprofile"
)

// Client is the client that holds all ent builders.
type Client struct {
	config
	// Schema is the client for creating, migrating and dropping schema.
	Schema *migrate.Schema
	// CheckpointResult is the client for interacting with the CheckpointResult builders.
	CheckpointResult *CheckpointResultClient
	// LLMRequestEvent is the client for interacting with the LLMRequestEvent builders.
	LLMRequestEvent *LLMRequestEventClient
	// LearningPath is the client for interacting with the LearningPath builders.
	LearningPath *LearningPathClient
	// PracticeAttempt is the client for interacting with the PracticeAttempt builders.
	PracticeAttempt *PracticeAttemptClient
	// Session is the client for interacting with the Session builders.
	Session *SessionClient
	// SkillProfile is the client for interacting with the SkillProfile builders.
	SkillProfile *SkillProfileClient
}

// NewClient creates a new client configured with the given options.
func NewClient(opts ...Option) *Client {
	client := &Client{config: newConfig(opts...)}
	client.init()
	return client
}

func (c *Client) init() {
	c.Schema = migrate.NewSchema(c.driver)
	c.CheckpointResult = NewCheckpointResultClient(c.config)
	c.LLMRequestEvent = NewLLMRequestEventClient(c.config)
	c.LearningPath = NewLearningPathClient(c.config)
	c.PracticeAttempt = NewPracticeAttemptClient(c.config)
	c.Session = NewSessionClient(c.config)
	c.SkillProfile = NewSkillProfileClient(c.config)
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
		ctx:              ctx,
		config:           cfg,
		CheckpointResult: NewCheckpointResultClient(cfg),
		LLMRequestEvent:  NewLLMRequestEventClient(cfg),
		LearningPath:     NewLearningPathClient(cfg),
		PracticeAttempt:  NewPracticeAttemptClient(cfg),
		Session:          NewSessionClient(cfg),
		SkillProfile:     NewSkillProfileClient(cfg),
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
		ctx:              ctx,
		config:           cfg,
		CheckpointResult: NewCheckpointResultClient(cfg),
		LLMRequestEvent:  NewLLMRequestEventClient(cfg),
		LearningPath:     NewLearningPathClient(cfg),
		PracticeAttempt:  NewPracticeAttemptClient(cfg),
		Session:          NewSessionClient(cfg),
		SkillProfile:     NewSkillProfileClient(cfg),
	}, nil
}

// Debug returns a new debug-client. It's used to get verbose logging on specific operations.
//
//	client.Debug().
//		CheckpointResult.
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
		c.CheckpointResult, c.LLMRequestEvent, c.LearningPath, c.PracticeAttempt,
		c.Session, c.SkillProfile,
	} {
		n.Use(hooks...)
	}
}

// Intercept adds the query interceptors to all the entity clients.
// In order to add interceptors to a specific client, call: `client.Node.Intercept(...)`.
func (c *Client) Intercept(interceptors ...Interceptor) {
	for _, n := range []interface{ Intercept(...Interceptor) }{
		c.CheckpointResult, c.LLMRequestEvent, c.LearningPath, c.PracticeAttempt,
		c.Session, c.SkillProfile,
	} {
		n.Intercept(interceptors...)
	}
}

// Mutate implements the ent.Mutator interface.
func (c *Client) Mutate(ctx context.Context, m Mutation) (Value, error) {
	switch m := m.(type) {
	case *CheckpointResultMutation:
		return c.CheckpointResult.mutate(ctx, m)
	case *LLMRequestEventMutation:
		return c.LLMRequestEvent.mutate(ctx, m)
	case *LearningPathMutation:
		return c.LearningPath.mutate(ctx, m)
	case *PracticeAttemptMutation:
		return c.PracticeAttempt.mutate(ctx, m)
	case *SessionMutation:
		return c.Session.mutate(ctx, m)
	case *SkillProfileMutation:
		return c.SkillProfile.mutate(ctx, m)
	default:
		return nil, fmt.Errorf("ent: unknown mutation type %T", m)
	}
}

// CheckpointResultClient is a client for the CheckpointResult schema.
type CheckpointResultClient struct {
	config
}

// NewCheckpointResultClient returns a client for the CheckpointResult from the given config.
func NewCheckpointResultClient(c config) *CheckpointResultClient {
	return &CheckpointResultClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `checkpointresult.Hooks(f(g(h())))`.
func (c *CheckpointResultClient) Use(hooks ...Hook) {
	c.hooks.CheckpointResult = append(c.hooks.CheckpointResult, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `checkpointresult.Intercept(f(g(h())))`.
func (c *CheckpointResultClient) Intercept(interceptors ...Interceptor) {
	c.inters.CheckpointResult = append(c.inters.CheckpointResult, interceptors...)
}

// Create returns a builder for creating a CheckpointResult entity.
func (c *CheckpointResultClient) Create() *CheckpointResultCreate {
	mutation := newCheckpointResultMutation(c.config, OpCreate)
	return &CheckpointResultCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of CheckpointResult entities.
func (c *CheckpointResultClient) CreateBulk(builders ...*CheckpointResultCreate) *CheckpointResultCreateBulk {
	return &CheckpointResultCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *CheckpointResultClient) MapCreateBulk(slice any, setFunc func(*CheckpointResultCreate, int)) *CheckpointResultCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &CheckpointResultCreateBulk{err: fmt.Errorf("calling to CheckpointResultClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*CheckpointResultCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &CheckpointResultCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for CheckpointResult.
func (c *CheckpointResultClient) Update() *CheckpointResultUpdate {
	mutation := newCheckpointResultMutation(c.config, OpUpdate)
	return &CheckpointResultUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *CheckpointResultClient) UpdateOne(_m *CheckpointResult) *CheckpointResultUpdateOne {
	mutation := newCheckpointResultMutation(c.config, OpUpdateOne, withCheckpointResult(_m))
	return &CheckpointResultUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *CheckpointResultClient) UpdateOneID(id int) *CheckpointResultUpdateOne {
	mutation := newCheckpointResultMutation(c.config, OpUpdateOne, withCheckpointResultID(id))
	return &CheckpointResultUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for CheckpointResult.
func (c *CheckpointResultClient) Delete() *CheckpointResultDelete {
	mutation := newCheckpointResultMutation(c.config, OpDelete)
	return &CheckpointResultDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *CheckpointResultClient) DeleteOne(_m *CheckpointResult) *CheckpointResultDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *CheckpointResultClient) DeleteOneID(id int) *CheckpointResultDeleteOne {
	builder := c.Delete().Where(checkpointresult.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &CheckpointResultDeleteOne{builder}
}

// Query returns a query builder for CheckpointResult.
func (c *CheckpointResultClient) Query() *CheckpointResultQuery {
	return &CheckpointResultQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeCheckpointResult},
		inters: c.Interceptors(),
	}
}

// Get returns a CheckpointResult entity by its id.
func (c *CheckpointResultClient) Get(ctx context.Context, id int) (*CheckpointResult, error) {
	return c.Query().Where(checkpointresult.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *CheckpointResultClient) GetX(ctx context.Context, id int) *CheckpointResult {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *CheckpointResultClient) Hooks() []Hook {
	return c.hooks.CheckpointResult
}

// Interceptors returns the client interceptors.
func (c *CheckpointResultClient) Interceptors() []Interceptor {
	return c.inters.CheckpointResult
}

func (c *CheckpointResultClient) mutate(ctx context.Context, m *CheckpointResultMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&CheckpointResultCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&CheckpointResultUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&CheckpointResultUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&CheckpointResultDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown CheckpointResult mutation op: %q", m.Op())
	}
}

// LLMRequestEventClient is a client for the LLMRequestEvent schema.
type LLMRequestEventClient struct {
	config
}

// NewLLMRequestEventClient returns a client for the LLMRequestEvent from the given config.
func NewLLMRequestEventClient(c config) *LLMRequestEventClient {
	return &LLMRequestEventClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `llmrequestevent.Hooks(f(g(h())))`.
func (c *LLMRequestEventClient) Use(hooks ...Hook) {
	c.hooks.LLMRequestEvent = append(c.hooks.LLMRequestEvent, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `llmrequestevent.Intercept(f(g(h())))`.
func (c *LLMRequestEventClient) Intercept(interceptors ...Interceptor) {
	c.inters.LLMRequestEvent = append(c.inters.LLMRequestEvent, interceptors...)
}

// Create returns a builder for creating a LLMRequestEvent entity.
func (c *LLMRequestEventClient) Create() *LLMRequestEventCreate {
	mutation := newLLMRequestEventMutation(c.config, OpCreate)
	return &LLMRequestEventCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of LLMRequestEvent entities.
func (c *LLMRequestEventClient) CreateBulk(builders ...*LLMRequestEventCreate) *LLMRequestEventCreateBulk {
	return &LLMRequestEventCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *LLMRequestEventClient) MapCreateBulk(slice any, setFunc func(*LLMRequestEventCreate, int)) *LLMRequestEventCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &LLMRequestEventCreateBulk{err: fmt.Errorf("calling to LLMRequestEventClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*LLMRequestEventCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &LLMRequestEventCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for LLMRequestEvent.
func (c *LLMRequestEventClient) Update() *LLMRequestEventUpdate {
	mutation := newLLMRequestEventMutation(c.config, OpUpdate)
	return &LLMRequestEventUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *LLMRequestEventClient) UpdateOne(_m *LLMRequestEvent) *LLMRequestEventUpdateOne {
	mutation := newLLMRequestEventMutation(c.config, OpUpdateOne, withLLMRequestEvent(_m))
	return &LLMRequestEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *LLMRequestEventClient) UpdateOneID(id int) *LLMRequestEventUpdateOne {
	mutation := newLLMRequestEventMutation(c.config, OpUpdateOne, withLLMRequestEventID(id))
	return &LLMRequestEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for LLMRequestEvent.
func (c *LLMRequestEventClient) Delete() *LLMRequestEventDelete {
	mutation := newLLMRequestEventMutation(c.config, OpDelete)
	return &LLMRequestEventDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *LLMRequestEventClient) DeleteOne(_m *LLMRequestEvent) *LLMRequestEventDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *LLMRequestEventClient) DeleteOneID(id int) *LLMRequestEventDeleteOne {
	builder := c.Delete().Where(llmrequestevent.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &LLMRequestEventDeleteOne{builder}
}

// Query returns a query builder for LLMRequestEvent.
func (c *LLMRequestEventClient) Query() *LLMRequestEventQuery {
	return &LLMRequestEventQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeLLMRequestEvent},
		inters: c.Interceptors(),
	}
}

// Get returns a LLMRequestEvent entity by its id.
func (c *LLMRequestEventClient) Get(ctx context.Context, id int) (*LLMRequestEvent, error) {
	return c.Query().Where(llmrequestevent.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *LLMRequestEventClient) GetX(ctx context.Context, id int) *LLMRequestEvent {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *LLMRequestEventClient) Hooks() []Hook {
	return c.hooks.LLMRequestEvent
}

// Interceptors returns the client interceptors.
func (c *LLMRequestEventClient) Interceptors() []Interceptor {
	return c.inters.LLMRequestEvent
}

func (c *LLMRequestEventClient) mutate(ctx context.Context, m *LLMRequestEventMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&LLMRequestEventCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&LLMRequestEventUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&LLMRequestEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&LLMRequestEventDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown LLMRequestEvent mutation op: %q", m.Op())
	}
}

// LearningPathClient is a client for the LearningPath schema.
type LearningPathClient struct {
	config
}

// NewLearningPathClient returns a client for the LearningPath from the given config.
func NewLearningPathClient(c config) *LearningPathClient {
	return &LearningPathClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `learningpath.Hooks(f(g(h())))`.
func (c *LearningPathClient) Use(hooks ...Hook) {
	c.hooks.LearningPath = append(c.hooks.LearningPath, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `learningpath.Intercept(f(g(h())))`.
func (c *LearningPathClient) Intercept(interceptors ...Interceptor) {
	c.inters.LearningPath = append(c.inters.LearningPath, interceptors...)
}

// Create returns a builder for creating a LearningPath entity.
func (c *LearningPathClient) Create() *LearningPathCreate {
	mutation := newLearningPathMutation(c.config, OpCreate)
	return &LearningPathCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of LearningPath entities.
func (c *LearningPathClient) CreateBulk(builders ...*LearningPathCreate) *LearningPathCreateBulk {
	return &LearningPathCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *LearningPathClient) MapCreateBulk(slice any, setFunc func(*LearningPathCreate, int)) *LearningPathCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &LearningPathCreateBulk{err: fmt.Errorf("calling to LearningPathClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*LearningPathCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &LearningPathCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for LearningPath.
func (c *LearningPathClient) Update() *LearningPathUpdate {
	mutation := newLearningPathMutation(c.config, OpUpdate)
	return &LearningPathUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *LearningPathClient) UpdateOne(_m *LearningPath) *LearningPathUpdateOne {
	mutation := newLearningPathMutation(c.config, OpUpdateOne, withLearningPath(_m))
	return &LearningPathUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *LearningPathClient) UpdateOneID(id int) *LearningPathUpdateOne {
	mutation := newLearningPathMutation(c.config, OpUpdateOne, withLearningPathID(id))
	return &LearningPathUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for LearningPath.
func (c *LearningPathClient) Delete() *LearningPathDelete {
	mutation := newLearningPathMutation(c.config, OpDelete)
	return &LearningPathDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *LearningPathClient) DeleteOne(_m *LearningPath) *LearningPathDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *LearningPathClient) DeleteOneID(id int) *LearningPathDeleteOne {
	builder := c.Delete().Where(learningpath.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &LearningPathDeleteOne{builder}
}

// Query returns a query builder for LearningPath.
func (c *LearningPathClient) Query() *LearningPathQuery {
	return &LearningPathQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeLearningPath},
		inters: c.Interceptors(),
	}
}

// Get returns a LearningPath entity by its id.
func (c *LearningPathClient) Get(ctx context.Context, id int) (*LearningPath, error) {
	return c.Query().Where(learningpath.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *LearningPathClient) GetX(ctx context.Context, id int) *LearningPath {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *LearningPathClient) Hooks() []Hook {
	return c.hooks.LearningPath
}

// Interceptors returns the client interceptors.
func (c *LearningPathClient) Interceptors() []Interceptor {
	return c.inters.LearningPath
}

func (c *LearningPathClient) mutate(ctx context.Context, m *LearningPathMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&LearningPathCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&LearningPathUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&LearningPathUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&LearningPathDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown LearningPath mutation op: %q", m.Op())
	}
}

// PracticeAttemptClient is a client for the PracticeAttempt schema.
type PracticeAttemptClient struct {
	config
}

// NewPracticeAttemptClient returns a client for the PracticeAttempt from the given config.
func NewPracticeAttemptClient(c config) *PracticeAttemptClient {
	return &PracticeAttemptClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `practiceattempt.Hooks(f(g(h())))`.
func (c *PracticeAttemptClient) Use(hooks ...Hook) {
	c.hooks.PracticeAttempt = append(c.hooks.PracticeAttempt, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `practiceattempt.Intercept(f(g(h())))`.
func (c *PracticeAttemptClient) Intercept(interceptors ...Interceptor) {
	c.inters.PracticeAttempt = append(c.inters.PracticeAttempt, interceptors...)
}

// Create returns a builder for creating a PracticeAttempt entity.
func (c *PracticeAttemptClient) Create() *PracticeAttemptCreate {
	mutation := newPracticeAttemptMutation(c.config, OpCreate)
	return &PracticeAttemptCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of PracticeAttempt entities.
func (c *PracticeAttemptClient) CreateBulk(builders ...*PracticeAttemptCreate) *PracticeAttemptCreateBulk {
	return &PracticeAttemptCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *PracticeAttemptClient) MapCreateBulk(slice any, setFunc func(*PracticeAttemptCreate, int)) *PracticeAttemptCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &PracticeAttemptCreateBulk{err: fmt.Errorf("calling to PracticeAttemptClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*PracticeAttemptCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &PracticeAttemptCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for PracticeAttempt.
func (c *PracticeAttemptClient) Update() *PracticeAttemptUpdate {
	mutation := newPracticeAttemptMutation(c.config, OpUpdate)
	return &PracticeAttemptUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *PracticeAttemptClient) UpdateOne(_m *PracticeAttempt) *PracticeAttemptUpdateOne {
	mutation := newPracticeAttemptMutation(c.config, OpUpdateOne, withPracticeAttempt(_m))
	return &PracticeAttemptUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *PracticeAttemptClient) UpdateOneID(id int) *PracticeAttemptUpdateOne {
	mutation := newPracticeAttemptMutation(c.config, OpUpdateOne, withPracticeAttemptID(id))
	return &PracticeAttemptUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for PracticeAttempt.
func (c *PracticeAttemptClient) Delete() *PracticeAttemptDelete {
	mutation := newPracticeAttemptMutation(c.config, OpDelete)
	return &PracticeAttemptDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *PracticeAttemptClient) DeleteOne(_m *PracticeAttempt) *PracticeAttemptDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *PracticeAttemptClient) DeleteOneID(id int) *PracticeAttemptDeleteOne {
	builder := c.Delete().Where(practiceattempt.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &PracticeAttemptDeleteOne{builder}
}

// Query returns a query builder for PracticeAttempt.
func (c *PracticeAttemptClient) Query() *PracticeAttemptQuery {
	return &PracticeAttemptQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypePracticeAttempt},
		inters: c.Interceptors(),
	}
}

// Get returns a PracticeAttempt entity by its id.
func (c *PracticeAttemptClient) Get(ctx context.Context, id int) (*PracticeAttempt, error) {
	return c.Query().Where(practiceattempt.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *PracticeAttemptClient) GetX(ctx context.Context, id int) *PracticeAttempt {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *PracticeAttemptClient) Hooks() []Hook {
	return c.hooks.PracticeAttempt
}

// Interceptors returns the client interceptors.
func (c *PracticeAttemptClient) Interceptors() []Interceptor {
	return c.inters.PracticeAttempt
}

func (c *PracticeAttemptClient) mutate(ctx context.Context, m *PracticeAttemptMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&PracticeAttemptCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&PracticeAttemptUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&PracticeAttemptUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&PracticeAttemptDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown PracticeAttempt mutation op: %q", m.Op())
	}
}

// SessionClient is a client for the Session schema.
type SessionClient struct {
	config
}

// NewSessionClient returns a client for the Session from the given config.
func NewSessionClient(c config) *SessionClient {
	return &SessionClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `session.Hooks(f(g(h())))`.
func (c *SessionClient) Use(hooks ...Hook) {
	c.hooks.Session = append(c.hooks.Session, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `session.Intercept(f(g(h())))`.
func (c *SessionClient) Intercept(interceptors ...Interceptor) {
	c.inters.Session = append(c.inters.Session, interceptors...)
}

// Create returns a builder for creating a Session entity.
func (c *SessionClient) Create() *SessionCreate {
	mutation := newSessionMutation(c.config, OpCreate)
	return &SessionCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Session entities.
func (c *SessionClient) CreateBulk(builders ...*SessionCreate) *SessionCreateBulk {
	return &SessionCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *SessionClient) MapCreateBulk(slice any, setFunc func(*SessionCreate, int)) *SessionCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &SessionCreateBulk{err: fmt.Errorf("calling to SessionClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*SessionCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &SessionCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Session.
func (c *SessionClient) Update() *SessionUpdate {
	mutation := newSessionMutation(c.config, OpUpdate)
	return &SessionUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *SessionClient) UpdateOne(_m *Session) *SessionUpdateOne {
	mutation := newSessionMutation(c.config, OpUpdateOne, withSession(_m))
	return &SessionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *SessionClient) UpdateOneID(id int) *SessionUpdateOne {
	mutation := newSessionMutation(c.config, OpUpdateOne, withSessionID(id))
	return &SessionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Session.
func (c *SessionClient) Delete() *SessionDelete {
	mutation := newSessionMutation(c.config, OpDelete)
	return &SessionDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *SessionClient) DeleteOne(_m *Session) *SessionDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *SessionClient) DeleteOneID(id int) *SessionDeleteOne {
	builder := c.Delete().Where(session.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &SessionDeleteOne{builder}
}

// Query returns a query builder for Session.
func (c *SessionClient) Query() *SessionQuery {
	return &SessionQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeSession},
		inters: c.Interceptors(),
	}
}

// Get returns a Session entity by its id.
func (c *SessionClient) Get(ctx context.Context, id int) (*Session, error) {
	return c.Query().Where(session.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *SessionClient) GetX(ctx context.Context, id int) *Session {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *SessionClient) Hooks() []Hook {
	return c.hooks.Session
}

// Interceptors returns the client interceptors.
func (c *SessionClient) Interceptors() []Interceptor {
	return c.inters.Session
}

func (c *SessionClient) mutate(ctx context.Context, m *SessionMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&SessionCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&SessionUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&SessionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&SessionDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown Session mutation op: %q", m.Op())
	}
}

// SkillProfileClient is a client for the SkillProfile schema.
type SkillProfileClient struct {
	config
}

// NewSkillProfileClient returns a client for the SkillProfile from the given config.
func NewSkillProfileClient(c config) *SkillProfileClient {
	return &SkillProfileClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `skillprofile.Hooks(f(g(h())))`.
func (c *SkillProfileClient) Use(hooks ...Hook) {
	c.hooks.SkillProfile = append(c.hooks.SkillProfile, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `skillprofile.Intercept(f(g(h())))`.
func (c *SkillProfileClient) Intercept(interceptors ...Interceptor) {
	c.inters.SkillProfile = append(c.inters.SkillProfile, interceptors...)
}

// Create returns a builder for creating a SkillProfile entity.
func (c *SkillProfileClient) Create() *SkillProfileCreate {
	mutation := newSkillProfileMutation(c.config, OpCreate)
	return &SkillProfileCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of SkillProfile entities.
func (c *SkillProfileClient) CreateBulk(builders ...*SkillProfileCreate) *SkillProfileCreateBulk {
	return &SkillProfileCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *SkillProfileClient) MapCreateBulk(slice any, setFunc func(*SkillProfileCreate, int)) *SkillProfileCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &SkillProfileCreateBulk{err: fmt.Errorf("calling to SkillProfileClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*SkillProfileCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &SkillProfileCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for SkillProfile.
func (c *SkillProfileClient) Update() *SkillProfileUpdate {
	mutation := newSkillProfileMutation(c.config, OpUpdate)
	return &SkillProfileUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *SkillProfileClient) UpdateOne(_m *SkillProfile) *SkillProfileUpdateOne {
	mutation := newSkillProfileMutation(c.config, OpUpdateOne, withSkillProfile(_m))
	return &SkillProfileUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *SkillProfileClient) UpdateOneID(id int) *SkillProfileUpdateOne {
	mutation := newSkillProfileMutation(c.config, OpUpdateOne, withSkillProfileID(id))
	return &SkillProfileUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for SkillProfile.
func (c *SkillProfileClient) Delete() *SkillProfileDelete {
	mutation := newSkillProfileMutation(c.config, OpDelete)
	return &SkillProfileDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *SkillProfileClient) DeleteOne(_m *SkillProfile) *SkillProfileDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *SkillProfileClient) DeleteOneID(id int) *SkillProfileDeleteOne {
	builder := c.Delete().Where(skillprofile.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &SkillProfileDeleteOne{builder}
}

// Query returns a query builder for SkillProfile.
func (c *SkillProfileClient) Query() *SkillProfileQuery {
	return &SkillProfileQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeSkillProfile},
		inters: c.Interceptors(),
	}
}

// Get returns a SkillProfile entity by its id.
func (c *SkillProfileClient) Get(ctx context.Context, id int) (*SkillProfile, error) {
	return c.Query().Where(skillprofile.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *SkillProfileClient) GetX(ctx context.Context, id int) *SkillProfile {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *SkillProfileClient) Hooks() []Hook {
	return c.hooks.SkillProfile
}

// Interceptors returns the client interceptors.
func (c *SkillProfileClient) Interceptors() []Interceptor {
	return c.inters.SkillProfile
}

func (c *SkillProfileClient) mutate(ctx context.Context, m *SkillProfileMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&SkillProfileCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&SkillProfileUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&SkillProfileUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&SkillProfileDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown SkillProfile mutation op: %q", m.Op())
	}
}

// hooks and interceptors per client, for fast access.
type (
	hooks struct {
		CheckpointResult, LLMRequestEvent, LearningPath, PracticeAttempt, Session,
		SkillProfile []ent.Hook
	}
	inters struct {
		CheckpointResult, LLMRequestEvent, LearningPath, PracticeAttempt, Session,
		SkillProfile []ent.Interceptor
	}
)
