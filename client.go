package prisma

import (
	"context"
	"database/sql"
	"io"
	"os"

	"github.com/carlosnayan/prisma-go-marketplace/builder"
	"github.com/carlosnayan/prisma-go-marketplace/internal/config"
	contextutil "github.com/carlosnayan/prisma-go-marketplace/internal/context"
	"github.com/carlosnayan/prisma-go-marketplace/internal/driver"
	"github.com/carlosnayan/prisma-go-marketplace/internal/errors"
	"github.com/carlosnayan/prisma-go-marketplace/internal/logger"
	"github.com/carlosnayan/prisma-go-marketplace/raw"
)

// Option configures a client.
type Option func(*options)

type options struct {
	url        string
	provider   string
	sqlDB      *sql.DB
	configFile string
	levels     []string
	writer     io.Writer
}

// WithDatasourceURL connects to url instead of the configured datasource.
func WithDatasourceURL(url string) Option {
	return func(o *options) { o.url = url }
}

// WithDB uses an already open pool. The client does not configure it, but
// Disconnect closes it.
func WithDB(db *sql.DB, provider string) Option {
	return func(o *options) {
		o.sqlDB = db
		o.provider = provider
	}
}

// WithLog emits the given levels ("query", "info", "warn", "error").
func WithLog(levels ...string) Option {
	return func(o *options) { o.levels = levels }
}

// WithLogger sends log lines to w instead of stdout.
func WithLogger(w io.Writer) Option {
	return func(o *options) { o.writer = w }
}

// WithConfigFile reads the datasource, log levels and pool settings from path
// instead of searching for prisma.conf.
func WithConfigFile(path string) Option {
	return func(o *options) { o.configFile = path }
}

// Core is the connection and transaction state shared by the generated
// delegates. Copies made for a transaction share the parent's options.
type Core struct {
	engine *builder.Engine
	opts   options
	logger *logger.Logger
}

// NewCore returns an unconnected core for provider, the datasource provider
// the client was generated for.
func NewCore(provider string, opts ...Option) *Core {
	o := options{provider: provider}
	for _, opt := range opts {
		opt(&o)
	}
	c := &Core{engine: builder.NewEngine(o.provider, nil), opts: o}
	if o.levels != nil || o.writer != nil {
		c.setLogger(logger.NewLogger(o.levels, o.writer))
	}
	return c
}

// Engine returns the query engine the delegates run on.
func (c *Core) Engine() *builder.Engine { return c.engine }

// Connect opens the connection pool and checks it with a ping.
func (c *Core) Connect(ctx context.Context) error {
	if c.engine.InTransaction() {
		return nil
	}
	if c.opts.sqlDB != nil {
		db := driver.NewSQLDB(c.opts.sqlDB)
		if err := db.Ping(ctx); err != nil {
			return errors.NewInitializationError(err)
		}
		c.engine.Attach(db)
		return nil
	}

	url, pool, err := c.datasource()
	if err != nil {
		return err
	}
	provider := driver.DetectProvider(url)
	c.engine.SetProvider(provider)

	db, err := driver.Open(ctx, provider, url, pool)
	if err != nil {
		return errors.NewInitializationError(err)
	}
	c.engine.Attach(db)
	c.log().Info("connected to %s", provider)
	return nil
}

// datasource resolves the URL and pool settings: an explicit URL wins, then
// the config file, then DATABASE_URL.
func (c *Core) datasource() (string, *driver.PoolConfig, error) {
	if c.opts.url != "" {
		return c.opts.url, nil, nil
	}
	cfg, err := config.Load(c.opts.configFile)
	if err != nil {
		if c.opts.configFile == "" {
			if url := os.Getenv("DATABASE_URL"); url != "" {
				return url, nil, nil
			}
		}
		return "", nil, errors.WrapPrismaError(errors.ErrInvalidDatasource, err)
	}
	if c.opts.levels == nil && len(cfg.Log) > 0 {
		c.setLogger(logger.NewLogger(cfg.Log, c.opts.writer))
	}
	return cfg.GetDatabaseURL(), poolConfig(cfg.Pool), nil
}

func poolConfig(p *config.PoolConfig) *driver.PoolConfig {
	if p == nil {
		return nil
	}
	pc := driver.DefaultPoolConfig()
	if p.MaxConns > 0 {
		pc.MaxConns = p.MaxConns
	}
	if p.MinConns > 0 {
		pc.MinConns = p.MinConns
	}
	if p.MaxConnLifetime.Duration > 0 {
		pc.MaxConnLifetime = p.MaxConnLifetime.Duration
	}
	if p.MaxConnIdleTime.Duration > 0 {
		pc.MaxConnIdleTime = p.MaxConnIdleTime.Duration
	}
	return pc
}

// Disconnect closes the pool. Operations fail with ErrNotConnected until the
// next Connect.
func (c *Core) Disconnect() error {
	if c.engine.InTransaction() {
		return nil
	}
	return c.engine.Detach()
}

func (c *Core) setLogger(l *logger.Logger) {
	c.logger = l
	c.engine.SetLogger(l)
}

func (c *Core) log() *logger.Logger {
	if c.logger != nil {
		return c.logger
	}
	return logger.GetDefaultLogger()
}

func (c *Core) executor() (*raw.Executor, error) {
	q, err := c.engine.Querier()
	if err != nil {
		return nil, err
	}
	return raw.New(q, c.engine.Dialect(), c.log()), nil
}

func (c *Core) rawContext(ctx context.Context) (context.Context, context.CancelFunc) {
	if c.engine.InTransaction() {
		return ctx, func() {}
	}
	return contextutil.WithQueryTimeout(ctx)
}

// QueryRaw runs q and returns each row as a column-name map.
func (c *Core) QueryRaw(ctx context.Context, q raw.Query) ([]map[string]any, error) {
	ex, err := c.executor()
	if err != nil {
		return nil, err
	}
	ctx, cancel := c.rawContext(ctx)
	defer cancel()
	return ex.QueryMaps(ctx, q)
}

// QueryRawInto runs q and scans the rows into dest, a pointer to a slice of structs.
func (c *Core) QueryRawInto(ctx context.Context, dest any, q raw.Query) error {
	ex, err := c.executor()
	if err != nil {
		return err
	}
	ctx, cancel := c.rawContext(ctx)
	defer cancel()
	return ex.QueryInto(ctx, dest, q)
}

// ExecuteRaw runs a statement and returns the number of affected rows.
func (c *Core) ExecuteRaw(ctx context.Context, q raw.Query) (int64, error) {
	ex, err := c.executor()
	if err != nil {
		return 0, err
	}
	ctx, cancel := c.rawContext(ctx)
	defer cancel()
	return ex.Exec(ctx, q)
}

// QueryRawUnsafe sends query as written, with the database's own placeholders.
func (c *Core) QueryRawUnsafe(ctx context.Context, query string, args ...any) ([]map[string]any, error) {
	return c.QueryRaw(ctx, raw.Unsafe(query, args...))
}

// ExecuteRawUnsafe sends query as written, with the database's own placeholders.
func (c *Core) ExecuteRawUnsafe(ctx context.Context, query string, args ...any) (int64, error) {
	return c.ExecuteRaw(ctx, raw.Unsafe(query, args...))
}

// Transaction runs fn in a transaction. tx runs every statement inside it;
// fn must not use the parent core, which on SQLite would wait on the single
// connection the transaction holds.
func (c *Core) Transaction(ctx context.Context, fn func(ctx context.Context, tx *Core) error) error {
	return c.engine.Transaction(ctx, func(ctx context.Context, e *builder.Engine) error {
		return fn(ctx, &Core{engine: e, opts: c.opts, logger: c.logger})
	})
}

// Batch runs deferred operations in order inside one transaction. When one
// fails the rest are skipped and every write is rolled back.
func (c *Core) Batch(ctx context.Context, ops ...builder.Runnable) error {
	if len(ops) == 0 {
		return nil
	}
	return c.engine.Batch(ctx, ops...)
}
