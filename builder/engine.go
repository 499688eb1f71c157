package builder

import (
	"context"
	"fmt"
	"sync"
	"time"

	contextutil "github.com/carlosnayan/prisma-go-marketplace/internal/context"
	"github.com/carlosnayan/prisma-go-marketplace/internal/dialect"
	"github.com/carlosnayan/prisma-go-marketplace/internal/driver"
	"github.com/carlosnayan/prisma-go-marketplace/internal/errors"
	"github.com/carlosnayan/prisma-go-marketplace/internal/limits"
	"github.com/carlosnayan/prisma-go-marketplace/internal/logger"
	"github.com/carlosnayan/prisma-go-marketplace/internal/query"
)

// Engine executes operations against one database. A root engine owns the
// connection pool; Transaction hands callbacks a child engine bound to the
// transaction.
type Engine struct {
	provider string
	dialect  dialect.Dialect

	mu     sync.RWMutex
	db     driver.DB
	logger *logger.Logger

	repeats *query.RepeatDetector
	tx      driver.Tx
}

// NewEngine returns an unconnected engine for provider ("postgresql", "mysql", "sqlite").
func NewEngine(provider string, l *logger.Logger) *Engine {
	return &Engine{
		provider: provider,
		dialect:  dialect.GetDialect(provider),
		logger:   l,
		repeats:  query.DefaultRepeatDetector(),
	}
}

// SetProvider switches the SQL dialect. Call it before Attach.
func (e *Engine) SetProvider(provider string) {
	e.mu.Lock()
	e.provider = provider
	e.dialect = dialect.GetDialect(provider)
	e.mu.Unlock()
}

// Attach binds the engine to an open pool.
func (e *Engine) Attach(db driver.DB) {
	e.mu.Lock()
	e.db = db
	e.mu.Unlock()
}

// Detach unbinds and closes the pool. Detaching an unconnected engine is a no-op.
func (e *Engine) Detach() error {
	e.mu.Lock()
	db := e.db
	e.db = nil
	e.mu.Unlock()
	if db == nil {
		return nil
	}
	return db.Close()
}

// Connected reports whether operations can run.
func (e *Engine) Connected() bool {
	if e.tx != nil {
		return true
	}
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.db != nil
}

// DB returns the attached pool, or nil.
func (e *Engine) DB() driver.DB {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.db
}

func (e *Engine) Provider() string         { return e.provider }
func (e *Engine) Dialect() dialect.Dialect { return e.dialect }

// InTransaction reports whether the engine is bound to a transaction.
func (e *Engine) InTransaction() bool { return e.tx != nil }

// SetLogger replaces the engine's logger; nil falls back to the default logger.
func (e *Engine) SetLogger(l *logger.Logger) {
	e.mu.Lock()
	e.logger = l
	e.mu.Unlock()
}

func (e *Engine) getLogger() *logger.Logger {
	e.mu.RLock()
	l := e.logger
	e.mu.RUnlock()
	if l != nil {
		return l
	}
	return logger.GetDefaultLogger()
}

// Querier returns the statement target: the transaction, or the pool.
func (e *Engine) Querier() (driver.Querier, error) {
	if e.tx != nil {
		return e.tx, nil
	}
	e.mu.RLock()
	db := e.db
	e.mu.RUnlock()
	if db == nil {
		return nil, errors.ErrNotConnected
	}
	return db, nil
}

// session runs the statements of one operation and logs each with timing.
type session struct {
	e     *Engine
	q     driver.Querier
	op    errors.OperationType
	start time.Time
}

func (e *Engine) session(op errors.OperationType) (*session, error) {
	q, err := e.Querier()
	if err != nil {
		return nil, err
	}
	return &session{e: e, q: q, op: op, start: time.Now()}, nil
}

func (s *session) query(ctx context.Context, w *sqlWriter) (driver.Rows, error) {
	if w.err != nil {
		return nil, w.err
	}
	query := w.String()
	queryStart := time.Now()
	rows, err := s.q.Query(ctx, query, w.args...)
	s.e.logQueryWithTiming(query, w.args, queryStart, s.start, time.Since(queryStart))
	if err != nil {
		s.e.getLogger().Error("%s failed: %v", detectQueryType(query), err)
		return nil, errors.MapDriverError(err, s.op)
	}
	return rows, nil
}

func (s *session) exec(ctx context.Context, w *sqlWriter) (driver.Result, error) {
	if w.err != nil {
		return nil, w.err
	}
	query := w.String()
	queryStart := time.Now()
	res, err := s.q.Exec(ctx, query, w.args...)
	s.e.logQueryWithTiming(query, w.args, queryStart, s.start, time.Since(queryStart))
	if err != nil {
		s.e.getLogger().Error("%s failed: %v", detectQueryType(query), err)
		return nil, errors.SanitizeError(errors.MapDriverError(err, s.op))
	}
	return res, nil
}

// scan reads every row into n loosely typed values and hands them to fn.
func (s *session) scan(rows driver.Rows, n int, fn func(vals []any) error) error {
	defer rows.Close()
	count := 0
	for rows.Next() {
		if count >= limits.MaxScanRows {
			return fmt.Errorf("%w: maximum %d rows allowed", errors.ErrTooManyRows, limits.MaxScanRows)
		}
		vals := make([]any, n)
		ptrs := make([]any, n)
		for i := range vals {
			ptrs[i] = &vals[i]
		}
		if err := rows.Scan(ptrs...); err != nil {
			s.e.getLogger().Error("Scan failed: %v (scanning %d columns)", err, n)
			return errors.MapDriverError(err, s.op)
		}
		if err := fn(vals); err != nil {
			return err
		}
		count++
	}
	if err := rows.Err(); err != nil {
		return errors.MapDriverError(err, s.op)
	}
	return nil
}

// withQueryTimeout bounds single-shot operations; inside a transaction the
// transaction's own deadline applies.
func (e *Engine) withQueryTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	if e.tx != nil {
		return ctx, func() {}
	}
	return contextutil.WithQueryTimeout(ctx)
}
