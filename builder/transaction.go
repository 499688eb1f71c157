package builder

import (
	"context"

	contextutil "github.com/carlosnayan/prisma-go-marketplace/internal/context"
	"github.com/carlosnayan/prisma-go-marketplace/internal/errors"
)

// TransactionFunc runs inside a transaction. Every operation it executes
// through tx shares the transaction.
type TransactionFunc func(ctx context.Context, tx *Engine) error

// Transaction runs fn in a transaction, committing when fn returns nil and
// rolling back when it fails or panics. Calling Transaction on an engine that
// is already inside a transaction reuses it.
func (e *Engine) Transaction(ctx context.Context, fn TransactionFunc) (err error) {
	if e.tx != nil {
		return fn(ctx, e)
	}
	db := e.DB()
	if db == nil {
		return errors.ErrNotConnected
	}

	ctx, cancel := contextutil.WithTransactionTimeout(ctx)
	defer cancel()

	dtx, err := db.Begin(ctx)
	if err != nil {
		return errors.NewInitializationError(err)
	}
	child := &Engine{provider: e.provider, dialect: e.dialect, logger: e.getLogger(), repeats: e.repeats, db: db, tx: dtx}

	// Always rollback at the end, unless commit is successful
	defer func() {
		if r := recover(); r != nil {
			_ = dtx.Rollback(context.WithoutCancel(ctx))
			panic(r)
		}
	}()

	if err := fn(ctx, child); err != nil {
		if rbErr := dtx.Rollback(context.WithoutCancel(ctx)); rbErr != nil {
			child.getLogger().Warn("rollback failed: %v", rbErr)
		}
		return err
	}

	if err := dtx.Commit(ctx); err != nil {
		return errors.MapDriverError(err, "")
	}
	return nil
}

// atomic runs fn in the current transaction, or a new one.
func (e *Engine) atomic(ctx context.Context, fn TransactionFunc) error {
	return e.Transaction(ctx, fn)
}

// Batch runs ops in order inside one transaction. The first failure rolls
// every op back and is returned; results are read from each op afterwards.
// Ops that ran in a rolled-back batch report the batch error and run again
// when retried.
func (e *Engine) Batch(ctx context.Context, ops ...Runnable) error {
	owned := e.tx == nil
	var ran []Runnable
	err := e.Transaction(ctx, func(ctx context.Context, tx *Engine) error {
		for _, op := range ops {
			if !op.completed() {
				ran = append(ran, op)
			}
			if err := op.execIn(ctx, tx); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil && owned {
		for _, op := range ran {
			op.discard(err)
		}
	}
	return err
}
