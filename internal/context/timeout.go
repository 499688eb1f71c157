package contextutil

import (
	"context"
	"time"
)

// Defaults applied when the caller's context carries no deadline of its own.
var (
	QueryTimeout       = 5 * time.Second
	TransactionTimeout = 30 * time.Second
	SchemaTimeout      = 5 * time.Minute
)

// WithTimeout applies timeout unless ctx already has an earlier deadline.
func WithTimeout(ctx context.Context, timeout time.Duration) (context.Context, context.CancelFunc) {
	if ctx == nil {
		ctx = context.Background()
	}
	if timeout <= 0 {
		return context.WithCancel(ctx)
	}
	if deadline, ok := ctx.Deadline(); ok && time.Until(deadline) <= timeout {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, timeout)
}

func WithQueryTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	return WithTimeout(ctx, QueryTimeout)
}

func WithTransactionTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	return WithTimeout(ctx, TransactionTimeout)
}

// WithSchemaTimeout bounds DDL work such as db push.
func WithSchemaTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	return WithTimeout(ctx, SchemaTimeout)
}
