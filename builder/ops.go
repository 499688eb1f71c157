package builder

import (
	"context"

	"github.com/carlosnayan/prisma-go-marketplace/internal/errors"
)

// FindMany returns every record matching args.
func FindMany[T any](ctx context.Context, e *Engine, m *Model, args FindArgs) ([]T, error) {
	if err := validateFind(m, args, 0); err != nil {
		return nil, err
	}
	ctx, cancel := e.withQueryTimeout(ctx)
	defer cancel()
	s, err := e.session(errors.OpFindMany)
	if err != nil {
		return nil, err
	}
	rows, err := findRows(ctx, s, m, args, nil, nil, 0)
	if err != nil {
		return nil, err
	}
	return decodeAll[T](m, rows, args.Select)
}

// FindFirst returns the first record matching args, or nil.
func FindFirst[T any](ctx context.Context, e *Engine, m *Model, args FindArgs) (*T, error) {
	return findFirst[T](ctx, e, m, args, errors.OpFindFirst)
}

// FindFirstOrThrow is FindFirst with a not-found error instead of nil.
func FindFirstOrThrow[T any](ctx context.Context, e *Engine, m *Model, args FindArgs) (*T, error) {
	out, err := findFirst[T](ctx, e, m, args, errors.OpFindFirst)
	if err == nil && out == nil {
		return nil, errors.NewNotFoundError(m.Name, errors.OpFindFirst)
	}
	return out, err
}

func findFirst[T any](ctx context.Context, e *Engine, m *Model, args FindArgs, op errors.OperationType) (*T, error) {
	if args.Take != nil && *args.Take < 0 {
		args.Take = Ptr(-1)
	} else {
		args.Take = Ptr(1)
	}
	if err := validateFind(m, args, 0); err != nil {
		return nil, err
	}
	ctx, cancel := e.withQueryTimeout(ctx)
	defer cancel()
	s, err := e.session(op)
	if err != nil {
		return nil, err
	}
	rows, err := findRows(ctx, s, m, args, nil, nil, 0)
	if err != nil || len(rows) == 0 {
		return nil, err
	}
	return decodeOne[T](m, rows[0], args.Select)
}

// FindUnique returns the record matching a unique lookup, or nil.
func FindUnique[T any](ctx context.Context, e *Engine, m *Model, where Condition, sel *Selection) (*T, error) {
	if where == nil {
		return nil, UniqueRequired(m.Name)
	}
	return findFirst[T](ctx, e, m, FindArgs{Where: where, Select: sel}, errors.OpFindUnique)
}

// FindUniqueOrThrow is FindUnique with a not-found error instead of nil.
func FindUniqueOrThrow[T any](ctx context.Context, e *Engine, m *Model, where Condition, sel *Selection) (*T, error) {
	out, err := FindUnique[T](ctx, e, m, where, sel)
	if err == nil && out == nil {
		return nil, errors.NewNotFoundError(m.Name, errors.OpFindUnique)
	}
	return out, err
}

// refetch reads a written row back with the caller's selection.
func refetch[T any](ctx context.Context, s *session, m *Model, vals map[string]any, sel *Selection) (*T, error) {
	rows, err := findRows(ctx, s, m, FindArgs{Where: pkCond(m, vals), Take: Ptr(1), Select: sel}, nil, nil, 0)
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, errors.NewNotFoundError(m.Name, s.op)
	}
	return decodeOne[T](m, rows[0], sel)
}

// writeOp runs fn and the read-back of its result in one transaction.
func writeOp[T any](ctx context.Context, e *Engine, op errors.OperationType, fn func(ctx context.Context, s *session) (*T, error)) (*T, error) {
	var out *T
	err := e.atomic(ctx, func(ctx context.Context, tx *Engine) error {
		s, err := tx.session(op)
		if err != nil {
			return err
		}
		out, err = fn(ctx, s)
		return err
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// Create inserts a record with its nested writes and returns it.
func Create[T any](ctx context.Context, e *Engine, m *Model, data *WriteData, sel *Selection) (*T, error) {
	if err := validateSelection(m, sel, 0); err != nil {
		return nil, err
	}
	return writeOp(ctx, e, errors.OpCreate, func(ctx context.Context, s *session) (*T, error) {
		vals, err := create(ctx, s, m, data, 0)
		if err != nil {
			return nil, err
		}
		return refetch[T](ctx, s, m, vals, sel)
	})
}

// CreateMany inserts records and returns how many were inserted.
func CreateMany(ctx context.Context, e *Engine, m *Model, data []*WriteData, skipDuplicates bool) (BatchPayload, error) {
	return e.createMany(ctx, m, data, skipDuplicates)
}

// CreateManyAndReturn inserts records and returns them in input order.
// Rows skipped as duplicates are left out.
func CreateManyAndReturn[T any](ctx context.Context, e *Engine, m *Model, data []*WriteData, skipDuplicates bool, sel *Selection) ([]T, error) {
	if err := validateSelection(m, sel, 0); err != nil {
		return nil, err
	}
	return createManyAndReturn[T](ctx, e, m, data, skipDuplicates, sel)
}

// Update changes the record matching a unique lookup and returns it.
func Update[T any](ctx context.Context, e *Engine, m *Model, where Condition, data *WriteData, sel *Selection) (*T, error) {
	if where == nil {
		return nil, UniqueRequired(m.Name)
	}
	if err := validateSelection(m, sel, 0); err != nil {
		return nil, err
	}
	return writeOp(ctx, e, errors.OpUpdate, func(ctx context.Context, s *session) (*T, error) {
		vals, err := update(ctx, s, m, where, data, 0)
		if err != nil {
			return nil, err
		}
		return refetch[T](ctx, s, m, vals, sel)
	})
}

// UpdateMany changes every record matching where.
func UpdateMany(ctx context.Context, e *Engine, m *Model, where Condition, data *WriteData) (BatchPayload, error) {
	return e.updateMany(ctx, m, where, data)
}

// UpdateManyAndReturn changes every record matching where and returns them.
func UpdateManyAndReturn[T any](ctx context.Context, e *Engine, m *Model, where Condition, data *WriteData, sel *Selection) ([]T, error) {
	if err := validateSelection(m, sel, 0); err != nil {
		return nil, err
	}
	return updateManyAndReturn[T](ctx, e, m, where, data, sel)
}

// Upsert updates the record matching where, or creates it when none does.
func Upsert[T any](ctx context.Context, e *Engine, m *Model, where Condition, createData, updateData *WriteData, sel *Selection) (*T, error) {
	if where == nil {
		return nil, UniqueRequired(m.Name)
	}
	if err := validateSelection(m, sel, 0); err != nil {
		return nil, err
	}
	return writeOp(ctx, e, errors.OpUpsert, func(ctx context.Context, s *session) (*T, error) {
		_, found, err := lookup(ctx, s, m, where, m.PrimaryKey)
		if err != nil {
			return nil, err
		}
		var vals map[string]any
		if found {
			vals, err = update(ctx, s, m, where, updateData, 0)
		} else {
			vals, err = create(ctx, s, m, createData, 0)
		}
		if err != nil {
			return nil, err
		}
		return refetch[T](ctx, s, m, vals, sel)
	})
}

// Delete removes the record matching a unique lookup and returns it.
func Delete[T any](ctx context.Context, e *Engine, m *Model, where Condition, sel *Selection) (*T, error) {
	if where == nil {
		return nil, UniqueRequired(m.Name)
	}
	if err := validateSelection(m, sel, 0); err != nil {
		return nil, err
	}
	return writeOp(ctx, e, errors.OpDelete, func(ctx context.Context, s *session) (*T, error) {
		rows, err := findRows(ctx, s, m, FindArgs{Where: where, Take: Ptr(1), Select: sel}, nil, m.PrimaryKey, 0)
		if err != nil {
			return nil, err
		}
		if len(rows) == 0 {
			return nil, notFound(m, errors.OpDelete, "Record to delete does not exist.")
		}
		out, err := decodeOne[T](m, rows[0], sel)
		if err != nil {
			return nil, err
		}
		if _, err := deleteRows(ctx, s, m, pkCond(m, rows[0].vals)); err != nil {
			return nil, err
		}
		return out, nil
	})
}

// DeleteMany removes every record matching where.
func DeleteMany(ctx context.Context, e *Engine, m *Model, where Condition) (BatchPayload, error) {
	return e.deleteMany(ctx, m, where)
}
