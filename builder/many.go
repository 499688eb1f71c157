package builder

import (
	"context"
	"slices"

	"github.com/carlosnayan/prisma-go-marketplace/internal/errors"
	"github.com/carlosnayan/prisma-go-marketplace/internal/limits"
)

type insertChunk struct {
	cols []string
	rows []map[string]any
}

// chunkInserts groups consecutive rows with the same column set, at most
// MaxInsertBatch rows per chunk.
func chunkInserts(m *Model, data []*WriteData) ([]insertChunk, error) {
	var chunks []insertChunk
	for _, d := range data {
		if d == nil {
			d = NewWriteData()
		}
		if d.err != nil {
			return nil, d.err
		}
		if len(d.nested) > 0 {
			return nil, errors.NewValidationError("createMany does not accept nested writes")
		}
		vals := map[string]any{}
		for _, fv := range d.values {
			if m.Field(fv.field) == nil {
				return nil, errors.NewValidationError("Unknown argument `%s` for model `%s`", fv.field, m.Name)
			}
			vals[fv.field] = fv.value
		}
		cols, err := prepareInsert(m, vals)
		if err != nil {
			return nil, err
		}
		if n := len(chunks); n > 0 && slices.Equal(chunks[n-1].cols, cols) && len(chunks[n-1].rows) < limits.MaxInsertBatch {
			chunks[n-1].rows = append(chunks[n-1].rows, vals)
			continue
		}
		chunks = append(chunks, insertChunk{cols: cols, rows: []map[string]any{vals}})
	}
	return chunks, nil
}

func insertChunkRows(ctx context.Context, s *session, m *Model, c insertChunk, skipDuplicates bool) (int64, error) {
	if len(c.cols) == 0 {
		var total int64
		for _, vals := range c.rows {
			n, err := insertRow(ctx, s, m, nil, vals, skipDuplicates)
			if err != nil {
				return 0, err
			}
			total += n
		}
		return total, nil
	}
	w := newWriter(s.e.dialect)
	verb, suffix := "INSERT INTO", ""
	if skipDuplicates {
		verb, suffix = w.d.InsertIgnore()
	}
	w.write(verb, " ", w.table(m), " (")
	for i, col := range c.cols {
		if i > 0 {
			w.write(", ")
		}
		w.write(w.quote(m.Field(col).Column))
	}
	w.write(") VALUES ")
	for r, vals := range c.rows {
		if r > 0 {
			w.write(", ")
		}
		w.write("(")
		for i, col := range c.cols {
			if i > 0 {
				w.write(", ")
			}
			w.write(w.bind(vals[col]))
		}
		w.write(")")
	}
	w.write(suffix)
	res, err := s.exec(ctx, w)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected(), nil
}

// createMany inserts data with multi-row INSERTs. Several statements run in
// one transaction.
func (e *Engine) createMany(ctx context.Context, m *Model, data []*WriteData, skipDuplicates bool) (BatchPayload, error) {
	chunks, err := chunkInserts(m, data)
	if err != nil || len(chunks) == 0 {
		return BatchPayload{}, err
	}
	var total int64
	run := func(ctx context.Context, tx *Engine) error {
		s, err := tx.session(errors.OpCreateMany)
		if err != nil {
			return err
		}
		for _, c := range chunks {
			n, err := insertChunkRows(ctx, s, m, c, skipDuplicates)
			if err != nil {
				return err
			}
			total += n
		}
		return nil
	}
	if len(chunks) == 1 {
		ctx, cancel := e.withQueryTimeout(ctx)
		defer cancel()
		err = run(ctx, e)
	} else {
		err = e.atomic(ctx, run)
	}
	if err != nil {
		return BatchPayload{}, err
	}
	return BatchPayload{Count: int(total)}, nil
}

// createManyAndReturn inserts rows one at a time so skipped duplicates can be
// told apart, then reads the inserted rows back in insertion order.
func createManyAndReturn[T any](ctx context.Context, e *Engine, m *Model, data []*WriteData, skipDuplicates bool, sel *Selection) ([]T, error) {
	chunks, err := chunkInserts(m, data)
	if err != nil {
		return nil, err
	}
	var out []T
	err = e.atomic(ctx, func(ctx context.Context, tx *Engine) error {
		s, err := tx.session(errors.OpCreateMany)
		if err != nil {
			return err
		}
		var keys [][]any
		for _, c := range chunks {
			for _, vals := range c.rows {
				n, err := insertRow(ctx, s, m, c.cols, vals, skipDuplicates)
				if err != nil {
					return err
				}
				if n > 0 {
					keys = append(keys, pkValues(m, vals))
				}
			}
		}
		rows, err := fetchKeys(ctx, s, m, keys, sel)
		if err != nil {
			return err
		}
		out, err = decodeAll[T](m, rows, sel)
		return err
	})
	return out, err
}

func pkValues(m *Model, vals map[string]any) []any {
	out := make([]any, len(m.PrimaryKey))
	for i, f := range m.PrimaryKey {
		out[i] = vals[f]
	}
	return out
}

// fetchKeys reads the rows with the given primary keys, in the order of keys.
func fetchKeys(ctx context.Context, s *session, m *Model, keys [][]any, sel *Selection) ([]*row, error) {
	byKey := map[string]*row{}
	for start := 0; start < len(keys); start += limits.MaxInListSize {
		end := min(start+limits.MaxInListSize, len(keys))
		rows, err := findRows(ctx, s, m, FindArgs{Where: keyCond(m.PrimaryKey, keys[start:end]), Select: sel}, nil, m.PrimaryKey, 0)
		if err != nil {
			return nil, err
		}
		for _, r := range rows {
			byKey[keyOf(r.values(m.PrimaryKey))] = r
		}
	}
	out := make([]*row, 0, len(keys))
	for _, k := range keys {
		if r, ok := byKey[keyOf(k)]; ok {
			out = append(out, r)
		}
	}
	return out, nil
}

// updateMany applies scalar assignments to every row matching where.
func (e *Engine) updateMany(ctx context.Context, m *Model, where Condition, data *WriteData) (BatchPayload, error) {
	if data == nil {
		data = NewWriteData()
	}
	if data.err != nil {
		return BatchPayload{}, data.err
	}
	if len(data.nested) > 0 {
		return BatchPayload{}, errors.NewValidationError("updateMany does not accept nested writes")
	}
	sets, err := checkSets(m, data.values)
	if err != nil {
		return BatchPayload{}, err
	}
	ctx, cancel := e.withQueryTimeout(ctx)
	defer cancel()
	s, err := e.session(errors.OpUpdateMany)
	if err != nil {
		return BatchPayload{}, err
	}
	if len(sets) == 0 {
		n, err := countRows(ctx, s, m, window{where: where, limit: -1})
		return BatchPayload{Count: n}, err
	}
	n, err := updateRows(ctx, s, m, where, sets)
	if err != nil {
		return BatchPayload{}, err
	}
	return BatchPayload{Count: int(n)}, nil
}

// updateManyAndReturn updates the rows matching where and reads them back
// in primary key order.
func updateManyAndReturn[T any](ctx context.Context, e *Engine, m *Model, where Condition, data *WriteData, sel *Selection) ([]T, error) {
	if data == nil {
		data = NewWriteData()
	}
	if data.err != nil {
		return nil, data.err
	}
	if len(data.nested) > 0 {
		return nil, errors.NewValidationError("updateManyAndReturn does not accept nested writes")
	}
	sets, err := checkSets(m, data.values)
	if err != nil {
		return nil, err
	}
	var out []T
	err = e.atomic(ctx, func(ctx context.Context, tx *Engine) error {
		s, err := tx.session(errors.OpUpdateMany)
		if err != nil {
			return err
		}
		matched, err := findRows(ctx, s, m, FindArgs{Where: where, OrderBy: withPrimaryKey(m, nil), Select: &Selection{Scalars: m.PrimaryKey}}, nil, nil, 0)
		if err != nil {
			return err
		}
		keys := rowKeys(m, matched)
		for _, fv := range sets {
			if fv.op == opSet && slices.Contains(m.PrimaryKey, fv.field) {
				for _, k := range keys {
					k[slices.Index(m.PrimaryKey, fv.field)] = fv.value
				}
			}
		}
		if len(keys) > 0 && len(sets) > 0 {
			for start := 0; start < len(keys); start += limits.MaxInListSize {
				end := min(start+limits.MaxInListSize, len(keys))
				if _, err := updateRows(ctx, s, m, keyCond(m.PrimaryKey, rowKeys(m, matched[start:end])), sets); err != nil {
					return err
				}
			}
		}
		rows, err := fetchKeys(ctx, s, m, keys, sel)
		if err != nil {
			return err
		}
		out, err = decodeAll[T](m, rows, sel)
		return err
	})
	return out, err
}

// rowKeys returns the primary key tuple of each row.
func rowKeys(m *Model, rows []*row) [][]any {
	keys := make([][]any, len(rows))
	for i, r := range rows {
		keys[i] = r.values(m.PrimaryKey)
	}
	return keys
}

// deleteMany deletes every row matching where.
func (e *Engine) deleteMany(ctx context.Context, m *Model, where Condition) (BatchPayload, error) {
	ctx, cancel := e.withQueryTimeout(ctx)
	defer cancel()
	s, err := e.session(errors.OpDeleteMany)
	if err != nil {
		return BatchPayload{}, err
	}
	n, err := deleteRows(ctx, s, m, where)
	if err != nil {
		return BatchPayload{}, err
	}
	return BatchPayload{Count: int(n)}, nil
}
