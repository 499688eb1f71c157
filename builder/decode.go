package builder

import (
	"fmt"
	"reflect"

	"github.com/carlosnayan/prisma-go-marketplace/internal/scan"
)

func assignInt(dst *int64, v any) error {
	return scan.Assign(reflect.ValueOf(dst).Elem(), v)
}

// decodeAll converts rows into records of type T.
func decodeAll[T any](m *Model, rows []*row, sel *Selection) ([]T, error) {
	out := make([]T, len(rows))
	for i, r := range rows {
		if err := decodeRow(reflect.ValueOf(&out[i]).Elem(), m, r, sel); err != nil {
			return nil, err
		}
	}
	return out, nil
}

func decodeOne[T any](m *Model, r *row, sel *Selection) (*T, error) {
	if r == nil {
		return nil, nil
	}
	out := new(T)
	if err := decodeRow(reflect.ValueOf(out).Elem(), m, r, sel); err != nil {
		return nil, err
	}
	return out, nil
}

// decodeRow fills a record struct. Fields are matched on their json tags:
// scalar fields by field name, relations by relation name, counts by "_count".
// Fields fetched only to load relations are left out when the selection
// names its scalars.
func decodeRow(dst reflect.Value, m *Model, r *row, sel *Selection) error {
	t := dst.Type()
	fields := m.ScalarNames()
	if sel != nil && sel.Scalars != nil {
		fields = sel.Scalars
	}
	for _, name := range fields {
		idx, ok := scan.JSONField(t, name)
		if !ok {
			continue
		}
		v, fetched := r.vals[name]
		if !fetched {
			continue
		}
		if err := scan.Assign(dst.Field(idx), v); err != nil {
			return fmt.Errorf("%s.%s: %w", m.Name, name, err)
		}
	}
	if sel == nil {
		return nil
	}

	for _, rs := range sel.Relations {
		idx, ok := scan.JSONField(t, rs.Relation)
		if !ok {
			continue
		}
		rel := m.Relation(rs.Relation)
		fv := dst.Field(idx)
		switch loaded := r.rels[rel.Name].(type) {
		case []*row:
			slice := reflect.MakeSlice(fv.Type(), len(loaded), len(loaded))
			for i, c := range loaded {
				if err := decodeRow(slice.Index(i), rel.Target(), c, rs.Args.Select); err != nil {
					return err
				}
			}
			fv.Set(slice)
		case *row:
			if loaded == nil {
				fv.Set(reflect.Zero(fv.Type()))
				continue
			}
			ptr := reflect.New(fv.Type().Elem())
			if err := decodeRow(ptr.Elem(), rel.Target(), loaded, rs.Args.Select); err != nil {
				return err
			}
			fv.Set(ptr)
		}
	}

	if len(sel.Counts) > 0 {
		idx, ok := scan.JSONField(t, "_count")
		if !ok {
			return nil
		}
		fv := dst.Field(idx)
		ptr := reflect.New(fv.Type().Elem())
		for _, cs := range sel.Counts {
			if ci, ok := scan.JSONField(ptr.Elem().Type(), cs.Relation); ok {
				ptr.Elem().Field(ci).SetInt(int64(r.counts[cs.Relation]))
			}
		}
		fv.Set(ptr)
	}
	return nil
}

// assignBucket stores an aggregate value into dst.<bucket>.<field>, allocating
// the bucket struct on first use. bucket and field are json tag names.
func assignBucket(dst reflect.Value, bucket, field string, v any) error {
	bi, ok := scan.JSONField(dst.Type(), bucket)
	if !ok {
		return nil
	}
	bv := dst.Field(bi)
	if bv.Kind() == reflect.Pointer {
		if bv.IsNil() {
			bv.Set(reflect.New(bv.Type().Elem()))
		}
		bv = bv.Elem()
	}
	fi, ok := scan.JSONField(bv.Type(), field)
	if !ok {
		return nil
	}
	if err := scan.Assign(bv.Field(fi), v); err != nil {
		return fmt.Errorf("%s.%s: %w", bucket, field, err)
	}
	return nil
}

// assignField stores v into the member of dst whose json tag is name.
func assignField(dst reflect.Value, name string, v any) error {
	idx, ok := scan.JSONField(dst.Type(), name)
	if !ok {
		return nil
	}
	if err := scan.Assign(dst.Field(idx), v); err != nil {
		return fmt.Errorf("%s: %w", name, err)
	}
	return nil
}
