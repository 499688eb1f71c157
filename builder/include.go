package builder

import (
	"context"

	"github.com/carlosnayan/prisma-go-marketplace/internal/limits"
)

// loadRelations fetches the selected relations and counts of parents. A
// relation is loaded with one IN query per chunk of parent keys, except for
// list relations paged per parent (take, skip, cursor, distinct), which are
// queried parent by parent.
func loadRelations(ctx context.Context, s *session, m *Model, parents []*row, sel *Selection, depth int) error {
	if sel == nil || len(parents) == 0 {
		return nil
	}
	for _, rs := range sel.Relations {
		rel := m.Relation(rs.Relation)
		for _, p := range parents {
			if p.rels == nil {
				p.rels = map[string]any{}
			}
			if rel.List {
				p.rels[rel.Name] = []*row{}
			} else {
				p.rels[rel.Name] = (*row)(nil)
			}
		}
		var err error
		if rel.List && perParent(rs.Args) {
			err = loadPerParent(ctx, s, rel, parents, rs.Args, depth)
		} else {
			err = loadBatched(ctx, s, rel, parents, rs.Args, depth)
		}
		if err != nil {
			return err
		}
	}
	for _, cs := range sel.Counts {
		if err := loadCount(ctx, s, m.Relation(cs.Relation), parents, cs.Where); err != nil {
			return err
		}
	}
	return nil
}

func perParent(args FindArgs) bool {
	return args.Take != nil || args.Skip != nil || args.Cursor != nil || len(args.Distinct) > 0
}

// parentKeys returns the distinct non-NULL join tuples of parents.
func parentKeys(rel *Relation, parents []*row) [][]any {
	seen := map[string]bool{}
	var tuples [][]any
outer:
	for _, p := range parents {
		t := p.values(rel.Fields)
		for _, v := range t {
			if v == nil {
				continue outer
			}
		}
		k := keyOf(t)
		if !seen[k] {
			seen[k] = true
			tuples = append(tuples, t)
		}
	}
	return tuples
}

func attach(rel *Relation, p *row, child *row) {
	if rel.List {
		p.rels[rel.Name] = append(p.rels[rel.Name].([]*row), child)
		return
	}
	if p.rels[rel.Name].(*row) == nil {
		p.rels[rel.Name] = child
	}
}

func loadBatched(ctx context.Context, s *session, rel *Relation, parents []*row, args FindArgs, depth int) error {
	target := rel.Target()
	byKey := map[string][]*row{}
	for _, p := range parents {
		k := keyOf(p.values(rel.Fields))
		byKey[k] = append(byKey[k], p)
	}
	tuples := parentKeys(rel, parents)
	for start := 0; start < len(tuples); start += limits.MaxInListSize {
		end := min(start+limits.MaxInListSize, len(tuples))
		children, err := findRows(ctx, s, target, args, keyCond(rel.References, tuples[start:end]), rel.References, depth+1)
		if err != nil {
			return err
		}
		for _, c := range children {
			for _, p := range byKey[keyOf(c.values(rel.References))] {
				attach(rel, p, c)
			}
		}
	}
	return nil
}

func loadPerParent(ctx context.Context, s *session, rel *Relation, parents []*row, args FindArgs, depth int) error {
	target := rel.Target()
	for _, t := range parentKeys(rel, parents) {
		children, err := findRows(ctx, s, target, args, keyCond(rel.References, [][]any{t}), rel.References, depth+1)
		if err != nil {
			return err
		}
		k := keyOf(t)
		for _, p := range parents {
			if keyOf(p.values(rel.Fields)) != k {
				continue
			}
			for _, c := range children {
				attach(rel, p, c)
			}
		}
	}
	return nil
}

// loadCount counts each parent's related rows with one grouped query per chunk.
func loadCount(ctx context.Context, s *session, rel *Relation, parents []*row, where Condition) error {
	counts := map[string]int{}
	tuples := parentKeys(rel, parents)
	target := rel.Target()
	for start := 0; start < len(tuples); start += limits.MaxInListSize {
		end := min(start+limits.MaxInListSize, len(tuples))
		w := newWriter(s.e.dialect)
		sc := scope{model: target, alias: w.alias()}
		w.write("SELECT ")
		for _, f := range rel.References {
			w.write(w.column(sc, f), ", ")
		}
		w.write("COUNT(*) FROM ", w.table(target), " AS ", w.quote(sc.alias), " WHERE ")
		And(keyCond(rel.References, tuples[start:end]), where).render(w, sc)
		w.write(" GROUP BY ")
		for i, f := range rel.References {
			if i > 0 {
				w.write(", ")
			}
			w.write(w.column(sc, f))
		}

		rows, err := s.query(ctx, w)
		if err != nil {
			return err
		}
		n := len(rel.References)
		err = s.scan(rows, n+1, func(vals []any) error {
			var c int64
			if err := assignInt(&c, vals[n]); err != nil {
				return err
			}
			counts[keyOf(vals[:n])] = int(c)
			return nil
		})
		if err != nil {
			return err
		}
	}
	for _, p := range parents {
		if p.counts == nil {
			p.counts = map[string]int{}
		}
		p.counts[rel.Name] = counts[keyOf(p.values(rel.Fields))]
	}
	return nil
}
