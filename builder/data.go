package builder

import (
	"github.com/carlosnayan/prisma-go-marketplace/internal/errors"
)

type updateOp int

const (
	opSet updateOp = iota
	opIncrement
	opDecrement
	opMultiply
	opDivide
)

type fieldValue struct {
	field string
	op    updateOp
	value any
}

// WriteData is the engine form of create and update payloads: scalar
// assignments in field order plus nested relation writes.
type WriteData struct {
	values []fieldValue
	nested []nestedWrite
	err    error
}

type nestedWrite struct {
	relation        string
	creates         []*WriteData
	connects        []Condition
	connectOrCreate []connectOrCreate
}

type connectOrCreate struct {
	where  Condition
	create *WriteData
}

func NewWriteData() *WriteData {
	return &WriteData{}
}

// Set assigns a scalar field, replacing an earlier assignment.
func (d *WriteData) Set(field string, value any) {
	d.put(fieldValue{field: field, op: opSet, value: value})
}

func (d *WriteData) put(v fieldValue) {
	for i := range d.values {
		if d.values[i].field == v.field {
			d.values[i] = v
			return
		}
	}
	d.values = append(d.values, v)
}

func (d *WriteData) get(field string) (fieldValue, bool) {
	for _, v := range d.values {
		if v.field == field {
			return v, true
		}
	}
	return fieldValue{}, false
}

func (d *WriteData) fail(err error) {
	if d.err == nil {
		d.err = err
	}
}

// Err returns the first error recorded while the payload was built.
func (d *WriteData) Err() error { return d.err }

func (d *WriteData) clone() *WriteData {
	c := &WriteData{err: d.err}
	c.values = append(c.values, d.values...)
	c.nested = append(c.nested, d.nested...)
	return c
}

// SetOptional assigns v when it is set.
func SetOptional[T any](d *WriteData, field string, v *T) {
	if v != nil {
		d.Set(field, *v)
	}
}

// NullableSet updates an optional field: a nil Set stores NULL.
type NullableSet[T any] struct {
	Set *T
}

// SetTo returns an update storing v.
func SetTo[T any](v T) *NullableSet[T] { return &NullableSet[T]{Set: &v} }

// SetNull returns an update storing NULL.
func SetNull[T any]() *NullableSet[T] { return &NullableSet[T]{} }

// ApplyNullable records an optional-field update when u is set.
func ApplyNullable[T any](d *WriteData, field string, u *NullableSet[T]) {
	if u == nil {
		return
	}
	if u.Set == nil {
		d.Set(field, nil)
		return
	}
	d.Set(field, *u.Set)
}

// Number is the set of Go types numeric fields map to.
type Number interface {
	~int | ~int32 | ~int64 | ~float32 | ~float64
}

// NumberUpdate updates a numeric field. Exactly one member may be set;
// SetNull only applies to optional fields.
type NumberUpdate[T Number] struct {
	Set       *T
	Increment *T
	Decrement *T
	Multiply  *T
	Divide    *T
	SetNull   bool
}

// Increment returns an update adding n.
func Increment[T Number](n T) *NumberUpdate[T] { return &NumberUpdate[T]{Increment: &n} }

// Decrement returns an update subtracting n.
func Decrement[T Number](n T) *NumberUpdate[T] { return &NumberUpdate[T]{Decrement: &n} }

// SetNumber returns an update storing n.
func SetNumber[T Number](n T) *NumberUpdate[T] { return &NumberUpdate[T]{Set: &n} }

// ApplyNumber records a numeric update when u is set.
func ApplyNumber[T Number](d *WriteData, field string, u *NumberUpdate[T]) {
	if u == nil {
		return
	}
	var ops []fieldValue
	add := func(op updateOp, v *T) {
		if v != nil {
			ops = append(ops, fieldValue{field: field, op: op, value: *v})
		}
	}
	add(opSet, u.Set)
	add(opIncrement, u.Increment)
	add(opDecrement, u.Decrement)
	add(opMultiply, u.Multiply)
	add(opDivide, u.Divide)
	if u.SetNull {
		ops = append(ops, fieldValue{field: field, op: opSet, value: nil})
	}
	if len(ops) != 1 {
		d.fail(errors.NewValidationError("Argument `%s` needs exactly one of set, increment, decrement, multiply, divide", field))
		return
	}
	if ops[0].op == opDivide && *u.Divide == 0 {
		d.fail(errors.NewValidationError("Argument `%s`: division by zero", field))
		return
	}
	d.put(ops[0])
}

// Creator is implemented by generated create inputs.
type Creator interface {
	Data() (*WriteData, error)
}

// ConnectOrCreate connects the row matching Where, creating it from Create when absent.
type ConnectOrCreate[C Creator, U Uniquer] struct {
	Where  U
	Create C
}

// NestedOne writes through a to-one relation. Exactly one member may be set.
type NestedOne[C Creator, U Uniquer] struct {
	Create          *C
	Connect         *U
	ConnectOrCreate *ConnectOrCreate[C, U]
}

// NestedMany writes through a to-many relation.
type NestedMany[C Creator, U Uniquer] struct {
	Create          []C
	Connect         []U
	ConnectOrCreate []ConnectOrCreate[C, U]
}

// ApplyNestedOne records a to-one nested write when n is set.
func ApplyNestedOne[C Creator, U Uniquer](d *WriteData, relation string, n *NestedOne[C, U]) {
	if n == nil {
		return
	}
	set := 0
	for _, on := range []bool{n.Create != nil, n.Connect != nil, n.ConnectOrCreate != nil} {
		if on {
			set++
		}
	}
	if set != 1 {
		d.fail(errors.NewValidationError("Nested write on `%s` needs exactly one of create, connect, connectOrCreate", relation))
		return
	}
	many := NestedMany[C, U]{}
	if n.Create != nil {
		many.Create = []C{*n.Create}
	}
	if n.Connect != nil {
		many.Connect = []U{*n.Connect}
	}
	if n.ConnectOrCreate != nil {
		many.ConnectOrCreate = []ConnectOrCreate[C, U]{*n.ConnectOrCreate}
	}
	ApplyNestedMany(d, relation, &many)
}

// ApplyNestedMany records a to-many nested write when n is set.
func ApplyNestedMany[C Creator, U Uniquer](d *WriteData, relation string, n *NestedMany[C, U]) {
	if n == nil {
		return
	}
	nw := nestedWrite{relation: relation}
	for i := range n.Create {
		data, err := n.Create[i].Data()
		if err != nil {
			d.fail(err)
			return
		}
		nw.creates = append(nw.creates, data)
	}
	for i := range n.Connect {
		cond, err := n.Connect[i].UniqueCond()
		if err != nil {
			d.fail(err)
			return
		}
		nw.connects = append(nw.connects, cond)
	}
	for i := range n.ConnectOrCreate {
		cond, err := n.ConnectOrCreate[i].Where.UniqueCond()
		if err != nil {
			d.fail(err)
			return
		}
		data, err := n.ConnectOrCreate[i].Create.Data()
		if err != nil {
			d.fail(err)
			return
		}
		nw.connectOrCreate = append(nw.connectOrCreate, connectOrCreate{where: cond, create: data})
	}
	d.nested = append(d.nested, nw)
}

// DataOf converts a list of create inputs.
func DataOf[C Creator](in []C) ([]*WriteData, error) {
	out := make([]*WriteData, len(in))
	for i := range in {
		d, err := in[i].Data()
		if err != nil {
			return nil, err
		}
		out[i] = d
	}
	return out, nil
}
