package builder

import (
	"bytes"
	"context"
	stderrors "errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/carlosnayan/prisma-go-marketplace/internal/errors"
	"github.com/carlosnayan/prisma-go-marketplace/internal/logger"
)

func createUser(t *testing.T, e *Engine, name, email string) *testUser {
	t.Helper()
	d, err := userCreate{Name: name, Email: email, Skills: skills("go")}.Data()
	require.NoError(t, err)
	u, err := Create[testUser](context.Background(), e, userModel, d, nil)
	require.NoError(t, err)
	return u
}

func createService(t *testing.T, e *Engine, freelancerID, title string, price float64, days int) *testService {
	t.Helper()
	d, err := serviceCreate{FreelancerID: &freelancerID, Title: title, Price: price, DeliveryDays: days}.Data()
	require.NoError(t, err)
	s, err := Create[testService](context.Background(), e, serviceModel, d, nil)
	require.NoError(t, err)
	return s
}

func prices(services []testService) []float64 {
	out := make([]float64, len(services))
	for i, s := range services {
		out[i] = s.Price
	}
	return out
}

func TestCreateAppliesDefaults(t *testing.T) {
	e := newTestEngine(t)
	before := time.Now().Add(-time.Minute)

	u := createUser(t, e, "Ana", "ana@example.com")

	assert.NotEmpty(t, u.ID)
	assert.Equal(t, "CLIENT", u.Role)
	assert.Nil(t, u.Bio)
	assert.Nil(t, u.HourlyRate)
	assert.JSONEq(t, `["go"]`, string(u.Skills))
	assert.True(t, u.CreatedAt.After(before))
}

func TestFindUnique(t *testing.T) {
	ctx := context.Background()
	e := newTestEngine(t)
	created := createUser(t, e, "Ana", "ana@example.com")

	got, err := FindUnique[testUser](ctx, e, userModel, Equals("email", "ana@example.com"), nil)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, created.ID, got.ID)
	assert.Equal(t, "Ana", got.Name)

	missing, err := FindUnique[testUser](ctx, e, userModel, Equals("email", "nobody@example.com"), nil)
	require.NoError(t, err)
	assert.Nil(t, missing)

	_, err = FindUniqueOrThrow[testUser](ctx, e, userModel, Equals("email", "nobody@example.com"), nil)
	assert.True(t, errors.IsNotFound(err))

	_, err = FindUnique[testUser](ctx, e, userModel, nil, nil)
	assert.True(t, errors.IsValidation(err))
}

func TestSelectScalars(t *testing.T) {
	ctx := context.Background()
	e := newTestEngine(t)
	createUser(t, e, "Ana", "ana@example.com")

	got, err := FindFirst[testUser](ctx, e, userModel, FindArgs{Select: &Selection{Scalars: []string{"name"}}})
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "Ana", got.Name)
	assert.Empty(t, got.Email)
	assert.Empty(t, got.ID)
}

func TestCreateValidation(t *testing.T) {
	ctx := context.Background()
	e := newTestEngine(t)

	d := NewWriteData()
	d.Set("name", "Ana")
	d.Set("skills", skills())
	_, err := Create[testUser](ctx, e, userModel, d, nil)
	require.Error(t, err)
	assert.True(t, errors.IsValidation(err))
	assert.Contains(t, err.Error(), "email")

	d = NewWriteData()
	d.Set("name", nil)
	d.Set("email", "ana@example.com")
	d.Set("skills", skills())
	_, err = Create[testUser](ctx, e, userModel, d, nil)
	assert.True(t, errors.IsValidation(err))
}

func TestConstraintViolations(t *testing.T) {
	ctx := context.Background()
	e := newTestEngine(t)
	createUser(t, e, "Ana", "ana@example.com")

	d, err := userCreate{Name: "Other", Email: "ana@example.com", Skills: skills()}.Data()
	require.NoError(t, err)
	_, err = Create[testUser](ctx, e, userModel, d, nil)
	assert.True(t, errors.IsUniqueConstraint(err), "got %v", err)

	missing := "no-such-user"
	d, err = serviceCreate{FreelancerID: &missing, Title: "Logo", Price: 10, DeliveryDays: 1}.Data()
	require.NoError(t, err)
	_, err = Create[testService](ctx, e, serviceModel, d, nil)
	assert.True(t, errors.IsForeignKeyConstraint(err), "got %v", err)
}

func TestNestedCreateAndInclude(t *testing.T) {
	ctx := context.Background()
	e := newTestEngine(t)

	d, err := userCreate{
		Name:   "Ana",
		Email:  "ana@example.com",
		Skills: skills("design"),
		Services: &NestedMany[serviceCreate, serviceUnique]{
			Create: []serviceCreate{
				{Title: "Logo", Price: 80, DeliveryDays: 3},
				{Title: "Banner", Price: 40, DeliveryDays: 2},
			},
		},
	}.Data()
	require.NoError(t, err)
	u, err := Create[testUser](ctx, e, userModel, d, nil)
	require.NoError(t, err)

	sel := &Selection{
		Relations: []RelationSelection{{Relation: "services", Args: FindArgs{OrderBy: []Order{{Field: "price", Dir: Asc}}}}},
		Counts:    []CountSelection{{Relation: "services"}},
	}
	got, err := FindUnique[testUser](ctx, e, userModel, Equals("id", u.ID), sel)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, []float64{40, 80}, prices(got.Services))
	for _, s := range got.Services {
		assert.Equal(t, u.ID, s.FreelancerID)
	}
	require.NotNil(t, got.Count)
	assert.Equal(t, 2, got.Count.Services)
}

func TestNestedConnectOnOwner(t *testing.T) {
	ctx := context.Background()
	e := newTestEngine(t)
	u := createUser(t, e, "Ana", "ana@example.com")

	d, err := serviceCreate{
		Title: "Logo", Price: 50, DeliveryDays: 3,
		Freelancer: &NestedOne[userCreate, userUnique]{Connect: &userUnique{Email: Ptr("ana@example.com")}},
	}.Data()
	require.NoError(t, err)
	s, err := Create[testService](ctx, e, serviceModel, d, &Selection{
		Relations: []RelationSelection{{Relation: "freelancer"}},
	})
	require.NoError(t, err)
	assert.Equal(t, u.ID, s.FreelancerID)
	require.NotNil(t, s.Freelancer)
	assert.Equal(t, "Ana", s.Freelancer.Name)

	d, err = serviceCreate{
		Title: "Banner", Price: 50, DeliveryDays: 3,
		Freelancer: &NestedOne[userCreate, userUnique]{Connect: &userUnique{Email: Ptr("nobody@example.com")}},
	}.Data()
	require.NoError(t, err)
	_, err = Create[testService](ctx, e, serviceModel, d, nil)
	assert.True(t, errors.IsNotFound(err))

	n, err := Count(ctx, e, serviceModel, FindArgs{})
	require.NoError(t, err)
	assert.Equal(t, 1, n)
}

func TestNestedCreateOnOwner(t *testing.T) {
	ctx := context.Background()
	e := newTestEngine(t)

	d, err := serviceCreate{
		Title: "Logo", Price: 50, DeliveryDays: 3,
		Freelancer: &NestedOne[userCreate, userUnique]{
			Create: &userCreate{Name: "Bia", Email: "bia@example.com", Skills: skills()},
		},
	}.Data()
	require.NoError(t, err)
	s, err := Create[testService](ctx, e, serviceModel, d, nil)
	require.NoError(t, err)

	u, err := FindUnique[testUser](ctx, e, userModel, Equals("email", "bia@example.com"), nil)
	require.NoError(t, err)
	require.NotNil(t, u)
	assert.Equal(t, u.ID, s.FreelancerID)
}

func TestIncludePerParentTake(t *testing.T) {
	ctx := context.Background()
	e := newTestEngine(t)
	ana := createUser(t, e, "Ana", "ana@example.com")
	bia := createUser(t, e, "Bia", "bia@example.com")
	createService(t, e, ana.ID, "A1", 10, 1)
	createService(t, e, ana.ID, "A2", 30, 1)
	createService(t, e, bia.ID, "B1", 20, 1)

	users, err := FindMany[testUser](ctx, e, userModel, FindArgs{
		OrderBy: []Order{{Field: "name", Dir: Asc}},
		Select: &Selection{
			Relations: []RelationSelection{{Relation: "services", Args: FindArgs{
				OrderBy: []Order{{Field: "price", Dir: Desc}},
				Take:    Ptr(1),
			}}},
			Counts: []CountSelection{{Relation: "services", Where: (&FloatFilter{Gt: Ptr(15.0)}).Cond("price")}},
		},
	})
	require.NoError(t, err)
	require.Len(t, users, 2)
	assert.Equal(t, []float64{30}, prices(users[0].Services))
	assert.Equal(t, []float64{20}, prices(users[1].Services))
	assert.Equal(t, 1, users[0].Count.Services)
	assert.Equal(t, 1, users[1].Count.Services)
}

func TestRelationFilters(t *testing.T) {
	ctx := context.Background()
	e := newTestEngine(t)
	ana := createUser(t, e, "Ana", "ana@example.com")
	bia := createUser(t, e, "Bia", "bia@example.com")
	createUser(t, e, "Caio", "caio@example.com")
	createService(t, e, ana.ID, "Logo", 200, 5)
	createService(t, e, bia.ID, "Banner", 20, 1)

	names := func(where Condition) []string {
		users, err := FindMany[testUser](ctx, e, userModel, FindArgs{Where: where, OrderBy: []Order{{Field: "name", Dir: Asc}}})
		require.NoError(t, err)
		out := make([]string, len(users))
		for i, u := range users {
			out[i] = u.Name
		}
		return out
	}
	expensive := (&FloatFilter{Gt: Ptr(100.0)}).Cond("price")

	assert.Equal(t, []string{"Ana"}, names(Some("services", expensive)))
	assert.Equal(t, []string{"Bia", "Caio"}, names(None("services", expensive)))
	assert.Equal(t, []string{"Ana", "Caio"}, names(Every("services", expensive)))

	services, err := FindMany[testService](ctx, e, serviceModel, FindArgs{
		Where: Is("freelancer", (&StringFilter{Contains: Ptr("bi"), Mode: ModeInsensitive}).Cond("name")),
	})
	require.NoError(t, err)
	require.Len(t, services, 1)
	assert.Equal(t, "Banner", services[0].Title)
}

func TestInsensitiveNot(t *testing.T) {
	ctx := context.Background()
	e := newTestEngine(t)
	createUser(t, e, "Ana", "ana@example.com")
	createUser(t, e, "Bia", "bia@example.com")

	f := &StringFilter{Mode: ModeInsensitive, Not: &StringFilter{Equals: Ptr("ANA")}}
	users, err := FindMany[testUser](ctx, e, userModel, FindArgs{Where: f.Cond("name")})
	require.NoError(t, err)
	require.Len(t, users, 1)
	assert.Equal(t, "Bia", users[0].Name)
	assert.Empty(t, f.Not.Mode)
}

func TestPagination(t *testing.T) {
	ctx := context.Background()
	e := newTestEngine(t)
	u := createUser(t, e, "Ana", "ana@example.com")
	var third *testService
	for i, p := range []float64{10, 20, 30, 40, 50} {
		s := createService(t, e, u.ID, string(rune('A'+i)), p, 1)
		if p == 30 {
			third = s
		}
	}
	byPrice := []Order{{Field: "price", Dir: Asc}}
	find := func(args FindArgs) []float64 {
		args.OrderBy = byPrice
		out, err := FindMany[testService](ctx, e, serviceModel, args)
		require.NoError(t, err)
		return prices(out)
	}

	assert.Equal(t, []float64{20, 30}, find(FindArgs{Take: Ptr(2), Skip: Ptr(1)}))
	assert.Equal(t, []float64{30, 40}, find(FindArgs{Cursor: Equals("id", third.ID), Take: Ptr(2)}))
	assert.Equal(t, []float64{40, 50}, find(FindArgs{Cursor: Equals("id", third.ID), Take: Ptr(2), Skip: Ptr(1)}))
	assert.Equal(t, []float64{20, 30}, find(FindArgs{Cursor: Equals("id", third.ID), Take: Ptr(-2)}))
	assert.Equal(t, []float64{40, 50}, find(FindArgs{Take: Ptr(-2)}))
	assert.Empty(t, find(FindArgs{Cursor: Equals("id", "missing"), Take: Ptr(2)}))

	last, err := FindFirst[testService](ctx, e, serviceModel, FindArgs{OrderBy: byPrice, Take: Ptr(-1)})
	require.NoError(t, err)
	require.NotNil(t, last)
	assert.Equal(t, 50.0, last.Price)

	_, err = FindMany[testService](ctx, e, serviceModel, FindArgs{Skip: Ptr(-1)})
	assert.True(t, errors.IsValidation(err))
}

func TestDistinct(t *testing.T) {
	ctx := context.Background()
	e := newTestEngine(t)
	u := createUser(t, e, "Ana", "ana@example.com")
	createService(t, e, u.ID, "A", 10, 3)
	createService(t, e, u.ID, "B", 20, 3)
	createService(t, e, u.ID, "C", 30, 5)

	out, err := FindMany[testService](ctx, e, serviceModel, FindArgs{
		OrderBy:  []Order{{Field: "price", Dir: Asc}},
		Distinct: []string{"deliveryDays"},
	})
	require.NoError(t, err)
	assert.Equal(t, []float64{10, 30}, prices(out))
}

func TestUpdate(t *testing.T) {
	ctx := context.Background()
	e := newTestEngine(t)
	u := createUser(t, e, "Ana", "ana@example.com")
	s := createService(t, e, u.ID, "Logo", 10, 3)

	d := NewWriteData()
	ApplyNumber(d, "deliveryDays", Increment(2))
	ApplyNullable(d, "title", SetTo("Logo Pro"))
	got, err := Update[testService](ctx, e, serviceModel, Equals("id", s.ID), d, nil)
	require.NoError(t, err)
	assert.Equal(t, 5, got.DeliveryDays)
	assert.Equal(t, "Logo Pro", got.Title)

	d = NewWriteData()
	ApplyNullable(d, "bio", SetTo("designer"))
	ApplyNullable(d, "hourlyRate", SetTo(45.5))
	updated, err := Update[testUser](ctx, e, userModel, Equals("id", u.ID), d, nil)
	require.NoError(t, err)
	require.NotNil(t, updated.Bio)
	assert.Equal(t, "designer", *updated.Bio)
	require.NotNil(t, updated.HourlyRate)
	assert.Equal(t, 45.5, *updated.HourlyRate)

	d = NewWriteData()
	ApplyNullable(d, "bio", SetNull[string]())
	updated, err = Update[testUser](ctx, e, userModel, Equals("id", u.ID), d, nil)
	require.NoError(t, err)
	assert.Nil(t, updated.Bio)

	d = NewWriteData()
	d.Set("name", "Nobody")
	_, err = Update[testUser](ctx, e, userModel, Equals("id", "missing"), d, nil)
	assert.True(t, errors.IsNotFound(err))
}

func TestUpsert(t *testing.T) {
	ctx := context.Background()
	e := newTestEngine(t)
	where := Equals("email", "ana@example.com")
	createData := func() *WriteData {
		d, err := userCreate{Name: "Ana", Email: "ana@example.com", Skills: skills()}.Data()
		require.NoError(t, err)
		return d
	}
	updateData := NewWriteData()
	updateData.Set("name", "Ana Souza")

	first, err := Upsert[testUser](ctx, e, userModel, where, createData(), updateData, nil)
	require.NoError(t, err)
	assert.Equal(t, "Ana", first.Name)

	second, err := Upsert[testUser](ctx, e, userModel, where, createData(), updateData, nil)
	require.NoError(t, err)
	assert.Equal(t, first.ID, second.ID)
	assert.Equal(t, "Ana Souza", second.Name)
}

func TestDelete(t *testing.T) {
	ctx := context.Background()
	e := newTestEngine(t)
	u := createUser(t, e, "Ana", "ana@example.com")
	createService(t, e, u.ID, "Logo", 10, 3)

	deleted, err := Delete[testUser](ctx, e, userModel, Equals("id", u.ID), nil)
	require.NoError(t, err)
	assert.Equal(t, "Ana", deleted.Name)

	n, err := Count(ctx, e, serviceModel, FindArgs{})
	require.NoError(t, err)
	assert.Zero(t, n, "services cascade with their freelancer")

	_, err = Delete[testUser](ctx, e, userModel, Equals("id", u.ID), nil)
	assert.True(t, errors.IsNotFound(err))
}

func TestManyOperations(t *testing.T) {
	ctx := context.Background()
	e := newTestEngine(t)
	createUser(t, e, "Ana", "ana@example.com")

	var data []*WriteData
	for _, email := range []string{"bia@example.com", "ana@example.com", "caio@example.com"} {
		d, err := userCreate{Name: email[:3], Email: email, Skills: skills()}.Data()
		require.NoError(t, err)
		data = append(data, d)
	}
	res, err := CreateMany(ctx, e, userModel, data, true)
	require.NoError(t, err)
	assert.Equal(t, 2, res.Count)

	upd := NewWriteData()
	upd.Set("role", "FREELANCER")
	res, err = UpdateMany(ctx, e, userModel, (&StringFilter{EndsWith: Ptr("@example.com")}).Cond("email"), upd)
	require.NoError(t, err)
	assert.Equal(t, 3, res.Count)

	returned, err := UpdateManyAndReturn[testUser](ctx, e, userModel, Equals("name", "bia"), upd, nil)
	require.NoError(t, err)
	require.Len(t, returned, 1)
	assert.Equal(t, "FREELANCER", returned[0].Role)

	res, err = DeleteMany(ctx, e, userModel, (&StringFilter{In: []string{"bia", "cai"}}).Cond("name"))
	require.NoError(t, err)
	assert.Equal(t, 2, res.Count)

	n, err := Count(ctx, e, userModel, FindArgs{})
	require.NoError(t, err)
	assert.Equal(t, 1, n)
}

func TestCreateManyAndReturnKeepsInputOrder(t *testing.T) {
	ctx := context.Background()
	e := newTestEngine(t)

	var data []*WriteData
	for _, name := range []string{"Zed", "Ana", "Mia"} {
		d, err := userCreate{Name: name, Email: name + "@example.com", Skills: skills()}.Data()
		require.NoError(t, err)
		data = append(data, d)
	}
	out, err := CreateManyAndReturn[testUser](ctx, e, userModel, data, false, nil)
	require.NoError(t, err)
	require.Len(t, out, 3)
	assert.Equal(t, "Zed", out[0].Name)
	assert.Equal(t, "Ana", out[1].Name)
	assert.Equal(t, "Mia", out[2].Name)
}

type serviceAggregate struct {
	Count *struct {
		All   int `json:"_all"`
		Price int `json:"price"`
	} `json:"_count"`
	Avg *struct {
		Price *float64 `json:"price"`
	} `json:"_avg"`
	Sum *struct {
		Price *float64 `json:"price"`
	} `json:"_sum"`
	Min *struct {
		DeliveryDays *int `json:"deliveryDays"`
	} `json:"_min"`
	Max *struct {
		Price *float64 `json:"price"`
	} `json:"_max"`
}

func TestAggregate(t *testing.T) {
	ctx := context.Background()
	e := newTestEngine(t)
	u := createUser(t, e, "Ana", "ana@example.com")
	createService(t, e, u.ID, "A", 10, 3)
	createService(t, e, u.ID, "B", 20, 2)
	createService(t, e, u.ID, "C", 60, 7)

	agg, err := Aggregate[serviceAggregate](ctx, e, serviceModel, AggregateArgs{
		Count: []string{"_all", "price"},
		Avg:   []string{"price"},
		Sum:   []string{"price"},
		Min:   []string{"deliveryDays"},
		Max:   []string{"price"},
	})
	require.NoError(t, err)
	assert.Equal(t, 3, agg.Count.All)
	assert.Equal(t, 3, agg.Count.Price)
	assert.InDelta(t, 30.0, *agg.Avg.Price, 1e-9)
	assert.InDelta(t, 90.0, *agg.Sum.Price, 1e-9)
	assert.Equal(t, 2, *agg.Min.DeliveryDays)
	assert.InDelta(t, 60.0, *agg.Max.Price, 1e-9)

	paged, err := Aggregate[serviceAggregate](ctx, e, serviceModel, AggregateArgs{
		OrderBy: []Order{{Field: "price", Dir: Asc}},
		Take:    Ptr(2),
		Sum:     []string{"price"},
	})
	require.NoError(t, err)
	assert.InDelta(t, 30.0, *paged.Sum.Price, 1e-9)

	empty, err := Aggregate[serviceAggregate](ctx, e, serviceModel, AggregateArgs{
		Where: (&FloatFilter{Gt: Ptr(1000.0)}).Cond("price"),
		Sum:   []string{"price"},
	})
	require.NoError(t, err)
	assert.Nil(t, empty.Sum.Price)

	_, err = Aggregate[serviceAggregate](ctx, e, serviceModel, AggregateArgs{Avg: []string{"title"}})
	assert.True(t, errors.IsValidation(err))
}

type serviceGroup struct {
	FreelancerID string `json:"freelancerId"`
	Count        *struct {
		All int `json:"_all"`
	} `json:"_count"`
	Sum *struct {
		Price *float64 `json:"price"`
	} `json:"_sum"`
}

func TestGroupBy(t *testing.T) {
	ctx := context.Background()
	e := newTestEngine(t)
	ana := createUser(t, e, "Ana", "ana@example.com")
	bia := createUser(t, e, "Bia", "bia@example.com")
	createService(t, e, ana.ID, "A1", 10, 1)
	createService(t, e, ana.ID, "A2", 30, 1)
	createService(t, e, bia.ID, "B1", 20, 1)

	groups, err := GroupBy[serviceGroup](ctx, e, serviceModel, GroupByArgs{
		By:     []string{"freelancerId"},
		Having: (&AggregatesFilter[*FloatFilter]{Count: &IntFilter{Gt: Ptr(1)}}).Cond("price"),
		Count:  []string{"_all"},
		Sum:    []string{"price"},
	})
	require.NoError(t, err)
	require.Len(t, groups, 1)
	assert.Equal(t, ana.ID, groups[0].FreelancerID)
	assert.Equal(t, 2, groups[0].Count.All)
	assert.InDelta(t, 40.0, *groups[0].Sum.Price, 1e-9)

	_, err = GroupBy[serviceGroup](ctx, e, serviceModel, GroupByArgs{By: []string{"freelancerId"}, Take: Ptr(1)})
	assert.True(t, errors.IsValidation(err))

	_, err = GroupBy[serviceGroup](ctx, e, serviceModel, GroupByArgs{
		By:     []string{"freelancerId"},
		Having: (&StringFilter{Equals: Ptr("x")}).Cond("title"),
	})
	assert.True(t, errors.IsValidation(err))
}

func TestTransactionRollsBackOnError(t *testing.T) {
	ctx := context.Background()
	e := newTestEngine(t)
	boom := stderrors.New("boom")

	err := e.Transaction(ctx, func(ctx context.Context, tx *Engine) error {
		d, err := userCreate{Name: "Ana", Email: "ana@example.com", Skills: skills()}.Data()
		if err != nil {
			return err
		}
		if _, err := Create[testUser](ctx, tx, userModel, d, nil); err != nil {
			return err
		}
		n, err := Count(ctx, tx, userModel, FindArgs{})
		if err != nil {
			return err
		}
		assert.Equal(t, 1, n)
		return boom
	})
	assert.ErrorIs(t, err, boom)

	n, err := Count(ctx, e, userModel, FindArgs{})
	require.NoError(t, err)
	assert.Zero(t, n)
}

func TestTransactionRollsBackOnPanic(t *testing.T) {
	ctx := context.Background()
	e := newTestEngine(t)

	assert.Panics(t, func() {
		_ = e.Transaction(ctx, func(ctx context.Context, tx *Engine) error {
			d, _ := userCreate{Name: "Ana", Email: "ana@example.com", Skills: skills()}.Data()
			if _, err := Create[testUser](ctx, tx, userModel, d, nil); err != nil {
				return err
			}
			panic("boom")
		})
	})

	n, err := Count(ctx, e, userModel, FindArgs{})
	require.NoError(t, err)
	assert.Zero(t, n)
}

func TestBatch(t *testing.T) {
	ctx := context.Background()
	e := newTestEngine(t)

	newCreate := func(name, email string) *Deferred[*testUser] {
		return NewDeferred(e, func(ctx context.Context, e *Engine) (*testUser, error) {
			d, err := userCreate{Name: name, Email: email, Skills: skills()}.Data()
			if err != nil {
				return nil, err
			}
			return Create[testUser](ctx, e, userModel, d, nil)
		})
	}
	count := NewDeferred(e, func(ctx context.Context, e *Engine) (int, error) {
		return Count(ctx, e, userModel, FindArgs{})
	})

	first, second := newCreate("Ana", "ana@example.com"), newCreate("Bia", "bia@example.com")
	require.NoError(t, e.Batch(ctx, first, second, count))
	u, err := first.Result()
	require.NoError(t, err)
	assert.Equal(t, "Ana", u.Name)
	n, err := count.Result()
	require.NoError(t, err)
	assert.Equal(t, 2, n)

	dup := newCreate("Other", "ana@example.com")
	err = e.Batch(ctx, newCreate("Caio", "caio@example.com"), dup)
	assert.True(t, errors.IsUniqueConstraint(err), "got %v", err)

	n, err = Count(ctx, e, userModel, FindArgs{})
	require.NoError(t, err)
	assert.Equal(t, 2, n)
}

func deferredCreate(e *Engine, name, email string) *Deferred[*testUser] {
	return NewDeferred(e, func(ctx context.Context, e *Engine) (*testUser, error) {
		d, err := userCreate{Name: name, Email: email, Skills: skills()}.Data()
		if err != nil {
			return nil, err
		}
		return Create[testUser](ctx, e, userModel, d, nil)
	})
}

func TestBatchRetryAfterRollback(t *testing.T) {
	ctx := context.Background()
	e := newTestEngine(t)
	createUser(t, e, "Ana", "ana@example.com")

	bia := deferredCreate(e, "Bia", "bia@example.com")
	err := e.Batch(ctx, bia, deferredCreate(e, "Dup", "ana@example.com"))
	require.True(t, errors.IsUniqueConstraint(err), "got %v", err)

	// the rolled-back create reports the batch error instead of its row
	u, err := bia.Result()
	assert.Nil(t, u)
	assert.True(t, errors.IsUniqueConstraint(err), "got %v", err)

	require.NoError(t, e.Batch(ctx, bia, deferredCreate(e, "Caio", "caio@example.com")))
	u, err = bia.Result()
	require.NoError(t, err)
	require.NotNil(t, u)
	assert.Equal(t, "Bia", u.Name)

	got, err := FindUnique[testUser](ctx, e, userModel, Equals("email", "bia@example.com"), nil)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, u.ID, got.ID)

	n, err := Count(ctx, e, userModel, FindArgs{})
	require.NoError(t, err)
	assert.Equal(t, 3, n)
}

func TestDeferredRunsOnce(t *testing.T) {
	ctx := context.Background()
	e := newTestEngine(t)
	calls := 0
	d := NewDeferred(e, func(ctx context.Context, e *Engine) (int, error) {
		calls++
		return Count(ctx, e, userModel, FindArgs{})
	})

	_, err := d.Exec(ctx)
	require.NoError(t, err)
	_, err = d.Exec(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, calls)
}

func TestNotConnected(t *testing.T) {
	ctx := context.Background()
	e := NewEngine("sqlite", nil)

	_, err := FindMany[testUser](ctx, e, userModel, FindArgs{})
	assert.ErrorIs(t, err, errors.ErrNotConnected)

	err = e.Transaction(ctx, func(context.Context, *Engine) error { return nil })
	assert.ErrorIs(t, err, errors.ErrNotConnected)

	connected := newTestEngine(t)
	assert.True(t, connected.Connected())
	require.NoError(t, connected.Detach())
	assert.False(t, connected.Connected())
	_, err = Count(ctx, connected, userModel, FindArgs{})
	assert.ErrorIs(t, err, errors.ErrNotConnected)
}

func TestRepeatedLookupsWarn(t *testing.T) {
	ctx := context.Background()
	e := newTestEngine(t)
	var buf bytes.Buffer
	e.SetLogger(logger.NewLogger([]string{"warn"}, &buf))

	for i := 0; i < 12; i++ {
		_, err := FindUnique[testUser](ctx, e, userModel, Equals("email", "nobody@example.com"), nil)
		require.NoError(t, err)
	}
	assert.Equal(t, 1, bytes.Count(buf.Bytes(), []byte("possible N+1")))
	assert.Contains(t, buf.String(), "[WARN]")
}
