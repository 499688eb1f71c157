package db

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"testing"
	"time"

	"github.com/carlosnayan/prisma-go-marketplace/builder"
	"github.com/carlosnayan/prisma-go-marketplace/internal/generator"
	"github.com/carlosnayan/prisma-go-marketplace/internal/migrations"
	"github.com/carlosnayan/prisma-go-marketplace/internal/parser"
	testutil "github.com/carlosnayan/prisma-go-marketplace/internal/testing"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newTestClient pushes prisma/schema.prisma into a fresh in-memory SQLite
// database and returns a connected client on it.
func newTestClient(t *testing.T) *Client {
	t.Helper()
	ctx := context.Background()

	schema, problems, err := parser.ParseFile("../prisma/schema.prisma")
	require.NoError(t, err, parser.FormatErrors(problems))
	graph, err := generator.NewGraph(schema, "db")
	require.NoError(t, err)

	sqlDB, cleanup := testutil.SetupSQLite(t)
	t.Cleanup(cleanup)
	_, err = migrations.Push(ctx, sqlDB, graph, "sqlite", migrations.PushOptions{})
	require.NoError(t, err)

	c := NewClient(WithDB(sqlDB.SQLDB(), "sqlite"), WithLogger(io.Discard))
	require.NoError(t, c.Connect(ctx))
	return c
}

func skillsOf(s ...string) json.RawMessage {
	b, _ := json.Marshal(s)
	return b
}

func createUser(t *testing.T, c *Client, name, email string, role Role) *User {
	t.Helper()
	u, err := c.User.Create(UserCreateArgs{Data: UserCreateInput{
		Name:     name,
		Email:    email,
		Password: "secret",
		Role:     Ptr(role),
		Skills:   skillsOf(),
	}}).Exec(context.Background())
	require.NoError(t, err)
	return u
}

func createService(t *testing.T, c *Client, freelancerID, title, category string, price float64) *Service {
	t.Helper()
	s, err := c.Service.Create(ServiceCreateArgs{Data: ServiceCreateInput{
		FreelancerID: Ptr(freelancerID),
		Title:        title,
		Description:  title + " service",
		Category:     category,
		PricingType:  PricingTypeFixed,
		Price:        price,
		DeliveryDays: 5,
	}}).Exec(context.Background())
	require.NoError(t, err)
	return s
}

func createProject(t *testing.T, c *Client, clientID, title string) *Project {
	t.Helper()
	p, err := c.Project.Create(ProjectCreateArgs{Data: ProjectCreateInput{
		ClientID:       Ptr(clientID),
		Title:          title,
		Description:    "Build " + title,
		Category:       "web",
		BudgetMin:      500,
		BudgetMax:      1500,
		Deadline:       time.Date(2030, 1, 15, 0, 0, 0, 0, time.UTC),
		RequiredSkills: skillsOf("go", "sql"),
	}}).Exec(context.Background())
	require.NoError(t, err)
	return p
}

func TestCreateAppliesDefaults(t *testing.T) {
	ctx := context.Background()
	c := newTestClient(t)

	u, err := c.User.Create(UserCreateArgs{Data: UserCreateInput{
		Name:     "Ana",
		Email:    "ana@example.com",
		Password: "secret",
		Skills:   skillsOf("design", "figma"),
	}}).Exec(ctx)
	require.NoError(t, err)

	_, err = uuid.Parse(u.ID)
	assert.NoError(t, err)
	assert.Equal(t, RoleClient, u.Role)
	assert.Nil(t, u.Bio)
	assert.Nil(t, u.HourlyRate)
	assert.False(t, u.CreatedAt.IsZero())
	assert.JSONEq(t, `["design","figma"]`, string(u.Skills))
}

func TestFindUnique(t *testing.T) {
	ctx := context.Background()
	c := newTestClient(t)
	ana := createUser(t, c, "Ana", "ana@example.com", RoleFreelancer)

	got, err := c.User.FindUnique(UserFindUniqueArgs{Where: UserWhereUniqueInput{Email: Ptr("ana@example.com")}}).Exec(ctx)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, ana.ID, got.ID)
	assert.Equal(t, RoleFreelancer, got.Role)

	missing, err := c.User.FindUnique(UserFindUniqueArgs{Where: UserWhereUniqueInput{ID: Ptr("missing")}}).Exec(ctx)
	require.NoError(t, err)
	assert.Nil(t, missing)

	_, err = c.User.FindUniqueOrThrow(UserFindUniqueArgs{Where: UserWhereUniqueInput{ID: Ptr("missing")}}).Exec(ctx)
	assert.True(t, IsNotFound(err), "got %v", err)
	assert.ErrorIs(t, err, ErrNotFound)

	_, err = c.User.FindUnique(UserFindUniqueArgs{}).Exec(ctx)
	assert.True(t, IsValidation(err), "got %v", err)
}

func TestConstraintViolations(t *testing.T) {
	ctx := context.Background()
	c := newTestClient(t)
	createUser(t, c, "Ana", "ana@example.com", RoleClient)

	_, err := c.User.Create(UserCreateArgs{Data: UserCreateInput{
		Name:     "Other Ana",
		Email:    "ana@example.com",
		Password: "secret",
		Skills:   skillsOf(),
	}}).Exec(ctx)
	assert.True(t, IsUniqueConstraint(err), "got %v", err)

	_, err = c.Service.Create(ServiceCreateArgs{Data: ServiceCreateInput{
		FreelancerID: Ptr("nobody"),
		Title:        "Logo",
		Description:  "Logo design",
		Category:     "design",
		PricingType:  PricingTypeFixed,
		Price:        50,
		DeliveryDays: 2,
	}}).Exec(ctx)
	assert.True(t, IsForeignKeyConstraint(err), "got %v", err)
}

func TestNestedCreateWithInclude(t *testing.T) {
	ctx := context.Background()
	c := newTestClient(t)

	u, err := c.User.Create(UserCreateArgs{
		Data: UserCreateInput{
			Name:       "Bia",
			Email:      "bia@example.com",
			Password:   "secret",
			Role:       Ptr(RoleFreelancer),
			Skills:     skillsOf("go"),
			HourlyRate: Ptr(45.0),
			Services: &builder.NestedMany[ServiceCreateInput, ServiceWhereUniqueInput]{
				Create: []ServiceCreateInput{
					{Title: "API", Description: "REST API", Category: "backend", PricingType: PricingTypeHourly, Price: 60, DeliveryDays: 10},
					{Title: "Fix", Description: "Bug fix", Category: "backend", PricingType: PricingTypeFixed, Price: 30, DeliveryDays: 1},
				},
			},
		},
		Include: &UserInclude{
			Services: &ServiceFindManyArgs{OrderBy: []ServiceOrderByInput{{Price: Ptr(SortAsc)}}},
			Count:    &UserCountSelect{Services: &ServiceWhereInput{}},
		},
	}).Exec(ctx)
	require.NoError(t, err)

	require.Len(t, u.Services, 2)
	assert.Equal(t, "Fix", u.Services[0].Title)
	assert.Equal(t, "API", u.Services[1].Title)
	for _, s := range u.Services {
		assert.Equal(t, u.ID, s.FreelancerID)
		assert.Equal(t, 0.0, s.Rating)
	}
	require.NotNil(t, u.Count)
	assert.Equal(t, 2, u.Count.Services)

	svc, err := c.Service.FindFirstOrThrow(ServiceFindManyArgs{
		Where:   &ServiceWhereInput{Title: &StringFilter{Equals: Ptr("API")}},
		Include: &ServiceInclude{Freelancer: &UserArgs{}},
	}).Exec(ctx)
	require.NoError(t, err)
	require.NotNil(t, svc.Freelancer)
	assert.Equal(t, "Bia", svc.Freelancer.Name)
}

func TestSelectLeavesOtherFieldsZero(t *testing.T) {
	ctx := context.Background()
	c := newTestClient(t)
	createUser(t, c, "Ana", "ana@example.com", RoleClient)

	users, err := c.User.FindMany(UserFindManyArgs{Select: &UserSelect{Email: true}}).Exec(ctx)
	require.NoError(t, err)
	require.Len(t, users, 1)
	assert.Equal(t, "ana@example.com", users[0].Email)
	assert.Empty(t, users[0].Name)
	assert.Empty(t, users[0].Password)
}

func TestRelationFilters(t *testing.T) {
	ctx := context.Background()
	c := newTestClient(t)
	ana := createUser(t, c, "Ana", "ana@example.com", RoleFreelancer)
	bia := createUser(t, c, "Bia", "bia@example.com", RoleFreelancer)
	createUser(t, c, "Caio", "caio@example.com", RoleClient)
	createService(t, c, ana.ID, "Logo", "design", 80)
	createService(t, c, bia.ID, "API", "backend", 300)

	designers, err := c.User.FindMany(UserFindManyArgs{
		Where: &UserWhereInput{Services: &builder.ListRelationFilter[ServiceWhereInput]{
			Some: &ServiceWhereInput{Category: &StringFilter{Equals: Ptr("design")}},
		}},
	}).Exec(ctx)
	require.NoError(t, err)
	require.Len(t, designers, 1)
	assert.Equal(t, "Ana", designers[0].Name)

	withoutServices, err := c.User.FindMany(UserFindManyArgs{
		Where: &UserWhereInput{Services: &builder.ListRelationFilter[ServiceWhereInput]{None: &ServiceWhereInput{}}},
	}).Exec(ctx)
	require.NoError(t, err)
	require.Len(t, withoutServices, 1)
	assert.Equal(t, "Caio", withoutServices[0].Name)

	byOwner, err := c.Service.FindMany(ServiceFindManyArgs{
		Where: &ServiceWhereInput{Freelancer: &builder.RelationFilter[UserWhereInput]{
			Is: &UserWhereInput{Email: &StringFilter{StartsWith: Ptr("BIA"), Mode: ModeInsensitive}},
		}},
	}).Exec(ctx)
	require.NoError(t, err)
	require.Len(t, byOwner, 1)
	assert.Equal(t, "API", byOwner[0].Title)
}

func TestPaginationAndDistinct(t *testing.T) {
	ctx := context.Background()
	c := newTestClient(t)
	ana := createUser(t, c, "Ana", "ana@example.com", RoleFreelancer)
	var ids []string
	for i, title := range []string{"A", "B", "C", "D", "E"} {
		category := "design"
		if i%2 == 1 {
			category = "writing"
		}
		ids = append(ids, createService(t, c, ana.ID, title, category, float64(10*(i+1))).ID)
	}
	byPrice := []ServiceOrderByInput{{Price: Ptr(SortAsc)}}

	page, err := c.Service.FindMany(ServiceFindManyArgs{OrderBy: byPrice, Skip: Ptr(1), Take: Ptr(2)}).Exec(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"B", "C"}, titles(page))

	next, err := c.Service.FindMany(ServiceFindManyArgs{
		OrderBy: byPrice,
		Cursor:  &ServiceWhereUniqueInput{ID: Ptr(ids[2])},
		Skip:    Ptr(1),
		Take:    Ptr(2),
	}).Exec(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"D", "E"}, titles(next))

	last, err := c.Service.FindMany(ServiceFindManyArgs{OrderBy: byPrice, Take: Ptr(-2)}).Exec(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"D", "E"}, titles(last))

	distinct, err := c.Service.FindMany(ServiceFindManyArgs{
		OrderBy:  byPrice,
		Distinct: []ServiceScalarField{ServiceScalarFieldCategory},
	}).Exec(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "B"}, titles(distinct))

	n, err := c.Service.Count(ServiceCountArgs{Where: &ServiceWhereInput{Price: &FloatFilter{Gte: Ptr(30.0)}}}).Exec(ctx)
	require.NoError(t, err)
	assert.Equal(t, 3, n)
}

func titles(services []Service) []string {
	out := make([]string, len(services))
	for i, s := range services {
		out[i] = s.Title
	}
	return out
}

func TestUpdateOperators(t *testing.T) {
	ctx := context.Background()
	c := newTestClient(t)
	u, err := c.User.Create(UserCreateArgs{Data: UserCreateInput{
		Name:       "Ana",
		Email:      "ana@example.com",
		Password:   "secret",
		Bio:        Ptr("Designer"),
		Skills:     skillsOf(),
		HourlyRate: Ptr(40.0),
	}}).Exec(ctx)
	require.NoError(t, err)

	updated, err := c.User.Update(UserUpdateArgs{
		Where: UserWhereUniqueInput{ID: Ptr(u.ID)},
		Data: UserUpdateInput{
			Role:       Ptr(RoleFreelancer),
			Bio:        builder.SetNull[string](),
			HourlyRate: builder.Increment(5.0),
		},
	}).Exec(ctx)
	require.NoError(t, err)
	assert.Equal(t, RoleFreelancer, updated.Role)
	assert.Nil(t, updated.Bio)
	require.NotNil(t, updated.HourlyRate)
	assert.InDelta(t, 45.0, *updated.HourlyRate, 1e-9)

	_, err = c.User.Update(UserUpdateArgs{
		Where: UserWhereUniqueInput{ID: Ptr("missing")},
		Data:  UserUpdateInput{Name: Ptr("Nobody")},
	}).Exec(ctx)
	assert.True(t, IsNotFound(err), "got %v", err)
}

func TestUpsertAndDelete(t *testing.T) {
	ctx := context.Background()
	c := newTestClient(t)
	where := UserWhereUniqueInput{Email: Ptr("ana@example.com")}
	upsert := func(name string) *User {
		u, err := c.User.Upsert(UserUpsertArgs{
			Where:  where,
			Create: UserCreateInput{Name: name, Email: "ana@example.com", Password: "secret", Skills: skillsOf()},
			Update: UserUpdateInput{Name: Ptr(name)},
		}).Exec(ctx)
		require.NoError(t, err)
		return u
	}

	created := upsert("Ana")
	updated := upsert("Ana Lima")
	assert.Equal(t, created.ID, updated.ID)
	assert.Equal(t, "Ana Lima", updated.Name)

	deleted, err := c.User.Delete(UserDeleteArgs{Where: where}).Exec(ctx)
	require.NoError(t, err)
	assert.Equal(t, created.ID, deleted.ID)

	_, err = c.User.Delete(UserDeleteArgs{Where: where}).Exec(ctx)
	assert.True(t, IsNotFound(err), "got %v", err)
}

func TestManyOperations(t *testing.T) {
	ctx := context.Background()
	c := newTestClient(t)
	createUser(t, c, "Ana", "ana@example.com", RoleClient)

	res, err := c.User.CreateMany(UserCreateManyArgs{
		Data: []UserCreateManyInput{
			{Name: "Bia", Email: "bia@example.com", Password: "x", Skills: skillsOf()},
			{Name: "Dup", Email: "ana@example.com", Password: "x", Skills: skillsOf()},
			{Name: "Caio", Email: "caio@example.com", Password: "x", Skills: skillsOf()},
		},
		SkipDuplicates: true,
	}).Exec(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, res.Count)

	res, err = c.User.UpdateMany(UserUpdateManyArgs{
		Where: &UserWhereInput{Name: &StringFilter{In: []string{"Bia", "Caio"}}},
		Data:  UserUpdateManyInput{Role: Ptr(RoleFreelancer)},
	}).Exec(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, res.Count)

	freelancers, err := c.User.FindMany(UserFindManyArgs{
		Where:   &UserWhereInput{Role: &builder.EnumFilter[Role]{Equals: Ptr(RoleFreelancer)}},
		OrderBy: []UserOrderByInput{{Name: Ptr(SortDesc)}},
	}).Exec(ctx)
	require.NoError(t, err)
	require.Len(t, freelancers, 2)
	assert.Equal(t, "Caio", freelancers[0].Name)

	res, err = c.User.DeleteMany(&UserWhereInput{Role: &builder.EnumFilter[Role]{Equals: Ptr(RoleFreelancer)}}).Exec(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, res.Count)

	n, err := c.User.Count(UserCountArgs{}).Exec(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, n)
}

func TestAggregateAndGroupBy(t *testing.T) {
	ctx := context.Background()
	c := newTestClient(t)
	ana := createUser(t, c, "Ana", "ana@example.com", RoleFreelancer)
	createService(t, c, ana.ID, "Logo", "design", 80)
	createService(t, c, ana.ID, "Banner", "design", 40)
	createService(t, c, ana.ID, "Post", "writing", 30)

	agg, err := c.Service.Aggregate(ServiceAggregateArgs{
		Count: &ServiceCountAggregateInput{All: true},
		Avg:   &ServiceNumericAggregateInput{Price: true},
		Sum:   &ServiceNumericAggregateInput{Price: true},
		Min:   &ServiceMinMaxAggregateInput{Price: true},
		Max:   &ServiceMinMaxAggregateInput{Price: true},
	}).Exec(ctx)
	require.NoError(t, err)
	assert.Equal(t, 3, agg.Count.All)
	assert.InDelta(t, 50.0, *agg.Avg.Price, 1e-9)
	assert.InDelta(t, 150.0, *agg.Sum.Price, 1e-9)
	assert.InDelta(t, 30.0, *agg.Min.Price, 1e-9)
	assert.InDelta(t, 80.0, *agg.Max.Price, 1e-9)

	groups, err := c.Service.GroupBy(ServiceGroupByArgs{
		By:      []ServiceScalarField{ServiceScalarFieldCategory},
		OrderBy: []ServiceOrderByWithAggregationInput{{Category: Ptr(SortAsc)}},
		Count:   &ServiceCountAggregateInput{All: true},
		Sum:     &ServiceNumericAggregateInput{Price: true},
	}).Exec(ctx)
	require.NoError(t, err)
	require.Len(t, groups, 2)
	assert.Equal(t, "design", groups[0].Category)
	assert.Equal(t, 2, groups[0].Count.All)
	assert.InDelta(t, 120.0, *groups[0].Sum.Price, 1e-9)
	assert.Equal(t, "writing", groups[1].Category)

	busy, err := c.Service.GroupBy(ServiceGroupByArgs{
		By: []ServiceScalarField{ServiceScalarFieldCategory},
		Having: &ServiceScalarWhereWithAggregatesInput{
			Price: &builder.AggregatesFilter[*builder.FloatFilter]{Count: &IntFilter{Gt: Ptr(1)}},
		},
		Count: &ServiceCountAggregateInput{All: true},
	}).Exec(ctx)
	require.NoError(t, err)
	require.Len(t, busy, 1)
	assert.Equal(t, "design", busy[0].Category)

	_, err = c.Service.GroupBy(ServiceGroupByArgs{
		By:   []ServiceScalarField{ServiceScalarFieldCategory},
		Take: Ptr(1),
	}).Exec(ctx)
	assert.True(t, IsValidation(err), "got %v", err)
}

func TestHiringFlow(t *testing.T) {
	ctx := context.Background()
	c := newTestClient(t)
	client := createUser(t, c, "Clara", "clara@example.com", RoleClient)
	freelancer := createUser(t, c, "Bia", "bia@example.com", RoleFreelancer)
	project := createProject(t, c, client.ID, "Storefront")
	assert.Equal(t, ProjectStatusOpen, project.Status)

	proposal, err := c.Proposal.Create(ProposalCreateArgs{Data: ProposalCreateInput{
		ProjectID:         Ptr(project.ID),
		FreelancerID:      Ptr(freelancer.ID),
		CoverLetter:       "I built three stores last year.",
		ProposedPrice:     1200,
		EstimatedDuration: 30,
	}}).Exec(ctx)
	require.NoError(t, err)
	assert.Equal(t, ProposalStatusPending, proposal.Status)

	_, err = c.Proposal.Create(ProposalCreateArgs{Data: ProposalCreateInput{
		ProjectID:         Ptr(project.ID),
		FreelancerID:      Ptr(freelancer.ID),
		CoverLetter:       "Again",
		ProposedPrice:     1100,
		EstimatedDuration: 25,
	}}).Exec(ctx)
	assert.True(t, IsUniqueConstraint(err), "got %v", err)

	pair := ProposalWhereUniqueInput{ProjectIDFreelancerID: &ProposalProjectIDFreelancerIDCompoundUniqueInput{
		ProjectID:    project.ID,
		FreelancerID: freelancer.ID,
	}}
	var contract *Contract
	err = c.Transaction(ctx, func(ctx context.Context, tx *Client) error {
		if _, err := tx.Proposal.Update(ProposalUpdateArgs{
			Where: pair,
			Data:  ProposalUpdateInput{Status: Ptr(ProposalStatusAccepted)},
		}).Exec(ctx); err != nil {
			return err
		}
		if _, err := tx.Project.Update(ProjectUpdateArgs{
			Where: ProjectWhereUniqueInput{ID: Ptr(project.ID)},
			Data:  ProjectUpdateInput{Status: Ptr(ProjectStatusInProgress)},
		}).Exec(ctx); err != nil {
			return err
		}
		var err error
		contract, err = tx.Contract.Create(ContractCreateArgs{Data: ContractCreateInput{
			ProjectID:    Ptr(project.ID),
			FreelancerID: Ptr(freelancer.ID),
			ClientID:     Ptr(client.ID),
			TotalAmount:  1200,
			Milestones: &builder.NestedMany[MilestoneCreateInput, MilestoneWhereUniqueInput]{
				Create: []MilestoneCreateInput{
					{Title: "Launch", Amount: 800, DueDate: time.Date(2030, 1, 10, 0, 0, 0, 0, time.UTC), OrderIndex: 2},
					{Title: "Design", Amount: 400, DueDate: time.Date(2029, 12, 20, 0, 0, 0, 0, time.UTC), OrderIndex: 1},
				},
			},
		}}).Exec(ctx)
		return err
	})
	require.NoError(t, err)
	assert.Equal(t, ContractStatusActive, contract.Status)

	got, err := c.Contract.FindUniqueOrThrow(ContractFindUniqueArgs{
		Where: ContractWhereUniqueInput{ID: Ptr(contract.ID)},
		Include: &ContractInclude{
			Project:    &ProjectArgs{},
			Freelancer: &UserArgs{},
			Client:     &UserArgs{},
			Milestones: &MilestoneFindManyArgs{OrderBy: []MilestoneOrderByInput{{OrderIndex: Ptr(SortAsc)}}},
		},
	}).Exec(ctx)
	require.NoError(t, err)
	assert.Equal(t, ProjectStatusInProgress, got.Project.Status)
	assert.Equal(t, "Bia", got.Freelancer.Name)
	assert.Equal(t, "Clara", got.Client.Name)
	require.Len(t, got.Milestones, 2)
	assert.Equal(t, "Design", got.Milestones[0].Title)
	assert.Equal(t, MilestoneStatusPending, got.Milestones[0].Status)

	review, err := c.Review.Create(ReviewCreateArgs{Data: ReviewCreateInput{
		ContractID: Ptr(contract.ID),
		ReviewerID: Ptr(client.ID),
		RevieweeID: Ptr(freelancer.ID),
		Rating:     5,
		Comment:    Ptr("Great work"),
	}}).Exec(ctx)
	require.NoError(t, err)
	assert.Equal(t, 5, review.Rating)

	counted, err := c.User.FindUniqueOrThrow(UserFindUniqueArgs{
		Where:   UserWhereUniqueInput{ID: Ptr(freelancer.ID)},
		Include: &UserInclude{Count: &UserCountSelect{ReviewsReceived: &ReviewWhereInput{}, FreelancerContracts: &ContractWhereInput{}}},
	}).Exec(ctx)
	require.NoError(t, err)
	require.NotNil(t, counted.Count)
	assert.Equal(t, 1, counted.Count.ReviewsReceived)
	assert.Equal(t, 1, counted.Count.FreelancerContracts)

	_, err = c.Project.Delete(ProjectDeleteArgs{Where: ProjectWhereUniqueInput{ID: Ptr(project.ID)}}).Exec(ctx)
	require.NoError(t, err)
	for name, count := range map[string]func() (int, error){
		"proposals":  func() (int, error) { return c.Proposal.Count(ProposalCountArgs{}).Exec(ctx) },
		"contracts":  func() (int, error) { return c.Contract.Count(ContractCountArgs{}).Exec(ctx) },
		"milestones": func() (int, error) { return c.Milestone.Count(MilestoneCountArgs{}).Exec(ctx) },
		"reviews":    func() (int, error) { return c.Review.Count(ReviewCountArgs{}).Exec(ctx) },
	} {
		n, err := count()
		require.NoError(t, err, name)
		assert.Zero(t, n, name)
	}
}

func TestTransactionRollsBack(t *testing.T) {
	ctx := context.Background()
	c := newTestClient(t)
	boom := errors.New("boom")

	err := c.Transaction(ctx, func(ctx context.Context, tx *Client) error {
		if _, err := tx.User.Create(UserCreateArgs{Data: UserCreateInput{
			Name: "Ana", Email: "ana@example.com", Password: "secret", Skills: skillsOf(),
		}}).Exec(ctx); err != nil {
			return err
		}
		return boom
	})
	assert.ErrorIs(t, err, boom)

	n, err := c.User.Count(UserCountArgs{}).Exec(ctx)
	require.NoError(t, err)
	assert.Zero(t, n)
}

func TestBatch(t *testing.T) {
	ctx := context.Background()
	c := newTestClient(t)
	newUser := func(name, email string) *builder.Deferred[*User] {
		return c.User.Create(UserCreateArgs{Data: UserCreateInput{
			Name: name, Email: email, Password: "secret", Skills: skillsOf(),
		}})
	}

	first := newUser("Ana", "ana@example.com")
	count := c.User.Count(UserCountArgs{})
	require.NoError(t, c.Batch(ctx, first, newUser("Bia", "bia@example.com"), count))
	u, err := first.Result()
	require.NoError(t, err)
	assert.Equal(t, "Ana", u.Name)
	n, err := count.Result()
	require.NoError(t, err)
	assert.Equal(t, 2, n)

	caio := newUser("Caio", "caio@example.com")
	err = c.Batch(ctx, caio, newUser("Dup", "ana@example.com"))
	assert.True(t, IsUniqueConstraint(err), "got %v", err)
	u, err = caio.Result()
	assert.Nil(t, u)
	assert.True(t, IsUniqueConstraint(err), "got %v", err)

	n, err = c.User.Count(UserCountArgs{}).Exec(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, n)

	require.NoError(t, c.Batch(ctx, caio, newUser("Dan", "dan@example.com")))
	got, err := c.User.FindUnique(UserFindUniqueArgs{Where: UserWhereUniqueInput{Email: Ptr("caio@example.com")}}).Exec(ctx)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "Caio", got.Name)
}

func TestRawQueries(t *testing.T) {
	ctx := context.Background()
	c := newTestClient(t)
	ana := createUser(t, c, "Ana", "ana@example.com", RoleFreelancer)
	createService(t, c, ana.ID, "Logo", "design", 80)

	n, err := c.ExecuteRaw(ctx, SQL("UPDATE services SET rating = ?, total_reviews = ? WHERE freelancer_id = ?", 4.5, 2, ana.ID))
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)

	var rows []struct {
		Title  string  `db:"title"`
		Rating float64 `db:"rating"`
	}
	require.NoError(t, c.QueryRawInto(ctx, &rows, SQL("SELECT title, rating FROM services WHERE category = ?", "design")))
	require.Len(t, rows, 1)
	assert.Equal(t, "Logo", rows[0].Title)
	assert.InDelta(t, 4.5, rows[0].Rating, 1e-9)

	svc, err := c.Service.FindFirstOrThrow(ServiceFindManyArgs{}).Exec(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, svc.TotalReviews)
}
