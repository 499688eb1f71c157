package builder

import (
	"encoding/json"
	"io"
	"testing"
	"time"

	"github.com/carlosnayan/prisma-go-marketplace/internal/logger"
	testutil "github.com/carlosnayan/prisma-go-marketplace/internal/testing"
)

var (
	userModel = &Model{
		Name:  "User",
		Table: "users",
		Fields: []Field{
			{Name: "id", Column: "id", Type: TypeString, Default: Default{Kind: DefaultUUID}},
			{Name: "name", Column: "name", Type: TypeString},
			{Name: "email", Column: "email", Type: TypeString},
			{Name: "role", Column: "role", Type: TypeEnum, Default: Default{Kind: DefaultValue, Value: "CLIENT"}},
			{Name: "bio", Column: "bio", Type: TypeString, Optional: true},
			{Name: "skills", Column: "skills", Type: TypeJSON},
			{Name: "hourlyRate", Column: "hourly_rate", Type: TypeFloat, Optional: true},
			{Name: "createdAt", Column: "created_at", Type: TypeDateTime, Default: Default{Kind: DefaultNow}},
		},
		Relations: []Relation{
			{Name: "services", Model: "Service", List: true, Fields: []string{"id"}, References: []string{"freelancerId"}},
		},
		PrimaryKey: []string{"id"},
		Uniques:    [][]string{{"email"}},
	}
	serviceModel = &Model{
		Name:  "Service",
		Table: "services",
		Fields: []Field{
			{Name: "id", Column: "id", Type: TypeString, Default: Default{Kind: DefaultUUID}},
			{Name: "freelancerId", Column: "freelancer_id", Type: TypeString},
			{Name: "title", Column: "title", Type: TypeString},
			{Name: "price", Column: "price", Type: TypeFloat},
			{Name: "deliveryDays", Column: "delivery_days", Type: TypeInt},
			{Name: "rating", Column: "rating", Type: TypeFloat, Default: Default{Kind: DefaultValue, Value: 0.0}},
			{Name: "createdAt", Column: "created_at", Type: TypeDateTime, Default: Default{Kind: DefaultNow}},
		},
		Relations: []Relation{
			{Name: "freelancer", Model: "User", Owner: true, Fields: []string{"freelancerId"}, References: []string{"id"}},
		},
		PrimaryKey: []string{"id"},
		Uniques:    [][]string{{"freelancerId", "title"}},
	}
	_ = NewSchema(userModel, serviceModel)
)

var testDDL = []string{
	`CREATE TABLE "users" (
		"id" TEXT NOT NULL PRIMARY KEY,
		"name" TEXT NOT NULL,
		"email" TEXT NOT NULL UNIQUE,
		"role" TEXT NOT NULL DEFAULT 'CLIENT',
		"bio" TEXT,
		"skills" TEXT NOT NULL,
		"hourly_rate" REAL,
		"created_at" DATETIME NOT NULL
	)`,
	`CREATE TABLE "services" (
		"id" TEXT NOT NULL PRIMARY KEY,
		"freelancer_id" TEXT NOT NULL REFERENCES "users" ("id") ON DELETE CASCADE,
		"title" TEXT NOT NULL,
		"price" REAL NOT NULL,
		"delivery_days" INTEGER NOT NULL,
		"rating" REAL NOT NULL DEFAULT 0,
		"created_at" DATETIME NOT NULL,
		UNIQUE ("freelancer_id", "title")
	)`,
}

type testUser struct {
	ID         string          `db:"id" json:"id"`
	Name       string          `db:"name" json:"name"`
	Email      string          `db:"email" json:"email"`
	Role       string          `db:"role" json:"role"`
	Bio        *string         `db:"bio" json:"bio"`
	Skills     json.RawMessage `db:"skills" json:"skills"`
	HourlyRate *float64        `db:"hourly_rate" json:"hourlyRate"`
	CreatedAt  time.Time       `db:"created_at" json:"createdAt"`

	Services []testService `json:"services,omitempty"`
	Count    *testUserCount `json:"_count,omitempty"`
}

type testUserCount struct {
	Services int `json:"services"`
}

type testService struct {
	ID           string    `db:"id" json:"id"`
	FreelancerID string    `db:"freelancer_id" json:"freelancerId"`
	Title        string    `db:"title" json:"title"`
	Price        float64   `db:"price" json:"price"`
	DeliveryDays int       `db:"delivery_days" json:"deliveryDays"`
	Rating       float64   `db:"rating" json:"rating"`
	CreatedAt    time.Time `db:"created_at" json:"createdAt"`

	Freelancer *testUser `json:"freelancer,omitempty"`
}

type userCreate struct {
	Name       string
	Email      string
	Skills     json.RawMessage
	Role       *string
	HourlyRate *float64
	Services   *NestedMany[serviceCreate, serviceUnique]
}

func (u userCreate) Data() (*WriteData, error) {
	d := NewWriteData()
	d.Set("name", u.Name)
	d.Set("email", u.Email)
	d.Set("skills", u.Skills)
	SetOptional(d, "role", u.Role)
	SetOptional(d, "hourlyRate", u.HourlyRate)
	ApplyNestedMany(d, "services", u.Services)
	return d, d.Err()
}

type userUnique struct {
	ID    *string
	Email *string
}

func (u userUnique) UniqueCond() (Condition, error) {
	var conds []Condition
	if u.ID != nil {
		conds = append(conds, Equals("id", *u.ID))
	}
	if u.Email != nil {
		conds = append(conds, Equals("email", *u.Email))
	}
	if len(conds) == 0 {
		return nil, UniqueRequired("User")
	}
	return And(conds...), nil
}

type serviceCreate struct {
	FreelancerID *string
	Title        string
	Price        float64
	DeliveryDays int
	Freelancer   *NestedOne[userCreate, userUnique]
}

func (s serviceCreate) Data() (*WriteData, error) {
	d := NewWriteData()
	SetOptional(d, "freelancerId", s.FreelancerID)
	d.Set("title", s.Title)
	d.Set("price", s.Price)
	d.Set("deliveryDays", s.DeliveryDays)
	ApplyNestedOne(d, "freelancer", s.Freelancer)
	return d, d.Err()
}

type serviceUnique struct {
	ID *string
}

func (s serviceUnique) UniqueCond() (Condition, error) {
	if s.ID == nil {
		return nil, UniqueRequired("Service")
	}
	return Equals("id", *s.ID), nil
}

func newTestEngine(t *testing.T) *Engine {
	t.Helper()
	db, cleanup := testutil.SetupSQLite(t)
	t.Cleanup(cleanup)
	testutil.ExecAll(t, db, testDDL...)
	e := NewEngine("sqlite", logger.NewLogger(nil, io.Discard))
	e.Attach(db)
	return e
}

func skills(s ...string) json.RawMessage {
	b, _ := json.Marshal(s)
	return b
}
