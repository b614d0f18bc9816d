package properties

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

type DBTX interface {
	Exec(context.Context, string, ...interface{}) (pgconn.CommandTag, error)
	Query(context.Context, string, ...interface{}) (pgx.Rows, error)
	QueryRow(context.Context, string, ...interface{}) pgx.Row
}

type Querier interface {
	GetApartment(ctx context.Context, id int64) (Apartment, error)
	ListApartments(ctx context.Context) ([]Apartment, error)
	ListBuildings(ctx context.Context) ([]Building, error)
	GetTenant(ctx context.Context, id int64) (Tenant, error)
	ListTenants(ctx context.Context) ([]Tenant, error)
	ListBuildingExpenses(ctx context.Context) ([]BuildingExpense, error)
	CreateBuildingExpense(ctx context.Context, arg CreateBuildingExpenseParams) (BuildingExpense, error)
}

type Queries struct {
	db DBTX
}

func New(db DBTX) *Queries {
	return &Queries{db: db}
}

func (q *Queries) WithTx(tx pgx.Tx) *Queries {
	return &Queries{db: tx}
}

var _ Querier = (*Queries)(nil)
