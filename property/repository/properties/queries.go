package properties

import (
	"context"

	"github.com/jackc/pgx/v5/pgtype"
)

type Apartment struct {
	ID               int64
	BuildingID       int64
	Name             string
	Price            pgtype.Numeric
	ElectricityPrice pgtype.Numeric
	WaterPrice       pgtype.Numeric
}

type Building struct {
	ID      int64
	Name    string
	Address pgtype.Text
}

type Tenant struct {
	ID          int64
	FullName    string
	Phone       pgtype.Text
	ApartmentID pgtype.Int8
}

type BuildingExpense struct {
	ID          int64
	BuildingID  int64
	Description string
	Amount      pgtype.Numeric
	SpentAt     pgtype.Date
	CreatedAt   pgtype.Timestamptz
}

const apartmentColumns = `id, building_id, name, price, electricity_price, water_price`

func scanApartment(row interface{ Scan(...interface{}) error }) (Apartment, error) {
	var a Apartment
	err := row.Scan(&a.ID, &a.BuildingID, &a.Name, &a.Price, &a.ElectricityPrice, &a.WaterPrice)
	return a, err
}

const getApartment = `SELECT ` + apartmentColumns + ` FROM apartments WHERE id = $1`

func (q *Queries) GetApartment(ctx context.Context, id int64) (Apartment, error) {
	return scanApartment(q.db.QueryRow(ctx, getApartment, id))
}

const listApartments = `SELECT ` + apartmentColumns + ` FROM apartments ORDER BY building_id, name`

func (q *Queries) ListApartments(ctx context.Context) ([]Apartment, error) {
	rows, err := q.db.Query(ctx, listApartments)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []Apartment
	for rows.Next() {
		a, err := scanApartment(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, a)
	}
	return items, rows.Err()
}

const listBuildings = `SELECT id, name, address FROM buildings ORDER BY name`

func (q *Queries) ListBuildings(ctx context.Context) ([]Building, error) {
	rows, err := q.db.Query(ctx, listBuildings)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []Building
	for rows.Next() {
		var b Building
		if err := rows.Scan(&b.ID, &b.Name, &b.Address); err != nil {
			return nil, err
		}
		items = append(items, b)
	}
	return items, rows.Err()
}

const tenantColumns = `id, full_name, phone, apartment_id`

func scanTenant(row interface{ Scan(...interface{}) error }) (Tenant, error) {
	var t Tenant
	err := row.Scan(&t.ID, &t.FullName, &t.Phone, &t.ApartmentID)
	return t, err
}

const getTenant = `SELECT ` + tenantColumns + ` FROM tenants WHERE id = $1`

func (q *Queries) GetTenant(ctx context.Context, id int64) (Tenant, error) {
	return scanTenant(q.db.QueryRow(ctx, getTenant, id))
}

const listTenants = `SELECT ` + tenantColumns + ` FROM tenants ORDER BY full_name`

func (q *Queries) ListTenants(ctx context.Context) ([]Tenant, error) {
	rows, err := q.db.Query(ctx, listTenants)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []Tenant
	for rows.Next() {
		t, err := scanTenant(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, t)
	}
	return items, rows.Err()
}

const expenseColumns = `id, building_id, description, amount, spent_at, created_at`

const listBuildingExpenses = `SELECT ` + expenseColumns + ` FROM building_expenses ORDER BY spent_at DESC, id DESC`

func (q *Queries) ListBuildingExpenses(ctx context.Context) ([]BuildingExpense, error) {
	rows, err := q.db.Query(ctx, listBuildingExpenses)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []BuildingExpense
	for rows.Next() {
		var e BuildingExpense
		if err := rows.Scan(&e.ID, &e.BuildingID, &e.Description, &e.Amount, &e.SpentAt, &e.CreatedAt); err != nil {
			return nil, err
		}
		items = append(items, e)
	}
	return items, rows.Err()
}

const createBuildingExpense = `INSERT INTO building_expenses (building_id, description, amount, spent_at)
VALUES ($1, $2, $3, $4)
RETURNING ` + expenseColumns

type CreateBuildingExpenseParams struct {
	BuildingID  int64
	Description string
	Amount      pgtype.Numeric
	SpentAt     pgtype.Date
}

func (q *Queries) CreateBuildingExpense(ctx context.Context, arg CreateBuildingExpenseParams) (BuildingExpense, error) {
	row := q.db.QueryRow(ctx, createBuildingExpense, arg.BuildingID, arg.Description, arg.Amount, arg.SpentAt)
	var e BuildingExpense
	err := row.Scan(&e.ID, &e.BuildingID, &e.Description, &e.Amount, &e.SpentAt, &e.CreatedAt)
	return e, err
}
