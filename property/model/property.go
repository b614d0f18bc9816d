package model

import (
	"time"

	"github.com/shopspring/decimal"
)

type Building struct {
	ID      int64  `json:"id"`
	Name    string `json:"name"`
	Address string `json:"address,omitempty"`
}

// Room is a rentable unit inside a building. Prices are per-month for rent
// and per-unit-consumed for utilities.
type Room struct {
	ID               int64           `json:"id"`
	BuildingID       int64           `json:"building_id"`
	Name             string          `json:"name"`
	Price            decimal.Decimal `json:"price"`
	ElectricityPrice decimal.Decimal `json:"electricity_price"`
	WaterPrice       decimal.Decimal `json:"water_price"`
}

type Tenant struct {
	ID       int64  `json:"id"`
	FullName string `json:"full_name"`
	Phone    string `json:"phone,omitempty"`
	UnitID   *int64 `json:"unit_id,omitempty"`
}

type BuildingExpense struct {
	ID          int64           `json:"id"`
	BuildingID  int64           `json:"building_id"`
	Description string          `json:"description"`
	Amount      decimal.Decimal `json:"amount"`
	SpentAt     time.Time       `json:"spent_at"`
	CreatedAt   time.Time       `json:"created_at"`
}
