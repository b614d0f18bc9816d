package model

import (
	"time"

	"github.com/shopspring/decimal"
)

type UtilityKind string

const (
	UtilityElectricity UtilityKind = "electricity"
	UtilityWater       UtilityKind = "water"
)

type MeterReading struct {
	ID          int64           `json:"id"`
	UnitID      int64           `json:"unit_id"`
	Kind        UtilityKind     `json:"utility_kind"`
	ReadingDate time.Time       `json:"reading_date"`
	Value       decimal.Decimal `json:"value"`
	Note        *string         `json:"note,omitempty"`
	CreatedAt   time.Time       `json:"created_at"`
}

// LatestReadings holds the most recent reading per utility kind for one unit.
// A nil field means the unit has no reading of that kind yet; callers treat
// that as a zero starting point.
type LatestReadings struct {
	Electricity *MeterReading `json:"electricity,omitempty"`
	Water       *MeterReading `json:"water,omitempty"`
}
