package readings

import (
	"context"

	"github.com/jackc/pgx/v5/pgtype"
)

type UtilityReading struct {
	ID          int64
	ApartmentID int64
	UtilityKind string
	ReadingDate pgtype.Date
	Value       pgtype.Numeric
	Note        pgtype.Text
	CreatedAt   pgtype.Timestamptz
}

const readingColumns = `id, apartment_id, utility_kind, reading_date, value, note, created_at`

func scanReading(row interface{ Scan(...interface{}) error }) (UtilityReading, error) {
	var r UtilityReading
	err := row.Scan(&r.ID, &r.ApartmentID, &r.UtilityKind, &r.ReadingDate, &r.Value, &r.Note, &r.CreatedAt)
	return r, err
}

const createReading = `INSERT INTO utility_readings (apartment_id, utility_kind, reading_date, value, note)
VALUES ($1, $2, $3, $4, $5)
RETURNING ` + readingColumns

type CreateReadingParams struct {
	ApartmentID int64
	UtilityKind string
	ReadingDate pgtype.Date
	Value       pgtype.Numeric
	Note        pgtype.Text
}

func (q *Queries) CreateReading(ctx context.Context, arg CreateReadingParams) (UtilityReading, error) {
	row := q.db.QueryRow(ctx, createReading,
		arg.ApartmentID, arg.UtilityKind, arg.ReadingDate, arg.Value, arg.Note,
	)
	return scanReading(row)
}

// listReadings orders by reading_date descending with id as a stable
// tie-break, so "latest per kind" picks are deterministic across queries.
const listReadings = `SELECT ` + readingColumns + ` FROM utility_readings
ORDER BY reading_date DESC, id ASC`

func (q *Queries) ListReadings(ctx context.Context) ([]UtilityReading, error) {
	rows, err := q.db.Query(ctx, listReadings)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []UtilityReading
	for rows.Next() {
		r, err := scanReading(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, r)
	}
	return items, rows.Err()
}
