package reading

import (
	"context"

	"encore.dev/beta/errs"

	"encore.app/property/cache"
	"encore.app/property/model"
	"encore.app/property/repository/pgconv"
	"encore.app/property/repository/readings"
)

// Resolver answers "what was the last recorded meter reading" per unit and
// utility kind. It reads the full readings list through the cache; invoice
// creation writes new readings and clears the key, so the answer is always
// consistent with the latest write.
type Resolver interface {
	Latest(ctx context.Context, unitID int64) (model.LatestReadings, error)
	List(ctx context.Context) ([]model.MeterReading, error)
}

type resolver struct {
	cacheStore  *cache.Store
	readingRepo readings.Querier
}

func NewResolver(cacheStore *cache.Store, readingRepo readings.Querier) Resolver {
	return &resolver{
		cacheStore:  cacheStore,
		readingRepo: readingRepo,
	}
}

// List returns every reading, newest first (stable order).
func (r *resolver) List(ctx context.Context) ([]model.MeterReading, error) {
	return cache.GetAs(ctx, r.cacheStore, cache.KeyUtilityReadings, func(ctx context.Context) ([]model.MeterReading, error) {
		rows, err := r.readingRepo.ListReadings(ctx)
		if err != nil {
			return nil, &errs.Error{Code: errs.Internal, Message: "failed to list utility readings"}
		}
		result := make([]model.MeterReading, len(rows))
		for i, row := range rows {
			result[i] = convertDBReadingToModel(row)
		}
		return result, nil
	})
}

// Latest picks the most recent reading per utility kind for one unit. A kind
// with no reading yet comes back nil; callers treat that as zero.
func (r *resolver) Latest(ctx context.Context, unitID int64) (model.LatestReadings, error) {
	all, err := r.List(ctx)
	if err != nil {
		return model.LatestReadings{}, err
	}

	var latest model.LatestReadings
	for i := range all {
		reading := all[i]
		if reading.UnitID != unitID {
			continue
		}
		switch reading.Kind {
		case model.UtilityElectricity:
			if latest.Electricity == nil {
				latest.Electricity = &reading
			}
		case model.UtilityWater:
			if latest.Water == nil {
				latest.Water = &reading
			}
		}
		if latest.Electricity != nil && latest.Water != nil {
			break
		}
	}
	return latest, nil
}

// convertDBReadingToModel converts a database UtilityReading to a domain model MeterReading
func convertDBReadingToModel(row readings.UtilityReading) model.MeterReading {
	return model.MeterReading{
		ID:          row.ID,
		UnitID:      row.ApartmentID,
		Kind:        model.UtilityKind(row.UtilityKind),
		ReadingDate: row.ReadingDate.Time,
		Value:       pgconv.Decimal(row.Value),
		Note:        pgconv.TextPtr(row.Note),
		CreatedAt:   row.CreatedAt.Time,
	}
}
