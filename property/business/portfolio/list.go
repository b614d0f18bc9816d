package portfolio

import (
	"context"

	"encore.dev/beta/errs"

	"encore.app/property/cache"
	"encore.app/property/model"
	"encore.app/property/repository/pgconv"
	"encore.app/property/repository/properties"
)

func (b *business) ListRooms(ctx context.Context) ([]model.Room, error) {
	return cache.GetAs(ctx, b.cacheStore, cache.KeyRooms, func(ctx context.Context) ([]model.Room, error) {
		rows, err := b.propertyRepo.ListApartments(ctx)
		if err != nil {
			return nil, &errs.Error{Code: errs.Internal, Message: "failed to list rooms"}
		}
		result := make([]model.Room, len(rows))
		for i, row := range rows {
			result[i] = convertDBRoomToModel(row)
		}
		return result, nil
	})
}

func (b *business) GetRoom(ctx context.Context, id int64) (*model.Room, error) {
	rooms, err := b.ListRooms(ctx)
	if err != nil {
		return nil, err
	}
	for i := range rooms {
		if rooms[i].ID == id {
			room := rooms[i]
			return &room, nil
		}
	}
	return nil, &errs.Error{Code: errs.NotFound, Message: "room not found"}
}

func (b *business) ListBuildings(ctx context.Context) ([]model.Building, error) {
	return cache.GetAs(ctx, b.cacheStore, cache.KeyBuildings, func(ctx context.Context) ([]model.Building, error) {
		rows, err := b.propertyRepo.ListBuildings(ctx)
		if err != nil {
			return nil, &errs.Error{Code: errs.Internal, Message: "failed to list buildings"}
		}
		result := make([]model.Building, len(rows))
		for i, row := range rows {
			result[i] = model.Building{
				ID:      row.ID,
				Name:    row.Name,
				Address: row.Address.String,
			}
		}
		return result, nil
	})
}

func (b *business) ListTenants(ctx context.Context) ([]model.Tenant, error) {
	return cache.GetAs(ctx, b.cacheStore, cache.KeyTenants, func(ctx context.Context) ([]model.Tenant, error) {
		rows, err := b.propertyRepo.ListTenants(ctx)
		if err != nil {
			return nil, &errs.Error{Code: errs.Internal, Message: "failed to list tenants"}
		}
		result := make([]model.Tenant, len(rows))
		for i, row := range rows {
			result[i] = model.Tenant{
				ID:       row.ID,
				FullName: row.FullName,
				Phone:    row.Phone.String,
				UnitID:   pgconv.Int8Ptr(row.ApartmentID),
			}
		}
		return result, nil
	})
}

func (b *business) GetTenant(ctx context.Context, id int64) (*model.Tenant, error) {
	tenants, err := b.ListTenants(ctx)
	if err != nil {
		return nil, err
	}
	for i := range tenants {
		if tenants[i].ID == id {
			tenant := tenants[i]
			return &tenant, nil
		}
	}
	return nil, &errs.Error{Code: errs.NotFound, Message: "tenant not found"}
}

func (b *business) ListExpenses(ctx context.Context) ([]model.BuildingExpense, error) {
	return cache.GetAs(ctx, b.cacheStore, cache.KeyBuildingExpenses, func(ctx context.Context) ([]model.BuildingExpense, error) {
		rows, err := b.propertyRepo.ListBuildingExpenses(ctx)
		if err != nil {
			return nil, &errs.Error{Code: errs.Internal, Message: "failed to list building expenses"}
		}
		result := make([]model.BuildingExpense, len(rows))
		for i, row := range rows {
			result[i] = model.BuildingExpense{
				ID:          row.ID,
				BuildingID:  row.BuildingID,
				Description: row.Description,
				Amount:      pgconv.Decimal(row.Amount),
				SpentAt:     row.SpentAt.Time,
				CreatedAt:   row.CreatedAt.Time,
			}
		}
		return result, nil
	})
}

func convertDBRoomToModel(row properties.Apartment) model.Room {
	return model.Room{
		ID:               row.ID,
		BuildingID:       row.BuildingID,
		Name:             row.Name,
		Price:            pgconv.Decimal(row.Price),
		ElectricityPrice: pgconv.Decimal(row.ElectricityPrice),
		WaterPrice:       pgconv.Decimal(row.WaterPrice),
	}
}
