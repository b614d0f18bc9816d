package portfolio

import (
	"context"

	"encore.app/property/cache"
	"encore.app/property/model"
	"encore.app/property/repository/properties"
)

type Business interface {
	ListRooms(ctx context.Context) ([]model.Room, error)
	GetRoom(ctx context.Context, id int64) (*model.Room, error)
	ListBuildings(ctx context.Context) ([]model.Building, error)
	ListTenants(ctx context.Context) ([]model.Tenant, error)
	GetTenant(ctx context.Context, id int64) (*model.Tenant, error)
	ListExpenses(ctx context.Context) ([]model.BuildingExpense, error)
	CreateExpense(ctx context.Context, expense *model.BuildingExpense) (*model.BuildingExpense, error)
}

// business serves the portfolio resources every page load fans out over:
// rooms, buildings, tenants, and building expenses. All reads go through the
// cache; the only write path invalidates its key.
type business struct {
	propertyRepo properties.Querier
	cacheStore   *cache.Store
}

// NewBusiness creates the portfolio business layer
func NewBusiness(propertyRepo properties.Querier, cacheStore *cache.Store) Business {
	return &business{
		propertyRepo: propertyRepo,
		cacheStore:   cacheStore,
	}
}
