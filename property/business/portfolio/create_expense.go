package portfolio

import (
	"context"

	"github.com/jackc/pgx/v5/pgtype"

	"encore.dev/beta/errs"

	"encore.app/property/cache"
	"encore.app/property/model"
	"encore.app/property/repository/pgconv"
	"encore.app/property/repository/properties"
)

// CreateExpense records an out-of-pocket building cost and invalidates the
// cached expense list.
func (b *business) CreateExpense(ctx context.Context, expense *model.BuildingExpense) (*model.BuildingExpense, error) {
	if expense.Amount.IsNegative() {
		return nil, &errs.Error{Code: errs.InvalidArgument, Message: "amount must not be negative"}
	}

	row, err := b.propertyRepo.CreateBuildingExpense(ctx, properties.CreateBuildingExpenseParams{
		BuildingID:  expense.BuildingID,
		Description: expense.Description,
		Amount:      pgconv.Numeric(expense.Amount),
		SpentAt:     pgtype.Date{Time: expense.SpentAt, Valid: true},
	})
	if err != nil {
		return nil, &errs.Error{Code: errs.Internal, Message: "failed to create building expense"}
	}

	b.cacheStore.Clear(cache.KeyBuildingExpenses)

	return &model.BuildingExpense{
		ID:          row.ID,
		BuildingID:  row.BuildingID,
		Description: row.Description,
		Amount:      pgconv.Decimal(row.Amount),
		SpentAt:     row.SpentAt.Time,
		CreatedAt:   row.CreatedAt.Time,
	}, nil
}
