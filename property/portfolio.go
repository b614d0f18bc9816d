package property

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"encore.dev/beta/errs"
	"encore.dev/rlog"

	"encore.app/property/model"
)

type ListRoomsResponse struct {
	Rooms []model.Room `json:"rooms"`
}

type ListBuildingsResponse struct {
	Buildings []model.Building `json:"buildings"`
}

type ListTenantsResponse struct {
	Tenants []model.Tenant `json:"tenants"`
}

type ListExpensesResponse struct {
	Expenses []model.BuildingExpense `json:"expenses"`
}

type CreateExpenseRequest struct {
	BuildingID  int64           `json:"building_id" validate:"required,gt=0"`
	Description string          `json:"description" validate:"required,max=500"`
	Amount      decimal.Decimal `json:"amount"`
	SpentAt     time.Time       `json:"spent_at"`
}

type ExpenseResponse struct {
	Expense model.BuildingExpense `json:"expense"`
}

//encore:api public path=/v1/rooms method=GET
func (s *Service) ListRooms(ctx context.Context) (*ListRoomsResponse, error) {
	result, err := s.portfolio.ListRooms(ctx)
	if err != nil {
		rlog.Error("failed to list rooms", "error", err)
		return nil, err
	}
	return &ListRoomsResponse{Rooms: result}, nil
}

//encore:api public path=/v1/buildings method=GET
func (s *Service) ListBuildings(ctx context.Context) (*ListBuildingsResponse, error) {
	result, err := s.portfolio.ListBuildings(ctx)
	if err != nil {
		rlog.Error("failed to list buildings", "error", err)
		return nil, err
	}
	return &ListBuildingsResponse{Buildings: result}, nil
}

//encore:api public path=/v1/tenants method=GET
func (s *Service) ListTenants(ctx context.Context) (*ListTenantsResponse, error) {
	result, err := s.portfolio.ListTenants(ctx)
	if err != nil {
		rlog.Error("failed to list tenants", "error", err)
		return nil, err
	}
	return &ListTenantsResponse{Tenants: result}, nil
}

//encore:api public path=/v1/expenses method=GET
func (s *Service) ListExpenses(ctx context.Context) (*ListExpensesResponse, error) {
	result, err := s.portfolio.ListExpenses(ctx)
	if err != nil {
		rlog.Error("failed to list building expenses", "error", err)
		return nil, err
	}
	return &ListExpensesResponse{Expenses: result}, nil
}

//encore:api public path=/v1/expenses method=POST
func (s *Service) CreateExpense(ctx context.Context, req *CreateExpenseRequest) (*ExpenseResponse, error) {
	if req.SpentAt.IsZero() {
		req.SpentAt = time.Now()
	}

	result, err := s.portfolio.CreateExpense(ctx, &model.BuildingExpense{
		BuildingID:  req.BuildingID,
		Description: req.Description,
		Amount:      req.Amount,
		SpentAt:     req.SpentAt,
	})
	if err != nil {
		rlog.Error("failed to create building expense", "error", err)
		return nil, err
	}

	return &ExpenseResponse{Expense: *result}, nil
}

// Validate implements validation for CreateExpenseRequest
func (r *CreateExpenseRequest) Validate() error {
	if err := validate.Struct(r); err != nil {
		return &errs.Error{Code: errs.InvalidArgument, Message: err.Error()}
	}
	if r.Amount.IsNegative() {
		return &errs.Error{Code: errs.InvalidArgument, Message: "amount must not be negative"}
	}
	return nil
}
