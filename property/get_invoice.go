package property

import (
	"context"

	"encore.dev/beta/errs"
	"encore.dev/rlog"

	"encore.app/property/model"
)

type ListInvoicesResponse struct {
	Invoices []model.Invoice `json:"invoices"`
}

//encore:api public path=/v1/invoices/:id method=GET
func (s *Service) GetInvoice(ctx context.Context, id int64) (*InvoiceResponse, error) {
	if id <= 0 {
		return nil, &errs.Error{Code: errs.InvalidArgument, Message: "invalid invoice ID"}
	}

	result, err := s.invoices.Get(ctx, id)
	if err != nil {
		rlog.Error("failed to get invoice", "error", err, "id", id)
		return nil, err
	}

	return &InvoiceResponse{
		Invoice: *result,
	}, nil
}

//encore:api public path=/v1/invoices method=GET
func (s *Service) ListInvoices(ctx context.Context) (*ListInvoicesResponse, error) {
	result, err := s.invoices.List(ctx)
	if err != nil {
		rlog.Error("failed to list invoices", "error", err)
		return nil, err
	}

	return &ListInvoicesResponse{
		Invoices: result,
	}, nil
}
