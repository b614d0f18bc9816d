package property

import (
	"context"

	"encore.dev/beta/errs"
	"encore.dev/rlog"

	"encore.app/property/model"
)

type LatestReadingsResponse struct {
	Readings model.LatestReadings `json:"readings"`
}

//encore:api public path=/v1/units/:id/readings/latest method=GET
func (s *Service) LatestReadings(ctx context.Context, id int64) (*LatestReadingsResponse, error) {
	if id <= 0 {
		return nil, &errs.Error{Code: errs.InvalidArgument, Message: "invalid unit ID"}
	}

	latest, err := s.readings.Latest(ctx, id)
	if err != nil {
		rlog.Error("failed to resolve latest readings", "error", err, "unit_id", id)
		return nil, err
	}

	return &LatestReadingsResponse{Readings: latest}, nil
}
