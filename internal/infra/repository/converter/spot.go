package converter

import (
	"parkme/internal/domain/spot"
	sqlc "parkme/internal/infra/sqlc/generated"
	"parkme/internal/pkg/errs"
	"parkme/internal/pkg/pgconv"
)

func SpotFromRow(row sqlc.Spot) (*spot.Spot, error) {
	size, err := spot.ParseSize(row.Size)
	if err != nil {
		return nil, errs.Wrapf(err, "spot %s", row.Number)
	}
	status, err := spot.ParseStatus(row.Status)
	if err != nil {
		return nil, errs.Wrapf(err, "spot %s", row.Number)
	}
	features := spot.Features{
		EVCharger:  row.EvCharger,
		Accessible: row.Accessible,
		Covered:    row.Covered,
		VIP:        row.Vip,
	}
	return spot.ReconstructSpot(
		row.ID, row.ZoneID, row.FacilityID,
		row.Number,
		size,
		features,
		status,
		pgconv.UUIDPtrFromPgtype(row.CurrentBookingID),
		row.IsActive,
		pgconv.TimeFromPgtype(row.UpdatedAt),
	), nil
}

func SpotToStateParams(s *spot.Spot) sqlc.UpdateSpotStateParams {
	return sqlc.UpdateSpotStateParams{
		ID:               s.ID(),
		Status:           s.Status().String(),
		CurrentBookingID: pgconv.UUIDPtrToPgtype(s.CurrentBookingID()),
		UpdatedAt:        pgconv.TimeToPgtype(s.UpdatedAt()),
	}
}
