package converter

import (
	"parkme/internal/domain/booking"
	"parkme/internal/domain/pricing"
	"parkme/internal/domain/spot"
	sqlc "parkme/internal/infra/sqlc/generated"
	"parkme/internal/pkg/errs"
	"parkme/internal/pkg/pgconv"
	"parkme/internal/usecase/readmodel"

	"github.com/jackc/pgx/v5/pgtype"
)

func BookingToCreateParams(b *booking.Booking) sqlc.CreateBookingParams {
	return sqlc.CreateBookingParams{
		ID:                  b.ID(),
		TicketNumber:        b.TicketNumber().String(),
		UserID:              b.UserID(),
		VehicleID:           b.VehicleID(),
		VehicleType:         b.VehicleType().String(),
		SpotID:              b.SpotID(),
		FacilityID:          b.FacilityID(),
		BookingType:         b.Type().String(),
		Status:              b.Status().String(),
		EntryTime:           pgconv.TimeToPgtype(b.EntryTime()),
		ExpectedExit:        pgconv.TimePtrToPgtype(b.ExpectedExit()),
		ActualExit:          pgconv.TimePtrToPgtype(b.ActualExit()),
		EstimatedPriceCents: MoneyPtrToPgtype(b.EstimatedPrice()),
		FinalPriceCents:     MoneyPtrToPgtype(b.FinalPrice()),
		PenaltyCents:        b.Penalty().Cents(),
		AppliedRuleID:       pgconv.UUIDPtrToPgtype(b.AppliedRuleID()),
		CreatedAt:           pgconv.TimeToPgtype(b.CreatedAt()),
		UpdatedAt:           pgconv.TimeToPgtype(b.UpdatedAt()),
	}
}

// BookingToUpdateParams carries only the columns a transition may change.
func BookingToUpdateParams(b *booking.Booking) sqlc.UpdateBookingParams {
	return sqlc.UpdateBookingParams{
		ID:                  b.ID(),
		Status:              b.Status().String(),
		EntryTime:           pgconv.TimeToPgtype(b.EntryTime()),
		ExpectedExit:        pgconv.TimePtrToPgtype(b.ExpectedExit()),
		ActualExit:          pgconv.TimePtrToPgtype(b.ActualExit()),
		EstimatedPriceCents: MoneyPtrToPgtype(b.EstimatedPrice()),
		FinalPriceCents:     MoneyPtrToPgtype(b.FinalPrice()),
		PenaltyCents:        b.Penalty().Cents(),
		AppliedRuleID:       pgconv.UUIDPtrToPgtype(b.AppliedRuleID()),
		UpdatedAt:           pgconv.TimeToPgtype(b.UpdatedAt()),
	}
}

func ExtensionToCreateParams(e *booking.Extension) sqlc.CreateBookingExtensionParams {
	return sqlc.CreateBookingExtensionParams{
		ID:                   e.ID,
		BookingID:            e.BookingID,
		PreviousExit:         pgconv.TimeToPgtype(e.PreviousExit),
		NewExit:              pgconv.TimeToPgtype(e.NewExit),
		AdditionalPriceCents: e.AdditionalPrice.Cents(),
		RequestedAt:          pgconv.TimeToPgtype(e.RequestedAt),
	}
}

func BookingFromRow(row sqlc.Booking) (*booking.Booking, error) {
	status, err := booking.ParseStatus(row.Status)
	if err != nil {
		return nil, errs.Wrapf(err, "booking %s", row.ID)
	}
	bookingType, err := booking.ParseType(row.BookingType)
	if err != nil {
		return nil, errs.Wrapf(err, "booking %s", row.ID)
	}
	vehicleType, err := spot.ParseVehicleType(row.VehicleType)
	if err != nil {
		return nil, errs.Wrapf(err, "booking %s", row.ID)
	}

	return booking.ReconstructBooking(
		row.ID, row.UserID, row.VehicleID,
		vehicleType,
		row.SpotID, row.FacilityID,
		bookingType,
		status,
		booking.TicketNumber(row.TicketNumber),
		pgconv.TimeFromPgtype(row.EntryTime),
		pgconv.TimePtrFromPgtype(row.ExpectedExit), pgconv.TimePtrFromPgtype(row.ActualExit),
		MoneyPtrFromPgtype(row.EstimatedPriceCents), MoneyPtrFromPgtype(row.FinalPriceCents),
		pricing.NewMoney(row.PenaltyCents),
		pgconv.UUIDPtrFromPgtype(row.AppliedRuleID),
		pgconv.TimeFromPgtype(row.CreatedAt), pgconv.TimeFromPgtype(row.UpdatedAt),
	), nil
}

func BookingsFromRows(rows []sqlc.Booking) ([]*booking.Booking, error) {
	out := make([]*booking.Booking, 0, len(rows))
	for _, row := range rows {
		b, err := BookingFromRow(row)
		if err != nil {
			return nil, err
		}
		out = append(out, b)
	}
	return out, nil
}

// BookingViewFromRow accepts every booking view row shape; sqlc emits one
// identical struct per query and they convert to each other.
func BookingViewFromRow(row sqlc.GetBookingViewRow) *readmodel.BookingView {
	return &readmodel.BookingView{
		ID:             row.ID,
		TicketNumber:   row.TicketNumber,
		UserID:         row.UserID,
		VehicleID:      row.VehicleID,
		VehicleType:    row.VehicleType,
		SpotID:         row.SpotID,
		SpotNumber:     row.SpotNumber,
		FacilityID:     row.FacilityID,
		Type:           row.BookingType,
		Status:         row.Status,
		EntryTime:      pgconv.TimeFromPgtype(row.EntryTime),
		ExpectedExit:   pgconv.TimePtrFromPgtype(row.ExpectedExit),
		ActualExit:     pgconv.TimePtrFromPgtype(row.ActualExit),
		EstimatedPrice: MoneyPtrFromPgtype(row.EstimatedPriceCents),
		FinalPrice:     MoneyPtrFromPgtype(row.FinalPriceCents),
		Penalty:        pricing.NewMoney(row.PenaltyCents),
		CreatedAt:      pgconv.TimeFromPgtype(row.CreatedAt),
		UpdatedAt:      pgconv.TimeFromPgtype(row.UpdatedAt),
	}
}

func MoneyPtrFromPgtype(pi pgtype.Int8) *pricing.Money {
	cents := pgconv.Int64PtrFromPgtype(pi)
	if cents == nil {
		return nil
	}
	m := pricing.NewMoney(*cents)
	return &m
}

func MoneyPtrToPgtype(m *pricing.Money) pgtype.Int8 {
	if m == nil {
		return pgtype.Int8{Valid: false}
	}
	cents := m.Cents()
	return pgconv.Int64PtrToPgtype(&cents)
}
