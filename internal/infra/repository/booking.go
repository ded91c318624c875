package repository

import (
	"context"

	"parkme/internal/domain/booking"
	"parkme/internal/infra"
	"parkme/internal/infra/repository/converter"
	sqlc "parkme/internal/infra/sqlc/generated"
)

type BookingWriteQueries interface {
	CreateBooking(ctx context.Context, db sqlc.DBTX, arg sqlc.CreateBookingParams) error
	UpdateBooking(ctx context.Context, db sqlc.DBTX, arg sqlc.UpdateBookingParams) (int64, error)
	CreateBookingExtension(ctx context.Context, db sqlc.DBTX, arg sqlc.CreateBookingExtensionParams) error
}

type BookingRepository struct {
	queries BookingWriteQueries
	db      sqlc.DBTX
}

func NewBookingRepository(queries BookingWriteQueries, db sqlc.DBTX) *BookingRepository {
	return &BookingRepository{
		queries: queries,
		db:      db,
	}
}

// Create surfaces a ticket_number collision as KindDuplicateKey.
func (r *BookingRepository) Create(ctx context.Context, b *booking.Booking) error {
	if err := r.queries.CreateBooking(ctx, r.db, converter.BookingToCreateParams(b)); err != nil {
		return infra.WrapRepoErr("failed to create booking", err)
	}
	return nil
}

func (r *BookingRepository) Update(ctx context.Context, b *booking.Booking) error {
	n, err := r.queries.UpdateBooking(ctx, r.db, converter.BookingToUpdateParams(b))
	if err != nil {
		return infra.WrapRepoErr("failed to update booking", err)
	}
	if n == 0 {
		return infra.WrapRepoErr("booking not found", nil, infra.KindNotFound)
	}
	return nil
}

// AddExtension fails with KindForeignKeyViolated when the booking row is gone.
func (r *BookingRepository) AddExtension(ctx context.Context, e *booking.Extension) error {
	if err := r.queries.CreateBookingExtension(ctx, r.db, converter.ExtensionToCreateParams(e)); err != nil {
		return infra.WrapRepoErr("failed to record booking extension", err)
	}
	return nil
}
