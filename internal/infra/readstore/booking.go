package readstore

import (
	"context"
	"time"

	"parkme/internal/domain/booking"
	"parkme/internal/infra"
	"parkme/internal/infra/repository/converter"
	sqlc "parkme/internal/infra/sqlc/generated"
	"parkme/internal/pkg/pgconv"
	"parkme/internal/usecase/readmodel"

	"github.com/google/uuid"
)

type BookingViewQueries interface {
	GetBooking(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.Booking, error)
	ListHoldingBookingsForSpot(ctx context.Context, db sqlc.DBTX, spotID uuid.UUID) ([]sqlc.Booking, error)
	TicketExists(ctx context.Context, db sqlc.DBTX, ticketNumber string) (bool, error)
	ListNoShowCandidates(ctx context.Context, db sqlc.DBTX, arg sqlc.ListNoShowCandidatesParams) ([]uuid.UUID, error)
	GetBookingView(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.GetBookingViewRow, error)
	GetBookingViewByTicket(ctx context.Context, db sqlc.DBTX, ticketNumber string) (sqlc.GetBookingViewByTicketRow, error)
	ListBookingViewsByUserFirstPage(ctx context.Context, db sqlc.DBTX, arg sqlc.ListBookingViewsByUserFirstPageParams) ([]sqlc.ListBookingViewsByUserFirstPageRow, error)
	ListBookingViewsByUserKeyset(ctx context.Context, db sqlc.DBTX, arg sqlc.ListBookingViewsByUserKeysetParams) ([]sqlc.ListBookingViewsByUserKeysetRow, error)
}

type BookingReadStore struct {
	queries BookingViewQueries
	db      sqlc.DBTX
}

func NewBookingReadStore(queries BookingViewQueries, db sqlc.DBTX) *BookingReadStore {
	return &BookingReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *BookingReadStore) FindByID(ctx context.Context, id uuid.UUID) (*booking.Booking, error) {
	row, err := r.queries.GetBooking(ctx, r.db, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("booking not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to get booking by id", err)
	}
	return converter.BookingFromRow(row)
}

func (r *BookingReadStore) HoldingForSpot(ctx context.Context, spotID uuid.UUID) ([]*booking.Booking, error) {
	rows, err := r.queries.ListHoldingBookingsForSpot(ctx, r.db, spotID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list holding bookings", err)
	}
	return converter.BookingsFromRows(rows)
}

func (r *BookingReadStore) TicketExists(ctx context.Context, ticket booking.TicketNumber) (bool, error) {
	exists, err := r.queries.TicketExists(ctx, r.db, ticket.String())
	if err != nil {
		return false, infra.WrapRepoErr("failed to check ticket number", err)
	}
	return exists, nil
}

func (r *BookingReadStore) NoShowCandidates(ctx context.Context, now time.Time, grace time.Duration, limit int) ([]uuid.UUID, error) {
	ids, err := r.queries.ListNoShowCandidates(ctx, r.db, sqlc.ListNoShowCandidatesParams{
		GraceSeconds: grace.Seconds(),
		Now:          pgconv.TimeToPgtype(now),
		MaxRows:      int32(limit), // #nosec G115 -- sweep batch size is small
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list no-show candidates", err)
	}
	return ids, nil
}

func (r *BookingReadStore) FindBookingByID(ctx context.Context, id uuid.UUID) (*readmodel.BookingView, error) {
	row, err := r.queries.GetBookingView(ctx, r.db, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("booking not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to get booking view by id", err)
	}
	return converter.BookingViewFromRow(row), nil
}

func (r *BookingReadStore) FindBookingByTicket(ctx context.Context, ticket string) (*readmodel.BookingView, error) {
	row, err := r.queries.GetBookingViewByTicket(ctx, r.db, ticket)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("booking not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to get booking view by ticket", err)
	}
	return converter.BookingViewFromRow(sqlc.GetBookingViewRow(row)), nil
}

func (r *BookingReadStore) ListBookingsByUser(ctx context.Context, userID uuid.UUID, filter readmodel.BookingFilter) ([]*readmodel.BookingView, error) {
	status := pgconv.StringPtrToPgtype(filter.Status)
	limit := int32(filter.Limit) // #nosec G115 -- bounded by queries.MaxListLimit

	if filter.AfterCreatedAt == nil {
		rows, err := r.queries.ListBookingViewsByUserFirstPage(ctx, r.db, sqlc.ListBookingViewsByUserFirstPageParams{
			UserID:  userID,
			Status:  status,
			MaxRows: limit,
		})
		if err != nil {
			return nil, infra.WrapRepoErr("failed to list bookings first page", err)
		}
		views := make([]*readmodel.BookingView, 0, len(rows))
		for _, row := range rows {
			views = append(views, converter.BookingViewFromRow(sqlc.GetBookingViewRow(row)))
		}
		return views, nil
	}

	rows, err := r.queries.ListBookingViewsByUserKeyset(ctx, r.db, sqlc.ListBookingViewsByUserKeysetParams{
		UserID:         userID,
		Status:         status,
		AfterCreatedAt: pgconv.TimeToPgtype(*filter.AfterCreatedAt),
		AfterID:        filter.AfterID,
		MaxRows:        limit,
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list bookings keyset", err)
	}
	views := make([]*readmodel.BookingView, 0, len(rows))
	for _, row := range rows {
		views = append(views, converter.BookingViewFromRow(sqlc.GetBookingViewRow(row)))
	}
	return views, nil
}
