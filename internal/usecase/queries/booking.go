package queries

import (
	"context"

	"parkme/internal/domain/booking"
	"parkme/internal/usecase/readmodel"

	"github.com/google/uuid"
)

type BookingReadStore interface {
	FindBookingByID(ctx context.Context, id uuid.UUID) (*readmodel.BookingView, error)
	FindBookingByTicket(ctx context.Context, ticket string) (*readmodel.BookingView, error)
	ListBookingsByUser(ctx context.Context, userID uuid.UUID, filter readmodel.BookingFilter) ([]*readmodel.BookingView, error)
}

type BookingQueries interface {
	GetByID(ctx context.Context, id uuid.UUID) (*readmodel.BookingView, error)
	GetByTicket(ctx context.Context, ticket string) (*readmodel.BookingView, error)
	ListByUser(ctx context.Context, userID uuid.UUID, status *string, cursor *Cursor, limit int) ([]*readmodel.BookingView, *Cursor, error)
}

type bookingQueriesImpl struct {
	store BookingReadStore
}

func NewBookingQueries(store BookingReadStore) BookingQueries {
	return &bookingQueriesImpl{store: store}
}

func (q *bookingQueriesImpl) GetByID(ctx context.Context, id uuid.UUID) (*readmodel.BookingView, error) {
	return q.store.FindBookingByID(ctx, id)
}

func (q *bookingQueriesImpl) GetByTicket(ctx context.Context, ticket string) (*readmodel.BookingView, error) {
	t, err := booking.ParseTicketNumber(ticket)
	if err != nil {
		return nil, err
	}
	return q.store.FindBookingByTicket(ctx, t.String())
}

func (q *bookingQueriesImpl) ListByUser(ctx context.Context, userID uuid.UUID, status *string, cursor *Cursor, limit int) ([]*readmodel.BookingView, *Cursor, error) {
	limit = ValidateLimit(limit)
	filter := readmodel.BookingFilter{Limit: limit + 1}

	if status != nil && *status != "" {
		s, err := booking.ParseStatus(*status)
		if err != nil {
			return nil, nil, err
		}
		v := s.String()
		filter.Status = &v
	}
	if cursor != nil && cursor.After != "" {
		createdAt, id, err := DecodeAfterCursor(cursor.After)
		if err != nil {
			return nil, nil, err
		}
		filter.AfterCreatedAt = &createdAt
		filter.AfterID = id
	}

	rows, err := q.store.ListBookingsByUser(ctx, userID, filter)
	if err != nil {
		return nil, nil, err
	}

	var next *Cursor
	if len(rows) > limit {
		last := rows[limit-1]
		next = &Cursor{After: EncodeAfterCursor(last.CreatedAt, last.ID)}
		rows = rows[:limit]
	}
	return rows, next, nil
}
