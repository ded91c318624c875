//go:build unit

package repository_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"parkme/internal/domain/booking"
	"parkme/internal/domain/pricing"
	"parkme/internal/domain/spot"
	"parkme/internal/infra"
	"parkme/internal/infra/repository"
	sqlc "parkme/internal/infra/sqlc/generated"
	"parkme/internal/pkg/errs"
	"parkme/internal/pkg/pgconv"
	repositorymock "parkme/tests/mock/repository"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newReservation(t *testing.T) *booking.Booking {
	t.Helper()
	entry := time.Date(2024, 6, 3, 14, 0, 0, 0, time.UTC)
	interval, err := booking.NewInterval(entry, entry.Add(4*time.Hour))
	require.NoError(t, err)
	estimate := pricing.MustParseMoney("16.00")
	b, err := booking.NewReservation(booking.Party{
		UserID:      uuid.New(),
		VehicleID:   uuid.New(),
		VehicleType: spot.VehicleCar,
		SpotID:      uuid.New(),
		FacilityID:  uuid.New(),
	}, interval, "PKM-0A1B2C3D", &estimate, entry.Add(-time.Hour))
	require.NoError(t, err)
	return b
}

func TestBookingRepository_Create(t *testing.T) {
	ctx := context.Background()

	testCases := []struct {
		name       string
		returnErr  error
		expectKind infra.RepositoryErrorKind
	}{
		{name: "success: booking inserted"},
		{
			name:       "error: ticket number collision",
			returnErr:  &pgconn.PgError{Code: "23505", Message: "duplicate key value violates unique constraint \"bookings_ticket_number_key\""},
			expectKind: infra.KindDuplicateKey,
		},
		{
			name:       "error: unknown vehicle",
			returnErr:  &pgconn.PgError{Code: "23503", Message: "insert or update on table \"bookings\" violates foreign key constraint"},
			expectKind: infra.KindForeignKeyViolated,
		},
		{
			name:       "error: database failure",
			returnErr:  errors.New("connection reset"),
			expectKind: infra.KindDBFailure,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			mockQueries := repositorymock.NewMockBookingWriteQueries(ctrl)
			mockDB := &mockDBTX{}
			repo := repository.NewBookingRepository(mockQueries, mockDB)
			b := newReservation(t)

			mockQueries.EXPECT().CreateBooking(ctx, mockDB, gomock.Any()).
				DoAndReturn(func(_ context.Context, _ sqlc.DBTX, arg sqlc.CreateBookingParams) error {
					assert.Equal(t, b.ID(), arg.ID)
					assert.Equal(t, "PKM-0A1B2C3D", arg.TicketNumber)
					assert.Equal(t, "CONFIRMED", arg.Status)
					assert.Equal(t, "RESERVATION", arg.BookingType)
					assert.True(t, arg.ExpectedExit.Valid)
					assert.Equal(t, int64(1600), arg.EstimatedPriceCents.Int64)
					assert.False(t, arg.FinalPriceCents.Valid)
					return tc.returnErr
				})

			err := repo.Create(ctx, b)
			if tc.expectKind == "" {
				require.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.True(t, infra.IsKind(err, tc.expectKind), "expected kind [%v] but got (%v)", tc.expectKind, err)
		})
	}
}

func TestBookingRepository_Update(t *testing.T) {
	ctx := context.Background()

	t.Run("success: transition columns written", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockQueries := repositorymock.NewMockBookingWriteQueries(ctrl)
		mockDB := &mockDBTX{}
		repo := repository.NewBookingRepository(mockQueries, mockDB)
		b := newReservation(t)
		require.NoError(t, b.Cancel(time.Date(2024, 6, 3, 13, 0, 0, 0, time.UTC)))

		mockQueries.EXPECT().UpdateBooking(ctx, mockDB, gomock.Any()).
			DoAndReturn(func(_ context.Context, _ sqlc.DBTX, arg sqlc.UpdateBookingParams) (int64, error) {
				assert.Equal(t, "CANCELLED", arg.Status)
				assert.False(t, arg.ActualExit.Valid)
				return 1, nil
			})

		require.NoError(t, repo.Update(ctx, b))
	})

	t.Run("success: extension moves exit and estimate", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockQueries := repositorymock.NewMockBookingWriteQueries(ctrl)
		mockDB := &mockDBTX{}
		repo := repository.NewBookingRepository(mockQueries, mockDB)
		b := newReservation(t)
		newExit := time.Date(2024, 6, 3, 20, 0, 0, 0, time.UTC)
		_, err := b.Extend(newExit, pricing.MustParseMoney("24.00"), time.Date(2024, 6, 3, 13, 0, 0, 0, time.UTC))
		require.NoError(t, err)

		mockQueries.EXPECT().UpdateBooking(ctx, mockDB, gomock.Any()).
			DoAndReturn(func(_ context.Context, _ sqlc.DBTX, arg sqlc.UpdateBookingParams) (int64, error) {
				assert.Equal(t, "CONFIRMED", arg.Status)
				assert.True(t, newExit.Equal(pgconv.TimeFromPgtype(arg.ExpectedExit)))
				assert.Equal(t, int64(2400), arg.EstimatedPriceCents.Int64)
				return 1, nil
			})

		require.NoError(t, repo.Update(ctx, b))
	})

	t.Run("error: booking vanished", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockQueries := repositorymock.NewMockBookingWriteQueries(ctrl)
		mockDB := &mockDBTX{}
		repo := repository.NewBookingRepository(mockQueries, mockDB)

		mockQueries.EXPECT().UpdateBooking(ctx, mockDB, gomock.Any()).Return(int64(0), nil)

		err := repo.Update(ctx, newReservation(t))
		require.Error(t, err)
		assert.True(t, errs.Is(err, errs.ErrNotFound))
	})
}

func TestBookingRepository_AddExtension(t *testing.T) {
	ctx := context.Background()
	ext := &booking.Extension{
		ID:              uuid.New(),
		BookingID:       uuid.New(),
		PreviousExit:    time.Date(2024, 6, 3, 18, 0, 0, 0, time.UTC),
		NewExit:         time.Date(2024, 6, 3, 20, 0, 0, 0, time.UTC),
		AdditionalPrice: pricing.MustParseMoney("8.00"),
		RequestedAt:     time.Date(2024, 6, 3, 13, 0, 0, 0, time.UTC),
	}

	testCases := []struct {
		name       string
		returnErr  error
		expectKind infra.RepositoryErrorKind
	}{
		{name: "success: extension recorded"},
		{
			name:       "error: booking removed",
			returnErr:  &pgconn.PgError{Code: "23503", Message: "insert or update on table \"booking_extensions\" violates foreign key constraint"},
			expectKind: infra.KindForeignKeyViolated,
		},
		{
			name:       "error: database failure",
			returnErr:  errors.New("connection reset"),
			expectKind: infra.KindDBFailure,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			mockQueries := repositorymock.NewMockBookingWriteQueries(ctrl)
			mockDB := &mockDBTX{}
			repo := repository.NewBookingRepository(mockQueries, mockDB)

			mockQueries.EXPECT().CreateBookingExtension(ctx, mockDB, gomock.Any()).
				DoAndReturn(func(_ context.Context, _ sqlc.DBTX, arg sqlc.CreateBookingExtensionParams) error {
					assert.Equal(t, ext.ID, arg.ID)
					assert.Equal(t, ext.BookingID, arg.BookingID)
					assert.True(t, ext.PreviousExit.Equal(pgconv.TimeFromPgtype(arg.PreviousExit)))
					assert.True(t, ext.NewExit.Equal(pgconv.TimeFromPgtype(arg.NewExit)))
					assert.Equal(t, int64(800), arg.AdditionalPriceCents)
					return tc.returnErr
				})

			err := repo.AddExtension(ctx, ext)
			if tc.expectKind == "" {
				require.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.True(t, infra.IsKind(err, tc.expectKind), "expected kind [%v] but got (%v)", tc.expectKind, err)
		})
	}
}
