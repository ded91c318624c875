//go:build unit

package repository_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"parkme/internal/domain/spot"
	"parkme/internal/infra"
	"parkme/internal/infra/repository"
	sqlc "parkme/internal/infra/sqlc/generated"
	"parkme/internal/pkg/errs"
	"parkme/internal/pkg/pgconv"
	repositorymock "parkme/tests/mock/repository"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestSpotRepository_Get(t *testing.T) {
	ctx := context.Background()
	spotID := uuid.New()
	bookingID := uuid.New()

	testCases := []struct {
		name       string
		setupMock  func(*repositorymock.MockSpotWriteQueries, sqlc.DBTX)
		expectKind infra.RepositoryErrorKind
		check      func(*testing.T, *spot.Spot)
	}{
		{
			name: "success: row maps to domain spot",
			setupMock: func(mock *repositorymock.MockSpotWriteQueries, db sqlc.DBTX) {
				mock.EXPECT().GetSpot(ctx, db, spotID).Return(sqlc.Spot{
					ID:               spotID,
					ZoneID:           uuid.New(),
					FacilityID:       uuid.New(),
					Number:           "A-101",
					Size:             "LARGE",
					EvCharger:        true,
					Status:           "OCCUPIED",
					CurrentBookingID: pgconv.UUIDPtrToPgtype(&bookingID),
					IsActive:         true,
					UpdatedAt:        pgconv.TimeToPgtype(time.Now()),
				}, nil)
			},
			check: func(t *testing.T, s *spot.Spot) {
				assert.Equal(t, "A-101", s.Number())
				assert.Equal(t, spot.SizeLarge, s.Size())
				assert.Equal(t, spot.StatusOccupied, s.Status())
				assert.True(t, s.Features().EVCharger)
				require.NotNil(t, s.CurrentBookingID())
				assert.Equal(t, bookingID, *s.CurrentBookingID())
			},
		},
		{
			name: "error: spot not found",
			setupMock: func(mock *repositorymock.MockSpotWriteQueries, db sqlc.DBTX) {
				mock.EXPECT().GetSpot(ctx, db, spotID).Return(sqlc.Spot{}, pgx.ErrNoRows)
			},
			expectKind: infra.KindNotFound,
		},
		{
			name: "error: database failure",
			setupMock: func(mock *repositorymock.MockSpotWriteQueries, db sqlc.DBTX) {
				mock.EXPECT().GetSpot(ctx, db, spotID).Return(sqlc.Spot{}, errors.New("connection reset"))
			},
			expectKind: infra.KindDBFailure,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockQueries := repositorymock.NewMockSpotWriteQueries(ctrl)
			mockDB := &mockDBTX{}
			repo := repository.NewSpotRepository(mockQueries, mockDB)
			tc.setupMock(mockQueries, mockDB)

			s, err := repo.Get(ctx, spotID)

			if tc.expectKind != "" {
				require.Error(t, err)
				assert.True(t, infra.IsKind(err, tc.expectKind), "expected kind [%v] but got (%v)", tc.expectKind, err)
				assert.Nil(t, s)
				return
			}
			require.NoError(t, err)
			tc.check(t, s)
		})
	}
}

func TestSpotRepository_Save(t *testing.T) {
	ctx := context.Background()
	s := spot.ReconstructSpot(uuid.New(), uuid.New(), uuid.New(), "A-101", spot.SizeMedium, spot.Features{}, spot.StatusReserved, nil, true, time.Now())

	t.Run("success: state columns written", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockQueries := repositorymock.NewMockSpotWriteQueries(ctrl)
		mockDB := &mockDBTX{}
		repo := repository.NewSpotRepository(mockQueries, mockDB)

		mockQueries.EXPECT().UpdateSpotState(ctx, mockDB, gomock.Any()).
			DoAndReturn(func(_ context.Context, _ sqlc.DBTX, arg sqlc.UpdateSpotStateParams) (int64, error) {
				assert.Equal(t, s.ID(), arg.ID)
				assert.Equal(t, "RESERVED", arg.Status)
				assert.False(t, arg.CurrentBookingID.Valid)
				return 1, nil
			})

		require.NoError(t, repo.Save(ctx, s))
	})

	t.Run("error: no row updated", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockQueries := repositorymock.NewMockSpotWriteQueries(ctrl)
		mockDB := &mockDBTX{}
		repo := repository.NewSpotRepository(mockQueries, mockDB)

		mockQueries.EXPECT().UpdateSpotState(ctx, mockDB, gomock.Any()).Return(int64(0), nil)

		err := repo.Save(ctx, s)
		require.Error(t, err)
		assert.True(t, errs.Is(err, errs.ErrNotFound))
	})
}

func TestSpotRepository_RecountAvailability(t *testing.T) {
	ctx := context.Background()
	zoneID := uuid.New()
	facilityID := uuid.New()

	t.Run("success: zone locked and recounted before facility", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockQueries := repositorymock.NewMockSpotWriteQueries(ctrl)
		mockDB := &mockDBTX{}
		repo := repository.NewSpotRepository(mockQueries, mockDB)

		gomock.InOrder(
			mockQueries.EXPECT().LockZone(ctx, mockDB, zoneID).Return(facilityID, nil),
			mockQueries.EXPECT().RecountZone(ctx, mockDB, zoneID).Return(nil),
			mockQueries.EXPECT().LockFacility(ctx, mockDB, facilityID).Return(facilityID, nil),
			mockQueries.EXPECT().RecountFacility(ctx, mockDB, facilityID).Return(nil),
		)

		require.NoError(t, repo.RecountAvailability(ctx, zoneID))
	})

	t.Run("error: unknown zone", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockQueries := repositorymock.NewMockSpotWriteQueries(ctrl)
		mockDB := &mockDBTX{}
		repo := repository.NewSpotRepository(mockQueries, mockDB)

		mockQueries.EXPECT().LockZone(ctx, mockDB, zoneID).Return(uuid.Nil, pgx.ErrNoRows)

		err := repo.RecountAvailability(ctx, zoneID)
		require.Error(t, err)
		assert.True(t, infra.IsKind(err, infra.KindNotFound))
	})

	lockNotAvailable := &pgconn.PgError{Code: "55P03", Message: "canceling statement due to lock timeout"}

	t.Run("error: zone lock timeout", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockQueries := repositorymock.NewMockSpotWriteQueries(ctrl)
		mockDB := &mockDBTX{}
		repo := repository.NewSpotRepository(mockQueries, mockDB)

		mockQueries.EXPECT().LockZone(ctx, mockDB, zoneID).Return(uuid.Nil, lockNotAvailable)

		err := repo.RecountAvailability(ctx, zoneID)
		require.Error(t, err)
		assert.True(t, infra.IsKind(err, infra.KindLockTimeout))
		assert.True(t, errs.Is(err, errs.ErrLockTimeout))
		assert.False(t, errs.Is(err, errs.ErrDatabaseOperationFailed))
	})

	t.Run("error: facility lock timeout", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockQueries := repositorymock.NewMockSpotWriteQueries(ctrl)
		mockDB := &mockDBTX{}
		repo := repository.NewSpotRepository(mockQueries, mockDB)

		gomock.InOrder(
			mockQueries.EXPECT().LockZone(ctx, mockDB, zoneID).Return(facilityID, nil),
			mockQueries.EXPECT().RecountZone(ctx, mockDB, zoneID).Return(nil),
			mockQueries.EXPECT().LockFacility(ctx, mockDB, facilityID).Return(uuid.Nil, lockNotAvailable),
		)

		err := repo.RecountAvailability(ctx, zoneID)
		require.Error(t, err)
		assert.True(t, infra.IsKind(err, infra.KindLockTimeout))
		assert.True(t, errs.Is(err, errs.ErrLockTimeout))
	})
}

type mockDBTX struct{}

func (m *mockDBTX) Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error) {
	return pgconn.CommandTag{}, nil
}

func (m *mockDBTX) Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error) {
	return nil, nil
}

func (m *mockDBTX) QueryRow(ctx context.Context, sql string, args ...any) pgx.Row {
	panic("mockDBTX.QueryRow was called unexpectedly. Use sqlc mock instead.")
}
