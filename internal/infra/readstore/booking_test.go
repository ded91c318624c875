//go:build unit

package readstore_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"parkme/internal/infra"
	"parkme/internal/infra/readstore"
	sqlc "parkme/internal/infra/sqlc/generated"
	"parkme/internal/usecase/readmodel"
	readstoremock "parkme/tests/mock/readstore"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

var (
	errDBConnectionLost = errors.New("database connection lost")
)

func bookingViewRow(id uuid.UUID, createdAt time.Time) sqlc.GetBookingViewRow {
	return sqlc.GetBookingViewRow{
		ID:                  id,
		TicketNumber:        "PKM-0A1B2C3D",
		UserID:              uuid.New(),
		VehicleID:           uuid.New(),
		VehicleType:         "CAR",
		SpotID:              uuid.New(),
		SpotNumber:          "A-101",
		FacilityID:          uuid.New(),
		BookingType:         "RESERVATION",
		Status:              "COMPLETED",
		EntryTime:           pgtype.Timestamptz{Time: createdAt.Add(time.Hour), Valid: true},
		ExpectedExit:        pgtype.Timestamptz{Time: createdAt.Add(3 * time.Hour), Valid: true},
		ActualExit:          pgtype.Timestamptz{Time: createdAt.Add(4 * time.Hour), Valid: true},
		EstimatedPriceCents: pgtype.Int8{Int64: 800, Valid: true},
		FinalPriceCents:     pgtype.Int8{Int64: 1400, Valid: true},
		PenaltyCents:        200,
		CreatedAt:           pgtype.Timestamptz{Time: createdAt, Valid: true},
		UpdatedAt:           pgtype.Timestamptz{Time: createdAt, Valid: true},
	}
}

func TestBookingReadStore_FindBookingByID(t *testing.T) {
	ctx := context.Background()
	bookingID := uuid.New()
	createdAt := time.Date(2024, 6, 3, 9, 0, 0, 0, time.UTC)

	testCases := []struct {
		name       string
		setupMock  func(*readstoremock.MockBookingViewQueries)
		expectKind infra.RepositoryErrorKind
	}{
		{
			name: "success: booking found",
			setupMock: func(mock *readstoremock.MockBookingViewQueries) {
				mock.EXPECT().GetBookingView(ctx, gomock.Any(), bookingID).Return(bookingViewRow(bookingID, createdAt), nil)
			},
		},
		{
			name: "error: booking not found",
			setupMock: func(mock *readstoremock.MockBookingViewQueries) {
				mock.EXPECT().GetBookingView(ctx, gomock.Any(), bookingID).Return(sqlc.GetBookingViewRow{}, pgx.ErrNoRows)
			},
			expectKind: infra.KindNotFound,
		},
		{
			name: "error: database error",
			setupMock: func(mock *readstoremock.MockBookingViewQueries) {
				mock.EXPECT().GetBookingView(ctx, gomock.Any(), bookingID).Return(sqlc.GetBookingViewRow{}, errDBConnectionLost)
			},
			expectKind: infra.KindDBFailure,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockQueries := readstoremock.NewMockBookingViewQueries(ctrl)
			store := readstore.NewBookingReadStore(mockQueries, &mockDBTX{})
			tc.setupMock(mockQueries)

			view, err := store.FindBookingByID(ctx, bookingID)

			if tc.expectKind != "" {
				require.Error(t, err)
				assert.True(t, infra.IsKind(err, tc.expectKind), "expected kind [%v] but got (%v)", tc.expectKind, err)
				assert.Nil(t, view)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, bookingID, view.ID)
			assert.Equal(t, "A-101", view.SpotNumber)
			require.NotNil(t, view.FinalPrice)
			assert.Equal(t, "14.00", view.FinalPrice.String())
			assert.Equal(t, "2.00", view.Penalty.String())
			assert.True(t, view.IsOverstay())
		})
	}
}

func TestBookingReadStore_FindBookingByTicket(t *testing.T) {
	ctx := context.Background()
	bookingID := uuid.New()

	ctrl := gomock.NewController(t)
	mockQueries := readstoremock.NewMockBookingViewQueries(ctrl)
	store := readstore.NewBookingReadStore(mockQueries, &mockDBTX{})

	row := sqlc.GetBookingViewByTicketRow(bookingViewRow(bookingID, time.Now()))
	mockQueries.EXPECT().GetBookingViewByTicket(ctx, gomock.Any(), "PKM-0A1B2C3D").Return(row, nil)
	mockQueries.EXPECT().GetBookingViewByTicket(ctx, gomock.Any(), "PKM-FFFFFFFF").Return(sqlc.GetBookingViewByTicketRow{}, pgx.ErrNoRows)

	view, err := store.FindBookingByTicket(ctx, "PKM-0A1B2C3D")
	require.NoError(t, err)
	assert.Equal(t, bookingID, view.ID)

	_, err = store.FindBookingByTicket(ctx, "PKM-FFFFFFFF")
	require.Error(t, err)
	assert.True(t, infra.IsKind(err, infra.KindNotFound))
}

func TestBookingReadStore_ListBookingsByUser(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()
	active := "ACTIVE"
	after := time.Date(2024, 6, 3, 9, 0, 0, 0, time.UTC)
	afterID := uuid.New()

	t.Run("success: first page uses the unbounded query", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockQueries := readstoremock.NewMockBookingViewQueries(ctrl)
		store := readstore.NewBookingReadStore(mockQueries, &mockDBTX{})

		mockQueries.EXPECT().ListBookingViewsByUserFirstPage(ctx, gomock.Any(), sqlc.ListBookingViewsByUserFirstPageParams{
			UserID:  userID,
			Status:  pgtype.Text{String: active, Valid: true},
			MaxRows: 2,
		}).Return([]sqlc.ListBookingViewsByUserFirstPageRow{
			sqlc.ListBookingViewsByUserFirstPageRow(bookingViewRow(uuid.New(), after)),
			sqlc.ListBookingViewsByUserFirstPageRow(bookingViewRow(uuid.New(), after.Add(-time.Minute))),
		}, nil)

		views, err := store.ListBookingsByUser(ctx, userID, readmodel.BookingFilter{Status: &active, Limit: 2})
		require.NoError(t, err)
		assert.Len(t, views, 2)
	})

	t.Run("success: later pages pass the keyset bound", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockQueries := readstoremock.NewMockBookingViewQueries(ctrl)
		store := readstore.NewBookingReadStore(mockQueries, &mockDBTX{})

		mockQueries.EXPECT().ListBookingViewsByUserKeyset(ctx, gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, _ sqlc.DBTX, arg sqlc.ListBookingViewsByUserKeysetParams) ([]sqlc.ListBookingViewsByUserKeysetRow, error) {
				assert.Equal(t, userID, arg.UserID)
				assert.False(t, arg.Status.Valid)
				assert.True(t, arg.AfterCreatedAt.Time.Equal(after))
				assert.Equal(t, afterID, arg.AfterID)
				assert.Equal(t, int32(10), arg.MaxRows)
				return nil, nil
			})

		views, err := store.ListBookingsByUser(ctx, userID, readmodel.BookingFilter{Limit: 10, AfterCreatedAt: &after, AfterID: afterID})
		require.NoError(t, err)
		assert.Empty(t, views)
	})

	t.Run("error: database error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockQueries := readstoremock.NewMockBookingViewQueries(ctrl)
		store := readstore.NewBookingReadStore(mockQueries, &mockDBTX{})

		mockQueries.EXPECT().ListBookingViewsByUserFirstPage(ctx, gomock.Any(), gomock.Any()).Return(nil, errDBConnectionLost)

		_, err := store.ListBookingsByUser(ctx, userID, readmodel.BookingFilter{Limit: 10})
		require.Error(t, err)
		assert.True(t, infra.IsKind(err, infra.KindDBFailure))
	})
}

func TestBookingReadStore_NoShowCandidates(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2024, 6, 3, 15, 0, 0, 0, time.UTC)
	ids := []uuid.UUID{uuid.New(), uuid.New()}

	ctrl := gomock.NewController(t)
	mockQueries := readstoremock.NewMockBookingViewQueries(ctrl)
	store := readstore.NewBookingReadStore(mockQueries, &mockDBTX{})

	mockQueries.EXPECT().ListNoShowCandidates(ctx, gomock.Any(), sqlc.ListNoShowCandidatesParams{
		GraceSeconds: 900,
		Now:          pgtype.Timestamptz{Time: now, Valid: true},
		MaxRows:      50,
	}).Return(ids, nil)

	got, err := store.NoShowCandidates(ctx, now, 15*time.Minute, 50)
	require.NoError(t, err)
	assert.Equal(t, ids, got)
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
