//go:build unit || e2e

package dbtest

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"
)

// Lot is a seeded facility with one zone of MEDIUM spots and one car.
type Lot struct {
	FacilityID uuid.UUID
	ZoneID     uuid.UUID
	SpotIDs    []uuid.UUID
	UserID     uuid.UUID
	VehicleID  uuid.UUID
}

// SeedLot inserts a UTC facility priced at a flat 10.00 by default and
// 4.00/h for cars, with an overstay penalty of 0.10 per minute.
func SeedLot(t *testing.T, db DBLike, spots int) Lot {
	t.Helper()
	ctx := context.Background()

	lot := Lot{
		FacilityID: uuid.New(),
		ZoneID:     uuid.New(),
		UserID:     uuid.New(),
		VehicleID:  uuid.New(),
	}

	_, err := db.Exec(ctx, `INSERT INTO facilities (id, name, timezone, default_flat_rate_cents, default_overstay_per_min_cents, total_spots, available_spots)
		VALUES ($1, 'Central Garage', 'UTC', 1000, 10, $2, $2)`, lot.FacilityID, spots)
	require.NoError(t, err)

	_, err = db.Exec(ctx, `INSERT INTO zones (id, facility_id, code, name, total_spots, available_spots)
		VALUES ($1, $2, 'A', 'Level A', $3, $3)`, lot.ZoneID, lot.FacilityID, spots)
	require.NoError(t, err)

	for i := range spots {
		id := uuid.New()
		_, err = db.Exec(ctx, `INSERT INTO spots (id, zone_id, facility_id, number, size)
			VALUES ($1, $2, $3, $4, 'MEDIUM')`, id, lot.ZoneID, lot.FacilityID, fmt.Sprintf("A-%02d", i+1))
		require.NoError(t, err)
		lot.SpotIDs = append(lot.SpotIDs, id)
	}

	_, err = db.Exec(ctx, `INSERT INTO vehicles (id, user_id, plate, vehicle_type)
		VALUES ($1, $2, 'B-PK 1001', 'CAR')`, lot.VehicleID, lot.UserID)
	require.NoError(t, err)

	_, err = db.Exec(ctx, `INSERT INTO pricing_rules (facility_id, name, strategy, config, priority, vehicle_types, overstay_per_min_cents)
		VALUES ($1, 'Cars hourly', 'HOURLY', '{"ratePerHour":"4.00"}', 10, '{CAR}', 10)`, lot.FacilityID)
	require.NoError(t, err)

	return lot
}

// SpotStatus reads a spot's persisted status.
func SpotStatus(t *testing.T, db DBLike, spotID uuid.UUID) string {
	t.Helper()
	var status string
	err := db.QueryRow(context.Background(), "SELECT status FROM spots WHERE id = $1", spotID).Scan(&status)
	require.NoError(t, err)
	return status
}

// AvailableSpots reads the facility counter.
func AvailableSpots(t *testing.T, db DBLike, facilityID uuid.UUID) int {
	t.Helper()
	var n int
	err := db.QueryRow(context.Background(), "SELECT available_spots FROM facilities WHERE id = $1", facilityID).Scan(&n)
	require.NoError(t, err)
	return n
}

var (
	buildTruncateOnce sync.Once
	truncateSQL       atomic.Value // string
)

// truncates all tables between subtests
func ResetDB(pool *pgxpool.Pool) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	buildTruncateOnce.Do(func() {
		rows, err := pool.Query(ctx, `
		  SELECT 'public.' || quote_ident(tablename)
		  FROM pg_tables
		  WHERE schemaname = 'public'
		    AND tablename NOT IN ('schema_migrations')`)
		if err != nil {
			truncateSQL.Store("")
			return
		}
		defer rows.Close()
		var tables []string
		for rows.Next() {
			var t string
			if err := rows.Scan(&t); err != nil {
				truncateSQL.Store("")
				return
			}
			tables = append(tables, t)
		}
		if rows.Err() != nil {
			truncateSQL.Store("")
			return
		}
		if len(tables) == 0 {
			truncateSQL.Store("SELECT 1")
			return
		}
		truncateSQL.Store("TRUNCATE " + strings.Join(tables, ", ") + " RESTART IDENTITY CASCADE;")
	})
	sqlAny := truncateSQL.Load()
	if sqlAny == nil || sqlAny.(string) == "" {
		return fmt.Errorf("failed to build TRUNCATE SQL")
	}
	if _, err := pool.Exec(ctx, sqlAny.(string)); err != nil {
		return err
	}

	return nil
}
