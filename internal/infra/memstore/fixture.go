package memstore

import (
	"encoding/json"
	"io"
	"os"
	"time"

	"parkme/internal/domain/pricing"
	"parkme/internal/domain/spot"
	"parkme/internal/pkg/errs"
	"parkme/internal/usecase/shared"

	"github.com/google/uuid"
)

type fixture struct {
	Facilities []struct {
		ID              uuid.UUID      `json:"id"`
		Name            string         `json:"name"`
		TimeZone        string         `json:"timezone"`
		DefaultFlatRate *pricing.Money `json:"default_flat_rate"`
		DefaultOverstay *penaltyJSON   `json:"default_overstay"`
	} `json:"facilities"`
	Zones []struct {
		ID         uuid.UUID `json:"id"`
		FacilityID uuid.UUID `json:"facility_id"`
		Code       string    `json:"code"`
		Name       string    `json:"name"`
	} `json:"zones"`
	Spots []struct {
		ID       uuid.UUID     `json:"id"`
		ZoneID   uuid.UUID     `json:"zone_id"`
		Number   string        `json:"number"`
		Size     string        `json:"size"`
		Features spot.Features `json:"features"`
		Status   string        `json:"status"`
		Active   *bool         `json:"active"`
	} `json:"spots"`
	Vehicles []struct {
		ID     uuid.UUID `json:"id"`
		UserID uuid.UUID `json:"user_id"`
		Plate  string    `json:"plate"`
		Type   string    `json:"type"`
	} `json:"vehicles"`
	PricingRules []struct {
		ID           uuid.UUID           `json:"id"`
		FacilityID   uuid.UUID           `json:"facility_id"`
		Name         string              `json:"name"`
		Strategy     string              `json:"strategy"`
		Config       json.RawMessage     `json:"config"`
		Priority     int                 `json:"priority"`
		VehicleTypes []spot.VehicleType  `json:"vehicle_types"`
		SpotSizes    []spot.Size         `json:"spot_sizes"`
		Window       *pricing.TimeWindow `json:"window"`
		ValidFrom    *time.Time          `json:"valid_from"`
		ValidUntil   *time.Time          `json:"valid_until"`
		FreeMinutes  int                 `json:"free_minutes"`
		Overstay     *penaltyJSON        `json:"overstay"`
		Active       *bool               `json:"active"`
	} `json:"pricing_rules"`
	Subscriptions []struct {
		ID               uuid.UUID `json:"id"`
		UserID           uuid.UUID `json:"user_id"`
		FacilityID       uuid.UUID `json:"facility_id"`
		ExpiresAt        time.Time `json:"expires_at"`
		EntriesRemaining *int      `json:"entries_remaining"`
	} `json:"subscriptions"`
}

type penaltyJSON struct {
	PerMinute pricing.Money `json:"per_minute"`
	Flat      pricing.Money `json:"flat"`
}

func (p *penaltyJSON) toDomain() pricing.OverstayPenalty {
	if p == nil {
		return pricing.OverstayPenalty{}
	}
	return pricing.OverstayPenalty{PerMinute: p.PerMinute, Flat: p.Flat}
}

func boolOr(b *bool, def bool) bool {
	if b == nil {
		return def
	}
	return *b
}

// LoadFile seeds the store from a JSON fixture on disk.
func (s *Store) LoadFile(path string) error {
	f, err := os.Open(path)
	if err != nil {
		return errs.Wrapf(err, "open seed file %s", path)
	}
	defer f.Close()
	return s.Load(f)
}

// Load seeds the store from a JSON fixture. Spot status in the fixture is
// only honoured for MAINTENANCE; everything else starts AVAILABLE.
func (s *Store) Load(r io.Reader) error {
	var fx fixture
	if err := json.NewDecoder(r).Decode(&fx); err != nil {
		return errs.Wrap(err, "decode seed fixture")
	}

	facilityOf := make(map[uuid.UUID]uuid.UUID)
	now := time.Now()

	for _, f := range fx.Facilities {
		loc := time.UTC
		if f.TimeZone != "" {
			l, err := time.LoadLocation(f.TimeZone)
			if err != nil {
				return errs.Wrapf(err, "facility %s timezone", f.Name)
			}
			loc = l
		}
		s.AddFacility(Facility{
			ID:              f.ID,
			Name:            f.Name,
			Location:        loc,
			DefaultFlatRate: f.DefaultFlatRate,
			DefaultOverstay: f.DefaultOverstay.toDomain(),
		})
	}
	for _, z := range fx.Zones {
		facilityOf[z.ID] = z.FacilityID
		s.AddZone(Zone{ID: z.ID, FacilityID: z.FacilityID, Code: z.Code, Name: z.Name})
	}
	for _, sp := range fx.Spots {
		size, err := spot.ParseSize(sp.Size)
		if err != nil {
			return errs.Wrapf(err, "spot %s", sp.Number)
		}
		status := spot.StatusAvailable
		if sp.Status == string(spot.StatusMaintenance) {
			status = spot.StatusMaintenance
		}
		facilityID, ok := facilityOf[sp.ZoneID]
		if !ok {
			return errs.Newf("spot %s references unknown zone %s", sp.Number, sp.ZoneID)
		}
		s.AddSpot(spot.ReconstructSpot(sp.ID, sp.ZoneID, facilityID, sp.Number, size, sp.Features, status, nil, boolOr(sp.Active, true), now))
	}
	for _, v := range fx.Vehicles {
		vt, err := spot.ParseVehicleType(v.Type)
		if err != nil {
			return errs.Wrapf(err, "vehicle %s", v.Plate)
		}
		s.AddVehicle(shared.VehicleSnapshot{ID: v.ID, UserID: v.UserID, Plate: v.Plate, Type: vt, Active: true})
	}
	for _, r := range fx.PricingRules {
		strategy, err := pricing.ParseStrategy(r.Strategy)
		if err != nil {
			return errs.Wrapf(err, "pricing rule %s", r.Name)
		}
		cfg, err := pricing.DecodeConfig(strategy, r.Config)
		if err != nil {
			return errs.Wrapf(err, "pricing rule %s", r.Name)
		}
		s.AddRule(pricing.Rule{
			ID:           r.ID,
			FacilityID:   r.FacilityID,
			Name:         r.Name,
			Config:       cfg,
			Priority:     r.Priority,
			VehicleTypes: r.VehicleTypes,
			SpotSizes:    r.SpotSizes,
			Window:       r.Window,
			ValidFrom:    r.ValidFrom,
			ValidUntil:   r.ValidUntil,
			FreeMinutes:  r.FreeMinutes,
			Overstay:     r.Overstay.toDomain(),
			Active:       boolOr(r.Active, true),
		})
	}
	for _, sub := range fx.Subscriptions {
		s.AddSubscription(pricing.Subscription{
			ID:               sub.ID,
			UserID:           sub.UserID,
			FacilityID:       sub.FacilityID,
			ExpiresAt:        sub.ExpiresAt,
			EntriesRemaining: sub.EntriesRemaining,
			Active:           true,
		})
	}
	return nil
}
