//go:build unit || e2e

package builder

import (
	"time"

	"parkme/internal/domain/pricing"
	"parkme/internal/domain/spot"
	"parkme/internal/infra/memstore"
	"parkme/internal/pkg/lock"
	"parkme/internal/usecase/shared"

	"github.com/google/uuid"
)

type spotSpec struct {
	number   string
	size     spot.Size
	features spot.Features
	status   spot.Status
}

type vehicleSpec struct {
	plate string
	kind  spot.VehicleType
}

// LotBuilder seeds a single-facility, single-zone parking lot.
type LotBuilder struct {
	FacilityID      uuid.UUID
	ZoneID          uuid.UUID
	UserID          uuid.UUID
	Location        *time.Location
	DefaultFlatRate *pricing.Money
	DefaultOverstay pricing.OverstayPenalty
	Locker          lock.Locker

	spots         []spotSpec
	vehicles      []vehicleSpec
	rules         []pricing.Rule
	subscriptions []pricing.Subscription
}

// Lot is what Build hands back: the store plus ids by human name.
type Lot struct {
	Store      *memstore.Store
	Locker     lock.Locker
	FacilityID uuid.UUID
	ZoneID     uuid.UUID
	UserID     uuid.UUID
	Spots      map[string]uuid.UUID
	Vehicles   map[string]uuid.UUID
}

// NewLotBuilder defaults to spot A-101 (MEDIUM), vehicle V1 (CAR) and an
// HOURLY rule of 4.00/h with 15 free minutes and 0.10/min overstay.
func NewLotBuilder() *LotBuilder {
	return &LotBuilder{
		FacilityID: uuid.New(),
		ZoneID:     uuid.New(),
		UserID:     uuid.New(),
		Location:   time.UTC,
		spots:      []spotSpec{{number: "A-101", size: spot.SizeMedium, status: spot.StatusAvailable}},
		vehicles:   []vehicleSpec{{plate: "V1", kind: spot.VehicleCar}},
		rules:      []pricing.Rule{HourlyRule("4.00", 15, "0.10")},
	}
}

func (b *LotBuilder) With(mutate func(*LotBuilder)) *LotBuilder {
	mutate(b)
	return b
}

func (b *LotBuilder) WithSpot(number string, size spot.Size, features spot.Features) *LotBuilder {
	b.spots = append(b.spots, spotSpec{number: number, size: size, features: features, status: spot.StatusAvailable})
	return b
}

func (b *LotBuilder) WithMaintenanceSpot(number string) *LotBuilder {
	b.spots = append(b.spots, spotSpec{number: number, size: spot.SizeMedium, status: spot.StatusMaintenance})
	return b
}

func (b *LotBuilder) WithVehicle(plate string, kind spot.VehicleType) *LotBuilder {
	b.vehicles = append(b.vehicles, vehicleSpec{plate: plate, kind: kind})
	return b
}

// WithRules replaces the default rule set.
func (b *LotBuilder) WithRules(rules ...pricing.Rule) *LotBuilder {
	b.rules = rules
	return b
}

func (b *LotBuilder) WithSubscription(expiresAt time.Time, entries *int) *LotBuilder {
	b.subscriptions = append(b.subscriptions, pricing.Subscription{
		ID:               uuid.New(),
		UserID:           b.UserID,
		ExpiresAt:        expiresAt,
		EntriesRemaining: entries,
		Active:           true,
	})
	return b
}

func (b *LotBuilder) WithLocker(l lock.Locker) *LotBuilder {
	b.Locker = l
	return b
}

func (b *LotBuilder) Build() *Lot {
	locker := b.Locker
	if locker == nil {
		locker = lock.NewKeyedMutex(lock.Options{WaitTimeout: 2 * time.Second})
	}
	store := memstore.New(locker)
	store.AddFacility(memstore.Facility{
		ID:              b.FacilityID,
		Name:            "Central Garage",
		Location:        b.Location,
		DefaultFlatRate: b.DefaultFlatRate,
		DefaultOverstay: b.DefaultOverstay,
	})
	store.AddZone(memstore.Zone{ID: b.ZoneID, FacilityID: b.FacilityID, Code: "A", Name: "Level A"})

	lot := &Lot{
		Store:      store,
		Locker:     locker,
		FacilityID: b.FacilityID,
		ZoneID:     b.ZoneID,
		UserID:     b.UserID,
		Spots:      make(map[string]uuid.UUID),
		Vehicles:   make(map[string]uuid.UUID),
	}
	for _, s := range b.spots {
		id := uuid.New()
		store.AddSpot(spot.ReconstructSpot(id, b.ZoneID, b.FacilityID, s.number, s.size, s.features, s.status, nil, true, time.Now()))
		lot.Spots[s.number] = id
	}
	for _, v := range b.vehicles {
		id := uuid.New()
		store.AddVehicle(shared.VehicleSnapshot{ID: id, UserID: b.UserID, Plate: v.plate, Type: v.kind, Active: true})
		lot.Vehicles[v.plate] = id
	}
	for _, r := range b.rules {
		r.FacilityID = b.FacilityID
		store.AddRule(r)
	}
	for _, s := range b.subscriptions {
		s.FacilityID = b.FacilityID
		store.AddSubscription(s)
	}
	return lot
}

func HourlyRule(rate string, freeMinutes int, overstayPerMinute string) pricing.Rule {
	return pricing.Rule{
		ID:          uuid.New(),
		Name:        "standard hourly",
		Config:      pricing.HourlyConfig{RatePerHour: pricing.MustParseMoney(rate)},
		Priority:    10,
		FreeMinutes: freeMinutes,
		Overstay:    pricing.OverstayPenalty{PerMinute: pricing.MustParseMoney(overstayPerMinute)},
		Active:      true,
	}
}

func SubscriptionRule() pricing.Rule {
	return pricing.Rule{
		ID:       uuid.New(),
		Name:     "monthly pass",
		Config:   pricing.SubscriptionConfig{},
		Priority: 1,
		Active:   true,
	}
}
