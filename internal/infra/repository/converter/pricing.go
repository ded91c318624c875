package converter

import (
	"encoding/json"
	"time"

	"parkme/internal/domain/pricing"
	"parkme/internal/domain/spot"
	sqlc "parkme/internal/infra/sqlc/generated"
	"parkme/internal/pkg/errs"
	"parkme/internal/pkg/pgconv"
	"parkme/internal/usecase/shared"
)

func RuleFromRow(row sqlc.ListActivePricingRulesRow) (pricing.Rule, error) {
	strategy, err := pricing.ParseStrategy(row.Strategy)
	if err != nil {
		return pricing.Rule{}, errs.Wrapf(err, "pricing rule %s", row.Name)
	}
	cfg, err := pricing.DecodeConfig(strategy, row.Config)
	if err != nil {
		return pricing.Rule{}, errs.Wrapf(err, "pricing rule %s", row.Name)
	}

	vehicleTypes := make([]spot.VehicleType, 0, len(row.VehicleTypes))
	for _, v := range row.VehicleTypes {
		vt, err := spot.ParseVehicleType(v)
		if err != nil {
			return pricing.Rule{}, errs.Wrapf(err, "pricing rule %s", row.Name)
		}
		vehicleTypes = append(vehicleTypes, vt)
	}
	sizes := make([]spot.Size, 0, len(row.SpotSizes))
	for _, s := range row.SpotSizes {
		size, err := spot.ParseSize(s)
		if err != nil {
			return pricing.Rule{}, errs.Wrapf(err, "pricing rule %s", row.Name)
		}
		sizes = append(sizes, size)
	}

	var window *pricing.TimeWindow
	if len(row.TimeWindow) > 0 && string(row.TimeWindow) != "null" {
		window = &pricing.TimeWindow{}
		if err := json.Unmarshal(row.TimeWindow, window); err != nil {
			return pricing.Rule{}, errs.Wrapf(err, "pricing rule %s window", row.Name)
		}
	}

	return pricing.Rule{
		ID:           row.ID,
		FacilityID:   row.FacilityID,
		Name:         row.Name,
		Config:       cfg,
		Priority:     int(row.Priority),
		VehicleTypes: vehicleTypes,
		SpotSizes:    sizes,
		Window:       window,
		ValidFrom:    pgconv.TimePtrFromPgtype(row.ValidFrom),
		ValidUntil:   pgconv.TimePtrFromPgtype(row.ValidUntil),
		FreeMinutes:  int(row.FreeMinutes),
		Overstay: pricing.OverstayPenalty{
			PerMinute: pricing.NewMoney(row.OverstayPerMinCents),
			Flat:      pricing.NewMoney(row.OverstayFlatCents),
		},
		Active: row.IsActive,
	}, nil
}

func FacilityPricingFromRows(facility sqlc.GetFacilityRow, rules []sqlc.ListActivePricingRulesRow) (*pricing.FacilityPricing, error) {
	loc, err := time.LoadLocation(facility.Timezone)
	if err != nil {
		return nil, errs.Wrapf(err, "facility %s timezone", facility.Name)
	}

	fp := &pricing.FacilityPricing{
		FacilityID:      facility.ID,
		Location:        loc,
		Rules:           make([]pricing.Rule, 0, len(rules)),
		DefaultFlatRate: MoneyPtrFromPgtype(facility.DefaultFlatRateCents),
		DefaultOverstay: pricing.OverstayPenalty{
			PerMinute: pricing.NewMoney(facility.DefaultOverstayPerMinCents),
			Flat:      pricing.NewMoney(facility.DefaultOverstayFlatCents),
		},
	}
	for _, row := range rules {
		r, err := RuleFromRow(row)
		if err != nil {
			return nil, err
		}
		fp.Rules = append(fp.Rules, r)
	}
	return fp, nil
}

func SubscriptionFromRow(row sqlc.Subscription) *pricing.Subscription {
	return &pricing.Subscription{
		ID:               row.ID,
		UserID:           row.UserID,
		FacilityID:       row.FacilityID,
		ExpiresAt:        pgconv.TimeFromPgtype(row.ExpiresAt),
		EntriesRemaining: pgconv.IntPtrFromPgtype(row.EntriesRemaining),
		Active:           row.IsActive,
	}
}

func VehicleFromRow(row sqlc.Vehicle) (*shared.VehicleSnapshot, error) {
	vt, err := spot.ParseVehicleType(row.VehicleType)
	if err != nil {
		return nil, errs.Wrapf(err, "vehicle %s", row.Plate)
	}
	return &shared.VehicleSnapshot{
		ID:     row.ID,
		UserID: row.UserID,
		Plate:  row.Plate,
		Type:   vt,
		Active: row.IsActive,
	}, nil
}
