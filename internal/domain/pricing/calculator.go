package pricing

import (
	"sort"
	"time"

	"parkme/internal/domain/spot"
	"parkme/internal/pkg/errs"

	"github.com/google/uuid"
)

const defaultRuleName = "facility default"

// FacilityPricing is everything the calculator needs about one facility.
type FacilityPricing struct {
	FacilityID      uuid.UUID
	Location        *time.Location
	Rules           []Rule
	DefaultFlatRate *Money
	DefaultOverstay OverstayPenalty
}

type Request struct {
	VehicleType  spot.VehicleType
	SpotSize     spot.Size
	Start        time.Time
	End          time.Time
	Subscription *Subscription
	Now          time.Time
}

type Result struct {
	Base            Money
	Penalties       Money
	Discounts       Money
	Total           Money
	AppliedRuleID   *uuid.UUID
	AppliedRule     string
	Strategy        Strategy
	DurationMinutes int64
	BillableMinutes int64
	OverstayMinutes int64
	SubscriptionID  *uuid.UUID
}

type Calculator struct{}

func NewCalculator() *Calculator {
	return &Calculator{}
}

type selection struct {
	rule         *Rule
	config       StrategyConfig
	freeMinutes  int
	overstay     OverstayPenalty
	subscription *Subscription
	localStart   time.Time
}

// Estimate prices [req.Start, req.End) without any overstay component.
func (c *Calculator) Estimate(fp FacilityPricing, req Request) (*Result, error) {
	sel, err := c.selectRule(fp, req)
	if err != nil {
		return nil, err
	}
	return c.price(sel, req)
}

// Final prices the actual stay [req.Start, req.End) and adds the overstay
// line item when the stay ran past expectedExit.
func (c *Calculator) Final(fp FacilityPricing, req Request, expectedExit *time.Time) (*Result, error) {
	sel, err := c.selectRule(fp, req)
	if err != nil {
		return nil, err
	}
	res, err := c.price(sel, req)
	if err != nil {
		return nil, err
	}
	if expectedExit != nil && req.End.After(*expectedExit) {
		res.OverstayMinutes = ceilMinutes(req.End.Sub(*expectedExit))
		res.Penalties = sel.overstay.For(res.OverstayMinutes)
		res.Total = res.Base.Add(res.Penalties).Sub(res.Discounts)
	}
	return res, nil
}

func (c *Calculator) price(sel selection, req Request) (*Result, error) {
	duration := floorMinutes(req.End.Sub(req.Start))
	billable := duration - int64(sel.freeMinutes)
	if billable < 0 {
		billable = 0
	}

	base, err := ComputePrice(sel.config, Billable{Start: sel.localStart, Minutes: billable})
	if err != nil {
		return nil, err
	}

	res := &Result{
		Base:            base,
		Penalties:       Zero(),
		Discounts:       Zero(),
		Total:           base,
		Strategy:        sel.config.Strategy(),
		DurationMinutes: duration,
		BillableMinutes: billable,
		AppliedRule:     defaultRuleName,
	}
	if sel.rule != nil {
		id := sel.rule.ID
		res.AppliedRuleID = &id
		res.AppliedRule = sel.rule.Name
	}
	if sel.subscription != nil {
		id := sel.subscription.ID
		res.SubscriptionID = &id
	}
	return res, nil
}

func (c *Calculator) selectRule(fp FacilityPricing, req Request) (selection, error) {
	if req.End.Before(req.Start) {
		return selection{}, errs.Validation("pricing interval end %s is before start %s", req.End, req.Start)
	}

	loc := fp.Location
	if loc == nil {
		loc = time.UTC
	}
	start := req.Start.In(loc)

	rules := make([]Rule, len(fp.Rules))
	copy(rules, fp.Rules)
	sort.SliceStable(rules, func(i, j int) bool { return rules[i].Priority < rules[j].Priority })

	for i := range rules {
		r := rules[i]
		if r.FacilityID != uuid.Nil && r.FacilityID != fp.FacilityID {
			continue
		}
		if !r.Matches(req.VehicleType, req.SpotSize, start) {
			continue
		}
		sel := selection{rule: &r, config: r.Config, freeMinutes: r.FreeMinutes, overstay: r.Overstay, localStart: start}
		if r.Strategy() == StrategySubscription {
			if !req.Subscription.IsValid(fp.FacilityID, req.Now) {
				continue
			}
			sel.subscription = req.Subscription
		}
		return sel, nil
	}

	if fp.DefaultFlatRate != nil {
		return selection{
			config:     FlatConfig{Amount: *fp.DefaultFlatRate},
			overstay:   fp.DefaultOverstay,
			localStart: start,
		}, nil
	}
	return selection{}, errs.Mark(
		errs.Newf("no pricing rule matches %s in facility %s", req.VehicleType, fp.FacilityID),
		errs.ErrPricingRuleNotFound,
	)
}

func floorMinutes(d time.Duration) int64 {
	if d <= 0 {
		return 0
	}
	return int64(d / time.Minute)
}

func ceilMinutes(d time.Duration) int64 {
	if d <= 0 {
		return 0
	}
	return int64((d + time.Minute - 1) / time.Minute)
}
