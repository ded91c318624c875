package response

import (
	"parkme/internal/domain/pricing"
)

type PriceResponse struct {
	Base            string  `json:"base"`
	Penalties       string  `json:"penalties"`
	Discounts       string  `json:"discounts"`
	Total           string  `json:"total"`
	Strategy        string  `json:"strategy"`
	AppliedRule     string  `json:"applied_rule,omitempty"`
	AppliedRuleID   *string `json:"applied_rule_id,omitempty"`
	SubscriptionID  *string `json:"subscription_id,omitempty"`
	DurationMinutes int64   `json:"duration_minutes"`
	BillableMinutes int64   `json:"billable_minutes"`
	OverstayMinutes int64   `json:"overstay_minutes"`
}

func FromPriceResult(r *pricing.Result) *PriceResponse {
	resp := &PriceResponse{
		Base:            r.Base.String(),
		Penalties:       r.Penalties.String(),
		Discounts:       r.Discounts.String(),
		Total:           r.Total.String(),
		Strategy:        r.Strategy.String(),
		AppliedRule:     r.AppliedRule,
		DurationMinutes: r.DurationMinutes,
		BillableMinutes: r.BillableMinutes,
		OverstayMinutes: r.OverstayMinutes,
	}
	if r.AppliedRuleID != nil {
		id := r.AppliedRuleID.String()
		resp.AppliedRuleID = &id
	}
	if r.SubscriptionID != nil {
		id := r.SubscriptionID.String()
		resp.SubscriptionID = &id
	}
	return resp
}
