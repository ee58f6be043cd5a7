package razorpay

import (
	"context"

	"github.com/samber/lo"
)

// Plan is a plan entity as returned by the API.
type Plan struct {
	ID        string `json:"id"`
	Entity    string `json:"entity"`
	Interval  int    `json:"interval"`
	Period    string `json:"period"`
	Item      Item   `json:"item"`
	Notes     Notes  `json:"notes"`
	CreatedAt int64  `json:"created_at"`
}

// Item is the billable item behind a plan or addon.
type Item struct {
	ID           string `json:"id"`
	Active       bool   `json:"active"`
	Name         string `json:"name"`
	Description  string `json:"description"`
	Amount       int64  `json:"amount"`
	UnitAmount   int64  `json:"unit_amount"`
	Currency     string `json:"currency"`
	Type         string `json:"type"`
	Unit         string `json:"unit"`
	TaxInclusive bool   `json:"tax_inclusive"`
	CreatedAt    int64  `json:"created_at"`
	UpdatedAt    int64  `json:"updated_at"`
}

// PlanCreateParams describe a billing plan: how often to charge, and for
// what item.
type PlanCreateParams struct {
	Period   string
	Interval int
	Item     AddonItemParams
	Notes    Notes
	Extra    map[string]any
}

func (p *PlanCreateParams) payload() map[string]any {
	body := map[string]any{}
	if p == nil {
		return body
	}
	if p.Period != "" {
		body["period"] = p.Period
	}
	if p.Interval > 0 {
		body["interval"] = p.Interval
	}
	body["item"] = p.Item.payload()
	return lo.Assign(withNotes(body, p.Notes), p.Extra)
}

// PlansService exposes the plan endpoints.
type PlansService struct {
	api *apiClient
}

// Create creates a plan for subscriptions to bill against.
func (s *PlansService) Create(ctx context.Context, params *PlanCreateParams) (*Plan, error) {
	var out Plan
	if err := s.api.Post(ctx, joinPath("plans"), params.payload(), &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Fetch returns the plan with the given id.
func (s *PlansService) Fetch(ctx context.Context, planID string) (*Plan, error) {
	if planID == "" {
		return nil, newMissingParameter("`plan_id` is mandatory")
	}
	var out Plan
	if err := s.api.Get(ctx, joinPath("plans", planID), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// All lists plans matching the given filter options.
func (s *PlansService) All(ctx context.Context, opts *ListOptions) (*Collection[Plan], error) {
	var out Collection[Plan]
	if err := s.api.Get(ctx, joinPath("plans"), opts.query(), &out); err != nil {
		return nil, err
	}
	return &out, nil
}
