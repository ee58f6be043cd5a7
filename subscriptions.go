package razorpay

import (
	"context"

	"github.com/samber/lo"
)

const subscriptionIDRequired = "`subscription_id` is mandatory"

// Subscription is a subscription entity as returned by the API.
type Subscription struct {
	ID                  string `json:"id"`
	Entity              string `json:"entity"`
	PlanID              string `json:"plan_id"`
	CustomerID          string `json:"customer_id"`
	Status              string `json:"status"`
	CurrentStart        int64  `json:"current_start"`
	CurrentEnd          int64  `json:"current_end"`
	EndedAt             int64  `json:"ended_at"`
	Quantity            int    `json:"quantity"`
	Notes               Notes  `json:"notes"`
	ChargeAt            int64  `json:"charge_at"`
	StartAt             int64  `json:"start_at"`
	EndAt               int64  `json:"end_at"`
	AuthAttempts        int    `json:"auth_attempts"`
	TotalCount          int    `json:"total_count"`
	PaidCount           int    `json:"paid_count"`
	RemainingCount      int    `json:"remaining_count"`
	CustomerNotify      bool   `json:"customer_notify"`
	ExpireBy            int64  `json:"expire_by"`
	ShortURL            string `json:"short_url"`
	HasScheduledChanges bool   `json:"has_scheduled_changes"`
	ChangeScheduledAt   int64  `json:"change_scheduled_at"`
	Source              string `json:"source"`
	OfferID             string `json:"offer_id"`
	CreatedAt           int64  `json:"created_at"`
}

// AddonItemParams describe the item an addon charges for.
type AddonItemParams struct {
	Name        string
	Amount      int64
	Currency    string
	Description string
}

func (p AddonItemParams) payload() map[string]any {
	item := map[string]any{
		"name":     p.Name,
		"amount":   p.Amount,
		"currency": p.Currency,
	}
	if p.Description != "" {
		item["description"] = p.Description
	}
	return item
}

// SubscriptionCreateParams describe a subscription against a plan.
type SubscriptionCreateParams struct {
	PlanID         string
	TotalCount     int
	Quantity       int
	StartAt        any
	ExpireBy       any
	CustomerNotify *bool
	Addons         []AddonItemParams
	OfferID        string
	Notes          Notes
	Extra          map[string]any
}

func (p *SubscriptionCreateParams) payload() map[string]any {
	body := map[string]any{}
	if p == nil {
		return body
	}
	if p.PlanID != "" {
		body["plan_id"] = p.PlanID
	}
	if p.TotalCount > 0 {
		body["total_count"] = p.TotalCount
	}
	if p.Quantity > 0 {
		body["quantity"] = p.Quantity
	}
	if p.StartAt != nil {
		body["start_at"] = normalizeDate(p.StartAt)
	}
	if p.ExpireBy != nil {
		body["expire_by"] = normalizeDate(p.ExpireBy)
	}
	if notify := normalizeBoolean(p.CustomerNotify); notify != nil {
		body["customer_notify"] = notify
	}
	if len(p.Addons) > 0 {
		addons := make([]map[string]any, 0, len(p.Addons))
		for _, addon := range p.Addons {
			addons = append(addons, map[string]any{"item": addon.payload()})
		}
		body["addons"] = addons
	}
	if p.OfferID != "" {
		body["offer_id"] = p.OfferID
	}
	return lo.Assign(withNotes(body, p.Notes), p.Extra)
}

// SubscriptionListOptions filter the subscription listing.
type SubscriptionListOptions struct {
	ListOptions
	PlanID string
}

func (o *SubscriptionListOptions) query() map[string]any {
	if o == nil {
		return (*ListOptions)(nil).query()
	}
	q := o.ListOptions.query()
	if o.PlanID != "" {
		q["plan_id"] = o.PlanID
	}
	return q
}

// SubscriptionsService exposes the subscription endpoints.
type SubscriptionsService struct {
	api *apiClient
}

// Create starts a subscription on a plan.
func (s *SubscriptionsService) Create(ctx context.Context, params *SubscriptionCreateParams) (*Subscription, error) {
	var out Subscription
	if err := s.api.Post(ctx, joinPath("subscriptions"), params.payload(), &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Fetch returns the subscription with the given id.
func (s *SubscriptionsService) Fetch(ctx context.Context, subscriptionID string) (*Subscription, error) {
	if subscriptionID == "" {
		return nil, newMissingParameter(subscriptionIDRequired)
	}
	var out Subscription
	if err := s.api.Get(ctx, joinPath("subscriptions", subscriptionID), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// All lists subscriptions matching the given filter options.
func (s *SubscriptionsService) All(ctx context.Context, opts *SubscriptionListOptions) (*Collection[Subscription], error) {
	var out Collection[Subscription]
	if err := s.api.Get(ctx, joinPath("subscriptions"), opts.query(), &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Cancel cancels a subscription, either immediately or at the end of the
// current billing cycle. The cancel_at_cycle_end field is sent only when
// cancelAtCycleEnd is true.
func (s *SubscriptionsService) Cancel(ctx context.Context, subscriptionID string, cancelAtCycleEnd bool) (*Subscription, error) {
	if subscriptionID == "" {
		return nil, newMissingParameter(subscriptionIDRequired)
	}

	var payload map[string]any
	if cancelAtCycleEnd {
		payload = map[string]any{"cancel_at_cycle_end": 1}
	}

	var out Subscription
	if err := s.api.Post(ctx, joinPath("subscriptions", subscriptionID, "cancel"), payload, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// CreateAddon charges an ad-hoc addon on a subscription's next invoice.
func (s *SubscriptionsService) CreateAddon(ctx context.Context, subscriptionID string, item AddonItemParams, quantity int) (*Addon, error) {
	if subscriptionID == "" {
		return nil, newMissingParameter(subscriptionIDRequired)
	}

	payload := map[string]any{"item": item.payload()}
	if quantity > 0 {
		payload["quantity"] = quantity
	}

	var out Addon
	if err := s.api.Post(ctx, joinPath("subscriptions", subscriptionID, "addons"), payload, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
