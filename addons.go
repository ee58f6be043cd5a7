package razorpay

import "context"

const addonIDRequired = "`addon_id` is mandatory"

// Addon is an addon entity as returned by the API.
type Addon struct {
	ID             string `json:"id"`
	Entity         string `json:"entity"`
	Item           Item   `json:"item"`
	Quantity       int    `json:"quantity"`
	SubscriptionID string `json:"subscription_id"`
	InvoiceID      string `json:"invoice_id"`
	CreatedAt      int64  `json:"created_at"`
}

// AddonsService exposes the addon endpoints. Addons are created through
// SubscriptionsService.CreateAddon.
type AddonsService struct {
	api *apiClient
}

// Fetch returns the addon with the given id.
func (s *AddonsService) Fetch(ctx context.Context, addonID string) (*Addon, error) {
	if addonID == "" {
		return nil, newMissingParameter(addonIDRequired)
	}
	var out Addon
	if err := s.api.Get(ctx, joinPath("addons", addonID), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Delete removes an addon before it is charged on the next invoice.
func (s *AddonsService) Delete(ctx context.Context, addonID string) error {
	if addonID == "" {
		return newMissingParameter(addonIDRequired)
	}
	return s.api.Delete(ctx, joinPath("addons", addonID), nil)
}
