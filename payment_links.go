package razorpay

import (
	"context"

	"github.com/samber/lo"
)

// PaymentLink is a payment link entity as returned by the API.
type PaymentLink struct {
	ID                    string               `json:"id"`
	Amount                int64                `json:"amount"`
	AmountPaid            int64                `json:"amount_paid"`
	AcceptPartial         bool                 `json:"accept_partial"`
	FirstMinPartialAmount int64                `json:"first_min_partial_amount"`
	Currency              string               `json:"currency"`
	Customer              *PaymentLinkCustomer `json:"customer"`
	Description           string               `json:"description"`
	ExpireBy              int64                `json:"expire_by"`
	ExpiredAt             int64                `json:"expired_at"`
	CancelledAt           int64                `json:"cancelled_at"`
	Notes                 Notes                `json:"notes"`
	Notify                *PaymentLinkNotify   `json:"notify"`
	ReferenceID           string               `json:"reference_id"`
	ReminderEnable        bool                 `json:"reminder_enable"`
	ShortURL              string               `json:"short_url"`
	Source                string               `json:"source"`
	SourceID              string               `json:"source_id"`
	Status                string               `json:"status"`
	CallbackURL           string               `json:"callback_url"`
	CallbackMethod        string               `json:"callback_method"`
	CreatedAt             int64                `json:"created_at"`
	UpdatedAt             int64                `json:"updated_at"`
	UserID                string               `json:"user_id"`
}

// PaymentLinkCustomer identifies who a payment link is addressed to.
type PaymentLinkCustomer struct {
	Name    string `json:"name,omitempty"`
	Email   string `json:"email,omitempty"`
	Contact string `json:"contact,omitempty"`
}

// PaymentLinkNotify selects the notification channels for a payment link.
type PaymentLinkNotify struct {
	SMS   bool `json:"sms"`
	Email bool `json:"email"`
}

// PaymentLinkCreateParams describe a payment link. Amount is mandatory.
type PaymentLinkCreateParams struct {
	Amount                int64
	Currency              string
	AcceptPartial         *bool
	FirstMinPartialAmount int64
	UPILink               *bool
	Description           string
	ReferenceID           string
	Customer              *PaymentLinkCustomer
	ExpireBy              any
	Notify                *PaymentLinkNotify
	CallbackURL           string
	CallbackMethod        string
	ReminderEnable        *bool
	Notes                 Notes
	Extra                 map[string]any
}

func (p *PaymentLinkCreateParams) payload() map[string]any {
	body := map[string]any{"amount": p.Amount}
	if p.Currency != "" {
		body["currency"] = p.Currency
	}
	if acceptPartial := normalizeBoolean(p.AcceptPartial); acceptPartial != nil {
		body["accept_partial"] = acceptPartial
	}
	if p.FirstMinPartialAmount > 0 {
		body["first_min_partial_amount"] = p.FirstMinPartialAmount
	}
	if upiLink := normalizeBoolean(p.UPILink); upiLink != nil {
		body["upi_link"] = upiLink
	}
	if p.Description != "" {
		body["description"] = p.Description
	}
	if p.ReferenceID != "" {
		body["reference_id"] = p.ReferenceID
	}
	if p.Customer != nil {
		body["customer"] = p.Customer
	}
	if p.ExpireBy != nil {
		body["expire_by"] = normalizeDate(p.ExpireBy)
	}
	if p.Notify != nil {
		body["notify"] = p.Notify
	}
	if p.CallbackURL != "" {
		body["callback_url"] = p.CallbackURL
	}
	if p.CallbackMethod != "" {
		body["callback_method"] = p.CallbackMethod
	}
	if reminder := normalizeBoolean(p.ReminderEnable); reminder != nil {
		body["reminder_enable"] = reminder
	}
	return lo.Assign(withNotes(body, p.Notes), p.Extra)
}

// PaymentLinkListOptions filter the payment link listing by the payment or
// reference attached to a link.
type PaymentLinkListOptions struct {
	PaymentID   string
	ReferenceID string
}

// PaymentLinkList is the envelope returned when listing payment links.
type PaymentLinkList struct {
	PaymentLinks []PaymentLink `json:"payment_links"`
}

// PaymentLinksService exposes the payment link endpoints.
type PaymentLinksService struct {
	api *apiClient
}

// Create creates a payment link.
func (s *PaymentLinksService) Create(ctx context.Context, params *PaymentLinkCreateParams) (*PaymentLink, error) {
	if params == nil || params.Amount == 0 {
		return nil, newMissingParameter("`amount` is mandatory")
	}
	var out PaymentLink
	if err := s.api.Post(ctx, joinPath("payment-links"), params.payload(), &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// All lists payment links, optionally filtered by payment or reference id.
func (s *PaymentLinksService) All(ctx context.Context, opts *PaymentLinkListOptions) (*PaymentLinkList, error) {
	query := map[string]any{}
	if opts != nil {
		if opts.PaymentID != "" {
			query["payment_id"] = opts.PaymentID
		}
		if opts.ReferenceID != "" {
			query["reference_id"] = opts.ReferenceID
		}
	}

	var out PaymentLinkList
	if err := s.api.Get(ctx, joinPath("payment-links"), query, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Fetch returns the payment link with the given id.
func (s *PaymentLinksService) Fetch(ctx context.Context, paymentLinkID string) (*PaymentLink, error) {
	if paymentLinkID == "" {
		return nil, newMissingParameter("`payment_link_id` is mandatory")
	}
	var out PaymentLink
	if err := s.api.Get(ctx, joinPath("payment-links", paymentLinkID), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
