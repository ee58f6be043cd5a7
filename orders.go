package razorpay

import (
	"context"

	"github.com/samber/lo"
)

const orderIDRequired = "`order_id` is mandatory"

// Order is an order entity as returned by the API.
type Order struct {
	ID         string `json:"id"`
	Entity     string `json:"entity"`
	Amount     int64  `json:"amount"`
	AmountPaid int64  `json:"amount_paid"`
	AmountDue  int64  `json:"amount_due"`
	Currency   string `json:"currency"`
	Receipt    string `json:"receipt"`
	Status     string `json:"status"`
	Attempts   int    `json:"attempts"`
	Notes      Notes  `json:"notes"`
	CreatedAt  int64  `json:"created_at"`
}

// OrderListOptions filter the order listing. Authorized narrows the result
// to authorized (or unauthorized) orders; Receipt matches an exact receipt.
type OrderListOptions struct {
	ListOptions
	Authorized *bool
	Receipt    string
}

func (o *OrderListOptions) query() map[string]any {
	if o == nil {
		return (*ListOptions)(nil).query()
	}
	q := o.ListOptions.query()
	if authorized := normalizeBoolean(o.Authorized); authorized != nil {
		q["authorized"] = authorized
	}
	if o.Receipt != "" {
		q["receipt"] = o.Receipt
	}
	return q
}

// OrderCreateParams describe an order. Amount is mandatory; Currency
// defaults to INR when unset.
type OrderCreateParams struct {
	Amount         int64
	Currency       string
	Receipt        string
	PartialPayment *bool
	Notes          Notes
	Extra          map[string]any
}

func (p *OrderCreateParams) payload() map[string]any {
	body := map[string]any{
		"amount":   p.Amount,
		"currency": p.Currency,
	}
	if p.Currency == "" {
		body["currency"] = defaultCurrency
	}
	if p.Receipt != "" {
		body["receipt"] = p.Receipt
	}
	if partial := normalizeBoolean(p.PartialPayment); partial != nil {
		body["partial_payment"] = partial
	}
	return lo.Assign(withNotes(body, p.Notes), p.Extra)
}

// OrdersService exposes the order endpoints.
type OrdersService struct {
	api *apiClient
}

// All lists orders matching the given filter options.
func (s *OrdersService) All(ctx context.Context, opts *OrderListOptions) (*Collection[Order], error) {
	var out Collection[Order]
	if err := s.api.Get(ctx, joinPath("orders"), opts.query(), &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Fetch returns the order with the given id.
func (s *OrdersService) Fetch(ctx context.Context, orderID string) (*Order, error) {
	if orderID == "" {
		return nil, newMissingParameter(orderIDRequired)
	}
	var out Order
	if err := s.api.Get(ctx, joinPath("orders", orderID), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Create creates an order to which payments can be attached.
func (s *OrdersService) Create(ctx context.Context, params *OrderCreateParams) (*Order, error) {
	if params == nil || params.Amount == 0 {
		return nil, newMissingParameter("`amount` is mandatory")
	}
	var out Order
	if err := s.api.Post(ctx, joinPath("orders"), params.payload(), &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// FetchPayments lists the payments made against an order.
func (s *OrdersService) FetchPayments(ctx context.Context, orderID string) (*Collection[Payment], error) {
	if orderID == "" {
		return nil, newMissingParameter(orderIDRequired)
	}
	var out Collection[Payment]
	if err := s.api.Get(ctx, joinPath("orders", orderID, "payments"), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
