package razorpay

import "context"

// Refund is a refund entity as returned by the API.
type Refund struct {
	ID             string         `json:"id"`
	Entity         string         `json:"entity"`
	Amount         int64          `json:"amount"`
	Currency       string         `json:"currency"`
	PaymentID      string         `json:"payment_id"`
	Notes          Notes          `json:"notes"`
	Receipt        string         `json:"receipt"`
	AcquirerData   map[string]any `json:"acquirer_data"`
	BatchID        string         `json:"batch_id"`
	Status         string         `json:"status"`
	SpeedProcessed string         `json:"speed_processed"`
	SpeedRequested string         `json:"speed_requested"`
	CreatedAt      int64          `json:"created_at"`
}

// RefundListOptions filter the refund listing. When PaymentID is set the
// listing is scoped to that payment's refunds.
type RefundListOptions struct {
	ListOptions
	PaymentID string
}

// RefundsService exposes the refund endpoints.
type RefundsService struct {
	api *apiClient
}

// All lists refunds, globally or for a single payment.
func (s *RefundsService) All(ctx context.Context, opts *RefundListOptions) (*Collection[Refund], error) {
	path := joinPath("refunds")
	query := (*ListOptions)(nil).query()
	if opts != nil {
		query = opts.ListOptions.query()
		if opts.PaymentID != "" {
			path = joinPath("payments", opts.PaymentID, "refunds")
		}
	}

	var out Collection[Refund]
	if err := s.api.Get(ctx, path, query, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Fetch returns the refund with the given id, optionally scoped to the
// payment it was issued against.
func (s *RefundsService) Fetch(ctx context.Context, refundID, paymentID string) (*Refund, error) {
	if refundID == "" {
		return nil, newMissingParameter("`refund_id` is mandatory")
	}

	path := joinPath("refunds", refundID)
	if paymentID != "" {
		path = joinPath("payments", paymentID, "refunds", refundID)
	}

	var out Refund
	if err := s.api.Get(ctx, path, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
