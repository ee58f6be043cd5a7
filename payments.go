package razorpay

import (
	"context"

	"github.com/samber/lo"
)

const paymentIDRequired = "`payment_id` is mandatory"

// Payment is a payment entity as returned by the API.
type Payment struct {
	ID               string         `json:"id"`
	Entity           string         `json:"entity"`
	Amount           int64          `json:"amount"`
	Currency         string         `json:"currency"`
	Status           string         `json:"status"`
	OrderID          string         `json:"order_id"`
	InvoiceID        string         `json:"invoice_id"`
	International    bool           `json:"international"`
	Method           string         `json:"method"`
	AmountRefunded   int64          `json:"amount_refunded"`
	RefundStatus     string         `json:"refund_status"`
	Captured         bool           `json:"captured"`
	Description      string         `json:"description"`
	CardID           string         `json:"card_id"`
	Bank             string         `json:"bank"`
	Wallet           string         `json:"wallet"`
	VPA              string         `json:"vpa"`
	Email            string         `json:"email"`
	Contact          string         `json:"contact"`
	Notes            Notes          `json:"notes"`
	Fee              int64          `json:"fee"`
	Tax              int64          `json:"tax"`
	ErrorCode        string         `json:"error_code"`
	ErrorDescription string         `json:"error_description"`
	AcquirerData     map[string]any `json:"acquirer_data"`
	CreatedAt        int64          `json:"created_at"`
}

// PaymentRefundParams are the optional attributes of a refund issued
// against a payment.
type PaymentRefundParams struct {
	Amount  int64
	Speed   string
	Receipt string
	Notes   Notes
	Extra   map[string]any
}

func (p *PaymentRefundParams) payload() map[string]any {
	body := map[string]any{}
	if p == nil {
		return body
	}
	if p.Amount > 0 {
		body["amount"] = p.Amount
	}
	if p.Speed != "" {
		body["speed"] = p.Speed
	}
	if p.Receipt != "" {
		body["receipt"] = p.Receipt
	}
	return lo.Assign(withNotes(body, p.Notes), p.Extra)
}

// TransferAllocation routes a slice of a payment to a linked account.
type TransferAllocation struct {
	Account            string
	Amount             int64
	Currency           string
	Notes              Notes
	LinkedAccountNotes []string
	OnHold             *bool
	OnHoldUntil        int64
}

func (t TransferAllocation) payload() map[string]any {
	body := map[string]any{
		"account":  t.Account,
		"amount":   t.Amount,
		"currency": t.Currency,
		// The transfer route rejects boolean literals; on_hold is always
		// sent as 1 or 0.
		"on_hold": normalizeBoolean(t.OnHold != nil && *t.OnHold),
	}
	if len(t.LinkedAccountNotes) > 0 {
		body["linked_account_notes"] = t.LinkedAccountNotes
	}
	if t.OnHoldUntil > 0 {
		body["on_hold_until"] = t.OnHoldUntil
	}
	return withNotes(body, t.Notes)
}

// PaymentsService exposes the payment endpoints.
type PaymentsService struct {
	api *apiClient
}

// All lists payments matching the given filter options.
func (s *PaymentsService) All(ctx context.Context, opts *ListOptions) (*Collection[Payment], error) {
	var out Collection[Payment]
	if err := s.api.Get(ctx, joinPath("payments"), opts.query(), &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Fetch returns the payment with the given id.
func (s *PaymentsService) Fetch(ctx context.Context, paymentID string) (*Payment, error) {
	if paymentID == "" {
		return nil, newMissingParameter(paymentIDRequired)
	}
	var out Payment
	if err := s.api.Get(ctx, joinPath("payments", paymentID), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Capture captures an authorized payment. Amount is mandatory; currency is
// included only when set.
func (s *PaymentsService) Capture(ctx context.Context, paymentID string, amount int64, currency string) (*Payment, error) {
	if amount == 0 {
		return nil, newMissingParameter("`amount` is mandatory")
	}
	if paymentID == "" {
		return nil, newMissingParameter(paymentIDRequired)
	}

	payload := map[string]any{"amount": amount}
	if currency != "" {
		payload["currency"] = currency
	}

	var out Payment
	if err := s.api.Post(ctx, joinPath("payments", paymentID, "capture"), payload, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Refund refunds a captured payment, fully or partially.
func (s *PaymentsService) Refund(ctx context.Context, paymentID string, params *PaymentRefundParams) (*Refund, error) {
	if paymentID == "" {
		return nil, newMissingParameter(paymentIDRequired)
	}
	var out Refund
	if err := s.api.Post(ctx, joinPath("payments", paymentID, "refund"), params.payload(), &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Transfer routes a captured payment to one or more linked accounts.
func (s *PaymentsService) Transfer(ctx context.Context, paymentID string, allocations []TransferAllocation) (*Collection[Transfer], error) {
	if paymentID == "" {
		return nil, newMissingParameter(paymentIDRequired)
	}

	transfers := make([]map[string]any, 0, len(allocations))
	for _, allocation := range allocations {
		transfers = append(transfers, allocation.payload())
	}

	var out Collection[Transfer]
	payload := map[string]any{"transfers": transfers}
	if err := s.api.Post(ctx, joinPath("payments", paymentID, "transfers"), payload, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// BankTransfer returns the bank transfer details of a payment made through
// a virtual account.
func (s *PaymentsService) BankTransfer(ctx context.Context, paymentID string) (map[string]any, error) {
	if paymentID == "" {
		return nil, newMissingParameter(paymentIDRequired)
	}
	var out map[string]any
	if err := s.api.Get(ctx, joinPath("payments", paymentID, "bank_transfer"), nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}
