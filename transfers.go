package razorpay

import (
	"context"

	"github.com/samber/lo"
)

const transferIDRequired = "`transfer_id` is mandatory"

// Transfer is a transfer entity as returned by the API.
type Transfer struct {
	ID                    string   `json:"id"`
	Entity                string   `json:"entity"`
	Source                string   `json:"source"`
	Recipient             string   `json:"recipient"`
	Amount                int64    `json:"amount"`
	Currency              string   `json:"currency"`
	AmountReversed        int64    `json:"amount_reversed"`
	Notes                 Notes    `json:"notes"`
	Fees                  int64    `json:"fees"`
	Tax                   int64    `json:"tax"`
	OnHold                bool     `json:"on_hold"`
	OnHoldUntil           int64    `json:"on_hold_until"`
	RecipientSettlementID string   `json:"recipient_settlement_id"`
	LinkedAccountNotes    []string `json:"linked_account_notes"`
	ProcessedAt           int64    `json:"processed_at"`
	CreatedAt             int64    `json:"created_at"`
}

// Reversal is a reversal entity created against a transfer.
type Reversal struct {
	ID          string `json:"id"`
	Entity      string `json:"entity"`
	TransferID  string `json:"transfer_id"`
	Amount      int64  `json:"amount"`
	Currency    string `json:"currency"`
	Notes       Notes  `json:"notes"`
	InitiatorID string `json:"initiator_id"`
	CreatedAt   int64  `json:"created_at"`
}

// TransferListOptions filter the transfer listing. When PaymentID is set
// the listing is scoped to transfers created from that payment.
type TransferListOptions struct {
	ListOptions
	PaymentID             string
	RecipientSettlementID string
}

// TransferParams describe a direct transfer for create and edit calls.
type TransferParams struct {
	Account            string
	Amount             int64
	Currency           string
	Notes              Notes
	LinkedAccountNotes []string
	OnHold             *bool
	OnHoldUntil        int64
	Extra              map[string]any
}

func (p *TransferParams) payload() map[string]any {
	body := map[string]any{}
	if p == nil {
		return body
	}
	if p.Account != "" {
		body["account"] = p.Account
	}
	if p.Amount > 0 {
		body["amount"] = p.Amount
	}
	if p.Currency != "" {
		body["currency"] = p.Currency
	}
	if len(p.LinkedAccountNotes) > 0 {
		body["linked_account_notes"] = p.LinkedAccountNotes
	}
	if onHold := normalizeBoolean(p.OnHold); onHold != nil {
		body["on_hold"] = onHold
	}
	if p.OnHoldUntil > 0 {
		body["on_hold_until"] = p.OnHoldUntil
	}
	return lo.Assign(withNotes(body, p.Notes), p.Extra)
}

// TransfersService exposes the transfer endpoints.
type TransfersService struct {
	api *apiClient
}

// All lists transfers, globally or for a single payment.
func (s *TransfersService) All(ctx context.Context, opts *TransferListOptions) (*Collection[Transfer], error) {
	path := joinPath("transfers")
	query := (*ListOptions)(nil).query()
	if opts != nil {
		query = opts.ListOptions.query()
		if opts.PaymentID != "" {
			path = joinPath("payments", opts.PaymentID, "transfers")
		}
		if opts.RecipientSettlementID != "" {
			query["recipient_settlement_id"] = opts.RecipientSettlementID
		}
	}

	var out Collection[Transfer]
	if err := s.api.Get(ctx, path, query, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Fetch returns the transfer with the given id.
func (s *TransfersService) Fetch(ctx context.Context, transferID string) (*Transfer, error) {
	if transferID == "" {
		return nil, newMissingParameter(transferIDRequired)
	}
	var out Transfer
	if err := s.api.Get(ctx, joinPath("transfers", transferID), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Create moves funds directly to a linked account.
func (s *TransfersService) Create(ctx context.Context, params *TransferParams) (*Transfer, error) {
	var out Transfer
	if err := s.api.Post(ctx, joinPath("transfers"), params.payload(), &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Edit updates the hold state and notes of a transfer.
func (s *TransfersService) Edit(ctx context.Context, transferID string, params *TransferParams) (*Transfer, error) {
	if transferID == "" {
		return nil, newMissingParameter(transferIDRequired)
	}
	var out Transfer
	if err := s.api.Patch(ctx, joinPath("transfers", transferID), params.payload(), &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Reverse reverses a transfer, fully or for the given amount.
func (s *TransfersService) Reverse(ctx context.Context, transferID string, amount int64) (*Reversal, error) {
	if transferID == "" {
		return nil, newMissingParameter(transferIDRequired)
	}

	payload := map[string]any{}
	if amount > 0 {
		payload["amount"] = amount
	}

	var out Reversal
	if err := s.api.Post(ctx, joinPath("transfers", transferID, "reversals"), payload, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
