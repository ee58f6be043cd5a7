package razorpay

import (
	"context"

	"github.com/samber/lo"
)

const virtualAccountIDRequired = "`virtual_account_id` is mandatory"

// VirtualAccount is a virtual account entity as returned by the API.
type VirtualAccount struct {
	ID             string         `json:"id"`
	Entity         string         `json:"entity"`
	Name           string         `json:"name"`
	Status         string         `json:"status"`
	Description    string         `json:"description"`
	AmountExpected int64          `json:"amount_expected"`
	AmountPaid     int64          `json:"amount_paid"`
	Notes          Notes          `json:"notes"`
	CustomerID     string         `json:"customer_id"`
	Receivers      []Receiver     `json:"receivers"`
	AllowedPayers  []AllowedPayer `json:"allowed_payers"`
	CloseBy        int64          `json:"close_by"`
	ClosedAt       int64          `json:"closed_at"`
	CreatedAt      int64          `json:"created_at"`
}

// Receiver is a bank account or VPA receiving payments into a virtual
// account.
type Receiver struct {
	ID            string `json:"id"`
	Entity        string `json:"entity"`
	IFSC          string `json:"ifsc"`
	BankName      string `json:"bank_name"`
	Name          string `json:"name"`
	AccountNumber string `json:"account_number"`
	Address       string `json:"address,omitempty"`
}

// AllowedPayer restricts which bank accounts may pay into a virtual
// account.
type AllowedPayer struct {
	Type        string      `json:"type"`
	BankAccount BankAccount `json:"bank_account"`
}

// BankAccount identifies a payer account by IFSC and account number.
type BankAccount struct {
	IFSC          string `json:"ifsc"`
	AccountNumber string `json:"account_number"`
}

// VirtualAccountCreateParams describe a virtual account.
type VirtualAccountCreateParams struct {
	ReceiverTypes []string
	AllowedPayers []AllowedPayer
	Description   string
	CustomerID    string
	CloseBy       any
	Notes         Notes
	Extra         map[string]any
}

func (p *VirtualAccountCreateParams) payload() map[string]any {
	body := map[string]any{}
	if p == nil {
		return body
	}
	if len(p.ReceiverTypes) > 0 {
		body["receivers"] = map[string]any{"types": p.ReceiverTypes}
	}
	if len(p.AllowedPayers) > 0 {
		body["allowed_payers"] = p.AllowedPayers
	}
	if p.Description != "" {
		body["description"] = p.Description
	}
	if p.CustomerID != "" {
		body["customer_id"] = p.CustomerID
	}
	if p.CloseBy != nil {
		body["close_by"] = normalizeDate(p.CloseBy)
	}
	return lo.Assign(withNotes(body, p.Notes), p.Extra)
}

// VirtualAccountsService exposes the virtual account endpoints.
type VirtualAccountsService struct {
	api *apiClient
}

// All lists virtual accounts matching the given filter options.
func (s *VirtualAccountsService) All(ctx context.Context, opts *ListOptions) (*Collection[VirtualAccount], error) {
	var out Collection[VirtualAccount]
	if err := s.api.Get(ctx, joinPath("virtual_accounts"), opts.query(), &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Fetch returns the virtual account with the given id.
func (s *VirtualAccountsService) Fetch(ctx context.Context, virtualAccountID string) (*VirtualAccount, error) {
	if virtualAccountID == "" {
		return nil, newMissingParameter(virtualAccountIDRequired)
	}
	var out VirtualAccount
	if err := s.api.Get(ctx, joinPath("virtual_accounts", virtualAccountID), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Create opens a virtual account.
func (s *VirtualAccountsService) Create(ctx context.Context, params *VirtualAccountCreateParams) (*VirtualAccount, error) {
	var out VirtualAccount
	if err := s.api.Post(ctx, joinPath("virtual_accounts"), params.payload(), &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Close closes a virtual account so it stops accepting payments.
func (s *VirtualAccountsService) Close(ctx context.Context, virtualAccountID string) (*VirtualAccount, error) {
	if virtualAccountID == "" {
		return nil, newMissingParameter(virtualAccountIDRequired)
	}
	var out VirtualAccount
	if err := s.api.Post(ctx, joinPath("virtual_accounts", virtualAccountID, "close"), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// FetchPayments lists the payments received by a virtual account.
func (s *VirtualAccountsService) FetchPayments(ctx context.Context, virtualAccountID string) (*Collection[Payment], error) {
	if virtualAccountID == "" {
		return nil, newMissingParameter(virtualAccountIDRequired)
	}
	var out Collection[Payment]
	if err := s.api.Get(ctx, joinPath("virtual_accounts", virtualAccountID, "payments"), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
