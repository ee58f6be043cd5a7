package razorpay

import (
	"context"

	"github.com/samber/lo"
)

const (
	customerIDRequired = "`customer_id` is mandatory"
	tokenIDRequired    = "`token_id` is mandatory"
)

// Customer is a customer entity as returned by the API.
type Customer struct {
	ID        string `json:"id"`
	Entity    string `json:"entity"`
	Name      string `json:"name"`
	Email     string `json:"email"`
	Contact   string `json:"contact"`
	GSTIN     string `json:"gstin"`
	Notes     Notes  `json:"notes"`
	CreatedAt int64  `json:"created_at"`
}

// Token is a saved payment token belonging to a customer.
type Token struct {
	ID        string `json:"id"`
	Entity    string `json:"entity"`
	Token     string `json:"token"`
	Bank      string `json:"bank"`
	Wallet    string `json:"wallet"`
	Method    string `json:"method"`
	Recurring bool   `json:"recurring"`
	UsedAt    int64  `json:"used_at"`
	CreatedAt int64  `json:"created_at"`
}

// CustomerParams describe a customer for create and edit calls.
type CustomerParams struct {
	Name         string
	Email        string
	Contact      string
	GSTIN        string
	FailExisting *bool
	Notes        Notes
	Extra        map[string]any
}

func (p *CustomerParams) payload() map[string]any {
	body := map[string]any{}
	if p == nil {
		return body
	}
	if p.Name != "" {
		body["name"] = p.Name
	}
	if p.Email != "" {
		body["email"] = p.Email
	}
	if p.Contact != "" {
		body["contact"] = p.Contact
	}
	if p.GSTIN != "" {
		body["gstin"] = p.GSTIN
	}
	if failExisting := normalizeBoolean(p.FailExisting); failExisting != nil {
		body["fail_existing"] = failExisting
	}
	return lo.Assign(withNotes(body, p.Notes), p.Extra)
}

// CustomersService exposes the customer endpoints.
type CustomersService struct {
	api *apiClient
}

// Create registers a customer.
func (s *CustomersService) Create(ctx context.Context, params *CustomerParams) (*Customer, error) {
	var out Customer
	if err := s.api.Post(ctx, joinPath("customers"), params.payload(), &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Edit updates an existing customer.
func (s *CustomersService) Edit(ctx context.Context, customerID string, params *CustomerParams) (*Customer, error) {
	if customerID == "" {
		return nil, newMissingParameter(customerIDRequired)
	}
	var out Customer
	if err := s.api.Put(ctx, joinPath("customers", customerID), params.payload(), &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// All lists customers.
func (s *CustomersService) All(ctx context.Context, opts *ListOptions) (*Collection[Customer], error) {
	var out Collection[Customer]
	if err := s.api.Get(ctx, joinPath("customers"), opts.query(), &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Fetch returns the customer with the given id.
func (s *CustomersService) Fetch(ctx context.Context, customerID string) (*Customer, error) {
	if customerID == "" {
		return nil, newMissingParameter(customerIDRequired)
	}
	var out Customer
	if err := s.api.Get(ctx, joinPath("customers", customerID), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// FetchTokens lists the saved tokens of a customer.
func (s *CustomersService) FetchTokens(ctx context.Context, customerID string) (*Collection[Token], error) {
	if customerID == "" {
		return nil, newMissingParameter(customerIDRequired)
	}
	var out Collection[Token]
	if err := s.api.Get(ctx, joinPath("customers", customerID, "tokens"), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// FetchToken returns a single saved token of a customer.
func (s *CustomersService) FetchToken(ctx context.Context, customerID, tokenID string) (*Token, error) {
	if customerID == "" {
		return nil, newMissingParameter(customerIDRequired)
	}
	if tokenID == "" {
		return nil, newMissingParameter(tokenIDRequired)
	}
	var out Token
	if err := s.api.Get(ctx, joinPath("customers", customerID, "tokens", tokenID), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// DeleteToken removes a saved token from a customer.
func (s *CustomersService) DeleteToken(ctx context.Context, customerID, tokenID string) error {
	if customerID == "" {
		return newMissingParameter(customerIDRequired)
	}
	if tokenID == "" {
		return newMissingParameter(tokenIDRequired)
	}
	return s.api.Delete(ctx, joinPath("customers", customerID, "tokens", tokenID), nil)
}
