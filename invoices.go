package razorpay

import (
	"context"

	"github.com/samber/lo"
)

const invoiceIDRequired = "`invoice_id` is mandatory"

// Invoice is an invoice entity as returned by the API. The same entity
// backs both the invoice and payment-link systems; some operations are
// only meaningful for invoices and fail server-side otherwise.
type Invoice struct {
	ID              string         `json:"id"`
	Entity          string         `json:"entity"`
	Receipt         string         `json:"receipt"`
	InvoiceNumber   string         `json:"invoice_number"`
	CustomerID      string         `json:"customer_id"`
	OrderID         string         `json:"order_id"`
	PaymentID       string         `json:"payment_id"`
	LineItems       []LineItem     `json:"line_items"`
	CustomerDetails map[string]any `json:"customer_details"`
	Status          string         `json:"status"`
	ExpireBy        int64          `json:"expire_by"`
	IssuedAt        int64          `json:"issued_at"`
	PaidAt          int64          `json:"paid_at"`
	CancelledAt     int64          `json:"cancelled_at"`
	ExpiredAt       int64          `json:"expired_at"`
	SMSStatus       string         `json:"sms_status"`
	EmailStatus     string         `json:"email_status"`
	Date            int64          `json:"date"`
	PartialPayment  bool           `json:"partial_payment"`
	GrossAmount     int64          `json:"gross_amount"`
	TaxAmount       int64          `json:"tax_amount"`
	TaxableAmount   int64          `json:"taxable_amount"`
	Amount          int64          `json:"amount"`
	AmountPaid      int64          `json:"amount_paid"`
	AmountDue       int64          `json:"amount_due"`
	Currency        string         `json:"currency"`
	Description     string         `json:"description"`
	Notes           Notes          `json:"notes"`
	Comment         string         `json:"comment"`
	ShortURL        string         `json:"short_url"`
	Type            string         `json:"type"`
	CreatedAt       int64          `json:"created_at"`
}

// LineItem is one billed line on an invoice.
type LineItem struct {
	ID            string `json:"id"`
	ItemID        string `json:"item_id"`
	Name          string `json:"name"`
	Description   string `json:"description"`
	Amount        int64  `json:"amount"`
	UnitAmount    int64  `json:"unit_amount"`
	GrossAmount   int64  `json:"gross_amount"`
	TaxAmount     int64  `json:"tax_amount"`
	TaxableAmount int64  `json:"taxable_amount"`
	NetAmount     int64  `json:"net_amount"`
	Currency      string `json:"currency"`
	Type          string `json:"type"`
	TaxInclusive  bool   `json:"tax_inclusive"`
	Unit          string `json:"unit"`
	Quantity      int    `json:"quantity"`
}

// InvoiceAddress is a billing or shipping address on an invoice customer.
type InvoiceAddress struct {
	Line1   string `json:"line1"`
	Line2   string `json:"line2,omitempty"`
	City    string `json:"city"`
	Zipcode string `json:"zipcode"`
	State   string `json:"state"`
	Country string `json:"country"`
}

// InvoiceCustomerParams identify the customer an invoice is issued to,
// used when no customer id is supplied.
type InvoiceCustomerParams struct {
	Name            string           `json:"name"`
	Email           string           `json:"email,omitempty"`
	Contact         string           `json:"contact,omitempty"`
	BillingAddress  []InvoiceAddress `json:"billing_address,omitempty"`
	ShippingAddress []InvoiceAddress `json:"shipping_address,omitempty"`
}

// InvoiceLineItemParams is one line to bill on a new invoice: either an
// item id or an inline name/amount pair.
type InvoiceLineItemParams struct {
	ItemID      string `json:"item_id,omitempty"`
	Name        string `json:"name,omitempty"`
	Description string `json:"description,omitempty"`
	Amount      int64  `json:"amount,omitempty"`
	Currency    string `json:"currency,omitempty"`
	Quantity    int    `json:"quantity,omitempty"`
}

// InvoiceParams describe an invoice for create and edit calls.
type InvoiceParams struct {
	Type           string
	Description    string
	Draft          string
	CustomerID     string
	Customer       *InvoiceCustomerParams
	LineItems      []InvoiceLineItemParams
	ExpireBy       any
	SMSNotify      *bool
	EmailNotify    *bool
	PartialPayment *bool
	Currency       string
	Notes          Notes
	Extra          map[string]any
}

func (p *InvoiceParams) payload() map[string]any {
	body := map[string]any{}
	if p == nil {
		return body
	}
	if p.Type != "" {
		body["type"] = p.Type
	}
	if p.Description != "" {
		body["description"] = p.Description
	}
	if p.Draft != "" {
		body["draft"] = p.Draft
	}
	if p.CustomerID != "" {
		body["customer_id"] = p.CustomerID
	}
	if p.Customer != nil {
		body["customer"] = p.Customer
	}
	if len(p.LineItems) > 0 {
		body["line_items"] = p.LineItems
	}
	if p.ExpireBy != nil {
		body["expire_by"] = normalizeDate(p.ExpireBy)
	}
	if smsNotify := normalizeBoolean(p.SMSNotify); smsNotify != nil {
		body["sms_notify"] = smsNotify
	}
	if emailNotify := normalizeBoolean(p.EmailNotify); emailNotify != nil {
		body["email_notify"] = emailNotify
	}
	if partial := normalizeBoolean(p.PartialPayment); partial != nil {
		body["partial_payment"] = partial
	}
	if p.Currency != "" {
		body["currency"] = p.Currency
	}
	return lo.Assign(withNotes(body, p.Notes), p.Extra)
}

// InvoicesService exposes the invoice endpoints.
type InvoicesService struct {
	api *apiClient
}

// Create creates an invoice of any type (invoice, link or ecod).
func (s *InvoicesService) Create(ctx context.Context, params *InvoiceParams) (*Invoice, error) {
	var out Invoice
	if err := s.api.Post(ctx, joinPath("invoices"), params.payload(), &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Edit patches a drafted invoice with new attributes.
func (s *InvoicesService) Edit(ctx context.Context, invoiceID string, params *InvoiceParams) (*Invoice, error) {
	if invoiceID == "" {
		return nil, newMissingParameter(invoiceIDRequired)
	}
	var out Invoice
	if err := s.api.Patch(ctx, joinPath("invoices", invoiceID), params.payload(), &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Issue issues a drafted invoice.
func (s *InvoicesService) Issue(ctx context.Context, invoiceID string) (*Invoice, error) {
	if invoiceID == "" {
		return nil, newMissingParameter(invoiceIDRequired)
	}
	var out Invoice
	if err := s.api.Post(ctx, joinPath("invoices", invoiceID, "issue"), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Cancel cancels an issued invoice.
func (s *InvoicesService) Cancel(ctx context.Context, invoiceID string) (*Invoice, error) {
	if invoiceID == "" {
		return nil, newMissingParameter(invoiceIDRequired)
	}
	var out Invoice
	if err := s.api.Post(ctx, joinPath("invoices", invoiceID, "cancel"), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Delete deletes a drafted invoice.
func (s *InvoicesService) Delete(ctx context.Context, invoiceID string) error {
	if invoiceID == "" {
		return newMissingParameter(invoiceIDRequired)
	}
	return s.api.Delete(ctx, joinPath("invoices", invoiceID), nil)
}

// Fetch returns the invoice with the given id.
func (s *InvoicesService) Fetch(ctx context.Context, invoiceID string) (*Invoice, error) {
	if invoiceID == "" {
		return nil, newMissingParameter(invoiceIDRequired)
	}
	var out Invoice
	if err := s.api.Get(ctx, joinPath("invoices", invoiceID), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// All lists invoices matching the given filter options.
func (s *InvoicesService) All(ctx context.Context, opts *ListOptions) (*Collection[Invoice], error) {
	var out Collection[Invoice]
	if err := s.api.Get(ctx, joinPath("invoices"), opts.query(), &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// NotifyBy sends or re-sends the invoice notification through the given
// medium (sms or email).
func (s *InvoicesService) NotifyBy(ctx context.Context, invoiceID, medium string) error {
	if invoiceID == "" {
		return newMissingParameter(invoiceIDRequired)
	}
	if medium == "" {
		return newMissingParameter("`medium` is required")
	}
	return s.api.Post(ctx, joinPath("invoices", invoiceID, "notify_by", medium), nil, nil)
}
