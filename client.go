// Package razorpay is a typed client for the Razorpay REST API. It wraps
// the authenticated resource endpoints (payments, orders, refunds,
// customers, subscriptions, invoices, transfers, virtual accounts, payment
// links, plans, addons) and exposes webhook signature verification.
//
// All failures surface as *Error, whether raised locally before a call or
// mapped from a transport/HTTP failure.
package razorpay

// Version is reported in the User-Agent of every request.
const Version = "1.0.0"

const (
	sdkName    = "razorpay-go"
	apiHostURL = "https://api.razorpay.com/v1"

	// defaultCurrency is applied when an order is created without an
	// explicit currency.
	defaultCurrency = "INR"
)

// Client is the entry point to the API. It is immutable after construction
// and safe for concurrent use; every call is an independent request.
type Client struct {
	api *apiClient

	Payments        *PaymentsService
	PaymentLinks    *PaymentLinksService
	Orders          *OrdersService
	Refunds         *RefundsService
	Customers       *CustomersService
	Subscriptions   *SubscriptionsService
	Invoices        *InvoicesService
	Transfers       *TransfersService
	VirtualAccounts *VirtualAccountsService
	Plans           *PlansService
	Addons          *AddonsService
}

// NewClient builds a client authenticating with the given key pair. Both
// credentials are mandatory; requests use them as HTTP basic auth.
func NewClient(keyID, keySecret string, opts ...Option) (*Client, error) {
	if keyID == "" {
		return nil, newMissingParameter("`key_id` is mandatory")
	}
	if keySecret == "" {
		return nil, newMissingParameter("`key_secret` is mandatory")
	}

	api := newAPIClient(keyID, keySecret)
	for _, opt := range opts {
		opt(api)
	}

	return &Client{
		api:             api,
		Payments:        &PaymentsService{api: api},
		PaymentLinks:    &PaymentLinksService{api: api},
		Orders:          &OrdersService{api: api},
		Refunds:         &RefundsService{api: api},
		Customers:       &CustomersService{api: api},
		Subscriptions:   &SubscriptionsService{api: api},
		Invoices:        &InvoicesService{api: api},
		Transfers:       &TransfersService{api: api},
		VirtualAccounts: &VirtualAccountsService{api: api},
		Plans:           &PlansService{api: api},
		Addons:          &AddonsService{api: api},
	}, nil
}
