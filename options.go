package razorpay

import (
	"net/http"

	"github.com/hashicorp/go-retryablehttp"
	"go.uber.org/zap"
)

// Option configures the client at construction time.
type Option func(*apiClient)

// WithBaseURL overrides the API host. Intended for sandboxes and tests.
func WithBaseURL(baseURL string) Option {
	return func(a *apiClient) {
		a.baseURL = baseURL
	}
}

// WithHeaders injects custom headers on every request. Only allow-listed
// header names (X-Razorpay-Account) are kept; the rest are dropped.
func WithHeaders(headers map[string]string) Option {
	return func(a *apiClient) {
		a.headers = validHeaders(headers)
	}
}

// WithHTTPClient replaces the underlying HTTP client, e.g. to tune
// timeouts or transport settings.
func WithHTTPClient(client *http.Client) Option {
	return func(a *apiClient) {
		if client != nil {
			a.client = client
		}
	}
}

// WithLogger attaches a logger. Requests are logged at debug level and
// failures at error level; the default logger discards everything.
func WithLogger(logger *zap.Logger) Option {
	return func(a *apiClient) {
		if logger != nil {
			a.logger = logger.Sugar()
		}
	}
}

// WithRetry installs a transport that retries idempotency-safe failures up
// to maxRetries times with exponential backoff. The core contract stays
// retry-free unless this option is used.
func WithRetry(maxRetries int) Option {
	return func(a *apiClient) {
		rc := retryablehttp.NewClient()
		rc.RetryMax = maxRetries
		rc.HTTPClient.Timeout = defaultTimeout
		rc.Logger = nil
		a.client = rc.StandardClient()
	}
}
