package razorpay

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"go.uber.org/zap"
)

const defaultTimeout = 30 * time.Second

// razorpayAccountHeader scopes a request to a sub-merchant account. It is
// the only caller-overridable header; everything else is stripped.
const razorpayAccountHeader = "X-Razorpay-Account"

var allowedHeaders = map[string]struct{}{
	razorpayAccountHeader: {},
}

// validHeaders filters a caller-supplied header map through the allow-list.
// Membership is checked by exact name; a nil map yields an empty result.
func validHeaders(headers map[string]string) map[string]string {
	result := map[string]string{}
	for name, value := range headers {
		if _, ok := allowedHeaders[name]; ok {
			result[name] = value
		}
	}
	return result
}

// apiClient performs one authenticated HTTP call per invocation and
// normalizes its outcome. It holds no per-call state and is safe to share
// across concurrent calls.
type apiClient struct {
	baseURL   string
	userAgent string
	keyID     string
	keySecret string
	headers   map[string]string
	client    *http.Client
	logger    *zap.SugaredLogger
}

func newAPIClient(keyID, keySecret string) *apiClient {
	return &apiClient{
		baseURL:   apiHostURL,
		userAgent: fmt.Sprintf("%s/%s", sdkName, Version),
		keyID:     keyID,
		keySecret: keySecret,
		headers:   map[string]string{},
		client:    &http.Client{Timeout: defaultTimeout},
		logger:    zap.NewNop().Sugar(),
	}
}

func (a *apiClient) Get(ctx context.Context, path string, payload map[string]any, out any) error {
	return a.request(ctx, http.MethodGet, path, payload, out)
}

func (a *apiClient) Post(ctx context.Context, path string, payload map[string]any, out any) error {
	return a.request(ctx, http.MethodPost, path, payload, out)
}

func (a *apiClient) Put(ctx context.Context, path string, payload map[string]any, out any) error {
	return a.request(ctx, http.MethodPut, path, payload, out)
}

func (a *apiClient) Patch(ctx context.Context, path string, payload map[string]any, out any) error {
	return a.request(ctx, http.MethodPatch, path, payload, out)
}

func (a *apiClient) Delete(ctx context.Context, path string, out any) error {
	return a.request(ctx, http.MethodDelete, path, nil, out)
}

func (a *apiClient) request(ctx context.Context, method, path string, payload map[string]any, out any) error {
	requestURL := a.baseURL + path

	var body io.Reader
	if method == http.MethodGet {
		if query := encodeQuery(payload); query != "" {
			requestURL += "?" + query
		}
	} else if payload != nil {
		encoded, err := json.Marshal(payload)
		if err != nil {
			return newError(ErrMessageAPI, err.Error(), noStatusCode).withCause(err)
		}
		body = bytes.NewReader(encoded)
	}

	req, err := http.NewRequestWithContext(ctx, method, requestURL, body)
	if err != nil {
		return newError(ErrMessageAPI, err.Error(), noStatusCode).withCause(err)
	}

	req.SetBasicAuth(a.keyID, a.keySecret)
	req.Header.Set("User-Agent", a.userAgent)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	for name, value := range a.headers {
		req.Header.Set(name, value)
	}

	a.logger.Debugw("razorpay api request", "method", method, "url", requestURL)

	resp, err := a.client.Do(req)
	if err != nil {
		a.logger.Errorw("razorpay api request failed", "method", method, "url", requestURL, "error", err)
		return newError(ErrMessageAPI, nil, noStatusCode).withCause(err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return newError(ErrMessageAPI, nil, resp.StatusCode).withCause(err)
	}

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		a.logger.Errorw("razorpay api error response",
			"method", method,
			"url", requestURL,
			"status_code", resp.StatusCode)
		return newError(ErrMessageAPI, errorPayload(respBody), resp.StatusCode)
	}

	if out != nil && len(respBody) > 0 {
		if err := json.Unmarshal(respBody, out); err != nil {
			return newError(ErrMessageAPI, err.Error(), resp.StatusCode).withCause(err)
		}
	}
	return nil
}

// errorPayload extracts the nested error object from a failed response
// body. The service wraps details under an "error" field; when the body is
// not of that shape the payload stays empty.
func errorPayload(body []byte) map[string]any {
	var envelope struct {
		Error map[string]any `json:"error"`
	}
	if err := json.Unmarshal(body, &envelope); err != nil || envelope.Error == nil {
		return map[string]any{}
	}
	return envelope.Error
}

// encodeQuery renders a payload as a query string. nil values are omitted;
// everything else is rendered in its normalized scalar form.
func encodeQuery(payload map[string]any) string {
	if len(payload) == 0 {
		return ""
	}
	values := url.Values{}
	for key, value := range payload {
		if value == nil {
			continue
		}
		values.Set(key, fmt.Sprint(value))
	}
	return values.Encode()
}

// joinPath builds a resource path from segments, escaping identifiers.
func joinPath(segments ...string) string {
	escaped := make([]string, 0, len(segments))
	for _, s := range segments {
		escaped = append(escaped, url.PathEscape(s))
	}
	return "/" + strings.Join(escaped, "/")
}
