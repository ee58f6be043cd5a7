package razorpay

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTransportErrorMapping(t *testing.T) {
	server := newStubServer(t, http.StatusBadRequest,
		`{"error": {"description": "bad request", "code": "BAD_REQUEST_ERROR"}}`)
	client := newTestClient(t, server)

	_, err := client.Payments.Fetch(context.Background(), "pay_1")
	require.Error(t, err)

	apiErr, ok := IsError(err)
	require.True(t, ok)
	assert.Equal(t, ErrMessageAPI, apiErr.Message)
	assert.Equal(t, http.StatusBadRequest, apiErr.StatusCode)
	assert.Equal(t, "bad request", apiErr.Data["description"])
	assert.Equal(t, "BAD_REQUEST_ERROR", apiErr.Data["code"])
}

func TestTransportErrorWithoutPayload(t *testing.T) {
	server := newStubServer(t, http.StatusBadGateway, `upstream unavailable`)
	client := newTestClient(t, server)

	_, err := client.Orders.Fetch(context.Background(), "order_1")
	require.Error(t, err)

	apiErr, ok := IsError(err)
	require.True(t, ok)
	assert.Equal(t, http.StatusBadGateway, apiErr.StatusCode)
	assert.Equal(t, map[string]any{}, apiErr.Data)
}

func TestTransportNetworkFailure(t *testing.T) {
	server := newStubServer(t, http.StatusOK, `{}`)
	client := newTestClient(t, server)
	server.Close()

	_, err := client.Payments.Fetch(context.Background(), "pay_1")
	require.Error(t, err)

	apiErr, ok := IsError(err)
	require.True(t, ok)
	assert.Equal(t, ErrMessageAPI, apiErr.Message)
	assert.Equal(t, -1, apiErr.StatusCode)
	assert.Equal(t, map[string]any{}, apiErr.Data)
	assert.Error(t, apiErr.Unwrap())
}

func TestTransportGetEncodesQuery(t *testing.T) {
	server := newStubServer(t, http.StatusOK, `{"entity": "collection", "count": 0, "items": []}`)
	client := newTestClient(t, server)

	_, err := client.Payments.All(context.Background(), &ListOptions{
		From:  "2023-01-01T00:00:00Z",
		To:    1700000000,
		Count: 25,
		Skip:  5,
		Extra: map[string]any{"expand[]": "card"},
	})
	require.NoError(t, err)

	req := server.lastRequest(t)
	assert.Equal(t, http.MethodGet, req.Method)
	assert.Equal(t, "/payments", req.Path)
	assert.Equal(t, "1672531200", req.Query.Get("from"))
	assert.Equal(t, "1700000000", req.Query.Get("to"))
	assert.Equal(t, "25", req.Query.Get("count"))
	assert.Equal(t, "5", req.Query.Get("skip"))
	assert.Equal(t, "card", req.Query.Get("expand[]"))
	assert.Empty(t, req.Body)
}

func TestTransportListDefaults(t *testing.T) {
	server := newStubServer(t, http.StatusOK, `{"entity": "collection", "count": 0, "items": []}`)
	client := newTestClient(t, server)

	_, err := client.Payments.All(context.Background(), nil)
	require.NoError(t, err)

	req := server.lastRequest(t)
	assert.Equal(t, "10", req.Query.Get("count"))
	assert.Equal(t, "0", req.Query.Get("skip"))
	assert.Empty(t, req.Query.Get("from"))
	assert.Empty(t, req.Query.Get("to"))
}

func TestTransportDeleteHasNoPayload(t *testing.T) {
	server := newStubServer(t, http.StatusOK, `[]`)
	client := newTestClient(t, server)

	err := client.Addons.Delete(context.Background(), "ao_1")
	require.NoError(t, err)

	req := server.lastRequest(t)
	assert.Equal(t, http.MethodDelete, req.Method)
	assert.Equal(t, "/addons/ao_1", req.Path)
	assert.Empty(t, req.Body)
	assert.Empty(t, req.Header.Get("Content-Type"))
}

func TestTransportPostSetsContentType(t *testing.T) {
	server := newStubServer(t, http.StatusOK, `{"id": "order_1"}`)
	client := newTestClient(t, server)

	_, err := client.Orders.Create(context.Background(), &OrderCreateParams{Amount: 100})
	require.NoError(t, err)

	req := server.lastRequest(t)
	assert.Equal(t, "application/json", req.Header.Get("Content-Type"))
}

func TestTransportPathEscapesIdentifiers(t *testing.T) {
	server := newStubServer(t, http.StatusOK, `{}`)
	client := newTestClient(t, server)

	_, err := client.Payments.Fetch(context.Background(), "pay_1/../../admin")
	require.NoError(t, err)

	req := server.lastRequest(t)
	assert.Equal(t, "/payments/pay_1%2F..%2F..%2Fadmin", req.RawPath)
}

func TestErrorPayload(t *testing.T) {
	tests := []struct {
		name string
		body string
		want map[string]any
	}{
		{
			name: "nested error object",
			body: `{"error": {"description": "nope"}}`,
			want: map[string]any{"description": "nope"},
		},
		{
			name: "missing error field",
			body: `{"message": "nope"}`,
			want: map[string]any{},
		},
		{
			name: "not json",
			body: `<html>502</html>`,
			want: map[string]any{},
		},
		{
			name: "empty body",
			body: ``,
			want: map[string]any{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, errorPayload([]byte(tt.body)))
		})
	}
}
