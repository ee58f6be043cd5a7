package razorpay

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVirtualAccountsCreate(t *testing.T) {
	server := newStubServer(t, http.StatusOK, `{"id": "va_1", "entity": "virtual_account", "status": "active"}`)
	client := newTestClient(t, server)

	va, err := client.VirtualAccounts.Create(context.Background(), &VirtualAccountCreateParams{
		ReceiverTypes: []string{"bank_account"},
		Description:   "Collection account",
		CustomerID:    "cust_1",
		Notes:         Notes{"project": "alpha"},
	})
	require.NoError(t, err)

	req := server.lastRequest(t)
	assert.Equal(t, http.MethodPost, req.Method)
	assert.Equal(t, "/virtual_accounts", req.Path)
	assert.JSONEq(t, `{
		"receivers": {"types": ["bank_account"]},
		"description": "Collection account",
		"customer_id": "cust_1",
		"notes[project]": "alpha"
	}`, string(req.Body))
	assert.Equal(t, "va_1", va.ID)
}

func TestVirtualAccountsClose(t *testing.T) {
	server := newStubServer(t, http.StatusOK, `{"id": "va_1", "status": "closed"}`)
	client := newTestClient(t, server)

	va, err := client.VirtualAccounts.Close(context.Background(), "va_1")
	require.NoError(t, err)

	req := server.lastRequest(t)
	assert.Equal(t, http.MethodPost, req.Method)
	assert.Equal(t, "/virtual_accounts/va_1/close", req.Path)
	assert.Equal(t, "closed", va.Status)

	_, err = client.VirtualAccounts.Close(context.Background(), "")
	require.Error(t, err)
	assert.True(t, IsMissingParameter(err))
}

func TestVirtualAccountsFetchPayments(t *testing.T) {
	server := newStubServer(t, http.StatusOK,
		`{"entity": "collection", "count": 1, "items": [{"id": "pay_1"}]}`)
	client := newTestClient(t, server)

	payments, err := client.VirtualAccounts.FetchPayments(context.Background(), "va_1")
	require.NoError(t, err)

	assert.Equal(t, "/virtual_accounts/va_1/payments", server.lastRequest(t).Path)
	require.Len(t, payments.Items, 1)
	assert.Equal(t, "pay_1", payments.Items[0].ID)
}
