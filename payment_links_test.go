package razorpay

import (
	"context"
	"net/http"
	"testing"

	"github.com/samber/lo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPaymentLinksCreate(t *testing.T) {
	server := newStubServer(t, http.StatusOK, `{"id": "plink_1", "short_url": "https://rzp.io/i/abc"}`)
	client := newTestClient(t, server)

	link, err := client.PaymentLinks.Create(context.Background(), &PaymentLinkCreateParams{
		Amount:        1000,
		Currency:      "INR",
		AcceptPartial: lo.ToPtr(true),
		Description:   "Invoice #42",
		Customer: &PaymentLinkCustomer{
			Name:    "Gaurav",
			Contact: "9123456780",
		},
		Notify: &PaymentLinkNotify{SMS: true, Email: true},
		Notes:  Notes{"order": "ord_42"},
	})
	require.NoError(t, err)

	req := server.lastRequest(t)
	assert.Equal(t, http.MethodPost, req.Method)
	assert.Equal(t, "/payment-links", req.Path)
	assert.JSONEq(t, `{
		"amount": 1000,
		"currency": "INR",
		"accept_partial": 1,
		"description": "Invoice #42",
		"customer": {"name": "Gaurav", "contact": "9123456780"},
		"notify": {"sms": true, "email": true},
		"notes[order]": "ord_42"
	}`, string(req.Body))
	assert.Equal(t, "plink_1", link.ID)
}

func TestPaymentLinksCreateMissingAmount(t *testing.T) {
	server := newStubServer(t, http.StatusOK, `{}`)
	client := newTestClient(t, server)

	_, err := client.PaymentLinks.Create(context.Background(), &PaymentLinkCreateParams{Currency: "INR"})
	require.Error(t, err)
	assert.True(t, IsMissingParameter(err))

	_, err = client.PaymentLinks.Create(context.Background(), nil)
	require.Error(t, err)
	assert.True(t, IsMissingParameter(err))

	assert.Zero(t, server.requestCount())
}

func TestPaymentLinksAll(t *testing.T) {
	server := newStubServer(t, http.StatusOK, `{"payment_links": [{"id": "plink_1"}]}`)
	client := newTestClient(t, server)

	list, err := client.PaymentLinks.All(context.Background(), &PaymentLinkListOptions{
		PaymentID:   "pay_1",
		ReferenceID: "ref_1",
	})
	require.NoError(t, err)

	req := server.lastRequest(t)
	assert.Equal(t, "/payment-links", req.Path)
	assert.Equal(t, "pay_1", req.Query.Get("payment_id"))
	assert.Equal(t, "ref_1", req.Query.Get("reference_id"))
	require.Len(t, list.PaymentLinks, 1)
	assert.Equal(t, "plink_1", list.PaymentLinks[0].ID)
}

func TestPaymentLinksFetch(t *testing.T) {
	server := newStubServer(t, http.StatusOK, `{"id": "plink_1"}`)
	client := newTestClient(t, server)

	_, err := client.PaymentLinks.Fetch(context.Background(), "plink_1")
	require.NoError(t, err)
	assert.Equal(t, "/payment-links/plink_1", server.lastRequest(t).Path)

	_, err = client.PaymentLinks.Fetch(context.Background(), "")
	require.Error(t, err)
	assert.True(t, IsMissingParameter(err))
}
