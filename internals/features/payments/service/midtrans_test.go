package service

import (
	"testing"

	midtrans "github.com/midtrans/midtrans-go"
	"github.com/midtrans/midtrans-go/coreapi"
	"github.com/midtrans/midtrans-go/snap"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeSnap struct {
	resp    *snap.Response
	err     *midtrans.Error
	lastReq *snap.Request
}

func (f *fakeSnap) CreateTransaction(req *snap.Request) (*snap.Response, *midtrans.Error) {
	f.lastReq = req
	return f.resp, f.err
}

type fakeCore struct {
	resp *coreapi.TransactionStatusResponse
	err  *midtrans.Error
}

func (f *fakeCore) CheckTransaction(orderID string) (*coreapi.TransactionStatusResponse, *midtrans.Error) {
	return f.resp, f.err
}

func TestGenerateSnapToken_Success(t *testing.T) {
	fake := &fakeSnap{resp: &snap.Response{
		Token:       "snap-token-123",
		RedirectURL: "https://app.sandbox.midtrans.com/snap/v2/vtweb/snap-token-123",
	}}

	token, redirect, err := GenerateSnapToken(fake, "DNT-x-CPG-y", 500_000, CustomerInput{
		Name:  "Fulan",
		Phone: "081234567890",
		Email: "fulan@example.com",
	})
	require.NoError(t, err)
	assert.Equal(t, "snap-token-123", token)
	assert.Equal(t, "https://app.sandbox.midtrans.com/snap/v2/vtweb/snap-token-123", redirect)

	// order ref dan nominal diteruskan apa adanya ke gateway
	require.NotNil(t, fake.lastReq)
	assert.Equal(t, "DNT-x-CPG-y", fake.lastReq.TransactionDetails.OrderID)
	assert.Equal(t, int64(500_000), fake.lastReq.TransactionDetails.GrossAmt)
}

func TestGenerateSnapToken_GatewayError(t *testing.T) {
	fake := &fakeSnap{err: &midtrans.Error{Message: "midtrans is down"}}

	token, redirect, err := GenerateSnapToken(fake, "DNT-x-CPG-y", 500_000, CustomerInput{Name: "Fulan"})
	assert.ErrorIs(t, err, ErrGatewayUnavailable)
	assert.Empty(t, token)
	assert.Empty(t, redirect)
}

func TestGenerateSnapToken_NilResponse(t *testing.T) {
	fake := &fakeSnap{}

	_, _, err := GenerateSnapToken(fake, "DNT-x-CPG-y", 500_000, CustomerInput{})
	assert.ErrorIs(t, err, ErrGatewayUnavailable)
}

func TestGenerateSnapToken_InvalidInput(t *testing.T) {
	fake := &fakeSnap{resp: &snap.Response{Token: "t"}}

	_, _, err := GenerateSnapToken(fake, "DNT-x-CPG-y", 0, CustomerInput{})
	assert.Error(t, err)

	_, _, err = GenerateSnapToken(fake, "", 1000, CustomerInput{})
	assert.Error(t, err)

	// gateway tidak pernah dipanggil untuk input cacat
	assert.Nil(t, fake.lastReq)
}

func TestCheckTransactionStatus_Success(t *testing.T) {
	fake := &fakeCore{resp: &coreapi.TransactionStatusResponse{
		TransactionStatus: "settlement",
		FraudStatus:       "accept",
	}}

	transactionStatus, fraudStatus, err := CheckTransactionStatus(fake, "DNT-x-CPG-y")
	require.NoError(t, err)
	assert.Equal(t, "settlement", transactionStatus)
	assert.Equal(t, "accept", fraudStatus)
}

func TestCheckTransactionStatus_GatewayError(t *testing.T) {
	fake := &fakeCore{err: &midtrans.Error{Message: "timeout"}}

	_, _, err := CheckTransactionStatus(fake, "DNT-x-CPG-y")
	assert.ErrorIs(t, err, ErrGatewayUnavailable)
}
