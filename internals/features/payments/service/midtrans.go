package service

import (
	"errors"
	"fmt"

	midtrans "github.com/midtrans/midtrans-go"
	"github.com/midtrans/midtrans-go/coreapi"
	"github.com/midtrans/midtrans-go/snap"
)

/* =========================================================
   Midtrans Client

   Snap untuk pembuatan token pembayaran, Core API untuk cek
   status transaksi (reconciliation). Dua-duanya dibungkus
   interface kecil supaya controller bisa diuji dengan fake.
========================================================= */

// ErrGatewayUnavailable: gagal mencapai gateway (network/timeout).
// Record lokal tetap pending, aman di-retry oleh caller.
var ErrGatewayUnavailable = errors.New("payment gateway unavailable")

type SnapTokenizer interface {
	CreateTransaction(req *snap.Request) (*snap.Response, *midtrans.Error)
}

type TransactionChecker interface {
	CheckTransaction(orderID string) (*coreapi.TransactionStatusResponse, *midtrans.Error)
}

var (
	snapClient snap.Client
	coreClient coreapi.Client
)

// InitMidtrans harus dipanggil saat bootstrap app.
// useProduction=true untuk Production, false untuk Sandbox.
func InitMidtrans(serverKey string, useProduction bool) {
	env := midtrans.Sandbox
	if useProduction {
		env = midtrans.Production
	}
	snapClient.New(serverKey, env)
	coreClient.New(serverKey, env)
}

func Snap() SnapTokenizer      { return &snapClient }
func Core() TransactionChecker { return &coreClient }

/* =========================================================
   Token issuance
========================================================= */

type CustomerInput struct {
	Name  string
	Phone string
	Email string
}

// GenerateSnapToken membuat token Snap + redirect URL untuk sebuah order ref.
// Kegagalan gateway dikembalikan sebagai ErrGatewayUnavailable; record lokal
// tidak boleh dianggap confirmed oleh caller.
func GenerateSnapToken(tokenizer SnapTokenizer, orderRef string, grossAmount int64, cust CustomerInput) (token string, redirectURL string, err error) {
	if grossAmount <= 0 {
		return "", "", errors.New("invalid gross amount")
	}
	if orderRef == "" {
		return "", "", errors.New("order ref is required")
	}

	req := &snap.Request{
		TransactionDetails: midtrans.TransactionDetails{
			OrderID:  orderRef,
			GrossAmt: grossAmount,
		},
		CustomerDetail: &midtrans.CustomerDetails{
			FName: cust.Name,
			Phone: cust.Phone,
			Email: cust.Email,
		},
	}

	resp, midErr := tokenizer.CreateTransaction(req)
	if midErr != nil || resp == nil {
		return "", "", fmt.Errorf("%w: %v", ErrGatewayUnavailable, midErr)
	}
	return resp.Token, resp.RedirectURL, nil
}

// CheckTransactionStatus menanyakan status terkini sebuah transaksi ke
// Core API (jalur reconciliation kalau notifikasi terlewat).
func CheckTransactionStatus(checker TransactionChecker, orderRef string) (transactionStatus, fraudStatus string, err error) {
	resp, midErr := checker.CheckTransaction(orderRef)
	if midErr != nil || resp == nil {
		return "", "", fmt.Errorf("%w: %v", ErrGatewayUnavailable, midErr)
	}
	return resp.TransactionStatus, resp.FraudStatus, nil
}
