package api

import (
	"context"
	"net/http"

	"github.com/Fapshi/fapshi-go/internal/types"
)

// InitiatePay creates a hosted payment link the payer completes in a browser.
func InitiatePay(ctx context.Context, httpClient *http.Client, baseURL string, req types.InitiatePayRequest) (*types.InitiatePayResponse, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if err := types.ValidateAmount(req.Amount); err != nil {
		return nil, err
	}
	var out types.InitiatePayResponse
	if err := do(ctx, httpClient, baseURL, http.MethodPost, "/initiate-pay", "initiate_pay", nil, req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// DirectPay pushes a payment request straight to the payer's mobile device.
func DirectPay(ctx context.Context, httpClient *http.Client, baseURL string, req types.DirectPayRequest) (*types.DirectPayResponse, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if err := types.ValidateAmount(req.Amount); err != nil {
		return nil, err
	}
	if err := types.ValidatePhone(req.Phone); err != nil {
		return nil, err
	}
	var out types.DirectPayResponse
	if err := do(ctx, httpClient, baseURL, http.MethodPost, "/direct-pay", "direct_pay", nil, req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// GetPaymentStatus fetches the current state of a transaction.
func GetPaymentStatus(ctx context.Context, httpClient *http.Client, baseURL, transID string) (*types.Transaction, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if err := types.ValidateTransID(transID); err != nil {
		return nil, err
	}
	var tx types.Transaction
	if err := do(ctx, httpClient, baseURL, http.MethodGet, "/payment-status/"+transID, "payment_status", nil, nil, &tx); err != nil {
		return nil, err
	}
	// The service answers 200 with an empty object for unknown ids.
	if tx.TransID == "" {
		return nil, types.NewStatusError(http.StatusNotFound, "transaction not found")
	}
	return &tx, nil
}

// ExpirePay invalidates a payment link so it can no longer be paid.
func ExpirePay(ctx context.Context, httpClient *http.Client, baseURL, transID string) (*types.Transaction, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if err := types.ValidateTransID(transID); err != nil {
		return nil, err
	}
	var tx types.Transaction
	if err := do(ctx, httpClient, baseURL, http.MethodPost, "/expire-pay", "expire_pay", nil, types.ExpirePayRequest{TransID: transID}, &tx); err != nil {
		return nil, err
	}
	return &tx, nil
}
