package api

import (
	"context"
	"net/http"

	"github.com/Fapshi/fapshi-go/internal/types"
)

// Payout sends money from the merchant balance to a mobile money number or
// another Fapshi account.
func Payout(ctx context.Context, httpClient *http.Client, baseURL string, req types.PayoutRequest) (*types.PayoutResponse, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if err := types.ValidateAmount(req.Amount); err != nil {
		return nil, err
	}
	if err := types.ValidatePayoutTarget(req.Medium, req.Phone, req.Email); err != nil {
		return nil, err
	}
	var out types.PayoutResponse
	if err := do(ctx, httpClient, baseURL, http.MethodPost, "/payout", "payout", nil, req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
