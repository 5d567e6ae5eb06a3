package api

import (
	"context"
	"net/http"

	"github.com/Fapshi/fapshi-go/internal/types"
)

// GetBalance reports the merchant's current service balance.
func GetBalance(ctx context.Context, httpClient *http.Client, baseURL string) (*types.Balance, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	var b types.Balance
	if err := do(ctx, httpClient, baseURL, http.MethodGet, "/balance", "balance", nil, nil, &b); err != nil {
		return nil, err
	}
	return &b, nil
}
