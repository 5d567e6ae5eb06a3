package api

import (
	"context"
	"net/http"

	"github.com/Fapshi/fapshi-go/internal/types"
)

// GetTransactionsByUserID lists the transactions recorded against a
// merchant-assigned user id. Unknown users yield an empty slice.
func GetTransactionsByUserID(ctx context.Context, httpClient *http.Client, baseURL, userID string) ([]types.Transaction, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if err := types.ValidateUserID(userID); err != nil {
		return nil, err
	}
	var txs []types.Transaction
	if err := do(ctx, httpClient, baseURL, http.MethodGet, "/transaction/"+userID, "user_transactions", nil, nil, &txs); err != nil {
		return nil, err
	}
	return txs, nil
}

// SearchTransactions filters the merchant's transactions by status, medium,
// date window and amount.
func SearchTransactions(ctx context.Context, httpClient *http.Client, baseURL string, q types.SearchQuery) ([]types.Transaction, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if err := types.ValidateSearchLimit(q.Limit); err != nil {
		return nil, err
	}
	var txs []types.Transaction
	if err := do(ctx, httpClient, baseURL, http.MethodGet, "/search", "search", q.Values(), nil, &txs); err != nil {
		return nil, err
	}
	return txs, nil
}
