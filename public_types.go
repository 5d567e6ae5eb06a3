package fapshi

import "github.com/Fapshi/fapshi-go/internal/types"

// Public type aliases so SDK consumers can import only the fapshi package.
// Requests
type (
	InitiatePayRequest = types.InitiatePayRequest
	DirectPayRequest   = types.DirectPayRequest
	PayoutRequest      = types.PayoutRequest
	SearchQuery        = types.SearchQuery

	// Domain entities
	Transaction       = types.Transaction
	TransactionStatus = types.TransactionStatus
	Balance           = types.Balance

	// Responses
	InitiatePayResponse = types.InitiatePayResponse
	DirectPayResponse   = types.DirectPayResponse
	PayoutResponse      = types.PayoutResponse
)

// Transaction statuses as reported by the service.
const (
	StatusCreated    = types.StatusCreated
	StatusPending    = types.StatusPending
	StatusSuccessful = types.StatusSuccessful
	StatusFailed     = types.StatusFailed
	StatusExpired    = types.StatusExpired
)

// Payment and payout mediums.
const (
	MediumMobileMoney = types.MediumMobileMoney
	MediumOrangeMoney = types.MediumOrangeMoney
	MediumFapshi      = types.MediumFapshi
)

// MinAmount is the smallest chargeable amount in XAF.
const MinAmount = types.MinAmount

// Errors re-exported in errors.go
