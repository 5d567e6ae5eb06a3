package types

// ------------------------------
// Response Types
// ------------------------------

// InitiatePayResponse acknowledges a created payment link.
type InitiatePayResponse struct {
	Message string `json:"message"`
	// Link is the hosted checkout page the payer should be sent to.
	Link          string `json:"link"`
	TransID       string `json:"transId"`
	DateInitiated string `json:"dateInitiated,omitempty"`
}

// DirectPayResponse acknowledges a direct charge request. The charge itself
// completes asynchronously on the payer's handset; poll the transaction for
// the outcome.
type DirectPayResponse struct {
	Message       string `json:"message"`
	TransID       string `json:"transId"`
	DateInitiated string `json:"dateInitiated,omitempty"`
}

// PayoutResponse acknowledges an accepted payout request.
type PayoutResponse struct {
	Message       string `json:"message"`
	TransID       string `json:"transId"`
	DateInitiated string `json:"dateInitiated,omitempty"`
}
