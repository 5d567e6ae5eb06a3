package types

import (
	"net/url"
	"strconv"
)

// ------------------------------
// Request Types
// ------------------------------

// InitiatePayRequest holds parameters for a hosted payment link.
type InitiatePayRequest struct {
	// Amount to collect, in XAF. Must be at least MinAmount.
	Amount      int    `json:"amount"`
	Email       string `json:"email,omitempty"`
	RedirectURL string `json:"redirectUrl,omitempty"`
	UserID      string `json:"userId,omitempty"`
	ExternalID  string `json:"externalId,omitempty"`
	Message     string `json:"message,omitempty"`
	// CardOnly restricts the generated checkout page to card payments.
	CardOnly bool `json:"cardOnly,omitempty"`
}

// DirectPayRequest holds parameters for charging a mobile wallet directly.
type DirectPayRequest struct {
	Amount int    `json:"amount"`
	Phone  string `json:"phone"`
	// Medium selects the wallet network (MediumMobileMoney or
	// MediumOrangeMoney). Left empty, the service picks it from the number.
	Medium     string `json:"medium,omitempty"`
	Name       string `json:"name,omitempty"`
	Email      string `json:"email,omitempty"`
	UserID     string `json:"userId,omitempty"`
	ExternalID string `json:"externalId,omitempty"`
	Message    string `json:"message,omitempty"`
}

// PayoutRequest holds parameters for sending money out of the service
// account. Medium may additionally be MediumFapshi, in which case the
// recipient is addressed by Email and Phone is ignored.
type PayoutRequest struct {
	Amount     int    `json:"amount"`
	Phone      string `json:"phone,omitempty"`
	Medium     string `json:"medium,omitempty"`
	Name       string `json:"name,omitempty"`
	Email      string `json:"email,omitempty"`
	UserID     string `json:"userId,omitempty"`
	ExternalID string `json:"externalId,omitempty"`
	Message    string `json:"message,omitempty"`
}

// ExpirePayRequest is the body of POST /expire-pay.
type ExpirePayRequest struct {
	TransID string `json:"transId"`
}

// SearchQuery holds the GET /search filters. Zero-valued fields are omitted
// from the request URL.
type SearchQuery struct {
	Status TransactionStatus
	Medium string
	// Start and End bound dateInitiated, formatted YYYY-MM-DD. Relayed
	// verbatim like every other filter.
	Start  string
	End    string
	Amount int
	// Limit caps the result set; the service accepts 1 through 100.
	Limit int
	Sort  string
}

// Values encodes the query, skipping unset fields.
func (q SearchQuery) Values() url.Values {
	v := url.Values{}
	if q.Status != "" {
		v.Set("status", string(q.Status))
	}
	if q.Medium != "" {
		v.Set("medium", q.Medium)
	}
	if q.Start != "" {
		v.Set("start", q.Start)
	}
	if q.End != "" {
		v.Set("end", q.End)
	}
	if q.Amount > 0 {
		v.Set("amt", strconv.Itoa(q.Amount))
	}
	if q.Limit > 0 {
		v.Set("limit", strconv.Itoa(q.Limit))
	}
	if q.Sort != "" {
		v.Set("sort", q.Sort)
	}
	return v
}
