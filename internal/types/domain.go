package types

// ------------------------------
// Core Domain Entities
// ------------------------------

// TransactionStatus is the lifecycle state the service reports for a
// payment or payout attempt.
type TransactionStatus string

const (
	StatusCreated    TransactionStatus = "CREATED"
	StatusPending    TransactionStatus = "PENDING"
	StatusSuccessful TransactionStatus = "SUCCESSFUL"
	StatusFailed     TransactionStatus = "FAILED"
	StatusExpired    TransactionStatus = "EXPIRED"
)

// Final reports whether the status is terminal: the service will not move
// the transaction past SUCCESSFUL, FAILED or EXPIRED.
func (s TransactionStatus) Final() bool {
	switch s {
	case StatusSuccessful, StatusFailed, StatusExpired:
		return true
	}
	return false
}

// Payment channels accepted in request medium fields.
const (
	MediumMobileMoney = "mobile money"
	MediumOrangeMoney = "orange money"
	// MediumFapshi targets the recipient's Fapshi account; payouts over it
	// are addressed by email instead of phone.
	MediumFapshi = "fapshi"
)

// Transaction is the server-owned record keyed by transId. Every field is
// populated by the remote service and relayed verbatim; the client never
// fills or rewrites any of them. Dates stay strings for the same reason.
type Transaction struct {
	TransID          string            `json:"transId"`
	Status           TransactionStatus `json:"status"`
	Medium           string            `json:"medium,omitempty"`
	ServiceName      string            `json:"serviceName,omitempty"`
	TransType        string            `json:"transType,omitempty"`
	Amount           int               `json:"amount,omitempty"`
	Revenue          int               `json:"revenue,omitempty"`
	PayerName        string            `json:"payerName,omitempty"`
	Email            string            `json:"email,omitempty"`
	RedirectURL      string            `json:"redirectUrl,omitempty"`
	ExternalID       string            `json:"externalId,omitempty"`
	UserID           string            `json:"userId,omitempty"`
	Webhook          string            `json:"webhook,omitempty"`
	FinancialTransID string            `json:"financialTransId,omitempty"`
	DateInitiated    string            `json:"dateInitiated,omitempty"`
	DateConfirmed    string            `json:"dateConfirmed,omitempty"`
}

// Balance is the service account balance returned by GET /balance.
type Balance struct {
	Service  string `json:"service,omitempty"`
	Balance  int    `json:"balance"`
	Currency string `json:"currency,omitempty"`
}
