package fapshi

import (
	"context"
	"net/http"
	"time"

	"github.com/Fapshi/fapshi-go/internal/api"
	"github.com/Fapshi/fapshi-go/internal/types"
)

// --------------------------------------------------------------------
// Client core
// --------------------------------------------------------------------

// Client talks to one Fapshi deployment on behalf of one service. It holds
// only immutable configuration and an *http.Client, so a single instance is
// safe for concurrent use across goroutines.
type Client struct {
	baseURL string
	http    *http.Client
	apiUser string
	apiKey  string
}

// New constructs a Client from cfg. Additional knobs can be provided via
// functional arguments.
func New(cfg Config, opts ...Option) (*Client, error) {
	if cfg.APIUser == "" {
		return nil, types.NewValidationError("apiuser required")
	}
	if cfg.APIKey == "" {
		return nil, types.NewValidationError("apikey required")
	}
	baseURL, err := cfg.resolveBaseURL()
	if err != nil {
		return nil, err
	}

	c := &Client{
		baseURL: baseURL,
		apiUser: cfg.APIUser,
		apiKey:  cfg.APIKey,
		http:    &http.Client{Timeout: 30 * time.Second},
	}

	// Auto-enable debug via env variable without changing code.
	if debugLoggingRequested() {
		opts = append(opts, WithDebugLogging(true))
	}

	for _, opt := range opts {
		if err := opt(c); err != nil {
			return nil, err
		}
	}

	// Wrap HTTP transport to automatically add the credential headers
	c.wrapTransportWithCredentials()

	return c, nil
}

// wrapTransportWithCredentials wraps the HTTP client's transport to
// automatically add the apiuser/apikey headers to all requests.
func (c *Client) wrapTransportWithCredentials() {
	baseTransport := c.http.Transport
	if baseTransport == nil {
		baseTransport = http.DefaultTransport
	}
	c.http.Transport = &credentialTransport{
		base:    baseTransport,
		apiUser: c.apiUser,
		apiKey:  c.apiKey,
	}
}

// credentialTransport wraps an http.RoundTripper to automatically add the
// service credential headers.
type credentialTransport struct {
	base    http.RoundTripper
	apiUser string
	apiKey  string
}

func (t *credentialTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	// Clone the request to avoid modifying the original
	cloned := req.Clone(req.Context())
	cloned.Header.Set("apiuser", t.apiUser)
	cloned.Header.Set("apikey", t.apiKey)
	return t.base.RoundTrip(cloned)
}

// --------------------------------------------------------------------
// Payment operations - delegated to internal/api
// --------------------------------------------------------------------

// InitiatePay creates a hosted payment link the payer completes in a browser.
func (c *Client) InitiatePay(ctx context.Context, req InitiatePayRequest) (*InitiatePayResponse, error) {
	return api.InitiatePay(ctx, c.http, c.baseURL, req)
}

// DirectPay pushes a payment request straight to the payer's mobile device.
// Disabled on live accounts unless Fapshi has approved the service for it.
func (c *Client) DirectPay(ctx context.Context, req DirectPayRequest) (*DirectPayResponse, error) {
	return api.DirectPay(ctx, c.http, c.baseURL, req)
}

// GetPaymentStatus fetches the current state of a transaction.
func (c *Client) GetPaymentStatus(ctx context.Context, transID string) (*Transaction, error) {
	return api.GetPaymentStatus(ctx, c.http, c.baseURL, transID)
}

// ExpirePay invalidates a payment link so it can no longer be paid.
func (c *Client) ExpirePay(ctx context.Context, transID string) (*Transaction, error) {
	return api.ExpirePay(ctx, c.http, c.baseURL, transID)
}

// --------------------------------------------------------------------
// Payout operations - delegated to internal/api
// --------------------------------------------------------------------

// Payout sends money from the service balance to a mobile money number or,
// with medium "fapshi", to another Fapshi account addressed by email.
func (c *Client) Payout(ctx context.Context, req PayoutRequest) (*PayoutResponse, error) {
	return api.Payout(ctx, c.http, c.baseURL, req)
}

// --------------------------------------------------------------------
// Transaction operations - delegated to internal/api
// --------------------------------------------------------------------

// GetTransactionsByUserID lists the transactions recorded against a
// merchant-assigned user id.
func (c *Client) GetTransactionsByUserID(ctx context.Context, userID string) ([]Transaction, error) {
	return api.GetTransactionsByUserID(ctx, c.http, c.baseURL, userID)
}

// SearchTransactions filters the service's transactions by status, medium,
// date window and amount.
func (c *Client) SearchTransactions(ctx context.Context, q SearchQuery) ([]Transaction, error) {
	return api.SearchTransactions(ctx, c.http, c.baseURL, q)
}

// --------------------------------------------------------------------
// Balance operations - delegated to internal/api
// --------------------------------------------------------------------

// GetBalance reports the service's current balance.
func (c *Client) GetBalance(ctx context.Context) (*Balance, error) {
	return api.GetBalance(ctx, c.http, c.baseURL)
}
