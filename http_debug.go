package fapshi

import (
	"net/http"
	"net/http/httputil"
	"os"
	"strings"

	"github.com/rs/zerolog/log"
)

// debugTransport provides detailed HTTP request/response logging for
// debugging client issues.
//
// When to use:
//   - Set FAPSHI_DEBUG=true or DEBUG=true environment variable
//   - During development when wiring up checkout or payout flows
//   - When investigating unexpected service responses (temporarily, with
//     log level controls)
//
// Security considerations:
//   - The apiuser/apikey header values are redacted from dumps
//   - Bodies are logged verbatim and include payer phone numbers, emails
//     and amounts; only enable in development/staging environments
//
// Performance impact:
//   - Adds overhead for request/response dumping and logging
//   - Should be disabled in production
//
// Example usage:
//
//	export FAPSHI_DEBUG=true
//	go run main.go  # Client will now log all HTTP traffic
type debugTransport struct{ base http.RoundTripper }

func (dt *debugTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	// The transport is only installed when debug logging was requested, via
	// WithDebugLogging or the environment; installation is the gate.
	if reqDump, err := httputil.DumpRequestOut(req, true); err == nil {
		log.Debug().Str("method", req.Method).Str("url", req.URL.String()).Str("request_dump", redactCredentials(string(reqDump), req)).Msg("HTTP request")
	}

	resp, err := dt.base.RoundTrip(req)
	if err != nil {
		log.Error().Err(err).Str("method", req.Method).Str("url", req.URL.String()).Msg("HTTP request failed")
		return nil, err
	}

	if respDump, err := httputil.DumpResponse(resp, true); err == nil {
		log.Debug().Str("method", req.Method).Str("url", req.URL.String()).Int("status_code", resp.StatusCode).Str("response_dump", string(respDump)).Msg("HTTP response")
	}
	return resp, nil
}

// redactCredentials blanks the credential header values in a request dump.
// The debug transport sits beneath the credential wrapper, so the dumped
// request carries live keys.
func redactCredentials(dump string, req *http.Request) string {
	for _, header := range []string{"apiuser", "apikey"} {
		if v := req.Header.Get(header); v != "" {
			dump = strings.ReplaceAll(dump, v, "REDACTED")
		}
	}
	return dump
}

// debugLoggingRequested checks if HTTP debug logging should be enabled.
//
// Activation methods:
//   - FAPSHI_DEBUG=true (fapshi-specific debug flag)
//   - DEBUG=true (general debug flag, common in development workflows)
//
// Returns true if either environment variable is set to "true" (case-sensitive).
func debugLoggingRequested() bool {
	return os.Getenv("FAPSHI_DEBUG") == "true" || os.Getenv("DEBUG") == "true"
}
