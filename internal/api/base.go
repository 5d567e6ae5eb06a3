package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/Fapshi/fapshi-go/internal/types"
)

// do executes a single API request and decodes the 2xx response into out.
//
// Every operation funnels through here: URL assembly, query encoding, body
// marshaling, metrics, and the mapping of failures onto types.Error. The
// credential headers are attached by the client's transport, not here.
func do(ctx context.Context, httpClient *http.Client, baseURL, method, path, operation string, query url.Values, body, out any) error {
	target := baseURL + path
	if len(query) > 0 {
		target += "?" + query.Encode()
	}

	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("marshal %s request: %w", operation, err)
		}
		reader = bytes.NewReader(payload)
	}

	httpReq, err := http.NewRequestWithContext(ctx, method, target, reader)
	if err != nil {
		return fmt.Errorf("build %s request: %w", operation, err)
	}
	if body != nil {
		httpReq.Header.Set("Content-Type", "application/json")
	}

	start := time.Now()
	resp, err := httpClient.Do(httpReq)
	requestDuration.WithLabelValues(operation).Observe(time.Since(start).Seconds())
	if err != nil {
		transportFailuresTotal.WithLabelValues(operation).Inc()
		return types.NewNetworkError(err)
	}
	defer func() { _ = resp.Body.Close() }()
	requestsTotal.WithLabelValues(operation, codeLabel(resp.StatusCode)).Inc()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return statusError(resp)
	}
	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode %s response: %w", operation, err)
	}
	return nil
}

// statusError drains a non-2xx response and carries the server's message
// field when one is present.
func statusError(resp *http.Response) error {
	raw, _ := io.ReadAll(resp.Body)
	var payload struct {
		Message string `json:"message"`
	}
	_ = json.Unmarshal(raw, &payload)
	return types.NewStatusError(resp.StatusCode, payload.Message)
}
