package fapshi_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	fapshi "github.com/Fapshi/fapshi-go"
)

const (
	testAPIUser = "2c3a1f0e-5b7d-4a89-9c21-8f6e0d4b7a15"
	testAPIKey  = "FAK_TEST_1234567890abcdef"
)

// newMockClient wires a client to a stand-in for the Fapshi service. The
// stand-in checks the credential headers on every request before handing
// off to handler.
func newMockClient(t *testing.T, handler http.HandlerFunc) *fapshi.Client {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("apiuser") != testAPIUser || r.Header.Get("apikey") != testAPIKey {
			t.Errorf("credential headers missing on %s %s", r.Method, r.URL.Path)
		}
		handler(w, r)
	}))
	t.Cleanup(srv.Close)

	c, err := fapshi.New(fapshi.Config{APIUser: testAPIUser, APIKey: testAPIKey, BaseURL: srv.URL})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return c
}
