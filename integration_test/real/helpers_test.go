//go:build integration
// +build integration

package fapshi_test

import (
	"os"
	"testing"

	fapshi "github.com/Fapshi/fapshi-go"
)

// The tests in this package run against the hosted sandbox deployment and
// need service credentials:
//
//	FAPSHI_API_USER=... FAPSHI_API_KEY=FAK_TEST_... \
//	  go test -tags integration ./integration_test/real/...
//
// They are skipped when no credentials are present.

func sandboxClient(t *testing.T) *fapshi.Client {
	t.Helper()
	if os.Getenv("FAPSHI_API_USER") == "" || os.Getenv("FAPSHI_API_KEY") == "" {
		t.Skip("FAPSHI_API_USER / FAPSHI_API_KEY not set")
	}
	cfg, err := fapshi.FromEnv()
	if err != nil {
		t.Fatalf("FromEnv: %v", err)
	}
	if cfg.BaseURL == "" {
		// Never point this suite at the live deployment.
		cfg.Environment = fapshi.EnvSandbox
	}
	c, err := fapshi.New(cfg)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return c
}
