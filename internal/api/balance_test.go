package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/Fapshi/fapshi-go/internal/types"
)

func TestGetBalance_Success(t *testing.T) {
	t.Parallel()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet || r.URL.Path != "/balance" {
			t.Errorf("unexpected request: %s %s", r.Method, r.URL.Path)
		}
		w.WriteHeader(http.StatusOK)
		_ = json.NewEncoder(w).Encode(types.Balance{Service: "collections", Balance: 150000, Currency: "XAF"})
	}))
	defer srv.Close()

	got, err := GetBalance(context.Background(), srv.Client(), srv.URL)
	if err != nil || got == nil || got.Balance != 150000 || got.Currency != "XAF" {
		t.Fatalf("GetBalance unexpected: got=%+v err=%v", got, err)
	}
}

func TestGetBalance_Unauthorized(t *testing.T) {
	t.Parallel()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte(`{"message":"invalid credentials"}`))
	}))
	defer srv.Close()

	_, err := GetBalance(context.Background(), srv.Client(), srv.URL)
	var e *types.Error
	if !errors.As(err, &e) || e.StatusCode != http.StatusUnauthorized {
		t.Fatalf("expected 401 error, got %v", err)
	}
	if e.Message != "invalid credentials" {
		t.Fatalf("expected server message, got '%s'", e.Message)
	}
}

func TestGetBalance_CtxCanceled(t *testing.T) {
	t.Parallel()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	dummy := httptest.NewServer(http.NotFoundHandler())
	defer dummy.Close()
	if _, err := GetBalance(ctx, dummy.Client(), dummy.URL); err == nil {
		t.Fatal("expected context canceled for GetBalance")
	}
}
