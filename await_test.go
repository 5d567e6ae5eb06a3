package fapshi

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"
)

// tightenAwaitSchedule shrinks the poll intervals so tests finish quickly.
func tightenAwaitSchedule(t *testing.T) {
	t.Helper()
	restoreInitial, restoreMax := awaitInitialInterval, awaitMaxInterval
	awaitInitialInterval, awaitMaxInterval = time.Millisecond, 5*time.Millisecond
	t.Cleanup(func() { awaitInitialInterval, awaitMaxInterval = restoreInitial, restoreMax })
}

func TestAwaitFinalStatus_ImmediateTerminal(t *testing.T) {
	tightenAwaitSchedule(t)
	var polls int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&polls, 1)
		w.WriteHeader(http.StatusOK)
		_ = json.NewEncoder(w).Encode(Transaction{TransID: "aBcDe123", Status: StatusSuccessful})
	}))
	defer srv.Close()

	c := newTestClient(t, srv.URL)
	tx, err := c.AwaitFinalStatus(context.Background(), "aBcDe123")
	if err != nil || tx == nil || tx.Status != StatusSuccessful {
		t.Fatalf("AwaitFinalStatus unexpected: tx=%+v err=%v", tx, err)
	}
	if got := atomic.LoadInt32(&polls); got != 1 {
		t.Fatalf("expected a single poll, got %d", got)
	}
}

func TestAwaitFinalStatus_PollsUntilTerminal(t *testing.T) {
	tightenAwaitSchedule(t)
	var polls int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		n := atomic.AddInt32(&polls, 1)
		status := StatusPending
		if n >= 3 {
			status = StatusSuccessful
		}
		w.WriteHeader(http.StatusOK)
		_ = json.NewEncoder(w).Encode(Transaction{TransID: "aBcDe123", Status: status})
	}))
	defer srv.Close()

	c := newTestClient(t, srv.URL)
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	tx, err := c.AwaitFinalStatus(ctx, "aBcDe123")
	if err != nil || tx == nil || tx.Status != StatusSuccessful {
		t.Fatalf("AwaitFinalStatus unexpected: tx=%+v err=%v", tx, err)
	}
	if got := atomic.LoadInt32(&polls); got != 3 {
		t.Fatalf("expected 3 polls, got %d", got)
	}
}

func TestAwaitFinalStatus_PollErrorPropagates(t *testing.T) {
	tightenAwaitSchedule(t)
	var polls int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&polls, 1)
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte(`{"message":"service unavailable"}`))
	}))
	defer srv.Close()

	c := newTestClient(t, srv.URL)
	_, err := c.AwaitFinalStatus(context.Background(), "aBcDe123")
	e, ok := AsError(err)
	if !ok || e.StatusCode != http.StatusInternalServerError {
		t.Fatalf("expected 500 error, got %v", err)
	}
	if got := atomic.LoadInt32(&polls); got != 1 {
		t.Fatalf("poll errors must not be retried, got %d polls", got)
	}
}

func TestAwaitFinalStatus_CtxBoundsWait(t *testing.T) {
	// Keep the schedule slow so cancellation lands inside the wait.
	restoreInitial := awaitInitialInterval
	awaitInitialInterval = 10 * time.Second
	t.Cleanup(func() { awaitInitialInterval = restoreInitial })

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_ = json.NewEncoder(w).Encode(Transaction{TransID: "aBcDe123", Status: StatusCreated})
	}))
	defer srv.Close()

	c := newTestClient(t, srv.URL)
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Millisecond)
	defer cancel()

	start := time.Now()
	_, err := c.AwaitFinalStatus(ctx, "aBcDe123")
	if !errors.Is(err, context.DeadlineExceeded) {
		t.Fatalf("expected deadline exceeded, got %v", err)
	}
	if elapsed := time.Since(start); elapsed > 2*time.Second {
		t.Fatalf("cancellation took too long: %v", elapsed)
	}
}

func TestAwaitFinalStatus_InvalidTransID(t *testing.T) {
	c := newTestClient(t, "http://example.com")
	if _, err := c.AwaitFinalStatus(context.Background(), "nope"); err == nil {
		t.Fatal("expected validation error for malformed transaction id")
	}
}
