package network_test

import (
	"context"
	"errors"
	"io"
	"testing"
	"time"

	"github.com/theMoor9/SolidArx-Framework/network"
)

type nopCloser struct{}

func (nopCloser) Close() error { return nil }

// flakyDialer fails a fixed number of times before succeeding.
type flakyDialer struct {
	failures int
	calls    int
}

func (d *flakyDialer) Dial(ctx context.Context, addr string) (io.Closer, error) {
	d.calls++
	if d.calls <= d.failures {
		return nil, errors.New("refused")
	}
	return nopCloser{}, nil
}

func testConfig(maxAttempts int) network.ConnectionConfig {
	return network.ConnectionConfig{
		Addr:        "localhost:5432",
		MaxAttempts: maxAttempts,
		RetryMin:    time.Millisecond,
		RetryMax:    2 * time.Millisecond,
	}
}

func TestConnectFirstTry(t *testing.T) {
	m, err := network.NewConnectionManager(testConfig(3), &flakyDialer{})
	if err != nil {
		t.Fatalf("NewConnectionManager: %v", err)
	}
	conn, err := m.Connect(context.Background())
	if err != nil {
		t.Fatalf("Connect: %v", err)
	}
	defer m.Close()
	if conn == nil {
		t.Fatal("nil connection")
	}
	if m.State() != network.Connected {
		t.Errorf("state = %v, want connected", m.State())
	}
	if m.Attempts() != 1 {
		t.Errorf("attempts = %d, want 1", m.Attempts())
	}
}

func TestConnectRetriesThenSucceeds(t *testing.T) {
	d := &flakyDialer{failures: 2}
	m, err := network.NewConnectionManager(testConfig(5), d)
	if err != nil {
		t.Fatalf("NewConnectionManager: %v", err)
	}
	if _, err := m.Connect(context.Background()); err != nil {
		t.Fatalf("Connect: %v", err)
	}
	if m.Attempts() != 3 {
		t.Errorf("attempts = %d, want 3", m.Attempts())
	}
	if m.State() != network.Connected {
		t.Errorf("state = %v, want connected", m.State())
	}
}

func TestConnectExhaustsBudget(t *testing.T) {
	d := &flakyDialer{failures: 100}
	m, err := network.NewConnectionManager(testConfig(3), d)
	if err != nil {
		t.Fatalf("NewConnectionManager: %v", err)
	}
	if _, err := m.Connect(context.Background()); err == nil {
		t.Fatal("expected error after exhausted attempts")
	}
	if m.State() != network.Failed {
		t.Errorf("state = %v, want failed", m.State())
	}
	if m.Attempts() != 3 {
		t.Errorf("attempts = %d, want 3", m.Attempts())
	}
	if d.calls != 3 {
		t.Errorf("dial calls = %d, want 3", d.calls)
	}
}

func TestConnectHonorsCancellation(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	d := &flakyDialer{failures: 100}
	m, err := network.NewConnectionManager(testConfig(10), d)
	if err != nil {
		t.Fatalf("NewConnectionManager: %v", err)
	}
	if _, err := m.Connect(ctx); !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
	if m.State() != network.Failed {
		t.Errorf("state = %v, want failed", m.State())
	}
}

func TestNewConnectionManagerValidates(t *testing.T) {
	if _, err := network.NewConnectionManager(network.ConnectionConfig{}, &flakyDialer{}); err == nil {
		t.Error("expected error for empty address")
	}
	if _, err := network.NewConnectionManager(testConfig(1), nil); err == nil {
		t.Error("expected error for nil dialer")
	}
}

func TestCloseResetsState(t *testing.T) {
	m, err := network.NewConnectionManager(testConfig(1), &flakyDialer{})
	if err != nil {
		t.Fatalf("NewConnectionManager: %v", err)
	}
	if _, err := m.Connect(context.Background()); err != nil {
		t.Fatalf("Connect: %v", err)
	}
	if err := m.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}
	if m.State() != network.Disconnected {
		t.Errorf("state = %v, want disconnected", m.State())
	}
}

func TestBackoffDoublesAndCaps(t *testing.T) {
	b := network.NewBackoff(10*time.Millisecond, 80*time.Millisecond)
	want := []time.Duration{
		10 * time.Millisecond,
		20 * time.Millisecond,
		40 * time.Millisecond,
		80 * time.Millisecond,
		80 * time.Millisecond,
	}
	for i, w := range want {
		if got := b.Next(); got != w {
			t.Errorf("step %d = %s, want %s", i, got, w)
		}
	}
	b.Reset()
	if got := b.Next(); got != 10*time.Millisecond {
		t.Errorf("after reset = %s, want 10ms", got)
	}
}
