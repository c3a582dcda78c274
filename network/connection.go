// File: network/connection.go
// Author: theMoor9
// License: Apache-2.0
//
// ConnectionManager retries an injected Dialer with backoff and tracks the
// connection lifecycle as an explicit state machine.

package network

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net"
	"time"

	"github.com/theMoor9/SolidArx-Framework/pkg/log"
)

// State is a connection lifecycle phase.
type State uint8

const (
	Disconnected State = iota
	Connecting
	Connected
	Failed
)

// String returns the state name.
func (s State) String() string {
	switch s {
	case Disconnected:
		return "disconnected"
	case Connecting:
		return "connecting"
	case Connected:
		return "connected"
	case Failed:
		return "failed"
	default:
		return "unknown"
	}
}

// Dialer abstracts the concrete driver behind the manager. Database and
// transport bindings implement this and stay out of the core.
type Dialer interface {
	Dial(ctx context.Context, addr string) (io.Closer, error)
}

// TCPDialer is the default Dialer over plain TCP.
type TCPDialer struct {
	Timeout time.Duration // per-attempt timeout, 0 = none
}

// Dial opens a TCP connection honoring ctx.
func (d TCPDialer) Dial(ctx context.Context, addr string) (io.Closer, error) {
	nd := net.Dialer{Timeout: d.Timeout}
	return nd.DialContext(ctx, "tcp", addr)
}

// ConnectionConfig bounds the retry loop.
type ConnectionConfig struct {
	Addr        string
	MaxAttempts int           // total attempts before Failed, min 1
	RetryMin    time.Duration // first backoff step
	RetryMax    time.Duration // backoff ceiling
}

// ConnectionManager owns one logical connection. It is single-owner like
// the memory manager: guard it externally if shared.
type ConnectionManager struct {
	cfg      ConnectionConfig
	dialer   Dialer
	state    State
	attempts int
	conn     io.Closer
}

// NewConnectionManager validates its inputs instead of panicking on an
// unconfigured target.
func NewConnectionManager(cfg ConnectionConfig, dialer Dialer) (*ConnectionManager, error) {
	if dialer == nil {
		return nil, errors.New("network: nil dialer")
	}
	if cfg.Addr == "" {
		return nil, errors.New("network: empty address")
	}
	if cfg.MaxAttempts < 1 {
		cfg.MaxAttempts = 1
	}
	return &ConnectionManager{cfg: cfg, dialer: dialer}, nil
}

// State reports the current lifecycle phase.
func (m *ConnectionManager) State() State {
	return m.state
}

// Attempts reports how many dial attempts the last Connect consumed.
func (m *ConnectionManager) Attempts() int {
	return m.attempts
}

// Connect dials until success, context cancellation or the attempt budget
// runs out. Between attempts it sleeps per the backoff schedule; a
// cancelled context interrupts the wait.
func (m *ConnectionManager) Connect(ctx context.Context) (io.Closer, error) {
	backoff := NewBackoff(m.cfg.RetryMin, m.cfg.RetryMax)
	m.attempts = 0

	for attempt := 1; ; attempt++ {
		m.state = Connecting
		m.attempts = attempt

		conn, err := m.dialer.Dial(ctx, m.cfg.Addr)
		if err == nil {
			m.state = Connected
			m.conn = conn
			log.Infof("connected to %s after %d attempt(s)", m.cfg.Addr, attempt)
			return conn, nil
		}
		log.Errorf("attempt %d/%d to %s failed: %v", attempt, m.cfg.MaxAttempts, m.cfg.Addr, err)

		if attempt >= m.cfg.MaxAttempts {
			m.state = Failed
			return nil, fmt.Errorf("network: %d attempt(s) exhausted: %w", attempt, err)
		}

		wait := backoff.Next()
		log.Debugf("retrying %s in %s", m.cfg.Addr, wait)
		select {
		case <-ctx.Done():
			m.state = Failed
			return nil, ctx.Err()
		case <-time.After(wait):
		}
	}
}

// Close releases the active connection, if any, and returns the manager to
// Disconnected.
func (m *ConnectionManager) Close() error {
	m.state = Disconnected
	m.attempts = 0
	if m.conn == nil {
		return nil
	}
	err := m.conn.Close()
	m.conn = nil
	return err
}
