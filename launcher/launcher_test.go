package launcher

import (
	"net"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testListener(t *testing.T) (net.Listener, string) {
	t.Helper()
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	t.Cleanup(func() { ln.Close() })
	return ln, ln.Addr().String()
}

func TestEnsureRunningAlreadyListening(t *testing.T) {
	_, addr := testListener(t)

	spawned := false
	ok := EnsureRunning(Options{
		Addr:  addr,
		Spawn: func() error { spawned = true; return nil },
	})

	assert.True(t, ok)
	assert.False(t, spawned, "a reachable agent must not be respawned")
}

func TestEnsureRunningSpawnsAndWaits(t *testing.T) {
	ln, addr := testListener(t)
	ln.Close()

	listeners := make(chan net.Listener, 1)
	t.Cleanup(func() {
		select {
		case l := <-listeners:
			l.Close()
		default:
		}
	})

	ok := EnsureRunning(Options{
		Addr:     addr,
		Retries:  50,
		Interval: 10 * time.Millisecond,
		Spawn: func() error {
			// Simulate the agent binding its socket shortly after spawn.
			go func() {
				time.Sleep(50 * time.Millisecond)
				if l, err := net.Listen("tcp", addr); err == nil {
					listeners <- l
				}
			}()
			return nil
		},
	})

	assert.True(t, ok, "the poll loop must pick up the late listener")
}

func TestEnsureRunningRetryBudgetExhausted(t *testing.T) {
	ln, addr := testListener(t)
	ln.Close()

	start := time.Now()
	ok := EnsureRunning(Options{
		Addr:     addr,
		Retries:  3,
		Interval: 10 * time.Millisecond,
		Spawn:    func() error { return nil },
	})

	assert.False(t, ok)
	assert.Less(t, time.Since(start), 2*time.Second)
}

func TestEnsureRunningSpawnFails(t *testing.T) {
	ln, addr := testListener(t)
	ln.Close()

	ok := EnsureRunning(Options{
		Addr:  addr,
		Spawn: func() error { return assert.AnError },
	})

	assert.False(t, ok)
}

func TestSendRoundTrip(t *testing.T) {
	ln, addr := testListener(t)

	go func() {
		conn, err := ln.Accept()
		if err != nil {
			return
		}
		defer conn.Close()
		buf := make([]byte, 1024)
		n, _ := conn.Read(buf)
		if string(buf[:n]) == "list files\n" {
			conn.Write([]byte("ls -la"))
		}
	}()

	got, err := Send(addr, "list files")
	require.NoError(t, err)
	assert.Equal(t, "ls -la", got)
}

func TestSendNoAgent(t *testing.T) {
	ln, addr := testListener(t)
	ln.Close()

	_, err := Send(addr, "anything")
	assert.Error(t, err)
}

func TestSendEmptyResponse(t *testing.T) {
	ln, addr := testListener(t)

	go func() {
		conn, err := ln.Accept()
		if err != nil {
			return
		}
		conn.Close()
	}()

	_, err := Send(addr, "anything")
	assert.Error(t, err, "a closed connection with no payload is an error to the caller")
}
