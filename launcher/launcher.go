// Package launcher is the client side of the agent protocol: it makes sure
// an agent is reachable, spawning one if needed, and exchanges a single
// prompt for a single response.
package launcher

import (
	"net"
	"os"
	"os/exec"
	"strings"
	"time"

	"github.com/termacli/terma/errors"
)

const (
	// DefaultRetries is how many connection attempts are made after
	// spawning the agent before giving up.
	DefaultRetries = 50

	// DefaultInterval is the wait between readiness attempts.
	DefaultInterval = 100 * time.Millisecond

	// DefaultDialTimeout bounds each individual connection attempt.
	DefaultDialTimeout = time.Second

	maxResponseBytes = 1024
)

// Options configures agent launch. Zero fields take defaults.
type Options struct {
	Addr        string
	Retries     int
	Interval    time.Duration
	DialTimeout time.Duration
	// Spawn starts the agent process detached. The default re-execs the
	// current binary with the agent subcommand.
	Spawn func() error
}

func (o *Options) fillDefaults() {
	if o.Addr == "" {
		o.Addr = "127.0.0.1:7313"
	}
	if o.Retries == 0 {
		o.Retries = DefaultRetries
	}
	if o.Interval == 0 {
		o.Interval = DefaultInterval
	}
	if o.DialTimeout == 0 {
		o.DialTimeout = DefaultDialTimeout
	}
	if o.Spawn == nil {
		o.Spawn = spawnSelf
	}
}

// EnsureRunning reports whether an agent is reachable, spawning one and
// polling for readiness when it is not. The spawned process is not
// supervised beyond this check.
func EnsureRunning(opts Options) bool {
	opts.fillDefaults()

	if probe(opts.Addr, opts.DialTimeout) {
		return true
	}

	if err := opts.Spawn(); err != nil {
		return false
	}
	for i := 0; i < opts.Retries; i++ {
		if probe(opts.Addr, opts.DialTimeout) {
			return true
		}
		time.Sleep(opts.Interval)
	}
	return false
}

// Send delivers one prompt to the agent and returns its response. The
// response is delimited by connection close or the fixed read size; there
// is no framing.
func Send(addr, prompt string) (string, error) {
	if addr == "" {
		addr = "127.0.0.1:7313"
	}
	conn, err := net.DialTimeout("tcp", addr, DefaultDialTimeout)
	if err != nil {
		return "", errors.Wrapf(err, "could not reach agent at %s", addr)
	}
	defer conn.Close()

	if _, err := conn.Write([]byte(prompt + "\n")); err != nil {
		return "", errors.Wrapf(err, "could not send prompt")
	}

	buf := make([]byte, maxResponseBytes)
	n, err := conn.Read(buf)
	if n == 0 {
		return "", errors.Wrapf(err, "agent closed the connection without responding")
	}
	return strings.TrimSpace(string(buf[:n])), nil
}

func probe(addr string, timeout time.Duration) bool {
	conn, err := net.DialTimeout("tcp", addr, timeout)
	if err != nil {
		return false
	}
	conn.Close()
	return true
}

// spawnSelf starts this binary's agent subcommand as a detached background
// process.
func spawnSelf() error {
	self, err := os.Executable()
	if err != nil {
		return errors.Wrapf(err, "could not locate own executable")
	}
	cmd := exec.Command(self, "agent")
	cmd.Stdin = nil
	cmd.Stdout = nil
	cmd.Stderr = nil
	if err := cmd.Start(); err != nil {
		return errors.Wrapf(err, "could not start agent process")
	}
	// Reap the child when it eventually exits so it does not linger as a
	// zombie while this process is still alive.
	go cmd.Wait()
	return nil
}
