package agent

import (
	"context"
	stderrors "errors"
	"net"
	"strings"
	"time"

	"github.com/fatih/color"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/termacli/terma/errors"
	"github.com/termacli/terma/filetree"
)

const (
	// DefaultAddr is the fixed loopback address the agent listens on and
	// clients dial.
	DefaultAddr = "127.0.0.1:7313"

	// DefaultIdleTimeout is how long the agent waits for a new connection
	// before shutting down cleanly.
	DefaultIdleTimeout = 240 * time.Second

	// DefaultMaxMessageBytes bounds both the prompt read and the response.
	// Longer prompts are silently truncated; there is no framing on the
	// wire.
	DefaultMaxMessageBytes = 1024
)

// Options configures a Broker. Zero fields take defaults.
type Options struct {
	Addr            string
	IdleTimeout     time.Duration
	MaxMessageBytes int
	Tree            filetree.Options
	Logger          zerolog.Logger
}

// Broker owns the listening socket and serves connections strictly one at a
// time. A connection carries exactly one prompt and receives exactly one
// response.
type Broker struct {
	opts    Options
	session *Session
}

// NewBroker creates a broker serving requests through the given session.
func NewBroker(session *Session, opts Options) *Broker {
	if opts.Addr == "" {
		opts.Addr = DefaultAddr
	}
	if opts.IdleTimeout == 0 {
		opts.IdleTimeout = DefaultIdleTimeout
	}
	if opts.MaxMessageBytes == 0 {
		opts.MaxMessageBytes = DefaultMaxMessageBytes
	}
	if opts.Tree.MaxEntries == 0 {
		opts.Tree = filetree.DefaultOptions()
	}
	return &Broker{opts: opts, session: session}
}

// Run accepts and services connections until the idle timeout elapses with
// no new connection (clean shutdown, nil return) or a request fails hard
// (the error is returned and the process is expected to exit). The
// client-side launcher detects a dead agent and respawns it on the next
// invocation.
func (b *Broker) Run(ctx context.Context) error {
	ln, err := net.Listen("tcp", b.opts.Addr)
	if err != nil {
		return errors.Wrapf(err, "could not listen on %s", b.opts.Addr)
	}
	defer ln.Close()
	tcpLn := ln.(*net.TCPListener)

	b.opts.Logger.Info().
		Str("addr", b.opts.Addr).
		Dur("idle_timeout", b.opts.IdleTimeout).
		Msg("agent listening")

	for {
		if err := tcpLn.SetDeadline(time.Now().Add(b.opts.IdleTimeout)); err != nil {
			return errors.Wrapf(err, "could not arm idle deadline")
		}
		conn, err := tcpLn.Accept()
		if err != nil {
			var ne net.Error
			if stderrors.As(err, &ne) && ne.Timeout() {
				b.opts.Logger.Info().Msg("idle timeout reached, shutting down")
				return nil
			}
			return errors.Wrapf(err, "accept failed")
		}

		if err := b.serve(ctx, conn); err != nil {
			return err
		}
	}
}

// serve handles one connection end to end. A returned error is fatal to the
// whole loop; per-request isolation is deliberately absent, since the only
// failures that can occur here (bad configuration, bad provider, bad key)
// invalidate every future request equally.
func (b *Broker) serve(ctx context.Context, conn net.Conn) error {
	defer conn.Close()
	reqID := uuid.NewString()
	start := time.Now()

	buf := make([]byte, b.opts.MaxMessageBytes)
	n, err := conn.Read(buf)
	if n == 0 {
		// Reachability probes from the launcher connect and close without
		// sending anything. Not a request, not an error.
		b.opts.Logger.Debug().Str("request_id", reqID).Err(err).Msg("empty connection")
		return nil
	}
	prompt := strings.TrimSpace(string(buf[:n]))
	if prompt == "" {
		b.opts.Logger.Debug().Str("request_id", reqID).Msg("blank prompt")
		return nil
	}

	client, err := b.session.Client(ctx)
	if err != nil {
		return b.fail(conn, reqID, err)
	}

	tree := filetree.Summarize(".", b.opts.Tree)
	response, err := client.Generate(ctx, ComposePrompt(tree, prompt))
	if err != nil {
		return b.fail(conn, reqID, err)
	}

	if _, err := conn.Write([]byte(response)); err != nil {
		b.opts.Logger.Warn().Str("request_id", reqID).Err(err).Msg("response write failed")
	}
	b.opts.Logger.Info().
		Str("request_id", reqID).
		Int("prompt_bytes", n).
		Dur("elapsed", time.Since(start)).
		Msg("request served")
	return nil
}

// fail writes the remediation text for err back on the connection so the
// user who triggered the failure sees the hint, logs the full cause, and
// returns err to stop the loop.
func (b *Broker) fail(conn net.Conn, reqID string, err error) error {
	msg, ok := Remediation(err)
	if ok {
		conn.Write([]byte(msg))
	}
	b.opts.Logger.Error().Str("request_id", reqID).Err(err).Msg("request failed, stopping agent")
	return err
}

// Remediation maps the coarse error kinds to user-facing hints. The second
// return is false for errors with no remediation path.
func Remediation(err error) (string, bool) {
	switch {
	case errors.Is(err, errors.ErrInvalidConfiguration), errors.Is(err, errors.ErrInvalidProvider):
		return "Invalid configuration.\n> run \"" + color.CyanString("terma config provider <name>") + "\"", true
	case errors.Is(err, errors.ErrAuthentication):
		return "Invalid API key.\n> run \"" + color.CyanString("terma config api-key") + "\"", true
	default:
		return "", false
	}
}
