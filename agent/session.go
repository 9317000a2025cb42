// Package agent implements the background process that serves prompt
// requests over a loopback socket: a Session that caches the provider
// client across requests, and a Broker that runs the accept loop.
package agent

import (
	"context"
	"time"

	"github.com/rs/zerolog"
	"github.com/termacli/terma/config"
	"github.com/termacli/terma/errors"
	"github.com/termacli/terma/llm"
)

// DefaultCacheWindow is the minimum elapsed time between configuration
// staleness checks. Within the window requests reuse the cached client with
// no file I/O.
const DefaultCacheWindow = 10 * time.Second

// Store is the configuration source the session revalidates against.
type Store interface {
	Load() (*config.Config, error)
	Exists() bool
}

// FileStore reads the on-disk configuration.
type FileStore struct{}

func (FileStore) Load() (*config.Config, error) { return config.Load() }
func (FileStore) Exists() bool                  { return config.Exists() }

// Factory constructs a provider client from a configuration snapshot.
type Factory func(ctx context.Context, provider, model, apiKey string) (llm.Client, error)

// SessionOptions configures a Session. Zero fields take defaults.
type SessionOptions struct {
	Store       Store
	Factory     Factory
	Clock       func() time.Time
	CacheWindow time.Duration
	Logger      zerolog.Logger
}

// Session binds one provider client to the configuration snapshot it was
// built from. The client is replaced, never mutated, when a revalidation
// sees the on-disk configuration drift from the bound one.
//
// Session is not safe for concurrent use; the broker serves one connection
// at a time, so it never needs to be.
type Session struct {
	opts          SessionOptions
	cfg           *config.Config
	client        llm.Client
	lastValidated time.Time
}

// NewSession creates an uninitialized session. No configuration is read
// until the first Client call.
func NewSession(opts SessionOptions) *Session {
	if opts.Store == nil {
		opts.Store = FileStore{}
	}
	if opts.Factory == nil {
		opts.Factory = llm.New
	}
	if opts.Clock == nil {
		opts.Clock = time.Now
	}
	if opts.CacheWindow == 0 {
		opts.CacheWindow = DefaultCacheWindow
	}
	return &Session{opts: opts}
}

// Client returns the provider client for the current configuration,
// constructing it on first use and revalidating it once the cache window
// has elapsed. An unchanged configuration only refreshes the validation
// timestamp; a changed one rebuilds the client from scratch.
func (s *Session) Client(ctx context.Context) (llm.Client, error) {
	now := s.opts.Clock()

	if s.client == nil {
		return s.rebuild(ctx, now)
	}

	if now.Sub(s.lastValidated) < s.opts.CacheWindow {
		return s.client, nil
	}

	cfg, err := s.opts.Store.Load()
	if err != nil {
		return nil, errors.InvalidConfiguration(err)
	}
	if s.cfg.Equal(cfg) {
		s.lastValidated = now
		return s.client, nil
	}

	s.opts.Logger.Info().
		Str("provider", cfg.Provider).
		Str("model", cfg.Model).
		Msg("configuration changed, rebuilding provider client")
	return s.rebuild(ctx, now)
}

func (s *Session) rebuild(ctx context.Context, now time.Time) (llm.Client, error) {
	if !s.opts.Store.Exists() {
		return nil, errors.InvalidConfiguration(errors.New("configuration absent or incomplete"))
	}
	cfg, err := s.opts.Store.Load()
	if err != nil || cfg == nil {
		return nil, errors.InvalidConfiguration(err)
	}

	client, err := s.opts.Factory(ctx, cfg.Provider, cfg.Model, cfg.APIKey)
	if err != nil {
		return nil, err
	}

	s.cfg = cfg
	s.client = client
	s.lastValidated = now
	s.opts.Logger.Debug().
		Str("provider", cfg.Provider).
		Str("model", cfg.Model).
		Msg("provider client constructed")
	return client, nil
}
