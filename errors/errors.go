// Package errors provides error construction helpers that record the call
// site, plus the coarse error kinds the agent protocol distinguishes.
//
// Only three kinds are ever surfaced across the socket boundary: an invalid
// or missing configuration, an unknown provider, and a provider call
// failure. The underlying cause stays on the wrap chain so it can be logged
// by the agent even though callers only branch on the kind.
package errors

import (
	stderrors "errors"
	"fmt"
	"path/filepath"
	"runtime"
)

// Sentinel kinds. Match with errors.Is.
var (
	// ErrInvalidConfiguration indicates the configuration file is absent or
	// missing required fields.
	ErrInvalidConfiguration = stderrors.New("invalid configuration")

	// ErrInvalidProvider indicates the configured provider is not one of the
	// known backends.
	ErrInvalidProvider = stderrors.New("invalid provider")

	// ErrAuthentication indicates a provider generation call failed. All
	// provider-side failures collapse into this kind; the only remediation
	// offered to the user is reconfiguring the API key.
	ErrAuthentication = stderrors.New("authentication failed")
)

// New creates a new error with file and line number information.
func New(format string, a ...interface{}) error {
	return fmt.Errorf("[%s] %s", caller(), fmt.Sprintf(format, a...))
}

// Wrapf adds context (including file and line number) to an existing error.
// If the provided error is nil, Wrapf returns nil.
func Wrapf(err error, format string, a ...interface{}) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("[%s] %s: %w", caller(), fmt.Sprintf(format, a...), err)
}

// InvalidConfiguration marks err as a configuration error. A nil err yields
// the bare kind.
func InvalidConfiguration(err error) error {
	return kind(ErrInvalidConfiguration, err)
}

// InvalidProvider marks err as an unknown-provider error.
func InvalidProvider(err error) error {
	return kind(ErrInvalidProvider, err)
}

// Authentication marks err as a provider call failure. The cause remains
// reachable through Unwrap for logging.
func Authentication(err error) error {
	return kind(ErrAuthentication, err)
}

// Is reports whether any error in err's chain matches target.
func Is(err, target error) bool {
	return stderrors.Is(err, target)
}

func kind(k error, cause error) error {
	if cause == nil {
		return k
	}
	return fmt.Errorf("%w: %w", k, cause)
}

func caller() string {
	_, file, line, ok := runtime.Caller(2)
	if !ok {
		return "???:0"
	}
	return fmt.Sprintf("%s:%d", filepath.Base(file), line)
}
