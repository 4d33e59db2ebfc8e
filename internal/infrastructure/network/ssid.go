// Package network provides adapters that report the wireless network the
// host is connected to.
package network

import (
	"context"
	"os/exec"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/bnema/banger/internal/application/port"
	"github.com/bnema/banger/internal/logging"
)

const (
	// DefaultCommand prints the SSID of the current wireless connection.
	DefaultCommand = "iwgetid"
	// DefaultTimeout bounds a single SSID lookup.
	DefaultTimeout = 500 * time.Millisecond
)

// DefaultArgs makes iwgetid print the bare SSID.
func DefaultArgs() []string {
	return []string{"-r"}
}

// execRunner runs commands with os/exec.
type execRunner struct{}

func (execRunner) Output(ctx context.Context, name string, args ...string) ([]byte, error) {
	return exec.CommandContext(ctx, name, args...).Output()
}

// CommandProvider implements port.NetworkContextProvider by shelling out to a
// platform utility (iwgetid by default).
type CommandProvider struct {
	runner  CommandRunner
	command string
	args    []string
	timeout time.Duration
}

// Option configures a CommandProvider.
type Option func(*CommandProvider)

// WithCommand overrides the command and its arguments.
func WithCommand(command string, args ...string) Option {
	return func(p *CommandProvider) {
		if command != "" {
			p.command = command
			p.args = args
		}
	}
}

// WithTimeout bounds each lookup. Non-positive values keep the default.
func WithTimeout(timeout time.Duration) Option {
	return func(p *CommandProvider) {
		if timeout > 0 {
			p.timeout = timeout
		}
	}
}

// WithRunner replaces the command runner.
func WithRunner(runner CommandRunner) Option {
	return func(p *CommandProvider) {
		if runner != nil {
			p.runner = runner
		}
	}
}

// NewCommandProvider creates a provider running `iwgetid -r` unless told otherwise.
func NewCommandProvider(opts ...Option) *CommandProvider {
	p := &CommandProvider{
		runner:  execRunner{},
		command: DefaultCommand,
		args:    DefaultArgs(),
		timeout: DefaultTimeout,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

var _ port.NetworkContextProvider = (*CommandProvider)(nil)

// CurrentSSID returns the current SSID. A missing binary, a non-zero exit,
// a timeout, non-UTF-8 or empty output all yield ok=false.
func (p *CommandProvider) CurrentSSID(ctx context.Context) (string, bool) {
	log := logging.FromContext(ctx)

	ctx, cancel := context.WithTimeout(ctx, p.timeout)
	defer cancel()

	out, err := p.runner.Output(ctx, p.command, p.args...)
	if err != nil {
		log.Debug().Err(err).Str("command", p.command).Msg("ssid lookup failed")
		return "", false
	}
	if !utf8.Valid(out) {
		log.Debug().Str("command", p.command).Msg("ssid lookup returned non-utf8 output")
		return "", false
	}

	ssid := strings.TrimSpace(string(out))
	if ssid == "" {
		return "", false
	}

	log.Trace().Str("ssid", ssid).Msg("ssid lookup")
	return ssid, true
}

// StaticProvider reports a fixed SSID. An empty SSID means none.
type StaticProvider struct {
	SSID string
}

var _ port.NetworkContextProvider = StaticProvider{}

// CurrentSSID returns the configured SSID.
func (s StaticProvider) CurrentSSID(context.Context) (string, bool) {
	return s.SSID, s.SSID != ""
}
