// Package launch spawns a chosen browser with a URL appended to its
// stored arguments.
package launch

import (
	"context"
	"fmt"
	"os/exec"
	"strings"
	"time"

	"github.com/pkg/browser"
	"github.com/quantmind-br/webpick/internal/core"
	"github.com/rs/zerolog"
)

// DefaultTimeout bounds how long a launch command may take to start.
const DefaultTimeout = 5 * time.Second

// Runner starts external processes. The indirection exists for tests.
type Runner interface {
	Start(ctx context.Context, name string, args ...string) error
}

// execRunner is the production Runner backed by os/exec.
type execRunner struct{}

func (execRunner) Start(ctx context.Context, name string, args ...string) error {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("start %q: %w", name, err)
	}
	// The browser outlives us, so the process must not be tied to ctx:
	// CommandContext would kill it the moment the context is done.
	cmd := exec.Command(name, args...)
	if err := cmd.Start(); err != nil {
		return fmt.Errorf("start %q: %w", name, err)
	}
	// Reap in the background so it never turns into a zombie while the
	// picker is still up.
	go func() { _ = cmd.Wait() }()
	return nil
}

// Launcher opens URLs with a specific candidate or the system default.
type Launcher struct {
	runner  Runner
	log     *zerolog.Logger
	timeout time.Duration
}

// New creates a Launcher.
func New(log *zerolog.Logger, timeout time.Duration) *Launcher {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &Launcher{runner: execRunner{}, log: log, timeout: timeout}
}

// NewWithRunner creates a Launcher with an injected Runner (tests).
func NewWithRunner(log *zerolog.Logger, timeout time.Duration, runner Runner) *Launcher {
	l := New(log, timeout)
	l.runner = runner
	return l
}

// Open spawns the candidate's executable with its stored arguments plus
// the URL appended. The launcher's timeout bounds the start handshake
// only; the started browser is detached and keeps running after Open
// returns.
func (l *Launcher) Open(ctx context.Context, cand core.BrowserCandidate, url string) error {
	if err := validateURL(url); err != nil {
		return err
	}
	if !cand.ExeExists {
		return fmt.Errorf("executable %s does not exist", cand.ExePath)
	}

	ctx, cancel := context.WithTimeout(ctx, l.timeout)
	defer cancel()

	args := append(append([]string{}, cand.Arguments...), url)

	l.log.Info().
		Str("browser", cand.DisplayName).
		Str("exe", cand.ExePath).
		Str("url", url).
		Msg("launching browser")

	return l.runner.Start(ctx, cand.ExePath, args...)
}

// OpenDefault hands the URL to the system default browser.
func (l *Launcher) OpenDefault(url string) error {
	if err := validateURL(url); err != nil {
		return err
	}
	l.log.Info().Str("url", url).Msg("opening with system default browser")
	return browser.OpenURL(url)
}

func validateURL(url string) error {
	if !strings.HasPrefix(url, "http://") && !strings.HasPrefix(url, "https://") {
		return fmt.Errorf("invalid URL %q: scheme must be http or https", url)
	}
	return nil
}
