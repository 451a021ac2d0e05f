package launch

import (
	"context"
	"io"
	"os"
	"path/filepath"
	"runtime"
	"testing"
	"time"

	"github.com/quantmind-br/webpick/internal/core"
	"github.com/quantmind-br/webpick/internal/logging"
)

type fakeRunner struct {
	name string
	args []string
	err  error
}

func (f *fakeRunner) Start(_ context.Context, name string, args ...string) error {
	f.name = name
	f.args = args
	return f.err
}

func testCandidate() core.BrowserCandidate {
	return core.BrowserCandidate{
		ExePath:     "/Applications/Firefox.app/Contents/MacOS/firefox",
		Arguments:   []string{"--new-window"},
		DisplayName: "Firefox",
		ExeExists:   true,
	}
}

func TestOpenAppendsURLAfterArguments(t *testing.T) {
	t.Parallel()

	runner := &fakeRunner{}
	log := logging.NewTestLogger(io.Discard)
	l := NewWithRunner(log, time.Second, runner)

	err := l.Open(context.Background(), testCandidate(), "https://example.com")
	if err != nil {
		t.Fatalf("Open() error = %v", err)
	}

	if runner.name != "/Applications/Firefox.app/Contents/MacOS/firefox" {
		t.Errorf("exe = %q", runner.name)
	}
	want := []string{"--new-window", "https://example.com"}
	if len(runner.args) != len(want) {
		t.Fatalf("args = %v, want %v", runner.args, want)
	}
	for i := range want {
		if runner.args[i] != want[i] {
			t.Fatalf("args = %v, want %v", runner.args, want)
		}
	}
}

func TestOpenRejectsNonWebScheme(t *testing.T) {
	t.Parallel()

	runner := &fakeRunner{}
	log := logging.NewTestLogger(io.Discard)
	l := NewWithRunner(log, time.Second, runner)

	for _, url := range []string{"ftp://example.com", "file:///etc/passwd", "example.com"} {
		if err := l.Open(context.Background(), testCandidate(), url); err == nil {
			t.Errorf("Open(%q) error = nil, want scheme rejection", url)
		}
	}
	if runner.name != "" {
		t.Error("runner invoked despite invalid URL")
	}
}

func TestOpenRejectsMissingExecutable(t *testing.T) {
	t.Parallel()

	runner := &fakeRunner{}
	log := logging.NewTestLogger(io.Discard)
	l := NewWithRunner(log, time.Second, runner)

	cand := testCandidate()
	cand.ExeExists = false

	if err := l.Open(context.Background(), cand, "https://example.com"); err == nil {
		t.Error("Open() error = nil for missing executable")
	}
}

func TestOpenDefaultValidatesURL(t *testing.T) {
	t.Parallel()

	log := logging.NewTestLogger(io.Discard)
	l := New(log, time.Second)

	if err := l.OpenDefault("javascript:alert(1)"); err == nil {
		t.Error("OpenDefault() error = nil for non-web scheme")
	}
}

func TestOpenStartedBrowserOutlivesReturn(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("uses a shell script as the browser stand-in")
	}
	t.Parallel()

	dir := t.TempDir()
	marker := filepath.Join(dir, "launched")

	// Stand-in browser: stays alive past the launcher timeout, then
	// records that it was still running.
	script := filepath.Join(dir, "browser.sh")
	body := "#!/bin/sh\nsleep 0.5\ntouch \"$1\"\n"
	if err := os.WriteFile(script, []byte(body), 0o755); err != nil {
		t.Fatal(err)
	}

	log := logging.NewTestLogger(io.Discard)
	l := New(log, 100*time.Millisecond)

	cand := core.BrowserCandidate{
		ExePath:     script,
		Arguments:   []string{marker},
		DisplayName: "script",
		ExeExists:   true,
	}

	if err := l.Open(context.Background(), cand, "https://example.com"); err != nil {
		t.Fatalf("Open() error = %v", err)
	}

	deadline := time.Now().Add(5 * time.Second)
	for time.Now().Before(deadline) {
		if _, err := os.Stat(marker); err == nil {
			return
		}
		time.Sleep(50 * time.Millisecond)
	}
	t.Fatal("started process did not survive Open returning")
}

func TestNewAppliesDefaultTimeout(t *testing.T) {
	t.Parallel()

	log := logging.NewTestLogger(io.Discard)
	l := New(log, 0)
	if l.timeout != DefaultTimeout {
		t.Errorf("timeout = %v, want %v", l.timeout, DefaultTimeout)
	}
}
