// Package scan walks application install roots and accumulates browser
// candidates plus non-fatal diagnostics. No single broken application may
// halt or lose the rest of the scan.
package scan

import (
	"context"
	"path/filepath"
	"runtime"
	"strings"
	"sync"

	"github.com/quantmind-br/webpick/internal/core"
	"github.com/quantmind-br/webpick/internal/extract"
	"github.com/quantmind-br/webpick/internal/fsops"
	"github.com/quantmind-br/webpick/internal/manifest"
	"github.com/rs/zerolog"
	"github.com/sourcegraph/conc/pool"
	"github.com/spf13/afero"
)

// Scanner discovers browser-capable applications under a set of roots.
type Scanner struct {
	fs       afero.Fs
	log      *zerolog.Logger
	reader   *manifest.Reader
	workers  int
	progress func(done, total int)
}

// Option configures a Scanner.
type Option func(*Scanner)

// WithWorkers bounds the entry-level worker pool. Values below 1 fall back
// to the CPU count.
func WithWorkers(n int) Option {
	return func(s *Scanner) {
		s.workers = n
	}
}

// WithProgress registers a callback invoked after every processed entry.
// Callbacks may run concurrently with each other.
func WithProgress(fn func(done, total int)) Option {
	return func(s *Scanner) {
		s.progress = fn
	}
}

// New creates a Scanner over fs.
func New(fs afero.Fs, log *zerolog.Logger, opts ...Option) *Scanner {
	s := &Scanner{
		fs:     fs,
		log:    log,
		reader: manifest.NewReader(fs),
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.workers < 1 {
		s.workers = runtime.NumCPU()
	}
	return s
}

// job is one application bundle directory to evaluate.
type job struct {
	root    string
	appRoot string
}

// accumulator merges results from concurrent entry workers.
type accumulator struct {
	mu          sync.Mutex
	candidates  []core.BrowserCandidate
	diagnostics []core.ScanDiagnostic
	done        int
}

func (a *accumulator) addCandidate(c core.BrowserCandidate) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.candidates = append(a.candidates, c)
}

func (a *accumulator) addDiagnostic(path, stage, message string) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.diagnostics = append(a.diagnostics, core.ScanDiagnostic{
		Path:    path,
		Stage:   stage,
		Message: message,
	})
}

func (a *accumulator) step() int {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.done++
	return a.done
}

// Scan processes every root synchronously and returns the accumulated
// candidates and diagnostics. It never fails as a whole: unreadable roots
// and broken entries become diagnostics. Entry order in the result is not
// guaranteed; display ordering is imposed later.
func (s *Scanner) Scan(ctx context.Context, roots []string) ([]core.BrowserCandidate, []core.ScanDiagnostic) {
	acc := &accumulator{}

	var jobs []job
	for _, root := range roots {
		entries, err := fsops.DirEntries(s.fs, root)
		if err != nil {
			s.log.Warn().Str("root", root).Err(err).Msg("skipping unreadable root")
			acc.addDiagnostic(root, core.StageRoot, err.Error())
			continue
		}
		for _, entry := range entries {
			if !entry.IsDir() {
				continue
			}
			jobs = append(jobs, job{root: root, appRoot: filepath.Join(root, entry.Name())})
		}
	}

	total := len(jobs)
	p := pool.New().WithMaxGoroutines(s.workers)
	for _, j := range jobs {
		j := j
		p.Go(func() {
			if ctx.Err() == nil {
				s.scanEntry(j, acc)
			}
			done := acc.step()
			if s.progress != nil {
				s.progress(done, total)
			}
		})
	}
	p.Wait()

	s.log.Debug().
		Int("entries", total).
		Int("candidates", len(acc.candidates)).
		Int("diagnostics", len(acc.diagnostics)).
		Msg("scan finished")

	return acc.candidates, acc.diagnostics
}

// scanEntry runs reader, filter and extractor for one bundle directory,
// downgrading every per-entry failure to a diagnostic.
func (s *Scanner) scanEntry(j job, acc *accumulator) {
	manifestPath := filepath.Join(j.appRoot, "Contents", "Info.plist")

	// A directory without a manifest is not an application, not an event.
	if !fsops.Exists(s.fs, manifestPath) {
		return
	}

	doc, err := s.reader.Read(manifestPath)
	if err != nil {
		s.log.Debug().Str("path", manifestPath).Err(err).Msg("manifest unreadable")
		acc.addDiagnostic(manifestPath, core.StageRead, err.Error())
		return
	}

	schemes, entryErrs, err := manifest.SupportedSchemes(doc)
	if err != nil {
		acc.addDiagnostic(manifestPath, core.StageFilter, err.Error())
		return
	}
	if len(entryErrs) > 0 {
		// Partially malformed URL declarations: report once, keep going
		// with whatever schemes survived.
		msgs := make([]string, len(entryErrs))
		for i, e := range entryErrs {
			msgs[i] = e.Error()
		}
		acc.addDiagnostic(manifestPath, core.StageFilter, strings.Join(msgs, "; "))
	}
	if !schemes.HasBrowserScheme() {
		// Expected negative result, dropped without diagnostic.
		return
	}

	cand, err := extract.Extract(s.fs, doc, j.appRoot)
	if err != nil {
		evt := s.log.Debug().Str("path", manifestPath).Err(err)
		if extract.IsRequiredFieldError(err) {
			evt = evt.Str("field", extract.FieldName(err))
		}
		evt.Msg("extraction failed")
		acc.addDiagnostic(manifestPath, core.StageExtract, err.Error())
		return
	}

	s.log.Debug().Str("name", cand.DisplayName).Str("exe", cand.ExePath).Msg("candidate found")
	acc.addCandidate(cand)
}
