// Package fs provides filesystem-backed adapters: the staleness checker,
// the fan-out expander and the cleaner. All state lives in the filesystem;
// nothing here keeps a cache between calls.
package fs

import (
	"errors"
	"io/fs"
	"os"
	"time"

	"github.com/Timdpr/atsp-approximation/internal/core/domain"
	"github.com/Timdpr/atsp-approximation/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.Checker = (*Checker)(nil)

// Checker implements make-style staleness semantics: a target is satisfied
// iff every output exists and no prerequisite output is newer than the
// oldest output. Freshness is relative to upstream, not to wall-clock time.
type Checker struct{}

// NewChecker creates a new Checker.
func NewChecker() *Checker {
	return &Checker{}
}

// Satisfied reports whether the target needs no rebuild.
func (c *Checker) Satisfied(target *domain.Target, prereqOutputs []string) (bool, error) {
	if target.Probe != nil {
		return c.probeSatisfied(target.Probe)
	}

	if len(target.Outputs) == 0 {
		// Side effects only and no probe: always considered unsatisfied.
		return false, nil
	}

	oldest, ok, err := oldestMtime(target.OutputPaths())
	if err != nil || !ok {
		return false, err
	}

	for _, prereq := range prereqOutputs {
		info, err := os.Stat(prereq)
		if err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				// A vanished prerequisite output means upstream state is
				// unknown; rebuild.
				return false, nil
			}
			return false, zerr.With(zerr.Wrap(err, "failed to stat prerequisite output"), "path", prereq)
		}
		if info.ModTime().After(oldest) {
			return false, nil
		}
	}

	return true, nil
}

// probeSatisfied checks an explicit existence probe: the probe path must
// exist and must not be older than its reference.
func (c *Checker) probeSatisfied(probe *domain.Probe) (bool, error) {
	info, err := os.Stat(probe.Path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return false, nil
		}
		return false, zerr.With(zerr.Wrap(err, "failed to stat probe"), "path", probe.Path)
	}

	if probe.NewerThan == "" {
		return true, nil
	}

	ref, err := os.Stat(probe.NewerThan)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			// Nothing to compare against; existence is enough.
			return true, nil
		}
		return false, zerr.With(zerr.Wrap(err, "failed to stat probe reference"), "path", probe.NewerThan)
	}

	return !info.ModTime().Before(ref.ModTime()), nil
}

// oldestMtime stats every path and returns the oldest modification time.
// ok is false when any path does not exist.
func oldestMtime(paths []string) (oldest time.Time, ok bool, err error) {
	for i, path := range paths {
		info, statErr := os.Stat(path)
		if statErr != nil {
			if errors.Is(statErr, fs.ErrNotExist) {
				return time.Time{}, false, nil
			}
			return time.Time{}, false, zerr.With(zerr.Wrap(statErr, "failed to stat output"), "path", path)
		}
		if i == 0 || info.ModTime().Before(oldest) {
			oldest = info.ModTime()
		}
	}
	return oldest, true, nil
}
