// Copyright (c) 2025, NVIDIA CORPORATION.  All rights reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package git

import (
	"context"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"golang.org/x/sync/errgroup"
	"k8s.io/client-go/util/homedir"
	"k8s.io/utils/clock"

	"github.com/NVIDIA/daily-briefing/pkg/defaults"
	"github.com/NVIDIA/daily-briefing/pkg/errors"
	"github.com/NVIDIA/daily-briefing/pkg/process"
)

// Scanner finds repositories under a set of root directories and reports
// their status.
type Scanner struct {
	// Runner executes git.
	Runner process.Runner
	// Clock anchors the recent commit window.
	Clock clock.PassiveClock
	// Timeout applies to each git query.
	Timeout time.Duration
	// Window is how far back commits count as recent.
	Window time.Duration
}

// Option configures a Scanner.
type Option func(*Scanner)

// WithClock sets the clock used for the recent commit window.
func WithClock(c clock.PassiveClock) Option {
	return func(s *Scanner) {
		s.Clock = c
	}
}

// WithTimeout sets the per-query timeout.
func WithTimeout(d time.Duration) Option {
	return func(s *Scanner) {
		s.Timeout = d
	}
}

// NewScanner returns a Scanner using runner for git.
func NewScanner(runner process.Runner, opts ...Option) *Scanner {
	s := &Scanner{
		Runner:  runner,
		Clock:   clock.RealClock{},
		Timeout: defaults.GitCommandTimeout,
		Window:  defaults.RecentCommitWindow,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

type candidate struct {
	name string
	dir  string
}

// Scan lists each root in order, inspects every repository found beneath
// them concurrently and returns the sorted result. Listing failures and
// repositories dropped after a panic are recorded in Errors; query failures
// fall back per field. Scan never fails.
func (s *Scanner) Scan(ctx context.Context, roots []string) ScanResult {
	var candidates []candidate
	var scanErrors []string

	for _, root := range roots {
		found, err := listSubdirs(root)
		if err != nil {
			slog.Debug("failed to list git root", slog.String("root", root), slog.String("error", err.Error()))
			scanErrors = append(scanErrors, fmt.Sprintf("%s: %v", root, err))
			continue
		}
		candidates = append(candidates, found...)
	}

	since := s.Clock.Now().Add(-s.Window)
	slots := make([]*Repository, len(candidates))
	failures := make([]string, len(candidates))

	var g errgroup.Group
	for i, c := range candidates {
		g.Go(func() error {
			err := errors.Recover("inspecting "+c.dir, func() {
				if !isRepository(c.dir) {
					return
				}
				repo := s.inspect(ctx, c.name, c.dir, since)
				slots[i] = &repo
			})
			if err != nil {
				slog.Warn("dropping repository", slog.String("dir", c.dir), slog.String("error", errors.Describe(err)))
				slots[i] = nil
				failures[i] = errors.Describe(err)
			}
			return nil
		})
	}
	_ = g.Wait()

	for _, f := range failures {
		if f != "" {
			scanErrors = append(scanErrors, f)
		}
	}

	repos := make([]Repository, 0, len(slots))
	for _, r := range slots {
		if r != nil {
			repos = append(repos, *r)
		}
	}
	sortRepositories(repos)

	res := newScanResult(repos, scanErrors)
	slog.Debug("git scan complete",
		slog.Int("roots", len(roots)),
		slog.Int("repos", res.TotalRepos),
		slog.Int("dirty", res.DirtyRepos),
		slog.Int("errors", len(res.Errors)))
	return res
}

// ExpandHome replaces a leading "~" with the home directory.
func ExpandHome(dir string) string {
	if dir == "~" {
		return homedir.HomeDir()
	}
	if strings.HasPrefix(dir, "~/") {
		return filepath.Join(homedir.HomeDir(), dir[2:])
	}
	return dir
}

// listSubdirs returns the visible immediate subdirectories of root.
// Symlinks to directories are followed.
func listSubdirs(root string) ([]candidate, error) {
	base := ExpandHome(root)
	if abs, err := filepath.Abs(base); err == nil {
		base = abs
	}

	entries, err := os.ReadDir(base)
	if err != nil {
		return nil, err
	}

	out := make([]candidate, 0, len(entries))
	for _, e := range entries {
		name := e.Name()
		if strings.HasPrefix(name, ".") {
			continue
		}
		dir := filepath.Join(base, name)
		if !isDir(e, dir) {
			continue
		}
		out = append(out, candidate{name: name, dir: dir})
	}
	return out, nil
}

func isDir(e fs.DirEntry, path string) bool {
	if e.IsDir() {
		return true
	}
	if e.Type()&fs.ModeSymlink == 0 {
		return false
	}
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}

// isRepository reports whether dir has a .git entry. Worktrees and
// submodules use a .git file, so any entry type counts.
func isRepository(dir string) bool {
	_, err := os.Stat(filepath.Join(dir, ".git"))
	return err == nil
}
