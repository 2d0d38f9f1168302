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
	"log/slog"
	"strconv"
	"strings"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/NVIDIA/daily-briefing/pkg/errors"
	"github.com/NVIDIA/daily-briefing/pkg/process"
)

// inspect runs the four status queries for one repository concurrently.
// A failed or panicking query leaves its fallback value in place.
func (s *Scanner) inspect(ctx context.Context, name, dir string, since time.Time) Repository {
	repo := Repository{
		Name:   name,
		Path:   dir,
		Branch: UnknownBranch,
	}

	var g errgroup.Group

	goQuery(&g, dir, "status", func() {
		out := s.git(ctx, dir, "status", "--porcelain")
		if !out.Failed() {
			repo.Uncommitted = countLines(out.Stdout)
		}
	})

	goQuery(&g, dir, "branch", func() {
		out := s.git(ctx, dir, "branch", "--show-current")
		repo.Branch = parseBranch(out)
	})

	goQuery(&g, dir, "rev-list", func() {
		out := s.git(ctx, dir, "rev-list", "--left-right", "--count", "HEAD...@{upstream}")
		if !out.Failed() {
			repo.Ahead, repo.Behind = parseAheadBehind(out.Stdout)
		}
	})

	goQuery(&g, dir, "log", func() {
		out := s.git(ctx, dir, "log", "--since="+since.Format(time.RFC3339), "--oneline", "--no-merges")
		if !out.Failed() {
			repo.RecentCommits = countLines(out.Stdout)
		}
	})

	_ = g.Wait()
	return repo
}

// goQuery runs fn on g. A panic is logged and swallowed so the field keeps
// its fallback.
func goQuery(g *errgroup.Group, dir, query string, fn func()) {
	g.Go(func() error {
		if err := errors.Recover("git "+query, fn); err != nil {
			slog.Warn("git query failed",
				slog.String("dir", dir),
				slog.String("error", errors.Describe(err)))
		}
		return nil
	})
}

func (s *Scanner) git(ctx context.Context, dir string, args ...string) process.Outcome {
	return s.Runner.Run(ctx, process.Command{
		Name:    "git",
		Args:    args,
		Dir:     dir,
		Timeout: s.Timeout,
	})
}

func parseBranch(out process.Outcome) string {
	if out.Failed() {
		return UnknownBranch
	}
	if b := strings.TrimSpace(out.Stdout); b != "" {
		return b
	}
	return DetachedBranch
}

// parseAheadBehind reads "<ahead> <behind>". Missing or malformed numbers
// read as zero.
func parseAheadBehind(s string) (ahead, behind int) {
	fields := strings.Fields(s)
	if len(fields) > 0 {
		ahead = atoi(fields[0])
	}
	if len(fields) > 1 {
		behind = atoi(fields[1])
	}
	return ahead, behind
}

func atoi(s string) int {
	n, err := strconv.Atoi(s)
	if err != nil || n < 0 {
		return 0
	}
	return n
}

func countLines(s string) int {
	n := 0
	for _, line := range strings.Split(s, "\n") {
		if strings.TrimSpace(line) != "" {
			n++
		}
	}
	return n
}
