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

import "github.com/NVIDIA/daily-briefing/pkg/section"

// Fallback values used when a query fails.
const (
	// UnknownBranch is reported when the branch query fails.
	UnknownBranch = "unknown"
	// DetachedBranch is reported when HEAD is not on a branch.
	DetachedBranch = "detached"
)

// Repository is the status of one local repository.
type Repository struct {
	// Name is the directory name.
	Name string `json:"name" yaml:"name"`
	// Path is the absolute directory path.
	Path string `json:"path" yaml:"path"`
	// Branch is the current branch, UnknownBranch or DetachedBranch.
	Branch string `json:"branch" yaml:"branch"`
	// Uncommitted counts changed and untracked paths.
	Uncommitted int `json:"uncommitted" yaml:"uncommitted"`
	// Ahead counts local commits missing from the upstream.
	Ahead int `json:"ahead" yaml:"ahead"`
	// Behind counts upstream commits missing locally.
	Behind int `json:"behind" yaml:"behind"`
	// RecentCommits counts non-merge commits in the recent window.
	RecentCommits int `json:"recentCommits" yaml:"recentCommits"`
}

// IsActive reports whether the repository has local work not yet shared.
func (r Repository) IsActive() bool {
	return r.Uncommitted > 0 || r.Ahead > 0
}

// IsInteresting reports whether the repository is worth a line in a report.
func (r Repository) IsInteresting() bool {
	return r.Uncommitted > 0 || r.Ahead > 0 || r.Behind > 0 || r.RecentCommits > 0
}

// ScanResult is the git section payload.
type ScanResult struct {
	TotalRepos             int          `json:"totalRepos" yaml:"totalRepos"`
	DirtyRepos             int          `json:"dirtyRepos" yaml:"dirtyRepos"`
	ReposWithRecentCommits int          `json:"reposWithRecentCommits" yaml:"reposWithRecentCommits"`
	Repos                  []Repository `json:"repos" yaml:"repos"`
	Errors                 []string     `json:"errors" yaml:"errors"`
}

// SectionName implements section.Payload.
func (ScanResult) SectionName() section.Name {
	return section.Git
}

func newScanResult(repos []Repository, scanErrors []string) ScanResult {
	res := ScanResult{
		TotalRepos: len(repos),
		Repos:      repos,
		Errors:     scanErrors,
	}
	if res.Repos == nil {
		res.Repos = []Repository{}
	}
	if res.Errors == nil {
		res.Errors = []string{}
	}
	for _, r := range repos {
		if r.Uncommitted > 0 {
			res.DirtyRepos++
		}
		if r.RecentCommits > 0 {
			res.ReposWithRecentCommits++
		}
	}
	return res
}
