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
	"fmt"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

func buildRepos(uncommitted, ahead, recent []int) []Repository {
	n := min(len(uncommitted), len(ahead), len(recent))
	repos := make([]Repository, 0, n)
	for i := 0; i < n; i++ {
		repos = append(repos, Repository{
			Name:          fmt.Sprintf("repo-%03d", i),
			Uncommitted:   uncommitted[i],
			Ahead:         ahead[i],
			RecentCommits: recent[i],
		})
	}
	return repos
}

func TestScanResultCountsProperty(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 100

	properties := gopter.NewProperties(parameters)

	properties.Property("counts match the repository list", prop.ForAll(
		func(uncommitted, ahead, recent []int) bool {
			repos := buildRepos(uncommitted, ahead, recent)
			res := newScanResult(repos, nil)

			dirty, withRecent := 0, 0
			for _, r := range res.Repos {
				if r.Uncommitted > 0 {
					dirty++
				}
				if r.RecentCommits > 0 {
					withRecent++
				}
			}
			return res.TotalRepos == len(res.Repos) &&
				res.DirtyRepos == dirty &&
				res.ReposWithRecentCommits == withRecent
		},
		gen.SliceOf(gen.IntRange(0, 3)),
		gen.SliceOf(gen.IntRange(0, 3)),
		gen.SliceOf(gen.IntRange(0, 3)),
	))

	properties.TestingRun(t)
}

func TestSortRepositoriesProperty(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 100

	properties := gopter.NewProperties(parameters)

	properties.Property("active repositories precede inactive ones and each group is collated", prop.ForAll(
		func(repoNames []string, active []bool) bool {
			n := min(len(repoNames), len(active))
			repos := make([]Repository, 0, n)
			for i := 0; i < n; i++ {
				r := Repository{Name: repoNames[i]}
				if active[i] {
					r.Uncommitted = 1
				}
				repos = append(repos, r)
			}

			sortRepositories(repos)

			col := collate.New(language.Und)
			seenInactive := false
			for i, r := range repos {
				if !r.IsActive() {
					seenInactive = true
				} else if seenInactive {
					return false
				}
				if i > 0 && repos[i-1].IsActive() == r.IsActive() &&
					col.CompareString(repos[i-1].Name, r.Name) > 0 {
					return false
				}
			}
			return len(repos) == n
		},
		gen.SliceOf(gen.Identifier()),
		gen.SliceOf(gen.Bool()),
	))

	properties.TestingRun(t)
}
