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

package serializer

import (
	"fmt"
	"sort"
	"strconv"
	"time"

	"github.com/NVIDIA/daily-briefing/pkg/collector/git"
	"github.com/NVIDIA/daily-briefing/pkg/section"
	"github.com/NVIDIA/daily-briefing/pkg/snapshotter"
)

const (
	bannerTitle  = "DAILY BRIEFING"
	bannerLayout = "Monday, January 2, 2006 03:04 PM"
	ruleWidth    = 50

	noEventsMessage   = "No events today, wide open!"
	allCleanMessage   = "All clean!"
	podsHealthyPrefix = "All pods healthy"
)

// orderedResult is a section result in report order.
type orderedResult struct {
	name   section.Name
	result section.Result
}

// reportOrder returns the snapshot's results with known sections first in
// their fixed order, followed by unknown names sorted alphabetically.
func reportOrder(snap *snapshotter.Snapshot) []orderedResult {
	out := make([]orderedResult, 0, len(snap.Sections))
	for _, name := range section.All() {
		if res, ok := snap.Sections[name]; ok {
			out = append(out, orderedResult{name: name, result: res})
		}
	}

	unknown := make([]string, 0)
	for name := range snap.Sections {
		if !name.IsKnown() {
			unknown = append(unknown, name.String())
		}
	}
	sort.Strings(unknown)
	for _, name := range unknown {
		n := section.Name(name)
		out = append(out, orderedResult{name: n, result: snap.Sections[n]})
	}
	return out
}

func bannerDate(t time.Time) string {
	if t.IsZero() {
		t = time.Now()
	}
	return t.Local().Format(bannerLayout)
}

// plural returns "1 repo" or "3 repos".
func plural(n int, word string) string {
	if n == 1 {
		return fmt.Sprintf("%d %s", n, word)
	}
	return fmt.Sprintf("%d %ss", n, word)
}

// interestingRepos keeps repositories with local changes, unpushed or
// unpulled commits, or recent activity.
func interestingRepos(repos []git.Repository) []git.Repository {
	out := make([]git.Repository, 0, len(repos))
	for _, r := range repos {
		if r.IsInteresting() {
			out = append(out, r)
		}
	}
	return out
}

// percentOf parses a numeric percentage string; ok is false for fallbacks like "?".
func percentOf(s string) (float64, bool) {
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, false
	}
	return v, true
}

func preview[T any](items []T, limit int) []T {
	if limit >= 0 && len(items) > limit {
		return items[:limit]
	}
	return items
}
