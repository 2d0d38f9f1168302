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

// Package git scans directories of local repositories and reports their status.
//
// # Discovery
//
// Each root is listed in the given order. A leading "~" is expanded to the
// home directory. Hidden entries are skipped and a subdirectory counts as a
// repository when it contains a .git entry. A root that cannot be listed is
// recorded as "<root>: <error>" and scanning moves on.
//
// # Queries
//
// Four git queries run concurrently for every repository:
//
//	git status --porcelain                                 uncommitted paths
//	git branch --show-current                              branch ("detached" when empty)
//	git rev-list --left-right --count HEAD...@{upstream}   ahead and behind
//	git log --since=<now-24h> --oneline --no-merges        recent commits
//
// A failed query leaves its fallback: zero counts and branch "unknown".
// A repository without an upstream therefore reports 0 ahead, 0 behind.
//
// # Ordering
//
// Repositories with uncommitted changes or unpushed commits come first, then
// names are compared with locale-aware collation.
package git
