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
	"slices"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// sortRepositories orders active repositories first, then by name using
// locale-aware collation. The sort is stable.
func sortRepositories(repos []Repository) {
	// collate.Collator is not safe for concurrent use; one per call.
	col := collate.New(language.Und)

	slices.SortStableFunc(repos, func(a, b Repository) int {
		if a.IsActive() != b.IsActive() {
			if a.IsActive() {
				return -1
			}
			return 1
		}
		return col.CompareString(a.Name, b.Name)
	})
}
