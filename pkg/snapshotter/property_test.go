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

package snapshotter

import (
	"context"
	"strings"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"

	"github.com/NVIDIA/daily-briefing/pkg/config"
	"github.com/NVIDIA/daily-briefing/pkg/section"
)

func TestAggregateOneEntryPerNameProperty(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 100

	properties := gopter.NewProperties(parameters)

	pool := append(section.AllStrings(), "stocks", "news", "")

	properties.Property("one result per distinct requested name", prop.ForAll(
		func(picks []int) bool {
			names := make([]string, len(picks))
			for i, p := range picks {
				names[i] = pool[p]
			}
			snap := newTestAggregator(&mockFactory{}).Aggregate(context.Background(), names, config.Default())

			distinct := map[string]bool{}
			for _, n := range names {
				distinct[n] = true
			}
			if len(snap.Sections) != len(distinct) {
				return false
			}
			for n := range distinct {
				res, ok := snap.Sections[section.Name(n)]
				if !ok {
					return false
				}
				known := section.Name(n).IsKnown()
				if known != res.IsOK() {
					return false
				}
				if !known && !strings.HasPrefix(res.Error, "Unknown section: ") {
					return false
				}
			}
			return true
		},
		gen.SliceOf(gen.IntRange(0, len(pool)-1)),
	))

	properties.TestingRun(t)
}
