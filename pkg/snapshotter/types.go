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
	"time"

	"github.com/NVIDIA/daily-briefing/pkg/config"
	"github.com/NVIDIA/daily-briefing/pkg/header"
	"github.com/NVIDIA/daily-briefing/pkg/section"
)

const (
	// APIGroup is the group of briefing documents.
	APIGroup = "briefing.nvidia.com"

	// APIVersion is the schema version of briefing documents.
	APIVersion = "v1"

	// FullAPIVersion is the apiVersion written into the header.
	FullAPIVersion = APIGroup + "/" + APIVersion
)

// Snapshotter produces one briefing per call.
type Snapshotter interface {
	Aggregate(ctx context.Context, names []string, cfg *config.Config) *Snapshot
}

// NewSnapshot creates a Snapshot with an initialized Sections map.
func NewSnapshot() *Snapshot {
	return &Snapshot{
		Sections: make(map[section.Name]section.Result),
	}
}

// Snapshot is the merged result of one briefing run. It is built once by the
// aggregator and not mutated afterwards.
type Snapshot struct {
	header.Header `json:",inline" yaml:",inline"`

	// Sections holds exactly one result per distinct requested section name.
	Sections map[section.Name]section.Result `json:"sections" yaml:"sections"`

	// CapturedAt is when the last section finished.
	CapturedAt time.Time `json:"timestamp" yaml:"timestamp"`
}

// Result returns the result for name and whether it was requested.
func (s *Snapshot) Result(name section.Name) (section.Result, bool) {
	r, ok := s.Sections[name]
	return r, ok
}

// ErrorCount returns the number of sections that failed.
func (s *Snapshot) ErrorCount() int {
	n := 0
	for _, r := range s.Sections {
		if r.IsError() {
			n++
		}
	}
	return n
}
