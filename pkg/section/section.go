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

package section

import (
	"strings"
)

// Name identifies a briefing section.
type Name string

// Known section names, in report order.
const (
	Weather    Name = "weather"
	Calendar   Name = "calendar"
	Git        Name = "git"
	System     Name = "system"
	Kubernetes Name = "kubernetes"
)

// String returns the string representation of the Name.
func (n Name) String() string {
	return string(n)
}

// IsKnown reports whether a collector exists for the section.
func (n Name) IsKnown() bool {
	switch n {
	case Weather, Calendar, Git, System, Kubernetes:
		return true
	default:
		return false
	}
}

// All returns every known section in report order.
func All() []Name {
	return []Name{Weather, Calendar, Git, System, Kubernetes}
}

// AllStrings returns every known section name as strings.
func AllStrings() []string {
	all := All()
	out := make([]string, 0, len(all))
	for _, n := range all {
		out = append(out, n.String())
	}
	return out
}

// ParseList splits a comma separated list into trimmed, non-empty entries.
func ParseList(s string) []string {
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
