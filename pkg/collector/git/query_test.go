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
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/NVIDIA/daily-briefing/pkg/process"
)

func TestParseAheadBehind(t *testing.T) {
	tests := []struct {
		in     string
		ahead  int
		behind int
	}{
		{"3\t1", 3, 1},
		{"0 0", 0, 0},
		{"  12   4 ", 12, 4},
		{"", 0, 0},
		{"5", 5, 0},
		{"x y", 0, 0},
		{"-1 2", 0, 2},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			a, b := parseAheadBehind(tt.in)
			assert.Equal(t, tt.ahead, a)
			assert.Equal(t, tt.behind, b)
		})
	}
}

func TestCountLines(t *testing.T) {
	assert.Equal(t, 0, countLines(""))
	assert.Equal(t, 1, countLines("M a.go"))
	assert.Equal(t, 2, countLines("M a.go\n\n?? b.go\n"))
	assert.Equal(t, 0, countLines("\n  \n"))
}

func TestParseBranch(t *testing.T) {
	assert.Equal(t, "main", parseBranch(process.Succeed("main")))
	assert.Equal(t, DetachedBranch, parseBranch(process.Succeed("")))
	assert.Equal(t, UnknownBranch, parseBranch(process.Fail("fatal")))
}
