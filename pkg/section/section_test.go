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
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testPayload struct {
	Value int `json:"value"`
}

func (testPayload) SectionName() Name { return Git }

func TestNameIsKnown(t *testing.T) {
	for _, n := range All() {
		assert.True(t, n.IsKnown(), n)
	}
	assert.False(t, Name("stocks").IsKnown())
	assert.False(t, Name("").IsKnown())
	assert.Equal(t, []string{"weather", "calendar", "git", "system", "kubernetes"}, AllStrings())
}

func TestParseList(t *testing.T) {
	tests := []struct {
		in   string
		want []string
	}{
		{"weather,git", []string{"weather", "git"}},
		{" weather , , git ,", []string{"weather", "git"}},
		{"", []string{}},
		{"~/git,~/work", []string{"~/git", "~/work"}},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, ParseList(tt.in))
		})
	}
}

func TestResultVariants(t *testing.T) {
	ok := OK(testPayload{Value: 1})
	assert.True(t, ok.IsOK())
	assert.Empty(t, ok.Error)
	assert.Empty(t, ok.Note)

	failed := Failed("HTTP 503: busy")
	assert.True(t, failed.IsError())
	assert.Nil(t, failed.Data)
	assert.Empty(t, failed.Note)

	na := Unavailable("kubectl not installed")
	assert.True(t, na.IsUnavailable())
	assert.Nil(t, na.Data)
	assert.Empty(t, na.Error)
}

func TestResultJSON(t *testing.T) {
	b, err := json.Marshal(OK(testPayload{Value: 7}))
	require.NoError(t, err)
	assert.JSONEq(t, `{"status":"ok","data":{"value":7}}`, string(b))

	b, err = json.Marshal(Unavailable("gcalcli missing"))
	require.NoError(t, err)
	assert.JSONEq(t, `{"status":"unavailable","note":"gcalcli missing"}`, string(b))
}
