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

package client

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testKubeconfig = `apiVersion: v1
kind: Config
current-context: staging
clusters:
- name: staging
  cluster:
    server: https://127.0.0.1:6443
contexts:
- name: staging
  context:
    cluster: staging
    user: dev
users:
- name: dev
  user:
    token: redacted
`

func writeKubeconfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestResolveKubeconfig(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	t.Run("explicit wins", func(t *testing.T) {
		t.Setenv("KUBECONFIG", "/from/env")
		assert.Equal(t, "/explicit", ResolveKubeconfig("/explicit"))
	})

	t.Run("first env entry", func(t *testing.T) {
		t.Setenv("KUBECONFIG", "/a"+string(os.PathListSeparator)+"/b")
		assert.Equal(t, "/a", ResolveKubeconfig(""))
	})

	t.Run("missing home config", func(t *testing.T) {
		t.Setenv("KUBECONFIG", "")
		assert.Empty(t, ResolveKubeconfig(""))
	})
}

func TestCurrentContext(t *testing.T) {
	path := writeKubeconfig(t, testKubeconfig)

	name, err := CurrentContext(path)
	require.NoError(t, err)
	assert.Equal(t, "staging", name)
}

func TestCurrentContext_Errors(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	t.Setenv("KUBECONFIG", "")

	_, err := CurrentContext("")
	assert.Error(t, err)

	_, err = CurrentContext("/nonexistent/path/to/kubeconfig")
	assert.ErrorContains(t, err, "failed to load kubeconfig")

	empty := writeKubeconfig(t, "apiVersion: v1\nkind: Config\n")
	_, err = CurrentContext(empty)
	assert.ErrorContains(t, err, "no current context")
}
