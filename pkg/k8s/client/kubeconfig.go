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
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"k8s.io/client-go/tools/clientcmd"
	"k8s.io/client-go/util/homedir"
)

// ResolveKubeconfig returns the kubeconfig path kubectl would use.
//
// Resolution order:
//  1. the explicit path, when not empty
//  2. the first entry of the KUBECONFIG environment variable
//  3. ~/.kube/config, if it exists
//
// An empty result means no kubeconfig was found.
func ResolveKubeconfig(explicit string) string {
	if explicit != "" {
		return explicit
	}

	if env := os.Getenv(clientcmd.RecommendedConfigPathEnvVar); env != "" {
		for _, p := range filepath.SplitList(env) {
			if p = strings.TrimSpace(p); p != "" {
				return p
			}
		}
	}

	path := filepath.Join(homedir.HomeDir(), clientcmd.RecommendedHomeDir, clientcmd.RecommendedFileName)
	if _, err := os.Stat(path); err != nil {
		return ""
	}
	return path
}

// CurrentContext reads the current-context of the resolved kubeconfig.
// It never contacts the cluster.
func CurrentContext(kubeconfig string) (string, error) {
	path := ResolveKubeconfig(kubeconfig)
	if path == "" {
		return "", fmt.Errorf("no kubeconfig found")
	}

	cfg, err := clientcmd.LoadFromFile(path)
	if err != nil {
		return "", fmt.Errorf("failed to load kubeconfig from %s: %w", path, err)
	}

	if cfg.CurrentContext == "" {
		return "", fmt.Errorf("kubeconfig %s has no current context", path)
	}
	return cfg.CurrentContext, nil
}
