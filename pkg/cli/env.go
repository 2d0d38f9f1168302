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

package cli

import (
	"log/slog"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"k8s.io/client-go/util/homedir"
)

// envFileName is the per-user defaults file under ~/.config/daily-briefing.
const envFileName = "briefing.env"

// defaultEnvFiles lists .env files in precedence order.
func defaultEnvFiles() []string {
	files := []string{".env"}
	if home := homedir.HomeDir(); home != "" {
		files = append(files, filepath.Join(home, ".config", name, envFileName))
	}
	return files
}

// loadEnvFiles loads the files that exist. Variables already present in the
// environment are never overridden, and earlier files win over later ones.
func loadEnvFiles(paths ...string) {
	for _, p := range paths {
		if _, err := os.Stat(p); err != nil {
			continue
		}
		if err := godotenv.Load(p); err != nil {
			slog.Warn("ignoring unreadable env file", slog.String("path", p), slog.String("error", err.Error()))
			continue
		}
		slog.Debug("loaded env file", slog.String("path", p))
	}
}
