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

package config

import (
	"fmt"
	"strings"

	"github.com/NVIDIA/daily-briefing/pkg/errors"
	"github.com/NVIDIA/daily-briefing/pkg/section"
)

const (
	// DefaultLocation is used for the weather section when none is given.
	DefaultLocation = "Austin, TX"

	// DefaultGitDir is the repository root scanned when none is given.
	DefaultGitDir = "~/git"

	// DefaultFormat is the output format when none is given.
	DefaultFormat = "terminal"
)

// Environment variables consulted for defaults.
const (
	EnvFormat     = "BRIEFING_FORMAT"
	EnvSections   = "BRIEFING_SECTIONS"
	EnvLocation   = "BRIEFING_LOCATION"
	EnvGitDirs    = "BRIEFING_GIT_DIRS"
	EnvKubeconfig = "KUBECONFIG"
)

// Config is the resolved configuration of one invocation. It is built once at
// the command boundary and passed down explicitly.
type Config struct {
	// Sections are the requested section names in request order. Unknown
	// names are kept so they can be reported in the briefing.
	Sections []string

	// Location is the weather location.
	Location string

	// GitDirs are the repository roots; a leading ~ is expanded.
	GitDirs []string

	// Kubeconfig is passed to kubectl when set.
	Kubeconfig string

	// Format is the output format name.
	Format string

	// Output is the report path; empty means stdout.
	Output string

	// MetricsFile receives Prometheus metrics in text format when set.
	MetricsFile string
}

// Default returns the configuration used when nothing is overridden.
func Default() *Config {
	return &Config{
		Sections: section.AllStrings(),
		Location: DefaultLocation,
		GitDirs:  []string{DefaultGitDir},
		Format:   DefaultFormat,
	}
}

// Validate checks the configuration for values that make a run pointless.
func (c *Config) Validate() error {
	if len(c.Sections) == 0 {
		return errors.New(errors.ErrCodeInvalidRequest, "no sections requested")
	}
	if strings.TrimSpace(c.Location) == "" && c.wants(section.Weather) {
		return errors.New(errors.ErrCodeInvalidRequest, "weather requested without a location")
	}
	if strings.TrimSpace(c.Format) == "" {
		return errors.New(errors.ErrCodeInvalidRequest, "output format is empty")
	}
	if c.Output != "" && c.Output == c.MetricsFile {
		return errors.NewWithContext(errors.ErrCodeInvalidRequest,
			fmt.Sprintf("report and metrics cannot share the file %s", c.Output),
			map[string]any{"output": c.Output})
	}
	return nil
}

func (c *Config) wants(name section.Name) bool {
	for _, s := range c.Sections {
		if section.Name(s) == name {
			return true
		}
	}
	return false
}
