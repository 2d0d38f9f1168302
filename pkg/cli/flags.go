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
	"strings"

	"github.com/urfave/cli/v3"

	"github.com/NVIDIA/daily-briefing/pkg/config"
	"github.com/NVIDIA/daily-briefing/pkg/logging"
	"github.com/NVIDIA/daily-briefing/pkg/section"
	"github.com/NVIDIA/daily-briefing/pkg/serializer"
)

const (
	flagFormat      = "format"
	flagSections    = "sections"
	flagLocation    = "location"
	flagGitDirs     = "git-dirs"
	flagKubeconfig  = "kubeconfig"
	flagOutput      = "output"
	flagMetricsFile = "metrics-file"
	flagLogLevel    = "log-level"

	// defaultLogLevel keeps the report free of routine log lines.
	defaultLogLevel = "warn"
)

func rootFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:    flagFormat,
			Aliases: []string{"f"},
			Usage:   "output format (" + strings.Join(serializer.SupportedFormats(), ", ") + ")",
			Sources: cli.EnvVars(config.EnvFormat),
			Value:   config.DefaultFormat,
		},
		&cli.StringFlag{
			Name:    flagSections,
			Aliases: []string{"s"},
			Usage:   "comma-separated sections to include",
			Sources: cli.EnvVars(config.EnvSections),
			Value:   strings.Join(section.AllStrings(), ","),
		},
		&cli.StringFlag{
			Name:    flagLocation,
			Aliases: []string{"l"},
			Usage:   "weather location",
			Sources: cli.EnvVars(config.EnvLocation),
			Value:   config.DefaultLocation,
		},
		&cli.StringFlag{
			Name:    flagGitDirs,
			Usage:   "comma-separated directories to scan for git repositories",
			Sources: cli.EnvVars(config.EnvGitDirs),
			Value:   config.DefaultGitDir,
		},
		&cli.StringFlag{
			Name:  flagKubeconfig,
			Usage: "path to kubeconfig (defaults to KUBECONFIG, then ~/.kube/config)",
		},
		&cli.StringFlag{
			Name:    flagOutput,
			Aliases: []string{"o"},
			Usage:   "write the report to this file instead of stdout",
		},
		&cli.StringFlag{
			Name:  flagMetricsFile,
			Usage: "write Prometheus metrics in text format to this file after rendering",
		},
		&cli.StringFlag{
			Name:    flagLogLevel,
			Usage:   "log level (debug, info, warn, error)",
			Sources: cli.EnvVars(logging.EnvVarLogLevel),
			Value:   defaultLogLevel,
		},
	}
}
