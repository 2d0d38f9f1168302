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
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/urfave/cli/v3"

	"github.com/NVIDIA/daily-briefing/pkg/collector"
	"github.com/NVIDIA/daily-briefing/pkg/errors"
	"github.com/NVIDIA/daily-briefing/pkg/logging"
)

const (
	name           = "daily-briefing"
	versionDefault = "dev"
)

var (
	// overridden during build with ldflags
	version = versionDefault
	commit  = "unknown"
	date    = "unknown"
)

// Execute loads .env files, runs the briefing command and exits non-zero on
// failure. This is called by main.main().
func Execute() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Handle SIGINT/SIGTERM for graceful shutdown
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)

	go func() {
		<-sigCh
		fmt.Fprintln(os.Stderr, "\nReceived interrupt signal, shutting down gracefully...")
		cancel()
	}()

	loadEnvFiles(defaultEnvFiles()...)

	if err := newRootCmd(nil).Run(ctx, os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %s\n", errors.Describe(err))
		os.Exit(1)
	}
}

// newRootCmd builds the command. A nil factory uses production collectors.
func newRootCmd(factory collector.Factory) *cli.Command {
	return &cli.Command{
		Name:                  name,
		Usage:                 "Your morning briefing, one command away",
		Version:               fmt.Sprintf("%s (commit: %s, built: %s)", version, commit, date),
		EnableShellCompletion: true,
		Description: `Collects weather, today's calendar, git repository status, host health
and Kubernetes workload health concurrently and renders them as one report.

A section whose tool is missing (gcalcli, kubectl) is reported as unavailable;
a failing section never prevents the others from rendering.

Defaults can be set in ./.env or ~/.config/daily-briefing/briefing.env.

# Examples

  daily-briefing
  daily-briefing --format plain
  daily-briefing --sections weather,git --location "New York"
  daily-briefing --format json | jq '.sections.git'`,
		Flags: rootFlags(),
		Before: func(ctx context.Context, cmd *cli.Command) (context.Context, error) {
			logging.SetDefaultStructuredLoggerWithLevel(name, version, cmd.String(flagLogLevel))
			slog.Debug("starting",
				"name", name,
				"version", version,
				"commit", commit,
				"date", date)
			return ctx, nil
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			return runBriefing(ctx, cmd, factory)
		},
	}
}
