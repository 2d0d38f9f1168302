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

	"github.com/prometheus/client_golang/prometheus"
	"github.com/urfave/cli/v3"

	"github.com/NVIDIA/daily-briefing/pkg/collector"
	"github.com/NVIDIA/daily-briefing/pkg/config"
	"github.com/NVIDIA/daily-briefing/pkg/errors"
	"github.com/NVIDIA/daily-briefing/pkg/k8s/client"
	"github.com/NVIDIA/daily-briefing/pkg/section"
	"github.com/NVIDIA/daily-briefing/pkg/serializer"
	"github.com/NVIDIA/daily-briefing/pkg/snapshotter"
)

// configFromCommand resolves flags, environment and defaults into a Config.
func configFromCommand(cmd *cli.Command) *config.Config {
	return &config.Config{
		Sections:    section.ParseList(cmd.String(flagSections)),
		Location:    cmd.String(flagLocation),
		GitDirs:     section.ParseList(cmd.String(flagGitDirs)),
		Kubeconfig:  client.ResolveKubeconfig(cmd.String(flagKubeconfig)),
		Format:      cmd.String(flagFormat),
		Output:      cmd.String(flagOutput),
		MetricsFile: cmd.String(flagMetricsFile),
	}
}

// runBriefing validates the configuration, collects every requested section
// and renders the snapshot. Section failures are part of the report; only
// configuration and output errors are returned.
func runBriefing(ctx context.Context, cmd *cli.Command, factory collector.Factory) error {
	cfg := configFromCommand(cmd)
	if err := cfg.Validate(); err != nil {
		return err
	}

	format, err := serializer.ParseFormat(cfg.Format)
	if err != nil {
		return err
	}

	// Open the output before collecting so a bad path fails fast.
	w, err := serializer.NewFileWriterOrStdout(format, cfg.Output)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := w.Close(); cerr != nil {
			slog.Error("failed to close output", slog.String("error", cerr.Error()))
		}
	}()

	if factory == nil {
		factory = collector.NewDefaultFactory(collector.WithVersion(version))
	}

	var agg snapshotter.Snapshotter = &snapshotter.Aggregator{
		Version: version,
		Factory: factory,
	}
	snap := agg.Aggregate(ctx, cfg.Sections, cfg)

	if err := w.Serialize(ctx, snap); err != nil {
		return fmt.Errorf("failed to render briefing: %w", err)
	}

	if cfg.MetricsFile != "" {
		if err := prometheus.WriteToTextfile(cfg.MetricsFile, prometheus.DefaultGatherer); err != nil {
			return errors.WrapWithContext(errors.ErrCodeInternal, "failed to write metrics", err,
				map[string]any{"path": cfg.MetricsFile})
		}
	}
	return nil
}
