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

package snapshotter

import (
	"context"
	stderrors "errors"
	"fmt"
	"log/slog"
	"time"

	"golang.org/x/sync/errgroup"
	"k8s.io/utils/clock"

	"github.com/NVIDIA/daily-briefing/pkg/collector"
	"github.com/NVIDIA/daily-briefing/pkg/config"
	"github.com/NVIDIA/daily-briefing/pkg/errors"
	"github.com/NVIDIA/daily-briefing/pkg/header"
	"github.com/NVIDIA/daily-briefing/pkg/section"
)

// Aggregator runs section collectors concurrently and merges their results.
// A failing, missing or panicking collector only affects its own section.
// Aggregate does not modify the Aggregator, so one value may serve
// concurrent calls.
type Aggregator struct {
	// Version is the tool version recorded in the header.
	Version string

	// Factory is the collector factory to use. If nil, the default factory is used.
	Factory collector.Factory

	// Clock stamps the snapshot. If nil, the real clock is used.
	Clock clock.PassiveClock
}

var _ Snapshotter = (*Aggregator)(nil)

type entry struct {
	name   section.Name
	result section.Result
}

// Aggregate collects every distinct name in names and returns the snapshot.
// It never fails: unknown sections and collector failures become error
// results, missing tools become unavailable results.
func (a *Aggregator) Aggregate(ctx context.Context, names []string, cfg *config.Config) *Snapshot {
	factory := a.Factory
	if factory == nil {
		factory = collector.NewDefaultFactory(collector.WithVersion(a.Version))
	}
	clk := a.Clock
	if clk == nil {
		clk = clock.RealClock{}
	}
	if cfg == nil {
		cfg = config.Default()
	}

	names = dedupe(names)
	slog.Debug("starting briefing", slog.Any("sections", names))

	start := time.Now()
	defer func() {
		briefingDuration.Observe(time.Since(start).Seconds())
	}()

	// Each task writes only its own slot, so no lock is needed.
	entries := make([]entry, len(names))

	var g errgroup.Group
	for i, raw := range names {
		name := section.Name(raw)
		entries[i].name = name

		if !name.IsKnown() {
			entries[i].result = section.Failed(fmt.Sprintf("Unknown section: %s", raw))
			sectionTotal.WithLabelValues("unknown", string(section.StatusError)).Inc()
			continue
		}

		g.Go(func() error {
			entries[i].result = collect(ctx, factory, name, cfg)
			return nil
		})
	}
	_ = g.Wait()

	snap := NewSnapshot()
	snap.Init(header.KindBriefing, FullAPIVersion, a.Version)
	for _, e := range entries {
		snap.Sections[e.name] = e.result
	}
	snap.CapturedAt = clk.Now()

	briefingErrorSections.Set(float64(snap.ErrorCount()))
	slog.Debug("briefing complete",
		slog.Int("sections", len(snap.Sections)),
		slog.Int("errors", snap.ErrorCount()))

	return snap
}

// collect runs one collector and converts its outcome into a result.
func collect(ctx context.Context, factory collector.Factory, name section.Name, cfg *config.Config) (res section.Result) {
	start := time.Now()
	defer func() {
		if r := recover(); r != nil {
			slog.Error("section collector panicked",
				slog.String("section", name.String()),
				slog.Any("panic", r))
			res = section.Failed(fmt.Sprintf("%s collector panicked: %v", name, r))
		}
		sectionDuration.WithLabelValues(name.String()).Observe(time.Since(start).Seconds())
		sectionTotal.WithLabelValues(name.String(), string(res.Status)).Inc()
	}()

	c := collectorFor(factory, name, cfg)
	payload, err := c.Collect(ctx)

	switch {
	case errors.IsUnavailable(err):
		slog.Debug("section unavailable", slog.String("section", name.String()))
		return section.Unavailable(unavailableNote(err))
	case err != nil:
		msg := errors.Describe(err)
		slog.Warn("section failed",
			slog.String("section", name.String()),
			slog.String("error", msg))
		return section.Failed(msg)
	case payload == nil:
		return section.Failed(fmt.Sprintf("%s collector returned no data", name))
	default:
		return section.OK(payload)
	}
}

func collectorFor(factory collector.Factory, name section.Name, cfg *config.Config) collector.Collector {
	switch name {
	case section.Weather:
		return factory.CreateWeatherCollector(cfg.Location)
	case section.Calendar:
		return factory.CreateCalendarCollector()
	case section.Git:
		return factory.CreateGitCollector(cfg.GitDirs)
	case section.System:
		return factory.CreateSystemCollector()
	case section.Kubernetes:
		return factory.CreateKubernetesCollector(cfg.Kubeconfig)
	default:
		panic(fmt.Sprintf("no collector for section %q", name))
	}
}

// unavailableNote returns the message of the outermost unavailable error
// without the underlying lookup failure.
func unavailableNote(err error) string {
	var se *errors.StructuredError
	if stderrors.As(err, &se) && se.Code == errors.ErrCodeUnavailable {
		return se.Message
	}
	return errors.Describe(err)
}

// dedupe drops repeated names, keeping the first occurrence.
func dedupe(names []string) []string {
	seen := make(map[string]struct{}, len(names))
	out := make([]string, 0, len(names))
	for _, n := range names {
		if _, ok := seen[n]; ok {
			continue
		}
		seen[n] = struct{}{}
		out = append(out, n)
	}
	return out
}
