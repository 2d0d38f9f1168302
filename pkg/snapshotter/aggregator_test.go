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
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	clocktesting "k8s.io/utils/clock/testing"

	"github.com/NVIDIA/daily-briefing/pkg/collector"
	"github.com/NVIDIA/daily-briefing/pkg/collector/calendar"
	"github.com/NVIDIA/daily-briefing/pkg/collector/git"
	"github.com/NVIDIA/daily-briefing/pkg/collector/weather"
	"github.com/NVIDIA/daily-briefing/pkg/config"
	"github.com/NVIDIA/daily-briefing/pkg/errors"
	"github.com/NVIDIA/daily-briefing/pkg/header"
	"github.com/NVIDIA/daily-briefing/pkg/process"
	"github.com/NVIDIA/daily-briefing/pkg/section"
)

// funcCollector adapts a function to collector.Collector.
type funcCollector func(ctx context.Context) (section.Payload, error)

func (f funcCollector) Collect(ctx context.Context) (section.Payload, error) {
	return f(ctx)
}

// mockFactory returns the collector registered for each section and counts
// how many collectors were created.
type mockFactory struct {
	collectors map[section.Name]collector.Collector
	created    atomic.Int32

	location   string
	roots      []string
	kubeconfig string
}

func (m *mockFactory) get(name section.Name) collector.Collector {
	m.created.Add(1)
	if c, ok := m.collectors[name]; ok {
		return c
	}
	return funcCollector(func(context.Context) (section.Payload, error) {
		return git.ScanResult{}, nil
	})
}

func (m *mockFactory) CreateWeatherCollector(location string) collector.Collector {
	m.location = location
	return m.get(section.Weather)
}

func (m *mockFactory) CreateCalendarCollector() collector.Collector {
	return m.get(section.Calendar)
}

func (m *mockFactory) CreateGitCollector(roots []string) collector.Collector {
	m.roots = roots
	return m.get(section.Git)
}

func (m *mockFactory) CreateSystemCollector() collector.Collector {
	return m.get(section.System)
}

func (m *mockFactory) CreateKubernetesCollector(kubeconfig string) collector.Collector {
	m.kubeconfig = kubeconfig
	return m.get(section.Kubernetes)
}

var capturedAt = time.Date(2026, 3, 10, 9, 30, 0, 0, time.UTC)

func newTestAggregator(f collector.Factory) *Aggregator {
	return &Aggregator{
		Version: "v0.1.0",
		Factory: f,
		Clock:   clocktesting.NewFakePassiveClock(capturedAt),
	}
}

func TestAggregate_Header(t *testing.T) {
	snap := newTestAggregator(&mockFactory{}).Aggregate(context.Background(), []string{"git"}, config.Default())

	assert.Equal(t, header.KindBriefing, snap.Kind)
	assert.Equal(t, FullAPIVersion, snap.APIVersion)
	assert.Equal(t, "v0.1.0", snap.Metadata[header.MetadataVersion])
	assert.NotEmpty(t, snap.Metadata[header.MetadataRunID])
	assert.Equal(t, capturedAt, snap.CapturedAt)
}

func TestAggregate_UnknownSection(t *testing.T) {
	f := &mockFactory{}
	snap := newTestAggregator(f).Aggregate(context.Background(), []string{"stocks"}, config.Default())

	require.Len(t, snap.Sections, 1)
	res := snap.Sections["stocks"]
	assert.Equal(t, section.StatusError, res.Status)
	assert.Equal(t, "Unknown section: stocks", res.Error)
	assert.Zero(t, f.created.Load())
}

func TestAggregate_Duplicates(t *testing.T) {
	f := &mockFactory{}
	snap := newTestAggregator(f).Aggregate(context.Background(), []string{"git", "git", "system"}, config.Default())

	assert.Len(t, snap.Sections, 2)
	assert.Equal(t, int32(2), f.created.Load())
}

func TestAggregate_EmptyRequest(t *testing.T) {
	snap := newTestAggregator(&mockFactory{}).Aggregate(context.Background(), nil, config.Default())

	assert.Empty(t, snap.Sections)
	assert.Equal(t, capturedAt, snap.CapturedAt)
}

func TestAggregate_ConfigPassedToFactory(t *testing.T) {
	f := &mockFactory{}
	cfg := config.Default()
	cfg.Location = "Oslo"
	cfg.GitDirs = []string{"/src", "/work"}
	cfg.Kubeconfig = "/tmp/kc"

	newTestAggregator(f).Aggregate(context.Background(), []string{"weather", "git", "kubernetes"}, cfg)

	assert.Equal(t, "Oslo", f.location)
	assert.Equal(t, []string{"/src", "/work"}, f.roots)
	assert.Equal(t, "/tmp/kc", f.kubeconfig)
}

func TestAggregate_FailureIsolation(t *testing.T) {
	f := &mockFactory{collectors: map[section.Name]collector.Collector{
		section.Calendar: funcCollector(func(context.Context) (section.Payload, error) {
			return nil, errors.Wrap(errors.ErrCodeUnavailable, calendar.UnavailableNote,
				errors.New(errors.ErrCodeNotFound, "gcalcli not found in PATH"))
		}),
		section.System: funcCollector(func(context.Context) (section.Payload, error) {
			panic("boom")
		}),
		section.Kubernetes: funcCollector(func(context.Context) (section.Payload, error) {
			return nil, errors.New(errors.ErrCodeInternal, "kubectl get pods: exit status 1")
		}),
	}}

	snap := newTestAggregator(f).Aggregate(context.Background(), section.AllStrings(), config.Default())
	require.Len(t, snap.Sections, 5)

	assert.True(t, snap.Sections[section.Weather].IsOK())
	assert.True(t, snap.Sections[section.Git].IsOK())

	cal := snap.Sections[section.Calendar]
	assert.True(t, cal.IsUnavailable())
	assert.Equal(t, calendar.UnavailableNote, cal.Note)

	sys := snap.Sections[section.System]
	assert.True(t, sys.IsError())
	assert.Contains(t, sys.Error, "boom")

	kube := snap.Sections[section.Kubernetes]
	assert.True(t, kube.IsError())
	assert.Equal(t, "kubectl get pods: exit status 1", kube.Error)

	assert.Equal(t, 2, snap.ErrorCount())
}

func TestAggregate_SlowSectionDoesNotCancelOthers(t *testing.T) {
	release := make(chan struct{})
	f := &mockFactory{collectors: map[section.Name]collector.Collector{
		section.Weather: funcCollector(func(ctx context.Context) (section.Payload, error) {
			<-release
			return nil, errors.New(errors.ErrCodeTimeout, "timed out")
		}),
		section.Git: funcCollector(func(ctx context.Context) (section.Payload, error) {
			defer close(release)
			return git.ScanResult{TotalRepos: 1}, ctx.Err()
		}),
	}}

	snap := newTestAggregator(f).Aggregate(context.Background(), []string{"weather", "git"}, config.Default())

	assert.True(t, snap.Sections[section.Weather].IsError())
	assert.True(t, snap.Sections[section.Git].IsOK())
}

func TestAggregate_NilPayload(t *testing.T) {
	f := &mockFactory{collectors: map[section.Name]collector.Collector{
		section.Git: funcCollector(func(context.Context) (section.Payload, error) {
			return nil, nil
		}),
	}}

	snap := newTestAggregator(f).Aggregate(context.Background(), []string{"git"}, config.Default())
	assert.True(t, snap.Sections[section.Git].IsError())
}

func TestAggregate_WeatherUpstreamFailure(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, "service unavailable", http.StatusServiceUnavailable)
	}))
	defer server.Close()

	f := &mockFactory{collectors: map[section.Name]collector.Collector{
		section.Weather: &weather.Collector{
			Client:   weather.NewClient(weather.WithBaseURL(server.URL)),
			Location: "Austin, TX",
		},
		section.Git: funcCollector(func(context.Context) (section.Payload, error) {
			return git.ScanResult{TotalRepos: 3, Repos: []git.Repository{}}, nil
		}),
	}}

	snap := newTestAggregator(f).Aggregate(context.Background(), []string{"weather", "git"}, config.Default())

	w := snap.Sections[section.Weather]
	require.True(t, w.IsError())
	assert.Contains(t, w.Error, "503")

	g := snap.Sections[section.Git]
	require.True(t, g.IsOK())
	assert.Equal(t, 3, g.Data.(git.ScanResult).TotalRepos)
}

func TestAggregate_NilDefaults(t *testing.T) {
	agg := &Aggregator{Factory: &mockFactory{}}
	snap := agg.Aggregate(context.Background(), []string{"git"}, nil)

	assert.Nil(t, agg.Clock, "defaults are resolved per call")
	assert.Len(t, snap.Sections, 1)
	assert.False(t, snap.CapturedAt.IsZero())
}

func TestAggregate_ConcurrentCalls(t *testing.T) {
	agg := &Aggregator{Factory: &mockFactory{}}

	var wg sync.WaitGroup
	for range 4 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			snap := agg.Aggregate(context.Background(), []string{"calendar", "system"}, nil)
			assert.Len(t, snap.Sections, 2)
		}()
	}
	wg.Wait()
}

func TestAggregate_GitWorkerPanicIsIsolated(t *testing.T) {
	root := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(root, "repo", ".git"), 0o755))

	runner := &process.FakeRunner{
		Handler: func(process.Command) process.Outcome {
			panic("boom")
		},
	}
	factory := collector.NewDefaultFactory(
		collector.WithRunner(runner),
		collector.WithClock(clocktesting.NewFakePassiveClock(capturedAt)),
	)
	cfg := config.Default()
	cfg.GitDirs = []string{root}

	snap := newTestAggregator(factory).Aggregate(context.Background(), []string{"git", "nope"}, cfg)

	require.Len(t, snap.Sections, 2)

	g := snap.Sections[section.Git]
	require.True(t, g.IsOK())
	res := g.Data.(git.ScanResult)
	require.Len(t, res.Repos, 1)
	assert.Equal(t, git.UnknownBranch, res.Repos[0].Branch)

	assert.True(t, snap.Sections[section.Name("nope")].IsError())
}

func TestDedupe(t *testing.T) {
	assert.Equal(t, []string{"git", "weather", "stocks"},
		dedupe([]string{"git", "weather", "git", "stocks", "weather"}))
	assert.Empty(t, dedupe(nil))
}
