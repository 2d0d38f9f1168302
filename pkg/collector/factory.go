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

package collector

import (
	"fmt"
	"net/http"

	"k8s.io/utils/clock"

	"github.com/NVIDIA/daily-briefing/pkg/collector/calendar"
	"github.com/NVIDIA/daily-briefing/pkg/collector/git"
	"github.com/NVIDIA/daily-briefing/pkg/collector/k8s"
	"github.com/NVIDIA/daily-briefing/pkg/collector/system"
	"github.com/NVIDIA/daily-briefing/pkg/collector/weather"
	"github.com/NVIDIA/daily-briefing/pkg/process"
)

// Factory creates collectors with their dependencies.
// This interface enables dependency injection for testing.
type Factory interface {
	CreateWeatherCollector(location string) Collector
	CreateCalendarCollector() Collector
	CreateGitCollector(roots []string) Collector
	CreateSystemCollector() Collector
	CreateKubernetesCollector(kubeconfig string) Collector
}

// DefaultFactory creates collectors with production dependencies.
type DefaultFactory struct {
	Runner     process.Runner
	Clock      clock.PassiveClock
	Version    string
	HTTPClient *http.Client
}

// Option is a functional option for configuring DefaultFactory.
type Option func(*DefaultFactory)

// WithRunner sets the process runner shared by command-backed collectors.
func WithRunner(r process.Runner) Option {
	return func(f *DefaultFactory) {
		f.Runner = r
	}
}

// WithClock sets the clock used for date ranges and commit windows.
func WithClock(c clock.PassiveClock) Option {
	return func(f *DefaultFactory) {
		f.Clock = c
	}
}

// WithVersion sets the version reported in the weather User-Agent.
func WithVersion(version string) Option {
	return func(f *DefaultFactory) {
		f.Version = version
	}
}

// WithHTTPClient overrides the weather HTTP client.
func WithHTTPClient(hc *http.Client) Option {
	return func(f *DefaultFactory) {
		f.HTTPClient = hc
	}
}

// NewDefaultFactory creates a factory with default settings.
func NewDefaultFactory(opts ...Option) *DefaultFactory {
	f := &DefaultFactory{
		Runner: process.NewExecRunner(),
		Clock:  clock.RealClock{},
	}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

// CreateWeatherCollector creates a weather collector for location.
func (f *DefaultFactory) CreateWeatherCollector(location string) Collector {
	opts := []weather.ClientOption{}
	if f.Version != "" {
		opts = append(opts, weather.WithUserAgent(fmt.Sprintf("daily-briefing/%s", f.Version)))
	}
	if f.HTTPClient != nil {
		opts = append(opts, weather.WithHTTPClient(f.HTTPClient))
	}
	return &weather.Collector{
		Client:   weather.NewClient(opts...),
		Location: location,
	}
}

// CreateCalendarCollector creates a gcalcli-backed calendar collector.
func (f *DefaultFactory) CreateCalendarCollector() Collector {
	c := calendar.NewCollector(f.Runner)
	c.Clock = f.Clock
	return c
}

// CreateGitCollector creates a git collector scanning roots.
func (f *DefaultFactory) CreateGitCollector(roots []string) Collector {
	return &git.Collector{
		Scanner: git.NewScanner(f.Runner, git.WithClock(f.Clock)),
		Roots:   roots,
	}
}

// CreateSystemCollector creates a host health collector.
func (f *DefaultFactory) CreateSystemCollector() Collector {
	return system.NewCollector(f.Runner)
}

// CreateKubernetesCollector creates a kubectl-backed cluster collector.
func (f *DefaultFactory) CreateKubernetesCollector(kubeconfig string) Collector {
	return k8s.NewCollector(f.Runner, kubeconfig)
}
