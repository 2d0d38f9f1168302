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

// Package collector defines how briefing sections gather their data.
//
// # Core Interface
//
//	type Collector interface {
//	    Collect(ctx context.Context) (section.Payload, error)
//	}
//
// Each section has one collector in a subpackage:
//
//   - weather: current conditions from wttr.in
//   - calendar: today's agenda from gcalcli
//   - git: status of repositories under the configured roots
//   - system: uptime, load, memory, disks and failed units
//   - k8s: pod and node health through kubectl
//
// A collector that depends on a missing tool returns an error carrying
// errors.ErrCodeUnavailable; the aggregator reports such sections as
// unavailable instead of failed.
//
// # Factory Pattern
//
// The Factory interface abstracts collector creation so the aggregator can
// be tested with fakes:
//
//	factory := collector.NewDefaultFactory(
//	    collector.WithVersion("v1.0.0"),
//	)
//	c := factory.CreateGitCollector([]string{"~/src"})
//	payload, err := c.Collect(ctx)
//
// DefaultFactory shares one process runner and one clock across the
// collectors it creates.
package collector
