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

package calendar

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"k8s.io/utils/clock"

	"github.com/NVIDIA/daily-briefing/pkg/defaults"
	"github.com/NVIDIA/daily-briefing/pkg/errors"
	"github.com/NVIDIA/daily-briefing/pkg/process"
	"github.com/NVIDIA/daily-briefing/pkg/section"
)

const (
	// Binary is the calendar CLI the section depends on.
	Binary = "gcalcli"

	// UnavailableNote is reported when Binary is not installed.
	UnavailableNote = "gcalcli not installed, skipping calendar"

	untitled   = "Untitled"
	dateLayout = "2006-01-02"
	minFields  = 5
)

// Event is one agenda entry. Lines that do not parse keep only Raw.
type Event struct {
	StartDate string `json:"start_date,omitempty" yaml:"start_date,omitempty"`
	StartTime string `json:"start_time,omitempty" yaml:"start_time,omitempty"`
	EndDate   string `json:"end_date,omitempty" yaml:"end_date,omitempty"`
	EndTime   string `json:"end_time,omitempty" yaml:"end_time,omitempty"`
	Title     string `json:"title,omitempty" yaml:"title,omitempty"`
	Location  string `json:"location,omitempty" yaml:"location,omitempty"`
	Raw       string `json:"raw,omitempty" yaml:"raw,omitempty"`
}

// Agenda is the calendar section payload.
type Agenda struct {
	Events []Event `json:"events" yaml:"events"`
	Count  int     `json:"count" yaml:"count"`
}

// SectionName implements section.Payload.
func (Agenda) SectionName() section.Name {
	return section.Calendar
}

// Collector lists today's events with gcalcli.
type Collector struct {
	Runner  process.Runner
	Clock   clock.PassiveClock
	Timeout time.Duration
}

// NewCollector returns a Collector with default timeout and a real clock.
func NewCollector(runner process.Runner) *Collector {
	return &Collector{
		Runner:  runner,
		Clock:   clock.RealClock{},
		Timeout: defaults.CalendarTimeout,
	}
}

// Collect runs one agenda query covering today and tomorrow (UTC dates).
// It implements the Collector interface.
func (c *Collector) Collect(ctx context.Context) (section.Payload, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	if _, err := c.Runner.LookPath(Binary); err != nil {
		return nil, errors.Wrap(errors.ErrCodeUnavailable, UnavailableNote, err)
	}

	now := c.Clock.Now().UTC()
	start := now.Format(dateLayout)
	end := now.Add(24 * time.Hour).Format(dateLayout)

	slog.Debug("collecting calendar", slog.String("start", start), slog.String("end", end))

	out := c.Runner.Run(ctx, process.Command{
		Name:    Binary,
		Args:    []string{"agenda", start, end, "--nocolor", "--tsv"},
		Timeout: c.Timeout,
	})
	if out.Failed() {
		return nil, out.Err
	}

	events := ParseAgenda(out.Stdout)
	slog.Debug("collected calendar events", slog.Int("count", len(events)))

	return Agenda{Events: events, Count: len(events)}, nil
}

// ParseAgenda reads gcalcli TSV output. Rows with at least five fields
// become events; other non-empty rows are kept raw. A header row is skipped.
func ParseAgenda(out string) []Event {
	events := make([]Event, 0)
	for _, line := range strings.Split(out, "\n") {
		if strings.TrimSpace(line) == "" {
			continue
		}
		parts := strings.Split(strings.TrimRight(line, "\r"), "\t")
		if len(parts) < minFields {
			events = append(events, Event{Raw: line})
			continue
		}
		if parts[0] == "start_date" {
			continue
		}
		ev := Event{
			StartDate: parts[0],
			StartTime: parts[1],
			EndDate:   parts[2],
			EndTime:   parts[3],
			Title:     parts[4],
		}
		if ev.Title == "" {
			ev.Title = untitled
		}
		if len(parts) > minFields {
			ev.Location = parts[5]
		}
		events = append(events, ev)
	}
	return events
}
