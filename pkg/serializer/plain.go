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

package serializer

import (
	"fmt"
	"strings"

	"github.com/NVIDIA/daily-briefing/pkg/collector/calendar"
	"github.com/NVIDIA/daily-briefing/pkg/collector/git"
	"github.com/NVIDIA/daily-briefing/pkg/collector/k8s"
	"github.com/NVIDIA/daily-briefing/pkg/collector/system"
	"github.com/NVIDIA/daily-briefing/pkg/collector/weather"
	"github.com/NVIDIA/daily-briefing/pkg/defaults"
	"github.com/NVIDIA/daily-briefing/pkg/section"
	"github.com/NVIDIA/daily-briefing/pkg/snapshotter"
)

// RenderPlain returns a compact, uncolored report meant for pasting into
// chat or mail. Each section is a block separated by a blank line.
func RenderPlain(snap *snapshotter.Snapshot) string {
	blocks := []string{fmt.Sprintf("%s - %s", bannerTitle, bannerDate(snap.CapturedAt))}
	for _, o := range reportOrder(snap) {
		blocks = append(blocks, plainSection(o.name, o.result))
	}
	return strings.Join(blocks, "\n\n") + "\n"
}

func plainSection(name section.Name, res section.Result) string {
	switch {
	case res.IsError():
		return sectionTitle(name) + "\nError: " + res.Error
	case res.IsUnavailable():
		return sectionTitle(name) + "\n" + res.Note
	}

	var lines []string
	switch data := res.Data.(type) {
	case weather.Report:
		lines = plainWeather(data)
	case calendar.Agenda:
		lines = plainCalendar(data)
	case git.ScanResult:
		lines = plainGit(data)
	case system.Health:
		lines = plainSystem(data)
	case k8s.ClusterStatus:
		lines = plainKubernetes(data)
	default:
		lines = []string{sectionTitle(name), fmt.Sprintf("%v", data)}
	}
	return strings.Join(lines, "\n")
}

func plainWeather(w weather.Report) []string {
	return []string{
		"Weather - " + w.Location,
		fmt.Sprintf("%s | %s°F (feels like %s°F)", w.Condition, w.TempF, w.FeelsLikeF),
		fmt.Sprintf("High: %s°F / Low: %s°F", w.HighF, w.LowF),
		fmt.Sprintf("Humidity: %s%% | Wind: %s mph %s", w.Humidity, w.WindMph, w.WindDir),
		fmt.Sprintf("UV: %s | Rain chance: %s%%", w.UVIndex, w.PrecipChance),
		fmt.Sprintf("Sunrise: %s | Sunset: %s", w.Sunrise, w.Sunset),
	}
}

func plainCalendar(a calendar.Agenda) []string {
	if len(a.Events) == 0 {
		return []string{sectionTitle(section.Calendar), noEventsMessage}
	}
	lines := []string{"Calendar - " + plural(a.Count, "event")}
	for _, e := range a.Events {
		if e.Raw != "" {
			lines = append(lines, "  "+e.Raw)
			continue
		}
		loc := ""
		if e.Location != "" {
			loc = " @ " + e.Location
		}
		lines = append(lines, fmt.Sprintf("  %s - %s%s", e.StartTime, e.Title, loc))
	}
	return lines
}

func plainGit(s git.ScanResult) []string {
	lines := []string{"Git Status - " + plural(s.TotalRepos, "repo")}
	if s.DirtyRepos > 0 {
		lines = append(lines, fmt.Sprintf("⚠ %d with uncommitted changes", s.DirtyRepos))
	}
	if s.ReposWithRecentCommits > 0 {
		lines = append(lines, fmt.Sprintf("✓ %d with recent commits", s.ReposWithRecentCommits))
	}

	interesting := interestingRepos(s.Repos)
	for _, r := range interesting {
		flags := make([]string, 0, 4)
		if r.Uncommitted > 0 {
			flags = append(flags, fmt.Sprintf("%d uncommitted", r.Uncommitted))
		}
		if r.Ahead > 0 {
			flags = append(flags, fmt.Sprintf("↑%d", r.Ahead))
		}
		if r.Behind > 0 {
			flags = append(flags, fmt.Sprintf("↓%d", r.Behind))
		}
		if r.RecentCommits > 0 {
			flags = append(flags, fmt.Sprintf("%d recent", r.RecentCommits))
		}
		lines = append(lines, fmt.Sprintf("  %s (%s) - %s", r.Name, r.Branch, strings.Join(flags, ", ")))
	}

	if len(interesting) == 0 && s.DirtyRepos == 0 {
		lines = append(lines, allCleanMessage)
	}
	return lines
}

func plainSystem(h system.Health) []string {
	lines := []string{
		"System Health",
		fmt.Sprintf("Uptime: %s | CPUs: %d", h.Uptime, h.CPUs),
		fmt.Sprintf("Load: %s / %s / %s", h.Load.One, h.Load.Five, h.Load.Fifteen),
		fmt.Sprintf("Memory: %s%% (%s/%s GB)", h.Memory.Percent, h.Memory.UsedGB, h.Memory.TotalGB),
	}

	if len(h.Disks) > 0 {
		if h.DiskWarnings == 0 {
			lines = append(lines, "Disks: All healthy")
		}
		for _, d := range h.Disks {
			if d.Warning {
				lines = append(lines, fmt.Sprintf("⚠ Disk %s: %d%% (%s/%s)", d.Mount, d.Percent, d.Used, d.Size))
			}
		}
	}
	if len(h.FailedUnits) > 0 {
		lines = append(lines, "Failed units: "+strings.Join(h.FailedUnits, ", "))
	}
	return lines
}

func plainKubernetes(s k8s.ClusterStatus) []string {
	lines := []string{sectionTitle(section.Kubernetes)}
	if s.Context != "" {
		lines = append(lines, "Context: "+s.Context)
	}
	if s.Nodes != nil {
		lines = append(lines, fmt.Sprintf("Nodes: %d/%d ready", s.Nodes.Ready, s.Nodes.Total))
	}
	lines = append(lines, fmt.Sprintf("Pods: %d total", s.TotalPods))

	if s.UnhealthyCount > 0 {
		lines = append(lines, fmt.Sprintf("⚠ %s:", plural(s.UnhealthyCount, "unhealthy pod")))
		for _, p := range preview(s.UnhealthyPods, defaults.PlainPreviewLimit) {
			lines = append(lines, fmt.Sprintf("  %s/%s (%s)", p.Namespace, p.Name, p.Phase))
		}
	} else {
		lines = append(lines, podsHealthyPrefix+" ✓")
	}

	if s.RestartIssueCount > 0 {
		lines = append(lines, fmt.Sprintf("%s:", plural(s.RestartIssueCount, "restart loop")))
		for _, i := range preview(s.RestartIssues, defaults.PlainPreviewLimit) {
			lines = append(lines, fmt.Sprintf("  %s/%s:%s (%dx)", i.Namespace, i.Pod, i.Container, i.Restarts))
		}
	}
	return lines
}
