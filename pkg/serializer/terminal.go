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
	"time"

	"github.com/fatih/color"

	"github.com/NVIDIA/daily-briefing/pkg/collector/calendar"
	"github.com/NVIDIA/daily-briefing/pkg/collector/git"
	"github.com/NVIDIA/daily-briefing/pkg/collector/k8s"
	"github.com/NVIDIA/daily-briefing/pkg/collector/system"
	"github.com/NVIDIA/daily-briefing/pkg/collector/weather"
	"github.com/NVIDIA/daily-briefing/pkg/defaults"
	"github.com/NVIDIA/daily-briefing/pkg/section"
	"github.com/NVIDIA/daily-briefing/pkg/snapshotter"
)

// terminalRenderer draws the colorized report.
type terminalRenderer struct {
	banner *color.Color
	title  *color.Color
	bold   *color.Color
	dim    *color.Color
	red    *color.Color
	green  *color.Color
	yellow *color.Color
	cyan   *color.Color

	b strings.Builder
}

func newTerminalRenderer(colored bool) *terminalRenderer {
	r := &terminalRenderer{
		banner: color.New(color.Bold, color.BgBlue, color.FgWhite),
		title:  color.New(color.Bold, color.FgCyan),
		bold:   color.New(color.Bold),
		dim:    color.New(color.Faint),
		red:    color.New(color.FgRed),
		green:  color.New(color.FgGreen),
		yellow: color.New(color.FgYellow),
		cyan:   color.New(color.FgCyan),
	}
	if !colored {
		for _, c := range []*color.Color{r.banner, r.title, r.bold, r.dim, r.red, r.green, r.yellow, r.cyan} {
			c.DisableColor()
		}
	}
	return r
}

// RenderTerminal returns the colorized report for snap. Colors follow the
// global color.NoColor setting.
func RenderTerminal(snap *snapshotter.Snapshot) string {
	return newTerminalRenderer(true).render(snap)
}

func (r *terminalRenderer) line(format string, args ...any) {
	fmt.Fprintf(&r.b, format, args...)
	r.b.WriteByte('\n')
}

func (r *terminalRenderer) header(title string) {
	r.b.WriteByte('\n')
	r.line("%s", r.title.Sprint(title))
	r.line("%s", strings.Repeat("─", ruleWidth))
}

func (r *terminalRenderer) render(snap *snapshotter.Snapshot) string {
	r.b.Reset()
	r.b.WriteByte('\n')
	r.line("%s", r.banner.Sprintf(" %s - %s ", bannerTitle, bannerDate(snap.CapturedAt)))

	for _, o := range reportOrder(snap) {
		r.section(o.name, o.result)
	}

	r.b.WriteByte('\n')
	r.line("%s", r.dim.Sprintf("Generated at %s", snap.CapturedAt.Format(time.RFC3339)))
	return r.b.String()
}

func (r *terminalRenderer) section(name section.Name, res section.Result) {
	switch {
	case res.IsError():
		r.header(sectionTitle(name))
		r.line("  %s", r.red.Sprintf("Error: %s", res.Error))
		return
	case res.IsUnavailable():
		r.header(sectionTitle(name))
		r.line("  %s", r.dim.Sprint(res.Note))
		return
	}

	switch data := res.Data.(type) {
	case weather.Report:
		r.weather(data)
	case calendar.Agenda:
		r.calendar(data)
	case git.ScanResult:
		r.git(data)
	case system.Health:
		r.system(data)
	case k8s.ClusterStatus:
		r.kubernetes(data)
	default:
		r.header(sectionTitle(name))
		r.line("  %v", data)
	}
}

func (r *terminalRenderer) weather(w weather.Report) {
	r.header("Weather - " + w.Location)
	r.line("  %s  %s°F (feels like %s°F)", r.bold.Sprint(w.Condition), w.TempF, w.FeelsLikeF)
	r.line("  %s", r.dim.Sprintf("High: %s°F  Low: %s°F", w.HighF, w.LowF))
	r.line("  Humidity: %s%%  Wind: %s mph %s", w.Humidity, w.WindMph, w.WindDir)
	r.line("  UV: %s  Rain: %s%%", w.UVIndex, w.PrecipChance)
	r.line("  Sunrise: %s  Sunset: %s", w.Sunrise, w.Sunset)
}

func (r *terminalRenderer) calendar(a calendar.Agenda) {
	if len(a.Events) == 0 {
		r.header(sectionTitle(section.Calendar))
		r.line("  %s", r.green.Sprint(noEventsMessage))
		return
	}
	r.header("Calendar - " + plural(a.Count, "event"))
	for _, e := range a.Events {
		if e.Raw != "" {
			r.line("  %s", e.Raw)
			continue
		}
		loc := ""
		if e.Location != "" {
			loc = "  " + r.dim.Sprintf("@ %s", e.Location)
		}
		r.line("  %s %s%s", r.bold.Sprint(e.StartTime), e.Title, loc)
	}
}

func (r *terminalRenderer) git(s git.ScanResult) {
	r.header("Git Status - " + plural(s.TotalRepos, "repo"))
	if s.DirtyRepos > 0 {
		r.line("  %s", r.yellow.Sprintf("⚠ %s with uncommitted changes", plural(s.DirtyRepos, "repo")))
	}
	if s.ReposWithRecentCommits > 0 {
		r.line("  %s", r.green.Sprintf("✓ %s with commits in last 24h", plural(s.ReposWithRecentCommits, "repo")))
	}

	interesting := interestingRepos(s.Repos)
	if len(interesting) > 0 {
		r.b.WriteByte('\n')
		for _, repo := range interesting {
			flags := make([]string, 0, 4)
			if repo.Uncommitted > 0 {
				flags = append(flags, r.yellow.Sprintf("%d uncommitted", repo.Uncommitted))
			}
			if repo.Ahead > 0 {
				flags = append(flags, r.green.Sprintf("↑%d", repo.Ahead))
			}
			if repo.Behind > 0 {
				flags = append(flags, r.red.Sprintf("↓%d", repo.Behind))
			}
			if repo.RecentCommits > 0 {
				flags = append(flags, r.cyan.Sprintf("%d recent", repo.RecentCommits))
			}
			r.line("  %s (%s) - %s", r.bold.Sprint(repo.Name), repo.Branch, strings.Join(flags, ", "))
		}
	}

	for _, e := range s.Errors {
		r.line("  %s", r.red.Sprint(e))
	}

	if len(interesting) == 0 && s.DirtyRepos == 0 {
		r.line("  %s", r.green.Sprint(allCleanMessage))
	}
}

func (r *terminalRenderer) system(h system.Health) {
	r.header("System Health")
	r.line("  Uptime: %s  |  CPUs: %d", h.Uptime, h.CPUs)
	r.line("  Load: %s / %s / %s", h.Load.One, h.Load.Five, h.Load.Fifteen)
	r.line("  Memory: %s (%s/%s GB)", r.memoryColor(h.Memory.Percent).Sprintf("%s%%", h.Memory.Percent),
		h.Memory.UsedGB, h.Memory.TotalGB)

	if len(h.Disks) > 0 {
		r.line("  Disks:")
		for _, d := range h.Disks {
			c, warn := r.green, ""
			if d.Warning {
				c, warn = r.red, " ⚠"
			}
			r.line("     %s: %s (%s/%s)%s", d.Mount, c.Sprintf("%d%%", d.Percent), d.Used, d.Size, warn)
		}
	}
	if len(h.FailedUnits) > 0 {
		r.line("  %s", r.red.Sprintf("Failed units: %s", strings.Join(h.FailedUnits, ", ")))
	}
}

func (r *terminalRenderer) memoryColor(percent string) *color.Color {
	v, ok := percentOf(percent)
	switch {
	case !ok:
		return r.dim
	case v > 80:
		return r.red
	case v > 60:
		return r.yellow
	default:
		return r.green
	}
}

func (r *terminalRenderer) kubernetes(s k8s.ClusterStatus) {
	r.header(sectionTitle(section.Kubernetes))
	if s.Context != "" {
		r.line("  Context: %s", r.bold.Sprint(s.Context))
	}
	if s.Nodes != nil {
		c := r.green
		if s.Nodes.Ready != s.Nodes.Total {
			c = r.red
		}
		r.line("  Nodes: %s", c.Sprintf("%d/%d ready", s.Nodes.Ready, s.Nodes.Total))
	}
	r.line("  Pods: %d total", s.TotalPods)

	if s.UnhealthyCount > 0 {
		r.line("  %s", r.red.Sprintf("⚠ %s:", plural(s.UnhealthyCount, "unhealthy pod")))
		for _, p := range preview(s.UnhealthyPods, defaults.PreviewLimit) {
			r.line("     %s", r.red.Sprintf("%s/%s (%s)", p.Namespace, p.Name, p.Phase))
		}
	} else {
		r.line("  %s", r.green.Sprintf("✓ %s", podsHealthyPrefix))
	}

	if s.RestartIssueCount > 0 {
		r.line("  %s", r.yellow.Sprintf("%s with restart loops:", plural(s.RestartIssueCount, "container")))
		for _, i := range preview(s.RestartIssues, defaults.PreviewLimit) {
			r.line("     %s", r.yellow.Sprintf("%s/%s:%s (%d restarts)", i.Namespace, i.Pod, i.Container, i.Restarts))
		}
	}
}

func sectionTitle(name section.Name) string {
	switch name {
	case section.Weather:
		return "Weather"
	case section.Calendar:
		return "Calendar"
	case section.Git:
		return "Git Status"
	case section.System:
		return "System Health"
	case section.Kubernetes:
		return "Kubernetes"
	default:
		return name.String()
	}
}
