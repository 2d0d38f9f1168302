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

package system

import (
	"context"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"runtime"
	"strconv"
	"strings"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/NVIDIA/daily-briefing/pkg/defaults"
	"github.com/NVIDIA/daily-briefing/pkg/errors"
	"github.com/NVIDIA/daily-briefing/pkg/process"
	"github.com/NVIDIA/daily-briefing/pkg/section"
)

const (
	// UnknownValue fills fields that could not be read.
	UnknownValue = "?"

	unknownUptime = "unknown"
	bytesPerKiB   = 1024
)

// Load holds load averages formatted with two decimals.
type Load struct {
	One     string `json:"1m" yaml:"1m"`
	Five    string `json:"5m" yaml:"5m"`
	Fifteen string `json:"15m" yaml:"15m"`
}

// Memory holds memory usage in decimal gigabytes.
type Memory struct {
	TotalGB string `json:"total_gb" yaml:"total_gb"`
	UsedGB  string `json:"used_gb" yaml:"used_gb"`
	FreeGB  string `json:"free_gb" yaml:"free_gb"`
	Percent string `json:"percent" yaml:"percent"`
}

// Disk is one mounted filesystem as reported by df.
type Disk struct {
	Mount   string `json:"mount" yaml:"mount"`
	Size    string `json:"size" yaml:"size"`
	Used    string `json:"used" yaml:"used"`
	Avail   string `json:"avail" yaml:"avail"`
	Percent int    `json:"percent" yaml:"percent"`
	Warning bool   `json:"warning" yaml:"warning"`
}

// Health is the system section payload. Disks is nil when df failed and
// FailedUnits is nil when systemd could not be queried.
type Health struct {
	Uptime       string   `json:"uptime" yaml:"uptime"`
	Load         Load     `json:"load" yaml:"load"`
	CPUs         int      `json:"cpus" yaml:"cpus"`
	Memory       Memory   `json:"memory" yaml:"memory"`
	Disks        []Disk   `json:"disks,omitempty" yaml:"disks,omitempty"`
	DiskWarnings int      `json:"diskWarnings" yaml:"diskWarnings"`
	FailedUnits  []string `json:"failedUnits,omitempty" yaml:"failedUnits,omitempty"`
}

// SectionName implements section.Payload.
func (Health) SectionName() section.Name {
	return section.System
}

// Collector reports host health.
type Collector struct {
	// Runner executes df.
	Runner process.Runner
	// Proc is the /proc filesystem.
	Proc fs.FS
	// Units lists failed systemd units; nil skips the query.
	Units UnitLister
	// CPUs returns the logical CPU count.
	CPUs func() int
	// DiskTimeout bounds the df query.
	DiskTimeout time.Duration
}

// NewCollector returns a Collector reading the live host.
func NewCollector(runner process.Runner) *Collector {
	return &Collector{
		Runner:      runner,
		Proc:        os.DirFS("/proc"),
		Units:       SystemdUnits{},
		CPUs:        runtime.NumCPU,
		DiskTimeout: defaults.DiskUsageTimeout,
	}
}

// Collect reads uptime, load and memory from /proc, disk usage from df and
// failed units from systemd. Only cancellation fails the section; every
// other problem leaves a fallback value.
// It implements the Collector interface.
func (c *Collector) Collect(ctx context.Context) (section.Payload, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	slog.Debug("collecting system health")

	proc := newProcReader(c.Proc)
	h := Health{
		Uptime: readUptime(proc),
		Load:   readLoad(proc),
		Memory: readMemory(proc),
	}
	if c.CPUs != nil {
		h.CPUs = c.CPUs()
	}

	var g errgroup.Group

	goRead(&g, "disk usage", func() {
		h.Disks = c.readDisks(ctx)
	})

	if c.Units != nil {
		goRead(&g, "systemd units", func() {
			uctx, cancel := context.WithTimeout(ctx, defaults.SystemdTimeout)
			defer cancel()
			units, err := c.Units.FailedUnits(uctx)
			if err != nil {
				slog.Debug("systemd query skipped", slog.String("error", err.Error()))
				return
			}
			h.FailedUnits = units
		})
	}

	_ = g.Wait()

	for _, d := range h.Disks {
		if d.Warning {
			h.DiskWarnings++
		}
	}

	return h, nil
}

// goRead runs fn on g. A panic is logged and the field keeps its zero value.
func goRead(g *errgroup.Group, what string, fn func()) {
	g.Go(func() error {
		if err := errors.Recover(what, fn); err != nil {
			slog.Warn("system reading failed", slog.String("error", errors.Describe(err)))
		}
		return nil
	})
}

func readUptime(proc procReader) string {
	f, err := proc.fields("uptime")
	if err != nil || len(f) == 0 {
		return unknownUptime
	}
	secs, err := strconv.ParseFloat(f[0], 64)
	if err != nil {
		return unknownUptime
	}
	return FormatUptime(time.Duration(secs * float64(time.Second)))
}

// FormatUptime renders d as "Nd Nh Nm", dropping days when zero.
func FormatUptime(d time.Duration) string {
	total := int64(d / time.Minute)
	days := total / (24 * 60)
	hours := (total % (24 * 60)) / 60
	mins := total % 60
	if days > 0 {
		return fmt.Sprintf("%dd %dh %dm", days, hours, mins)
	}
	return fmt.Sprintf("%dh %dm", hours, mins)
}

func readLoad(proc procReader) Load {
	unknown := Load{One: UnknownValue, Five: UnknownValue, Fifteen: UnknownValue}
	f, err := proc.fields("loadavg")
	if err != nil || len(f) < 3 {
		return unknown
	}
	vals := make([]string, 3)
	for i := range vals {
		v, err := strconv.ParseFloat(f[i], 64)
		if err != nil {
			return unknown
		}
		vals[i] = fmt.Sprintf("%.2f", v)
	}
	return Load{One: vals[0], Five: vals[1], Fifteen: vals[2]}
}

func readMemory(proc procReader) Memory {
	unknown := Memory{TotalGB: UnknownValue, UsedGB: UnknownValue, FreeGB: UnknownValue, Percent: UnknownValue}
	kv, err := proc.keyValues("meminfo", ":")
	if err != nil {
		return unknown
	}
	total, okTotal := kibToBytes(kv["MemTotal"])
	avail, okAvail := kibToBytes(kv["MemAvailable"])
	if !okTotal || !okAvail {
		return unknown
	}
	return NewMemory(total, avail)
}

// NewMemory formats totals given in bytes.
func NewMemory(total, available float64) Memory {
	used := total - available
	pct := 0
	if total > 0 {
		pct = int(used / total * 100)
	}
	return Memory{
		TotalGB: fmt.Sprintf("%.1f", total/1e9),
		UsedGB:  fmt.Sprintf("%.1f", used/1e9),
		FreeGB:  fmt.Sprintf("%.1f", available/1e9),
		Percent: strconv.Itoa(pct),
	}
}

// kibToBytes parses a meminfo value such as "16316412 kB".
func kibToBytes(v string) (float64, bool) {
	f := strings.Fields(v)
	if len(f) == 0 {
		return 0, false
	}
	n, err := strconv.ParseFloat(f[0], 64)
	if err != nil {
		return 0, false
	}
	return n * bytesPerKiB, true
}

func (c *Collector) readDisks(ctx context.Context) []Disk {
	if c.Runner == nil {
		return nil
	}
	out := c.Runner.Run(ctx, process.Command{
		Name:    "df",
		Args:    []string{"-h", "--output=target,size,used,avail,pcent", "-x", "tmpfs", "-x", "devtmpfs", "-x", "overlay"},
		Timeout: c.DiskTimeout,
	})
	if out.Failed() || out.Stdout == "" {
		return nil
	}
	return ParseDiskUsage(out.Stdout)
}

// ParseDiskUsage reads df output, skipping the header line. The last four
// columns are size, used, avail and percent; everything before them is the
// mount point, which may contain spaces.
func ParseDiskUsage(out string) []Disk {
	lines := strings.Split(out, "\n")
	disks := make([]Disk, 0, len(lines))
	for _, line := range lines[1:] {
		parts := strings.Fields(line)
		if len(parts) < 5 {
			continue
		}
		n := len(parts)
		pct, err := strconv.Atoi(strings.TrimSuffix(parts[n-1], "%"))
		if err != nil {
			pct = 0
		}
		disks = append(disks, Disk{
			Mount:   strings.Join(parts[:n-4], " "),
			Size:    parts[n-4],
			Used:    parts[n-3],
			Avail:   parts[n-2],
			Percent: pct,
			Warning: pct > defaults.DiskWarningPercent,
		})
	}
	return disks
}
