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
	"errors"
	"testing"
	"testing/fstest"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/NVIDIA/daily-briefing/pkg/defaults"
	"github.com/NVIDIA/daily-briefing/pkg/process"
)

const dfOutput = `Mounted on     Size  Used Avail Use%
/               468G  402G   43G  91%
/boot           974M  250M  657M  28%
/home           1.8T  1.2T  600G  67%`

type fakeUnits struct {
	units []string
	err   error
}

func (f fakeUnits) FailedUnits(context.Context) ([]string, error) {
	return f.units, f.err
}

func testProc() fstest.MapFS {
	return fstest.MapFS{
		"uptime":  {Data: []byte("273784.51 1052393.31\n")},
		"loadavg": {Data: []byte("0.52 0.58 0.59 1/1234 56789\n")},
		"meminfo": {Data: []byte("MemTotal:       16000000 kB\nMemFree:         1000000 kB\nMemAvailable:    4000000 kB\n")},
	}
}

func newTestCollector(runner process.Runner, units UnitLister) *Collector {
	return &Collector{
		Runner:      runner,
		Proc:        testProc(),
		Units:       units,
		CPUs:        func() int { return 8 },
		DiskTimeout: defaults.DiskUsageTimeout,
	}
}

func TestCollect_Health(t *testing.T) {
	runner := &process.FakeRunner{
		Handler: func(cmd process.Command) process.Outcome {
			return process.Succeed(dfOutput)
		},
	}
	c := newTestCollector(runner, fakeUnits{units: []string{"backup.service"}})

	payload, err := c.Collect(context.Background())
	require.NoError(t, err)

	h, ok := payload.(Health)
	require.True(t, ok)
	assert.Equal(t, "3d 4h 3m", h.Uptime)
	assert.Equal(t, Load{One: "0.52", Five: "0.58", Fifteen: "0.59"}, h.Load)
	assert.Equal(t, 8, h.CPUs)
	assert.Equal(t, Memory{TotalGB: "16.4", UsedGB: "12.3", FreeGB: "4.1", Percent: "75"}, h.Memory)
	require.Len(t, h.Disks, 3)
	assert.Equal(t, Disk{Mount: "/", Size: "468G", Used: "402G", Avail: "43G", Percent: 91, Warning: true}, h.Disks[0])
	assert.False(t, h.Disks[1].Warning)
	assert.Equal(t, 1, h.DiskWarnings)
	assert.Equal(t, []string{"backup.service"}, h.FailedUnits)

	calls := runner.Calls()
	require.Len(t, calls, 1)
	assert.Equal(t, "df", calls[0].Name)
	assert.Equal(t, defaults.DiskUsageTimeout, calls[0].Timeout)
	assert.Contains(t, calls[0].Args, "--output=target,size,used,avail,pcent")
}

func TestCollect_Degraded(t *testing.T) {
	runner := &process.FakeRunner{
		Handler: func(process.Command) process.Outcome {
			return process.Fail("df: exit status 1")
		},
	}
	c := newTestCollector(runner, fakeUnits{err: errors.New("no system bus")})
	c.Proc = fstest.MapFS{}

	payload, err := c.Collect(context.Background())
	require.NoError(t, err, "host health never fails on missing sources")

	h := payload.(Health)
	assert.Equal(t, "unknown", h.Uptime)
	assert.Equal(t, UnknownValue, h.Load.One)
	assert.Equal(t, UnknownValue, h.Memory.Percent)
	assert.Nil(t, h.Disks)
	assert.Zero(t, h.DiskWarnings)
	assert.Nil(t, h.FailedUnits)
}

type panickingUnits struct{}

func (panickingUnits) FailedUnits(context.Context) ([]string, error) {
	panic("bus exploded")
}

func TestCollect_WorkerPanicKeepsFallbacks(t *testing.T) {
	runner := &process.FakeRunner{
		Handler: func(process.Command) process.Outcome {
			panic("df exploded")
		},
	}
	c := newTestCollector(runner, panickingUnits{})

	payload, err := c.Collect(context.Background())
	require.NoError(t, err)

	h := payload.(Health)
	assert.Equal(t, "3d 4h 3m", h.Uptime)
	assert.Nil(t, h.Disks)
	assert.Nil(t, h.FailedUnits)
}

func TestCollect_CanceledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := newTestCollector(&process.FakeRunner{}, nil).Collect(ctx)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestFormatUptime(t *testing.T) {
	tests := []struct {
		in   time.Duration
		want string
	}{
		{0, "0h 0m"},
		{59 * time.Second, "0h 0m"},
		{5*time.Hour + 7*time.Minute, "5h 7m"},
		{24 * time.Hour, "1d 0h 0m"},
		{50*time.Hour + 30*time.Minute, "2d 2h 30m"},
	}
	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatUptime(tt.in))
		})
	}
}

func TestParseDiskUsage(t *testing.T) {
	disks := ParseDiskUsage("Mounted on Size Used Avail Use%\n/data 10G 8.1G 1.9G 81%\n/odd 1G 0 1G -\nshort line\n")

	require.Len(t, disks, 2)
	assert.True(t, disks[0].Warning)
	assert.Equal(t, 81, disks[0].Percent)
	assert.Equal(t, 0, disks[1].Percent)
	assert.False(t, disks[1].Warning)

	assert.Empty(t, ParseDiskUsage("Mounted on Size Used Avail Use%"))
}

func TestParseDiskUsage_MountWithSpaces(t *testing.T) {
	disks := ParseDiskUsage("Mounted on Size Used Avail Use%\n/media/usb stick 29G 25G 4.0G 87%\n")

	require.Len(t, disks, 1)
	assert.Equal(t, Disk{Mount: "/media/usb stick", Size: "29G", Used: "25G", Avail: "4.0G", Percent: 87, Warning: true}, disks[0])
}

func TestNewMemory(t *testing.T) {
	assert.Equal(t, Memory{TotalGB: "0.0", UsedGB: "0.0", FreeGB: "0.0", Percent: "0"}, NewMemory(0, 0))
	assert.Equal(t, "50", NewMemory(8e9, 4e9).Percent)
}

func TestProcReader(t *testing.T) {
	r := newProcReader(fstest.MapFS{
		"kv":    {Data: []byte("A: 1\n\nnovalue\nB:  two words \n")},
		"empty": {Data: []byte("\n\n")},
		"bad":   {Data: []byte{0xff, 0xfe}},
	})

	kv, err := r.keyValues("kv", ":")
	require.NoError(t, err)
	assert.Equal(t, map[string]string{"A": "1", "B": "two words"}, kv)

	_, err = r.fields("empty")
	assert.Error(t, err)

	_, err = r.lines("bad")
	assert.ErrorContains(t, err, "not valid UTF-8")

	_, err = r.lines("missing")
	assert.Error(t, err)
}
