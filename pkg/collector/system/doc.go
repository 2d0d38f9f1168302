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

// Package system reports host health: uptime, load, memory, disks and
// failed systemd units.
//
// # Sources
//
//   - /proc/uptime: uptime as "Nd Nh Nm", or "Nh Nm" under a day
//   - /proc/loadavg: 1, 5 and 15 minute load averages
//   - /proc/meminfo: MemTotal and MemAvailable
//   - df: mounted filesystems excluding tmpfs, devtmpfs and overlay
//   - systemd over D-Bus: units in the failed state
//
// Filesystems above 80% usage are flagged and counted in DiskWarnings.
//
// # Degradation
//
// Unreadable /proc files produce "unknown" or "?" values. A failed df omits
// Disks, an unreachable systemd omits FailedUnits. Neither fails the section.
package system
