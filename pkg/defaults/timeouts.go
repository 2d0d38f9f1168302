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

package defaults

import "time"

// Process timeouts for external commands run by collectors.
const (
	// ProcessTimeout applies when a command does not set its own timeout.
	ProcessTimeout = 10 * time.Second

	// ProcessWaitDelay bounds how long to wait for output pipes after a
	// timed-out process has been killed.
	ProcessWaitDelay = 1 * time.Second

	// GitCommandTimeout is the timeout for each git query in the repository scan.
	GitCommandTimeout = 10 * time.Second

	// CalendarTimeout is the timeout for the gcalcli agenda query.
	CalendarTimeout = 15 * time.Second

	// KubectlTimeout is the timeout for each kubectl query.
	KubectlTimeout = 15 * time.Second

	// DiskUsageTimeout is the timeout for the df query.
	DiskUsageTimeout = 5 * time.Second

	// SystemdTimeout bounds the D-Bus query for failed units.
	SystemdTimeout = 3 * time.Second
)

// Process output limits.
const (
	// MaxProcessOutputBytes is the capture ceiling per stream. Cluster-wide
	// kubectl listings exceed the usual pipe sizes, so this stays in the MB range.
	MaxProcessOutputBytes = 10 * 1024 * 1024
)

// HTTP client timeouts for outbound requests.
const (
	// WeatherTimeout is the total timeout for the weather request.
	WeatherTimeout = 15 * time.Second

	// HTTPConnectTimeout is the timeout for establishing connections.
	HTTPConnectTimeout = 5 * time.Second

	// HTTPTLSHandshakeTimeout is the timeout for TLS handshake.
	HTTPTLSHandshakeTimeout = 5 * time.Second

	// HTTPResponseHeaderTimeout is the timeout for reading response headers.
	HTTPResponseHeaderTimeout = 10 * time.Second

	// HTTPIdleConnTimeout is the timeout for idle connections in the pool.
	HTTPIdleConnTimeout = 90 * time.Second

	// HTTPKeepAlive is the keep-alive duration for connections.
	HTTPKeepAlive = 30 * time.Second
)

// Report limits.
const (
	// DiskWarningPercent is the usage above which a filesystem is flagged.
	DiskWarningPercent = 80

	// PodRestartThreshold is the restart count above which a container is flagged.
	PodRestartThreshold = 5

	// PreviewLimit caps issue previews in collected payloads.
	PreviewLimit = 10

	// PlainPreviewLimit caps issue previews in the plain renderer.
	PlainPreviewLimit = 5

	// ErrorBodyLimit caps the response body quoted in HTTP errors.
	ErrorBodyLimit = 200

	// RecentCommitWindow is how far back the scanner counts commits.
	RecentCommitWindow = 24 * time.Hour
)
