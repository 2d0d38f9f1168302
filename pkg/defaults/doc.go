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

// Package defaults provides centralized configuration constants for the briefing.
//
// This package defines timeout values, output ceilings and preview limits used
// across the collectors and renderers. Centralizing these values ensures
// consistency and makes tuning easier.
//
// # Timeout Categories
//
// Timeouts are organized by boundary:
//
//   - Process timeouts: one per external command (git, gcalcli, kubectl, df)
//   - HTTP client timeouts: for the weather request
//
// # Usage
//
// Import and use constants directly:
//
//	import "github.com/NVIDIA/daily-briefing/pkg/defaults"
//
//	out := runner.Run(ctx, process.Command{
//	    Name:    "kubectl",
//	    Args:    []string{"get", "pods", "--all-namespaces", "-o", "json"},
//	    Timeout: defaults.KubectlTimeout,
//	})
//
// # Timeout Guidelines
//
// There is no global deadline. Every external call carries its own timeout, so
// the slowest section bounds the run:
//
//   - git queries: 10s each, four per repository, run concurrently
//   - gcalcli and kubectl: 15s
//   - df: 5s
package defaults
