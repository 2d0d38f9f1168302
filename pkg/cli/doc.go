/*
Copyright © 2025 NVIDIA Corporation
SPDX-License-Identifier: Apache-2.0
*/

// Package cli implements the daily-briefing command.
//
// The command takes no subcommands. Every flag has an environment fallback:
//
//	--format        BRIEFING_FORMAT     terminal, plain, json or yaml
//	--sections      BRIEFING_SECTIONS   comma-separated section names
//	--location      BRIEFING_LOCATION   weather location
//	--git-dirs      BRIEFING_GIT_DIRS   comma-separated repository roots
//	--kubeconfig    KUBECONFIG          kubeconfig for kubectl
//	--log-level     LOG_LEVEL           debug, info, warn or error
//
// Before flags are parsed, ./.env and ~/.config/daily-briefing/briefing.env
// are loaded without overriding variables already set.
//
// The process exits with status 1 only for configuration or output errors;
// failing sections are reported inside the briefing.
package cli
