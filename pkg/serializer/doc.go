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

// Package serializer renders briefing snapshots.
//
// # Supported Formats
//
// Terminal:
//   - Colorized report using github.com/fatih/color
//   - Colors are dropped when stdout is not a terminal or output goes to a file
//
// Plain:
//   - Compact text without colors, suitable for chat and mail
//   - Shorter previews and only warning disks
//
// JSON:
//   - Indented snapshot including every section result
//
// YAML:
//   - Same document as JSON, gopkg.in/yaml.v3 package
//
// Terminal and plain render sections in a fixed order (weather, calendar,
// git, system, kubernetes) followed by unknown section names.
//
// # Usage
//
//	w, err := serializer.NewFileWriterOrStdout(serializer.FormatTerminal, path)
//	if err != nil {
//		return err
//	}
//	defer w.Close()
//	if err := w.Serialize(ctx, snap); err != nil {
//		return err
//	}
package serializer
