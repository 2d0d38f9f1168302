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

// Package header provides the common header of briefing documents.
//
// The header follows Kubernetes resource conventions so JSON and YAML output
// is self-describing:
//
//	kind: Briefing
//	apiVersion: briefing.nvidia.com/v1
//	metadata:
//	  hostname: devbox
//	  run-id: 3f1c0f5e-8a53-4c0e-9a55-0d3b0fd8c2a1
//	  version: v1.0.0
//
// Init fills the metadata for a new run. Each run gets a UUID so reports
// written to files can be correlated with logs and metrics.
package header
