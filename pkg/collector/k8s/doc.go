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

// Package k8s summarizes cluster workload health through kubectl.
//
// # Queries
//
//	kubectl get pods --all-namespaces -o json
//	kubectl get nodes -o json
//
// The pod listing is decoded into a core/v1 PodList. Pods outside the
// Running, Succeeded and Completed phases are unhealthy; containers with
// more than five restarts are restart issues. Both are reported as exact
// counts plus a preview of the first ten entries.
//
// A failed node listing is not an error: node access is often restricted,
// so the node summary is simply omitted.
//
// # Availability
//
// When kubectl is not on PATH the section is unavailable rather than failed.
package k8s
