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

package k8s

import "github.com/NVIDIA/daily-briefing/pkg/section"

// PodIssue is a pod outside the healthy phases.
type PodIssue struct {
	Name      string `json:"name" yaml:"name"`
	Namespace string `json:"namespace" yaml:"namespace"`
	Phase     string `json:"phase" yaml:"phase"`
}

// RestartIssue is a container restarting more than the threshold.
type RestartIssue struct {
	Pod       string `json:"pod" yaml:"pod"`
	Namespace string `json:"namespace" yaml:"namespace"`
	Container string `json:"container" yaml:"container"`
	Image     string `json:"image,omitempty" yaml:"image,omitempty"`
	Restarts  int32  `json:"restarts" yaml:"restarts"`
}

// Node is the readiness and roles of one node.
type Node struct {
	Name  string   `json:"name" yaml:"name"`
	Ready bool     `json:"ready" yaml:"ready"`
	Roles []string `json:"roles" yaml:"roles"`
}

// NodeSummary folds node readiness into the cluster status.
type NodeSummary struct {
	Ready int    `json:"ready" yaml:"ready"`
	Total int    `json:"total" yaml:"total"`
	Items []Node `json:"items" yaml:"items"`
}

// ClusterStatus is the kubernetes section payload. UnhealthyPods and
// RestartIssues are previews; the counts are exact. Nodes is nil when the
// node query failed.
type ClusterStatus struct {
	Context           string         `json:"context,omitempty" yaml:"context,omitempty"`
	TotalPods         int            `json:"totalPods" yaml:"totalPods"`
	UnhealthyCount    int            `json:"unhealthyCount" yaml:"unhealthyCount"`
	UnhealthyPods     []PodIssue     `json:"unhealthyPods" yaml:"unhealthyPods"`
	RestartIssueCount int            `json:"restartIssueCount" yaml:"restartIssueCount"`
	RestartIssues     []RestartIssue `json:"restartIssues" yaml:"restartIssues"`
	Nodes             *NodeSummary   `json:"nodes,omitempty" yaml:"nodes,omitempty"`
}

// SectionName implements section.Payload.
func (ClusterStatus) SectionName() section.Name {
	return section.Kubernetes
}
