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

import (
	"context"
	"encoding/json"
	"log/slog"
	"sort"
	"strings"
	"time"

	"github.com/distribution/reference"
	corev1 "k8s.io/api/core/v1"

	"github.com/NVIDIA/daily-briefing/pkg/defaults"
	"github.com/NVIDIA/daily-briefing/pkg/errors"
	"github.com/NVIDIA/daily-briefing/pkg/k8s/client"
	"github.com/NVIDIA/daily-briefing/pkg/process"
	"github.com/NVIDIA/daily-briefing/pkg/section"
)

const (
	// Binary is the cluster CLI the section depends on.
	Binary = "kubectl"

	// UnavailableNote is reported when Binary is not installed.
	UnavailableNote = "kubectl not installed, skipping Kubernetes"

	// ParseFailure is reported when the pod listing is not valid JSON.
	ParseFailure = "failed to parse kubectl output"

	nodeRolePrefix = "node-role.kubernetes.io/"

	// PhaseCompleted is reported by some tooling for finished pods.
	PhaseCompleted corev1.PodPhase = "Completed"
)

var healthyPhases = map[corev1.PodPhase]bool{
	corev1.PodRunning:   true,
	corev1.PodSucceeded: true,
	PhaseCompleted:      true,
}

// Collector summarizes workload health through kubectl.
type Collector struct {
	Runner process.Runner
	// Kubeconfig is passed to kubectl when set.
	Kubeconfig string
	// Timeout applies to each kubectl query.
	Timeout time.Duration
	// RestartThreshold flags containers restarting more often than this.
	RestartThreshold int32
	// PreviewLimit caps the issue lists.
	PreviewLimit int
	// CurrentContext resolves the kube context name; nil skips it.
	CurrentContext func(kubeconfig string) (string, error)
}

// NewCollector returns a Collector with default limits.
func NewCollector(runner process.Runner, kubeconfig string) *Collector {
	return &Collector{
		Runner:           runner,
		Kubeconfig:       kubeconfig,
		Timeout:          defaults.KubectlTimeout,
		RestartThreshold: defaults.PodRestartThreshold,
		PreviewLimit:     defaults.PreviewLimit,
		CurrentContext:   client.CurrentContext,
	}
}

// Collect lists pods and nodes across the cluster and derives health.
// It implements the Collector interface.
func (c *Collector) Collect(ctx context.Context) (section.Payload, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	if _, err := c.Runner.LookPath(Binary); err != nil {
		return nil, errors.Wrap(errors.ErrCodeUnavailable, UnavailableNote, err)
	}

	slog.Debug("collecting kubernetes workloads")

	out := c.kubectl(ctx, "get", "pods", "--all-namespaces", "-o", "json")
	if out.Failed() {
		return nil, out.Err
	}

	var pods corev1.PodList
	if err := json.Unmarshal([]byte(out.Stdout), &pods); err != nil {
		slog.Debug("kubectl pod output rejected", slog.String("error", err.Error()))
		return nil, errors.Wrap(errors.ErrCodeInternal, ParseFailure, err)
	}

	status := Summarize(pods.Items, c.RestartThreshold, c.PreviewLimit)
	status.Nodes = c.nodes(ctx)

	if c.CurrentContext != nil {
		if name, err := c.CurrentContext(c.Kubeconfig); err == nil {
			status.Context = name
		}
	}

	slog.Debug("collected kubernetes workloads",
		slog.Int("pods", status.TotalPods),
		slog.Int("unhealthy", status.UnhealthyCount),
		slog.Int("restartIssues", status.RestartIssueCount))

	return status, nil
}

// nodes returns the node summary, or nil when nodes cannot be listed.
func (c *Collector) nodes(ctx context.Context) *NodeSummary {
	out := c.kubectl(ctx, "get", "nodes", "-o", "json")
	if out.Failed() {
		slog.Debug("node listing skipped", slog.String("error", out.ErrorMessage()))
		return nil
	}
	var list corev1.NodeList
	if err := json.Unmarshal([]byte(out.Stdout), &list); err != nil {
		return nil
	}
	return SummarizeNodes(list.Items)
}

func (c *Collector) kubectl(ctx context.Context, args ...string) process.Outcome {
	if c.Kubeconfig != "" {
		args = append([]string{"--kubeconfig", c.Kubeconfig}, args...)
	}
	return c.Runner.Run(ctx, process.Command{
		Name:    Binary,
		Args:    args,
		Timeout: c.Timeout,
	})
}

// Summarize derives pod health. Lists are capped at limit; counts are exact.
func Summarize(pods []corev1.Pod, threshold int32, limit int) ClusterStatus {
	status := ClusterStatus{
		TotalPods:     len(pods),
		UnhealthyPods: []PodIssue{},
		RestartIssues: []RestartIssue{},
	}

	for i := range pods {
		p := &pods[i]
		if !healthyPhases[p.Status.Phase] {
			status.UnhealthyCount++
			if len(status.UnhealthyPods) < limit {
				status.UnhealthyPods = append(status.UnhealthyPods, PodIssue{
					Name:      p.Name,
					Namespace: p.Namespace,
					Phase:     string(p.Status.Phase),
				})
			}
		}
		for _, cs := range p.Status.ContainerStatuses {
			if cs.RestartCount <= threshold {
				continue
			}
			status.RestartIssueCount++
			if len(status.RestartIssues) < limit {
				status.RestartIssues = append(status.RestartIssues, RestartIssue{
					Pod:       p.Name,
					Namespace: p.Namespace,
					Container: cs.Name,
					Image:     FamiliarImage(cs.Image),
					Restarts:  cs.RestartCount,
				})
			}
		}
	}
	return status
}

// SummarizeNodes counts ready nodes and lists their roles.
func SummarizeNodes(nodes []corev1.Node) *NodeSummary {
	sum := &NodeSummary{Total: len(nodes), Items: make([]Node, 0, len(nodes))}
	for i := range nodes {
		n := &nodes[i]
		node := Node{Name: n.Name, Roles: nodeRoles(n.Labels)}
		for _, cond := range n.Status.Conditions {
			if cond.Type == corev1.NodeReady {
				node.Ready = cond.Status == corev1.ConditionTrue
				break
			}
		}
		if node.Ready {
			sum.Ready++
		}
		sum.Items = append(sum.Items, node)
	}
	return sum
}

func nodeRoles(labels map[string]string) []string {
	roles := make([]string, 0)
	for k := range labels {
		if role, ok := strings.CutPrefix(k, nodeRolePrefix); ok && role != "" {
			roles = append(roles, role)
		}
	}
	sort.Strings(roles)
	return roles
}

// FamiliarImage shortens an image reference the way docker prints it,
// e.g. "docker.io/library/nginx:1.27" becomes "nginx:1.27".
func FamiliarImage(image string) string {
	if image == "" {
		return ""
	}
	named, err := reference.ParseNormalizedNamed(image)
	if err != nil {
		return image
	}
	return reference.FamiliarString(named)
}
