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

package snapshotter

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// Briefing aggregation metrics
	briefingDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "briefing_aggregation_duration_seconds",
			Help:    "Time taken to collect every requested section",
			Buckets: []float64{0.5, 1, 2, 5, 10, 20, 30},
		},
	)

	briefingErrorSections = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "briefing_error_sections",
			Help: "Number of sections that failed in the last briefing",
		},
	)

	sectionDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "briefing_section_duration_seconds",
			Help:    "Time taken by individual section collectors",
			Buckets: []float64{0.1, 0.5, 1, 5, 10, 30},
		},
		[]string{"section"},
	)

	sectionTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "briefing_section_total",
			Help: "Total number of section collections by outcome",
		},
		[]string{"section", "status"}, // ok, error or unavailable
	)
)
