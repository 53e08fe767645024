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

package systemd

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	busCallDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "unitctl_bus_call_duration_seconds",
			Help:    "Duration of systemd manager round trips, connection setup included",
			Buckets: []float64{0.005, 0.01, 0.05, 0.1, 0.5, 1, 2, 4},
		},
		[]string{"method"},
	)

	busCallTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "unitctl_bus_call_total",
			Help: "Total number of systemd manager round trips",
		},
		[]string{"method", "status"}, // success or an error code
	)

	unitsListed = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "unitctl_units_listed",
			Help: "Number of unit files in the last decoded listing",
		},
	)
)
