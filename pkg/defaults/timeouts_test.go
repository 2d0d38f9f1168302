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

import (
	"testing"
	"time"
)

func TestTimeoutConstants(t *testing.T) {
	tests := []struct {
		name     string
		timeout  time.Duration
		minValue time.Duration
		maxValue time.Duration
	}{
		// Process timeouts
		{"ProcessTimeout", ProcessTimeout, 5 * time.Second, 30 * time.Second},
		{"GitCommandTimeout", GitCommandTimeout, 5 * time.Second, 30 * time.Second},
		{"CalendarTimeout", CalendarTimeout, 5 * time.Second, 60 * time.Second},
		{"KubectlTimeout", KubectlTimeout, 5 * time.Second, 60 * time.Second},
		{"DiskUsageTimeout", DiskUsageTimeout, 1 * time.Second, 15 * time.Second},
		{"SystemdTimeout", SystemdTimeout, 1 * time.Second, 10 * time.Second},

		// HTTP client timeouts
		{"WeatherTimeout", WeatherTimeout, 5 * time.Second, 60 * time.Second},
		{"HTTPConnectTimeout", HTTPConnectTimeout, 1 * time.Second, 15 * time.Second},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.timeout < tt.minValue {
				t.Errorf("%s (%v) is below minimum expected value (%v)", tt.name, tt.timeout, tt.minValue)
			}
			if tt.timeout > tt.maxValue {
				t.Errorf("%s (%v) is above maximum expected value (%v)", tt.name, tt.timeout, tt.maxValue)
			}
		})
	}
}

func TestHTTPClientTimeoutRelationships(t *testing.T) {
	// Connect and header timeouts must fit inside the total budget
	if HTTPConnectTimeout >= WeatherTimeout {
		t.Errorf("HTTPConnectTimeout (%v) should be less than WeatherTimeout (%v)",
			HTTPConnectTimeout, WeatherTimeout)
	}
	if HTTPResponseHeaderTimeout >= WeatherTimeout {
		t.Errorf("HTTPResponseHeaderTimeout (%v) should be less than WeatherTimeout (%v)",
			HTTPResponseHeaderTimeout, WeatherTimeout)
	}
}

func TestOutputLimits(t *testing.T) {
	if MaxProcessOutputBytes < 4*1024*1024 {
		t.Errorf("MaxProcessOutputBytes (%d) must hold multi-MB cluster listings", MaxProcessOutputBytes)
	}
	if PlainPreviewLimit > PreviewLimit {
		t.Errorf("PlainPreviewLimit (%d) should not exceed PreviewLimit (%d)", PlainPreviewLimit, PreviewLimit)
	}
	if ProcessWaitDelay >= ProcessTimeout {
		t.Errorf("ProcessWaitDelay (%v) should be less than ProcessTimeout (%v)", ProcessWaitDelay, ProcessTimeout)
	}
}
