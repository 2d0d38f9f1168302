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

package git

import (
	"context"
	"log/slog"

	"github.com/NVIDIA/daily-briefing/pkg/section"
)

// Collector reports the status of repositories under Roots.
type Collector struct {
	Scanner *Scanner
	Roots   []string
}

// Collect scans the configured roots.
// It implements the Collector interface.
func (c *Collector) Collect(ctx context.Context) (section.Payload, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	slog.Debug("collecting git repositories", slog.Any("roots", c.Roots))

	return c.Scanner.Scan(ctx, c.Roots), nil
}
