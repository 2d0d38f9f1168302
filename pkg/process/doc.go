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

// Package process runs external programs for the collectors.
//
// Every call returns an Outcome. Spawn failures, non-zero exits, timeouts and
// output beyond the capture ceiling are reported through Outcome.Err as
// *errors.StructuredError values; Run itself never fails out of band.
//
//	out := runner.Run(ctx, process.Command{
//	    Name:    "git",
//	    Args:    []string{"status", "--porcelain"},
//	    Dir:     repo,
//	    Timeout: defaults.GitCommandTimeout,
//	})
//	if out.Failed() {
//	    return 0
//	}
//
// FakeRunner scripts outcomes for tests.
package process
