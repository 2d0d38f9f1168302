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

package process

import (
	"context"
	"fmt"
	"sync"

	"github.com/NVIDIA/daily-briefing/pkg/errors"
)

// FakeRunner is a scriptable Runner for tests. It is safe for concurrent use.
type FakeRunner struct {
	// Handler produces the outcome of each call. A nil Handler succeeds with
	// empty output.
	Handler func(cmd Command) Outcome

	// Missing lists program names LookPath reports as absent.
	Missing map[string]bool

	mu    sync.Mutex
	calls []Command
}

// Run records cmd and returns the Handler's outcome.
func (f *FakeRunner) Run(ctx context.Context, cmd Command) Outcome {
	f.mu.Lock()
	f.calls = append(f.calls, cmd)
	f.mu.Unlock()

	if err := ctx.Err(); err != nil {
		return Outcome{Err: errors.Wrap(errors.ErrCodeTimeout, cmd.String(), err)}
	}
	if f.Handler == nil {
		return Outcome{}
	}
	return f.Handler(cmd)
}

// LookPath fails for names in Missing.
func (f *FakeRunner) LookPath(name string) (string, error) {
	if f.Missing[name] {
		return "", errors.New(errors.ErrCodeNotFound, fmt.Sprintf("%s not found in PATH", name))
	}
	return "/usr/bin/" + name, nil
}

// Calls returns a copy of the recorded commands.
func (f *FakeRunner) Calls() []Command {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]Command, len(f.calls))
	copy(out, f.calls)
	return out
}

// Succeed returns a successful outcome with stdout.
func Succeed(stdout string) Outcome {
	return Outcome{Stdout: stdout}
}

// Fail returns a failed outcome with msg.
func Fail(msg string) Outcome {
	return Outcome{Err: errors.New(errors.ErrCodeInternal, msg)}
}
