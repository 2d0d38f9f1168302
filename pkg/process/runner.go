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
	stderrors "errors"
	"fmt"
	"log/slog"
	"os/exec"
	"strings"
	"time"

	"github.com/NVIDIA/daily-briefing/pkg/defaults"
	"github.com/NVIDIA/daily-briefing/pkg/errors"
)

// Command describes one external program invocation.
type Command struct {
	// Name is the program to run, resolved through PATH.
	Name string
	// Args are passed verbatim, no shell is involved.
	Args []string
	// Dir is the working directory; empty means the current one.
	Dir string
	// Timeout bounds the run; zero means defaults.ProcessTimeout.
	Timeout time.Duration
}

// String returns the command line for messages and logs.
func (c Command) String() string {
	if len(c.Args) == 0 {
		return c.Name
	}
	return c.Name + " " + strings.Join(c.Args, " ")
}

// Outcome is the result of a command. Err is set on spawn failure, non-zero
// exit, timeout or output overflow, and Stdout is empty whenever Err is set.
type Outcome struct {
	Stdout string
	Stderr string
	Err    error
}

// Failed reports whether the command did not complete successfully.
func (o Outcome) Failed() bool {
	return o.Err != nil
}

// ErrorMessage returns the human-readable failure, or "" on success.
func (o Outcome) ErrorMessage() string {
	return errors.Describe(o.Err)
}

// Runner executes external commands. Implementations never panic and
// report every failure through Outcome.Err.
type Runner interface {
	Run(ctx context.Context, cmd Command) Outcome
	LookPath(name string) (string, error)
}

// ExecRunner runs commands with os/exec.
type ExecRunner struct {
	// MaxOutputBytes is the capture ceiling per stream; zero means
	// defaults.MaxProcessOutputBytes.
	MaxOutputBytes int
}

// NewExecRunner returns an ExecRunner with default limits.
func NewExecRunner() *ExecRunner {
	return &ExecRunner{MaxOutputBytes: defaults.MaxProcessOutputBytes}
}

// LookPath reports where name would be found on PATH.
func (r *ExecRunner) LookPath(name string) (string, error) {
	path, err := exec.LookPath(name)
	if err != nil {
		return "", errors.Wrap(errors.ErrCodeNotFound, fmt.Sprintf("%s not found in PATH", name), err)
	}
	return path, nil
}

// Run executes cmd and waits for it to finish or time out.
func (r *ExecRunner) Run(ctx context.Context, cmd Command) Outcome {
	timeout := cmd.Timeout
	if timeout <= 0 {
		timeout = defaults.ProcessTimeout
	}
	limit := r.MaxOutputBytes
	if limit <= 0 {
		limit = defaults.MaxProcessOutputBytes
	}

	runCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	stdout := &cappedBuffer{limit: limit}
	stderr := &cappedBuffer{limit: limit}

	c := exec.CommandContext(runCtx, cmd.Name, cmd.Args...)
	c.Dir = cmd.Dir
	c.Stdout = stdout
	c.Stderr = stderr
	c.WaitDelay = defaults.ProcessWaitDelay

	start := time.Now()
	err := c.Run()
	elapsed := time.Since(start)

	out := Outcome{
		Stdout: strings.TrimSpace(stdout.String()),
		Stderr: strings.TrimSpace(stderr.String()),
	}

	switch {
	case err != nil && stderrors.Is(runCtx.Err(), context.DeadlineExceeded) && ctx.Err() == nil:
		out.Err = errors.NewWithContext(errors.ErrCodeTimeout,
			fmt.Sprintf("%s: timed out after %s", cmd, timeout),
			map[string]any{"dir": cmd.Dir})
	case err != nil:
		out.Err = failure(cmd, err, out.Stderr)
	case stdout.overflow || stderr.overflow:
		out.Err = errors.NewWithContext(errors.ErrCodeInternal,
			fmt.Sprintf("%s: output exceeded %d bytes", cmd, limit),
			map[string]any{"dir": cmd.Dir})
	}

	result := "success"
	if out.Err != nil {
		out.Stdout = ""
		result = strings.ToLower(string(errors.CodeOf(out.Err)))
		slog.Debug("command failed",
			slog.String("command", cmd.String()),
			slog.String("dir", cmd.Dir),
			slog.Duration("elapsed", elapsed),
			slog.String("error", out.ErrorMessage()))
	}
	processRunsTotal.WithLabelValues(cmd.Name, result).Inc()
	processRunDuration.WithLabelValues(cmd.Name).Observe(elapsed.Seconds())

	return out
}

func failure(cmd Command, err error, stderr string) error {
	code := errors.ErrCodeInternal
	if stderrors.Is(err, exec.ErrNotFound) {
		code = errors.ErrCodeNotFound
	}
	msg := fmt.Sprintf("%s: %v", cmd, err)
	if stderr != "" {
		msg = fmt.Sprintf("%s: %s", msg, firstLine(stderr))
	}
	return errors.NewWithContext(code, msg, map[string]any{"dir": cmd.Dir})
}

func firstLine(s string) string {
	if i := strings.IndexByte(s, '\n'); i >= 0 {
		return s[:i]
	}
	return s
}

// cappedBuffer keeps at most limit bytes and records whether more arrived.
// It keeps accepting writes so the child never blocks on a full pipe.
type cappedBuffer struct {
	buf      strings.Builder
	limit    int
	overflow bool
}

func (b *cappedBuffer) Write(p []byte) (int, error) {
	room := b.limit - b.buf.Len()
	if room <= 0 {
		if len(p) > 0 {
			b.overflow = true
		}
		return len(p), nil
	}
	if len(p) > room {
		b.buf.Write(p[:room])
		b.overflow = true
		return len(p), nil
	}
	b.buf.Write(p)
	return len(p), nil
}

func (b *cappedBuffer) String() string {
	return b.buf.String()
}
