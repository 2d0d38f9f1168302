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

package errors

import (
	"errors"
	"fmt"
	"testing"
)

func TestNew(t *testing.T) {
	err := New(ErrCodeNotFound, "directory not found")
	if err == nil {
		t.Fatal("expected error, got nil")
	}
	if err.Code != ErrCodeNotFound {
		t.Errorf("expected code %s, got %s", ErrCodeNotFound, err.Code)
	}
	if err.Message != "directory not found" {
		t.Errorf("expected message 'directory not found', got %s", err.Message)
	}
	if err.Cause != nil {
		t.Errorf("expected nil cause, got %v", err.Cause)
	}
}

func TestWrapWithContext(t *testing.T) {
	cause := errors.New("signal: killed")
	ctx := map[string]any{
		"command": "git status --porcelain",
		"dir":     "/home/dev/git/api",
	}

	err := WrapWithContext(ErrCodeTimeout, "git timed out", cause, ctx)

	if err.Code != ErrCodeTimeout {
		t.Errorf("expected code %s, got %s", ErrCodeTimeout, err.Code)
	}
	if err.Context == nil {
		t.Fatal("expected context to be set")
	}
	if err.Context["dir"] != "/home/dev/git/api" {
		t.Errorf("expected dir to be /home/dev/git/api")
	}
	if !errors.Is(err, cause) {
		t.Errorf("expected cause to be wrapped")
	}
}

func TestError(t *testing.T) {
	tests := []struct {
		name     string
		err      *StructuredError
		expected string
	}{
		{
			name:     "error without cause",
			err:      New(ErrCodeUnavailable, "kubectl not installed"),
			expected: "[UNAVAILABLE] kubectl not installed",
		},
		{
			name:     "error with cause",
			err:      Wrap(ErrCodeInternal, "failed", errors.New("root cause")),
			expected: "[INTERNAL] failed: root cause",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.err.Error()
			if got != tt.expected {
				t.Errorf("expected %q, got %q", tt.expected, got)
			}
		})
	}
}

func TestCodeOf(t *testing.T) {
	wrapped := fmt.Errorf("calendar: %w", New(ErrCodeUnavailable, "gcalcli not installed"))

	if got := CodeOf(wrapped); got != ErrCodeUnavailable {
		t.Errorf("expected %s, got %q", ErrCodeUnavailable, got)
	}
	if !IsUnavailable(wrapped) {
		t.Error("expected wrapped error to be unavailable")
	}
	if got := CodeOf(errors.New("plain")); got != "" {
		t.Errorf("expected empty code, got %q", got)
	}
	if IsUnavailable(nil) {
		t.Error("nil must not be unavailable")
	}
}

func TestDescribe(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected string
	}{
		{"nil", nil, ""},
		{"plain", errors.New("boom"), "boom"},
		{"structured", New(ErrCodeUpstream, "HTTP 503: busy"), "HTTP 503: busy"},
		{
			name:     "nested structured",
			err:      Wrap(ErrCodeInternal, "kubectl failed", New(ErrCodeTimeout, "timed out after 15s")),
			expected: "kubectl failed: timed out after 15s",
		},
		{
			name:     "structured below plain",
			err:      fmt.Errorf("weather: %w", New(ErrCodeUpstream, "HTTP 500")),
			expected: "weather: [UPSTREAM] HTTP 500",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Describe(tt.err); got != tt.expected {
				t.Errorf("expected %q, got %q", tt.expected, got)
			}
		})
	}
}

func TestErrorCodes(t *testing.T) {
	codes := []ErrorCode{
		ErrCodeNotFound,
		ErrCodeTimeout,
		ErrCodeInternal,
		ErrCodeInvalidRequest,
		ErrCodeUpstream,
		ErrCodeUnavailable,
	}

	seen := make(map[ErrorCode]bool)
	for _, code := range codes {
		if string(code) == "" {
			t.Errorf("error code should not be empty: %v", code)
		}
		if seen[code] {
			t.Errorf("duplicate error code: %v", code)
		}
		seen[code] = true
	}
}

func TestRecover(t *testing.T) {
	if err := Recover("noop", func() {}); err != nil {
		t.Fatalf("expected nil, got %v", err)
	}

	err := Recover("git status", func() { panic("boom") })
	if err == nil {
		t.Fatal("expected error from panic, got nil")
	}
	if CodeOf(err) != ErrCodeInternal {
		t.Errorf("expected code %s, got %s", ErrCodeInternal, CodeOf(err))
	}
	if got, want := Describe(err), "git status panicked: boom"; got != want {
		t.Errorf("expected %q, got %q", want, got)
	}
}
