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

package section

// Status tells which variant of a Result is populated.
type Status string

const (
	// StatusOK means Data holds the section payload.
	StatusOK Status = "ok"
	// StatusError means Error holds the failure message.
	StatusError Status = "error"
	// StatusUnavailable means Note explains which tool is missing.
	StatusUnavailable Status = "unavailable"
)

// Payload is the typed data a collector produces. Each section has its own
// payload type; renderers switch on the concrete type.
type Payload interface {
	SectionName() Name
}

// Result is the outcome of one section. Exactly one of Data, Error and Note
// is populated, as selected by Status.
type Result struct {
	Status Status  `json:"status" yaml:"status"`
	Data   Payload `json:"data,omitempty" yaml:"data,omitempty"`
	Error  string  `json:"error,omitempty" yaml:"error,omitempty"`
	Note   string  `json:"note,omitempty" yaml:"note,omitempty"`
}

// OK returns a successful result.
func OK(p Payload) Result {
	return Result{Status: StatusOK, Data: p}
}

// Failed returns an error result.
func Failed(msg string) Result {
	return Result{Status: StatusError, Error: msg}
}

// Unavailable returns a result for a section whose tool is missing.
func Unavailable(note string) Result {
	return Result{Status: StatusUnavailable, Note: note}
}

// IsOK reports whether the section produced data.
func (r Result) IsOK() bool {
	return r.Status == StatusOK
}

// IsError reports whether the section failed.
func (r Result) IsError() bool {
	return r.Status == StatusError
}

// IsUnavailable reports whether the section's tool was missing.
func (r Result) IsUnavailable() bool {
	return r.Status == StatusUnavailable
}
