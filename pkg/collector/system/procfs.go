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

package system

import (
	"fmt"
	"io/fs"
	"strings"
	"unicode/utf8"
)

const procMaxSize = 1 << 20

// procReader parses the small text files under /proc.
type procReader struct {
	fsys    fs.FS
	maxSize int
}

func newProcReader(fsys fs.FS) procReader {
	return procReader{fsys: fsys, maxSize: procMaxSize}
}

// lines returns the trimmed, non-empty lines of name.
func (r procReader) lines(name string) ([]string, error) {
	b, err := fs.ReadFile(r.fsys, name)
	if err != nil {
		return nil, fmt.Errorf("failed to read %q: %w", name, err)
	}
	if len(b) > r.maxSize {
		return nil, fmt.Errorf("%q exceeds maximum size of %d bytes", name, r.maxSize)
	}
	if !utf8.Valid(b) {
		return nil, fmt.Errorf("content of %q is not valid UTF-8", name)
	}

	parts := strings.Split(string(b), "\n")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out, nil
}

// fields returns the whitespace separated fields of the first line of name.
func (r procReader) fields(name string) ([]string, error) {
	lines, err := r.lines(name)
	if err != nil {
		return nil, err
	}
	if len(lines) == 0 {
		return nil, fmt.Errorf("%q is empty", name)
	}
	return strings.Fields(lines[0]), nil
}

// keyValues splits each line of name at the first delim. Lines without
// delim are skipped.
func (r procReader) keyValues(name, delim string) (map[string]string, error) {
	lines, err := r.lines(name)
	if err != nil {
		return nil, err
	}
	out := make(map[string]string, len(lines))
	for _, l := range lines {
		k, v, ok := strings.Cut(l, delim)
		if !ok {
			continue
		}
		out[strings.TrimSpace(k)] = strings.TrimSpace(v)
	}
	return out, nil
}
