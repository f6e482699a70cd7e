// Copyright 2025-2026 Oliver Eikemeier. All Rights Reserved.
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
//
// SPDX-License-Identifier: Apache-2.0

// Package edit applies batches of text edits to source files.
//
// Repairs for independent diagnostics are computed separately and may share
// edits, for example when several of them add the same capability to an actor
// type. Applying them together coalesces identical edits, keeps distinct
// insertions at the same offset in input order and rejects edits that overlap.
//
// The analyzer itself only reports suggested fixes and leaves merging to the
// analysis driver. This package serves the fix tests and tools that collect
// fixes from several diagnostics and write them out in one batch.
package edit

import (
	"bytes"
	"cmp"
	"errors"
	"fmt"
	"go/token"
	"slices"

	"golang.org/x/tools/go/analysis"
)

var (
	// ErrOverlap is returned when two distinct edits overlap.
	ErrOverlap = errors.New("overlapping edits")

	// ErrRange is returned when an edit lies outside the source.
	ErrRange = errors.New("edit out of range")
)

// Edit replaces the bytes [Start, End) of a source with New.
type Edit struct {
	Start, End int
	New        string
}

// String returns a debugging representation of the edit.
func (e Edit) String() string {
	return fmt.Sprintf("[%d,%d)%q", e.Start, e.End, e.New)
}

// FromTextEdits converts analysis edits for the file tf to offset-based edits,
// skipping edits for other files.
func FromTextEdits(tf *token.File, edits []analysis.TextEdit) []Edit {
	result := make([]Edit, 0, len(edits))

	for _, te := range edits {
		end := te.End
		if !end.IsValid() {
			end = te.Pos
		}

		if !inFile(tf, te.Pos) || !inFile(tf, end) {
			continue
		}

		result = append(result, Edit{Start: tf.Offset(te.Pos), End: tf.Offset(end), New: string(te.NewText)})
	}

	return result
}

func inFile(tf *token.File, pos token.Pos) bool {
	return tf.Base() <= int(pos) && int(pos) <= tf.Base()+tf.Size()
}

// Apply applies edits to src and returns the result.
func Apply(src []byte, edits []Edit) ([]byte, error) {
	sorted, err := Normalize(edits, len(src))
	if err != nil {
		return nil, err
	}

	var out bytes.Buffer
	out.Grow(len(src))

	last := 0
	for _, e := range sorted {
		out.Write(src[last:e.Start]) // ignore error
		out.WriteString(e.New)       // ignore error
		last = e.End
	}
	out.Write(src[last:]) // ignore error

	return out.Bytes(), nil
}

// Normalize sorts edits by position, removes duplicates and checks that the
// remaining edits are disjoint and within a source of length size.
func Normalize(edits []Edit, size int) ([]Edit, error) {
	seen := make(map[Edit]struct{}, len(edits))
	unique := make([]Edit, 0, len(edits))

	for _, e := range edits {
		if e.Start < 0 || e.End < e.Start || e.End > size {
			return nil, fmt.Errorf("%w: %v", ErrRange, e)
		}

		if _, ok := seen[e]; ok {
			continue
		}
		seen[e] = struct{}{}

		unique = append(unique, e)
	}

	// Insertions sort before a replacement starting at the same offset.
	slices.SortStableFunc(unique, func(a, b Edit) int {
		return cmp.Or(cmp.Compare(a.Start, b.Start), cmp.Compare(a.End, b.End))
	})

	for i := 1; i < len(unique); i++ {
		prev, cur := unique[i-1], unique[i]
		if prev.End > cur.Start {
			return nil, fmt.Errorf("%w: %v and %v", ErrOverlap, prev, cur)
		}
	}

	return unique, nil
}
