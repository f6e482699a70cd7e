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

package astutil

import (
	"go/ast"
	"go/token"
	"regexp"
	"slices"
	"strings"
)

// Linter is the name of the linter as used in nolint directives.
const Linter = "actorlint"

// CurrentFile holds file information for analysis.
type CurrentFile struct {
	file      *ast.File
	handle    *token.File
	generated bool
}

// NewCurrentFile creates a new [CurrentFile] from a [token.FileSet] and an *[ast.File].
func NewCurrentFile(fset *token.FileSet, file *ast.File) CurrentFile {
	if file == nil {
		return CurrentFile{}
	}

	handle := fset.File(file.FileStart)
	if handle == nil {
		return CurrentFile{}
	}

	generated := ast.IsGenerated(file)

	return CurrentFile{file, handle, generated}
}

// Valid returns true if the [CurrentFile] was successfully created
// from a valid file handle.
func (c CurrentFile) Valid() bool {
	return c.handle != nil
}

// Generated returns true if the file is a generated file.
func (c CurrentFile) Generated() bool {
	return c.generated
}

// Contains reports whether pos lies in the file.
func (c CurrentFile) Contains(pos token.Pos) bool {
	return c.file != nil && c.file.FileStart <= pos && pos <= c.file.FileEnd
}

func (c CurrentFile) line(pos token.Pos) int {
	return c.handle.PositionFor(pos, false).Line
}

// Suppressed reports whether a diagnostic of rule id at pos is silenced by a
// nolint directive on its line, on the file's doc comment or on the doc
// comment of the enclosing function declaration.
func (c CurrentFile) Suppressed(pos token.Pos, id string) bool {
	if c.file == nil {
		return false
	}

	if c.NoLintComment(pos, id) {
		return true
	}

	if doc := c.file.Doc; doc != nil && CommentHasNoLint(doc.List[len(doc.List)-1], id) {
		return true
	}

	for _, decl := range c.file.Decls {
		fd, ok := decl.(*ast.FuncDecl)
		if !ok || pos < fd.Pos() || fd.End() <= pos {
			continue
		}

		return fd.Doc != nil && CommentHasNoLint(fd.Doc.List[len(fd.Doc.List)-1], id)
	}

	return false
}

// NoLintComment checks if a line has a //nolint:actorlint or //nolint:<id> comment.
func (c CurrentFile) NoLintComment(pos token.Pos, id string) bool {
	if c.file == nil {
		return false
	}

	line := c.line(pos)

	// find the first comment group ending on or after the line
	i, _ := slices.BinarySearchFunc(c.file.Comments, pos,
		func(c *ast.CommentGroup, p token.Pos) int { return int(c.End() - p) })

	for ; i < len(c.file.Comments); i++ {
		group := c.file.Comments[i]
		if c.line(group.Pos()) > line {
			break
		}

		for _, comment := range group.List {
			if c.line(comment.Pos()) == line && CommentHasNoLint(comment, id) {
				return true
			}
		}
	}

	return false
}

var nolintPattern = regexp.MustCompile(`^//\s*nolint:([a-zA-Z0-9,_-]+)`)

// CommentHasNoLint checks if the provided comment contains a nolint directive
// for this linter, for the rule id or for all linters.
func CommentHasNoLint(comment *ast.Comment, id string) bool {
	matches := nolintPattern.FindStringSubmatch(comment.Text)
	if matches == nil {
		return false
	}

	// Parse comma-separated linter list
	for linter := range strings.SplitSeq(matches[1], ",") {
		l := strings.TrimSpace(linter)
		if strings.EqualFold(l, Linter) || strings.EqualFold(l, "all") || id != "" && strings.EqualFold(l, id) {
			return true
		}
	}

	return false
}
