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

package fix

import (
	"bytes"
	"errors"
	"fmt"
	"go/ast"
	"go/printer"
	"go/token"
	"go/types"
	"strconv"
	"sync"

	"golang.org/x/tools/go/analysis"
	"golang.org/x/tools/go/ast/inspector"
)

// ErrNoSource is returned when the source of a file can't be read.
var ErrNoSource = errors.New("source not available")

var rawcfg = &printer.Config{Mode: printer.RawFormat}

// Env gives repair builders access to the syntax, types and source text of one pass.
// It is safe for concurrent use.
type Env struct {
	Fset *token.FileSet
	Info *types.Info
	Pkg  *types.Package

	files    map[*token.File]*ast.File
	readFile func(filename string) ([]byte, error)

	mu  sync.Mutex
	src map[string][]byte
}

// NewEnv creates an [Env] for an analysis pass.
func NewEnv(p *analysis.Pass) *Env {
	files := make(map[*token.File]*ast.File, len(p.Files))
	for _, f := range p.Files {
		if tf := p.Fset.File(f.FileStart); tf != nil {
			files[tf] = f
		}
	}

	return &Env{
		Fset:     p.Fset,
		Info:     p.TypesInfo,
		Pkg:      p.Pkg,
		files:    files,
		readFile: p.ReadFile,
	}
}

// File returns the syntax tree of the file containing pos.
func (e *Env) File(pos token.Pos) *ast.File {
	return e.files[e.Fset.File(pos)]
}

// source returns the content of the file containing pos.
func (e *Env) source(pos token.Pos) (*token.File, []byte, error) {
	tf := e.Fset.File(pos)
	if tf == nil || e.readFile == nil {
		return nil, nil, ErrNoSource
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	if src, ok := e.src[tf.Name()]; ok {
		return tf, src, nil
	}

	src, err := e.readFile(tf.Name())
	if err != nil {
		return nil, nil, fmt.Errorf("%w: %w", ErrNoSource, err)
	}

	if len(src) != tf.Size() {
		return nil, nil, fmt.Errorf("%w: %s changed", ErrNoSource, tf.Name())
	}

	if e.src == nil {
		e.src = make(map[string][]byte)
	}
	e.src[tf.Name()] = src

	return tf, src, nil
}

// Text returns the source text between pos and end, falling back to printing
// node when the source is not available.
func (e *Env) Text(node ast.Node) (string, error) {
	return e.TextRange(node.Pos(), node.End(), node)
}

// TextRange returns the source text between pos and end.
func (e *Env) TextRange(pos, end token.Pos, fallback ast.Node) (string, error) {
	tf, src, err := e.source(pos)
	if err != nil {
		if fallback == nil {
			return "", err
		}

		return e.Render(fallback)
	}

	return string(src[tf.Offset(pos):tf.Offset(end)]), nil
}

// Render prints node in its original layout.
func (e *Env) Render(node ast.Node) (string, error) {
	var buf bytes.Buffer
	if err := rawcfg.Fprint(&buf, e.Fset, node); err != nil {
		return "", err
	}

	return buf.String(), nil
}

// ImportName returns the name under which file imports path.
func ImportName(file *ast.File, path string) (string, bool) {
	if file == nil {
		return "", false
	}

	for _, spec := range file.Imports {
		p, err := strconv.Unquote(spec.Path.Value)
		if err != nil || p != path {
			continue
		}

		switch {
		case spec.Name == nil:
			return defaultImportName(path), true

		case spec.Name.Name == "_", spec.Name.Name == ".":
			return "", false

		default:
			return spec.Name.Name, true
		}
	}

	return "", false
}

func defaultImportName(path string) string {
	for i := len(path) - 1; i >= 0; i-- {
		if path[i] == '/' {
			return path[i+1:]
		}
	}

	return path
}

// StmtRange returns the range removing the statement at c, extended to whole
// lines when the statement is the only one on its lines. Blank lines
// separating it from the next statement are removed with it; the last
// statement of a block takes the blank lines before it instead.
func (e *Env) StmtRange(c inspector.Cursor) (pos, end token.Pos) {
	stmt := c.Node()
	pos, end = stmt.Pos(), stmt.End()

	tf := e.Fset.File(pos)
	if tf == nil {
		return pos, end
	}

	prevEnd, nextPos := token.NoPos, token.NoPos
	if prev, ok := c.PrevSibling(); ok {
		prevEnd = prev.Node().End()
	}

	last := false
	if next, ok := c.NextSibling(); ok {
		nextPos = next.Node().Pos()
	} else {
		last = true
	}

	if !prevEnd.IsValid() || !nextPos.IsValid() {
		switch parent := c.Parent().Node().(type) {
		case *ast.BlockStmt:
			if !prevEnd.IsValid() {
				prevEnd = parent.Lbrace + 1
			}
			if !nextPos.IsValid() {
				nextPos = parent.Rbrace
			}

		case *ast.CaseClause:
			if !prevEnd.IsValid() {
				prevEnd = parent.Colon + 1
			}
			if !nextPos.IsValid() {
				nextPos = clauseEnd(c.Parent())
			}

		case *ast.CommClause:
			if !prevEnd.IsValid() {
				prevEnd = parent.Colon + 1
			}
			if !nextPos.IsValid() {
				nextPos = clauseEnd(c.Parent())
			}
		}
	}

	startLine, endLine := tf.Line(pos), tf.Line(end)

	if !prevEnd.IsValid() || tf.Line(prevEnd) >= startLine ||
		!nextPos.IsValid() || tf.Line(nextPos) <= endLine || endLine >= tf.LineCount() {
		return pos, end
	}

	pos, end = tf.LineStart(startLine), tf.LineStart(endLine+1)

	_, src, err := e.source(pos)
	if err != nil {
		return pos, end
	}

	if last {
		for l := startLine - 1; l > tf.Line(prevEnd) && blankLine(tf, src, l); l-- {
			pos = tf.LineStart(l)
		}

		return pos, end
	}

	for l := endLine + 1; l < tf.Line(nextPos) && blankLine(tf, src, l); l++ {
		end = tf.LineStart(l + 1)
	}

	return pos, end
}

// blankLine reports whether line of tf contains only white space.
func blankLine(tf *token.File, src []byte, line int) bool {
	start := tf.Offset(tf.LineStart(line))

	stop := len(src)
	if line < tf.LineCount() {
		stop = tf.Offset(tf.LineStart(line + 1))
	}

	return len(bytes.TrimSpace(src[start:stop])) == 0
}

// clauseEnd returns the start of the clause following c, or the closing brace of the switch body.
func clauseEnd(c inspector.Cursor) token.Pos {
	if next, ok := c.NextSibling(); ok {
		return next.Node().Pos()
	}

	if body, ok := c.Parent().Node().(*ast.BlockStmt); ok {
		return body.Rbrace
	}

	return token.NoPos
}
