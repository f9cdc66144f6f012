// Copyright 2026 The Tmplkit Authors.
// SPDX-License-Identifier: Apache-2.0

package charcursor

import (
	"unicode/utf8"

	"github.com/tmplkit/tmplkit/pkg/filepos"
)

// EOFRune is returned by Current once the cursor has passed the last
// character of its source.
const EOFRune rune = -1

// Mark remembers a point within a source so that the text between it and a
// later cursor position can be captured, or the cursor rewound.
type Mark struct {
	Offset int // 0 based, in bytes
	Line   int // 1 based
	Col    int // 1 based
}

type Cursor interface {
	Current() rune
	Advance()
	Mark() Mark
	Reset(m Mark)
	Capture(m Mark) filepos.Span
}

type StringCursor struct {
	data string
	file string

	offset int
	line   int
	col    int
}

var _ Cursor = &StringCursor{}

func NewStringCursor(data string, associatedName string) *StringCursor {
	return &StringCursor{data: data, file: associatedName, line: 1, col: 1}
}

func (c *StringCursor) Current() rune {
	if c.offset >= len(c.data) {
		return EOFRune
	}
	r, _ := utf8.DecodeRuneInString(c.data[c.offset:])
	return r
}

// Advance moves past the current character. Advancing at the end of the
// buffer is a no-op; the cursor never moves past EOFRune.
func (c *StringCursor) Advance() {
	if c.offset >= len(c.data) {
		return
	}
	r, size := utf8.DecodeRuneInString(c.data[c.offset:])
	c.offset += size
	if r == '\n' {
		c.line++
		c.col = 1
	} else {
		c.col++
	}
}

func (c *StringCursor) Mark() Mark {
	return Mark{Offset: c.offset, Line: c.line, Col: c.col}
}

func (c *StringCursor) Reset(m Mark) {
	c.offset, c.line, c.col = m.Offset, m.Line, m.Col
}

// Capture returns the span of raw text between "m" and the current cursor
// position.
func (c *StringCursor) Capture(m Mark) filepos.Span {
	start := filepos.NewPositionInFile(m.Line, m.Col, m.Offset, c.file)
	end := filepos.NewPositionInFile(c.line, c.col, c.offset, c.file)
	return filepos.NewSpan(start, end, c.data[m.Offset:c.offset])
}
