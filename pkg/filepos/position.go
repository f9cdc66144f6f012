// Copyright 2026 The Tmplkit Authors.
// SPDX-License-Identifier: Apache-2.0

package filepos

import (
	"fmt"
)

type Position struct {
	lineNum int // 1 based
	colNum  int // 1 based
	offset  int // 0 based, in bytes
	file    string
	known   bool
}

func NewPosition(lineNum, colNum, offset int) *Position {
	if lineNum <= 0 || colNum <= 0 {
		panic("Lines and columns are 1 based")
	}
	if offset < 0 {
		panic("Offsets are 0 based")
	}
	return &Position{lineNum: lineNum, colNum: colNum, offset: offset, known: true}
}

// NewPositionInFile returns the Position at "lineNum:colNum" (byte offset
// "offset") within the source "file".
func NewPositionInFile(lineNum, colNum, offset int, file string) *Position {
	p := NewPosition(lineNum, colNum, offset)
	p.file = file
	return p
}

// NewUnknownPosition is equivalent of zero value *Position
func NewUnknownPosition() *Position {
	return &Position{}
}

func (p *Position) SetFile(file string) { p.file = file }

func (p *Position) IsKnown() bool { return p != nil && p.known }

func (p *Position) LineNum() int {
	if !p.IsKnown() {
		panic("Position is unknown")
	}
	return p.lineNum
}

func (p *Position) ColNum() int {
	if !p.IsKnown() {
		panic("Position is unknown")
	}
	return p.colNum
}

func (p *Position) Offset() int {
	if !p.IsKnown() {
		panic("Position is unknown")
	}
	return p.offset
}

func (p *Position) GetFile() string {
	return p.file
}

func (p *Position) AsString() string {
	return "line " + p.AsCompactString()
}

func (p *Position) AsCompactString() string {
	filePrefix := p.file
	if len(filePrefix) > 0 {
		filePrefix += ":"
	}
	if p.IsKnown() {
		return fmt.Sprintf("%s%d:%d", filePrefix, p.lineNum, p.colNum)
	}
	return fmt.Sprintf("%s?", filePrefix)
}

func (p *Position) DeepCopy() *Position {
	if p == nil {
		return nil
	}
	return &Position{lineNum: p.lineNum, colNum: p.colNum, offset: p.offset, file: p.file, known: p.known}
}

// IsEqual compares the location of one position with another.
func (p *Position) IsEqual(otherPosition *Position) bool {
	if p.IsKnown() != otherPosition.IsKnown() {
		return false
	}
	if !p.IsKnown() {
		return p.GetFile() == otherPosition.GetFile()
	}
	return p.GetFile() == otherPosition.GetFile() &&
		p.lineNum == otherPosition.lineNum &&
		p.colNum == otherPosition.colNum &&
		p.offset == otherPosition.offset
}
