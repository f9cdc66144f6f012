// Copyright 2026 The Tmplkit Authors.
// SPDX-License-Identifier: Apache-2.0

package filepos

// Span is a captured range of source text: the raw characters between a start
// and an end Position. Spans are value types and are never mutated after
// capture.
type Span struct {
	start *Position
	end   *Position
	text  string
}

func NewSpan(start, end *Position, text string) Span {
	return Span{start: start, end: end, text: text}
}

// NewEmptySpan returns a Span covering no characters at "pos".
func NewEmptySpan(pos *Position) Span {
	return Span{start: pos, end: pos}
}

func (s Span) Start() *Position {
	if s.start == nil {
		return NewUnknownPosition()
	}
	return s.start
}

func (s Span) End() *Position {
	if s.end == nil {
		return NewUnknownPosition()
	}
	return s.end
}

// Text returns the raw characters the span covers.
func (s Span) Text() string { return s.text }

func (s Span) IsEmpty() bool { return len(s.text) == 0 }
