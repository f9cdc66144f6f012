// Copyright 2026 The Tmplkit Authors.
// SPDX-License-Identifier: Apache-2.0

package texttemplate

import (
	"unicode"

	"github.com/tmplkit/tmplkit/pkg/charcursor"
)

// Scanner converts a character stream into Tokens, holding exactly one
// current token at a time (single-token lookahead).
//
// Malformed markup never fails a scan. A "{{" construct that does not parse
// through its closing "}}" is re-classified wholesale as a RawToken; a "{%"
// construct that does not parse is captured as an InvalidExprToken. In both
// cases the span runs from the construct opener to wherever recognition
// stopped, and scanning resumes normally after it.
type Scanner struct {
	cursor charcursor.Cursor
	curr   Token
}

func NewScanner(cursor charcursor.Cursor) *Scanner {
	s := &Scanner{cursor: cursor}
	s.curr = s.next()
	return s
}

func (s *Scanner) Current() Token { return s.curr }

// Advance moves to the next token. The EOF token is terminal: advancing past
// it is a no-op.
func (s *Scanner) Advance() {
	if _, eof := s.curr.(*EOFToken); eof {
		return
	}
	s.curr = s.next()
}

func (s *Scanner) next() Token {
	start := s.cursor.Mark()

	switch s.cursor.Current() {
	case charcursor.EOFRune:
		return &EOFToken{Span: s.cursor.Capture(start)}

	case '{':
		s.cursor.Advance()
		switch s.cursor.Current() {
		case '{':
			s.cursor.Advance()
			return s.scanInterpolation(start)
		case '%':
			s.cursor.Advance()
			return s.scanStatement(start)
		}
		// a lone '{' joins the raw run
	}

	return s.scanRaw(start)
}

// scanRaw accumulates characters until end-of-input or the next '{'.
func (s *Scanner) scanRaw(start charcursor.Mark) Token {
	for {
		c := s.cursor.Current()
		if c == charcursor.EOFRune || c == '{' {
			break
		}
		s.cursor.Advance()
	}
	return &RawToken{Span: s.cursor.Capture(start)}
}

// scanInterpolation recognizes the remainder of a "{{" construct. On any
// failure the whole span degrades to a RawToken.
func (s *Scanner) scanInterpolation(start charcursor.Mark) Token {
	s.skipWhitespace()

	path, ok := s.scanLongId()
	if !ok {
		return &RawToken{Span: s.cursor.Capture(start)}
	}

	s.skipWhitespace()

	if !s.expect('}') || !s.expect('}') {
		return &RawToken{Span: s.cursor.Capture(start)}
	}

	return &UseToken{Path: path, Span: s.cursor.Capture(start)}
}

// scanStatement recognizes the remainder of a "{%" construct. On any failure
// the whole span is captured as an InvalidExprToken: unlike a broken
// interpolation, a broken statement tag keeps the signal that a tag was
// intended here.
func (s *Scanner) scanStatement(start charcursor.Mark) Token {
	s.skipWhitespace()

	keyword, ok := s.scanId()
	if !ok {
		return s.invalidExpr(start)
	}

	switch keyword.Name {
	case "for":
		return s.scanForHeader(start)

	case "endfor":
		if !s.finishTag() {
			return s.invalidExpr(start)
		}
		return &ForEndToken{Span: s.cursor.Capture(start)}

	case "if", "elif":
		path, ok := s.scanPathHeader()
		if !ok {
			return s.invalidExpr(start)
		}
		span := s.cursor.Capture(start)
		if keyword.Name == "if" {
			return &IfToken{Path: path, Span: span}
		}
		return &ElifToken{Path: path, Span: span}

	case "else":
		if !s.finishTag() {
			return s.invalidExpr(start)
		}
		return &ElseToken{Span: s.cursor.Capture(start)}

	case "endif":
		if !s.finishTag() {
			return s.invalidExpr(start)
		}
		return &IfEndToken{Span: s.cursor.Capture(start)}

	default:
		// includes "in" outside a for header
		return s.invalidExpr(start)
	}
}

func (s *Scanner) scanForHeader(start charcursor.Mark) Token {
	s.skipWhitespace()

	varId, ok := s.scanId()
	if !ok {
		return s.invalidExpr(start)
	}

	s.skipWhitespace()

	inKeyword, ok := s.scanId()
	if !ok || inKeyword.Name != "in" {
		return s.invalidExpr(start)
	}

	path, ok := s.scanPathHeader()
	if !ok {
		return s.invalidExpr(start)
	}

	return &ForStartToken{Var: varId, Path: path, Span: s.cursor.Capture(start)}
}

// scanPathHeader reads "whitespace* long-id whitespace* %}".
func (s *Scanner) scanPathHeader() (LongId, bool) {
	s.skipWhitespace()

	path, ok := s.scanLongId()
	if !ok {
		return LongId{}, false
	}

	if !s.finishTag() {
		return LongId{}, false
	}

	return path, true
}

// finishTag reads "whitespace* %}".
func (s *Scanner) finishTag() bool {
	s.skipWhitespace()
	return s.expect('%') && s.expect('}')
}

func (s *Scanner) invalidExpr(start charcursor.Mark) Token {
	return &InvalidExprToken{Span: s.cursor.Capture(start)}
}

// scanLongId reads a dotted path greedily: "id ('.' id)*". A trailing '.'
// not followed by an identifier is left unconsumed. Zero identifiers read is
// reported as absence, not an error.
func (s *Scanner) scanLongId() (LongId, bool) {
	start := s.cursor.Mark()

	first, ok := s.scanId()
	if !ok {
		return LongId{}, false
	}

	parts := []string{first.Name}

	for s.cursor.Current() == '.' {
		dotMark := s.cursor.Mark()
		s.cursor.Advance()

		id, ok := s.scanId()
		if !ok {
			s.cursor.Reset(dotMark)
			break
		}
		parts = append(parts, id.Name)
	}

	return NewLongId(parts, s.cursor.Capture(start)), true
}

func (s *Scanner) scanId() (Id, bool) {
	if !isIdentStart(s.cursor.Current()) {
		return Id{}, false
	}

	start := s.cursor.Mark()
	for isIdentCont(s.cursor.Current()) {
		s.cursor.Advance()
	}

	span := s.cursor.Capture(start)
	return Id{Name: span.Text(), Span: span}, true
}

func (s *Scanner) skipWhitespace() {
	for {
		c := s.cursor.Current()
		if c == charcursor.EOFRune || !unicode.IsSpace(c) {
			return
		}
		s.cursor.Advance()
	}
}

func (s *Scanner) expect(expected rune) bool {
	if s.cursor.Current() != expected {
		return false
	}
	s.cursor.Advance()
	return true
}

func isIdentStart(c rune) bool {
	return c == '_' || unicode.IsLetter(c)
}

func isIdentCont(c rune) bool {
	return c == '_' || unicode.IsLetter(c) || unicode.IsDigit(c)
}
