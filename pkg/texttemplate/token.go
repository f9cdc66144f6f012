// Copyright 2026 The Tmplkit Authors.
// SPDX-License-Identifier: Apache-2.0

package texttemplate

import (
	"strings"

	"github.com/tmplkit/tmplkit/pkg/filepos"
)

// Id is an identifier name along with the span it was scanned from.
type Id struct {
	Name string
	Span filepos.Span
}

// LongId is a dotted variable path ("a.b.c"): an ordered, non-empty sequence
// of identifier names plus its overall span.
type LongId struct {
	Parts []string
	Span  filepos.Span
}

func NewLongId(parts []string, span filepos.Span) LongId {
	if len(parts) == 0 {
		panic("LongId must have at least one part")
	}
	return LongId{Parts: parts, Span: span}
}

func (l LongId) String() string {
	return strings.Join(l.Parts, ".")
}

// Token is a lexical unit produced by the Scanner. CanonicalText
// reconstructs syntactically valid markup for the token's kind; for tokens
// that stand for literal or malformed text it is the captured text itself.
type Token interface {
	CanonicalText() string
}

type EOFToken struct {
	Span filepos.Span
}

type RawToken struct {
	Span filepos.Span
}

type InvalidExprToken struct {
	Span filepos.Span
}

type UseToken struct {
	Path LongId
	Span filepos.Span
}

type ForStartToken struct {
	Var  Id
	Path LongId
	Span filepos.Span
}

type ForEndToken struct {
	Span filepos.Span
}

// The conditional family is reserved: scanned, but rejected by the parser.

type IfToken struct {
	Path LongId
	Span filepos.Span
}

type ElifToken struct {
	Path LongId
	Span filepos.Span
}

type ElseToken struct {
	Span filepos.Span
}

type IfEndToken struct {
	Span filepos.Span
}

var _ = []Token{&EOFToken{}, &RawToken{}, &InvalidExprToken{}, &UseToken{},
	&ForStartToken{}, &ForEndToken{}, &IfToken{}, &ElifToken{}, &ElseToken{}, &IfEndToken{}}

func (t *EOFToken) CanonicalText() string { return "" }

func (t *RawToken) CanonicalText() string { return t.Span.Text() }

func (t *InvalidExprToken) CanonicalText() string { return t.Span.Text() }

func (t *UseToken) CanonicalText() string {
	return "{{ " + t.Path.String() + " }}"
}

func (t *ForStartToken) CanonicalText() string {
	return "{% for " + t.Var.Name + " in " + t.Path.String() + " %}"
}

func (t *ForEndToken) CanonicalText() string { return "{% endfor %}" }

func (t *IfToken) CanonicalText() string {
	return "{% if " + t.Path.String() + " %}"
}

func (t *ElifToken) CanonicalText() string {
	return "{% elif " + t.Path.String() + " %}"
}

func (t *ElseToken) CanonicalText() string { return "{% else %}" }

func (t *IfEndToken) CanonicalText() string { return "{% endif %}" }
