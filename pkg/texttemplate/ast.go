// Copyright 2026 The Tmplkit Authors.
// SPDX-License-Identifier: Apache-2.0

package texttemplate

import (
	"github.com/tmplkit/tmplkit/pkg/filepos"
)

// Expr is a node of the parsed template tree. Nodes are immutable once
// built; partial evaluation produces new trees, never mutates in place.
//
// IsFree reports whether the subtree contains no variable reference requiring
// resolution, i.e. evaluating it is pure literal passthrough.
type Expr interface {
	IsFree() bool
}

// NodeRaw is literal text, either scanned as-is (including degraded
// interpolations) or baked in by partial evaluation.
type NodeRaw struct {
	Content string
	Span    filepos.Span
}

// NodeInvalid holds a malformed statement tag; it evaluates to the text the
// tag was scanned from.
type NodeInvalid struct {
	Token *InvalidExprToken
}

// NodeUnexpected wraps a token the parser could not place (a stray closer, or
// a loop opener past the nesting cap); it evaluates to the token's canonical
// text.
type NodeUnexpected struct {
	Token Token
}

type NodeUse struct {
	Token *UseToken
}

type NodeFor struct {
	Start *ForStartToken
	End   *ForEndToken
	Body  Expr
}

type NodeConcat struct {
	Items []Expr
}

var _ = []Expr{&NodeRaw{}, &NodeInvalid{}, &NodeUnexpected{}, &NodeUse{}, &NodeFor{}, &NodeConcat{}}

func (n *NodeRaw) IsFree() bool        { return true }
func (n *NodeInvalid) IsFree() bool    { return true }
func (n *NodeUnexpected) IsFree() bool { return true }
func (n *NodeUse) IsFree() bool        { return false }
func (n *NodeFor) IsFree() bool        { return false }

func (n *NodeConcat) IsFree() bool {
	for _, item := range n.Items {
		if !item.IsFree() {
			return false
		}
	}
	return true
}

// NewConcat collapses a single expression to itself and wraps two or more in
// a NodeConcat. Calling it with zero expressions is a precondition violation
// and reported as ErrEmptyConcat.
func NewConcat(items []Expr) (Expr, error) {
	switch len(items) {
	case 0:
		return nil, ErrEmptyConcat
	case 1:
		return items[0], nil
	default:
		return &NodeConcat{Items: items}, nil
	}
}
