// Copyright 2026 The Tmplkit Authors.
// SPDX-License-Identifier: Apache-2.0

package texttemplate

import (
	"fmt"

	"github.com/tmplkit/tmplkit/pkg/filepos"
	"github.com/tmplkit/tmplkit/pkg/tplvalue"
)

// PartialRender performs residual substitution: references resolvable in
// "ctx" are baked into the returned tree as literal text, everything else is
// preserved so the result can be rendered again later with more bindings.
// The input tree is never modified.
//
// Unlike Render, a loop whose target is unresolved or a string is returned
// unchanged rather than degraded to its canonical text: it stays a live
// construct for a later pass. A resolvable loop is unrolled into the
// concatenation of its per-iteration residuals; the loop wrapper is
// discarded, so the transform is one-way.
func PartialRender(expr Expr, ctx *tplvalue.Map) Expr {
	switch node := expr.(type) {
	case *NodeRaw, *NodeInvalid, *NodeUnexpected:
		return expr

	case *NodeConcat:
		newItems := make([]Expr, 0, len(node.Items))
		for _, item := range node.Items {
			newItems = append(newItems, PartialRender(item, ctx))
		}
		result, err := NewConcat(newItems)
		if err != nil {
			panic(err)
		}
		return result

	case *NodeUse:
		val, found := tplvalue.Resolve(ctx, node.Token.Path.Parts)
		if !found {
			return node
		}
		if typedVal, ok := val.(tplvalue.String); ok {
			// the resolved text takes over the reference's original span
			return &NodeRaw{Content: string(typedVal), Span: node.Token.Span}
		}
		// composites cannot be interpolated; keep the reference
		return node

	case *NodeFor:
		return substFor(node, ctx)

	default:
		panic(fmt.Sprintf("unknown template node %T", node))
	}
}

func substFor(node *NodeFor, ctx *tplvalue.Map) Expr {
	varName := node.Start.Var.Name

	val, found := tplvalue.Resolve(ctx, node.Start.Path.Parts)
	if !found {
		return node
	}

	switch typedVal := val.(type) {
	case tplvalue.String:
		return node

	case tplvalue.List:
		iterations := make([]Expr, 0, len(typedVal))
		for _, item := range typedVal {
			iterations = append(iterations, PartialRender(node.Body, ctx.With(varName, item)))
		}
		return unrolled(iterations, node)

	case *tplvalue.Map:
		iterations := make([]Expr, 0, typedVal.Len())
		typedVal.Iterate(func(k string, v tplvalue.Value) {
			iterations = append(iterations, PartialRender(node.Body, ctx.With(varName, entryRecord(k, v))))
		})
		return unrolled(iterations, node)

	default:
		panic(fmt.Sprintf("unknown value type %T", typedVal))
	}
}

func unrolled(iterations []Expr, node *NodeFor) Expr {
	if len(iterations) == 0 {
		// a loop over an empty collection leaves no residue
		return &NodeRaw{Span: filepos.NewEmptySpan(node.Start.Span.Start())}
	}
	result, err := NewConcat(iterations)
	if err != nil {
		panic(err)
	}
	return result
}
