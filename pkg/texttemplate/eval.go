// Copyright 2026 The Tmplkit Authors.
// SPDX-License-Identifier: Apache-2.0

package texttemplate

import (
	"fmt"
	"strings"

	"github.com/tmplkit/tmplkit/pkg/tplvalue"
)

// Render performs full substitution of "expr" against "ctx" and returns the
// resulting text. It is a pure function: the tree and the context are read,
// never modified, so concurrent Renders over shared inputs are safe.
//
// An unresolved variable reference round-trips as its canonical "{{ path }}"
// markup; it neither errors nor blanks out. A reference that resolves to a
// composite (map or list) does the same: composite values cannot be
// interpolated directly.
func Render(expr Expr, ctx *tplvalue.Map) string {
	var result strings.Builder
	renderInto(&result, expr, ctx)
	return result.String()
}

func renderInto(result *strings.Builder, expr Expr, ctx *tplvalue.Map) {
	switch node := expr.(type) {
	case *NodeRaw:
		result.WriteString(node.Content)

	case *NodeInvalid:
		result.WriteString(node.Token.CanonicalText())

	case *NodeUnexpected:
		result.WriteString(node.Token.CanonicalText())

	case *NodeConcat:
		for _, item := range node.Items {
			renderInto(result, item, ctx)
		}

	case *NodeUse:
		val, found := tplvalue.Resolve(ctx, node.Token.Path.Parts)
		if !found {
			result.WriteString(node.Token.CanonicalText())
			return
		}
		switch typedVal := val.(type) {
		case tplvalue.String:
			result.WriteString(string(typedVal))
		default:
			result.WriteString(node.Token.CanonicalText())
		}

	case *NodeFor:
		renderFor(result, node, ctx)

	default:
		panic(fmt.Sprintf("unknown template node %T", node))
	}
}

func renderFor(result *strings.Builder, node *NodeFor, ctx *tplvalue.Map) {
	varName := node.Start.Var.Name

	val, found := tplvalue.Resolve(ctx, node.Start.Path.Parts)
	if !found {
		renderForVerbatim(result, node, ctx)
		return
	}

	switch typedVal := val.(type) {
	case tplvalue.String:
		// strings are not iterable
		renderForVerbatim(result, node, ctx)

	case tplvalue.List:
		for _, item := range typedVal {
			renderInto(result, node.Body, ctx.With(varName, item))
		}

	case *tplvalue.Map:
		typedVal.Iterate(func(k string, v tplvalue.Value) {
			renderInto(result, node.Body, ctx.With(varName, entryRecord(k, v)))
		})

	default:
		panic(fmt.Sprintf("unknown value type %T", typedVal))
	}
}

// renderForVerbatim shows the loop construct around a single body pass that
// does not bind the loop variable.
func renderForVerbatim(result *strings.Builder, node *NodeFor, ctx *tplvalue.Map) {
	result.WriteString(node.Start.CanonicalText())
	renderInto(result, node.Body, ctx)
	result.WriteString(node.End.CanonicalText())
}

// entryRecord is the synthetic value a loop variable is bound to when
// iterating a map: a two-field record of the entry's key and value.
func entryRecord(key string, value tplvalue.Value) *tplvalue.Map {
	return tplvalue.NewMapWithItems([]tplvalue.MapItem{
		{Key: "key", Value: tplvalue.String(key)},
		{Key: "value", Value: value},
	})
}
