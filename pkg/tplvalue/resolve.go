// Copyright 2026 The Tmplkit Authors.
// SPDX-License-Identifier: Apache-2.0

package tplvalue

import (
	"fmt"
	"strconv"
)

// Resolve walks "path" (the segments of a dotted variable path) starting at
// "ctx". Map values are looked up by key; List values are indexed by a
// non-negative decimal segment; String values have no children. Any miss
// reports unresolved via the second return value, never an error.
func Resolve(ctx *Map, path []string) (Value, bool) {
	if ctx == nil {
		return nil, false
	}

	var curr Value = ctx

	for _, segment := range path {
		switch typedCurr := curr.(type) {
		case *Map:
			val, found := typedCurr.Get(segment)
			if !found {
				return nil, false
			}
			curr = val

		case List:
			idx, err := strconv.ParseUint(segment, 10, 32)
			if err != nil || idx >= uint64(len(typedCurr)) {
				return nil, false
			}
			curr = typedCurr[idx]

		case String:
			return nil, false

		default:
			panic(fmt.Sprintf("unknown value type %T", typedCurr))
		}
	}

	return curr, true
}
