// Copyright 2026 The Tmplkit Authors.
// SPDX-License-Identifier: Apache-2.0

package tplvalue

// Value is the union of runtime values a template can read: String, List or
// *Map. Values are never mutated by the engine after construction.
type Value interface {
	isValue()
}

type String string

type List []Value

func (String) isValue() {}
func (List) isValue()   {}
func (*Map) isValue()   {}
