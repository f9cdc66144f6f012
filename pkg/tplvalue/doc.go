// Copyright 2026 The Tmplkit Authors.
// SPDX-License-Identifier: Apache-2.0

/*
Package tplvalue provides the runtime data a template reads: the Value union
(String, List, Map) and resolution of dotted paths against it.

Map maintains the order in which keys were set (unlike the native Go map).
This flavor of map is crucial in keeping template evaluation deterministic and
stable: iterating a Map in a "for" loop visits entries in their defined order.

A Context is simply a *Map at the top level: variable name to Value. The
engine never mutates a caller's Context; loop bindings are created with
Map.With, which extends a copy.
*/
package tplvalue
