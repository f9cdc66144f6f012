// Copyright 2026 The Tmplkit Authors.
// SPDX-License-Identifier: Apache-2.0

/*
Package charcursor provides the character-level view of a template source that
the scanner consumes: the current character (with a distinguished end-of-buffer
sentinel), single-character advance, and mark/capture of spans.

The Cursor interface is the capability the engine depends on; StringCursor is
the in-memory implementation used for template sources that are fully
materialized as strings.
*/
package charcursor
