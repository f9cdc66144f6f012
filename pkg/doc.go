// Copyright 2026 The Tmplkit Authors.
// SPDX-License-Identifier: Apache-2.0

/*
Package pkg is the collection of packages that make up the implementation of
tmplkit.

The codebase is organized into well-defined layers, leaves first:

# Source positions

Positions and spans tie every token and node back to the text it was scanned
from.

	pkg/filepos

# Character cursor

The scanner does not read text directly; it consumes a cursor exposing the
current character, single-character advance, and mark/capture of spans.

	pkg/charcursor

# Value model

The runtime data a template reads: strings, insertion-ordered maps and lists,
and dotted-path resolution over them.

	pkg/tplvalue

# The engine

Scanner, parser, and the two evaluators (full and partial substitution).

	pkg/texttemplate
*/
package pkg
