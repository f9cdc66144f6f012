// Copyright 2026 The Tmplkit Authors.
// SPDX-License-Identifier: Apache-2.0

/*
Package filepos provides the concept of Position: a source name (usually a
file), a line/column pair, and a byte offset within that source; and of Span: a
contiguous range of source text between two Positions, along with the raw
characters it covers.

Positions are crucial when reporting where a template construct came from;
Spans additionally let a token or node reproduce the exact text it was scanned
from.

Not all Positions point within a source (e.g. spans synthesized during partial
evaluation). The zero-value of Position (can be created using
NewUnknownPosition()) represents this case.
*/
package filepos
