// Copyright 2026 The Tmplkit Authors.
// SPDX-License-Identifier: Apache-2.0

/*
Package texttemplate implements a minimal template text engine: a scanner that
tokenizes a text/markup-tag mixture, a recursive-descent parser that builds an
immutable tree of nodes, and two evaluators over that tree — Render (full
substitution into a string) and PartialRender (residual substitution into a
new tree, with resolved parts baked in and unresolved parts preserved for a
later pass).

The grammar surface is interpolation, "{{ a.b.c }}", and loops,
"{% for x in a.b %}...{% endfor %}". Malformed markup never aborts a scan:
a broken interpolation degrades to literal text, while a broken statement tag
is kept as a distinguishable invalid-expression token. Both round-trip to
recognizable text when evaluated.

The conditional keywords (if/elif/else/endif) are reserved: they scan, but
Parse reports an UnsupportedConstructError for templates that use them.
*/
package texttemplate
