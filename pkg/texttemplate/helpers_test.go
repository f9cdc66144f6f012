// Copyright 2026 The Tmplkit Authors.
// SPDX-License-Identifier: Apache-2.0

package texttemplate_test

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/k14s/difflib"
	"github.com/stretchr/testify/require"
	"github.com/tmplkit/tmplkit/pkg/filepos"
	"github.com/tmplkit/tmplkit/pkg/texttemplate"
)

func parseTpl(t *testing.T, text string) texttemplate.Expr {
	t.Helper()
	expr, err := texttemplate.NewParser().Parse([]byte(text), "tpl.txt")
	require.NoError(t, err)
	return expr
}

func assertEqual(t *testing.T, resultStr string, expectedStr string) {
	t.Helper()
	if resultStr != expectedStr {
		t.Fatalf("Not equal; diff expected...actual:\n%v\n",
			difflib.PPDiff(strings.Split(expectedStr, "\n"), strings.Split(resultStr, "\n")))
	}
}

// structural equality of template trees: spans carry positions and captured
// whitespace, which canonicalization is allowed to change
var ignoreSpans = cmpopts.IgnoreTypes(filepos.Span{})

func assertExprEqual(t *testing.T, expected, actual texttemplate.Expr) {
	t.Helper()
	if diff := cmp.Diff(expected, actual, ignoreSpans); diff != "" {
		t.Fatalf("Trees not equal; diff expected...actual:\n%v\n", diff)
	}
}
