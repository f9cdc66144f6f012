// Copyright 2026 The Tmplkit Authors.
// SPDX-License-Identifier: Apache-2.0

package texttemplate_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tmplkit/tmplkit/pkg/charcursor"
	"github.com/tmplkit/tmplkit/pkg/texttemplate"
)

func scanAll(t *testing.T, input string) []texttemplate.Token {
	t.Helper()

	scanner := texttemplate.NewScanner(charcursor.NewStringCursor(input, "tpl.txt"))

	var tokens []texttemplate.Token
	for {
		tok := scanner.Current()
		tokens = append(tokens, tok)
		if _, eof := tok.(*texttemplate.EOFToken); eof {
			return tokens
		}
		scanner.Advance()
	}
}

func TestScanEmptyInput(t *testing.T) {
	tokens := scanAll(t, "")
	require.Len(t, tokens, 1)

	eof, ok := tokens[0].(*texttemplate.EOFToken)
	require.True(t, ok)
	assert.True(t, eof.Span.IsEmpty())
	assert.Equal(t, "", eof.CanonicalText())
}

func TestScanEOFIsTerminal(t *testing.T) {
	scanner := texttemplate.NewScanner(charcursor.NewStringCursor("", ""))

	scanner.Advance()
	scanner.Advance()
	_, ok := scanner.Current().(*texttemplate.EOFToken)
	assert.True(t, ok)
}

func TestScanRawOnly(t *testing.T) {
	tokens := scanAll(t, "plain text, no tags\nsecond line")
	require.Len(t, tokens, 2)

	raw, ok := tokens[0].(*texttemplate.RawToken)
	require.True(t, ok)
	assert.Equal(t, "plain text, no tags\nsecond line", raw.CanonicalText())
}

func TestScanRawSplitsAtBraces(t *testing.T) {
	tokens := scanAll(t, "a{b")
	require.Len(t, tokens, 3)

	assert.Equal(t, "a", tokens[0].(*texttemplate.RawToken).CanonicalText())
	assert.Equal(t, "{b", tokens[1].(*texttemplate.RawToken).CanonicalText())
}

func TestScanUse(t *testing.T) {
	tokens := scanAll(t, "{{ user.email }}")
	require.Len(t, tokens, 2)

	use, ok := tokens[0].(*texttemplate.UseToken)
	require.True(t, ok)
	assert.Equal(t, []string{"user", "email"}, use.Path.Parts)
	assert.Equal(t, "{{ user.email }}", use.CanonicalText())
	assert.Equal(t, "{{ user.email }}", use.Span.Text())
}

func TestScanUseCanonicalizesWhitespace(t *testing.T) {
	tokens := scanAll(t, "{{name}}")
	require.Len(t, tokens, 2)

	use, ok := tokens[0].(*texttemplate.UseToken)
	require.True(t, ok)
	assert.Equal(t, "{{ name }}", use.CanonicalText())
	assert.Equal(t, "{{name}}", use.Span.Text())
}

func TestScanUseSurroundedByText(t *testing.T) {
	tokens := scanAll(t, "Hello {{ name }}!")
	require.Len(t, tokens, 4)

	assert.IsType(t, &texttemplate.RawToken{}, tokens[0])
	assert.IsType(t, &texttemplate.UseToken{}, tokens[1])
	assert.IsType(t, &texttemplate.RawToken{}, tokens[2])
	assert.Equal(t, "!", tokens[2].CanonicalText())
}

func TestScanMalformedUseDegradesToRaw(t *testing.T) {
	for input, degraded := range map[string]string{
		"{{ na!me }}": "{{ na",
		"{{}}":        "{{",
		"{{ }}":       "{{ ",
		"{{ name }":   "{{ name }",
		"{{ name":     "{{ name",
		"{{":          "{{",
		"{{ a..b }}":  "{{ a",
	} {
		tokens := scanAll(t, input)

		raw, ok := tokens[0].(*texttemplate.RawToken)
		require.True(t, ok, "input %q should degrade to raw, got %T", input, tokens[0])
		assert.Equal(t, degraded, raw.Span.Text(), "input %q", input)

		// the remainder is re-scanned; concatenating spans reproduces input
		var all string
		for _, tok := range tokens {
			all += tok.CanonicalText()
		}
		assert.Equal(t, input, all, "input %q", input)
	}
}

func TestScanForStart(t *testing.T) {
	tokens := scanAll(t, "{% for x in items.nested %}")
	require.Len(t, tokens, 2)

	forStart, ok := tokens[0].(*texttemplate.ForStartToken)
	require.True(t, ok)
	assert.Equal(t, "x", forStart.Var.Name)
	assert.Equal(t, []string{"items", "nested"}, forStart.Path.Parts)
	assert.Equal(t, "{% for x in items.nested %}", forStart.CanonicalText())
}

func TestScanForStartCanonicalizesWhitespace(t *testing.T) {
	tokens := scanAll(t, "{%  for   x   in   items%}")

	forStart, ok := tokens[0].(*texttemplate.ForStartToken)
	require.True(t, ok)
	assert.Equal(t, "{% for x in items %}", forStart.CanonicalText())
}

func TestScanForEnd(t *testing.T) {
	tokens := scanAll(t, "{% endfor %}")
	require.Len(t, tokens, 2)

	forEnd, ok := tokens[0].(*texttemplate.ForEndToken)
	require.True(t, ok)
	assert.Equal(t, "{% endfor %}", forEnd.CanonicalText())
}

func TestScanMalformedStatementIsInvalidExpr(t *testing.T) {
	for input, invalidText := range map[string]string{
		"{% fr x in y %}":   "{% fr",
		"{% for %}":         "{% for ",
		"{% for x of y %}":  "{% for x of",
		"{% for x in %}":    "{% for x in ",
		"{% for x in y":     "{% for x in y",
		"{% in %}":          "{% in",
		"{% endfor x %}":    "{% endfor ",
		"{%%}":              "{%",
		"{% for 1 in y %}":  "{% for ",
		"{% for x in .y %}": "{% for x in ",
	} {
		tokens := scanAll(t, input)

		invalid, ok := tokens[0].(*texttemplate.InvalidExprToken)
		require.True(t, ok, "input %q should scan as invalid, got %T", input, tokens[0])
		assert.Equal(t, invalidText, invalid.Span.Text(), "input %q", input)
		assert.Equal(t, invalidText, invalid.CanonicalText(), "input %q", input)

		var all string
		for _, tok := range tokens {
			all += tok.CanonicalText()
		}
		assert.Equal(t, input, all, "input %q", input)
	}
}

// a broken "{{" becomes plain text while a broken "{%" stays a marked
// invalid expression
func TestScanDegradePoliciesDiffer(t *testing.T) {
	tokens := scanAll(t, "{{ ! }}")
	assert.IsType(t, &texttemplate.RawToken{}, tokens[0])

	tokens = scanAll(t, "{% ! %}")
	assert.IsType(t, &texttemplate.InvalidExprToken{}, tokens[0])
}

func TestScanConditionalKeywords(t *testing.T) {
	tokens := scanAll(t, "{% if a.b %}{% elif c %}{% else %}{% endif %}")
	require.Len(t, tokens, 5)

	ifTok, ok := tokens[0].(*texttemplate.IfToken)
	require.True(t, ok)
	assert.Equal(t, []string{"a", "b"}, ifTok.Path.Parts)
	assert.Equal(t, "{% if a.b %}", ifTok.CanonicalText())

	elifTok, ok := tokens[1].(*texttemplate.ElifToken)
	require.True(t, ok)
	assert.Equal(t, "{% elif c %}", elifTok.CanonicalText())

	assert.IsType(t, &texttemplate.ElseToken{}, tokens[2])
	assert.Equal(t, "{% else %}", tokens[2].CanonicalText())

	assert.IsType(t, &texttemplate.IfEndToken{}, tokens[3])
	assert.Equal(t, "{% endif %}", tokens[3].CanonicalText())
}

func TestScanConditionalWithBadHeaderIsInvalidExpr(t *testing.T) {
	tokens := scanAll(t, "{% if %}")
	assert.IsType(t, &texttemplate.InvalidExprToken{}, tokens[0])

	tokens = scanAll(t, "{% else! %}")
	assert.IsType(t, &texttemplate.InvalidExprToken{}, tokens[0])
}

func TestScanIdentifierGrammar(t *testing.T) {
	tokens := scanAll(t, "{{ _under_score1.part2 }}")

	use, ok := tokens[0].(*texttemplate.UseToken)
	require.True(t, ok)
	assert.Equal(t, []string{"_under_score1", "part2"}, use.Path.Parts)

	// an identifier cannot start with a digit
	tokens = scanAll(t, "{{ 1a }}")
	assert.IsType(t, &texttemplate.RawToken{}, tokens[0])
}

func TestScanTrailingDotStopsPath(t *testing.T) {
	// "a." reads as path "a" with '.' left over, which then fails the
	// closing braces and degrades the construct
	tokens := scanAll(t, "{{ a. }}")

	raw, ok := tokens[0].(*texttemplate.RawToken)
	require.True(t, ok)
	assert.Equal(t, "{{ a", raw.Span.Text())
}

func TestScanSpansTrackLines(t *testing.T) {
	tokens := scanAll(t, "line one\n{{ name }}\n")
	require.Len(t, tokens, 4)

	use, ok := tokens[1].(*texttemplate.UseToken)
	require.True(t, ok)
	assert.Equal(t, 2, use.Span.Start().LineNum())
	assert.Equal(t, 1, use.Span.Start().ColNum())
	assert.Equal(t, "tpl.txt:2:1", use.Span.Start().AsCompactString())
}

func TestScanMixedStream(t *testing.T) {
	tokens := scanAll(t, "a {{ b }} c {% for x in d %}e{% endfor %} f")

	var kinds []string
	for _, tok := range tokens {
		switch tok.(type) {
		case *texttemplate.RawToken:
			kinds = append(kinds, "raw")
		case *texttemplate.UseToken:
			kinds = append(kinds, "use")
		case *texttemplate.ForStartToken:
			kinds = append(kinds, "for")
		case *texttemplate.ForEndToken:
			kinds = append(kinds, "endfor")
		case *texttemplate.EOFToken:
			kinds = append(kinds, "eof")
		default:
			t.Fatalf("unexpected token %T", tok)
		}
	}
	assert.Equal(t, []string{"raw", "use", "raw", "for", "raw", "endfor", "raw", "eof"}, kinds)
}
