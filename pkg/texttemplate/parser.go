// Copyright 2026 The Tmplkit Authors.
// SPDX-License-Identifier: Apache-2.0

package texttemplate

import (
	"fmt"

	"github.com/tmplkit/tmplkit/pkg/charcursor"
	"github.com/tmplkit/tmplkit/pkg/filepos"
)

// maxForDepth caps recursion on nested "for" blocks so that adversarial
// input cannot drive the parse stack arbitrarily deep. A ForStart past the
// cap is treated as an unexpected token rather than opening another block.
const maxForDepth = 64

// Parser is a recursive-descent consumer of the token stream. It never
// aborts on unexpected input: any token it cannot place is wrapped as a
// NodeUnexpected and parsing continues. The only parse-time error is a
// template using the reserved conditional keywords.
type Parser struct{}

func NewParser() *Parser {
	return &Parser{}
}

// Parse scans and parses "dataBs"; "associatedName" labels positions in the
// resulting spans (usually the template's file name).
func (p *Parser) Parse(dataBs []byte, associatedName string) (Expr, error) {
	scanner := NewScanner(charcursor.NewStringCursor(string(dataBs), associatedName))

	var items []Expr

	for {
		run, err := p.readExprRun(scanner, 0)
		if err != nil {
			return nil, err
		}
		items = append(items, run...)

		tok := scanner.Current()
		if _, eof := tok.(*EOFToken); eof {
			break
		}

		// a closer with no enclosing construct; keep it and move on
		items = append(items, &NodeUnexpected{Token: tok})
		scanner.Advance()
	}

	if len(items) == 0 {
		return p.emptyNode(scanner.Current()), nil
	}
	return NewConcat(items)
}

// readExprRun consumes a maximal run of expression tokens, stopping (without
// consuming) at a token that belongs to an enclosing construct: EOF or a
// block closer.
func (p *Parser) readExprRun(scanner *Scanner, depth int) ([]Expr, error) {
	var result []Expr

	for {
		switch tok := scanner.Current().(type) {
		case *RawToken:
			result = append(result, &NodeRaw{Content: tok.Span.Text(), Span: tok.Span})
			scanner.Advance()

		case *InvalidExprToken:
			result = append(result, &NodeInvalid{Token: tok})
			scanner.Advance()

		case *UseToken:
			result = append(result, &NodeUse{Token: tok})
			scanner.Advance()

		case *ForStartToken:
			if depth >= maxForDepth {
				result = append(result, &NodeUnexpected{Token: tok})
				scanner.Advance()
				continue
			}

			scanner.Advance()

			body, err := p.readExprRun(scanner, depth+1)
			if err != nil {
				return nil, err
			}

			if endTok, closed := scanner.Current().(*ForEndToken); closed {
				scanner.Advance()
				result = append(result, &NodeFor{Start: tok, End: endTok, Body: p.bodyExpr(body, tok)})
			} else {
				// the block never closed: keep the opener and the
				// already-parsed body, produce no NodeFor; the stopper is
				// left for the caller to place
				result = append(result, &NodeUnexpected{Token: tok})
				result = append(result, body...)
			}

		case *EOFToken, *ForEndToken:
			return result, nil

		case *IfToken:
			return nil, &UnsupportedConstructError{Keyword: "if", Span: tok.Span}
		case *ElifToken:
			return nil, &UnsupportedConstructError{Keyword: "elif", Span: tok.Span}
		case *ElseToken:
			return nil, &UnsupportedConstructError{Keyword: "else", Span: tok.Span}
		case *IfEndToken:
			return nil, &UnsupportedConstructError{Keyword: "endif", Span: tok.Span}

		default:
			panic(fmt.Sprintf("unknown token type %T", tok))
		}
	}
}

func (p *Parser) bodyExpr(body []Expr, start *ForStartToken) Expr {
	if len(body) == 0 {
		return &NodeRaw{Span: filepos.NewEmptySpan(start.Span.End())}
	}
	expr, err := NewConcat(body)
	if err != nil {
		panic(err)
	}
	return expr
}

// emptyNode stands for a template with no content at all.
func (p *Parser) emptyNode(eof Token) Expr {
	if typedTok, ok := eof.(*EOFToken); ok {
		return &NodeRaw{Span: typedTok.Span}
	}
	return &NodeRaw{Span: filepos.NewEmptySpan(filepos.NewUnknownPosition())}
}
