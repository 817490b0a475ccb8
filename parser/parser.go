/*
 * SPDX-FileCopyrightText: © Corecalc Authors
 * SPDX-License-Identifier: Apache-2.0
 */

package parser

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/corecalc/corecalc/lex"
	"github.com/corecalc/corecalc/term"
)

// previewLimit bounds the remainder preview embedded in a lexing
// diagnostic.
const previewLimit = 64

// ParseError is the single failure value produced by Parse. It carries the
// source position of the first token or character that could not be
// processed, and exactly one of two payloads: the untokenizable remainder
// (lexing failure) or the unexpected token (parsing failure).
type ParseError struct {
	Line   int
	Column int

	remainder string   // set iff lexing
	token     lex.Item // set iff parsing
	lexing    bool
}

// LexingFailure returns the unconsumed remainder of the input if the
// scanner could not tokenize it.
func (e *ParseError) LexingFailure() (remainder string, ok bool) {
	return e.remainder, e.lexing
}

// ParsingFailure returns the valid token that no grammar production
// accepted.
func (e *ParseError) ParsingFailure() (token lex.Item, ok bool) {
	return e.token, !e.lexing
}

func (e *ParseError) Error() string {
	var b strings.Builder
	fmt.Fprintf(&b, "\nLine:   %d\nColumn: %d\n\n", e.Line, e.Column)
	if e.lexing {
		fmt.Fprintf(&b, "Lexing: %q\n\nError: lexing failed\n", preview(e.remainder))
	} else {
		val := e.token.Val
		if e.token.Typ == lex.ItemEOF {
			val = "<end of input>"
		}
		fmt.Fprintf(&b, "Parsing: %s\n\nError: parsing failed\n", val)
	}
	return b.String()
}

// preview truncates the remainder to previewLimit runes and to the first
// line break within that window, marking the cut when input ran longer.
func preview(s string) string {
	runes := []rune(s)
	long := len(runes) > previewLimit
	if long {
		runes = runes[:previewLimit]
	}
	p := string(runes)
	if i := strings.IndexAny(p, "\r\n"); i >= 0 {
		p = p[:i]
	}
	if long {
		p += "..."
	}
	return p
}

// parser pulls items from the lexer one at a time, with a single item of
// pushback. The grammar needs no further lookahead and no backtracking.
type parser struct {
	lexer  lex.Lexer
	item   lex.Item
	pushed bool
}

func (p *parser) next() lex.Item {
	if p.pushed {
		p.pushed = false
		return p.item
	}
	p.item = p.lexer.NextItem()
	return p.item
}

func (p *parser) backup() {
	p.pushed = true
}

// fail converts the offending item into the terminal error. The parse
// stops at the first failure; there is no recovery.
func (p *parser) fail(it lex.Item) *ParseError {
	e := &ParseError{Line: it.Line, Column: it.Column, token: it}
	if it.Typ == lex.ItemError {
		e.lexing = true
		e.remainder = it.Val
		e.token = lex.Item{}
	}
	return e
}

// Parse converts src into an expression tree. It returns either a complete
// tree or a single positioned error, never both and never a partial tree.
// Each call is independent; concurrent calls on separate inputs are safe.
func Parse(src string) (term.Expr, *ParseError) {
	var p parser
	p.lexer.Reset(src, lexText)
	e, err := p.parseExpr()
	if err != nil {
		return nil, err
	}
	if it := p.next(); it.Typ != lex.ItemEOF {
		return nil, p.fail(it)
	}
	return e, nil
}

// parseExpr handles the loosest level: the two binder forms and the
// right-associative arrow sugar.
//
//	Expr ← '\' '(' label ':' Expr ')' '->' Expr
//	     | '|~|' '(' label ':' Expr ')' '->' Expr
//	     | BExpr '->' Expr
//	     | BExpr
func (p *parser) parseExpr() (term.Expr, *ParseError) {
	switch it := p.next(); it.Typ {
	case itemLambda:
		label, dom, err := p.parseBinder()
		if err != nil {
			return nil, err
		}
		body, err := p.parseExpr()
		if err != nil {
			return nil, err
		}
		return term.Lam{Label: label, Type: dom, Body: body}, nil
	case itemPi:
		label, dom, err := p.parseBinder()
		if err != nil {
			return nil, err
		}
		body, err := p.parseExpr()
		if err != nil {
			return nil, err
		}
		return term.Pi{Label: label, Type: dom, Body: body}, nil
	default:
		p.backup()
	}
	b, err := p.parseBExpr()
	if err != nil {
		return nil, err
	}
	if it := p.next(); it.Typ != itemArrow {
		p.backup()
		return b, nil
	}
	// A -> B is a Pi whose body never references the bound label.
	cod, err := p.parseExpr()
	if err != nil {
		return nil, err
	}
	return term.Pi{Label: "_", Type: b, Body: cod}, nil
}

// parseBinder consumes the "( label : Expr ) ->" common to both binders.
func (p *parser) parseBinder() (string, term.Expr, *ParseError) {
	if it := p.next(); it.Typ != itemLParen {
		return "", nil, p.fail(it)
	}
	label := p.next()
	if label.Typ != itemLabel {
		return "", nil, p.fail(label)
	}
	if it := p.next(); it.Typ != itemColon {
		return "", nil, p.fail(it)
	}
	dom, err := p.parseExpr()
	if err != nil {
		return "", nil, err
	}
	if it := p.next(); it.Typ != itemRParen {
		return "", nil, p.fail(it)
	}
	if it := p.next(); it.Typ != itemArrow {
		return "", nil, p.fail(it)
	}
	return label.Val, dom, nil
}

// parseBExpr folds application chains left-associatively. Application binds
// tighter than the arrow: the loop stops on any item that cannot start an
// AExpr, which includes '->', so the arrow check in parseExpr always sees a
// fully reduced chain.
func (p *parser) parseBExpr() (term.Expr, *ParseError) {
	e, err := p.parseAExpr()
	if err != nil {
		return nil, err
	}
	for {
		it := p.next()
		p.backup()
		if !startsAExpr(it.Typ) {
			return e, nil
		}
		arg, err := p.parseAExpr()
		if err != nil {
			return nil, err
		}
		e = term.App{Fn: e, Arg: arg}
	}
}

func startsAExpr(t lex.ItemType) bool {
	switch t {
	case itemLabel, itemStar, itemBox, itemFile, itemURL, itemLParen:
		return true
	}
	return false
}

// parseAExpr handles atoms: variables, the two sorts, import leaves and
// parenthesized sub-expressions.
func (p *parser) parseAExpr() (term.Expr, *ParseError) {
	switch it := p.next(); it.Typ {
	case itemLabel:
		return p.parseVar(it)
	case itemStar:
		return term.Star, nil
	case itemBox:
		return term.Box, nil
	case itemFile:
		return term.Embed{Import: term.FileImport{Path: it.Val}}, nil
	case itemURL:
		return term.Embed{Import: term.RemoteImport{URL: it.Val}}, nil
	case itemLParen:
		e, err := p.parseExpr()
		if err != nil {
			return nil, err
		}
		if it := p.next(); it.Typ != itemRParen {
			return nil, p.fail(it)
		}
		return e, nil
	default:
		return nil, p.fail(it)
	}
}

// parseVar reads an optional '@' index after a label. The index defaults
// to 0 when omitted.
func (p *parser) parseVar(label lex.Item) (term.Expr, *ParseError) {
	if it := p.next(); it.Typ != itemAt {
		p.backup()
		return term.Var{Name: label.Val}, nil
	}
	num := p.next()
	if num.Typ != itemNumber {
		return nil, p.fail(num)
	}
	n, err := strconv.Atoi(num.Val)
	if err != nil {
		// Out of range for int. Reported on the number, not panicked.
		return nil, p.fail(num)
	}
	return term.Var{Name: label.Val, Index: n}, nil
}
