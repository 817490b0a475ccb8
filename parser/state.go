/*
 * SPDX-FileCopyrightText: © Corecalc Authors
 * SPDX-License-Identifier: Apache-2.0
 */

// Package parser is responsible for lexing and parsing expressions of the
// core calculus into term trees.
package parser

import (
	"strings"

	"github.com/corecalc/corecalc/lex"
)

const (
	lparen     = '('
	rparen     = ')'
	colon      = ':'
	attherate  = '@'
	star       = '*'
	backslash  = '\\'
	smallLam   = 'λ'
	forAll     = '∀'
	bigPi      = 'Π'
	smallBox   = '□'
	rightArrow = '→'
)

// Constants representing the type of different lexed items.
const (
	itemLabel  lex.ItemType = 5 + iota // identifier
	itemNumber                         // de Bruijn index
	itemFile                           // local file path literal
	itemURL                            // remote URL literal
	itemAt                             // @
	itemStar                           // sort *
	itemBox                            // sort BOX
	itemLParen                         // (
	itemRParen                         // )
	itemColon                          // :
	itemArrow                          // -> or →
	itemLambda                         // \ or λ
	itemPi                             // |~| or ∀ or Π
)

// lexText is the entry state. It dispatches on the first rune of the next
// token and hands off to the more specific states below.
func lexText(l *lex.Lexer) lex.StateFn {
	switch r := l.Next(); {
	case r == lex.EOF:
		l.Emit(lex.ItemEOF)
		return nil
	case isSpace(r) || isEndOfLine(r):
		l.AcceptRun(isWhitespace)
		l.Ignore()
	case r == lparen:
		l.Emit(itemLParen)
	case r == rparen:
		l.Emit(itemRParen)
	case r == colon:
		l.Emit(itemColon)
	case r == attherate:
		l.Emit(itemAt)
	case r == star:
		l.Emit(itemStar)
	case r == backslash || r == smallLam:
		l.Emit(itemLambda)
	case r == forAll || r == bigPi:
		l.Emit(itemPi)
	case r == smallBox:
		l.Emit(itemBox)
	case r == rightArrow:
		l.Emit(itemArrow)
	case r == '-':
		return lexDash
	case r == '|':
		return lexPiOp
	case r == '{':
		return lexBlockComment
	case r == '.' || r == '/':
		return lexFilePath
	case isDigit(r):
		l.AcceptRun(isDigit)
		l.Emit(itemNumber)
	case isLabelBegin(r):
		return lexLabel
	default:
		return l.Fail()
	}
	return lexText
}

// lexDash resolves '-': either the arrow "->" or a "--" line comment.
func lexDash(l *lex.Lexer) lex.StateFn {
	switch l.Next() {
	case '>':
		l.Emit(itemArrow)
	case '-':
		l.AcceptUntil(isEndOfLine)
		l.Ignore()
	default:
		return l.Fail()
	}
	return lexText
}

// lexPiOp scans the rest of the "|~|" operator.
func lexPiOp(l *lex.Lexer) lex.StateFn {
	if l.Next() != '~' {
		return l.Fail()
	}
	if l.Next() != '|' {
		return l.Fail()
	}
	l.Emit(itemPi)
	return lexText
}

// lexBlockComment skips a "{- ... -}" comment. Comments nest. An
// unterminated comment is a lexical failure positioned at the opener.
func lexBlockComment(l *lex.Lexer) lex.StateFn {
	if l.Next() != '-' {
		return l.Fail()
	}
	for depth := 1; depth > 0; {
		switch l.Next() {
		case lex.EOF:
			return l.Fail()
		case '{':
			if l.Peek() == '-' {
				l.Next()
				depth++
			}
		case '-':
			if l.Peek() == '}' {
				l.Next()
				depth--
			}
		}
	}
	l.Ignore()
	return lexText
}

// lexFilePath scans a local import leaf. Paths must start with '/', "./"
// or "../"; a bare '.' is not a token.
func lexFilePath(l *lex.Lexer) lex.StateFn {
	rest := l.Input[l.Start:]
	if rest[0] == '.' && !strings.HasPrefix(rest, "./") && !strings.HasPrefix(rest, "../") {
		return l.Fail()
	}
	l.AcceptRun(isPathRune)
	l.Emit(itemFile)
	return lexText
}

// lexURL scans a remote import leaf, starting right after the scheme.
func lexURL(l *lex.Lexer) lex.StateFn {
	l.AcceptRun(isURLRune)
	l.Emit(itemURL)
	return lexText
}

// lexLabel scans an identifier, then reclassifies the reserved word BOX and
// the http(s) URL schemes.
func lexLabel(l *lex.Lexer) lex.StateFn {
	l.AcceptRun(isLabelRune)
	switch word := l.Input[l.Start:l.Pos]; {
	case (word == "http" || word == "https") && strings.HasPrefix(l.Input[l.Pos:], "://"):
		return lexURL
	case word == "BOX":
		l.Emit(itemBox)
	default:
		l.Emit(itemLabel)
	}
	return lexText
}

func isSpace(r rune) bool {
	return r == ' ' || r == '\t'
}

func isEndOfLine(r rune) bool {
	return r == '\n' || r == '\r'
}

func isWhitespace(r rune) bool {
	return isSpace(r) || isEndOfLine(r)
}

func isDigit(r rune) bool {
	return r >= '0' && r <= '9'
}

func isLabelBegin(r rune) bool {
	return r >= 'a' && r <= 'z' || r >= 'A' && r <= 'Z' || r == '_'
}

func isLabelRune(r rune) bool {
	return isLabelBegin(r) || isDigit(r)
}

func isPathRune(r rune) bool {
	return isLabelRune(r) || r == '.' || r == '/' || r == '-'
}

func isURLRune(r rune) bool {
	return !isWhitespace(r) && r != rparen
}
