/*
 * SPDX-FileCopyrightText: © Corecalc Authors
 * SPDX-License-Identifier: Apache-2.0
 */

// Package lex implements a generic state-function lexer. Language-specific
// state functions live in the package that consumes the items.
package lex

import (
	"fmt"
	"unicode/utf8"
)

const EOF = -1

// ItemType is used to set the type of a token. Language-specific constants
// should be defined in the file containing state functions, with values >= 5.
type ItemType int

const (
	ItemEOF   ItemType = iota
	ItemError          // value is the untokenizable remainder of the input
)

// StateFn represents the state of the scanner as a function that
// returns the next state.
type StateFn func(*Lexer) StateFn

// Item is one lexical unit, stamped with the position of its first rune.
// Line is 1-based, Column 0-based.
type Item struct {
	Typ    ItemType
	Val    string
	Line   int
	Column int
}

func (i Item) String() string {
	switch i.Typ {
	case ItemEOF:
		return "EOF"
	case ItemError:
		return fmt.Sprintf("lex.Item [error] %q", i.Val)
	}
	return fmt.Sprintf("lex.Item [%v] %q", i.Typ, i.Val)
}

// Lexer scans Input one rune at a time and hands out Items on demand.
//
// NOTE: Using a text scanner wouldn't work because it's designed for parsing
// Golang. It won't keep track of Start position, or allow us to retrieve
// a slice from [Start:Pos]. Better to just use a normal string.
type Lexer struct {
	Input string // string being scanned.
	Start int    // start position of this item.
	Pos   int    // current position of this item.
	Width int    // width of last rune read from input.

	line, column      int // cursor at Pos
	startLn, startCol int // cursor at Start
	prevLn, prevCol   int // cursor before the last Next, for Backup

	state StateFn
	items []Item // emitted but not yet delivered
}

// Reset arms the lexer over input, starting in state start. The cursor
// begins at line 1, column 0.
func (l *Lexer) Reset(input string, start StateFn) {
	*l = Lexer{
		Input:   input,
		line:    1,
		startLn: 1,
		state:   start,
		items:   l.items[:0],
	}
}

// NextItem runs the state machine until one item is available and returns
// it. Items are produced strictly on demand; the input past the returned
// item has not necessarily been scanned yet. After ItemEOF or ItemError the
// same terminal item is returned on every further pull.
func (l *Lexer) NextItem() Item {
	for len(l.items) == 0 && l.state != nil {
		l.state = l.state(l)
	}
	if len(l.items) == 0 {
		return Item{Typ: ItemEOF, Line: l.line, Column: l.column}
	}
	it := l.items[0]
	if it.Typ == ItemEOF || it.Typ == ItemError {
		// Terminal: stays buffered so further pulls see it again.
		return it
	}
	l.items = l.items[1:]
	return it
}

// Emit emits the item with its type information, stamped with the position
// of the item's first rune.
func (l *Lexer) Emit(t ItemType) {
	l.items = append(l.items, Item{
		Typ:    t,
		Val:    l.Input[l.Start:l.Pos],
		Line:   l.startLn,
		Column: l.startCol,
	})
	l.Start = l.Pos
	l.startLn, l.startCol = l.line, l.column
}

// Fail emits an ItemError carrying everything from the start of the current
// item to the end of the input, and stops the state machine. The position
// is that of the first rune that could not be tokenized.
func (l *Lexer) Fail() StateFn {
	l.items = append(l.items, Item{
		Typ:    ItemError,
		Val:    l.Input[l.Start:],
		Line:   l.startLn,
		Column: l.startCol,
	})
	return nil
}

// Next reads the next rune from the Input, sets the Width and advances Pos.
func (l *Lexer) Next() (result rune) {
	if l.Pos >= len(l.Input) {
		l.Width = 0
		return EOF
	}
	r, w := utf8.DecodeRuneInString(l.Input[l.Pos:])
	l.Width = w
	l.Pos += l.Width
	l.prevLn, l.prevCol = l.line, l.column
	if r == '\n' {
		l.line++
		l.column = 0
	} else {
		l.column++
	}
	return r
}

// Backup steps back one rune. Can only be called once per call of Next.
func (l *Lexer) Backup() {
	l.Pos -= l.Width
	if l.Width > 0 {
		l.line, l.column = l.prevLn, l.prevCol
		l.Width = 0
	}
}

func (l *Lexer) Peek() rune {
	r := l.Next()
	l.Backup()
	return r
}

// Ignore drops the pending input without emitting anything.
func (l *Lexer) Ignore() {
	l.Start = l.Pos
	l.startLn, l.startCol = l.line, l.column
}

// CheckRune is predicate signature for accepting valid runes on input.
type CheckRune func(r rune) bool

// AcceptRun accepts runes based on CheckRune until it returns false or EOF
// is reached. Returns last rune accepted and total number of runes accepted.
func (l *Lexer) AcceptRun(c CheckRune) (lastr rune, nAccRunes int) {
	for {
		r := l.Next()
		if r == EOF || !c(r) {
			break
		}
		nAccRunes++
		lastr = r
	}
	l.Backup()
	return lastr, nAccRunes
}

// AcceptUntil accepts runes till CheckRune returns true or EOF is reached.
func (l *Lexer) AcceptUntil(c CheckRune) {
	for {
		r := l.Next()
		if r == EOF || c(r) {
			break
		}
	}
	l.Backup()
}
