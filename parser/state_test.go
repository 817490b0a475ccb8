/*
 * SPDX-FileCopyrightText: © Corecalc Authors
 * SPDX-License-Identifier: Apache-2.0
 */

package parser

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/corecalc/corecalc/lex"
)

func scan(input string) []lex.Item {
	var l lex.Lexer
	l.Reset(input, lexText)
	var items []lex.Item
	for {
		it := l.NextItem()
		items = append(items, it)
		if it.Typ == lex.ItemEOF || it.Typ == lex.ItemError {
			return items
		}
	}
}

func types(items []lex.Item) []lex.ItemType {
	ts := make([]lex.ItemType, 0, len(items))
	for _, it := range items {
		ts = append(ts, it.Typ)
	}
	return ts
}

func TestScanLambdaBinder(t *testing.T) {
	items := scan(`\(x : *) -> x`)
	require.Equal(t, []lex.ItemType{
		itemLambda, itemLParen, itemLabel, itemColon, itemStar, itemRParen,
		itemArrow, itemLabel, lex.ItemEOF,
	}, types(items))
	require.Equal(t, "x", items[2].Val)
}

func TestScanUnicodeForms(t *testing.T) {
	items := scan("λ ∀ Π → □")
	require.Equal(t, []lex.ItemType{
		itemLambda, itemPi, itemPi, itemArrow, itemBox, lex.ItemEOF,
	}, types(items))
}

func TestScanPiOperator(t *testing.T) {
	require.Equal(t, []lex.ItemType{itemPi, lex.ItemEOF}, types(scan("|~|")))

	items := scan("|~ |")
	require.Equal(t, lex.ItemError, items[0].Typ)
	require.Equal(t, "|~ |", items[0].Val)
	require.Equal(t, 0, items[0].Column)
}

func TestScanReservedBox(t *testing.T) {
	items := scan("BOX BOXy xBOX")
	require.Equal(t, []lex.ItemType{
		itemBox, itemLabel, itemLabel, lex.ItemEOF,
	}, types(items))
	require.Equal(t, "BOXy", items[1].Val)
}

func TestScanVariableIndex(t *testing.T) {
	items := scan("x@2")
	require.Equal(t, []lex.ItemType{itemLabel, itemAt, itemNumber, lex.ItemEOF}, types(items))
	require.Equal(t, "2", items[2].Val)
}

func TestScanLineComment(t *testing.T) {
	items := scan("x -- trailing words\ny")
	require.Equal(t, []lex.Item{
		{Typ: itemLabel, Val: "x", Line: 1, Column: 0},
		{Typ: itemLabel, Val: "y", Line: 2, Column: 0},
		{Typ: lex.ItemEOF, Line: 2, Column: 1},
	}, items)
}

func TestScanBlockCommentNests(t *testing.T) {
	items := scan("{- outer {- inner -} still outer -} z")
	require.Equal(t, []lex.ItemType{itemLabel, lex.ItemEOF}, types(items))
	require.Equal(t, "z", items[0].Val)
}

func TestScanUnterminatedBlockComment(t *testing.T) {
	items := scan("x {- never closed")
	last := items[len(items)-1]
	require.Equal(t, lex.ItemError, last.Typ)
	require.Equal(t, "{- never closed", last.Val)
	require.Equal(t, 1, last.Line)
	require.Equal(t, 2, last.Column)
}

func TestScanFilePaths(t *testing.T) {
	items := scan("./foo /bar/baz ../up-one.cc")
	require.Equal(t, []lex.ItemType{itemFile, itemFile, itemFile, lex.ItemEOF}, types(items))
	require.Equal(t, "./foo", items[0].Val)
	require.Equal(t, "/bar/baz", items[1].Val)
	require.Equal(t, "../up-one.cc", items[2].Val)
}

func TestScanBareDotFails(t *testing.T) {
	items := scan(". x")
	require.Equal(t, lex.ItemError, items[0].Typ)
	require.Equal(t, ". x", items[0].Val)
}

func TestScanURLs(t *testing.T) {
	items := scan("http://example.com/id x")
	require.Equal(t, []lex.ItemType{itemURL, itemLabel, lex.ItemEOF}, types(items))
	require.Equal(t, "http://example.com/id", items[0].Val)

	// A closing paren ends the URL so imports can be parenthesized.
	items = scan("(https://example.com/id)")
	require.Equal(t, []lex.ItemType{itemLParen, itemURL, itemRParen, lex.ItemEOF}, types(items))
	require.Equal(t, "https://example.com/id", items[1].Val)
}

func TestScanArrowVersusComment(t *testing.T) {
	items := scan("a -> b")
	require.Equal(t, []lex.ItemType{itemLabel, itemArrow, itemLabel, lex.ItemEOF}, types(items))

	items = scan("a -x")
	last := items[len(items)-1]
	require.Equal(t, lex.ItemError, last.Typ)
	require.Equal(t, "-x", last.Val)
	require.Equal(t, 2, last.Column)
}

func TestScanBadRunePosition(t *testing.T) {
	items := scan("f ?")
	require.Equal(t, []lex.Item{
		{Typ: itemLabel, Val: "f", Line: 1, Column: 0},
		{Typ: lex.ItemError, Val: "?", Line: 1, Column: 2},
	}, items)
}
