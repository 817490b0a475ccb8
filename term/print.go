/*
 * SPDX-FileCopyrightText: © Corecalc Authors
 * SPDX-License-Identifier: Apache-2.0
 */

package term

import (
	"strconv"
	"strings"
)

// The printer mirrors the grammar's three precedence levels, inserting
// parentheses only where reparsing would otherwise regroup the tree.

func (c Const) String() string {
	if c == Box {
		return "□"
	}
	return "*"
}

func (v Var) String() string {
	if v.Index == 0 {
		return v.Name
	}
	return v.Name + "@" + strconv.Itoa(v.Index)
}

func (a App) String() string   { return render(a) }
func (l Lam) String() string   { return render(l) }
func (p Pi) String() string    { return render(p) }
func (e Embed) String() string { return e.Import.String() }

func render(e Expr) string {
	var b strings.Builder
	writeExpr(&b, e)
	return b.String()
}

// writeExpr renders at the loosest level: binders and arrows.
func writeExpr(b *strings.Builder, e Expr) {
	switch e := e.(type) {
	case Lam:
		b.WriteString("λ(")
		b.WriteString(e.Label)
		b.WriteString(" : ")
		writeExpr(b, e.Type)
		b.WriteString(") → ")
		writeExpr(b, e.Body)
	case Pi:
		if e.Label == "_" {
			writeBExpr(b, e.Type)
			b.WriteString(" → ")
			writeExpr(b, e.Body)
			return
		}
		b.WriteString("∀(")
		b.WriteString(e.Label)
		b.WriteString(" : ")
		writeExpr(b, e.Type)
		b.WriteString(") → ")
		writeExpr(b, e.Body)
	default:
		writeBExpr(b, e)
	}
}

// writeBExpr renders left-associative application chains.
func writeBExpr(b *strings.Builder, e Expr) {
	if a, ok := e.(App); ok {
		writeBExpr(b, a.Fn)
		b.WriteByte(' ')
		writeAExpr(b, a.Arg)
		return
	}
	writeAExpr(b, e)
}

// writeAExpr renders atoms, parenthesizing anything looser.
func writeAExpr(b *strings.Builder, e Expr) {
	switch e := e.(type) {
	case Var:
		b.WriteString(e.String())
	case Const:
		b.WriteString(e.String())
	case Embed:
		b.WriteString(e.Import.String())
	default:
		b.WriteByte('(')
		writeExpr(b, e)
		b.WriteByte(')')
	}
}
