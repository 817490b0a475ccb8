/*
 * SPDX-FileCopyrightText: © Corecalc Authors
 * SPDX-License-Identifier: Apache-2.0
 */

// Package term defines the expression tree of the core calculus: a minimal
// dependently typed lambda calculus with two sorts and embedded import
// leaves. Values are immutable once built; a parent exclusively owns its
// children and trees never share nodes.
package term

// Expr is one node of the expression tree. The set of implementations is
// closed: Var, App, Lam, Pi, Const and Embed.
type Expr interface {
	exprNode()
	String() string
}

// Const is one of the two sort constants classifying types and kinds.
type Const int

const (
	// Star is the sort of types.
	Star Const = iota
	// Box is the sort of kinds.
	Box
)

// Var is a reference to a bound label. Index disambiguates between
// enclosing binders of the same label, counting outward from the nearest;
// it is 0 when omitted in the source.
type Var struct {
	Name  string
	Index int
}

// App applies Fn to Arg.
type App struct {
	Fn  Expr
	Arg Expr
}

// Lam is the lambda abstraction λ(Label : Type) → Body.
type Lam struct {
	Label string
	Type  Expr
	Body  Expr
}

// Pi is the dependent function type ∀(Label : Type) → Body. The
// non-dependent function type A → B is represented as a Pi with label "_".
type Pi struct {
	Label string
	Type  Expr
	Body  Expr
}

// Embed wraps an unresolved import leaf. Resolution is a downstream
// concern; this package only carries the reference.
type Embed struct {
	Import Import
}

func (Const) exprNode() {}
func (Var) exprNode()   {}
func (App) exprNode()   {}
func (Lam) exprNode()   {}
func (Pi) exprNode()    {}
func (Embed) exprNode() {}

// Import is an external reference standing in for an expression to be
// fetched later. The set of implementations is closed: FileImport and
// RemoteImport.
type Import interface {
	importLeaf()
	String() string
}

// FileImport references an expression stored in a local file.
type FileImport struct {
	Path string
}

// RemoteImport references an expression served over HTTP(S).
type RemoteImport struct {
	URL string
}

func (FileImport) importLeaf()   {}
func (RemoteImport) importLeaf() {}

func (i FileImport) String() string   { return i.Path }
func (i RemoteImport) String() string { return i.URL }
