/*
 * SPDX-FileCopyrightText: © Corecalc Authors
 * SPDX-License-Identifier: Apache-2.0
 */

package term

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestStringAtoms(t *testing.T) {
	tests := []struct {
		in   Expr
		want string
	}{
		{Star, "*"},
		{Box, "□"},
		{Var{Name: "x"}, "x"},
		{Var{Name: "x", Index: 2}, "x@2"},
		{Embed{Import: FileImport{Path: "./id"}}, "./id"},
		{Embed{Import: RemoteImport{URL: "https://example.com/id"}}, "https://example.com/id"},
	}
	for _, tc := range tests {
		require.Equal(t, tc.want, tc.in.String())
	}
}

func TestStringApplication(t *testing.T) {
	f := Var{Name: "f"}
	x := Var{Name: "x"}
	y := Var{Name: "y"}

	require.Equal(t, "f x y", App{Fn: App{Fn: f, Arg: x}, Arg: y}.String())
	require.Equal(t, "f (x y)", App{Fn: f, Arg: App{Fn: x, Arg: y}}.String())
}

func TestStringBinders(t *testing.T) {
	require.Equal(t, "λ(x : *) → x",
		Lam{Label: "x", Type: Star, Body: Var{Name: "x"}}.String())
	require.Equal(t, "∀(a : *) → a → a",
		Pi{Label: "a", Type: Star,
			Body: Pi{Label: "_", Type: Var{Name: "a"}, Body: Var{Name: "a"}}}.String())
}

func TestStringArrowSugar(t *testing.T) {
	require.Equal(t, "* → * → *",
		Pi{Label: "_", Type: Star,
			Body: Pi{Label: "_", Type: Star, Body: Star}}.String())
	require.Equal(t, "(* → *) → *",
		Pi{Label: "_",
			Type: Pi{Label: "_", Type: Star, Body: Star},
			Body: Star}.String())
}

func TestStringParenthesizesLooserArguments(t *testing.T) {
	f := Var{Name: "f"}
	lam := Lam{Label: "x", Type: Star, Body: Var{Name: "x"}}
	require.Equal(t, "f (λ(x : *) → x)", App{Fn: f, Arg: lam}.String())

	// A binder in function position needs parens too.
	require.Equal(t, "(λ(x : *) → x) f", App{Fn: lam, Arg: f}.String())
}

func TestTreesCompareStructurally(t *testing.T) {
	a := App{Fn: Var{Name: "f"}, Arg: Star}
	b := App{Fn: Var{Name: "f"}, Arg: Star}
	require.True(t, a == b)
	require.False(t, a == App{Fn: Var{Name: "f"}, Arg: Box})
}
