package ast

import (
	"testing"

	"github.com/deepnoodle-ai/srcloc/token"
	"github.com/stretchr/testify/require"
)

var (
	_ Decl    = (*FuncDecl)(nil)
	_ Decl    = (*VarDecl)(nil)
	_ Decl    = (*BadDecl)(nil)
	_ Expr    = (*Ident)(nil)
	_ Expr    = (*Int)(nil)
	_ Expr    = (*Infix)(nil)
	_ Expr    = (*Call)(nil)
	_ Expr    = (*BadExpr)(nil)
	_ Stmt    = (*Block)(nil)
	_ Stmt    = (*Return)(nil)
	_ Stmt    = (*ExprStmt)(nil)
	_ Stmt    = (*BadStmt)(nil)
	_ Pattern = (*IdentPattern)(nil)
	_ Pattern = (*WildcardPattern)(nil)
	_ Pattern = (*TuplePattern)(nil)
)

// pos builds a single-line test position. Char mirrors the column so that
// Advance produces positions comparable with pos.
func pos(line, col int) token.Position {
	return token.Position{Char: col, Line: line, Column: col, File: "main.x"}
}

func TestIdentPositions(t *testing.T) {
	x := &Ident{NamePos: pos(3, 4), Name: "count"}
	require.Equal(t, pos(3, 4), x.Pos())
	require.Equal(t, pos(3, 9), x.End())
	require.Equal(t, pos(3, 4), x.Loc())
	require.Equal(t, "Ident", x.KindName())
	require.Equal(t, "count", x.String())
}

func TestInfixPositions(t *testing.T) {
	// a + 42
	x := &Infix{
		X:     &Ident{NamePos: pos(1, 0), Name: "a"},
		OpPos: pos(1, 2),
		Op:    "+",
		Y:     &Int{ValuePos: pos(1, 4), Literal: "42", Value: 42},
	}
	require.Equal(t, pos(1, 0), x.Pos())
	require.Equal(t, pos(1, 6), x.End())
	// Canonical point is the operator, strictly inside the span.
	require.Equal(t, pos(1, 2), x.Loc())
	require.Equal(t, "(a + 42)", x.String())
}

func TestCallPositions(t *testing.T) {
	// f(1, 2)
	x := &Call{
		Fun:    &Ident{NamePos: pos(2, 0), Name: "f"},
		Lparen: pos(2, 1),
		Args: []Expr{
			&Int{ValuePos: pos(2, 2), Literal: "1", Value: 1},
			&Int{ValuePos: pos(2, 5), Literal: "2", Value: 2},
		},
		Rparen: pos(2, 6),
	}
	require.Equal(t, pos(2, 0), x.Pos())
	require.Equal(t, pos(2, 7), x.End())
	require.Equal(t, pos(2, 1), x.Loc())
	require.Equal(t, "f(1, 2)", x.String())
}

func TestVarDeclPositions(t *testing.T) {
	// let x = 1
	d := &VarDecl{
		Let:   pos(4, 0),
		Name:  &Ident{NamePos: pos(4, 4), Name: "x"},
		Value: &Int{ValuePos: pos(4, 8), Literal: "1", Value: 1},
	}
	require.Equal(t, pos(4, 0), d.Pos())
	require.Equal(t, pos(4, 9), d.End())
	// Canonical point is the declared name.
	require.Equal(t, pos(4, 4), d.Loc())
	require.Equal(t, "Var", d.KindName())
	require.Equal(t, "let x = 1", d.String())

	bare := &VarDecl{Let: pos(5, 0), Name: &Ident{NamePos: pos(5, 4), Name: "y"}}
	require.Equal(t, pos(5, 5), bare.End())
	require.Equal(t, "let y", bare.String())
}

func TestFuncDeclPositions(t *testing.T) {
	d := &FuncDecl{
		Func: pos(1, 0),
		Name: &Ident{NamePos: pos(1, 5), Name: "add"},
		Params: []*Ident{
			{NamePos: pos(1, 9), Name: "a"},
			{NamePos: pos(1, 12), Name: "b"},
		},
		Body: &Block{
			Lbrace: pos(1, 15),
			Stmts: []Stmt{
				&Return{
					Return: pos(2, 2),
					Value: &Infix{
						X:     &Ident{NamePos: pos(2, 9), Name: "a"},
						OpPos: pos(2, 11),
						Op:    "+",
						Y:     &Ident{NamePos: pos(2, 13), Name: "b"},
					},
				},
			},
			Rbrace: pos(3, 0),
		},
	}
	require.Equal(t, pos(1, 0), d.Pos())
	require.Equal(t, pos(3, 1), d.End())
	require.Equal(t, pos(1, 5), d.Loc())
	require.Equal(t, "func add(a, b) { return (a + b) }", d.String())
}

func TestReturnPositions(t *testing.T) {
	s := &Return{Return: pos(7, 2)}
	require.Equal(t, pos(7, 2), s.Pos())
	require.Equal(t, pos(7, 8), s.End())
	require.Equal(t, "return", s.String())

	withValue := &Return{
		Return: pos(8, 2),
		Value:  &Int{ValuePos: pos(8, 9), Literal: "0", Value: 0},
	}
	require.Equal(t, pos(8, 10), withValue.End())
	require.Equal(t, "return 0", withValue.String())
}

func TestPatternPositions(t *testing.T) {
	p := &TuplePattern{
		Lparen: pos(6, 4),
		Elems: []Pattern{
			&IdentPattern{NamePos: pos(6, 5), Name: "a"},
			&WildcardPattern{UnderscorePos: pos(6, 8)},
		},
		Rparen: pos(6, 9),
	}
	require.Equal(t, pos(6, 4), p.Pos())
	require.Equal(t, pos(6, 10), p.End())
	require.Equal(t, "Tuple", p.KindName())
	require.Equal(t, "(a, _)", p.String())
}

func TestBadNodes(t *testing.T) {
	tests := []struct {
		name     string
		node     Node
		expected string
	}{
		{"decl", &BadDecl{From: pos(1, 0), To: pos(1, 5)}, "<bad declaration>"},
		{"expr", &BadExpr{From: pos(1, 0), To: pos(1, 5)}, "<bad expression>"},
		{"stmt", &BadStmt{From: pos(1, 0), To: pos(1, 5)}, "<bad statement>"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, pos(1, 0), tt.node.Pos())
			require.Equal(t, pos(1, 5), tt.node.End())
			require.Equal(t, "Bad", tt.node.KindName())
			require.Equal(t, tt.expected, tt.node.String())
		})
	}
}
