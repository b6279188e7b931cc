package ir

import (
	"fmt"
	"io"
	"strings"

	"github.com/deepnoodle-ai/srcloc/ast"
	"github.com/deepnoodle-ai/srcloc/token"
)

// PositionPrinter renders an abstract position as human-readable text.
// The compiler driver supplies one backed by its source manager; tests and
// simple callers can use DefaultPrinter.
type PositionPrinter interface {
	FormatPosition(pos token.Position) string
}

// DefaultPrinter renders positions with token.Position.String.
type DefaultPrinter struct{}

// FormatPosition implements PositionPrinter.
func (DefaultPrinter) FormatPosition(pos token.Position) string { return pos.String() }

// Print writes the resolved position of the location to w using the given
// printer. The null location prints as the literal "<no loc>". Write
// errors are ignored; Print exists for debugging and diagnostics output.
func (l Location) Print(w io.Writer, printer PositionPrinter) {
	if l.IsNull() {
		io.WriteString(w, "<no loc>")
		return
	}
	io.WriteString(w, printer.FormatPosition(l.SourcePos()))
}

// Dump writes a debugging description of the location to w. Node-anchored
// locations are prefixed with the node's kind and category, e.g.
// "CallExpr @ main.x:3:5".
func (l Location) Dump(w io.Writer, printer PositionPrinter) {
	if l.node != nil {
		fmt.Fprintf(w, "%s%s @ ", l.node.KindName(), categoryName(l.node))
	}
	l.Print(w, printer)
}

// String returns the printed form of the location using DefaultPrinter.
func (l Location) String() string {
	var b strings.Builder
	l.Print(&b, DefaultPrinter{})
	return b.String()
}

func categoryName(n ast.Node) string {
	switch n.(type) {
	case ast.Decl:
		return "Decl"
	case ast.Expr:
		return "Expr"
	case ast.Stmt:
		return "Stmt"
	case ast.Pattern:
		return "Pattern"
	}
	// NewLocation only admits the four categories above.
	panic(fmt.Sprintf("srcloc: unknown ast node type: %T", n))
}
