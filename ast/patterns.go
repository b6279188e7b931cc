package ast

import (
	"bytes"

	"github.com/deepnoodle-ai/srcloc/token"
)

// IdentPattern is a pattern node that binds a single name.
type IdentPattern struct {
	NamePos token.Position // position of identifier
	Name    string         // name being bound
}

func (p *IdentPattern) patternNode() {}

func (p *IdentPattern) Pos() token.Position { return p.NamePos }
func (p *IdentPattern) End() token.Position { return p.NamePos.Advance(len(p.Name)) }

func (p *IdentPattern) KindName() string { return "Named" }

func (p *IdentPattern) String() string { return p.Name }

// WildcardPattern is a pattern node that matches anything and binds nothing,
// written "_".
type WildcardPattern struct {
	UnderscorePos token.Position // position of "_"
}

func (p *WildcardPattern) patternNode() {}

func (p *WildcardPattern) Pos() token.Position { return p.UnderscorePos }
func (p *WildcardPattern) End() token.Position { return p.UnderscorePos.Advance(1) }

func (p *WildcardPattern) KindName() string { return "Wildcard" }

func (p *WildcardPattern) String() string { return "_" }

// TuplePattern is a pattern node that destructures a fixed-size tuple,
// as in "let (a, b) = pair".
type TuplePattern struct {
	Lparen token.Position // position of "("
	Elems  []Pattern      // element patterns
	Rparen token.Position // position of ")"
}

func (p *TuplePattern) patternNode() {}

func (p *TuplePattern) Pos() token.Position { return p.Lparen }
func (p *TuplePattern) End() token.Position { return p.Rparen.Advance(1) }

func (p *TuplePattern) KindName() string { return "Tuple" }

func (p *TuplePattern) String() string {
	var out bytes.Buffer
	out.WriteString("(")
	for i, elem := range p.Elems {
		if i > 0 {
			out.WriteString(", ")
		}
		out.WriteString(elem.String())
	}
	out.WriteString(")")
	return out.String()
}
