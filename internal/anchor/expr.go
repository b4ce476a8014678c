package anchor

import (
	"fmt"
	"strconv"
)

// Expr is a parsed inset value: either a fixed length, or an anchor side
// plus a length.
type Expr struct {
	// Anchored is false for a plain "Npx" value.
	Anchored bool
	// Name is the referenced anchor, or "" for the default anchor.
	Name string
	// Side is one of left, right, top, bottom or center.
	Side string
	// Length is the fixed part in pixels.
	Length int
}

func (e Expr) String() string {
	if !e.Anchored {
		return strconv.Itoa(e.Length) + "px"
	}
	ref := e.Side
	if e.Name != "" {
		ref = e.Name + " " + e.Side
	}
	switch {
	case e.Length > 0:
		return fmt.Sprintf("calc(anchor(%s) + %dpx)", ref, e.Length)
	case e.Length < 0:
		return fmt.Sprintf("calc(anchor(%s) - %dpx)", ref, -e.Length)
	}
	return "anchor(" + ref + ")"
}

// SyntaxError reports an unparseable expression.
type SyntaxError struct {
	Source string
	Pos    int
	Msg    string
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("anchor: %q at %d: %s", e.Source, e.Pos, e.Msg)
}

var sides = map[string]bool{
	"left": true, "right": true, "top": true, "bottom": true, "center": true,
}

type parser struct {
	source string
	lexer  *Lexer
	tok    Token
}

// Parse parses an inset value.
func Parse(source string) (Expr, error) {
	p := &parser{source: source, lexer: NewLexer(source)}
	p.advance()

	e, err := p.parseValue()
	if err != nil {
		return Expr{}, err
	}
	if p.tok.Type != TokenEOF {
		return Expr{}, p.errorf("unexpected %s after value", p.tok.Type)
	}
	return e, nil
}

func (p *parser) advance() {
	p.tok = p.lexer.Next()
}

func (p *parser) errorf(format string, args ...any) error {
	return &SyntaxError{Source: p.source, Pos: p.tok.Pos, Msg: fmt.Sprintf(format, args...)}
}

func (p *parser) expect(t TokenType) error {
	if p.tok.Type != t {
		return p.errorf("expected %s, got %s", t, p.tok.Type)
	}
	p.advance()
	return nil
}

// parseValue handles "Npx", "-Npx", "anchor(...)" and "calc(...)".
func (p *parser) parseValue() (Expr, error) {
	switch {
	case p.tok.Type == TokenNumber, p.tok.Type == TokenMinus:
		n, err := p.parseLength()
		return Expr{Length: n}, err
	case p.tok.Type == TokenIdent && p.tok.Literal == "anchor":
		return p.parseAnchor()
	case p.tok.Type == TokenIdent && p.tok.Literal == "calc":
		return p.parseCalc()
	}
	return Expr{}, p.errorf("unexpected %s %q", p.tok.Type, p.tok.Literal)
}

func (p *parser) parseLength() (int, error) {
	sign := 1
	if p.tok.Type == TokenMinus {
		sign = -1
		p.advance()
	}
	if p.tok.Type != TokenNumber {
		return 0, p.errorf("expected number, got %s", p.tok.Type)
	}
	n, err := strconv.Atoi(p.tok.Literal)
	if err != nil {
		return 0, p.errorf("bad number %q", p.tok.Literal)
	}
	p.advance()
	if p.tok.Type != TokenIdent || p.tok.Literal != "px" {
		return 0, p.errorf("expected px unit")
	}
	p.advance()
	return sign * n, nil
}

func (p *parser) parseAnchor() (Expr, error) {
	p.advance()
	if err := p.expect(TokenLParen); err != nil {
		return Expr{}, err
	}

	e := Expr{Anchored: true}
	if p.tok.Type == TokenIdent && len(p.tok.Literal) > 2 && p.tok.Literal[:2] == "--" {
		e.Name = p.tok.Literal
		p.advance()
	}
	if p.tok.Type != TokenIdent || !sides[p.tok.Literal] {
		return Expr{}, p.errorf("expected anchor side, got %q", p.tok.Literal)
	}
	e.Side = p.tok.Literal
	p.advance()

	if err := p.expect(TokenRParen); err != nil {
		return Expr{}, err
	}
	return e, nil
}

// parseCalc handles "calc(anchor(...))" and "calc(anchor(...) ± Npx)".
func (p *parser) parseCalc() (Expr, error) {
	p.advance()
	if err := p.expect(TokenLParen); err != nil {
		return Expr{}, err
	}
	if p.tok.Type != TokenIdent || p.tok.Literal != "anchor" {
		return Expr{}, p.errorf("calc must start with anchor()")
	}
	e, err := p.parseAnchor()
	if err != nil {
		return Expr{}, err
	}

	sign := 0
	switch p.tok.Type {
	case TokenPlus:
		sign = 1
	case TokenMinus:
		sign = -1
	}
	if sign != 0 {
		p.advance()
		n, err := p.parseLength()
		if err != nil {
			return Expr{}, err
		}
		e.Length = sign * n
	}

	if err := p.expect(TokenRParen); err != nil {
		return Expr{}, err
	}
	return e, nil
}
