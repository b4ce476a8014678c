package anchor

import (
	"fmt"
	"unicode/utf8"
)

// TokenType identifies a lexical token in an inset expression.
type TokenType int

const (
	TokenEOF TokenType = iota
	TokenIdent
	TokenNumber
	TokenLParen
	TokenRParen
	TokenPlus
	TokenMinus
	TokenIllegal
)

var tokenNames = map[TokenType]string{
	TokenEOF:     "EOF",
	TokenIdent:   "identifier",
	TokenNumber:  "number",
	TokenLParen:  "'('",
	TokenRParen:  "')'",
	TokenPlus:    "'+'",
	TokenMinus:   "'-'",
	TokenIllegal: "illegal",
}

func (t TokenType) String() string {
	if s, ok := tokenNames[t]; ok {
		return s
	}
	return fmt.Sprintf("token(%d)", int(t))
}

// Token is a single lexical unit with its byte offset.
type Token struct {
	Type    TokenType
	Literal string
	Pos     int
}

// Lexer tokenizes one inset expression.
type Lexer struct {
	source  string
	pos     int  // current position in source
	readPos int  // next position to read
	ch      rune // current character
}

// NewLexer creates a Lexer for source.
func NewLexer(source string) *Lexer {
	l := &Lexer{source: source}
	l.readChar()
	return l
}

func (l *Lexer) readChar() {
	if l.readPos >= len(l.source) {
		l.ch = 0
		l.pos = l.readPos
		return
	}
	r, size := utf8.DecodeRuneInString(l.source[l.readPos:])
	l.ch = r
	l.pos = l.readPos
	l.readPos += size
}

func (l *Lexer) peekChar() rune {
	if l.readPos >= len(l.source) {
		return 0
	}
	r, _ := utf8.DecodeRuneInString(l.source[l.readPos:])
	return r
}

func (l *Lexer) skipWhitespace() {
	for l.ch == ' ' || l.ch == '\t' || l.ch == '\n' || l.ch == '\r' {
		l.readChar()
	}
}

// Next returns the next token.
func (l *Lexer) Next() Token {
	l.skipWhitespace()
	start := l.pos

	switch {
	case l.ch == 0:
		return Token{Type: TokenEOF, Pos: start}
	case l.ch == '(':
		l.readChar()
		return Token{Type: TokenLParen, Literal: "(", Pos: start}
	case l.ch == ')':
		l.readChar()
		return Token{Type: TokenRParen, Literal: ")", Pos: start}
	case l.ch == '+':
		l.readChar()
		return Token{Type: TokenPlus, Literal: "+", Pos: start}
	case l.ch == '-' && (l.peekChar() == '-' || isLetter(l.peekChar())):
		return Token{Type: TokenIdent, Literal: l.readIdent(), Pos: start}
	case l.ch == '-':
		l.readChar()
		return Token{Type: TokenMinus, Literal: "-", Pos: start}
	case isDigit(l.ch):
		return Token{Type: TokenNumber, Literal: l.readNumber(), Pos: start}
	case isLetter(l.ch):
		return Token{Type: TokenIdent, Literal: l.readIdent(), Pos: start}
	}

	ch := l.ch
	l.readChar()
	return Token{Type: TokenIllegal, Literal: string(ch), Pos: start}
}

// readIdent reads letters, digits, '-' and '_'. Dashed idents such as
// "--trigger" and units such as "px" both come through here.
func (l *Lexer) readIdent() string {
	start := l.pos
	for isLetter(l.ch) || isDigit(l.ch) || l.ch == '-' || l.ch == '_' {
		l.readChar()
	}
	return l.source[start:l.pos]
}

func (l *Lexer) readNumber() string {
	start := l.pos
	for isDigit(l.ch) {
		l.readChar()
	}
	return l.source[start:l.pos]
}

func isLetter(ch rune) bool {
	return (ch >= 'a' && ch <= 'z') || (ch >= 'A' && ch <= 'Z')
}

func isDigit(ch rune) bool {
	return ch >= '0' && ch <= '9'
}
