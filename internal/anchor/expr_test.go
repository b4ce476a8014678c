package anchor

import (
	"errors"
	"testing"
)

func TestLexer_Tokens(t *testing.T) {
	type tc struct {
		input string
		want  []TokenType
	}

	tests := map[string]tc{
		"length": {
			input: "12px",
			want:  []TokenType{TokenNumber, TokenIdent, TokenEOF},
		},
		"negative length": {
			input: "-3px",
			want:  []TokenType{TokenMinus, TokenNumber, TokenIdent, TokenEOF},
		},
		"named anchor": {
			input: "anchor(--menu-trigger bottom)",
			want:  []TokenType{TokenIdent, TokenLParen, TokenIdent, TokenIdent, TokenRParen, TokenEOF},
		},
		"calc": {
			input: "calc(anchor(top) - 4px)",
			want: []TokenType{
				TokenIdent, TokenLParen,
				TokenIdent, TokenLParen, TokenIdent, TokenRParen,
				TokenMinus, TokenNumber, TokenIdent,
				TokenRParen, TokenEOF,
			},
		},
		"illegal": {
			input: "12%",
			want:  []TokenType{TokenNumber, TokenIllegal, TokenEOF},
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			l := NewLexer(tt.input)
			for i, want := range tt.want {
				tok := l.Next()
				if tok.Type != want {
					t.Fatalf("token %d = %s (%q), want %s", i, tok.Type, tok.Literal, want)
				}
			}
		})
	}
}

func TestParse(t *testing.T) {
	type tc struct {
		input string
		want  Expr
	}

	tests := map[string]tc{
		"length": {
			input: "12px",
			want:  Expr{Length: 12},
		},
		"negative length": {
			input: "-3px",
			want:  Expr{Length: -3},
		},
		"implicit anchor": {
			input: "anchor(bottom)",
			want:  Expr{Anchored: true, Side: "bottom"},
		},
		"named anchor": {
			input: "anchor(--trigger left)",
			want:  Expr{Anchored: true, Name: "--trigger", Side: "left"},
		},
		"calc plus": {
			input: "calc(anchor(right) + 8px)",
			want:  Expr{Anchored: true, Side: "right", Length: 8},
		},
		"calc minus": {
			input: "calc(anchor(--t top) - 4px)",
			want:  Expr{Anchored: true, Name: "--t", Side: "top", Length: -4},
		},
		"calc without length": {
			input: "calc(anchor(center))",
			want:  Expr{Anchored: true, Side: "center"},
		},
		"whitespace": {
			input: "  calc( anchor( top )  +  1px )  ",
			want:  Expr{Anchored: true, Side: "top", Length: 1},
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			got, err := Parse(tt.input)
			if err != nil {
				t.Fatalf("Parse(%q) error = %v", tt.input, err)
			}
			if got != tt.want {
				t.Errorf("Parse(%q) = %+v, want %+v", tt.input, got, tt.want)
			}
		})
	}
}

func TestParse_Errors(t *testing.T) {
	tests := map[string]string{
		"empty":             "",
		"missing unit":      "12",
		"percent":           "50%",
		"unknown side":      "anchor(middle)",
		"unclosed":          "anchor(top",
		"calc of length":    "calc(4px + 2px)",
		"trailing garbage":  "anchor(top) 4px",
		"unknown function":  "min(anchor(top), 4px)",
		"calc bad operator": "calc(anchor(top) + px)",
	}

	for name, input := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := Parse(input)
			var se *SyntaxError
			if !errors.As(err, &se) {
				t.Errorf("Parse(%q) error = %v, want *SyntaxError", input, err)
			}
		})
	}
}

func TestExpr_StringRoundTrip(t *testing.T) {
	inputs := []string{
		"12px",
		"-3px",
		"anchor(bottom)",
		"anchor(--trigger left)",
		"calc(anchor(right) + 8px)",
		"calc(anchor(--t top) - 4px)",
	}

	for _, input := range inputs {
		t.Run(input, func(t *testing.T) {
			e, err := Parse(input)
			if err != nil {
				t.Fatalf("Parse(%q) error = %v", input, err)
			}
			if got := e.String(); got != input {
				t.Errorf("String() = %q, want %q", got, input)
			}
		})
	}
}
