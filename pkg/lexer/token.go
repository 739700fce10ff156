// Package lexer turns normalized natrix source into a token stream,
// handling the language's significant indentation.
package lexer

import "github.com/tethal/natrix/pkg/diag"

// Kind identifies the category of a Token.
type Kind int

const (
	EOF Kind = iota
	ERROR
	NEWLINE
	INDENT
	DEDENT
	INT_LITERAL
	STRING_LITERAL
	IDENTIFIER
	KW_IF
	KW_ELSE
	KW_ELIF
	KW_WHILE
	KW_PRINT
	KW_PASS
	PLUS
	MINUS
	STAR
	SLASH
	LPAREN
	RPAREN
	LBRACKET
	RBRACKET
	COMMA
	COLON
	EQUALS
	EQ
	NE
	LT
	LE
	GT
	GE
)

var kindNames = [...]string{
	EOF:            "EOF",
	ERROR:          "ERROR",
	NEWLINE:        "NEWLINE",
	INDENT:         "INDENT",
	DEDENT:         "DEDENT",
	INT_LITERAL:    "INT_LITERAL",
	STRING_LITERAL: "STRING_LITERAL",
	IDENTIFIER:     "IDENTIFIER",
	KW_IF:          "KW_IF",
	KW_ELSE:        "KW_ELSE",
	KW_ELIF:        "KW_ELIF",
	KW_WHILE:       "KW_WHILE",
	KW_PRINT:       "KW_PRINT",
	KW_PASS:        "KW_PASS",
	PLUS:           "PLUS",
	MINUS:          "MINUS",
	STAR:           "STAR",
	SLASH:          "SLASH",
	LPAREN:         "LPAREN",
	RPAREN:         "RPAREN",
	LBRACKET:       "LBRACKET",
	RBRACKET:       "RBRACKET",
	COMMA:          "COMMA",
	COLON:          "COLON",
	EQUALS:         "EQUALS",
	EQ:             "EQ",
	NE:             "NE",
	LT:             "LT",
	LE:             "LE",
	GT:             "GT",
	GE:             "GE",
}

func (k Kind) String() string {
	if int(k) >= 0 && int(k) < len(kindNames) && kindNames[k] != "" {
		return kindNames[k]
	}
	return "UNKNOWN"
}

// Token is a classified half-open span of the source buffer. Empty tokens
// (EOF, DEDENT) have From == To.
type Token struct {
	Kind Kind
	diag.Ranging
}

// Text returns the token's lexeme, the slice of src it spans.
func (t Token) Text(src string) string {
	return src[t.From:t.To]
}
