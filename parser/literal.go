package parser

import (
	"strconv"
	"strings"

	"github.com/ksgo/ks/ast"
	"github.com/ksgo/ks/lexer"
)

// numberLiteral classifies a NUMBER token's lexeme as integer or floating
// per the lexer's own rule: integer unless a '.' appears in the lexeme.
func numberLiteral(tok lexer.Token) *ast.Literal {
	if strings.Contains(tok.Lexeme, ".") {
		f, err := strconv.ParseFloat(tok.Lexeme, 64)
		if err != nil {
			panic(&ParseError{Line: tok.Line, Message: "malformed float literal " + tok.Lexeme})
		}
		return &ast.Literal{Line: tok.Line, Kind: ast.FloatLiteral, Float: f}
	}
	i, err := strconv.ParseInt(tok.Lexeme, 10, 64)
	if err != nil {
		panic(&ParseError{Line: tok.Line, Message: "malformed integer literal " + tok.Lexeme})
	}
	return &ast.Literal{Line: tok.Line, Kind: ast.IntegerLiteral, Int: i}
}
