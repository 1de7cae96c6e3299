package lexer

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func kinds(tokens []Token) []TokenType {
	out := make([]TokenType, len(tokens))
	for i, t := range tokens {
		out[i] = t.Kind
	}
	return out
}

func TestTokenizeOperators(t *testing.T) {
	tokens, err := Tokenize("+ - * / % = == != < > <= >= && || !")
	require.NoError(t, err)

	want := []TokenType{PLUS, MINUS, STAR, SLASH, PERCENT, ASSIGN, EQ, NOT_EQ,
		LT, GT, LT_EQ, GT_EQ, AND, OR, BANG, EOF}
	if diff := cmp.Diff(want, kinds(tokens)); diff != "" {
		t.Fatalf("token kinds mismatch (-want +got):\n%s", diff)
	}
}

func TestTokenizeKeywordsAndBooleans(t *testing.T) {
	tokens, err := Tokenize("let func if else for while return gorun null true false x")
	require.NoError(t, err)

	want := []TokenType{LET, FUNC, IF, ELSE, FOR, WHILE, RETURN, GORUN, NULL,
		BOOLEAN, BOOLEAN, IDENTIFIER, EOF}
	assert.Equal(t, want, kinds(tokens))
}

func TestTokenizeNumberLiterals(t *testing.T) {
	tokens, err := Tokenize("42 3.14")
	require.NoError(t, err)
	require.Len(t, tokens, 3)
	assert.Equal(t, "42", tokens[0].Lexeme)
	assert.Equal(t, "3.14", tokens[1].Lexeme)
}

func TestTokenizeStringEscapes(t *testing.T) {
	tokens, err := Tokenize(`"a\nb\tc\\d\"e\qf"`)
	require.NoError(t, err)
	require.Len(t, tokens, 2)
	assert.Equal(t, "a\nb\tc\\d\"eqf", tokens[0].Lexeme)
}

func TestTokenizeUnterminatedStringIsNotAnError(t *testing.T) {
	tokens, err := Tokenize(`"unterminated`)
	require.NoError(t, err)
	require.Len(t, tokens, 2)
	assert.Equal(t, "unterminated", tokens[0].Lexeme)
}

func TestTokenizeUnknownCharacterFails(t *testing.T) {
	_, err := Tokenize("@")
	require.Error(t, err)
	var lexErr *LexError
	require.ErrorAs(t, err, &lexErr)
	assert.Equal(t, 1, lexErr.Line)
	assert.Equal(t, 1, lexErr.Column)
}

func TestLineColumnTracking(t *testing.T) {
	tokens, err := Tokenize("let x\n= 1;")
	require.NoError(t, err)

	// tokens: let(1,1) x(1,5) NEWLINE(1,6) =(2,1) 1(2,3) ;(2,4) EOF
	require.True(t, len(tokens) >= 4)
	assign := tokens[3]
	assert.Equal(t, ASSIGN, assign.Kind)
	assert.Equal(t, 2, assign.Line)
	assert.Equal(t, 1, assign.Column)
}

func TestCommentsAreSkipped(t *testing.T) {
	tokens, err := Tokenize("let x = 1; // trailing comment\ngorun(x);")
	require.NoError(t, err)
	assert.Contains(t, kinds(tokens), GORUN)
}
