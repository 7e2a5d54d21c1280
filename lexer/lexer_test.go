package lexer

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/ha1tch/xanq/token"
)

func TestNextTokenBasicExpression(t *testing.T) {
	input := "sum(a, b) as s"

	expected := []struct {
		typ     token.Type
		literal string
	}{
		{token.IDENT, "sum"},
		{token.LPAREN, "("},
		{token.IDENT, "a"},
		{token.COMMA, ","},
		{token.IDENT, "b"},
		{token.RPAREN, ")"},
		{token.AS, "as"},
		{token.IDENT, "s"},
		{token.EOF, ""},
	}

	l := New(input)
	for i, e := range expected {
		tok := l.NextToken()
		require.Equalf(t, e.typ, tok.Type, "token %d literal %q", i, tok.Literal)
		require.Equal(t, e.literal, tok.Literal, "token %d", i)
	}
}

func TestNextTokenOperators(t *testing.T) {
	input := "1 + 2 * 3 / 4 % 5 == 6 != 7 <= 8 >= 9 && 10 || 11 | 12 ! 13"

	types := []token.Type{
		token.INT, token.PLUS, token.INT, token.ASTERISK, token.INT, token.SLASH,
		token.INT, token.PERCENT, token.INT, token.EQ, token.INT, token.NEQ,
		token.INT, token.LTE, token.INT, token.GTE, token.INT, token.AND,
		token.INT, token.OR, token.INT, token.PIPE, token.INT, token.BANG,
		token.INT, token.EOF,
	}

	l := New(input)
	for i, typ := range types {
		tok := l.NextToken()
		require.Equalf(t, typ, tok.Type, "token %d literal %q", i, tok.Literal)
	}
}

func TestNextTokenStringLiterals(t *testing.T) {
	input := `"hello" 'world' 'it''s'`

	l := New(input)

	tok := l.NextToken()
	require.Equal(t, token.STRING, tok.Type)
	require.Equal(t, "hello", tok.Literal)

	tok = l.NextToken()
	require.Equal(t, token.STRING, tok.Type)
	require.Equal(t, "world", tok.Literal)

	tok = l.NextToken()
	require.Equal(t, token.STRING, tok.Type)
	require.Equal(t, "it's", tok.Literal)
}

func TestNextTokenNumbers(t *testing.T) {
	cases := []struct {
		input string
		typ   token.Type
	}{
		{"123", token.INT},
		{"123.45", token.FLOAT},
		{"1e9", token.FLOAT},
		{"1.5e-3", token.FLOAT},
	}

	for _, c := range cases {
		l := New(c.input)
		tok := l.NextToken()
		require.Equal(t, c.typ, tok.Type, c.input)
		require.Equal(t, c.input, tok.Literal, c.input)
	}
}

func TestNextTokenBackQuotedIdentifier(t *testing.T) {
	l := New("`column with spaces`")
	tok := l.NextToken()
	require.Equal(t, token.IDENT, tok.Type)
	require.Equal(t, "column with spaces", tok.Literal)
}

func TestNextTokenKeywords(t *testing.T) {
	cases := []struct {
		input string
		typ   token.Type
	}{
		{"true", token.TRUE},
		{"false", token.FALSE},
		{"none", token.NONE},
		{"as", token.AS},
		{"AS", token.AS},
	}
	for _, c := range cases {
		l := New(c.input)
		tok := l.NextToken()
		require.Equal(t, c.typ, tok.Type, c.input)
	}
}

func TestTokenizeEndsWithEOF(t *testing.T) {
	tokens := Tokenize("a + b")
	require.NotEmpty(t, tokens)
	require.Equal(t, token.EOF, tokens[len(tokens)-1].Type)
}

func TestNextTokenIllegal(t *testing.T) {
	l := New("@")
	tok := l.NextToken()
	require.Equal(t, token.ILLEGAL, tok.Type)
}
