package ast

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/ha1tch/xanq/token"
)

func TestInfixExpressionString(t *testing.T) {
	expr := &InfixExpression{
		Token:    token.Token{Type: token.PLUS, Literal: "+"},
		Left:     &Identifier{Token: token.Token{Literal: "a"}, Value: "a"},
		Operator: "+",
		Right:    &IntegerLiteral{Token: token.Token{Literal: "1"}, Value: 1},
	}

	require.Equal(t, "(a + 1)", expr.String())
}

func TestCallExpressionString(t *testing.T) {
	call := &CallExpression{
		Function: &Identifier{Value: "sum"},
		Arguments: []Expression{
			&Identifier{Value: "a"},
		},
	}

	require.Equal(t, "sum(a)", call.String())
}

func TestAggregationStringSynthesizesNothingWhenNamed(t *testing.T) {
	agg := &Aggregation{
		FuncName: "sum",
		Args:     []Expression{&Identifier{Value: "a"}},
		Name:     "s",
	}

	require.Equal(t, "sum(a) as s", agg.String())
}

func TestListLiteralString(t *testing.T) {
	list := &ListLiteral{
		Elements: []Expression{
			&IntegerLiteral{Token: token.Token{Literal: "1"}, Value: 1},
			&IntegerLiteral{Token: token.Token{Literal: "2"}, Value: 2},
		},
	}

	require.Equal(t, "[1, 2]", list.String())
}
