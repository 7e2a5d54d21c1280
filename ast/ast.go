// Package ast defines the Abstract Syntax Tree nodes for the xanq
// expression language: identifiers, literals, operators, calls, the
// pipeline notation, and aggregation call lists.
package ast

import (
	"strconv"
	"strings"

	"github.com/ha1tch/xanq/token"
)

// Node represents a node in the AST.
type Node interface {
	TokenLiteral() string
	String() string
}

// Expression represents an expression node.
type Expression interface {
	Node
	expressionNode()
}

// Identifier represents a bare or back-quoted column reference.
type Identifier struct {
	Token token.Token
	Value string
}

func (i *Identifier) expressionNode()      {}
func (i *Identifier) TokenLiteral() string { return i.Token.Literal }
func (i *Identifier) String() string       { return i.Value }

// IntegerLiteral represents an integer literal.
type IntegerLiteral struct {
	Token token.Token
	Value int64
}

func (il *IntegerLiteral) expressionNode()      {}
func (il *IntegerLiteral) TokenLiteral() string { return il.Token.Literal }
func (il *IntegerLiteral) String() string       { return il.Token.Literal }

// FloatLiteral represents a floating point literal.
type FloatLiteral struct {
	Token token.Token
	Value float64
}

func (fl *FloatLiteral) expressionNode()      {}
func (fl *FloatLiteral) TokenLiteral() string { return fl.Token.Literal }
func (fl *FloatLiteral) String() string       { return fl.Token.Literal }

// StringLiteral represents a string literal.
type StringLiteral struct {
	Token token.Token
	Value string
}

func (sl *StringLiteral) expressionNode()      {}
func (sl *StringLiteral) TokenLiteral() string { return sl.Token.Literal }
func (sl *StringLiteral) String() string       { return strconv.Quote(sl.Value) }

// BoolLiteral represents a boolean literal.
type BoolLiteral struct {
	Token token.Token
	Value bool
}

func (bl *BoolLiteral) expressionNode()      {}
func (bl *BoolLiteral) TokenLiteral() string { return bl.Token.Literal }
func (bl *BoolLiteral) String() string       { return bl.Token.Literal }

// NoneLiteral represents the literal absence of a value.
type NoneLiteral struct {
	Token token.Token
}

func (nl *NoneLiteral) expressionNode()      {}
func (nl *NoneLiteral) TokenLiteral() string { return nl.Token.Literal }
func (nl *NoneLiteral) String() string       { return "none" }

// PrefixExpression represents a unary operator applied to an operand.
type PrefixExpression struct {
	Token    token.Token
	Operator string
	Right    Expression
}

func (pe *PrefixExpression) expressionNode()      {}
func (pe *PrefixExpression) TokenLiteral() string { return pe.Token.Literal }
func (pe *PrefixExpression) String() string {
	var out strings.Builder
	out.WriteString("(")
	out.WriteString(pe.Operator)
	out.WriteString(pe.Right.String())
	out.WriteString(")")
	return out.String()
}

// InfixExpression represents a binary operator applied to two operands.
type InfixExpression struct {
	Token    token.Token
	Left     Expression
	Operator string
	Right    Expression
}

func (ie *InfixExpression) expressionNode()      {}
func (ie *InfixExpression) TokenLiteral() string { return ie.Token.Literal }
func (ie *InfixExpression) String() string {
	var out strings.Builder
	out.WriteString("(")
	out.WriteString(ie.Left.String())
	out.WriteString(" ")
	out.WriteString(ie.Operator)
	out.WriteString(" ")
	out.WriteString(ie.Right.String())
	out.WriteString(")")
	return out.String()
}

// CallExpression represents a function call, e.g. sum(a), upper(name).
type CallExpression struct {
	Token     token.Token // the '(' token
	Function  Expression  // an *Identifier naming the function
	Arguments []Expression
}

func (ce *CallExpression) expressionNode()      {}
func (ce *CallExpression) TokenLiteral() string { return ce.Token.Literal }
func (ce *CallExpression) String() string {
	args := make([]string, 0, len(ce.Arguments))
	for _, a := range ce.Arguments {
		args = append(args, a.String())
	}
	var out strings.Builder
	out.WriteString(ce.Function.String())
	out.WriteString("(")
	out.WriteString(strings.Join(args, ", "))
	out.WriteString(")")
	return out.String()
}

// ListLiteral represents a bracketed list constructor, e.g. [1, 2, 3].
type ListLiteral struct {
	Token    token.Token // the '[' token
	Elements []Expression
}

func (ll *ListLiteral) expressionNode()      {}
func (ll *ListLiteral) TokenLiteral() string { return ll.Token.Literal }
func (ll *ListLiteral) String() string {
	elems := make([]string, 0, len(ll.Elements))
	for _, e := range ll.Elements {
		elems = append(elems, e.String())
	}
	return "[" + strings.Join(elems, ", ") + "]"
}

// MapPair is one key:value entry of a MapLiteral.
type MapPair struct {
	Key   Expression
	Value Expression
}

// MapLiteral represents a brace map constructor, e.g. {a: 1, b: 2}.
type MapLiteral struct {
	Token token.Token // the '{' token
	Pairs []MapPair
}

func (ml *MapLiteral) expressionNode()      {}
func (ml *MapLiteral) TokenLiteral() string { return ml.Token.Literal }
func (ml *MapLiteral) String() string {
	pairs := make([]string, 0, len(ml.Pairs))
	for _, p := range ml.Pairs {
		pairs = append(pairs, p.Key.String()+": "+p.Value.String())
	}
	return "{" + strings.Join(pairs, ", ") + "}"
}

// Aggregation represents one parsed `fn(expr) as name` call in an
// aggregation call list (spec.md §3 "Aggregation source"). Name is the
// user-given output name, or empty if it must be synthesized from the
// call's canonical form.
type Aggregation struct {
	Token    token.Token // the function-name identifier token
	FuncName string
	Args     []Expression
	Name     string
}

func (a *Aggregation) TokenLiteral() string { return a.Token.Literal }
func (a *Aggregation) String() string {
	args := make([]string, 0, len(a.Args))
	for _, arg := range a.Args {
		args = append(args, arg.String())
	}
	call := a.FuncName + "(" + strings.Join(args, ", ") + ")"
	if a.Name != "" {
		call += " as " + a.Name
	}
	return call
}
