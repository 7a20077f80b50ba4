package ast

import "strconv"

// Expr is implemented by the nodes that can appear inside a statement.
type Expr interface {
	Node
	expr()
}

// Number is a numeric literal. Literal is the source text; Value is only
// meaningful when Valid reports true.
type Number struct {
	Literal string
	Value   float64
}

// NewNumber builds a Number from its source text. Malformed numerals such
// as 1.2.3 are kept as is and reported when the program runs.
func NewNumber(literal string) *Number {
	v, err := strconv.ParseFloat(literal, 64)
	if err != nil {
		return &Number{Literal: literal}
	}
	return &Number{Literal: literal, Value: v}
}

// Valid reports whether the literal is a well formed numeral.
func (n *Number) Valid() bool {
	_, err := strconv.ParseFloat(n.Literal, 64)
	return err == nil
}

func (*Number) expr() {}

func (n *Number) Dump() string { return n.Literal }

type Identifier struct {
	Name string
}

func (*Identifier) expr() {}

func (i *Identifier) Dump() string { return i.Name }

// Operator is one of the four arithmetic operators.
type Operator string

const (
	OpAdd Operator = "+"
	OpSub Operator = "-"
	OpMul Operator = "*"
	OpDiv Operator = "/"
)

type BinaryOp struct {
	Operator Operator
	Left     Expr
	Right    Expr
}

func (*BinaryOp) expr() {}

func (b *BinaryOp) Dump() string {
	return "(" + b.Left.Dump() + " " + string(b.Operator) + " " + b.Right.Dump() + ")"
}
