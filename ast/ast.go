// Package ast defines the syntax tree of the statement language.
//
// The node set is closed: Expr is implemented by *Number, *Identifier and
// *BinaryOp, Stmt by *Assignment and *Print. Every non-leaf node owns its
// children, trees are never shared.
package ast

import (
	"fmt"
	"io"
	"strings"
)

// Node is implemented by every syntax tree node.
type Node interface {
	// Dump renders the node back to source text. Binary operations are
	// fully parenthesized so the output parses back to the same tree.
	Dump() string
}

// Program is a sequence of statements in program order.
type Program []Stmt

func (p Program) Dump() string {
	result := ""
	for _, stmt := range p {
		result += fmt.Sprintf("%s\n", stmt.Dump())
	}
	return result
}

// Fprint writes an indented tree representation of node to w.
func Fprint(w io.Writer, node Node) error {
	var sb strings.Builder
	fprint(&sb, node, 0)
	_, err := io.WriteString(w, sb.String())
	return err
}

func fprint(sb *strings.Builder, node Node, depth int) {
	indent := strings.Repeat("  ", depth)
	switch n := node.(type) {
	case *Number:
		fmt.Fprintf(sb, "%sNumber: %s\n", indent, n.Literal)
	case *Identifier:
		fmt.Fprintf(sb, "%sIdentifier: %s\n", indent, n.Name)
	case *BinaryOp:
		fmt.Fprintf(sb, "%sBinaryOp: %s\n", indent, n.Operator)
		fprint(sb, n.Left, depth+1)
		fprint(sb, n.Right, depth+1)
	case *Assignment:
		fmt.Fprintf(sb, "%sAssignment: %s\n", indent, n.Variable)
		fprint(sb, n.Expression, depth+1)
	case *Print:
		fmt.Fprintf(sb, "%sPrint:\n", indent)
		fprint(sb, n.Expression, depth+1)
	case Program:
		for _, stmt := range n {
			fprint(sb, stmt, depth)
		}
	default:
		panic(fmt.Errorf("unsupported node type %T", n))
	}
}
