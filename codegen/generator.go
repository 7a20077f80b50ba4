// Package codegen lowers syntax trees to a linear three operand program.
package codegen

import (
	"fmt"
	"strconv"

	"go.creack.net/minirepl/ast"
)

// TempPrefix starts every temporary name. It can't appear in an
// identifier, so temporaries never shadow user variables.
const TempPrefix = "%t"

// Generator lowers statements. The zero value is ready to use.
type Generator struct {
	instructions Program
	tempCounter  int
}

func NewGenerator() *Generator {
	return &Generator{}
}

// Generate lowers the whole statement sequence into a fresh program. The
// temporary counter restarts at zero, so generating the same statements
// twice yields identical programs.
func (g *Generator) Generate(stmts ast.Program) Program {
	g.instructions = nil
	g.tempCounter = 0
	for _, stmt := range stmts {
		g.generateStatement(stmt)
	}
	return g.instructions
}

// Generate is a shorthand for NewGenerator().Generate(stmts).
func Generate(stmts ast.Program) Program {
	return NewGenerator().Generate(stmts)
}

func (g *Generator) newTemp() string {
	name := TempPrefix + strconv.Itoa(g.tempCounter)
	g.tempCounter++
	return name
}

func (g *Generator) emit(inst Instruction) {
	g.instructions = append(g.instructions, inst)
}

func (g *Generator) generateStatement(stmt ast.Stmt) {
	switch s := stmt.(type) {
	case *ast.Assignment:
		result := g.generateExpression(s.Expression)
		g.emit(Instruction{Op: OpAssign, Arg1: result, Result: s.Variable})
	case *ast.Print:
		result := g.generateExpression(s.Expression)
		g.emit(Instruction{Op: OpPrint, Arg1: result})
	default:
		panic(fmt.Errorf("unsupported statement type %T", s))
	}
}

// generateExpression lowers expr in post order and returns the operand
// holding its value.
func (g *Generator) generateExpression(expr ast.Expr) string {
	switch e := expr.(type) {
	case *ast.Number:
		return FormatNumber(e)
	case *ast.Identifier:
		return e.Name
	case *ast.BinaryOp:
		left := g.generateExpression(e.Left)
		right := g.generateExpression(e.Right)
		temp := g.newTemp()
		g.emit(Instruction{Op: string(e.Operator), Arg1: left, Arg2: right, Result: temp})
		return temp
	default:
		panic(fmt.Errorf("unsupported expression type %T", e))
	}
}

// FormatNumber renders a numeric literal as an operand. Malformed literals
// are passed through untouched.
func FormatNumber(n *ast.Number) string {
	if !n.Valid() {
		return n.Literal
	}
	return strconv.FormatFloat(n.Value, 'g', -1, 64)
}
