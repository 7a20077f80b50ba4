// Package semantic enforces definition before use and the single number
// type over parsed statements.
package semantic

import (
	"fmt"

	"go.creack.net/minirepl/ast"
)

// ErrorKind identifies the rule a statement violated.
type ErrorKind int

const (
	ErrUndefinedVariable ErrorKind = iota + 1
	ErrInvalidOperandType
)

func (k ErrorKind) String() string {
	switch k {
	case ErrUndefinedVariable:
		return "undefined variable"
	case ErrInvalidOperandType:
		return "invalid operand type"
	default:
		return "unknown"
	}
}

// Error is returned when a statement is well formed but invalid.
type Error struct {
	Kind     ErrorKind
	Name     string       // Undefined variable name.
	Operator ast.Operator // Operator with a non number operand.
	Left     Type
	Right    Type
}

func (e *Error) Error() string {
	switch e.Kind {
	case ErrUndefinedVariable:
		return fmt.Sprintf("semantic error: undefined variable %q", e.Name)
	case ErrInvalidOperandType:
		return fmt.Sprintf("semantic error: invalid operand type: operator %q requires %s operands, got %s and %s",
			e.Operator, TypeNumber, e.Left, e.Right)
	default:
		return "semantic error"
	}
}

// Checker validates statements against a symbol table that persists across
// calls.
type Checker struct {
	symbols *SymbolTable
}

func NewChecker() *Checker {
	return &Checker{symbols: NewSymbolTable()}
}

// Symbols returns the checker's table.
func (c *Checker) Symbols() *SymbolTable { return c.symbols }

// Check validates stmts in program order. Either every statement passes and
// their definitions are committed to the table, or the first error is
// returned and the table is left untouched.
func (c *Checker) Check(stmts ast.Program) error {
	staged := c.symbols.Clone()
	for _, stmt := range stmts {
		if err := checkStmt(staged, stmt); err != nil {
			return err
		}
	}
	c.symbols.Restore(staged)
	return nil
}

// CheckStmt validates a single statement and records the variable an
// assignment defines.
func (c *Checker) CheckStmt(stmt ast.Stmt) error {
	return checkStmt(c.symbols, stmt)
}

// TypeOf returns the type of expr without modifying the table.
func (c *Checker) TypeOf(expr ast.Expr) (Type, error) {
	return checkExpr(c.symbols, expr)
}

func checkStmt(symbols *SymbolTable, stmt ast.Stmt) error {
	switch s := stmt.(type) {
	case *ast.Assignment:
		// The right hand side is checked before the variable is defined,
		// `x = x + 1;` needs x from an earlier statement.
		typ, err := checkExpr(symbols, s.Expression)
		if err != nil {
			return err
		}
		symbols.Define(s.Variable, typ)
		return nil
	case *ast.Print:
		_, err := checkExpr(symbols, s.Expression)
		return err
	default:
		panic(fmt.Errorf("unsupported statement type %T", s))
	}
}

func checkExpr(symbols *SymbolTable, expr ast.Expr) (Type, error) {
	switch e := expr.(type) {
	case *ast.Number:
		return TypeNumber, nil
	case *ast.Identifier:
		typ, ok := symbols.Lookup(e.Name)
		if !ok {
			return "", &Error{Kind: ErrUndefinedVariable, Name: e.Name}
		}
		return typ, nil
	case *ast.BinaryOp:
		left, err := checkExpr(symbols, e.Left)
		if err != nil {
			return "", err
		}
		right, err := checkExpr(symbols, e.Right)
		if err != nil {
			return "", err
		}
		if left != TypeNumber || right != TypeNumber {
			return "", &Error{Kind: ErrInvalidOperandType, Operator: e.Operator, Left: left, Right: right}
		}
		return TypeNumber, nil
	default:
		panic(fmt.Errorf("unsupported expression type %T", e))
	}
}
