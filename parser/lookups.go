package parser

import (
	"go.creack.net/minirepl/ast"
	"go.creack.net/minirepl/lexer"
)

type stmtHandler func(*parser) (ast.Stmt, error)

type lookupTable[T any] map[lexer.TokenType]T

func (p *parser) stmt(kind lexer.TokenType, fn stmtHandler) {
	if _, ok := p.stmtLookupTable[kind]; ok {
		panic("duplicate stmt handler")
	}
	p.stmtLookupTable[kind] = fn
}

func (p *parser) createTokenLookups() {
	p.stmt(lexer.TokPrint, parsePrintStmt)
	p.stmt(lexer.TokIdentifier, parseAssignmentStmt)
}

// Binary operators per precedence level.
var (
	additiveOps = lookupTable[ast.Operator]{
		lexer.TokPlus: ast.OpAdd,
		lexer.TokDash: ast.OpSub,
	}
	multiplicativeOps = lookupTable[ast.Operator]{
		lexer.TokStar:  ast.OpMul,
		lexer.TokSlash: ast.OpDiv,
	}
)
