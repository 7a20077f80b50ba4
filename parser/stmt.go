package parser

import (
	"go.creack.net/minirepl/ast"
	"go.creack.net/minirepl/lexer"
)

func parseStmt(p *parser) (ast.Stmt, error) {
	stmtFn, exists := p.stmtLookupTable[p.curToken.Type]
	if !exists {
		return nil, p.errorf(p.curToken, "statement")
	}
	return stmtFn(p)
}

// parsePrintStmt parses `print ( expression ) ;`.
func parsePrintStmt(p *parser) (ast.Stmt, error) {
	if _, err := p.expect(lexer.TokPrint, "'print'"); err != nil {
		return nil, err
	}
	if _, err := p.expect(lexer.TokParenLeft, "'(' after print"); err != nil {
		return nil, err
	}
	expression, err := parseExpression(p)
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(lexer.TokParenRight, "')'"); err != nil {
		return nil, err
	}
	if _, err := p.expect(lexer.TokSemicolon, "';'"); err != nil {
		return nil, err
	}
	return &ast.Print{Expression: expression}, nil
}

// parseAssignmentStmt parses `IDENTIFIER = expression ;`.
func parseAssignmentStmt(p *parser) (ast.Stmt, error) {
	if p.peek().Type != lexer.TokEquals {
		return nil, p.errorf(p.peek(), "'=' after %q", p.curToken.Value)
	}
	name := p.curToken.Value
	p.nextToken() // Consume the identifier.
	p.nextToken() // Consume the '='.

	expression, err := parseExpression(p)
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(lexer.TokSemicolon, "';'"); err != nil {
		return nil, err
	}
	return &ast.Assignment{Variable: name, Expression: expression}, nil
}
