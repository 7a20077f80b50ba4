package parser

import (
	"go.creack.net/minirepl/ast"
	"go.creack.net/minirepl/lexer"
)

// parseExpression parses `term (('+' | '-') term)*`.
func parseExpression(p *parser) (ast.Expr, error) {
	return parseBinaryExpr(p, additiveOps, parseTerm)
}

// parseTerm parses `factor (('*' | '/') factor)*`.
func parseTerm(p *parser) (ast.Expr, error) {
	return parseBinaryExpr(p, multiplicativeOps, parseFactor)
}

// parseBinaryExpr folds operands of one precedence level into a left
// leaning tree, so `8 - 3 - 2` is `(8 - 3) - 2`.
func parseBinaryExpr(p *parser, ops lookupTable[ast.Operator], operand func(*parser) (ast.Expr, error)) (ast.Expr, error) {
	left, err := operand(p)
	if err != nil {
		return nil, err
	}
	for {
		op, ok := ops[p.curToken.Type]
		if !ok {
			return left, nil
		}
		p.nextToken()
		right, err := operand(p)
		if err != nil {
			return nil, err
		}
		left = &ast.BinaryOp{
			Operator: op,
			Left:     left,
			Right:    right,
		}
	}
}

// parseFactor parses `NUMBER | IDENTIFIER | '(' expression ')'`.
func parseFactor(p *parser) (ast.Expr, error) {
	switch tok := p.curToken; tok.Type {
	case lexer.TokNumber:
		p.nextToken()
		return ast.NewNumber(tok.Value), nil
	case lexer.TokIdentifier:
		p.nextToken()
		return &ast.Identifier{Name: tok.Value}, nil
	case lexer.TokParenLeft:
		p.nextToken()
		expression, err := parseExpression(p)
		if err != nil {
			return nil, err
		}
		if _, err := p.expect(lexer.TokParenRight, "')'"); err != nil {
			return nil, err
		}
		return expression, nil
	default:
		return nil, p.errorf(tok, "expression")
	}
}
