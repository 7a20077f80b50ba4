// Package parser builds syntax trees from the lexer's tokens.
package parser

import (
	"fmt"

	"go.creack.net/minirepl/ast"
	"go.creack.net/minirepl/lexer"
)

type parser struct {
	tokens []lexer.Token
	pos    int

	prevToken lexer.Token
	curToken  lexer.Token

	stmtLookupTable lookupTable[stmtHandler]
}

type Parser interface {
	// NextStatement parses one statement. It returns nil, nil once the
	// end of input is reached.
	NextStatement() (ast.Stmt, error)
}

func newParser(tokens []lexer.Token) *parser {
	// Make sure the stream is terminated even if the caller built it by hand.
	if len(tokens) == 0 || tokens[len(tokens)-1].Type != lexer.TokEOF {
		eofTok := lexer.Token{Type: lexer.TokEOF, Line: 1, Column: 1}
		if len(tokens) > 0 {
			last := tokens[len(tokens)-1]
			eofTok.Line, eofTok.Column = last.Line, last.Column+len(last.Value)
		}
		tokens = append(tokens[:len(tokens):len(tokens)], eofTok)
	}
	p := &parser{
		tokens:          tokens,
		curToken:        tokens[0],
		stmtLookupTable: lookupTable[stmtHandler]{},
	}
	p.createTokenLookups()
	return p
}

func New(tokens []lexer.Token) Parser {
	return newParser(tokens)
}

// Parse parses every statement in tokens. It stops at the first malformed
// statement and returns its *SyntaxError.
func Parse(tokens []lexer.Token) (ast.Program, error) {
	var stmts ast.Program

	p := newParser(tokens)
	for {
		stmt, err := p.NextStatement()
		if err != nil {
			return nil, err
		}
		if stmt == nil {
			break
		}
		stmts = append(stmts, stmt)
	}

	return stmts, nil
}

// ParseString tokenizes and parses src.
func ParseString(src string) (ast.Program, error) {
	tokens, err := lexer.Tokenize(src)
	if err != nil {
		return nil, err
	}
	return Parse(tokens)
}

func (p *parser) NextStatement() (ast.Stmt, error) {
	if p.curToken.Type == lexer.TokEOF {
		return nil, nil
	}
	return parseStmt(p)
}

func (p *parser) nextToken() lexer.Token {
	p.prevToken = p.curToken
	if p.pos < len(p.tokens)-1 {
		p.pos++
	}
	p.curToken = p.tokens[p.pos]
	return p.curToken
}

func (p *parser) peek() lexer.Token {
	if p.pos+1 < len(p.tokens) {
		return p.tokens[p.pos+1]
	}
	return p.tokens[len(p.tokens)-1]
}

// expect consumes the current token if it is of the expected type.
func (p *parser) expect(kind lexer.TokenType, what string) (lexer.Token, error) {
	tok := p.curToken
	if tok.Type != kind {
		return tok, p.errorf(tok, "%s", what)
	}
	p.nextToken()
	return tok, nil
}

func (p *parser) errorf(tok lexer.Token, expected string, args ...any) error {
	return &SyntaxError{
		Line:     tok.Line,
		Column:   tok.Column,
		Expected: fmt.Sprintf(expected, args...),
		Got:      tok,
	}
}

// SyntaxError reports a grammar violation at a given token.
type SyntaxError struct {
	Line     int
	Column   int
	Expected string
	Got      lexer.Token
}

func (e *SyntaxError) Error() string {
	got := fmt.Sprintf("%q", e.Got.Value)
	if e.Got.Type == lexer.TokEOF {
		got = "end of input"
	}
	return fmt.Sprintf("syntax error at line %d, column %d: expected %s, got %s", e.Line, e.Column, e.Expected, got)
}
