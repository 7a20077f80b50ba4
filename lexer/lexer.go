// Package lexer provides the lexical analyzer for the statement language.
package lexer

import (
	"strings"
	"unicode/utf8"
)

const (
	digits      = "0123456789"
	numberChars = digits + "."
	letters     = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ_"
	identChars  = letters + digits
	whitespace  = " \t\n\r\v\f"
)

const eof rune = -1

type Lexer struct {
	input string

	curToken Token
	err      *LexError

	atEOF bool

	pos     int // Current position in input.
	line    int // Current line in input.
	col     int // Column of the next rune in the current line.
	prevCol int

	start     int // Position of the start of the current token.
	startLine int // Line where the current token started.
	startCol  int // Column where the current token started.
}

// New creates a new Lexer for the given input.
func New(input string) *Lexer {
	l := &Lexer{
		input:     input,
		line:      1,
		col:       1,
		startLine: 1,
		startCol:  1,
	}
	return l
}

// Tokenize consumes the whole source and returns its tokens, terminated by
// a single TokEOF token. On the first unrecognized character it returns a
// *LexError and no tokens.
func Tokenize(source string) ([]Token, error) {
	l := New(source)
	var tokens []Token
	for {
		tok := l.NextToken()
		if tok.Type == TokError {
			return nil, l.err
		}
		tokens = append(tokens, tok)
		if tok.Type == TokEOF {
			return tokens, nil
		}
	}
}

// NextToken returns the next token in the input. Once the input is
// exhausted, or after an error, it keeps returning TokEOF.
func (l *Lexer) NextToken() Token {
	l.curToken = Token{Type: TokEOF, Line: l.line, Column: l.col}
	state := lexText
	for {
		state = state(l)
		if state == nil {
			return l.curToken
		}
	}
}

// Err returns the error that stopped the lexer, if any.
func (l *Lexer) Err() error {
	if l.err == nil {
		return nil
	}
	return l.err
}

func (l *Lexer) next() rune {
	if l.pos >= len(l.input) {
		l.atEOF = true
		return eof
	}
	r, n := utf8.DecodeRuneInString(l.input[l.pos:])
	l.pos += n
	if r == '\n' {
		l.line++
		l.prevCol = l.col
		l.col = 1
	} else {
		l.col++
	}
	return r
}

func (l *Lexer) backup() {
	// If we reached eof, next didn't advance so there is nothing to undo.
	if l.atEOF || l.pos == 0 {
		return
	}
	r, n := utf8.DecodeLastRuneInString(l.input[:l.pos])
	l.pos -= n
	if r == '\n' {
		l.line--
		l.col = l.prevCol
	} else {
		l.col--
	}
}

func (l *Lexer) peek() rune {
	r := l.next()
	l.backup()
	return r
}

func (l *Lexer) acceptRun(valid string) bool {
	accepted := false
	for strings.ContainsRune(valid, l.next()) {
		accepted = true
	}
	l.backup()
	return accepted
}

func (l *Lexer) thisToken(tt TokenType) Token {
	t := Token{
		Type:   tt,
		Value:  l.input[l.start:l.pos],
		Line:   l.startLine,
		Column: l.startCol,
	}
	l.ignore()
	return t
}

func (l *Lexer) emitToken(t Token) stateFn {
	l.curToken = t
	return nil
}

func (l *Lexer) emit(tt TokenType) stateFn {
	return l.emitToken(l.thisToken(tt))
}

func (l *Lexer) ignore() {
	l.start = l.pos
	l.startLine = l.line
	l.startCol = l.col
}

// errorf stops the lexer on r, which has been peeked but not consumed.
func (l *Lexer) errorf(r rune) stateFn {
	l.err = &LexError{Char: r, Line: l.line, Column: l.col}
	l.curToken = Token{
		Type:   TokError,
		Value:  l.err.Error(),
		Line:   l.line,
		Column: l.col,
	}
	l.start = 0
	l.pos = 0
	l.input = l.input[:0]
	return nil
}
