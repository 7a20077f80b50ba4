package lexer

import (
	"fmt"
	"slices"
)

// TokenType is the type of token.
type TokenType int

// Token types as constants.
const (
	TokError TokenType = iota
	TokEOF

	// Identifiers + literals.
	TokIdentifier
	TokNumber

	// Keywords.
	TokPrint

	// Operators.
	TokPlus
	TokDash
	TokStar
	TokSlash
	TokEquals

	// Delimiters.
	TokParenLeft
	TokParenRight
	TokSemicolon

	// End of tokens.
	FinalToken
)

// String returns the string representation of the token type.
func (tt TokenType) String() string {
	return tokenTypeStrings[tt]
}

// Map of token types to their string representation for debugging.
var tokenTypeStrings = map[TokenType]string{
	TokError: "ERROR",
	TokEOF:   "EOF",

	TokIdentifier: "IDENTIFIER",
	TokNumber:     "NUMBER",

	TokPrint: "PRINT",

	TokPlus:   "PLUS",
	TokDash:   "MINUS",
	TokStar:   "MULTIPLY",
	TokSlash:  "DIVIDE",
	TokEquals: "ASSIGN",

	TokParenLeft:  "LPAREN",
	TokParenRight: "RPAREN",
	TokSemicolon:  "SEMICOLON",
}

func (tt TokenType) IsOneOf(t ...TokenType) bool {
	return slices.Contains(t, tt)
}

// Kind groups token types into coarse lexical classes.
type Kind int

const (
	KindInvalid Kind = iota
	KindNumber
	KindIdentifier
	KindOperator
	KindDelimiter
	KindKeyword
	KindEOF
)

var kindStrings = [...]string{
	KindInvalid:    "invalid",
	KindNumber:     "number",
	KindIdentifier: "identifier",
	KindOperator:   "operator",
	KindDelimiter:  "delimiter",
	KindKeyword:    "keyword",
	KindEOF:        "end-of-input",
}

func (k Kind) String() string {
	if k < 0 || int(k) >= len(kindStrings) {
		return kindStrings[KindInvalid]
	}
	return kindStrings[k]
}

// Kind returns the lexical class of the token type.
func (tt TokenType) Kind() Kind {
	switch tt {
	case TokNumber:
		return KindNumber
	case TokIdentifier:
		return KindIdentifier
	case TokPrint:
		return KindKeyword
	case TokPlus, TokDash, TokStar, TokSlash, TokEquals:
		return KindOperator
	case TokParenLeft, TokParenRight, TokSemicolon:
		return KindDelimiter
	case TokEOF:
		return KindEOF
	default:
		return KindInvalid
	}
}

// Token represents a lexical token.
type Token struct {
	Type  TokenType
	Value string

	Line   int // 1-based.
	Column int // 1-based, first character of the token.
}

func (t Token) String() string {
	switch {
	case t.Type == TokEOF:
		return "EOF"
	case t.Type == TokError:
		return t.errorString()
	case len(t.Value) > 16:
		return fmt.Sprintf("%s[%d:%d]: %.16q", t.Type, t.Line, t.Column, t.Value)
	}
	return fmt.Sprintf("%s[%d:%d]: %q", t.Type, t.Line, t.Column, t.Value)
}

func (t Token) errorString() string {
	out := fmt.Sprintf("ERROR [%d:%d]: %s", t.Line, t.Column, t.Value)
	return out
}

// LexError is returned when the input contains a character that does not
// start any token.
type LexError struct {
	Char   rune
	Line   int
	Column int
}

func (e *LexError) Error() string {
	return fmt.Sprintf("lex error at line %d, column %d: unexpected character %q", e.Line, e.Column, e.Char)
}
