package lexer

import "strings"

type stateFn func(*Lexer) stateFn

// List of runes that just advance one and emit a token.
var singles = map[rune]TokenType{
	'+': TokPlus,
	'-': TokDash,
	'*': TokStar,
	'/': TokSlash,
	'=': TokEquals,
	'(': TokParenLeft,
	')': TokParenRight,
	';': TokSemicolon,
}

const keywordPrint = "print"

func lexText(l *Lexer) stateFn {
	switch r := l.peek(); {
	case r == eof:
		return l.emit(TokEOF)
	case strings.ContainsRune(whitespace, r):
		l.acceptRun(whitespace)
		l.ignore()
		return lexText
	case strings.ContainsRune(digits, r):
		return lexNumber
	case strings.ContainsRune(letters, r):
		return lexIdentifier
	default:
		if tok, ok := singles[r]; ok {
			l.next()
			return l.emit(tok)
		}
		return l.errorf(r)
	}
}

// lexNumber takes the longest run of digits and dots. Numerals like 1.2.3
// are not rejected here, the interpreter reports them when it resolves the
// operand.
func lexNumber(l *Lexer) stateFn {
	l.acceptRun(numberChars)
	return l.emit(TokNumber)
}

func lexIdentifier(l *Lexer) stateFn {
	l.acceptRun(identChars)
	if l.input[l.start:l.pos] == keywordPrint {
		return l.emit(TokPrint)
	}
	return l.emit(TokIdentifier)
}
