// Package session runs evaluation cycles and owns the state that survives
// between them: the symbol table and the statement history.
//
// Every cycle relowers and re-executes the whole history from an empty
// store. Output of earlier print statements is therefore produced again on
// each cycle; the cost of a line grows with the length of the session.
package session

import (
	"io"
	"log"
	"os"

	"github.com/kr/pretty"

	"go.creack.net/minirepl/ast"
	"go.creack.net/minirepl/codegen"
	"go.creack.net/minirepl/executor"
	"go.creack.net/minirepl/lexer"
	"go.creack.net/minirepl/parser"
	"go.creack.net/minirepl/semantic"
)

// Session is not safe for concurrent use.
type Session struct {
	stdout io.Writer
	logger *log.Logger

	rollback bool

	checker   *semantic.Checker
	history   ast.Program
	generator *codegen.Generator
	executor  *executor.Executor
	program   codegen.Program
}

type Option func(*Session)

// WithLogger traces each stage of the cycle to logger.
func WithLogger(logger *log.Logger) Option {
	return func(s *Session) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// WithRollback controls what happens to a line that passes the semantic
// check but faults at run time. When enabled (the default) its statements
// are dropped from the history and the symbol table is restored, so the
// fault does not repeat on later cycles. When disabled the statements stay
// in the history.
func WithRollback(enabled bool) Option {
	return func(s *Session) {
		s.rollback = enabled
	}
}

// New creates an empty session printing to stdout, os.Stdout if nil.
func New(stdout io.Writer, opts ...Option) *Session {
	if stdout == nil {
		stdout = os.Stdout
	}
	s := &Session{
		stdout:    stdout,
		logger:    log.New(io.Discard, "", 0),
		rollback:  true,
		checker:   semantic.NewChecker(),
		generator: codegen.NewGenerator(),
		executor:  executor.New(stdout),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Eval runs one evaluation cycle over src: tokenize, parse, check, then
// generate and execute the accumulated history. The returned error is one
// of *lexer.LexError, *parser.SyntaxError, *semantic.Error or
// *executor.Fault.
func (s *Session) Eval(src string) error {
	tokens, err := lexer.Tokenize(src)
	if err != nil {
		return err
	}
	s.logger.Printf("tokenize: %d tokens", len(tokens))

	stmts, err := parser.Parse(tokens)
	if err != nil {
		return err
	}
	s.logger.Printf("parse: %# v", pretty.Formatter(stmts))
	if len(stmts) == 0 {
		return nil
	}

	snapshot := s.checker.Symbols().Clone()
	historyLen := len(s.history)

	if err := s.checker.Check(stmts); err != nil {
		return err
	}
	s.history = append(s.history, stmts...)
	s.logger.Printf("check: %d symbols, %d statements in history", s.checker.Symbols().Len(), len(s.history))

	s.program = s.generator.Generate(s.history)
	s.logger.Printf("generate: %d instructions", len(s.program))

	if err := s.executor.Execute(s.program); err != nil {
		if s.rollback {
			s.history = s.history[:historyLen:historyLen]
			s.checker.Symbols().Restore(snapshot)
			s.logger.Printf("execute: %s, rolled back to %d statements", err, historyLen)
		}
		return err
	}
	s.logger.Printf("execute: ok, %d values in store", len(s.executor.Store()))
	return nil
}

// Symbols returns the session's symbol table.
func (s *Session) Symbols() *semantic.SymbolTable { return s.checker.Symbols() }

// History returns the statements accepted so far, in program order.
func (s *Session) History() ast.Program { return s.history }

// Program returns the instructions generated by the last cycle.
func (s *Session) Program() codegen.Program { return s.program }

// Listing returns the textual listing of Program.
func (s *Session) Listing() string { return s.program.String() }

// Store returns the evaluation store left by the last cycle.
func (s *Session) Store() executor.Store { return s.executor.Store() }

// Reset brings the session back to its initial state.
func (s *Session) Reset() {
	s.checker.Symbols().Reset()
	s.history = nil
	s.program = nil
	s.executor = executor.New(s.stdout)
	s.logger.Printf("reset")
}
