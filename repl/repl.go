// Package repl implements the interactive read loop around a session.
package repl

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"go.creack.net/minirepl/config"
	"go.creack.net/minirepl/session"
)

const banner = `minirepl, an interactive statement calculator

Commands:
  :help    syntax and commands
  :vars    list variables
  :clear   start over
  :exit    quit

Example:
  x = 5 + 3;
  print(x);

`

var errMissingSemicolon = errors.New("missing ';' at end of statement")

type REPL struct {
	session *session.Session
	reader  LineReader
	stdout  io.Writer
	stderr  io.Writer
	cfg     config.Config
}

func New(sess *session.Session, reader LineReader, stdout, stderr io.Writer, cfg config.Config) *REPL {
	return &REPL{
		session: sess,
		reader:  reader,
		stdout:  stdout,
		stderr:  stderr,
		cfg:     cfg,
	}
}

// Run reads and handles lines until :exit or the end of input. Only a
// failure of the reader itself is returned; diagnostics go to stderr and
// the loop goes on.
func (r *REPL) Run() error {
	if r.cfg.Banner {
		fmt.Fprint(r.stdout, banner)
	}
	for {
		line, err := r.reader.ReadLine(r.cfg.Prompt)
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return fmt.Errorf("read line: %w", err)
		}
		if quit := r.Handle(line); quit {
			break
		}
	}
	if r.cfg.Banner {
		fmt.Fprintln(r.stdout, "\nBye!")
	}
	return nil
}

// Handle processes one input line: blank lines are skipped, lines starting
// with ':' are session commands, anything else is evaluated. It reports
// whether the line asked to quit.
func (r *REPL) Handle(line string) (quit bool) {
	trimmed := strings.TrimSpace(line)
	if trimmed == "" {
		return false
	}
	r.reader.AppendHistory(trimmed)

	if strings.HasPrefix(trimmed, ":") {
		return r.command(trimmed)
	}
	if !strings.HasSuffix(trimmed, ";") {
		r.diagnose(errMissingSemicolon)
		return false
	}
	// Evaluate the raw line so reported columns match what was typed.
	if err := r.session.Eval(line); err != nil {
		r.diagnose(err)
		return false
	}
	if r.cfg.ShowIR {
		fmt.Fprint(r.stdout, r.session.Listing())
	}
	return false
}

func (r *REPL) diagnose(err error) {
	fmt.Fprintf(r.stderr, "error: %s\n", err)
}

// Complete returns the completions of line: command names after ':', else
// the keyword and known variables matching the word under the cursor.
func (r *REPL) Complete(line string) []string {
	if strings.HasPrefix(line, ":") {
		var out []string
		for _, cmd := range commandNames {
			if strings.HasPrefix(cmd, line) {
				out = append(out, cmd)
			}
		}
		return out
	}

	start := strings.LastIndexFunc(line, func(c rune) bool { return !isIdentChar(c) }) + 1
	prefix := line[start:]
	if prefix == "" {
		return nil
	}
	var out []string
	for _, word := range append([]string{"print"}, r.session.Symbols().Names()...) {
		if strings.HasPrefix(word, prefix) && word != prefix {
			out = append(out, line[:start]+word)
		}
	}
	return out
}

func isIdentChar(c rune) bool {
	return c == '_' || ('a' <= c && c <= 'z') || ('A' <= c && c <= 'Z') || ('0' <= c && c <= '9')
}
