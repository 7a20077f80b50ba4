package repl

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/sanity-io/litter"

	"go.creack.net/minirepl/ast"
	"go.creack.net/minirepl/codegen"
	"go.creack.net/minirepl/executor"
	"go.creack.net/minirepl/lexer"
	"go.creack.net/minirepl/parser"
)

const help = `Syntax:
  assignment  name = expression;
  print       print(expression);
  operators   + - * /, usual precedence, left associative
  grouping    ( expression )
Several statements may share a line, which must end with ';'.

Commands:
  :help, :h          this help
  :vars, :v          list variables
  :clear, :c         forget all variables and statements
  :exit, :quit, :q   quit
  :tokens <source>   show the tokens of source
  :ast <source>      show the syntax tree of source
  :ir                show the instruction listing of the last line
  :dump              dump the session state

Example:
  x = 10;
  y = x * 2 + 5;
  print(y);
`

var commandNames = []string{
	":help", ":h",
	":vars", ":v",
	":clear", ":c",
	":exit", ":quit", ":q",
	":tokens", ":ast", ":ir", ":dump",
}

// command runs a session command, reporting whether it asked to quit.
func (r *REPL) command(line string) (quit bool) {
	name, arg := line, ""
	if i := strings.IndexFunc(line, unicode.IsSpace); i >= 0 {
		name, arg = line[:i], strings.TrimSpace(line[i:])
	}

	switch name {
	case ":help", ":h":
		fmt.Fprint(r.stdout, help)
	case ":vars", ":v":
		r.showVars()
	case ":clear", ":c":
		r.session.Reset()
		fmt.Fprintln(r.stdout, "Session cleared.")
	case ":exit", ":quit", ":q":
		return true
	case ":tokens":
		r.showTokens(arg)
	case ":ast":
		r.showAST(arg)
	case ":ir":
		if listing := r.session.Listing(); listing != "" {
			fmt.Fprint(r.stdout, listing)
		} else {
			fmt.Fprintln(r.stdout, "(empty)")
		}
	case ":dump":
		r.dump()
	default:
		r.diagnose(fmt.Errorf("unknown command %q, type :help for the list", name))
	}
	return false
}

func (r *REPL) showVars() {
	fmt.Fprintln(r.stdout, "Variables:")
	symbols := r.session.Symbols()
	names := symbols.Names()
	if len(names) == 0 {
		fmt.Fprintln(r.stdout, "  (none)")
		return
	}
	for _, name := range names {
		typ, _ := symbols.Lookup(name)
		fmt.Fprintf(r.stdout, "  %s : %s\n", name, typ)
	}
}

func (r *REPL) showTokens(src string) {
	tokens, err := lexer.Tokenize(src)
	if err != nil {
		r.diagnose(err)
		return
	}
	for _, tok := range tokens {
		fmt.Fprintln(r.stdout, tok)
	}
}

func (r *REPL) showAST(src string) {
	prog, err := parser.ParseString(src)
	if err != nil {
		r.diagnose(err)
		return
	}
	if err := ast.Fprint(r.stdout, prog); err != nil {
		r.diagnose(err)
	}
}

type sessionState struct {
	Symbols []string
	History ast.Program
	Program codegen.Program
	Store   executor.Store
}

func (r *REPL) dump() {
	state := sessionState{
		Symbols: r.session.Symbols().Names(),
		History: r.session.History(),
		Program: r.session.Program(),
		Store:   r.session.Store(),
	}
	fmt.Fprintln(r.stdout, litter.Options{HidePrivateFields: true}.Sdump(state))
}
