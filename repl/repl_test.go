package repl

import (
	"bytes"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go.creack.net/minirepl/config"
	"go.creack.net/minirepl/session"
)

type result struct {
	stdout string
	stderr string
}

func run(t *testing.T, cfg config.Config, input string) result {
	t.Helper()
	stdout := bytes.NewBuffer(nil)
	stderr := bytes.NewBuffer(nil)
	r := New(session.New(stdout), NewScanReader(strings.NewReader(input)), stdout, stderr, cfg)
	require.NoError(t, r.Run())
	return result{stdout: stdout.String(), stderr: stderr.String()}
}

func quiet() config.Config {
	cfg := config.Default()
	cfg.Banner = false
	cfg.HistoryFile = ""
	return cfg
}

func TestRun(t *testing.T) {
	tests := []struct {
		name   string
		input  string
		stdout string
		stderr string
	}{
		{
			name:   "statements across lines",
			input:  "x = 5;\ny = x + 1;\nprint(y);\n",
			stdout: "6\n",
		},
		{
			name:   "blank lines",
			input:  "\n   \n\t\nprint(1);\n",
			stdout: "1\n",
		},
		{
			name:   "missing semicolon",
			input:  "x = 5\n",
			stderr: "error: missing ';' at end of statement\n",
		},
		{
			name:   "diagnostic then continue",
			input:  "print(z);\nprint(1);\n",
			stdout: "1\n",
			stderr: "error: semantic error: undefined variable \"z\"\n",
		},
		{
			name:   "lex error",
			input:  "x = 3 @ 4;\n",
			stderr: "error: lex error at line 1, column 7: unexpected character '@'\n",
		},
		{
			name:   "syntax error",
			input:  "print x;\n",
			stderr: "error: syntax error at line 1, column 7: expected '(' after print, got \"x\"\n",
		},
		{
			name:   "runtime fault",
			input:  "print(5 / 0);\n",
			stderr: "error: runtime fault at instruction 1 (%t0 = 5 / 0): division by zero\n",
		},
		{
			name:   "earlier output is replayed",
			input:  "print(1);\nx = 2;\n",
			stdout: "1\n1\n",
		},
		{
			name:   "exit stops reading",
			input:  "print(1);\n:exit\nprint(2);\n",
			stdout: "1\n",
		},
		{
			name:   "quit alias",
			input:  ":q\nprint(2);\n",
			stdout: "",
		},
		{
			name:   "unknown command",
			input:  ":nope\n",
			stderr: "error: unknown command \":nope\", type :help for the list\n",
		},
		{
			name:   "vars empty",
			input:  ":vars\n",
			stdout: "Variables:\n  (none)\n",
		},
		{
			name:   "vars sorted",
			input:  "b = 1; a = 2;\n:v\n",
			stdout: "Variables:\n  a : number\n  b : number\n",
		},
		{
			name:   "clear",
			input:  "x = 1; print(x);\n:clear\n:vars\nprint(x);\n",
			stdout: "1\nSession cleared.\nVariables:\n  (none)\n",
			stderr: "error: semantic error: undefined variable \"x\"\n",
		},
		{
			name:   "tokens",
			input:  ":tokens x = 1;\n",
			stdout: "IDENTIFIER[1:1]: \"x\"\nASSIGN[1:3]: \"=\"\nNUMBER[1:5]: \"1\"\nSEMICOLON[1:6]: \";\"\nEOF\n",
		},
		{
			name:   "tokens error",
			input:  ":tokens x = $;\n",
			stderr: "error: lex error at line 1, column 5: unexpected character '$'\n",
		},
		{
			name:   "ast does not need definitions",
			input:  ":ast x = 1 + y;\n",
			stdout: "Assignment: x\n  BinaryOp: +\n    Number: 1\n    Identifier: y\n",
		},
		{
			name:   "ir",
			input:  "print(2 * 3);\n:ir\n",
			stdout: "6\n1: %t0 = 2 * 3\n2: print %t0\n",
		},
		{
			name:   "ir empty",
			input:  ":ir\n",
			stdout: "(empty)\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := run(t, quiet(), tt.input)
			assert.Equal(t, tt.stdout, res.stdout, "Stdout mismatch")
			assert.Equal(t, tt.stderr, res.stderr, "Stderr mismatch")
		})
	}
}

func TestRunShowIR(t *testing.T) {
	cfg := quiet()
	cfg.ShowIR = true
	res := run(t, cfg, "x = 1;\nprint(x);\n")
	assert.Equal(t, "1: x = 1\n1\n1: x = 1\n2: print x\n", res.stdout)
}

func TestRunBanner(t *testing.T) {
	cfg := quiet()
	cfg.Banner = true
	res := run(t, cfg, ":help\n")
	assert.True(t, strings.HasPrefix(res.stdout, banner))
	assert.Contains(t, res.stdout, help)
	assert.True(t, strings.HasSuffix(res.stdout, "\nBye!\n"))
}

func TestRunDump(t *testing.T) {
	res := run(t, quiet(), "x = 4;\n:dump\n")
	assert.Empty(t, res.stderr)
	for _, want := range []string{"Symbols", `"x"`, "History", "Program", "Store"} {
		assert.Contains(t, res.stdout, want)
	}
}

type fakeReader struct {
	lines   []string
	err     error
	history []string
}

func (f *fakeReader) ReadLine(string) (string, error) {
	if len(f.lines) == 0 {
		if f.err != nil {
			return "", f.err
		}
		return "", io.EOF
	}
	line := f.lines[0]
	f.lines = f.lines[1:]
	return line, nil
}

func (f *fakeReader) AppendHistory(line string) { f.history = append(f.history, line) }

func (*fakeReader) Close() error { return nil }

func TestRunHistory(t *testing.T) {
	reader := &fakeReader{lines: []string{"  x = 1;  ", "", ":vars"}}
	r := New(session.New(io.Discard), reader, io.Discard, io.Discard, quiet())
	require.NoError(t, r.Run())
	assert.Equal(t, []string{"x = 1;", ":vars"}, reader.history)
}

func TestRunReaderError(t *testing.T) {
	errBroken := errors.New("broken terminal")
	reader := &fakeReader{lines: []string{"x = 1;"}, err: errBroken}
	r := New(session.New(io.Discard), reader, io.Discard, io.Discard, quiet())
	err := r.Run()
	require.Error(t, err)
	assert.ErrorIs(t, err, errBroken)
}

func TestComplete(t *testing.T) {
	sess := session.New(io.Discard)
	require.NoError(t, sess.Eval("total = 1; tax = 2; price = 3;"))
	r := New(sess, &fakeReader{}, io.Discard, io.Discard, quiet())

	assert.Equal(t, []string{":vars", ":v"}, r.Complete(":v"))
	assert.Equal(t, []string{"x = tax", "x = total"}, r.Complete("x = t"))
	assert.Equal(t, []string{"print", "price"}, r.Complete("pr"))
	assert.Nil(t, r.Complete("x = "))
	assert.Nil(t, r.Complete("total"))
}
