package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	"go.creack.net/minirepl/config"
	"go.creack.net/minirepl/repl"
	"go.creack.net/minirepl/session"
)

func isTerminal(f *os.File) bool {
	fi, err := f.Stat()
	return err == nil && fi.Mode()&os.ModeCharDevice != 0
}

// newReader picks the input: the -e snippet, a source file, the terminal
// line editor, or plain stdin.
func newReader(cfg *config.Config, src string, args []string, complete func(string) []string) (repl.LineReader, error) {
	switch {
	case src != "":
		cfg.Banner = false
		return repl.NewScanReader(strings.NewReader(src)), nil
	case len(args) > 0:
		f, err := os.Open(args[0])
		if err != nil {
			return nil, fmt.Errorf("open source: %w", err)
		}
		cfg.Banner = false
		return &fileReader{ScanReader: repl.NewScanReader(f), file: f}, nil
	case isTerminal(os.Stdin) && repl.TerminalSupported():
		return repl.NewLinerReader(cfg.HistoryFile, complete), nil
	default:
		cfg.Banner = false
		return repl.NewScanReader(os.Stdin), nil
	}
}

type fileReader struct {
	*repl.ScanReader
	file *os.File
}

func (f *fileReader) Close() error { return f.file.Close() }

func run(cfg config.Config, src string, args []string) (err error) {
	logger := log.New(io.Discard, "minirepl: ", log.LstdFlags)
	if cfg.Verbose {
		logger.SetOutput(os.Stderr)
	}
	sess := session.New(os.Stdout, session.WithRollback(cfg.Rollback), session.WithLogger(logger))

	var r *repl.REPL
	reader, err := newReader(&cfg, src, args, func(line string) []string { return r.Complete(line) })
	if err != nil {
		return err
	}
	defer func() { err = errors.Join(err, reader.Close()) }()

	r = repl.New(sess, reader, os.Stdout, os.Stderr, cfg)
	return r.Run()
}

func main() {
	fs := flag.NewFlagSet("minirepl", flag.ExitOnError)
	fs.Usage = func() {
		fmt.Fprintf(fs.Output(), "Usage: minirepl [flags] [file]\n\n")
		fs.PrintDefaults()
	}
	src := fs.String("e", "", "evaluate the given statements and exit")

	cfg, err := config.Parse(fs, os.Args[1:])
	if err != nil {
		log.Fatalf("Fail: %s.", err)
	}
	if err := run(cfg, *src, fs.Args()); err != nil {
		log.Fatalf("Fail: %s.", err)
	}
}
