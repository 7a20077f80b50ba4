package repl

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/peterh/liner"
)

// LineReader yields input lines one at a time. ReadLine returns io.EOF once
// the input is exhausted.
type LineReader interface {
	ReadLine(prompt string) (string, error)
	AppendHistory(line string)
	Close() error
}

// ScanReader reads lines from a plain io.Reader, without prompting.
type ScanReader struct {
	scanner *bufio.Scanner
}

func NewScanReader(r io.Reader) *ScanReader {
	return &ScanReader{scanner: bufio.NewScanner(r)}
}

func (s *ScanReader) ReadLine(string) (string, error) {
	if !s.scanner.Scan() {
		if err := s.scanner.Err(); err != nil {
			return "", err
		}
		return "", io.EOF
	}
	return s.scanner.Text(), nil
}

func (*ScanReader) AppendHistory(string) {}

func (*ScanReader) Close() error { return nil }

// LinerReader is a terminal line editor with history and tab completion.
type LinerReader struct {
	state       *liner.State
	historyFile string
}

// NewLinerReader puts the terminal in raw mode. History is loaded from
// historyFile, when set, and saved back on Close.
func NewLinerReader(historyFile string, complete func(line string) []string) *LinerReader {
	state := liner.NewLiner()
	state.SetCtrlCAborts(true)
	if complete != nil {
		state.SetCompleter(complete)
	}
	if historyFile != "" {
		if f, err := os.Open(historyFile); err == nil {
			_, _ = state.ReadHistory(f) // Best effort.
			_ = f.Close()
		}
	}
	return &LinerReader{state: state, historyFile: historyFile}
}

// TerminalSupported reports whether NewLinerReader can drive the terminal.
func TerminalSupported() bool { return liner.TerminalSupported() }

// ReadLine prompts for a line. Ctrl-C discards the current line.
func (l *LinerReader) ReadLine(prompt string) (string, error) {
	line, err := l.state.Prompt(prompt)
	if errors.Is(err, liner.ErrPromptAborted) {
		return "", nil
	}
	return line, err
}

func (l *LinerReader) AppendHistory(line string) { l.state.AppendHistory(line) }

// Close restores the terminal and writes the history file.
func (l *LinerReader) Close() error {
	var errs []error
	if l.historyFile != "" {
		if f, err := os.Create(l.historyFile); err != nil {
			errs = append(errs, fmt.Errorf("create history %q: %w", l.historyFile, err))
		} else {
			if _, err := l.state.WriteHistory(f); err != nil {
				errs = append(errs, fmt.Errorf("write history %q: %w", l.historyFile, err))
			}
			_ = f.Close()
		}
	}
	if err := l.state.Close(); err != nil {
		errs = append(errs, fmt.Errorf("close terminal: %w", err))
	}
	return errors.Join(errs...)
}
