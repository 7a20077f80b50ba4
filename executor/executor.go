// Package executor runs three operand programs.
package executor

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"go.creack.net/minirepl/codegen"
)

// FaultKind identifies why a program stopped.
type FaultKind int

const (
	FaultDivisionByZero FaultKind = iota + 1
	FaultMalformedLiteral
	FaultUndefinedName
	FaultUnknownOperator
)

func (k FaultKind) String() string {
	switch k {
	case FaultDivisionByZero:
		return "division by zero"
	case FaultMalformedLiteral:
		return "malformed numeric literal"
	case FaultUndefinedName:
		return "undefined name"
	case FaultUnknownOperator:
		return "unknown operator"
	default:
		return "unknown fault"
	}
}

// Fault is a runtime error. Instructions after the faulting one are not
// run.
type Fault struct {
	Kind        FaultKind
	Index       int // 1-based, as in the listing.
	Instruction codegen.Instruction
	Operand     string // Offending operand, if any.
}

func (f *Fault) Error() string {
	msg := fmt.Sprintf("runtime fault at instruction %d (%s): %s", f.Index, f.Instruction, f.Kind)
	if f.Operand != "" {
		msg += fmt.Sprintf(" %q", f.Operand)
	}
	return msg
}

// Store maps variables and temporaries to their value.
type Store map[string]float64

type Executor struct {
	stdout io.Writer
	store  Store
}

// New returns an executor printing to stdout, os.Stdout if nil.
func New(stdout io.Writer) *Executor {
	if stdout == nil {
		stdout = os.Stdout
	}
	return &Executor{
		stdout: stdout,
		store:  Store{},
	}
}

// Store returns the values left by the last Execute call. On a fault it
// holds what was written before the faulting instruction.
func (e *Executor) Store() Store { return e.store }

// Execute clears the store and runs prog in order.
func (e *Executor) Execute(prog codegen.Program) error {
	e.store = Store{}
	for i, inst := range prog {
		if err := e.step(inst); err != nil {
			var f *Fault
			if errors.As(err, &f) {
				f.Index = i + 1
				f.Instruction = inst
			}
			return err
		}
	}
	return nil
}

func (e *Executor) step(inst codegen.Instruction) error {
	switch inst.Op {
	case codegen.OpAssign:
		value, err := e.resolve(inst.Arg1)
		if err != nil {
			return err
		}
		e.store[inst.Result] = value
	case codegen.OpPrint:
		value, err := e.resolve(inst.Arg1)
		if err != nil {
			return err
		}
		if _, err := io.WriteString(e.stdout, FormatValue(value)+"\n"); err != nil {
			return fmt.Errorf("write output: %w", err)
		}
	case "+", "-", "*", "/":
		left, err := e.resolve(inst.Arg1)
		if err != nil {
			return err
		}
		right, err := e.resolve(inst.Arg2)
		if err != nil {
			return err
		}
		var result float64
		switch inst.Op {
		case "+":
			result = left + right
		case "-":
			result = left - right
		case "*":
			result = left * right
		case "/":
			if right == 0 {
				return &Fault{Kind: FaultDivisionByZero}
			}
			result = left / right
		}
		e.store[inst.Result] = result
	default:
		return &Fault{Kind: FaultUnknownOperator, Operand: inst.Op}
	}
	return nil
}

// resolve returns the stored value of operand, or parses it as a numeral.
func (e *Executor) resolve(operand string) (float64, error) {
	if value, ok := e.store[operand]; ok {
		return value, nil
	}
	// Numerals always start with a digit, anything else is a name that was
	// never assigned.
	if operand == "" || !strings.ContainsRune("0123456789", rune(operand[0])) {
		return 0, &Fault{Kind: FaultUndefinedName, Operand: operand}
	}
	value, err := strconv.ParseFloat(operand, 64)
	if err != nil {
		return 0, &Fault{Kind: FaultMalformedLiteral, Operand: operand}
	}
	return value, nil
}

// FormatValue renders a printed value: shortest %g form, e.g. 6, 0.5 or
// 1e+06.
func FormatValue(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}
