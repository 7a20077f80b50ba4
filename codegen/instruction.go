package codegen

import (
	"fmt"
	"strings"
)

// Instruction operators besides the arithmetic ones.
const (
	OpAssign = "="
	OpPrint  = "print"
)

// Instruction is a three operand step. Operands are names (variables or
// temporaries) or numerals rendered as text; the interpreter tells them
// apart when it runs.
type Instruction struct {
	Op     string
	Arg1   string
	Arg2   string // Unused by "=" and "print".
	Result string // Unused by "print".
}

func (i Instruction) String() string {
	switch i.Op {
	case OpAssign:
		return i.Result + " = " + i.Arg1
	case OpPrint:
		return "print " + i.Arg1
	default:
		return i.Result + " = " + i.Arg1 + " " + i.Op + " " + i.Arg2
	}
}

// Program is an ordered list of instructions.
type Program []Instruction

// String renders the listing, one `<index>: <instruction>` line per
// instruction with 1-based indexes.
func (p Program) String() string {
	var sb strings.Builder
	for i, inst := range p {
		fmt.Fprintf(&sb, "%d: %s\n", i+1, inst)
	}
	return sb.String()
}
