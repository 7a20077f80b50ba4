package ast

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleProgram() Program {
	return Program{
		&Assignment{
			Variable: "x",
			Expression: &BinaryOp{
				Operator: OpAdd,
				Left:     NewNumber("2"),
				Right: &BinaryOp{
					Operator: OpMul,
					Left:     &Identifier{Name: "y"},
					Right:    NewNumber("4.5"),
				},
			},
		},
		&Print{Expression: &Identifier{Name: "x"}},
	}
}

func TestDump(t *testing.T) {
	prog := sampleProgram()
	assert.Equal(t, "x = (2 + (y * 4.5));\nprint(x);\n", prog.Dump())
}

func TestFprint(t *testing.T) {
	var sb strings.Builder
	require.NoError(t, Fprint(&sb, sampleProgram()))
	expected := `Assignment: x
  BinaryOp: +
    Number: 2
    BinaryOp: *
      Identifier: y
      Number: 4.5
Print:
  Identifier: x
`
	assert.Equal(t, expected, sb.String())
}

func TestNewNumber(t *testing.T) {
	n := NewNumber("4.5")
	assert.True(t, n.Valid())
	assert.Equal(t, 4.5, n.Value)

	bad := NewNumber("1.2.3")
	assert.False(t, bad.Valid())
	assert.Equal(t, "1.2.3", bad.Literal)
	assert.Equal(t, "1.2.3", bad.Dump())
}
