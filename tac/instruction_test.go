package tac

import (
	"testing"

	"github.com/holiman/uint256"

	"github.com/evmtac/evmtac/symbol"
)

func TestInstructionString(t *testing.T) {
	st := symbol.NewTable()
	t0 := st.Temporary(symbol.Word) // renders as t0
	t1 := st.Temporary(symbol.Word) // renders as t1
	one := st.Constant(uint256.NewInt(1), symbol.Int(4))
	height := st.Global(symbol.StackHeight)
	stack := st.Global(symbol.Stack)
	memory := st.Global(symbol.Memory)

	tests := []struct {
		name  string
		instr Instruction
		want  string
	}{
		{
			name:  "binary assign",
			instr: &BinaryAssign{X: height, Y: height, Op: Add, Z: one},
			want:  "StackHeight = StackHeight Add 1",
		},
		{
			name:  "unary assign",
			instr: &UnaryAssign{X: t0, Op: IsZero, Y: t1},
			want:  "t0 = IsZero t1",
		},
		{
			name:  "branch",
			instr: &Branch{Target: t0},
			want:  "branch t0",
		},
		{
			name:  "conditional branch",
			instr: &BranchIf{Cond: t1, Target: t0},
			want:  "if t1 branch t0",
		},
		{
			name:  "procedure call",
			instr: &CallProc{Callee: symbol.Return, Args: []symbol.Symbol{t0, t1}},
			want:  "Return(t0, t1)",
		},
		{
			name:  "procedure call without arguments",
			instr: &CallProc{Callee: symbol.Return},
			want:  "Return()",
		},
		{
			name:  "function call",
			instr: &CallFunc{X: t0, Callee: symbol.MemoryCopy, Args: []symbol.Symbol{t1}},
			want:  "t0 = MemoryCopy(t1)",
		},
		{
			name:  "copy",
			instr: &Copy{X: t0, Y: t1},
			want:  "t0 = t1",
		},
		{
			name:  "indexed assign",
			instr: &IndexedAssign{X: stack, Index: height, Y: one},
			want:  "Stack[StackHeight] = 1",
		},
		{
			name:  "indexed copy",
			instr: &IndexedCopy{X: t0, Y: memory, Index: t1},
			want:  "t0 = Memory[t1]",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.instr.String(); got != tt.want {
				t.Errorf("String() = %q, want %q", got, tt.want)
			}
			// Rendering must be deterministic for a fixed value.
			if again := tt.instr.String(); again != tt.want {
				t.Errorf("second String() = %q, want %q", again, tt.want)
			}
		})
	}
}

func TestAssignmentTarget(t *testing.T) {
	st := symbol.NewTable()
	t0 := st.Temporary(symbol.Word)
	t1 := st.Temporary(symbol.Word)
	stack := st.Global(symbol.Stack)
	height := st.Global(symbol.StackHeight)

	tests := []struct {
		name   string
		assign Assignment
		want   symbol.Symbol
	}{
		{"copy", &Copy{X: t0, Y: t1}, t0},
		{"indexed assign", &IndexedAssign{X: stack, Index: height, Y: t0}, stack},
		{"indexed copy", &IndexedCopy{X: t1, Y: stack, Index: height}, t1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.assign.Target(); got != tt.want {
				t.Errorf("Target() = %s, want %s", got, tt.want)
			}
		})
	}
}

func TestOperatorString(t *testing.T) {
	tests := []struct {
		op   Operator
		want string
	}{
		{Add, "Add"},
		{Mul, "Mul"},
		{Sub, "Sub"},
		{Div, "Div"},
		{SDiv, "SDiv"},
		{Mod, "Mod"},
		{SMod, "SMod"},
		{AddMod, "AddMod"},
		{MulMod, "MulMod"},
		{Exp, "Exp"},
		{SignExtend, "SignExtend"},
		{LessThan, "LessThan"},
		{GreaterThan, "GreaterThan"},
		{SignedLessThan, "SignedLessThan"},
		{SignedGreaterThan, "SignedGreaterThan"},
		{Eq, "Eq"},
		{IsZero, "IsZero"},
		{And, "And"},
		{Or, "Or"},
		{Xor, "Xor"},
		{Not, "Not"},
		{Byte, "Byte"},
		{ShiftLeft, "ShiftLeft"},
		{ShiftRight, "ShiftRight"},
		{ShiftArithmeticRight, "ShiftArithmeticRight"},
		{Operator(200), "Operator(200)"},
	}

	for _, tt := range tests {
		if got := tt.op.String(); got != tt.want {
			t.Errorf("Operator(%d).String() = %q, want %q", tt.op, got, tt.want)
		}
	}
}
