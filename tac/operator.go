package tac

import "fmt"

// Operator is one arithmetic, comparison, bitwise or shift operation.
// Signed and unsigned variants are distinct operators.
type Operator uint8

const (
	// Arithmetic
	Add Operator = iota
	Mul
	Sub
	Div
	SDiv
	Mod
	SMod
	AddMod
	MulMod
	Exp
	SignExtend

	// Comparison
	LessThan
	GreaterThan
	SignedLessThan
	SignedGreaterThan
	Eq
	IsZero

	// Bitwise and shifts
	And
	Or
	Xor
	Not
	Byte
	ShiftLeft
	ShiftRight
	ShiftArithmeticRight
)

// String returns the operator name as it appears in rendered instructions.
func (op Operator) String() string {
	switch op {
	case Add:
		return "Add"
	case Mul:
		return "Mul"
	case Sub:
		return "Sub"
	case Div:
		return "Div"
	case SDiv:
		return "SDiv"
	case Mod:
		return "Mod"
	case SMod:
		return "SMod"
	case AddMod:
		return "AddMod"
	case MulMod:
		return "MulMod"
	case Exp:
		return "Exp"
	case SignExtend:
		return "SignExtend"
	case LessThan:
		return "LessThan"
	case GreaterThan:
		return "GreaterThan"
	case SignedLessThan:
		return "SignedLessThan"
	case SignedGreaterThan:
		return "SignedGreaterThan"
	case Eq:
		return "Eq"
	case IsZero:
		return "IsZero"
	case And:
		return "And"
	case Or:
		return "Or"
	case Xor:
		return "Xor"
	case Not:
		return "Not"
	case Byte:
		return "Byte"
	case ShiftLeft:
		return "ShiftLeft"
	case ShiftRight:
		return "ShiftRight"
	case ShiftArithmeticRight:
		return "ShiftArithmeticRight"
	default:
		return fmt.Sprintf("Operator(%d)", op)
	}
}
