package evmtac

import "fmt"

// Op identifies one instruction of the source stack-machine instruction
// set. Values match the EVM opcode byte encoding. Decoding the raw
// bytecode stream is an upstream concern; an Op arrives already parsed.
type Op uint8

const (
	// Halt and arithmetic
	STOP       Op = 0x00
	ADD        Op = 0x01
	MUL        Op = 0x02
	SUB        Op = 0x03
	DIV        Op = 0x04
	SDIV       Op = 0x05
	MOD        Op = 0x06
	SMOD       Op = 0x07
	ADDMOD     Op = 0x08
	MULMOD     Op = 0x09
	EXP        Op = 0x0a
	SIGNEXTEND Op = 0x0b

	// Comparison and bitwise
	LT     Op = 0x10
	GT     Op = 0x11
	SLT    Op = 0x12
	SGT    Op = 0x13
	EQ     Op = 0x14
	ISZERO Op = 0x15
	AND    Op = 0x16
	OR     Op = 0x17
	XOR    Op = 0x18
	NOT    Op = 0x19
	BYTE   Op = 0x1a
	SHL    Op = 0x1b
	SHR    Op = 0x1c
	SAR    Op = 0x1d

	// Call input data
	CALLDATALOAD Op = 0x35
	CALLDATACOPY Op = 0x37

	// Stack, memory and control flow
	POP      Op = 0x50
	MLOAD    Op = 0x51
	MSTORE   Op = 0x52
	JUMP     Op = 0x56
	JUMPI    Op = 0x57
	JUMPDEST Op = 0x5b

	// Push family: PUSH0 has no payload, PUSHn carries an n-byte
	// big-endian immediate.
	PUSH0  Op = 0x5f
	PUSH1  Op = 0x60
	PUSH32 Op = 0x7f

	// Dup and swap families
	DUP1   Op = 0x80
	DUP16  Op = 0x8f
	SWAP1  Op = 0x90
	SWAP16 Op = 0x9f

	RETURN Op = 0xf3
)

// IsPush reports whether op is PUSH0 through PUSH32.
func (op Op) IsPush() bool { return op >= PUSH0 && op <= PUSH32 }

// PushWidth returns the payload width in bytes of a push opcode.
// PUSH0 has width 0.
func (op Op) PushWidth() int {
	if op == PUSH0 {
		return 0
	}
	return int(op-PUSH1) + 1
}

// IsDup reports whether op is DUP1 through DUP16.
func (op Op) IsDup() bool { return op >= DUP1 && op <= DUP16 }

// DupDepth returns the 1-based stack depth duplicated by a dup opcode.
func (op Op) DupDepth() int { return int(op-DUP1) + 1 }

// IsSwap reports whether op is SWAP1 through SWAP16.
func (op Op) IsSwap() bool { return op >= SWAP1 && op <= SWAP16 }

// SwapDepth returns n for SWAPn: the top of the stack is exchanged with
// the element n slots below it.
func (op Op) SwapDepth() int { return int(op-SWAP1) + 1 }

// String returns the assembler mnemonic for the opcode.
func (op Op) String() string {
	switch {
	case op.IsPush():
		return fmt.Sprintf("PUSH%d", op.PushWidth())
	case op.IsDup():
		return fmt.Sprintf("DUP%d", op.DupDepth())
	case op.IsSwap():
		return fmt.Sprintf("SWAP%d", op.SwapDepth())
	}

	switch op {
	case STOP:
		return "STOP"
	case ADD:
		return "ADD"
	case MUL:
		return "MUL"
	case SUB:
		return "SUB"
	case DIV:
		return "DIV"
	case SDIV:
		return "SDIV"
	case MOD:
		return "MOD"
	case SMOD:
		return "SMOD"
	case ADDMOD:
		return "ADDMOD"
	case MULMOD:
		return "MULMOD"
	case EXP:
		return "EXP"
	case SIGNEXTEND:
		return "SIGNEXTEND"
	case LT:
		return "LT"
	case GT:
		return "GT"
	case SLT:
		return "SLT"
	case SGT:
		return "SGT"
	case EQ:
		return "EQ"
	case ISZERO:
		return "ISZERO"
	case AND:
		return "AND"
	case OR:
		return "OR"
	case XOR:
		return "XOR"
	case NOT:
		return "NOT"
	case BYTE:
		return "BYTE"
	case SHL:
		return "SHL"
	case SHR:
		return "SHR"
	case SAR:
		return "SAR"
	case CALLDATALOAD:
		return "CALLDATALOAD"
	case CALLDATACOPY:
		return "CALLDATACOPY"
	case POP:
		return "POP"
	case MLOAD:
		return "MLOAD"
	case MSTORE:
		return "MSTORE"
	case JUMP:
		return "JUMP"
	case JUMPI:
		return "JUMPI"
	case JUMPDEST:
		return "JUMPDEST"
	case RETURN:
		return "RETURN"
	default:
		return fmt.Sprintf("Op(0x%02x)", uint8(op))
	}
}

// Opcode is one decoded instruction: the opcode byte plus, for the push
// family, the immediate payload.
type Opcode struct {
	Op   Op
	Data []byte
}

// Push builds the push opcode for the given immediate payload. An empty
// payload yields PUSH0. Payloads longer than 32 bytes cannot be encoded
// and are rejected later by Translate.
func Push(data []byte) Opcode {
	switch {
	case len(data) == 0:
		return Opcode{Op: PUSH0}
	case len(data) > 32:
		return Opcode{Op: PUSH32, Data: data}
	default:
		return Opcode{Op: PUSH1 + Op(len(data)-1), Data: data}
	}
}

// String renders the opcode with its payload, if any.
func (o Opcode) String() string {
	if len(o.Data) > 0 {
		return fmt.Sprintf("%s 0x%x", o.Op, o.Data)
	}
	return o.Op.String()
}
