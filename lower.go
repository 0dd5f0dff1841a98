package evmtac

import (
	"fmt"

	"github.com/holiman/uint256"

	"github.com/evmtac/evmtac/symbol"
	"github.com/evmtac/evmtac/tac"
)

// stackPop holds the two instructions of the pop protocol. The load's
// target is the fresh temporary carrying the popped value, so callers can
// cite it as an operand without re-deriving it.
type stackPop struct {
	decrement tac.Instruction
	load      *tac.IndexedCopy
}

// pop emits the pop protocol: the stack height is decremented first, then
// the stack array is indexed at the post-decrement height. Height counts
// live elements, so the top sits at height - 1; decrementing before the
// load yields exactly that index.
func pop(st *symbol.Table) stackPop {
	decrement := decrementHeight(st)
	load := &tac.IndexedCopy{
		X:     st.Temporary(symbol.Word),
		Y:     st.Global(symbol.Stack),
		Index: st.Global(symbol.StackHeight),
	}
	return stackPop{decrement: decrement, load: load}
}

// stackPush holds the two instructions of the push protocol.
type stackPush struct {
	assign    *tac.IndexedAssign
	increment tac.Instruction
}

// push emits the push protocol: the value is stored at the pre-increment
// height (the next free slot), then the height is incremented.
func push(st *symbol.Table, value symbol.Symbol) stackPush {
	assign := &tac.IndexedAssign{
		X:     st.Global(symbol.Stack),
		Index: st.Global(symbol.StackHeight),
		Y:     value,
	}
	return stackPush{assign: assign, increment: incrementHeight(st)}
}

// decrementHeight emits StackHeight = StackHeight - 1.
func decrementHeight(st *symbol.Table) tac.Instruction {
	return &tac.BinaryAssign{
		X:  st.Global(symbol.StackHeight),
		Y:  st.Global(symbol.StackHeight),
		Op: tac.Sub,
		Z:  st.Constant(uint256.NewInt(1), symbol.Int(4)),
	}
}

// incrementHeight emits StackHeight = StackHeight + 1.
func incrementHeight(st *symbol.Table) tac.Instruction {
	return &tac.BinaryAssign{
		X:  st.Global(symbol.StackHeight),
		Y:  st.Global(symbol.StackHeight),
		Op: tac.Add,
		Z:  st.Constant(uint256.NewInt(1), symbol.Int(4)),
	}
}

// binaryOps maps two-operand opcodes to their 3AC operator. The first
// popped value is the left operand.
var binaryOps = map[Op]tac.Operator{
	ADD:        tac.Add,
	MUL:        tac.Mul,
	SUB:        tac.Sub,
	DIV:        tac.Div,
	SDIV:       tac.SDiv,
	MOD:        tac.Mod,
	SMOD:       tac.SMod,
	EXP:        tac.Exp,
	SIGNEXTEND: tac.SignExtend,
	LT:         tac.LessThan,
	GT:         tac.GreaterThan,
	SLT:        tac.SignedLessThan,
	SGT:        tac.SignedGreaterThan,
	EQ:         tac.Eq,
	AND:        tac.And,
	OR:         tac.Or,
	XOR:        tac.Xor,
	BYTE:       tac.Byte,
	SHL:        tac.ShiftLeft,
	SHR:        tac.ShiftRight,
	SAR:        tac.ShiftArithmeticRight,
}

// unaryOps maps one-operand opcodes to their 3AC operator.
var unaryOps = map[Op]tac.Operator{
	ISZERO: tac.IsZero,
	NOT:    tac.Not,
}

// Translate lowers one decoded opcode into the ordered 3AC instruction
// sequence reproducing its effect. It mutates only the symbol table
// (minting constants and temporaries) and holds no state across calls.
//
// Where the opcode's semantics fix an operand evaluation order, the
// emitted pops follow that literal order: each pop has observable
// intermediate state in the stack height counter.
//
// Opcodes with no lowering rule return an *UnsupportedOpcodeError; push
// opcodes whose payload does not match their declared width return an
// *MalformedOpcodeError.
func Translate(op Opcode, st *symbol.Table) ([]tac.Instruction, error) {
	switch op.Op {
	case JUMPDEST:
		// Position marker only; upstream keeps it as a branch anchor.
		return nil, nil

	case STOP:
		return []tac.Instruction{&tac.CallProc{Callee: symbol.Return}}, nil

	case POP:
		// The popped value is discarded, so no load is emitted.
		return []tac.Instruction{decrementHeight(st)}, nil

	case MSTORE:
		offset := pop(st)
		value := pop(st)
		store := &tac.IndexedAssign{
			X:     st.Global(symbol.Memory),
			Index: offset.load.Target(),
			Y:     value.load.Target(),
		}
		return []tac.Instruction{
			offset.decrement, offset.load,
			value.decrement, value.load,
			store,
		}, nil

	case MLOAD:
		offset := pop(st)
		load := &tac.IndexedCopy{
			X:     st.Temporary(symbol.Word),
			Y:     st.Global(symbol.Memory),
			Index: offset.load.Target(),
		}
		pushed := push(st, load.Target())
		return []tac.Instruction{
			offset.decrement, offset.load,
			load,
			pushed.assign, pushed.increment,
		}, nil

	case JUMP:
		target := pop(st)
		branch := &tac.Branch{Target: target.load.Target()}
		return []tac.Instruction{target.decrement, target.load, branch}, nil

	case JUMPI:
		target := pop(st)
		condition := pop(st)
		branch := &tac.BranchIf{
			Cond:   condition.load.Target(),
			Target: target.load.Target(),
		}
		return []tac.Instruction{
			target.decrement, target.load,
			condition.decrement, condition.load,
			branch,
		}, nil

	case RETURN:
		offset := pop(st)
		size := pop(st)
		call := &tac.CallProc{
			Callee: symbol.Return,
			Args:   []symbol.Symbol{offset.load.Target(), size.load.Target()},
		}
		return []tac.Instruction{
			offset.decrement, offset.load,
			size.decrement, size.load,
			call,
		}, nil

	case CALLDATACOPY:
		destOffset := pop(st)
		offset := pop(st)
		size := pop(st)
		call := &tac.CallProc{
			Callee: symbol.MemoryCopy,
			Args: []symbol.Symbol{
				destOffset.load.Target(),
				offset.load.Target(),
				size.load.Target(),
			},
		}
		return []tac.Instruction{
			destOffset.decrement, destOffset.load,
			offset.decrement, offset.load,
			size.decrement, size.load,
			call,
		}, nil

	case CALLDATALOAD:
		index := pop(st)
		load := &tac.IndexedCopy{
			X:     st.Temporary(symbol.Word),
			Y:     st.Global(symbol.CallData),
			Index: index.load.Target(),
		}
		pushed := push(st, load.Target())
		return []tac.Instruction{
			index.decrement, index.load,
			load,
			pushed.assign, pushed.increment,
		}, nil
	}

	switch {
	case op.Op.IsPush():
		return lowerPush(op, st)
	case op.Op.IsDup():
		return lowerDup(op.Op, st), nil
	case op.Op.IsSwap():
		return lowerSwap(op.Op, st), nil
	}

	if operator, ok := binaryOps[op.Op]; ok {
		return lowerBinary(operator, st), nil
	}
	if operator, ok := unaryOps[op.Op]; ok {
		return lowerUnary(operator, st), nil
	}

	return nil, &UnsupportedOpcodeError{Op: op.Op}
}

// lowerPush materializes the push immediate as a constant typed by its
// byte length and emits the push protocol for it. The payload is
// interpreted big-endian. A width mismatch is rejected rather than
// clamped or widened, so the byte-length type hint stays exact.
func lowerPush(op Opcode, st *symbol.Table) ([]tac.Instruction, error) {
	width := op.Op.PushWidth()
	if len(op.Data) != width {
		return nil, &MalformedOpcodeError{
			Op:      op.Op,
			Message: fmt.Sprintf("want %d payload bytes, have %d", width, len(op.Data)),
		}
	}

	var value symbol.Symbol
	if width == 0 {
		// PUSH0 has no payload byte to derive a width from.
		value = st.Constant(uint256.NewInt(0), symbol.Word)
	} else {
		value = st.Constant(new(uint256.Int).SetBytes(op.Data), symbol.Bytes(width))
	}

	pushed := push(st, value)
	return []tac.Instruction{pushed.assign, pushed.increment}, nil
}

// lowerBinary emits pop-pop-apply-push for a two-operand opcode. The
// first pop is the left operand.
func lowerBinary(operator tac.Operator, st *symbol.Table) []tac.Instruction {
	left := pop(st)
	right := pop(st)
	result := &tac.BinaryAssign{
		X:  st.Temporary(symbol.Word),
		Y:  left.load.Target(),
		Op: operator,
		Z:  right.load.Target(),
	}
	pushed := push(st, result.X)
	return []tac.Instruction{
		left.decrement, left.load,
		right.decrement, right.load,
		result,
		pushed.assign, pushed.increment,
	}
}

// lowerUnary emits pop-apply-push for a one-operand opcode.
func lowerUnary(operator tac.Operator, st *symbol.Table) []tac.Instruction {
	operand := pop(st)
	result := &tac.UnaryAssign{
		X:  st.Temporary(symbol.Word),
		Op: operator,
		Y:  operand.load.Target(),
	}
	pushed := push(st, result.X)
	return []tac.Instruction{
		operand.decrement, operand.load,
		result,
		pushed.assign, pushed.increment,
	}
}

// lowerDup re-pushes the n-th live stack element. The element index is
// height - n, computed into a counter-typed temporary.
func lowerDup(op Op, st *symbol.Table) []tac.Instruction {
	n := op.DupDepth()
	index := &tac.BinaryAssign{
		X:  st.Temporary(symbol.Int(4)),
		Y:  st.Global(symbol.StackHeight),
		Op: tac.Sub,
		Z:  st.Constant(uint256.NewInt(uint64(n)), symbol.Int(4)),
	}
	load := &tac.IndexedCopy{
		X:     st.Temporary(symbol.Word),
		Y:     st.Global(symbol.Stack),
		Index: index.X,
	}
	pushed := push(st, load.Target())
	return []tac.Instruction{index, load, pushed.assign, pushed.increment}
}

// lowerSwap exchanges the top stack element with the one n slots below
// it. The height is unchanged, so no counter updates are emitted.
func lowerSwap(op Op, st *symbol.Table) []tac.Instruction {
	n := op.SwapDepth()
	top := &tac.BinaryAssign{
		X:  st.Temporary(symbol.Int(4)),
		Y:  st.Global(symbol.StackHeight),
		Op: tac.Sub,
		Z:  st.Constant(uint256.NewInt(1), symbol.Int(4)),
	}
	deep := &tac.BinaryAssign{
		X:  st.Temporary(symbol.Int(4)),
		Y:  st.Global(symbol.StackHeight),
		Op: tac.Sub,
		Z:  st.Constant(uint256.NewInt(uint64(n+1)), symbol.Int(4)),
	}
	topValue := &tac.IndexedCopy{
		X:     st.Temporary(symbol.Word),
		Y:     st.Global(symbol.Stack),
		Index: top.X,
	}
	deepValue := &tac.IndexedCopy{
		X:     st.Temporary(symbol.Word),
		Y:     st.Global(symbol.Stack),
		Index: deep.X,
	}
	storeTop := &tac.IndexedAssign{
		X:     st.Global(symbol.Stack),
		Index: top.X,
		Y:     deepValue.Target(),
	}
	storeDeep := &tac.IndexedAssign{
		X:     st.Global(symbol.Stack),
		Index: deep.X,
		Y:     topValue.Target(),
	}
	return []tac.Instruction{top, deep, topValue, deepValue, storeTop, storeDeep}
}
