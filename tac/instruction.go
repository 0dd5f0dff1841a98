// Package tac defines the three-address-code instruction set emitted by
// the lowering stage.
//
// The instruction set is closed: nine shapes, each with at most one
// destination and at most two source operands plus an operator. Every
// operand slot holds a symbol.Symbol, never a raw literal; literals are
// threaded through the symbol table first. Instructions are produced,
// never mutated, and are owned by whoever holds the emitted sequence.
package tac

import (
	"fmt"
	"strings"

	"github.com/evmtac/evmtac/symbol"
)

// Instruction is one 3AC operation. The concrete types below form the
// complete set; translator code matches on them exhaustively.
type Instruction interface {
	isInstruction()
	String() string
}

// Assignment is the subset of instructions that write exactly one
// addressable target: Copy, IndexedAssign and IndexedCopy. Holding an
// Assignment is the only way to ask an instruction for its target, so
// the question cannot be put to a shape that has no answer.
type Assignment interface {
	Instruction

	// Target returns the symbol the instruction assigns to.
	Target() symbol.Symbol
}

// BinaryAssign is `x = y op z`.
type BinaryAssign struct {
	X  symbol.Symbol
	Y  symbol.Symbol
	Op Operator
	Z  symbol.Symbol
}

// UnaryAssign is `x = op y`.
type UnaryAssign struct {
	X  symbol.Symbol
	Op Operator
	Y  symbol.Symbol
}

// Branch is an unconditional jump to Target.
type Branch struct {
	Target symbol.Symbol
}

// BranchIf jumps to Target when Cond is nonzero.
type BranchIf struct {
	Cond   symbol.Symbol
	Target symbol.Symbol
}

// CallProc is a void procedure call to one of the effect pseudo-globals.
type CallProc struct {
	Callee symbol.Global
	Args   []symbol.Symbol
}

// CallFunc is a value-returning call: `x = callee(args)`.
type CallFunc struct {
	X      symbol.Symbol
	Callee symbol.Global
	Args   []symbol.Symbol
}

// Copy is `x = y`.
type Copy struct {
	X symbol.Symbol
	Y symbol.Symbol
}

// IndexedAssign is an indexed store: `x[index] = y`.
type IndexedAssign struct {
	X     symbol.Symbol
	Index symbol.Symbol
	Y     symbol.Symbol
}

// IndexedCopy is an indexed load: `x = y[index]`.
type IndexedCopy struct {
	X     symbol.Symbol
	Y     symbol.Symbol
	Index symbol.Symbol
}

func (*BinaryAssign) isInstruction()  {}
func (*UnaryAssign) isInstruction()   {}
func (*Branch) isInstruction()        {}
func (*BranchIf) isInstruction()      {}
func (*CallProc) isInstruction()      {}
func (*CallFunc) isInstruction()      {}
func (*Copy) isInstruction()          {}
func (*IndexedAssign) isInstruction() {}
func (*IndexedCopy) isInstruction()   {}

// Target returns the assigned symbol.
func (i *Copy) Target() symbol.Symbol { return i.X }

// Target returns the assigned symbol.
func (i *IndexedAssign) Target() symbol.Symbol { return i.X }

// Target returns the assigned symbol.
func (i *IndexedCopy) Target() symbol.Symbol { return i.X }

func (i *BinaryAssign) String() string {
	return fmt.Sprintf("%s = %s %s %s", i.X, i.Y, i.Op, i.Z)
}

func (i *UnaryAssign) String() string {
	return fmt.Sprintf("%s = %s %s", i.X, i.Op, i.Y)
}

func (i *Branch) String() string {
	return fmt.Sprintf("branch %s", i.Target)
}

func (i *BranchIf) String() string {
	return fmt.Sprintf("if %s branch %s", i.Cond, i.Target)
}

func (i *CallProc) String() string {
	return fmt.Sprintf("%s(%s)", i.Callee, joinArgs(i.Args))
}

func (i *CallFunc) String() string {
	return fmt.Sprintf("%s = %s(%s)", i.X, i.Callee, joinArgs(i.Args))
}

func (i *Copy) String() string {
	return fmt.Sprintf("%s = %s", i.X, i.Y)
}

func (i *IndexedAssign) String() string {
	return fmt.Sprintf("%s[%s] = %s", i.X, i.Index, i.Y)
}

func (i *IndexedCopy) String() string {
	return fmt.Sprintf("%s = %s[%s]", i.X, i.Y, i.Index)
}

// joinArgs renders a call argument list.
func joinArgs(args []symbol.Symbol) string {
	parts := make([]string, len(args))
	for i, a := range args {
		parts[i] = a.String()
	}
	return strings.Join(parts, ", ")
}
