package evmtac

import (
	"fmt"
	"strings"

	"github.com/evmtac/evmtac/symbol"
	"github.com/evmtac/evmtac/tac"
)

// Program is the result of lowering one opcode stream: the concatenated
// 3AC instruction sequence plus the symbol table that names every value
// the instructions reference.
type Program struct {
	// Code is the emitted instruction sequence, in source opcode order.
	Code []tac.Instruction

	// Symbols is the symbol table for the compilation unit. Every symbol
	// minted during lowering stays valid for the lifetime of the program;
	// later passes thread it through their own rewrites.
	Symbols *symbol.Table

	// Skipped lists opcodes dropped under SkipUnsupported, in stream
	// order. Empty under FailUnsupported.
	Skipped []Op
}

// Disassemble returns a human-readable listing of the program. The
// rendering is deterministic for a given program, so it is usable for
// snapshot-style test assertions.
func (p *Program) Disassemble() string {
	var sb strings.Builder
	for i, instr := range p.Code {
		fmt.Fprintf(&sb, "%04d: %s\n", i, instr)
	}
	return sb.String()
}
