// Package evmtac lowers EVM bytecode into a three-address-code (3AC)
// intermediate representation suitable for later analysis, optimization
// and code generation.
//
// The input is a stream of already-decoded opcodes; decoding the raw
// byte stream is an upstream concern. For each opcode the translator
// emits an ordered sequence of straight-line, side-effect-explicit
// instructions that reproduces the opcode's stack-machine semantics:
// the abstract operand stack, its height counter, memory and call data
// are modeled as named globals, and every stack pop or push becomes an
// explicit counter update plus indexed load or store.
//
// # Quick Start
//
//	prog, err := evmtac.Lower([]evmtac.Opcode{
//	    evmtac.Push([]byte{0x01}),
//	    evmtac.Push([]byte{0x02}),
//	    {Op: evmtac.ADD},
//	}, nil)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Print(prog.Disassemble())
//
// Per-opcode lowering is also available directly via [Translate] with a
// caller-owned [symbol.Table], which is what translation drivers with
// their own sequencing use.
//
// # Unsupported opcodes
//
// Opcodes without a lowering rule never vanish silently. By default
// [Lower] fails on the first one; with [SkipUnsupported] it drops them,
// records them in [Program.Skipped] and warns on [Config.Stderr].
//
// The emitted instruction set lives in [github.com/evmtac/evmtac/tac];
// the symbol universe in [github.com/evmtac/evmtac/symbol].
package evmtac
