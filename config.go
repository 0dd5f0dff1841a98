package evmtac

import "io"

// UnsupportedPolicy selects how Lower treats opcodes without a lowering
// rule.
type UnsupportedPolicy int

const (
	// FailUnsupported stops lowering at the first unsupported opcode.
	// This is the default: the emitted 3AC is complete or absent.
	FailUnsupported UnsupportedPolicy = iota

	// SkipUnsupported drops the opcode, records it in Program.Skipped
	// and writes a warning to Config.Stderr. The emitted 3AC is a
	// partial program, suitable for partial analysis only.
	SkipUnsupported
)

// Config holds configuration options for lowering.
type Config struct {
	// OnUnsupported selects the unsupported-opcode policy
	// (default: FailUnsupported).
	OnUnsupported UnsupportedPolicy

	// Stderr is the writer for skip warnings.
	// If nil, warnings are discarded.
	Stderr io.Writer
}
