package evmtac

import "fmt"

// UnsupportedOpcodeError reports an opcode with no lowering rule.
// It is recoverable: the driver may skip the opcode with a warning for
// partial analysis, or abort for full-compilation correctness, per
// Config.OnUnsupported. It is never swallowed silently, since a dropped
// opcode would vanish from the emitted program with no diagnostic.
type UnsupportedOpcodeError struct {
	Op Op // The opcode without a rule
}

func (e *UnsupportedOpcodeError) Error() string {
	return fmt.Sprintf("unsupported opcode %s", e.Op)
}

// MalformedOpcodeError reports an opcode whose payload does not match its
// shape, such as a push with the wrong immediate width. Malformed opcodes
// are rejected rather than clamped, so type hints derived from payload
// lengths stay exact.
type MalformedOpcodeError struct {
	Op      Op     // The offending opcode
	Message string // What was wrong with the payload
}

func (e *MalformedOpcodeError) Error() string {
	return fmt.Sprintf("malformed %s: %s", e.Op, e.Message)
}
