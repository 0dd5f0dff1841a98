package evmtac

import (
	"errors"
	"fmt"

	"github.com/evmtac/evmtac/symbol"
)

// Version is the evmtac version string.
const Version = "0.1.0"

// Lower translates a decoded opcode stream into a three-address-code
// program. One symbol table is created per call, owned by the returned
// Program and threaded by exclusive reference through every Translate
// call; lowering is a pure sequential fold over the stream.
//
// Unsupported opcodes fail the whole stream unless config selects
// SkipUnsupported, in which case they are recorded in Program.Skipped
// and a warning goes to config.Stderr. A nil config means defaults.
func Lower(ops []Opcode, config *Config) (*Program, error) {
	if config == nil {
		config = &Config{}
	}

	prog := &Program{Symbols: symbol.NewTable()}
	for i, op := range ops {
		code, err := Translate(op, prog.Symbols)
		if err != nil {
			var unsupported *UnsupportedOpcodeError
			if errors.As(err, &unsupported) && config.OnUnsupported == SkipUnsupported {
				prog.Skipped = append(prog.Skipped, unsupported.Op)
				if config.Stderr != nil {
					fmt.Fprintf(config.Stderr, "evmtac: warning: skipping unsupported opcode %s at %d\n", unsupported.Op, i)
				}
				continue
			}
			return nil, fmt.Errorf("opcode %d: %w", i, err)
		}
		prog.Code = append(prog.Code, code...)
	}

	return prog, nil
}
