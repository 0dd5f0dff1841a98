package symbol

import "github.com/holiman/uint256"

// Table owns the universe of addressable values for one compilation unit.
// It resolves globals, materializes constants and mints temporaries; the
// translation driver creates one Table per unit and threads it through
// every lowering call. Every symbol ever issued stays valid and citable
// for the rest of the run; there is no rollback.
//
// A Table is not safe for concurrent use. Translation is a sequential
// fold, so the driver holds the only reference.
type Table struct {
	temps int // next temporary identity, never reused
}

// NewTable returns an empty symbol table.
func NewTable() *Table {
	return &Table{}
}

// Global returns the canonical symbol for g. Idempotent: every call with
// the same global yields a structurally equal symbol, so callers may
// compare symbols with == to test for the same underlying storage.
func (t *Table) Global(g Global) Symbol {
	return Symbol{
		Addr: Address{kind: addrGlobal, label: g},
		Type: g.Type(),
		Kind: g.Kind(),
	}
}

// Constant materializes a literal as an operand. Pass Word as the hint
// when the width is unknown; constants of equal value and equal hint
// compare equal.
func (t *Table) Constant(value *uint256.Int, hint Type) Symbol {
	return Symbol{
		Addr: Address{kind: addrConstant, value: *value},
		Type: hint,
		Kind: KindValue,
	}
}

// Temporary mints a brand-new identity, distinct from every temporary
// issued before or after, regardless of the hint.
func (t *Table) Temporary(hint Type) Symbol {
	id := t.temps
	t.temps++
	return Symbol{
		Addr: Address{kind: addrTemporary, temp: id},
		Type: hint,
		Kind: KindValue,
	}
}
