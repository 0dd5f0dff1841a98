package symbol

import (
	"testing"

	"github.com/holiman/uint256"
)

func TestGlobalIdempotent(t *testing.T) {
	globals := []Global{Stack, StackHeight, Memory, CallData, Return, MemoryCopy}

	st := NewTable()
	for _, g := range globals {
		t.Run(g.String(), func(t *testing.T) {
			first := st.Global(g)
			second := st.Global(g)
			if first != second {
				t.Errorf("Global(%s) not idempotent: %+v vs %+v", g, first, second)
			}
		})
	}
}

func TestGlobalCanonical(t *testing.T) {
	tests := []struct {
		global   Global
		wantKind Kind
		wantType Type
	}{
		{Stack, KindMemory, Word},
		{StackHeight, KindCounter, Int(4)},
		{Memory, KindMemory, Word},
		{CallData, KindMemory, Word},
		{Return, KindProcedure, Word},
		{MemoryCopy, KindProcedure, Word},
	}

	st := NewTable()
	for _, tt := range tests {
		t.Run(tt.global.String(), func(t *testing.T) {
			sym := st.Global(tt.global)
			if sym.Kind != tt.wantKind {
				t.Errorf("kind = %s, want %s", sym.Kind, tt.wantKind)
			}
			if sym.Type != tt.wantType {
				t.Errorf("type = %s, want %s", sym.Type, tt.wantType)
			}
			label, ok := sym.Addr.Label()
			if !ok || label != tt.global {
				t.Errorf("label = %v (ok=%v), want %s", label, ok, tt.global)
			}
		})
	}
}

func TestConstantEquality(t *testing.T) {
	st := NewTable()

	one := st.Constant(uint256.NewInt(1), Bytes(1))
	if again := st.Constant(uint256.NewInt(1), Bytes(1)); one != again {
		t.Errorf("equal value and hint must compare equal: %+v vs %+v", one, again)
	}

	if two := st.Constant(uint256.NewInt(2), Bytes(1)); one == two {
		t.Error("different values must not compare equal")
	}
	if wide := st.Constant(uint256.NewInt(1), Bytes(2)); one == wide {
		t.Error("different hints must not compare equal")
	}
	if intHint := st.Constant(uint256.NewInt(1), Int(1)); one == intHint {
		t.Error("Bytes(1) and Int(1) hints must be distinct")
	}
}

func TestConstantDefaultsToWord(t *testing.T) {
	st := NewTable()
	c := st.Constant(uint256.NewInt(7), Word)
	if c.Type != Word {
		t.Errorf("type = %s, want word", c.Type)
	}
	if c.Kind != KindValue {
		t.Errorf("kind = %s, want value", c.Kind)
	}
	v, ok := c.Addr.Value()
	if !ok || v.Uint64() != 7 {
		t.Errorf("value = %v (ok=%v), want 7", v, ok)
	}
}

func TestTemporaryDistinct(t *testing.T) {
	st := NewTable()
	seen := make(map[Symbol]bool)
	for i := 0; i < 100; i++ {
		// Identical hints must not make temporaries collide.
		temp := st.Temporary(Word)
		if seen[temp] {
			t.Fatalf("temporary %d reissued: %s", i, temp)
		}
		seen[temp] = true
		if !temp.Addr.IsTemporary() {
			t.Fatalf("temporary %d has non-temporary address", i)
		}
	}
}

func TestTemporariesIndependentAcrossTables(t *testing.T) {
	a := NewTable()
	b := NewTable()
	if a.Temporary(Word) != b.Temporary(Word) {
		t.Error("fresh tables must mint the same first temporary")
	}
}

func TestTypeSize(t *testing.T) {
	tests := []struct {
		typ  Type
		want int
	}{
		{Word, 32},
		{Int(4), 4},
		{Bytes(1), 1},
		{Bytes(32), 32},
	}
	for _, tt := range tests {
		if got := tt.typ.Size(); got != tt.want {
			t.Errorf("%s.Size() = %d, want %d", tt.typ, got, tt.want)
		}
	}
}

func TestSymbolString(t *testing.T) {
	st := NewTable()

	tests := []struct {
		name string
		sym  Symbol
		want string
	}{
		{"global", st.Global(StackHeight), "StackHeight"},
		{"constant", st.Constant(uint256.NewInt(42), Word), "42"},
		{"temporary", st.Temporary(Word), "t0"},
		{"next temporary", st.Temporary(Word), "t1"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.sym.String(); got != tt.want {
				t.Errorf("String() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestAddressAccessors(t *testing.T) {
	st := NewTable()

	g := st.Global(Memory)
	if !g.Addr.IsGlobal() || g.Addr.IsConstant() || g.Addr.IsTemporary() {
		t.Error("global address misclassified")
	}
	if _, ok := g.Addr.Value(); ok {
		t.Error("global address must not report a constant value")
	}

	c := st.Constant(uint256.NewInt(9), Word)
	if !c.Addr.IsConstant() {
		t.Error("constant address misclassified")
	}
	if _, ok := c.Addr.Label(); ok {
		t.Error("constant address must not report a label")
	}
}
