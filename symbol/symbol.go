// Package symbol defines the symbol universe for the 3AC lowering stage.
//
// Every value the intermediate representation can reference is described by
// a Symbol: a named global machine resource, a compile-time constant, or a
// fresh temporary. Symbols are immutable value descriptors handed out by a
// Table; two symbols referring to the same storage compare equal with ==,
// which is what instruction-equality-based tests and later passes rely on.
package symbol

import (
	"fmt"

	"github.com/holiman/uint256"
)

// Kind classifies the storage a symbol refers to.
type Kind uint8

const (
	KindValue     Kind = iota // Scalar value (constants and temporaries)
	KindMemory                // Addressable memory region
	KindCounter               // Scalar counter
	KindProcedure             // Externally visible effect
)

// String returns a human-readable name for the kind.
func (k Kind) String() string {
	switch k {
	case KindValue:
		return "value"
	case KindMemory:
		return "memory"
	case KindCounter:
		return "counter"
	case KindProcedure:
		return "procedure"
	default:
		return fmt.Sprintf("Kind(%d)", k)
	}
}

// Global identifies one of the fixed abstract machine resources the
// translator must name. Each global has one canonical kind and type,
// fixed for the lifetime of the program.
type Global uint8

const (
	Stack       Global = iota // Operand stack (addressable array)
	StackHeight               // Number of live stack slots
	Memory                    // Random-access memory
	CallData                  // Call input data
	Return                    // Return-from-execution effect
	MemoryCopy                // Bulk memory copy effect
)

// String returns the label name of the global.
func (g Global) String() string {
	switch g {
	case Stack:
		return "Stack"
	case StackHeight:
		return "StackHeight"
	case Memory:
		return "Memory"
	case CallData:
		return "CallData"
	case Return:
		return "Return"
	case MemoryCopy:
		return "MemoryCopy"
	default:
		return fmt.Sprintf("Global(%d)", g)
	}
}

// Kind returns the canonical storage kind of the global.
func (g Global) Kind() Kind {
	switch g {
	case Stack, Memory, CallData:
		return KindMemory
	case StackHeight:
		return KindCounter
	case Return, MemoryCopy:
		return KindProcedure
	default:
		return KindValue
	}
}

// Type returns the canonical type of the global. The stack height counter
// is a 4-byte integer; every other global holds full machine words.
func (g Global) Type() Type {
	if g == StackHeight {
		return Int(4)
	}
	return Word
}

// typeKind discriminates Type variants.
type typeKind uint8

const (
	typeWord typeKind = iota
	typeInt
	typeBytes
)

// Type is the width hint attached to a symbol: a fixed-width integer, a
// byte literal of known length, or the full opaque machine word when the
// width is unknown. The zero value is Word.
//
// Int(n) and Bytes(n) are distinct types even for equal n; symbol equality
// depends on it.
type Type struct {
	kind typeKind
	size uint8
}

// Word is the full 32-byte machine word, the default type for values of
// unknown width.
var Word = Type{}

// Int returns the fixed-width integer type of size bytes.
func Int(size int) Type {
	return Type{kind: typeInt, size: uint8(size)}
}

// Bytes returns the byte-literal type of size bytes.
func Bytes(size int) Type {
	return Type{kind: typeBytes, size: uint8(size)}
}

// Size returns the width of the type in bytes.
func (t Type) Size() int {
	if t.kind == typeWord {
		return 32
	}
	return int(t.size)
}

// String returns a short spelling of the type: "word", "i4", "b1".
func (t Type) String() string {
	switch t.kind {
	case typeInt:
		return fmt.Sprintf("i%d", t.size)
	case typeBytes:
		return fmt.Sprintf("b%d", t.size)
	default:
		return "word"
	}
}

// addrKind discriminates Address variants.
type addrKind uint8

const (
	addrGlobal addrKind = iota
	addrConstant
	addrTemporary
)

// Address locates the storage a Symbol refers to: a global label, a
// compile-time constant value, or a temporary identity. Addresses are
// comparable values; only the fields of the active variant are set.
type Address struct {
	kind  addrKind
	label Global
	value uint256.Int
	temp  int
}

// IsGlobal reports whether the address is a global label.
func (a Address) IsGlobal() bool { return a.kind == addrGlobal }

// IsConstant reports whether the address is a compile-time constant.
func (a Address) IsConstant() bool { return a.kind == addrConstant }

// IsTemporary reports whether the address is a temporary identity.
func (a Address) IsTemporary() bool { return a.kind == addrTemporary }

// Label returns the global label of the address.
// The second result is false for non-global addresses.
func (a Address) Label() (Global, bool) {
	return a.label, a.kind == addrGlobal
}

// Value returns a copy of the constant value of the address.
// The second result is false for non-constant addresses.
func (a Address) Value() (*uint256.Int, bool) {
	if a.kind != addrConstant {
		return nil, false
	}
	v := a.value
	return &v, true
}

// String renders the address: the label name for globals, the decimal
// value for constants, "tN" for temporaries.
func (a Address) String() string {
	switch a.kind {
	case addrConstant:
		return a.value.Dec()
	case addrTemporary:
		return fmt.Sprintf("t%d", a.temp)
	default:
		return a.label.String()
	}
}

// Symbol is an immutable, typed reference to a single value, usable as an
// instruction operand or assignment target. Symbols for the same global
// carry the same kind and canonical type; constant symbols compare equal
// iff value and type hint are equal; every temporary is unique for its
// point of creation.
type Symbol struct {
	Addr Address // Where the value lives
	Type Type    // Width hint
	Kind Kind    // Storage kind, derived from the address
}

// String renders the symbol by its address.
func (s Symbol) String() string {
	return s.Addr.String()
}
