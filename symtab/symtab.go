// Package symtab defines the symbol table that names a compiled
// executable's storage cells, plus a YAML decoding path for building
// one (mirroring the way the teacher's core.program loads PE kernels
// from YAML via gopkg.in/yaml.v3). The in-memory Table remains the
// canonical representation; YAML is one convenient on-ramp for tests
// and samples, not a requirement.
package symtab

import (
	"fmt"

	"github.com/sarchlab/cycleharness/value"
)

// Kind is a symbol's declared role in the design.
type Kind int

const (
	Input Kind = iota
	Output
	Register
	Node
)

func (k Kind) String() string {
	switch k {
	case Input:
		return "Input"
	case Output:
		return "Output"
	case Register:
		return "Register"
	case Node:
		return "Node"
	default:
		return "Kind(?)"
	}
}

// Symbol describes one declared name: its kind, bit width, signedness,
// clock-ness, and its index into value storage. Scalar symbols index
// directly into the Bools/Longs/Bigs vector matching Class; array
// symbols (IsArray) index into the LongMemories/BigMemories vector
// instead, and Count gives the memory's element count.
type Symbol struct {
	Name    string
	Kind    Kind
	Width   int
	Signed  bool
	IsClock bool
	Class   value.Class
	IsArray bool
	Index   int
	Count   int // element count, only meaningful when IsArray
}

// Table is a name-keyed symbol table, built once at compile time and
// immutable thereafter.
type Table map[string]Symbol

// Lookup resolves a name to its Symbol, or reports *UnknownSymbolError.
func (t Table) Lookup(name string) (Symbol, error) {
	sym, ok := t[name]
	if !ok {
		return Symbol{}, &UnknownSymbolError{Name: name}
	}
	return sym, nil
}

// UnknownSymbolError is returned by Lookup (and, via it, by the
// simulation façade's GetSymbolId) when name names no declared symbol.
type UnknownSymbolError struct{ Name string }

func (e *UnknownSymbolError) Error() string {
	return fmt.Sprintf("symtab: unknown symbol %q", e.Name)
}
