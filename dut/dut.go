// Package dut implements the simulation façade: name resolution into
// stable integer ids, typed peek/poke by id, and step(). This is the
// evaluation engine's only public surface (spec.md §4.E/§6); everything
// above it (access checking, scheduling, backends) is built on top of
// these few operations.
package dut

import (
	"fmt"
	"math/big"

	"github.com/sarchlab/cycleharness/symtab"
	"github.com/sarchlab/cycleharness/value"
	"github.com/sarchlab/cycleharness/xexec"
)

// SymbolID is an opaque, façade-issued handle naming one storage cell.
// It carries the value class it was issued for so peek/poke can check
// the caller used the matching typed accessor.
type SymbolID struct {
	name  string
	index int
	class value.Class
}

// Name returns the symbol's declared name.
func (id SymbolID) Name() string { return id.name }

// Simulation is the evaluation engine's façade over one Executable.
type Simulation struct {
	exec *xexec.Executable
}

// New wraps an Executable in a façade.
func New(exec *xexec.Executable) *Simulation {
	return &Simulation{exec: exec}
}

// ClassMismatchError is returned when a typed accessor (PokeBool, ...)
// is called with a SymbolID issued for a different value class.
type ClassMismatchError struct {
	Name  string
	Want  value.Class
	Got   value.Class
}

func (e *ClassMismatchError) Error() string {
	return fmt.Sprintf("dut: symbol %q is class %s, not %s", e.Name, e.Want, e.Got)
}

// GetSymbolId resolves name to a stable id, or returns
// *symtab.UnknownSymbolError.
func (s *Simulation) GetSymbolId(name string) (SymbolID, error) {
	sym, err := s.exec.Info.Lookup(name)
	if err != nil {
		return SymbolID{}, err
	}
	return SymbolID{name: name, index: sym.Index, class: sym.Class}, nil
}

// Symbol returns the full declared Symbol for an id's name.
func (s *Simulation) Symbol(id SymbolID) symtab.Symbol {
	return s.exec.Info[id.name]
}

func (s *Simulation) checkClass(id SymbolID, want value.Class) error {
	if id.class != want {
		return &ClassMismatchError{Name: id.name, Want: id.class, Got: want}
	}
	return nil
}

// PokeBool writes storage.Bools[id.index]. id must have been issued for
// a Bool-class symbol.
func (s *Simulation) PokeBool(id SymbolID, v bool) error {
	if err := s.checkClass(id, value.Bool); err != nil {
		return err
	}
	s.exec.Data.Bools[id.index] = v
	return nil
}

// PokeLong writes storage.Longs[id.index].
func (s *Simulation) PokeLong(id SymbolID, v int64) error {
	if err := s.checkClass(id, value.Long); err != nil {
		return err
	}
	s.exec.Data.Longs[id.index] = v
	return nil
}

// PokeBig writes storage.Bigs[id.index]. v is cloned, not aliased.
func (s *Simulation) PokeBig(id SymbolID, v *big.Int) error {
	if err := s.checkClass(id, value.Big); err != nil {
		return err
	}
	s.exec.Data.Bigs[id.index].Set(v)
	return nil
}

// PeekBool reads storage.Bools[id.index].
func (s *Simulation) PeekBool(id SymbolID) (bool, error) {
	if err := s.checkClass(id, value.Bool); err != nil {
		return false, err
	}
	return s.exec.Data.Bools[id.index], nil
}

// PeekLong reads storage.Longs[id.index].
func (s *Simulation) PeekLong(id SymbolID) (int64, error) {
	if err := s.checkClass(id, value.Long); err != nil {
		return 0, err
	}
	return s.exec.Data.Longs[id.index], nil
}

// PeekBig reads storage.Bigs[id.index]. The returned value is a copy;
// mutating it does not affect storage.
func (s *Simulation) PeekBig(id SymbolID) (*big.Int, error) {
	if err := s.checkClass(id, value.Big); err != nil {
		return nil, err
	}
	return new(big.Int).Set(s.exec.Data.Bigs[id.index]), nil
}

// Step runs one full tick: every store, in compile-time order.
func (s *Simulation) Step() {
	s.exec.Update()
}
