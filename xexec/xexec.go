// Package xexec implements the compiled Executable: a symbol table, its
// value storage, and the fixed, topologically-ordered list of store
// operations a tick runs through. The store list is total and fixed at
// compile time; evaluation is single-threaded and never allocates on
// the hot path beyond what big.Int arithmetic itself requires.
package xexec

import (
	"github.com/sarchlab/cycleharness/store"
	"github.com/sarchlab/cycleharness/symtab"
	"github.com/sarchlab/cycleharness/value"
)

// Executable is an immutable compiled unit: symbol table, storage, and
// the ordered store list that a Update() tick runs end to end.
type Executable struct {
	Info   symtab.Table
	Data   *value.Storage
	Stores []store.Op
}

// New binds every store's expression tree to data, in the order given,
// and returns the assembled Executable. Store order must already be a
// valid topological order with respect to combinational dependencies;
// New does not (and cannot, in general) verify that.
func New(info symtab.Table, data *value.Storage, stores []store.Op) *Executable {
	for _, s := range stores {
		s.Bind(data)
	}
	return &Executable{Info: info, Data: data, Stores: stores}
}

// Rebind re-installs data on every store's tree, e.g. after cloning
// state into a fresh Storage.
func (e *Executable) Rebind(data *value.Storage) {
	for _, s := range e.Stores {
		s.Bind(data)
	}
	e.Data = data
}

// Update runs one full tick: every store, in order, evaluates its root
// expression against storage as of the start of the tick plus all
// earlier stores in this same tick, and writes its destination cell.
func (e *Executable) Update() {
	for _, s := range e.Stores {
		s.Execute(e.Data)
	}
}
