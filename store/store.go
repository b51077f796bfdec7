// Package store implements store operations: the assignments that
// evaluate one expression tree and write its result into a single
// value-storage cell. A compiled executable is, in its entirety, an
// ordered list of these.
package store

import (
	"github.com/sarchlab/cycleharness/expr"
	"github.com/sarchlab/cycleharness/value"
)

// Op is a single store operation: evaluate Root, write it to Dest.
type Op interface {
	// Bind installs data on the store's expression tree; called once,
	// post-order, before the first Execute.
	Bind(data *value.Storage)
	// Execute evaluates the root expression and writes the result.
	Execute(data *value.Storage)
}

// Bool writes a Bool-class store.
type Bool struct {
	Dest int
	Root expr.BoolExpr
}

func (s *Bool) Bind(data *value.Storage)   { s.Root.Bind(data) }
func (s *Bool) Execute(data *value.Storage) { data.Bools[s.Dest] = s.Root.EvalBool() }

// Long writes a Long-class store.
type Long struct {
	Dest int
	Root expr.LongExpr
}

func (s *Long) Bind(data *value.Storage)   { s.Root.Bind(data) }
func (s *Long) Execute(data *value.Storage) { data.Longs[s.Dest] = s.Root.EvalLong() }

// Big writes a Big-class store. The evaluated value is cloned into the
// destination cell rather than aliased, since BigExpr results may be
// shared (e.g. ConstBig, or a Load reading the very cell this store
// could otherwise alias).
type Big struct {
	Dest int
	Root expr.BigExpr
}

func (s *Big) Bind(data *value.Storage) { s.Root.Bind(data) }
func (s *Big) Execute(data *value.Storage) {
	data.Bigs[s.Dest].Set(s.Root.EvalBig())
}

// LongMemoryElement writes one element of a Long-class memory.
type LongMemoryElement struct {
	MemIndex int
	Addr     expr.LongExpr
	Root     expr.LongExpr
}

func (s *LongMemoryElement) Bind(data *value.Storage) {
	s.Addr.Bind(data)
	s.Root.Bind(data)
}

func (s *LongMemoryElement) Execute(data *value.Storage) {
	data.LongMemories[s.MemIndex][s.Addr.EvalLong()] = s.Root.EvalLong()
}

// BigMemoryElement writes one element of a Big-class memory.
type BigMemoryElement struct {
	MemIndex int
	Addr     expr.LongExpr
	Root     expr.BigExpr
}

func (s *BigMemoryElement) Bind(data *value.Storage) {
	s.Addr.Bind(data)
	s.Root.Bind(data)
}

func (s *BigMemoryElement) Execute(data *value.Storage) {
	data.BigMemories[s.MemIndex][s.Addr.EvalLong()].Set(s.Root.EvalBig())
}
