// Package refdesign holds a small library of reference compiled
// designs used by tests and samples, grounded in the teacher's
// test/ and samples/ kernels: instead of loading a PE program from
// YAML, each design here is assembled directly as a symtab.Table plus
// an ordered store.Op list, the same way an external front end would
// hand the engine a compiled unit.
package refdesign

import (
	"github.com/sarchlab/cycleharness/expr"
	"github.com/sarchlab/cycleharness/store"
	"github.com/sarchlab/cycleharness/symtab"
	"github.com/sarchlab/cycleharness/value"
	"github.com/sarchlab/cycleharness/xexec"
)

// GCD builds the reference Euclidean-subtraction GCD design used by
// the S1 end-to-end scenario: two 32-bit inputs a, b; a one-cycle load
// strobe e; a 32-bit output z and a one-bit valid output v. Poking
// e=1 for one cycle loads a, b and starts the computation; v rises
// once z holds gcd(a, b).
//
// The design threads its register-update logic through Node-class
// combinational intermediates (nodeRegANext, nodeRegBNext,
// nodeBusyNext): each Node store reads only the registers' start-of-
// tick values, and the register stores that follow just copy the
// computed Node value in. This is what keeps a register's next-state
// expression from ever observing another register's already-updated
// value within the same tick.
func GCD() (*xexec.Executable, symtab.CombGraph) {
	table := symtab.Table{
		"a":            {Name: "a", Kind: symtab.Input, Width: 32, Class: value.Long, Index: 0},
		"b":            {Name: "b", Kind: symtab.Input, Width: 32, Class: value.Long, Index: 1},
		"e":            {Name: "e", Kind: symtab.Input, Width: 1, Class: value.Bool, Index: 0},
		"z":            {Name: "z", Kind: symtab.Output, Width: 32, Class: value.Long, Index: 2},
		"v":            {Name: "v", Kind: symtab.Output, Width: 1, Class: value.Bool, Index: 1},
		"regA":         {Name: "regA", Kind: symtab.Register, Width: 32, Class: value.Long, Index: 3},
		"regB":         {Name: "regB", Kind: symtab.Register, Width: 32, Class: value.Long, Index: 4},
		"busy":         {Name: "busy", Kind: symtab.Register, Width: 1, Class: value.Bool, Index: 2},
		"nodeRegANext": {Name: "nodeRegANext", Kind: symtab.Node, Width: 32, Class: value.Long, Index: 5},
		"nodeRegBNext": {Name: "nodeRegBNext", Kind: symtab.Node, Width: 32, Class: value.Long, Index: 6},
		"nodeBusyNext": {Name: "nodeBusyNext", Kind: symtab.Node, Width: 1, Class: value.Bool, Index: 3},
	}

	data := value.NewStorage(4, 7, 0, 0, 0)

	loadA := func() *expr.LoadLong { return &expr.LoadLong{Index: 0} }
	loadB := func() *expr.LoadLong { return &expr.LoadLong{Index: 1} }
	loadE := func() *expr.LoadBool { return &expr.LoadBool{Index: 0} }
	loadRegA := func() *expr.LoadLong { return &expr.LoadLong{Index: 3} }
	loadRegB := func() *expr.LoadLong { return &expr.LoadLong{Index: 4} }
	loadBusy := func() *expr.LoadBool { return &expr.LoadBool{Index: 2} }
	loadZ := func() *expr.LoadLong { return &expr.LoadLong{Index: 2} }
	loadV := func() *expr.LoadBool { return &expr.LoadBool{Index: 1} }

	gt := func() *expr.GtLong { return &expr.GtLong{A: loadRegA(), B: loadRegB()} }
	eq := func() *expr.EqualLong { return &expr.EqualLong{A: loadRegA(), B: loadRegB()} }
	isZero := func(e expr.LongExpr) expr.BoolExpr { return &expr.EqualLong{A: e, B: &expr.ConstLong{V: 0}} }
	// done: regA == regB, or either register is zero (gcd(x, 0) == x).
	done := func() expr.BoolExpr {
		return &expr.MuxBool{Cond: eq(), Tru: &expr.ConstBool{V: true},
			Fals: &expr.MuxBool{Cond: isZero(loadRegA()), Tru: &expr.ConstBool{V: true}, Fals: isZero(loadRegB())}}
	}

	stores := []store.Op{
		// nodeBusyNext: e -> true; busy && done -> false; else hold.
		&store.Bool{
			Dest: 3,
			Root: &expr.MuxBool{
				Cond: loadE(),
				Tru:  &expr.ConstBool{V: true},
				Fals: &expr.MuxBool{
					Cond: and(loadBusy(), done()),
					Tru:  &expr.ConstBool{V: false},
					Fals: loadBusy(),
				},
			},
		},
		// nodeRegANext: e -> a; busy && regA>regB -> regA-regB; else hold.
		&store.Long{
			Dest: 5,
			Root: &expr.MuxLong{
				Cond: loadE(),
				Tru:  loadA(),
				Fals: &expr.MuxLong{
					Cond: and(loadBusy(), gt()),
					Tru:  &expr.SubLong{A: loadRegA(), B: loadRegB()},
					Fals: loadRegA(),
				},
			},
		},
		// nodeRegBNext: e -> b; busy && regB>regA -> regB-regA; else hold.
		&store.Long{
			Dest: 6,
			Root: &expr.MuxLong{
				Cond: loadE(),
				Tru:  loadB(),
				Fals: &expr.MuxLong{
					Cond: and(loadBusy(), &expr.GtLong{A: loadRegB(), B: loadRegA()}),
					Tru:  &expr.SubLong{A: loadRegB(), B: loadRegA()},
					Fals: loadRegB(),
				},
			},
		},
		// z: once busy && done, latch regA (regB if regA is zero), else hold.
		&store.Long{
			Dest: 2,
			Root: &expr.MuxLong{
				Cond: and(loadBusy(), done()),
				Tru:  &expr.MuxLong{Cond: isZero(loadRegA()), Tru: loadRegB(), Fals: loadRegA()},
				Fals: loadZ(),
			},
		},
		// v: e -> false (new computation starting); busy && done -> true; else hold.
		&store.Bool{
			Dest: 1,
			Root: &expr.MuxBool{
				Cond: loadE(),
				Tru:  &expr.ConstBool{V: false},
				Fals: &expr.MuxBool{
					Cond: and(loadBusy(), done()),
					Tru:  &expr.ConstBool{V: true},
					Fals: loadV(),
				},
			},
		},
		&store.Long{Dest: 3, Root: &expr.LoadLong{Index: 5}}, // regA <= nodeRegANext
		&store.Long{Dest: 4, Root: &expr.LoadLong{Index: 6}}, // regB <= nodeRegBNext
		&store.Bool{Dest: 2, Root: &expr.LoadBool{Index: 3}}, // busy <= nodeBusyNext
	}

	exec := xexec.New(table, data, stores)

	comb := symtab.CombGraph{
		"z": {"a", "b", "e"},
		"v": {"a", "b", "e"},
	}

	return exec, comb
}

// and is a small local helper building a two-operand boolean AND out
// of the node catalogue's primitives (Mux, since the catalogue has no
// dedicated AndBool node): cond ? rhs : false.
func and(cond, rhs expr.BoolExpr) expr.BoolExpr {
	return &expr.MuxBool{Cond: cond, Tru: rhs, Fals: &expr.ConstBool{V: false}}
}
