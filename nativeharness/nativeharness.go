// Package nativeharness is an Akita-backed reference implementation of
// the external "underlying simulator" contract (access.Simulator): a
// stand-in for the native/VCS/Verilator backend that sits out of scope
// for the evaluation engine itself, used only to exercise backend.Run
// end to end in tests.
//
// It is built the way the teacher's core.Core is: a plain struct
// embedding *sim.TickingComponent, constructed through a fluent
// Builder (core/builder.go) and ticked once per cycle
// (core/core.go's Tick(now sim.VTimeInSec) bool). Unlike core.Core, a
// Harness has no Ports — the compiled design it wraps communicates
// purely through named Input/Output cells, not messages — so Tick
// does the whole of its work by driving the wrapped dut.Simulation
// forward one cycle. Step calls Tick directly, cycles times, rather
// than handing control to the engine's own progress-driven
// self-rescheduling: a freely running TickingComponent ticks for as
// long as it keeps making progress, which is the wrong shape for a
// harness whose whole point is stepping an exact cycle count on
// demand. The embedded TickingComponent and Engine are kept so a
// Harness remains a genuine, independently tickable Akita component —
// usable inside a larger wired simulation — even though Step itself
// never goes through engine.Run.
package nativeharness

import (
	"math/big"
	"sort"

	"github.com/sarchlab/akita/v4/sim"

	"github.com/sarchlab/cycleharness/access"
	"github.com/sarchlab/cycleharness/dut"
	"github.com/sarchlab/cycleharness/symtab"
	"github.com/sarchlab/cycleharness/value"
	"github.com/sarchlab/cycleharness/xexec"
)

// AssertFunc is run once after every Tick; it reports whether the
// design has raised an interrupt this cycle and, if so, whether it is
// an assertion failure (true) or a voluntary stop (false). A nil
// AssertFunc never interrupts, matching the GCD reference design,
// which has no assertion logic of its own.
type AssertFunc func(sym func(name string) (*big.Int, bool)) (interrupt bool, isAssertion bool)

// Harness wraps a compiled Executable as a ticking Akita component.
type Harness struct {
	*sim.TickingComponent

	sim    *dut.Simulation
	ids    map[string]dut.SymbolID
	assert AssertFunc

	ticked      int
	interrupted bool
	isAssertion bool
}

// Builder assembles a Harness, mirroring core.Builder's
// WithEngine/WithFreq shape.
type Builder struct {
	engine sim.Engine
	freq   sim.Freq
	assert AssertFunc
}

// NewBuilder returns a Builder defaulting to 1 GHz, matching
// core.Builder's own NewCore default in spec (core.go hardcodes
// 1*sim.GHz for the sample cores).
func NewBuilder() Builder {
	return Builder{freq: 1 * sim.GHz}
}

// WithEngine sets the driving engine.
func (b Builder) WithEngine(engine sim.Engine) Builder {
	b.engine = engine
	return b
}

// WithFreq sets the component's tick frequency.
func (b Builder) WithFreq(freq sim.Freq) Builder {
	b.freq = freq
	return b
}

// WithAssert installs a post-tick interrupt check.
func (b Builder) WithAssert(fn AssertFunc) Builder {
	b.assert = fn
	return b
}

// Build wraps exec as a named ticking component. names restricts which
// symbols PeekByName/PokeByName resolve, the same way backend's
// NewDutAdapter does for the direct façade path.
func (b Builder) Build(name string, exec *xexec.Executable, names []string) *Harness {
	h := &Harness{
		sim:    dut.New(exec),
		ids:    make(map[string]dut.SymbolID, len(names)),
		assert: b.assert,
	}
	for _, n := range names {
		id, err := h.sim.GetSymbolId(n)
		if err != nil {
			panic(err)
		}
		h.ids[n] = id
	}
	h.TickingComponent = sim.NewTickingComponent(name, b.engine, b.freq, h)
	return h
}

// Tick advances the wrapped design by one cycle and runs the installed
// AssertFunc, per core.Core's Tick(now) bool convention.
func (h *Harness) Tick(_ sim.VTimeInSec) bool {
	h.sim.Step()
	h.ticked++
	if h.assert != nil {
		h.interrupted, h.isAssertion = h.assert(h.PeekByName)
	}
	return true
}

// PeekByName satisfies access.Simulator.
func (h *Harness) PeekByName(name string) (*big.Int, bool) {
	id, ok := h.ids[name]
	if !ok {
		return nil, false
	}
	sym := h.sim.Symbol(id)
	switch sym.Class {
	case value.Bool:
		v, err := h.sim.PeekBool(id)
		if err != nil {
			return nil, false
		}
		if v {
			return big.NewInt(1), true
		}
		return big.NewInt(0), true
	case value.Long:
		v, err := h.sim.PeekLong(id)
		if err != nil {
			return nil, false
		}
		return big.NewInt(v), true
	case value.Big:
		v, err := h.sim.PeekBig(id)
		if err != nil {
			return nil, false
		}
		return v, true
	default:
		return nil, false
	}
}

// PokeByName satisfies access.Simulator.
func (h *Harness) PokeByName(name string, v *big.Int) bool {
	id, ok := h.ids[name]
	if !ok {
		return false
	}
	sym := h.sim.Symbol(id)
	switch sym.Class {
	case value.Bool:
		return h.sim.PokeBool(id, v.Sign() != 0) == nil
	case value.Long:
		return h.sim.PokeLong(id, v.Int64()) == nil
	case value.Big:
		return h.sim.PokeBig(id, v) == nil
	default:
		return false
	}
}

// Step runs at most cycles ticks, stopping early (Ok: false) the
// cycle an AssertFunc reports an interrupt.
func (h *Harness) Step(cycles int) access.StepResult {
	for i := 0; i < cycles; i++ {
		h.Tick(0)
		if h.interrupted {
			return access.StepResult{Ok: false, After: i + 1, IsAssertion: h.isAssertion}
		}
	}
	return access.StepResult{Ok: true, After: cycles}
}

// Finish satisfies backend.Finisher; a Harness owns no external
// resource beyond process memory, so there is nothing to flush.
func (h *Harness) Finish() {}

// TicksRun reports how many cycles Tick has run so far, for test
// assertions and diagnostics.
func (h *Harness) TicksRun() int { return h.ticked }

// IoNames returns every Input/Output symbol name in a symbol table, in
// the same sorted order backend.IoNames uses, so a Harness and a
// direct dut adapter built from the same table assign identical ids.
func IoNames(t symtab.Table) []string {
	names := make([]string, 0, len(t))
	for name, sym := range t {
		if sym.Kind == symtab.Input || sym.Kind == symtab.Output {
			names = append(names, name)
		}
	}
	sort.Strings(names)
	return names
}
