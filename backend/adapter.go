package backend

import (
	"math/big"
	"sort"

	"github.com/sarchlab/cycleharness/access"
	"github.com/sarchlab/cycleharness/dut"
	"github.com/sarchlab/cycleharness/symtab"
	"github.com/sarchlab/cycleharness/value"
)

// dutSimulator adapts a *dut.Simulation to access.Simulator: it
// widens/narrows between the façade's typed peek/poke and the
// BigInt-uniform contract spec.md §6 specifies for the underlying
// simulator, and runs cycles ticks per Step call.
type dutSimulator struct {
	sim *dut.Simulation
	ids map[string]dut.SymbolID
}

// NewDutAdapter wraps a *dut.Simulation as an access.Simulator, for
// Run callers that drive a compiled design directly (no external
// native harness). names must be exactly the design's Input/Output
// symbols; IoNames computes it from a symtab.Table.
func NewDutAdapter(sim *dut.Simulation, names []string) access.Simulator {
	return newDutSimulator(sim, names)
}

func newDutSimulator(sim *dut.Simulation, names []string) *dutSimulator {
	ids := make(map[string]dut.SymbolID, len(names))
	for _, name := range names {
		id, err := sim.GetSymbolId(name)
		if err != nil {
			panic(err)
		}
		ids[name] = id
	}
	return &dutSimulator{sim: sim, ids: ids}
}

func (a *dutSimulator) PeekByName(name string) (*big.Int, bool) {
	id, ok := a.ids[name]
	if !ok {
		return nil, false
	}
	sym := a.sim.Symbol(id)
	switch sym.Class {
	case value.Bool:
		v, err := a.sim.PeekBool(id)
		if err != nil {
			return nil, false
		}
		if v {
			return big.NewInt(1), true
		}
		return big.NewInt(0), true
	case value.Long:
		v, err := a.sim.PeekLong(id)
		if err != nil {
			return nil, false
		}
		return big.NewInt(v), true
	case value.Big:
		v, err := a.sim.PeekBig(id)
		if err != nil {
			return nil, false
		}
		return v, true
	default:
		return nil, false
	}
}

func (a *dutSimulator) PokeByName(name string, v *big.Int) bool {
	id, ok := a.ids[name]
	if !ok {
		return false
	}
	sym := a.sim.Symbol(id)
	switch sym.Class {
	case value.Bool:
		return a.sim.PokeBool(id, v.Sign() != 0) == nil
	case value.Long:
		return a.sim.PokeLong(id, v.Int64()) == nil
	case value.Big:
		return a.sim.PokeBig(id, v) == nil
	default:
		return false
	}
}

// Step runs cycles ticks of the compiled executable. The evaluation
// engine itself never interrupts a tick (assertions/$stop belong to
// an external harness, see nativeharness); a direct façade adapter
// therefore always reports Ok.
func (a *dutSimulator) Step(cycles int) access.StepResult {
	for i := 0; i < cycles; i++ {
		a.sim.Step()
	}
	return access.StepResult{Ok: true, After: cycles}
}

// IoNames returns every Input/Output symbol name in a symbol table,
// sorted so id assignment is deterministic.
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
