// Package access implements the access checker: per-signal metadata,
// the combinational dependency graph, cross-thread conflict detection,
// poke coalescing, and idle-cycle/timeout tracking. It sits between
// the backends and the simulation façade (or, in tests, a fake
// Simulator), policing every peek/poke before it reaches storage.
package access

import (
	"math/big"
	"sort"

	"github.com/sarchlab/cycleharness/simerr"
	"github.com/sarchlab/cycleharness/simlog"
)

// Simulator is the underlying simulator contract the access checker
// drives (spec.md §6's "peek(name) -> BigInt, poke(name, BigInt)"). It
// is satisfied by dut.Simulation (via a thin adapter) in the threaded
// backend, and by a fake/mock in tests.
type Simulator interface {
	PeekByName(name string) (*big.Int, bool)
	PokeByName(name string, v *big.Int) bool
	Step(cycles int) StepResult
}

// StepResult is the outcome of one underlying simulator step.
type StepResult struct {
	// Ok is true unless the simulator was interrupted.
	Ok bool
	// After is the number of cycles actually completed before an
	// interruption (meaningful only when Ok is false).
	After int
	// IsAssertion distinguishes an assertion failure from a
	// voluntary stop (meaningful only when Ok is false).
	IsAssertion bool
}

// ThreadView is the minimal view of scheduler state the access
// checker needs: which thread is active, the current tick, and the
// ancestor relation over the fork tree.
type ThreadView interface {
	ActiveThreadID() int
	CurrentStep() int
	IsParentOf(ancestor, descendant int) bool
}

// AccessMode is the kind of the last operation performed on a signal.
type AccessMode int

const (
	NoAccess AccessMode = iota
	Peek
	Poke
)

// signal holds one IO leaf's metadata, per spec.md §3's "Signal
// metadata" record.
type signal struct {
	id               int
	name             string
	readOnly         bool
	dependsOn        []int
	dependedOnBy     []int
	lastPokeValue    *big.Int
	lastAccessStep   int
	lastAccessThread int
	lastAccessMode   AccessMode
}

// Checker is the access checker: it owns signal metadata and the
// idle-cycle/timeout counters, and mediates every peek/poke/step
// between a backend and a Simulator.
type Checker struct {
	sim     Simulator
	threads ThreadView

	byName map[string]*signal
	byID   []*signal

	timeout    int
	idleCycles int
}

// New builds a Checker from a design's name→direction map and
// combinational-path map (sink name → source names), restricted to IO
// leaves, assigning ids in the traversal order given by names.
func New(sim Simulator, threads ThreadView, names []string, isOutput map[string]bool, combPaths map[string][]string) *Checker {
	c := &Checker{
		sim:     sim,
		threads: threads,
		byName:  make(map[string]*signal, len(names)),
		byID:    make([]*signal, 0, len(names)),
	}

	for i, name := range names {
		s := &signal{
			id:             i,
			name:           name,
			readOnly:       isOutput[name],
			lastAccessStep: -1,
		}
		c.byName[name] = s
		c.byID = append(c.byID, s)
	}

	for sink, sources := range combPaths {
		sinkSig, ok := c.byName[sink]
		if !ok {
			continue
		}
		for _, src := range sources {
			srcSig, ok := c.byName[src]
			if !ok {
				continue
			}
			sinkSig.dependsOn = append(sinkSig.dependsOn, srcSig.id)
			srcSig.dependedOnBy = append(srcSig.dependedOnBy, sinkSig.id)
		}
	}
	for _, s := range c.byID {
		sort.Ints(s.dependsOn)
		sort.Ints(s.dependedOnBy)
		dedup(&s.dependsOn)
		dedup(&s.dependedOnBy)
	}

	return c
}

func dedup(xs *[]int) {
	if len(*xs) < 2 {
		return
	}
	out := (*xs)[:1]
	for _, x := range (*xs)[1:] {
		if x != out[len(out)-1] {
			out = append(out, x)
		}
	}
	*xs = out
}

// SetTimeout sets the idle-cycle timeout. cycles == 0 disables it.
func (c *Checker) SetTimeout(cycles int) {
	if cycles < 0 {
		panic("access: timeout must be >= 0")
	}
	c.timeout = cycles
}

// IdleCycles returns the current idle-cycle counter, for tests.
func (c *Checker) IdleCycles() int { return c.idleCycles }

func (c *Checker) lookup(name string) (*signal, error) {
	s, ok := c.byName[name]
	if !ok {
		return nil, &simerr.UnknownSymbol{Name: name}
	}
	return s, nil
}

// conflicting reports whether s's last access conflicts with the
// currently active thread, per spec.md §4.F's conflict predicate.
func (c *Checker) conflicting(s *signal) bool {
	if s.lastAccessStep == -1 {
		return false
	}
	if s.lastAccessStep != c.threads.CurrentStep() {
		return false
	}
	active := c.threads.ActiveThreadID()
	if s.lastAccessThread == active {
		return false
	}
	return !c.threads.IsParentOf(s.lastAccessThread, active)
}

func (c *Checker) recordAccess(s *signal, mode AccessMode) {
	s.lastAccessStep = c.threads.CurrentStep()
	s.lastAccessThread = c.threads.ActiveThreadID()
	s.lastAccessMode = mode
}

// Poke applies the poke rule from spec.md §4.F.
func (c *Checker) Poke(name string, v *big.Int) error {
	s, err := c.lookup(name)
	if err != nil {
		return err
	}
	if s.readOnly {
		return &simerr.UnpokeableSignal{Name: name}
	}

	if c.conflicting(s) {
		simlog.Conflict(name, simerr.ConflictingPoke.String(), c.threads.CurrentStep(), c.threads.ActiveThreadID(), s.lastAccessThread)
		return &simerr.ThreadOrderDependent{Signal: name, Reason: simerr.ConflictingPoke}
	}
	for _, depID := range s.dependedOnBy {
		dep := c.byID[depID]
		if c.conflicting(dep) && dep.lastAccessMode == Peek {
			simlog.Conflict(name, simerr.ConflictingPeekOnDependent.String(), c.threads.CurrentStep(), c.threads.ActiveThreadID(), dep.lastAccessThread)
			return &simerr.ThreadOrderDependent{Signal: name, Reason: simerr.ConflictingPeekOnDependent}
		}
	}

	if s.lastPokeValue != nil && v.Cmp(s.lastPokeValue) == 0 {
		c.recordAccess(s, Poke)
		return nil
	}

	c.sim.PokeByName(name, v)
	s.lastPokeValue = new(big.Int).Set(v)
	c.idleCycles = 0
	c.recordAccess(s, Poke)
	return nil
}

// PeekValue applies the peek rule from spec.md §4.F.
func (c *Checker) PeekValue(name string) (*big.Int, error) {
	s, err := c.lookup(name)
	if err != nil {
		return nil, err
	}

	if c.conflicting(s) && s.lastAccessMode == Poke {
		simlog.Conflict(name, simerr.ConflictingPeek.String(), c.threads.CurrentStep(), c.threads.ActiveThreadID(), s.lastAccessThread)
		return nil, &simerr.ThreadOrderDependent{Signal: name, Reason: simerr.ConflictingPeek}
	}
	for _, srcID := range s.dependsOn {
		src := c.byID[srcID]
		if c.conflicting(src) && src.lastAccessMode == Poke {
			simlog.Conflict(name, simerr.ConflictingPokeOnDependent.String(), c.threads.CurrentStep(), c.threads.ActiveThreadID(), src.lastAccessThread)
			return nil, &simerr.ThreadOrderDependent{Signal: name, Reason: simerr.ConflictingPokeOnDependent}
		}
	}

	v, _ := c.sim.PeekByName(name)
	c.recordAccess(s, Peek)
	return v, nil
}

// Checkpoint surfaces a pending environment-level exception, if any,
// before a step is allowed to proceed. The single-simulator design
// here has no concurrently-running assertion side channel distinct
// from the StepResult itself, so this currently always returns nil;
// it exists as the hook point spec.md §7's propagation policy names.
func (c *Checker) Checkpoint() error { return nil }

// SimulationStep implements spec.md §4.F's simulationStep: it clamps
// the request to the remaining timeout window, invokes the underlying
// step, and turns the result into idle-cycle accounting or an error.
func (c *Checker) SimulationStep(from, cycles int) (delta int, err error) {
	if err := c.Checkpoint(); err != nil {
		return 0, err
	}

	want := cycles
	if c.timeout > 0 {
		remaining := c.timeout - c.idleCycles
		if remaining < want {
			want = remaining
		}
	}
	if want != cycles {
		simlog.TimeoutClamp(cycles, want, c.idleCycles, c.timeout)
	}

	res := c.sim.Step(want)
	if res.Ok {
		c.idleCycles += want
		if c.timeout > 0 && c.idleCycles >= c.timeout {
			return want, &simerr.Timeout{Cycles: c.idleCycles}
		}
		return want, nil
	}

	if res.IsAssertion {
		return res.After, &simerr.AssertionFailed{AtStep: from + res.After}
	}
	return res.After, &simerr.Stop{AtStep: from + res.After}
}
