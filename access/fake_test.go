package access_test

import (
	"math/big"

	"github.com/sarchlab/cycleharness/access"
)

// fakeSim is a bare in-memory access.Simulator used by the test suite:
// it records every PokeByName call so tests can assert poke coalescing
// actually skips redundant writes.
type fakeSim struct {
	values    map[string]*big.Int
	pokeCalls int
	stepCalls []int
}

func newFakeSim() *fakeSim {
	return &fakeSim{values: map[string]*big.Int{}}
}

func (f *fakeSim) PeekByName(name string) (*big.Int, bool) {
	v, ok := f.values[name]
	if !ok {
		return big.NewInt(0), true
	}
	return v, true
}

func (f *fakeSim) PokeByName(name string, v *big.Int) bool {
	f.pokeCalls++
	f.values[name] = new(big.Int).Set(v)
	return true
}

func (f *fakeSim) Step(cycles int) access.StepResult {
	f.stepCalls = append(f.stepCalls, cycles)
	return access.StepResult{Ok: true, After: cycles}
}

// fakeThreads is a minimal, directly-mutable access.ThreadView: tests
// set activeID/step/parents to drive the conflict predicate without
// needing a real scheduler.Scheduler.
type fakeThreads struct {
	activeID int
	step     int
	parents  map[int]int // child -> parent
}

func newFakeThreads() *fakeThreads {
	return &fakeThreads{parents: map[int]int{}}
}

func (f *fakeThreads) ActiveThreadID() int { return f.activeID }
func (f *fakeThreads) CurrentStep() int    { return f.step }

func (f *fakeThreads) IsParentOf(ancestor, descendant int) bool {
	for cur := descendant; ; {
		if cur == ancestor {
			return true
		}
		parent, ok := f.parents[cur]
		if !ok {
			return false
		}
		cur = parent
	}
}
