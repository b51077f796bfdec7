// Package backend implements the two backend flavours of spec.md
// §4.I — single-thread and threaded — plus the Run harness entry point
// that assembles a façade, access checker, and (for the threaded
// flavour) a scheduler around a compiled executable, runs a test
// function, and tears everything down afterward.
package backend

import (
	"math/big"

	"github.com/tebeka/atexit"

	"github.com/sarchlab/cycleharness/access"
	"github.com/sarchlab/cycleharness/scheduler"
	"github.com/sarchlab/cycleharness/simerr"
)

// Finisher is implemented by simulators that own an external resource
// (a native process, a waveform file) that must be flushed/closed when
// a run ends, per spec.md §6's "finish()". access.Simulator
// implementations that have nothing to release (the direct dut
// adapter) simply don't implement it.
type Finisher interface {
	Finish()
}

// Backend is the user-facing surface spec.md §6 names: pokeBits,
// peekBits, step, setTimeout, fork, join, getStepCount. Clocks other
// than the design's single master clock are rejected.
type Backend interface {
	PokeBits(clock, signal string, value *big.Int) error
	PeekBits(clock, signal string) (*big.Int, error)
	Step(clock string, cycles int) error
	SetTimeout(clock string, cycles int) error
	GetStepCount(clock string) int
	Fork(name string, body func() error) (int, error)
	Join(ids []int) error
}

// TestFunc is the user test function Run invokes against a Backend.
type TestFunc func(Backend) error

func checkClock(master, got string) error {
	if got != master {
		return &simerr.WrongClock{Want: master, Got: got}
	}
	return nil
}

// fixedThreadView is the degenerate ThreadView used by the
// single-thread backend: there is only ever one thread, so the
// conflict predicate can never fire (lastAccessThread always equals
// the active thread), and the specific step number returned to the
// checker is immaterial.
type fixedThreadView struct{}

func (fixedThreadView) ActiveThreadID() int      { return 0 }
func (fixedThreadView) CurrentStep() int         { return 0 }
func (fixedThreadView) IsParentOf(a, d int) bool { return true }

// singleThread is the backend flavour with no fork/join support.
type singleThread struct {
	masterClock string
	checker     *access.Checker
	stepCount   int
}

func (b *singleThread) PokeBits(clock, signal string, v *big.Int) error {
	if err := checkClock(b.masterClock, clock); err != nil {
		return err
	}
	return b.checker.Poke(signal, v)
}

func (b *singleThread) PeekBits(clock, signal string) (*big.Int, error) {
	if err := checkClock(b.masterClock, clock); err != nil {
		return nil, err
	}
	return b.checker.PeekValue(signal)
}

func (b *singleThread) Step(clock string, cycles int) error {
	if err := checkClock(b.masterClock, clock); err != nil {
		return err
	}
	delta, err := b.checker.SimulationStep(b.stepCount, cycles)
	b.stepCount += delta
	return err
}

func (b *singleThread) SetTimeout(clock string, cycles int) error {
	if err := checkClock(b.masterClock, clock); err != nil {
		return err
	}
	b.checker.SetTimeout(cycles)
	return nil
}

func (b *singleThread) GetStepCount(clock string) int { return b.stepCount }

func (b *singleThread) Fork(name string, body func() error) (int, error) {
	return 0, &simerr.NotSupported{Operation: "fork"}
}

func (b *singleThread) Join(ids []int) error {
	return &simerr.NotSupported{Operation: "join"}
}

// threaded is the backend flavour wired to the cooperative scheduler.
type threaded struct {
	masterClock string
	checker     *access.Checker
	sched       *scheduler.Scheduler
}

func (b *threaded) PokeBits(clock, signal string, v *big.Int) error {
	if err := checkClock(b.masterClock, clock); err != nil {
		return err
	}
	return b.checker.Poke(signal, v)
}

func (b *threaded) PeekBits(clock, signal string) (*big.Int, error) {
	if err := checkClock(b.masterClock, clock); err != nil {
		return nil, err
	}
	return b.checker.PeekValue(signal)
}

func (b *threaded) Step(clock string, cycles int) error {
	if err := checkClock(b.masterClock, clock); err != nil {
		return err
	}
	return b.sched.Step(cycles)
}

func (b *threaded) SetTimeout(clock string, cycles int) error {
	if err := checkClock(b.masterClock, clock); err != nil {
		return err
	}
	b.checker.SetTimeout(cycles)
	return nil
}

func (b *threaded) GetStepCount(clock string) int { return b.sched.CurrentStep() }

func (b *threaded) Fork(name string, body func() error) (int, error) {
	return b.sched.Fork(name, body), nil
}

func (b *threaded) Join(ids []int) error { return b.sched.Join(ids) }

// Builder assembles a Backend around a compiled Executable, in the
// fluent WithX(...).Build-style the teacher uses for its own
// component builders (core/builder.go).
type Builder struct {
	masterClock string
	threaded    bool
	timeout     int
}

// NewBuilder returns a Builder defaulting to master clock "clk" and
// the single-thread backend.
func NewBuilder() Builder {
	return Builder{masterClock: "clk"}
}

// WithMasterClock names the design's single master clock.
func (b Builder) WithMasterClock(name string) Builder {
	b.masterClock = name
	return b
}

// WithThreaded selects the threaded backend (fork/join available).
func (b Builder) WithThreaded(threaded bool) Builder {
	b.threaded = threaded
	return b
}

// WithTimeout sets the idle-cycle timeout applied before Run starts
// testFn. 0 disables it.
func (b Builder) WithTimeout(cycles int) Builder {
	b.timeout = cycles
	return b
}

// Run builds a Backend over sim (an access.Simulator — either a
// direct dut adapter from NewDutAdapter, or an external harness such
// as nativeharness), executes testFn, and tears down afterward: for
// the threaded backend, it joins every still-live forked thread; in
// all cases, if sim implements Finisher, Finish is called whether
// testFn returns an error, panics, or succeeds. A process-exit hook
// (github.com/tebeka/atexit) guarantees Finish still runs if the host
// process itself is torn down by a panic that unwinds past Run.
func (b Builder) Run(sim access.Simulator, names []string, isOutput map[string]bool, comb map[string][]string, testFn TestFunc) (err error) {
	finish := func() {}
	if f, ok := sim.(Finisher); ok {
		finish = f.Finish
		atexit.Register(finish)
	}
	defer finish()

	if !b.threaded {
		checker := access.New(sim, fixedThreadView{}, names, isOutput, comb)
		if b.timeout > 0 {
			checker.SetTimeout(b.timeout)
		}
		backend := &singleThread{masterClock: b.masterClock, checker: checker}
		return testFn(backend)
	}

	sched := scheduler.New(nil)
	checker := access.New(sim, sched, names, isOutput, comb)
	sched.SetStep(checker.SimulationStep)
	if b.timeout > 0 {
		checker.SetTimeout(b.timeout)
	}
	be := &threaded{masterClock: b.masterClock, checker: checker, sched: sched}

	defer func() {
		if joinErr := sched.FinishMain(); joinErr != nil && err == nil {
			err = joinErr
		}
	}()

	return testFn(be)
}
