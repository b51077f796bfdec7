// Package scheduler implements the cooperative multi-thread scheduler
// described in spec.md §4.H: fork, join, step, yield, and deadlock
// detection, multiplexing many user test threads over one simulation
// via strict hand-off. Exactly one thread is ever runnable; every
// other live thread blocks on a private semaphore. Host threads are
// goroutines; a semaphore is a buffered chan struct{} of capacity 1,
// started empty, matching the rendering the design notes call for
// (spec.md §9) since no stackful-coroutine library appears anywhere
// in the retrieved corpus.
package scheduler

import (
	"fmt"
	"sort"

	"github.com/jedib0t/go-pretty/v6/table"

	"github.com/sarchlab/cycleharness/forktree"
	"github.com/sarchlab/cycleharness/simerr"
	"github.com/sarchlab/cycleharness/simlog"
)

// Status is a thread's scheduling state.
type Status int

const (
	Active Status = iota
	WaitingUntil
	WaitingForJoin
	Finished
)

func (s Status) String() string {
	switch s {
	case Active:
		return "Active"
	case WaitingUntil:
		return "WaitingUntil"
	case WaitingForJoin:
		return "WaitingForJoin"
	case Finished:
		return "Finished"
	default:
		return "Status(?)"
	}
}

// StepFunc advances the underlying simulation by at most cycles steps
// starting at "from", returning the number of cycles actually taken.
// It is satisfied by (*access.Checker).SimulationStep.
type StepFunc func(from, cycles int) (delta int, err error)

// ThreadBody is the user code run on a forked thread. A non-nil
// returned error is stored and surfaced to whichever thread next
// joins this one.
type ThreadBody func() error

type threadInfo struct {
	id         int
	name       string
	status     Status
	waitUntil  int
	waitJoinID int
	sem        chan struct{}
	err        error
}

// Scheduler is the cooperative scheduler. The goroutine that calls New
// is thread 0 (main). Main has a semaphore like every other thread and
// blocks on it whenever it hands off control in Fork/Join/Step/Yield;
// unlike a forked thread, it does not acquire it before starting, since
// it is already running when New returns.
type Scheduler struct {
	threads     map[int]*threadInfo
	tree        *forktree.Tree
	activeID    int
	currentStep int
	stepFn      StepFunc
}

// New builds a scheduler with only the main thread (id 0) alive,
// Active, at step 0.
func New(stepFn StepFunc) *Scheduler {
	s := &Scheduler{
		threads: map[int]*threadInfo{
			0: {id: 0, name: "main", status: Active, sem: make(chan struct{}, 1)},
		},
		tree:   forktree.New(),
		stepFn: stepFn,
	}
	return s
}

// SetStep installs the step callback. Run wires this after
// construction, once the access checker that provides it exists,
// because the checker's own ThreadView is this same Scheduler: the
// two are built in two passes to break the cycle.
func (s *Scheduler) SetStep(fn StepFunc) { s.stepFn = fn }

// ActiveThreadID satisfies access.ThreadView.
func (s *Scheduler) ActiveThreadID() int { return s.activeID }

// CurrentStep satisfies access.ThreadView.
func (s *Scheduler) CurrentStep() int { return s.currentStep }

// IsParentOf satisfies access.ThreadView.
func (s *Scheduler) IsParentOf(ancestor, descendant int) bool {
	return s.tree.IsParentOf(ancestor, descendant)
}

func (s *Scheduler) wake(id int) {
	info := s.threads[id]
	select {
	case info.sem <- struct{}{}:
	default:
	}
}

// suspend blocks the calling goroutine (thread id's host thread) on
// its own semaphore and, upon release, marks it Active.
func (s *Scheduler) suspend(id int) {
	info := s.threads[id]
	<-info.sem
	s.activeID = id
	info.status = Active
}

func (s *Scheduler) collectWaitingUntil() []int {
	var waits []int
	for _, t := range s.threads {
		if t.status == WaitingUntil {
			waits = append(waits, t.waitUntil)
		}
	}
	return waits
}

func minInt(xs []int) int {
	m := xs[0]
	for _, x := range xs[1:] {
		if x < m {
			m = x
		}
	}
	return m
}

// findNextThread iterates live threads in fork-tree depth-first order
// and returns the first one, other than exclude, eligible to run, per
// spec.md §4.H. exclude is always the thread currently handing off
// control: a Yield/Join/finish must never hand control back to itself,
// even if its own wait condition happens to already be satisfied (as
// Fork's zero-cycle Yield's always is), or the newborn/sibling it is
// meant to wake would never get a turn.
func (s *Scheduler) findNextThread(exclude int) (int, bool) {
	for _, id := range s.tree.GetOrder() {
		if id == exclude {
			continue
		}
		t, ok := s.threads[id]
		if !ok || t.status == Active {
			continue
		}
		switch t.status {
		case WaitingUntil:
			if t.waitUntil == s.currentStep {
				return id, true
			}
		case WaitingForJoin:
			if target, ok := s.threads[t.waitJoinID]; ok && target.status == Finished {
				return id, true
			}
		}
	}
	return 0, false
}

func (s *Scheduler) deadlock() error {
	return &simerr.Deadlock{Threads: s.Report}
}

// Fork starts a new thread running body as a child of the active
// thread, and yields for 0 cycles so the newborn runs before Fork
// returns (per spec.md §4.H).
func (s *Scheduler) Fork(name string, body ThreadBody) int {
	parent := s.activeID
	id := s.tree.AddThread(parent)
	if name == "" {
		name = fmt.Sprintf("thread-%d", id)
	}
	info := &threadInfo{
		id:        id,
		name:      name,
		status:    WaitingUntil,
		waitUntil: s.currentStep,
		sem:       make(chan struct{}, 1),
	}
	s.threads[id] = info

	go func() {
		s.suspend(id)
		info.err = body()
		s.finishSelf(id)
	}()

	if err := s.Yield(0); err != nil {
		// The newborn thread is always immediately eligible
		// (WaitingUntil == currentStep), so no other outcome is
		// reachable; treat it as a scheduler invariant violation.
		panic(err)
	}
	return id
}

// Yield suspends the active thread for s cycles, handing control to
// the next eligible thread in fork-tree order. Raises Deadlock if no
// thread is eligible.
func (s *Scheduler) Yield(cycles int) error {
	self := s.activeID
	info := s.threads[self]
	if info.status == Active {
		info.status = WaitingUntil
		info.waitUntil = s.currentStep + cycles
	}

	next, ok := s.findNextThread(self)
	if !ok {
		return s.deadlock()
	}
	simlog.SchedulerWake(self, next, s.currentStep, "yield")
	s.wake(next)
	s.suspend(self)
	return nil
}

// doStep invokes the underlying simulation step and advances
// currentStep by the delta actually taken.
func (s *Scheduler) doStep(n int) error {
	if n <= 0 {
		return nil
	}
	delta, err := s.stepFn(s.currentStep, n)
	s.currentStep += delta
	return err
}

// Step advances the active thread's clock by n cycles, per the
// four-case algorithm in spec.md §4.H.
func (s *Scheduler) Step(n int) error {
	if n < 1 {
		panic("scheduler: Step requires n >= 1")
	}

	waits := s.collectWaitingUntil()
	if len(waits) == 0 {
		return s.doStep(n)
	}

	nextWake := minInt(waits)
	if nextWake > s.currentStep+n {
		return s.doStep(n)
	}

	self := s.activeID
	info := s.threads[self]
	info.status = WaitingUntil
	info.waitUntil = s.currentStep + n

	stepTaken := nextWake - s.currentStep
	if err := s.doStep(stepTaken); err != nil {
		return err
	}

	return s.Yield(n - stepTaken)
}

// Join blocks the active thread until every thread in ids has
// finished, in order, per spec.md §4.H. If a joined thread's body
// returned an error, Join returns it.
func (s *Scheduler) Join(ids []int) error {
	for _, id := range ids {
		if err := s.joinOne(id); err != nil {
			return err
		}
	}
	return nil
}

func (s *Scheduler) joinOne(id int) error {
	target, ok := s.threads[id]
	if !ok {
		panic("scheduler: Join on unknown thread id")
	}
	if target.status == Finished {
		return target.err
	}

	if waits := s.collectWaitingUntil(); len(waits) > 0 {
		nextWake := minInt(waits)
		if nextWake > s.currentStep {
			if err := s.doStep(nextWake - s.currentStep); err != nil {
				return err
			}
		}
	}

	self := s.activeID
	next, ok := s.findNextThread(self)
	if !ok {
		return s.deadlock()
	}

	info := s.threads[self]
	info.status = WaitingForJoin
	info.waitJoinID = id
	simlog.SchedulerWake(self, next, s.currentStep, "join")
	s.wake(next)
	s.suspend(self)

	return target.err
}

// finishSelf marks id Finished and hands control to whichever thread
// becomes runnable as a result, per spec.md §4.H.
func (s *Scheduler) finishSelf(id int) {
	info := s.threads[id]
	info.status = Finished
	s.tree.FinishThread(id)

	for _, t := range s.threads {
		if t.status == WaitingForJoin && t.waitJoinID == id {
			s.wake(t.id)
			return
		}
	}

	if waits := s.collectWaitingUntil(); len(waits) > 0 {
		nextWake := minInt(waits)
		if nextWake > s.currentStep {
			_ = s.doStep(nextWake - s.currentStep)
		}
	}

	if next, ok := s.findNextThread(id); ok {
		s.wake(next)
	}
}

// FinishMain joins every still-live non-main thread, in fork-tree
// order, then returns. It is the last thing backend.Run calls before
// tearing down.
func (s *Scheduler) FinishMain() error {
	var live []int
	for _, id := range s.tree.GetOrder() {
		if id != 0 {
			live = append(live, id)
		}
	}
	return s.Join(live)
}

// Report renders the full thread table (id, name, status), used by
// Deadlock's diagnostic message.
func (s *Scheduler) Report() string {
	ids := make([]int, 0, len(s.threads))
	for id := range s.threads {
		ids = append(ids, id)
	}
	sort.Ints(ids)

	t := table.NewWriter()
	t.SetTitle("Threads")
	t.AppendHeader(table.Row{"ID", "Name", "Status"})
	for _, id := range ids {
		info := s.threads[id]
		t.AppendRow(table.Row{info.id, info.name, info.status.String()})
	}
	return t.Render()
}
