// Package simerr defines the tagged error family surfaced across the
// evaluation engine, access checker, and scheduler. Every kind is a
// concrete exported type implementing error, composable with
// errors.Is/errors.As, so callers can branch on failure kind without
// string matching. Errors are the expected-failure channel; programmer
// errors (nil executable, an id used without going through the
// façade) still panic, matching the teacher's own mix of the two.
package simerr

import "fmt"

// UnknownSymbol is returned by the access checker when a peek or poke
// names no known signal. (The façade's GetSymbolId reports
// symtab.UnknownSymbolError instead.)
type UnknownSymbol struct{ Name string }

func (e *UnknownSymbol) Error() string {
	return fmt.Sprintf("simerr: unknown symbol %q", e.Name)
}

// UnpokeableSignal is returned when a poke targets a signal that is
// not a pokeable IO leaf (wrong direction, or not Input).
type UnpokeableSignal struct{ Name string }

func (e *UnpokeableSignal) Error() string {
	return fmt.Sprintf("simerr: signal %q is not pokeable", e.Name)
}

// UnpeekableSignal is returned when a peek targets a signal that is
// not a peekable IO leaf.
type UnpeekableSignal struct{ Name string }

func (e *UnpeekableSignal) Error() string {
	return fmt.Sprintf("simerr: signal %q is not peekable", e.Name)
}

// ConflictReason names the specific rule in the access checker that
// rejected an access.
type ConflictReason int

const (
	// ConflictingPoke: the signal itself has a conflicting prior access.
	ConflictingPoke ConflictReason = iota
	// ConflictingPeek: the signal itself has a conflicting prior access.
	ConflictingPeek
	// ConflictingPeekOnDependent: a signal this poke combinationally
	// feeds was peeked by another unrelated thread this tick.
	ConflictingPeekOnDependent
	// ConflictingPokeOnDependent: a signal this peek combinationally
	// depends on was poked by another unrelated thread this tick.
	ConflictingPokeOnDependent
)

func (r ConflictReason) String() string {
	switch r {
	case ConflictingPoke:
		return "conflicting poke"
	case ConflictingPeek:
		return "conflicting peek"
	case ConflictingPeekOnDependent:
		return "conflicting peek on dependent signal"
	case ConflictingPokeOnDependent:
		return "conflicting poke on dependent signal"
	default:
		return "conflict reason(?)"
	}
}

// ThreadOrderDependent is raised by the access checker when a peek or
// poke would observe or mutate state in an order that depends on
// thread scheduling rather than on the test's own fork/join structure.
type ThreadOrderDependent struct {
	Signal string
	Reason ConflictReason
}

func (e *ThreadOrderDependent) Error() string {
	return fmt.Sprintf("simerr: %s on signal %q", e.Reason, e.Signal)
}

// Timeout is raised when the idle-cycle counter reaches the
// configured timeout with no intervening value-changing poke.
type Timeout struct{ Cycles int }

func (e *Timeout) Error() string {
	return fmt.Sprintf("simerr: timeout after %d idle cycles", e.Cycles)
}

// AssertionFailed is surfaced when the underlying simulator reports
// Interrupted(_, isAssertion=true).
type AssertionFailed struct{ AtStep int }

func (e *AssertionFailed) Error() string {
	return fmt.Sprintf("simerr: assertion failed at step %d", e.AtStep)
}

// Stop is surfaced when the underlying simulator reports
// Interrupted(_, isAssertion=false) — a voluntary $finish-style stop.
type Stop struct{ AtStep int }

func (e *Stop) Error() string {
	return fmt.Sprintf("simerr: stop at step %d", e.AtStep)
}

// Deadlock is raised when the scheduler can find no runnable thread.
type Deadlock struct {
	// Threads, if non-nil, renders a diagnostic table of every
	// thread's id/name/status at the moment of detection.
	Threads func() string
}

func (e *Deadlock) Error() string {
	if e.Threads == nil {
		return "simerr: deadlock: no runnable thread"
	}
	return "simerr: deadlock: no runnable thread\n" + e.Threads()
}

// Report renders the full thread table, or "" if none was attached.
func (e *Deadlock) Report() string {
	if e.Threads == nil {
		return ""
	}
	return e.Threads()
}

// NotSupported is raised by the single-thread backend for fork/join/
// timescope operations it does not implement.
type NotSupported struct{ Operation string }

func (e *NotSupported) Error() string {
	return fmt.Sprintf("simerr: %s is not supported on this backend", e.Operation)
}

// WrongClock is raised when a backend operation names a clock other
// than the design's single master clock (spec.md §6: "Clocks other
// than the master are rejected with a precondition error").
type WrongClock struct {
	Want, Got string
}

func (e *WrongClock) Error() string {
	return fmt.Sprintf("simerr: clock %q is not the master clock %q", e.Got, e.Want)
}

// SimulatorExitedEarly is raised when the underlying native harness
// process dies unexpectedly; it is treated as an AssertionFailed at
// the current step for reporting purposes.
type SimulatorExitedEarly struct{ AtStep int }

func (e *SimulatorExitedEarly) Error() string {
	return fmt.Sprintf("simerr: simulator exited early at step %d", e.AtStep)
}

// AsAssertionFailed reports the equivalent AssertionFailed for a
// SimulatorExitedEarly, per the propagation policy in the design.
func (e *SimulatorExitedEarly) AsAssertionFailed() *AssertionFailed {
	return &AssertionFailed{AtStep: e.AtStep}
}
