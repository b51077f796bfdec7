package scheduler_test

import (
	"errors"
	"testing"

	"github.com/sarchlab/cycleharness/scheduler"
	"github.com/sarchlab/cycleharness/simerr"
)

// recordingStep is a StepFunc that always advances exactly n cycles and
// records every call, letting tests assert how many real steps the
// scheduler actually drove the simulation.
func recordingStep(calls *[]int) scheduler.StepFunc {
	return func(from, cycles int) (int, error) {
		*calls = append(*calls, cycles)
		return cycles, nil
	}
}

func TestStepAdvancesDirectlyWhenNoThreadIsWaiting(t *testing.T) {
	var calls []int
	s := scheduler.New(recordingStep(&calls))

	if err := s.Step(3); err != nil {
		t.Fatalf("Step: %v", err)
	}
	if s.CurrentStep() != 3 {
		t.Fatalf("CurrentStep = %d, want 3", s.CurrentStep())
	}
	if len(calls) != 1 || calls[0] != 3 {
		t.Fatalf("calls = %v, want [3]", calls)
	}
}

func TestForkRunsChildBeforeForkReturns(t *testing.T) {
	var calls []int
	s := scheduler.New(recordingStep(&calls))

	var order []string
	s.Fork("child", func() error {
		order = append(order, "child")
		return nil
	})
	order = append(order, "parent")

	if got := []string{"child", "parent"}; order[0] != got[0] || order[1] != got[1] {
		t.Fatalf("order = %v, want %v", order, got)
	}
}

func TestJoinPropagatesChildError(t *testing.T) {
	var calls []int
	s := scheduler.New(recordingStep(&calls))

	wantErr := errors.New("boom")
	id := s.Fork("child", func() error { return wantErr })

	if err := s.Join([]int{id}); !errors.Is(err, wantErr) {
		t.Fatalf("Join err = %v, want %v", err, wantErr)
	}
}

func TestJoinWaitsAcrossCycles(t *testing.T) {
	var calls []int
	s := scheduler.New(recordingStep(&calls))

	var ran bool
	id := s.Fork("child", func() error {
		if err := s.Yield(2); err != nil {
			return err
		}
		ran = true
		return nil
	})

	if err := s.Join([]int{id}); err != nil {
		t.Fatalf("Join: %v", err)
	}
	if !ran {
		t.Fatal("child body did not resume after its yield")
	}
	if s.CurrentStep() < 2 {
		t.Fatalf("CurrentStep = %d, want >= 2", s.CurrentStep())
	}
}

func TestFinishMainJoinsEveryLiveThread(t *testing.T) {
	var calls []int
	s := scheduler.New(recordingStep(&calls))

	var done []string
	s.Fork("a", func() error {
		if err := s.Yield(1); err != nil {
			return err
		}
		done = append(done, "a")
		return nil
	})
	s.Fork("b", func() error {
		if err := s.Yield(2); err != nil {
			return err
		}
		done = append(done, "b")
		return nil
	})

	if err := s.FinishMain(); err != nil {
		t.Fatalf("FinishMain: %v", err)
	}
	if len(done) != 2 {
		t.Fatalf("done = %v, want both threads finished", done)
	}
}

func TestYieldDeadlocksWithNoOtherEligibleThread(t *testing.T) {
	var calls []int
	s := scheduler.New(recordingStep(&calls))

	err := s.Yield(1)
	if err == nil {
		t.Fatal("expected a deadlock error")
	}
	var deadlock *simerr.Deadlock
	if !errors.As(err, &deadlock) {
		t.Fatalf("err = %v, want *simerr.Deadlock", err)
	}
}

func TestReportRendersForkedThreads(t *testing.T) {
	var calls []int
	s := scheduler.New(recordingStep(&calls))
	s.Fork("worker", func() error { return nil })

	report := s.Report()
	if report == "" {
		t.Fatal("Report returned an empty string")
	}
}
