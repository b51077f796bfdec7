package nativeharness_test

import (
	"math/big"
	"testing"

	"github.com/sarchlab/akita/v4/sim"

	"github.com/sarchlab/cycleharness/backend"
	"github.com/sarchlab/cycleharness/nativeharness"
	"github.com/sarchlab/cycleharness/refdesign"
)

func TestHarnessRunsGCDOverAnEngine(t *testing.T) {
	exec, comb := refdesign.GCD()
	names := nativeharness.IoNames(exec.Info)

	engine := sim.NewSerialEngine()
	h := nativeharness.NewBuilder().
		WithEngine(engine).
		WithFreq(1 * sim.GHz).
		Build("gcd", exec, names)

	isOutput := map[string]bool{"z": true, "v": true}
	b := backend.NewBuilder().WithMasterClock("clk")

	var z int64
	err := b.Run(h, names, isOutput, comb, func(be backend.Backend) error {
		if err := be.PokeBits("clk", "a", big.NewInt(12)); err != nil {
			return err
		}
		if err := be.PokeBits("clk", "b", big.NewInt(18)); err != nil {
			return err
		}
		if err := be.PokeBits("clk", "e", big.NewInt(1)); err != nil {
			return err
		}
		if err := be.Step("clk", 1); err != nil {
			return err
		}
		if err := be.PokeBits("clk", "e", big.NewInt(0)); err != nil {
			return err
		}

		for i := 0; i < 256; i++ {
			v, err := be.PeekBits("clk", "v")
			if err != nil {
				return err
			}
			if v.Sign() != 0 {
				zv, err := be.PeekBits("clk", "z")
				if err != nil {
					return err
				}
				z = zv.Int64()
				return nil
			}
			if err := be.Step("clk", 1); err != nil {
				return err
			}
		}
		t.Fatal("gcd did not complete within the cycle budget")
		return nil
	})
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if z != 6 {
		t.Fatalf("z = %d, want 6", z)
	}
	if h.TicksRun() == 0 {
		t.Fatal("TicksRun reports no cycles, but Step must have ticked the harness")
	}
}

func TestHarnessAssertFuncInterruptsStep(t *testing.T) {
	exec, _ := refdesign.GCD()
	names := nativeharness.IoNames(exec.Info)

	engine := sim.NewSerialEngine()
	h := nativeharness.NewBuilder().
		WithEngine(engine).
		WithFreq(1 * sim.GHz).
		WithAssert(func(peek func(string) (*big.Int, bool)) (bool, bool) {
			v, ok := peek("v")
			return ok && v.Sign() != 0, true
		}).
		Build("gcd-asserting", exec, names)

	if !h.PokeByName("a", big.NewInt(7)) {
		t.Fatal("poke a failed")
	}
	if !h.PokeByName("b", big.NewInt(7)) {
		t.Fatal("poke b failed")
	}
	if !h.PokeByName("e", big.NewInt(1)) {
		t.Fatal("poke e failed")
	}
	res := h.Step(1)
	if !res.Ok {
		t.Fatalf("first step unexpectedly interrupted: %+v", res)
	}
	if !h.PokeByName("e", big.NewInt(0)) {
		t.Fatal("poke e (clear) failed")
	}

	res = h.Step(256)
	if res.Ok {
		t.Fatal("expected the assert func to interrupt once v rises")
	}
	if !res.IsAssertion {
		t.Fatal("expected the interrupt to be reported as an assertion")
	}
}

