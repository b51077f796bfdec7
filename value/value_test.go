package value_test

import (
	"math/big"
	"testing"

	"github.com/sarchlab/cycleharness/value"
)

func TestLongMask(t *testing.T) {
	cases := []struct {
		bits int
		want int64
	}{
		{0, 0},
		{1, 1},
		{4, 0xf},
		{63, 1<<63 - 1},
		{64, -1},
		{-1, 0},
	}
	for _, c := range cases {
		if got := value.LongMask(c.bits); got != c.want {
			t.Errorf("LongMask(%d) = %#x, want %#x", c.bits, got, c.want)
		}
	}
}

func TestBigMask(t *testing.T) {
	got := value.BigMask(8)
	want := big.NewInt(0xff)
	if got.Cmp(want) != 0 {
		t.Errorf("BigMask(8) = %s, want %s", got, want)
	}
	if value.BigMask(0).Sign() != 0 {
		t.Errorf("BigMask(0) should be zero")
	}
}

func TestClassOf(t *testing.T) {
	cases := []struct {
		width int
		want  value.Class
	}{
		{1, value.Bool},
		{2, value.Long},
		{64, value.Long},
		{65, value.Big},
		{256, value.Big},
	}
	for _, c := range cases {
		if got := value.ClassOf(c.width); got != c.want {
			t.Errorf("ClassOf(%d) = %s, want %s", c.width, got, c.want)
		}
	}
}

func TestStorageBigCellsStartZero(t *testing.T) {
	s := value.NewStorage(1, 1, 2, 0, 0)
	for i, b := range s.Bigs {
		if b.Sign() != 0 {
			t.Errorf("Bigs[%d] = %s, want 0", i, b)
		}
	}
}
