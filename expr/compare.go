package expr

import (
	"github.com/sarchlab/cycleharness/value"
)

// EqualBool computes a == b.
type EqualBool struct{ A, B BoolExpr }

func (n *EqualBool) Bind(data *value.Storage) { n.A.Bind(data); n.B.Bind(data) }
func (n *EqualBool) EvalBool() bool           { return n.A.EvalBool() == n.B.EvalBool() }

// EqualLong computes a == b.
type EqualLong struct{ A, B LongExpr }

func (n *EqualLong) Bind(data *value.Storage) { n.A.Bind(data); n.B.Bind(data) }
func (n *EqualLong) EvalBool() bool           { return n.A.EvalLong() == n.B.EvalLong() }

// EqualBig computes a == b.
type EqualBig struct{ A, B BigExpr }

func (n *EqualBig) Bind(data *value.Storage) { n.A.Bind(data); n.B.Bind(data) }
func (n *EqualBig) EvalBool() bool {
	return n.A.EvalBig().Cmp(n.B.EvalBig()) == 0
}

// GtLong computes the signed comparison a > b.
type GtLong struct{ A, B LongExpr }

func (n *GtLong) Bind(data *value.Storage) { n.A.Bind(data); n.B.Bind(data) }
func (n *GtLong) EvalBool() bool           { return n.A.EvalLong() > n.B.EvalLong() }

// GtBig computes the unlimited-precision comparison a > b.
type GtBig struct{ A, B BigExpr }

func (n *GtBig) Bind(data *value.Storage) { n.A.Bind(data); n.B.Bind(data) }
func (n *GtBig) EvalBool() bool {
	return n.A.EvalBig().Cmp(n.B.EvalBig()) > 0
}

// GtUnsigned64Long implements unsigned > for values stored in a signed
// int64 cell. Let aMsb = a < 0, bMsb = b < 0: if both MSBs agree, the
// host's signed > already gives the right unsigned answer; otherwise
// whichever operand has its MSB set is the larger one unsigned.
type GtUnsigned64Long struct{ A, B LongExpr }

func (n *GtUnsigned64Long) Bind(data *value.Storage) { n.A.Bind(data); n.B.Bind(data) }
func (n *GtUnsigned64Long) EvalBool() bool {
	a, b := n.A.EvalLong(), n.B.EvalLong()
	aMsb, bMsb := a < 0, b < 0
	if aMsb == bMsb {
		return a > b
	}
	return aMsb
}

// GtUnsignedBool implements unsigned > for 1-bit values: a && !b.
type GtUnsignedBool struct{ A, B BoolExpr }

func (n *GtUnsignedBool) Bind(data *value.Storage) { n.A.Bind(data); n.B.Bind(data) }
func (n *GtUnsignedBool) EvalBool() bool {
	return n.A.EvalBool() && !n.B.EvalBool()
}

// GtSignedBool implements signed > for 1-bit two's-complement values:
// !a && b, because a lone set bit represents -1, which is less than 0.
type GtSignedBool struct{ A, B BoolExpr }

func (n *GtSignedBool) Bind(data *value.Storage) { n.A.Bind(data); n.B.Bind(data) }
func (n *GtSignedBool) EvalBool() bool {
	return !n.A.EvalBool() && n.B.EvalBool()
}
