package expr

import (
	"math/big"

	"github.com/sarchlab/cycleharness/value"
)

// AddLong computes a + b, wrapping in int64 two's complement. It does
// not mask its result: the enclosing store's target width governs,
// because the front end is assumed to have emitted a follow-on mask
// where one is needed (spec.md §4.B).
type AddLong struct {
	A, B LongExpr
}

func (n *AddLong) Bind(data *value.Storage) { n.A.Bind(data); n.B.Bind(data) }
func (n *AddLong) EvalLong() int64          { return n.A.EvalLong() + n.B.EvalLong() }

// SubLong computes a - b, unmasked.
type SubLong struct {
	A, B LongExpr
}

func (n *SubLong) Bind(data *value.Storage) { n.A.Bind(data); n.B.Bind(data) }
func (n *SubLong) EvalLong() int64          { return n.A.EvalLong() - n.B.EvalLong() }

// AddBig computes a + b over unbounded non-negative integers, unmasked.
type AddBig struct {
	A, B BigExpr
}

func (n *AddBig) Bind(data *value.Storage) { n.A.Bind(data); n.B.Bind(data) }
func (n *AddBig) EvalBig() *big.Int {
	return new(big.Int).Add(n.A.EvalBig(), n.B.EvalBig())
}

// SubBig computes a - b, unmasked.
type SubBig struct {
	A, B BigExpr
}

func (n *SubBig) Bind(data *value.Storage) { n.A.Bind(data); n.B.Bind(data) }
func (n *SubBig) EvalBig() *big.Int {
	return new(big.Int).Sub(n.A.EvalBig(), n.B.EvalBig())
}
