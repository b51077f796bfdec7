package expr

import (
	"math/big"

	"github.com/sarchlab/cycleharness/value"
)

// NotBool computes !e.
type NotBool struct {
	E BoolExpr
}

func (n *NotBool) Bind(data *value.Storage) { n.E.Bind(data) }
func (n *NotBool) EvalBool() bool           { return !n.E.EvalBool() }

// NotLong computes (~e) & mask, truncating in-node to Mask.
type NotLong struct {
	E    LongExpr
	Mask int64
}

func (n *NotLong) Bind(data *value.Storage) { n.E.Bind(data) }
func (n *NotLong) EvalLong() int64          { return (^n.E.EvalLong()) & n.Mask }

// NotBig computes (~e) & mask over the unbounded non-negative domain.
// Two's-complement `~x` on an unbounded-width value is itself
// meaningless without a width, so this node masks to Mask, matching
// the node catalogue's note that NotBig truncates in-node.
type NotBig struct {
	E    BigExpr
	Mask *big.Int
}

func (n *NotBig) Bind(data *value.Storage) { n.E.Bind(data) }
func (n *NotBig) EvalBig() *big.Int {
	notted := new(big.Int).Not(n.E.EvalBig())
	return notted.And(notted, n.Mask)
}
