package expr

import (
	"math/big"

	"github.com/sarchlab/cycleharness/value"
)

// BoolToLong widens a Bool into a Long: 1 if e else 0.
type BoolToLong struct {
	E BoolExpr
}

func (n *BoolToLong) Bind(data *value.Storage) { n.E.Bind(data) }
func (n *BoolToLong) EvalLong() int64 {
	if n.E.EvalBool() {
		return 1
	}
	return 0
}

// BoolToBig widens a Bool into a Big: 1 if e else 0.
type BoolToBig struct {
	E BoolExpr
}

func (n *BoolToBig) Bind(data *value.Storage) { n.E.Bind(data) }
func (n *BoolToBig) EvalBig() *big.Int {
	if n.E.EvalBool() {
		return big.NewInt(1)
	}
	return big.NewInt(0)
}

// LongToBig unsigned zero-extends a Long into a Big: the value is
// treated as a 64-bit unsigned pattern, not sign-extended.
type LongToBig struct {
	E LongExpr
}

func (n *LongToBig) Bind(data *value.Storage) { n.E.Bind(data) }
func (n *LongToBig) EvalBig() *big.Int {
	v := n.E.EvalLong()
	u := new(big.Int).SetUint64(uint64(v))
	return u
}
