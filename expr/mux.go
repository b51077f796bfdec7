package expr

import (
	"math/big"

	"github.com/sarchlab/cycleharness/value"
)

// MuxBool selects Tru if Cond else Fals.
type MuxBool struct {
	Cond       BoolExpr
	Tru, Fals  BoolExpr
}

func (n *MuxBool) Bind(data *value.Storage) {
	n.Cond.Bind(data)
	n.Tru.Bind(data)
	n.Fals.Bind(data)
}

func (n *MuxBool) EvalBool() bool {
	if n.Cond.EvalBool() {
		return n.Tru.EvalBool()
	}
	return n.Fals.EvalBool()
}

// MuxLong selects Tru if Cond else Fals.
type MuxLong struct {
	Cond      BoolExpr
	Tru, Fals LongExpr
}

func (n *MuxLong) Bind(data *value.Storage) {
	n.Cond.Bind(data)
	n.Tru.Bind(data)
	n.Fals.Bind(data)
}

func (n *MuxLong) EvalLong() int64 {
	if n.Cond.EvalBool() {
		return n.Tru.EvalLong()
	}
	return n.Fals.EvalLong()
}

// MuxBig selects Tru if Cond else Fals.
type MuxBig struct {
	Cond      BoolExpr
	Tru, Fals BigExpr
}

func (n *MuxBig) Bind(data *value.Storage) {
	n.Cond.Bind(data)
	n.Tru.Bind(data)
	n.Fals.Bind(data)
}

func (n *MuxBig) EvalBig() *big.Int {
	if n.Cond.EvalBool() {
		return n.Tru.EvalBig()
	}
	return n.Fals.EvalBig()
}
