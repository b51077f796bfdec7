// Package expr implements the evaluation engine's expression-node
// catalogue: an immutable, arena-backed tree of value-producing nodes
// in one of three result kinds (Bool, Long, Big). Trees never allocate
// on the hot path beyond what big.Int arithmetic itself requires.
//
// Loads and stores hold a stable indirection to the storage arrays
// rather than looking them up by id on every evaluation: a post-order
// Bind pass, run once at compile time (and cheaply re-run to rebind to
// a different Storage, e.g. when cloning state), installs the
// reference. Evaluation itself takes no Storage argument; it reads
// through the bound reference.
package expr

import (
	"math/big"

	"github.com/sarchlab/cycleharness/value"
)

// Bindable is implemented by every node. Bind installs (or re-installs)
// a reference to the storage arrays a tree's loads read from, and
// recurses into operand subtrees; it must be called, post-order, on
// every store's root before first evaluation.
type Bindable interface {
	Bind(data *value.Storage)
}

// BoolExpr is a node whose result kind is Bool.
type BoolExpr interface {
	Bindable
	EvalBool() bool
}

// LongExpr is a node whose result kind is Long.
type LongExpr interface {
	Bindable
	EvalLong() int64
}

// BigExpr is a node whose result kind is Big. Implementations must not
// mutate the returned *big.Int; callers that need to keep it across a
// further evaluation should clone it.
type BigExpr interface {
	Bindable
	EvalBig() *big.Int
}

// leaf is embedded by nodes that carry no child expressions and no
// storage reference (pure constants); Bind is a no-op for them.
type leaf struct{}

func (leaf) Bind(*value.Storage) {}
