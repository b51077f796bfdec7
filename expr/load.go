package expr

import (
	"math/big"

	"github.com/sarchlab/cycleharness/value"
)

// LoadBool reads storage.Bools[Index]. Bind installs the storage
// reference; evaluation before the first Bind call panics.
type LoadBool struct {
	Index int
	data  *value.Storage
}

func (n *LoadBool) Bind(data *value.Storage) { n.data = data }
func (n *LoadBool) EvalBool() bool            { return n.data.Bools[n.Index] }

// LoadLong reads storage.Longs[Index].
type LoadLong struct {
	Index int
	data  *value.Storage
}

func (n *LoadLong) Bind(data *value.Storage) { n.data = data }
func (n *LoadLong) EvalLong() int64           { return n.data.Longs[n.Index] }

// LoadBig reads storage.Bigs[Index].
type LoadBig struct {
	Index int
	data  *value.Storage
}

func (n *LoadBig) Bind(data *value.Storage) { n.data = data }
func (n *LoadBig) EvalBig() *big.Int         { return n.data.Bigs[n.Index] }

// LoadLongMemoryElement reads storage.LongMemories[MemIndex][addr],
// where addr is itself evaluated from an index expression. This
// supports array (memory) symbols; spec.md's node catalogue covers
// scalar loads explicitly and leaves memory addressing to the
// compiled store list, which is exactly what this node does.
type LoadLongMemoryElement struct {
	MemIndex int
	Addr     LongExpr
	data     *value.Storage
}

func (n *LoadLongMemoryElement) Bind(data *value.Storage) {
	n.data = data
	n.Addr.Bind(data)
}

func (n *LoadLongMemoryElement) EvalLong() int64 {
	return n.data.LongMemories[n.MemIndex][n.Addr.EvalLong()]
}

// LoadBigMemoryElement is the Big-class analogue of
// LoadLongMemoryElement.
type LoadBigMemoryElement struct {
	MemIndex int
	Addr     LongExpr
	data     *value.Storage
}

func (n *LoadBigMemoryElement) Bind(data *value.Storage) {
	n.data = data
	n.Addr.Bind(data)
}

func (n *LoadBigMemoryElement) EvalBig() *big.Int {
	return n.data.BigMemories[n.MemIndex][n.Addr.EvalLong()]
}
