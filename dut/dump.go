package dut

import (
	"sort"
	"strconv"

	"github.com/jedib0t/go-pretty/v6/table"

	"github.com/sarchlab/cycleharness/symtab"
	"github.com/sarchlab/cycleharness/value"
)

// Dump renders every declared symbol's current value as a table, in
// the style of the teacher's core.PrintState register/buffer dump.
// It is diagnostic only, meant for test-failure messages; it has no
// bearing on peek/poke/step semantics.
func (s *Simulation) Dump() string {
	names := make([]string, 0, len(s.exec.Info))
	for name := range s.exec.Info {
		names = append(names, name)
	}
	sort.Strings(names)

	t := table.NewWriter()
	t.SetTitle("Simulation state")
	t.AppendHeader(table.Row{"Name", "Kind", "Width", "Value"})

	for _, name := range names {
		sym := s.exec.Info[name]
		id := SymbolID{name: name, index: sym.Index, class: sym.Class}
		t.AppendRow(table.Row{name, sym.Kind.String(), sym.Width, s.renderValue(id, sym)})
	}

	return t.Render()
}

func (s *Simulation) renderValue(id SymbolID, sym symtab.Symbol) string {
	if sym.IsArray {
		return "<memory>"
	}
	switch sym.Class {
	case value.Bool:
		v, _ := s.PeekBool(id)
		if v {
			return "1"
		}
		return "0"
	case value.Long:
		v, _ := s.PeekLong(id)
		return strconv.FormatInt(v, 10)
	case value.Big:
		v, _ := s.PeekBig(id)
		return v.String()
	default:
		return "?"
	}
}
