package symtab

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/sarchlab/cycleharness/value"
)

// yamlSymbol mirrors the on-disk shape of one symbol-table entry. Field
// names follow the teacher's YAMLOperand/YAMLOperation convention of
// lower_snake_case tags over an exported-field Go struct.
type yamlSymbol struct {
	Name    string `yaml:"name"`
	Kind    string `yaml:"kind"`    // "input" | "output" | "register" | "node"
	Width   int    `yaml:"width"`
	Signed  bool   `yaml:"signed"`
	IsClock bool   `yaml:"is_clock"`
	Count   int    `yaml:"count"` // 0 or 1 for scalars, >1 for arrays
}

// YAMLDocument is the top-level shape of a compiled symbol table file.
type YAMLDocument struct {
	Symbols []yamlSymbol `yaml:"symbols"`
	// CombPaths maps each combinational sink name to its source names,
	// exactly the map the access checker's construction step in
	// spec.md §4.F expects — emitted by the (out-of-scope) front end
	// alongside the store list, not derived by walking expression
	// trees at runtime.
	CombPaths map[string][]string `yaml:"comb_paths"`
}

// CombGraph is a sink-name -> source-names combinational path map.
type CombGraph map[string][]string

func parseKind(s string) (Kind, error) {
	switch s {
	case "input":
		return Input, nil
	case "output":
		return Output, nil
	case "register":
		return Register, nil
	case "node":
		return Node, nil
	default:
		return 0, fmt.Errorf("symtab: unknown symbol kind %q", s)
	}
}

// BuildFromDocument turns a decoded YAMLDocument into a Table and an
// allocated Storage sized to hold it. Scalar cells are indexed in
// declaration order within their class; array symbols get one memory
// slot each, sized by Count.
func BuildFromDocument(doc YAMLDocument) (Table, *value.Storage, CombGraph, error) {
	table := make(Table, len(doc.Symbols))

	var numBools, numLongs, numBigs, numLongMem, numBigMem int
	type pending struct {
		sym   yamlSymbol
		kind  Kind
		class value.Class
	}
	pendings := make([]pending, 0, len(doc.Symbols))

	for _, ys := range doc.Symbols {
		kind, err := parseKind(ys.Kind)
		if err != nil {
			return nil, nil, nil, err
		}
		if ys.Width < 1 {
			return nil, nil, nil, fmt.Errorf("symtab: symbol %q has non-positive width", ys.Name)
		}
		if ys.Count > 1 && kind != Register && kind != Node {
			return nil, nil, nil, fmt.Errorf("symtab: array symbol %q must not be an Input/Output port", ys.Name)
		}
		if ys.Count > 1 && ys.IsClock {
			return nil, nil, nil, fmt.Errorf("symtab: array symbol %q cannot be a clock", ys.Name)
		}
		class := value.ClassOf(ys.Width)
		pendings = append(pendings, pending{sym: ys, kind: kind, class: class})
	}

	for _, p := range pendings {
		sym := Symbol{
			Name:    p.sym.Name,
			Kind:    p.kind,
			Width:   p.sym.Width,
			Signed:  p.sym.Signed,
			IsClock: p.sym.IsClock,
			Class:   p.class,
		}
		if p.sym.Count > 1 {
			sym.IsArray = true
			sym.Count = p.sym.Count
			switch p.class {
			case value.Long:
				sym.Index = numLongMem
				numLongMem++
			case value.Big:
				sym.Index = numBigMem
				numBigMem++
			default:
				return nil, nil, nil, fmt.Errorf("symtab: array symbol %q cannot be Bool class", p.sym.Name)
			}
		} else {
			switch p.class {
			case value.Bool:
				sym.Index = numBools
				numBools++
			case value.Long:
				sym.Index = numLongs
				numLongs++
			case value.Big:
				sym.Index = numBigs
				numBigs++
			}
		}
		table[sym.Name] = sym
	}

	data := value.NewStorage(numBools, numLongs, numBigs, numLongMem, numBigMem)
	for _, sym := range table {
		if !sym.IsArray {
			continue
		}
		switch sym.Class {
		case value.Long:
			data.SetLongMemory(sym.Index, sym.Count)
		case value.Big:
			data.SetBigMemory(sym.Index, sym.Count)
		}
	}

	return table, data, CombGraph(doc.CombPaths), nil
}

// LoadFile decodes a YAML symbol-table file from disk.
func LoadFile(path string) (Table, *value.Storage, CombGraph, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, nil, nil, err
	}
	var doc YAMLDocument
	if err := yaml.Unmarshal(raw, &doc); err != nil {
		return nil, nil, nil, fmt.Errorf("symtab: decoding %s: %w", path, err)
	}
	return BuildFromDocument(doc)
}
