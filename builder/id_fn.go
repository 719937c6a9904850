// SPDX-License-Identifier: MIT
// Package: pathtrace/builder
//
// id_fn.go - node and edge identifier schemes.
//
// Two families live here:
//   • IDFn schemes used by constructors (index → id).
//   • NextNodeID / EdgeID, which pick ids for interactive edits against an
//     existing graph: the first free letter id, and "source+target" with a
//     numeric suffix when that id is taken.

package builder

import (
	"fmt"
	"strconv"

	"github.com/katalvlaran/pathtrace/graph"
)

// IDFn generates a node identifier from its zero-based index.
// It must be pure: given the same idx, it always returns the same string.
type IDFn func(idx int) string

// DecimalIDFn returns the decimal string of idx, e.g. 0→"0", 42→"42".
func DecimalIDFn(idx int) string {
	return strconv.Itoa(idx)
}

// ExcelColumnIDFn returns the “Excel-style” column name for idx, e.g. 0→"A", 25→"Z", 26→"AA".
// Complexity: O(k) time where k ≈ log₍₂₆₎(idx), O(1) extra space.
// Panics if idx < 0.
func ExcelColumnIDFn(idx int) string {
	if idx < 0 {
		panic(fmt.Sprintf("ExcelColumnIDFn: idx must be ≥ 0, got %d", idx))
	}
	var runes []rune
	var i, j int
	for i = idx; i >= 0; i = i/alphabetSize - 1 {
		runes = append(runes, rune('A'+(i%alphabetSize)))
	}
	for i, j = 0, len(runes)-1; i < j; i, j = i+1, j-1 {
		runes[i], runes[j] = runes[j], runes[i]
	}

	return string(runes)
}

// SymbolNumberIDFn returns prefix + decimal index, e.g. "v0", "v1", ...
// Panics if idx < 0.
func SymbolNumberIDFn(prefix string) IDFn {
	return func(idx int) string {
		if idx < 0 {
			panic(fmt.Sprintf("SymbolNumberIDFn: idx must be ≥ 0, got %d", idx))
		}
		return prefix + strconv.Itoa(idx)
	}
}

// WithDecimalIDs sets the ID scheme to DecimalIDFn.
func WithDecimalIDs() BuilderOption {
	return WithIDScheme(DecimalIDFn)
}

// WithExcelColumnIDs sets the ID scheme to ExcelColumnIDFn (the default).
func WithExcelColumnIDs() BuilderOption {
	return WithIDScheme(ExcelColumnIDFn)
}

// WithSymbNumb sets the ID scheme to SymbolNumberIDFn(prefix).
// Example: WithSymbNumb("v") → "v0","v1",...
func WithSymbNumb(prefix string) BuilderOption {
	return WithIDScheme(SymbolNumberIDFn(prefix))
}

const alphabetSize = 26

// NextNodeID returns the id for a node added to g interactively: the first
// unused single letter "A".."Z", then the first unused pair "AA".."ZZ", and
// finally "Node<n+1>" where n is the current node count.
// Complexity: O(V) to index g plus O(26²) probes.
func NextNodeID(g graph.Graph) string {
	used := g.Index()
	var id string
	for i := 0; i < alphabetSize; i++ {
		if id = string(rune('A' + i)); !hasKey(used, id) {
			return id
		}
	}
	for i := 0; i < alphabetSize; i++ {
		for j := 0; j < alphabetSize; j++ {
			if id = string([]rune{rune('A' + i), rune('A' + j)}); !hasKey(used, id) {
				return id
			}
		}
	}

	return "Node" + strconv.Itoa(len(g.Nodes)+1)
}

// EdgeID returns source+target, or source+target followed by the smallest
// suffix ≥ 2 that is not already an edge id in g. Parallel edges therefore
// get "AB", "AB2", "AB3", ...
func EdgeID(g graph.Graph, source, target string) string {
	base := source + target
	if !g.HasEdge(base) {
		return base
	}
	for n := 2; ; n++ {
		if id := base + strconv.Itoa(n); !g.HasEdge(id) {
			return id
		}
	}
}

func hasKey(m map[string]int, k string) bool {
	_, ok := m[k]
	return ok
}
