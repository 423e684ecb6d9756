// Package ab implements the iterative-deepening negascout engine: alpha-beta
// search refined with null-window scouts, a transposition table, and a
// history-heuristic move orderer.
package ab

import "github.com/stelmaszczyk/gtsago/game"

// BoundKind classifies a cached value as exact or as a one-sided bound
// on the true minimax value.
type BoundKind int

const (
	// Exact means entry.Value is the true minimax value.
	Exact BoundKind = iota
	// Lower means the true value is >= entry.Value (a beta cutoff
	// occurred: the search never proved an exact value above it).
	Lower
	// Upper means the true value is <= entry.Value (every move failed
	// low against alpha).
	Upper
)

type entry struct {
	move  game.Move
	depth int
	value int
	bound BoundKind
}

// Table is the transposition table: a cache from position hash to the
// best-known search result at that position. It belongs to exactly one
// Engine and survives across iterative-deepening iterations within a
// single GetMove call; Reset clears it.
type Table struct {
	entries map[uint64]entry
}

// NewTable returns an empty transposition table.
func NewTable() *Table {
	return &Table{entries: make(map[uint64]entry, 1<<20)}
}

func (t *Table) get(hash uint64) (entry, bool) {
	e, ok := t.entries[hash]
	return e, ok
}

func (t *Table) put(hash uint64, e entry) {
	t.entries[hash] = e
}

// Reset clears every entry.
func (t *Table) Reset() {
	t.entries = make(map[uint64]entry, 1<<20)
}

// Len reports the number of cached entries, for diagnostics.
func (t *Table) Len() int {
	return len(t.entries)
}
