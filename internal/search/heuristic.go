// Package search implements the IDA* solver: a single-threaded bounded
// depth-first search driven by a four-way pattern-database heuristic, and
// a root-split driver that parallelises the final, dominant iteration
// across a worker pool.
package search

import (
	"github.com/ehrlich-b/cubeida/internal/cube"
	"github.com/ehrlich-b/cubeida/internal/pdb"
)

// PDBSet bundles the four loaded pattern databases the heuristic needs.
// Every field is read-only after construction, so a *PDBSet is safe to
// share across every search worker without locking.
type PDBSet struct {
	Corner  *pdb.Store
	AllEdge *pdb.Store
	Edge0   *pdb.Store
	Edge1   *pdb.Store
}

// Heuristic returns the maximum of the four pattern-database lookups for
// s. Each component is an admissible lower bound on the moves needed to
// solve its projected subproblem, and the full cube can never need fewer
// moves than any one of its subproblems, so the max over admissible
// heuristics remains admissible.
func (p *PDBSet) Heuristic(s cube.State) int {
	h := int(p.Corner.Get(pdb.KeyCorner(s)))
	if v := int(p.AllEdge.Get(pdb.KeyAllEdges(s))); v > h {
		h = v
	}
	if v := int(p.Edge0.Get(pdb.KeyEdgeSplit(s, 0))); v > h {
		h = v
	}
	if v := int(p.Edge1.Get(pdb.KeyEdgeSplit(s, 1))); v > h {
		h = v
	}
	return h
}
