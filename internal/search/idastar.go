package search

import (
	"sync/atomic"

	"github.com/ehrlich-b/cubeida/internal/cube"
)

// recurse performs one bounded depth-first probe: from state s at depth g
// with last move last, explore every allowed next move, pruning any
// branch whose f = g+1+h exceeds bound. path accumulates the moves taken
// so far (record-on-the-way-down); on success the accumulated path is
// copied out before the caller unwinds and starts truncating it for the
// next sibling (unwind-on-success).
//
// cancelled is polled once per call, so at every node visited (not once
// per generated move); there is no coarser depth-boundary polling.
func recurse(s cube.State, g, bound int, last cube.Move, pdbs *PDBSet, path []cube.Move, cancelled *atomic.Bool) ([]cube.Move, bool) {
	if cancelled != nil && cancelled.Load() {
		return nil, false
	}
	if s.IsSolved() {
		return append([]cube.Move(nil), path...), true
	}
	h := pdbs.Heuristic(s)
	if g+h > bound {
		return nil, false
	}
	for _, m := range cube.AllowedNext[last] {
		next := cube.Apply(s, m)
		path = append(path, m)
		if sol, found := recurse(next, g+1, bound, m, pdbs, path, cancelled); found {
			return sol, true
		}
		path = path[:len(path)-1]
	}
	return nil, false
}

// SearchBound runs a single-threaded bounded DFS from start looking for a
// solution of length at most bound. It is used directly for the shallow
// iterations of iterative deepening; deep iterations go through
// RootSplitSearch instead (see rootsplit.go).
func SearchBound(start cube.State, pdbs *PDBSet, bound int) ([]cube.Move, bool) {
	return recurse(start, 0, bound, cube.NoMove, pdbs, make([]cube.Move, 0, bound), nil)
}
