package search

import (
	"runtime"
	"sync"
	"sync/atomic"

	"github.com/ehrlich-b/cubeida/internal/cube"
)

// rootPrefix is one two-move expansion of the search root: the moves
// taken to reach it, the state after taking them, and the last move (so
// the worker that picks it up knows which moves redundant-move pruning
// still allows).
type rootPrefix struct {
	moves []cube.Move
	state cube.State
	last  cube.Move
}

// expandRoot enumerates every two-move prefix from start that survives
// redundant-move pruning and the bound's f-cutoff at depth 2. Up to
// 9*15 + 9*12 = 243 prefixes after pruning removes same-face and
// canonical-order duplicates.
func expandRoot(start cube.State, pdbs *PDBSet, bound int) []rootPrefix {
	var prefixes []rootPrefix
	for _, m1 := range cube.AllowedNext[cube.NoMove] {
		s1 := cube.Apply(start, m1)
		if 1+pdbs.Heuristic(s1) > bound {
			continue
		}
		for _, m2 := range cube.AllowedNext[m1] {
			s2 := cube.Apply(s1, m2)
			if 2+pdbs.Heuristic(s2) > bound {
				continue
			}
			prefixes = append(prefixes, rootPrefix{
				moves: []cube.Move{m1, m2},
				state: s2,
				last:  m2,
			})
		}
	}
	return prefixes
}

// RootSplitSearch parallelises one IDA* iteration: it expands the root to
// depth 2, farms the surviving prefixes out to a worker pool, and returns
// the first complete solution any worker reports. All other workers are
// signalled to stop via a shared atomic flag; ordering among equally
// optimal solutions is arbitrary. threads <= 0 defaults to GOMAXPROCS.
func RootSplitSearch(start cube.State, pdbs *PDBSet, bound, threads int) ([]cube.Move, bool) {
	if start.IsSolved() {
		return nil, true
	}
	if threads <= 0 {
		threads = runtime.GOMAXPROCS(0)
	}

	prefixes := expandRoot(start, pdbs, bound)
	if len(prefixes) == 0 {
		return nil, false
	}

	jobs := make(chan rootPrefix)
	result := make(chan []cube.Move, 1)
	var cancelled atomic.Bool
	var wg sync.WaitGroup

	for i := 0; i < threads; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for job := range jobs {
				if cancelled.Load() {
					continue
				}
				path := make([]cube.Move, len(job.moves), bound)
				copy(path, job.moves)
				sol, found := recurse(job.state, len(job.moves), bound, job.last, pdbs, path, &cancelled)
				if found && cancelled.CompareAndSwap(false, true) {
					result <- sol
				}
			}
		}()
	}

	go func() {
		for _, p := range prefixes {
			if cancelled.Load() {
				break
			}
			jobs <- p
		}
		close(jobs)
	}()

	go func() {
		wg.Wait()
		close(result)
	}()

	sol, found := <-result
	return sol, found
}
