package search

import (
	"time"

	"github.com/pkg/errors"

	"github.com/ehrlich-b/cubeida/internal/cube"
)

// singleThreadSlack is how many bounds past the initial heuristic are
// still searched single-threaded before switching to the root-split
// driver: shallow iterations are cheap enough that parallelising them
// would waste more in coordination overhead than it saves.
const singleThreadSlack = 4

// ErrSearchExhausted is returned when every bound up to Options.MaxDepth
// has been searched without a solution. With the default MaxDepth of 20
// this cannot happen on a reachable state, since every reachable position
// is within God's number of moves from solved.
var ErrSearchExhausted = errors.New("search exhausted: no solution found within the cube diameter")

// ErrTimeout marks a wall-clock deadline expiring mid-search.
var ErrTimeout = errors.New("search timed out")

// Options configures a Solve call.
type Options struct {
	// MaxDepth bounds the iterative deepening loop; 20 (God's number) if
	// zero.
	MaxDepth int
	// Threads caps the root-split worker pool; GOMAXPROCS if zero.
	Threads int
	// Timeout is checked before each new bound; once exceeded, Solve
	// returns ErrTimeout. An iteration already running is not interrupted.
	// No limit if zero.
	Timeout time.Duration
}

func (o Options) maxDepth() int {
	if o.MaxDepth > 0 {
		return o.MaxDepth
	}
	return 20
}

// Solve runs iterative-deepening A* from start, raising the bound one move
// at a time until a solution is found or MaxDepth is exceeded. Each bound
// runs single-threaded while it is within singleThreadSlack of the initial
// heuristic; later, more expensive bounds are handed to the root-split
// driver.
func Solve(start cube.State, pdbs *PDBSet, opts Options) ([]cube.Move, error) {
	if start.IsSolved() {
		return nil, nil
	}

	var deadline time.Time
	if opts.Timeout > 0 {
		deadline = time.Now().Add(opts.Timeout)
	}

	h0 := pdbs.Heuristic(start)
	maxDepth := opts.maxDepth()

	for bound := h0; bound <= maxDepth; bound++ {
		if !deadline.IsZero() && time.Now().After(deadline) {
			return nil, ErrTimeout
		}

		if bound <= h0+singleThreadSlack {
			if sol, found := SearchBound(start, pdbs, bound); found {
				return sol, nil
			}
			continue
		}

		if sol, found := RootSplitSearch(start, pdbs, bound, opts.Threads); found {
			return sol, nil
		}
	}

	return nil, ErrSearchExhausted
}
