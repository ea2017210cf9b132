package search

import (
	"testing"

	"github.com/ehrlich-b/cubeida/internal/cube"
	"github.com/ehrlich-b/cubeida/internal/pdb"
)

// zeroPDBSet returns an (uninformative but admissible) heuristic backed by
// all-zero tables, full size so every real key is in bounds. It turns
// IDA* into plain iterative-deepening DFS, which is still correct and fast
// enough for the shallow scrambles these tests use.
func zeroPDBSet(t *testing.T) *PDBSet {
	t.Helper()
	return &PDBSet{
		Corner:  pdb.NewStore(make([]byte, pdb.NCorner)),
		AllEdge: pdb.NewStore(make([]byte, pdb.NAllEdge)),
		Edge0:   pdb.NewStore(make([]byte, pdb.NEdgeSplit)),
		Edge1:   pdb.NewStore(make([]byte, pdb.NEdgeSplit)),
	}
}

func TestHeuristicOfSolvedIsZero(t *testing.T) {
	pdbs := zeroPDBSet(t)
	if h := pdbs.Heuristic(cube.Solved); h != 0 {
		t.Fatalf("Heuristic(Solved) = %d, want 0", h)
	}
}

func TestSolveSolvedCubeReturnsEmptySequence(t *testing.T) {
	if testing.Short() {
		t.Skip("allocates full-size PDB tables; skipped in -short mode")
	}
	pdbs := zeroPDBSet(t)
	sol, err := Solve(cube.Solved, pdbs, Options{})
	if err != nil {
		t.Fatalf("Solve(Solved): %v", err)
	}
	if len(sol) != 0 {
		t.Fatalf("Solve(Solved) = %v, want empty", sol)
	}
}

func TestSolveSingleMoveScramble(t *testing.T) {
	if testing.Short() {
		t.Skip("allocates full-size PDB tables; skipped in -short mode")
	}
	pdbs := zeroPDBSet(t)
	scrambled := cube.Apply(cube.Solved, 3) // U'
	sol, err := Solve(scrambled, pdbs, Options{MaxDepth: 4})
	if err != nil {
		t.Fatalf("Solve: %v", err)
	}
	if len(sol) != 1 {
		t.Fatalf("Solve(U') = %v, want a single move", sol)
	}
	if got := cube.ApplyAll(scrambled, sol); !got.IsSolved() {
		t.Fatalf("applying solver output %v to scrambled state did not solve it", sol)
	}
}

func TestSolveThreeMoveScrambleRootSplit(t *testing.T) {
	if testing.Short() {
		t.Skip("allocates full-size PDB tables; skipped in -short mode")
	}
	pdbs := zeroPDBSet(t)
	moves, err := cube.ParseMoves("U R F")
	if err != nil {
		t.Fatalf("ParseMoves: %v", err)
	}
	scrambled := cube.ApplyAll(cube.Solved, moves)
	// Call the root-split driver directly: with the zero heuristic h0 is 0,
	// so Solve would search bound 3 single-threaded (within
	// singleThreadSlack) and never reach RootSplitSearch.
	sol, found := RootSplitSearch(scrambled, pdbs, 3, 2)
	if !found {
		t.Fatal("RootSplitSearch at bound 3 found no solution")
	}
	if got := cube.ApplyAll(scrambled, sol); !got.IsSolved() {
		t.Fatalf("applying solver output %v to scrambled state did not solve it", sol)
	}
}

func TestSolveExhaustionIsReportedAsError(t *testing.T) {
	if testing.Short() {
		t.Skip("allocates full-size PDB tables; skipped in -short mode")
	}
	pdbs := zeroPDBSet(t)
	moves, err := cube.ParseMoves("U R")
	if err != nil {
		t.Fatalf("ParseMoves: %v", err)
	}
	scrambled := cube.ApplyAll(cube.Solved, moves) // true distance 2
	_, err = Solve(scrambled, pdbs, Options{MaxDepth: 1})
	if err == nil {
		t.Fatal("Solve with an unreachable MaxDepth expected an error, got nil")
	}
	if err != ErrSearchExhausted {
		t.Fatalf("Solve error = %v, want ErrSearchExhausted", err)
	}
}
