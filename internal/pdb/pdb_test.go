package pdb

import (
	"testing"

	"github.com/ehrlich-b/cubeida/internal/cube"
)

func TestKeysAreWithinBounds(t *testing.T) {
	s := cube.Apply(cube.Solved, 6)
	s = cube.Apply(s, 12)
	if k := KeyCorner(s); k >= NCorner {
		t.Fatalf("KeyCorner = %d, out of range [0, %d)", k, NCorner)
	}
	if k := KeyAllEdges(s); k >= NAllEdge {
		t.Fatalf("KeyAllEdges = %d, out of range [0, %d)", k, NAllEdge)
	}
	if k := KeyEdgeSplit(s, 0); k >= NEdgeSplit {
		t.Fatalf("KeyEdgeSplit(0) = %d, out of range [0, %d)", k, NEdgeSplit)
	}
	if k := KeyEdgeSplit(s, 1); k >= NEdgeSplit {
		t.Fatalf("KeyEdgeSplit(1) = %d, out of range [0, %d)", k, NEdgeSplit)
	}
}

func TestKeyCornerChangesUnderEveryMove(t *testing.T) {
	solvedKey := KeyCorner(cube.Solved)
	for m := cube.Move(0); m < cube.NumMoves; m++ {
		if k := KeyCorner(cube.Apply(cube.Solved, m)); k == solvedKey {
			t.Fatalf("KeyCorner(apply(Solved, %s)) = %d, want different from the solved key", m, k)
		}
	}
}

func TestKeyAllEdgesIgnoresOrientation(t *testing.T) {
	// Flipping two edges in place changes only their orientation bits, so
	// the permutation-only key must still equal the solved key.
	s := cube.Solved
	for _, slot := range cube.EdgeFaces[:2] {
		s[slot] = cube.MakeFaceID(cube.CubieID(s[slot]), 1)
	}
	if k, want := KeyAllEdges(s), KeyAllEdges(cube.Solved); k != want {
		t.Fatalf("KeyAllEdges with two edges flipped = %d, want %d (solved)", k, want)
	}
}

func TestBuildCornerPDBIntegrity(t *testing.T) {
	if testing.Short() {
		t.Skip("full corner PDB build is slow; skipped in -short mode")
	}
	table := BuildBFS(KeyCorner, NCorner, "corner-test")
	if table[KeyCorner(cube.Solved)] != 0 {
		t.Fatalf("D[key(solved)] = %d, want 0", table[KeyCorner(cube.Solved)])
	}
	for m := cube.Move(0); m < cube.NumMoves; m++ {
		k := KeyCorner(cube.Apply(cube.Solved, m))
		if table[k] != 1 {
			t.Fatalf("D[key(apply(solved, %s))] = %d, want 1", m, table[k])
		}
	}
}
