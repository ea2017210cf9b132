package pdb

import (
	"github.com/ehrlich-b/cubeida/internal/cube"
	"github.com/ehrlich-b/cubeida/internal/lehmer"
)

// cornerOrientWeight[i] is 3^(6-i), the base-3 place value of the i-th of
// the 7 independently-tracked corner orientations (the 8th corner's twist
// is recoverable from the mod-3 parity invariant, so it carries no extra
// information and is dropped from the key).
var cornerOrientWeight = [cube.NumCorners - 1]uint64{729, 243, 81, 27, 9, 3, 1}

// edgeSplitOrientWeight[i] is 2^(6-i), the base-2 place value of the i-th
// of the 7 edges an edge-split database tracks.
var edgeSplitOrientWeight = [7]uint64{64, 32, 16, 8, 4, 2, 1}

// edgeSplitSlots gives, for each half (0 or 1), the seven edge-cubie
// positions (indices into cube.EdgeFaces / 0..11) that database tracks.
// Each half takes the six edges at its own parity (even positions for
// half 0, odd for half 1) plus one edge borrowed from the other parity
// class, so the two databases share two edges (positions 0 and 11) instead
// of partitioning the twelve edges 6-and-6.
var edgeSplitSlots = [2][7]int{
	{0, 2, 4, 6, 8, 10, 11},
	{1, 3, 5, 7, 9, 11, 0},
}

// KeyCorner computes the corner-PDB index: the Lehmer rank of the 8-corner
// permutation times 3^7, plus the base-3 combination of the first seven
// corner orientations.
func KeyCorner(s cube.State) uint64 {
	var cubieIDs [cube.NumCorners]int
	var orientSum uint64
	for i, slot := range cube.CornerFaces {
		f := s[slot]
		cubieIDs[i] = cube.CubieID(f)
		if i < len(cornerOrientWeight) {
			orientSum += uint64(cube.Orientation(f)) * cornerOrientWeight[i]
		}
	}
	rank := lehmer.Rank(cubieIDs[:], cube.NumCorners)
	return rank*2187 + orientSum
}

// KeyAllEdges computes the all-edge-PDB index: the Lehmer rank of the
// 12-edge permutation. Orientation is not tracked by this database.
func KeyAllEdges(s cube.State) uint64 {
	var cubieIDs [cube.NumEdges]int
	for i, slot := range cube.EdgeFaces {
		cubieIDs[i] = cube.CubieID(s[slot]) - cube.NumCorners
	}
	return lehmer.Rank(cubieIDs[:], cube.NumEdges)
}

// KeyEdgeSplit computes one of the two edge-subset-PDB indices: the
// 12-pick-7 Lehmer rank of the seven tracked edges' cubie ids, times 2^7,
// plus the base-2 combination of their orientations. half selects which of
// the two overlapping edge groups (see edgeSplitSlots) to key on.
func KeyEdgeSplit(s cube.State, half int) uint64 {
	slots := edgeSplitSlots[half]
	var cubieIDs [7]int
	var orientSum uint64
	for i, edgeIdx := range slots {
		f := s[cube.EdgeFaces[edgeIdx]]
		cubieIDs[i] = cube.CubieID(f) - cube.NumCorners
		orientSum += uint64(cube.Orientation(f)) * edgeSplitOrientWeight[i]
	}
	rank := lehmer.Rank(cubieIDs[:], cube.NumEdges)
	return rank*128 + orientSum
}
