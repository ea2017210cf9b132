// Package pdb builds and serves the four pattern databases that back the
// solver's admissible heuristic: a corner database over the full 8-cubie
// permutation plus orientation, an all-edge database over the 12-cubie
// permutation, and two overlapping 7-of-12 edge-subset databases that add
// orientation back in at a tractable table size.
package pdb

// Sizes of the four dense depth tables. These are exact counts, not
// estimates: NCorner = 8! * 3^7, NAllEdge = 12!, NEdgeSplit = (12!/5!) * 2^7.
const (
	NCorner    = 88179840
	NAllEdge   = 479001600
	NEdgeSplit = 510935040
)

// SentinelByte is the depth value a freshly allocated table carries for a
// cell meaning "not yet recorded". The builders write 0 to the solved-state
// cell before exploring, so that cell never carries it after a build; Load
// still resets that cell to 0 regardless.
const SentinelByte = 255

// MaxDepth is God's number: no reachable cube position is farther than this
// from solved, so every recorded depth fits comfortably in a byte.
const MaxDepth = 20

// AllEdgeMaxLevel is the truncation depth for the all-edge database build:
// 12! states is too large to BFS to exhaustion cheaply in a teaching
// implementation, so the build only explores to this depth and clamps
// everything else to AllEdgeMaxLevel+1 -- still an admissible lower bound,
// since any state not found within the bound truly needs more moves.
const AllEdgeMaxLevel = 9

// AllEdgeUnreached is the clamp value applied to all-edge cells the
// truncated build never visits.
const AllEdgeUnreached = AllEdgeMaxLevel + 1
