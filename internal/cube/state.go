// Package cube implements the 3x3x3 cube state representation and move
// kernel: a fixed 48-slot face-id array, the 18-move transition table, and
// the bookkeeping (orientation parity, cubie decoding) every other package
// in this module builds on.
package cube

// NumFaces is the number of tracked sticker slots. Center stickers never
// move and carry no information, so they are omitted: 6 faces * 8 movable
// stickers per face.
const NumFaces = 48

// NumCorners and NumEdges are the cubie counts baked into the face layout:
// corner cubies are numbered 0..7, edge cubies 8..19.
const (
	NumCorners = 8
	NumEdges   = 12
)

// State is the cube's complete position: 48 face-ids, one per movable
// sticker. It is small and comparable, so it is passed and returned by
// value on the search hot path rather than pointer-chased.
type State [NumFaces]byte

// FaceID packs a cubie id and its orientation into a single byte:
// (cubieID << 2) | orientation. Corner orientation is 0..2 (twist), edge
// orientation is 0..1 (flip); both fit in the low 2 bits.
type FaceID = byte

func MakeFaceID(cubieID, orientation int) FaceID {
	return FaceID(cubieID<<2 | orientation)
}

// CubieID returns the cubie identified by a face-id: 0..7 for a corner,
// 8..19 for an edge.
func CubieID(f FaceID) int { return int(f >> 2) }

// Orientation returns the twist (corner, 0..2) or flip (edge, 0..1) carried
// by a face-id.
func Orientation(f FaceID) int { return int(f & 3) }

// Solved is the face-id array of the solved cube, in the fixed sticker
// layout used throughout this package. Reproduced verbatim from Korf's
// solved_faceids table so that the transition table below (derived from
// the same source) applies to it unchanged.
var Solved = State{
	30, 28, 29, 73, 72, 25, 26, 24, 77, 76, 69, 68, 18, 17, 16, 65,
	64, 21, 22, 20, 60, 61, 56, 57, 48, 49, 52, 53, 14, 13, 12, 41,
	40, 9, 10, 8, 45, 44, 37, 36, 1, 2, 0, 33, 32, 6, 5, 4,
}

// IsSolved reports whether s is the solved state.
func (s State) IsSolved() bool { return s == Solved }

// CornerFaces gives, for each of the 8 corner cubies, one sticker slot
// whose face-id yields that cubie's id and orientation. Reproduced
// verbatim from Korf's cube model.
var CornerFaces = [NumCorners]int{1, 7, 14, 19, 30, 35, 42, 47}

// EdgeFaces gives, for each of the 12 edge cubies, one sticker slot whose
// face-id yields that cubie's id and orientation. Reproduced verbatim from
// Korf's cube model.
var EdgeFaces = [NumEdges]int{4, 9, 11, 16, 20, 22, 24, 26, 32, 37, 39, 44}

// CornerOrientationSum returns the sum of the 8 corner orientations modulo
// 3. A reachable state always has sum 0 (spec invariant, §3/§8).
func (s State) CornerOrientationSum() int {
	sum := 0
	for _, i := range CornerFaces {
		sum += Orientation(s[i])
	}
	return sum % 3
}

// EdgeOrientationSum returns the sum of the 12 edge orientations modulo 2.
// A reachable state always has sum 0.
func (s State) EdgeOrientationSum() int {
	sum := 0
	for _, i := range EdgeFaces {
		sum += Orientation(s[i])
	}
	return sum % 2
}

// Reachable reports whether s satisfies both orientation-parity invariants
// from spec §3. It does not check the permutation parity of corners vs.
// edges (a third, coupled invariant); callers that build states from
// arbitrary face-id assignments should additionally verify corner and edge
// permutation parities agree.
func (s State) Reachable() bool {
	return s.CornerOrientationSum() == 0 && s.EdgeOrientationSum() == 0
}
