package cube

// NumMoves is the size of the quarter-and-half-turn metric: six faces,
// three twists each (90cw, 90ccw, 180).
const NumMoves = 18

// NoMove is the sentinel "last move" that permits all 18 moves as the next
// move — used to seed the root of a search.
const NoMove Move = NumMoves

// Move indexes the transition table. Moves are grouped by three per face,
// in face order D, U, R, L, F, B (spec §4.1); within a face the quarter/half
// turn ordering is fixed by the transition table below, not re-derived.
type Move int

// transitionTable[m][i] is the source slot that feeds destination slot i
// after move m: applying move m sets F'[i] = F[T[m][i]]. Derived once from
// Korf's transfer_matrix table and reproduced verbatim;
// it is a compile-time constant because the cube's geometry never changes.
var transitionTable = [NumMoves][NumFaces]byte{
	{12, 14, 13, 8, 9, 2, 0, 1, 15, 16, 3, 4, 18, 17, 19, 10, 11, 5, 6, 7, 20, 21, 22, 23, 24, 25, 26, 27, 28, 29, 30, 31, 32, 33, 34, 35, 36, 37, 38, 39, 40, 41, 42, 43, 44, 45, 46, 47},
	{6, 7, 5, 10, 11, 17, 18, 19, 3, 4, 15, 16, 0, 2, 1, 8, 9, 13, 12, 14, 20, 21, 22, 23, 24, 25, 26, 27, 28, 29, 30, 31, 32, 33, 34, 35, 36, 37, 38, 39, 40, 41, 42, 43, 44, 45, 46, 47},
	{18, 19, 17, 15, 16, 13, 12, 14, 10, 11, 8, 9, 6, 5, 7, 3, 4, 2, 0, 1, 20, 21, 22, 23, 24, 25, 26, 27, 28, 29, 30, 31, 32, 33, 34, 35, 36, 37, 38, 39, 40, 41, 42, 43, 44, 45, 46, 47},
	{0, 1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13, 14, 15, 16, 17, 18, 19, 20, 21, 22, 23, 24, 25, 26, 27, 41, 40, 42, 36, 37, 29, 28, 30, 43, 44, 31, 32, 46, 45, 47, 38, 39, 34, 33, 35},
	{0, 1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13, 14, 15, 16, 17, 18, 19, 20, 21, 22, 23, 24, 25, 26, 27, 34, 33, 35, 38, 39, 46, 45, 47, 31, 32, 43, 44, 29, 28, 30, 36, 37, 41, 40, 42},
	{0, 1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13, 14, 15, 16, 17, 18, 19, 20, 21, 22, 23, 24, 25, 26, 27, 45, 46, 47, 43, 44, 40, 41, 42, 38, 39, 36, 37, 33, 34, 35, 31, 32, 28, 29, 30},
	{0, 1, 2, 3, 4, 19, 17, 18, 8, 9, 26, 27, 12, 13, 14, 15, 16, 45, 47, 46, 20, 21, 10, 11, 24, 25, 38, 39, 28, 29, 30, 31, 32, 6, 7, 5, 36, 37, 22, 23, 40, 41, 42, 43, 44, 33, 35, 34},
	{0, 1, 2, 3, 4, 35, 33, 34, 8, 9, 22, 23, 12, 13, 14, 15, 16, 6, 7, 5, 20, 21, 38, 39, 24, 25, 10, 11, 28, 29, 30, 31, 32, 45, 47, 46, 36, 37, 26, 27, 40, 41, 42, 43, 44, 17, 19, 18},
	{0, 1, 2, 3, 4, 46, 45, 47, 8, 9, 38, 39, 12, 13, 14, 15, 16, 33, 34, 35, 20, 21, 26, 27, 24, 25, 22, 23, 28, 29, 30, 31, 32, 17, 18, 19, 36, 37, 10, 11, 40, 41, 42, 43, 44, 6, 5, 7},
	{14, 13, 12, 3, 4, 5, 6, 7, 24, 25, 10, 11, 40, 42, 41, 15, 16, 17, 18, 19, 8, 9, 22, 23, 36, 37, 26, 27, 2, 1, 0, 31, 32, 33, 34, 35, 20, 21, 38, 39, 28, 30, 29, 43, 44, 45, 46, 47},
	{30, 29, 28, 3, 4, 5, 6, 7, 20, 21, 10, 11, 2, 1, 0, 15, 16, 17, 18, 19, 36, 37, 22, 23, 8, 9, 26, 27, 40, 42, 41, 31, 32, 33, 34, 35, 24, 25, 38, 39, 12, 14, 13, 43, 44, 45, 46, 47},
	{41, 42, 40, 3, 4, 5, 6, 7, 36, 37, 10, 11, 28, 29, 30, 15, 16, 17, 18, 19, 24, 25, 22, 23, 20, 21, 26, 27, 12, 13, 14, 31, 32, 33, 34, 35, 8, 9, 38, 39, 2, 0, 1, 43, 44, 45, 46, 47},
	{5, 6, 7, 23, 22, 34, 35, 33, 8, 9, 10, 11, 12, 13, 14, 15, 16, 17, 18, 19, 4, 3, 32, 31, 24, 25, 26, 27, 1, 0, 2, 21, 20, 30, 29, 28, 36, 37, 38, 39, 40, 41, 42, 43, 44, 45, 46, 47},
	{29, 28, 30, 21, 20, 0, 1, 2, 8, 9, 10, 11, 12, 13, 14, 15, 16, 17, 18, 19, 32, 31, 4, 3, 24, 25, 26, 27, 35, 34, 33, 23, 22, 7, 5, 6, 36, 37, 38, 39, 40, 41, 42, 43, 44, 45, 46, 47},
	{34, 35, 33, 31, 32, 29, 28, 30, 8, 9, 10, 11, 12, 13, 14, 15, 16, 17, 18, 19, 22, 23, 20, 21, 24, 25, 26, 27, 6, 5, 7, 3, 4, 2, 0, 1, 36, 37, 38, 39, 40, 41, 42, 43, 44, 45, 46, 47},
	{0, 1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 19, 18, 17, 27, 26, 47, 46, 45, 20, 21, 22, 23, 16, 15, 44, 43, 28, 29, 30, 31, 32, 33, 34, 35, 36, 37, 38, 39, 14, 13, 12, 25, 24, 42, 41, 40},
	{0, 1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 42, 41, 40, 25, 24, 14, 13, 12, 20, 21, 22, 23, 44, 43, 16, 15, 28, 29, 30, 31, 32, 33, 34, 35, 36, 37, 38, 39, 47, 46, 45, 27, 26, 19, 18, 17},
	{0, 1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 45, 46, 47, 43, 44, 40, 41, 42, 20, 21, 22, 23, 26, 27, 24, 25, 28, 29, 30, 31, 32, 33, 34, 35, 36, 37, 38, 39, 17, 18, 19, 15, 16, 12, 13, 14},
}

// Apply returns the state obtained by turning move m. It allocates nothing
// beyond the returned array: the hot loop in internal/search calls this
// millions of times per second and relies on it staying a flat copy-and-
// permute with no heap traffic.
func Apply(s State, m Move) State {
	var out State
	t := &transitionTable[m]
	for i := 0; i < NumFaces; i++ {
		out[i] = s[t[i]]
	}
	return out
}

// ApplyAll applies a sequence of moves in order, returning the final state.
func ApplyAll(s State, moves []Move) State {
	for _, m := range moves {
		s = Apply(s, m)
	}
	return s
}
