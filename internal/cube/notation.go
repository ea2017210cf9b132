package cube

import (
	"fmt"
	"strings"
)

// moveNames is the external standard notation for each internal move
// index. Reproduced verbatim from Korf's char_move_dict: the sign of
// each face's cw/ccw pair follows the underlying axis convention, which
// does not always read "cw before ccw" face-by-face (U's pair is flipped
// relative to D's). That asymmetry is a property of the roll directions,
// not a bug, so it is kept exactly as given rather than re-derived from
// first principles.
var moveNames = [NumMoves]string{
	"D", "D'", "D2",
	"U'", "U", "U2",
	"R", "R'", "R2",
	"L'", "L", "L2",
	"F", "F'", "F2",
	"B'", "B", "B2",
}

var moveByName map[string]Move

func init() {
	moveByName = make(map[string]Move, NumMoves)
	for m, name := range moveNames {
		moveByName[name] = Move(m)
	}
}

// String returns the move in standard notation: face letter, optional '
// for counter-clockwise, optional 2 for a half turn.
func (m Move) String() string {
	if int(m) < 0 || int(m) >= NumMoves {
		return "?"
	}
	return moveNames[m]
}

// ParseMove parses a single move in standard notation (U, U', U2, ...).
func ParseMove(notation string) (Move, error) {
	notation = strings.TrimSpace(notation)
	m, ok := moveByName[notation]
	if !ok {
		return 0, fmt.Errorf("unknown move notation: %q", notation)
	}
	return m, nil
}

// ParseMoves parses a whitespace-separated sequence of moves.
func ParseMoves(sequence string) ([]Move, error) {
	sequence = strings.TrimSpace(sequence)
	if sequence == "" {
		return nil, nil
	}
	fields := strings.Fields(sequence)
	moves := make([]Move, 0, len(fields))
	for _, f := range fields {
		m, err := ParseMove(f)
		if err != nil {
			return nil, fmt.Errorf("parsing move %q: %w", f, err)
		}
		moves = append(moves, m)
	}
	return moves, nil
}

// FormatMoves renders a move sequence in standard notation, space-separated.
func FormatMoves(moves []Move) string {
	parts := make([]string, len(moves))
	for i, m := range moves {
		parts[i] = m.String()
	}
	return strings.Join(parts, " ")
}

// inverseName maps a move's notation to the notation of its inverse:
// strip or add the trailing ', half turns are self-inverse.
func inverseName(name string) string {
	if strings.HasSuffix(name, "2") {
		return name
	}
	if strings.HasSuffix(name, "'") {
		return strings.TrimSuffix(name, "'")
	}
	return name + "'"
}

// Inverse returns the move that undoes m: Apply(Apply(s, m), m.Inverse())
// == s for every reachable s.
func (m Move) Inverse() Move {
	return moveByName[inverseName(moveNames[m])]
}

// AllowedNext restricts the next move given the last one applied, pruning
// redundant sequences per spec §4.6: a face is never turned twice in a row
// (any second twist of the same face folds into the first), and opposing
// face pairs (D/U, R/L, F/B) are only explored in one canonical order since
// they commute. NoMove (18) is the sentinel permitting every move, used to
// seed the search root. Adapted from Korf's ignore_moves table.
var AllowedNext = map[Move][]Move{
	0:  {3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13, 14, 15, 16, 17},
	1:  {3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13, 14, 15, 16, 17},
	2:  {3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13, 14, 15, 16, 17},
	3:  {6, 7, 8, 9, 10, 11, 12, 13, 14, 15, 16, 17},
	4:  {6, 7, 8, 9, 10, 11, 12, 13, 14, 15, 16, 17},
	5:  {6, 7, 8, 9, 10, 11, 12, 13, 14, 15, 16, 17},
	6:  {0, 1, 2, 3, 4, 5, 9, 10, 11, 12, 13, 14, 15, 16, 17},
	7:  {0, 1, 2, 3, 4, 5, 9, 10, 11, 12, 13, 14, 15, 16, 17},
	8:  {0, 1, 2, 3, 4, 5, 9, 10, 11, 12, 13, 14, 15, 16, 17},
	9:  {0, 1, 2, 3, 4, 5, 12, 13, 14, 15, 16, 17},
	10: {0, 1, 2, 3, 4, 5, 12, 13, 14, 15, 16, 17},
	11: {0, 1, 2, 3, 4, 5, 12, 13, 14, 15, 16, 17},
	12: {0, 1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 15, 16, 17},
	13: {0, 1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 15, 16, 17},
	14: {0, 1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 15, 16, 17},
	15: {0, 1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11},
	16: {0, 1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11},
	17: {0, 1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11},
	NoMove: {0, 1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13, 14, 15, 16, 17},
}
