// Package scramble parses an external scramble description -- a color on
// each of the 48 named sticker slots -- into the internal cube.State face-
// id array that the rest of this module operates on.
package scramble

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/pkg/errors"

	"github.com/ehrlich-b/cubeida/internal/cube"
)

// ErrMalformedScramble marks input the parser cannot resolve to a cubie:
// a missing sticker name, an unknown color, a color triple/pair that
// doesn't match any physical cubie, or a cubie found at two positions.
var ErrMalformedScramble = errors.New("malformed scramble")

// ErrUnreachableState marks input that resolves to a full 48-slot state
// violating one of the two orientation parity invariants.
var ErrUnreachableState = errors.New("unreachable cube state")

// nameToSolvedFaceID gives the solved face-id value -- cubie_id<<2 |
// orientation -- carried by each named sticker slot. Reproduced verbatim
// from the facename_faceid_dict table used to label scramble stickers.
var nameToSolvedFaceID = map[string]int{
	"01my": 30, "01mz": 28, "01mx": 29, "02my": 73, "02mz": 72, "03my": 25, "03px": 26, "03mz": 24,
	"04mx": 77, "04mz": 76, "06px": 69, "06mz": 68,
	"07mx": 18, "07py": 17, "07mz": 16, "08py": 65, "08mz": 64, "09px": 21, "09py": 22, "09mz": 20,
	"10mx": 60, "10my": 61, "12px": 56, "12my": 57,
	"16mx": 48, "16py": 49, "18px": 52, "18py": 53,
	"19mx": 14, "19my": 13, "19pz": 12, "20my": 41, "20pz": 40, "21px": 9, "21my": 10, "21pz": 8,
	"22mx": 45, "22pz": 44, "24px": 37, "24pz": 36,
	"25mx": 1, "25py": 2, "25pz": 0, "26py": 33, "26pz": 32, "27px": 6, "27py": 5, "27pz": 4,
}

// nameToSolvedColor gives the color (1..6) each named sticker slot carries
// when the cube is solved. Reproduced verbatim from the
// facename_facecolors_dict table used to label scramble stickers.
var nameToSolvedColor = map[string]int{
	"01my": 5, "01mz": 6, "01mx": 4, "02my": 5, "02mz": 6, "03my": 5, "03px": 2, "03mz": 6,
	"04mx": 4, "04mz": 6, "06px": 2, "06mz": 6,
	"07mx": 4, "07py": 3, "07mz": 6, "08py": 3, "08mz": 6, "09px": 2, "09py": 3, "09mz": 6,
	"10mx": 4, "10my": 5, "12px": 2, "12my": 5,
	"16mx": 4, "16py": 3, "18px": 2, "18py": 3,
	"19mx": 4, "19my": 5, "19pz": 1, "20my": 5, "20pz": 1, "21px": 2, "21my": 5, "21pz": 1,
	"22mx": 4, "22pz": 1, "24px": 2, "24pz": 1,
	"25mx": 4, "25py": 3, "25pz": 1, "26py": 3, "26pz": 1, "27px": 2, "27py": 3, "27pz": 1,
}

// cornerGroupNames groups the 48 sticker names into the 8 corner position
// groups, each in canonical (orientation 0, 1, 2) sticker order. Reproduced
// verbatim from the corner_list_names table used to label scramble stickers.
var cornerGroupNames = [cube.NumCorners][3]string{
	{"01my", "01mz", "01mx"}, {"03my", "03px", "03mz"},
	{"07mx", "07py", "07mz"}, {"09px", "09py", "09mz"},
	{"19mx", "19my", "19pz"}, {"21px", "21my", "21pz"},
	{"25mx", "25py", "25pz"}, {"27px", "27py", "27pz"},
}

// edgeGroupNames groups the 48 sticker names into the 12 edge position
// groups, each in canonical (orientation 0, 1) sticker order. Reproduced
// verbatim from the edge_list_names table used to label scramble stickers.
var edgeGroupNames = [cube.NumEdges][2]string{
	{"02my", "02mz"}, {"04mx", "04mz"}, {"06px", "06mz"},
	{"08py", "08mz"}, {"10mx", "10my"}, {"12px", "12my"},
	{"16mx", "16py"}, {"18px", "18py"}, {"20my", "20pz"},
	{"22mx", "22pz"}, {"24px", "24pz"}, {"26py", "26pz"},
}

var (
	cornerGroupSlots  [cube.NumCorners][3]int
	edgeGroupSlots    [cube.NumEdges][2]int
	cornerCanonColor  [cube.NumCorners][]int
	edgeCanonColor    [cube.NumEdges][]int
	cornerCanonFaceID [cube.NumCorners][]int
	edgeCanonFaceID   [cube.NumEdges][]int
)

func init() {
	slotForName := make(map[string]int, len(nameToSolvedFaceID))
	for name, faceID := range nameToSolvedFaceID {
		found := false
		for slot, v := range cube.Solved {
			if int(v) == faceID {
				slotForName[name] = slot
				found = true
				break
			}
		}
		if !found {
			panic(fmt.Sprintf("scramble: sticker %q has no matching solved slot", name))
		}
	}

	for c, names := range cornerGroupNames {
		cornerCanonColor[c] = make([]int, 3)
		cornerCanonFaceID[c] = make([]int, 3)
		for i, name := range names {
			slot := slotForName[name]
			cornerGroupSlots[c][i] = slot
			cornerCanonColor[c][i] = nameToSolvedColor[name]
			cornerCanonFaceID[c][i] = nameToSolvedFaceID[name]
		}
	}
	for e, names := range edgeGroupNames {
		edgeCanonColor[e] = make([]int, 2)
		edgeCanonFaceID[e] = make([]int, 2)
		for i, name := range names {
			slot := slotForName[name]
			edgeGroupSlots[e][i] = slot
			edgeCanonColor[e][i] = nameToSolvedColor[name]
			edgeCanonFaceID[e][i] = nameToSolvedFaceID[name]
		}
	}
}

// Parse turns a sticker-name -> color map (every one of the 48 names must
// be present, colors 1..6) into a cube.State. For each physical position
// group it identifies which cubie's home color set the observed colors
// form (a set match against every group's solved colors, since a group's
// solved colors uniquely name a cubie), then for each observed sticker
// copies that cubie's solved face-id byte for the matching canonical slot
// verbatim -- the cubie-id/orientation split in that byte is a property of
// the home position's own labeling, not something this function
// recomputes, so a solved input reproduces cube.Solved exactly.
func Parse(colors map[string]int) (cube.State, error) {
	var state cube.State
	var cornerSeen [cube.NumCorners]bool
	var edgeSeen [cube.NumEdges]bool

	for g := 0; g < cube.NumCorners; g++ {
		observed, err := readGroup(colors, cornerGroupNames[g][:])
		if err != nil {
			return state, err
		}
		home, slots, err := matchCubie(observed, cornerCanonColor[:])
		if err != nil {
			return state, errors.Wrapf(ErrMalformedScramble, "corner position %d: %v", g, err)
		}
		if cornerSeen[home] {
			return state, errors.Wrapf(ErrMalformedScramble, "corner position %d: duplicate cubie %v", g, observed)
		}
		cornerSeen[home] = true
		for i, slot := range cornerGroupSlots[g] {
			state[slot] = byte(cornerCanonFaceID[home][slots[i]])
		}
	}

	for g := 0; g < cube.NumEdges; g++ {
		observed, err := readGroup(colors, edgeGroupNames[g][:])
		if err != nil {
			return state, err
		}
		home, slots, err := matchCubie(observed, edgeCanonColor[:])
		if err != nil {
			return state, errors.Wrapf(ErrMalformedScramble, "edge position %d: %v", g, err)
		}
		if edgeSeen[home] {
			return state, errors.Wrapf(ErrMalformedScramble, "edge position %d: duplicate cubie %v", g, observed)
		}
		edgeSeen[home] = true
		for i, slot := range edgeGroupSlots[g] {
			state[slot] = byte(edgeCanonFaceID[home][slots[i]])
		}
	}

	if !state.Reachable() {
		return state, errors.Wrap(ErrUnreachableState, "orientation parity violated")
	}
	return state, nil
}

// readGroup looks up the colors named by names, in order, failing with
// ErrMalformedScramble if any sticker is absent from colors.
func readGroup(colors map[string]int, names []string) ([]int, error) {
	observed := make([]int, len(names))
	for i, name := range names {
		c, ok := colors[name]
		if !ok {
			return nil, errors.Wrapf(ErrMalformedScramble, "missing sticker %q", name)
		}
		observed[i] = c
	}
	return observed, nil
}

// matchCubie finds the first canon[c] (a corner's 3 colors or an edge's
// 2 colors in canonical sticker order) holding the same colors as observed,
// in any order -- mirrored orderings are accepted, not only rotations -- and
// returns that home group's index c and, per observed slot, the canonical
// sticker index whose color it carries. The caller looks up
// cornerCanonFaceID[c][slot] / edgeCanonFaceID[c][slot] to get the solved
// face-id byte for that sticker directly -- c is a canonical-color-table
// index, not a cubie id on its own.
func matchCubie(observed []int, canon [][]int) (int, []int, error) {
	k := len(observed)
	for c, colors := range canon {
		orient := make([]int, k)
		seen := make([]bool, k)
		ok := true
		for i, col := range observed {
			j := -1
			for idx := 0; idx < k; idx++ {
				if colors[idx] == col && !seen[idx] {
					j = idx
					break
				}
			}
			if j < 0 {
				ok = false
				break
			}
			seen[j] = true
			orient[i] = j
		}
		if ok {
			return c, orient, nil
		}
	}
	return 0, nil, fmt.Errorf("no cubie matches colors %v", observed)
}

// ParseFile reads a scramble in the simple line-oriented format this
// module's CLI accepts: one "<sticker-name> <color>" pair per line, blank
// lines and "#"-prefixed comments ignored.
func ParseFile(path string) (cube.State, error) {
	f, err := os.Open(path)
	if err != nil {
		return cube.State{}, errors.Wrapf(err, "opening scramble file %s", path)
	}
	defer f.Close()

	colors := make(map[string]int, cube.NumFaces)
	scanner := bufio.NewScanner(f)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		fields := strings.Fields(line)
		if len(fields) != 2 {
			return cube.State{}, errors.Wrapf(ErrMalformedScramble, "%s:%d: expected \"<name> <color>\", got %q", path, lineNo, line)
		}
		color, err := strconv.Atoi(fields[1])
		if err != nil {
			return cube.State{}, errors.Wrapf(ErrMalformedScramble, "%s:%d: invalid color %q", path, lineNo, fields[1])
		}
		colors[fields[0]] = color
	}
	if err := scanner.Err(); err != nil {
		return cube.State{}, errors.Wrapf(err, "reading scramble file %s", path)
	}
	return Parse(colors)
}

// SolvedColors returns the sticker-name -> color map for the solved cube,
// the canonical input one round-trips Parse against.
func SolvedColors() map[string]int {
	out := make(map[string]int, len(nameToSolvedColor))
	for name, color := range nameToSolvedColor {
		out[name] = color
	}
	return out
}
