package cli

import (
	"strconv"
	"strings"
	"testing"

	"github.com/ehrlich-b/cubeida/internal/cube"
)

func TestParseFaceIDsRoundTripsSolved(t *testing.T) {
	parts := make([]string, cube.NumFaces)
	for i, f := range cube.Solved {
		parts[i] = strconv.Itoa(int(f))
	}
	state, err := parseFaceIDs(strings.Join(parts, ","))
	if err != nil {
		t.Fatalf("parseFaceIDs: %v", err)
	}
	if !state.IsSolved() {
		t.Fatalf("parseFaceIDs(solved face-ids) = %v, want solved", state)
	}
}

func TestParseFaceIDsRejectsWrongCount(t *testing.T) {
	if _, err := parseFaceIDs("1,2,3"); err == nil {
		t.Fatal("parseFaceIDs with too few values expected an error, got nil")
	}
}

func TestParseFaceIDsRejectsUnreachableState(t *testing.T) {
	parts := make([]string, cube.NumFaces)
	for i, f := range cube.Solved {
		parts[i] = strconv.Itoa(int(f))
	}
	// Corrupt one corner's orientation so the parity invariant fails.
	parts[1] = strconv.Itoa(int(cube.MakeFaceID(cube.CubieID(cube.Solved[1]), 1)))
	_, err := parseFaceIDs(strings.Join(parts, ","))
	if err == nil {
		t.Fatal("parseFaceIDs with a parity violation expected an error, got nil")
	}
}

func TestResolveStartRequiresOneSource(t *testing.T) {
	if _, err := resolveStart("", ""); err == nil {
		t.Fatal("resolveStart with neither flag set expected an error, got nil")
	}
}
