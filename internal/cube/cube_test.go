package cube

import "testing"

func TestSolvedIsReachable(t *testing.T) {
	if !Solved.IsSolved() {
		t.Fatal("Solved.IsSolved() = false")
	}
	if !Solved.Reachable() {
		t.Fatal("Solved.Reachable() = false")
	}
}

func TestApplyEachMoveFourTimesRestoresSolved(t *testing.T) {
	for face := 0; face < NumMoves; face += 3 {
		s := Solved
		quarter := Move(face)
		for i := 0; i < 4; i++ {
			s = Apply(s, quarter)
		}
		if s != Solved {
			t.Fatalf("applying move %s four times did not restore solved state", quarter)
		}
	}
}

func TestApplyPreservesOrientationInvariants(t *testing.T) {
	s := Solved
	for m := Move(0); m < NumMoves; m++ {
		s = Apply(s, m)
		if !s.Reachable() {
			t.Fatalf("after move %s, orientation invariant violated", m)
		}
	}
}

func TestMoveInverseRoundTrips(t *testing.T) {
	for m := Move(0); m < NumMoves; m++ {
		s := Apply(Solved, m)
		s = Apply(s, m.Inverse())
		if s != Solved {
			t.Fatalf("move %s inverse %s did not round-trip", m, m.Inverse())
		}
	}
}

func TestHalfTurnIsSelfInverse(t *testing.T) {
	for m := Move(2); m < NumMoves; m += 3 {
		if m.Inverse() != m {
			t.Fatalf("half turn %s should be its own inverse, got %s", m, m.Inverse())
		}
	}
}

func TestApplyAllEmptySequenceIsIdentity(t *testing.T) {
	if got := ApplyAll(Solved, nil); got != Solved {
		t.Fatalf("ApplyAll(Solved, nil) = %v, want Solved", got)
	}
}

func TestParseMoveRoundTripsAllNotations(t *testing.T) {
	for m := Move(0); m < NumMoves; m++ {
		got, err := ParseMove(m.String())
		if err != nil {
			t.Fatalf("ParseMove(%q): %v", m.String(), err)
		}
		if got != m {
			t.Fatalf("ParseMove(%q) = %d, want %d", m.String(), got, m)
		}
	}
}

func TestParseMoveRejectsUnknown(t *testing.T) {
	if _, err := ParseMove("X3"); err == nil {
		t.Fatal("ParseMove(\"X3\") expected error, got nil")
	}
}

func TestParseMovesAndFormatMovesRoundTrip(t *testing.T) {
	const seq = "U R U' R' F2"
	moves, err := ParseMoves(seq)
	if err != nil {
		t.Fatalf("ParseMoves: %v", err)
	}
	if len(moves) != 5 {
		t.Fatalf("len(moves) = %d, want 5", len(moves))
	}
	if got := FormatMoves(moves); got != seq {
		t.Fatalf("FormatMoves round-trip = %q, want %q", got, seq)
	}
}

func TestAllowedNextExcludesSameFace(t *testing.T) {
	for m := Move(0); m < NumMoves; m++ {
		face := int(m) / 3
		for _, next := range AllowedNext[m] {
			if int(next)/3 == face {
				t.Fatalf("AllowedNext[%s] contains same-face move %s", m, next)
			}
		}
	}
}

func TestAllowedNextFromNoMoveAllowsEverything(t *testing.T) {
	if len(AllowedNext[NoMove]) != NumMoves {
		t.Fatalf("AllowedNext[NoMove] has %d entries, want %d", len(AllowedNext[NoMove]), NumMoves)
	}
}

func TestFaceIDPacksAndUnpacks(t *testing.T) {
	for cubie := 0; cubie < 20; cubie++ {
		for orient := 0; orient < 3; orient++ {
			f := MakeFaceID(cubie, orient)
			if CubieID(f) != cubie {
				t.Fatalf("CubieID(MakeFaceID(%d,%d)) = %d", cubie, orient, CubieID(f))
			}
			if Orientation(f) != orient {
				t.Fatalf("Orientation(MakeFaceID(%d,%d)) = %d", cubie, orient, Orientation(f))
			}
		}
	}
}
