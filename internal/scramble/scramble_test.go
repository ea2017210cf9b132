package scramble

import "testing"

func TestParseSolvedColorsReturnsSolvedState(t *testing.T) {
	state, err := Parse(SolvedColors())
	if err != nil {
		t.Fatalf("Parse(SolvedColors()): %v", err)
	}
	if !state.IsSolved() {
		t.Fatalf("Parse(SolvedColors()) = %v, want solved", state)
	}
}

func TestParseMissingStickerIsMalformed(t *testing.T) {
	colors := SolvedColors()
	delete(colors, "19pz")
	_, err := Parse(colors)
	if err == nil {
		t.Fatal("Parse with a missing sticker expected an error, got nil")
	}
}

func TestParseImpossibleColorTripleIsMalformed(t *testing.T) {
	colors := SolvedColors()
	colors["01my"] = 99
	_, err := Parse(colors)
	if err == nil {
		t.Fatal("Parse with an impossible color expected an error, got nil")
	}
}

func TestParseFileRejectsMissingFile(t *testing.T) {
	_, err := ParseFile("testdata/does-not-exist.scramble")
	if err == nil {
		t.Fatal("ParseFile on a missing file expected an error, got nil")
	}
}
