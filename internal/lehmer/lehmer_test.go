package lehmer

import "testing"

// permutations generates every permutation of [0, n) via recursive swaps.
func permutations(n int) [][]int {
	elems := make([]int, n)
	for i := range elems {
		elems[i] = i
	}
	var out [][]int
	var rec func(k int)
	rec = func(k int) {
		if k == n {
			cp := make([]int, n)
			copy(cp, elems)
			out = append(out, cp)
			return
		}
		for i := k; i < n; i++ {
			elems[k], elems[i] = elems[i], elems[k]
			rec(k + 1)
			elems[k], elems[i] = elems[i], elems[k]
		}
	}
	rec(0)
	return out
}

func TestRankIsBijectiveForFullPermutations(t *testing.T) {
	const n = 5
	perms := permutations(n)
	seen := make(map[uint64]bool, len(perms))
	for _, p := range perms {
		r := Rank(p, n)
		if r >= MaxRank(n, n) {
			t.Fatalf("Rank(%v) = %d, out of range [0, %d)", p, r, MaxRank(n, n))
		}
		if seen[r] {
			t.Fatalf("Rank(%v) = %d collides with an earlier permutation", p, r)
		}
		seen[r] = true
	}
	if uint64(len(seen)) != MaxRank(n, n) {
		t.Fatalf("saw %d distinct ranks, want %d", len(seen), MaxRank(n, n))
	}
}

func TestUnrankInvertsRankForFullPermutations(t *testing.T) {
	const n = 5
	for _, p := range permutations(n) {
		r := Rank(p, n)
		out := make([]int, n)
		Unrank(r, n, out)
		for i := range p {
			if out[i] != p[i] {
				t.Fatalf("Unrank(Rank(%v)) = %v", p, out)
			}
		}
	}
}

func TestRankIsBijectiveForPartialSelections(t *testing.T) {
	const n, k = 5, 3
	seen := make(map[uint64]bool)
	for _, p := range permutations(n) {
		sel := p[:k]
		r := Rank(sel, n)
		if r >= MaxRank(n, k) {
			t.Fatalf("Rank(%v) = %d, out of range [0, %d)", sel, r, MaxRank(n, k))
		}
		seen[r] = true
	}
	if uint64(len(seen)) != MaxRank(n, k) {
		t.Fatalf("saw %d distinct ranks among partial selections, want %d", len(seen), MaxRank(n, k))
	}
}

func TestUnrankInvertsRankForPartialSelections(t *testing.T) {
	const n, k = 5, 3
	for _, p := range permutations(n) {
		sel := p[:k]
		r := Rank(sel, n)
		out := make([]int, k)
		Unrank(r, n, out)
		for i := range sel {
			if out[i] != sel[i] {
				t.Fatalf("Unrank(Rank(%v)) = %v", sel, out)
			}
		}
	}
}

func TestMaxRankMatchesFactorialIdentities(t *testing.T) {
	cases := []struct {
		n, k int
		want uint64
	}{
		{8, 8, 40320},
		{12, 12, 479001600},
		{12, 7, 3991680},
	}
	for _, c := range cases {
		if got := MaxRank(c.n, c.k); got != c.want {
			t.Fatalf("MaxRank(%d,%d) = %d, want %d", c.n, c.k, got, c.want)
		}
	}
}
