package pdb

import (
	"log"

	"github.com/ehrlich-b/cubeida/internal/cube"
)

// KeyFunc computes one database's perfect-hash index for a cube state.
type KeyFunc func(cube.State) uint64

// logInterval controls how often BuildBFS and BuildAllEdgeDFS report
// progress; building the larger tables visits hundreds of millions of
// states, so progress output is throttled rather than per-state.
const logInterval = 2_000_000

// bfsNode is one entry in a BFS frontier: the state it names, the move
// that produced it (so redundant-move pruning knows what's disallowed
// next), and its distance from solved.
type bfsNode struct {
	state cube.State
	last  cube.Move
	depth byte
}

// BuildBFS runs a level-synchronous breadth-first search from the solved
// cube, filling a dense depth table of the given size under key. Used for
// the corner database and the two edge-subset databases, all of which are
// small enough to explore to exhaustion.
//
// Every reached cell's depth is exact (BFS visits nodes in non-decreasing
// distance order), so the first write to a cell is its final value.
func BuildBFS(key KeyFunc, size uint64, name string) []byte {
	table := make([]byte, size)
	for i := range table {
		table[i] = SentinelByte
	}
	table[key(cube.Solved)] = 0

	queue := make([]bfsNode, 0, 4096)
	queue = append(queue, bfsNode{cube.Solved, cube.NoMove, 0})

	visited := 1
	for head := 0; head < len(queue); head++ {
		cur := queue[head]
		for _, m := range cube.AllowedNext[cur.last] {
			next := cube.Apply(cur.state, m)
			k := key(next)
			if table[k] != SentinelByte {
				continue
			}
			depth := cur.depth + 1
			table[k] = depth
			queue = append(queue, bfsNode{next, m, depth})
			visited++
			if visited%logInterval == 0 {
				log.Printf("pdb %s: visited %d states, frontier depth %d", name, visited, depth)
			}
		}
	}
	log.Printf("pdb %s: done, %d states reached of %d", name, visited, size)
	return table
}

// dfsNode is one entry in the all-edge builder's explicit depth-first
// stack.
type dfsNode struct {
	state cube.State
	last  cube.Move
	depth int
}

// BuildAllEdgeDFS fills the all-edge database by depth-first exploration
// truncated at AllEdgeMaxLevel: 12! reachable permutations is too large to
// BFS to exhaustion in a byte-per-cell table within reasonable memory, so
// this instead records the minimum depth observed for every key reached
// within the truncation, then clamps everything else to AllEdgeUnreached.
// That clamp stays an admissible lower bound: a key never reached within
// AllEdgeMaxLevel moves truly needs more than AllEdgeMaxLevel moves.
func BuildAllEdgeDFS() []byte {
	table := make([]byte, NAllEdge)
	for i := range table {
		table[i] = SentinelByte
	}
	table[KeyAllEdges(cube.Solved)] = 0

	stack := make([]dfsNode, 0, 4096)
	stack = append(stack, dfsNode{cube.Solved, cube.NoMove, 0})

	visited := 1
	for len(stack) > 0 {
		cur := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		if cur.depth >= AllEdgeMaxLevel {
			continue
		}
		for _, m := range cube.AllowedNext[cur.last] {
			next := cube.Apply(cur.state, m)
			k := KeyAllEdges(next)
			depth := byte(cur.depth + 1)
			if table[k] == SentinelByte {
				table[k] = depth
				visited++
				if visited%logInterval == 0 {
					log.Printf("pdb all-edge: visited %d states, stack depth %d", visited, cur.depth+1)
				}
			} else if depth < table[k] {
				table[k] = depth
			}
			stack = append(stack, dfsNode{next, m, cur.depth + 1})
		}
	}

	unreached := 0
	for i, d := range table {
		if d == SentinelByte {
			table[i] = AllEdgeUnreached
			unreached++
		}
	}
	log.Printf("pdb all-edge: done, %d states reached of %d, %d clamped to %d", visited, NAllEdge, unreached, AllEdgeUnreached)
	return table
}

// BuildAll runs all four database builds and returns them in the fixed
// order (corner, all-edge, edge-split half 0, edge-split half 1) that
// internal/search expects.
func BuildAll() (corner, allEdge, edge0, edge1 []byte) {
	corner = BuildBFS(KeyCorner, NCorner, "corner")
	allEdge = BuildAllEdgeDFS()
	edge0 = BuildBFS(func(s cube.State) uint64 { return KeyEdgeSplit(s, 0) }, NEdgeSplit, "edge-split-0")
	edge1 = BuildBFS(func(s cube.State) uint64 { return KeyEdgeSplit(s, 1) }, NEdgeSplit, "edge-split-1")
	return
}
