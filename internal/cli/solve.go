package cli

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/ehrlich-b/cubeida/internal/cube"
	"github.com/ehrlich-b/cubeida/internal/pdb"
	"github.com/ehrlich-b/cubeida/internal/scramble"
	"github.com/ehrlich-b/cubeida/internal/search"
)

var solveCmd = &cobra.Command{
	Use:   "solve",
	Short: "Emit an optimal move sequence for a scrambled cube",
	RunE:  runSolve,
}

func init() {
	solveCmd.Flags().String("scramble", "", "path to a scramble file (sticker name/color pairs)")
	solveCmd.Flags().String("face-ids", "", "48 comma-separated face-id values, in slot order")
	solveCmd.Flags().String("pdb-dir", ".", "directory containing the four pdb files")
	solveCmd.Flags().Int("threads", 0, "root-split worker count (0 = GOMAXPROCS)")
	solveCmd.Flags().Int("max-depth", 20, "deepest bound the search will try")
	solveCmd.Flags().Duration("timeout", 0, "wall-clock search deadline (0 = none)")
	solveCmd.Flags().Bool("verbose", false, "print per-solve search diagnostics")
	solveCmd.Flags().Bool("mmap", false, "memory-map the pdb files read-only instead of heap-loading them")
}

func runSolve(cmd *cobra.Command, args []string) error {
	scrambleFile, _ := cmd.Flags().GetString("scramble")
	faceIDs, _ := cmd.Flags().GetString("face-ids")
	pdbDir, _ := cmd.Flags().GetString("pdb-dir")
	threads, _ := cmd.Flags().GetInt("threads")
	maxDepth, _ := cmd.Flags().GetInt("max-depth")
	timeout, _ := cmd.Flags().GetDuration("timeout")
	verbose, _ := cmd.Flags().GetBool("verbose")
	mmap, _ := cmd.Flags().GetBool("mmap")

	start, err := resolveStart(scrambleFile, faceIDs)
	if err != nil {
		return err
	}

	pdbs, err := loadPDBs(pdbDir, mmap)
	if err != nil {
		return err
	}

	if verbose {
		log.Printf("solve: initial heuristic h = %d", pdbs.Heuristic(start))
	}

	t0 := time.Now()
	moves, err := search.Solve(start, pdbs, search.Options{
		MaxDepth: maxDepth,
		Threads:  threads,
		Timeout:  timeout,
	})
	if err != nil {
		return err
	}
	if verbose {
		log.Printf("solve: %d-move solution found in %s", len(moves), time.Since(t0))
	}

	fmt.Println(cube.FormatMoves(moves))
	return nil
}

// resolveStart resolves the solve/verify commands' shared --scramble /
// --face-ids input flags into a starting state.
func resolveStart(scrambleFile, faceIDs string) (cube.State, error) {
	switch {
	case faceIDs != "":
		return parseFaceIDs(faceIDs)
	case scrambleFile != "":
		return scramble.ParseFile(scrambleFile)
	default:
		return cube.State{}, errors.New("exactly one of --scramble or --face-ids is required")
	}
}

// parseFaceIDs parses the --face-ids debug input: 48 comma-separated
// integers in the same slot order as cube.Solved.
func parseFaceIDs(s string) (cube.State, error) {
	var state cube.State
	parts := strings.Split(s, ",")
	if len(parts) != cube.NumFaces {
		return state, errors.Errorf("--face-ids requires %d comma-separated values, got %d", cube.NumFaces, len(parts))
	}
	for i, p := range parts {
		n, err := strconv.Atoi(strings.TrimSpace(p))
		if err != nil {
			return state, errors.Wrapf(err, "parsing face-id at slot %d", i)
		}
		state[i] = byte(n)
	}
	if !state.Reachable() {
		return state, errors.Wrap(scramble.ErrUnreachableState, "--face-ids")
	}
	return state, nil
}

// loadPDBs loads the four database files from dir. With mmap set it
// decompresses each one to a raw sibling file (if not already present) and
// memory-maps that instead of heap-copying the ~500MB tables. Either way
// every root-split worker in the process reads the same tables.
func loadPDBs(dir string, mmap bool) (*search.PDBSet, error) {
	corner, err := loadOne(dir, pdb.CornerFile, pdb.NCorner, pdb.KeyCorner(cube.Solved), mmap)
	if err != nil {
		return nil, errors.Wrap(err, "loading corner pdb")
	}
	allEdge, err := loadOne(dir, pdb.AllEdgeFile, pdb.NAllEdge, pdb.KeyAllEdges(cube.Solved), mmap)
	if err != nil {
		return nil, errors.Wrap(err, "loading all-edge pdb")
	}
	edge0, err := loadOne(dir, pdb.EdgeSplit0File, pdb.NEdgeSplit, pdb.KeyEdgeSplit(cube.Solved, 0), mmap)
	if err != nil {
		return nil, errors.Wrap(err, "loading edge-split-0 pdb")
	}
	edge1, err := loadOne(dir, pdb.EdgeSplit1File, pdb.NEdgeSplit, pdb.KeyEdgeSplit(cube.Solved, 1), mmap)
	if err != nil {
		return nil, errors.Wrap(err, "loading edge-split-1 pdb")
	}
	return &search.PDBSet{Corner: corner, AllEdge: allEdge, Edge0: edge0, Edge1: edge1}, nil
}

// loadOne loads a single database file, either as a heap copy (pdb.Load) or,
// with mmap set, by decompressing it to a ".raw" sibling (reused across
// runs if already present) and memory-mapping that sibling (pdb.LoadMmap).
func loadOne(dir, file string, size int, solvedKey uint64, mmap bool) (*pdb.Store, error) {
	path := filepath.Join(dir, file)
	if !mmap {
		return pdb.Load(path, size, solvedKey)
	}

	rawPath := path + ".raw"
	if info, err := os.Stat(rawPath); err != nil || info.Size() != int64(size) {
		if err := pdb.Decompress(path, rawPath); err != nil {
			return nil, errors.Wrapf(err, "decompressing %s for mmap", path)
		}
	}
	return pdb.LoadMmap(rawPath, size, solvedKey)
}
