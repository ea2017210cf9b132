package cli

import (
	"fmt"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/ehrlich-b/cubeida/internal/cube"
)

var verifyCmd = &cobra.Command{
	Use:   "verify",
	Short: "Check that a move sequence solves a scramble",
	Long: `verify applies a move sequence to a starting state and reports whether
the result is solved, without running any search -- useful for checking a
solve command's output, or a hand-written algorithm, against a scramble.`,
	RunE: runVerify,
}

func init() {
	verifyCmd.Flags().String("scramble", "", "path to a scramble file (sticker name/color pairs)")
	verifyCmd.Flags().String("face-ids", "", "48 comma-separated face-id values, in slot order")
	verifyCmd.Flags().String("moves", "", "move sequence in standard notation, e.g. \"U R U' R'\"")
}

func runVerify(cmd *cobra.Command, args []string) error {
	scrambleFile, _ := cmd.Flags().GetString("scramble")
	faceIDs, _ := cmd.Flags().GetString("face-ids")
	moveStr, _ := cmd.Flags().GetString("moves")

	start, err := resolveStart(scrambleFile, faceIDs)
	if err != nil {
		return err
	}
	moves, err := cube.ParseMoves(moveStr)
	if err != nil {
		return errors.Wrap(err, "parsing --moves")
	}

	result := cube.ApplyAll(start, moves)
	if !result.IsSolved() {
		return errors.Errorf("%d moves did not solve the cube", len(moves))
	}
	fmt.Printf("solved: %d moves (%s)\n", len(moves), cube.FormatMoves(moves))
	return nil
}
