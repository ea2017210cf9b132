package cli

import (
	"fmt"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/ehrlich-b/cubeida/internal/cube"
)

var twistCmd = &cobra.Command{
	Use:   "twist [moves...]",
	Short: "Apply moves to the solved cube and report whether it's solved",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runTwist,
}

func runTwist(cmd *cobra.Command, args []string) error {
	moves, err := cube.ParseMoves(joinArgs(args))
	if err != nil {
		return errors.Wrap(err, "parsing moves")
	}
	result := cube.ApplyAll(cube.Solved, moves)
	fmt.Printf("applied %d moves; solved = %v\n", len(moves), result.IsSolved())
	return nil
}

func joinArgs(args []string) string {
	out := args[0]
	for _, a := range args[1:] {
		out += " " + a
	}
	return out
}
