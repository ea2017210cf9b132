package cli

import (
	"fmt"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/ehrlich-b/cubeida/internal/cube"
)

var showCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the face-id array of a state",
	Long: `show starts from the solved cube, applies an optional move sequence,
and prints the resulting 48-slot face-id array -- a debugging aid for
inspecting the move kernel without a graphical cube.`,
	RunE: runShow,
}

func init() {
	showCmd.Flags().String("moves", "", "move sequence in standard notation to apply before printing")
}

func runShow(cmd *cobra.Command, args []string) error {
	moveStr, _ := cmd.Flags().GetString("moves")
	moves, err := cube.ParseMoves(moveStr)
	if err != nil {
		return errors.Wrap(err, "parsing --moves")
	}
	state := cube.ApplyAll(cube.Solved, moves)
	fmt.Print("[")
	for i, f := range state {
		if i > 0 {
			fmt.Print(", ")
		}
		fmt.Print(int(f))
	}
	fmt.Println("]")
	return nil
}
