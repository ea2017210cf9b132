package cli

import (
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "cubeida",
	Short: "An optimal Rubik's cube solver",
	Long: `cubeida finds a shortest solution to a scrambled 3x3x3 cube using
iterative-deepening A* search over four precomputed pattern databases.`,
	Version: "1.0.0",
}

// Execute runs the root command; main delegates straight to this.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.AddCommand(buildPDBsCmd)
	rootCmd.AddCommand(solveCmd)
	rootCmd.AddCommand(verifyCmd)
	rootCmd.AddCommand(showCmd)
	rootCmd.AddCommand(twistCmd)
}
