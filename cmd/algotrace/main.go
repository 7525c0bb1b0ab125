// Command algotrace runs the step generators from the command line and
// renders their traces as tables, one row per step.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:           "algotrace [command] (flags)",
	Short:         "step-trace generation for algorithm visualizations",
	SilenceUsage:  true,
	SilenceErrors: true,
}

func main() {
	cobra.EnableCommandSorting = false
	rootCmd.AddCommand(
		newBFSCmd(),
		newDFSCmd(),
		newWalkCmd(),
		newAVLCmd(),
		newFloydCmd(),
		newBinaryCmd(),
		newTwoSumCmd(),
	)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "algotrace:", err)
		os.Exit(1)
	}
}
