package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

func main() {
	rootCmd := newRootCmd()

	registerListCmd(rootCmd)
	registerRunCmd(rootCmd)
	registerVerifyCmd(rootCmd)

	os.Exit(run(rootCmd))
}

// run executes the command and prints its error, if any, to the command's
// stderr, whether or not a logger was installed.
func run(rootCmd *cobra.Command) int {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(rootCmd.ErrOrStderr(), "Error: %v\n", err)
		return 1
	}
	return 0
}
