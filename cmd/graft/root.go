package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/andybalaam/graft/internal/glog"
)

var verbose bool

var rootCmd = &cobra.Command{
	Use:   "graft",
	Short: "Run a graft turtle-graphics program and print its stroke stream",
	Long: `graft lexes, parses, schedules and optimises a graft program and
prints the resulting stroke stream to stdout. It does not render
anything — there is no GUI or GIF output here, just the text stream a
renderer would consume.`,
	SilenceErrors: true,
	SilenceUsage:  true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		glog.SetVerbose(verbose)
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug-level tracing")
}

// Execute runs the root command, the single entry point main calls.
func Execute() error {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		return err
	}
	return nil
}
