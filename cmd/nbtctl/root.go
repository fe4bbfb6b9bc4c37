// Command nbtctl reads, queries, and edits NBT documents from the command
// line (spec.md §6). Grounded on cmd/hivectl/root.go's flag layout and
// printInfo/printError/printVerbose helper trio, generalized from registry
// hives to NBT files and using fatih/color for status output instead of
// plain fmt.
package main

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var (
	verbose bool
	quiet   bool
	noColor bool
)

var rootCmd = &cobra.Command{
	Use:     "nbtctl",
	Short:   "Read, query, and edit NBT/SNBT documents",
	Version: "0.1.0",
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		color.NoColor = color.NoColor || noColor
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose output")
	rootCmd.PersistentFlags().BoolVarP(&quiet, "quiet", "q", false, "suppress non-error output")
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "disable colored output")
	rootCmd.AddCommand(readCmd, writeCmd, pathCmd, findCmd, mergeCmd)
}

func execute() {
	if err := rootCmd.Execute(); err != nil {
		printError("%s", err)
		os.Exit(1)
	}
}

func printInfo(format string, args ...any) {
	if !quiet {
		fmt.Fprintf(os.Stdout, format+"\n", args...)
	}
}

func printError(format string, args ...any) {
	fmt.Fprintln(os.Stderr, color.RedString("error: "+fmt.Sprintf(format, args...)))
}

func printVerbose(format string, args ...any) {
	if verbose && !quiet {
		fmt.Fprintf(os.Stdout, color.CyanString(format)+"\n", args...)
	}
}
