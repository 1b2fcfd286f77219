// Package main is the entry point for the emp CLI.
package main

import (
	"fmt"
	"os"

	"github.com/jacksmith/emp/internal/cli"
	"github.com/spf13/cobra"
)

// Version is set at build time via ldflags.
var Version = "dev"

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, cli.Red(cli.FormatError(err)))
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "emp",
	Short: "emp - a small employee record keeper",
	Long: `emp keeps a roster of employees in a single data file.

Each employee has a numeric ID, a name, a position, a salary and a list of
skills. Every command reads the whole roster, applies one change and writes
it back, so the file is always the source of truth.

The data file defaults to employees.yaml in the current directory. A .json
extension stores JSON instead, and .db or .sqlite stores an SQLite database.
Set data_file in .empconfig.yaml or pass --file to pick another one.

Run "emp menu" for the interactive numbered menu.`,
	Version:       Version,
	SilenceUsage:  true,
	SilenceErrors: true,
	Run: func(cmd *cobra.Command, args []string) {
		cmd.Help()
	},
}

var (
	flagFile    string
	flagVerbose bool
)

func init() {
	rootCmd.PersistentFlags().StringVar(&flagFile, "file", "", "data file (overrides data_file in .empconfig.yaml)")
	rootCmd.PersistentFlags().BoolVarP(&flagVerbose, "verbose", "v", false, "log debug diagnostics to stderr")

	// Replaced by our own completion command with usage notes
	rootCmd.CompletionOptions.DisableDefaultCmd = true

	rootCmd.SetVersionTemplate("emp version {{.Version}}\n")
}
