package main

import (
	"fmt"

	"github.com/jacksmith/emp/internal/cli"
	"github.com/jacksmith/emp/internal/model"
	"github.com/spf13/cobra"
)

var removeCmd = &cobra.Command{
	Use:     "remove <id>",
	Aliases: []string{"rm"},
	Short:   "Remove an employee",
	Long: `Remove the employee with the given ID from the roster.

IDs may be written with or without a leading "#" (e.g., 7 or #7).
Fails without changing the roster if no employee has the ID.`,
	Args:              cobra.ExactArgs(1),
	RunE:              runRemove,
	ValidArgsFunction: completeEmployeeIDs,
}

func init() {
	rootCmd.AddCommand(removeCmd)
}

func runRemove(cmd *cobra.Command, args []string) error {
	id, err := cli.ParseIDArg(args[0])
	if err != nil {
		return err
	}

	s, err := openSession()
	if err != nil {
		return err
	}
	defer s.Close()

	if err := s.store.Remove(id); err != nil {
		return err
	}

	fmt.Printf("Removed %s\n", model.FormatID(id))
	return nil
}
