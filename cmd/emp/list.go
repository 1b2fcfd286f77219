package main

import (
	"fmt"
	"os"

	"github.com/jacksmith/emp/internal/cli"
	"github.com/spf13/cobra"
)

var listCmd = &cobra.Command{
	Use:     "list",
	Aliases: []string{"ls"},
	Short:   "List all employees",
	Long: `List every employee in roster order.

Roster order is insertion order: new employees appear at the end.`,
	Args: cobra.NoArgs,
	RunE: runList,
}

func init() {
	rootCmd.AddCommand(listCmd)
}

func runList(cmd *cobra.Command, args []string) error {
	s, err := openSession()
	if err != nil {
		return err
	}
	defer s.Close()

	employees, err := s.store.ListAll()
	if err != nil {
		return err
	}

	if len(employees) == 0 {
		fmt.Println("No employees.")
		return nil
	}

	cli.EmployeeTable(employees).Render(os.Stdout)
	return nil
}
