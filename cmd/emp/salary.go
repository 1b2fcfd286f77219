package main

import (
	"fmt"

	"github.com/jacksmith/emp/internal/cli"
	"github.com/jacksmith/emp/internal/model"
	"github.com/spf13/cobra"
)

var salaryCmd = &cobra.Command{
	Use:   "salary <id> <amount>",
	Short: "Update an employee's salary",
	Long: `Overwrite the salary of the employee with the given ID.

The amount is stored as given. Unlike add, salary does not reject zero or
negative amounts.

Examples:
  emp salary 3 6100
  emp salary #3 6100.50`,
	Args:              cobra.ExactArgs(2),
	RunE:              runSalary,
	ValidArgsFunction: completeEmployeeIDs,
}

func init() {
	rootCmd.AddCommand(salaryCmd)
}

func runSalary(cmd *cobra.Command, args []string) error {
	id, err := cli.ParseIDArg(args[0])
	if err != nil {
		return err
	}
	salary, err := cli.ParseSalaryArg(args[1])
	if err != nil {
		return err
	}

	s, err := openSession()
	if err != nil {
		return err
	}
	defer s.Close()

	if err := s.store.UpdateSalary(id, salary); err != nil {
		return err
	}

	fmt.Printf("%s salary set to %s\n", model.FormatID(id), cli.FormatSalary(salary))
	return nil
}
