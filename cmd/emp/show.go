package main

import (
	"fmt"
	"strings"

	"github.com/jacksmith/emp/internal/cli"
	"github.com/jacksmith/emp/internal/model"
	"github.com/spf13/cobra"
)

var showCmd = &cobra.Command{
	Use:   "show <id>",
	Short: "Show employee details",
	Long: `Show every field of one employee.

IDs may be written with or without a leading "#".`,
	Args:              cobra.ExactArgs(1),
	RunE:              runShow,
	ValidArgsFunction: completeEmployeeIDs,
}

func init() {
	rootCmd.AddCommand(showCmd)
}

func runShow(cmd *cobra.Command, args []string) error {
	id, err := cli.ParseIDArg(args[0])
	if err != nil {
		return err
	}

	s, err := openSession()
	if err != nil {
		return err
	}
	defer s.Close()

	e, err := s.store.Get(id)
	if err != nil {
		return err
	}

	fmt.Printf("%s  %s\n", model.FormatID(e.ID), e.Name)
	fmt.Printf("Position: %s\n", valueOrNone(e.Position))
	fmt.Printf("Salary:   %s\n", cli.FormatSalary(e.Salary))
	fmt.Printf("Skills:   %s\n", valueOrNone(strings.Join(e.Skills, ", ")))
	return nil
}

func valueOrNone(s string) string {
	if s == "" {
		return cli.Gray("(none)")
	}
	return s
}
