package main

import (
	"fmt"

	"github.com/jacksmith/emp/internal/cli"
	"github.com/jacksmith/emp/internal/model"
	"github.com/spf13/cobra"
)

var addCmd = &cobra.Command{
	Use:   "add <name>",
	Short: "Add a new employee",
	Long: `Add a new employee to the roster.

The new employee gets the next free ID (one more than the highest ID in the
roster, or 1 for an empty roster). The salary must be greater than zero.

Skills are separated by skill_separator from .empconfig.yaml (a comma by
default). Blank entries are ignored.

Examples:
  emp add "Ada Lovelace" --position=Engineer --salary=5200
  emp add "Grace Hopper" --position=Admiral --salary=9000 --skills="cobol, compilers"`,
	Args: cobra.ExactArgs(1),
	RunE: runAdd,
}

var (
	addPosition string
	addSalary   string
	addSkills   string
)

func init() {
	addCmd.Flags().StringVar(&addPosition, "position", "", "job position")
	addCmd.Flags().StringVar(&addSalary, "salary", "", "salary (must be greater than zero)")
	addCmd.Flags().StringVar(&addSkills, "skills", "", "separator-delimited skill list")
	addCmd.MarkFlagRequired("salary")

	addCmd.RegisterFlagCompletionFunc("position", completePositions)

	rootCmd.AddCommand(addCmd)
}

func runAdd(cmd *cobra.Command, args []string) error {
	salary, err := cli.ParseSalaryArg(addSalary)
	if err != nil {
		return err
	}

	s, err := openSession()
	if err != nil {
		return err
	}
	defer s.Close()

	skills := cli.SplitSkills(addSkills, s.cfg.SkillSeparator)
	e, err := s.store.Add(args[0], addPosition, salary, skills)
	if err != nil {
		return err
	}

	s.log.Debug().Int("id", e.ID).Msg("employee added")
	fmt.Printf("%s %s\n", model.FormatID(e.ID), e.Name)
	return nil
}
