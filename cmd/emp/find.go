package main

import (
	"fmt"
	"os"

	"github.com/jacksmith/emp/internal/cli"
	"github.com/jacksmith/emp/internal/model"
	"github.com/spf13/cobra"
)

var findCmd = &cobra.Command{
	Use:   "find",
	Short: "Search employees by position or skill",
	Long: `Search the roster by exact position or by skill.

Exactly one of --position or --skill must be given. Matching is exact and
case-sensitive: "Engineer" does not match "engineer".

Results keep roster order. Finding nothing is reported as an error.

Examples:
  emp find --position=Engineer
  emp find --skill=go`,
	Args: cobra.NoArgs,
	RunE: runFind,
}

var (
	findPosition string
	findSkill    string
)

func init() {
	findCmd.Flags().StringVar(&findPosition, "position", "", "exact position to match")
	findCmd.Flags().StringVar(&findSkill, "skill", "", "exact skill to match")
	findCmd.MarkFlagsMutuallyExclusive("position", "skill")
	findCmd.MarkFlagsOneRequired("position", "skill")

	findCmd.RegisterFlagCompletionFunc("position", completePositions)
	findCmd.RegisterFlagCompletionFunc("skill", completeSkills)

	rootCmd.AddCommand(findCmd)
}

func runFind(cmd *cobra.Command, args []string) error {
	s, err := openSession()
	if err != nil {
		return err
	}
	defer s.Close()

	var found []model.Employee
	if findSkill != "" || cmd.Flags().Changed("skill") {
		found, err = s.store.FindBySkill(findSkill)
	} else {
		found, err = s.store.FindByPosition(findPosition)
	}
	if err != nil {
		return err
	}

	cli.EmployeeTable(found).Render(os.Stdout)
	fmt.Printf("\n%d employee(s)\n", len(found))
	return nil
}
