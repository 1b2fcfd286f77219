package main

import (
	"fmt"

	"github.com/jacksmith/emp/internal/cli"
	"github.com/jacksmith/emp/internal/model"
	"github.com/jacksmith/emp/internal/ops"
	"github.com/jacksmith/emp/internal/storage"
	"github.com/spf13/cobra"
)

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Check data integrity",
	Long: `Check the roster for data integrity issues.

For flat files the raw document is first checked against the roster schema
(every record needs id, name, position, salary and skills of the right type).
Then each record is checked for:
- Duplicate IDs
- Non-positive IDs
- Empty names
- Salaries that are not greater than zero

Exits with status 1 if any issue is found. Never modifies the roster.`,
	Args: cobra.NoArgs,
	RunE: runValidate,
}

func init() {
	rootCmd.AddCommand(validateCmd)
}

func runValidate(cmd *cobra.Command, args []string) error {
	s, err := openSession()
	if err != nil {
		return err
	}
	defer s.Close()

	if fs, ok := s.backend.(*storage.Storage); ok && fs.Exists() {
		raw, err := fs.ReadRaw()
		if err != nil {
			return err
		}
		problems, err := model.CheckDocument(raw, fs.Format())
		if err != nil {
			return err
		}
		if len(problems) > 0 {
			// Records that break the schema may not decode, so stop here.
			fmt.Printf("Found %d issue(s):\n\n", len(problems))
			for _, p := range problems {
				fmt.Printf("%s %s\n", cli.Red("[schema]"), p)
			}
			return fmt.Errorf("%s does not match the roster schema", fs.Path())
		}
	}

	issues, err := ops.Validate(s.backend)
	if err != nil {
		return err
	}

	if len(issues) == 0 {
		fmt.Println(cli.Green("No issues found."))
		return nil
	}

	fmt.Printf("Found %d issue(s):\n\n", len(issues))
	for _, e := range issues {
		fmt.Printf("%s %s: %s\n", model.FormatID(e.ItemID), formatValidationErrorType(e.Type), e.Message)
	}
	return fmt.Errorf("found %d issue(s)", len(issues))
}

func formatValidationErrorType(t ops.ValidationErrorType) string {
	switch t {
	case ops.ValidationErrorDuplicateID:
		return cli.Red("[duplicate]")
	case ops.ValidationErrorInvalidID:
		return cli.Red("[invalid-id]")
	case ops.ValidationErrorMissingRequired:
		return cli.Red("[missing]")
	case ops.ValidationErrorInvalidSalary:
		return cli.Yellow("[salary]")
	default:
		return fmt.Sprintf("[%s]", t)
	}
}
