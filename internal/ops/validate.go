package ops

import (
	"fmt"
	"sort"
)

// ValidationErrorType represents the type of validation error.
type ValidationErrorType string

const (
	ValidationErrorDuplicateID     ValidationErrorType = "duplicate_id"
	ValidationErrorInvalidID       ValidationErrorType = "invalid_id"
	ValidationErrorMissingRequired ValidationErrorType = "missing_required"
	ValidationErrorInvalidSalary   ValidationErrorType = "invalid_salary"
)

// ValidationError represents a data integrity issue.
type ValidationError struct {
	Type    ValidationErrorType
	ItemID  int
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("%d: %s - %s", e.ItemID, e.Type, e.Message)
}

// Validate checks the roster for data integrity issues.
// It never modifies the roster. Duplicate IDs are reported first, then
// per-employee issues in roster order.
func Validate(b Backend) ([]ValidationError, error) {
	r, err := b.Load()
	if err != nil {
		return nil, err
	}

	var errors []ValidationError

	// Check for duplicate IDs
	positions := make(map[int][]int)
	for i, e := range r.Employees {
		positions[e.ID] = append(positions[e.ID], i)
	}
	var dupIDs []int
	for id, idx := range positions {
		if len(idx) > 1 {
			dupIDs = append(dupIDs, id)
		}
	}
	sort.Ints(dupIDs)
	for _, id := range dupIDs {
		errors = append(errors, ValidationError{
			Type:    ValidationErrorDuplicateID,
			ItemID:  id,
			Message: fmt.Sprintf("ID used by %d employees", len(positions[id])),
		})
	}

	for _, e := range r.Employees {
		if e.ID <= 0 {
			errors = append(errors, ValidationError{
				Type:    ValidationErrorInvalidID,
				ItemID:  e.ID,
				Message: "ID must be a positive integer",
			})
		}
		if e.Name == "" {
			errors = append(errors, ValidationError{
				Type:    ValidationErrorMissingRequired,
				ItemID:  e.ID,
				Message: "name is empty",
			})
		}
		// UpdateSalary stores any amount, so this is reachable.
		if !(e.Salary > 0) {
			errors = append(errors, ValidationError{
				Type:    ValidationErrorInvalidSalary,
				ItemID:  e.ID,
				Message: fmt.Sprintf("salary %v is not greater than zero", e.Salary),
			})
		}
	}

	return errors, nil
}
