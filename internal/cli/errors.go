package cli

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/jacksmith/emp/internal/model"
	"github.com/jacksmith/emp/internal/ops"
)

// ValidationError indicates user input that could not be parsed.
type ValidationError struct {
	Field   string // the argument or prompt that failed
	Message string // what went wrong
}

func (e *ValidationError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("invalid %s: %s", e.Field, e.Message)
	}
	return e.Message
}

// ParseIDArg parses an employee ID typed by the user.
func ParseIDArg(s string) (int, error) {
	id, err := model.ParseID(s)
	if err != nil {
		return 0, &ValidationError{Field: "id", Message: fmt.Sprintf("%q is not a positive whole number", s)}
	}
	return id, nil
}

// ParseSalaryArg parses a salary typed by the user.
// Range checks are left to the store.
func ParseSalaryArg(s string) (float64, error) {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, &ValidationError{Field: "salary", Message: fmt.Sprintf("%q is not a number", s)}
	}
	return v, nil
}

// SplitSkills splits a separator-delimited skill list, trimming blanks.
// Empty entries are dropped, so "" yields no skills.
func SplitSkills(s, sep string) []string {
	var skills []string
	for _, part := range strings.Split(s, sep) {
		if part = strings.TrimSpace(part); part != "" {
			skills = append(skills, part)
		}
	}
	return skills
}

// IsUserError reports whether err came from input the user can correct.
// Anything else (I/O, a corrupt data file) is treated as fatal.
func IsUserError(err error) bool {
	var validation *ValidationError
	var notFound *ops.NotFoundError
	var invalid *ops.InvalidDataError
	return errors.As(err, &validation) || errors.As(err, &notFound) || errors.As(err, &invalid)
}

// FormatError returns a user-friendly error message.
// It prefixes the error with "error: " for consistent CLI output.
func FormatError(err error) string {
	if err == nil {
		return ""
	}
	return "error: " + err.Error()
}
