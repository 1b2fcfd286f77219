package model

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ErrInvalidID is returned when an ID cannot be parsed.
var ErrInvalidID = errors.New("invalid ID format")

// ParseID parses an employee ID from user input.
// Accepts optional surrounding whitespace and a leading '#': "7", " 7 ", "#7".
// Returns ErrInvalidID if the value is not a positive integer.
func ParseID(s string) (int, error) {
	trimmed := strings.TrimPrefix(strings.TrimSpace(s), "#")
	id, err := strconv.Atoi(trimmed)
	if err != nil {
		return 0, fmt.Errorf("%w: %q is not a number", ErrInvalidID, s)
	}
	if id <= 0 {
		return 0, fmt.Errorf("%w: %q must be positive", ErrInvalidID, s)
	}
	return id, nil
}

// NextID returns the ID to assign to a new employee: the highest ID currently
// in the roster plus one, or 1 for an empty roster.
// Gaps left by removals below the maximum are never refilled.
func NextID(employees []Employee) int {
	maxID := 0
	for _, e := range employees {
		if e.ID > maxID {
			maxID = e.ID
		}
	}
	return maxID + 1
}

// FormatID formats an employee ID for display.
func FormatID(id int) string {
	return "#" + strconv.Itoa(id)
}
