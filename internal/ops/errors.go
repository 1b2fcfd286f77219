package ops

import "fmt"

// NotFoundError indicates that no employee has the requested ID.
type NotFoundError struct {
	ID int
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("employee %d not found", e.ID)
}

// InvalidDataError indicates rejected input or a search with no matches.
// Field names what was wrong: "name", "salary", "position" or "skill".
type InvalidDataError struct {
	Field   string
	Message string
}

func (e *InvalidDataError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("invalid %s", e.Field)
	}
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Message)
}
