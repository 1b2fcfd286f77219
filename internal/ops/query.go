package ops

import (
	"fmt"

	"github.com/jacksmith/emp/internal/model"
)

// FindByPosition returns employees whose position equals position exactly.
// Matching is case-sensitive. Zero matches is an InvalidDataError.
func FindByPosition(b Backend, position string) ([]model.Employee, error) {
	matches, err := filterEmployees(b, func(e *model.Employee) bool {
		return e.Position == position
	})
	if err != nil {
		return nil, err
	}
	if len(matches) == 0 {
		return nil, &InvalidDataError{
			Field:   "position",
			Message: fmt.Sprintf("no employee with position %q", position),
		}
	}
	return matches, nil
}

// FindBySkill returns employees that list skill exactly.
// Zero matches is an InvalidDataError.
func FindBySkill(b Backend, skill string) ([]model.Employee, error) {
	matches, err := filterEmployees(b, func(e *model.Employee) bool {
		return e.HasSkill(skill)
	})
	if err != nil {
		return nil, err
	}
	if len(matches) == 0 {
		return nil, &InvalidDataError{
			Field:   "skill",
			Message: fmt.Sprintf("no employee with skill %q", skill),
		}
	}
	return matches, nil
}

// ListEmployees returns the whole roster in insertion order.
// An empty roster yields an empty, non-nil slice.
func ListEmployees(b Backend) ([]model.Employee, error) {
	r, err := b.Load()
	if err != nil {
		return nil, err
	}
	if r.Employees == nil {
		return []model.Employee{}, nil
	}
	return r.Employees, nil
}

func filterEmployees(b Backend, match func(e *model.Employee) bool) ([]model.Employee, error) {
	r, err := b.Load()
	if err != nil {
		return nil, err
	}

	var matches []model.Employee
	for i := range r.Employees {
		if match(&r.Employees[i]) {
			matches = append(matches, r.Employees[i])
		}
	}
	return matches, nil
}
